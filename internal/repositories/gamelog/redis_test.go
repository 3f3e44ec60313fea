package gamelog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewRedisValidation(t *testing.T) {
	_, err := NewRedis(nil)
	assert.Error(t, err)

	_, err = NewRedis(&Config{})
	assert.Error(t, err)
}
