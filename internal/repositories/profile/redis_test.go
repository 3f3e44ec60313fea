package profile

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRedisValidation(t *testing.T) {
	_, err := NewRedis(nil)
	assert.Error(t, err)

	_, err = NewRedis(&Config{})
	assert.Error(t, err)
}

func TestNewRedisUnreachable(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	addr := mr.Addr()
	mr.Close()

	client := redis.NewClient(&redis.Options{Addr: addr})
	defer client.Close()

	_, err = NewRedis(&Config{RedisClient: client})
	assert.Error(t, err)
}
