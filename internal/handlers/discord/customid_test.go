package discord

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncodeDecodeID(t *testing.T) {
	tests := []struct {
		name     string
		action   string
		args     []string
		expected string
	}{
		{name: "no args", action: ActionFindRegion, expected: "find_region"},
		{name: "one arg", action: ActionDraftStart, args: []string{"abc-123"}, expected: "draft_start:abc-123"},
		{name: "game end", action: ActionGameEnd, args: []string{"guild_7", "2"}, expected: "game_end:guild_7:2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id := EncodeID(tt.action, tt.args...)
			assert.Equal(t, tt.expected, id)

			action, args := DecodeID(id)
			assert.Equal(t, tt.action, action)
			assert.Len(t, args, len(tt.args))
			for i := range tt.args {
				assert.Equal(t, tt.args[i], args[i])
			}
		})
	}
}

func TestDecodeStaticID(t *testing.T) {
	action, args := DecodeID(ButtonCreateGame)
	assert.Equal(t, ButtonCreateGame, action)
	assert.Empty(t, args)
}
