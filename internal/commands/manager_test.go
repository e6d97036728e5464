package commands_test

import (
	"context"
	"testing"

	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/diamondburned/arikawa/v3/gateway"
	"github.com/diamondburned/arikawa/v3/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Oriyon-111111/go-discord-holobac/internal/commands"
)

// stubCommand is a minimal Command with a fixed name.
type stubCommand struct {
	name string
}

func (c *stubCommand) Name() string                     { return c.name }
func (c *stubCommand) Description() string              { return "stub" }
func (c *stubCommand) Options() []discord.CommandOption { return nil }

func (c *stubCommand) Execute(context.Context, *session.Session, *gateway.InteractionCreateEvent, *discord.CommandInteraction) error {
	return nil
}

func TestNewCommandManager(t *testing.T) {
	appID := discord.AppID(12345)

	t.Run("SuccessWithUniqueCommands", func(t *testing.T) {
		ping := &stubCommand{name: "ping"}
		help := &stubCommand{name: "help"}

		cm := commands.NewCommandManager(commands.CommandManagerParams{
			ApplicationID: appID,
			Logger:        zap.NewNop(),
			Commands:      []commands.Command{ping, help},
		})
		require.NotNil(t, cm)

		got, ok := cm.GetCommand("ping")
		assert.True(t, ok)
		assert.Equal(t, ping, got)

		got, ok = cm.GetCommand("help")
		assert.True(t, ok)
		assert.Equal(t, help, got)

		_, ok = cm.GetCommand("nonexistent")
		assert.False(t, ok)
	})

	t.Run("NoCommands", func(t *testing.T) {
		cm := commands.NewCommandManager(commands.CommandManagerParams{
			ApplicationID: appID,
			Logger:        zap.NewNop(),
		})
		require.NotNil(t, cm)

		_, ok := cm.GetCommand("any")
		assert.False(t, ok)
	})

	t.Run("NilCommandInSlice", func(t *testing.T) {
		valid := &stubCommand{name: "valid"}

		cm := commands.NewCommandManager(commands.CommandManagerParams{
			ApplicationID: appID,
			Logger:        zap.NewNop(),
			Commands:      []commands.Command{nil, valid, nil},
		})
		require.NotNil(t, cm)

		got, ok := cm.GetCommand("valid")
		assert.True(t, ok)
		assert.Equal(t, valid, got)
	})

	t.Run("DuplicateCommandNames", func(t *testing.T) {
		first := &stubCommand{name: "dup"}
		second := &stubCommand{name: "dup"}

		cm := commands.NewCommandManager(commands.CommandManagerParams{
			ApplicationID: appID,
			Logger:        zap.NewNop(),
			Commands:      []commands.Command{first, second},
		})
		require.NotNil(t, cm)

		got, ok := cm.GetCommand("dup")
		assert.True(t, ok)
		assert.Same(t, first, got) // first registration wins
	})

	t.Run("NilLogger", func(t *testing.T) {
		cm := commands.NewCommandManager(commands.CommandManagerParams{
			ApplicationID: appID,
			Commands:      []commands.Command{&stubCommand{name: "testlog"}},
		})
		require.NotNil(t, cm)

		_, ok := cm.GetCommand("testlog")
		assert.True(t, ok)
	})
}
