package bot

import (
	"context"

	"github.com/diamondburned/arikawa/v3/api"
	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/diamondburned/arikawa/v3/gateway"
	"github.com/diamondburned/arikawa/v3/utils/json/option"
	"go.uber.org/zap"

	"github.com/Oriyon-111111/go-discord-holobac/internal/holobac"
)

// handleInteraction routes slash commands to the command manager and button
// presses to the game service.
func (b *Bot) handleInteraction(ctx context.Context, e *gateway.InteractionCreateEvent) {
	switch data := e.Data.(type) {
	case *discord.CommandInteraction:
		b.handleCommand(ctx, e, data)

	case *discord.ButtonInteraction:
		if !holobac.IsGameComponent(data.CustomID) {
			b.Logger.Debug("Ignoring unknown component",
				zap.String("customID", string(data.CustomID)))

			return
		}

		if err := b.GameService.HandleComponent(ctx, e, data); err != nil {
			b.Logger.Error("Error handling game component",
				zap.String("customID", string(data.CustomID)),
				zap.Error(err))
		}

	default:
		b.Logger.Debug("Received unhandled interaction type", zap.Any("type", e.Data))
	}
}

func (b *Bot) handleCommand(ctx context.Context, e *gateway.InteractionCreateEvent, data *discord.CommandInteraction) {
	b.Logger.Info("Received slash command",
		zap.String("commandName", data.Name),
		zap.Stringer("userID", e.SenderID()))

	cmd, ok := b.CmdManager.GetCommand(data.Name)
	if !ok {
		b.Logger.Warn("Unknown command", zap.String("commandName", data.Name))
		b.respondError(e, "Command not found.")

		return
	}

	if err := cmd.Execute(ctx, b.Session, e, data); err != nil {
		b.Logger.Error("Error executing command",
			zap.String("commandName", data.Name),
			zap.Error(err))
		b.respondError(e, "An error occurred while executing the command.")

		return
	}

	b.Logger.Info("Command executed successfully", zap.String("commandName", data.Name))
}

// respondError makes a best-effort attempt to tell the user something went
// wrong. The interaction may already have been responded to.
func (b *Bot) respondError(e *gateway.InteractionCreateEvent, message string) {
	err := b.Session.RespondInteraction(e.ID, e.Token, api.InteractionResponse{
		Type: api.MessageInteractionWithSource,
		Data: &api.InteractionResponseData{
			Content: option.NewNullableString(message),
			Flags:   discord.EphemeralMessage,
		},
	})
	if err != nil {
		b.Logger.Debug("Failed to send error response", zap.Error(err))
	}
}
