package commands

import (
	"context"

	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/diamondburned/arikawa/v3/gateway"
	"github.com/diamondburned/arikawa/v3/session"
	"github.com/diamondburned/arikawa/v3/utils/json/option"
	"go.uber.org/zap"

	"github.com/Oriyon-111111/go-discord-holobac/internal/holobac"
)

// HolobacCommand starts a Holobac match via the /holobac slash command.
type HolobacCommand struct {
	logger  *zap.Logger
	service *holobac.Service
}

// NewHolobacCommand creates a new HolobacCommand.
func NewHolobacCommand(logger *zap.Logger, service *holobac.Service) Command {
	return &HolobacCommand{
		logger:  logger.Named("holobac_command"),
		service: service,
	}
}

// Name returns the name of the command.
func (c *HolobacCommand) Name() string {
	return "holobac"
}

// Description returns the description of the command.
func (c *HolobacCommand) Description() string {
	return "Start the Holobac game!"
}

// Options returns the command options.
func (c *HolobacCommand) Options() []discord.CommandOption {
	return []discord.CommandOption{
		&discord.IntegerOption{
			OptionName:  "bet",
			Description: "Credits to put on the table (optional)",
			Required:    false,
			Min:         option.NewInt(1),
		},
	}
}

// Execute starts a fresh match for the calling user.
func (c *HolobacCommand) Execute(ctx context.Context, s *session.Session, e *gateway.InteractionCreateEvent, data *discord.CommandInteraction) error {
	bet := 0
	if opt := data.Options.Find("bet"); opt.Name != "" {
		value, err := opt.IntValue()
		if err != nil {
			c.logger.Warn("Invalid bet option", zap.Error(err))
		} else {
			bet = int(value)
		}
	}

	c.logger.Info("Starting Holobac match",
		zap.Stringer("userID", e.SenderID()),
		zap.Int("bet", bet))

	return c.service.StartMatch(ctx, e, bet)
}
