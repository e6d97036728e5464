package bot

import (
	"context"
	"fmt"

	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/diamondburned/arikawa/v3/gateway"
	"github.com/diamondburned/arikawa/v3/session"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/Oriyon-111111/go-discord-holobac/internal/commands"
	"github.com/Oriyon-111111/go-discord-holobac/internal/config"
	"github.com/Oriyon-111111/go-discord-holobac/internal/holobac"
)

// Bot ties the Discord session to command and game component dispatch.
type Bot struct {
	Session     *session.Session
	Config      *config.Config
	CmdManager  *commands.CommandManager
	GameService *holobac.Service
	Logger      *zap.Logger
}

// NewBotParameters holds dependencies for NewBot.
type NewBotParameters struct {
	fx.In

	Cfg         *config.Config
	S           *session.Session
	CmdManager  *commands.CommandManager
	GameService *holobac.Service
	Logger      *zap.Logger
}

// NewBot creates the Bot and installs its interaction handler.
func NewBot(params NewBotParameters) (*Bot, error) {
	if params.S == nil {
		return nil, fmt.Errorf("session provided to NewBot is nil")
	}
	if params.Cfg == nil {
		return nil, fmt.Errorf("config provided to NewBot is nil")
	}

	b := &Bot{
		Session:     params.S,
		Config:      params.Cfg,
		CmdManager:  params.CmdManager,
		GameService: params.GameService,
		Logger:      params.Logger,
	}

	params.S.AddHandler(func(e *gateway.InteractionCreateEvent) {
		// Interactions can take seconds (dealer animation, image
		// rendering), so they run off the gateway dispatch goroutine.
		go b.handleInteraction(context.Background(), e)
	})

	params.Logger.Info("NewBot created successfully")

	return b, nil
}

// Start registers the slash commands for the configured guilds. Session
// opening is handled by the Fx lifecycle.
func (b *Bot) Start(ctx context.Context) error {
	guildIDs := b.guildIDs()
	if len(guildIDs) == 0 {
		b.Logger.Warn("No valid guild IDs configured; slash commands will not be registered")

		return nil
	}

	b.CmdManager.RegisterCommands(guildIDs)
	b.Logger.Info("Slash commands registered", zap.Int("guildCount", len(guildIDs)))

	return nil
}

// Stop unregisters the slash commands. Session closing is handled by the Fx
// lifecycle.
func (b *Bot) Stop(ctx context.Context) error {
	b.CmdManager.UnregisterAllCommands(b.guildIDs())

	return nil
}

func (b *Bot) guildIDs() []discord.GuildID {
	var guildIDs []discord.GuildID
	for _, idStr := range b.Config.Discord.GuildIDs {
		sf, err := discord.ParseSnowflake(idStr)
		if err != nil {
			b.Logger.Error("Failed to parse guild ID",
				zap.String("guildID", idStr), zap.Error(err))

			continue
		}
		guildIDs = append(guildIDs, discord.GuildID(sf))
	}

	return guildIDs
}
