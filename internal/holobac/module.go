// Package holobac provides the game service infrastructure and Fx modules.
package holobac

import (
	"time"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/Oriyon-111111/go-discord-holobac/internal/config"
	"github.com/Oriyon-111111/go-discord-holobac/internal/render"
)

// Fallbacks for unset game config values.
const (
	defaultSessionCacheSize = 256
	defaultSessionTimeout   = 120 * time.Second
	defaultDealerDrawDelay  = time.Second
)

// Module provides the game service dependencies.
var Module = fx.Module("holobac",
	fx.Provide(
		NewSessionManagerProvider,
		NewEmbedBuilderProvider,
		NewInteractionManager,
		NewServiceProvider,
	),
)

// NewSessionManagerProvider creates a SessionManager with config-derived
// sizing.
func NewSessionManagerProvider(cfg *config.Config, logger *zap.Logger) (*SessionManager, error) {
	cacheSize := cfg.Game.SessionCacheSize
	if cacheSize <= 0 {
		logger.Warn("Game SessionCacheSize is not configured or is invalid, defaulting",
			zap.Int("configuredSize", cacheSize),
			zap.Int("default", defaultSessionCacheSize))
		cacheSize = defaultSessionCacheSize
	}

	timeout := time.Duration(cfg.Game.SessionTimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = defaultSessionTimeout
	}

	return NewSessionManager(logger, cacheSize, cfg.Game.NumDecks, timeout)
}

// NewEmbedBuilderProvider creates the EmbedBuilder from config.
func NewEmbedBuilderProvider(cfg *config.Config, renderer render.HandRenderer, logger *zap.Logger) *EmbedBuilder {
	return NewEmbedBuilder(logger, renderer, cfg.Game.ThumbnailURL)
}

// NewServiceProvider creates the game Service from config.
func NewServiceProvider(
	cfg *config.Config,
	logger *zap.Logger,
	sessions *SessionManager,
	embeds *EmbedBuilder,
	interactions InteractionManager,
) *Service {
	dealerDelay := time.Duration(cfg.Game.DealerDrawDelayMs) * time.Millisecond
	if dealerDelay <= 0 {
		dealerDelay = defaultDealerDrawDelay
	}

	return NewService(logger, sessions, embeds, interactions, cfg.Game.DefaultBet, dealerDelay)
}
