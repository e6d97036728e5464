// Package render provides hand image rendering and its Fx module.
package render

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/Oriyon-111111/go-discord-holobac/internal/config"
)

// Module provides rendering dependencies.
var Module = fx.Module("render",
	fx.Provide(NewCardRendererProvider),
)

// NewCardRendererProvider creates a HandRenderer from config.
func NewCardRendererProvider(cfg *config.Config, logger *zap.Logger) (HandRenderer, error) {
	deckPath := cfg.Game.CardDeckPath
	if deckPath == "" {
		deckPath = "card_deck"
	}

	cacheSize := cfg.Game.ImageCacheSize
	if cacheSize <= 0 {
		logger.Warn("Game ImageCacheSize is not configured or is invalid, defaulting to 64",
			zap.Int("configuredSize", cacheSize))
		cacheSize = 64
	}

	return NewCardRenderer(logger, deckPath, cacheSize)
}
