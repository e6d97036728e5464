package config

import (
	"fmt"
	"os"

	"github.com/diamondburned/arikawa/v3/discord"
	"gopkg.in/yaml.v3"
)

// DiscordConfig stores Discord specific configurations.
type DiscordConfig struct {
	BotToken      string             `yaml:"bot_token"`
	ApplicationID *discord.Snowflake `yaml:"application_id"`
	GuildIDs      []string           `yaml:"guild_ids"`
}

// GameConfig stores Holobac game and rendering configurations.
type GameConfig struct {
	// NumDecks is how many Spanish decks make up the shoe.
	NumDecks int `yaml:"num_decks"`
	// CardDeckPath is the directory holding the card art.
	CardDeckPath string `yaml:"card_deck_path"`
	// ThumbnailURL is the static image shown in the game embed corner.
	ThumbnailURL string `yaml:"thumbnail_url"`
	// DefaultBet is the bet shown when /holobac is run without one.
	DefaultBet int `yaml:"default_bet"`

	SessionCacheSize      int `yaml:"session_cache_size"`
	SessionTimeoutSeconds int `yaml:"session_timeout_seconds"`
	DealerDrawDelayMs     int `yaml:"dealer_draw_delay_ms"`
	ImageCacheSize        int `yaml:"image_cache_size"`
}

// Config stores the application configuration.
type Config struct {
	Discord  DiscordConfig `yaml:"discord"`
	Game     GameConfig    `yaml:"game"`
	LogLevel string        `yaml:"log_level"`
}

// LoadConfig loads the configuration from the given file path. The
// DISCORD_BOT_TOKEN environment variable, when set, overrides the token from
// the file so deployments can keep it out of the config.
func LoadConfig(filePath string) (*Config, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}

	var cfg Config
	err = yaml.Unmarshal(data, &cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", filePath, err)
	}

	if token := os.Getenv("DISCORD_BOT_TOKEN"); token != "" {
		cfg.Discord.BotToken = token
	}

	return &cfg, nil
}
