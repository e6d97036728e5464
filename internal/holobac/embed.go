// Package holobac wires the Holobac card game to Discord: per-user game
// sessions, the game embed with rendered card images, and the button-driven
// play flow.
package holobac

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/diamondburned/arikawa/v3/utils/sendpart"
	"go.uber.org/zap"

	"github.com/Oriyon-111111/go-discord-holobac/internal/game"
	"github.com/Oriyon-111111/go-discord-holobac/internal/render"
)

// HandImageName is the attachment filename the embed's image references.
const HandImageName = "player_hand.png"

// Embed titles and colors for the game states.
const (
	titleLive = "Let's Play Holobac - Good Luck!"
	titleWin  = "Well Played!"
	titleLoss = "Better Luck Next Time!"
	titleTie  = "It's a Tie!"

	colorLive discord.Color = 0x3498DB
	colorWin  discord.Color = 0x2ECC71
	colorLoss discord.Color = 0xE74C3C
	colorTie  discord.Color = 0x99AAB5
)

// EmbedBuilder renders match state into the single game embed and its
// attached hand image.
type EmbedBuilder struct {
	logger       *zap.Logger
	renderer     render.HandRenderer
	thumbnailURL string
}

// NewEmbedBuilder creates an EmbedBuilder using the given hand renderer.
func NewEmbedBuilder(logger *zap.Logger, renderer render.HandRenderer, thumbnailURL string) *EmbedBuilder {
	return &EmbedBuilder{
		logger:       logger.Named("embed_builder"),
		renderer:     renderer,
		thumbnailURL: thumbnailURL,
	}
}

// GameMessage builds the embed plus the player's hand image for the current
// match state. When the hand cannot be rendered the embed falls back to a
// text listing instead of failing the interaction.
func (b *EmbedBuilder) GameMessage(m *game.Match) (discord.Embed, []sendpart.File) {
	title, color := titleLive, colorLive
	if m.Complete() {
		switch m.Outcome() {
		case game.OutcomePlayerWin:
			title, color = titleWin, colorWin
		case game.OutcomeDealerWin:
			title, color = titleLoss, colorLoss
		case game.OutcomeTie:
			title, color = titleTie, colorTie
		}
	}

	playerField := fmt.Sprintf("%s\n(Round %d of %d)", m.Commentary, m.DisplayRound(), game.Rounds)

	embed := discord.Embed{
		Title: title,
		Color: color,
		Fields: []discord.EmbedField{
			{Name: "Table", Value: fmt.Sprintf("Medium (Bet: %d Credits)", m.Bet)},
			{Name: "Dealer's Hand", Value: DealerHandText(m)},
			{Name: "Round Scores", Value: scoreboard(m)},
			{Name: "Player's Hand", Value: playerField},
		},
	}

	if b.thumbnailURL != "" {
		embed.Thumbnail = &discord.EmbedThumbnail{URL: b.thumbnailURL}
	}

	data, err := b.renderer.RenderHand(m.Player.Hand)
	if err != nil {
		b.logger.Warn("Failed to render player hand, falling back to text", zap.Error(err))
		embed.Fields[3].Value = handText(m.Player.Hand) + "\n" + playerField

		return embed, nil
	}

	embed.Image = &discord.EmbedImage{URL: "attachment://" + HandImageName}

	files := []sendpart.File{{
		Name:   HandImageName,
		Reader: bytes.NewReader(data),
	}}

	return embed, files
}

// DealerHandText renders the dealer's hand line, e.g.
// "6 of copa • Joker(as 10)". Until the dealer has played, the hole card is
// masked.
func DealerHandText(m *game.Match) string {
	hand := m.Dealer.Hand
	if len(hand) == 0 {
		return "No cards."
	}

	parts := make([]string, 0, len(hand))
	for i, hc := range hand {
		if i == 0 && !m.DealerRevealed {
			parts = append(parts, "??")

			continue
		}
		parts = append(parts, cardText(hc))
	}

	return strings.Join(parts, " • ")
}

// handText is the plain listing used when image rendering fails.
func handText(hand []game.HandCard) string {
	if len(hand) == 0 {
		return "No cards."
	}

	parts := make([]string, 0, len(hand))
	for _, hc := range hand {
		parts = append(parts, cardText(hc))
	}

	return strings.Join(parts, " • ")
}

func cardText(hc game.HandCard) string {
	if hc.Card.Joker {
		return fmt.Sprintf("Joker(as %d)", hc.Value)
	}

	return hc.Card.String()
}

// scoreboard renders the two bracketed score lines for the embed.
func scoreboard(m *game.Match) string {
	return fmt.Sprintf("Dealer: %s\nPlayer: %s",
		scoreLine(m.DealerScores), scoreLine(m.PlayerScores))
}

func scoreLine(scores [game.Rounds]int) string {
	var sb strings.Builder
	total := 0
	for _, score := range scores {
		fmt.Fprintf(&sb, "[ %d ] ", score)
		total += score
	}
	fmt.Fprintf(&sb, "(Total: %d)", total)

	return sb.String()
}
