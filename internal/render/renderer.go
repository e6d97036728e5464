// Package render turns Holobac hands into PNG images by compositing the
// card art shipped with the bot.
package render

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strconv"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"
	xdraw "golang.org/x/image/draw"

	"github.com/Oriyon-111111/go-discord-holobac/internal/game"
)

// Card art geometry. Source art is 60x96 and is shown at 125%.
const (
	CardWidth   = 60
	CardHeight  = 96
	ScaleFactor = 1.25
	Spacing     = 10

	ScaledWidth  = int(CardWidth * ScaleFactor)
	ScaledHeight = int(CardHeight * ScaleFactor)
)

// jokerArt is the joker image relative to the deck directory. All joker
// cards share one piece of art.
var jokerArt = filepath.Join("comodine", "comodines1.png")

// HandRenderer renders a hand of cards into a single image.
type HandRenderer interface {
	// RenderHand lays the cards out horizontally and returns encoded PNG
	// bytes. An empty hand yields a single transparent card slot.
	RenderHand(hand []game.HandCard) ([]byte, error)
}

type cardRenderer struct {
	logger   *zap.Logger
	deckPath string
	cache    *lru.Cache[string, image.Image]
}

// NewCardRenderer creates a HandRenderer reading card art from deckPath.
// Decoded and scaled art is kept in an LRU cache of cacheSize entries.
func NewCardRenderer(logger *zap.Logger, deckPath string, cacheSize int) (HandRenderer, error) {
	if cacheSize <= 0 {
		cacheSize = 64
	}

	cache, err := lru.New[string, image.Image](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create card art cache: %w", err)
	}

	return &cardRenderer{
		logger:   logger.Named("card_renderer"),
		deckPath: deckPath,
		cache:    cache,
	}, nil
}

// CardImagePath maps a card to its art file under deckPath. Suits are
// lowercase directory names holding e.g. copa/copa6.png; jokers live in the
// comodine directory.
func CardImagePath(deckPath string, c game.Card) string {
	if c.Joker {
		return filepath.Join(deckPath, jokerArt)
	}

	suit := string(c.Suit)

	return filepath.Join(deckPath, suit, suit+strconv.Itoa(c.Rank)+".png")
}

func (r *cardRenderer) RenderHand(hand []game.HandCard) ([]byte, error) {
	if len(hand) == 0 {
		return encodePNG(image.NewRGBA(image.Rect(0, 0, ScaledWidth, ScaledHeight)))
	}

	images := make([]image.Image, 0, len(hand))
	for _, hc := range hand {
		img, err := r.cardImage(hc.Card)
		if err != nil {
			return nil, err
		}
		images = append(images, img)
	}

	totalWidth := ScaledWidth*len(images) + Spacing*(len(images)-1)
	row := image.NewRGBA(image.Rect(0, 0, totalWidth, ScaledHeight))

	offset := 0
	for _, img := range images {
		rect := image.Rect(offset, 0, offset+ScaledWidth, ScaledHeight)
		xdraw.Draw(row, rect, img, img.Bounds().Min, xdraw.Over)
		offset += ScaledWidth + Spacing
	}

	return encodePNG(row)
}

// cardImage loads, scales, and caches the art for a single card.
func (r *cardRenderer) cardImage(c game.Card) (image.Image, error) {
	path := CardImagePath(r.deckPath, c)

	if img, ok := r.cache.Get(path); ok {
		return img, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open card art %s: %w", path, err)
	}
	defer f.Close()

	src, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode card art %s: %w", path, err)
	}

	scaled := image.NewRGBA(image.Rect(0, 0, ScaledWidth, ScaledHeight))
	xdraw.CatmullRom.Scale(scaled, scaled.Bounds(), src, src.Bounds(), xdraw.Over, nil)

	r.cache.Add(path, scaled)
	r.logger.Debug("Decoded and cached card art",
		zap.String("path", path),
		zap.Int("cacheLen", r.cache.Len()))

	return scaled, nil
}

func encodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode hand image: %w", err)
	}

	return buf.Bytes(), nil
}
