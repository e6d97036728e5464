package game_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Oriyon-111111/go-discord-holobac/internal/game"
)

func TestDealer_AssignJokerValue(t *testing.T) {
	tests := []struct {
		name       string
		roundScore int
		want       int
	}{
		{"EmptyHandTakesTwelve", 0, 12},
		{"PicksBestThatFits", 20, 10},
		{"SmallGapTakesSmallValue", 28, 2},
		{"ExactFit", 29, 1},
		{"NothingFitsFallsBackToOne", 30, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := game.NewDealer()
			d.RoundScore = tt.roundScore

			assert.Equal(t, tt.want, d.AssignJokerValue())
		})
	}
}

func TestDealer_PlayStandsAtTwentyFour(t *testing.T) {
	shoe := game.NewStackedShoe(
		game.Card{Suit: game.SuitOro, Rank: 12},
		game.Card{Suit: game.SuitCopa, Rank: 10},
		game.Card{Suit: game.SuitBasto, Rank: 2},
		// Must not be drawn: dealer reaches 24 on the previous card.
		game.Card{Suit: game.SuitEspada, Rank: 7},
	)

	d := game.NewDealer()
	score := d.Play(shoe)

	assert.Equal(t, 24, score)
	assert.True(t, d.Done())
	assert.False(t, d.Busted)
	assert.Len(t, d.Hand, 3)
	assert.Equal(t, 1, shoe.Len())
}

func TestDealer_PlayAssignsJokersBestValue(t *testing.T) {
	shoe := game.NewStackedShoe(
		game.Card{Suit: game.SuitOro, Rank: 12},
		game.Card{Suit: game.SuitCopa, Rank: 10},
		// Score is 22 here; 12, 11 and 10 would all bust, so the Joker
		// should count 7, landing on 29.
		game.Card{Joker: true},
	)

	d := game.NewDealer()
	score := d.Play(shoe)

	assert.Equal(t, 29, score)
	require.Len(t, d.Hand, 3)
	assert.Equal(t, 7, d.Hand[2].Value)
	assert.False(t, d.Busted)
}

func TestDealer_PlayStopsOnEmptyShoe(t *testing.T) {
	shoe := game.NewStackedShoe(game.Card{Suit: game.SuitOro, Rank: 5})

	d := game.NewDealer()
	score := d.Play(shoe)

	assert.Equal(t, 5, score)
	assert.False(t, d.Done())
	assert.Equal(t, 0, shoe.Len())
}

func TestDealer_PlayCanBust(t *testing.T) {
	shoe := game.NewStackedShoe(
		game.Card{Suit: game.SuitOro, Rank: 12},
		game.Card{Suit: game.SuitCopa, Rank: 11},
		game.Card{Suit: game.SuitBasto, Rank: 12},
	)

	d := game.NewDealer()
	score := d.Play(shoe)

	assert.Equal(t, 35, score)
	assert.True(t, d.Busted)
	assert.True(t, d.Done())
}
