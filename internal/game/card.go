// Package game implements the Holobac card game: a Spanish-deck shoe,
// player and dealer hands, and the three-round match state machine.
package game

import "fmt"

// Suit is one of the four Spanish deck suits.
type Suit string

// Spanish deck suits.
const (
	SuitBasto  Suit = "basto"
	SuitCopa   Suit = "copa"
	SuitEspada Suit = "espada"
	SuitOro    Suit = "oro"
)

// Suits lists all suits in deck order.
var Suits = []Suit{SuitBasto, SuitCopa, SuitEspada, SuitOro}

// Ranks lists the ranks of a Spanish deck. There are no 8s or 9s.
var Ranks = []int{1, 2, 3, 4, 5, 6, 7, 10, 11, 12}

// Card is a single card. Jokers carry no suit or rank.
type Card struct {
	Suit  Suit
	Rank  int
	Joker bool
}

// String renders the card the way it is shown to players, e.g. "6 of copa".
func (c Card) String() string {
	if c.Joker {
		return "Joker"
	}

	return fmt.Sprintf("%d of %s", c.Rank, c.Suit)
}
