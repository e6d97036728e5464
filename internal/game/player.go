package game

import "errors"

const (
	// BustLimit is the score above which a hand busts.
	BustLimit = 30

	// HolobacScore is a perfect round score. Hitting it exactly ends the
	// player's turn, and two opening Jokers award it outright.
	HolobacScore = 30

	// PlayerJokerValue is the fixed value a Joker counts for in the
	// player's hand. Only the dealer picks Joker values freely.
	PlayerJokerValue = 10
)

// ErrJokerValueRequired is returned when a Joker is added without a value.
var ErrJokerValueRequired = errors.New("game: joker added without an assigned value")

// HandCard pairs a drawn card with the value it counts for. The distinction
// matters for Jokers, whose value is assigned at draw time.
type HandCard struct {
	Card  Card
	Value int
}

// Player tracks one participant's hand and score for the current round.
// The dealer embeds Player and shares all of this.
type Player struct {
	Name       string
	Hand       []HandCard
	RoundScore int
	Busted     bool
}

// NewPlayer creates a player with an empty hand.
func NewPlayer(name string) *Player {
	return &Player{Name: name}
}

// ResetRound clears the hand and score for a fresh round.
func (p *Player) ResetRound() {
	p.Hand = nil
	p.RoundScore = 0
	p.Busted = false
}

// AddCard adds a card to the hand and updates the round score. Suited cards
// count their rank and jokerValue is ignored; Jokers count jokerValue, which
// must be positive. Crossing BustLimit marks the hand busted.
func (p *Player) AddCard(c Card, jokerValue int) (int, error) {
	value := c.Rank
	if c.Joker {
		if jokerValue <= 0 {
			return p.RoundScore, ErrJokerValueRequired
		}
		value = jokerValue
	}

	p.Hand = append(p.Hand, HandCard{Card: c, Value: value})
	p.RoundScore += value

	if p.RoundScore > BustLimit {
		p.Busted = true
	}

	return p.RoundScore, nil
}

// HasOpeningHolobac reports whether the hand is exactly two Jokers, the
// automatic 30-point opening.
func (p *Player) HasOpeningHolobac() bool {
	if len(p.Hand) != 2 {
		return false
	}

	for _, hc := range p.Hand {
		if !hc.Card.Joker {
			return false
		}
	}

	return true
}
