package game

import (
	"fmt"
	"math/rand/v2"
)

// Rounds is the number of rounds in a match.
const Rounds = 3

// Outcome is the result of a completed match.
type Outcome int

// Match outcomes.
const (
	OutcomePlayerWin Outcome = iota
	OutcomeDealerWin
	OutcomeTie
)

// Match is the full state of one Holobac match: a shared shoe, the player
// and dealer hands, and the per-round scoreboard. Methods are not safe for
// concurrent use; callers serialize access per match.
type Match struct {
	Shoe   *Shoe
	Player *Player
	Dealer *Dealer

	// Round is 1-based and advances past Rounds when the match is over.
	Round int
	Bet   int

	PlayerScores [Rounds]int
	DealerScores [Rounds]int

	// Commentary is the running line shown under the player's hand.
	Commentary string

	// PlayerDone is set when the player's turn ended automatically
	// (opening HOLOBAC or exactly 30); the next action goes straight to
	// the dealer.
	PlayerDone bool

	// DealerRevealed controls whether the dealer's first card is shown.
	DealerRevealed bool
}

// NewMatch builds a shuffled shoe from numDecks decks and deals the opening
// hands for round one.
func NewMatch(numDecks, bet int, rng *rand.Rand) *Match {
	shoe := NewShoe(numDecks)
	shoe.Shuffle(rng)

	m := &Match{
		Shoe:   shoe,
		Player: NewPlayer("Player"),
		Dealer: NewDealer(),
		Round:  1,
		Bet:    bet,
	}
	m.dealOpening()

	return m
}

// NewMatchWithShoe starts a match over an existing shoe, typically a stacked
// one. The shoe is used as-is, without shuffling.
func NewMatchWithShoe(shoe *Shoe, bet int) *Match {
	m := &Match{
		Shoe:   shoe,
		Player: NewPlayer("Player"),
		Dealer: NewDealer(),
		Round:  1,
		Bet:    bet,
	}
	m.dealOpening()

	return m
}

// StartNextRound resets both hands and deals a fresh opening from the same
// shoe. The caller advances Round via RecordRound first.
func (m *Match) StartNextRound() {
	m.Player.ResetRound()
	m.Dealer.ResetRound()
	m.PlayerDone = false
	m.DealerRevealed = false
	m.dealOpening()
}

func (m *Match) dealOpening() {
	for range 2 {
		if card, ok := m.Shoe.Draw(); ok {
			m.Player.AddCard(card, PlayerJokerValue)
		}
	}

	for range 2 {
		if card, ok := m.Shoe.Draw(); ok {
			m.Dealer.AddCard(card, PlayerJokerValue)
		}
	}

	m.Commentary = fmt.Sprintf("Your score is %d.", m.Player.RoundScore)

	if m.Player.HasOpeningHolobac() {
		m.Player.RoundScore = HolobacScore
		m.PlayerDone = true
		m.Commentary = fmt.Sprintf("Two jokers! HOLOBAC! Your score is automatically %d.", HolobacScore)
	}
}

// PlayerDraw draws one card for the player, Jokers counting PlayerJokerValue,
// and updates the commentary. It returns false when the shoe is empty.
func (m *Match) PlayerDraw() (Card, bool) {
	card, ok := m.Shoe.Draw()
	if !ok {
		m.Commentary = "No more cards in the deck!"

		return Card{}, false
	}

	m.Player.AddCard(card, PlayerJokerValue)

	switch {
	case card.Joker:
		m.Commentary = fmt.Sprintf("You drew a Joker (as %d). Your score is %d.", PlayerJokerValue, m.Player.RoundScore)
	default:
		m.Commentary = fmt.Sprintf("You drew a %s. Your score is %d.", card, m.Player.RoundScore)
	}

	if m.Player.Busted {
		m.Commentary = fmt.Sprintf("Your score is %d. You busted!", m.Player.RoundScore)
	} else if m.Player.RoundScore == HolobacScore {
		m.Commentary = fmt.Sprintf("HOLOBAC! You have %d exactly!", HolobacScore)
	}

	return card, true
}

// RecordRound books both scores for the current round, busted hands counting
// zero, and advances to the next round. The caller runs the dealer first.
func (m *Match) RecordRound() {
	playerScore := m.Player.RoundScore
	if m.Player.Busted {
		playerScore = 0
	}

	dealerScore := m.Dealer.RoundScore
	if m.Dealer.Busted {
		dealerScore = 0
	}

	idx := m.Round - 1
	if idx >= 0 && idx < Rounds {
		m.PlayerScores[idx] = playerScore
		m.DealerScores[idx] = dealerScore
	}

	m.Round++
}

// Complete reports whether all rounds have been recorded.
func (m *Match) Complete() bool {
	return m.Round > Rounds
}

// Totals sums the recorded round scores.
func (m *Match) Totals() (player, dealer int) {
	for i := range Rounds {
		player += m.PlayerScores[i]
		dealer += m.DealerScores[i]
	}

	return player, dealer
}

// Outcome compares the totals. Only meaningful once Complete is true.
func (m *Match) Outcome() Outcome {
	player, dealer := m.Totals()
	switch {
	case player > dealer:
		return OutcomePlayerWin
	case player < dealer:
		return OutcomeDealerWin
	default:
		return OutcomeTie
	}
}

// DisplayRound is the round number shown to players, capped at Rounds so the
// final screen reads "Round 3 of 3".
func (m *Match) DisplayRound() int {
	return min(m.Round, Rounds)
}
