package game

import "math/rand/v2"

const (
	// JokersPerDeck is the number of Jokers added to a single deck.
	JokersPerDeck = 5

	// DefaultNumDecks is the number of decks combined into the playing shoe.
	DefaultNumDecks = 3
)

// Shoe is an ordered pile of cards that players draw from. A Holobac shoe
// combines several Spanish decks and persists across the rounds of a match.
type Shoe struct {
	cards []Card
}

// NewDeck builds a single ordered Spanish deck, optionally with Jokers.
// A deck holds 40 suited cards, 45 with Jokers.
func NewDeck(includeJokers bool) *Shoe {
	cards := make([]Card, 0, len(Suits)*len(Ranks)+JokersPerDeck)
	for _, suit := range Suits {
		for _, rank := range Ranks {
			cards = append(cards, Card{Suit: suit, Rank: rank})
		}
	}

	if includeJokers {
		for range JokersPerDeck {
			cards = append(cards, Card{Joker: true})
		}
	}

	return &Shoe{cards: cards}
}

// NewShoe combines numDecks Spanish decks (Jokers included) into one shoe.
// Non-positive numDecks falls back to DefaultNumDecks.
func NewShoe(numDecks int) *Shoe {
	if numDecks <= 0 {
		numDecks = DefaultNumDecks
	}

	shoe := &Shoe{}
	for range numDecks {
		shoe.cards = append(shoe.cards, NewDeck(true).cards...)
	}

	return shoe
}

// NewStackedShoe builds a shoe with a fixed card order, for simulations and
// scripted deals.
func NewStackedShoe(cards ...Card) *Shoe {
	return &Shoe{cards: append([]Card(nil), cards...)}
}

// Shuffle randomizes the shoe in place using the provided source.
func (s *Shoe) Shuffle(rng *rand.Rand) {
	rng.Shuffle(len(s.cards), func(i, j int) {
		s.cards[i], s.cards[j] = s.cards[j], s.cards[i]
	})
}

// Draw removes and returns the top card. The second return is false once
// the shoe is empty.
func (s *Shoe) Draw() (Card, bool) {
	if len(s.cards) == 0 {
		return Card{}, false
	}

	card := s.cards[0]
	s.cards = s.cards[1:]

	return card, true
}

// Len reports how many cards remain.
func (s *Shoe) Len() int {
	return len(s.cards)
}
