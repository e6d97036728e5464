package game

// DealerStandScore is the score at which the dealer stops drawing.
const DealerStandScore = 24

// dealerJokerValues is the order in which the dealer tries Joker values,
// best first.
var dealerJokerValues = []int{12, 11, 10, 7, 6, 5, 4, 3, 2, 1}

// Dealer is the house participant. It draws mechanically until it reaches
// DealerStandScore and assigns drawn Jokers the best legal value.
type Dealer struct {
	Player
}

// NewDealer creates a dealer with an empty hand.
func NewDealer() *Dealer {
	return &Dealer{Player: Player{Name: "Dealer"}}
}

// Done reports whether the dealer's turn is over: standing or busted.
func (d *Dealer) Done() bool {
	return d.RoundScore >= DealerStandScore || d.Busted
}

// DrawFrom draws a single card from the shoe into the dealer's hand,
// assigning Jokers via AssignJokerValue. It returns the drawn card and
// false when the shoe is empty.
func (d *Dealer) DrawFrom(shoe *Shoe) (Card, bool) {
	card, ok := shoe.Draw()
	if !ok {
		return Card{}, false
	}

	jokerValue := 0
	if card.Joker {
		jokerValue = d.AssignJokerValue()
	}

	// Joker values from AssignJokerValue are always positive.
	_, _ = d.AddCard(card, jokerValue)

	return card, true
}

// Play runs the whole dealer turn: draw until standing, busted, or the shoe
// runs dry. It returns the final round score.
func (d *Dealer) Play(shoe *Shoe) int {
	for !d.Done() {
		if _, ok := d.DrawFrom(shoe); !ok {
			break
		}
	}

	return d.RoundScore
}

// AssignJokerValue picks the highest Joker value that keeps the dealer at or
// under BustLimit, falling back to 1 when every value busts.
func (d *Dealer) AssignJokerValue() int {
	for _, v := range dealerJokerValues {
		if d.RoundScore+v <= BustLimit {
			return v
		}
	}

	return 1
}
