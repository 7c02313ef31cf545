package deck

import (
	"errors"
	"fmt"
)

// ErrExhausted is returned by Draw once every card of the deck has been handed out.
var ErrExhausted = errors.New("deck exhausted")

// StandardSize is the number of cards of a standard french deck.
const StandardSize = 52

// Shuffler produces a permutation of the raw card numbers it receives.
type Shuffler interface {
	Shuffle(cards []int) error
}

// Deck is a pool of raw card numbers (1..DeckSize) consumed without replacement.
// The order is fixed once, at construction, by the Shuffler.
type Deck struct {
	DeckSize      int
	cards         []int
	lastDrawnCard int
}

// New builds a deck holding the numbers 1..size and shuffles it.
func New(size int, shuffler Shuffler) (*Deck, error) {
	if size <= 0 {
		return nil, fmt.Errorf("invalid deck size %d", size)
	}
	cards := make([]int, size)
	for i := range cards {
		cards[i] = i + 1
	}
	if shuffler != nil {
		if err := shuffler.Shuffle(cards); err != nil {
			return nil, fmt.Errorf("shuffle deck: %w", err)
		}
	}
	return &Deck{
		DeckSize: size,
		cards:    cards,
	}, nil
}

// Draw returns the next raw card number.
func (d *Deck) Draw() (int, error) {
	if d.lastDrawnCard >= len(d.cards) {
		return 0, fmt.Errorf("draw after %d cards: %w", d.lastDrawnCard, ErrExhausted)
	}
	c := d.cards[d.lastDrawnCard]
	d.lastDrawnCard++
	return c, nil
}

// Remaining returns how many cards can still be drawn.
func (d *Deck) Remaining() int {
	return len(d.cards) - d.lastDrawnCard
}
