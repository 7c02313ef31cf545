package blackjack

import (
	"fmt"

	"github.com/luca-patrignani/blackjack/domain/deck"
)

// Deck supplies the cards of a round.
type Deck interface {
	// InitialDraw returns the two cards of an initial deal.
	InitialDraw() ([2]Card, error)
	// Draw returns one card.
	Draw() (Card, error)
}

// BlackjackDeck adapts a shuffled deck of raw card numbers to Cards and refuses to
// hand out the same physical card twice.
type BlackjackDeck struct {
	*deck.Deck
	dealt map[Card]struct{}
}

// NewBlackjackDeck builds a shuffled standard 52-card deck.
func NewBlackjackDeck(shuffler deck.Shuffler) (*BlackjackDeck, error) {
	d, err := deck.New(deck.StandardSize, shuffler)
	if err != nil {
		return nil, err
	}
	return &BlackjackDeck{
		Deck:  d,
		dealt: make(map[Card]struct{}, deck.StandardSize),
	}, nil
}

func (d *BlackjackDeck) Draw() (Card, error) {
	raw, err := d.Deck.Draw()
	if err != nil {
		return Card{}, err
	}
	card, err := IntToCard(raw)
	if err != nil {
		return Card{}, err
	}
	if _, ok := d.dealt[card]; ok {
		return Card{}, fmt.Errorf("card %s dealt twice: %w", card, ErrIllegalState)
	}
	d.dealt[card] = struct{}{}
	return card, nil
}

func (d *BlackjackDeck) InitialDraw() ([2]Card, error) {
	return initialDraw(d)
}

// FixedSequenceDeck deals a predetermined sequence of cards, front first.
type FixedSequenceDeck struct {
	cards []Card
	next  int
}

func NewFixedSequenceDeck(cards ...Card) *FixedSequenceDeck {
	return &FixedSequenceDeck{cards: append([]Card(nil), cards...)}
}

func (d *FixedSequenceDeck) Draw() (Card, error) {
	if d.next >= len(d.cards) {
		return Card{}, fmt.Errorf("draw after %d cards: %w", d.next, ErrDeckExhausted)
	}
	c := d.cards[d.next]
	d.next++
	return c, nil
}

func (d *FixedSequenceDeck) InitialDraw() ([2]Card, error) {
	return initialDraw(d)
}

// Remaining returns how many cards can still be drawn.
func (d *FixedSequenceDeck) Remaining() int {
	return len(d.cards) - d.next
}

type remainingDrawer interface {
	Draw() (Card, error)
	Remaining() int
}

// initialDraw takes two cards or none.
func initialDraw(d remainingDrawer) ([2]Card, error) {
	if d.Remaining() < 2 {
		return [2]Card{}, fmt.Errorf("initial deal needs 2 cards, %d left: %w", d.Remaining(), ErrDeckExhausted)
	}
	first, err := d.Draw()
	if err != nil {
		return [2]Card{}, err
	}
	second, err := d.Draw()
	if err != nil {
		return [2]Card{}, err
	}
	return [2]Card{first, second}, nil
}
