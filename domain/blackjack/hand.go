package blackjack

import (
	"slices"
	"strings"
)

const (
	// BlackjackValue is the best possible hand total.
	BlackjackValue = 21
	aceDemotion    = 10
)

// Hand is the ordered sequence of cards of one participant. It only grows.
type Hand struct {
	cards []Card
}

func NewHand(cards ...Card) Hand {
	return Hand{cards: slices.Clone(cards)}
}

// add returns the hand with c appended, never sharing storage with h.
func (h Hand) add(c Card) Hand {
	cards := make([]Card, len(h.cards), len(h.cards)+1)
	copy(cards, h.cards)
	return Hand{cards: append(cards, c)}
}

// Cards returns a copy of the cards in the order they were dealt.
func (h Hand) Cards() []Card {
	return slices.Clone(h.cards)
}

func (h Hand) Len() int {
	return len(h.cards)
}

// Value is the best total of the hand: every ace starts at 11 and is demoted to 1,
// one at a time, while the total exceeds 21.
func (h Hand) Value() int {
	total := 0
	aces := 0
	for _, c := range h.cards {
		total += c.BaseValue()
		if c.IsAce() {
			aces++
		}
	}
	for total > BlackjackValue && aces > 0 {
		total -= aceDemotion
		aces--
	}
	return total
}

func (h Hand) IsBust() bool {
	return h.Value() > BlackjackValue
}

// IsBlackjack is true only for exactly two cards totaling 21.
func (h Hand) IsBlackjack() bool {
	return len(h.cards) == 2 && h.Value() == BlackjackValue
}

func (h Hand) String() string {
	s := make([]string, len(h.cards))
	for i, c := range h.cards {
		s[i] = c.String()
	}
	return strings.Join(s, ", ")
}
