package blackjack

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/paulhankin/poker"
)

// Card suit constants (0-3)
const (
	Club    = uint8(poker.Club)    // ♣
	Diamond = uint8(poker.Diamond) // ♦
	Heart   = uint8(poker.Heart)   // ♥
	Spade   = uint8(poker.Spade)   // ♠
)

// Card rank constants for face cards and ace
const (
	Ace   = uint8(poker.Rank(1))
	Jack  = uint8(poker.Rank(11))
	Queen = uint8(poker.Rank(12))
	King  = uint8(poker.Rank(13))
)

// Card is an immutable playing card. Two Cards are equal when they are the same
// physical card.
type Card struct {
	pc poker.Card
}

// NewCard creates a new Card with validation.
//
// Parameters:
//   - suit: 0-3 (Club, Diamond, Heart, Spade)
//   - rank: 1-13 (Ace=1, 2-10=face value, Jack=11, Queen=12, King=13)
func NewCard(suit uint8, rank uint8) (Card, error) {
	pc, err := poker.MakeCard(poker.Suit(suit), poker.Rank(rank))
	if err != nil {
		return Card{}, fmt.Errorf("invalid card %d, %d: %w", suit, rank, err)
	}
	return Card{pc: pc}, nil
}

// MustCard is NewCard for constant cards; it panics on an invalid suit or rank.
func MustCard(suit uint8, rank uint8) Card {
	c, err := NewCard(suit, rank)
	if err != nil {
		panic(err)
	}
	return c
}

func (c Card) Suit() uint8 {
	return uint8(c.pc.Suit())
}

func (c Card) Rank() uint8 {
	return uint8(c.pc.Rank())
}

// Valid is false for the zero Card.
func (c Card) Valid() bool {
	return c.pc.Valid()
}

// IsAce reports whether the card counts as 1 or 11.
func (c Card) IsAce() bool {
	return c.Rank() == Ace
}

// BaseValue is the value of the card with an ace counted as 11.
func (c Card) BaseValue() int {
	switch r := c.Rank(); {
	case r == Ace:
		return 11
	case r >= Jack:
		return 10
	default:
		return int(r)
	}
}

var suitSymbols = map[poker.Suit]string{
	poker.Club:    "♣",
	poker.Diamond: "♦",
	poker.Heart:   "♥",
	poker.Spade:   "♠",
}

var faceNames = map[poker.Rank]string{
	poker.Rank(Ace):   "A",
	poker.Rank(Jack):  "J",
	poker.Rank(Queen): "Q",
	poker.Rank(King):  "K",
}

// String returns the rank abbreviation followed by the suit symbol, e.g. "A♥" or "10♦".
func (c Card) String() string {
	if !c.Valid() {
		return "??"
	}
	rank, ok := faceNames[c.pc.Rank()]
	if !ok {
		rank = strconv.Itoa(int(c.pc.Rank()))
	}
	return rank + suitSymbols[c.pc.Suit()]
}

// IntToCard converts a raw card number (1-52) to a Card. Card numbers map to suits in order
// (clubs, diamonds, hearts, spades) with ranks 1-13 within each suit.
func IntToCard(rawCard int) (Card, error) {
	if rawCard > 52 || rawCard < 1 {
		return Card{}, errors.New("the card to convert have an invalid value")
	}
	suit := uint8((rawCard - 1) / 13)
	rank := uint8((rawCard-1)%13 + 1)
	return NewCard(suit, rank)
}

func CardToInt(card Card) int {
	return int(card.Suit())*13 + int(card.Rank())
}
