package blackjack

import (
	"errors"

	"github.com/luca-patrignani/blackjack/domain/deck"
)

var (
	// ErrValidation marks bad input: player names, command tokens, bet amounts.
	ErrValidation = errors.New("invalid input")
	// ErrIllegalState marks an operation called when the participant or the round
	// does not allow it, e.g. staying twice or betting twice.
	ErrIllegalState = errors.New("illegal state")
	// ErrDeckExhausted is returned when a draw is requested from an empty deck.
	ErrDeckExhausted = deck.ErrExhausted
)
