package blackjack

import (
	"fmt"
	"strings"
)

const (
	MinPlayers = 1
	MaxPlayers = 7
)

// PlayerSet is the turn queue of a round: a fixed seat order and a cursor on the
// player whose turn it is. Players are never added or removed after construction.
type PlayerSet struct {
	players []*Player
	cursor  int
}

// NewPlayerSet validates the seat list: between MinPlayers and MaxPlayers distinct
// names and no duplicates. The turn starts at the first seat.
func NewPlayerSet(players []*Player) (*PlayerSet, error) {
	names := make([]string, len(players))
	for i, p := range players {
		if p == nil {
			return nil, fmt.Errorf("seat %d is empty: %w", i, ErrValidation)
		}
		names[i] = p.Name()
	}
	if err := ValidateNames(names); err != nil {
		return nil, err
	}
	return &PlayerSet{players: append([]*Player(nil), players...)}, nil
}

// ValidateNames checks the player count, the uniqueness of the names and that none is blank.
func ValidateNames(names []string) error {
	distinct := make(map[string]struct{}, len(names))
	for _, n := range names {
		distinct[n] = struct{}{}
	}
	if len(distinct) < MinPlayers || len(distinct) > MaxPlayers {
		return fmt.Errorf("the number of players must be between %d and %d, got %d: %w",
			MinPlayers, MaxPlayers, len(distinct), ErrValidation)
	}
	if len(names) != len(distinct) {
		return fmt.Errorf("player names cannot be duplicated: %w", ErrValidation)
	}
	for i, n := range names {
		if strings.TrimSpace(n) == "" {
			return fmt.Errorf("name of player %d is blank: %w", i+1, ErrValidation)
		}
	}
	return nil
}

// CurrentTurn returns the player at the cursor without moving it.
func (s *PlayerSet) CurrentTurn() *Player {
	return s.players[s.cursor]
}

// Advance passes the turn to the next seat, wrapping around.
func (s *PlayerSet) Advance() {
	s.cursor = (s.cursor + 1) % len(s.players)
}

// AdvanceUntil passes the turn until condition holds for the current player, at most
// once around the table. When nobody satisfies it the cursor ends where it started.
func (s *PlayerSet) AdvanceUntil(condition func(*Player) bool) {
	for i := 0; i < len(s.players) && !condition(s.CurrentTurn()); i++ {
		s.Advance()
	}
}

// AnySatisfies reports whether at least one player satisfies condition.
func (s *PlayerSet) AnySatisfies(condition func(*Player) bool) bool {
	for _, p := range s.players {
		if condition(p) {
			return true
		}
	}
	return false
}

// BetCurrentAndAdvance sets the bet of the current player then passes the turn.
// On error the turn does not move.
func (s *PlayerSet) BetCurrentAndAdvance(amount int64) error {
	if err := s.CurrentTurn().Bet(amount); err != nil {
		return err
	}
	s.Advance()
	return nil
}

func (s *PlayerSet) Len() int {
	return len(s.players)
}

// Players returns the players in seat order, independently of the cursor.
func (s *PlayerSet) Players() []*Player {
	return append([]*Player(nil), s.players...)
}
