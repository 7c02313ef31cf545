package blackjack

import (
	"fmt"
	"math"
	"strings"
)

// DealerStandValue is the total from which the dealer stops drawing.
const DealerStandValue = 17

// MaxBet is the largest bet whose dividend fits in an int64.
const MaxBet = math.MaxInt64 / 3

// Participant is what players and the dealer have in common.
type Participant interface {
	Hand() Hand
	AddCard(c Card) error
	IsAbleToHit() bool
}

type State string

const (
	Active State = "active"
	Stayed State = "stayed"
	Busted State = "busted"
)

// Player is a named participant who decides to hit or stay and may place one bet.
type Player struct {
	name   string
	hand   Hand
	state  State
	bet    int64
	hasBet bool
}

// NewPlayer creates an active player holding the two cards of the initial deal.
func NewPlayer(name string, cards [2]Card) (*Player, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("player name cannot be blank: %w", ErrValidation)
	}
	return &Player{
		name:  name,
		hand:  NewHand(cards[:]...),
		state: Active,
	}, nil
}

func (p *Player) Name() string {
	return p.name
}

func (p *Player) Hand() Hand {
	return p.hand
}

func (p *Player) State() State {
	return p.state
}

// AddCard is a hit: the card is appended and the player busts if the total exceeds 21.
func (p *Player) AddCard(c Card) error {
	if !p.IsAbleToHit() {
		return fmt.Errorf("%s cannot hit while %s: %w", p.name, p.state, ErrIllegalState)
	}
	p.hand = p.hand.add(c)
	if p.hand.IsBust() {
		p.state = Busted
	}
	return nil
}

// Stay ends the player's decisions for the round.
func (p *Player) Stay() error {
	if !p.IsAbleToHit() {
		return fmt.Errorf("%s cannot stay while %s: %w", p.name, p.state, ErrIllegalState)
	}
	p.state = Stayed
	return nil
}

func (p *Player) IsAbleToHit() bool {
	return p.state == Active
}

func (p *Player) IsBust() bool {
	return p.state == Busted
}

// Bet sets the amount the player wagers on the round. It can be set only once.
func (p *Player) Bet(amount int64) error {
	if amount < 0 {
		return fmt.Errorf("bet of %s must not be negative, got %d: %w", p.name, amount, ErrValidation)
	}
	if amount > MaxBet {
		return fmt.Errorf("bet of %s must not exceed %d, got %d: %w", p.name, int64(MaxBet), amount, ErrValidation)
	}
	if p.hasBet {
		return fmt.Errorf("%s already bet %d: %w", p.name, p.bet, ErrIllegalState)
	}
	p.bet = amount
	p.hasBet = true
	return nil
}

func (p *Player) IsAbleToBet() bool {
	return !p.hasBet
}

// BetAmount is the wagered amount, 0 when no bet was placed.
func (p *Player) BetAmount() int64 {
	return p.bet
}

// Dealer draws automatically while its total is below DealerStandValue.
type Dealer struct {
	hand Hand
}

func NewDealer(cards [2]Card) *Dealer {
	return &Dealer{hand: NewHand(cards[:]...)}
}

func (d *Dealer) Hand() Hand {
	return d.hand
}

func (d *Dealer) AddCard(c Card) error {
	if !d.IsAbleToHit() {
		return fmt.Errorf("dealer cannot draw at %d: %w", d.hand.Value(), ErrIllegalState)
	}
	d.hand = d.hand.add(c)
	return nil
}

func (d *Dealer) IsAbleToHit() bool {
	return d.hand.Value() < DealerStandValue
}

var (
	_ Participant = (*Player)(nil)
	_ Participant = (*Dealer)(nil)
)
