package blackjack

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"
)

// Round is one blackjack round: the players' phase, the dealer's phase and the
// settlement. It is driven by a single caller and is not safe for concurrent use.
type Round struct {
	id       string
	deck     Deck
	players  *PlayerSet
	dealer   *Dealer
	current  *Player
	recorder Recorder
	logger   *slog.Logger
	settled  bool
}

// RoundOption configures a Round built by NewRound.
type RoundOption func(Round) Round

// WithLogger sets the logger of the round. By default, or with a nil logger,
// nothing is logged.
func WithLogger(logger *slog.Logger) RoundOption {
	return func(r Round) Round {
		if logger == nil {
			return r
		}
		r.logger = logger
		return r
	}
}

// WithRecorder hands every action of the round to recorder.
func WithRecorder(recorder Recorder) RoundOption {
	return func(r Round) Round {
		r.recorder = recorder
		return r
	}
}

// WithID overrides the generated round identifier.
func WithID(id string) RoundOption {
	return func(r Round) Round {
		r.id = id
		return r
	}
}

// NewRound validates the names, then deals two cards to each player in order and
// two to the dealer. Nothing is drawn when the names are invalid.
func NewRound(names []string, deck Deck, opts ...RoundOption) (*Round, error) {
	if err := ValidateNames(names); err != nil {
		return nil, err
	}
	if deck == nil {
		return nil, fmt.Errorf("round needs a deck: %w", ErrValidation)
	}
	r := Round{
		id:     uuid.NewString(),
		deck:   deck,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		r = opt(r)
	}

	players := make([]*Player, 0, len(names))
	for _, name := range names {
		cards, err := deck.InitialDraw()
		if err != nil {
			return nil, fmt.Errorf("deal to %s: %w", name, err)
		}
		p, err := NewPlayer(name, cards)
		if err != nil {
			return nil, err
		}
		players = append(players, p)
	}
	cards, err := deck.InitialDraw()
	if err != nil {
		return nil, fmt.Errorf("deal to dealer: %w", err)
	}
	r.dealer = NewDealer(cards)
	r.players, err = NewPlayerSet(players)
	if err != nil {
		return nil, err
	}
	r.current = r.players.CurrentTurn()

	for _, p := range players {
		r.record(Event{Kind: EventDeal, Player: p.Name(), Cards: cardStrings(p.Hand().Cards()), Value: p.Hand().Value()})
	}
	r.record(Event{Kind: EventDeal, Player: DealerName, Cards: cardStrings(r.dealer.Hand().Cards()), Value: r.dealer.Hand().Value()})
	r.logger.Info("round dealt", "round", r.id, "players", len(players))
	return &r, nil
}

func (r *Round) ID() string {
	return r.id
}

// BettingPhaseActive is true while a player has not placed a bet.
func (r *Round) BettingPhaseActive() bool {
	return r.players.AnySatisfies((*Player).IsAbleToBet)
}

// CurrentBettingPlayerName passes the turn to the next player who has not bet.
func (r *Round) CurrentBettingPlayerName() string {
	r.players.AdvanceUntil((*Player).IsAbleToBet)
	r.current = r.players.CurrentTurn()
	return r.current.Name()
}

// PlaceBet sets the bet of the current player and passes the turn.
func (r *Round) PlaceBet(amount int64) error {
	p := r.players.CurrentTurn()
	if err := r.players.BetCurrentAndAdvance(amount); err != nil {
		return err
	}
	r.current = p
	r.record(Event{Kind: EventBet, Player: p.Name(), Amount: amount})
	r.logger.Debug("bet placed", "round", r.id, "player", p.Name(), "amount", amount)
	return nil
}

// PlayerPhaseActive is true while at least one player can still hit or stay.
func (r *Round) PlayerPhaseActive() bool {
	return r.players.AnySatisfies((*Player).IsAbleToHit)
}

// CurrentActionablePlayerName passes the turn to the next player able to hit, at most
// once around the table, and returns the name of the player holding the turn.
func (r *Round) CurrentActionablePlayerName() string {
	r.players.AdvanceUntil((*Player).IsAbleToHit)
	r.current = r.players.CurrentTurn()
	return r.current.Name()
}

// ApplyCommand applies a hit or a stay to the player holding the turn. The turn does
// not move: the same player keeps deciding until they stay or bust.
func (r *Round) ApplyCommand(cmd Command) error {
	p := r.players.CurrentTurn()
	r.current = p
	switch cmd {
	case Hit:
		if !p.IsAbleToHit() {
			return fmt.Errorf("%s cannot hit while %s: %w", p.Name(), p.State(), ErrIllegalState)
		}
		c, err := r.deck.Draw()
		if err != nil {
			return fmt.Errorf("hit for %s: %w", p.Name(), err)
		}
		if err := p.AddCard(c); err != nil {
			return err
		}
		r.record(Event{Kind: EventHit, Player: p.Name(), Cards: []string{c.String()}, Value: p.Hand().Value()})
		r.logger.Debug("hit", "round", r.id, "player", p.Name(), "card", c.String(), "value", p.Hand().Value())
		if p.IsBust() {
			r.record(Event{Kind: EventBust, Player: p.Name(), Value: p.Hand().Value()})
			r.logger.Debug("bust", "round", r.id, "player", p.Name())
		}
	case Stay:
		if err := p.Stay(); err != nil {
			return err
		}
		r.record(Event{Kind: EventStay, Player: p.Name(), Value: p.Hand().Value()})
		r.logger.Debug("stay", "round", r.id, "player", p.Name(), "value", p.Hand().Value())
	default:
		return fmt.Errorf("unknown command %q: %w", cmd, ErrValidation)
	}
	return nil
}

// DealerCanDraw is true while the dealer's total is below DealerStandValue.
func (r *Round) DealerCanDraw() bool {
	return r.dealer.IsAbleToHit()
}

// DealerDraw adds one card to the dealer's hand.
func (r *Round) DealerDraw() error {
	if !r.dealer.IsAbleToHit() {
		return fmt.Errorf("dealer cannot draw at %d: %w", r.dealer.Hand().Value(), ErrIllegalState)
	}
	c, err := r.deck.Draw()
	if err != nil {
		return fmt.Errorf("dealer draw: %w", err)
	}
	if err := r.dealer.AddCard(c); err != nil {
		return err
	}
	r.record(Event{Kind: EventDealerDraw, Player: DealerName, Cards: []string{c.String()}, Value: r.dealer.Hand().Value()})
	r.logger.Debug("dealer draw", "round", r.id, "card", c.String(), "value", r.dealer.Hand().Value())
	return nil
}

// Settlement judges every player once both phases are over. The settlement is
// recorded on the first call only.
func (r *Round) Settlement() (Settlement, error) {
	if r.PlayerPhaseActive() {
		return Settlement{}, fmt.Errorf("players are still deciding: %w", ErrIllegalState)
	}
	if r.DealerCanDraw() {
		return Settlement{}, fmt.Errorf("dealer must draw at %d: %w", r.dealer.Hand().Value(), ErrIllegalState)
	}
	s := Settle(r.dealer, r.players.Players())
	if r.settled {
		return s, nil
	}
	r.settled = true
	for _, res := range s.Players {
		r.record(Event{Kind: EventSettle, Player: res.Name, Outcome: res.Outcome.Label(), Amount: res.Dividend})
	}
	r.logger.Info("round settled", "round", r.id, "dealer_dividend", s.Dealer.Dividend)
	return s, nil
}

// Players returns the players in seat order.
func (r *Round) Players() []*Player {
	return r.players.Players()
}

func (r *Round) Dealer() *Dealer {
	return r.dealer
}

// CurrentPlayer is the player the last turn operation was about.
func (r *Round) CurrentPlayer() *Player {
	return r.current
}

func (r *Round) record(e Event) {
	if r.recorder == nil {
		return
	}
	e.RoundID = r.id
	if err := r.recorder.Record(e); err != nil {
		r.logger.Error("could not record round event", "round", r.id, "kind", e.Kind, "err", err)
	}
}
