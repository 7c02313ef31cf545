package blackjack

import "fmt"

// Outcome is the result of one player against the dealer.
type Outcome int

const (
	BlackjackWin Outcome = iota
	Win
	Push
	Lose
	BustLose
)

// Outcomes lists every outcome, in presentation order.
var Outcomes = []Outcome{BlackjackWin, Win, Push, Lose, BustLose}

type outcomeInfo struct {
	label string
	// payout multiplier expressed in halves, so 1.5 stays an integer
	halves int64
}

var outcomeTable = map[Outcome]outcomeInfo{
	BlackjackWin: {label: "blackjack", halves: 3},
	Win:          {label: "win", halves: 2},
	Push:         {label: "push", halves: 0},
	Lose:         {label: "lose", halves: -2},
	BustLose:     {label: "bust", halves: -2},
}

// reverseTable presents a player's outcome from the dealer's side.
var reverseTable = map[Outcome]Outcome{
	BlackjackWin: Lose,
	Win:          Lose,
	Push:         Push,
	Lose:         Win,
	BustLose:     Win,
}

// Label is the human-facing name of the outcome.
func (o Outcome) Label() string {
	if info, ok := outcomeTable[o]; ok {
		return info.label
	}
	return fmt.Sprintf("outcome(%d)", int(o))
}

func (o Outcome) String() string {
	return o.Label()
}

// Multiplier is the signed payout multiplier applied to the bet.
func (o Outcome) Multiplier() float64 {
	return float64(outcomeTable[o].halves) / 2
}

// Dividend is floor(bet × multiplier). Bets are never negative and negative
// multipliers are whole numbers, so integer division floors. bet must be in
// [0, MaxBet] for the product to fit.
func (o Outcome) Dividend(bet int64) int64 {
	return bet * outcomeTable[o].halves / 2
}

// Reverse maps the outcome to the dealer's point of view.
func (o Outcome) Reverse() Outcome {
	return reverseTable[o]
}

// IsWin reports whether the outcome pays the player.
func (o Outcome) IsWin() bool {
	return o == Win || o == BlackjackWin
}

// Judge classifies a player's final hand against the dealer's. A busted player
// loses even when the dealer busts too.
func Judge(player *Player, dealer *Dealer) Outcome {
	p, d := player.Hand(), dealer.Hand()
	switch {
	case p.IsBust():
		return BustLose
	case p.IsBlackjack() && !d.IsBlackjack():
		return BlackjackWin
	case d.IsBust():
		return Win
	case d.IsBlackjack() && !p.IsBlackjack():
		return Lose
	case p.Value() > d.Value():
		return Win
	case p.Value() == d.Value():
		return Push
	default:
		return Lose
	}
}
