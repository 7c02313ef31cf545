package blackjack

// PlayerResult is the settlement of one seat.
type PlayerResult struct {
	Name     string
	Outcome  Outcome
	Bet      int64
	Dividend int64
}

// DealerResult aggregates the players' outcomes seen from the dealer's side.
type DealerResult struct {
	Outcomes []Outcome // reversed outcomes, in seat order
	Tally    map[Outcome]int
	Dividend int64
}

type Settlement struct {
	Players []PlayerResult // in seat order
	Dealer  DealerResult
}

// Settle judges every player against the dealer and computes the dividends.
// The dealer's dividend is the opposite of the players' total.
func Settle(dealer *Dealer, players []*Player) Settlement {
	s := Settlement{
		Players: make([]PlayerResult, 0, len(players)),
		Dealer: DealerResult{
			Outcomes: make([]Outcome, 0, len(players)),
			Tally:    make(map[Outcome]int),
		},
	}
	for _, p := range players {
		outcome := Judge(p, dealer)
		dividend := outcome.Dividend(p.BetAmount())
		s.Players = append(s.Players, PlayerResult{
			Name:     p.Name(),
			Outcome:  outcome,
			Bet:      p.BetAmount(),
			Dividend: dividend,
		})
		reversed := outcome.Reverse()
		s.Dealer.Outcomes = append(s.Dealer.Outcomes, reversed)
		s.Dealer.Tally[reversed]++
		s.Dealer.Dividend -= dividend
	}
	return s
}

// ByName indexes the player results by player name.
func (s Settlement) ByName() map[string]PlayerResult {
	m := make(map[string]PlayerResult, len(s.Players))
	for _, r := range s.Players {
		m[r.Name] = r
	}
	return m
}

// Labels maps each player name to the label of its outcome.
func (s Settlement) Labels() map[string]string {
	m := make(map[string]string, len(s.Players))
	for _, r := range s.Players {
		m[r.Name] = r.Outcome.Label()
	}
	return m
}

// DealerLabels returns the labels of the dealer's reversed outcomes, in seat order.
func (s Settlement) DealerLabels() []string {
	labels := make([]string, len(s.Dealer.Outcomes))
	for i, o := range s.Dealer.Outcomes {
		labels[i] = o.Label()
	}
	return labels
}
