package blackjack

import "testing"

func settledPlayer(name string, bet int64, cards ...Card) *Player {
	p := &Player{name: name, hand: NewHand(cards...), state: Stayed, bet: bet, hasBet: true}
	if p.hand.IsBust() {
		p.state = Busted
	}
	return p
}

func TestSettle(t *testing.T) {
	dealer := &Dealer{hand: NewHand(heartTen, heartEight)}
	players := []*Player{
		settledPlayer("win", 1000, spadeTen, spadeNine),
		settledPlayer("blackjack", 1001, spadeAce, spadeJack),
		settledPlayer("bust", 1000, spadeTen, spadeNine, spadeFive),
		settledPlayer("push", 1000, spadeTen, spadeEight),
		settledPlayer("lose", 1000, spadeTen, spadeSix),
	}
	s := Settle(dealer, players)

	expected := []PlayerResult{
		{Name: "win", Outcome: Win, Bet: 1000, Dividend: 1000},
		{Name: "blackjack", Outcome: BlackjackWin, Bet: 1001, Dividend: 1501},
		{Name: "bust", Outcome: BustLose, Bet: 1000, Dividend: -1000},
		{Name: "push", Outcome: Push, Bet: 1000, Dividend: 0},
		{Name: "lose", Outcome: Lose, Bet: 1000, Dividend: -1000},
	}
	if len(s.Players) != len(expected) {
		t.Fatalf("expected %d results, got %d", len(expected), len(s.Players))
	}
	for i, want := range expected {
		if s.Players[i] != want {
			t.Errorf("seat %d: expected %+v, got %+v", i, want, s.Players[i])
		}
	}
	if s.Dealer.Dividend != -501 {
		t.Fatalf("expected dealer dividend -501, got %d", s.Dealer.Dividend)
	}
	wantTally := map[Outcome]int{Lose: 2, Win: 2, Push: 1}
	for o, n := range wantTally {
		if s.Dealer.Tally[o] != n {
			t.Errorf("dealer %s: expected %d, got %d", o, n, s.Dealer.Tally[o])
		}
	}
}

func TestSettleDealerBust(t *testing.T) {
	dealer := &Dealer{hand: NewHand(heartTen, heartFive, heartNine)}
	players := []*Player{
		settledPlayer("stay", 100, spadeTen, spadeEight),
		settledPlayer("bust", 100, spadeTen, spadeNine, spadeFive),
	}
	s := Settle(dealer, players)
	byName := s.ByName()
	if byName["stay"].Outcome != Win {
		t.Fatalf("expected win against a busted dealer, got %s", byName["stay"].Outcome)
	}
	if byName["bust"].Outcome != BustLose {
		t.Fatalf("expected a busted player to lose, got %s", byName["bust"].Outcome)
	}
	if s.Dealer.Dividend != 0 {
		t.Fatalf("expected dealer dividend 0, got %d", s.Dealer.Dividend)
	}
}

func TestDealerTallyMirrorsPlayers(t *testing.T) {
	dealer := &Dealer{hand: NewHand(heartTen, heartNine)}
	players := []*Player{
		settledPlayer("a", 0, spadeTen, spadeNine),
		settledPlayer("b", 0, spadeAce, spadeJack),
		settledPlayer("c", 0, spadeTen, spadeEight),
		settledPlayer("d", 0, spadeTen, spadeNine, spadeFive),
	}
	s := Settle(dealer, players)
	playerWins, playerLosses, pushes := 0, 0, 0
	for _, r := range s.Players {
		switch {
		case r.Outcome.IsWin():
			playerWins++
		case r.Outcome == Push:
			pushes++
		default:
			playerLosses++
		}
		if r.Dividend != 0 {
			t.Fatalf("%s: without a bet the dividend must be 0, got %d", r.Name, r.Dividend)
		}
	}
	if s.Dealer.Tally[Win] != playerLosses || s.Dealer.Tally[Lose] != playerWins || s.Dealer.Tally[Push] != pushes {
		t.Fatalf("dealer tally %v does not mirror %d wins, %d losses, %d pushes", s.Dealer.Tally, playerWins, playerLosses, pushes)
	}
	labels := s.DealerLabels()
	want := []string{"push", "lose", "win", "win"}
	for i := range want {
		if labels[i] != want[i] {
			t.Fatalf("expected dealer labels %v, got %v", want, labels)
		}
	}
	if s.Labels()["b"] != "blackjack" {
		t.Fatalf("expected blackjack label, got %s", s.Labels()["b"])
	}
}
