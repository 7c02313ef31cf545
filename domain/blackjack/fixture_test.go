package blackjack

var (
	dummyCard  = MustCard(Club, 2)
	spadeAce   = MustCard(Spade, Ace)
	spadeTwo   = MustCard(Spade, 2)
	spadeFive  = MustCard(Spade, 5)
	spadeSix   = MustCard(Spade, 6)
	spadeEight = MustCard(Spade, 8)
	spadeNine  = MustCard(Spade, 9)
	spadeTen   = MustCard(Spade, 10)
	spadeJack  = MustCard(Spade, Jack)
	heartAce   = MustCard(Heart, Ace)
	heartFive  = MustCard(Heart, 5)
	heartEight = MustCard(Heart, 8)
	heartNine  = MustCard(Heart, 9)
	heartTen   = MustCard(Heart, 10)
	heartKing  = MustCard(Heart, King)
)

func newTestPlayer(t interface{ Fatal(...any) }, name string, first, second Card) *Player {
	p, err := NewPlayer(name, [2]Card{first, second})
	if err != nil {
		t.Fatal(err)
	}
	return p
}
