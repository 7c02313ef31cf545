package blackjack

type EventKind string

const (
	EventDeal       EventKind = "deal"
	EventBet        EventKind = "bet"
	EventHit        EventKind = "hit"
	EventStay       EventKind = "stay"
	EventBust       EventKind = "bust"
	EventDealerDraw EventKind = "dealer_draw"
	EventSettle     EventKind = "settle"
)

// DealerName identifies the dealer in events.
const DealerName = "dealer"

// Event is one action of a round, as handed to a Recorder.
type Event struct {
	RoundID string    `json:"round_id"`
	Kind    EventKind `json:"kind"`
	Player  string    `json:"player,omitempty"`
	Cards   []string  `json:"cards,omitempty"`
	Value   int       `json:"value,omitempty"`
	Amount  int64     `json:"amount,omitempty"`
	Outcome string    `json:"outcome,omitempty"`
}

// Recorder keeps the history of a round.
type Recorder interface {
	Record(e Event) error
}

func cardStrings(cards []Card) []string {
	s := make([]string, len(cards))
	for i, c := range cards {
		s[i] = c.String()
	}
	return s
}
