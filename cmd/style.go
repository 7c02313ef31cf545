package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pterm/pterm"

	"github.com/luca-patrignani/blackjack/domain/blackjack"
	"github.com/luca-patrignani/blackjack/ledger"
)

// FaceDown is the display of the dealer's hidden card
const FaceDown = "▓"

func cardString(c blackjack.Card) string {
	if c.Suit() == blackjack.Diamond || c.Suit() == blackjack.Heart {
		return pterm.LightRed(c.String())
	}
	return pterm.Black(c.String())
}

func handString(cards []blackjack.Card) string {
	s := make([]string, len(cards))
	for i, c := range cards {
		s[i] = cardString(c)
	}
	return pterm.BgGreen.Sprint(" " + strings.Join(s, " - ") + " ")
}

func stateString(p *blackjack.Player) string {
	switch p.State() {
	case blackjack.Busted:
		return pterm.LightRed("Bust")
	case blackjack.Stayed:
		return pterm.LightYellow("Stay")
	default:
		return pterm.LightGreen("Active")
	}
}

func printPlayerInfo(p *blackjack.Player) string {
	pbox := pterm.DefaultBox.WithHorizontalPadding(4).WithTopPadding(1).WithBottomPadding(1)
	return pbox.WithTitle(p.Name()).WithTitleTopLeft().Sprintf("Bet: %d\n%s\nTotal: %d\n%s",
		p.BetAmount(), handString(p.Hand().Cards()), p.Hand().Value(), stateString(p))
}

// printDealerInfo hides every card but the first one until reveal.
func printDealerInfo(d *blackjack.Dealer, reveal bool) string {
	pbox := pterm.DefaultBox.WithHorizontalPadding(10).WithTopPadding(1).WithBottomPadding(1)
	cards := d.Hand().Cards()
	if !reveal {
		return pbox.WithTitle("Dealer").WithTitleTopLeft().Sprintf("%s - %s", handString(cards[:1]), FaceDown)
	}
	return pbox.WithTitle("Dealer").WithTitleTopLeft().Sprintf("%s\nTotal: %d", handString(cards), d.Hand().Value())
}

func printTable(round *blackjack.Round, reveal bool, additionalPanel ...pterm.Panel) {
	var panels []pterm.Panel
	for _, p := range round.Players() {
		panels = append(panels, pterm.Panel{Data: printPlayerInfo(p)})
	}
	dashboard := []pterm.Panel{{Data: printDealerInfo(round.Dealer(), reveal)}}
	dashboard = append(dashboard, additionalPanel...)

	pterm.DefaultPanel.WithPanels([][]pterm.Panel{
		panels,
		dashboard,
	}).Render()
}

// playerLine is the one-line status printed after every decision.
func playerLine(p *blackjack.Player) string {
	return fmt.Sprintf("%s: %s (%d) %s", pterm.LightCyan(p.Name()), handString(p.Hand().Cards()), p.Hand().Value(), stateString(p))
}

func signed(n int64) string {
	if n > 0 {
		return "+" + strconv.FormatInt(n, 10)
	}
	return strconv.FormatInt(n, 10)
}

// dealerSummary counts the dealer's outcomes, e.g. "2 win 1 lose".
func dealerSummary(s blackjack.Settlement) string {
	var parts []string
	for _, o := range blackjack.Outcomes {
		if n := s.Dealer.Tally[o]; n > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", n, o.Label()))
		}
	}
	return strings.Join(parts, " ")
}

func resultLines(s blackjack.Settlement, betting bool) []string {
	var lines []string
	if betting {
		lines = append(lines, fmt.Sprintf("Dealer: %s (%s)", dealerSummary(s), signed(s.Dealer.Dividend)))
	} else {
		lines = append(lines, "Dealer: "+dealerSummary(s))
	}
	for _, r := range s.Players {
		if betting {
			lines = append(lines, fmt.Sprintf("%s: %s (%s)", r.Name, r.Outcome.Label(), signed(r.Dividend)))
		} else {
			lines = append(lines, fmt.Sprintf("%s: %s", r.Name, r.Outcome.Label()))
		}
	}
	return lines
}

func resultPanel(s blackjack.Settlement, betting bool) pterm.Panel {
	pbox := pterm.DefaultBox.WithHorizontalPadding(4).WithTopPadding(1).WithBottomPadding(1)
	return pterm.Panel{Data: pbox.WithTitle(pterm.LightGreen("|RESULT|")).WithTitleTopCenter().Sprint(strings.Join(resultLines(s, betting), "\n"))}
}

func journalData(j *ledger.Journal) pterm.TableData {
	data := pterm.TableData{{"#", "Event", "Player", "Cards", "Total", "Amount", "Outcome", "Hash"}}
	for i := 1; i < j.Len(); i++ {
		b, err := j.ByIndex(i)
		if err != nil {
			break
		}
		e := b.Event
		data = append(data, []string{
			strconv.Itoa(b.Index),
			string(e.Kind),
			e.Player,
			strings.Join(e.Cards, " "),
			strconv.Itoa(e.Value),
			strconv.FormatInt(e.Amount, 10),
			e.Outcome,
			b.Hash[:8],
		})
	}
	return data
}

func printJournal(j *ledger.Journal) error {
	pterm.DefaultSection.Println("Round journal")
	return pterm.DefaultTable.WithHasHeader().WithData(journalData(j)).Render()
}
