package main

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/pterm/pterm"

	"github.com/luca-patrignani/blackjack/config"
	"github.com/luca-patrignani/blackjack/domain/blackjack"
	"github.com/luca-patrignani/blackjack/ledger"
)

// game drives one round from the console.
type game struct {
	cfg     config.Config
	logger  *slog.Logger
	in      prompter
	newDeck func() (blackjack.Deck, error)
}

func (g game) play() (blackjack.Settlement, *ledger.Journal, error) {
	d, err := g.newDeck()
	if err != nil {
		return blackjack.Settlement{}, nil, err
	}
	journal := ledger.NewJournal()
	round, err := g.askRound(d, blackjack.WithLogger(g.logger), blackjack.WithRecorder(journal))
	if err != nil {
		return blackjack.Settlement{}, nil, err
	}

	if g.cfg.Betting {
		if err := g.bettingPhase(round); err != nil {
			return blackjack.Settlement{}, nil, err
		}
	}

	pterm.DefaultSection.Println("Initial deal")
	printTable(round, false)

	if err := g.playerPhase(round); err != nil {
		return blackjack.Settlement{}, nil, err
	}
	if err := dealerPhase(round); err != nil {
		return blackjack.Settlement{}, nil, err
	}

	pterm.DefaultSection.Println("Final hands")
	settlement, err := round.Settlement()
	if err != nil {
		return blackjack.Settlement{}, nil, err
	}
	printTable(round, true, resultPanel(settlement, g.cfg.Betting))

	if g.cfg.Journal {
		if err := journal.Verify(); err != nil {
			return settlement, journal, fmt.Errorf("round journal corrupted: %w", err)
		}
		if err := printJournal(journal); err != nil {
			g.logger.Warn("could not print the round journal", "err", err)
		}
	}
	return settlement, journal, nil
}

// askRound asks the names until they form a valid table.
func (g game) askRound(d blackjack.Deck, opts ...blackjack.RoundOption) (*blackjack.Round, error) {
	for {
		input, err := g.in.Names()
		if err != nil {
			return nil, err
		}
		names, err := blackjack.ParseNames(input)
		if err == nil {
			var round *blackjack.Round
			round, err = blackjack.NewRound(names, d, opts...)
			if err == nil {
				return round, nil
			}
		}
		if !errors.Is(err, blackjack.ErrValidation) {
			return nil, err
		}
		pterm.Error.Println(err.Error())
	}
}

func (g game) bettingPhase(round *blackjack.Round) error {
	for round.BettingPhaseActive() {
		name := round.CurrentBettingPlayerName()
		for {
			input, err := g.in.Bet(name)
			if err != nil {
				return err
			}
			amount, err := g.parseBet(input)
			if err == nil {
				err = round.PlaceBet(amount)
			}
			if err == nil {
				break
			}
			if !errors.Is(err, blackjack.ErrValidation) {
				return err
			}
			pterm.Error.Println(err.Error())
		}
	}
	return nil
}

func (g game) parseBet(input string) (int64, error) {
	amount, err := strconv.ParseInt(strings.TrimSpace(input), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("bet %q is not a number: %w", input, blackjack.ErrValidation)
	}
	if amount <= 0 || amount > g.cfg.MaxBet {
		return 0, fmt.Errorf("bet must be between 1 and %d, got %d: %w", g.cfg.MaxBet, amount, blackjack.ErrValidation)
	}
	return amount, nil
}

func (g game) playerPhase(round *blackjack.Round) error {
	for round.PlayerPhaseActive() {
		name := round.CurrentActionablePlayerName()
		cmd, err := g.askCommand(name)
		if err != nil {
			return err
		}
		if err := round.ApplyCommand(cmd); err != nil {
			return err
		}
		pterm.Println(playerLine(round.CurrentPlayer()))
	}
	return nil
}

func (g game) askCommand(name string) (blackjack.Command, error) {
	for {
		input, err := g.in.Command(name)
		if err != nil {
			return "", err
		}
		cmd, err := blackjack.ParseCommand(input)
		if err == nil {
			return cmd, nil
		}
		pterm.Error.Println(err.Error())
	}
}

func dealerPhase(round *blackjack.Round) error {
	for round.DealerCanDraw() {
		if err := round.DealerDraw(); err != nil {
			return err
		}
		pterm.Info.Printfln("The dealer has %d or less and draws one more card.", blackjack.DealerStandValue-1)
	}
	return nil
}
