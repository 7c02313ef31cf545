package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"

	"github.com/luca-patrignani/blackjack/config"
	"github.com/luca-patrignani/blackjack/domain/blackjack"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(1)
	}

	pterm.DefaultLogger.Level = logLevel(cfg.LogLevel)
	handler := pterm.NewSlogHandler(&pterm.DefaultLogger)
	logger := slog.New(handler)

	pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("Black", pterm.FgRed.ToStyle()),
		putils.LettersFromStringWithStyle("jack", pterm.FgDarkGray.ToStyle()),
	).Render()

	g := game{
		cfg:    cfg,
		logger: logger,
		in:     consolePrompter{},
		newDeck: func() (blackjack.Deck, error) {
			spinner, _ := pterm.DefaultSpinner.Start("Shuffling the cards ...")
			d, err := blackjack.NewBlackjackDeck(cfg.Shuffler())
			if err != nil {
				spinner.Fail()
				return nil, err
			}
			spinner.Success()
			return d, nil
		},
	}
	if _, _, err := g.play(); err != nil {
		logger.Error("round aborted", "err", err)
		os.Exit(1)
	}
}

func logLevel(level string) pterm.LogLevel {
	switch level {
	case "trace":
		return pterm.LogLevelTrace
	case "debug":
		return pterm.LogLevelDebug
	case "warn":
		return pterm.LogLevelWarn
	case "error":
		return pterm.LogLevelError
	default:
		return pterm.LogLevelInfo
	}
}

// prompter reads the decisions of the players.
type prompter interface {
	Names() (string, error)
	Bet(name string) (string, error)
	Command(name string) (string, error)
}

type consolePrompter struct{}

func (consolePrompter) Names() (string, error) {
	return pterm.DefaultInteractiveTextInput.WithDefaultText("Enter the player names, separated by commas").Show()
}

func (consolePrompter) Bet(name string) (string, error) {
	return pterm.DefaultInteractiveTextInput.WithDefaultText(fmt.Sprintf("How much does %s bet?", name)).Show()
}

func (consolePrompter) Command(name string) (string, error) {
	return pterm.DefaultInteractiveTextInput.WithDefaultText(fmt.Sprintf("%s, one more card? (y/n)", name)).Show()
}
