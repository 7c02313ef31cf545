// Package config reads the settings of the console game from the environment,
// optionally seeded by a .env file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/luca-patrignani/blackjack/domain/blackjack"
	"github.com/luca-patrignani/blackjack/domain/deck"
)

var ErrInvalidConfig = errors.New("invalid configuration")

const (
	ShuffleCrypto = "crypto"
	ShuffleSeeded = "seeded"

	DefaultMaxBet = 1_000_000
)

type Config struct {
	Shuffle  string
	Seed     int64
	Betting  bool
	MaxBet   int64
	LogLevel string
	Journal  bool
}

func Default() Config {
	return Config{
		Shuffle:  ShuffleCrypto,
		Betting:  true,
		MaxBet:   DefaultMaxBet,
		LogLevel: "info",
		Journal:  true,
	}
}

// Load reads the given .env files (".env" when none is given) into the process
// environment, without overriding variables already set, then parses it.
// Missing files are not an error.
func Load(files ...string) (Config, error) {
	_ = godotenv.Load(files...)
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from getenv, falling back to Default for unset variables.
func FromEnv(getenv func(string) string) (Config, error) {
	c := Default()

	if v := strings.ToLower(strings.TrimSpace(getenv("BLACKJACK_SHUFFLE"))); v != "" {
		if v != ShuffleCrypto && v != ShuffleSeeded {
			return Config{}, fmt.Errorf("BLACKJACK_SHUFFLE must be %s or %s, got %q: %w", ShuffleCrypto, ShuffleSeeded, v, ErrInvalidConfig)
		}
		c.Shuffle = v
	}
	if v := strings.TrimSpace(getenv("BLACKJACK_SEED")); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("BLACKJACK_SEED: %v: %w", err, ErrInvalidConfig)
		}
		c.Seed = seed
	}
	if v := strings.TrimSpace(getenv("BLACKJACK_BETTING")); v != "" {
		b, err := parseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("BLACKJACK_BETTING: %v: %w", err, ErrInvalidConfig)
		}
		c.Betting = b
	}
	if v := strings.TrimSpace(getenv("BLACKJACK_MAX_BET")); v != "" {
		maxBet, err := strconv.ParseInt(v, 10, 64)
		if err != nil || maxBet <= 0 || maxBet > blackjack.MaxBet {
			return Config{}, fmt.Errorf("BLACKJACK_MAX_BET must be between 1 and %d, got %q: %w", int64(blackjack.MaxBet), v, ErrInvalidConfig)
		}
		c.MaxBet = maxBet
	}
	if v := strings.ToLower(strings.TrimSpace(getenv("BLACKJACK_LOG_LEVEL"))); v != "" {
		switch v {
		case "trace", "debug", "info", "warn", "error":
			c.LogLevel = v
		default:
			return Config{}, fmt.Errorf("BLACKJACK_LOG_LEVEL: unknown level %q: %w", v, ErrInvalidConfig)
		}
	}
	if v := strings.TrimSpace(getenv("BLACKJACK_JOURNAL")); v != "" {
		b, err := parseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("BLACKJACK_JOURNAL: %v: %w", err, ErrInvalidConfig)
		}
		c.Journal = b
	}
	return c, nil
}

// Shuffler returns the deck shuffler selected by the configuration.
func (c Config) Shuffler() deck.Shuffler {
	if c.Shuffle == ShuffleSeeded {
		return deck.SeededShuffler{Seed: c.Seed}
	}
	return deck.NewCryptoShuffler()
}

func parseBool(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "1", "true", "yes", "y", "on":
		return true, nil
	case "0", "false", "no", "n", "off":
		return false, nil
	default:
		return false, fmt.Errorf("not a boolean: %q", s)
	}
}
