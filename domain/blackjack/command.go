package blackjack

import (
	"fmt"
	"strings"
)

type Command string

const (
	Hit  Command = "hit"
	Stay Command = "stay"
)

// ParseCommand accepts y/h/hit for a hit and n/s/stay for a stay, ignoring case
// and surrounding spaces.
func ParseCommand(token string) (Command, error) {
	switch strings.ToLower(strings.TrimSpace(token)) {
	case "y", "h", "hit":
		return Hit, nil
	case "n", "s", "stay":
		return Stay, nil
	default:
		return "", fmt.Errorf("unknown command %q, expected y or n: %w", token, ErrValidation)
	}
}

// ParseNames splits a comma separated list of player names and trims each of them.
func ParseNames(input string) ([]string, error) {
	if strings.TrimSpace(input) == "" {
		return nil, fmt.Errorf("no player names given: %w", ErrValidation)
	}
	parts := strings.Split(input, ",")
	names := make([]string, 0, len(parts))
	for i, part := range parts {
		name := strings.TrimSpace(part)
		if name == "" {
			return nil, fmt.Errorf("name of player %d is blank: %w", i+1, ErrValidation)
		}
		names = append(names, name)
	}
	return names, nil
}
