package pick

import (
	"fmt"
	"strings"
)

// Strategy chooses one id out of several hit records.
type Strategy int

const (
	// LastWins keeps the id of the final record. This is what the original
	// demo does and what makes the driver defect visible.
	LastWins Strategy = iota
	// Nearest keeps the record with the smallest minimum depth.
	Nearest
)

var strategyNames = []string{"last-wins", "nearest"}

func (s Strategy) String() string {
	if s >= 0 && int(s) < len(strategyNames) {
		return strategyNames[s]
	}
	return fmt.Sprintf("strategy(%d)", int(s))
}

func (s Strategy) Next() Strategy {
	return (s + 1) % Strategy(len(strategyNames))
}

func ParseStrategy(name string) (Strategy, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range strategyNames {
		if n == name {
			return Strategy(i), nil
		}
	}
	return LastWins, fmt.Errorf("pick: unknown strategy %q", name)
}
