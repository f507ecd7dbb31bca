package glsel

import (
	"fmt"
	"strings"
)

// Quirk emulates a driver's select-mode behaviour.
type Quirk int

const (
	// QuirkNone clips primitives against the pick region as the GL spec asks.
	QuirkNone Quirk = iota
	// QuirkHitAll reports every primitive as a hit, whatever the pick matrix
	// says. Observed on Intel UHD drivers: one hit per circle drawn.
	QuirkHitAll
)

var quirkNames = map[Quirk]string{
	QuirkNone:   "none",
	QuirkHitAll: "hit-all",
}

func (q Quirk) String() string {
	if name, ok := quirkNames[q]; ok {
		return name
	}
	return fmt.Sprintf("quirk(%d)", int(q))
}

// Next cycles through the known quirks.
func (q Quirk) Next() Quirk {
	return (q + 1) % Quirk(len(quirkNames))
}

func ParseQuirk(s string) (Quirk, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for q, name := range quirkNames {
		if name == s {
			return q, nil
		}
	}
	return QuirkNone, fmt.Errorf("glsel: unknown quirk %q", s)
}
