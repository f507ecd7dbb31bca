// internal/ui/pulse.go
package ui

import (
	"math"
	"time"
)

// pulseScale даёт короткое «вздутие» элемента после клика.
func pulseScale(since time.Time) float32 {
	elapsed := time.Since(since).Seconds()
	return float32(1.0 + 0.3*math.Exp(-elapsed*8))
}

func insideCircle(px, py, cx, cy, r float32) bool {
	dx, dy := px-cx, py-cy
	return dx*dx+dy*dy <= r*r
}
