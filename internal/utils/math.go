// internal/utils/math.go
package utils

import "math"

// Lerp linearly interpolates between two values.
func Lerp(from, to, t float64) float64 {
	return from + (to-from)*t
}

// Approach сдвигает value к target на долю t и «прилипает», когда остаток меньше snap.
func Approach(value, target, t, snap float64) float64 {
	next := Lerp(value, target, t)
	if math.Abs(target-next) < snap {
		return target
	}
	return next
}
