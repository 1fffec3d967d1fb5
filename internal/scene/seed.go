// Package scene generates the decorative visuals shown next to each heuristic.
// Everything here is a pure function of its arguments: the same heuristic index
// always produces the same sky, colors and mountain, on every platform.
package scene

import "math"

// DefaultSeedOffset is added to every hash input before taking the sine.
const DefaultSeedOffset = 1138

// Hasher maps a number to a reproducible value in [0, 1).
// The zero value is usable but has an offset of 0; use NewHasher or
// DefaultHasher for the deployed behavior.
type Hasher struct {
	Offset float64
}

// NewHasher creates a hasher with the given input offset.
func NewHasher(offset float64) Hasher {
	return Hasher{Offset: offset}
}

// DefaultHasher returns the hasher using DefaultSeedOffset.
func DefaultHasher() Hasher {
	return Hasher{Offset: DefaultSeedOffset}
}

// Hash returns the fractional part of sin(n+offset)*10000.
// Outputs may be scaled and fed back in; chains stay deterministic.
func (h Hasher) Hash(n float64) float64 {
	x := math.Sin(n+h.Offset) * 10000
	f := x - math.Floor(x)
	// A tiny negative x rounds up to exactly 1.
	if f >= 1 {
		return math.Nextafter(1, 0)
	}
	return f
}

// SeededHash hashes n with DefaultSeedOffset.
func SeededHash(n float64) float64 {
	return DefaultHasher().Hash(n)
}
