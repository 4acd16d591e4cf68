// Package angle implements a plane-angle scalar used throughout the arm
// solver. Values are stored in radians; the canonical range is (-π, π].
package angle

import "github.com/chewxy/math32"

// Angle is a plane angle, stored internally in radians.
//
// Angle is not automatically kept in canonical form: arithmetic
// (Add/Sub/Scale/Neg) can produce values outside (-π, π]. Call Clamp
// to normalise. Stored pose angles (SegmentDefinition limits,
// Segment.RelativeAngle/AbsoluteAngle) are canonical except
// transiently during arithmetic, per spec.
type Angle struct {
	rad float32
}

// Zero is the zero angle.
var Zero = Angle{}

// Rad constructs an Angle from a radian value.
func Rad(r float32) Angle {
	return Angle{rad: r}
}

// Deg constructs an Angle from a degree value.
func Deg(d float32) Angle {
	return Angle{rad: d * (math32.Pi / 180)}
}

// Rad returns the angle in radians.
func (a Angle) Rad() float32 {
	return a.rad
}

// Deg returns the angle in degrees.
func (a Angle) Deg() float32 {
	return a.rad * (180 / math32.Pi)
}

// Add returns a + b.
func (a Angle) Add(b Angle) Angle {
	return Angle{rad: a.rad + b.rad}
}

// Sub returns a - b.
func (a Angle) Sub(b Angle) Angle {
	return Angle{rad: a.rad - b.rad}
}

// Scale returns a * c.
func (a Angle) Scale(c float32) Angle {
	return Angle{rad: a.rad * c}
}

// Neg returns -a.
func (a Angle) Neg() Angle {
	return Angle{rad: -a.rad}
}

// Clamp reduces a modulo 2π into [-π, π]. The remainder is shifted by
// 2π only when it lies strictly below -π or above π, so a remainder of
// exactly -π is returned as -π rather than π.
func Clamp(a Angle) Angle {
	r := math32.Mod(a.rad, 2*math32.Pi)
	switch {
	case r < -math32.Pi:
		r += 2 * math32.Pi
	case r > math32.Pi:
		r -= 2 * math32.Pi
	}
	return Angle{rad: r}
}

// Clamp is a, canonicalised to (-π, π].
func (a Angle) Clamp() Angle {
	return Clamp(a)
}

// Min returns the lesser of a and b by raw radian value. Intended for
// use on already-canonicalised angles that don't straddle the wrap
// discontinuity (see spec §4.1: the solver never intentionally
// compares across it).
func Min(a, b Angle) Angle {
	if a.rad < b.rad {
		return a
	}
	return b
}

// Max returns the greater of a and b by raw radian value.
func Max(a, b Angle) Angle {
	if a.rad > b.rad {
		return a
	}
	return b
}

// ClampRange clips a into [lo, hi] (no wrap handling — a plain
// hard-clip of already-canonical values).
func ClampRange(a, lo, hi Angle) Angle {
	if a.rad < lo.rad {
		return lo
	}
	if a.rad > hi.rad {
		return hi
	}
	return a
}
