package arm

import (
	"github.com/chewxy/math32"

	"github.com/Tasssadar/armsolver/angle"
)

// RotateSegment applies delta to segment i's relative angle and
// returns the rotation actually realised, in canonical range. It may
// return zero (rotation fully rejected by a body collision) or a
// value with reduced magnitude or opposite sign (clipped by a joint
// or world stop).
//
// This is the enforcement cascade described in spec.md §4.3:
//  1. relative stop on segment i,
//  2. a root→tip sweep carrying the candidate forward, applying the
//     absolute stop (segment i only), the body-collision check (every
//     segment), and the base-relative stop (segments beyond the
//     first) along the way,
//  3. commit on a successful sweep, or leave segment i untouched if
//     the sweep aborts on a body collision.
func RotateSegment(def ArmDefinition, segments []Segment, i int, delta angle.Angle) angle.Angle {
	segDef := def.Segments[i]
	oldRel := segments[i].RelativeAngle

	newRel := angle.Clamp(oldRel.Add(delta))
	newRel = angle.ClampRange(newRel, segDef.RelMin, segDef.RelMax)

	var x, y int32
	var prevAbs angle.Angle
	for k := range segments {
		a := segments[k].RelativeAngle
		if k == i {
			a = newRel
		}
		abs := angle.Clamp(prevAbs.Add(a))

		if k == i {
			if abs.Rad() < segDef.AbsMin.Rad() {
				abs = segDef.AbsMin
				newRel = angle.Clamp(abs.Sub(prevAbs))
			} else if abs.Rad() > segDef.AbsMax.Rad() {
				abs = segDef.AbsMax
				newRel = angle.Clamp(abs.Sub(prevAbs))
			}
		}

		length := float32(def.Segments[k].Length)
		nx := x + roundToInt32(math32.Cos(abs.Rad())*length)
		ny := y + roundToInt32(math32.Sin(abs.Rad())*length)

		if nx < def.BodyLeft() {
			if ny > def.BodyYMin() {
				return angle.Zero
			}
		} else if ny > def.BodyYMax() {
			return angle.Zero
		}

		if k > 0 {
			kDef := def.Segments[k]
			baseRelDelta := abs.Sub(segments[0].AbsoluteAngle)
			if baseRelDelta.Rad() < kDef.BaseRelMin.Rad() {
				segments[0].AbsoluteAngle = angle.Clamp(abs.Sub(kDef.BaseRelMin))
			} else if baseRelDelta.Rad() > kDef.BaseRelMax.Rad() {
				segments[0].AbsoluteAngle = angle.Clamp(abs.Sub(kDef.BaseRelMax))
			}
		}

		x, y = nx, ny
		prevAbs = abs
	}

	segments[i].RelativeAngle = newRel
	return angle.Clamp(newRel.Sub(oldRel))
}
