package arm

import (
	"github.com/chewxy/math32"

	"github.com/Tasssadar/armsolver/angle"
)

// maxOuterIterations bounds the outer CCD loop (spec.md §4.4, §8
// property 6).
const maxOuterIterations = 10

// convergenceToleranceSqr is the squared distance (mm²) within which
// the end effector is considered to have reached the target.
const convergenceToleranceSqr = 100

// degenerateLeverEps gates the very-small lever-arm / coincident
// target case (spec.md §4.4.b).
const degenerateLeverEps = 1e-4

// stagnationEps is the minimum (rotation magnitude × lever length)
// below which a joint's contribution doesn't count as "modified"
// (spec.md §4.4.g).
const stagnationEps = 1e-6

// Solve runs the CCD-style iterative solver: at most maxOuterIterations
// passes, each walking the chain tip→root and rotating every joint
// toward targetX, targetY. It mutates segments in place and returns
// true iff the end effector came within convergenceToleranceSqr mm² of
// the target. On false, segment state is left at the best iterate
// reached — not an error (spec.md §7).
func Solve(def ArmDefinition, segments []Segment, targetX, targetY int32) bool {
	if len(segments) == 0 {
		return targetX == 0 && targetY == 0
	}

	modified := false
	for iter := 0; iter < maxOuterIterations; iter++ {
		converged := solveIteration(def, segments, targetX, targetY, &modified)
		if converged {
			return true
		}
		if !modified {
			break
		}
	}
	return false
}

// solveIteration performs one tip→root CCD pass and reports whether
// the target was reached. If the end effector already lies within
// convergenceToleranceSqr of the target, it returns true without
// rotating any joint. *modified is reset and then set true iff at
// least one joint contributed a non-negligible rotation.
func solveIteration(def ArmDefinition, segments []Segment, targetX, targetY int32, modified *bool) bool {
	ForwardKinematics(def, segments)

	tx, ty := projectTarget(def, targetX, targetY)

	last := segments[len(segments)-1]
	endX, endY := last.TipX, last.TipY

	startDX := float32(tx - endX)
	startDY := float32(ty - endY)
	if startDX*startDX+startDY*startDY <= convergenceToleranceSqr {
		return true
	}

	*modified = false
	for i := len(segments) - 1; i >= 0; i-- {
		var bx, by int32
		if i > 0 {
			bx, by = segments[i-1].TipX, segments[i-1].TipY
		}

		toEndX := float32(endX - bx)
		toEndY := float32(endY - by)
		toEndMag := math32.Sqrt(toEndX*toEndX + toEndY*toEndY)

		toTargetX := float32(tx - bx)
		toTargetY := float32(ty - by)
		toTargetMag := math32.Sqrt(toTargetX*toTargetX + toTargetY*toTargetY)

		var cosRot, sinRot float32
		endTargetMag := toEndMag * toTargetMag
		if endTargetMag <= degenerateLeverEps {
			cosRot, sinRot = 1, 0
		} else {
			cosRot = (toEndX*toTargetX + toEndY*toTargetY) / endTargetMag
			sinRot = (toEndX*toTargetY - toEndY*toTargetX) / endTargetMag
		}

		rotAng := math32.Acos(clampUnit(cosRot))
		if sinRot < 0 {
			rotAng = -rotAng
		}

		effective := RotateSegment(def, segments, i, angle.Rad(rotAng))
		rot := effective.Rad()
		cosRot, sinRot = math32.Cos(rot), math32.Sin(rot)

		endX = bx + roundToInt32(cosRot*toEndX-sinRot*toEndY)
		endY = by + roundToInt32(sinRot*toEndX + cosRot*toEndY)

		dx := float32(tx - endX)
		dy := float32(ty - endY)
		if dx*dx+dy*dy <= convergenceToleranceSqr {
			return true
		}

		if math32.Abs(rot)*toEndMag > stagnationEps {
			*modified = true
		}
	}
	return false
}

// projectTarget pre-projects a target that falls inside the body
// exclusion rectangle onto its nearest reachable edge (spec.md §4.4,
// "Target pre-projection").
func projectTarget(def ArmDefinition, targetX, targetY int32) (int32, int32) {
	if targetX < def.BodyLeft() {
		if targetY > def.BodyYMin() {
			targetY = def.BodyYMin()
		}
	} else if targetY > def.BodyYMax() {
		targetY = def.BodyYMax()
	}
	return targetX, targetY
}

// clampUnit clips v into [-1, 1], guarding acos against floating-point
// overshoot.
func clampUnit(v float32) float32 {
	if v < -1 {
		return -1
	}
	if v > 1 {
		return 1
	}
	return v
}
