package arm

import (
	"github.com/chewxy/math32"

	"github.com/Tasssadar/armsolver/angle"
)

// ForwardKinematics recomputes every segment's AbsoluteAngle, TipX and
// TipY from the current RelativeAngle values, root (index 0) to tip,
// mirroring Bone::updatePos in the original C++ solver.
func ForwardKinematics(def ArmDefinition, segments []Segment) {
	var prevAbs angle.Angle
	var prevX, prevY int32
	for i := range segments {
		var abs angle.Angle
		if i == 0 {
			abs = angle.Clamp(segments[i].RelativeAngle)
		} else {
			abs = angle.Clamp(prevAbs.Add(segments[i].RelativeAngle))
		}

		length := float32(def.Segments[i].Length)
		x := prevX + roundToInt32(math32.Cos(abs.Rad())*length)
		y := prevY + roundToInt32(math32.Sin(abs.Rad())*length)

		segments[i].AbsoluteAngle = abs
		segments[i].TipX = x
		segments[i].TipY = y

		prevAbs = abs
		prevX = x
		prevY = y
	}
}

// roundToInt32 rounds v to the nearest integer, half away from zero,
// matching the platform round() used by the original C++ solver
// (RBControl_arm.cpp's roundCoord).
func roundToInt32(v float32) int32 {
	return int32(math32.Round(v))
}
