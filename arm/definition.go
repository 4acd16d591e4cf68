// Package arm implements the planar multi-segment inverse-kinematics
// solver: immutable arm/segment geometry, forward kinematics, the
// rotation-with-constraints cascade and the iterative CCD solver. The
// package is pure and synchronous — it holds no logger, performs no
// I/O, and never allocates once an Arm is constructed (see
// SPEC_FULL.md §5).
package arm

import "github.com/Tasssadar/armsolver/angle"

// ServoAngleFn maps a segment's absolute and relative pose to the
// angle a physical servo should be driven to. It must be pure; the
// core invokes it read-only from Arm.ServoAngle.
type ServoAngleFn func(absolute, relative angle.Angle) angle.Angle

// identityServoAngle is the default ServoAngleFn: the servo angle
// equals the segment's relative angle.
func identityServoAngle(_, relative angle.Angle) angle.Angle {
	return relative
}

// SegmentDefinition is the immutable geometry and limit set of one
// segment ("bone"). Zero value is not valid; build one through
// armbuild.
type SegmentDefinition struct {
	// Length is the segment's length in millimetres. Must be positive
	// for a segment to contribute usefully to the chain (see spec §7:
	// zero length is undefined-output, not validated here).
	Length int32

	// RelMin, RelMax bound this segment's angle relative to its
	// parent (or to the world frame for segment 0).
	RelMin, RelMax angle.Angle

	// AbsMin, AbsMax bound this segment's absolute angle in the world
	// frame.
	AbsMin, AbsMax angle.Angle

	// BaseRelMin, BaseRelMax bound (absolute angle of this segment) −
	// (absolute angle of segment 0). Meaningless for segment 0 itself.
	BaseRelMin, BaseRelMax angle.Angle

	// ServoAngleFn computes a servo-facing angle from this segment's
	// pose. Defaults to identity on the relative angle.
	ServoAngleFn ServoAngleFn
}

// ArmDefinition is the immutable geometry of an arm: body exclusion
// rectangle, root offset, and an ordered sequence of segment
// definitions.
type ArmDefinition struct {
	// BodyHeight, BodyRadius describe the body's exclusion rectangle
	// (both non-negative millimetres).
	BodyHeight, BodyRadius int32

	// ArmOffsetX, ArmOffsetY is the arm root's offset used in body
	// exclusion (both non-negative millimetres).
	ArmOffsetX, ArmOffsetY int32

	// Segments is the ordered chain, root (index 0) to tip.
	Segments []SegmentDefinition
}

// BodyLeft returns the left edge of the body exclusion rectangle:
// BodyRadius − ArmOffsetX.
func (d ArmDefinition) BodyLeft() int32 {
	return d.BodyRadius - d.ArmOffsetX
}

// BodyYMin returns the lower y boundary of the body rectangle:
// ArmOffsetY. The rectangle extends from BodyYMin to
// BodyYMin+BodyHeight.
func (d ArmDefinition) BodyYMin() int32 {
	return d.ArmOffsetY
}

// BodyYMax returns ArmOffsetY + BodyHeight, the upper y boundary of
// the body rectangle.
func (d ArmDefinition) BodyYMax() int32 {
	return d.ArmOffsetY + d.BodyHeight
}
