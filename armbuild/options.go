package armbuild

import (
	"github.com/Tasssadar/armsolver/angle"
	"github.com/Tasssadar/armsolver/arm"
)

// SegmentOption configures a SegmentBuilder at Bone() call time,
// following the functional-options idiom used for servo.MotorOption
// elsewhere in this stack (WithPin, WithMicroseconds).
type SegmentOption func(*SegmentBuilder)

// WithRelStops is the functional-option form of SegmentBuilder.RelStops.
func WithRelStops(min, max angle.Angle) SegmentOption {
	return func(s *SegmentBuilder) { s.RelStops(min, max) }
}

// WithAbsStops is the functional-option form of SegmentBuilder.AbsStops.
func WithAbsStops(min, max angle.Angle) SegmentOption {
	return func(s *SegmentBuilder) { s.AbsStops(min, max) }
}

// WithBaseRelStops is the functional-option form of
// SegmentBuilder.BaseRelStops.
func WithBaseRelStops(min, max angle.Angle) SegmentOption {
	return func(s *SegmentBuilder) { s.BaseRelStops(min, max) }
}

// WithServoAngleFn is the functional-option form of
// SegmentBuilder.ServoAngleFn.
func WithServoAngleFn(fn arm.ServoAngleFn) SegmentOption {
	return func(s *SegmentBuilder) { s.ServoAngleFn(fn) }
}
