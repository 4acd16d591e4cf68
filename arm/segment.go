package arm

import (
	"github.com/chewxy/math32"

	"github.com/Tasssadar/armsolver/angle"
)

// Segment is the mutable runtime state of one arm segment. Segments
// carry no back-reference to their SegmentDefinition; it is resolved
// by index through the owning Arm (see SPEC_FULL.md §9).
type Segment struct {
	// RelativeAngle is this segment's angle relative to its parent
	// (or the world frame for segment 0).
	RelativeAngle angle.Angle

	// AbsoluteAngle is this segment's angle in the world frame,
	// derived from RelativeAngle by forward kinematics.
	AbsoluteAngle angle.Angle

	// TipX, TipY is the position of this segment's far end, in
	// integer millimetres.
	TipX, TipY int32
}

// initialSegment returns a Segment in its starting pose: relative
// angle −π/2, absolute/tip state left at zero until the first forward
// kinematics pass.
func initialSegment() Segment {
	return Segment{RelativeAngle: angle.Rad(-math32.Pi / 2)}
}
