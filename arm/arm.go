package arm

import "github.com/Tasssadar/armsolver/angle"

// Arm owns an immutable ArmDefinition and a mutable Segment sequence,
// one segment per definition, in a fixed order. Arm is a
// self-contained value: concurrent access from multiple goroutines
// must be externally synchronised (see SPEC_FULL.md §5).
type Arm struct {
	def      ArmDefinition
	segments []Segment
}

// New builds an Arm from a frozen ArmDefinition, instantiating one
// Segment per definition at its initial pose (relative angle −π/2)
// and establishing the forward-kinematics invariant before returning.
//
// New is exported for callers that already have a fully-populated
// ArmDefinition and don't need the fluent builder (armbuild); most
// callers should prefer armbuild.Builder.Build.
func New(def ArmDefinition) *Arm {
	segments := make([]Segment, len(def.Segments))
	for i := range segments {
		segments[i] = initialSegment()
	}
	a := &Arm{def: def, segments: segments}
	ForwardKinematics(a.def, a.segments)
	return a
}

// Definition returns a read-only view of the arm's immutable geometry.
func (a *Arm) Definition() *ArmDefinition {
	return &a.def
}

// Segments returns a read-only view of the current segment state, in
// root-to-tip order.
func (a *Arm) Segments() []Segment {
	return a.segments
}

// Solve runs the iterative CCD solver against (targetX, targetY),
// mutating segment state in place. It returns true iff the end
// effector came within 10mm (squared distance ≤ 100) of the target
// (spec.md §6, §8).
func (a *Arm) Solve(targetX, targetY int32) bool {
	return Solve(a.def, a.segments, targetX, targetY)
}

// ServoAngle computes the servo-facing angle for segment i from its
// current pose, using the pure function held on its definition.
func (a *Arm) ServoAngle(i int) angle.Angle {
	def := a.def.Segments[i]
	fn := def.ServoAngleFn
	if fn == nil {
		fn = identityServoAngle
	}
	seg := a.segments[i]
	return fn(seg.AbsoluteAngle, seg.RelativeAngle)
}
