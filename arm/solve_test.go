package arm

import (
	"testing"
	"time"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tasssadar/armsolver/angle"
)

// canonicalArm builds the two-segment configuration used throughout
// spec.md §8's worked scenarios (S1-S6): body 60×110, offset (0,20),
// segment0 length 110 with rel_stops(-1.7, 0), segment1 length 140
// with rel_stops(0.523599, π-0.261799), abs_stops(-0.35, π),
// base_rel_stops(0.7, 2.8).
func canonicalArm() (ArmDefinition, []Segment) {
	seg0 := SegmentDefinition{
		Length: 110,
		RelMin: angle.Rad(-1.7), RelMax: angle.Rad(0),
		AbsMin: angle.Rad(-math32.Pi), AbsMax: angle.Rad(math32.Pi),
		BaseRelMin: angle.Rad(-math32.Pi), BaseRelMax: angle.Rad(math32.Pi),
	}
	seg1 := SegmentDefinition{
		Length: 140,
		RelMin: angle.Rad(0.523599), RelMax: angle.Rad(math32.Pi - 0.261799),
		AbsMin: angle.Rad(-0.35), AbsMax: angle.Rad(math32.Pi),
		BaseRelMin: angle.Rad(0.7), BaseRelMax: angle.Rad(2.8),
	}
	def := ArmDefinition{
		BodyHeight: 60, BodyRadius: 110,
		ArmOffsetX: 0, ArmOffsetY: 20,
		Segments: []SegmentDefinition{seg0, seg1},
	}
	segments := []Segment{
		{RelativeAngle: angle.Rad(-math32.Pi / 2)},
		{RelativeAngle: angle.Rad(-math32.Pi / 2)},
	}
	return def, segments
}

func withinRelStops(t *testing.T, def ArmDefinition, segments []Segment) {
	t.Helper()
	for i, seg := range segments {
		d := def.Segments[i]
		assert.GreaterOrEqual(t, seg.RelativeAngle.Rad(), d.RelMin.Rad()-1e-4)
		assert.LessOrEqual(t, seg.RelativeAngle.Rad(), d.RelMax.Rad()+1e-4)
	}
}

func TestSolve_S1_ConvergesStraightDown(t *testing.T) {
	def, segments := canonicalArm()

	ok := Solve(def, segments, 0, -200)

	require.True(t, ok)
	ForwardKinematics(def, segments)
	last := segments[len(segments)-1]
	dx, dy := float64(last.TipX-0), float64(last.TipY-(-200))
	assert.LessOrEqual(t, dx*dx+dy*dy, 100.0)
	withinRelStops(t, def, segments)
}

func TestSolve_S2_ConvergesToSide(t *testing.T) {
	def, segments := canonicalArm()

	ok := Solve(def, segments, 200, -50)

	require.True(t, ok)
	ForwardKinematics(def, segments)
	last := segments[len(segments)-1]
	r := math32.Sqrt(float32(last.TipX*last.TipX + last.TipY*last.TipY))
	assert.LessOrEqual(t, r, float32(110+140+10))
}

func TestSolve_S3_UnreachablePastLeftLimit(t *testing.T) {
	def, segments := canonicalArm()

	ok := Solve(def, segments, -300, -300)

	assert.False(t, ok)
	withinRelStops(t, def, segments)
	// No segment's tip penetrates the body exclusion zone.
	for _, seg := range segments {
		if seg.TipX < def.BodyLeft() {
			assert.LessOrEqual(t, seg.TipY, def.BodyYMin())
		}
	}
}

func TestSolve_S4_ClipsTargetBelowLeftEdge(t *testing.T) {
	def, _ := canonicalArm()
	// x=10 is left of BodyLeft (110); y=100 is above BodyYMin (20), so
	// the target is pulled down to the bottom edge of the exclusion zone.
	tx, ty := projectTarget(def, 10, 100)
	assert.Equal(t, int32(10), tx)
	assert.Equal(t, int32(def.BodyYMin()), ty)
}

func TestSolve_S5_ClipsTargetAboveRightEdge(t *testing.T) {
	def, _ := canonicalArm()
	// x=200 is at/right of BodyLeft (110); y=100 is above BodyYMax (80),
	// so the target is pulled down to the top edge of the exclusion zone.
	tx, ty := projectTarget(def, 200, 100)
	assert.Equal(t, int32(200), tx)
	assert.Equal(t, int32(def.BodyYMax()), ty)
}

func TestSolve_ProjectTarget_LeavesReachableTargetsUntouched(t *testing.T) {
	def, _ := canonicalArm()
	tx, ty := projectTarget(def, -10, 10)
	assert.Equal(t, int32(-10), tx)
	assert.Equal(t, int32(10), ty)
}

func TestSolve_S6_IdempotentAfterConvergence(t *testing.T) {
	def, segments := canonicalArm()

	ok := Solve(def, segments, 0, -200)
	require.True(t, ok)

	snapshot := make([]Segment, len(segments))
	copy(snapshot, segments)

	ok2 := Solve(def, segments, 0, -200)
	require.True(t, ok2)

	for i := range segments {
		assert.InDelta(t, snapshot[i].RelativeAngle.Rad(), segments[i].RelativeAngle.Rad(), 1e-4)
	}
}

func TestSolve_TargetAtEndEffectorConvergesImmediately(t *testing.T) {
	def, segments := canonicalArm()
	ForwardKinematics(def, segments)
	last := segments[len(segments)-1]

	before := make([]Segment, len(segments))
	copy(before, segments)

	ok := Solve(def, segments, last.TipX, last.TipY)

	require.True(t, ok)
	for i := range segments {
		assert.InDelta(t, before[i].RelativeAngle.Rad(), segments[i].RelativeAngle.Rad(), 1e-4)
	}
}

func TestSolve_ZeroSegmentsConvergesOnlyAtOrigin(t *testing.T) {
	def := ArmDefinition{}
	var segments []Segment

	assert.True(t, Solve(def, segments, 0, 0))
	assert.False(t, Solve(def, segments, 1, 0))
}

func TestSolve_BoundedIterationCount(t *testing.T) {
	def, segments := canonicalArm()
	// An unreachable target still returns within the documented bound;
	// this is a smoke test that Solve terminates promptly rather than
	// a literal iteration counter (Solve doesn't expose one).
	done := make(chan bool, 1)
	go func() {
		done <- Solve(def, segments, 100000, 100000)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Solve did not terminate promptly")
	}
}
