package arm

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"

	"github.com/Tasssadar/armsolver/angle"
)

func TestRotateSegment_RelativeStopClips(t *testing.T) {
	segDef := fullRangeSegment(100)
	segDef.RelMin, segDef.RelMax = angle.Rad(-0.5), angle.Rad(0.5)
	def := ArmDefinition{Segments: []SegmentDefinition{segDef}}
	segments := []Segment{{RelativeAngle: angle.Rad(0)}}

	// 0 + 10 rad wraps to about -2.57 rad before the stop is applied,
	// so the lower relative stop is the one that clips.
	eff := RotateSegment(def, segments, 0, angle.Rad(10))

	assert.InDelta(t, -0.5, segments[0].RelativeAngle.Rad(), 1e-5)
	assert.InDelta(t, -0.5, eff.Rad(), 1e-5)
}

func TestRotateSegment_AbsoluteStopClips(t *testing.T) {
	segDef := fullRangeSegment(100)
	segDef.AbsMin, segDef.AbsMax = angle.Rad(-0.3), angle.Rad(0.3)
	def := ArmDefinition{Segments: []SegmentDefinition{segDef}}
	segments := []Segment{{RelativeAngle: angle.Rad(0)}}

	// 0 + 10 rad wraps to about -2.57 rad, below the lower absolute stop.
	RotateSegment(def, segments, 0, angle.Rad(10))

	assert.InDelta(t, -0.3, segments[0].RelativeAngle.Rad(), 1e-5)
}

func TestRotateSegment_BodyCollisionRejectsWhole(t *testing.T) {
	// Single 100mm segment, body occupies x<50 above y=0..100.
	segDef := fullRangeSegment(100)
	def := ArmDefinition{
		BodyHeight: 100, BodyRadius: 50,
		Segments: []SegmentDefinition{segDef},
	}
	// Start pointing straight down (no collision), then try to rotate to
	// straight up, which would drive the tip into the exclusion zone.
	segments := []Segment{{RelativeAngle: angle.Rad(-math32.Pi / 2)}}
	ForwardKinematics(def, segments)
	before := segments[0].RelativeAngle

	eff := RotateSegment(def, segments, 0, angle.Rad(math32.Pi))

	assert.Equal(t, float32(0), eff.Rad())
	assert.Equal(t, before, segments[0].RelativeAngle)
}

func TestRotateSegment_NoCollisionWhenClearOfBody(t *testing.T) {
	segDef := fullRangeSegment(100)
	def := ArmDefinition{
		BodyHeight: 50, BodyRadius: 20,
		Segments: []SegmentDefinition{segDef},
	}
	segments := []Segment{{RelativeAngle: angle.Rad(0)}}

	eff := RotateSegment(def, segments, 0, angle.Rad(0.2))

	assert.InDelta(t, 0.2, eff.Rad(), 1e-5)
	assert.InDelta(t, 0.2, segments[0].RelativeAngle.Rad(), 1e-5)
}

func TestRotateSegment_BaseRelativeSideEffectOnAbsolute(t *testing.T) {
	// Pins the open question from spec.md §9: the base-relative stop
	// cascade mutates segments[0].AbsoluteAngle directly (not its
	// RelativeAngle), matching the original C++ solver's
	// Arm::rotateArm. This test exists specifically so a future change
	// to that choice shows up as a failing test, not a silent
	// behavioural drift.
	seg0 := fullRangeSegment(100)
	seg1 := fullRangeSegment(100)
	seg1.BaseRelMin, seg1.BaseRelMax = angle.Rad(0.2), angle.Rad(0.5)

	// A tall body keeps the rotated tip (about (145, 89)) clear of the
	// exclusion zone, so the sweep reaches the base-relative stop.
	def := ArmDefinition{BodyHeight: 1000, Segments: []SegmentDefinition{seg0, seg1}}
	segments := []Segment{
		{RelativeAngle: angle.Rad(0)},
		{RelativeAngle: angle.Rad(0.1)},
	}
	ForwardKinematics(def, segments)
	originalSeg0Rel := segments[0].RelativeAngle

	// Rotate segment 1 so its absolute angle (1.1) would exceed segment
	// 0's absolute angle (0) by more than base_rel_max (0.5).
	RotateSegment(def, segments, 1, angle.Rad(1.0))

	// segment 0's RelativeAngle is untouched by the side effect...
	assert.Equal(t, originalSeg0Rel.Rad(), segments[0].RelativeAngle.Rad())
	// ...but its AbsoluteAngle was overwritten by the cascade (1.1 - 0.5),
	// and does not match what forward kinematics would derive from
	// RelativeAngle until the next ForwardKinematics pass re-establishes it.
	assert.InDelta(t, 0.6, segments[0].AbsoluteAngle.Rad(), 1e-5)
	ForwardKinematics(def, segments)
	assert.InDelta(t, 0, segments[0].AbsoluteAngle.Rad(), 1e-5)
}

func TestRotateSegment_EffectiveRotationIsCanonical(t *testing.T) {
	segDef := fullRangeSegment(100)
	def := ArmDefinition{Segments: []SegmentDefinition{segDef}}
	segments := []Segment{{RelativeAngle: angle.Rad(3)}}

	eff := RotateSegment(def, segments, 0, angle.Rad(3))

	assert.Greater(t, eff.Rad(), -math32.Pi-1e-5)
	assert.LessOrEqual(t, eff.Rad(), math32.Pi+1e-5)
}
