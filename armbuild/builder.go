// Package armbuild implements the fluent configuration builder for
// package arm (spec.md §6). It is convenience only: Builder mutates a
// sequence of draft segment definitions and freezes them into an
// arm.Arm on Build. No reference cycles — a SegmentBuilder handle does
// not outlive the Builder it came from (see SPEC_FULL.md §9).
package armbuild

import (
	"github.com/chewxy/math32"

	"github.com/Tasssadar/armsolver/angle"
	"github.com/Tasssadar/armsolver/arm"
	"github.com/Tasssadar/armsolver/armlog"
)

// Builder accumulates an ArmDefinition one fluent call at a time.
type Builder struct {
	bodyHeight, bodyRadius int32
	armOffsetX, armOffsetY int32
	bones                  []*arm.SegmentDefinition
}

// New returns an empty Builder.
func New() *Builder {
	return &Builder{}
}

// Body sets the body exclusion rectangle's height and radius, in
// millimetres.
func (b *Builder) Body(heightMM, radiusMM int32) *Builder {
	b.bodyHeight = heightMM
	b.bodyRadius = radiusMM
	return b
}

// ArmOffset sets the arm root's offset used in body exclusion, in
// millimetres.
func (b *Builder) ArmOffset(xMM, yMM int32) *Builder {
	b.armOffsetX = xMM
	b.armOffsetY = yMM
	return b
}

// Bone appends a segment of the given length (millimetres) with
// default limits ((-π, π] on every bound, identity servo mapping) and
// returns a handle bound to its index for further configuration.
// Optional functional SegmentOptions may be supplied inline, following
// the same pattern as functional-option configuration elsewhere in
// this stack (armbuild.WithRelStops, etc.) — equivalent to chaining
// the matching SegmentBuilder method afterwards.
func (b *Builder) Bone(lengthMM int32, opts ...SegmentOption) *SegmentBuilder {
	lo, hi := angle.Rad(-math32.Pi), angle.Rad(math32.Pi)
	def := &arm.SegmentDefinition{
		Length:     lengthMM,
		RelMin:     lo, RelMax: hi,
		AbsMin:     lo, AbsMax: hi,
		BaseRelMin: lo, BaseRelMax: hi,
	}
	b.bones = append(b.bones, def)
	sb := &SegmentBuilder{def: def}
	for _, opt := range opts {
		opt(sb)
	}
	return sb
}

// Build freezes the accumulated drafts into an owned arm.Arm. Every
// limit is canonicalised with angle.Clamp first. Building
// never fails outright (spec.md §7: configuration is not validated by
// the core); Build repairs an inverted limit pair (min > max, which
// would otherwise make every candidate rotation on that axis
// rejectable) by swapping the pair back into order and logging a
// single warning, so a typo doesn't silently produce an arm that can
// never move.
func (b *Builder) Build() *arm.Arm {
	segments := make([]arm.SegmentDefinition, len(b.bones))
	for i, draft := range b.bones {
		segments[i] = *draft
		for _, lim := range []*angle.Angle{
			&segments[i].RelMin, &segments[i].RelMax,
			&segments[i].AbsMin, &segments[i].AbsMax,
			&segments[i].BaseRelMin, &segments[i].BaseRelMax,
		} {
			*lim = angle.Clamp(*lim)
		}
		repairInverted(&segments[i].RelMin, &segments[i].RelMax, i, "rel")
		repairInverted(&segments[i].AbsMin, &segments[i].AbsMax, i, "abs")
		repairInverted(&segments[i].BaseRelMin, &segments[i].BaseRelMax, i, "base_rel")
	}

	def := arm.ArmDefinition{
		BodyHeight: b.bodyHeight,
		BodyRadius: b.bodyRadius,
		ArmOffsetX: b.armOffsetX,
		ArmOffsetY: b.armOffsetY,
		Segments:   segments,
	}
	return arm.New(def)
}

func repairInverted(min, max *angle.Angle, segmentIndex int, kind string) {
	if min.Rad() <= max.Rad() {
		return
	}
	armlog.Log.Warn().
		Int("segment", segmentIndex).
		Str("stop", kind).
		Float32("min_rad", min.Rad()).
		Float32("max_rad", max.Rad()).
		Msg("inverted limit pair, swapping min/max")
	*min, *max = *max, *min
}

// SegmentBuilder configures one pending SegmentDefinition. It is a
// short-lived handle bound to the draft Builder.Bone just appended;
// don't retain it past the owning Builder's Build call.
type SegmentBuilder struct {
	def *arm.SegmentDefinition
}

// RelStops sets the limits on this segment's angle relative to its
// parent (or the world frame for segment 0).
func (s *SegmentBuilder) RelStops(min, max angle.Angle) *SegmentBuilder {
	s.def.RelMin, s.def.RelMax = min, max
	return s
}

// AbsStops sets the limits on this segment's absolute angle in the
// world frame.
func (s *SegmentBuilder) AbsStops(min, max angle.Angle) *SegmentBuilder {
	s.def.AbsMin, s.def.AbsMax = min, max
	return s
}

// BaseRelStops sets the limits on (this segment's absolute angle) −
// (segment 0's absolute angle). Meaningless on segment 0 itself.
func (s *SegmentBuilder) BaseRelStops(min, max angle.Angle) *SegmentBuilder {
	s.def.BaseRelMin, s.def.BaseRelMax = min, max
	return s
}

// ServoAngleFn sets the servo-angle mapping function.
func (s *SegmentBuilder) ServoAngleFn(fn arm.ServoAngleFn) *SegmentBuilder {
	s.def.ServoAngleFn = fn
	return s
}
