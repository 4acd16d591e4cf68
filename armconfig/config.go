// Package armconfig loads and saves arm profiles as YAML, for tools
// that want to keep body/segment geometry out of source (see
// SPEC_FULL.md §10.3). It is a convenience layer on top of armbuild:
// Load replays a YAML document onto a fresh armbuild.Builder and
// returns the built arm.Arm.
//
// The servo-angle function (arm.ServoAngleFn) is a Go closure and has
// no YAML representation; profiles loaded through this package always
// get the identity mapping. Callers that need a custom mapping should
// use armbuild directly, or call SegmentBuilder-style configuration
// after loading a Profile with LoadProfile instead of Load.
package armconfig

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Tasssadar/armsolver/angle"
	"github.com/Tasssadar/armsolver/arm"
	"github.com/Tasssadar/armsolver/armbuild"
)

// ErrNoSegments is returned when a profile names zero segments.
var ErrNoSegments = errors.New("armconfig: profile has no segments")

// LimitPair is a pair of bounds in degrees, as authored in a YAML
// profile (radians are an awkward unit for a human-edited file).
type LimitPair struct {
	Min float32 `yaml:"min_deg"`
	Max float32 `yaml:"max_deg"`
}

func (p LimitPair) angles() (angle.Angle, angle.Angle) {
	return angle.Deg(p.Min), angle.Deg(p.Max)
}

// SegmentProfile is one segment's YAML-serialisable geometry and
// limits.
type SegmentProfile struct {
	LengthMM int32      `yaml:"length_mm"`
	RelStops *LimitPair `yaml:"rel_stops,omitempty"`
	AbsStops *LimitPair `yaml:"abs_stops,omitempty"`
	BaseRel  *LimitPair `yaml:"base_rel_stops,omitempty"`
}

// Profile is the YAML document shape for a complete arm.
type Profile struct {
	BodyHeightMM int32            `yaml:"body_height_mm"`
	BodyRadiusMM int32            `yaml:"body_radius_mm"`
	ArmOffsetXMM int32            `yaml:"arm_offset_x_mm"`
	ArmOffsetYMM int32            `yaml:"arm_offset_y_mm"`
	Segments     []SegmentProfile `yaml:"segments"`
}

// LoadProfile reads and parses a YAML profile without building an Arm,
// for callers that want to attach custom ServoAngleFns before Build.
func LoadProfile(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("armconfig: profile not found: %s", path)
		}
		return nil, fmt.Errorf("armconfig: reading profile: %w", err)
	}

	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("armconfig: parsing profile YAML: %w", err)
	}
	if len(p.Segments) == 0 {
		return nil, ErrNoSegments
	}
	return &p, nil
}

// Builder replays the profile onto a fresh armbuild.Builder, applying
// any explicit limit pairs and leaving the rest at their defaults.
func (p *Profile) Builder() *armbuild.Builder {
	b := armbuild.New().
		Body(p.BodyHeightMM, p.BodyRadiusMM).
		ArmOffset(p.ArmOffsetXMM, p.ArmOffsetYMM)

	for _, seg := range p.Segments {
		sb := b.Bone(seg.LengthMM)
		if seg.RelStops != nil {
			sb.RelStops(seg.RelStops.angles())
		}
		if seg.AbsStops != nil {
			sb.AbsStops(seg.AbsStops.angles())
		}
		if seg.BaseRel != nil {
			sb.BaseRelStops(seg.BaseRel.angles())
		}
	}
	return b
}

// Load reads a YAML profile and builds the Arm it describes.
func Load(path string) (*arm.Arm, error) {
	p, err := LoadProfile(path)
	if err != nil {
		return nil, err
	}
	return p.Builder().Build(), nil
}

// Save serialises a profile to a YAML file, the inverse of LoadProfile.
func Save(path string, p *Profile) error {
	data, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("armconfig: marshaling profile YAML: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("armconfig: writing profile: %w", err)
	}
	return nil
}
