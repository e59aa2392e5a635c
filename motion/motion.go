// Package motion defines the closed vocabularies of the kinetic notation:
// motion types, prop rotation directions, hand locations and orientations.
//
// Orientations are symbolic tags, not angles. The dataset, the continuity
// rules and the rendering layer all agree on the four-tag vocabulary
// {in, out, clock, counter}; converting to numeric angles is a rendering
// concern and never happens inside the engine.
package motion

import (
	"github.com/austencloud/tka-engine/errors"
)

// MotionType describes how a prop travels between two locations.
type MotionType string

const (
	MotionPro    MotionType = "pro"    // Prop rotates with the hand path
	MotionAnti   MotionType = "anti"   // Prop rotates against the hand path
	MotionFloat  MotionType = "float"  // Shift without prop rotation
	MotionDash   MotionType = "dash"   // Straight-line relocation
	MotionStatic MotionType = "static" // Hand stays in place
)

// RotationDir is the prop rotation direction for one motion.
type RotationDir string

const (
	RotationCW   RotationDir = "cw"
	RotationCCW  RotationDir = "ccw"
	RotationNone RotationDir = "no_rot"
)

// Location is one of the eight compass-style hand positions.
type Location string

const (
	LocationN  Location = "n"
	LocationNE Location = "ne"
	LocationE  Location = "e"
	LocationSE Location = "se"
	LocationS  Location = "s"
	LocationSW Location = "sw"
	LocationW  Location = "w"
	LocationNW Location = "nw"
)

// Orientation is one of the four symbolic prop orientations.
type Orientation string

const (
	OrientationIn      Orientation = "in"
	OrientationOut     Orientation = "out"
	OrientationClock   Orientation = "clock"
	OrientationCounter Orientation = "counter"
)

// Attributes is the full motion description for one actor within a
// pictograph. Two actors per pictograph, conventionally primary/secondary.
type Attributes struct {
	MotionType MotionType  `yaml:"motion_type"`
	PropRotDir RotationDir `yaml:"prop_rot_dir"`
	StartLoc   Location    `yaml:"start_loc"`
	EndLoc     Location    `yaml:"end_loc"`
	StartOri   Orientation `yaml:"start_ori"`
	EndOri     Orientation `yaml:"end_ori"`
}

// ParseMotionType validates a dataset motion_type token.
func ParseMotionType(s string) (MotionType, error) {
	switch MotionType(s) {
	case MotionPro, MotionAnti, MotionFloat, MotionDash, MotionStatic:
		return MotionType(s), nil
	}
	return "", errors.Newf("unknown motion_type %q", s)
}

// ParseRotationDir validates a dataset prop_rot_dir token.
func ParseRotationDir(s string) (RotationDir, error) {
	switch RotationDir(s) {
	case RotationCW, RotationCCW, RotationNone:
		return RotationDir(s), nil
	}
	return "", errors.Newf("unknown prop_rot_dir %q", s)
}

// ParseLocation validates a dataset location token.
func ParseLocation(s string) (Location, error) {
	switch Location(s) {
	case LocationN, LocationNE, LocationE, LocationSE,
		LocationS, LocationSW, LocationW, LocationNW:
		return Location(s), nil
	}
	return "", errors.Newf("unknown location %q", s)
}

// ParseOrientation validates a dataset orientation token.
func ParseOrientation(s string) (Orientation, error) {
	switch Orientation(s) {
	case OrientationIn, OrientationOut, OrientationClock, OrientationCounter:
		return Orientation(s), nil
	}
	return "", errors.Newf("unknown orientation %q", s)
}

// Rotates reports whether the motion carries a real prop rotation.
// Reversal analysis only compares rotating motions; no_rot motions are
// transparent to continuity.
func (a Attributes) Rotates() bool {
	return a.PropRotDir == RotationCW || a.PropRotDir == RotationCCW
}

// Validate checks every field against its vocabulary.
func (a Attributes) Validate() error {
	if _, err := ParseMotionType(string(a.MotionType)); err != nil {
		return err
	}
	if _, err := ParseRotationDir(string(a.PropRotDir)); err != nil {
		return err
	}
	if _, err := ParseLocation(string(a.StartLoc)); err != nil {
		return errors.Wrap(err, "start_loc")
	}
	if _, err := ParseLocation(string(a.EndLoc)); err != nil {
		return errors.Wrap(err, "end_loc")
	}
	if _, err := ParseOrientation(string(a.StartOri)); err != nil {
		return errors.Wrap(err, "start_ori")
	}
	if _, err := ParseOrientation(string(a.EndOri)); err != nil {
		return errors.Wrap(err, "end_ori")
	}
	return nil
}
