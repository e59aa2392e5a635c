package motion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMotionType(t *testing.T) {
	for _, tok := range []string{"pro", "anti", "float", "dash", "static"} {
		mt, err := ParseMotionType(tok)
		require.NoError(t, err, tok)
		assert.Equal(t, MotionType(tok), mt)
	}

	_, err := ParseMotionType("spin")
	assert.Error(t, err)
}

func TestParseRotationDir(t *testing.T) {
	for _, tok := range []string{"cw", "ccw", "no_rot"} {
		_, err := ParseRotationDir(tok)
		require.NoError(t, err, tok)
	}

	_, err := ParseRotationDir("clockwise")
	assert.Error(t, err)
}

func TestParseLocation(t *testing.T) {
	for _, tok := range []string{"n", "ne", "e", "se", "s", "sw", "w", "nw"} {
		_, err := ParseLocation(tok)
		require.NoError(t, err, tok)
	}

	_, err := ParseLocation("north")
	assert.Error(t, err)
}

func TestParseOrientation(t *testing.T) {
	for _, tok := range []string{"in", "out", "clock", "counter"} {
		_, err := ParseOrientation(tok)
		require.NoError(t, err, tok)
	}

	// Orientations are tags, not angles
	_, err := ParseOrientation("90")
	assert.Error(t, err)
}

func TestAttributesValidate(t *testing.T) {
	valid := Attributes{
		MotionType: MotionPro,
		PropRotDir: RotationCW,
		StartLoc:   LocationS,
		EndLoc:     LocationW,
		StartOri:   OrientationIn,
		EndOri:     OrientationIn,
	}
	require.NoError(t, valid.Validate())

	bad := valid
	bad.EndOri = "sideways"
	err := bad.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "end_ori")
}

func TestRotates(t *testing.T) {
	assert.True(t, Attributes{PropRotDir: RotationCW}.Rotates())
	assert.True(t, Attributes{PropRotDir: RotationCCW}.Rotates())
	assert.False(t, Attributes{PropRotDir: RotationNone}.Rotates())
}
