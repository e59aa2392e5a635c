package sequence

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/austencloud/tka-engine/motion"
)

func TestLastOfEmptySequence(t *testing.T) {
	var seq Sequence
	assert.Nil(t, seq.Last())
}

func TestLastReturnsTail(t *testing.T) {
	seq := Sequence{
		{Letter: "A", EndPos: "alpha3"},
		{Letter: "W", EndPos: "beta5"},
	}
	last := seq.Last()
	require.NotNil(t, last)
	assert.Equal(t, "W", last.Letter)
	assert.Equal(t, "beta5", string(last.EndPos))
}

func TestParseSequenceDocument(t *testing.T) {
	doc := []byte(`
- letter: A
  end_pos: alpha3
  primary: {end_ori: in, prop_rot_dir: cw}
  secondary: {end_ori: out, prop_rot_dir: ccw}
- letter: W
  end_pos: beta5
  primary: {end_ori: clock, prop_rot_dir: cw}
  secondary: {end_ori: counter, prop_rot_dir: no_rot}
`)
	seq, err := Parse(doc)
	require.NoError(t, err)
	require.Len(t, seq, 2)

	assert.Equal(t, motion.OrientationClock, seq[1].Primary.EndOri)
	assert.Equal(t, motion.RotationNone, seq[1].Secondary.PropRotDir)
}

func TestParseRejectsBadStep(t *testing.T) {
	doc := []byte(`
- letter: A
  end_pos: alpha3
  primary: {end_ori: sideways, prop_rot_dir: cw}
  secondary: {end_ori: out, prop_rot_dir: ccw}
`)
	_, err := Parse(doc)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "step 0")
}

func TestParseRejectsMissingEndPos(t *testing.T) {
	doc := []byte(`
- letter: A
  primary: {end_ori: in, prop_rot_dir: cw}
  secondary: {end_ori: out, prop_rot_dir: ccw}
`)
	_, err := Parse(doc)
	assert.Error(t, err)
}
