package sequence

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/austencloud/tka-engine/errors"
	"github.com/austencloud/tka-engine/motion"
)

// LoadFile reads a sequence document: a YAML list of committed steps in
// order. Unlike the pictograph dataset there is no skip-and-continue here;
// a sequence with a bad step is caller error and fails outright.
func LoadFile(path string) (Sequence, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot read sequence file %s", path)
	}
	return Parse(raw)
}

// Parse decodes and validates a sequence document.
func Parse(raw []byte) (Sequence, error) {
	var seq Sequence
	if err := yaml.Unmarshal(raw, &seq); err != nil {
		return nil, errors.Wrap(err, "cannot parse sequence document")
	}

	for i, step := range seq {
		if err := step.validate(); err != nil {
			return nil, errors.Wrapf(err, "step %d", i)
		}
	}
	return seq, nil
}

func (s Step) validate() error {
	if s.EndPos == "" {
		return errors.New("empty end_pos")
	}
	for _, actor := range []struct {
		name  string
		state ActorState
	}{
		{"primary", s.Primary},
		{"secondary", s.Secondary},
	} {
		if _, err := motion.ParseOrientation(string(actor.state.EndOri)); err != nil {
			return errors.Wrap(err, actor.name)
		}
		if _, err := motion.ParseRotationDir(string(actor.state.PropRotDir)); err != nil {
			return errors.Wrap(err, actor.name)
		}
	}
	return nil
}
