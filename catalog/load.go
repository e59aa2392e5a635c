package catalog

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/austencloud/tka-engine/errors"
	"github.com/austencloud/tka-engine/logger"
	"github.com/austencloud/tka-engine/motion"
	"github.com/austencloud/tka-engine/pictograph"
)

// record mirrors one dataset row. The letter comes from the enclosing
// mapping key, not the row itself.
type record struct {
	StartPos  string            `yaml:"start_pos"`
	EndPos    string            `yaml:"end_pos"`
	Primary   motion.Attributes `yaml:"primary"`
	Secondary motion.Attributes `yaml:"secondary"`
}

// Load reads and indexes a pictograph dataset file. A missing or entirely
// unparseable file is fatal (errors.ErrDataset); individually malformed
// records are skipped with a warning and load continues.
func Load(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NewDatasetError("cannot read dataset %s: %v", path, err)
	}

	c, err := Parse(raw)
	if err != nil {
		return nil, errors.Wrapf(err, "dataset %s", path)
	}
	return c, nil
}

// Parse decodes a dataset document: a mapping from letter to a list of
// pictograph records. Document order is preserved for both letters and the
// records under each letter, because slot assignment order downstream must
// be stable across resolutions.
func Parse(raw []byte) (*Catalog, error) {
	// Decoded through yaml.Node rather than a map so mapping order survives.
	var doc yaml.Node
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, errors.NewDatasetError("unparseable dataset: %v", err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, errors.NewDatasetError("empty dataset document")
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, errors.NewDatasetError("dataset root must map letters to record lists")
	}

	log := logger.Named("catalog")
	c := &Catalog{
		byStart:   make(map[pictograph.PositionID][]int),
		positions: make(map[pictograph.PositionID]struct{}),
		letters:   make(map[string]int),
	}

	for i := 0; i+1 < len(root.Content); i += 2 {
		letter := root.Content[i].Value
		list := root.Content[i+1]

		if list.Kind != yaml.SequenceNode {
			log.Warnw("skipping letter with non-list records",
				"letter", letter)
			c.skipped++
			continue
		}

		for j, recNode := range list.Content {
			var rec record
			if err := recNode.Decode(&rec); err != nil {
				log.Warnw("skipping malformed pictograph record",
					"letter", letter,
					"record", j,
					"error", err.Error())
				c.skipped++
				continue
			}

			entry := pictograph.Entry{
				Letter:    letter,
				StartPos:  pictograph.PositionID(rec.StartPos),
				EndPos:    pictograph.PositionID(rec.EndPos),
				Primary:   rec.Primary,
				Secondary: rec.Secondary,
			}
			if err := entry.Validate(); err != nil {
				log.Warnw("skipping invalid pictograph record",
					"letter", letter,
					"record", j,
					"error", err.Error())
				c.skipped++
				continue
			}

			c.index(entry)
		}
	}

	log.Infow("dataset loaded",
		"entries", c.Len(),
		"skipped", c.skipped)
	return c, nil
}

func (c *Catalog) index(e pictograph.Entry) {
	idx := len(c.entries)
	c.entries = append(c.entries, e)
	c.byStart[e.StartPos] = append(c.byStart[e.StartPos], idx)
	c.positions[e.StartPos] = struct{}{}
	c.positions[e.EndPos] = struct{}{}
	c.letters[e.Letter]++
}
