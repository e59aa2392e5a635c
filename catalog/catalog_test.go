package catalog_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/austencloud/tka-engine/catalog"
	"github.com/austencloud/tka-engine/errors"
	"github.com/austencloud/tka-engine/motion"
)

const sampleDataset = `
A:
  - start_pos: alpha1
    end_pos: alpha3
    primary: {motion_type: pro, prop_rot_dir: cw, start_loc: s, end_loc: w, start_ori: in, end_ori: in}
    secondary: {motion_type: pro, prop_rot_dir: cw, start_loc: n, end_loc: e, start_ori: in, end_ori: in}
  - start_pos: alpha1
    end_pos: alpha5
    primary: {motion_type: pro, prop_rot_dir: ccw, start_loc: s, end_loc: e, start_ori: in, end_ori: out}
    secondary: {motion_type: pro, prop_rot_dir: ccw, start_loc: n, end_loc: w, start_ori: in, end_ori: out}
W:
  - start_pos: alpha1
    end_pos: beta5
    primary: {motion_type: pro, prop_rot_dir: cw, start_loc: s, end_loc: w, start_ori: clock, end_ori: in}
    secondary: {motion_type: static, prop_rot_dir: no_rot, start_loc: n, end_loc: n, start_ori: in, end_ori: in}
B:
  - start_pos: beta5
    end_pos: alpha1
    primary: {motion_type: anti, prop_rot_dir: ccw, start_loc: w, end_loc: s, start_ori: out, end_ori: in}
    secondary: {motion_type: anti, prop_rot_dir: ccw, start_loc: e, end_loc: n, start_ori: out, end_ori: in}
`

func TestParseIndexesDataset(t *testing.T) {
	c, err := catalog.Parse([]byte(sampleDataset))
	require.NoError(t, err)

	assert.Equal(t, 4, c.Len())
	assert.Equal(t, 3, c.Letters())
	assert.Equal(t, 0, c.Skipped())
	assert.True(t, c.HasPosition("alpha1"))
	assert.True(t, c.HasPosition("beta5"))
	assert.False(t, c.HasPosition("gamma11"))
}

func TestEntriesWithStartPreservesDocumentOrder(t *testing.T) {
	c, err := catalog.Parse([]byte(sampleDataset))
	require.NoError(t, err)

	entries := c.EntriesWithStart("alpha1")
	require.Len(t, entries, 3)

	// A's two records first (document order), then W's
	assert.Equal(t, "A", entries[0].Letter)
	assert.Equal(t, "alpha3", string(entries[0].EndPos))
	assert.Equal(t, "A", entries[1].Letter)
	assert.Equal(t, "alpha5", string(entries[1].EndPos))
	assert.Equal(t, "W", entries[2].Letter)
}

func TestEntriesWithStartNoMatches(t *testing.T) {
	c, err := catalog.Parse([]byte(sampleDataset))
	require.NoError(t, err)

	// "no options" is a valid terminal state, not a failure
	assert.Empty(t, c.EntriesWithStart("gamma11"))
}

func TestEntriesWithStartReturnsCopies(t *testing.T) {
	c, err := catalog.Parse([]byte(sampleDataset))
	require.NoError(t, err)

	entries := c.EntriesWithStart("alpha1")
	entries[0].Primary.StartOri = motion.OrientationCounter

	again := c.EntriesWithStart("alpha1")
	assert.Equal(t, motion.OrientationIn, again[0].Primary.StartOri,
		"mutating a returned entry must not touch the catalog")
}

func TestParseSkipsMalformedRecords(t *testing.T) {
	doc := `
A:
  - start_pos: alpha1
    end_pos: alpha3
    primary: {motion_type: pro, prop_rot_dir: cw, start_loc: s, end_loc: w, start_ori: in, end_ori: in}
    secondary: {motion_type: pro, prop_rot_dir: cw, start_loc: n, end_loc: e, start_ori: in, end_ori: in}
  - start_pos: alpha1
    end_pos: alpha5
    primary: {motion_type: warp, prop_rot_dir: cw, start_loc: s, end_loc: e, start_ori: in, end_ori: in}
    secondary: {motion_type: pro, prop_rot_dir: cw, start_loc: n, end_loc: w, start_ori: in, end_ori: in}
`
	c, err := catalog.Parse([]byte(doc))
	require.NoError(t, err, "one bad record must not abort the load")

	assert.Equal(t, 1, c.Len())
	assert.Equal(t, 1, c.Skipped())
}

func TestParseRejectsUnparseableDocument(t *testing.T) {
	_, err := catalog.Parse([]byte("{{{ not yaml"))
	require.Error(t, err)
	assert.True(t, errors.IsDatasetError(err))
}

func TestParseRejectsNonMappingRoot(t *testing.T) {
	_, err := catalog.Parse([]byte("- just\n- a\n- list\n"))
	require.Error(t, err)
	assert.True(t, errors.IsDatasetError(err))
}

func TestLoadMissingFile(t *testing.T) {
	_, err := catalog.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.True(t, errors.IsDatasetError(err))
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pictographs.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleDataset), 0o644))

	c, err := catalog.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 4, c.Len())
}

func TestWatcherRebuildsOnChange(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pictographs.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleDataset), 0o644))

	w, err := catalog.NewWatcher(path, 20*time.Millisecond)
	require.NoError(t, err)
	defer w.Stop()

	reloaded := make(chan *catalog.Catalog, 1)
	w.OnReload(func(c *catalog.Catalog) error {
		select {
		case reloaded <- c:
		default:
		}
		return nil
	})
	w.Start()

	// Drop everything but letter B
	smaller := `
B:
  - start_pos: beta5
    end_pos: alpha1
    primary: {motion_type: anti, prop_rot_dir: ccw, start_loc: w, end_loc: s, start_ori: out, end_ori: in}
    secondary: {motion_type: anti, prop_rot_dir: ccw, start_loc: e, end_loc: n, start_ori: out, end_ori: in}
`
	require.NoError(t, os.WriteFile(path, []byte(smaller), 0o644))

	select {
	case fresh := <-reloaded:
		assert.Equal(t, 1, fresh.Len())
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not deliver a reloaded catalog")
	}
}
