package organize_test

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"tvrename/internal/analysis"
	"tvrename/internal/config"
	serr "tvrename/internal/errors"
	"tvrename/internal/mock"
	"tvrename/internal/organize"
	"tvrename/pkg/testutils"
	"tvrename/pkg/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func scanAndSelect(t *testing.T, dir, ext string, sort types.SortDirection) []types.Entry {
	t.Helper()
	entries, err := analysis.New().ScanDirectory(dir)
	require.NoError(t, err)
	return organize.Select(entries, ext, sort)
}

func TestEpisodeName(t *testing.T) {
	assert.Equal(t, "Show.S01E01.mp4", organize.EpisodeName("Show", 1, 1, "mp4"))
	assert.Equal(t, "Show.S00E09.mkv", organize.EpisodeName("Show", 0, 9, "mkv"))
	assert.Equal(t, "Show.S12E123.avi", organize.EpisodeName("Show", 12, 123, "avi"))
	assert.Equal(t, "The Office.S100E10.mp4", organize.EpisodeName("The Office", 100, 10, "mp4"))
}

func TestRenameAll(t *testing.T) {
	t.Run("apply renames in ascending order", func(t *testing.T) {
		dir := t.TempDir()
		testutils.CreateTestFiles(t, dir, "zeta.mp4", "alpha.mp4", "mid.mp4", "notes.txt")

		engine := organize.NewWithConfig(config.Run{Name: "Show", Season: 2, Ext: "mp4"})
		results := engine.RenameAll(scanAndSelect(t, dir, "mp4", types.Ascending))
		require.Len(t, results, 3)

		for i, r := range results {
			assert.Equal(t, types.Renamed, r.Status)
			assert.NoError(t, r.Error)
			assert.Equal(t, i+1, r.Episode)
		}

		assert.Equal(t, map[string]string{
			"Show.S02E01.mp4": "alpha.mp4",
			"Show.S02E02.mp4": "mid.mp4",
			"Show.S02E03.mp4": "zeta.mp4",
			"notes.txt":       "notes.txt",
		}, testutils.SnapshotDir(t, dir))
	})

	t.Run("descending assigns the reverse numbering", func(t *testing.T) {
		dir := t.TempDir()
		testutils.CreateTestFiles(t, dir, "a.mp4", "b.mp4", "c.mp4")

		engine := organize.NewWithConfig(config.Run{Name: "Show", Season: 1, Ext: "mp4"})
		engine.RenameAll(scanAndSelect(t, dir, "mp4", types.Descending))

		assert.Equal(t, map[string]string{
			"Show.S01E01.mp4": "c.mp4",
			"Show.S01E02.mp4": "b.mp4",
			"Show.S01E03.mp4": "a.mp4",
		}, testutils.SnapshotDir(t, dir))
	})

	t.Run("dry run leaves the directory untouched", func(t *testing.T) {
		dir := t.TempDir()
		testutils.CreateTestFiles(t, dir, "b.mkv", "a.mkv", "c.srt")
		require.NoError(t, os.Mkdir(filepath.Join(dir, "extras"), 0755))
		before := testutils.SnapshotDir(t, dir)

		engine := organize.NewWithConfig(config.Run{Name: "Show", Season: 1, Ext: "mkv", DryRun: true})
		results := engine.RenameAll(scanAndSelect(t, dir, "mkv", types.Ascending))

		require.Len(t, results, 2)
		assert.Equal(t, "a.mkv", results[0].Entry.Name)
		assert.Equal(t, "Show.S01E01.mkv", results[0].NewName)
		assert.Equal(t, types.Planned, results[0].Status)
		assert.Equal(t, "Show.S01E02.mkv", results[1].NewName)
		assert.Equal(t, before, testutils.SnapshotDir(t, dir))
	})

	t.Run("collision fails only its own entry", func(t *testing.T) {
		dir := t.TempDir()
		testutils.CreateTestFiles(t, dir, "a.mp4", "b.mp4", "c.mp4")
		// Occupies the name b.mp4 would get
		testutils.CreateTestFilesWithContent(t, dir, map[string]string{"Show.S01E02.mp4": "occupied"})

		entries := []types.Entry{
			types.NewEntry(dir, "a.mp4", false, 0),
			types.NewEntry(dir, "b.mp4", false, 0),
			types.NewEntry(dir, "c.mp4", false, 0),
		}
		engine := organize.NewWithConfig(config.Run{Name: "Show", Season: 1, Ext: "mp4"})
		results := engine.RenameAll(entries)
		require.Len(t, results, 3)

		assert.Equal(t, types.Renamed, results[0].Status)
		assert.Equal(t, types.Failed, results[1].Status)
		assert.True(t, serr.IsRenameFailure(results[1].Error))
		assert.ErrorIs(t, results[1].Error, fs.ErrExist)
		assert.Equal(t, types.Renamed, results[2].Status)

		assert.Equal(t, map[string]string{
			"Show.S01E01.mp4": "a.mp4",
			"b.mp4":           "b.mp4",
			"Show.S01E02.mp4": "occupied",
			"Show.S01E03.mp4": "c.mp4",
		}, testutils.SnapshotDir(t, dir))
	})

	t.Run("already named file is unchanged but keeps its number", func(t *testing.T) {
		dir := t.TempDir()
		testutils.CreateTestFiles(t, dir, "Show.S01E01.mp4", "x.mp4")

		engine := organize.NewWithConfig(config.Run{Name: "Show", Season: 1, Ext: "mp4"})
		results := engine.RenameAll(scanAndSelect(t, dir, "mp4", types.Ascending))
		require.Len(t, results, 2)

		assert.Equal(t, types.Unchanged, results[0].Status)
		assert.Equal(t, types.Renamed, results[1].Status)
		assert.Equal(t, "Show.S01E02.mp4", results[1].NewName)
	})

	t.Run("entries that fail the re-check use no number", func(t *testing.T) {
		engine := organize.NewWithConfig(config.Run{Name: "Show", Season: 1, Ext: "mp4", DryRun: true})
		results := engine.RenameAll([]types.Entry{
			types.NewEntry("/shows", "dir.mp4", true, 0),
			types.NewEntry("/shows", "a.mp4", false, 0),
			types.NewEntry("/shows", "a.srt", false, 0),
			types.NewEntry("/shows", "b.mp4", false, 0),
		})
		require.Len(t, results, 2)
		assert.Equal(t, 1, results[0].Episode)
		assert.Equal(t, "a.mp4", results[0].Entry.Name)
		assert.Equal(t, 2, results[1].Episode)
		assert.Equal(t, "b.mp4", results[1].Entry.Name)
	})

	t.Run("no entries, no results", func(t *testing.T) {
		engine := organize.NewWithConfig(config.Run{Name: "Show", Ext: ""})
		assert.Empty(t, engine.RenameAll(nil))
	})
}

func TestRenameAllWithFakeFileSystem(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockFS := mock.NewMockFileSystem(ctrl)

	gomock.InOrder(
		mockFS.EXPECT().Rename(filepath.Join("/shows", "a.mkv"), filepath.Join("/shows", "Show.S03E01.mkv")).Return(nil),
		mockFS.EXPECT().Rename(filepath.Join("/shows", "b.mkv"), filepath.Join("/shows", "Show.S03E02.mkv")).Return(fmt.Errorf("invalid cross-device link")),
		mockFS.EXPECT().Rename(filepath.Join("/shows", "c.mkv"), filepath.Join("/shows", "Show.S03E03.mkv")).Return(nil),
	)

	engine := organize.NewWithConfig(config.Run{Name: "Show", Season: 3, Ext: "mkv"})
	engine.SetFileSystem(mockFS)

	var seen []types.RenameResult
	engine.OnResult(func(r types.RenameResult) { seen = append(seen, r) })

	results := engine.RenameAll([]types.Entry{
		types.NewEntry("/shows", "a.mkv", false, 0),
		types.NewEntry("/shows", "b.mkv", false, 0),
		types.NewEntry("/shows", "c.mkv", false, 0),
	})

	assert.Equal(t, results, seen, "callback sees every result in order")
	assert.Equal(t, types.Summary{Renamed: 2, Failed: 1}, types.Summarize(results))
	assert.Contains(t, results[1].Error.Error(), "cross-device")
}

func TestDryRunNeverTouchesFileSystem(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockFS := mock.NewMockFileSystem(ctrl) // no expectations: any call fails the test

	engine := organize.NewWithConfig(config.Run{Name: "Show", Season: 1, Ext: "mkv", DryRun: true})
	engine.SetFileSystem(mockFS)

	results := engine.RenameAll([]types.Entry{types.NewEntry("/shows", "a.mkv", false, 0)})
	require.Len(t, results, 1)
	assert.Equal(t, types.Planned, results[0].Status)
}
