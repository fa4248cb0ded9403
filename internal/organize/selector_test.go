package organize_test

import (
	"testing"

	"tvrename/internal/config"
	serr "tvrename/internal/errors"
	"tvrename/internal/organize"
	"tvrename/pkg/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func names(entries []types.Entry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Name)
	}
	return out
}

func sampleEntries() []types.Entry {
	return []types.Entry{
		types.NewEntry("/shows", "c.mp4", false, 0),
		types.NewEntry("/shows", "a.mp4", false, 0),
		types.NewEntry("/shows", "subs.srt", false, 0),
		types.NewEntry("/shows", "B.MP4", false, 0),
		types.NewEntry("/shows", "season.mp4", true, 0),
		types.NewEntry("/shows", "README", false, 0),
		types.NewEntry("/shows", "b.mp4", false, 0),
	}
}

func TestSelect(t *testing.T) {
	t.Run("ascending keeps exact matches in path order", func(t *testing.T) {
		got := organize.Select(sampleEntries(), "mp4", types.Ascending)
		assert.Equal(t, []string{"a.mp4", "b.mp4", "c.mp4"}, names(got))
	})

	t.Run("descending is the exact reverse", func(t *testing.T) {
		asc := organize.Select(sampleEntries(), "mp4", types.Ascending)
		desc := organize.Select(sampleEntries(), "mp4", types.Descending)
		require.Len(t, desc, len(asc))
		for i := range asc {
			assert.Equal(t, asc[i], desc[len(desc)-1-i])
		}
	})

	t.Run("extension match is case-sensitive", func(t *testing.T) {
		got := organize.Select(sampleEntries(), "MP4", types.Ascending)
		assert.Equal(t, []string{"B.MP4"}, names(got))
	})

	t.Run("directories never match", func(t *testing.T) {
		for _, e := range organize.Select(sampleEntries(), "mp4", types.Ascending) {
			assert.False(t, e.IsDir)
		}
	})

	t.Run("empty extension selects nothing", func(t *testing.T) {
		assert.Empty(t, organize.Select(sampleEntries(), "", types.Ascending))
	})

	t.Run("byte order puts uppercase first", func(t *testing.T) {
		entries := []types.Entry{
			types.NewEntry("/shows", "episode 10.mkv", false, 0),
			types.NewEntry("/shows", "episode 2.mkv", false, 0),
			types.NewEntry("/shows", "Episode 3.mkv", false, 0),
		}
		got := organize.Select(entries, "mkv", types.Ascending)
		assert.Equal(t, []string{"Episode 3.mkv", "episode 10.mkv", "episode 2.mkv"}, names(got))
	})

	t.Run("input is not reordered", func(t *testing.T) {
		in := sampleEntries()
		organize.Select(in, "mp4", types.Ascending)
		assert.Equal(t, sampleEntries(), in)
	})
}

func TestSelectorExclude(t *testing.T) {
	run := config.Run{Ext: "mkv", Sort: types.Ascending, Exclude: []string{"*sample*", "*.trailer.*"}}
	s, err := organize.NewSelector(run)
	require.NoError(t, err)

	entries := []types.Entry{
		types.NewEntry("/shows", "e1.mkv", false, 0),
		types.NewEntry("/shows", "e1-sample.mkv", false, 0),
		types.NewEntry("/shows", "show.trailer.mkv", false, 0),
		types.NewEntry("/shows", "e2.mkv", false, 0),
	}
	assert.Equal(t, []string{"e1.mkv", "e2.mkv"}, names(s.Select(entries)))

	t.Run("bad pattern", func(t *testing.T) {
		_, err := organize.NewSelector(config.Run{Ext: "mkv", Exclude: []string{"[oops"}})
		require.Error(t, err)
		assert.True(t, serr.IsInvalidConfig(err))
	})
}
