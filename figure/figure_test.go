package figure

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sartorproj/dailyplot/table"
	"github.com/sartorproj/dailyplot/timeseries"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTrack(t *testing.T) *timeseries.Track {
	t.Helper()
	tbl, err := table.LoadCSVFromReader(strings.NewReader(`t,x,y,z
0,0,1,2
1,1,2,3
2,4,3,2
3,9,4,1`), nil)
	require.NoError(t, err)

	track, err := timeseries.FromTable(tbl)
	require.NoError(t, err)
	return track
}

func TestNewLabels(t *testing.T) {
	fig, err := New(sampleTrack(t), nil)
	require.NoError(t, err)

	plots := fig.Plots()
	require.Len(t, plots, 3)

	assert.Equal(t, "4000 Position", plots[0].Title.Text)
	assert.Empty(t, plots[1].Title.Text)
	assert.Empty(t, plots[2].Title.Text)

	for i, want := range []string{"X (m)", "Y (m)", "Z (m)"} {
		assert.Equal(t, "Time (sec)", plots[i].X.Label.Text)
		assert.Equal(t, want, plots[i].Y.Label.Text)
	}
}

func TestNewDataRange(t *testing.T) {
	fig, err := New(sampleTrack(t), nil)
	require.NoError(t, err)

	x := fig.Plots()[0]
	assert.LessOrEqual(t, x.X.Min, 0.0)
	assert.GreaterOrEqual(t, x.X.Max, 3.0)
	assert.LessOrEqual(t, x.Y.Min, 0.0)
	assert.GreaterOrEqual(t, x.Y.Max, 9.0)
}

func TestImageSize(t *testing.T) {
	fig, err := New(sampleTrack(t), nil)
	require.NoError(t, err)

	bounds := fig.Image().Bounds()
	assert.InDelta(t, 640, bounds.Dx(), 1)
	assert.InDelta(t, 480, bounds.Dy(), 1)
}

func TestWriteToPNG(t *testing.T) {
	opts := DefaultOptions()
	opts.Smooth = 2
	fig, err := New(sampleTrack(t), opts)
	require.NoError(t, err)

	var buf bytes.Buffer
	n, err := fig.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, int64(buf.Len()), n)
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG\r\n\x1a\n")))
}

func TestSave(t *testing.T) {
	fig, err := New(sampleTrack(t), nil)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "4000.png")
	require.NoError(t, fig.Save(path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestNewRejectsNaN(t *testing.T) {
	track := sampleTrack(t)
	track.Y.Values[1] = math.NaN()

	_, err := New(track, nil)
	assert.Error(t, err)
}

func TestNewNilTrack(t *testing.T) {
	_, err := New(nil, nil)
	assert.Error(t, err)
}
