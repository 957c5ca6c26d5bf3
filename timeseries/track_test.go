package timeseries

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/sartorproj/dailyplot/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadTable(t *testing.T, csvData string) table.Table {
	t.Helper()
	tbl, err := table.LoadCSVFromReader(strings.NewReader(csvData), nil)
	require.NoError(t, err)
	return tbl
}

func TestFromTable(t *testing.T) {
	tbl := loadTable(t, `time,x,y,z
0,1,2,3
1,4,5,6
2.5,7.5,8,9`)

	track, err := FromTable(tbl)
	require.NoError(t, err)

	assert.Equal(t, "time", track.Label)
	assert.Equal(t, 3, track.Len())
	assert.Equal(t, []float64{0, 1, 2.5}, track.Time())
	assert.Equal(t, []float64{1, 4, 7.5}, track.X.Values)
	assert.Equal(t, []float64{2, 5, 8}, track.Y.Values)
	assert.Equal(t, []float64{3, 6, 9}, track.Z.Values)
	assert.Equal(t, "x", track.X.Name)
	assert.Equal(t, "z", track.Z.Name)
}

func TestFromTableExtraColumnsIgnored(t *testing.T) {
	tbl := loadTable(t, `t,x,y,z,status
0,1,2,3,ok
1,1,2,3,degraded`)

	track, err := FromTable(tbl)
	require.NoError(t, err)
	assert.Equal(t, 2, track.Len())
}

func TestFromTableTextCell(t *testing.T) {
	// The row loads fine; the failure only appears when building arrays.
	tbl := loadTable(t, `t,x,y,z
0,1,2,3
1,2,x,4`)
	require.Len(t, tbl, 3)
	assert.Equal(t, table.KindText, tbl[2][2].Kind())

	_, err := FromTable(tbl)
	var typeErr *table.CellTypeError
	require.ErrorAs(t, err, &typeErr)
	assert.Equal(t, 2, typeErr.Row)
	assert.Equal(t, 2, typeErr.Col)
	assert.Equal(t, "x", typeErr.Value)
}

func TestFromTableShortRow(t *testing.T) {
	tbl := loadTable(t, `t,x,y,z
0,1,2,3
1,2`)

	_, err := FromTable(tbl)
	var shortErr *ShortRowError
	require.ErrorAs(t, err, &shortErr)
	assert.Equal(t, 2, shortErr.Row)
	assert.Equal(t, 2, shortErr.Width)
}

func TestFromTableEmpty(t *testing.T) {
	_, err := FromTable(table.Table{})
	assert.True(t, errors.Is(err, ErrEmptyTable))

	// A label row with no samples is an empty track, not an error.
	track, err := FromTable(table.Table{{table.Text("t")}})
	require.NoError(t, err)
	assert.Equal(t, 0, track.Len())
	assert.Equal(t, "t", track.Label)
	assert.Equal(t, "x", track.X.Name)
}

func TestTrackGeometry(t *testing.T) {
	tbl := loadTable(t, `t,x,y,z
0,0,0,0
1,3,4,0
3,3,4,12`)

	track, err := FromTable(tbl)
	require.NoError(t, err)

	assert.InDelta(t, 3.0, track.Duration(), 1e-12)
	assert.InDelta(t, 17.0, track.PathLength(), 1e-12)
	assert.InDelta(t, 6.0, track.MaxSpeed(), 1e-12)
}

func TestTrackSummary(t *testing.T) {
	tbl := loadTable(t, `t,x,y,z
0,1,10,-1
1,2,20,-2
2,3,30,-3`)

	track, err := FromTable(tbl)
	require.NoError(t, err)

	s := track.Summary()
	assert.Equal(t, 3, s.Samples)
	require.Len(t, s.Axes, 3)
	assert.Equal(t, "y", s.Axes[1].Name)
	assert.InDelta(t, 20.0, s.Axes[1].Mean, 1e-12)
	assert.InDelta(t, 10.0, s.Axes[1].Std, 1e-12)
	assert.InDelta(t, -3.0, s.Axes[2].Min, 1e-12)
	assert.False(t, math.IsNaN(s.PathLength))

	var buf bytes.Buffer
	_, err = s.WriteTo(&buf)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Samples:     3")
	assert.Contains(t, buf.String(), "mean=20.0000")
}
