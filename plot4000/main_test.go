package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot/vg"
)

const positionLog = `time,x,y,z
0,1,2,3
1,4,5,6
`

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestShowMissingFile(t *testing.T) {
	chdir(t, t.TempDir())

	out, err := run(t)
	require.NoError(t, err)
	assert.Contains(t, out, "4000.csv not found")

	out, err = run(t, "show")
	require.NoError(t, err)
	assert.Contains(t, out, "nothing plotted")
}

func TestDump(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "4000.csv"), []byte(positionLog), 0o644))
	chdir(t, dir)

	out, err := run(t, "dump")
	require.NoError(t, err)
	assert.Equal(t, "[\"time\", \"x\", \"y\", \"z\"]\n[0, 1, 2, 3]\n[1, 4, 5, 6]\n", out)
}

func TestDumpMissingFile(t *testing.T) {
	_, err := run(t, "dump", filepath.Join(t.TempDir(), "none.csv"))
	assert.Error(t, err)
}

func TestSummary(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log.csv")
	require.NoError(t, os.WriteFile(path, []byte(positionLog), 0o644))

	out, err := run(t, "summary", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Samples:     2")
	assert.Contains(t, out, "x ")
}

func TestRender(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "log.csv")
	png := filepath.Join(dir, "log.png")
	require.NoError(t, os.WriteFile(in, []byte(positionLog), 0o644))

	out, err := run(t, "render", "--file", in, "--out", png, "--smooth", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote "+png)

	info, err := os.Stat(png)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestRenderMissingFile(t *testing.T) {
	dir := t.TempDir()
	_, err := run(t, "render", "--file", filepath.Join(dir, "none.csv"), "--out", filepath.Join(dir, "x.png"))
	assert.Error(t, err)
}

func TestFigureOptionsFromEnv(t *testing.T) {
	t.Setenv("DAILYPLOT_WIDTH", "8")
	t.Setenv("DAILYPLOT_HEIGHT", "")

	opts, err := figureOptions(3)
	require.NoError(t, err)
	assert.Equal(t, 8*vg.Inch, opts.Width)
	assert.Equal(t, 4.8*vg.Inch, opts.Height)
	assert.Equal(t, 3, opts.Smooth)

	t.Setenv("DAILYPLOT_HEIGHT", "tall")
	_, err = figureOptions(0)
	assert.Error(t, err)
}

// chdir changes the working directory for the duration of the test,
// restoring it on cleanup (equivalent to testing.T.Chdir in Go 1.24+).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}
