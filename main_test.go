package main

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ByLCY/actionlabel/layout"
	"github.com/ByLCY/actionlabel/renderer/cells"
)

const cellDemo = `
label Demo {
  frame: 0 0 20 3
  text "click labe "
  link "test" action=print
}
label Other {
  frame: 0 0 20 1
  text "hi ${name} "
  link "go" action=notify
}
`

func writeInput(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "demo.label")
	require.NoError(t, os.WriteFile(path, []byte(cellDemo), 0o644))
	return path
}

func TestRunRendersAndTaps(t *testing.T) {
	dir := t.TempDir()
	cfg := config{
		input:  writeInput(t),
		output: filepath.Join(dir, "out", "demo.txt"),
		debug:  filepath.Join(dir, "debug", "frame.json"),
		taps:   []layout.Point{{X: 12.5, Y: 1.5}, {X: 2.5, Y: 1.5}},
	}
	var stdout bytes.Buffer
	r := cells.New(cells.WithLipgloss(lipgloss.NewRenderer(io.Discard)))
	require.NoError(t, run(cfg, r, &stdout, slog.New(slog.NewTextHandler(io.Discard, nil))))

	assert.Equal(t, "clicked: test\n", stdout.String())

	out, err := os.ReadFile(cfg.output)
	require.NoError(t, err)
	assert.Contains(t, string(out), "click labe test")

	debug, err := os.ReadFile(cfg.debug)
	require.NoError(t, err)
	assert.Contains(t, string(debug), `"content": "click labe test"`)
}

func TestRunSelectsLabelByName(t *testing.T) {
	cfg := config{
		input:  writeInput(t),
		output: filepath.Join(t.TempDir(), "other.txt"),
		name:   "Other",
		data:   map[string]any{"name": "Ada"},
		taps:   []layout.Point{{X: 7.5, Y: 0.5}},
	}
	var stdout bytes.Buffer
	require.NoError(t, run(cfg, cells.New(), &stdout, slog.New(slog.NewTextHandler(io.Discard, nil))))
	assert.Equal(t, "clicked: no argument\n", stdout.String())

	cfg.name = "Missing"
	assert.ErrorContains(t, run(cfg, cells.New(), &stdout, slog.Default()), "找不到 label Missing")
}

func TestRunErrors(t *testing.T) {
	assert.Error(t, run(config{}, nil, io.Discard, slog.Default()))
	assert.ErrorContains(t, run(config{input: "does-not-exist.label"}, cells.New(), io.Discard, slog.Default()), "无法打开标记文件")
}

func TestParseTaps(t *testing.T) {
	points, err := parseTaps(" 1,2 ; 3.5 , 4 ;")
	require.NoError(t, err)
	assert.Equal(t, []layout.Point{{X: 1, Y: 2}, {X: 3.5, Y: 4}}, points)

	points, err = parseTaps("")
	require.NoError(t, err)
	assert.Empty(t, points)

	_, err = parseTaps("1;2")
	assert.Error(t, err)
	_, err = parseTaps("a,2")
	assert.Error(t, err)
}
