package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/name-wheel/metrics"
	"github.com/lixenwraith/name-wheel/spin"
	"github.com/lixenwraith/name-wheel/store"
)

func newPersister(t *testing.T, names []string, winner string) *store.Persister {
	t.Helper()
	backend := store.NewFileBackend(filepath.Join(t.TempDir(), "names.json"))
	p := store.NewPersister(backend, nil)
	if names != nil {
		p.Save(names, winner)
	}
	return p
}

func TestRunOncePrintsAndSavesWinner(t *testing.T) {
	p := newPersister(t, []string{"Alice", "Bob", "Carol"}, "")
	var out bytes.Buffer

	outcome, err := runOnce(p, spin.DefaultConfig(), spin.FixedRNG{Value: 2}, metrics.NewRecorder(), &out, false)
	require.NoError(t, err)

	assert.Equal(t, "Carol", outcome.WinningLabel)
	assert.Equal(t, "Carol\n", out.String())

	names, winner := p.Load()
	assert.Equal(t, []string{"Alice", "Bob", "Carol"}, names)
	assert.Equal(t, "Carol", winner)
}

func TestRunOnceDecoratesForTerminal(t *testing.T) {
	p := newPersister(t, []string{"Alice"}, "")
	var out bytes.Buffer

	_, err := runOnce(p, spin.DefaultConfig(), spin.FixedRNG{}, metrics.NewRecorder(), &out, true)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Alice")
	assert.NotEqual(t, "Alice\n", out.String())
}

func TestRunOnceEmptyList(t *testing.T) {
	p := newPersister(t, nil, "")
	var out bytes.Buffer

	_, err := runOnce(p, spin.DefaultConfig(), spin.FixedRNG{}, metrics.NewRecorder(), &out, false)
	assert.ErrorIs(t, err, errNoNames)
	assert.Empty(t, out.String())
}

func TestExportSVGToStdout(t *testing.T) {
	p := newPersister(t, []string{"Ann", "Ben"}, "")
	var out bytes.Buffer

	require.NoError(t, exportSVG(p, "-", &out, 2.0/3.0))
	svg := out.String()
	assert.True(t, strings.HasPrefix(svg, "<svg"))
	assert.Contains(t, svg, "Ann")
	assert.Contains(t, svg, "Ben")
}

func TestExportSVGToFile(t *testing.T) {
	p := newPersister(t, nil, "")
	path := filepath.Join(t.TempDir(), "wheel.svg")

	require.NoError(t, exportSVG(p, path, nil, 1.0/3.0))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Student 6")
}
