package metrics

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegistersAllCollectors(t *testing.T) {
	m := New()
	require.NotNil(t, m)

	families, err := m.registry.Gather()
	require.NoError(t, err)

	names := make(map[string]bool)
	for _, f := range families {
		names[f.GetName()] = true
	}
	assert.True(t, names["flowcut_solve_duration_seconds"])
	assert.True(t, names["flowcut_bfs_phases_total"])
	assert.True(t, names["flowcut_augmentations_total"])
	assert.True(t, names["flowcut_max_flow"])
	assert.True(t, names["flowcut_cut_edges"])
}

func TestObserveSolveRecordsDuration(t *testing.T) {
	m := New()
	m.ObserveSolve(250 * time.Millisecond)

	families, err := m.registry.Gather()
	require.NoError(t, err)

	for _, f := range families {
		if f.GetName() == "flowcut_solve_duration_seconds" {
			assert.Equal(t, uint64(1), f.Metric[0].GetHistogram().GetSampleCount())
			return
		}
	}
	t.Fatal("solve duration histogram not found")
}

func TestAddSolveCountsAccumulates(t *testing.T) {
	m := New()
	m.AddSolveCounts(3, 7)
	m.AddSolveCounts(2, 1)

	path := filepath.Join(t.TempDir(), "metrics.prom")
	require.NoError(t, m.WriteTo(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "flowcut_bfs_phases_total 5")
	assert.Contains(t, string(data), "flowcut_augmentations_total 8")
}

func TestWriteToProducesTextExposition(t *testing.T) {
	m := New()
	m.MaxFlow.Set(42)
	m.CutEdges.Set(3)

	path := filepath.Join(t.TempDir(), "metrics.prom")
	require.NoError(t, m.WriteTo(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "flowcut_max_flow 42")
	assert.Contains(t, string(data), "flowcut_cut_edges 3")
}

func TestWriteToFailsOnUnwritablePath(t *testing.T) {
	m := New()
	err := m.WriteTo(filepath.Join(t.TempDir(), "missing-dir", "metrics.prom"))
	require.Error(t, err)
}
