package metrics

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/netresil/tolerance"
)

var _ tolerance.Recorder = (*Registry)(nil)

func TestRecorder(t *testing.T) {
	r := NewRegistry()
	r.LevelEvaluated(tolerance.KindStructural, 20*time.Millisecond)
	r.LevelEvaluated(tolerance.KindStructural, 30*time.Millisecond)
	r.RunCompleted(time.Millisecond)
	r.SweepCompleted(tolerance.KindEpidemic, 4)

	var m dto.Metric
	require.NoError(t, r.LevelsTotal.WithLabelValues(tolerance.KindStructural).Write(&m))
	require.Equal(t, 2.0, m.GetCounter().GetValue())

	m.Reset()
	require.NoError(t, r.RunsTotal.Write(&m))
	require.Equal(t, 1.0, m.GetCounter().GetValue())

	m.Reset()
	require.NoError(t, r.SweepsTotal.WithLabelValues(tolerance.KindEpidemic).Write(&m))
	require.Equal(t, 1.0, m.GetCounter().GetValue())
}

func TestSetGraph(t *testing.T) {
	r := NewRegistry()
	r.SetGraph("ER", 100, 198)

	var m dto.Metric
	require.NoError(t, r.GraphEdges.WithLabelValues("ER").Write(&m))
	require.Equal(t, 198.0, m.GetGauge().GetValue())
}

func TestWriteTextfile(t *testing.T) {
	r := NewRegistry()
	r.SweepCompleted(tolerance.KindStructural, 3)

	path := filepath.Join(t.TempDir(), "netresil.prom")
	require.NoError(t, r.WriteTextfile(path))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.True(t, strings.Contains(string(data), `netresil_sweeps_total{kind="structural"} 1`))

	families, err := r.Gatherer().Gather()
	require.NoError(t, err)
	require.NotEmpty(t, families)
}
