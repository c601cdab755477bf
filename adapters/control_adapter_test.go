package adapters_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/momentics/tuplepool/adapters"
)

func TestControlAdapterConfig(t *testing.T) {
	ctrl := adapters.NewControlAdapter()
	assert.Empty(t, ctrl.GetConfig())

	require.NoError(t, ctrl.SetConfig(map[string]any{"capacity": 8}))
	assert.Equal(t, 8, ctrl.GetConfig()["capacity"])

	called := false
	ctrl.OnReload(func() { called = true })
	require.NoError(t, ctrl.SetConfig(map[string]any{"capacity": 16}))
	assert.True(t, called)
}

func TestControlAdapterStatsMergesProbesAndMetrics(t *testing.T) {
	ctrl := adapters.NewControlAdapter()
	ctrl.SetMetric("pool.length", 2)
	ctrl.RegisterDebugProbe("live", func() any { return 2 })

	stats := ctrl.Stats()
	assert.Equal(t, 2, stats["pool.length"])
	assert.Equal(t, 2, stats["debug.live"])
	assert.Contains(t, stats, "debug.platform.cpus")
}
