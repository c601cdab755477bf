package control_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/momentics/tuplepool/control"
)

func TestDebugOptionsDefaults(t *testing.T) {
	o := control.NewDebugOptions()
	assert.True(t, o.CheckInvariants())
	assert.True(t, o.TraceMessages())
	assert.Equal(t, control.DefaultTraceDepth, o.TraceDepth())
}

func TestDebugOptionsToggle(t *testing.T) {
	o := control.NewDebugOptions()
	o.SetCheckInvariants(false)
	o.SetTraceMessages(false)
	assert.False(t, o.CheckInvariants())
	assert.False(t, o.TraceMessages())
	o.SetTraceMessages(true)
	assert.True(t, o.TraceMessages())
}

func TestOptionsFromEnv(t *testing.T) {
	t.Setenv("TUPLEPOOL_CHECK_INVARIANTS", "false")
	t.Setenv("TUPLEPOOL_TRACE_MESSAGES", "true")
	t.Setenv("TUPLEPOOL_TRACE_DEPTH", "16")

	o, err := control.OptionsFromEnv()
	require.NoError(t, err)
	assert.False(t, o.CheckInvariants())
	assert.True(t, o.TraceMessages())
	assert.Equal(t, 16, o.TraceDepth())
}

func TestOptionsFromEnvDefaults(t *testing.T) {
	o, err := control.OptionsFromEnv()
	require.NoError(t, err)
	assert.True(t, o.CheckInvariants())
	assert.True(t, o.TraceMessages())
	assert.Equal(t, control.DefaultTraceDepth, o.TraceDepth())
}

func TestConfigStoreSnapshotAndReload(t *testing.T) {
	cs := control.NewConfigStore()
	assert.Empty(t, cs.GetSnapshot())

	called := 0
	cs.OnReload(func() { called++ })
	cs.SetConfig(map[string]any{"k": 1})
	assert.Equal(t, 1, called, "listeners run synchronously")
	assert.Equal(t, 1, cs.GetSnapshot()["k"])

	cs.SetConfig(map[string]any{"x": 2})
	assert.Equal(t, 2, called)
	snap := cs.GetSnapshot()
	assert.Equal(t, 1, snap["k"], "SetConfig merges")
	assert.Equal(t, 2, snap["x"])
}

func TestDebugProbes(t *testing.T) {
	dp := control.NewDebugProbes()
	dp.RegisterProbe("answer", func() any { return 42 })
	state := dp.DumpState()
	assert.Equal(t, 42, state["answer"])
}

func TestPlatformProbes(t *testing.T) {
	dp := control.NewDebugProbes()
	control.RegisterPlatformProbes(dp)
	state := dp.DumpState()
	cpus, ok := state["platform.cpus"].(int)
	require.True(t, ok)
	assert.Greater(t, cpus, 0)
}

func TestMetricsRegistry(t *testing.T) {
	mr := control.NewMetricsRegistry()
	assert.True(t, mr.Updated().IsZero())
	mr.Set("pool.length", 3)
	assert.Equal(t, 3, mr.GetSnapshot()["pool.length"])
	assert.False(t, mr.Updated().IsZero())
}
