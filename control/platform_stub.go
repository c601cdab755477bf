//go:build !linux
// +build !linux

// control/platform_stub.go
// Author: momentics <momentics@gmail.com>
//
// Portable fallback for platforms without rusage probes.

package control

import "runtime"

// RegisterPlatformProbes sets portable debug metrics.
func RegisterPlatformProbes(dp *DebugProbes) {
	dp.RegisterProbe("platform.cpus", func() any {
		return runtime.NumCPU()
	})
}
