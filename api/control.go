// File: api/control.go
// Package api defines Control and Debug interfaces.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package api

// Control manages dynamic config and runtime metrics for a pool deployment.
type Control interface {
	GetConfig() map[string]any
	SetConfig(cfg map[string]any) error
	Stats() map[string]any
	OnReload(fn func())
	RegisterDebugProbe(name string, fn func() any)
}

// Debug exposes runtime introspection for diagnostics.
type Debug interface {
	// DumpState emits a snapshot of registered probe output.
	DumpState() map[string]any

	// RegisterProbe dynamically registers a new debug probe.
	RegisterProbe(name string, fn func() any)
}
