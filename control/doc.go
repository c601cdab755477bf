// Package control
// Author: momentics <momentics@gmail.com>
//
// Runtime control surface for tuplepool deployments: debug-layer toggles as
// an explicit caller-owned handle, environment-driven defaults, dynamic
// configuration with reload listeners, metrics, and debug probes.
//
// There is deliberately no process-wide toggle state. Every pool.Debug
// layer observes exactly the DebugOptions handle it was built with, and the
// owner of that handle decides when to flip it.
//
// Unlike the pools themselves, everything in this package is safe for
// concurrent use.
package control
