// Package api
// Author: momentics <momentics@gmail.com>
//
// Public contracts of the tuplepool library.
//
// Defines the Pool interface shared by the unchecked core and its decorator
// layers, the Pointer/ID handle types, typed field selectors, pool
// statistics, structured errors, and the control/debug introspection
// surface. Implementations live in the pool, control, adapters and facade
// packages.
package api
