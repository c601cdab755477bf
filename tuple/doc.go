// Package tuple
// Author: momentics <momentics@gmail.com>
//
// Canonical record shapes for tuplepool: fixed-arity, fixed-type tuples T1
// through T9 plus one Slot selector per field of every arity. A selector is
// only assignable against pools whose element type matches its tuple shape
// exactly, so mixing schemas is rejected at compile time.
//
// The TupleN types are a convenience, not a requirement: any struct works
// as a pool schema, with selectors built through api.NewSlot.
package tuple
