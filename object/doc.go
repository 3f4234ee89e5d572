// Package object pairs a compiled layout with a bound region and exposes
// the field access surface.
//
// An Object starts unbound. Allocate gives it a fresh zeroed region sized to
// its layout; Accept binds a region obtained from elsewhere. Binding again
// replaces the previous region without migrating values, and an object never
// returns to the unbound state:
//
//	UNBOUND --(Allocate | Accept)--> BOUND --(Accept)--> BOUND
//
// Get, Set, Assign, Share and the accessors all fail with a not_allocated
// error while unbound.
//
// # Access Surfaces
//
// There are two ways to a field:
//
//   - Ambient accessors (Field): installed by Declare for every non-private
//     field. The getter delegates to the codec; the setter exists only for
//     writable fields and runs the field's validator before writing.
//   - Explicit Get/Set: reach every field, private ones included. Set never
//     runs validators; it is the privileged bypass. Assign is the validated
//     multi-field write: validators run per key, unknown keys are ignored,
//     and a failure aborts the call with earlier keys already written.
//
// # Origination Patterns
//
//	obj, err := object.Prepare(fields)          // I own a fresh value
//	obj, err := object.Manifest(region, fields) // I received a region
//
// Both compile the schema first; Prepare then allocates, Manifest binds the
// given region without checking its size against the layout; that is the
// caller's responsibility.
//
// # Sharing
//
// Share returns the bound region handle. The handle is an opaque payload:
// send it over a channel (or any transport) and the receiving context binds
// to the same bytes via Accept or Manifest with an identical schema. Reads
// on one side observe writes from the other with no message exchanged and
// no synchronization added.
package object
