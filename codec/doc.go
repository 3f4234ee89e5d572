// Package codec encodes and decodes single fields against a raw region.
//
// Given a compiled descriptor, Read loads the width-appropriate value at the
// field's byte offset and Write stores one. Both are synchronous, bounded by
// the field's width, and add no synchronization of their own.
//
// # Numeric Semantics
//
// Writes accept any Go numeric value and store it with fixed-width
// truncation: integer targets wrap modulo 2^width (253 written through an
// s8 field reads back -3), float targets round through the usual Go
// conversion. Reads return the field's native Go type (uint8, int8, ...,
// float64).
//
// # Enum Semantics
//
// An enum field stores the case's index in the low byte of its reservation.
// Write rejects values absent from the case list with an invalid_variant
// error. Read rejects stored indexes beyond the case list with an
// out_of_range_index error, the signature of two binders holding different
// schemas for one region.
//
// # Validators
//
// Write never runs field validators. It is the explicit unchecked path;
// the validated counterpart lives on the object accessor surface.
package codec
