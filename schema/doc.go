// Package schema defines the field specification contract shared by every
// context binding to one region.
//
// A schema is an ordered list of Field values. Each field names a fixed-width
// numeric type or a closed-set enumeration, and may carry a validator, a
// read-only marker, and a private marker. Field types form a closed sum:
//
//	U8 S8 U16 S16 U32 S32 U64 S64 F32 F64   fixed-width numerics
//	Enum{Cases: [...]}                      closed set, encoded by index
//
// The type of a field is resolved when the schema is authored, never by
// runtime inspection of the value.
//
// Schemas for contexts sharing a region must be structurally identical:
// same field names, types, and order. Authoring the schema once in WIT and
// importing it with FromWIT on every side is one way to guarantee that.
package schema
