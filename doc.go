// Package structmem provides schema-driven structured access to shared raw
// memory regions.
//
// A field schema is compiled into a byte layout (names, fixed-width types and
// closed-set enumerations mapped to byte offsets), and the compiled layout is
// bound to a contiguous raw region that multiple execution contexts can
// observe at once. Reads and writes go through a validated accessor surface,
// with an explicit unchecked path for privileged writers. The engine adds no
// synchronization of its own: a region handed to another goroutine (or
// mapped into a WASM guest) is the same bytes on both sides.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct
// responsibilities:
//
//	structmem/           Root package with the Region interface and the
//	                     slice-backed ByteRegion
//	├── object/          High-level API: objects, lifecycle, accessors
//	├── schema/          Field specification contract (types, validators,
//	                     WIT import)
//	├── layout/          Schema compilation into offset-assigned layouts
//	├── codec/           Field encoding/decoding against a Region
//	├── wasmmem/         Region adapter over wazero linear memory
//	└── errors/          Structured error types for debugging
//
// # Quick Start
//
// Originate a value:
//
//	obj, err := object.Prepare([]schema.Field{
//	    {Name: "speed", Type: schema.U8{}},
//	    {Name: "color", Type: schema.Enum{Cases: []string{"red", "green", "blue"}}},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	obj.Set("speed", 200)
//	obj.Set("color", "green")
//
// Hand the region to another context and bind on the far side:
//
//	region, _ := obj.Share()
//	ch <- region // any transport that carries the handle
//
//	remote, err := object.Manifest(<-ch, sameFields)
//	v, _ := remote.Get("speed") // 200, no message exchanged
//
// # Memory Layout
//
// Field widths are fixed at compile time:
//
//	Type            Size
//	─────────────────────
//	u8/s8           1
//	u16/s16         2
//	u32/s32/f32     4
//	u64/s64/f64     8
//	enum            8 (low byte encoded)
//
// Offsets are assigned in declaration order, contiguously, with no padding.
// Repeated Declare calls on one object extend the layout after the previous
// end offset, so a derived shape's fields begin right after its base's.
//
// # Thread Safety
//
// The engine never blocks and never locks. A Region may be bound by any
// number of objects in any number of goroutines; concurrent writers to one
// field race, and a field access is only as atomic as the platform's raw
// access for that width. Every binder must compile a structurally identical
// schema; the engine does not verify this, and a mismatch decodes to
// nonsense without a diagnosable error.
package structmem
