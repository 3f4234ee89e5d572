// Package layout compiles field schemas into byte layouts.
//
// A Layout is the ordered, append-only list of field descriptors for one
// shape, plus the cumulative byte width. Extend appends descriptors after
// the current end offset and never reorders or shrinks, so repeated calls
// accumulate, which is the mechanism behind layered (inheritance-like)
// composition.
// Clone produces an independent copy so a derived shape can extend a base
// shape's layout without mutating it.
//
// # Field Widths
//
//	Type            Size
//	─────────────────────
//	u8/s8           1
//	u16/s16         2
//	u32/s32/f32     4
//	u64/s64/f64     8
//	enum            8 (low byte encoded)
//
// Offsets are contiguous in declaration order with no padding; the total
// width is the sum of all field widths.
//
// # Thread Safety
//
// A Layout is safe for concurrent reads. Extend mutates and must not race
// with readers; compile your layouts before sharing them.
package layout
