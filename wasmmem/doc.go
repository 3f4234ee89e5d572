// Package wasmmem binds layouts onto WebAssembly linear memory.
//
// It adapts wazero's api.Memory to the structmem.Region interface, so a
// host-side object can read and write a structured value that lives inside
// a guest instance's memory:
//
//	region := wasmmem.Wrap(mod.ExportedMemory("memory"))
//	obj, err := object.Manifest(region, fields)
//
// The guest sees the same bytes at the same offsets; host writes are visible
// to guest code immediately, with the same absence of synchronization as any
// other region. WASM linear memory is little-endian, matching the region
// encoding.
package wasmmem
