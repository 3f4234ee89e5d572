package wasmmem

import (
	"context"
	"testing"

	"github.com/tetratelabs/wazero"

	"github.com/wippyai/structmem/errors"
	"github.com/wippyai/structmem/object"
	"github.com/wippyai/structmem/schema"
)

// memoryWASM is a minimal WASM module with 1 page of memory exported as "memory"
var memoryWASM = []byte{
	0x00, 0x61, 0x73, 0x6d, // magic
	0x01, 0x00, 0x00, 0x00, // version
	0x05, 0x03, 0x01, 0x00, 0x01, // memory section: 1 page, no max
	0x07, 0x0a, 0x01, // export section: 10 bytes, 1 export
	0x06, 0x6d, 0x65, 0x6d, 0x6f, 0x72, 0x79, // name: "memory" (6 bytes + string)
	0x02, 0x00, // kind: memory, index 0
}

func instantiateMemory(t *testing.T) *Wrapper {
	t.Helper()
	ctx := context.Background()

	rt := wazero.NewRuntime(ctx)
	t.Cleanup(func() { rt.Close(ctx) })

	compiled, err := rt.CompileModule(ctx, memoryWASM)
	if err != nil {
		t.Fatalf("failed to compile: %v", err)
	}
	mod, err := rt.InstantiateModule(ctx, compiled, wazero.NewModuleConfig())
	if err != nil {
		t.Fatalf("failed to instantiate: %v", err)
	}
	t.Cleanup(func() { mod.Close(ctx) })

	region := Wrap(mod.ExportedMemory("memory"))
	if region == nil {
		t.Fatal("expected non-nil wrapped memory")
	}
	return region.(*Wrapper)
}

func TestWrap_Nil(t *testing.T) {
	if region := Wrap(nil); region != nil {
		t.Error("expected nil for nil memory")
	}
}

func TestWrapper_ReadWrite(t *testing.T) {
	region := instantiateMemory(t)

	if region.Len() != 65536 {
		t.Errorf("Len: got %d, want 65536 (one page)", region.Len())
	}

	if err := region.WriteU32(16, 0xDEADBEEF); err != nil {
		t.Fatalf("WriteU32 failed: %v", err)
	}
	v, err := region.ReadU32(16)
	if err != nil || v != 0xDEADBEEF {
		t.Errorf("ReadU32: got %#x (err %v), want 0xdeadbeef", v, err)
	}

	if err := region.Write(0, []byte{1, 2, 3, 4}); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	data, err := region.Read(0, 4)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	for i, want := range []byte{1, 2, 3, 4} {
		if data[i] != want {
			t.Errorf("byte %d: got %d, want %d", i, data[i], want)
		}
	}
}

func TestWrapper_Bounds(t *testing.T) {
	region := instantiateMemory(t)

	_, err := region.ReadU64(region.Len() - 4)
	if err == nil {
		t.Fatal("expected bounds error")
	}
	if !errors.IsKind(err, errors.KindOutOfBounds) {
		t.Errorf("error kind: got %v, want out_of_bounds", err)
	}
}

func TestManifestOnLinearMemory(t *testing.T) {
	region := instantiateMemory(t)

	obj, err := object.Manifest(region, []schema.Field{
		{Name: "speed", Type: schema.U8{}},
		{Name: "color", Type: schema.Enum{Cases: []string{"red", "green", "blue"}}},
	})
	if err != nil {
		t.Fatalf("Manifest failed: %v", err)
	}

	if err := obj.Set("speed", 200); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := obj.Set("color", "green"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	// The guest sees the same bytes at the layout's offsets.
	b, _ := region.ReadU8(0)
	if b != 200 {
		t.Errorf("linear memory byte 0: got %d, want 200", b)
	}
	idx, _ := region.ReadU8(1)
	if idx != 1 {
		t.Errorf("linear memory byte 1: got %d, want 1 (index of green)", idx)
	}

	color, err := obj.Get("color")
	if err != nil || color != "green" {
		t.Errorf("Get color: got %v (err %v), want green", color, err)
	}
}
