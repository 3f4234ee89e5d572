package layout

import (
	"fmt"
	"testing"

	"github.com/wippyai/structmem/errors"
	"github.com/wippyai/structmem/schema"
)

func TestSizeOf(t *testing.T) {
	tests := []struct {
		typ  schema.Type
		name string
		size uint32
	}{
		{schema.U8{}, "u8", 1},
		{schema.S8{}, "s8", 1},
		{schema.U16{}, "u16", 2},
		{schema.S16{}, "s16", 2},
		{schema.U32{}, "u32", 4},
		{schema.S32{}, "s32", 4},
		{schema.F32{}, "f32", 4},
		{schema.U64{}, "u64", 8},
		{schema.S64{}, "s64", 8},
		{schema.F64{}, "f64", 8},
		{schema.Enum{Cases: []string{"a", "b"}}, "enum", 8},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			size, err := SizeOf(tc.typ)
			if err != nil {
				t.Fatalf("SizeOf failed: %v", err)
			}
			if size != tc.size {
				t.Errorf("size: got %d, want %d", size, tc.size)
			}
		})
	}

	t.Run("nil", func(t *testing.T) {
		if _, err := SizeOf(nil); err == nil {
			t.Error("expected error for nil type")
		}
	})
}

func TestExtend_Offsets(t *testing.T) {
	l := New()
	err := l.Extend([]schema.Field{
		{Name: "a", Type: schema.U8{}},
		{Name: "b", Type: schema.U32{}},
		{Name: "c", Type: schema.U16{}},
	})
	if err != nil {
		t.Fatalf("Extend failed: %v", err)
	}

	wantOffsets := map[string]uint32{"a": 0, "b": 1, "c": 5}
	for name, want := range wantOffsets {
		d, ok := l.Lookup(name)
		if !ok {
			t.Fatalf("field %q not found", name)
		}
		if d.Offset != want {
			t.Errorf("field %q offset: got %d, want %d", name, d.Offset, want)
		}
	}
	if l.Size() != 7 {
		t.Errorf("total size: got %d, want 7", l.Size())
	}
}

func TestExtend_Layered(t *testing.T) {
	base := []schema.Field{
		{Name: "x", Type: schema.U32{}},
		{Name: "y", Type: schema.U32{}},
	}
	ext := []schema.Field{
		{Name: "z", Type: schema.F64{}},
	}

	l := New()
	if err := l.Extend(base); err != nil {
		t.Fatalf("base Extend failed: %v", err)
	}
	baseSize := l.Size()
	if err := l.Extend(ext); err != nil {
		t.Fatalf("ext Extend failed: %v", err)
	}

	if l.Size() != baseSize+8 {
		t.Errorf("composed size: got %d, want %d", l.Size(), baseSize+8)
	}
	d, ok := l.Lookup("z")
	if !ok {
		t.Fatal("field z not found")
	}
	if d.Offset != baseSize {
		t.Errorf("extension offset: got %d, want %d (base width)", d.Offset, baseSize)
	}
}

func TestExtend_Contiguity(t *testing.T) {
	l := New()
	fields := []schema.Field{
		{Name: "a", Type: schema.U8{}},
		{Name: "b", Type: schema.Enum{Cases: []string{"on", "off"}}},
		{Name: "c", Type: schema.S16{}},
		{Name: "d", Type: schema.F32{}},
	}
	if err := l.Extend(fields); err != nil {
		t.Fatalf("Extend failed: %v", err)
	}

	var next uint32
	for _, d := range l.Fields() {
		if d.Offset != next {
			t.Errorf("field %q offset: got %d, want %d", d.Name, d.Offset, next)
		}
		next = d.Offset + d.Size
	}
	if l.Size() != next {
		t.Errorf("total size: got %d, want %d", l.Size(), next)
	}
}

func TestExtend_Duplicate(t *testing.T) {
	l := New()
	if err := l.Extend([]schema.Field{{Name: "a", Type: schema.U8{}}}); err != nil {
		t.Fatalf("Extend failed: %v", err)
	}

	err := l.Extend([]schema.Field{{Name: "a", Type: schema.U16{}}})
	if err == nil {
		t.Fatal("expected error for duplicate field")
	}
	if !errors.IsKind(err, errors.KindDuplicateField) {
		t.Errorf("error kind: got %v, want duplicate_field", err)
	}
	// Failed extend must not advance the layout.
	if l.Size() != 1 || l.Len() != 1 {
		t.Errorf("layout changed after failed extend: size=%d len=%d", l.Size(), l.Len())
	}
}

func TestExtend_FailedBatchAtomic(t *testing.T) {
	l := New()
	if err := l.Extend([]schema.Field{{Name: "a", Type: schema.U8{}}}); err != nil {
		t.Fatalf("Extend failed: %v", err)
	}

	// The valid prefix of a rejected batch must not be committed.
	err := l.Extend([]schema.Field{
		{Name: "b", Type: schema.U16{}},
		{Name: "c", Type: schema.U32{}},
		{Name: "a", Type: schema.U8{}},
	})
	if err == nil {
		t.Fatal("expected error for duplicate field")
	}
	if l.Size() != 1 || l.Len() != 1 {
		t.Errorf("layout changed after failed batch: size=%d len=%d, want 1/1", l.Size(), l.Len())
	}
	if _, ok := l.Lookup("b"); ok {
		t.Error("rejected batch committed field b")
	}
}

func TestExtend_IntraBatchDuplicate(t *testing.T) {
	l := New()
	err := l.Extend([]schema.Field{
		{Name: "a", Type: schema.U8{}},
		{Name: "a", Type: schema.U16{}},
	})
	if err == nil {
		t.Fatal("expected error for duplicate field within one batch")
	}
	if !errors.IsKind(err, errors.KindDuplicateField) {
		t.Errorf("error kind: got %v, want duplicate_field", err)
	}
	if l.Size() != 0 || l.Len() != 0 {
		t.Errorf("layout changed after failed batch: size=%d len=%d, want 0/0", l.Size(), l.Len())
	}
}

func TestExtend_EnumValidation(t *testing.T) {
	tests := []struct {
		name  string
		cases []string
	}{
		{"empty", nil},
		{"duplicate_case", []string{"a", "b", "a"}},
		{"too_many", make([]string, MaxEnumCases+1)},
	}

	// Give the oversized list distinct names so only the count trips.
	for i := range tests[2].cases {
		tests[2].cases[i] = fmt.Sprintf("case%d", i)
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			l := New()
			err := l.Extend([]schema.Field{{Name: "e", Type: schema.Enum{Cases: tc.cases}}})
			if err == nil {
				t.Fatal("expected compile error")
			}
		})
	}
}

func TestClone_Independent(t *testing.T) {
	base := New()
	if err := base.Extend([]schema.Field{{Name: "a", Type: schema.U32{}}}); err != nil {
		t.Fatalf("Extend failed: %v", err)
	}

	derived := base.Clone()
	if err := derived.Extend([]schema.Field{{Name: "b", Type: schema.U64{}}}); err != nil {
		t.Fatalf("derived Extend failed: %v", err)
	}

	if base.Size() != 4 {
		t.Errorf("base size changed: got %d, want 4", base.Size())
	}
	if derived.Size() != 12 {
		t.Errorf("derived size: got %d, want 12", derived.Size())
	}
	if _, ok := base.Lookup("b"); ok {
		t.Error("base layout sees derived field")
	}
}
