package schema

import (
	"testing"

	"go.bytecodealliance.org/wit"

	"github.com/wippyai/structmem/errors"
)

func TestFromWIT_Numerics(t *testing.T) {
	record := &wit.Record{
		Fields: []wit.Field{
			{Name: "speed", Type: wit.U8{}},
			{Name: "delta", Type: wit.S16{}},
			{Name: "ratio", Type: wit.F64{}},
		},
	}

	fields, err := FromWIT(record)
	if err != nil {
		t.Fatalf("FromWIT failed: %v", err)
	}
	if len(fields) != 3 {
		t.Fatalf("field count: got %d, want 3", len(fields))
	}

	if fields[0].Name != "speed" {
		t.Errorf("field 0 name: got %q, want %q", fields[0].Name, "speed")
	}
	if _, ok := fields[0].Type.(U8); !ok {
		t.Errorf("field 0 type: got %T, want U8", fields[0].Type)
	}
	if _, ok := fields[1].Type.(S16); !ok {
		t.Errorf("field 1 type: got %T, want S16", fields[1].Type)
	}
	if _, ok := fields[2].Type.(F64); !ok {
		t.Errorf("field 2 type: got %T, want F64", fields[2].Type)
	}
}

func TestFromWIT_Enum(t *testing.T) {
	enumDef := &wit.TypeDef{
		Kind: &wit.Enum{
			Cases: []wit.EnumCase{{Name: "red"}, {Name: "green"}, {Name: "blue"}},
		},
	}
	record := &wit.Record{
		Fields: []wit.Field{{Name: "color", Type: enumDef}},
	}

	fields, err := FromWIT(record)
	if err != nil {
		t.Fatalf("FromWIT failed: %v", err)
	}

	e, ok := fields[0].Type.(Enum)
	if !ok {
		t.Fatalf("field type: got %T, want Enum", fields[0].Type)
	}
	want := []string{"red", "green", "blue"}
	if len(e.Cases) != len(want) {
		t.Fatalf("case count: got %d, want %d", len(e.Cases), len(want))
	}
	for i, c := range want {
		if e.Cases[i] != c {
			t.Errorf("case %d: got %q, want %q", i, e.Cases[i], c)
		}
	}
}

func TestFromWIT_Unsupported(t *testing.T) {
	record := &wit.Record{
		Fields: []wit.Field{{Name: "label", Type: wit.String{}}},
	}

	_, err := FromWIT(record)
	if err == nil {
		t.Fatal("expected error for string field")
	}
	if !errors.IsKind(err, errors.KindUnsupported) {
		t.Errorf("error kind: got %v, want unsupported", err)
	}
}

func TestFromWIT_Nil(t *testing.T) {
	if _, err := FromWIT(nil); err == nil {
		t.Fatal("expected error for nil record")
	}
}
