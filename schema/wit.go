package schema

import (
	"go.bytecodealliance.org/wit"

	"github.com/wippyai/structmem/errors"
)

// FromWIT derives a schema from a WIT record definition. Record fields map
// in declaration order: WIT fixed-width numerics map to the matching numeric
// marker, and enum typedefs map to Enum with the case names in WIT order.
// Other WIT types (strings, lists, nested records, ...) are not expressible
// in a fixed-width layout and are rejected.
//
// Authoring the schema in WIT gives every context a structurally identical
// field list from a single definition.
func FromWIT(r *wit.Record) ([]Field, error) {
	if r == nil {
		return nil, errors.New(errors.PhaseCompile, errors.KindInvalidData).
			Detail("nil record").
			Build()
	}

	fields := make([]Field, 0, len(r.Fields))
	for _, f := range r.Fields {
		t, err := typeFromWIT(f.Name, f.Type)
		if err != nil {
			return nil, err
		}
		fields = append(fields, Field{Name: f.Name, Type: t})
	}
	return fields, nil
}

func typeFromWIT(name string, t wit.Type) (Type, error) {
	switch wt := t.(type) {
	case wit.U8:
		return U8{}, nil
	case wit.S8:
		return S8{}, nil
	case wit.U16:
		return U16{}, nil
	case wit.S16:
		return S16{}, nil
	case wit.U32:
		return U32{}, nil
	case wit.S32:
		return S32{}, nil
	case wit.U64:
		return U64{}, nil
	case wit.S64:
		return S64{}, nil
	case wit.F32:
		return F32{}, nil
	case wit.F64:
		return F64{}, nil
	case *wit.TypeDef:
		return typeFromTypeDef(name, wt)
	default:
		return nil, errors.New(errors.PhaseCompile, errors.KindUnsupported).
			Field(name).
			Detail("WIT type %T has no fixed-width encoding", t).
			Build()
	}
}

func typeFromTypeDef(name string, td *wit.TypeDef) (Type, error) {
	switch kind := td.Kind.(type) {
	case *wit.Enum:
		cases := make([]string, len(kind.Cases))
		for i, c := range kind.Cases {
			cases[i] = c.Name
		}
		return Enum{Cases: cases}, nil
	case wit.Type:
		return typeFromWIT(name, kind)
	default:
		return nil, errors.New(errors.PhaseCompile, errors.KindUnsupported).
			Field(name).
			Detail("WIT typedef kind %T has no fixed-width encoding", kind).
			Build()
	}
}
