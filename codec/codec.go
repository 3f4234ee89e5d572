package codec

import (
	"math"

	"github.com/wippyai/structmem"
	"github.com/wippyai/structmem/errors"
	"github.com/wippyai/structmem/layout"
	"github.com/wippyai/structmem/schema"
)

type Region = structmem.Region

// Read decodes the field described by d from r and returns its value:
// the native Go numeric type for numeric fields, the case name for enums.
func Read(d layout.Descriptor, r Region) (any, error) {
	switch t := d.Type.(type) {
	case schema.U8:
		return r.ReadU8(d.Offset)
	case schema.S8:
		v, err := r.ReadU8(d.Offset)
		return int8(v), err
	case schema.U16:
		return r.ReadU16(d.Offset)
	case schema.S16:
		v, err := r.ReadU16(d.Offset)
		return int16(v), err
	case schema.U32:
		return r.ReadU32(d.Offset)
	case schema.S32:
		v, err := r.ReadU32(d.Offset)
		return int32(v), err
	case schema.U64:
		return r.ReadU64(d.Offset)
	case schema.S64:
		v, err := r.ReadU64(d.Offset)
		return int64(v), err
	case schema.F32:
		v, err := r.ReadU32(d.Offset)
		return math.Float32frombits(v), err
	case schema.F64:
		v, err := r.ReadU64(d.Offset)
		return math.Float64frombits(v), err
	case schema.Enum:
		return readEnum(d, t, r)
	default:
		return nil, errors.New(errors.PhaseDecode, errors.KindUnsupported).
			Field(d.Name).
			Detail("unsupported field type %T", d.Type).
			Build()
	}
}

func readEnum(d layout.Descriptor, e schema.Enum, r Region) (any, error) {
	idx, err := r.ReadU8(d.Offset)
	if err != nil {
		return nil, err
	}
	if int(idx) >= len(e.Cases) {
		return nil, errors.OutOfRange(d.Name, int(idx), len(e.Cases))
	}
	return e.Cases[idx], nil
}

// Write encodes value into the field described by d. Numeric values truncate
// to the field's width; enum values must be a case name from the field's
// list. Write does not run the field's validator.
func Write(d layout.Descriptor, r Region, value any) error {
	switch t := d.Type.(type) {
	case schema.Enum:
		return writeEnum(d, t, r, value)
	case schema.F32:
		f, ok := toFloat64(value)
		if !ok {
			return mismatch(d, value)
		}
		return r.WriteU32(d.Offset, math.Float32bits(float32(f)))
	case schema.F64:
		f, ok := toFloat64(value)
		if !ok {
			return mismatch(d, value)
		}
		return r.WriteU64(d.Offset, math.Float64bits(f))
	case schema.U8, schema.S8:
		b, ok := toBits(value)
		if !ok {
			return mismatch(d, value)
		}
		return r.WriteU8(d.Offset, uint8(b))
	case schema.U16, schema.S16:
		b, ok := toBits(value)
		if !ok {
			return mismatch(d, value)
		}
		return r.WriteU16(d.Offset, uint16(b))
	case schema.U32, schema.S32:
		b, ok := toBits(value)
		if !ok {
			return mismatch(d, value)
		}
		return r.WriteU32(d.Offset, uint32(b))
	case schema.U64, schema.S64:
		b, ok := toBits(value)
		if !ok {
			return mismatch(d, value)
		}
		return r.WriteU64(d.Offset, b)
	default:
		return errors.New(errors.PhaseEncode, errors.KindUnsupported).
			Field(d.Name).
			Detail("unsupported field type %T", d.Type).
			Build()
	}
}

func mismatch(d layout.Descriptor, value any) error {
	return errors.New(errors.PhaseEncode, errors.KindTypeMismatch).
		Field(d.Name).
		Value(value).
		Detail("value %T is not numeric, field is %s", value, schema.TypeName(d.Type)).
		Build()
}

func writeEnum(d layout.Descriptor, e schema.Enum, r Region, value any) error {
	name, ok := value.(string)
	if !ok {
		return errors.InvalidVariant(d.Name, value)
	}
	for i, c := range e.Cases {
		if c == name {
			return r.WriteU8(d.Offset, uint8(i))
		}
	}
	return errors.InvalidVariant(d.Name, value)
}
