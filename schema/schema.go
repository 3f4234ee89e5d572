package schema

// Type is the closed set of field type specifications. Implementations are
// the fixed-width numeric markers (U8 through F64) and Enum.
type Type interface {
	isType()
}

// Fixed-width numeric type markers.
type (
	U8  struct{}
	S8  struct{}
	U16 struct{}
	S16 struct{}
	U32 struct{}
	S32 struct{}
	U64 struct{}
	S64 struct{}
	F32 struct{}
	F64 struct{}
)

func (U8) isType()  {}
func (S8) isType()  {}
func (U16) isType() {}
func (S16) isType() {}
func (U32) isType() {}
func (S32) isType() {}
func (U64) isType() {}
func (S64) isType() {}
func (F32) isType() {}
func (F64) isType() {}

// Enum is a closed-set enumeration: an ordered list of distinct case names,
// stored as the case's index. At most 256 cases are supported.
type Enum struct {
	Cases []string
}

func (Enum) isType() {}

// TypeName returns the canonical name of a field type.
func TypeName(t Type) string {
	switch t.(type) {
	case U8:
		return "u8"
	case S8:
		return "s8"
	case U16:
		return "u16"
	case S16:
		return "s16"
	case U32:
		return "u32"
	case S32:
		return "s32"
	case U64:
		return "u64"
	case S64:
		return "s64"
	case F32:
		return "f32"
	case F64:
		return "f64"
	case Enum:
		return "enum"
	default:
		return "unknown"
	}
}

// Check validates a value before it is written through the validated
// surface. A non-nil return rejects the write.
type Check func(value any) error

// Field specifies one named field. The zero values of ReadOnly and Private
// give the defaults: writable and public.
type Field struct {
	Name     string
	Type     Type
	Check    Check
	ReadOnly bool
	Private  bool
}
