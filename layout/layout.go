package layout

import (
	"go.uber.org/zap"

	"github.com/wippyai/structmem/errors"
	"github.com/wippyai/structmem/schema"
)

// MaxEnumCases bounds a closed set: the case index is stored in one byte.
const MaxEnumCases = 256

// Descriptor is one compiled field: its spec plus the byte offset assigned
// at compile time. The offset never changes once assigned.
type Descriptor struct {
	Name     string
	Type     schema.Type
	Check    schema.Check
	Offset   uint32
	Size     uint32
	ReadOnly bool
	Private  bool
}

// Layout is the compiled byte layout of one shape: ordered descriptors plus
// the total width. It is only ever extended, never reordered or shrunk.
type Layout struct {
	fields []Descriptor
	index  map[string]int
	size   uint32
}

// New returns an empty layout.
func New() *Layout {
	return &Layout{index: make(map[string]int)}
}

// Extend appends descriptors for the given fields, in order, starting at the
// current total width. Repeated calls accumulate: a second Extend places its
// first field right after the last field of the first. The batch compiles
// atomically; a rejected field leaves the layout exactly as it was.
func (l *Layout) Extend(fields []schema.Field) error {
	sizes := make([]uint32, len(fields))
	batch := make(map[string]struct{}, len(fields))
	for i, f := range fields {
		if f.Name == "" {
			return errors.New(errors.PhaseCompile, errors.KindInvalidData).
				Detail("field name must not be empty").
				Build()
		}
		if _, ok := l.index[f.Name]; ok {
			return errors.New(errors.PhaseCompile, errors.KindDuplicateField).
				Field(f.Name).
				Detail("field already declared").
				Build()
		}
		if _, ok := batch[f.Name]; ok {
			return errors.New(errors.PhaseCompile, errors.KindDuplicateField).
				Field(f.Name).
				Detail("field declared twice in one batch").
				Build()
		}
		batch[f.Name] = struct{}{}
		size, err := SizeOf(f.Type)
		if err != nil {
			return errors.Wrap(errors.PhaseCompile, errors.KindUnsupported, err, f.Name)
		}
		sizes[i] = size
		if e, ok := f.Type.(schema.Enum); ok {
			if err := checkEnum(f.Name, e); err != nil {
				return err
			}
		}
	}

	for i, f := range fields {
		l.index[f.Name] = len(l.fields)
		l.fields = append(l.fields, Descriptor{
			Name:     f.Name,
			Type:     f.Type,
			Check:    f.Check,
			Offset:   l.size,
			Size:     sizes[i],
			ReadOnly: f.ReadOnly,
			Private:  f.Private,
		})
		l.size += sizes[i]

		Logger().Debug("field compiled",
			zap.String("field", f.Name),
			zap.String("type", schema.TypeName(f.Type)),
			zap.Uint32("offset", l.size-sizes[i]),
			zap.Uint32("size", sizes[i]))
	}
	return nil
}

func checkEnum(name string, e schema.Enum) error {
	if len(e.Cases) == 0 {
		return errors.New(errors.PhaseCompile, errors.KindInvalidData).
			Field(name).
			Detail("enum must declare at least one case").
			Build()
	}
	if len(e.Cases) > MaxEnumCases {
		return errors.New(errors.PhaseCompile, errors.KindInvalidData).
			Field(name).
			Detail("enum declares %d cases, max %d", len(e.Cases), MaxEnumCases).
			Build()
	}
	seen := make(map[string]struct{}, len(e.Cases))
	for _, c := range e.Cases {
		if _, dup := seen[c]; dup {
			return errors.New(errors.PhaseCompile, errors.KindInvalidData).
				Field(name).
				Detail("duplicate enum case %q", c).
				Build()
		}
		seen[c] = struct{}{}
	}
	return nil
}

// Clone returns an independent copy. Extending the clone leaves the original
// untouched, which is how a derived shape composes on top of a base shape.
func (l *Layout) Clone() *Layout {
	c := &Layout{
		fields: make([]Descriptor, len(l.fields)),
		index:  make(map[string]int, len(l.index)),
		size:   l.size,
	}
	copy(c.fields, l.fields)
	for k, v := range l.index {
		c.index[k] = v
	}
	return c
}

// Size returns the total byte width: the sum of all field widths in
// declaration order.
func (l *Layout) Size() uint32 {
	return l.size
}

// Len returns the number of compiled fields.
func (l *Layout) Len() int {
	return len(l.fields)
}

// Lookup resolves a descriptor by field name.
func (l *Layout) Lookup(name string) (Descriptor, bool) {
	i, ok := l.index[name]
	if !ok {
		return Descriptor{}, false
	}
	return l.fields[i], true
}

// Fields returns the descriptors in declaration order. The returned slice is
// shared; callers must not modify it.
func (l *Layout) Fields() []Descriptor {
	return l.fields
}

// SizeOf returns the reserved byte width of a field type. Enums reserve
// 8 bytes; only the low-order byte carries the case index.
func SizeOf(t schema.Type) (uint32, error) {
	switch t.(type) {
	case schema.U8, schema.S8:
		return 1, nil
	case schema.U16, schema.S16:
		return 2, nil
	case schema.U32, schema.S32, schema.F32:
		return 4, nil
	case schema.U64, schema.S64, schema.F64:
		return 8, nil
	case schema.Enum:
		return 8, nil
	case nil:
		return 0, errors.New(errors.PhaseCompile, errors.KindInvalidData).
			Detail("field type must not be nil").
			Build()
	default:
		return 0, errors.New(errors.PhaseCompile, errors.KindUnsupported).
			Detail("unsupported field type %T", t).
			Build()
	}
}
