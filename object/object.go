package object

import (
	"github.com/wippyai/structmem"
	"github.com/wippyai/structmem/codec"
	"github.com/wippyai/structmem/errors"
	"github.com/wippyai/structmem/layout"
	"github.com/wippyai/structmem/schema"
)

// Object pairs one compiled layout with at most one bound region. The layout
// is owned by the object (or shared with objects derived from it before
// divergence); the region may be shared with any number of other objects in
// any number of goroutines.
type Object struct {
	layout    *layout.Layout
	region    structmem.Region
	accessors map[string]Accessor
}

// New returns an object with an empty layout and no bound region.
func New() *Object {
	return &Object{
		layout:    layout.New(),
		accessors: make(map[string]Accessor),
	}
}

// Prepare compiles fields into a fresh shape and allocates a zeroed region
// sized to it. The originator path: "I own a fresh value".
func Prepare(fields []schema.Field) (*Object, error) {
	o, err := New().Declare(fields)
	if err != nil {
		return nil, err
	}
	if err := o.Allocate(); err != nil {
		return nil, err
	}
	return o, nil
}

// Manifest compiles fields into a fresh shape and binds the given region.
// The receiver path: "I received a region". The region's size is not
// validated against the layout.
func Manifest(region structmem.Region, fields []schema.Field) (*Object, error) {
	o, err := New().Declare(fields)
	if err != nil {
		return nil, err
	}
	return o.Accept(region), nil
}

// Derive returns a new unbound object whose layout starts as a copy of
// base's and is extended with fields. The base object is left untouched;
// its fields keep their offsets, and the extension begins at the base
// layout's total width.
func Derive(base *Object, fields []schema.Field) (*Object, error) {
	o := &Object{
		layout:    base.layout.Clone(),
		accessors: make(map[string]Accessor, len(base.accessors)),
	}
	for _, d := range o.layout.Fields() {
		o.install(d)
	}
	return o.Declare(fields)
}

// Declare compiles fields onto the object's layout, appending after the
// current end offset, and installs ambient accessors for the non-private
// ones. Repeated calls accumulate. Returns the object for chaining.
func (o *Object) Declare(fields []schema.Field) (*Object, error) {
	start := o.layout.Len()
	if err := o.layout.Extend(fields); err != nil {
		return nil, err
	}
	for _, d := range o.layout.Fields()[start:] {
		o.install(d)
	}
	return o, nil
}

// Layout returns the object's compiled layout.
func (o *Object) Layout() *layout.Layout {
	return o.layout
}

// Bound reports whether a region is bound.
func (o *Object) Bound() bool {
	return o.region != nil
}

// Allocate binds a fresh zero-initialized region sized to the object's own
// layout, replacing any prior binding. Values in a previously bound region
// are not migrated.
func (o *Object) Allocate() error {
	return o.AllocateSize(o.layout.Size())
}

// AllocateFor binds a fresh zeroed region sized to another layout, usually
// a derived shape's, so a base-typed object can carry the full composed
// value.
func (o *Object) AllocateFor(l *layout.Layout) error {
	if l == nil {
		return errors.New(errors.PhaseBind, errors.KindInvalidData).
			Detail("nil layout").
			Build()
	}
	return o.AllocateSize(l.Size())
}

// AllocateSize binds a fresh zeroed region of an explicit byte size.
func (o *Object) AllocateSize(size uint32) error {
	o.region = structmem.NewRegion(size)
	return nil
}

// Share returns the bound region handle. The handle can travel to another
// execution context as an opaque payload and be bound there with Accept or
// Manifest.
func (o *Object) Share() (structmem.Region, error) {
	if o.region == nil {
		return nil, errors.NotAllocated("share")
	}
	return o.region, nil
}

// Accept binds an externally obtained region, replacing any prior binding.
// The region's size is not validated against the layout; a region smaller
// than the layout's width makes out-of-range fields fail their access.
// A nil region is ignored: once bound, an object never returns to the
// unbound state. Returns the object for chaining.
func (o *Object) Accept(region structmem.Region) *Object {
	if region == nil {
		return o
	}
	o.region = region
	return o
}

// Get decodes a field by name. Unlike the ambient accessors it reaches
// private fields.
func (o *Object) Get(name string) (any, error) {
	if o.region == nil {
		return nil, errors.NotAllocated("get")
	}
	d, ok := o.layout.Lookup(name)
	if !ok {
		return nil, errors.FieldUnknown(errors.PhaseDecode, name)
	}
	return codec.Read(d, o.region)
}

// Set encodes a field by name without running its validator: the explicit
// unchecked path for privileged writers. It writes read-only and private
// fields alike.
func (o *Object) Set(name string, value any) error {
	if o.region == nil {
		return errors.NotAllocated("set")
	}
	d, ok := o.layout.Lookup(name)
	if !ok {
		return errors.FieldUnknown(errors.PhaseEncode, name)
	}
	return codec.Write(d, o.region, value)
}

// Assign writes every key of values that names a declared field, running the
// field's validator first; keys absent from the layout are silently ignored.
// Not transactional: a validator failure aborts the call, but keys written
// before it stay written.
func (o *Object) Assign(values map[string]any) error {
	if o.region == nil {
		return errors.NotAllocated("assign")
	}
	for name, value := range values {
		d, ok := o.layout.Lookup(name)
		if !ok {
			continue
		}
		if d.Check != nil {
			if err := d.Check(value); err != nil {
				return errors.Validation(name, err)
			}
		}
		if err := codec.Write(d, o.region, value); err != nil {
			return err
		}
	}
	return nil
}
