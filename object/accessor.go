package object

import (
	"github.com/wippyai/structmem/codec"
	"github.com/wippyai/structmem/errors"
	"github.com/wippyai/structmem/layout"
)

// Accessor is the ambient surface for one non-private field. Get is always
// present. Set is nil for read-only fields; when present it runs the field's
// validator before writing.
type Accessor struct {
	Get func() (any, error)
	Set func(value any) error
}

// Field returns the ambient accessor for name. Private fields and names
// never declared report false; reach private fields through Get and Set.
func (o *Object) Field(name string) (Accessor, bool) {
	acc, ok := o.accessors[name]
	return acc, ok
}

// install builds the accessor entry for a freshly compiled descriptor.
// Private fields get none: they stay reachable only through Get/Set.
func (o *Object) install(d layout.Descriptor) {
	if d.Private {
		return
	}

	acc := Accessor{
		Get: func() (any, error) {
			if o.region == nil {
				return nil, errors.NotAllocated("get")
			}
			return codec.Read(d, o.region)
		},
	}
	if !d.ReadOnly {
		acc.Set = func(value any) error {
			if o.region == nil {
				return errors.NotAllocated("set")
			}
			if d.Check != nil {
				if err := d.Check(value); err != nil {
					return errors.Validation(d.Name, err)
				}
			}
			return codec.Write(d, o.region, value)
		}
	}
	o.accessors[d.Name] = acc
}
