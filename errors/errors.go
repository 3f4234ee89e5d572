package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseCompile  Phase = "compile"  // schema compilation
	PhaseEncode   Phase = "encode"   // value to region bytes
	PhaseDecode   Phase = "decode"   // region bytes to value
	PhaseValidate Phase = "validate" // field validation
	PhaseBind     Phase = "bind"     // region allocation and binding
)

// Kind categorizes the error
type Kind string

const (
	KindValidation     Kind = "validation"         // validator rejected a value
	KindInvalidVariant Kind = "invalid_variant"    // value absent from variant list
	KindOutOfRange     Kind = "out_of_range_index" // decoded index exceeds variant count
	KindNotAllocated   Kind = "not_allocated"      // no region bound
	KindFieldUnknown   Kind = "field_unknown"
	KindDuplicateField Kind = "duplicate_field"
	KindTypeMismatch   Kind = "type_mismatch"
	KindInvalidData    Kind = "invalid_data"
	KindOutOfBounds    Kind = "out_of_bounds"
	KindUnsupported    Kind = "unsupported"
)

// Error is the structured error type used throughout the library
type Error struct {
	Value  any
	Cause  error
	Phase  Phase
	Kind   Kind
	Field  string
	Detail string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Field != "" {
		b.WriteString(" at ")
		b.WriteString(e.Field)
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// IsKind reports whether err (or any error in its chain) is an *Error of the
// given kind, regardless of phase.
func IsKind(err error, kind Kind) bool {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Field sets the field name
func (b *Builder) Field(name string) *Builder {
	b.err.Field = name
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// Validation creates a validator rejection error
func Validation(field string, cause error) *Error {
	return &Error{
		Phase: PhaseValidate,
		Kind:  KindValidation,
		Field: field,
		Cause: cause,
	}
}

// InvalidVariant creates an error for a value absent from a variant list
func InvalidVariant(field string, value any) *Error {
	return &Error{
		Phase:  PhaseEncode,
		Kind:   KindInvalidVariant,
		Field:  field,
		Value:  value,
		Detail: fmt.Sprintf("value %v not in variant list", value),
	}
}

// OutOfRange creates an error for a decoded variant index beyond the list.
// It signals a layout/region mismatch between binders.
func OutOfRange(field string, index, count int) *Error {
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindOutOfRange,
		Field:  field,
		Value:  index,
		Detail: fmt.Sprintf("variant index %d out of range (count %d)", index, count),
	}
}

// NotAllocated creates an error for a region-dependent operation on an
// unbound object
func NotAllocated(op string) *Error {
	return &Error{
		Phase:  PhaseBind,
		Kind:   KindNotAllocated,
		Detail: fmt.Sprintf("%s requires a bound region", op),
	}
}

// FieldUnknown creates an error for a name absent from the layout
func FieldUnknown(phase Phase, field string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindFieldUnknown,
		Field:  field,
		Detail: "field not declared",
	}
}

// TypeMismatch creates a type mismatch error
func TypeMismatch(phase Phase, field, got, want string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindTypeMismatch,
		Field:  field,
		Detail: fmt.Sprintf("got %s, want %s", got, want),
	}
}

// OutOfBounds creates a region bounds error
func OutOfBounds(phase Phase, offset, length, size uint32) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindOutOfBounds,
		Detail: fmt.Sprintf("access [%d, %d) outside region of %d bytes", offset, offset+length, size),
	}
}

// Wrap creates an error wrapping a cause
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Cause:  cause,
		Detail: detail,
	}
}
