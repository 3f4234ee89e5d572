// Package errors provides structured error types for the structmem library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error
// category). The Error type includes rich context: the field name, the
// offending value, and a cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseEncode, errors.KindInvalidVariant).
//		Field("color").
//		Value("purple").
//		Detail("value not in variant list").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.Validation("height", cause)
//	err := errors.NotAllocated("share")
//
// All errors implement the standard error interface and support
// errors.Is/As. Two *Error values match under errors.Is when their Phase and
// Kind are equal, so callers can classify without string matching:
//
//	if errors.IsKind(err, errors.KindNotAllocated) { ... }
package errors
