// Package calcerr defines the single structured error value every device
// calculator returns on failure. No raw property-backend errors and no
// panics cross the calculator boundary.
package calcerr

import (
	"errors"
	"fmt"
	"net/http"

	"Thermex/internal/steam"
)

// Kind classifies a calculation failure.
type Kind int

const (
	// DegenerateInput: a caller-supplied parameter makes the formula
	// undefined (zero temperature differential, zero inlet pressure, ...).
	// Detected before any division.
	DegenerateInput Kind = iota
	// InvalidPhysicalState: a property lookup fell outside the
	// correlation's validity region.
	InvalidPhysicalState
	// OracleFailure: any other property-backend failure, wrapped with the
	// query that caused it.
	OracleFailure
)

func (k Kind) String() string {
	switch k {
	case DegenerateInput:
		return "degenerate_input"
	case InvalidPhysicalState:
		return "invalid_physical_state"
	default:
		return "oracle_failure"
	}
}

// Error is the one error type calculators return.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// Degenerate builds a DegenerateInput error.
func Degenerate(format string, args ...any) *Error {
	return &Error{Kind: DegenerateInput, Msg: fmt.Sprintf(format, args...)}
}

// Invalid builds an InvalidPhysicalState error.
func Invalid(format string, args ...any) *Error {
	return &Error{Kind: InvalidPhysicalState, Msg: fmt.Sprintf(format, args...)}
}

// FromOracle wraps a property-backend failure, classifying out-of-range
// states as InvalidPhysicalState and anything else as OracleFailure.
func FromOracle(what string, err error) *Error {
	kind := OracleFailure
	if errors.Is(err, steam.ErrOutOfRange) {
		kind = InvalidPhysicalState
	}
	return &Error{
		Kind: kind,
		Msg:  fmt.Sprintf("could not resolve %s; adjust the inputs to a physically valid state", what),
		Err:  err,
	}
}

// KindOf extracts the kind from an error chain.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}

// HTTPStatus maps a calculation error to the response status the
// handlers use.
func HTTPStatus(err error) int {
	switch k, ok := KindOf(err); {
	case !ok:
		return http.StatusInternalServerError
	case k == DegenerateInput:
		return http.StatusBadRequest
	case k == InvalidPhysicalState:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
