package curves

import (
	"errors"

	"github.com/thrackle-io/curve-estimator/pkg/precision"
)

var (
	// ErrInputParse indicates a value that is not a valid non-negative
	// integer. It is reported before any curve math runs.
	ErrInputParse = errors.New("invalid input")

	// ErrArithmeticDomain indicates a division by zero or a square root of a
	// negative value.
	ErrArithmeticDomain = precision.ErrDomain

	// ErrInvalidCurveState indicates a trade outside the valid domain of a
	// curve, such as a tracker beyond its scale constant.
	ErrInvalidCurveState = errors.New("invalid curve state")
)

// Error names the curve and operand a failure relates to. Use errors.Is with
// the sentinels above to classify it.
type Error struct {
	Curve   string
	Operand string
	Err     error
}

func (e *Error) Error() string {
	if e.Operand == "" {
		return e.Curve + ": " + e.Err.Error()
	}
	return e.Curve + ": " + e.Operand + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error { return e.Err }

func newError(curve, operand string, err error) *Error {
	return &Error{Curve: curve, Operand: operand, Err: err}
}
