package curves

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/holiman/uint256"
)

// ParseAmount parses a raw base-10 integer. Values must be non-negative and
// fit in a uint256, the width of the contract's integer math.
func ParseAmount(name, text string) (*big.Int, error) {
	s := strings.TrimSpace(text)
	if s == "" {
		return nil, &Error{Curve: "input", Operand: name, Err: fmt.Errorf("%w: value is required", ErrInputParse)}
	}
	if s[0] == '-' || s[0] == '+' {
		return nil, &Error{Curve: "input", Operand: name, Err: fmt.Errorf("%w: %q is not an unsigned integer", ErrInputParse, text)}
	}
	v, err := uint256.FromDecimal(s)
	if err != nil {
		return nil, &Error{Curve: "input", Operand: name, Err: fmt.Errorf("%w: %q: %v", ErrInputParse, text, err)}
	}
	return v.ToBig(), nil
}

type operand struct {
	name  string
	value *big.Int
}

// checkOperands rejects nil and negative values handed in by Go callers that
// bypassed ParseAmount.
func checkOperands(curve string, ops ...operand) error {
	for _, op := range ops {
		if op.value == nil {
			return newError(curve, op.name, fmt.Errorf("%w: value is required", ErrInputParse))
		}
		if op.value.Sign() < 0 {
			return newError(curve, op.name, fmt.Errorf("%w: %s is negative", ErrInputParse, op.value))
		}
	}
	return nil
}

// requirePositive reports a zero divisor as an arithmetic domain error.
func requirePositive(curve string, ops ...operand) error {
	for _, op := range ops {
		if op.value.Sign() == 0 {
			return newError(curve, op.name, fmt.Errorf("%w: must be greater than zero", ErrArithmeticDomain))
		}
	}
	return nil
}
