// Package precision evaluates curve formulas in a decimal context with a fixed
// number of significant digits and truncates the result to an integer.
package precision

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/cockroachdb/apd/v3"
)

// Significant-digit precisions used by the curves.
const (
	Digits18 uint32 = 18
	Digits28 uint32 = 28
)

var (
	// ErrDomain reports an operation outside the arithmetic domain.
	ErrDomain = errors.New("arithmetic domain error")
	// ErrDivisionByZero is returned when a divisor evaluates to zero.
	ErrDivisionByZero = fmt.Errorf("%w: division by zero", ErrDomain)
	// ErrNegativeRadicand is returned for the square root of a negative value.
	ErrNegativeRadicand = fmt.Errorf("%w: square root of negative value", ErrDomain)
	// ErrNonFinite is returned when a result is NaN or infinite.
	ErrNonFinite = fmt.Errorf("%w: non-finite result", ErrDomain)
)

// OpError records the operation that left the arithmetic domain.
type OpError struct {
	Op  string
	Err error
}

func (e *OpError) Error() string { return e.Op + ": " + e.Err.Error() }

func (e *OpError) Unwrap() error { return e.Err }

// Decimal is a value produced by a Context.
type Decimal = apd.Decimal

// Context carries the precision for a single evaluation. The first failing
// operation is recorded and every later operation becomes a no-op, so a
// formula can be written as one expression and checked once via Err or
// Truncate. A Context must not be shared between goroutines.
type Context struct {
	apd *apd.Context
	err error
}

// New returns a Context rounding half-even to the given number of
// significant digits.
func New(digits uint32) *Context {
	c := apd.BaseContext.WithPrecision(digits)
	c.Rounding = apd.RoundHalfEven
	return &Context{apd: c}
}

// Digits returns the precision of the context.
func (c *Context) Digits() uint32 { return c.apd.Precision }

// Err returns the first error recorded by the context.
func (c *Context) Err() error { return c.err }

// Int converts x exactly; conversion is not subject to rounding.
func (c *Context) Int(x *big.Int) *Decimal {
	return apd.NewWithBigInt(new(apd.BigInt).SetMathBigInt(x), 0)
}

// Int64 converts v exactly.
func (c *Context) Int64(v int64) *Decimal {
	return apd.New(v, 0)
}

// Pow10 returns 10^n exactly.
func (c *Context) Pow10(n int32) *Decimal {
	return apd.New(1, n)
}

func (c *Context) Add(x, y *Decimal) *Decimal {
	return c.apply("add", func(d *Decimal) (apd.Condition, error) { return c.apd.Add(d, x, y) })
}

func (c *Context) Sub(x, y *Decimal) *Decimal {
	return c.apply("sub", func(d *Decimal) (apd.Condition, error) { return c.apd.Sub(d, x, y) })
}

func (c *Context) Mul(x, y *Decimal) *Decimal {
	return c.apply("mul", func(d *Decimal) (apd.Condition, error) { return c.apd.Mul(d, x, y) })
}

// Square returns x*x rounded once.
func (c *Context) Square(x *Decimal) *Decimal {
	return c.apply("square", func(d *Decimal) (apd.Condition, error) { return c.apd.Mul(d, x, x) })
}

// Quo returns x/y. A zero divisor records ErrDivisionByZero.
func (c *Context) Quo(x, y *Decimal) *Decimal {
	if c.err == nil && y.IsZero() {
		c.err = &OpError{Op: "quo", Err: ErrDivisionByZero}
	}
	return c.apply("quo", func(d *Decimal) (apd.Condition, error) { return c.apd.Quo(d, x, y) })
}

// Sqrt returns the square root of x computed in decimal. A negative x records
// ErrNegativeRadicand.
func (c *Context) Sqrt(x *Decimal) *Decimal {
	if c.err == nil && x.Sign() < 0 {
		c.err = &OpError{Op: "sqrt", Err: ErrNegativeRadicand}
	}
	return c.apply("sqrt", func(d *Decimal) (apd.Condition, error) { return c.apd.Sqrt(d, x) })
}

func (c *Context) apply(op string, fn func(d *Decimal) (apd.Condition, error)) *Decimal {
	d := new(Decimal)
	if c.err != nil {
		return d
	}
	cond, err := fn(d)
	switch {
	case cond.DivisionByZero():
		c.err = &OpError{Op: op, Err: ErrDivisionByZero}
	case err != nil:
		c.err = &OpError{Op: op, Err: fmt.Errorf("%w: %v", ErrDomain, err)}
	case d.Form != apd.Finite:
		c.err = &OpError{Op: op, Err: ErrNonFinite}
	}
	return d
}

// Truncate discards the fractional part of d, rounding toward zero, and
// returns the recorded error if any operation failed.
func (c *Context) Truncate(d *Decimal) (*big.Int, error) {
	if c.err != nil {
		return nil, c.err
	}
	if d.Form != apd.Finite {
		return nil, &OpError{Op: "truncate", Err: ErrNonFinite}
	}
	out := d.Coeff.MathBigInt()
	switch {
	case d.Exponent > 0:
		out.Mul(out, pow10(int64(d.Exponent)))
	case d.Exponent < 0:
		out.Quo(out, pow10(-int64(d.Exponent)))
	}
	if d.Negative {
		out.Neg(out)
	}
	return out, nil
}

func pow10(n int64) *big.Int {
	return new(big.Int).Exp(big.NewInt(10), big.NewInt(n), nil)
}
