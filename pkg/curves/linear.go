package curves

import (
	"fmt"
	"math/big"

	"github.com/shopspring/decimal"
	"github.com/thrackle-io/curve-estimator/pkg/precision"
)

const linear = "linear"

// maxPointDecimals bounds the slope scale to the decimal width of a uint256.
const maxPointDecimals = 77

// LinearParams encodes the price p(x) = (M/MDen)*x/Scale + B/BDen as integer
// numerator/denominator pairs. Scale is the token decimal scale, usually 10^18.
type LinearParams struct {
	M     *big.Int
	MDen  *big.Int
	B     *big.Int
	BDen  *big.Int
	Scale *big.Int
}

func (p LinearParams) check() error {
	err := checkOperands(linear,
		operand{"m", p.M}, operand{"m_den", p.MDen},
		operand{"b", p.B}, operand{"b_den", p.BDen},
		operand{"token_decimals", p.Scale})
	if err != nil {
		return err
	}
	return requirePositive(linear, operand{"m_den", p.MDen}, operand{"b_den", p.BDen}, operand{"token_decimals", p.Scale})
}

// LinearAmountOutForward integrates the price over [x0, x0+xIn]:
//
//	y = (b*xIn)/bDen + m*(2*x0*xIn - xIn^2) / (2*mDen*d)
//
// A trade that would yield a negative amount is outside the curve.
func LinearAmountOutForward(p LinearParams, x0, xIn *big.Int) (*big.Int, error) {
	if err := p.check(); err != nil {
		return nil, err
	}
	if err := checkOperands(linear, operand{"x_reserve", x0}, operand{"x_in", xIn}); err != nil {
		return nil, err
	}

	c := precision.New(precision.Digits18)
	two := c.Int64(2)
	dx := c.Int(xIn)

	intercept := c.Quo(c.Mul(c.Int(p.B), dx), c.Int(p.BDen))
	span := c.Sub(c.Mul(c.Mul(two, c.Int(x0)), dx), c.Square(dx))
	slope := c.Quo(c.Mul(c.Int(p.M), span), c.Mul(c.Mul(two, c.Int(p.MDen)), c.Int(p.Scale)))

	out, err := c.Truncate(c.Add(intercept, slope))
	if err != nil {
		return nil, newError(linear, "", err)
	}
	if out.Sign() < 0 {
		return nil, newError(linear, "x_in", fmt.Errorf("%w: trade of %s from reserve %s yields a negative amount", ErrInvalidCurveState, xIn, x0))
	}
	return out, nil
}

// LinearAmountOutInverse solves the integrated curve for the x amount given
// yIn, using the closed form of the quadratic:
//
//	x = 2*10^9*yIn*bDen*sqrt(mDen) /
//	    (sqrt(10^18*b^2*mDen + 2*y0*m*bDen^2) + sqrt(10^18*b^2*mDen + 2*(y0+yIn)*m*bDen^2))
//
// The constants fix the inverse to 18-decimal tokens; p.Scale is validated
// but does not enter the formula.
func LinearAmountOutInverse(p LinearParams, y0, yIn *big.Int) (*big.Int, error) {
	if err := p.check(); err != nil {
		return nil, err
	}
	if err := checkOperands(linear, operand{"y_reserve", y0}, operand{"y_in", yIn}); err != nil {
		return nil, err
	}
	if yIn.Sign() == 0 {
		return new(big.Int), nil
	}

	c := precision.New(precision.Digits18)
	two := c.Int64(2)
	dy := c.Int(yIn)
	m, mDen := c.Int(p.M), c.Int(p.MDen)
	bDen := c.Int(p.BDen)

	num := c.Mul(c.Mul(c.Mul(c.Mul(two, c.Pow10(9)), dy), bDen), c.Sqrt(mDen))

	base := c.Mul(c.Mul(c.Pow10(18), c.Square(c.Int(p.B))), mDen)
	bDenSq := c.Square(bDen)
	r0 := c.Add(base, c.Mul(c.Mul(c.Mul(two, c.Int(y0)), m), bDenSq))
	r1 := c.Add(base, c.Mul(c.Mul(c.Mul(two, c.Add(c.Int(y0), dy)), m), bDenSq))
	if err := c.Err(); err != nil {
		return nil, newError(linear, "", err)
	}
	if r0.Sign() < 0 || r1.Sign() < 0 {
		return nil, newError(linear, "y_in", fmt.Errorf("%w: negative discriminant", ErrInvalidCurveState))
	}

	den := c.Add(c.Sqrt(r0), c.Sqrt(r1))
	if c.Err() == nil && den.IsZero() {
		return nil, newError(linear, "b", fmt.Errorf("%w: price is zero along the curve", ErrInvalidCurveState))
	}
	out, err := c.Truncate(c.Quo(num, den))
	if err != nil {
		return nil, newError(linear, "", err)
	}
	return out, nil
}

// LinearPointPrice evaluates y = (m/10^decimals)*x + b at a single point. When
// atto is set the slope is scaled up by 10^18. The result is exact before
// truncation.
func LinearPointPrice(m, decimals, b, x *big.Int, atto bool) (*big.Int, error) {
	err := checkOperands(linear, operand{"m", m}, operand{"decimals", decimals}, operand{"b", b}, operand{"x", x})
	if err != nil {
		return nil, err
	}
	if decimals.Cmp(big.NewInt(maxPointDecimals)) > 0 {
		return nil, newError(linear, "decimals", fmt.Errorf("%w: %s exceeds %d", ErrInputParse, decimals, maxPointDecimals))
	}

	slope := decimal.NewFromBigInt(m, -int32(decimals.Int64()))
	if atto {
		slope = slope.Shift(18)
	}
	y := slope.Mul(decimal.NewFromBigInt(x, 0)).Add(decimal.NewFromBigInt(b, 0))
	return y.BigInt(), nil
}
