// Package curves mirrors the bonding-curve swap math of the on-chain AMM.
// Every function takes integer inputs, evaluates in a fixed-precision decimal
// context and truncates toward zero, matching the contract's integer division.
package curves

import (
	"fmt"
	"math/big"

	"github.com/thrackle-io/curve-estimator/pkg/precision"
)

const constantProduct = "constant-product"

// ConstantProductAmountOut returns the y reserve released for xIn of x under
// x*y=k:
//
//	yOut = (xIn * y) / (x + xIn)
//
// Intermediates are rounded to 28 significant digits before the final
// truncation. Once the product or quotient is wider than that, the result can
// exceed the exact integer floor by one unit and can reach y itself. Use
// ConstantProductAmountOutWithFee for the exact integer payout of a pair.
func ConstantProductAmountOut(x, y, xIn *big.Int) (*big.Int, error) {
	if err := checkOperands(constantProduct, operand{"x", x}, operand{"y", y}, operand{"x_in", xIn}); err != nil {
		return nil, err
	}

	c := precision.New(precision.Digits28)
	dx := c.Int(xIn)
	// numerator = xIn * y
	num := c.Mul(dx, c.Int(y))
	// denominator = x + xIn, zero only for an empty pool with no input
	den := c.Add(c.Int(x), dx)
	out, err := c.Truncate(c.Quo(num, den))
	if err != nil {
		return nil, newError(constantProduct, "x + x_in", err)
	}
	return out, nil
}

// PairFeeBps is the swap fee of a Uniswap V2 style pair in basis points.
const PairFeeBps = 30

const bpsDenominator = 10_000

// ConstantProductAmountOutWithFee returns what a fee-charging pair pays for
// xIn. The fee is taken from the input and the quotient is floored in exact
// integer arithmetic, as the pair contract does:
//
//	xInWithFee = xIn * (10000 - feeBps)
//	yOut = (xInWithFee * y) / (x*10000 + xInWithFee)
func ConstantProductAmountOutWithFee(x, y, xIn *big.Int, feeBps uint32) (*big.Int, error) {
	if err := checkOperands(constantProduct, operand{"x", x}, operand{"y", y}, operand{"x_in", xIn}); err != nil {
		return nil, err
	}
	if feeBps >= bpsDenominator {
		return nil, newError(constantProduct, "fee_bps", fmt.Errorf("%w: fee of %d bps leaves no input", ErrInputParse, feeBps))
	}

	// t1 = xIn * (10000 - fee)
	t1 := new(big.Int).Mul(xIn, big.NewInt(int64(bpsDenominator-feeBps)))
	// t2 = x * 10000 + t1 (denominator)
	t2 := new(big.Int).Mul(x, big.NewInt(bpsDenominator))
	t2.Add(t2, t1)
	if t2.Sign() == 0 {
		return nil, newError(constantProduct, "x + x_in", precision.ErrDivisionByZero)
	}
	// numerator = t1 * y
	num := new(big.Int).Mul(t1, y)
	return num.Quo(num, t2), nil
}

// ConstantProductProRata returns the x amount matching yIn at the current
// reserve ratio, used to size proportional deposits:
//
//	xOut = (yIn * x) / y
//
// It is not the inverse of ConstantProductAmountOut.
func ConstantProductProRata(x, y, yIn *big.Int) (*big.Int, error) {
	if err := checkOperands(constantProduct, operand{"x", x}, operand{"y", y}, operand{"y_in", yIn}); err != nil {
		return nil, err
	}
	if err := requirePositive(constantProduct, operand{"y", y}); err != nil {
		return nil, err
	}

	c := precision.New(precision.Digits28)
	out, err := c.Truncate(c.Quo(c.Mul(c.Int(yIn), c.Int(x)), c.Int(y)))
	if err != nil {
		return nil, newError(constantProduct, "y", err)
	}
	return out, nil
}
