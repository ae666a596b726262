package curves

import (
	"fmt"
	"math/big"

	"github.com/thrackle-io/curve-estimator/pkg/precision"
)

// The tracker curve is a provisional model kept bit-compatible with the
// deployed contract. Its formula is expected to change upstream once the
// research version is final; do not adjust it here independently.

const tracker = "tracker"

var (
	// C, the upper bound of the tracker
	trackerCeiling = new(big.Int).Exp(big.NewInt(10), big.NewInt(19), nil)
	trackerScale   = int32(18) // S = 10^18
	trackerRoot    = int32(9)  // S2 = 10^9
)

// TrackerAmountOutForward returns the output for xIn at the given tracker:
//
//	y = ((C - tracker)^2 - (C - (tracker + xIn))^2) / (2*S)
func TrackerAmountOutForward(t, xIn *big.Int) (*big.Int, error) {
	if err := checkOperands(tracker, operand{"tracker", t}, operand{"x_in", xIn}); err != nil {
		return nil, err
	}
	if t.Cmp(trackerCeiling) > 0 {
		return nil, newError(tracker, "tracker", fmt.Errorf("%w: %s exceeds 10^19", ErrInvalidCurveState, t))
	}

	c := precision.New(precision.Digits28)
	ceiling := c.Int(trackerCeiling)
	before := c.Square(c.Sub(ceiling, c.Int(t)))
	after := c.Square(c.Sub(ceiling, c.Add(c.Int(t), c.Int(xIn))))
	den := c.Mul(c.Int64(2), c.Pow10(trackerScale))

	out, err := c.Truncate(c.Quo(c.Sub(before, after), den))
	if err != nil {
		return nil, newError(tracker, "", err)
	}
	if out.Sign() < 0 {
		return nil, newError(tracker, "x_in", fmt.Errorf("%w: trade of %s from tracker %s yields a negative amount", ErrInvalidCurveState, xIn, t))
	}
	return out, nil
}

// TrackerAmountOutInverse returns the output for yIn at the given tracker:
//
//	x = S2 * (sqrt(tracker + yIn) - sqrt(tracker))
func TrackerAmountOutInverse(t, yIn *big.Int) (*big.Int, error) {
	if err := checkOperands(tracker, operand{"tracker", t}, operand{"y_in", yIn}); err != nil {
		return nil, err
	}

	c := precision.New(precision.Digits28)
	tr := c.Int(t)
	diff := c.Sub(c.Sqrt(c.Add(tr, c.Int(yIn))), c.Sqrt(tr))
	out, err := c.Truncate(c.Mul(c.Pow10(trackerRoot), diff))
	if err != nil {
		return nil, newError(tracker, "", err)
	}
	return out, nil
}
