package curves

import (
	"fmt"
	"math/big"
	"sort"
)

// Operation is a named curve function taking ordered integer arguments.
type Operation struct {
	Name  string
	Curve string
	Args  []string
	Doc   string
	eval  func(args []*big.Int) (*big.Int, error)
}

// Evaluate parses raw decimal arguments in order and applies the operation.
func (op Operation) Evaluate(raw []string) (*big.Int, error) {
	if len(raw) != len(op.Args) {
		return nil, newError(op.Curve, "", fmt.Errorf("%w: %s takes %d arguments, got %d", ErrInputParse, op.Name, len(op.Args), len(raw)))
	}
	args := make([]*big.Int, len(raw))
	for i, s := range raw {
		v, err := ParseAmount(op.Args[i], s)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}
	return op.eval(args)
}

// EvaluateNamed is Evaluate with arguments looked up by name. A missing
// argument is a parse error.
func (op Operation) EvaluateNamed(named map[string]string) (*big.Int, error) {
	raw := make([]string, len(op.Args))
	for i, name := range op.Args {
		v, ok := named[name]
		if !ok {
			return nil, newError(op.Curve, name, fmt.Errorf("%w: argument is missing", ErrInputParse))
		}
		raw[i] = v
	}
	return op.Evaluate(raw)
}

var registry = map[string]Operation{}

func register(op Operation) {
	registry[op.Name] = op
}

func init() {
	register(Operation{
		Name:  "constant-product-amount-out",
		Curve: constantProduct,
		Args:  []string{"x", "y", "x_in"},
		Doc:   "swap output (x_in*y)/(x+x_in)",
		eval: func(a []*big.Int) (*big.Int, error) {
			return ConstantProductAmountOut(a[0], a[1], a[2])
		},
	})
	register(Operation{
		Name:  "constant-product-pro-rata",
		Curve: constantProduct,
		Args:  []string{"x", "y", "y_in"},
		Doc:   "proportional deposit (y_in*x)/y",
		eval: func(a []*big.Int) (*big.Int, error) {
			return ConstantProductProRata(a[0], a[1], a[2])
		},
	})
	register(Operation{
		Name:  "linear-forward",
		Curve: linear,
		Args:  []string{"m", "m_decimals", "token_decimals", "b", "b_decimals", "x_reserve", "x_in"},
		Doc:   "integrated linear curve output for x_in",
		eval: func(a []*big.Int) (*big.Int, error) {
			p := LinearParams{M: a[0], MDen: a[1], Scale: a[2], B: a[3], BDen: a[4]}
			return LinearAmountOutForward(p, a[5], a[6])
		},
	})
	register(Operation{
		Name:  "linear-inverse",
		Curve: linear,
		Args:  []string{"m", "m_denom", "token_decimals", "b", "b_denom", "y_reserve", "y_in"},
		Doc:   "integrated linear curve output for y_in",
		eval: func(a []*big.Int) (*big.Int, error) {
			p := LinearParams{M: a[0], MDen: a[1], Scale: a[2], B: a[3], BDen: a[4]}
			return LinearAmountOutInverse(p, a[5], a[6])
		},
	})
	register(Operation{
		Name:  "linear-point",
		Curve: linear,
		Args:  []string{"m", "decimals", "b", "x", "y_in_atto"},
		Doc:   "point price m/10^decimals*x+b",
		eval: func(a []*big.Int) (*big.Int, error) {
			return LinearPointPrice(a[0], a[1], a[2], a[3], a[4].Sign() != 0)
		},
	})
	register(Operation{
		Name:  "tracker-forward",
		Curve: tracker,
		Args:  []string{"tracker", "x_in"},
		Doc:   "provisional tracker curve output for x_in",
		eval: func(a []*big.Int) (*big.Int, error) {
			return TrackerAmountOutForward(a[0], a[1])
		},
	})
	register(Operation{
		Name:  "tracker-inverse",
		Curve: tracker,
		Args:  []string{"tracker", "y_in"},
		Doc:   "provisional tracker curve output for y_in",
		eval: func(a []*big.Int) (*big.Int, error) {
			return TrackerAmountOutInverse(a[0], a[1])
		},
	})
}

// Lookup returns the operation registered under name.
func Lookup(name string) (Operation, bool) {
	op, ok := registry[name]
	return op, ok
}

// Operations returns every registered operation sorted by name.
func Operations() []Operation {
	ops := make([]Operation, 0, len(registry))
	for _, op := range registry {
		ops = append(ops, op)
	}
	sort.Slice(ops, func(i, j int) bool { return ops[i].Name < ops[j].Name })
	return ops
}
