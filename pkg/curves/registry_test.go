package curves

import (
	"math/big"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	v, err := ParseAmount("x", " 1000000 ")
	require.NoError(t, err)
	assert.Equal(t, "1000000", v.String())

	maxU256 := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 256), big.NewInt(1))
	v, err = ParseAmount("x", maxU256.String())
	require.NoError(t, err)
	assert.Equal(t, 0, v.Cmp(maxU256))

	for _, bad := range []string{"", "-5", "+5", "1.5", "abc", "0x10", "1e18", new(big.Int).Lsh(big.NewInt(1), 256).String()} {
		_, err := ParseAmount("x_in", bad)
		assert.ErrorIs(t, err, ErrInputParse, "input %q", bad)
	}
}

func TestParseAmountNamesOperand(t *testing.T) {
	_, err := ParseAmount("y_reserve", "nope")
	var cerr *Error
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, "y_reserve", cerr.Operand)
	assert.True(t, strings.Contains(err.Error(), "y_reserve"))
}

func TestOperationsAreSorted(t *testing.T) {
	ops := Operations()
	require.Len(t, ops, 7)
	for i := 1; i < len(ops); i++ {
		assert.Less(t, ops[i-1].Name, ops[i].Name)
	}
}

func TestEvaluateScenarios(t *testing.T) {
	cases := []struct {
		op   string
		args []string
		want string
	}{
		{"constant-product-amount-out", []string{"1000000", "1000000", "1000"}, "999"},
		{"constant-product-pro-rata", []string{"1000000", "2000000", "500"}, "250"},
		{"linear-forward", []string{"0", "1", "1000000000000000000", "2", "1", "0", "500"}, "1000"},
		{"linear-inverse", []string{"0", "1", "1000000000000000000", "2", "1", "0", "1000"}, "500"},
		{"linear-point", []string{"2", "0", "10", "5", "0"}, "20"},
		{"linear-point", []string{"3", "18", "0", "7", "1"}, "21"},
		{"tracker-forward", []string{"0", "100"}, "1000"},
		{"tracker-inverse", []string{"4", "5"}, "1000000000"},
	}
	for _, tc := range cases {
		t.Run(tc.op, func(t *testing.T) {
			op, ok := Lookup(tc.op)
			require.True(t, ok)
			out, err := op.Evaluate(tc.args)
			require.NoError(t, err)
			assert.Equal(t, tc.want, out.String())
		})
	}
}

func TestEvaluateRejectsBadInput(t *testing.T) {
	op, ok := Lookup("constant-product-amount-out")
	require.True(t, ok)

	_, err := op.Evaluate([]string{"1", "2"})
	assert.ErrorIs(t, err, ErrInputParse)

	_, err = op.Evaluate([]string{"1", "-2", "3"})
	assert.ErrorIs(t, err, ErrInputParse)

	_, err = op.Evaluate([]string{"0", "10", "0"})
	assert.ErrorIs(t, err, ErrArithmeticDomain)
}

func TestEvaluateNamed(t *testing.T) {
	op, ok := Lookup("tracker-forward")
	require.True(t, ok)

	out, err := op.EvaluateNamed(map[string]string{"tracker": "0", "x_in": "100"})
	require.NoError(t, err)
	assert.Equal(t, "1000", out.String())

	_, err = op.EvaluateNamed(map[string]string{"tracker": "0"})
	assert.ErrorIs(t, err, ErrInputParse)
}

func TestLookupUnknown(t *testing.T) {
	_, ok := Lookup("exponential")
	assert.False(t, ok)
}
