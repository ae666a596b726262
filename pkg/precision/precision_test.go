package precision

import (
	"errors"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bigString(t *testing.T, s string) *big.Int {
	t.Helper()
	v, ok := new(big.Int).SetString(s, 10)
	require.True(t, ok, "bad literal %q", s)
	return v
}

func TestIntConversionIsExact(t *testing.T) {
	c := New(Digits18)
	in := bigString(t, "123456789012345678901234567890")
	out, err := c.Truncate(c.Int(in))
	require.NoError(t, err)
	assert.Equal(t, in.String(), out.String())
}

func TestRoundsToSignificantDigits(t *testing.T) {
	c := New(Digits18)
	assert.Equal(t, Digits18, c.Digits())
	// 10^20 + 1 needs 21 digits; the trailing 1 is rounded away.
	sum := c.Add(c.Pow10(20), c.Int64(1))
	out, err := c.Truncate(sum)
	require.NoError(t, err)
	assert.Equal(t, "100000000000000000000", out.String())

	wide := New(Digits28)
	assert.Equal(t, Digits28, wide.Digits())
	sum = wide.Add(wide.Pow10(20), wide.Int64(1))
	out, err = wide.Truncate(sum)
	require.NoError(t, err)
	assert.Equal(t, "100000000000000000001", out.String())
}

func TestTruncateDropsFraction(t *testing.T) {
	c := New(Digits28)
	out, err := c.Truncate(c.Quo(c.Int64(1000*1_000_000), c.Int64(1_001_000)))
	require.NoError(t, err)
	assert.Equal(t, "999", out.String())

	out, err = c.Truncate(c.Quo(c.Int64(-7), c.Int64(2)))
	require.NoError(t, err)
	assert.Equal(t, "-3", out.String())
}

func TestSqrtIsDecimal(t *testing.T) {
	c := New(Digits28)
	// 10^36 + 2*10^18 + 1 = (10^18 + 1)^2 is not representable as float64.
	sq := bigString(t, "1000000000000000002000000000000000001")
	out, err := c.Truncate(c.Sqrt(c.Int(sq)))
	require.NoError(t, err)
	assert.Equal(t, "1000000000000000001", out.String())
}

func TestDivisionByZero(t *testing.T) {
	c := New(Digits28)
	_, err := c.Truncate(c.Quo(c.Int64(0), c.Int64(0)))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDivisionByZero))
	assert.True(t, errors.Is(err, ErrDomain))

	var opErr *OpError
	require.True(t, errors.As(err, &opErr))
	assert.Equal(t, "quo", opErr.Op)
}

func TestNegativeRadicand(t *testing.T) {
	c := New(Digits18)
	_, err := c.Truncate(c.Sqrt(c.Int64(-4)))
	assert.ErrorIs(t, err, ErrNegativeRadicand)
}

func TestErrorIsSticky(t *testing.T) {
	c := New(Digits18)
	bad := c.Quo(c.Int64(1), c.Int64(0))
	_ = c.Add(bad, c.Int64(5))
	_ = c.Sqrt(c.Int64(-1))
	assert.ErrorIs(t, c.Err(), ErrDivisionByZero)

	_, err := c.Truncate(c.Int64(3))
	assert.ErrorIs(t, err, ErrDivisionByZero)
}
