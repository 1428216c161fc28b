package numeric_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/treemetrics/linarr/numeric"
)

func TestIntegerArithmetic(t *testing.T) {
	a := numeric.NewInteger(42)
	b := numeric.NewInteger(-5)

	assert.True(t, a.Add(b).EqualInt64(37))
	assert.True(t, a.Sub(b).EqualInt64(47))
	assert.True(t, a.Mul(b).EqualInt64(-210))

	q, err := a.Div(b)
	require.NoError(t, err)
	assert.True(t, q.EqualInt64(-8)) // truncated towards zero

	r, err := a.Mod(b)
	require.NoError(t, err)
	assert.True(t, r.EqualInt64(2))

	_, err = a.Div(numeric.Integer{})
	assert.ErrorIs(t, err, numeric.ErrDivisionByZero)
	_, err = a.Mod(numeric.NewInteger(0))
	assert.ErrorIs(t, err, numeric.ErrDivisionByZero)
}

func TestIntegerBigValues(t *testing.T) {
	// 7^30 overflows int64
	p := numeric.NewInteger(7).Pow(30)
	assert.False(t, p.IsInt64())
	assert.True(t, p.EqualString("22539340290692258087863249"))
	assert.Equal(t, "22539340290692258087863249", p.String())

	parsed, err := numeric.IntegerFromString("22539340290692258087863249")
	require.NoError(t, err)
	assert.Zero(t, p.Cmp(parsed))

	_, err = numeric.IntegerFromString("not a number")
	assert.ErrorIs(t, err, numeric.ErrParse)
}

func TestIntegerGCDAndOrder(t *testing.T) {
	g := numeric.NewInteger(-12).GCD(numeric.NewInteger(18))
	assert.True(t, g.EqualInt64(6))
	assert.True(t, numeric.NewInteger(0).GCD(numeric.NewInteger(7)).EqualInt64(7))

	assert.Equal(t, -1, numeric.NewInteger(1).Cmp(numeric.NewInteger(2)))
	assert.Equal(t, 1, numeric.NewInteger(2).Cmp(numeric.Integer{}))
	assert.Equal(t, -1, numeric.NewInteger(-3).Sign())
	assert.InDelta(t, -3.0, numeric.NewInteger(-3).Float64(), 0)
}

func TestRationalCanonicalForm(t *testing.T) {
	r, err := numeric.NewRational(6, -8)
	require.NoError(t, err)
	// lowest terms, positive denominator
	assert.True(t, r.Num().EqualInt64(-3))
	assert.True(t, r.Denom().EqualInt64(4))
	assert.Equal(t, "-3/4", r.String())

	_, err = numeric.NewRational(1, 0)
	assert.ErrorIs(t, err, numeric.ErrDivisionByZero)
}

func TestRationalArithmetic(t *testing.T) {
	half, err := numeric.NewRational(1, 2)
	require.NoError(t, err)
	third, err := numeric.NewRational(1, 3)
	require.NoError(t, err)

	sum := half.Add(third)
	assert.Equal(t, "5/6", sum.String())
	assert.Equal(t, "1/6", half.Sub(third).String())
	assert.Equal(t, "1/6", half.Mul(third).String())

	q, err := half.Div(third)
	require.NoError(t, err)
	assert.Equal(t, "3/2", q.String())

	inv, err := q.Invert()
	require.NoError(t, err)
	assert.Equal(t, "2/3", inv.String())

	assert.Equal(t, "9/4", q.Pow(2).String())
	assert.InDelta(t, 1.5, q.Float64(), 1e-15)

	_, err = half.Div(numeric.Rational{})
	assert.ErrorIs(t, err, numeric.ErrDivisionByZero)
	_, err = numeric.Rational{}.Invert()
	assert.ErrorIs(t, err, numeric.ErrDivisionByZero)
}

func TestRationalFloor(t *testing.T) {
	cases := []struct {
		num, den int64
		want     int64
	}{
		{7, 2, 3},
		{-7, 2, -4},
		{6, 3, 2},
		{-6, 3, -2},
		{0, 5, 0},
	}
	for _, c := range cases {
		r, err := numeric.NewRational(c.num, c.den)
		require.NoError(t, err)
		assert.True(t, r.Floor().EqualInt64(c.want), "%d/%d", c.num, c.den)
	}
}

func TestRationalFromString(t *testing.T) {
	r, err := numeric.RationalFromString("10/4")
	require.NoError(t, err)
	assert.Equal(t, "5/2", r.String())

	whole, err := numeric.RationalFromString("12")
	require.NoError(t, err)
	assert.Equal(t, "12", whole.String())

	_, err = numeric.RationalFromString("one half")
	assert.ErrorIs(t, err, numeric.ErrParse)
}
