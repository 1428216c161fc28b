package numeric

import "math/big"

// Rational is an exact fraction held in lowest terms with a positive
// denominator. The zero value is 0/1 and ready to use. Rationals are
// immutable.
type Rational struct {
	v *big.Rat
}

// NewRational returns the canonicalized fraction num/den. Fails with
// ErrDivisionByZero when den is zero.
func NewRational(num, den int64) (Rational, error) {
	if den == 0 {
		return Rational{}, ErrDivisionByZero
	}
	return Rational{v: big.NewRat(num, den)}, nil
}

// RationalFromInteger returns a/1.
func RationalFromInteger(a Integer) Rational {
	return Rational{v: new(big.Rat).SetInt(a.big())}
}

// RationalFromIntegers returns the canonicalized fraction num/den.
// Fails with ErrDivisionByZero when den is zero.
func RationalFromIntegers(num, den Integer) (Rational, error) {
	if den.Sign() == 0 {
		return Rational{}, ErrDivisionByZero
	}
	return Rational{v: new(big.Rat).SetFrac(num.big(), den.big())}, nil
}

// RationalFromString parses "a/b" or a plain integer literal.
func RationalFromString(s string) (Rational, error) {
	v, ok := new(big.Rat).SetString(s)
	if !ok {
		return Rational{}, ErrParse
	}
	return Rational{v: v}, nil
}

func (a Rational) big() *big.Rat {
	if a.v == nil {
		return new(big.Rat)
	}
	return a.v
}

// Add returns a + b.
func (a Rational) Add(b Rational) Rational {
	return Rational{v: new(big.Rat).Add(a.big(), b.big())}
}

// Sub returns a - b.
func (a Rational) Sub(b Rational) Rational {
	return Rational{v: new(big.Rat).Sub(a.big(), b.big())}
}

// Mul returns a * b.
func (a Rational) Mul(b Rational) Rational {
	return Rational{v: new(big.Rat).Mul(a.big(), b.big())}
}

// Div returns a / b. Fails with ErrDivisionByZero when b is zero.
func (a Rational) Div(b Rational) (Rational, error) {
	if b.Sign() == 0 {
		return Rational{}, ErrDivisionByZero
	}
	return Rational{v: new(big.Rat).Quo(a.big(), b.big())}, nil
}

// Pow returns a raised to the non-negative exponent e.
func (a Rational) Pow(e uint) Rational {
	num := new(big.Int).Exp(a.big().Num(), big.NewInt(int64(e)), nil)
	den := new(big.Int).Exp(a.big().Denom(), big.NewInt(int64(e)), nil)
	return Rational{v: new(big.Rat).SetFrac(num, den)}
}

// Invert returns 1/a. Fails with ErrDivisionByZero when a is zero.
func (a Rational) Invert() (Rational, error) {
	if a.Sign() == 0 {
		return Rational{}, ErrDivisionByZero
	}
	return Rational{v: new(big.Rat).Inv(a.big())}, nil
}

// Num returns the canonical numerator (carries the sign).
func (a Rational) Num() Integer { return Integer{v: new(big.Int).Set(a.big().Num())} }

// Denom returns the canonical denominator (always positive).
func (a Rational) Denom() Integer { return Integer{v: new(big.Int).Set(a.big().Denom())} }

// Cmp returns -1, 0 or +1 as a is less than, equal to or greater
// than b.
func (a Rational) Cmp(b Rational) int { return a.big().Cmp(b.big()) }

// Sign returns -1, 0 or +1 as a is negative, zero or positive.
func (a Rational) Sign() int { return a.big().Sign() }

// Floor returns the largest Integer not greater than a.
func (a Rational) Floor() Integer {
	q := new(big.Int)
	r := new(big.Int)
	q.QuoRem(a.big().Num(), a.big().Denom(), r)
	if r.Sign() < 0 {
		q.Sub(q, big.NewInt(1))
	}
	return Integer{v: q}
}

// Float64 returns the nearest float64.
func (a Rational) Float64() float64 {
	f, _ := a.big().Float64()
	return f
}

// String returns "num/den", or just "num" when the denominator is 1.
func (a Rational) String() string {
	if a.big().IsInt() {
		return a.big().Num().String()
	}
	return a.big().RatString()
}
