package numeric

import (
	"errors"
	"math/big"
)

// Sentinel errors for exact arithmetic.
var (
	// ErrDivisionByZero is returned on division or inversion by zero.
	ErrDivisionByZero = errors.New("numeric: division by zero")

	// ErrParse is returned when a string is not a base-10 number.
	ErrParse = errors.New("numeric: malformed number literal")
)

// Integer is a signed arbitrary-precision integer. The zero value is 0
// and ready to use. Integers are immutable.
type Integer struct {
	v *big.Int
}

// NewInteger returns the Integer with value x.
func NewInteger(x int64) Integer { return Integer{v: big.NewInt(x)} }

// IntegerFromString parses a base-10 integer literal.
func IntegerFromString(s string) (Integer, error) {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return Integer{}, ErrParse
	}
	return Integer{v: v}, nil
}

func (a Integer) big() *big.Int {
	if a.v == nil {
		return new(big.Int)
	}
	return a.v
}

// Add returns a + b.
func (a Integer) Add(b Integer) Integer {
	return Integer{v: new(big.Int).Add(a.big(), b.big())}
}

// Sub returns a - b.
func (a Integer) Sub(b Integer) Integer {
	return Integer{v: new(big.Int).Sub(a.big(), b.big())}
}

// Mul returns a * b.
func (a Integer) Mul(b Integer) Integer {
	return Integer{v: new(big.Int).Mul(a.big(), b.big())}
}

// Div returns the quotient a / b truncated towards zero. Fails with
// ErrDivisionByZero when b is zero.
func (a Integer) Div(b Integer) (Integer, error) {
	if b.Sign() == 0 {
		return Integer{}, ErrDivisionByZero
	}
	return Integer{v: new(big.Int).Quo(a.big(), b.big())}, nil
}

// Mod returns the remainder a % b with the sign of a (truncated
// division). Fails with ErrDivisionByZero when b is zero.
func (a Integer) Mod(b Integer) (Integer, error) {
	if b.Sign() == 0 {
		return Integer{}, ErrDivisionByZero
	}
	return Integer{v: new(big.Int).Rem(a.big(), b.big())}, nil
}

// Pow returns a raised to the non-negative exponent e.
func (a Integer) Pow(e uint) Integer {
	return Integer{v: new(big.Int).Exp(a.big(), big.NewInt(int64(e)), nil)}
}

// GCD returns the non-negative greatest common divisor of a and b.
func (a Integer) GCD(b Integer) Integer {
	x := new(big.Int).Abs(a.big())
	y := new(big.Int).Abs(b.big())
	return Integer{v: x.GCD(nil, nil, x, y)}
}

// Neg returns -a.
func (a Integer) Neg() Integer { return Integer{v: new(big.Int).Neg(a.big())} }

// Cmp returns -1, 0 or +1 as a is less than, equal to or greater
// than b.
func (a Integer) Cmp(b Integer) int { return a.big().Cmp(b.big()) }

// Sign returns -1, 0 or +1 as a is negative, zero or positive.
func (a Integer) Sign() int { return a.big().Sign() }

// EqualInt64 reports equality with a machine integer.
func (a Integer) EqualInt64(x int64) bool { return a.big().Cmp(big.NewInt(x)) == 0 }

// EqualString reports equality with a base-10 literal. A malformed
// literal compares unequal.
func (a Integer) EqualString(s string) bool {
	b, err := IntegerFromString(s)
	return err == nil && a.Cmp(b) == 0
}

// IsInt64 reports whether the value fits an int64.
func (a Integer) IsInt64() bool { return a.big().IsInt64() }

// Int64 returns the value as an int64; valid only when IsInt64.
func (a Integer) Int64() int64 { return a.big().Int64() }

// Float64 returns the nearest float64.
func (a Integer) Float64() float64 {
	f, _ := new(big.Float).SetInt(a.big()).Float64()
	return f
}

// String returns the base-10 representation.
func (a Integer) String() string { return a.big().String() }
