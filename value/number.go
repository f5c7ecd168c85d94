package value

import (
	"go/constant"
	"math/big"
)

// Integer is an EDN integer, capable of arbitrary precision. It is backed by
// go/constant.Value so that small integers stay cheap (an int64) while
// overflowing literals promote to *big.Int transparently. go/constant keeps
// any value that fits in an int64 in the small form, N-suffixed or not.
type Integer struct {
	val constant.Value
}

// NewIntegerInt64 returns an Integer for a value that fits in an int64.
func NewIntegerInt64(v int64) Integer {
	return Integer{constant.MakeInt64(v)}
}

// NewIntegerBig returns an Integer backed by an arbitrary-precision *big.Int.
func NewIntegerBig(v *big.Int) Integer {
	return Integer{constant.Make(v)}
}

// Kind implements Value.
func (Integer) Kind() Kind { return KindInteger }

// Const returns the underlying go/constant.Value, whose Kind() is always
// constant.Int.
func (i Integer) Const() constant.Value { return i.val }

// BigInt returns the integer's value as a *big.Int.
func (i Integer) BigInt() *big.Int {
	if v, ok := constant.Int64Val(i.val); ok {
		return big.NewInt(v)
	}
	num, _ := new(big.Int).SetString(i.val.ExactString(), 10)
	return num
}

// Ratio is an EDN ratio: a numerator and a denominator, reduced to lowest
// terms by math/big.Rat.
type Ratio struct {
	val *big.Rat
}

// NewRatio returns a Ratio for num/den. den must be non-zero; the number
// parser in package edn checks for "Divide by zero" before calling this.
func NewRatio(num, den *big.Int) Ratio {
	return Ratio{new(big.Rat).SetFrac(num, den)}
}

// Kind implements Value.
func (Ratio) Kind() Kind { return KindRatio }

// Rat returns the underlying *big.Rat.
func (r Ratio) Rat() *big.Rat { return r.val }

// Float is an EDN 64-bit IEEE float.
type Float float64

// Kind implements Value.
func (Float) Kind() Kind { return KindFloat }

// BigDecimal is an EDN arbitrary-precision decimal literal (the M suffix).
// Go's standard library has no exact decimal floating point type; this is
// approximated with a *big.Float carrying generous precision, per the Open
// Question resolution recorded in DESIGN.md.
type BigDecimal struct {
	val *big.Float
}

// NewBigDecimal returns a BigDecimal wrapping f.
func NewBigDecimal(f *big.Float) BigDecimal {
	return BigDecimal{f}
}

// Kind implements Value.
func (BigDecimal) Kind() Kind { return KindBigDecimal }

// Float returns the underlying *big.Float.
func (d BigDecimal) Float() *big.Float { return d.val }
