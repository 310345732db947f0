package rational

import (
	"fmt"
	"math"
	"math/big"

	"github.com/govalues/decimal"
)

// pow10 holds the powers of ten that fit in int64.
var pow10 = [...]int64{
	1,
	10,
	100,
	1_000,
	10_000,
	100_000,
	1_000_000,
	10_000_000,
	100_000_000,
	1_000_000_000,
	10_000_000_000,
	100_000_000_000,
	1_000_000_000_000,
	10_000_000_000_000,
	100_000_000_000_000,
	1_000_000_000_000_000,
	10_000_000_000_000_000,
	100_000_000_000_000_000,
	1_000_000_000_000_000_000,
}

// NewFromDecimal converts a decimal to an exactly equal rational,
// for example 1.25 is converted to 5/4.
// See also method [Rational.Decimal].
//
// NewFromDecimal returns an error if, after removing trailing zeros,
// the coefficient of the decimal does not fit in int64 or the decimal has
// more than 18 digits after the decimal point.
func NewFromDecimal(d decimal.Decimal) (Rational, error) {
	r, err := newFromDecimal(d)
	if err != nil {
		return Rational{}, fmt.Errorf("converting decimal %v: %w", d, err)
	}
	return r, nil
}

func newFromDecimal(d decimal.Decimal) (Rational, error) {
	d = d.Trim(0)
	coef, scale := d.Coef(), d.Scale()
	if coef > math.MaxInt64 || scale >= len(pow10) {
		return Rational{}, ErrOverflow
	}
	num := int64(coef)
	if d.IsNeg() {
		num = -num
	}
	return normalize(num, pow10[scale]), nil
}

// Decimal returns the (possibly rounded) quotient num/den as a decimal.
// Terminating fractions such as 5/4 are converted exactly, others are rounded
// to [decimal.MaxPrec] significant digits.
// See also constructor [NewFromDecimal].
func (r Rational) Decimal() (decimal.Decimal, error) {
	d, err := r.decimal()
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("converting %v to decimal: %w", r, err)
	}
	return d, nil
}

func (r Rational) decimal() (decimal.Decimal, error) {
	n, err := decimal.New(r.Num(), 0)
	if err != nil {
		return decimal.Decimal{}, err
	}
	d, err := decimal.New(r.Denom(), 0)
	if err != nil {
		return decimal.Decimal{}, err
	}
	return n.Quo(d)
}

// NewFromFloat64 converts a float to an exactly equal rational.
// Every finite float is a dyadic fraction m/2^k, so the conversion is exact
// whenever m and 2^k fit in int64.
// See also function [Approx] and method [Rational.Float64].
//
// NewFromFloat64 returns an error if:
//   - the float is a special value (NaN or Inf);
//   - the numerator or the denominator does not fit in int64.
func NewFromFloat64(f float64) (Rational, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Rational{}, fmt.Errorf("converting float: special value %v", f)
	}
	b := new(big.Rat).SetFloat64(f)
	r, err := newFromBigRat(b)
	if err != nil {
		return Rational{}, fmt.Errorf("converting float %v: %w", f, err)
	}
	return r, nil
}

// Approx returns the rational closest to f among those with a denominator
// not greater than maxDenom, for example Approx(math.Pi, 1000) is 355/113.
// The search follows the continued fraction expansion of f.
//
// Approx returns an error if:
//   - the float is a special value (NaN or Inf);
//   - maxDenom is not positive;
//   - the numerator of the result does not fit in int64.
func Approx(f float64, maxDenom int64) (Rational, error) {
	r, err := approx(f, maxDenom)
	if err != nil {
		return Rational{}, fmt.Errorf("approximating %v with denominator at most %v: %w", f, maxDenom, err)
	}
	return r, nil
}

func approx(f float64, maxDenom int64) (Rational, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Rational{}, fmt.Errorf("special value %v", f)
	}
	if maxDenom < 1 {
		return Rational{}, fmt.Errorf("maximum denominator must be positive")
	}
	x := new(big.Rat).SetFloat64(f)
	return newFromBigRat(limitDenom(x, big.NewInt(maxDenom)))
}

// limitDenom returns the closest rational to x with denominator at most
// maxDenom. The candidates are the last convergent of x that satisfies the
// bound and the largest semiconvergent following it.
func limitDenom(x *big.Rat, maxDenom *big.Int) *big.Rat {
	if x.Denom().Cmp(maxDenom) <= 0 {
		return x
	}
	p0, q0 := big.NewInt(0), big.NewInt(1)
	p1, q1 := big.NewInt(1), big.NewInt(0)
	n, d := new(big.Int).Set(x.Num()), new(big.Int).Set(x.Denom())
	a, t := new(big.Int), new(big.Int)
	for d.Sign() != 0 {
		// Floor division, d is positive
		a.Div(n, d)
		q2 := t.Mul(a, q1)
		q2.Add(q2, q0)
		if q2.Cmp(maxDenom) > 0 {
			break
		}
		p2 := new(big.Int).Mul(a, p1)
		p2.Add(p2, p0)
		p0, q0, p1, q1 = p1, q1, p2, new(big.Int).Set(q2)
		m := new(big.Int).Mul(a, d)
		n, d = d, m.Sub(n, m)
	}

	// Semiconvergent
	k := new(big.Int).Sub(maxDenom, q0)
	k.Div(k, q1)
	sp := new(big.Int).Mul(k, p1)
	sp.Add(sp, p0)
	sq := new(big.Int).Mul(k, q1)
	sq.Add(sq, q0)
	semi := new(big.Rat).SetFrac(sp, sq)

	// Convergent
	conv := new(big.Rat).SetFrac(p1, q1)

	dconv := new(big.Rat).Sub(conv, x)
	dsemi := new(big.Rat).Sub(semi, x)
	if dconv.Abs(dconv).Cmp(dsemi.Abs(dsemi)) <= 0 {
		return conv
	}
	return semi
}

// NewFromBigRat converts a [big.Rat] to a rational.
// See also method [Rational.BigRat].
//
// NewFromBigRat returns an error if the numerator or the denominator
// does not fit in int64.
func NewFromBigRat(b *big.Rat) (Rational, error) {
	r, err := newFromBigRat(b)
	if err != nil {
		return Rational{}, fmt.Errorf("converting %v: %w", b, err)
	}
	return r, nil
}

func newFromBigRat(b *big.Rat) (Rational, error) {
	num, den := b.Num(), b.Denom()
	if !num.IsInt64() || !den.IsInt64() {
		return Rational{}, ErrOverflow
	}
	// big.Rat is always in lowest terms with a positive denominator.
	return newUnsafe(num.Int64(), den.Int64()), nil
}

// BigRat returns the rational as a newly allocated [big.Rat].
func (r Rational) BigRat() *big.Rat {
	return big.NewRat(r.Num(), r.Denom())
}
