package rational

import (
	"fmt"
	"math"
	"math/bits"
)

// TryAdd returns the sum of rationals r and b.
// Unlike [Rational.Add], every intermediate product is checked.
//
// TryAdd returns an error if an intermediate product, the sum or the result
// does not fit in int64.
func (r Rational) TryAdd(b Rational) (Rational, error) {
	c, err := r.tryAdd(b)
	if err != nil {
		return Rational{}, fmt.Errorf("computing [%v + %v]: %w", r, b, err)
	}
	return c, nil
}

func (r Rational) tryAdd(b Rational) (Rational, error) {
	x, y, d, err := r.cross(b)
	if err != nil {
		return Rational{}, err
	}
	n, ok := add64(x, y)
	if !ok {
		return Rational{}, ErrOverflow
	}
	return normalizeChecked(n, d)
}

// TrySub returns the difference between rationals r and b.
// Unlike [Rational.Sub], every intermediate product is checked.
//
// TrySub returns an error if an intermediate product, the difference or
// the result does not fit in int64.
func (r Rational) TrySub(b Rational) (Rational, error) {
	c, err := r.trySub(b)
	if err != nil {
		return Rational{}, fmt.Errorf("computing [%v - %v]: %w", r, b, err)
	}
	return c, nil
}

func (r Rational) trySub(b Rational) (Rational, error) {
	x, y, d, err := r.cross(b)
	if err != nil {
		return Rational{}, err
	}
	n, ok := sub64(x, y)
	if !ok {
		return Rational{}, ErrOverflow
	}
	return normalizeChecked(n, d)
}

// cross returns the products r.num * b.den, r.den * b.num and r.den * b.den.
func (r Rational) cross(b Rational) (x, y, d int64, err error) {
	var ok bool
	if x, ok = mul64(r.Num(), b.Denom()); !ok {
		return 0, 0, 0, ErrOverflow
	}
	if y, ok = mul64(r.Denom(), b.Num()); !ok {
		return 0, 0, 0, ErrOverflow
	}
	if d, ok = mul64(r.Denom(), b.Denom()); !ok {
		return 0, 0, 0, ErrOverflow
	}
	return x, y, d, nil
}

// TryMul returns the product of rationals r and b.
// Unlike [Rational.Mul], the products are checked.
//
// TryMul returns an error if the products do not fit in int64.
func (r Rational) TryMul(b Rational) (Rational, error) {
	c, err := r.tryMul(b)
	if err != nil {
		return Rational{}, fmt.Errorf("computing [%v * %v]: %w", r, b, err)
	}
	return c, nil
}

func (r Rational) tryMul(b Rational) (Rational, error) {
	n, ok := mul64(r.Num(), b.Num())
	if !ok {
		return Rational{}, ErrOverflow
	}
	d, ok := mul64(r.Denom(), b.Denom())
	if !ok {
		return Rational{}, ErrOverflow
	}
	return normalizeChecked(n, d)
}

// TryQuo returns the quotient of rationals r and b.
// Unlike [Rational.Quo], the products are checked.
//
// TryQuo returns an error if:
//   - b is 0;
//   - the products do not fit in int64.
func (r Rational) TryQuo(b Rational) (Rational, error) {
	c, err := r.tryQuo(b)
	if err != nil {
		return Rational{}, fmt.Errorf("computing [%v / %v]: %w", r, b, err)
	}
	return c, nil
}

func (r Rational) tryQuo(b Rational) (Rational, error) {
	if b.IsZero() {
		return Rational{}, ErrDivisionByZero
	}
	n, ok := mul64(r.Num(), b.Denom())
	if !ok {
		return Rational{}, ErrOverflow
	}
	d, ok := mul64(r.Denom(), b.Num())
	if !ok {
		return Rational{}, ErrOverflow
	}
	return normalizeChecked(n, d)
}

// Pow returns the rational r raised to the integer power n.
// Negative powers are computed from the reciprocal and 0^0 is 1.
//
// Pow returns an error if:
//   - r is 0 and n is negative;
//   - the numerator or the denominator of the result does not fit in int64.
func (r Rational) Pow(n int) (Rational, error) {
	c, err := r.pow(n)
	if err != nil {
		return Rational{}, fmt.Errorf("computing [%v^%v]: %w", r, n, err)
	}
	return c, nil
}

func (r Rational) pow(n int) (Rational, error) {
	// |n| as unsigned, exact for math.MinInt as well
	e := uint(n) //nolint:gosec
	if n < 0 {
		if r.IsZero() {
			return Rational{}, ErrDivisionByZero
		}
		if r.Num() == math.MinInt64 {
			return Rational{}, ErrOverflow
		}
		r, _ = r.Inv()
		e = -e
	}
	// Powers of coprime integers stay coprime, no reduction is needed.
	num, den := int64(1), int64(1)
	bnum, bden := r.Num(), r.Denom()
	var ok bool
	for e > 0 {
		if e&1 == 1 {
			if num, ok = mul64(num, bnum); !ok {
				return Rational{}, ErrOverflow
			}
			if den, ok = mul64(den, bden); !ok {
				return Rational{}, ErrOverflow
			}
		}
		e >>= 1
		if e == 0 {
			break
		}
		if bnum, ok = mul64(bnum, bnum); !ok {
			return Rational{}, ErrOverflow
		}
		if bden, ok = mul64(bden, bden); !ok {
			return Rational{}, ErrOverflow
		}
	}
	return newUnsafe(num, den), nil
}

// Trunc returns the integer part of the rational using
// [rounding toward zero].
//
// [rounding toward zero]: https://en.wikipedia.org/wiki/Rounding#Rounding_toward_zero
func (r Rational) Trunc() Rational {
	return NewFromInt64(r.Num() / r.Denom())
}

// Floor returns the greatest integer less than or equal to the rational using
// [rounding toward negative infinity].
//
// [rounding toward negative infinity]: https://en.wikipedia.org/wiki/Rounding#Rounding_down
func (r Rational) Floor() Rational {
	q, m := r.Num()/r.Denom(), r.Num()%r.Denom()
	if m < 0 {
		q--
	}
	return NewFromInt64(q)
}

// Ceil returns the least integer greater than or equal to the rational using
// [rounding toward positive infinity].
//
// [rounding toward positive infinity]: https://en.wikipedia.org/wiki/Rounding#Rounding_up
func (r Rational) Ceil() Rational {
	q, m := r.Num()/r.Denom(), r.Num()%r.Denom()
	if m > 0 {
		q++
	}
	return NewFromInt64(q)
}

// Round returns the nearest integer to the rational using
// [rounding half to even] (banker's rounding).
//
// [rounding half to even]: https://en.wikipedia.org/wiki/Rounding#Rounding_half_to_even
func (r Rational) Round() Rational {
	d := r.Denom()
	q, m := r.Num()/d, r.Num()%d
	// 2*|m| < 2*d <= 2^64, so the doubled remainder cannot wrap.
	half := 2 * uabs(m)
	if half > uint64(d) || (half == uint64(d) && q%2 != 0) {
		if r.IsNeg() {
			q--
		} else {
			q++
		}
	}
	return NewFromInt64(q)
}

// normalizeChecked is like normalize, but fails instead of wrapping when
// the sign cannot be moved onto the numerator.
func normalizeChecked(num, den int64) (Rational, error) {
	if den == 0 {
		return Rational{}, ErrDivisionByZero
	}
	g := gcd(uabs(num), uabs(den))
	if g > 1 {
		num /= int64(g) //nolint:gosec
		den /= int64(g) //nolint:gosec
	}
	if den < 0 && (num == math.MinInt64 || den == math.MinInt64) {
		return Rational{}, ErrOverflow
	}
	return normalize(num, den), nil
}

// mul64 returns a * b and false if the product does not fit in int64.
func mul64(a, b int64) (int64, bool) {
	hi, lo := bits.Mul64(uabs(a), uabs(b))
	if hi != 0 {
		return 0, false
	}
	if isNeg(a, b) {
		if lo > 1<<63 {
			return 0, false
		}
		return -int64(lo), true //nolint:gosec
	}
	if lo > math.MaxInt64 {
		return 0, false
	}
	return int64(lo), true
}

// add64 returns a + b and false if the sum does not fit in int64.
func add64(a, b int64) (int64, bool) {
	s := a + b
	if (a >= 0) == (b >= 0) && (s >= 0) != (a >= 0) {
		return 0, false
	}
	return s, true
}

// sub64 returns a - b and false if the difference does not fit in int64.
func sub64(a, b int64) (int64, bool) {
	s := a - b
	if (a >= 0) != (b >= 0) && (s >= 0) != (a >= 0) {
		return 0, false
	}
	return s, true
}
