package rational

import (
	"errors"
	"fmt"
	"math"
	"math/bits"
	"strconv"
	"strings"

	"github.com/govalues/decimal"
)

var (
	// ErrZeroDenominator is returned when a rational is constructed with a
	// zero denominator.
	ErrZeroDenominator = errors.New("zero denominator")
	// ErrDivisionByZero is returned when the divisor of a quotient is zero.
	ErrDivisionByZero = errors.New("division by zero")
	// ErrOverflow is returned by the checked operations when an intermediate
	// product or the result does not fit in int64.
	ErrOverflow = errors.New("integer overflow")
	// ErrInvalidFormat is returned when a string does not represent a rational.
	ErrInvalidFormat = errors.New("invalid rational format")
)

// Rational type represents an exact rational number num/den with a 64-bit
// numerator and a 64-bit denominator.
// Its zero value corresponds to 0/1.
//
// Every Rational is kept in lowest terms with a strictly positive denominator,
// so the sign is always carried by the numerator.
// Two valid rationals can be compared using the == and != operators.
// Rational is designed to be safe for concurrent use by multiple goroutines.
type Rational struct {
	num int64 // numerator, carries the sign
	den int64 // denominator minus one, so that the zero value is 0/1
}

// newUnsafe creates a new rational without reducing it.
// Use it only if you are absolutely sure that num and den are coprime and
// den is positive.
func newUnsafe(num, den int64) Rational {
	return Rational{num: num, den: den - 1}
}

// normalize reduces num/den to lowest terms and moves the sign onto the
// numerator. The denominator must not be zero.
func normalize(num, den int64) Rational {
	g := gcd(uabs(num), uabs(den))
	if g > 1 {
		// g == 1<<63 only when both num and den are math.MinInt64 or zero,
		// int64(g) is then math.MinInt64 and the division yields 1 or 0.
		num /= int64(g) //nolint:gosec
		den /= int64(g) //nolint:gosec
	}
	switch {
	case num < 0 && den < 0:
		num, den = -num, -den
	case (num < 0) != (den < 0):
		num, den = -abs(num), abs(den)
	}
	if den == 0 {
		// Only reachable when an unchecked product wraps to zero.
		den = 1
	}
	return newUnsafe(num, den)
}

// New returns a rational equal to num/den reduced to lowest terms.
// The sign of the result is carried by the numerator,
// for example New(4, -6) is -2/3 and New(-18, -12) is 3/2.
//
// New returns an error if:
//   - the denominator is zero;
//   - the sign cannot be moved onto the numerator, as in 1/[math.MinInt64]
//     or [math.MinInt64]/-1.
func New(num, den int64) (Rational, error) {
	if den == 0 {
		return Rational{}, fmt.Errorf("constructing [%v/%v]: %w", num, den, ErrZeroDenominator)
	}
	r, err := normalizeChecked(num, den)
	if err != nil {
		return Rational{}, fmt.Errorf("constructing [%v/%v]: %w", num, den, err)
	}
	return r, nil
}

// MustNew is like [New] but panics if the rational cannot be constructed.
// It simplifies safe initialization of global variables holding rationals.
func MustNew(num, den int64) Rational {
	r, err := New(num, den)
	if err != nil {
		panic(fmt.Sprintf("New(%v, %v) failed: %v", num, den, err))
	}
	return r
}

// NewFromInt64 returns a rational equal to the integer v, that is v/1.
func NewFromInt64(v int64) Rational {
	return Rational{num: v}
}

// Parse converts a string to a rational.
// The input string must be in one of the following formats:
//
//	-5/3
//	18/-12
//	42
//	-1.25
//	1.5e-3
//
// The numerator and the denominator are base 10 integers that fit in int64,
// the fraction does not have to be in lowest terms.
// Decimal notation is converted exactly, see [NewFromDecimal].
//
// Parse returns an error if:
//   - the string does not represent a rational;
//   - the denominator is zero;
//   - a part of the string does not fit in int64.
func Parse(s string) (Rational, error) {
	r, err := parse(s)
	if err != nil {
		return Rational{}, fmt.Errorf("parsing rational: %w", err)
	}
	return r, nil
}

func parse(s string) (Rational, error) {
	// Fraction
	if num, den, ok := strings.Cut(s, "/"); ok {
		n, err := parseInt(num)
		if err != nil {
			return Rational{}, fmt.Errorf("numerator %q: %w", num, err)
		}
		d, err := parseInt(den)
		if err != nil {
			return Rational{}, fmt.Errorf("denominator %q: %w", den, err)
		}
		return New(n, d)
	}

	// Decimal
	if strings.ContainsAny(s, ".eE") {
		d, err := decimal.Parse(s)
		if err != nil {
			return Rational{}, fmt.Errorf("%w: %w", ErrInvalidFormat, err)
		}
		return NewFromDecimal(d)
	}

	// Integer
	n, err := parseInt(s)
	if err != nil {
		return Rational{}, err
	}
	return NewFromInt64(n), nil
}

// parseInt parses a base 10 integer and maps strconv errors to
// ErrOverflow and ErrInvalidFormat.
func parseInt(s string) (int64, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	switch {
	case errors.Is(err, strconv.ErrRange):
		return 0, ErrOverflow
	case err != nil:
		return 0, ErrInvalidFormat
	}
	return n, nil
}

// MustParse is like [Parse] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding rationals.
func MustParse(s string) Rational {
	r, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("Parse(%q) failed: %v", s, err))
	}
	return r
}

// Num returns the numerator of the rational.
// The numerator carries the sign and is coprime to the denominator.
func (r Rational) Num() int64 {
	return r.num
}

// Denom returns the denominator of the rational.
// The denominator is always positive.
func (r Rational) Denom() int64 {
	return r.den + 1
}

// Float64 returns the nearest binary floating-point approximation of num/den.
// The result is meant for display and inspection only,
// it is not exact in general.
func (r Rational) Float64() float64 {
	return float64(r.Num()) / float64(r.Denom())
}

// Sign returns:
//
//	-1 if r < 0
//	 0 if r = 0
//	+1 if r > 0
func (r Rational) Sign() int {
	switch {
	case r.IsNeg():
		return -1
	case r.IsZero():
		return 0
	default:
		return 1
	}
}

// IsNeg returns:
//
//	true  if r < 0
//	false otherwise
func (r Rational) IsNeg() bool {
	return isNeg(r.Num(), r.Denom())
}

// IsPos returns:
//
//	true  if r > 0
//	false otherwise
func (r Rational) IsPos() bool {
	return !r.IsZero() && !r.IsNeg()
}

// IsZero returns:
//
//	true  if r = 0
//	false otherwise
func (r Rational) IsZero() bool {
	return r.num == 0
}

// IsOne returns:
//
//	true  if r = -1 or r = 1
//	false otherwise
func (r Rational) IsOne() bool {
	return r.IsInt() && (r.num == 1 || r.num == -1)
}

// IsInt returns true if the denominator is 1.
func (r Rational) IsInt() bool {
	return r.Denom() == 1
}

// Abs returns the absolute value of the rational, |num|/den.
func (r Rational) Abs() Rational {
	return newUnsafe(abs(r.Num()), abs(r.Denom()))
}

// Neg returns the additive inverse of the rational, -num/den.
func (r Rational) Neg() Rational {
	return newUnsafe(-r.Num(), r.Denom())
}

// Inv returns the reciprocal of the rational, den/num.
//
// Inv returns an error if:
//   - the rational is 0;
//   - the numerator is [math.MinInt64], whose magnitude cannot be
//     a denominator.
func (r Rational) Inv() (Rational, error) {
	switch {
	case r.IsZero():
		return Rational{}, fmt.Errorf("inverting %v: %w", r, ErrDivisionByZero)
	case r.Num() == math.MinInt64:
		return Rational{}, fmt.Errorf("inverting %v: %w", r, ErrOverflow)
	case r.IsNeg():
		return newUnsafe(-r.Denom(), -r.Num()), nil
	default:
		return newUnsafe(r.Denom(), r.Num()), nil
	}
}

// AddAssign sets r to the sum r + b.
// The cross-multiplied products are not checked for overflow and wrap
// silently once they exceed the range of int64.
// Use [Rational.TryAdd] when the operands may be large.
func (r *Rational) AddAssign(b Rational) {
	n, d := r.Num(), r.Denom()
	*r = normalize(n*b.Denom()+d*b.Num(), d*b.Denom())
}

// SubAssign sets r to the difference r - b.
// The cross-multiplied products are not checked for overflow and wrap
// silently once they exceed the range of int64.
// Use [Rational.TrySub] when the operands may be large.
func (r *Rational) SubAssign(b Rational) {
	n, d := r.Num(), r.Denom()
	*r = normalize(n*b.Denom()-d*b.Num(), d*b.Denom())
}

// MulAssign sets r to the product r * b.
// The products are not checked for overflow and wrap silently once they
// exceed the range of int64.
// Use [Rational.TryMul] when the operands may be large.
func (r *Rational) MulAssign(b Rational) {
	n, d := r.Num(), r.Denom()
	*r = normalize(n*b.Num(), d*b.Denom())
}

// QuoAssign sets r to the quotient r / b.
// The products are not checked for overflow and wrap silently once they
// exceed the range of int64.
// Use [Rational.TryQuo] when the operands may be large.
//
// QuoAssign returns an error if b is 0, in which case r is left unchanged.
func (r *Rational) QuoAssign(b Rational) error {
	if b.IsZero() {
		return fmt.Errorf("computing [%v / %v]: %w", *r, b, ErrDivisionByZero)
	}
	n, d := r.Num(), r.Denom()
	*r = normalize(n*b.Denom(), d*b.Num())
	return nil
}

// Add returns the sum of rationals r and b.
// Neither operand is modified.
// See [Rational.AddAssign] for the overflow behavior.
func (r Rational) Add(b Rational) Rational {
	r.AddAssign(b)
	return r
}

// Sub returns the difference between rationals r and b.
// Neither operand is modified.
// See [Rational.SubAssign] for the overflow behavior.
func (r Rational) Sub(b Rational) Rational {
	r.SubAssign(b)
	return r
}

// Mul returns the product of rationals r and b.
// Neither operand is modified.
// See [Rational.MulAssign] for the overflow behavior.
func (r Rational) Mul(b Rational) Rational {
	r.MulAssign(b)
	return r
}

// Quo returns the quotient of rationals r and b.
// Neither operand is modified.
// See [Rational.QuoAssign] for the overflow behavior.
//
// Quo returns an error if b is 0.
func (r Rational) Quo(b Rational) (Rational, error) {
	if err := r.QuoAssign(b); err != nil {
		return Rational{}, err
	}
	return r, nil
}

// Inc adds one to r and returns the new value.
// Since num/den is in lowest terms, num+den is coprime to den as well,
// so no reduction is needed.
func (r *Rational) Inc() Rational {
	r.num += abs(r.Denom())
	return *r
}

// Dec subtracts one from r and returns the new value.
func (r *Rational) Dec() Rational {
	r.num -= abs(r.Denom())
	return *r
}

// PostInc adds one to r and returns the value r had before.
func (r *Rational) PostInc() Rational {
	old := *r
	r.Inc()
	return old
}

// PostDec subtracts one from r and returns the value r had before.
func (r *Rational) PostDec() Rational {
	old := *r
	r.Dec()
	return old
}

// crossAbs returns |r.num * b.den| and |r.den * b.num| as 128-bit values.
func crossAbs(r, b Rational) (xh, xl, yh, yl uint64) {
	xh, xl = bits.Mul64(uabs(r.Num()), uabs(b.Denom()))
	yh, yl = bits.Mul64(uabs(r.Denom()), uabs(b.Num()))
	return xh, xl, yh, yl
}

// Equal returns true if r and b are the same number.
// Cross-products are computed with 128-bit precision and never overflow.
func (r Rational) Equal(b Rational) bool {
	if r.IsNeg() != b.IsNeg() {
		return false
	}
	xh, xl, yh, yl := crossAbs(r, b)
	return xh == yh && xl == yl
}

// NotEqual returns true if r and b are different numbers.
func (r Rational) NotEqual(b Rational) bool {
	return !r.Equal(b)
}

// Less returns true if r < b.
// Cross-products are computed with 128-bit precision and never overflow.
func (r Rational) Less(b Rational) bool {
	rneg, bneg := r.IsNeg(), b.IsNeg()
	if rneg != bneg {
		return rneg
	}
	xh, xl, yh, yl := crossAbs(r, b)
	if rneg {
		return xh > yh || (xh == yh && xl > yl)
	}
	return xh < yh || (xh == yh && xl < yl)
}

// LessEq returns true if r <= b.
func (r Rational) LessEq(b Rational) bool {
	return !r.Greater(b)
}

// Greater returns true if r > b.
func (r Rational) Greater(b Rational) bool {
	return b.Less(r)
}

// GreaterEq returns true if r >= b.
func (r Rational) GreaterEq(b Rational) bool {
	return !r.Less(b)
}

// Cmp compares rationals and returns:
//
//	-1 if r < b
//	 0 if r = b
//	+1 if r > b
//
// See also method [Rational.CmpAbs].
func (r Rational) Cmp(b Rational) int {
	switch {
	case r.Less(b):
		return -1
	case r.Equal(b):
		return 0
	default:
		return 1
	}
}

// CmpAbs compares absolute values of rationals and returns:
//
//	-1 if |r| < |b|
//	 0 if |r| = |b|
//	+1 if |r| > |b|
//
// See also method [Rational.Cmp].
func (r Rational) CmpAbs(b Rational) int {
	return r.Abs().Cmp(b.Abs())
}

// Min returns the smaller rational.
func (r Rational) Min(b Rational) Rational {
	if r.LessEq(b) {
		return r
	}
	return b
}

// Max returns the larger rational.
func (r Rational) Max(b Rational) Rational {
	if r.GreaterEq(b) {
		return r
	}
	return b
}

// Clamp compares rationals and returns:
//
//	min if r < min
//	max if r > max
//	  r otherwise
//
// Clamp returns an error if min is greater than max.
func (r Rational) Clamp(min, max Rational) (Rational, error) {
	if min.Greater(max) {
		return Rational{}, fmt.Errorf("clamping %v: invalid range [%v, %v]", r, min, max)
	}
	switch {
	case r.Less(min):
		return min, nil
	case r.Greater(max):
		return max, nil
	}
	return r, nil
}

// String implements the [fmt.Stringer] interface and returns a string
// representation of the rational in the form "num/den", for example
// "-5/3", "9/16" or "-9/1" for whole numbers.
// See also methods [Rational.Format] and constructor [Parse].
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (r Rational) String() string {
	var buf [41]byte
	return string(r.append(buf[:0]))
}

// append appends the "num/den" form of the rational to text.
func (r Rational) append(text []byte) []byte {
	text = strconv.AppendInt(text, r.Num(), 10)
	text = append(text, '/')
	return strconv.AppendInt(text, r.Denom(), 10)
}

// Format implements the [fmt.Formatter] interface.
// The following [format verbs] are available:
//
//	| Verb   | Example                | Description           |
//	| ------ | ---------------------- | --------------------- |
//	| %s, %v | -5/3                   | Fraction              |
//	| %q     | "-5/3"                 | Quoted fraction       |
//	| %f     | -1.666666666666666667  | Decimal approximation |
//
// The '-', '+' and ' ' format flags can be used with %s, %v and %q,
// the '0' flag is ignored.
// For %f all flags and the precision are those of [decimal.Decimal], which
// holds the quotient rounded to [decimal.MaxPrec] significant digits.
// The default precision is the scale of that quotient.
//
// [format verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (r Rational) Format(state fmt.State, verb rune) {
	if verb == 'f' || verb == 'F' {
		d, err := r.Decimal()
		if err == nil {
			//nolint:errcheck
			fmt.Fprintf(state, fmt.FormatString(state, verb), d)
			return
		}
	}

	var text [41]byte
	frac := r.append(text[:0])

	// Explicit sign of non-negative rationals
	var sign byte
	if !r.IsNeg() {
		switch {
		case state.Flag('+'):
			sign = '+'
		case state.Flag(' '):
			sign = ' '
		}
	}
	psign := 0
	if sign != 0 {
		psign = 1
	}

	// Opening and closing quotes
	lquote, tquote := 0, 0
	if verb == 'q' || verb == 'Q' {
		lquote, tquote = 1, 1
	}

	// Calculating padding
	width := lquote + psign + len(frac) + tquote
	lspaces, tspaces := 0, 0
	if w, ok := state.Width(); ok && w > width {
		switch {
		case state.Flag('-'):
			tspaces = w - width
		default:
			lspaces = w - width
		}
		width = w
	}

	buf := make([]byte, 0, width)

	// Leading spaces
	for i := 0; i < lspaces; i++ {
		buf = append(buf, ' ')
	}

	// Opening quote
	for i := 0; i < lquote; i++ {
		buf = append(buf, '"')
	}

	// Sign
	if sign != 0 {
		buf = append(buf, sign)
	}

	// Fraction
	buf = append(buf, frac...)

	// Closing quote
	for i := 0; i < tquote; i++ {
		buf = append(buf, '"')
	}

	// Trailing spaces
	for i := 0; i < tspaces; i++ {
		buf = append(buf, ' ')
	}

	// Writing result
	//nolint:errcheck
	switch verb {
	case 'q', 'Q', 's', 'S', 'v', 'V':
		state.Write(buf)
	default:
		state.Write([]byte("%!"))
		state.Write([]byte{byte(verb)})
		state.Write([]byte("(rational.Rational="))
		state.Write(buf)
		state.Write([]byte(")"))
	}
}

// isNeg returns true if exactly one of num and den is negative.
func isNeg(num, den int64) bool {
	return (num < 0) != (den < 0)
}

// gcd returns the greatest common divisor of a and b, with gcd(0, b) = b.
func gcd(a, b uint64) uint64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// abs returns the absolute value of x.
// abs(math.MinInt64) is math.MinInt64.
func abs(x int64) int64 {
	if x < 0 {
		return -x
	}
	return x
}

// uabs returns the absolute value of x as an unsigned integer.
// Unlike abs, it is exact for math.MinInt64.
func uabs(x int64) uint64 {
	if x < 0 {
		return uint64(-x) //nolint:gosec
	}
	return uint64(x)
}
