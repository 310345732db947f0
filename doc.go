/*
Package rational implements exact rational numbers with 64-bit numerators and
denominators.
It is meant for computations that must not suffer from floating-point
rounding, such as symbolic math, exact accounting or the partial sums of a
series.

# Features

  - Immutable rational values, ensuring safe usage across multiple goroutines
  - Automatic reduction to lowest terms after every operation
  - Arithmetic and comparison operations between rationals
  - Exact conversions from and to [decimal.Decimal], float64 and [big.Rat]
  - Best rational approximation of a float under a denominator bound
  - Text, JSON, BSON, SQL and msgpack encodings of the "num/den" form

# Representation

A Rational consists of a signed numerator and a denominator, both int64.
The pair is always kept in lowest terms and the denominator is always
positive, so the sign of the number is the sign of the numerator and zero
is represented as 0/1.
Internally the denominator is stored biased by one, which makes the zero
value of the type a valid rational equal to 0.

# Operations

The package provides Add, Sub, Mul and Quo, which return a new rational and
leave their operands unmodified, as well as the assigning forms AddAssign,
SubAssign, MulAssign and QuoAssign, and Inc, Dec, PostInc and PostDec.
Comparisons are available as Equal, Less, LessEq, Greater, GreaterEq and Cmp.
They compare cross-products with 128-bit precision and therefore never
overflow.

# Overflow

Add, Sub, Mul and Quo cross-multiply numerators and denominators in int64.
These products are not checked: once they exceed the range of int64 they wrap
silently and the result is meaningless.
The checked forms TryAdd, TrySub, TryMul and TryQuo compute the same results
but return an error wrapping [ErrOverflow] instead of wrapping.

# Errors

Constructing a rational with a zero denominator returns [ErrZeroDenominator]
and dividing by a zero rational returns [ErrDivisionByZero].
Errors are wrapped with context and should be matched with [errors.Is].
A failed operation never leaves a partially updated value behind.
*/
package rational
