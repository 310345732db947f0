package main

import (
	"errors"
	"fmt"

	"github.com/govalues/rational"
)

var errTerms = errors.New("number of terms out of range")

// eulerSum returns 1 + 1/1! + ... + 1/(terms-1)!.
// 20! is the largest factorial that fits in int64.
func eulerSum(terms int64, checked bool) (rational.Rational, error) {
	if terms < 1 || terms > 21 {
		return rational.Rational{}, fmt.Errorf("summing e: %w: %v not in [1, 21]", errTerms, terms)
	}
	e := rational.NewFromInt64(1)
	fac := int64(1)
	for k := int64(1); k < terms; k++ {
		fac *= k
		term := rational.MustNew(1, fac)
		if !checked {
			e.AddAssign(term)
			continue
		}
		var err error
		e, err = e.TryAdd(term)
		if err != nil {
			return rational.Rational{}, fmt.Errorf("summing e, term %v: %w", k, err)
		}
	}
	return e, nil
}

// zenoSum returns 1/2 + 1/4 + ... + 1/2^terms.
func zenoSum(terms int64, checked bool) (rational.Rational, error) {
	if terms < 1 || terms > 62 {
		return rational.Rational{}, fmt.Errorf("summing zeno: %w: %v not in [1, 62]", errTerms, terms)
	}
	z := rational.Rational{}
	for k := int64(1); k <= terms; k++ {
		term := rational.MustNew(1, 1<<k)
		if !checked {
			z.AddAssign(term)
			continue
		}
		var err error
		z, err = z.TryAdd(term)
		if err != nil {
			return rational.Rational{}, fmt.Errorf("summing zeno, term %v: %w", k, err)
		}
	}
	return z, nil
}

// calc applies op to a and b and returns either a rational or,
// for comparisons, a bool or an int.
func calc(a rational.Rational, op string, b rational.Rational, checked bool) (any, error) {
	switch op {
	case "+":
		if checked {
			return a.TryAdd(b)
		}
		return a.Add(b), nil
	case "-":
		if checked {
			return a.TrySub(b)
		}
		return a.Sub(b), nil
	case "*", "x":
		if checked {
			return a.TryMul(b)
		}
		return a.Mul(b), nil
	case "/":
		if checked {
			return a.TryQuo(b)
		}
		return a.Quo(b)
	case "<":
		return a.Less(b), nil
	case "<=":
		return a.LessEq(b), nil
	case ">":
		return a.Greater(b), nil
	case ">=":
		return a.GreaterEq(b), nil
	case "==":
		return a.Equal(b), nil
	case "!=":
		return a.NotEqual(b), nil
	case "cmp":
		return a.Cmp(b), nil
	}
	return nil, fmt.Errorf("unknown operator %q", op)
}
