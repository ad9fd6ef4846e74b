/*
Copyright © 2020 ConsenSys

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package poly implements dense univariate polynomial arithmetic over
// field.Fr, coefficients ordered from the constant term up: Polynomial
// {c0, c1, ..., cn} represents c0 + c1*x + ... + cn*x^n.
package poly

import (
	"errors"

	"github.com/Saudadeeee/zk-snark/field"
)

// ErrDivisionByZero is returned by DivRem when the divisor is the zero
// polynomial.
var ErrDivisionByZero = errors.New("poly: division by zero polynomial")

// ErrDuplicateInterpolationPoint is returned by Interpolate when two
// evaluation points coincide.
var ErrDuplicateInterpolationPoint = errors.New("poly: duplicate interpolation point")

// Polynomial is a dense coefficient vector, low-degree term first.
type Polynomial []field.Fr

// Zero returns the zero polynomial.
func Zero() Polynomial { return nil }

// Degree returns the polynomial's degree, or -1 for the zero polynomial.
func (p Polynomial) Degree() int {
	q := p.normalized()
	return len(q) - 1
}

// normalized strips trailing zero coefficients.
func (p Polynomial) normalized() Polynomial {
	n := len(p)
	for n > 0 && p[n-1].IsZero() {
		n--
	}
	return p[:n]
}

// IsZero reports whether p is the zero polynomial.
func (p Polynomial) IsZero() bool { return len(p.normalized()) == 0 }

// Clone returns an independent copy of p.
func (p Polynomial) Clone() Polynomial {
	out := make(Polynomial, len(p))
	copy(out, p)
	return out
}

// Add returns p+q.
func (p Polynomial) Add(q Polynomial) Polynomial {
	n := len(p)
	if len(q) > n {
		n = len(q)
	}
	out := make(Polynomial, n)
	for i := 0; i < n; i++ {
		var a, b field.Fr
		if i < len(p) {
			a = p[i]
		}
		if i < len(q) {
			b = q[i]
		}
		out[i] = a.Add(b)
	}
	return out.normalized()
}

// Sub returns p-q.
func (p Polynomial) Sub(q Polynomial) Polynomial {
	n := len(p)
	if len(q) > n {
		n = len(q)
	}
	out := make(Polynomial, n)
	for i := 0; i < n; i++ {
		var a, b field.Fr
		if i < len(p) {
			a = p[i]
		}
		if i < len(q) {
			b = q[i]
		}
		out[i] = a.Sub(b)
	}
	return out.normalized()
}

// ScalarMul returns k*p.
func (p Polynomial) ScalarMul(k field.Fr) Polynomial {
	out := make(Polynomial, len(p))
	for i, c := range p {
		out[i] = c.Mul(k)
	}
	return out.normalized()
}

// MulSchoolbook returns p*q via the O(n*m) schoolbook product.
func (p Polynomial) MulSchoolbook(q Polynomial) Polynomial {
	p = p.normalized()
	q = q.normalized()
	if len(p) == 0 || len(q) == 0 {
		return Zero()
	}
	out := make(Polynomial, len(p)+len(q)-1)
	for i := range out {
		out[i] = field.FrZero()
	}
	for i, a := range p {
		if a.IsZero() {
			continue
		}
		for j, b := range q {
			out[i+j] = out[i+j].Add(a.Mul(b))
		}
	}
	return out.normalized()
}

// MulXk returns x^k * p (a left shift by k coefficients).
func (p Polynomial) MulXk(k int) Polynomial {
	if p.IsZero() || k == 0 {
		return p.normalized()
	}
	out := make(Polynomial, len(p)+k)
	copy(out[k:], p)
	return out
}

// Eval evaluates p at x via Horner's method.
func (p Polynomial) Eval(x field.Fr) field.Fr {
	result := field.FrZero()
	for i := len(p) - 1; i >= 0; i-- {
		result = result.Mul(x).Add(p[i])
	}
	return result
}

// DivRem computes q, r such that p = q*divisor + r with deg(r) <
// deg(divisor), by schoolbook long division.
func (p Polynomial) DivRem(divisor Polynomial) (quotient, remainder Polynomial, err error) {
	divisor = divisor.normalized()
	if len(divisor) == 0 {
		return nil, nil, ErrDivisionByZero
	}
	remainder = p.normalized().Clone()
	divDeg := len(divisor) - 1
	leadInv := divisor[divDeg].Inverse()

	if len(remainder) <= divDeg {
		return Zero(), remainder, nil
	}
	quotient = make(Polynomial, len(remainder)-divDeg)

	for len(remainder) > divDeg {
		remDeg := len(remainder) - 1
		coeff := remainder[remDeg].Mul(leadInv)
		shift := remDeg - divDeg
		quotient[shift] = coeff

		for i, dc := range divisor {
			remainder[shift+i] = remainder[shift+i].Sub(coeff.Mul(dc))
		}
		remainder = remainder.normalized()
	}
	return quotient.normalized(), remainder, nil
}

// Vanishing returns the vanishing polynomial Z(x) = prod(x - points[i]).
func Vanishing(points []field.Fr) Polynomial {
	z := Polynomial{field.FrOne()}
	for _, pt := range points {
		z = z.MulSchoolbook(Polynomial{pt.Neg(), field.FrOne()})
	}
	return z
}

// LagrangeBasis returns the i-th Lagrange basis polynomial for the
// given interpolation points: the unique degree len(points)-1
// polynomial that is 1 at points[i] and 0 at every other points[j].
func LagrangeBasis(points []field.Fr, i int) (Polynomial, error) {
	num := Polynomial{field.FrOne()}
	denom := field.FrOne()
	xi := points[i]
	for j, pt := range points {
		if j == i {
			continue
		}
		if xi.Equal(pt) {
			return nil, ErrDuplicateInterpolationPoint
		}
		num = num.MulSchoolbook(Polynomial{pt.Neg(), field.FrOne()})
		denom = denom.Mul(xi.Sub(pt))
	}
	return num.ScalarMul(denom.Inverse()), nil
}

// Interpolate returns the unique polynomial of degree < len(points)
// passing through (points[i], values[i]) for all i.
func Interpolate(points, values []field.Fr) (Polynomial, error) {
	result := Zero()
	for i := range points {
		if values[i].IsZero() {
			continue
		}
		basis, err := LagrangeBasis(points, i)
		if err != nil {
			return nil, err
		}
		result = result.Add(basis.ScalarMul(values[i]))
	}
	return result, nil
}
