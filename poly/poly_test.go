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

package poly_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/Saudadeeee/zk-snark/field"
	"github.com/Saudadeeee/zk-snark/poly"
)

func frs(vals ...uint64) []field.Fr {
	out := make([]field.Fr, len(vals))
	for i, v := range vals {
		out[i] = field.NewFr(v)
	}
	return out
}

func TestPolynomialEval(t *testing.T) {
	// p(x) = 1 + 2x + 3x^2
	p := poly.Polynomial(frs(1, 2, 3))
	got := p.Eval(field.NewFr(5))
	require.True(t, got.Equal(field.NewFr(1+2*5+3*25)))
}

func TestPolynomialAddSubRoundTrip(t *testing.T) {
	p := poly.Polynomial(frs(1, 2, 3))
	q := poly.Polynomial(frs(4, 5))
	sum := p.Add(q)
	back := sum.Sub(q)
	require.Equal(t, p.Degree(), back.Degree())
	for i := range p {
		require.True(t, p[i].Equal(back[i]))
	}
}

func TestPolynomialMulSchoolbookDegree(t *testing.T) {
	p := poly.Polynomial(frs(1, 1))    // x+1
	q := poly.Polynomial(frs(1, 0, 1)) // x^2+1
	product := p.MulSchoolbook(q)
	require.Equal(t, 3, product.Degree())

	x := field.NewFr(7)
	require.True(t, product.Eval(x).Equal(p.Eval(x).Mul(q.Eval(x))))
}

func TestPolynomialMulXk(t *testing.T) {
	p := poly.Polynomial(frs(3, 4))
	shifted := p.MulXk(2)
	require.Equal(t, 3, shifted.Degree())
	require.True(t, shifted.Eval(field.FrZero()).IsZero())
}

func TestPolynomialDivRem(t *testing.T) {
	// (x^2 - 1) / (x - 1) = x + 1, remainder 0
	dividend := poly.Polynomial(frs(0, 0, 1)).Sub(poly.Polynomial(frs(1)))
	divisor := poly.Polynomial{field.FrOne().Neg(), field.FrOne()}

	q, r, err := dividend.DivRem(divisor)
	require.NoError(t, err)
	require.True(t, r.IsZero())
	require.True(t, q.Eval(field.NewFr(9)).Equal(field.NewFr(10)))
}

func TestPolynomialDivRemByZeroErrors(t *testing.T) {
	p := poly.Polynomial(frs(1, 2))
	_, _, err := p.DivRem(poly.Zero())
	require.ErrorIs(t, err, poly.ErrDivisionByZero)
}

func TestVanishingPolynomialRootsAtPoints(t *testing.T) {
	points := frs(1, 2, 3)
	z := poly.Vanishing(points)
	for _, pt := range points {
		require.True(t, z.Eval(pt).IsZero())
	}
	require.False(t, z.Eval(field.NewFr(4)).IsZero())
}

func TestInterpolateRecoversValues(t *testing.T) {
	points := frs(1, 2, 3)
	values := frs(10, 20, 30)

	p, err := poly.Interpolate(points, values)
	require.NoError(t, err)

	for i, pt := range points {
		require.True(t, p.Eval(pt).Equal(values[i]))
	}
}

func TestPolynomialAddIsCommutative(t *testing.T) {
	p := poly.Polynomial(frs(1, 2, 3))
	q := poly.Polynomial(frs(4, 5))
	if diff := cmp.Diff(p.Add(q), q.Add(p)); diff != "" {
		t.Fatalf("p+q and q+p diverge (-got +want):\n%s", diff)
	}
}

func TestInterpolateDuplicatePointsErrors(t *testing.T) {
	points := frs(1, 1)
	values := frs(1, 2)
	_, err := poly.Interpolate(points, values)
	require.ErrorIs(t, err, poly.ErrDuplicateInterpolationPoint)
}
