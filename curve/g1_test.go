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

package curve_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Saudadeeee/zk-snark/curve"
	"github.com/Saudadeeee/zk-snark/field"
)

func TestG1GeneratorIsOnCurve(t *testing.T) {
	require.True(t, curve.G1GeneratorAffine().IsOnCurve())
}

func TestG1AddDoubleAgreement(t *testing.T) {
	g := curve.FromG1Affine(curve.G1GeneratorAffine())
	doubled := g.Double()
	added := g.Add(g)
	require.True(t, doubled.Equal(added))
}

func TestG1ScalarMulHomomorphism(t *testing.T) {
	gAff := curve.G1GeneratorAffine()
	a := field.NewFr(7)
	b := field.NewFr(11)
	sum := a.Add(b)

	pa := gAff.ScalarMulFr(a)
	pb := gAff.ScalarMulFr(b)
	psum := gAff.ScalarMulFr(sum)

	lhs := curve.FromG1Affine(pa).AddMixed(pb)
	require.True(t, lhs.ToAffine().Equal(psum))
}

func TestG1ScalarMulByOrderIsInfinity(t *testing.T) {
	gAff := curve.G1GeneratorAffine()
	result := curve.FromG1Affine(gAff).ScalarMul(field.FrModulus)
	require.True(t, result.IsInfinity())
}

func TestG1AddWithInfinityIsIdentity(t *testing.T) {
	g := curve.FromG1Affine(curve.G1GeneratorAffine())
	inf := curve.G1InfinityJac()
	require.True(t, g.Add(inf).Equal(g))
	require.True(t, inf.Add(g).Equal(g))
}

func TestG1AddNegSelfIsInfinity(t *testing.T) {
	g := curve.FromG1Affine(curve.G1GeneratorAffine())
	require.True(t, g.Add(g.Neg()).IsInfinity())
}

func TestG1ToAffineFromAffineRoundTrip(t *testing.T) {
	gAff := curve.G1GeneratorAffine()
	jac := curve.FromG1Affine(gAff)
	back := jac.ToAffine()
	require.True(t, back.Equal(gAff))
}

func TestG1JacobianRescalingPreservesEquality(t *testing.T) {
	gAff := curve.G1GeneratorAffine()
	base := curve.FromG1Affine(gAff)

	z := field.NewFq(5)
	z2 := z.Square()
	z3 := z2.Mul(z)
	rescaled := curve.G1Jac{X: base.X.Mul(z2), Y: base.Y.Mul(z3), Z: z}

	require.True(t, base.Equal(rescaled))
}
