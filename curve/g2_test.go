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

func TestG2GeneratorIsOnCurve(t *testing.T) {
	require.True(t, curve.G2GeneratorAffine().IsOnCurve())
}

func TestG2AddDoubleAgreement(t *testing.T) {
	g := curve.FromG2Affine(curve.G2GeneratorAffine())
	require.True(t, g.Double().Equal(g.Add(g)))
}

func TestG2ScalarMulHomomorphism(t *testing.T) {
	gAff := curve.G2GeneratorAffine()
	a := field.NewFr(13)
	b := field.NewFr(29)
	sum := a.Add(b)

	pa := gAff.ScalarMulFr(a)
	pb := gAff.ScalarMulFr(b)
	psum := gAff.ScalarMulFr(sum)

	lhs := curve.FromG2Affine(pa).AddMixed(pb)
	require.True(t, lhs.ToAffine().Equal(psum))
}

func TestG2ScalarMulByOrderIsInfinity(t *testing.T) {
	gAff := curve.G2GeneratorAffine()
	result := curve.FromG2Affine(gAff).ScalarMul(field.FrModulus)
	require.True(t, result.IsInfinity())
}

func TestG2FrobeniusMapKeepsGeneratorOnCurve(t *testing.T) {
	// FrobeniusMap does not fix the generator (on the r-torsion it acts
	// as multiplication by p mod r); this checks only that the mapped
	// point still lies on the twisted curve.
	g := curve.G2GeneratorAffine()
	mapped := g.FrobeniusMap()
	require.True(t, mapped.IsOnCurve())
}

func TestG2FrobeniusMapOfInfinityIsInfinity(t *testing.T) {
	inf := curve.G2InfinityAffine()
	require.True(t, inf.FrobeniusMap().IsInfinity())
}
