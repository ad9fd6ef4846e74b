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

package pairing_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Saudadeeee/zk-snark/curve"
	"github.com/Saudadeeee/zk-snark/field"
	"github.com/Saudadeeee/zk-snark/pairing"
)

func TestPairingBilinearity(t *testing.T) {
	g1 := curve.G1GeneratorAffine()
	g2 := curve.G2GeneratorAffine()

	a := field.NewFr(3)
	b := field.NewFr(5)

	aP := g1.ScalarMulFr(a)
	bQ := g2.ScalarMulFr(b)

	lhs := pairing.Pair(aP, bQ)

	base := pairing.Pair(g1, g2)
	ab := a.Mul(b)
	rhs := base.PowBig(ab.BigInt())

	require.True(t, lhs.Equal(rhs))
}

func TestPairingNonDegenerate(t *testing.T) {
	g1 := curve.G1GeneratorAffine()
	g2 := curve.G2GeneratorAffine()
	f := pairing.Pair(g1, g2)
	require.False(t, f.IsOne())
}

func TestPairingWithInfinityIsOne(t *testing.T) {
	inf1 := curve.G1InfinityAffine()
	g2 := curve.G2GeneratorAffine()
	require.True(t, pairing.Pair(inf1, g2).IsOne())

	g1 := curve.G1GeneratorAffine()
	inf2 := curve.G2InfinityAffine()
	require.True(t, pairing.Pair(g1, inf2).IsOne())
}

func TestPairingCheckDetectsMismatch(t *testing.T) {
	g1 := curve.G1GeneratorAffine()
	g2 := curve.G2GeneratorAffine()

	a := field.NewFr(4)
	b := field.NewFr(6) // e(aP,bQ) = e(P,Q)^24, which is not 1 since e is non-degenerate

	aP := g1.ScalarMulFr(a)
	bQ := g2.ScalarMulFr(b)

	ok, err := pairing.PairingCheck(context.Background(), []curve.G1Affine{aP}, []curve.G2Affine{bQ})
	require.NoError(t, err)
	require.False(t, ok)
}

func TestPairingCheckHoldsForMatchedSplit(t *testing.T) {
	g1 := curve.G1GeneratorAffine()
	g2 := curve.G2GeneratorAffine()

	a := field.NewFr(4)
	aP := g1.ScalarMulFr(a)
	negAP := curve.FromG1Affine(aP).Neg().ToAffine()

	ok, err := pairing.PairingCheck(
		context.Background(),
		[]curve.G1Affine{aP, negAP},
		[]curve.G2Affine{g2, g2},
	)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestMultiPairingLengthMismatch(t *testing.T) {
	_, err := pairing.MultiPairing(context.Background(), []curve.G1Affine{curve.G1GeneratorAffine()}, nil)
	require.ErrorIs(t, err, pairing.ErrLengthMismatch)
}
