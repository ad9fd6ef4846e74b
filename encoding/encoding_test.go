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

package encoding_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Saudadeeee/zk-snark/curve"
	"github.com/Saudadeeee/zk-snark/encoding"
	"github.com/Saudadeeee/zk-snark/entropy"
	"github.com/Saudadeeee/zk-snark/field"
	"github.com/Saudadeeee/zk-snark/groth16"
	"github.com/Saudadeeee/zk-snark/qap"
	"github.com/Saudadeeee/zk-snark/r1cs"
)

func TestVersionHeaderRoundTrip(t *testing.T) {
	buf := encoding.WriteVersionHeader(nil)
	v, rest, err := encoding.ReadVersionHeader(buf)
	require.NoError(t, err)
	require.Empty(t, rest)
	require.Equal(t, encoding.FormatVersion.Major, v.Major)
}

func TestVersionHeaderRejectsFutureMajor(t *testing.T) {
	buf := encoding.WriteVersionHeader(nil)
	buf[0] = byte(encoding.FormatVersion.Major + 1)
	_, _, err := encoding.ReadVersionHeader(buf)
	require.ErrorIs(t, err, encoding.ErrUnsupportedVersion)
}

func TestG1RoundTrip(t *testing.T) {
	p := curve.G1GeneratorAffine()
	buf := encoding.PutG1(nil, p)
	got, rest, err := encoding.GetG1(buf)
	require.NoError(t, err)
	require.Empty(t, rest)
	require.True(t, got.Equal(p))
}

func TestG1InfinityRoundTrip(t *testing.T) {
	p := curve.G1InfinityAffine()
	buf := encoding.PutG1(nil, p)
	got, _, err := encoding.GetG1(buf)
	require.NoError(t, err)
	require.True(t, got.IsInfinity())
}

func TestG2RoundTrip(t *testing.T) {
	p := curve.G2GeneratorAffine()
	buf := encoding.PutG2(nil, p)
	got, rest, err := encoding.GetG2(buf)
	require.NoError(t, err)
	require.Empty(t, rest)
	require.True(t, got.Equal(p))
}

func TestFrVectorRoundTrip(t *testing.T) {
	v := []field.Fr{field.NewFr(1), field.NewFr(2), field.NewFr(3)}
	buf := encoding.EncodeFrVector(v)
	got, err := encoding.DecodeFrVector(buf)
	require.NoError(t, err)
	require.Len(t, got, len(v))
	for i := range v {
		require.True(t, v[i].Equal(got[i]))
	}
}

func TestProofRoundTrip(t *testing.T) {
	proof := &groth16.Proof{
		A: curve.G1GeneratorAffine(),
		B: curve.G2GeneratorAffine(),
		C: curve.G1GeneratorAffine(),
	}
	buf := encoding.EncodeProof(proof)
	got, err := encoding.DecodeProof(buf)
	require.NoError(t, err)
	require.True(t, got.A.Equal(proof.A))
	require.True(t, got.B.Equal(proof.B))
	require.True(t, got.C.Equal(proof.C))
}

func TestDebugProofRoundTrip(t *testing.T) {
	proof := &groth16.Proof{
		A: curve.G1GeneratorAffine(),
		B: curve.G2GeneratorAffine(),
		C: curve.G1GeneratorAffine(),
	}
	buf, err := encoding.MarshalDebugProof(proof)
	require.NoError(t, err)
	got, err := encoding.UnmarshalDebugProof(buf)
	require.NoError(t, err)
	require.Equal(t, proof.A.X.Hex(), got.AX)
	require.Equal(t, proof.A.Y.Hex(), got.AY)
}

func TestPublicMaskRoundTrip(t *testing.T) {
	mask := []bool{false, true, true, false, true}
	buf, err := encoding.EncodePublicMask(mask)
	require.NoError(t, err)
	got, err := encoding.DecodePublicMask(buf, len(mask))
	require.NoError(t, err)
	require.Equal(t, mask, got)
}

// buildCircuitForEncoding builds x*x=y, x private and y public.
func buildCircuitForEncoding(t *testing.T) (*r1cs.R1CS, int, int) {
	t.Helper()
	sys := r1cs.New()
	x, err := sys.AllocateVar()
	require.NoError(t, err)
	y, err := sys.AllocateVar()
	require.NoError(t, err)
	require.NoError(t, sys.MarkPublic(y))
	one := field.FrOne()
	require.NoError(t, sys.AddConstraint(
		r1cs.LinearCombination{{Coeff: one, Variable: x}},
		r1cs.LinearCombination{{Coeff: one, Variable: x}},
		r1cs.LinearCombination{{Coeff: one, Variable: y}},
	))
	sys.Finalize()
	return sys, x, y
}

func TestR1CSRoundTrip(t *testing.T) {
	sys, x, y := buildCircuitForEncoding(t)
	buf, err := encoding.EncodeR1CS(sys)
	require.NoError(t, err)

	decoded, err := encoding.DecodeR1CS(buf)
	require.NoError(t, err)

	require.Equal(t, sys.NumVars(), decoded.NumVars())
	require.Equal(t, sys.NumConstraints(), decoded.NumConstraints())
	require.Equal(t, sys.PublicVariables(), decoded.PublicVariables())

	witness := make([]field.Fr, decoded.NumVars())
	witness[0] = field.FrOne()
	witness[x] = field.NewFr(6)
	witness[y] = field.NewFr(36)
	ok, err := decoded.IsSatisfied(witness)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestProvingAndVerifyingKeyRoundTrip(t *testing.T) {
	sys, x, y := buildCircuitForEncoding(t)
	q, err := qap.FromR1CS(context.Background(), sys)
	require.NoError(t, err)

	src := entropy.NewDeterministic([]byte("encoding-roundtrip-fixture"))
	pk, vk, err := groth16.Setup(sys, src)
	require.NoError(t, err)

	pkBytes := encoding.EncodeProvingKey(pk)
	decodedPK, err := encoding.DecodeProvingKey(pkBytes)
	require.NoError(t, err)
	require.Equal(t, pk.NumVars, decodedPK.NumVars)
	require.Equal(t, pk.PrivateMask, decodedPK.PrivateMask)
	require.True(t, pk.AlphaG1.Equal(decodedPK.AlphaG1))

	vkBytes := encoding.EncodeVerifyingKey(vk)
	decodedVK, err := encoding.DecodeVerifyingKey(vkBytes)
	require.NoError(t, err)
	require.True(t, vk.E.Equal(decodedVK.E))
	require.True(t, vk.GammaNeg.Equal(decodedVK.GammaNeg))

	witness := make([]field.Fr, sys.NumVars())
	witness[0] = field.FrOne()
	witness[x] = field.NewFr(4)
	witness[y] = field.NewFr(16)

	proof, err := groth16.Prove(decodedPK, q, witness, src)
	require.NoError(t, err)

	ok, err := groth16.Verify(decodedVK, []field.Fr{field.NewFr(16)}, proof)
	require.NoError(t, err)
	require.True(t, ok)
}
