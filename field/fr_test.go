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

package field_test

import (
	"math/big"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"

	"github.com/Saudadeeee/zk-snark/field"
)

// frGen generates uniformly distributed Fr elements by sampling a
// random big.Int below the modulus.
func frGen() gopter.Gen {
	return func(genParams *gopter.GenParameters) *gopter.GenResult {
		v := new(big.Int).Rand(genParams.Rng, field.FrModulus)
		result := field.NewFrFromBigInt(v)
		return gopter.NewGenResult(result, gopter.NoShrinker)
	}
}

func TestFrFieldLaws(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	properties := gopter.NewProperties(parameters)

	properties.Property("addition commutes", prop.ForAll(
		func(a, b field.Fr) bool { return a.Add(b).Equal(b.Add(a)) },
		frGen(), frGen(),
	))

	properties.Property("addition associates", prop.ForAll(
		func(a, b, c field.Fr) bool { return a.Add(b).Add(c).Equal(a.Add(b.Add(c))) },
		frGen(), frGen(), frGen(),
	))

	properties.Property("multiplication distributes over addition", prop.ForAll(
		func(a, b, c field.Fr) bool {
			return a.Mul(b.Add(c)).Equal(a.Mul(b).Add(a.Mul(c)))
		},
		frGen(), frGen(), frGen(),
	))

	properties.Property("additive inverse", prop.ForAll(
		func(a field.Fr) bool { return a.Add(a.Neg()).IsZero() },
		frGen(),
	))

	properties.Property("multiplicative identity", prop.ForAll(
		func(a field.Fr) bool { return a.Mul(field.FrOne()).Equal(a) },
		frGen(),
	))

	properties.Property("nonzero inverse and Fermat's little theorem", prop.ForAll(
		func(a field.Fr) bool {
			if a.IsZero() {
				return true
			}
			if !a.Mul(a.Inverse()).IsOne() {
				return false
			}
			rMinus1 := new(big.Int).Sub(field.FrModulus, big.NewInt(1))
			return a.PowFr(field.NewFrFromBigInt(rMinus1)).IsOne()
		},
		frGen(),
	))

	properties.TestingRun(t)
}

func TestFrZeroInverseIsZero(t *testing.T) {
	require.True(t, field.FrZero().Inverse().IsZero())
}

func TestFrBytesRoundTrip(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	properties := gopter.NewProperties(parameters)

	properties.Property("Bytes/SetFrBytes round-trips", prop.ForAll(
		func(a field.Fr) bool {
			b := a.Bytes()
			back, err := field.SetFrBytes(b[:])
			return err == nil && back.Equal(a)
		},
		frGen(),
	))

	properties.Property("Hex/SetFrHex round-trips", prop.ForAll(
		func(a field.Fr) bool {
			h := a.Hex()
			back, err := field.SetFrHex(h)
			return err == nil && back.Equal(a)
		},
		frGen(),
	))

	properties.TestingRun(t)
}

func TestFrSetBytesRejectsOversizedInput(t *testing.T) {
	var tooLong [33]byte
	_, err := field.SetFrBytes(tooLong[:])
	require.ErrorIs(t, err, field.ErrInvalidFieldEncoding)
}

func TestFrSmallValueArithmetic(t *testing.T) {
	a := field.NewFr(12)
	b := field.NewFr(30)
	require.True(t, a.Add(b).Equal(field.NewFr(42)))
	require.True(t, b.Sub(a).Equal(field.NewFr(18)))
	require.True(t, a.Mul(b).Equal(field.NewFr(360)))
}

// gen.const isn't used above because gopter cannot Copy a struct with
// unexported fields on its own; frGen wires the modulus-bound sampling
// by hand instead. No test in this file uses gen; this line only keeps
// the import referenced.
var _ = gen.UInt8()
