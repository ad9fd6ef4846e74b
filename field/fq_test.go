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
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"

	"github.com/Saudadeeee/zk-snark/field"
)

func fqGen() gopter.Gen {
	return func(genParams *gopter.GenParameters) *gopter.GenResult {
		v := new(big.Int).Rand(genParams.Rng, field.FqModulus)
		result := field.NewFqFromBigInt(v)
		return gopter.NewGenResult(result, gopter.NoShrinker)
	}
}

func TestFqFieldLaws(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	properties := gopter.NewProperties(parameters)

	properties.Property("addition commutes", prop.ForAll(
		func(a, b field.Fq) bool { return a.Add(b).Equal(b.Add(a)) },
		fqGen(), fqGen(),
	))

	properties.Property("multiplication distributes over addition", prop.ForAll(
		func(a, b, c field.Fq) bool {
			return a.Mul(b.Add(c)).Equal(a.Mul(b).Add(a.Mul(c)))
		},
		fqGen(), fqGen(), fqGen(),
	))

	properties.Property("nonzero inverse", prop.ForAll(
		func(a field.Fq) bool {
			if a.IsZero() {
				return true
			}
			return a.Mul(a.Inverse()).IsOne()
		},
		fqGen(),
	))

	properties.Property("square then Sqrt recovers a root", prop.ForAll(
		func(a field.Fq) bool {
			sq := a.Square()
			root, ok := sq.Sqrt()
			if !ok {
				return false
			}
			return root.Square().Equal(sq)
		},
		fqGen(),
	))

	properties.TestingRun(t)
}

func TestFqIsSquareRejectsKnownNonResidue(t *testing.T) {
	// -1 is a quadratic non-residue mod p for BN254's p (p ≡ 3 mod 4),
	// since squares raised to (p-1)/2 give 1 and -1 does not for p≡3(4)
	// primes where -1 is a non-residue.
	negOne := field.FqOne().Neg()
	_, ok := negOne.Sqrt()
	require.False(t, ok)
}

func TestFqBytesRoundTrip(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	properties := gopter.NewProperties(parameters)

	properties.Property("Bytes/SetFqBytes round-trips", prop.ForAll(
		func(a field.Fq) bool {
			b := a.Bytes()
			back, err := field.SetFqBytes(b[:])
			return err == nil && back.Equal(a)
		},
		fqGen(),
	))

	properties.TestingRun(t)
}
