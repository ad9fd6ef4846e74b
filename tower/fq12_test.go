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

package tower_test

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"

	"github.com/Saudadeeee/zk-snark/field"
	"github.com/Saudadeeee/zk-snark/tower"
)

func fq12Gen() gopter.Gen {
	return func(genParams *gopter.GenParameters) *gopter.GenResult {
		mkFq2 := func() tower.Fq2 {
			return tower.Fq2{A0: field.NewFq(genParams.Rng.Uint64()), A1: field.NewFq(genParams.Rng.Uint64())}
		}
		mkFq6 := func() tower.Fq6 { return tower.Fq6{C0: mkFq2(), C1: mkFq2(), C2: mkFq2()} }
		v := tower.Fq12{C0: mkFq6(), C1: mkFq6()}
		return gopter.NewGenResult(v, gopter.NoShrinker)
	}
}

func TestFq12RingLaws(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	properties := gopter.NewProperties(parameters)

	properties.Property("multiplication commutes", prop.ForAll(
		func(a, b tower.Fq12) bool { return a.Mul(b).Equal(b.Mul(a)) },
		fq12Gen(), fq12Gen(),
	))

	properties.Property("nonzero inverse", prop.ForAll(
		func(a tower.Fq12) bool {
			if a.IsZero() {
				return true
			}
			return a.Mul(a.Inverse()).IsOne()
		},
		fq12Gen(),
	))

	properties.Property("CyclotomicSquare agrees with Square", prop.ForAll(
		func(a tower.Fq12) bool { return a.CyclotomicSquare().Equal(a.Square()) },
		fq12Gen(),
	))

	properties.Property("Frobenius(12) is identity", prop.ForAll(
		func(a tower.Fq12) bool { return a.Frobenius(12).Equal(a) },
		fq12Gen(),
	))

	properties.TestingRun(t)
}

// TestFinalExponentiationLandsInOrderRSubgroup checks the defining
// property of the final exponentiation map: for any nonzero f, raising
// FinalExponentiation(f) to the r-th power yields 1.
func TestFinalExponentiationLandsInOrderRSubgroup(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 5
	properties := gopter.NewProperties(parameters)

	properties.Property("f^((p^12-1)/r * r) == 1", prop.ForAll(
		func(a tower.Fq12) bool {
			if a.IsZero() {
				return true
			}
			g := tower.FinalExponentiation(a)
			return g.PowBig(field.FrModulus).IsOne()
		},
		fq12Gen(),
	))

	properties.TestingRun(t)
}

func TestFinalExponentiationOfItsImageStaysInOrderRSubgroup(t *testing.T) {
	a := tower.Fq12{
		C0: tower.Fq6{C0: tower.Fq2{A0: field.NewFq(4), A1: field.NewFq(1)}},
		C1: tower.Fq6{C1: tower.Fq2{A0: field.NewFq(2)}},
	}
	g := tower.FinalExponentiation(a)
	require.False(t, g.IsZero())
	// g already lies in the order-r subgroup. A second application of
	// FinalExponentiation does not in general return g itself; this
	// checks that its output is still of order r: g2^r == 1 as well.
	g2 := tower.FinalExponentiation(g)
	require.True(t, g2.PowBig(field.FrModulus).IsOne())
}
