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

func fq6Gen() gopter.Gen {
	return func(genParams *gopter.GenParameters) *gopter.GenResult {
		mk := func() tower.Fq2 {
			return tower.Fq2{A0: field.NewFq(genParams.Rng.Uint64()), A1: field.NewFq(genParams.Rng.Uint64())}
		}
		v := tower.Fq6{C0: mk(), C1: mk(), C2: mk()}
		return gopter.NewGenResult(v, gopter.NoShrinker)
	}
}

func TestFq6RingLaws(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	properties := gopter.NewProperties(parameters)

	properties.Property("multiplication commutes", prop.ForAll(
		func(a, b tower.Fq6) bool { return a.Mul(b).Equal(b.Mul(a)) },
		fq6Gen(), fq6Gen(),
	))

	properties.Property("multiplication distributes over addition", prop.ForAll(
		func(a, b, c tower.Fq6) bool {
			return a.Mul(b.Add(c)).Equal(a.Mul(b).Add(a.Mul(c)))
		},
		fq6Gen(), fq6Gen(), fq6Gen(),
	))

	properties.Property("nonzero inverse", prop.ForAll(
		func(a tower.Fq6) bool {
			if a.IsZero() {
				return true
			}
			return a.Mul(a.Inverse()).IsOne()
		},
		fq6Gen(),
	))

	properties.Property("Frobenius(1) composed six times is identity", prop.ForAll(
		func(a tower.Fq6) bool { return a.Frobenius(6).Equal(a) },
		fq6Gen(),
	))

	properties.TestingRun(t)
}

func TestFq6MulByNonResidueMatchesVMultiplication(t *testing.T) {
	one := tower.Fq2One()
	v := tower.Fq6{C1: one} // the element v itself
	a := tower.Fq6{C0: tower.Fq2{A0: field.NewFq(2)}, C1: tower.Fq2{A0: field.NewFq(3)}, C2: tower.Fq2{A0: field.NewFq(5)}}
	require.True(t, a.MulByNonResidue().Equal(a.Mul(v)))
}
