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

func fq2Gen() gopter.Gen {
	return func(genParams *gopter.GenParameters) *gopter.GenResult {
		v := tower.Fq2{
			A0: field.NewFq(genParams.Rng.Uint64()),
			A1: field.NewFq(genParams.Rng.Uint64()),
		}
		return gopter.NewGenResult(v, gopter.NoShrinker)
	}
}

func TestFq2RingLaws(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	properties := gopter.NewProperties(parameters)

	properties.Property("Mul agrees with Square on equal operands", prop.ForAll(
		func(a tower.Fq2) bool { return a.Mul(a).Equal(a.Square()) },
		fq2Gen(),
	))

	properties.Property("multiplication distributes over addition", prop.ForAll(
		func(a, b, c tower.Fq2) bool {
			return a.Mul(b.Add(c)).Equal(a.Mul(b).Add(a.Mul(c)))
		},
		fq2Gen(), fq2Gen(), fq2Gen(),
	))

	properties.Property("nonzero inverse", prop.ForAll(
		func(a tower.Fq2) bool {
			if a.IsZero() {
				return true
			}
			return a.Mul(a.Inverse()).IsOne()
		},
		fq2Gen(),
	))

	properties.Property("Conjugate is an involution", prop.ForAll(
		func(a tower.Fq2) bool { return a.Conjugate().Conjugate().Equal(a) },
		fq2Gen(),
	))

	properties.TestingRun(t)
}

func TestFq2BytesRoundTrip(t *testing.T) {
	a := tower.Fq2{A0: field.NewFq(7), A1: field.NewFq(11)}
	b := a.Bytes()
	back, err := tower.SetFq2Bytes(b[:])
	require.NoError(t, err)
	require.True(t, back.Equal(a))
}

func TestFq2MulByNonResidueMatchesDirectMul(t *testing.T) {
	a := tower.Fq2{A0: field.NewFq(3), A1: field.NewFq(5)}
	require.True(t, a.MulByNonResidue().Equal(a.Mul(tower.NonResidueFq6())))
}
