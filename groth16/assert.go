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

package groth16

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Saudadeeee/zk-snark/entropy"
	"github.com/Saudadeeee/zk-snark/field"
	"github.com/Saudadeeee/zk-snark/qap"
	"github.com/Saudadeeee/zk-snark/r1cs"
)

// Assert bundles a testing.T with the round-trip Setup/Prove/Verify
// helpers below, so test files exercising sample circuits read as a
// short sequence of assertions instead of repeating error-handling
// boilerplate at every call site.
type Assert struct {
	t *testing.T
}

// NewAssert wraps t.
func NewAssert(t *testing.T) *Assert { return &Assert{t: t} }

// Solved runs the full Setup -> Prove -> Verify pipeline for sys and
// fullWitness and requires the proof to verify against publicInputs.
func (a *Assert) Solved(sys *r1cs.R1CS, q *qap.QAP, fullWitness []field.Fr, publicInputs []field.Fr, seed []byte) {
	a.t.Helper()
	src := entropy.NewDeterministic(seed)
	pk, vk, err := Setup(sys, src)
	require.NoError(a.t, err)

	proof, err := Prove(pk, q, fullWitness, src)
	require.NoError(a.t, err)

	ok, err := Verify(vk, publicInputs, proof)
	require.NoError(a.t, err)
	require.True(a.t, ok, "expected proof to verify")
}

// NotSolved is Solved's negative counterpart: it requires the R1CS to
// reject fullWitness outright (IsSatisfied returns false), since an
// unsatisfying witness should never make it to Prove in the first place.
func (a *Assert) NotSolved(sys *r1cs.R1CS, fullWitness []field.Fr) {
	a.t.Helper()
	ok, err := sys.IsSatisfied(fullWitness)
	require.NoError(a.t, err)
	require.False(a.t, ok, "expected witness to violate at least one constraint")
}
