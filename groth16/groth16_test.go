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

package groth16_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Saudadeeee/zk-snark/entropy"
	"github.com/Saudadeeee/zk-snark/field"
	"github.com/Saudadeeee/zk-snark/groth16"
	"github.com/Saudadeeee/zk-snark/qap"
	"github.com/Saudadeeee/zk-snark/r1cs"
)

// buildSquareCircuit builds x*x=y, x private, y public, and returns
// the finalized system plus the two variable indices.
func buildSquareCircuit(t *testing.T) (*r1cs.R1CS, int, int) {
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

func TestGroth16SolvedCircuitVerifies(t *testing.T) {
	sys, x, y := buildSquareCircuit(t)
	q, err := qap.FromR1CS(context.Background(), sys)
	require.NoError(t, err)

	witness := make([]field.Fr, sys.NumVars())
	witness[0] = field.FrOne()
	witness[x] = field.NewFr(9)
	witness[y] = field.NewFr(81)

	assert := groth16.NewAssert(t)
	assert.Solved(sys, q, witness, []field.Fr{field.NewFr(81)}, []byte("groth16-square-circuit-fixture"))
}

func TestGroth16UnsatisfyingWitnessRejectedBeforeProve(t *testing.T) {
	sys, x, y := buildSquareCircuit(t)

	witness := make([]field.Fr, sys.NumVars())
	witness[0] = field.FrOne()
	witness[x] = field.NewFr(9)
	witness[y] = field.NewFr(82) // wrong

	assert := groth16.NewAssert(t)
	assert.NotSolved(sys, witness)
}

func TestGroth16VerifyRejectsWrongPublicInput(t *testing.T) {
	sys, x, y := buildSquareCircuit(t)
	q, err := qap.FromR1CS(context.Background(), sys)
	require.NoError(t, err)

	witness := make([]field.Fr, sys.NumVars())
	witness[0] = field.FrOne()
	witness[x] = field.NewFr(9)
	witness[y] = field.NewFr(81)

	src := entropy.NewDeterministic([]byte("groth16-wrong-public-input-fixture"))
	pk, vk, err := groth16.Setup(sys, src)
	require.NoError(t, err)

	proof, err := groth16.Prove(pk, q, witness, src)
	require.NoError(t, err)

	ok, err := groth16.Verify(vk, []field.Fr{field.NewFr(82)}, proof)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestGroth16WithWorkersLimitsConcurrencyButStillVerifies(t *testing.T) {
	sys, x, y := buildSquareCircuit(t)
	q, err := qap.FromR1CS(context.Background(), sys)
	require.NoError(t, err)

	witness := make([]field.Fr, sys.NumVars())
	witness[0] = field.FrOne()
	witness[x] = field.NewFr(9)
	witness[y] = field.NewFr(81)

	src := entropy.NewDeterministic([]byte("groth16-with-workers-fixture"))
	pk, vk, err := groth16.Setup(sys, src, groth16.WithWorkers(1))
	require.NoError(t, err)

	proof, err := groth16.Prove(pk, q, witness, src, groth16.WithWorkers(1))
	require.NoError(t, err)

	ok, err := groth16.Verify(vk, []field.Fr{field.NewFr(81)}, proof)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestGroth16VerifyRejectsShapeMismatch(t *testing.T) {
	sys, _, _ := buildSquareCircuit(t)
	src := entropy.NewDeterministic([]byte("groth16-shape-mismatch-fixture"))
	_, vk, err := groth16.Setup(sys, src)
	require.NoError(t, err)

	_, err = groth16.Verify(vk, []field.Fr{field.NewFr(1), field.NewFr(2)}, &groth16.Proof{})
	require.ErrorIs(t, err, groth16.ErrPublicInputShapeMismatch)
}

func TestGroth16ProveRejectsWitnessLengthMismatch(t *testing.T) {
	sys, _, _ := buildSquareCircuit(t)
	q, err := qap.FromR1CS(context.Background(), sys)
	require.NoError(t, err)

	src := entropy.NewDeterministic([]byte("groth16-witness-length-fixture"))
	pk, _, err := groth16.Setup(sys, src)
	require.NoError(t, err)

	_, err = groth16.Prove(pk, q, []field.Fr{field.FrOne()}, src)
	require.ErrorIs(t, err, groth16.ErrWitnessLength)
}

func TestGroth16ProveRejectsWitnessZeroSlotNotOne(t *testing.T) {
	sys, x, y := buildSquareCircuit(t)
	q, err := qap.FromR1CS(context.Background(), sys)
	require.NoError(t, err)

	src := entropy.NewDeterministic([]byte("groth16-witness-zero-slot-fixture"))
	pk, _, err := groth16.Setup(sys, src)
	require.NoError(t, err)

	witness := make([]field.Fr, sys.NumVars())
	witness[0] = field.NewFr(2) // must be 1
	witness[x] = field.NewFr(9)
	witness[y] = field.NewFr(81)

	_, err = groth16.Prove(pk, q, witness, src)
	require.ErrorIs(t, err, groth16.ErrWitnessLength)
}

func TestGroth16SetupRejectsNilR1CS(t *testing.T) {
	_, _, err := groth16.Setup(nil, entropy.OS())
	require.ErrorIs(t, err, groth16.ErrNilR1CS)
}
