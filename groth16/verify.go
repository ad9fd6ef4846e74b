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
	"context"

	"github.com/Saudadeeee/zk-snark/curve"
	"github.com/Saudadeeee/zk-snark/field"
	"github.com/Saudadeeee/zk-snark/pairing"
)

// Verify checks proof against vk and publicInputs (the assignment to
// every public variable except the implicit constant-one wire, in
// ascending variable-index order, which is the order Setup builds IC in).
//
// The check is the standard Groth16 pairing equation
//
//	e(A,B) = e(alpha,beta) * e(vsum,gamma) * e(C,delta)
//
// rearranged into a single batched product that must equal 1:
//
//	e(A,B) * e(alpha,beta)^-1 * e(vsum,gamma)^-1 * e(C,delta)^-1 == 1
//
// implemented here as one MultiPairing call with GammaNeg/DeltaNeg
// (precomputed at Setup) standing in for the gamma/delta inverses, and
// vk.E standing in for e(alpha,beta) so that term never needs its own
// Miller loop at verify time.
func Verify(vk *VerifyingKey, publicInputs []field.Fr, proof *Proof) (bool, error) {
	if len(publicInputs) != len(vk.IC)-1 {
		return false, ErrPublicInputShapeMismatch
	}

	vsum := curve.FromG1Affine(vk.IC[0])
	for i, in := range publicInputs {
		if in.IsZero() {
			continue
		}
		vsum = vsum.Add(curve.FromG1Affine(vk.IC[i+1]).ScalarMul(in.BigInt()))
	}
	vsumAffine := vsum.ToAffine()

	f, err := pairing.MultiPairing(
		context.Background(),
		[]curve.G1Affine{proof.A, vsumAffine, proof.C},
		[]curve.G2Affine{proof.B, vk.GammaNeg, vk.DeltaNeg},
	)
	if err != nil {
		return false, err
	}

	return f.Equal(vk.E), nil
}
