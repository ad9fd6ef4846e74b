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

// Package groth16 implements the Groth16 zkSNARK's three algorithms:
// Setup, Prove, and Verify.
package groth16

import (
	"errors"

	"github.com/rs/zerolog"

	"github.com/Saudadeeee/zk-snark/curve"
	"github.com/Saudadeeee/zk-snark/internal/zklog"
	"github.com/Saudadeeee/zk-snark/tower"
)

// ErrNilR1CS is returned by Setup when handed a nil constraint system.
var ErrNilR1CS = errors.New("groth16: r1cs is nil")

// ErrWitnessLength is returned by Prove when fullWitness does not have
// exactly pk.NumVars entries, or when fullWitness[0] is not the field
// element 1.
var ErrWitnessLength = errors.New("groth16: witness length does not match proving key")

// ErrPublicInputShapeMismatch is returned by Verify when publicInputs
// does not have exactly len(vk.IC)-1 entries.
var ErrPublicInputShapeMismatch = errors.New("groth16: public input length does not match verifying key")

// ProvingKey holds the structured reference string material a Groth16
// prover needs. Field names mirror the standard Groth16 presentation:
// AlphaG1/BetaG1/BetaG2/DeltaG1/DeltaG2 are the toxic-waste commitments,
// AQueryG1/BQueryG1/BQueryG2 are per-variable [A_i(tau)], [B_i(tau)]
// commitments (indexed like the witness), HQueryG1 holds the quotient
// polynomial's query basis, and KQueryG1 holds the private-variable
// linear combination basis (public slots are the group identity and
// unused by Prove).
type ProvingKey struct {
	NumVars      int
	PrivateMask  []bool
	AlphaG1      curve.G1Affine
	BetaG1       curve.G1Affine
	DeltaG1      curve.G1Affine
	BetaG2       curve.G2Affine
	DeltaG2      curve.G2Affine
	AQueryG1     []curve.G1Affine
	BQueryG1     []curve.G1Affine
	BQueryG2     []curve.G2Affine
	HQueryG1     []curve.G1Affine
	KQueryG1     []curve.G1Affine
}

// VerifyingKey holds the public material a Groth16 verifier needs.
// GammaNeg/DeltaNeg and E are precomputed at Setup time (mirroring the
// standard optimization of folding the two per-verify negations and
// the alpha/beta pairing into the SRS itself, so Verify only has to
// run the three remaining Miller loops).
type VerifyingKey struct {
	AlphaG1  curve.G1Affine
	BetaG2   curve.G2Affine
	GammaG2  curve.G2Affine
	DeltaG2  curve.G2Affine
	GammaNeg curve.G2Affine
	DeltaNeg curve.G2Affine
	E        tower.Fq12 // e(AlphaG1, BetaG2), precomputed
	IC       []curve.G1Affine
}

// Proof is a Groth16 proof: three group elements.
type Proof struct {
	A curve.G1Affine
	B curve.G2Affine
	C curve.G1Affine
}

// options configure Setup and Prove. The zero value is the default:
// zklog's shared logger and no forced worker cap (errgroup uses
// GOMAXPROCS-driven scheduling).
type options struct {
	logger  zerolog.Logger
	workers int
}

// Option configures Setup or Prove.
type Option func(*options)

// WithLogger overrides the logger Setup/Prove report progress to.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithWorkers caps the number of goroutines Setup/Prove's internal
// errgroup fan-outs use, via errgroup.Group.SetLimit. n<=0 leaves the
// default (unbounded, capped by GOMAXPROCS in practice) in place.
func WithWorkers(n int) Option {
	return func(o *options) { o.workers = n }
}

func newOptions(opts []Option) options {
	o := options{logger: zklog.Named("groth16")}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
