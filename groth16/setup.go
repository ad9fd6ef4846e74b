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

	"golang.org/x/sync/errgroup"

	"github.com/Saudadeeee/zk-snark/curve"
	"github.com/Saudadeeee/zk-snark/entropy"
	"github.com/Saudadeeee/zk-snark/field"
	"github.com/Saudadeeee/zk-snark/pairing"
	"github.com/Saudadeeee/zk-snark/qap"
	"github.com/Saudadeeee/zk-snark/r1cs"
)

// Setup runs a single-party (non-MPC) Groth16 trusted setup for sys,
// drawing the toxic waste tau, alpha, beta, gamma, delta from src. The
// caller is responsible for discarding src's internal state afterward;
// this function never persists the toxic waste anywhere. The per-variable
// query commitments are computed by an errgroup fan-out, one goroutine
// per variable; pass WithWorkers to cap its concurrency.
func Setup(sys *r1cs.R1CS, src entropy.Source, opts ...Option) (*ProvingKey, *VerifyingKey, error) {
	if sys == nil {
		return nil, nil, ErrNilR1CS
	}
	o := newOptions(opts)

	q, err := qap.FromR1CS(context.Background(), sys)
	if err != nil {
		return nil, nil, err
	}

	tau := nonZeroFr(src)
	alpha := nonZeroFr(src)
	beta := nonZeroFr(src)
	gamma := nonZeroFr(src)
	delta := nonZeroFr(src)

	o.logger.Debug().Msg("setup: toxic waste sampled")

	gammaInv := gamma.Inverse()
	deltaInv := delta.Inverse()

	g1 := curve.G1GeneratorAffine()
	g2 := curve.G2GeneratorAffine()

	numVars := sys.NumVars()
	privateMask := make([]bool, numVars)
	for i := 0; i < numVars; i++ {
		privateMask[i] = !sys.IsPublic(i)
	}

	aQueryG1 := make([]curve.G1Affine, numVars)
	bQueryG1 := make([]curve.G1Affine, numVars)
	bQueryG2 := make([]curve.G2Affine, numVars)
	kQueryG1 := make([]curve.G1Affine, numVars)
	icSlots := make([]curve.G1Affine, numVars)

	g, _ := errgroup.WithContext(context.Background())
	if o.workers > 0 {
		g.SetLimit(o.workers)
	}
	for i := 0; i < numVars; i++ {
		i := i
		g.Go(func() error {
			ai := q.APolys[i].Eval(tau)
			bi := q.BPolys[i].Eval(tau)
			ci := q.CPolys[i].Eval(tau)

			aQueryG1[i] = curve.FromG1Affine(g1).ScalarMul(ai.BigInt()).ToAffine()
			bQueryG1[i] = curve.FromG1Affine(g1).ScalarMul(bi.BigInt()).ToAffine()
			bQueryG2[i] = curve.FromG2Affine(g2).ScalarMul(bi.BigInt()).ToAffine()

			val := beta.Mul(ai).Add(alpha.Mul(bi)).Add(ci)
			if privateMask[i] {
				scaled := val.Mul(deltaInv)
				kQueryG1[i] = curve.FromG1Affine(g1).ScalarMul(scaled.BigInt()).ToAffine()
			} else {
				kQueryG1[i] = curve.G1InfinityAffine()
				scaled := val.Mul(gammaInv)
				icSlots[i] = curve.FromG1Affine(g1).ScalarMul(scaled.BigInt()).ToAffine()
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	icG1 := make([]curve.G1Affine, 0, len(icSlots))
	for i := 0; i < numVars; i++ {
		if !privateMask[i] {
			icG1 = append(icG1, icSlots[i])
		}
	}

	zTau := q.Vanishing.Eval(tau)
	hDegree := len(q.Domain) - 1
	if hDegree < 0 {
		hDegree = 0
	}
	hQueryG1 := make([]curve.G1Affine, hDegree)
	tauPow := field.FrOne()
	for j := 0; j < hDegree; j++ {
		coeff := tauPow.Mul(zTau).Mul(deltaInv)
		hQueryG1[j] = curve.FromG1Affine(g1).ScalarMul(coeff.BigInt()).ToAffine()
		tauPow = tauPow.Mul(tau)
	}

	alphaG1 := curve.FromG1Affine(g1).ScalarMul(alpha.BigInt()).ToAffine()
	betaG1 := curve.FromG1Affine(g1).ScalarMul(beta.BigInt()).ToAffine()
	betaG2 := curve.FromG2Affine(g2).ScalarMul(beta.BigInt()).ToAffine()
	deltaG1 := curve.FromG1Affine(g1).ScalarMul(delta.BigInt()).ToAffine()
	deltaG2 := curve.FromG2Affine(g2).ScalarMul(delta.BigInt()).ToAffine()
	gammaG2 := curve.FromG2Affine(g2).ScalarMul(gamma.BigInt()).ToAffine()

	pk := &ProvingKey{
		NumVars:     numVars,
		PrivateMask: privateMask,
		AlphaG1:     alphaG1,
		BetaG1:      betaG1,
		DeltaG1:     deltaG1,
		BetaG2:      betaG2,
		DeltaG2:     deltaG2,
		AQueryG1:    aQueryG1,
		BQueryG1:    bQueryG1,
		BQueryG2:    bQueryG2,
		HQueryG1:    hQueryG1,
		KQueryG1:    kQueryG1,
	}

	e := pairing.Pair(alphaG1, betaG2)
	vk := &VerifyingKey{
		AlphaG1:  alphaG1,
		BetaG2:   betaG2,
		GammaG2:  gammaG2,
		DeltaG2:  deltaG2,
		GammaNeg: gammaG2.Neg(),
		DeltaNeg: deltaG2.Neg(),
		E:        e,
		IC:       icG1,
	}

	o.logger.Info().Int("num_vars", numVars).Int("num_public", len(icG1)).Msg("setup: complete")
	return pk, vk, nil
}

// nonZeroFr redraws from src until it produces a nonzero element; the
// probability of drawing zero from a uniform 254-bit field is
// astronomically small, so this loop is expected to run once.
func nonZeroFr(src entropy.Source) field.Fr {
	for {
		v := src.NextFr()
		if !v.IsZero() {
			return v
		}
	}
}
