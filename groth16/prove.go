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
	"github.com/Saudadeeee/zk-snark/msm"
	"github.com/Saudadeeee/zk-snark/poly"
	"github.com/Saudadeeee/zk-snark/qap"
)

// Prove builds a Groth16 proof for fullWitness (the complete variable
// assignment, fullWitness[0]=1) against pk and the QAP q it was
// derived from. r and s, the per-proof blinding factors, are drawn
// from src; a fresh src draw (or a fresh src entirely) must be used
// for every call, since reusing r/s across two proofs over the same
// witness leaks the witness.
func Prove(pk *ProvingKey, q *qap.QAP, fullWitness []field.Fr, src entropy.Source, opts ...Option) (*Proof, error) {
	if len(fullWitness) != pk.NumVars {
		return nil, ErrWitnessLength
	}
	if !fullWitness[0].IsOne() {
		return nil, ErrWitnessLength
	}
	o := newOptions(opts)

	r := src.NextFr()
	s := src.NextFr()

	// kScalars masks out public-variable slots: KQueryG1 only carries a
	// meaningful commitment for private variables, so the k-accumulator
	// MSM can still run over the full-width vectors like the others
	// (ScalarMul by the zero scalar is the identity regardless of the
	// base point, so the masked slots contribute nothing).
	kScalars := make([]field.Fr, len(fullWitness))
	for i, wi := range fullWitness {
		if pk.PrivateMask[i] {
			kScalars[i] = wi
		} else {
			kScalars[i] = field.FrZero()
		}
	}

	var aAff, bAffG1, kAff curve.G1Affine
	var bAffG2 curve.G2Affine

	g, _ := errgroup.WithContext(context.Background())
	if o.workers > 0 {
		g.SetLimit(o.workers)
	}
	g.Go(func() (err error) {
		aAff, err = msm.NaiveG1(pk.AQueryG1, fullWitness)
		return err
	})
	g.Go(func() (err error) {
		bAffG1, err = msm.NaiveG1(pk.BQueryG1, fullWitness)
		return err
	})
	g.Go(func() (err error) {
		bAffG2, err = msm.NaiveG2(pk.BQueryG2, fullWitness)
		return err
	})
	g.Go(func() (err error) {
		kAff, err = msm.NaiveG1(pk.KQueryG1, kScalars)
		return err
	})
	var hCoeffs poly.Polynomial
	g.Go(func() error {
		h, err := q.ComputeH(fullWitness)
		if err != nil {
			return err
		}
		hCoeffs = h
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	aAcc := curve.FromG1Affine(aAff)
	bAccG1 := curve.FromG1Affine(bAffG1)
	bAccG2 := curve.FromG2Affine(bAffG2)
	kAcc := curve.FromG1Affine(kAff)

	// A = alphaG1 + sum(w_i*AQuery_i) + r*deltaG1
	aJac := curve.FromG1Affine(pk.AlphaG1).Add(aAcc).Add(curve.FromG1Affine(pk.DeltaG1).ScalarMul(r.BigInt()))

	// B in G2 = betaG2 + sum(w_i*BQuery_i) + s*deltaG2
	bG2Jac := curve.FromG2Affine(pk.BetaG2).Add(bAccG2).Add(curve.FromG2Affine(pk.DeltaG2).ScalarMul(s.BigInt()))

	// B in G1 (needed to fold the r*Bs term into C) = betaG1 + sum(w_i*BQueryG1_i) + s*deltaG1
	bG1Jac := curve.FromG1Affine(pk.BetaG1).Add(bAccG1).Add(curve.FromG1Affine(pk.DeltaG1).ScalarMul(s.BigInt()))

	// hScalars pads/truncates hCoeffs to HQueryG1's fixed width so the
	// sum(h_j*HQuery_j) term can also run through the msm package.
	hScalars := make([]field.Fr, len(pk.HQueryG1))
	for j := range hScalars {
		if j < len(hCoeffs) {
			hScalars[j] = hCoeffs[j]
		} else {
			hScalars[j] = field.FrZero()
		}
	}
	sumHAff, err := msm.NaiveG1(pk.HQueryG1, hScalars)
	if err != nil {
		return nil, err
	}
	sumH := curve.FromG1Affine(sumHAff)

	rs := r.Mul(s)
	cJac := kAcc.
		Add(sumH).
		Add(aJac.ScalarMul(s.BigInt())).
		Add(bG1Jac.ScalarMul(r.BigInt())).
		Add(curve.FromG1Affine(pk.DeltaG1).ScalarMul(rs.BigInt()).Neg())

	proof := &Proof{
		A: aJac.ToAffine(),
		B: bG2Jac.ToAffine(),
		C: cJac.ToAffine(),
	}
	o.logger.Debug().Msg("prove: complete")
	return proof, nil
}
