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

// Package pairing implements the optimal Ate pairing over BN254:
// e: G1 x G2 -> Fq12*. The Miller loop iterates over the BN loop
// parameter 6u+2 (u the BN seed), evaluating tangent/secant line
// functions at each step and embedding them into Fq12 via the
// "034"-sparse convention (nonzero only at Fq12 basis slots 0, 3, 4);
// FinalExponentiation (see the tower package) then projects the
// Miller loop output into the order-r subgroup.
package pairing

import (
	"context"
	"errors"
	"math/big"

	"golang.org/x/sync/errgroup"

	"github.com/Saudadeeee/zk-snark/curve"
	"github.com/Saudadeeee/zk-snark/field"
	"github.com/Saudadeeee/zk-snark/tower"
)

// ErrLengthMismatch is returned by MultiPairing when its two input
// slices have different lengths.
var ErrLengthMismatch = errors.New("pairing: g1 and g2 slices length mismatch")

// bnSeed is the BN254 curve seed u; the Miller loop parameter is 6u+2.
const bnSeed uint64 = 4965661367192848881

// loopParam returns 6u+2 as a big.Int, computed rather than hardcoded
// so the only literal pairing constant anyone has to trust is bnSeed
// itself.
func loopParam() *big.Int {
	u := new(big.Int).SetUint64(bnSeed)
	six := new(big.Int).Mul(u, big.NewInt(6))
	return six.Add(six, big.NewInt(2))
}

// Pair computes the optimal Ate pairing e(p, q).
func Pair(p curve.G1Affine, q curve.G2Affine) tower.Fq12 {
	return tower.FinalExponentiation(millerLoop(p, q))
}

// MultiPairing computes the product of pairings e(p_i, q_i), sharing a
// single final exponentiation across all terms (the standard batching
// optimization: only the Miller loops need to run per-pair). Miller
// loops run concurrently and are combined in index order so the
// result does not depend on goroutine scheduling.
func MultiPairing(ctx context.Context, ps []curve.G1Affine, qs []curve.G2Affine) (tower.Fq12, error) {
	if len(ps) != len(qs) {
		return tower.Fq12{}, ErrLengthMismatch
	}
	if len(ps) == 0 {
		return tower.Fq12One(), nil
	}

	partials := make([]tower.Fq12, len(ps))
	g, _ := errgroup.WithContext(ctx)
	for i := range ps {
		i := i
		g.Go(func() error {
			partials[i] = millerLoop(ps[i], qs[i])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return tower.Fq12{}, err
	}

	acc := tower.Fq12One()
	for _, f := range partials {
		acc = acc.Mul(f)
	}
	return tower.FinalExponentiation(acc), nil
}

// PairingCheck reports whether prod(e(ps[i], qs[i])) == 1, the
// standard batched-pairing form of a Groth16 verification equation.
func PairingCheck(ctx context.Context, ps []curve.G1Affine, qs []curve.G2Affine) (bool, error) {
	f, err := MultiPairing(ctx, ps, qs)
	if err != nil {
		return false, err
	}
	return f.IsOne(), nil
}

// millerLoop runs the Miller algorithm keeping the G2 accumulator T in
// affine coordinates over the twist curve, which keeps the doubling
// and addition line-function formulas to their textbook (non-Jacobian)
// form at the cost of one Fq2 inversion per loop step.
func millerLoop(p curve.G1Affine, q curve.G2Affine) tower.Fq12 {
	if p.IsInfinity() || q.IsInfinity() {
		return tower.Fq12One()
	}

	f := tower.Fq12One()
	t := q

	loop := loopParam()
	bitLen := loop.BitLen()
	for i := bitLen - 2; i >= 0; i-- {
		f = f.Square()
		var line tower.Fq12
		line, t = doubleStep(t, p)
		f = f.Mul(line)
		if loop.Bit(i) == 1 {
			line, t = addStep(t, q, p)
			f = f.Mul(line)
		}
	}

	// BN-curve optimal-ate correction: two further addition steps using
	// the Frobenius endomorphism, standard for any BN curve with u>0.
	q1 := q.FrobeniusMap()
	q2 := q.FrobeniusMap().FrobeniusMap().Neg()

	var line tower.Fq12
	line, t = addStep(t, q1, p)
	f = f.Mul(line)
	line, _ = addStep(t, q2, p)
	f = f.Mul(line)

	return f
}

// sparseLine builds the 034-sparse Fq12 element for the tangent/secant
// line through the twist-curve point with parameters (lambda, xT, yT)
// evaluated at the G1 point p; see pairing package doc comment for the
// derivation of which Fq12 basis slots this occupies.
func sparseLine(lambda, xT, yT tower.Fq2, p curve.G1Affine) tower.Fq12 {
	yP := tower.Fq2{A0: p.Y}
	xP := tower.Fq2{A0: p.X}

	c1c0 := lambda.Mul(xP).Neg()
	c1c1 := lambda.Mul(xT).Sub(yT)

	return tower.Fq12{
		C0: tower.Fq6{C0: yP},
		C1: tower.Fq6{C0: c1c0, C1: c1c1},
	}
}

// doubleStep advances the affine twist accumulator t to 2t and returns
// the tangent-line evaluation at p.
func doubleStep(t curve.G2Affine, p curve.G1Affine) (tower.Fq12, curve.G2Affine) {
	x, y := t.X, t.Y
	two := field.NewFq(2)
	three := field.NewFq(3)

	lambda := x.Square().MulByFq(three).Div(y.MulByFq(two))
	x2 := lambda.Square().Sub(x).Sub(x)
	y2 := lambda.Mul(x.Sub(x2)).Sub(y)

	line := sparseLine(lambda, x, y, p)
	return line, curve.G2Affine{X: x2, Y: y2}
}

// addStep advances the affine twist accumulator t to t+q and returns
// the secant-line evaluation at p.
func addStep(t, q curve.G2Affine, p curve.G1Affine) (tower.Fq12, curve.G2Affine) {
	if t.Equal(q) {
		return doubleStep(t, p)
	}
	xT, yT := t.X, t.Y
	xQ, yQ := q.X, q.Y

	lambda := yQ.Sub(yT).Div(xQ.Sub(xT))
	x3 := lambda.Square().Sub(xT).Sub(xQ)
	y3 := lambda.Mul(xT.Sub(x3)).Sub(yT)

	line := sparseLine(lambda, xT, yT, p)
	return line, curve.G2Affine{X: x3, Y: y3}
}
