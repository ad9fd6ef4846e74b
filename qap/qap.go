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

// Package qap transforms an R1CS into a Quadratic Arithmetic Program:
// per-variable Lagrange bases A_i(x), B_i(x), C_i(x) over one
// evaluation point per constraint, plus the vanishing polynomial
// Z(x) = prod(x - constraint points). A satisfying witness w gives
// A(x)=sum(w_i*A_i(x)) etc. with A(x)*B(x)-C(x) divisible by Z(x); the
// quotient H(x) is the witness's QAP quotient polynomial.
package qap

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"

	"github.com/Saudadeeee/zk-snark/field"
	"github.com/Saudadeeee/zk-snark/poly"
	"github.com/Saudadeeee/zk-snark/r1cs"
)

// ErrQapNotSatisfied is returned by ComputeH when A(x)*B(x)-C(x) is
// not evenly divisible by the vanishing polynomial, meaning the
// supplied witness does not satisfy the underlying R1CS.
var ErrQapNotSatisfied = errors.New("qap: A*B-C is not divisible by the vanishing polynomial")

// QAP holds one Lagrange basis triple per R1CS variable and the
// vanishing polynomial over the constraint evaluation points.
type QAP struct {
	NumVars     int
	NumPublic   int
	APolys      []poly.Polynomial
	BPolys      []poly.Polynomial
	CPolys      []poly.Polynomial
	Domain      []field.Fr
	Vanishing   poly.Polynomial
}

// FromR1CS builds the QAP for a finalized R1CS, assigning each
// constraint row a distinct evaluation point 1, 2, 3, ... and
// interpolating each variable's column against that domain. Per-variable
// interpolation is embarrassingly parallel and runs across an
// errgroup.Group; results are written into pre-sized slices at the
// variable's own index, so the merge is race-free without further
// synchronization.
func FromR1CS(ctx context.Context, sys *r1cs.R1CS) (*QAP, error) {
	numConstraints := sys.NumConstraints()
	domain := make([]field.Fr, numConstraints)
	for i := range domain {
		domain[i] = field.NewFr(uint64(i + 1))
	}
	vanishing := poly.Vanishing(domain)

	numVars := sys.NumVars()
	aPolys := make([]poly.Polynomial, numVars)
	bPolys := make([]poly.Polynomial, numVars)
	cPolys := make([]poly.Polynomial, numVars)

	g, _ := errgroup.WithContext(ctx)
	for v := 0; v < numVars; v++ {
		v := v
		g.Go(func() error {
			aCol := sys.ColumnValues('A', v)
			bCol := sys.ColumnValues('B', v)
			cCol := sys.ColumnValues('C', v)

			aPoly, err := poly.Interpolate(domain, aCol)
			if err != nil {
				return err
			}
			bPoly, err := poly.Interpolate(domain, bCol)
			if err != nil {
				return err
			}
			cPoly, err := poly.Interpolate(domain, cCol)
			if err != nil {
				return err
			}
			aPolys[v] = aPoly
			bPolys[v] = bPoly
			cPolys[v] = cPoly
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &QAP{
		NumVars:   numVars,
		NumPublic: len(sys.PublicVariables()),
		APolys:    aPolys,
		BPolys:    bPolys,
		CPolys:    cPolys,
		Domain:    domain,
		Vanishing: vanishing,
	}, nil
}

// AssembleA returns A(x) = sum(w_i * A_i(x)) for a full witness w.
func (q *QAP) AssembleA(witness []field.Fr) poly.Polynomial {
	return q.assemble(q.APolys, witness)
}

// AssembleB returns B(x) = sum(w_i * B_i(x)) for a full witness w.
func (q *QAP) AssembleB(witness []field.Fr) poly.Polynomial {
	return q.assemble(q.BPolys, witness)
}

// AssembleC returns C(x) = sum(w_i * C_i(x)) for a full witness w.
func (q *QAP) AssembleC(witness []field.Fr) poly.Polynomial {
	return q.assemble(q.CPolys, witness)
}

func (q *QAP) assemble(polys []poly.Polynomial, witness []field.Fr) poly.Polynomial {
	acc := poly.Zero()
	for i, p := range polys {
		if witness[i].IsZero() {
			continue
		}
		acc = acc.Add(p.ScalarMul(witness[i]))
	}
	return acc
}

// ComputeH returns H(x) = (A(x)*B(x)-C(x)) / Z(x) for a full witness,
// or ErrQapNotSatisfied if the division has a nonzero remainder.
func (q *QAP) ComputeH(witness []field.Fr) (poly.Polynomial, error) {
	a := q.AssembleA(witness)
	b := q.AssembleB(witness)
	c := q.AssembleC(witness)

	t := a.MulSchoolbook(b).Sub(c)
	h, r, err := t.DivRem(q.Vanishing)
	if err != nil {
		return nil, err
	}
	if !r.IsZero() {
		return nil, ErrQapNotSatisfied
	}
	return h, nil
}

// QapCheck reports whether A(x)*B(x)-C(x) is exactly divisible by
// Z(x) for the given witness, without constructing H(x) for the caller.
func (q *QAP) QapCheck(witness []field.Fr) (bool, error) {
	_, err := q.ComputeH(witness)
	if errors.Is(err, ErrQapNotSatisfied) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
