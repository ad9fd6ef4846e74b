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

// Package r1cs implements Rank-1 Constraint Systems: a witness vector
// w (w[0]=1 by convention) and a list of constraints (A_k.w)*(B_k.w) =
// C_k.w, each A/B/C row a sparse linear combination of witness
// variables. Systems are built incrementally with AllocateVar and
// AddConstraint, then Finalize'd to freeze the public/private variable
// partition before being handed to package qap.
package r1cs

import (
	"errors"
	"fmt"
	"sort"

	"github.com/bits-and-blooms/bitset"

	"github.com/Saudadeeee/zk-snark/field"
)

// ErrOutOfRangeVariable is returned when a Term or MarkPublic call
// references a variable index that has not been allocated.
var ErrOutOfRangeVariable = errors.New("r1cs: variable index out of range")

// ErrWitnessShapeMismatch is returned by IsSatisfied/IsSatisfiedVerbose
// when the supplied witness does not have exactly NumVars() entries, or
// when witness[0] is not the field element 1.
var ErrWitnessShapeMismatch = errors.New("r1cs: witness length does not match variable count")

// ErrAlreadyFinalized is returned by AllocateVar/AddConstraint/MarkPublic
// once Finalize has been called.
var ErrAlreadyFinalized = errors.New("r1cs: system already finalized")

// Term is a single (coefficient, variable) pair in a linear combination.
type Term struct {
	Coeff    field.Fr
	Variable int
}

// LinearCombination is a sparse sum of weighted witness variables.
type LinearCombination []Term

// Eval evaluates the linear combination against a full witness vector.
func (lc LinearCombination) Eval(witness []field.Fr) field.Fr {
	acc := field.FrZero()
	for _, t := range lc {
		acc = acc.Add(t.Coeff.Mul(witness[t.Variable]))
	}
	return acc
}

// compress puts a linear combination into canonical form: terms sorted
// by ascending variable index, duplicate indices merged by summing
// their coefficients, and zero-coefficient terms dropped.
func compress(lc LinearCombination) LinearCombination {
	if len(lc) == 0 {
		return nil
	}
	sorted := make(LinearCombination, len(lc))
	copy(sorted, lc)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Variable < sorted[j].Variable })

	out := make(LinearCombination, 0, len(sorted))
	for _, t := range sorted {
		if n := len(out); n > 0 && out[n-1].Variable == t.Variable {
			out[n-1].Coeff = out[n-1].Coeff.Add(t.Coeff)
			continue
		}
		out = append(out, t)
	}

	compact := out[:0]
	for _, t := range out {
		if !t.Coeff.IsZero() {
			compact = append(compact, t)
		}
	}
	if len(compact) == 0 {
		return nil
	}
	return compact
}

// Constraint is one row of the R1CS: (A.w)*(B.w) = C.w. A, B, and C
// are always kept in canonical form (see compress).
type Constraint struct {
	A, B, C LinearCombination
}

// R1CS is a rank-1 constraint system under incremental construction.
// Variable 0 is reserved for the constant 1 and is always public.
type R1CS struct {
	numVars     int
	public      *bitset.BitSet
	constraints []Constraint
	finalized   bool
}

// New returns an empty system with the constant-one variable already
// allocated at index 0.
func New() *R1CS {
	r := &R1CS{public: bitset.New(64)}
	r.numVars = 1
	r.public.Set(0)
	return r
}

// AllocateVar allocates a new witness variable and returns its index.
// The variable starts private; call MarkPublic to promote it.
func (r *R1CS) AllocateVar() (int, error) {
	if r.finalized {
		return 0, ErrAlreadyFinalized
	}
	idx := r.numVars
	r.numVars++
	return idx, nil
}

// MarkPublic promotes variable idx to a public input.
func (r *R1CS) MarkPublic(idx int) error {
	if r.finalized {
		return ErrAlreadyFinalized
	}
	if idx < 0 || idx >= r.numVars {
		return fmt.Errorf("%w: %d", ErrOutOfRangeVariable, idx)
	}
	r.public.Set(uint(idx))
	return nil
}

// AddConstraint appends (a.w)*(b.w) = c.w to the system. Each of a, b,
// c is compressed into canonical form before being stored: duplicate
// variable indices are merged by summing coefficients, zero-coefficient
// terms are dropped, and terms are sorted by ascending variable index.
func (r *R1CS) AddConstraint(a, b, c LinearCombination) error {
	if r.finalized {
		return ErrAlreadyFinalized
	}
	for _, lc := range []LinearCombination{a, b, c} {
		for _, t := range lc {
			if t.Variable < 0 || t.Variable >= r.numVars {
				return fmt.Errorf("%w: %d", ErrOutOfRangeVariable, t.Variable)
			}
		}
	}
	r.constraints = append(r.constraints, Constraint{A: compress(a), B: compress(b), C: compress(c)})
	return nil
}

// Finalize freezes the variable/public partition. Subsequent calls to
// AllocateVar, MarkPublic, and AddConstraint fail. Every constraint's
// linear combinations are already in canonical form by this point,
// since AddConstraint compresses each row as it is added.
func (r *R1CS) Finalize() {
	r.finalized = true
}

// NumVars returns the total number of allocated variables, including
// the constant-one variable at index 0.
func (r *R1CS) NumVars() int { return r.numVars }

// NumConstraints returns the number of constraints in the system.
func (r *R1CS) NumConstraints() int { return len(r.constraints) }

// Constraints returns the system's constraints in insertion order.
func (r *R1CS) Constraints() []Constraint { return r.constraints }

// IsPublic reports whether variable idx is a public input (or the
// constant-one variable).
func (r *R1CS) IsPublic(idx int) bool { return r.public.Test(uint(idx)) }

// PublicVariables returns the indices of all public variables in
// ascending order, including index 0.
func (r *R1CS) PublicVariables() []int {
	out := make([]int, 0, r.public.Count())
	for i, ok := r.public.NextSet(0); ok; i, ok = r.public.NextSet(i + 1) {
		out = append(out, int(i))
	}
	return out
}

// IsSatisfied reports whether witness satisfies every constraint.
// witness must have exactly NumVars() entries with witness[0]=1;
// either violation returns ErrWitnessShapeMismatch.
func (r *R1CS) IsSatisfied(witness []field.Fr) (bool, error) {
	if len(witness) != r.numVars {
		return false, ErrWitnessShapeMismatch
	}
	if !witness[0].IsOne() {
		return false, ErrWitnessShapeMismatch
	}
	for _, c := range r.constraints {
		av := c.A.Eval(witness)
		bv := c.B.Eval(witness)
		cv := c.C.Eval(witness)
		if !av.Mul(bv).Equal(cv) {
			return false, nil
		}
	}
	return true, nil
}

// Mismatch describes one constraint that failed to hold under a given
// witness, as reported by IsSatisfiedVerbose.
type Mismatch struct {
	ConstraintIndex int
	AValue, BValue, CValue field.Fr
}

// IsSatisfiedVerbose behaves like IsSatisfied but, on failure, returns
// every failing constraint's index and evaluated A/B/C values instead
// of a bare boolean, to make debugging an unsatisfied witness tractable.
func (r *R1CS) IsSatisfiedVerbose(witness []field.Fr) ([]Mismatch, error) {
	if len(witness) != r.numVars {
		return nil, ErrWitnessShapeMismatch
	}
	if !witness[0].IsOne() {
		return nil, ErrWitnessShapeMismatch
	}
	var mismatches []Mismatch
	for i, c := range r.constraints {
		av := c.A.Eval(witness)
		bv := c.B.Eval(witness)
		cv := c.C.Eval(witness)
		if !av.Mul(bv).Equal(cv) {
			mismatches = append(mismatches, Mismatch{
				ConstraintIndex: i,
				AValue:          av,
				BValue:          bv,
				CValue:          cv,
			})
		}
	}
	return mismatches, nil
}

// ColumnValues returns, for one of the three matrices (a, b, or c) and
// a variable index, the coefficient that variable carries in each
// constraint row, in constraint order. Rows where the variable does
// not appear contribute a zero coefficient. This is the per-variable
// "column" package qap interpolates against the constraint index set.
func (r *R1CS) ColumnValues(which byte, variable int) []field.Fr {
	out := make([]field.Fr, len(r.constraints))
	for i := range out {
		out[i] = field.FrZero()
	}
	for i, c := range r.constraints {
		var lc LinearCombination
		switch which {
		case 'A':
			lc = c.A
		case 'B':
			lc = c.B
		case 'C':
			lc = c.C
		}
		for _, t := range lc {
			if t.Variable == variable {
				out[i] = out[i].Add(t.Coeff)
			}
		}
	}
	return out
}
