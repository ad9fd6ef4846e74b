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

package encoding

import (
	"github.com/Saudadeeee/zk-snark/field"
	"github.com/Saudadeeee/zk-snark/r1cs"
)

// EncodeR1CS lays out u64 n_vars ‖ u64 n_cons ‖ matrix A ‖ B ‖ C, each
// matrix as u64 n_rows then, per row, u64 n_terms and (u64 var_idx,
// 32-byte coeff) pairs. The public-variable set is appended as a
// trailing bit-packed mask so a decoded system's IsPublic matches the
// original exactly.
func EncodeR1CS(sys *r1cs.R1CS) ([]byte, error) {
	buf := WriteVersionHeader(nil)
	buf = PutU64(buf, uint64(sys.NumVars()))
	buf = PutU64(buf, uint64(sys.NumConstraints()))

	constraints := sys.Constraints()
	buf = putMatrix(buf, constraints, func(c r1cs.Constraint) r1cs.LinearCombination { return c.A })
	buf = putMatrix(buf, constraints, func(c r1cs.Constraint) r1cs.LinearCombination { return c.B })
	buf = putMatrix(buf, constraints, func(c r1cs.Constraint) r1cs.LinearCombination { return c.C })

	mask := make([]bool, sys.NumVars())
	for i := range mask {
		mask[i] = sys.IsPublic(i)
	}
	packed, err := EncodePublicMask(mask)
	if err != nil {
		return nil, err
	}
	buf = PutU64(buf, uint64(len(packed)))
	buf = append(buf, packed...)
	return buf, nil
}

func putMatrix(buf []byte, constraints []r1cs.Constraint, pick func(r1cs.Constraint) r1cs.LinearCombination) []byte {
	buf = PutU64(buf, uint64(len(constraints)))
	for _, c := range constraints {
		lc := pick(c)
		buf = PutU64(buf, uint64(len(lc)))
		for _, t := range lc {
			buf = PutU64(buf, uint64(t.Variable))
			buf = PutFr(buf, t.Coeff)
		}
	}
	return buf
}

// DecodeR1CS is EncodeR1CS's inverse. The resulting system is returned
// already Finalize'd.
func DecodeR1CS(b []byte) (*r1cs.R1CS, error) {
	_, b, err := ReadVersionHeader(b)
	if err != nil {
		return nil, err
	}
	numVars, b, err := GetU64(b)
	if err != nil {
		return nil, err
	}
	_, b, err = GetU64(b) // n_cons, implied by matrix A's row count below
	if err != nil {
		return nil, err
	}

	sys := r1cs.New()
	for i := uint64(1); i < numVars; i++ {
		if _, err := sys.AllocateVar(); err != nil {
			return nil, err
		}
	}

	var aRows, bRows, cRows [][]r1cs.Term
	aRows, b, err = getMatrix(b)
	if err != nil {
		return nil, err
	}
	bRows, b, err = getMatrix(b)
	if err != nil {
		return nil, err
	}
	cRows, b, err = getMatrix(b)
	if err != nil {
		return nil, err
	}
	if len(aRows) != len(bRows) || len(aRows) != len(cRows) {
		return nil, ErrTruncated
	}
	for i := range aRows {
		if err := sys.AddConstraint(aRows[i], bRows[i], cRows[i]); err != nil {
			return nil, err
		}
	}

	packedLen, b, err := GetU64(b)
	if err != nil {
		return nil, err
	}
	if uint64(len(b)) < packedLen {
		return nil, ErrTruncated
	}
	mask, err := DecodePublicMask(b[:packedLen], int(numVars))
	if err != nil {
		return nil, err
	}
	for i, isPublic := range mask {
		if isPublic && i != 0 {
			if err := sys.MarkPublic(i); err != nil {
				return nil, err
			}
		}
	}

	sys.Finalize()
	return sys, nil
}

func getMatrix(b []byte) ([][]r1cs.Term, []byte, error) {
	nRows, b, err := GetU64(b)
	if err != nil {
		return nil, nil, err
	}
	rows := make([][]r1cs.Term, nRows)
	for i := range rows {
		nTerms, rest, err := GetU64(b)
		if err != nil {
			return nil, nil, err
		}
		b = rest
		terms := make([]r1cs.Term, nTerms)
		for j := range terms {
			varIdx, rest2, err := GetU64(b)
			if err != nil {
				return nil, nil, err
			}
			b = rest2
			var coeff field.Fr
			coeff, b, err = GetFr(b)
			if err != nil {
				return nil, nil, err
			}
			terms[j] = r1cs.Term{Coeff: coeff, Variable: int(varIdx)}
		}
		rows[i] = terms
	}
	return rows, b, nil
}
