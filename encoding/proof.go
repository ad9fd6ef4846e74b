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
	"github.com/Saudadeeee/zk-snark/curve"
	"github.com/Saudadeeee/zk-snark/field"
	"github.com/Saudadeeee/zk-snark/groth16"
	"github.com/Saudadeeee/zk-snark/pairing"
)

// EncodeProof lays out a proof as version header ‖ G1(A) ‖ G2(B) ‖ G1(C).
func EncodeProof(p *groth16.Proof) []byte {
	buf := WriteVersionHeader(nil)
	buf = PutG1(buf, p.A)
	buf = PutG2(buf, p.B)
	buf = PutG1(buf, p.C)
	return buf
}

// DecodeProof is EncodeProof's inverse.
func DecodeProof(b []byte) (*groth16.Proof, error) {
	_, b, err := ReadVersionHeader(b)
	if err != nil {
		return nil, err
	}
	a, b, err := GetG1(b)
	if err != nil {
		return nil, err
	}
	bp, b, err := GetG2(b)
	if err != nil {
		return nil, err
	}
	c, _, err := GetG1(b)
	if err != nil {
		return nil, err
	}
	return &groth16.Proof{A: a, B: bp, C: c}, nil
}

// EncodeVerifyingKey lays out u64 len(IC) (num_public plus one for the
// constant-one wire), then AlphaG1, BetaG2, GammaG2, DeltaG2, then the
// len(IC) IC points with no further length prefix. GammaNeg,
// DeltaNeg, and E are cheap to recompute on load (one negation each
// and one pairing) so they are not persisted.
func EncodeVerifyingKey(vk *groth16.VerifyingKey) []byte {
	buf := WriteVersionHeader(nil)
	buf = PutU64(buf, uint64(len(vk.IC)))
	buf = PutG1(buf, vk.AlphaG1)
	buf = PutG2(buf, vk.BetaG2)
	buf = PutG2(buf, vk.GammaG2)
	buf = PutG2(buf, vk.DeltaG2)
	for _, p := range vk.IC {
		buf = PutG1(buf, p)
	}
	return buf
}

// DecodeVerifyingKey is EncodeVerifyingKey's inverse; it recomputes
// GammaNeg, DeltaNeg, and E from the decoded material.
func DecodeVerifyingKey(b []byte) (*groth16.VerifyingKey, error) {
	_, b, err := ReadVersionHeader(b)
	if err != nil {
		return nil, err
	}
	numPublic, b, err := GetU64(b)
	if err != nil {
		return nil, err
	}
	alphaG1, b, err := GetG1(b)
	if err != nil {
		return nil, err
	}
	betaG2, b, err := GetG2(b)
	if err != nil {
		return nil, err
	}
	gammaG2, b, err := GetG2(b)
	if err != nil {
		return nil, err
	}
	deltaG2, b, err := GetG2(b)
	if err != nil {
		return nil, err
	}
	ic := make([]curve.G1Affine, numPublic)
	for i := range ic {
		var p curve.G1Affine
		p, b, err = GetG1(b)
		if err != nil {
			return nil, err
		}
		ic[i] = p
	}
	return recomposeVerifyingKey(alphaG1, betaG2, gammaG2, deltaG2, ic), nil
}

func recomposeVerifyingKey(alphaG1 curve.G1Affine, betaG2, gammaG2, deltaG2 curve.G2Affine, ic []curve.G1Affine) *groth16.VerifyingKey {
	return &groth16.VerifyingKey{
		AlphaG1:  alphaG1,
		BetaG2:   betaG2,
		GammaG2:  gammaG2,
		DeltaG2:  deltaG2,
		GammaNeg: gammaG2.Neg(),
		DeltaNeg: deltaG2.Neg(),
		E:        pairing.Pair(alphaG1, betaG2),
		IC:       ic,
	}
}

// EncodeProvingKey lays out three u64 counts (num_variables, num
// public, H-query degree), then the five toxic-waste group elements,
// then the private mask as one byte (0 or 1) per variable, then each
// query vector prefixed by its u64 length. The mask is stored rather
// than recomputed, since recomputing it would require the original
// R1CS.
func EncodeProvingKey(pk *groth16.ProvingKey) []byte {
	numPublic := 0
	for _, priv := range pk.PrivateMask {
		if !priv {
			numPublic++
		}
	}

	buf := WriteVersionHeader(nil)
	buf = PutU64(buf, uint64(pk.NumVars))
	buf = PutU64(buf, uint64(numPublic))
	buf = PutU64(buf, uint64(len(pk.HQueryG1)))

	buf = PutG1(buf, pk.AlphaG1)
	buf = PutG1(buf, pk.BetaG1)
	buf = PutG1(buf, pk.DeltaG1)
	buf = PutG2(buf, pk.BetaG2)
	buf = PutG2(buf, pk.DeltaG2)

	for i := 0; i < pk.NumVars; i++ {
		if pk.PrivateMask[i] {
			buf = append(buf, 1)
		} else {
			buf = append(buf, 0)
		}
	}

	buf = putG1Vector(buf, pk.AQueryG1)
	buf = putG1Vector(buf, pk.BQueryG1)
	buf = putG2Vector(buf, pk.BQueryG2)
	buf = putG1Vector(buf, pk.HQueryG1)
	buf = putG1Vector(buf, pk.KQueryG1)
	return buf
}

// DecodeProvingKey is EncodeProvingKey's inverse.
func DecodeProvingKey(b []byte) (*groth16.ProvingKey, error) {
	_, b, err := ReadVersionHeader(b)
	if err != nil {
		return nil, err
	}
	numVars, b, err := GetU64(b)
	if err != nil {
		return nil, err
	}
	_, b, err = GetU64(b) // numPublic, implied by the private mask below
	if err != nil {
		return nil, err
	}
	_, b, err = GetU64(b) // H-query degree, implied by the vector length below
	if err != nil {
		return nil, err
	}

	alphaG1, b, err := GetG1(b)
	if err != nil {
		return nil, err
	}
	betaG1, b, err := GetG1(b)
	if err != nil {
		return nil, err
	}
	deltaG1, b, err := GetG1(b)
	if err != nil {
		return nil, err
	}
	betaG2, b, err := GetG2(b)
	if err != nil {
		return nil, err
	}
	deltaG2, b, err := GetG2(b)
	if err != nil {
		return nil, err
	}

	if uint64(len(b)) < numVars {
		return nil, ErrTruncated
	}
	privateMask := make([]bool, numVars)
	for i := range privateMask {
		privateMask[i] = b[i] == 1
	}
	b = b[numVars:]

	aQuery, b, err := getG1Vector(b)
	if err != nil {
		return nil, err
	}
	bQueryG1, b, err := getG1Vector(b)
	if err != nil {
		return nil, err
	}
	bQueryG2, b, err := getG2Vector(b)
	if err != nil {
		return nil, err
	}
	hQuery, b, err := getG1Vector(b)
	if err != nil {
		return nil, err
	}
	kQuery, _, err := getG1Vector(b)
	if err != nil {
		return nil, err
	}

	return &groth16.ProvingKey{
		NumVars:     int(numVars),
		PrivateMask: privateMask,
		AlphaG1:     alphaG1,
		BetaG1:      betaG1,
		DeltaG1:     deltaG1,
		BetaG2:      betaG2,
		DeltaG2:     deltaG2,
		AQueryG1:    aQuery,
		BQueryG1:    bQueryG1,
		BQueryG2:    bQueryG2,
		HQueryG1:    hQuery,
		KQueryG1:    kQuery,
	}, nil
}

func putG1Vector(buf []byte, v []curve.G1Affine) []byte {
	buf = PutU64(buf, uint64(len(v)))
	for _, p := range v {
		buf = PutG1(buf, p)
	}
	return buf
}

func getG1Vector(b []byte) ([]curve.G1Affine, []byte, error) {
	n, b, err := GetU64(b)
	if err != nil {
		return nil, nil, err
	}
	out := make([]curve.G1Affine, n)
	for i := range out {
		var p curve.G1Affine
		p, b, err = GetG1(b)
		if err != nil {
			return nil, nil, err
		}
		out[i] = p
	}
	return out, b, nil
}

func putG2Vector(buf []byte, v []curve.G2Affine) []byte {
	buf = PutU64(buf, uint64(len(v)))
	for _, p := range v {
		buf = PutG2(buf, p)
	}
	return buf
}

func getG2Vector(b []byte) ([]curve.G2Affine, []byte, error) {
	n, b, err := GetU64(b)
	if err != nil {
		return nil, nil, err
	}
	out := make([]curve.G2Affine, n)
	for i := range out {
		var p curve.G2Affine
		p, b, err = GetG2(b)
		if err != nil {
			return nil, nil, err
		}
		out[i] = p
	}
	return out, b, nil
}

// EncodeFrVector lays out a []field.Fr as a u64 length prefix followed
// by each element's 32-byte encoding; used for public/private input CSVs
// once parsed, and for R1CS witness vectors.
func EncodeFrVector(v []field.Fr) []byte {
	buf := PutU64(nil, uint64(len(v)))
	for _, e := range v {
		buf = PutFr(buf, e)
	}
	return buf
}

// DecodeFrVector is EncodeFrVector's inverse.
func DecodeFrVector(b []byte) ([]field.Fr, error) {
	n, b, err := GetU64(b)
	if err != nil {
		return nil, err
	}
	out := make([]field.Fr, n)
	for i := range out {
		var e field.Fr
		e, b, err = GetFr(b)
		if err != nil {
			return nil, err
		}
		out[i] = e
	}
	return out, nil
}
