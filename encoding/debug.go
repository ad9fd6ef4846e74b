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
	"bytes"

	"github.com/fxamacker/cbor/v2"
	"github.com/icza/bitio"

	"github.com/Saudadeeee/zk-snark/groth16"
)

// DebugProof is a CBOR-friendly, human-inspectable mirror of a Proof:
// hex-encoded coordinates instead of raw bytes, for inspection and bug
// reports, never for the stable on-disk format in proof.go. No CLI in
// this module writes it.
type DebugProof struct {
	AX, AY string
	BX0, BX1, BY0, BY1 string
	CX, CY string
}

// MarshalDebugProof renders p as a CBOR document.
func MarshalDebugProof(p *groth16.Proof) ([]byte, error) {
	d := DebugProof{
		AX: p.A.X.Hex(), AY: p.A.Y.Hex(),
		BX0: p.B.X.A0.Hex(), BX1: p.B.X.A1.Hex(),
		BY0: p.B.Y.A0.Hex(), BY1: p.B.Y.A1.Hex(),
		CX: p.C.X.Hex(), CY: p.C.Y.Hex(),
	}
	return cbor.Marshal(d)
}

// UnmarshalDebugProof is MarshalDebugProof's inverse, for re-reading a
// dumped debug proof back into the DebugProof shape (not back into a
// groth16.Proof — the point here is inspection, not round-tripping).
func UnmarshalDebugProof(b []byte) (*DebugProof, error) {
	var d DebugProof
	if err := cbor.Unmarshal(b, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

// EncodePublicMask packs a boolean mask (one bit per R1CS variable, a
// set bit for true, MSB-first within each byte) using bitio.
// EncodeR1CS uses it for the trailing public-variable set, passing
// true for each public variable.
func EncodePublicMask(privateMask []bool) ([]byte, error) {
	var buf bytes.Buffer
	w := bitio.NewWriter(&buf)
	for _, priv := range privateMask {
		bit := uint64(0)
		if priv {
			bit = 1
		}
		if err := w.WriteBits(bit, 1); err != nil {
			return nil, err
		}
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// DecodePublicMask is EncodePublicMask's inverse; n is the number of
// variables (bits) to read.
func DecodePublicMask(b []byte, n int) ([]bool, error) {
	r := bitio.NewReader(bytes.NewReader(b))
	out := make([]bool, n)
	for i := 0; i < n; i++ {
		bit, err := r.ReadBits(1)
		if err != nil {
			return nil, err
		}
		out[i] = bit == 1
	}
	return out, nil
}
