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

// Package entropy supplies uniform field.Fr samples to Setup and
// Prove. The toxic waste and blinding factors those two operations
// consume must never be reused or made reproducible in a production
// setting, but a deterministic source is invaluable for tests and for
// reproducing a specific proving run, so both are provided behind the
// same Source interface.
package entropy

import (
	"crypto/rand"
	"io"
	"math/big"

	"golang.org/x/crypto/hkdf"
	"golang.org/x/crypto/sha3"

	"github.com/Saudadeeee/zk-snark/field"
)

// Source produces a stream of uniform samples on [0, r).
type Source interface {
	NextFr() field.Fr
}

// osSource draws from crypto/rand, oversampling each limb set to keep
// the modular reduction bias cryptographically negligible.
type osSource struct{}

// OS returns the default, non-reproducible entropy source backed by
// the operating system's CSPRNG.
func OS() Source { return osSource{} }

func (osSource) NextFr() field.Fr {
	var buf [48]byte // 384 bits of raw entropy for a 254-bit field
	if _, err := io.ReadFull(rand.Reader, buf[:]); err != nil {
		panic(err) // crypto/rand failing is not something callers can recover from
	}
	return field.NewFrFromBigInt(new(big.Int).SetBytes(buf[:]))
}

// deterministicSource expands a fixed seed into a stream of field
// elements via HKDF-SHA3-256, so the same seed always reproduces the
// same sequence of samples. HKDF caps the stream at 255*32 = 8160
// bytes, i.e. 170 samples of 48 bytes; the next NextFr call panics.
type deterministicSource struct {
	reader io.Reader
}

// NewDeterministic returns a Source whose output is a pure function of
// seed. Intended for tests and reproducible benchmark fixtures, never
// for a production Setup or Prove call.
func NewDeterministic(seed []byte) Source {
	h := hkdf.New(sha3.New256, seed, nil, []byte("zk-snark/entropy/fr-stream"))
	return &deterministicSource{reader: h}
}

func (d *deterministicSource) NextFr() field.Fr {
	var buf [48]byte
	if _, err := io.ReadFull(d.reader, buf[:]); err != nil {
		panic(err) // an HKDF reader only fails once its expansion limit is exhausted
	}
	return field.NewFrFromBigInt(new(big.Int).SetBytes(buf[:]))
}
