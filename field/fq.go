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

package field

import "math/big"

// FqModulus is the BN254 base field modulus p that G1 and the tower
// extensions Fq2/Fq6/Fq12 are built over.
var FqModulus, _ = new(big.Int).SetString("21888242871839275222246405745257275088696311157297823662689037894645226208583", 10)

// Fq is an element of GF(p), the BN254 base field. Same contract as Fr.
type Fq struct {
	limbs [4]uint64
}

// FqZero is the additive identity.
func FqZero() Fq { return Fq{} }

// FqOne is the multiplicative identity.
func FqOne() Fq { return Fq{limbs: [4]uint64{1, 0, 0, 0}} }

// NewFq reduces v modulo p.
func NewFq(v uint64) Fq {
	return Fq{limbs: [4]uint64{v, 0, 0, 0}}
}

// NewFqFromLimbs reduces limbs (little-endian) modulo p if necessary.
func NewFqFromLimbs(limbs [4]uint64) Fq {
	z := limbsToBig(limbs)
	z.Mod(z, FqModulus)
	return Fq{limbs: bigToLimbs(z)}
}

// NewFqFromBigInt reduces an arbitrary big.Int modulo p.
func NewFqFromBigInt(v *big.Int) Fq {
	z := new(big.Int).Mod(v, FqModulus)
	return Fq{limbs: bigToLimbs(z)}
}

func (a Fq) big() *big.Int { return limbsToBig(a.limbs) }

// BigInt returns the canonical representative as a big.Int.
func (a Fq) BigInt() *big.Int { return a.big() }

// Add returns a+b mod p.
func (a Fq) Add(b Fq) Fq {
	z := new(big.Int).Add(a.big(), b.big())
	if z.Cmp(FqModulus) >= 0 {
		z.Sub(z, FqModulus)
	}
	return Fq{limbs: bigToLimbs(z)}
}

// Sub returns a-b mod p.
func (a Fq) Sub(b Fq) Fq {
	z := new(big.Int).Sub(a.big(), b.big())
	if z.Sign() < 0 {
		z.Add(z, FqModulus)
	}
	return Fq{limbs: bigToLimbs(z)}
}

// Mul returns a*b mod p.
func (a Fq) Mul(b Fq) Fq {
	z := new(big.Int).Mul(a.big(), b.big())
	z.Mod(z, FqModulus)
	return Fq{limbs: bigToLimbs(z)}
}

// Square returns a*a mod p.
func (a Fq) Square() Fq { return a.Mul(a) }

// Neg returns -a mod p; Neg(0) = 0.
func (a Fq) Neg() Fq {
	if a.IsZero() {
		return a
	}
	z := new(big.Int).Sub(FqModulus, a.big())
	return Fq{limbs: bigToLimbs(z)}
}

// Inverse returns a^-1 mod p, or 0 if a is 0.
func (a Fq) Inverse() Fq {
	if a.IsZero() {
		return Fq{}
	}
	z := new(big.Int).ModInverse(a.big(), FqModulus)
	return Fq{limbs: bigToLimbs(z)}
}

// Div returns a/b = a * b^-1 mod p.
func (a Fq) Div(b Fq) Fq { return a.Mul(b.Inverse()) }

// Pow returns a^e, square-and-multiply from the MSB down.
func (a Fq) Pow(e uint64) Fq {
	result := FqOne()
	for i := 63; i >= 0; i-- {
		result = result.Square()
		if (e>>uint(i))&1 == 1 {
			result = result.Mul(a)
		}
	}
	return result
}

// PowBig returns a^e for an arbitrary non-negative exponent.
func (a Fq) PowBig(e *big.Int) Fq {
	result := FqOne()
	base := a
	bitLen := e.BitLen()
	for i := 0; i < bitLen; i++ {
		if e.Bit(i) == 1 {
			result = result.Mul(base)
		}
		base = base.Square()
	}
	return result
}

// IsZero reports whether a is the additive identity.
func (a Fq) IsZero() bool { return a.limbs == [4]uint64{} }

// IsOne reports whether a is the multiplicative identity.
func (a Fq) IsOne() bool { return a.limbs == [4]uint64{1, 0, 0, 0} }

// Equal reports whether a and b are the same canonical element.
func (a Fq) Equal(b Fq) bool { return a.limbs == b.limbs }

// Bytes encodes a as 32 little-endian bytes.
func (a Fq) Bytes() [32]byte { return limbsToBytesLE(a.limbs) }

// SetFqBytes decodes 32 (or fewer) little-endian bytes into an Fq.
func SetFqBytes(b []byte) (Fq, error) {
	limbs, err := bytesToLimbsLE(b)
	if err != nil {
		return Fq{}, err
	}
	return NewFqFromLimbs(limbs), nil
}

// Hex encodes a as a lowercase, "0x"-prefixed hex string.
func (a Fq) Hex() string { return limbsToHex(a.limbs) }

// SetFqHex decodes a hex string (optionally "0x"-prefixed) into an Fq.
func SetFqHex(s string) (Fq, error) {
	limbs, err := hexToLimbs(s)
	if err != nil {
		return Fq{}, err
	}
	return NewFqFromLimbs(limbs), nil
}

// String implements fmt.Stringer via Hex.
func (a Fq) String() string { return a.Hex() }

// IsSquare reports whether a is a quadratic residue mod p, via the
// Legendre-style test a^((p-1)/2) == 1. Zero counts as a square. Sqrt
// uses it to reject non-residues.
func (a Fq) IsSquare() bool {
	if a.IsZero() {
		return true
	}
	exp := new(big.Int).Rsh(FqModulus, 1) // (p-1)/2
	r := a.PowBig(exp)
	return r.IsOne()
}

// Sqrt returns a square root of a (BN254's p ≡ 3 mod 4, so the
// Tonelli-Shanks shortcut a^((p+1)/4) applies) and reports whether a
// was a quadratic residue.
func (a Fq) Sqrt() (Fq, bool) {
	if a.IsZero() {
		return Fq{}, true
	}
	if !a.IsSquare() {
		return Fq{}, false
	}
	exp := new(big.Int).Add(FqModulus, big.NewInt(1))
	exp.Rsh(exp, 2) // (p+1)/4
	root := a.PowBig(exp)
	if !root.Square().Equal(a) {
		return Fq{}, false
	}
	return root, true
}
