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

// FrModulus is the BN254 scalar field modulus r, the order of the
// G1/G2 r-torsion subgroups.
var FrModulus, _ = new(big.Int).SetString("21888242871839275222246405745257275088548364400416034343698204186575808495617", 10)

// Fr is an element of GF(r), always held in canonical form: limbs
// interpreted little-endian satisfy 0 <= value < FrModulus.
type Fr struct {
	limbs [4]uint64
}

// FrZero is the additive identity.
func FrZero() Fr { return Fr{} }

// FrOne is the multiplicative identity.
func FrOne() Fr { return Fr{limbs: [4]uint64{1, 0, 0, 0}} }

// NewFr reduces v modulo r.
func NewFr(v uint64) Fr {
	return Fr{limbs: [4]uint64{v, 0, 0, 0}}
}

// NewFrFromLimbs reduces limbs (little-endian) modulo r if necessary.
func NewFrFromLimbs(limbs [4]uint64) Fr {
	z := limbsToBig(limbs)
	z.Mod(z, FrModulus)
	return Fr{limbs: bigToLimbs(z)}
}

// NewFrFromBigInt reduces an arbitrary big.Int modulo r.
func NewFrFromBigInt(v *big.Int) Fr {
	z := new(big.Int).Mod(v, FrModulus)
	return Fr{limbs: bigToLimbs(z)}
}

func (a Fr) big() *big.Int { return limbsToBig(a.limbs) }

// BigInt returns the canonical representative as a big.Int.
func (a Fr) BigInt() *big.Int { return a.big() }

// Add returns a+b mod r.
func (a Fr) Add(b Fr) Fr {
	z := new(big.Int).Add(a.big(), b.big())
	if z.Cmp(FrModulus) >= 0 {
		z.Sub(z, FrModulus)
	}
	return Fr{limbs: bigToLimbs(z)}
}

// Sub returns a-b mod r.
func (a Fr) Sub(b Fr) Fr {
	z := new(big.Int).Sub(a.big(), b.big())
	if z.Sign() < 0 {
		z.Add(z, FrModulus)
	}
	return Fr{limbs: bigToLimbs(z)}
}

// Mul returns a*b mod r.
func (a Fr) Mul(b Fr) Fr {
	z := new(big.Int).Mul(a.big(), b.big())
	z.Mod(z, FrModulus)
	return Fr{limbs: bigToLimbs(z)}
}

// Square returns a*a mod r.
func (a Fr) Square() Fr { return a.Mul(a) }

// Neg returns -a mod r; Neg(0) = 0.
func (a Fr) Neg() Fr {
	if a.IsZero() {
		return a
	}
	z := new(big.Int).Sub(FrModulus, a.big())
	return Fr{limbs: bigToLimbs(z)}
}

// Inverse returns a^-1 mod r, or 0 if a is 0 (spec convention: the
// zero element's inverse is defined to be zero rather than raising an
// error; callers dividing by a value that may legitimately be zero
// must check IsZero first).
func (a Fr) Inverse() Fr {
	if a.IsZero() {
		return Fr{}
	}
	z := new(big.Int).ModInverse(a.big(), FrModulus)
	return Fr{limbs: bigToLimbs(z)}
}

// Div returns a/b = a * b^-1 mod r.
func (a Fr) Div(b Fr) Fr { return a.Mul(b.Inverse()) }

// Pow returns a^e using a machine-integer exponent, square-and-multiply
// from the MSB down.
func (a Fr) Pow(e uint64) Fr {
	result := FrOne()
	for i := 63; i >= 0; i-- {
		result = result.Square()
		if (e>>uint(i))&1 == 1 {
			result = result.Mul(a)
		}
	}
	return result
}

// PowFr returns a^e for a field-element exponent, treating e's
// canonical representative as the (unsigned) exponent.
func (a Fr) PowFr(e Fr) Fr {
	result := FrOne()
	base := a
	exp := e.big()
	bitLen := exp.BitLen()
	for i := 0; i < bitLen; i++ {
		if exp.Bit(i) == 1 {
			result = result.Mul(base)
		}
		base = base.Square()
	}
	return result
}

// IsZero reports whether a is the additive identity.
func (a Fr) IsZero() bool { return a.limbs == [4]uint64{} }

// IsOne reports whether a is the multiplicative identity.
func (a Fr) IsOne() bool { return a.limbs == [4]uint64{1, 0, 0, 0} }

// Equal reports whether a and b are the same canonical element.
func (a Fr) Equal(b Fr) bool { return a.limbs == b.limbs }

// Bytes encodes a as 32 little-endian bytes.
func (a Fr) Bytes() [32]byte { return limbsToBytesLE(a.limbs) }

// SetFrBytes decodes 32 (or fewer) little-endian bytes into a, reducing
// modulo r if the value exceeds the modulus. Fails if len(b) > 32.
func SetFrBytes(b []byte) (Fr, error) {
	limbs, err := bytesToLimbsLE(b)
	if err != nil {
		return Fr{}, err
	}
	return NewFrFromLimbs(limbs), nil
}

// Hex encodes a as a lowercase, "0x"-prefixed hex string.
func (a Fr) Hex() string { return limbsToHex(a.limbs) }

// SetFrHex decodes a hex string (optionally "0x"-prefixed) into an Fr,
// reducing modulo r. Fails if the hex payload exceeds 64 characters.
func SetFrHex(s string) (Fr, error) {
	limbs, err := hexToLimbs(s)
	if err != nil {
		return Fr{}, err
	}
	return NewFrFromLimbs(limbs), nil
}

// String implements fmt.Stringer via Hex.
func (a Fr) String() string { return a.Hex() }
