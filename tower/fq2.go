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

// Package tower implements the BN254 base-field extension tower:
// Fq2 = Fq[u]/(u²+1), Fq6 = Fq2[v]/(v³-(9+u)), Fq12 = Fq6[w]/(w²-v).
// It is the target field of the optimal Ate pairing (Fq12) and the
// field G2 is defined over (Fq2).
package tower

import "github.com/Saudadeeee/zk-snark/field"

// Fq2 represents a0 + a1*u with u² = -1.
type Fq2 struct {
	A0, A1 field.Fq
}

// Fq2Zero is the additive identity.
func Fq2Zero() Fq2 { return Fq2{} }

// Fq2One is the multiplicative identity.
func Fq2One() Fq2 { return Fq2{A0: field.FqOne()} }

// NonResidueFq6 is 9+u, the non-residue used to build Fq6 = Fq2[v]/(v³-ξ).
func NonResidueFq6() Fq2 { return Fq2{A0: field.NewFq(9), A1: field.FqOne()} }

func (a Fq2) Add(b Fq2) Fq2 { return Fq2{A0: a.A0.Add(b.A0), A1: a.A1.Add(b.A1)} }
func (a Fq2) Sub(b Fq2) Fq2 { return Fq2{A0: a.A0.Sub(b.A0), A1: a.A1.Sub(b.A1)} }
func (a Fq2) Neg() Fq2      { return Fq2{A0: a.A0.Neg(), A1: a.A1.Neg()} }

// Mul computes (a0+a1u)(b0+b1u) = (a0b0-a1b1) + (a0b1+a1b0)u via
// Karatsuba: v0=a0b0, v1=a1b1, c0=v0-v1, c1=(a0+a1)(b0+b1)-v0-v1.
func (a Fq2) Mul(b Fq2) Fq2 {
	v0 := a.A0.Mul(b.A0)
	v1 := a.A1.Mul(b.A1)
	c0 := v0.Sub(v1)
	c1 := a.A0.Add(a.A1).Mul(b.A0.Add(b.A1)).Sub(v0).Sub(v1)
	return Fq2{A0: c0, A1: c1}
}

// Square uses the complex-squaring identity: c0 = (a0+a1)(a0-a1),
// c1 = 2*a0*a1.
func (a Fq2) Square() Fq2 {
	c0 := a.A0.Add(a.A1).Mul(a.A0.Sub(a.A1))
	c1 := a.A0.Mul(a.A1).Add(a.A0.Mul(a.A1))
	return Fq2{A0: c0, A1: c1}
}

// MulByFq scales both components by an Fq scalar.
func (a Fq2) MulByFq(k field.Fq) Fq2 {
	return Fq2{A0: a.A0.Mul(k), A1: a.A1.Mul(k)}
}

// Conjugate returns a0 - a1*u, which equals a^p (Frobenius) since
// BN254's p ≡ 3 (mod 4) makes -1 a non-residue with order-2 Frobenius.
func (a Fq2) Conjugate() Fq2 { return Fq2{A0: a.A0, A1: a.A1.Neg()} }

// Norm returns a0²+a1², the Fq-valued field norm N(a) = a * conj(a).
func (a Fq2) Norm() field.Fq { return a.A0.Square().Add(a.A1.Square()) }

// Inverse returns a^-1 = conj(a) / N(a), or the zero element if a is 0.
func (a Fq2) Inverse() Fq2 {
	if a.IsZero() {
		return Fq2{}
	}
	nInv := a.Norm().Inverse()
	return a.Conjugate().MulByFq(nInv)
}

func (a Fq2) Div(b Fq2) Fq2 { return a.Mul(b.Inverse()) }

// MulByNonResidue multiplies a by (9+u), the non-residue used to build Fq6.
func (a Fq2) MulByNonResidue() Fq2 {
	// (a0+a1u)(9+u) = (9a0 - a1) + (a0 + 9a1)u
	nine := field.NewFq(9)
	c0 := a.A0.Mul(nine).Sub(a.A1)
	c1 := a.A0.Add(a.A1.Mul(nine))
	return Fq2{A0: c0, A1: c1}
}

func (a Fq2) IsZero() bool   { return a.A0.IsZero() && a.A1.IsZero() }
func (a Fq2) IsOne() bool    { return a.A0.IsOne() && a.A1.IsZero() }
func (a Fq2) Equal(b Fq2) bool { return a.A0.Equal(b.A0) && a.A1.Equal(b.A1) }

// Pow raises a to a machine-integer exponent by square-and-multiply.
func (a Fq2) Pow(e uint64) Fq2 {
	result := Fq2One()
	base := a
	for e > 0 {
		if e&1 == 1 {
			result = result.Mul(base)
		}
		base = base.Square()
		e >>= 1
	}
	return result
}

// Bytes encodes a as Fq(A0) ‖ Fq(A1), 64 bytes.
func (a Fq2) Bytes() [64]byte {
	var out [64]byte
	b0 := a.A0.Bytes()
	b1 := a.A1.Bytes()
	copy(out[:32], b0[:])
	copy(out[32:], b1[:])
	return out
}

// SetFq2Bytes decodes 64 bytes produced by Bytes.
func SetFq2Bytes(b []byte) (Fq2, error) {
	if len(b) != 64 {
		return Fq2{}, field.ErrInvalidFieldEncoding
	}
	a0, err := field.SetFqBytes(b[:32])
	if err != nil {
		return Fq2{}, err
	}
	a1, err := field.SetFqBytes(b[32:])
	if err != nil {
		return Fq2{}, err
	}
	return Fq2{A0: a0, A1: a1}, nil
}
