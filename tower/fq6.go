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

package tower

// Fq6 represents c0 + c1*v + c2*v² with v³ = 9+u (NonResidueFq6).
type Fq6 struct {
	C0, C1, C2 Fq2
}

func Fq6Zero() Fq6 { return Fq6{} }
func Fq6One() Fq6  { return Fq6{C0: Fq2One()} }

func (a Fq6) Add(b Fq6) Fq6 {
	return Fq6{a.C0.Add(b.C0), a.C1.Add(b.C1), a.C2.Add(b.C2)}
}

func (a Fq6) Sub(b Fq6) Fq6 {
	return Fq6{a.C0.Sub(b.C0), a.C1.Sub(b.C1), a.C2.Sub(b.C2)}
}

func (a Fq6) Neg() Fq6 { return Fq6{a.C0.Neg(), a.C1.Neg(), a.C2.Neg()} }

// MulByNonResidue multiplies a by v: v*(a0+a1v+a2v²) = a2*ξ + a0*v + a1*v².
func (a Fq6) MulByNonResidue() Fq6 {
	return Fq6{C0: a.C2.MulByNonResidue(), C1: a.C0, C2: a.C1}
}

// Mul is the standard Karatsuba/Toom-3 product for cubic extensions:
//
//	v0=a0b0, v1=a1b1, v2=a2b2
//	c0 = v0 + ξ*((a1+a2)(b1+b2)-v1-v2)
//	c1 = (a0+a1)(b0+b1) - v0 - v1 + ξ*v2
//	c2 = (a0+a2)(b0+b2) - v0 - v2 + v1
func (a Fq6) Mul(b Fq6) Fq6 {
	v0 := a.C0.Mul(b.C0)
	v1 := a.C1.Mul(b.C1)
	v2 := a.C2.Mul(b.C2)

	t0 := a.C1.Add(a.C2).Mul(b.C1.Add(b.C2)).Sub(v1).Sub(v2)
	c0 := v0.Add(t0.MulByNonResidue())

	t1 := a.C0.Add(a.C1).Mul(b.C0.Add(b.C1)).Sub(v0).Sub(v1)
	c1 := t1.Add(v2.MulByNonResidue())

	t2 := a.C0.Add(a.C2).Mul(b.C0.Add(b.C2)).Sub(v0).Sub(v2)
	c2 := t2.Add(v1)

	return Fq6{c0, c1, c2}
}

// Square is implemented as Mul(a, a); Chung-Hasan variants trade
// multiplications for additions but schoolbook squaring via Mul is a
// correct, low-risk baseline (spec allows schoolbook throughout).
func (a Fq6) Square() Fq6 { return a.Mul(a) }

// MulByFq2 scales every Fq2 coefficient by a scalar in Fq2.
func (a Fq6) MulByFq2(k Fq2) Fq6 {
	return Fq6{a.C0.Mul(k), a.C1.Mul(k), a.C2.Mul(k)}
}

// Inverse computes a^-1 via the standard cubic-extension inverse
// formula: for a = c0+c1v+c2v², with
//
//	A = c0²-ξ*c1*c2, B = ξ*c2²-c0*c1, C = c1²-c0*c2
//
// N = c0*A + ξ*c2*B + ξ*c1*C is the Fq2-valued norm, and
// a^-1 = (A, B, C) * N^-1.
func (a Fq6) Inverse() Fq6 {
	if a.IsZero() {
		return Fq6{}
	}
	c0sq := a.C0.Square()
	c1sq := a.C1.Square()
	c2sq := a.C2.Square()
	c0c1 := a.C0.Mul(a.C1)
	c0c2 := a.C0.Mul(a.C2)
	c1c2 := a.C1.Mul(a.C2)

	A := c0sq.Sub(c1c2.MulByNonResidue())
	B := c2sq.MulByNonResidue().Sub(c0c1)
	C := c1sq.Sub(c0c2)

	N := a.C0.Mul(A).Add(a.C2.Mul(B).MulByNonResidue()).Add(a.C1.Mul(C).MulByNonResidue())
	nInv := N.Inverse()

	return Fq6{A.Mul(nInv), B.Mul(nInv), C.Mul(nInv)}
}

func (a Fq6) Div(b Fq6) Fq6 { return a.Mul(b.Inverse()) }

func (a Fq6) IsZero() bool { return a.C0.IsZero() && a.C1.IsZero() && a.C2.IsZero() }
func (a Fq6) IsOne() bool  { return a.C0.IsOne() && a.C1.IsZero() && a.C2.IsZero() }
func (a Fq6) Equal(b Fq6) bool {
	return a.C0.Equal(b.C0) && a.C1.Equal(b.C1) && a.C2.Equal(b.C2)
}

// gamma1Sq and gamma1Pow4 are the Frobenius twist constants
// ξ^((p-1)/3) and ξ^(2(p-1)/3), derived from gamma1 (see fq12.go).
func (a Fq6) frobeniusBase() Fq6 {
	c0 := a.C0.Conjugate()
	c1 := a.C1.Conjugate().Mul(frobeniusGamma1Sq())
	c2 := a.C2.Conjugate().Mul(frobeniusGamma1Pow4())
	return Fq6{c0, c1, c2}
}

// Frobenius applies x -> x^(p^power) by iterating the base Frobenius
// map power times (power is always small in the pairing algorithm).
func (a Fq6) Frobenius(power int) Fq6 {
	r := a
	for i := 0; i < power; i++ {
		r = r.frobeniusBase()
	}
	return r
}
