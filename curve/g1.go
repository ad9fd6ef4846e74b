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

package curve

import (
	"math/big"

	"github.com/Saudadeeee/zk-snark/field"
)

// G1Affine is a point of E(Fq): y² = x³ + 3, in affine coordinates.
// The identity element is represented by Infinity=true; X, Y are then
// undefined.
type G1Affine struct {
	X, Y     field.Fq
	Infinity bool
}

// G1Jac is a point of E(Fq) in Jacobian projective coordinates
// (X:Y:Z) representing the affine point (X/Z², Y/Z³). Z=0 is the
// point at infinity.
type G1Jac struct {
	X, Y, Z field.Fq
}

// G1InfinityAffine returns the identity element in affine form.
func G1InfinityAffine() G1Affine { return G1Affine{Infinity: true} }

// IsInfinity reports whether p is the identity element.
func (p G1Affine) IsInfinity() bool { return p.Infinity }

// ToAffine projects j down to affine coordinates.
func (j G1Jac) ToAffine() G1Affine {
	if j.Z.IsZero() {
		return G1InfinityAffine()
	}
	zInv := j.Z.Inverse()
	zInv2 := zInv.Square()
	zInv3 := zInv2.Mul(zInv)
	return G1Affine{X: j.X.Mul(zInv2), Y: j.Y.Mul(zInv3)}
}

// FromG1Affine lifts an affine point into Jacobian coordinates.
func FromG1Affine(p G1Affine) G1Jac {
	if p.Infinity {
		return G1Jac{Z: field.FqZero()}
	}
	return G1Jac{X: p.X, Y: p.Y, Z: field.FqOne()}
}

// G1InfinityJac returns the identity element in Jacobian form.
func G1InfinityJac() G1Jac { return G1Jac{Z: field.FqZero()} }

func (j G1Jac) IsInfinity() bool { return j.Z.IsZero() }

// Neg returns -p (identity maps to itself).
func (p G1Affine) Neg() G1Affine {
	if p.Infinity {
		return p
	}
	return G1Affine{X: p.X, Y: p.Y.Neg()}
}

func (j G1Jac) Neg() G1Jac {
	if j.IsInfinity() {
		return j
	}
	return G1Jac{X: j.X, Y: j.Y.Neg(), Z: j.Z}
}

// Equal compares two affine points for equality (both must be finite,
// or both infinite).
func (p G1Affine) Equal(q G1Affine) bool {
	if p.Infinity || q.Infinity {
		return p.Infinity == q.Infinity
	}
	return p.X.Equal(q.X) && p.Y.Equal(q.Y)
}

// Equal compares two Jacobian points up to the equivalence
// (X:Y:Z)~(X':Y':Z') by cross-multiplying out the Z-cofactors.
func (j G1Jac) Equal(k G1Jac) bool {
	if j.IsInfinity() || k.IsInfinity() {
		return j.IsInfinity() == k.IsInfinity()
	}
	z1z1 := j.Z.Square()
	z2z2 := k.Z.Square()
	u1 := j.X.Mul(z2z2)
	u2 := k.X.Mul(z1z1)
	if !u1.Equal(u2) {
		return false
	}
	s1 := j.Y.Mul(k.Z).Mul(z2z2)
	s2 := k.Y.Mul(j.Z).Mul(z1z1)
	return s1.Equal(s2)
}

// IsOnCurve reports whether p satisfies y² = x³ + b.
func (p G1Affine) IsOnCurve() bool {
	if p.Infinity {
		return true
	}
	lhs := p.Y.Square()
	rhs := p.X.Square().Mul(p.X).Add(bCoeffG1)
	return lhs.Equal(rhs)
}

// Double returns 2*j using the standard a=0 Jacobian doubling formulas
// (see e.g. hyperelliptic.org/EFD, "dbl-2009-l").
func (j G1Jac) Double() G1Jac {
	if j.IsInfinity() || j.Y.IsZero() {
		return G1InfinityJac()
	}
	a := j.X.Square()
	b := j.Y.Square()
	c := b.Square()
	d := j.X.Add(b).Square().Sub(a).Sub(c)
	d = d.Add(d)
	e := a.Add(a).Add(a)
	f := e.Square()
	x3 := f.Sub(d).Sub(d)
	c8 := c.Add(c).Add(c).Add(c).Add(c).Add(c).Add(c).Add(c)
	y3 := e.Mul(d.Sub(x3)).Sub(c8)
	z3 := j.Y.Add(j.Y).Mul(j.Z)
	return G1Jac{X: x3, Y: y3, Z: z3}
}

// Add returns j+k using the standard a=0 Jacobian addition formulas
// ("add-2007-bl"), handling the identity and doubling as special cases.
func (j G1Jac) Add(k G1Jac) G1Jac {
	if j.IsInfinity() {
		return k
	}
	if k.IsInfinity() {
		return j
	}
	z1z1 := j.Z.Square()
	z2z2 := k.Z.Square()
	u1 := j.X.Mul(z2z2)
	u2 := k.X.Mul(z1z1)
	s1 := j.Y.Mul(k.Z).Mul(z2z2)
	s2 := k.Y.Mul(j.Z).Mul(z1z1)

	if u1.Equal(u2) {
		if !s1.Equal(s2) {
			return G1InfinityJac()
		}
		return j.Double()
	}

	h := u2.Sub(u1)
	i := h.Add(h).Square()
	jj := h.Mul(i)
	r := s2.Sub(s1)
	r = r.Add(r)
	v := u1.Mul(i)
	x3 := r.Square().Sub(jj).Sub(v).Sub(v)
	y3 := r.Mul(v.Sub(x3)).Sub(s1.Mul(jj).Add(s1.Mul(jj)))
	z3 := j.Z.Add(k.Z).Square().Sub(z1z1).Sub(z2z2).Mul(h)
	return G1Jac{X: x3, Y: y3, Z: z3}
}

// AddMixed adds an affine point to a Jacobian point (Z_k=1 special
// case of Add, skipping the wasted squarings).
func (j G1Jac) AddMixed(p G1Affine) G1Jac {
	if p.Infinity {
		return j
	}
	if j.IsInfinity() {
		return FromG1Affine(p)
	}
	z1z1 := j.Z.Square()
	u2 := p.X.Mul(z1z1)
	s2 := p.Y.Mul(j.Z).Mul(z1z1)

	if j.X.Equal(u2) {
		if !j.Y.Equal(s2) {
			return G1InfinityJac()
		}
		return j.Double()
	}

	h := u2.Sub(j.X)
	hh := h.Square()
	i := hh.Add(hh).Add(hh).Add(hh)
	jj := h.Mul(i)
	r := s2.Sub(j.Y)
	r = r.Add(r)
	v := j.X.Mul(i)
	x3 := r.Square().Sub(jj).Sub(v).Sub(v)
	y3 := r.Mul(v.Sub(x3)).Sub(j.Y.Mul(jj).Add(j.Y.Mul(jj)))
	z3 := j.Z.Add(h).Square().Sub(z1z1).Sub(hh)
	return G1Jac{X: x3, Y: y3, Z: z3}
}

// ScalarMul computes [e]j via left-to-right double-and-add.
func (j G1Jac) ScalarMul(e *big.Int) G1Jac {
	result := G1InfinityJac()
	bitLen := e.BitLen()
	for i := bitLen - 1; i >= 0; i-- {
		result = result.Double()
		if e.Bit(i) == 1 {
			result = result.Add(j)
		}
	}
	return result
}

// ScalarMulFr computes [e]p for a scalar drawn from field.Fr.
func (p G1Affine) ScalarMulFr(e field.Fr) G1Affine {
	return FromG1Affine(p).ScalarMul(e.BigInt()).ToAffine()
}
