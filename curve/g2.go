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
	"github.com/Saudadeeee/zk-snark/tower"
)

// G2Affine is a point of the sextic twist E'(Fq2): y² = x³ + b', in
// affine coordinates.
type G2Affine struct {
	X, Y     tower.Fq2
	Infinity bool
}

// G2Jac is the Jacobian projective form of G2Affine.
type G2Jac struct {
	X, Y, Z tower.Fq2
}

func G2InfinityAffine() G2Affine { return G2Affine{Infinity: true} }
func G2InfinityJac() G2Jac       { return G2Jac{Z: tower.Fq2Zero()} }

func (p G2Affine) IsInfinity() bool { return p.Infinity }
func (j G2Jac) IsInfinity() bool    { return j.Z.IsZero() }

func (p G2Affine) Neg() G2Affine {
	if p.Infinity {
		return p
	}
	return G2Affine{X: p.X, Y: p.Y.Neg()}
}

func (j G2Jac) Neg() G2Jac {
	if j.IsInfinity() {
		return j
	}
	return G2Jac{X: j.X, Y: j.Y.Neg(), Z: j.Z}
}

func (p G2Affine) Equal(q G2Affine) bool {
	if p.Infinity || q.Infinity {
		return p.Infinity == q.Infinity
	}
	return p.X.Equal(q.X) && p.Y.Equal(q.Y)
}

func (j G2Jac) Equal(k G2Jac) bool {
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

// IsOnCurve reports whether p satisfies y² = x³ + b' on the twist.
func (p G2Affine) IsOnCurve() bool {
	if p.Infinity {
		return true
	}
	lhs := p.Y.Square()
	rhs := p.X.Square().Mul(p.X).Add(bCoeffG2())
	return lhs.Equal(rhs)
}

func FromG2Affine(p G2Affine) G2Jac {
	if p.Infinity {
		return G2InfinityJac()
	}
	return G2Jac{X: p.X, Y: p.Y, Z: tower.Fq2One()}
}

func (j G2Jac) ToAffine() G2Affine {
	if j.Z.IsZero() {
		return G2InfinityAffine()
	}
	zInv := j.Z.Inverse()
	zInv2 := zInv.Square()
	zInv3 := zInv2.Mul(zInv)
	return G2Affine{X: j.X.Mul(zInv2), Y: j.Y.Mul(zInv3)}
}

// Double is the a=0 Jacobian doubling formula lifted to Fq2 arithmetic.
func (j G2Jac) Double() G2Jac {
	if j.IsInfinity() || j.Y.IsZero() {
		return G2InfinityJac()
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
	return G2Jac{X: x3, Y: y3, Z: z3}
}

func (j G2Jac) Add(k G2Jac) G2Jac {
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
			return G2InfinityJac()
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
	return G2Jac{X: x3, Y: y3, Z: z3}
}

func (j G2Jac) AddMixed(p G2Affine) G2Jac {
	if p.Infinity {
		return j
	}
	if j.IsInfinity() {
		return FromG2Affine(p)
	}
	z1z1 := j.Z.Square()
	u2 := p.X.Mul(z1z1)
	s2 := p.Y.Mul(j.Z).Mul(z1z1)

	if j.X.Equal(u2) {
		if !j.Y.Equal(s2) {
			return G2InfinityJac()
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
	return G2Jac{X: x3, Y: y3, Z: z3}
}

func (j G2Jac) ScalarMul(e *big.Int) G2Jac {
	result := G2InfinityJac()
	bitLen := e.BitLen()
	for i := bitLen - 1; i >= 0; i-- {
		result = result.Double()
		if e.Bit(i) == 1 {
			result = result.Add(j)
		}
	}
	return result
}

func (p G2Affine) ScalarMulFr(e field.Fr) G2Affine {
	return FromG2Affine(p).ScalarMul(e.BigInt()).ToAffine()
}

// FrobeniusMap applies the p-power Frobenius endomorphism to a G2
// point through the sextic twist untwist-Frobenius-twist map:
// π(x,y) = (conj(x)*γx, conj(y)*γy), with γx=ξ^((p-1)/3),
// γy=ξ^((p-1)/2) the two twist-weighted Frobenius constants.
func (p G2Affine) FrobeniusMap() G2Affine {
	if p.Infinity {
		return p
	}
	x := p.X.Conjugate().Mul(tower.FrobeniusGammaX())
	y := p.Y.Conjugate().Mul(tower.FrobeniusGammaY())
	return G2Affine{X: x, Y: y}
}
