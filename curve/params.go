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

// Package curve implements the BN254 groups G1 (over field.Fq) and G2
// (over tower.Fq2), both in Jacobian coordinates with affine reduction
// at the boundary.
package curve

import (
	"math/big"
	"sync"

	"github.com/Saudadeeee/zk-snark/field"
	"github.com/Saudadeeee/zk-snark/tower"
)

// bCoeffG1 is the coefficient b in E: y² = x³ + b over Fq.
var bCoeffG1 = field.NewFq(3)

var (
	bCoeffG2Once sync.Once
	bCoeffG2Val  tower.Fq2
)

// bCoeffG2 is b' = b * ξ^-1 = 3*(9+u)^-1, the twisted curve coefficient
// for the sextic D-type twist E': y² = x³ + b' over Fq2.
func bCoeffG2() tower.Fq2 {
	bCoeffG2Once.Do(func() {
		bCoeffG2Val = tower.NonResidueFq6().Inverse().MulByFq(field.NewFq(3))
	})
	return bCoeffG2Val
}

// G1GeneratorAffine is a fixed generator of the BN254 G1 r-torsion group.
func G1GeneratorAffine() G1Affine {
	return G1Affine{X: field.NewFq(1), Y: field.NewFq(2)}
}

// G2GeneratorAffine is a fixed generator of the BN254 G2 r-torsion group.
// The coordinates are the widely published alt_bn128 G2 generator
// constants (as used, e.g., in the Ethereum BN254 precompile test
// vectors), expressed as x = x0+x1*u, y = y0+y1*u.
func G2GeneratorAffine() G2Affine {
	x0, _ := new(big.Int).SetString("10857046999023057135944570762232829481370756359578518086990519993285655852781", 10)
	x1, _ := new(big.Int).SetString("11559732032986387107991004021392285783925812861821192530917403151452391805634", 10)
	y0, _ := new(big.Int).SetString("8495653923123431417604973247489272438418190587263600148770280649306958101930", 10)
	y1, _ := new(big.Int).SetString("4082367875863433681332203403145435568316851327593401208105741076214120093531", 10)
	return G2Affine{
		X: tower.Fq2{A0: field.NewFqFromBigInt(x0), A1: field.NewFqFromBigInt(x1)},
		Y: tower.Fq2{A0: field.NewFqFromBigInt(y0), A1: field.NewFqFromBigInt(y1)},
	}
}
