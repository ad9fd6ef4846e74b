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

// Package msm implements multi-scalar multiplication over G1 and G2:
// given points p_0..p_n-1 and scalars s_0..s_n-1, compute sum(s_i*p_i).
// Naive is the direct definition; Windowed buckets scalars by a
// configurable window to cut the number of group additions, in the
// style of Pippenger's algorithm.
package msm

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"

	"github.com/Saudadeeee/zk-snark/curve"
	"github.com/Saudadeeee/zk-snark/field"
)

// ErrLengthMismatch is returned when the points and scalars slices
// passed to a multi-scalar multiplication have different lengths.
var ErrLengthMismatch = errors.New("msm: points and scalars length mismatch")

// defaultWindowBits is the bucket window size used by WindowedG1/G2
// when the caller does not have a reason to tune it.
const defaultWindowBits = 4

// NaiveG1 computes sum(scalars[i]*points[i]) by direct scalar
// multiplication and accumulation. It is the reference implementation
// against which WindowedG1 is checked.
func NaiveG1(points []curve.G1Affine, scalars []field.Fr) (curve.G1Affine, error) {
	if len(points) != len(scalars) {
		return curve.G1Affine{}, ErrLengthMismatch
	}
	acc := curve.G1InfinityJac()
	for i := range points {
		acc = acc.Add(curve.FromG1Affine(points[i]).ScalarMul(scalars[i].BigInt()))
	}
	return acc.ToAffine(), nil
}

// NaiveG2 is NaiveG1's G2 counterpart.
func NaiveG2(points []curve.G2Affine, scalars []field.Fr) (curve.G2Affine, error) {
	if len(points) != len(scalars) {
		return curve.G2Affine{}, ErrLengthMismatch
	}
	acc := curve.G2InfinityJac()
	for i := range points {
		acc = acc.Add(curve.FromG2Affine(points[i]).ScalarMul(scalars[i].BigInt()))
	}
	return acc.ToAffine(), nil
}

// WindowedG1 computes the same result as NaiveG1 using a bucket-method
// (Pippenger-style) reduction: scalars are split into c-bit windows,
// each window's points are accumulated into 2^c-1 buckets keyed by the
// window's digit, and buckets are combined window by window from the
// most significant down. Windows are processed concurrently and merged
// in index order so the result is independent of goroutine scheduling.
func WindowedG1(ctx context.Context, points []curve.G1Affine, scalars []field.Fr, windowBits int) (curve.G1Affine, error) {
	if len(points) != len(scalars) {
		return curve.G1Affine{}, ErrLengthMismatch
	}
	if len(points) == 0 {
		return curve.G1InfinityAffine(), nil
	}
	if windowBits <= 0 {
		windowBits = defaultWindowBits
	}

	const scalarBits = 254
	numWindows := (scalarBits + windowBits - 1) / windowBits
	windowSums := make([]curve.G1Jac, numWindows)

	g, _ := errgroup.WithContext(ctx)
	for w := 0; w < numWindows; w++ {
		w := w
		g.Go(func() error {
			numBuckets := 1 << uint(windowBits)
			buckets := make([]curve.G1Jac, numBuckets)
			for i := range buckets {
				buckets[i] = curve.G1InfinityJac()
			}
			shift := uint(w * windowBits)
			for i := range points {
				digit := windowDigit(scalars[i], shift, windowBits)
				if digit == 0 {
					continue
				}
				buckets[digit] = buckets[digit].AddMixed(points[i])
			}
			windowSums[w] = sumBucketsG1(buckets)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return curve.G1Affine{}, err
	}

	acc := curve.G1InfinityJac()
	for w := numWindows - 1; w >= 0; w-- {
		for i := 0; i < windowBits; i++ {
			acc = acc.Double()
		}
		acc = acc.Add(windowSums[w])
	}
	return acc.ToAffine(), nil
}

// WindowedG2 is WindowedG1's G2 counterpart.
func WindowedG2(ctx context.Context, points []curve.G2Affine, scalars []field.Fr, windowBits int) (curve.G2Affine, error) {
	if len(points) != len(scalars) {
		return curve.G2Affine{}, ErrLengthMismatch
	}
	if len(points) == 0 {
		return curve.G2InfinityAffine(), nil
	}
	if windowBits <= 0 {
		windowBits = defaultWindowBits
	}

	const scalarBits = 254
	numWindows := (scalarBits + windowBits - 1) / windowBits
	windowSums := make([]curve.G2Jac, numWindows)

	g, _ := errgroup.WithContext(ctx)
	for w := 0; w < numWindows; w++ {
		w := w
		g.Go(func() error {
			numBuckets := 1 << uint(windowBits)
			buckets := make([]curve.G2Jac, numBuckets)
			for i := range buckets {
				buckets[i] = curve.G2InfinityJac()
			}
			shift := uint(w * windowBits)
			for i := range points {
				digit := windowDigit(scalars[i], shift, windowBits)
				if digit == 0 {
					continue
				}
				buckets[digit] = buckets[digit].AddMixed(points[i])
			}
			windowSums[w] = sumBucketsG2(buckets)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return curve.G2Affine{}, err
	}

	acc := curve.G2InfinityJac()
	for w := numWindows - 1; w >= 0; w-- {
		for i := 0; i < windowBits; i++ {
			acc = acc.Double()
		}
		acc = acc.Add(windowSums[w])
	}
	return acc.ToAffine(), nil
}

// windowDigit extracts the windowBits-wide digit of scalar's canonical
// big-endian value starting at bit offset shift.
func windowDigit(scalar field.Fr, shift uint, windowBits int) int {
	v := scalar.BigInt()
	digit := 0
	for i := 0; i < windowBits; i++ {
		if v.Bit(int(shift)+i) == 1 {
			digit |= 1 << uint(i)
		}
	}
	return digit
}

// sumBucketsG1 folds numbered buckets 1..n-1 into sum(k*bucket[k]) using
// the standard running-sum trick: iterate from the highest bucket down,
// maintaining a running total and an accumulator.
func sumBucketsG1(buckets []curve.G1Jac) curve.G1Jac {
	acc := curve.G1InfinityJac()
	running := curve.G1InfinityJac()
	for k := len(buckets) - 1; k >= 1; k-- {
		running = running.Add(buckets[k])
		acc = acc.Add(running)
	}
	return acc
}

func sumBucketsG2(buckets []curve.G2Jac) curve.G2Jac {
	acc := curve.G2InfinityJac()
	running := curve.G2InfinityJac()
	for k := len(buckets) - 1; k >= 1; k-- {
		running = running.Add(buckets[k])
		acc = acc.Add(running)
	}
	return acc
}
