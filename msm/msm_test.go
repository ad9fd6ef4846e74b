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

package msm_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Saudadeeee/zk-snark/curve"
	"github.com/Saudadeeee/zk-snark/field"
	"github.com/Saudadeeee/zk-snark/msm"
)

func sampleG1(n int) ([]curve.G1Affine, []field.Fr) {
	g := curve.G1GeneratorAffine()
	points := make([]curve.G1Affine, n)
	scalars := make([]field.Fr, n)
	for i := 0; i < n; i++ {
		scalars[i] = field.NewFr(uint64(i*7 + 3))
		points[i] = g.ScalarMulFr(field.NewFr(uint64(i + 1)))
	}
	return points, scalars
}

func sampleG2(n int) ([]curve.G2Affine, []field.Fr) {
	g := curve.G2GeneratorAffine()
	points := make([]curve.G2Affine, n)
	scalars := make([]field.Fr, n)
	for i := 0; i < n; i++ {
		scalars[i] = field.NewFr(uint64(i*7 + 3))
		points[i] = g.ScalarMulFr(field.NewFr(uint64(i + 1)))
	}
	return points, scalars
}

func TestWindowedG1AgreesWithNaive(t *testing.T) {
	points, scalars := sampleG1(9)

	want, err := msm.NaiveG1(points, scalars)
	require.NoError(t, err)

	got, err := msm.WindowedG1(context.Background(), points, scalars, 3)
	require.NoError(t, err)

	require.True(t, want.Equal(got))
}

func TestWindowedG2AgreesWithNaive(t *testing.T) {
	points, scalars := sampleG2(9)

	want, err := msm.NaiveG2(points, scalars)
	require.NoError(t, err)

	got, err := msm.WindowedG2(context.Background(), points, scalars, 3)
	require.NoError(t, err)

	require.True(t, want.Equal(got))
}

func TestWindowedG1DefaultWindowBits(t *testing.T) {
	points, scalars := sampleG1(5)

	want, err := msm.NaiveG1(points, scalars)
	require.NoError(t, err)

	got, err := msm.WindowedG1(context.Background(), points, scalars, 0)
	require.NoError(t, err)

	require.True(t, want.Equal(got))
}

func TestMsmLengthMismatch(t *testing.T) {
	points, scalars := sampleG1(3)
	scalars = scalars[:2]

	_, err := msm.NaiveG1(points, scalars)
	require.ErrorIs(t, err, msm.ErrLengthMismatch)

	_, err = msm.WindowedG1(context.Background(), points, scalars, 4)
	require.ErrorIs(t, err, msm.ErrLengthMismatch)
}

func TestMsmEmptyInputIsInfinity(t *testing.T) {
	got, err := msm.WindowedG1(context.Background(), nil, nil, 4)
	require.NoError(t, err)
	require.True(t, got.IsInfinity())
}
