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

package csvutil_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Saudadeeee/zk-snark/field"
	"github.com/Saudadeeee/zk-snark/internal/csvutil"
)

func TestParseFrLine(t *testing.T) {
	vals, err := csvutil.ParseFrLine("1, 2,3")
	require.NoError(t, err)
	require.Len(t, vals, 3)
	require.True(t, vals[0].Equal(field.NewFr(1)))
	require.True(t, vals[1].Equal(field.NewFr(2)))
	require.True(t, vals[2].Equal(field.NewFr(3)))
}

func TestParseFrLineBlankIsEmpty(t *testing.T) {
	vals, err := csvutil.ParseFrLine("   ")
	require.NoError(t, err)
	require.Nil(t, vals)
}

func TestParseFrLineRejectsGarbage(t *testing.T) {
	_, err := csvutil.ParseFrLine("1,not-a-number")
	require.Error(t, err)
}
