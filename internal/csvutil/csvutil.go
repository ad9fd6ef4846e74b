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

// Package csvutil reads the comma-separated decimal Fr vectors the
// zkprove/zkverify CLIs take as witness and public-input input files.
package csvutil

import (
	"fmt"
	"math/big"
	"os"
	"strings"

	"github.com/Saudadeeee/zk-snark/field"
)

// ReadFrFile reads a single line of comma-separated decimal integers
// from path and returns them as Fr elements.
func ReadFrFile(path string) ([]field.Fr, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseFrLine(string(raw))
}

// ParseFrLine parses a comma-separated decimal-integer line into Fr
// elements. Blank input yields an empty (not nil-error) slice.
func ParseFrLine(line string) ([]field.Fr, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil, nil
	}
	parts := strings.Split(line, ",")
	out := make([]field.Fr, len(parts))
	for i, p := range parts {
		p = strings.TrimSpace(p)
		v, ok := new(big.Int).SetString(p, 10)
		if !ok {
			return nil, fmt.Errorf("csvutil: invalid decimal integer %q", p)
		}
		out[i] = field.NewFrFromBigInt(v)
	}
	return out, nil
}
