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

// Package encoding implements the stable, little-endian byte codecs
// for every exported field, curve, and protocol type, plus a
// semver-tagged format header so a decoder can refuse a payload from
// an incompatible future encoder rather than silently misparsing it.
package encoding

import (
	"encoding/binary"
	"errors"

	"github.com/blang/semver/v4"

	"github.com/Saudadeeee/zk-snark/curve"
	"github.com/Saudadeeee/zk-snark/field"
	"github.com/Saudadeeee/zk-snark/tower"
)

// FormatVersion is the current on-disk format version. Bumped on any
// breaking change to the layouts in this package.
var FormatVersion = semver.MustParse("1.0.0")

// ErrUnsupportedVersion is returned by decoders when a payload's
// header carries a version this build cannot read.
var ErrUnsupportedVersion = errors.New("encoding: unsupported format version")

// ErrTruncated is returned when a decoder runs out of input bytes
// before finishing a value.
var ErrTruncated = errors.New("encoding: truncated input")

const g1PointLen = 65 // 1 marker byte + 32(X) + 32(Y)
const g2PointLen = 129 // 1 marker byte + 64(X) + 64(Y)

// WriteVersionHeader appends the format version as a 3xu16 triple
// (major, minor, patch) — fixed-width so headers never need a length
// prefix of their own.
func WriteVersionHeader(buf []byte) []byte {
	var v [6]byte
	binary.LittleEndian.PutUint16(v[0:2], uint16(FormatVersion.Major))
	binary.LittleEndian.PutUint16(v[2:4], uint16(FormatVersion.Minor))
	binary.LittleEndian.PutUint16(v[4:6], uint16(FormatVersion.Patch))
	return append(buf, v[:]...)
}

// ReadVersionHeader parses a header written by WriteVersionHeader and
// checks it against FormatVersion's major component (the only
// dimension this format treats as breaking).
func ReadVersionHeader(b []byte) (semver.Version, []byte, error) {
	if len(b) < 6 {
		return semver.Version{}, nil, ErrTruncated
	}
	major := binary.LittleEndian.Uint16(b[0:2])
	minor := binary.LittleEndian.Uint16(b[2:4])
	patch := binary.LittleEndian.Uint16(b[4:6])
	v := semver.Version{Major: uint64(major), Minor: uint64(minor), Patch: uint64(patch)}
	if v.Major != FormatVersion.Major {
		return v, nil, ErrUnsupportedVersion
	}
	return v, b[6:], nil
}

// PutFr appends Fr's 32-byte little-endian encoding to buf.
func PutFr(buf []byte, v field.Fr) []byte {
	b := v.Bytes()
	return append(buf, b[:]...)
}

// PutFq appends Fq's 32-byte little-endian encoding to buf.
func PutFq(buf []byte, v field.Fq) []byte {
	b := v.Bytes()
	return append(buf, b[:]...)
}

// GetFr decodes a 32-byte Fr from the front of b, returning the
// remaining bytes.
func GetFr(b []byte) (field.Fr, []byte, error) {
	if len(b) < 32 {
		return field.Fr{}, nil, ErrTruncated
	}
	v, err := field.SetFrBytes(b[:32])
	if err != nil {
		return field.Fr{}, nil, err
	}
	return v, b[32:], nil
}

// GetFq decodes a 32-byte Fq from the front of b, returning the
// remaining bytes.
func GetFq(b []byte) (field.Fq, []byte, error) {
	if len(b) < 32 {
		return field.Fq{}, nil, ErrTruncated
	}
	v, err := field.SetFqBytes(b[:32])
	if err != nil {
		return field.Fq{}, nil, err
	}
	return v, b[32:], nil
}

// PutFq2 appends Fq2's 64-byte encoding (Fq(A0) ‖ Fq(A1)).
func PutFq2(buf []byte, v tower.Fq2) []byte {
	b := v.Bytes()
	return append(buf, b[:]...)
}

// GetFq2 decodes a 64-byte Fq2 from the front of b.
func GetFq2(b []byte) (tower.Fq2, []byte, error) {
	if len(b) < 64 {
		return tower.Fq2{}, nil, ErrTruncated
	}
	v, err := tower.SetFq2Bytes(b[:64])
	if err != nil {
		return tower.Fq2{}, nil, err
	}
	return v, b[64:], nil
}

// PutG1 encodes a G1 point as a leading marker byte (0x01 for the
// identity, 0x00 otherwise) followed by Fq(X) ‖ Fq(Y) (zeroed out for
// the identity case).
func PutG1(buf []byte, p curve.G1Affine) []byte {
	if p.Infinity {
		buf = append(buf, 0x01)
		var zero [64]byte
		return append(buf, zero[:]...)
	}
	buf = append(buf, 0x00)
	buf = PutFq(buf, p.X)
	buf = PutFq(buf, p.Y)
	return buf
}

// GetG1 decodes a point written by PutG1.
func GetG1(b []byte) (curve.G1Affine, []byte, error) {
	if len(b) < g1PointLen {
		return curve.G1Affine{}, nil, ErrTruncated
	}
	marker := b[0]
	rest := b[1:]
	if marker == 0x01 {
		return curve.G1InfinityAffine(), rest[64:], nil
	}
	x, rest, err := GetFq(rest)
	if err != nil {
		return curve.G1Affine{}, nil, err
	}
	y, rest, err := GetFq(rest)
	if err != nil {
		return curve.G1Affine{}, nil, err
	}
	return curve.G1Affine{X: x, Y: y}, rest, nil
}

// PutG2 encodes a G2 point analogously to PutG1, over Fq2 coordinates.
func PutG2(buf []byte, p curve.G2Affine) []byte {
	if p.Infinity {
		buf = append(buf, 0x01)
		var zero [128]byte
		return append(buf, zero[:]...)
	}
	buf = append(buf, 0x00)
	buf = PutFq2(buf, p.X)
	buf = PutFq2(buf, p.Y)
	return buf
}

// GetG2 decodes a point written by PutG2.
func GetG2(b []byte) (curve.G2Affine, []byte, error) {
	if len(b) < g2PointLen {
		return curve.G2Affine{}, nil, ErrTruncated
	}
	marker := b[0]
	rest := b[1:]
	if marker == 0x01 {
		return curve.G2InfinityAffine(), rest[128:], nil
	}
	x, rest, err := GetFq2(rest)
	if err != nil {
		return curve.G2Affine{}, nil, err
	}
	y, rest, err := GetFq2(rest)
	if err != nil {
		return curve.G2Affine{}, nil, err
	}
	return curve.G2Affine{X: x, Y: y}, rest, nil
}

// PutU64 appends v as 8 little-endian bytes.
func PutU64(buf []byte, v uint64) []byte {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	return append(buf, b[:]...)
}

// GetU64 decodes 8 little-endian bytes from the front of b.
func GetU64(b []byte) (uint64, []byte, error) {
	if len(b) < 8 {
		return 0, nil, ErrTruncated
	}
	return binary.LittleEndian.Uint64(b[:8]), b[8:], nil
}
