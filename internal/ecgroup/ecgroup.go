// SPDX-License-Identifier: MIT
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

// Package ecgroup wraps github.com/bytemare/crypto's P-256 group for the
// group-level operations the OPRF protocol needs once a point has already
// been produced by the hash-to-curve pipeline: point addition, scalar
// multiplication, validated (de)serialization, and scalar sampling. It
// deliberately does not expose the library's own HashToGroup/HashToScalar,
// since computing those is the job of internal/h2c and internal/oprfcore.
package ecgroup

import (
	"errors"
	"fmt"
	"math/big"

	group "github.com/bytemare/crypto"
)

// Group is the prime-order group backing every Point and Scalar in this
// package.
var Group = group.P256Sha256

// coordLen is the P-256 field element and scalar size in bytes.
const coordLen = 32

var (
	// ErrInvalidPoint is returned when decoded bytes do not encode a valid,
	// non-identity point on the curve.
	ErrInvalidPoint = errors.New("ecgroup: invalid or identity element")

	// ErrInvalidScalar is returned when decoded bytes do not encode a
	// scalar reduced modulo the group order.
	ErrInvalidScalar = errors.New("ecgroup: invalid scalar encoding")
)

// Point is an element of the P-256 group.
type Point struct {
	e *group.Element
}

// Scalar is an element of the P-256 scalar field (integers mod the group
// order).
type Scalar struct {
	s *group.Scalar
}

// FromAffine builds a Point from affine coordinates produced by the
// hash-to-curve map, via the SEC1 compressed encoding so the group
// library validates that x lies on the curve. The caller supplies
// coordinates already satisfying the curve equation; the parity byte
// pins which of the two square roots y is.
func FromAffine(x, y *big.Int) (*Point, error) {
	buf := make([]byte, 1+coordLen)
	buf[0] = byte(0x02 | y.Bit(0))
	x.FillBytes(buf[1:])

	e := Group.NewElement()
	if err := e.Decode(buf); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPoint, err)
	}

	return &Point{e: e}, nil
}

// Generator returns the group's base point.
func Generator() *Point {
	return &Point{e: Group.Base()}
}

// DecodeCompressed parses a SEC1 compressed point and rejects the identity,
// which never legitimately appears on the OPRF wire.
func DecodeCompressed(b []byte) (*Point, error) {
	e := Group.NewElement()
	if err := e.Decode(b); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPoint, err)
	}

	if e.IsIdentity() {
		return nil, ErrInvalidPoint
	}

	return &Point{e: e}, nil
}

// EncodeCompressed returns the 33-byte SEC1 compressed encoding of p.
func (p *Point) EncodeCompressed() []byte {
	return p.e.Encode()
}

// Add returns p + q.
func (p *Point) Add(q *Point) *Point {
	return &Point{e: p.e.Copy().Add(q.e)}
}

// Mul returns s*p.
func (p *Point) Mul(s *Scalar) *Point {
	return &Point{e: p.e.Copy().Multiply(s.s)}
}

// IsIdentity reports whether p is the group's identity element.
func (p *Point) IsIdentity() bool {
	return p.e.IsIdentity()
}

// Equal reports whether p and q encode the same element.
func (p *Point) Equal(q *Point) bool {
	return p.e.Equal(q.e) == 1
}

// ScalarFromInt converts v, already reduced modulo the group order, into
// a Scalar via its fixed-length big-endian encoding. Used for scalars
// derived via hash_to_field.
func ScalarFromInt(v *big.Int) (*Scalar, error) {
	buf := make([]byte, coordLen)
	v.FillBytes(buf)

	s := Group.NewScalar()
	if err := s.Decode(buf); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidScalar, err)
	}

	return &Scalar{s: s}, nil
}

// RandomScalar returns a uniformly random scalar in [1, order-1]. A zero
// draw is rejected and resampled.
func RandomScalar() *Scalar {
	for {
		s := &Scalar{s: Group.NewScalar().Random()}
		if !s.IsZero() {
			return s
		}
	}
}

// Invert returns s^-1. The caller must ensure s is nonzero.
func (s *Scalar) Invert() *Scalar {
	return &Scalar{s: s.s.Copy().Invert()}
}

// IsZero reports whether s is the additive identity.
func (s *Scalar) IsZero() bool {
	return s.s.IsZero()
}

// Bytes returns the fixed-length big-endian encoding of s.
func (s *Scalar) Bytes() []byte {
	return s.s.Encode()
}
