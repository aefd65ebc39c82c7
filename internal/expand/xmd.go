// SPDX-License-Identifier: MIT
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

// Package expand implements expand_message_xmd from RFC 9380 Section 5.3.1,
// instantiated with SHA-256 as required by the P256_XMD:SHA-256_SSWU_RO_
// suite.
package expand

import (
	"crypto/sha256"
	"errors"
	"fmt"

	"github.com/oprfkey/oprf/internal/octet"
)

const (
	bInBytes = 32 // SHA-256 digest size
	rInBytes = 64 // SHA-256 block size
	maxEll   = 255
)

var (
	// ErrLenInBytesRange is returned when lenInBytes is outside [1, 65535] or
	// requires more than 255 SHA-256 blocks.
	ErrLenInBytesRange = errors.New("expand: len_in_bytes out of range")

	// ErrDSTTooLong is returned when the oversize-DST fallback still exceeds
	// 255 bytes, which RFC 9380 treats as unreachable for any sane DST.
	ErrDSTTooLong = errors.New("expand: DST_prime exceeds 255 bytes")
)

// MessageXMD implements expand_message_xmd(msg, DST, len_in_bytes) with
// SHA-256. len_in_bytes must be in [1, 65535]; dst may be any length, with
// the over-255-byte case folded per RFC 9380 Section 5.3.3.
func MessageXMD(msg, dst []byte, lenInBytes int) ([]byte, error) {
	if lenInBytes < 1 || lenInBytes > 65535 {
		return nil, fmt.Errorf("%w: %d", ErrLenInBytesRange, lenInBytes)
	}

	ell := (lenInBytes + bInBytes - 1) / bInBytes
	if ell > maxEll {
		return nil, fmt.Errorf("%w: ell=%d exceeds 255", ErrLenInBytesRange, ell)
	}

	dstPrime, err := dstPrime(dst)
	if err != nil {
		return nil, err
	}

	zPad := make([]byte, rInBytes)
	libStr := octet.MustI2OSP(lenInBytes, 2)

	h := sha256.New()
	h.Write(zPad)
	h.Write(msg)
	h.Write(libStr)
	h.Write([]byte{0})
	h.Write(dstPrime)
	b0 := h.Sum(nil)

	h.Reset()
	h.Write(b0)
	h.Write([]byte{1})
	h.Write(dstPrime)
	b1 := h.Sum(nil)

	uniform := make([]byte, 0, ell*bInBytes)
	uniform = append(uniform, b1...)

	prev := b1
	for i := 2; i <= ell; i++ {
		xored, err := octet.StrXOR(b0, prev)
		if err != nil {
			return nil, err
		}

		h.Reset()
		h.Write(xored)
		h.Write([]byte{byte(i)})
		h.Write(dstPrime)
		bi := h.Sum(nil)

		uniform = append(uniform, bi...)
		prev = bi
	}

	return uniform[:lenInBytes], nil
}

// dstPrime computes DST_prime per RFC 9380 Section 5.3.3: the DST itself
// length-prefixed when short enough, or a hashed, fixed-length fallback
// ("H2C-OVERSIZE-DST-" || dst) when it would not fit in one length byte.
func dstPrime(dst []byte) ([]byte, error) {
	if len(dst) <= maxEll {
		return append(append([]byte{}, dst...), byte(len(dst))), nil
	}

	h := sha256.New()
	h.Write([]byte("H2C-OVERSIZE-DST-"))
	h.Write(dst)
	hashed := h.Sum(nil)

	if len(hashed) > maxEll {
		return nil, ErrDSTTooLong
	}

	return append(hashed, byte(len(hashed))), nil
}
