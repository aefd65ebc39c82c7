// SPDX-License-Identifier: MIT
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

// Package octet implements the octet-string primitives of RFC 8017 and
// RFC 9380 that the hash-to-curve and OPRF layers build on: I2OSP, OS2IP,
// and strxor.
package octet

import (
	"errors"
	"fmt"
	"math/big"
)

var (
	// ErrNegativeValue is returned by I2OSP when value is negative.
	ErrNegativeValue = errors.New("octet: I2OSP value must be non-negative")

	// ErrValueTooLarge is returned by I2OSP when value does not fit in length bytes.
	ErrValueTooLarge = errors.New("octet: I2OSP value too large for requested length")

	// ErrLengthMismatch is returned by StrXOR when operands have different lengths.
	ErrLengthMismatch = errors.New("octet: strxor operands must have equal length")
)

// I2OSP encodes value as a big-endian byte string of exactly length bytes.
// It fails if value is negative or does not fit in length bytes, per RFC 8017.
func I2OSP(value, length int) ([]byte, error) {
	if value < 0 {
		return nil, ErrNegativeValue
	}

	out := make([]byte, length)

	v := big.NewInt(int64(value))
	b := v.Bytes()

	if len(b) > length {
		return nil, fmt.Errorf("%w: %d does not fit in %d bytes", ErrValueTooLarge, value, length)
	}

	copy(out[length-len(b):], b)

	return out, nil
}

// MustI2OSP is I2OSP for call sites where length and value are compile-time
// invariants of the protocol (e.g. encoding a fixed 1 or 2-byte length
// prefix). It panics on error, since such a failure indicates a programmer
// error rather than bad input.
func MustI2OSP(value, length int) []byte {
	out, err := I2OSP(value, length)
	if err != nil {
		panic(err)
	}

	return out
}

// OS2IP interprets b as the big-endian encoding of a non-negative integer.
// It is the total inverse of I2OSP.
func OS2IP(b []byte) *big.Int {
	return new(big.Int).SetBytes(b)
}

// StrXOR returns the byte-wise XOR of a and b, which must have equal length.
func StrXOR(a, b []byte) ([]byte, error) {
	if len(a) != len(b) {
		return nil, ErrLengthMismatch
	}

	out := make([]byte, len(a))
	for i := range a {
		out[i] = a[i] ^ b[i]
	}

	return out, nil
}
