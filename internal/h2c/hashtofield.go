// SPDX-License-Identifier: MIT
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

// Package h2c implements the hash_to_field, map_to_curve (simplified SWU),
// and hash_to_curve pipeline of RFC 9380 for the P256_XMD:SHA-256_SSWU_RO_
// suite. Field arithmetic is delegated to internal/fp; expand_message_xmd
// to internal/expand; only group-level point addition and final-point
// validation are handed off to internal/ecgroup.
package h2c

import (
	"math/big"

	"github.com/oprfkey/oprf/internal/expand"
	"github.com/oprfkey/oprf/internal/fp"
	"github.com/oprfkey/oprf/internal/octet"
)

// HashToField implements RFC 9380 Section 5.2's hash_to_field for m=1
// (prime fields only), returning count integers in [0, q) derived from
// msg and dst. The modulus is a parameter rather than a fixed curve
// attribute because the same expansion serves two configurations: curve
// mapping reduces modulo the base field prime, while RFC 9497's
// HashToScalar reduces modulo the group order. l is the per-element
// expansion length in bytes (48 for both P-256 and secp256k1).
func HashToField(msg, dst []byte, q *big.Int, l, count int) ([]*fp.Element, error) {
	lenInBytes := count * l

	uniformBytes, err := expand.MessageXMD(msg, dst, lenInBytes)
	if err != nil {
		return nil, err
	}

	out := make([]*fp.Element, count)
	for i := 0; i < count; i++ {
		chunk := uniformBytes[i*l : (i+1)*l]
		out[i] = fp.New(octet.OS2IP(chunk), q)
	}

	return out, nil
}
