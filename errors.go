// SPDX-License-Identifier: MIT
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package oprf

import (
	"errors"
	"fmt"

	"github.com/oprfkey/oprf/internal/expand"
	"github.com/oprfkey/oprf/internal/oprfcore"
)

// Sentinel errors surfaced across the Client/Server boundary. Callers
// should compare against these with errors.Is rather than matching error
// strings.
var (
	// ErrInvalidHex is returned when a wire message's hex-encoded point is
	// malformed.
	ErrInvalidHex = errors.New("oprf: malformed hex-encoded point")

	// ErrOffCurvePoint is returned when a decoded point fails the curve
	// equation or is the identity element.
	ErrOffCurvePoint = errors.New("oprf: point is off-curve or identity")

	// ErrInvalidLength is returned when a wire message's point does not
	// have the expected 33-byte compressed length, or when an internal
	// expand_message_xmd call requests an out-of-range output length.
	ErrInvalidLength = errors.New("oprf: invalid length")

	// ErrDeriveKeyPairExhausted is returned when the DeriveKeyPair
	// counter loop ran through 256 candidates without finding a nonzero
	// scalar.
	ErrDeriveKeyPairExhausted = errors.New("oprf: derive key pair exhausted counter space")

	// ErrWeakScalar names a zero private key. Both server constructors
	// obtain their key from DeriveKeyPair or random sampling, which never
	// yield zero, so no path in this package returns it.
	ErrWeakScalar = errors.New("oprf: scalar is zero")

	// ErrInvalidDST is returned when a DST still exceeds 255 bytes after
	// the oversize-DST hash fallback. Not reachable with this suite's
	// fixed DSTs.
	ErrInvalidDST = errors.New("oprf: DST exceeds maximum length")

	// ErrMissingHash would indicate SHA-256 isn't available from the
	// runtime. crypto/sha256 is always linked into any Go binary that
	// imports it, so this never actually fires; it documents the failure
	// mode rather than guarding a reachable path.
	ErrMissingHash = errors.New("oprf: SHA-256 unavailable")
)

// fromInternal maps internal error kinds onto this package's exported
// sentinels at the Client/Server boundary, so callers can match them with
// errors.Is against the set above. Errors of any other kind are returned
// unchanged.
func fromInternal(err error) error {
	switch {
	case errors.Is(err, expand.ErrDSTTooLong):
		return fmt.Errorf("%w: %v", ErrInvalidDST, err)
	case errors.Is(err, expand.ErrLenInBytesRange):
		return fmt.Errorf("%w: %v", ErrInvalidLength, err)
	case errors.Is(err, oprfcore.ErrDeriveKeyPairExhausted):
		return fmt.Errorf("%w: %v", ErrDeriveKeyPairExhausted, err)
	}

	return err
}
