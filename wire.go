// SPDX-License-Identifier: MIT
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package oprf

import (
	"encoding/hex"
	"fmt"

	"github.com/oprfkey/oprf/internal/ecgroup"
)

// compressedPointHexLen is the length of a 33-byte SEC1 compressed point
// encoded as lowercase hex.
const compressedPointHexLen = 66

// Request is the message a Client sends to a Server: a blinded point and
// an opaque tracing identifier. requestId is never fed into the OPRF
// computation.
type Request struct {
	HexCodedECPoint string `json:"hexCodedEcPoint"`
	RequestID       string `json:"requestId"`
}

// Response is the message a Server returns to a Client: the evaluated
// point and the server's opaque process identifier.
type Response struct {
	HexCodedECPoint   string `json:"hexCodedEcPoint"`
	ProcessIdentifier string `json:"processIdentifier"`
}

// decodePointHex parses a lowercase-hex, 33-byte SEC1 compressed point,
// rejecting malformed hex, wrong lengths, and off-curve or identity
// points.
func decodePointHex(s string) (*ecgroup.Point, error) {
	if len(s) != compressedPointHexLen {
		return nil, fmt.Errorf("%w: got %d hex chars, want %d", ErrInvalidLength, len(s), compressedPointHexLen)
	}

	raw, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidHex, err)
	}

	p, err := ecgroup.DecodeCompressed(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOffCurvePoint, err)
	}

	return p, nil
}

// encodePointHex returns p's compressed SEC1 encoding as lowercase hex.
func encodePointHex(p *ecgroup.Point) string {
	return hex.EncodeToString(p.EncodeCompressed())
}
