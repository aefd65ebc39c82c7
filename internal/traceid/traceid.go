// SPDX-License-Identifier: MIT
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

// Package traceid generates the opaque identifiers carried on the OPRF
// wire (request and process identifiers) via github.com/google/uuid.
// Neither identifier ever enters the cryptographic computation.
package traceid

import "github.com/google/uuid"

// NewRequestID returns a fresh random identifier for an outgoing request.
func NewRequestID() string {
	return uuid.New().String()
}

// processPrefix tags a process identifier so it is visually distinct from a
// bare request id in logs.
const processPrefix = "SP:"

// NewProcessIdentifier returns a fresh opaque server process identifier.
func NewProcessIdentifier() string {
	return processPrefix + uuid.New().String()
}
