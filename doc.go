// SPDX-License-Identifier: MIT
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

// Package oprf implements OPRF(P-256, SHA-256) in mode 0 per RFC 9497,
// built on hash-to-curve per RFC 9380 (P256_XMD:SHA-256_SSWU_RO_).
//
// A Client turns a piece of sensitive data into a stable identifier
// without revealing that data to the Server, and the Server never learns
// which identifier corresponds to which input. Two clients submitting the
// same input to the same server always arrive at the same identifier;
// the same input against a different server produces an unrelated one.
//
// Only the base OPRF mode is implemented. Verifiable and partially
// oblivious variants (VOPRF, POPRF) are out of scope.
package oprf
