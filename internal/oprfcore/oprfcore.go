// SPDX-License-Identifier: MIT
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

// Package oprfcore implements the RFC 9497 mode-0 OPRF(P-256, SHA-256)
// suite primitives that sit above hash-to-curve: the context string, the
// three protocol DSTs derived from it, HashToGroup, HashToScalar,
// DeriveKeyPair, and the Finalize transcript hash. Client and Server
// compose these with internal/ecgroup's point and scalar arithmetic.
package oprfcore

import (
	"crypto/sha256"
	"errors"

	"github.com/oprfkey/oprf/internal/curveparams"
	"github.com/oprfkey/oprf/internal/ecgroup"
	"github.com/oprfkey/oprf/internal/h2c"
	"github.com/oprfkey/oprf/internal/octet"
)

// Mode identifies the OPRF protocol variant in the context string. Only
// the base (non-verifiable) mode is implemented; VOPRF and POPRF
// verification are out of scope.
const Mode byte = 0x00

// SuiteID is the RFC 9497 identifier for the P-256/SHA-256 ciphersuite.
const SuiteID = "P256-SHA256"

// ErrDeriveKeyPairExhausted is returned when DeriveKeyPair's counter loop
// runs through all 256 values without finding a nonzero candidate scalar,
// which RFC 9497 treats as an ordinary (if vanishingly unlikely) failure
// rather than a protocol break.
var ErrDeriveKeyPairExhausted = errors.New("oprfcore: derive key pair exhausted counter space")

// ContextString returns "OPRFV1-" || I2OSP(mode, 1) || "-" || suiteID.
func ContextString() []byte {
	out := append([]byte("OPRFV1-"), Mode)
	out = append(out, '-')
	out = append(out, []byte(SuiteID)...)

	return out
}

func dstFor(label string) []byte {
	return append([]byte(label), ContextString()...)
}

// HashToGroup implements RFC 9497's HashToGroup(x): hash_to_curve with DST
// "HashToGroup-" || contextString.
func HashToGroup(x []byte) (*ecgroup.Point, error) {
	return h2c.HashToCurve(curveparams.P256, x, dstFor("HashToGroup-"))
}

// HashToScalar implements RFC 9497's HashToScalar(x): hash_to_field with
// DST "HashToScalar-" || contextString, one output reduced modulo the
// group order rather than the base field prime.
func HashToScalar(x []byte) (*ecgroup.Scalar, error) {
	return hashToScalarWithDST(x, dstFor("HashToScalar-"))
}

// hashToScalarWithDST is HashToScalar generalized over the DST, since
// DeriveKeyPair hashes under "DeriveKeyPair" || contextString rather than
// the "HashToScalar-" DST public callers use. It is hash_to_field with
// the group order as modulus instead of the base field prime.
func hashToScalarWithDST(x, dst []byte) (*ecgroup.Scalar, error) {
	c := curveparams.P256

	elems, err := h2c.HashToField(x, dst, c.N, c.L, 1)
	if err != nil {
		return nil, err
	}

	return ecgroup.ScalarFromInt(elems[0].Int())
}

// DeriveKeyPair implements RFC 9497's DeriveKeyPair(seed, info): a
// deterministic key derivation used by NewServerWithSeed and by test
// vectors, distinct from sampling a uniformly random private key.
func DeriveKeyPair(seed, info []byte) (*ecgroup.Scalar, *ecgroup.Point, error) {
	deriveInput := append(append([]byte{}, seed...), octet.MustI2OSP(len(info), 2)...)
	deriveInput = append(deriveInput, info...)

	dst := dstFor("DeriveKeyPair")

	for counter := 0; counter < 256; counter++ {
		candidateInput := append(append([]byte{}, deriveInput...), byte(counter))

		sk, err := hashToScalarWithDST(candidateInput, dst)
		if err != nil {
			return nil, nil, err
		}

		if !sk.IsZero() {
			pk := ecgroup.Generator().Mul(sk)
			return sk, pk, nil
		}
	}

	return nil, nil, ErrDeriveKeyPairExhausted
}

// FinalizeTranscript builds the Finalize hash input RFC 9497 specifies --
// I2OSP(len(input), 2) || input || I2OSP(len(unblinded), 2) || unblinded ||
// "Finalize" -- and returns its SHA-256 digest, the OPRF output.
func FinalizeTranscript(input, unblindedElement []byte) []byte {
	h := sha256.New()
	h.Write(octet.MustI2OSP(len(input), 2))
	h.Write(input)
	h.Write(octet.MustI2OSP(len(unblindedElement), 2))
	h.Write(unblindedElement)
	h.Write([]byte("Finalize"))

	return h.Sum(nil)
}
