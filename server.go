// SPDX-License-Identifier: MIT
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package oprf

import (
	"github.com/oprfkey/oprf/internal/ecgroup"
	"github.com/oprfkey/oprf/internal/oprfcore"
	"github.com/oprfkey/oprf/internal/traceid"
)

// Server holds a private OPRF key and answers blinded-evaluation requests.
// It carries no per-client state; every call to Process is independent
// and safe to run concurrently from multiple goroutines, since skS and
// processIdentifier are fixed at construction and never mutated.
type Server struct {
	skS               *ecgroup.Scalar
	processIdentifier string
}

// NewServer constructs a Server with a freshly sampled, uniformly random
// private key.
func NewServer() *Server {
	return &Server{
		skS:               ecgroup.RandomScalar(),
		processIdentifier: traceid.NewProcessIdentifier(),
	}
}

// NewServerWithSeed constructs a Server whose private key is derived
// deterministically from seed and info via RFC 9497's DeriveKeyPair. Two
// servers built from the same (seed, info) return the same evaluated point
// for the same request; their process identifiers are still drawn fresh
// per construction.
func NewServerWithSeed(seed, info []byte) (*Server, error) {
	skS, _, err := oprfcore.DeriveKeyPair(seed, info)
	if err != nil {
		return nil, fromInternal(err)
	}

	return &Server{
		skS:               skS,
		processIdentifier: traceid.NewProcessIdentifier(),
	}, nil
}

// ProcessIdentifier returns the server's opaque process identifier, the
// same value embedded in every identity key it produces.
func (s *Server) ProcessIdentifier() string {
	return s.processIdentifier
}

// Process implements RFC 9497's Evaluate: it decodes the request's
// blinded point, multiplies by the server's private key, and returns the
// result alongside the server's process identifier.
func (s *Server) Process(req Request) (Response, error) {
	q, err := decodePointHex(req.HexCodedECPoint)
	if err != nil {
		return Response{}, err
	}

	r := q.Mul(s.skS)

	return Response{
		HexCodedECPoint:   encodePointHex(r),
		ProcessIdentifier: s.processIdentifier,
	}, nil
}
