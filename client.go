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
	"github.com/oprfkey/oprf/internal/oprfcore"
	"github.com/oprfkey/oprf/internal/traceid"
)

// ServerEndpoint is anything that can answer an OPRF Request, whether
// that is an in-process *Server or a stub over a message channel.
// ConvertToIdentityKey never inspects processIdentifier or the point
// beyond validating it, so any implementation of this interface composes.
type ServerEndpoint interface {
	Process(req Request) (Response, error)
}

// Client turns sensitive data into a stable identifier via the OPRF
// protocol against a ServerEndpoint. Client itself holds no state between
// calls; every field of ConvertToIdentityKey's blind factor is generated
// fresh and discarded.
type Client struct{}

// NewClient returns a ready-to-use Client. There is no configuration:
// every OPRF parameter is fixed by the P256-SHA256 suite.
func NewClient() *Client {
	return &Client{}
}

// ConvertToIdentityKey runs the full Blind -> Process -> Finalize
// exchange against server for sensitiveData, returning
// "<processIdentifier>:<hex(sha256-output)>".
func (c *Client) ConvertToIdentityKey(server ServerEndpoint, sensitiveData string) (string, error) {
	input := []byte(sensitiveData)

	blind := ecgroup.RandomScalar()

	p, err := oprfcore.HashToGroup(input)
	if err != nil {
		return "", fromInternal(err)
	}

	blinded := p.Mul(blind)

	req := Request{
		HexCodedECPoint: encodePointHex(blinded),
		RequestID:       traceid.NewRequestID(),
	}

	resp, err := server.Process(req)
	if err != nil {
		return "", err
	}

	evaluated, err := decodePointHex(resp.HexCodedECPoint)
	if err != nil {
		return "", err
	}

	unblinded := evaluated.Mul(blind.Invert())

	output := oprfcore.FinalizeTranscript(input, unblinded.EncodeCompressed())

	return fmt.Sprintf("%s:%s", resp.ProcessIdentifier, hex.EncodeToString(output)), nil
}
