package oprf_test

import (
	"encoding/hex"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oprfkey/oprf/internal/ecgroup"
	"github.com/oprfkey/oprf/internal/oprfcore"
)

// RFC 9497 Section A.1.1 vector 1: DeriveKeyPair(seed, info).
func TestDeriveKeyPairVector1(t *testing.T) {
	seed := make([]byte, 32)
	for i := range seed {
		seed[i] = 0xA3
	}
	info := []byte("test key")

	wantSk, ok := new(big.Int).SetString(
		"159749d750713afe245d2d39ccfaae8381c53ce92d098a9375ee70739c7ac0bf", 16)
	require.True(t, ok)

	sk, _, err := oprfcore.DeriveKeyPair(seed, info)
	require.NoError(t, err)

	assert.Equal(t, wantSk, new(big.Int).SetBytes(sk.Bytes()))
}

// RFC 9497 Section A.1.1 full OPRF vectors, exercising Blind/Evaluate/
// Finalize directly with fixed blind and private key rather than the
// randomized values Client and Server draw at runtime.
func TestFullOPRFVectors(t *testing.T) {
	seed := make([]byte, 32)
	for i := range seed {
		seed[i] = 0xA3
	}
	sk, _, err := oprfcore.DeriveKeyPair(seed, []byte("test key"))
	require.NoError(t, err)

	cases := []struct {
		name     string
		input    []byte
		blindHex string
		wantHex  string
	}{
		{
			name:     "vector1",
			input:    []byte{0x00},
			blindHex: "3338fa65ec36e0290022b48eb562889d89dbfa691d1cde91517fa222ed7ad364",
			wantHex:  "a0b34de5fa4c5b6da07e72af73cc507cceeb48981b97b7285fc375345fe495dd",
		},
		{
			name:     "vector2",
			input:    repeat(0x5A, 17),
			blindHex: "e6d0f1d89ad552e859d708177054aca4695ef33b5d89d4d3f9a2c376e08a1450",
			wantHex:  "c748ca6dd327f0ce85f4ae3a8cd6d4d5390bbb804c9e12dcf94f853fece3dcce",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			blindInt, ok := new(big.Int).SetString(tc.blindHex, 16)
			require.True(t, ok)
			blind, err := ecgroup.ScalarFromInt(blindInt)
			require.NoError(t, err)

			p, err := oprfcore.HashToGroup(tc.input)
			require.NoError(t, err)

			blinded := p.Mul(blind)
			evaluated := blinded.Mul(sk)
			unblinded := evaluated.Mul(blind.Invert())

			out := oprfcore.FinalizeTranscript(tc.input, unblinded.EncodeCompressed())

			assert.Equal(t, tc.wantHex, hex.EncodeToString(out))
		})
	}
}

func repeat(b byte, n int) []byte {
	out := make([]byte, n)
	for i := range out {
		out[i] = b
	}

	return out
}
