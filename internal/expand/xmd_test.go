package expand_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oprfkey/oprf/internal/expand"
)

func TestMessageXMD_Deterministic(t *testing.T) {
	dst := []byte("test-DST")
	msg := []byte("some message")

	a, err := expand.MessageXMD(msg, dst, 96)
	require.NoError(t, err)
	b, err := expand.MessageXMD(msg, dst, 96)
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestMessageXMD_LengthMatchesRequest(t *testing.T) {
	for _, n := range []int{1, 32, 48, 96, 255 * 32} {
		out, err := expand.MessageXMD([]byte("msg"), []byte("dst"), n)
		require.NoError(t, err)
		assert.Len(t, out, n)
	}
}

func TestMessageXMD_DifferentDSTDifferentOutput(t *testing.T) {
	msg := []byte("identical message")

	a, err := expand.MessageXMD(msg, []byte("dst-one"), 32)
	require.NoError(t, err)
	b, err := expand.MessageXMD(msg, []byte("dst-two"), 32)
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestMessageXMD_DifferentLengthDifferentOutput(t *testing.T) {
	// len_in_bytes is bound into msg_prime, so even the leading bytes of
	// the expansion change when a different total length is requested.
	msg := []byte("length binding")
	dst := []byte("dst")

	short, err := expand.MessageXMD(msg, dst, 32)
	require.NoError(t, err)
	long, err := expand.MessageXMD(msg, dst, 96)
	require.NoError(t, err)

	assert.NotEqual(t, short, long[:32])
}

func TestMessageXMD_RangeErrors(t *testing.T) {
	_, err := expand.MessageXMD([]byte("x"), []byte("dst"), 0)
	assert.ErrorIs(t, err, expand.ErrLenInBytesRange)

	_, err = expand.MessageXMD([]byte("x"), []byte("dst"), 66000)
	assert.ErrorIs(t, err, expand.ErrLenInBytesRange)
}

func TestMessageXMD_OversizeDST(t *testing.T) {
	longDST := make([]byte, 300)
	for i := range longDST {
		longDST[i] = byte(i)
	}

	out, err := expand.MessageXMD([]byte("msg"), longDST, 32)
	require.NoError(t, err)
	assert.Len(t, out, 32)
}
