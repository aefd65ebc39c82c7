package octet_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oprfkey/oprf/internal/octet"
)

func TestI2OSP_OS2IP_RoundTrip(t *testing.T) {
	for _, tc := range []struct {
		value  int
		length int
	}{
		{0, 1}, {1, 1}, {255, 1}, {256, 2}, {65535, 2}, {1, 4}, {12345, 32},
	} {
		b, err := octet.I2OSP(tc.value, tc.length)
		require.NoError(t, err)
		assert.Len(t, b, tc.length)
		assert.Equal(t, int64(tc.value), octet.OS2IP(b).Int64())
	}
}

func TestI2OSP_Errors(t *testing.T) {
	_, err := octet.I2OSP(-1, 2)
	assert.ErrorIs(t, err, octet.ErrNegativeValue)

	_, err = octet.I2OSP(256, 1)
	assert.ErrorIs(t, err, octet.ErrValueTooLarge)
}

func TestStrXOR(t *testing.T) {
	a := []byte{0xff, 0x00, 0x0f}
	b := []byte{0x0f, 0xff, 0xf0}

	out, err := octet.StrXOR(a, b)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xf0, 0xff, 0xff}, out)

	_, err = octet.StrXOR(a, []byte{0x00})
	assert.ErrorIs(t, err, octet.ErrLengthMismatch)
}
