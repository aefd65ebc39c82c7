package curveparams_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/oprfkey/oprf/internal/curveparams"
)

func onCurve(t *testing.T, c *curveparams.Curve) {
	t.Helper()

	y2 := new(big.Int).Mul(c.Gy, c.Gy)
	y2.Mod(y2, c.P)

	x3 := new(big.Int).Exp(c.Gx, big.NewInt(3), c.P)
	ax := new(big.Int).Mul(c.A, c.Gx)
	rhs := new(big.Int).Add(x3, ax)
	rhs.Add(rhs, c.B)
	rhs.Mod(rhs, c.P)

	assert.Equal(t, y2, rhs, "%s generator must satisfy y^2 = x^3 + Ax + B", c.Name)
}

func TestGeneratorsOnCurve(t *testing.T) {
	onCurve(t, curveparams.P256)
	onCurve(t, curveparams.SECP256K1)
}

func TestZIsNonSquare(t *testing.T) {
	zModP := new(big.Int).Mod(curveparams.P256.Z, curveparams.P256.P)
	exp := new(big.Int).Rsh(new(big.Int).Sub(curveparams.P256.P, big.NewInt(1)), 1)
	euler := new(big.Int).Exp(zModP, exp, curveparams.P256.P)

	assert.NotEqual(t, big.NewInt(1), euler, "Z must be a non-square mod p")
}
