// SPDX-License-Identifier: MIT
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package h2c

import (
	"errors"
	"math/big"

	"github.com/oprfkey/oprf/internal/curveparams"
	"github.com/oprfkey/oprf/internal/ecgroup"
	"github.com/oprfkey/oprf/internal/fp"
)

// ErrDegenerateSum is returned when the two map_to_curve outputs cancel
// to the point at infinity, which affine coordinates cannot represent.
// For a random-oracle suite this happens with negligible probability.
var ErrDegenerateSum = errors.New("h2c: mapped points sum to the identity")

// HashToCurve implements RFC 9380's top-level hash_to_curve(msg) for the
// P256_XMD:SHA-256_SSWU_RO_ suite: hash to two field elements, map each
// onto the curve, add the results, and clear the cofactor. P-256's
// cofactor is 1, so clearing it is a no-op; the addition step is what
// makes the overall map behave like a random oracle despite map_to_curve
// alone not being surjective. The returned point is backed by
// internal/ecgroup, so c must be the P-256 suite.
func HashToCurve(c *curveparams.Curve, msg, dst []byte) (*ecgroup.Point, error) {
	u, err := HashToField(msg, dst, c.P, c.L, 2)
	if err != nil {
		return nil, err
	}

	x0, y0 := ApplyIsogeny(c, MapToCurve(c, u[0]))
	x1, y1 := ApplyIsogeny(c, MapToCurve(c, u[1]))

	p0, err := ecgroup.FromAffine(x0.Int(), y0.Int())
	if err != nil {
		return nil, err
	}

	p1, err := ecgroup.FromAffine(x1.Int(), y1.Int())
	if err != nil {
		return nil, err
	}

	return p0.Add(p1), nil
}

// HashToCurveAffine runs the same pipeline entirely in affine
// coordinates, for suites whose curve ecgroup does not back. In practice
// that is the secp256k1 variant, whose map routes through the Appendix E
// isogeny. It returns the sum of the two mapped points as raw
// coordinates on the target curve.
func HashToCurveAffine(c *curveparams.Curve, msg, dst []byte) (x, y *fp.Element, err error) {
	u, err := HashToField(msg, dst, c.P, c.L, 2)
	if err != nil {
		return nil, nil, err
	}

	x0, y0 := ApplyIsogeny(c, MapToCurve(c, u[0]))
	x1, y1 := ApplyIsogeny(c, MapToCurve(c, u[1]))

	return addAffine(c, x0, y0, x1, y1)
}

// addAffine adds two affine points on y^2 = x^3 + Ax + B over c's base
// field, using the chord rule for distinct points and the tangent rule
// for doubling. The identity has no affine representation, so a sum that
// lands there is reported as ErrDegenerateSum.
func addAffine(c *curveparams.Curve, x1, y1, x2, y2 *fp.Element) (*fp.Element, *fp.Element, error) {
	var lambda *fp.Element

	if x1.Sub(x2).IsZero() {
		if y1.Add(y2).IsZero() {
			return nil, nil, ErrDegenerateSum
		}

		// tangent: (3*x1^2 + A) / (2*y1)
		three := fp.New(big.NewInt(3), c.P)
		two := fp.New(big.NewInt(2), c.P)
		a := fp.New(c.A, c.P)

		num := three.Mul(x1.Square()).Add(a)
		lambda = num.Mul(two.Mul(y1).Inv())
	} else {
		lambda = y2.Sub(y1).Mul(x2.Sub(x1).Inv())
	}

	x3 := lambda.Square().Sub(x1).Sub(x2)
	y3 := lambda.Mul(x1.Sub(x3)).Sub(y1)

	return x3, y3, nil
}
