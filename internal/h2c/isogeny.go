// SPDX-License-Identifier: MIT
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package h2c

import (
	"math/big"

	"github.com/oprfkey/oprf/internal/curveparams"
	"github.com/oprfkey/oprf/internal/fp"
)

// ApplyIsogeny carries a Mapped point from the SWU companion curve E'
// onto the target curve c via the rational maps of RFC 9380 Appendix E:
// x = XNum(x')/XDen(x'), y = y' * YNum(x')/YDen(x'). A point that is not
// tagged OnIsogenous is already on the target curve and passes through
// unchanged.
func ApplyIsogeny(c *curveparams.Curve, m Mapped) (x, y *fp.Element) {
	if !m.OnIsogenous {
		return m.X, m.Y
	}

	iso := c.Isogeny

	xNum := evalPoly(c.P, iso.XNum, m.X)
	xDen := evalPoly(c.P, iso.XDen, m.X)
	yNum := evalPoly(c.P, iso.YNum, m.X)
	yDen := evalPoly(c.P, iso.YDen, m.X)

	x = xNum.Mul(xDen.Inv())
	y = m.Y.Mul(yNum).Mul(yDen.Inv())

	return x, y
}

// evalPoly evaluates a polynomial with coefficients ordered constant term
// first at x, by Horner's rule.
func evalPoly(p *big.Int, coeffs []*big.Int, x *fp.Element) *fp.Element {
	if len(coeffs) == 0 {
		return fp.Zero(p)
	}

	acc := fp.New(coeffs[len(coeffs)-1], p)
	for i := len(coeffs) - 2; i >= 0; i-- {
		acc = acc.Mul(x).Add(fp.New(coeffs[i], p))
	}

	return acc
}
