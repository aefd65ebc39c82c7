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

// Mapped is map_to_curve's output: affine coordinates tagged with the
// curve they lie on. When OnIsogenous is false the point is on the target
// curve itself (the P-256 case); when true it lies on the SWU-friendly
// companion E' and the caller must push it through ApplyIsogeny before
// treating it as a point on c.
type Mapped struct {
	X *fp.Element
	Y *fp.Element

	OnIsogenous bool
}

// MapToCurve implements the optimized simplified SWU map of RFC 9380
// Section 6.6.2 / Appendix F.2. For curves with A != 0 (P-256) the map
// targets c directly; for curves carrying an Isogeny (secp256k1) it runs
// against the isogenous companion's coefficients and tags the result
// accordingly.
func MapToCurve(c *curveparams.Curve, u *fp.Element) Mapped {
	aInt, bInt := c.A, c.B
	if c.Isogeny != nil {
		aInt, bInt = c.Isogeny.A, c.Isogeny.B
	}

	a := fp.New(aInt, c.P)
	b := fp.New(bInt, c.P)
	z := fp.New(c.Z, c.P)
	negZ := z.Neg()
	one := fp.New(big.NewInt(1), c.P)

	tv1 := z.Mul(u.Square())
	tv2 := tv1.Square().Add(tv1)

	tv3 := b.Mul(tv2.Add(one))

	tv2IsZero := tv2.IsZero()
	tv4sel := fp.CMov(tv2.Neg(), z, tv2IsZero) // -tv2 unless tv2 == 0, then Z
	tv4 := a.Mul(tv4sel)

	gx1Num := tv3.Square()
	tv6 := tv4.Square()
	gx1Num = gx1Num.Add(a.Mul(tv6))
	gx1Num = gx1Num.Mul(tv3)

	tv6 = tv6.Mul(tv4)
	gx1Num = gx1Num.Add(b.Mul(tv6))

	xCandidate := tv1.Mul(tv3)

	isGx1Square, y1 := fp.SqrtRatio(gx1Num, tv6, negZ)

	yCandidate := tv1.Mul(u).Mul(y1)

	xCandidate = fp.CMov(xCandidate, tv3, isGx1Square)
	yCandidate = fp.CMov(yCandidate, y1, isGx1Square)

	if u.Sgn0() != yCandidate.Sgn0() {
		yCandidate = yCandidate.Neg()
	}

	return Mapped{
		X:           xCandidate.Mul(tv4.Inv()),
		Y:           yCandidate,
		OnIsogenous: c.Isogeny != nil,
	}
}
