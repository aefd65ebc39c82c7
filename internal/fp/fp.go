// SPDX-License-Identifier: MIT
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

// Package fp implements the prime-field arithmetic that the simplified SWU
// map and hash_to_field rely on. The modulus is supplied by the caller
// rather than baked into a package singleton, so the same code serves both
// the P-256 base field and, when the secp256k1 isogeny variant is in play,
// its distinct base field.
//
// math/big is not constant-time, so the operations here, including
// SqrtRatio, Sgn0 and CMov, take time that can depend on their operands.
// Those operands include the field elements hashed from a client's input
// and, through oprfcore's DeriveKeyPair, the server's private scalar.
package fp

import "math/big"

// Element is a value in the field defined by Modulus, always kept reduced
// into [0, Modulus).
type Element struct {
	Modulus *big.Int
	v       *big.Int
}

// New returns the element val mod m.
func New(val *big.Int, m *big.Int) *Element {
	v := new(big.Int).Mod(val, m)
	return &Element{Modulus: m, v: v}
}

// Zero returns the additive identity of the field with modulus m.
func Zero(m *big.Int) *Element {
	return &Element{Modulus: m, v: big.NewInt(0)}
}

// Int returns the element's canonical representative in [0, Modulus).
func (e *Element) Int() *big.Int {
	return new(big.Int).Set(e.v)
}

// IsZero reports whether e is the additive identity.
func (e *Element) IsZero() bool {
	return e.v.Sign() == 0
}

// Add returns e + other.
func (e *Element) Add(other *Element) *Element {
	return New(new(big.Int).Add(e.v, other.v), e.Modulus)
}

// Sub returns e - other.
func (e *Element) Sub(other *Element) *Element {
	return New(new(big.Int).Sub(e.v, other.v), e.Modulus)
}

// Mul returns e * other.
func (e *Element) Mul(other *Element) *Element {
	return New(new(big.Int).Mul(e.v, other.v), e.Modulus)
}

// Square returns e^2.
func (e *Element) Square() *Element {
	return e.Mul(e)
}

// Neg returns -e.
func (e *Element) Neg() *Element {
	return New(new(big.Int).Neg(e.v), e.Modulus)
}

// Pow returns e^exp.
func (e *Element) Pow(exp *big.Int) *Element {
	return New(new(big.Int).Exp(e.v, exp, e.Modulus), e.Modulus)
}

// Inv returns e^-1. The result is undefined (zero) if e is zero; callers in
// this package never invert a value they haven't checked is nonzero, since
// RFC 9380's map avoids dividing by a quantity that can vanish on its own.
func (e *Element) Inv() *Element {
	if e.v.Sign() == 0 {
		return Zero(e.Modulus)
	}

	return New(new(big.Int).ModInverse(e.v, e.Modulus), e.Modulus)
}

// IsSquare reports whether e is a quadratic residue, via Euler's
// criterion e^((p-1)/2) == 1. Zero is conventionally a square.
func (e *Element) IsSquare() bool {
	if e.IsZero() {
		return true
	}

	exp := new(big.Int).Rsh(new(big.Int).Sub(e.Modulus, big.NewInt(1)), 1)
	return e.Pow(exp).v.Cmp(big.NewInt(1)) == 0
}

// Sgn0 implements RFC 9380 Section 4.1's sgn0 for a single-element (m=1)
// field: the least significant bit of the canonical representative.
func (e *Element) Sgn0() int {
	return int(e.v.Bit(0))
}

// CMov returns b if cond is true and a otherwise. It mirrors the
// constant-time-select idiom (RFC 9380's CMOV) used elsewhere for
// secret-dependent choices in elliptic-curve code; math/big itself is not
// constant-time, so this buys uniform structure, not a timing guarantee.
func CMov(a, b *Element, cond bool) *Element {
	if cond {
		return New(new(big.Int).Set(b.v), a.Modulus)
	}

	return New(new(big.Int).Set(a.v), a.Modulus)
}

// Sqrt returns a square root of e when the field modulus is congruent to 3
// mod 4 (true for both P-256's base field and the secp256k1 isogeny's base
// field), via e^((p+1)/4). The caller must have already confirmed e is a
// square; for a non-residue the result is meaningless.
func (e *Element) Sqrt() *Element {
	exp := new(big.Int).Rsh(new(big.Int).Add(e.Modulus, big.NewInt(1)), 2)
	return e.Pow(exp)
}

// SqrtRatio implements RFC 9380 Appendix F.2.1's sqrt_ratio_3mod4: given u
// and v with v != 0, it returns (isSquare, sqrt(u/v)) if u/v is a square in
// the field, and otherwise (false, sqrt(Z*u/v)) where negZ is -Z for the
// curve's non-square SWU constant Z.
func SqrtRatio(u, v, negZ *Element) (bool, *Element) {
	c1 := new(big.Int).Rsh(new(big.Int).Sub(v.Modulus, big.NewInt(3)), 2)
	c2 := negZ.Sqrt()

	tv1 := v.Square()
	tv2 := u.Mul(v)
	tv1 = tv1.Mul(tv2) // tv1 = u * v^3

	y1 := tv1.Pow(c1)
	y1 = y1.Mul(tv2) // y1 = u * v * (u*v^3)^((p-3)/4)

	y2 := y1.Mul(c2)

	tv3 := y1.Square()
	tv3 = tv3.Mul(v)

	isQR := tv3.Sub(u).IsZero()

	y := CMov(y2, y1, isQR)

	return isQR, y
}
