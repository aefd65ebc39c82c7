// SPDX-License-Identifier: MIT
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

// Package curveparams holds the immutable constant tables the hash-to-curve
// and OPRF layers are parameterized over: the field prime, group order,
// generator, and Weierstrass/SWU constants for each supported curve. Every
// value is built once at package init from its hex literal and never
// mutated afterward.
package curveparams

import "math/big"

// Isogeny holds the coefficients of the rational maps of a low-degree
// isogeny from a SWU-friendly companion curve E' onto the target curve,
// per RFC 9380 Appendix E. A and B are the Weierstrass coefficients of E'; the
// four coefficient slices define x = XNum(x')/XDen(x') and
// y = y' * YNum(x')/YDen(x'), each ordered from the constant term upward.
type Isogeny struct {
	A *big.Int
	B *big.Int

	XNum []*big.Int
	XDen []*big.Int
	YNum []*big.Int
	YDen []*big.Int
}

// Curve bundles the constants map_to_curve, hash_to_field, and the OPRF
// suite need for one named curve. A and B define y^2 = x^3 + Ax + B; Z is
// the RFC 9380 Section 6.6.2 non-square constant for the simplified SWU map.
type Curve struct {
	Name string

	P *big.Int // base field prime
	N *big.Int // group order
	A *big.Int // Weierstrass coefficient a, reduced mod P
	B *big.Int // Weierstrass coefficient b
	Z *big.Int // SWU non-square constant, stored as a small negative integer; reduce mod P before use

	Gx *big.Int
	Gy *big.Int

	// L is ceil((ceil(log2(p)) + k) / 8) from RFC 9380 Section 5.1, the
	// extra-bits length used by hash_to_field's expand_message call.
	L int

	// Cofactor is the curve's cofactor; both curves here have cofactor 1,
	// so clear_cofactor in hash_to_curve is the identity.
	Cofactor int

	// Isogeny is non-nil when the simplified SWU map cannot target the
	// curve directly (A == 0) and instead lands on an isogenous companion.
	// map_to_curve then uses the companion's coefficients and the caller
	// applies the rational maps to reach the target curve.
	Isogeny *Isogeny
}

func mustHex(s string) *big.Int {
	v, ok := new(big.Int).SetString(s, 16)
	if !ok {
		panic("curveparams: invalid hex literal: " + s)
	}

	return v
}

// P256 is the group used by OPRF(P-256, SHA-256): NIST P-256 /
// secp256r1, with the P256_XMD:SHA-256_SSWU_RO_ suite constants from
// RFC 9380 Section 8.2.
var P256 = &Curve{
	Name: "P-256",
	P:    mustHex("ffffffff00000001000000000000000000000000ffffffffffffffffffffffff"),
	N:    mustHex("ffffffff00000000ffffffffffffffffbce6faada7179e84f3b9cac2fc632551"),
	A:    mustHex("ffffffff00000001000000000000000000000000fffffffffffffffffffffffc"),
	B:    mustHex("5ac635d8aa3a93e7b3ebbd55769886bc651d06b0cc53b0f63bce3c3e27d2604b"),
	Z:    new(big.Int).Neg(big.NewInt(10)),
	Gx:   mustHex("6b17d1f2e12c4247f8bce6e563a440f277037d812deb33a0f4a13945d898c296"),
	Gy:   mustHex("4fe342e2fe1a7f9b8ee7eb4a7c0f9e162bce33576b315ececbb6406837bf51f5"),
	L:    48,

	Cofactor: 1,
}

// SECP256K1 is the secp256k1_XMD:SHA-256_SSWU_RO_ suite of RFC 9380
// Section 8.7. secp256k1 has A = 0, so simplified SWU cannot target it
// directly; the map lands on a 3-isogenous companion E' and the Appendix
// E.1 rational maps carry the result onto secp256k1. The OPRF protocol
// never uses this curve; it exists as the alternative hash-to-curve
// pipeline variant.
var SECP256K1 = &Curve{
	Name: "secp256k1",
	P:    mustHex("fffffffffffffffffffffffffffffffffffffffffffffffffffffffefffffc2f"),
	N:    mustHex("fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141"),
	A:    big.NewInt(0),
	B:    big.NewInt(7),
	Z:    new(big.Int).Neg(big.NewInt(11)),
	Gx:   mustHex("79be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798"),
	Gy:   mustHex("483ada7726a3c4655da4fbfc0e1108a8fd17b448a68554199c47d08ffb10d4b8"),
	L:    48,

	Cofactor: 1,

	Isogeny: &Isogeny{
		// E': y^2 = x^3 + A'x + B', 3-isogenous to secp256k1
		// (RFC 9380 Section 8.7).
		A: mustHex("3f8731abdd661adca08a5558f0f5d272e953d363cb6f0e5d405447c01a444533"),
		B: big.NewInt(1771),

		// Rational map coefficients from RFC 9380 Appendix E.1,
		// constant term first.
		XNum: []*big.Int{
			mustHex("8e38e38e38e38e38e38e38e38e38e38e38e38e38e38e38e38e38e38daaaaa8c7"),
			mustHex("07d3d4c80bc321d5b9f315cea7fd44c5d595d2fc0bf63b92dfff1044f17c6581"),
			mustHex("534c328d23f234e6e2a413deca25caece4506144037c40314ecbd0b53d9dd262"),
			mustHex("8e38e38e38e38e38e38e38e38e38e38e38e38e38e38e38e38e38e38daaaaa88c"),
		},
		XDen: []*big.Int{
			mustHex("d35771193d94918a9ca34ccbb7b640dd86cd409542f8487d9fe6b745781eb49b"),
			mustHex("edadc6f64383dc1df7c4b2d51b54225406d36b641f5e41bbc52a56612a8c6d14"),
			big.NewInt(1),
		},
		YNum: []*big.Int{
			mustHex("4bda12f684bda12f684bda12f684bda12f684bda12f684bda12f684b8e38e23c"),
			mustHex("c75e0c32d5cb7c0fa9d0a54b12a0a6d5647ab046d686da6fdffc90fc201d71a3"),
			mustHex("29a6194691f91a73715209ef6512e576722830a201be2018a765e85a9ecee931"),
			mustHex("2f684bda12f684bda12f684bda12f684bda12f684bda12f684bda12f38e38d84"),
		},
		YDen: []*big.Int{
			mustHex("fffffffffffffffffffffffffffffffffffffffffffffffffffffffefffff93b"),
			mustHex("7a06534bb8bdb49fd5e9e6632722c2989467c1bfc8e8d978dfb425d2685c2573"),
			mustHex("6484aa716545ca2cf3a70c3fa8fe337e0a3d21162f0d6299a7bf8192bfd2a76f"),
			big.NewInt(1),
		},
	},
}
