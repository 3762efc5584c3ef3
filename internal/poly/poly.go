// Package poly implements dense univariate polynomial arithmetic over the
// bls12-381 scalar field. Polynomials are coefficient slices in little-endian
// order: p[i] is the coefficient of xⁱ.
package poly

import (
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// Degree returns the degree of p, ignoring high-order zero coefficients.
// The zero polynomial has degree -1.
func Degree(p []fr.Element) int {
	for i := len(p) - 1; i >= 0; i-- {
		if !p[i].IsZero() {
			return i
		}
	}
	return -1
}

// Eval evaluates p at x using Horner's method.
func Eval(p []fr.Element, x fr.Element) fr.Element {
	var res fr.Element
	for i := len(p) - 1; i >= 0; i-- {
		res.Mul(&res, &x)
		res.Add(&res, &p[i])
	}
	return res
}

// Powers returns [1, x, x², …, xⁿ⁻¹].
func Powers(x fr.Element, n int) []fr.Element {
	out := make([]fr.Element, n)
	if n == 0 {
		return out
	}
	out[0].SetOne()
	for i := 1; i < n; i++ {
		out[i].Mul(&out[i-1], &x)
	}
	return out
}

// LinearCombination returns Σ scalars[i]·polys[i], sized to the longest input.
// It returns nil when polys is empty so callers can distinguish "no input"
// from the zero polynomial.
func LinearCombination(polys [][]fr.Element, scalars []fr.Element) []fr.Element {
	if len(polys) == 0 {
		return nil
	}
	maxLen := 0
	for _, p := range polys {
		if len(p) > maxLen {
			maxLen = len(p)
		}
	}
	res := make([]fr.Element, maxLen)
	var t fr.Element
	for i, p := range polys {
		for j := range p {
			t.Mul(&p[j], &scalars[i])
			res[j].Add(&res[j], &t)
		}
	}
	return res
}

// Mul returns the product a·b by schoolbook convolution. Inputs here are the
// short factors of vanishing and Lagrange basis polynomials, so the quadratic
// cost is irrelevant.
func Mul(a, b []fr.Element) []fr.Element {
	if len(a) == 0 || len(b) == 0 {
		return nil
	}
	res := make([]fr.Element, len(a)+len(b)-1)
	var t fr.Element
	for i := range a {
		if a[i].IsZero() {
			continue
		}
		for j := range b {
			t.Mul(&a[i], &b[j])
			res[i+j].Add(&res[i+j], &t)
		}
	}
	return res
}

// Vanishing returns the monic polynomial Z(x) = Π (x - pᵢ) whose roots are
// exactly the given points.
func Vanishing(points []fr.Element) []fr.Element {
	res := []fr.Element{fr.One()}
	for i := range points {
		var negP fr.Element
		negP.Neg(&points[i])
		res = Mul(res, []fr.Element{negP, fr.One()})
	}
	return res
}

// DivByLinear divides p by (x - z) using synthetic division and returns the
// quotient together with the remainder p(z). The quotient of
// (p(x) - p(z)) / (x - z) does not depend on the remainder term, so the
// caller may discard it.
func DivByLinear(p []fr.Element, z fr.Element) ([]fr.Element, fr.Element) {
	if len(p) == 0 {
		return nil, fr.Element{}
	}
	q := make([]fr.Element, len(p)-1)
	var acc fr.Element
	for i := len(p) - 1; i >= 1; i-- {
		acc.Mul(&acc, &z)
		acc.Add(&acc, &p[i])
		q[i-1] = acc
	}
	var rem fr.Element
	rem.Mul(&acc, &z)
	rem.Add(&rem, &p[0])
	return q, rem
}

// QuoRem computes the dense long division a = q·b + r with deg r < deg b.
// b must be non-zero; in this codebase it is always a monic vanishing
// polynomial or a linear factor.
func QuoRem(a, b []fr.Element) (q, r []fr.Element) {
	da, db := Degree(a), Degree(b)
	if db < 0 {
		panic("poly: division by zero polynomial")
	}
	r = make([]fr.Element, da+1)
	copy(r, a[:da+1])
	if da < db {
		return []fr.Element{}, r
	}
	var invLead fr.Element
	invLead.Inverse(&b[db])
	q = make([]fr.Element, da-db+1)
	var c, t fr.Element
	for i := da; i >= db; i-- {
		c.Mul(&r[i], &invLead)
		q[i-db] = c
		if c.IsZero() {
			continue
		}
		for j := 0; j <= db; j++ {
			t.Mul(&c, &b[j])
			r[i-db+j].Sub(&r[i-db+j], &t)
		}
	}
	return q, r[:db]
}

// LagrangeInterpolate returns the unique polynomial of degree < len(xs) with
// p(xs[i]) = ys[i]. The xs must be pairwise distinct.
func LagrangeInterpolate(xs, ys []fr.Element) []fr.Element {
	n := len(xs)
	if n == 0 {
		return nil
	}
	// weights w_j = Π_{k≠j} (x_j - x_k), inverted in one batch
	weights := make([]fr.Element, n)
	var t fr.Element
	for j := 0; j < n; j++ {
		weights[j].SetOne()
		for k := 0; k < n; k++ {
			if k == j {
				continue
			}
			t.Sub(&xs[j], &xs[k])
			weights[j].Mul(&weights[j], &t)
		}
	}
	weights = fr.BatchInvert(weights)

	z := Vanishing(xs)
	res := make([]fr.Element, n)
	for j := 0; j < n; j++ {
		// basis_j = Z(x) / (x - x_j), scaled by y_j / w_j
		basis, _ := DivByLinear(z, xs[j])
		var scale fr.Element
		scale.Mul(&ys[j], &weights[j])
		for i := range basis {
			t.Mul(&basis[i], &scale)
			res[i].Add(&res[i], &t)
		}
	}
	return res
}
