// Package multiproof implements two KZG multiproof constructions over
// bls12-381: opening a batch of polynomials at a shared set of points with a
// single short proof. Method 1 divides the γ-folded polynomial by the
// vanishing polynomial of the point set and proves with one group element.
// Method 2 is the BDFG-style variant with an extra out-of-set challenge z,
// trading a second proof element for a cheaper verifier pairing.
package multiproof

import (
	"crypto/rand"
	"io"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc"
	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"

	"github.com/eon-protocol/eonpcs/internal/poly"
)

// Commitment is a KZG commitment to one polynomial of the batch.
type Commitment = bls12381.G1Affine

// Setup holds τ-powers in G1 up to the maximum degree and in G2 up to the
// maximum number of simultaneously opened points. Both prover and verifier
// operations run off the same structure.
type Setup struct {
	PowersOfG1 []bls12381.G1Affine
	PowersOfG2 []bls12381.G2Affine
}

// MaxDegree returns the largest committable polynomial degree.
func (s *Setup) MaxDegree() int {
	return len(s.PowersOfG1) - 1
}

// MaxEvalPoints returns the largest point-set size a proof can cover.
func (s *Setup) MaxEvalPoints() int {
	return len(s.PowersOfG2) - 1
}

// NewSetup generates parameters for polynomials up to maxDegree, openable at
// up to maxPoints points per proof. The trapdoor is sampled from rng and
// discarded.
func NewSetup(maxDegree, maxPoints int, rng io.Reader) (*Setup, error) {
	if rng == nil {
		rng = rand.Reader
	}
	tauBig, err := rand.Int(rng, fr.Modulus())
	if err != nil {
		return nil, err
	}
	var tau fr.Element
	tau.SetBigInt(tauBig)

	_, _, g1Aff, g2Aff := bls12381.Generators()

	nbPowers := maxDegree + 1
	if maxPoints+1 > nbPowers {
		nbPowers = maxPoints + 1
	}
	powersOfTau := poly.Powers(tau, nbPowers)

	s := &Setup{
		PowersOfG1: bls12381.BatchScalarMultiplicationG1(&g1Aff, powersOfTau[:maxDegree+1]),
		PowersOfG2: make([]bls12381.G2Affine, maxPoints+1),
	}
	var pow big.Int
	for i := range s.PowersOfG2 {
		s.PowersOfG2[i].ScalarMultiplication(&g2Aff, powersOfTau[i].BigInt(&pow))
	}
	return s, nil
}

// Commit returns the commitment [f(τ)]G₁.
func (s *Setup) Commit(p []fr.Element) (Commitment, error) {
	var digest Commitment
	d := poly.Degree(p)
	if d+1 > len(s.PowersOfG1) {
		return digest, &TooManyCoefficientsError{NbCoefficients: d + 1, NbPowers: len(s.PowersOfG1)}
	}
	if d < 0 {
		return digest, nil
	}
	if _, err := digest.MultiExp(s.PowersOfG1[:d+1], p[:d+1], ecc.MultiExpConfig{}); err != nil {
		return digest, err
	}
	return digest, nil
}

// foldPolynomials returns Σ γⁱ·polys[i], or ErrNoPolynomialsGiven.
func foldPolynomials(polys [][]fr.Element, gamma fr.Element) ([]fr.Element, error) {
	folded := poly.LinearCombination(polys, poly.Powers(gamma, len(polys)))
	if folded == nil {
		return nil, ErrNoPolynomialsGiven
	}
	return folded, nil
}

// foldedRemainder interpolates each row of evals over the points and returns
// the γ-fold of the interpolants: the remainder polynomial the honest prover
// divided away.
func foldedRemainder(evals [][]fr.Element, points []fr.Element, gamma fr.Element) ([]fr.Element, error) {
	if len(evals) == 0 {
		return nil, ErrNoPolynomialsGiven
	}
	remainders := make([][]fr.Element, len(evals))
	for i := range evals {
		if len(evals[i]) != len(points) {
			return nil, ErrInvalidNbEvaluations
		}
		remainders[i] = poly.LagrangeInterpolate(points, evals[i])
	}
	return poly.LinearCombination(remainders, poly.Powers(gamma, len(remainders))), nil
}
