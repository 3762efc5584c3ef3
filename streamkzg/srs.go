// Package streamkzg implements a batched multi-point KZG commitment scheme
// over bls12-381. Compared to package kzg it trades the hiding generator for
// τ-powers in G2, which let the verifier commit to an arbitrary vanishing
// polynomial and so check openings at many points with a single proof
// element. Batches of polynomials are folded with powers of a challenge η
// before opening.
package streamkzg

import (
	"crypto/rand"
	"io"
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"

	"github.com/eon-protocol/eonpcs/internal/poly"
)

// Digest is a commitment to a polynomial.
type Digest = bls12381.G1Affine

// CommitterKey carries τ-powers behind the G1 generator for committing, and
// a short τ-power vector behind the G2 generator whose length bounds how many
// evaluation points a single proof can cover.
type CommitterKey struct {
	// PowersOfG[i] = [τⁱ]G₁ for i in 0..=maxDegree
	PowersOfG []bls12381.G1Affine
	// PowersOfG2[i] = [τⁱ]G₂ for i in 0..=maxEvalPoints
	PowersOfG2 []bls12381.G2Affine
}

// MaxDegree returns the largest committable polynomial degree.
func (ck *CommitterKey) MaxDegree() int {
	return len(ck.PowersOfG) - 1
}

// MaxEvalPoints returns the largest number of points a single multi-point
// proof can open at.
func (ck *CommitterKey) MaxEvalPoints() int {
	return len(ck.PowersOfG2) - 1
}

// VerifierKey is the verifier's view of the committer key: the full G2 power
// vector plus a G1 prefix long enough to commit to any remainder polynomial,
// whose degree is strictly below the point count.
type VerifierKey struct {
	PowersOfG  []bls12381.G1Affine
	PowersOfG2 []bls12381.G2Affine
}

// VerifierKey derives the verifier key from ck. The slices share backing
// arrays with ck; neither key mutates them.
func (ck *CommitterKey) VerifierKey() VerifierKey {
	n := len(ck.PowersOfG2)
	if n > len(ck.PowersOfG) {
		n = len(ck.PowersOfG)
	}
	return VerifierKey{
		PowersOfG:  ck.PowersOfG[:n],
		PowersOfG2: ck.PowersOfG2,
	}
}

// NewCommitterKey generates a key for polynomials up to maxDegree, openable
// at up to maxEvalPoints points simultaneously. The trapdoor is sampled from
// rng and discarded.
func NewCommitterKey(maxDegree, maxEvalPoints int, rng io.Reader) (*CommitterKey, error) {
	if rng == nil {
		rng = rand.Reader
	}
	tauBig, err := rand.Int(rng, fr.Modulus())
	if err != nil {
		return nil, err
	}
	var tau fr.Element
	tau.SetBigInt(tauBig)
	return newCommitterKeyFromTau(maxDegree, maxEvalPoints, tau), nil
}

func newCommitterKeyFromTau(maxDegree, maxEvalPoints int, tau fr.Element) *CommitterKey {
	_, _, g1Aff, g2Aff := bls12381.Generators()

	nbPowers := maxDegree + 1
	if maxEvalPoints+1 > nbPowers {
		nbPowers = maxEvalPoints + 1
	}
	powersOfTau := poly.Powers(tau, nbPowers)
	ck := &CommitterKey{
		PowersOfG:  bls12381.BatchScalarMultiplicationG1(&g1Aff, powersOfTau[:maxDegree+1]),
		PowersOfG2: make([]bls12381.G2Affine, maxEvalPoints+1),
	}
	var pow big.Int
	for i := range ck.PowersOfG2 {
		ck.PowersOfG2[i].ScalarMultiplication(&g2Aff, powersOfTau[i].BigInt(&pow))
	}
	return ck
}
