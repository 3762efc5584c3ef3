package kzg

import (
	"crypto/rand"
	"io"
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"

	"github.com/eon-protocol/eonpcs/internal/poly"
)

// Digest is a commitment to a polynomial: a single G1 point.
// Commitments are additively homomorphic, comm(f) + s·comm(g) = comm(f + s·g).
type Digest = bls12381.G1Affine

// SRS are the universal public parameters of the scheme: consecutive powers
// of a secret τ behind two independent G1 generators, plus the G2 generator
// and its τ multiple. The secret is sampled from rng and discarded; soundness
// requires that no party learns it, so a deterministic rng is only acceptable
// for tests and benchmarks.
type SRS struct {
	// PowersOfG[i] = [τⁱ]g for i in 0..=maxDegree
	PowersOfG []bls12381.G1Affine
	// PowersOfGammaG[i] = [τⁱ]γg for i in 0..=maxDegree+1; the extra power
	// supports hiding commitments with up-to-D queries.
	PowersOfGammaG []bls12381.G1Affine
	H, BetaH       bls12381.G2Affine
}

// MaxDegree returns the largest polynomial degree the SRS supports.
func (s *SRS) MaxDegree() int {
	return len(s.PowersOfG) - 1
}

// ProvingKey is a trimmed prefix of the SRS used for committing and opening.
type ProvingKey struct {
	PowersOfG      []bls12381.G1Affine
	PowersOfGammaG []bls12381.G1Affine
}

// Size returns the number of usable powers, i.e. the maximum coefficient
// count of a committable polynomial.
func (pk *ProvingKey) Size() int {
	return len(pk.PowersOfG)
}

// VerifyingKey holds the constant-size part of the SRS needed to check
// opening proofs.
type VerifyingKey struct {
	G      bls12381.G1Affine
	GammaG bls12381.G1Affine
	H      bls12381.G2Affine
	BetaH  bls12381.G2Affine
}

// Setup generates an SRS supporting polynomials up to maxDegree. The trapdoor
// τ and the generators are sampled from rng; pass crypto/rand.Reader outside
// of tests.
func Setup(maxDegree int, rng io.Reader) (*SRS, error) {
	if maxDegree < 1 {
		return nil, ErrDegreeIsZero
	}

	tau, err := randomScalar(rng)
	if err != nil {
		return nil, err
	}
	// independent generators g = [a]G₁, γg = [b]G₁, h = [c]G₂
	a, err := randomScalar(rng)
	if err != nil {
		return nil, err
	}
	b, err := randomScalar(rng)
	if err != nil {
		return nil, err
	}
	c, err := randomScalar(rng)
	if err != nil {
		return nil, err
	}

	_, _, g1Aff, g2Aff := bls12381.Generators()

	powersOfTau := poly.Powers(tau, maxDegree+2)
	scalarsG := make([]fr.Element, maxDegree+1)
	scalarsGammaG := make([]fr.Element, maxDegree+2)
	for i := range scalarsGammaG {
		if i <= maxDegree {
			scalarsG[i].Mul(&powersOfTau[i], &a)
		}
		scalarsGammaG[i].Mul(&powersOfTau[i], &b)
	}

	srs := &SRS{
		PowersOfG:      bls12381.BatchScalarMultiplicationG1(&g1Aff, scalarsG),
		PowersOfGammaG: bls12381.BatchScalarMultiplicationG1(&g1Aff, scalarsGammaG),
	}

	var cBig, cTauBig big.Int
	var cTau fr.Element
	cTau.Mul(&c, &tau)
	srs.H.ScalarMultiplication(&g2Aff, c.BigInt(&cBig))
	srs.BetaH.ScalarMultiplication(&g2Aff, cTau.BigInt(&cTauBig))

	return srs, nil
}

// Trim specializes the SRS for polynomials of the given supported degree.
// Degree 1 is bumped to 2 so that witness-polynomial division stays
// well-defined for linear polynomials.
func Trim(srs *SRS, degree int) (ProvingKey, VerifyingKey, error) {
	if degree < 1 {
		return ProvingKey{}, VerifyingKey{}, ErrDegreeIsZero
	}
	if degree == 1 {
		degree = 2
	}
	if degree > srs.MaxDegree() {
		return ProvingKey{}, VerifyingKey{}, ErrUnsupportedDegreeBound
	}

	pk := ProvingKey{
		PowersOfG:      srs.PowersOfG[:degree+1],
		PowersOfGammaG: srs.PowersOfGammaG[:degree+1],
	}
	vk := VerifyingKey{
		G:      srs.PowersOfG[0],
		GammaG: srs.PowersOfGammaG[0],
		H:      srs.H,
		BetaH:  srs.BetaH,
	}
	return pk, vk, nil
}

func randomScalar(rng io.Reader) (fr.Element, error) {
	var e fr.Element
	if rng == nil {
		rng = rand.Reader
	}
	b, err := rand.Int(rng, fr.Modulus())
	if err != nil {
		return e, err
	}
	e.SetBigInt(b)
	return e, nil
}
