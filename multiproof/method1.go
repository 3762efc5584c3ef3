package multiproof

import (
	"github.com/consensys/gnark-crypto/ecc"
	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"

	"github.com/eon-protocol/eonpcs/internal/poly"
)

// Method1Proof is the single-element multiproof: a commitment to the
// quotient of the γ-folded polynomial by the vanishing polynomial of the
// point set.
type Method1Proof struct {
	W bls12381.G1Affine
}

// OpenMethod1 proves the evaluations of all polynomials at all points. The
// polynomials are folded with powers of γ, divided by Z(x) = Π(x - pⱼ), and
// the quotient is committed.
func (s *Setup) OpenMethod1(polys [][]fr.Element, points []fr.Element, gamma fr.Element) (Method1Proof, error) {
	if len(points) > s.MaxEvalPoints() {
		return Method1Proof{}, ErrTooManyEvaluationPoints
	}
	folded, err := foldPolynomials(polys, gamma)
	if err != nil {
		return Method1Proof{}, err
	}
	z := poly.Vanishing(points)
	h, _ := poly.QuoRem(folded, z)
	w, err := s.Commit(h)
	if err != nil {
		return Method1Proof{}, err
	}
	return Method1Proof{W: w}, nil
}

// VerifyMethod1 checks a method-1 proof against the commitments and the
// claimed evaluation matrix evals[i][j] = fᵢ(points[j]):
//
//	e(F - R, G₂) = e(W, [Z(τ)]G₂)
//
// with F the γ-fold of the commitments and R a commitment to the γ-folded
// Lagrange interpolant of the evaluations.
func (s *Setup) VerifyMethod1(commits []Commitment, points []fr.Element, evals [][]fr.Element, proof *Method1Proof, gamma fr.Element) error {
	if len(commits) == 0 {
		return ErrNoPolynomialsGiven
	}
	if len(points) > s.MaxEvalPoints() {
		return ErrTooManyEvaluationPoints
	}
	if len(evals) != len(commits) {
		return ErrInvalidNbEvaluations
	}

	config := ecc.MultiExpConfig{}
	gammas := poly.Powers(gamma, len(commits))

	var folded bls12381.G1Affine
	if _, err := folded.MultiExp(commits, gammas, config); err != nil {
		return err
	}

	r, err := foldedRemainder(evals, points, gamma)
	if err != nil {
		return err
	}
	// the interpolant of a low-degree aggregate carries high-order zeros;
	// trim to the true degree before committing
	r = r[:poly.Degree(r)+1]
	if len(r) > len(s.PowersOfG1) {
		// no polynomial within the setup's degree bound interpolates these
		// claims, so no commitment can match them
		return ErrVerifyOpeningProof
	}
	var rComm bls12381.G1Affine
	if len(r) > 0 {
		if _, err := rComm.MultiExp(s.PowersOfG1[:len(r)], r, config); err != nil {
			return err
		}
	}

	z := poly.Vanishing(points)
	var zComm bls12381.G2Affine
	if _, err := zComm.MultiExp(s.PowersOfG2[:len(z)], z, config); err != nil {
		return err
	}

	var fMinusR bls12381.G1Affine
	fMinusR.Sub(&folded, &rComm)

	var negG2 bls12381.G2Affine
	negG2.Neg(&s.PowersOfG2[0])

	check, err := bls12381.PairingCheck(
		[]bls12381.G1Affine{proof.W, fMinusR},
		[]bls12381.G2Affine{zComm, negG2},
	)
	if err != nil {
		return err
	}
	if !check {
		return ErrVerifyOpeningProof
	}
	return nil
}
