package streamkzg

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc"
	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"

	"github.com/eon-protocol/eonpcs/internal/poly"
)

// EvaluationProof is a single G1 element attesting to evaluations of a
// (possibly η-folded) polynomial at one or more points.
type EvaluationProof struct {
	W bls12381.G1Affine
}

// Commit returns the commitment [f(τ)]G₁.
func Commit(ck *CommitterKey, p []fr.Element) (Digest, error) {
	var digest Digest
	d := poly.Degree(p)
	if d+1 > len(ck.PowersOfG) {
		return digest, &TooManyCoefficientsError{NbCoefficients: d + 1, NbPowers: len(ck.PowersOfG)}
	}
	if d < 0 {
		return digest, nil
	}
	if _, err := digest.MultiExp(ck.PowersOfG[:d+1], p[:d+1], ecc.MultiExpConfig{}); err != nil {
		return digest, err
	}
	return digest, nil
}

// BatchCommit commits to every polynomial in the batch.
func BatchCommit(ck *CommitterKey, polys [][]fr.Element) ([]Digest, error) {
	if len(polys) == 0 {
		return nil, ErrNoPolynomialsGiven
	}
	digests := make([]Digest, len(polys))
	for i, p := range polys {
		var err error
		if digests[i], err = Commit(ck, p); err != nil {
			return nil, err
		}
	}
	return digests, nil
}

// Open evaluates p at z and proves the evaluation. Value and witness
// polynomial fall out of the same synthetic-division pass.
func Open(ck *CommitterKey, p []fr.Element, z fr.Element) (fr.Element, EvaluationProof, error) {
	q, v := poly.DivByLinear(p, z)
	w, err := Commit(ck, q)
	if err != nil {
		return fr.Element{}, EvaluationProof{}, err
	}
	return v, EvaluationProof{W: w}, nil
}

// OpenMultiPoints proves the evaluations of p at all the given points at
// once: the proof is a commitment to the quotient of p by the vanishing
// polynomial of the point set.
func OpenMultiPoints(ck *CommitterKey, p []fr.Element, points []fr.Element) (EvaluationProof, error) {
	if len(points) > ck.MaxEvalPoints() {
		return EvaluationProof{}, ErrTooManyEvaluationPoints
	}
	z := poly.Vanishing(points)
	q, _ := poly.QuoRem(p, z)
	w, err := Commit(ck, q)
	if err != nil {
		return EvaluationProof{}, err
	}
	return EvaluationProof{W: w}, nil
}

// BatchOpenMultiPoints folds the polynomials with powers of η and opens the
// folded polynomial at all the points. The verifier recomputes the same fold
// over commitments and evaluations, so a single proof element covers the
// whole batch.
func BatchOpenMultiPoints(ck *CommitterKey, polys [][]fr.Element, eta fr.Element, points []fr.Element) (EvaluationProof, error) {
	if len(points) > ck.MaxEvalPoints() {
		return EvaluationProof{}, ErrTooManyEvaluationPoints
	}
	folded := poly.LinearCombination(polys, poly.Powers(eta, len(polys)))
	if folded == nil {
		return EvaluationProof{}, ErrNoPolynomialsGiven
	}
	return OpenMultiPoints(ck, folded, points)
}

// Verify checks a single-point opening: e(C - [v]G₁, G₂) = e(W, [τ-z]G₂).
func Verify(vk *VerifierKey, digest *Digest, z, value fr.Element, proof *EvaluationProof) error {
	var vBig, zBig big.Int
	var cMinusV, vG bls12381.G1Affine
	vG.ScalarMultiplication(&vk.PowersOfG[0], value.BigInt(&vBig))
	cMinusV.Sub(digest, &vG)

	var zG2, tauMinusZ bls12381.G2Affine
	zG2.ScalarMultiplication(&vk.PowersOfG2[0], z.BigInt(&zBig))
	tauMinusZ.Sub(&vk.PowersOfG2[1], &zG2)

	var wNeg bls12381.G1Affine
	wNeg.Neg(&proof.W)

	check, err := bls12381.PairingCheck(
		[]bls12381.G1Affine{cMinusV, wNeg},
		[]bls12381.G2Affine{vk.PowersOfG2[0], tauMinusZ},
	)
	if err != nil {
		return err
	}
	if !check {
		return ErrVerifyOpeningProof
	}
	return nil
}

// VerifyMultiPoints checks a batched multi-point opening. digests and evals
// are folded with powers of η exactly as the prover folded the polynomials;
// evals[i][j] is the claimed value of the i-th polynomial at points[j]. The
// vanishing polynomial of the point set is committed in G2 and the folded
// remainder, reconstructed by Lagrange interpolation, in G1:
//
//	e(F - R, G₂) = e(W, [Z(τ)]G₂)
func VerifyMultiPoints(vk *VerifierKey, digests []Digest, eta fr.Element, points []fr.Element, evals [][]fr.Element, proof *EvaluationProof) error {
	if len(digests) == 0 {
		return ErrNoPolynomialsGiven
	}
	if len(points) > len(vk.PowersOfG2)-1 {
		return ErrTooManyEvaluationPoints
	}

	etaPowers := poly.Powers(eta, len(digests))
	config := ecc.MultiExpConfig{}

	// F = Σ ηⁱ·Cᵢ
	var folded bls12381.G1Affine
	if _, err := folded.MultiExp(digests, etaPowers, config); err != nil {
		return err
	}

	// [Z(τ)]G₂ by MSM over the G2 powers
	z := poly.Vanishing(points)
	var zComm bls12381.G2Affine
	if _, err := zComm.MultiExp(vk.PowersOfG2[:len(z)], z, config); err != nil {
		return err
	}

	// folded remainder r = Σ ηⁱ·interp(points, evalsᵢ), committed in G1
	remainders := make([][]fr.Element, len(evals))
	for i := range evals {
		remainders[i] = poly.LagrangeInterpolate(points, evals[i])
	}
	r := poly.LinearCombination(remainders, etaPowers)
	// the interpolant of a low-degree fold carries high-order zeros; trim to
	// the true degree before committing
	r = r[:poly.Degree(r)+1]
	if len(r) > len(vk.PowersOfG) {
		// no polynomial within the key's degree bound interpolates these
		// claims, so no commitment can match them
		return ErrVerifyOpeningProof
	}
	var rComm bls12381.G1Affine
	if len(r) > 0 {
		if _, err := rComm.MultiExp(vk.PowersOfG[:len(r)], r, config); err != nil {
			return err
		}
	}

	var fMinusR bls12381.G1Affine
	fMinusR.Sub(&folded, &rComm)

	var negG2 bls12381.G2Affine
	negG2.Neg(&vk.PowersOfG2[0])

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
