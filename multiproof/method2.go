package multiproof

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc"
	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"

	"github.com/eon-protocol/eonpcs/internal/poly"
)

// Method2Proof is the two-element multiproof: W1 commits to the quotient of
// the γ-folded polynomial by the vanishing polynomial, W2 reduces the whole
// claim to a single opening at the out-of-set challenge z.
type Method2Proof struct {
	W1 bls12381.G1Affine
	W2 bls12381.G1Affine
}

// OpenMethod2 proves the evaluation matrix with challenges γ (folding) and z
// (an evaluation point outside the opened set). With F the γ-folded
// polynomial, F = H·Z + R, the proof is
//
//	W1 = [H(τ)]G₁
//	W2 = [(F(x) - R(z) - H(x)·Z(z)) / (x - z)](τ)·G₁
//
// where the numerator vanishes at z since F(z) = H(z)Z(z) + R(z).
func (s *Setup) OpenMethod2(polys [][]fr.Element, points []fr.Element, gamma, z fr.Element) (Method2Proof, error) {
	if len(points) > s.MaxEvalPoints() {
		return Method2Proof{}, ErrTooManyEvaluationPoints
	}
	folded, err := foldPolynomials(polys, gamma)
	if err != nil {
		return Method2Proof{}, err
	}

	vanishing := poly.Vanishing(points)
	h, rem := poly.QuoRem(folded, vanishing)

	w1, err := s.Commit(h)
	if err != nil {
		return Method2Proof{}, err
	}

	rz := poly.Eval(rem, z)
	zz := poly.Eval(vanishing, z)

	// l = F - R(z) - H·Z(z)
	l := make([]fr.Element, len(folded))
	copy(l, folded)
	l[0].Sub(&l[0], &rz)
	var t fr.Element
	for i := range h {
		t.Mul(&h[i], &zz)
		l[i].Sub(&l[i], &t)
	}

	q, _ := poly.DivByLinear(l, z)
	w2, err := s.Commit(q)
	if err != nil {
		return Method2Proof{}, err
	}
	return Method2Proof{W1: w1, W2: w2}, nil
}

// VerifyMethod2 checks a method-2 proof. The verifier reconstructs
//
//	f = Σ γⁱCᵢ - [R(z)]G₁ - [Z(z)]W1
//
// from scalar work only (no interpolant commitment) and checks the
// single-point relation e(f, G₂) = e(W2, [τ - z]G₂).
func (s *Setup) VerifyMethod2(commits []Commitment, points []fr.Element, evals [][]fr.Element, proof *Method2Proof, gamma, z fr.Element) error {
	if len(commits) == 0 {
		return ErrNoPolynomialsGiven
	}
	if len(points) > s.MaxEvalPoints() {
		return ErrTooManyEvaluationPoints
	}
	if len(evals) != len(commits) {
		return ErrInvalidNbEvaluations
	}

	r, err := foldedRemainder(evals, points, gamma)
	if err != nil {
		return err
	}
	rz := poly.Eval(r, z)
	zz := poly.Eval(poly.Vanishing(points), z)

	gammas := poly.Powers(gamma, len(commits))
	var folded bls12381.G1Affine
	if _, err := folded.MultiExp(commits, gammas, ecc.MultiExpConfig{}); err != nil {
		return err
	}

	var rzBig, zzBig, zBig big.Int
	var rzG, zzW1 bls12381.G1Affine
	rzG.ScalarMultiplication(&s.PowersOfG1[0], rz.BigInt(&rzBig))
	zzW1.ScalarMultiplication(&proof.W1, zz.BigInt(&zzBig))

	var f bls12381.G1Affine
	f.Sub(&folded, &rzG)
	f.Sub(&f, &zzW1)

	var zG2, tauMinusZ bls12381.G2Affine
	zG2.ScalarMultiplication(&s.PowersOfG2[0], z.BigInt(&zBig))
	tauMinusZ.Sub(&s.PowersOfG2[1], &zG2)

	var w2Neg bls12381.G1Affine
	w2Neg.Neg(&proof.W2)

	check, err := bls12381.PairingCheck(
		[]bls12381.G1Affine{f, w2Neg},
		[]bls12381.G2Affine{s.PowersOfG2[0], tauMinusZ},
	)
	if err != nil {
		return err
	}
	if !check {
		return ErrVerifyOpeningProof
	}
	return nil
}
