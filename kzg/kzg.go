// Package kzg implements the KZG10 polynomial commitment scheme over
// bls12-381: a trusted Setup producing powers of a secret τ, constant-size
// commitments, and constant-size evaluation proofs checked with a single
// pairing product.
package kzg

import (
	"io"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc"
	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"

	"github.com/eon-protocol/eonpcs/internal/poly"
)

// OpeningProof attests that a committed polynomial evaluates to a claimed
// value at a given point. It is a commitment to the witness polynomial
// (f(x) - f(z)) / (x - z).
type OpeningProof struct {
	W bls12381.G1Affine
}

// Commit returns a commitment to p, i.e. [f(τ)]g computed by a
// multi-exponentiation against the trimmed powers. Coefficients are in
// little-endian order.
func Commit(pk *ProvingKey, p []fr.Element) (Digest, error) {
	var digest Digest

	d := poly.Degree(p)
	if d+1 > pk.Size() {
		return digest, &TooManyCoefficientsError{NbCoefficients: d + 1, NbPowers: pk.Size()}
	}
	if d < 0 {
		// commitment to the zero polynomial is the identity
		return digest, nil
	}

	// skip low-order zero coefficients, they contribute nothing to the MSM
	nz := 0
	for nz < d && p[nz].IsZero() {
		nz++
	}

	if _, err := digest.MultiExp(pk.PowersOfG[nz:d+1], p[nz:d+1], ecc.MultiExpConfig{}); err != nil {
		return digest, err
	}
	return digest, nil
}

// Open evaluates p at z and produces the proof of that evaluation. The
// witness polynomial comes out of the same synthetic-division pass as the
// value itself.
func Open(pk *ProvingKey, p []fr.Element, z fr.Element) (fr.Element, OpeningProof, error) {
	q, v := poly.DivByLinear(p, z)
	w, err := Commit(pk, q)
	if err != nil {
		return fr.Element{}, OpeningProof{}, err
	}
	return v, OpeningProof{W: w}, nil
}

// Verify checks that digest opens to value at point. It returns
// ErrVerifyOpeningProof when the pairing check fails and nil on success.
func Verify(vk *VerifyingKey, digest *Digest, point, value fr.Element, proof *OpeningProof) error {
	// [v]G + [-z]W
	var totalG1 bls12381.G1Jac
	var zNeg fr.Element
	var vBig, zBig big.Int
	value.BigInt(&vBig)
	zNeg.Neg(&point).BigInt(&zBig)
	totalG1.JointScalarMultiplication(&vk.G, &proof.W, &vBig, &zBig)

	// [v]G + [-z]W - C = -(C - [v]G + [z]W)
	var digestJac bls12381.G1Jac
	digestJac.FromAffine(digest)
	totalG1.SubAssign(&digestJac)

	// e(-(C - [v]G + [z]W), H) · e(W, [τ]H) == 1
	var totalG1Aff bls12381.G1Affine
	totalG1Aff.FromJacobian(&totalG1)
	check, err := bls12381.PairingCheck(
		[]bls12381.G1Affine{totalG1Aff, proof.W},
		[]bls12381.G2Affine{vk.H, vk.BetaH},
	)
	if err != nil {
		return err
	}
	if !check {
		return ErrVerifyOpeningProof
	}
	return nil
}

// BatchVerify checks many (digest, point, value, proof) tuples with a single
// pairing product. The tuples are combined with short random scalars drawn
// from rng; 128 bits suffice since the combiners only need to be
// unpredictable, not uniform in the field.
func BatchVerify(vk *VerifyingKey, digests []Digest, points, values []fr.Element, proofs []OpeningProof, rng io.Reader) error {
	n := len(digests)
	if len(points) != n || len(values) != n || len(proofs) != n {
		return ErrInvalidNbDigests
	}
	if n == 0 {
		return nil
	}
	if n == 1 {
		return Verify(vk, &digests[0], points[0], values[0], &proofs[0])
	}

	// r₀ = 1, the rest are short random combiners
	randomizers := make([]fr.Element, n)
	randomizers[0].SetOne()
	buf := make([]byte, 16)
	for i := 1; i < n; i++ {
		if _, err := io.ReadFull(rng, buf); err != nil {
			return err
		}
		randomizers[i].SetBytes(buf)
	}

	quotients := make([]bls12381.G1Affine, n)
	for i := range proofs {
		quotients[i].Set(&proofs[i].W)
	}
	config := ecc.MultiExpConfig{}

	// Σ rᵢ·Wᵢ
	var foldedW bls12381.G1Affine
	if _, err := foldedW.MultiExp(quotients, randomizers, config); err != nil {
		return err
	}

	// Σ rᵢ·Cᵢ and Σ rᵢ·vᵢ
	var foldedC bls12381.G1Affine
	if _, err := foldedC.MultiExp(digests, randomizers, config); err != nil {
		return err
	}
	var foldedV, tmp fr.Element
	for i := 0; i < n; i++ {
		tmp.Mul(&values[i], &randomizers[i])
		foldedV.Add(&foldedV, &tmp)
	}

	// Σ rᵢzᵢ·Wᵢ
	scaled := make([]fr.Element, n)
	for i := 0; i < n; i++ {
		scaled[i].Mul(&randomizers[i], &points[i])
	}
	var foldedZW bls12381.G1Affine
	if _, err := foldedZW.MultiExp(quotients, scaled, config); err != nil {
		return err
	}

	// total = Σ rᵢ(Cᵢ - [vᵢ]G + [zᵢ]Wᵢ)
	var foldedVCommit bls12381.G1Affine
	var foldedVBig big.Int
	foldedV.BigInt(&foldedVBig)
	foldedVCommit.ScalarMultiplication(&vk.G, &foldedVBig)

	var total bls12381.G1Affine
	total.Sub(&foldedC, &foldedVCommit)
	total.Add(&total, &foldedZW)

	foldedW.Neg(&foldedW)

	check, err := bls12381.PairingCheck(
		[]bls12381.G1Affine{total, foldedW},
		[]bls12381.G2Affine{vk.H, vk.BetaH},
	)
	if err != nil {
		return err
	}
	if !check {
		return ErrVerifyOpeningProof
	}
	return nil
}
