package kzg

import (
	"errors"
	"fmt"
)

var (
	// ErrDegreeIsZero is returned by Setup when the requested maximum degree
	// does not support at least one non-constant polynomial.
	ErrDegreeIsZero = errors.New("kzg: maximum degree must be at least one")

	// ErrUnsupportedDegreeBound is returned by Trim when the requested degree
	// exceeds what the SRS was generated for.
	ErrUnsupportedDegreeBound = errors.New("kzg: requested degree bound exceeds the SRS")

	// ErrInvalidNbDigests is returned by BatchVerify on length mismatches
	// between digests, points, values and proofs.
	ErrInvalidNbDigests = errors.New("kzg: number of digests is not matching")

	// ErrVerifyOpeningProof signals a cryptographically invalid proof, as
	// opposed to the structural errors above which abort before any pairing
	// is computed.
	ErrVerifyOpeningProof = errors.New("kzg: can't verify opening proof")
)

// TooManyCoefficientsError is returned when committing or opening a
// polynomial whose coefficient count exceeds the trimmed key capacity.
type TooManyCoefficientsError struct {
	NbCoefficients int
	NbPowers       int
}

func (e *TooManyCoefficientsError) Error() string {
	return fmt.Sprintf("kzg: polynomial has %d coefficients but the key holds %d powers", e.NbCoefficients, e.NbPowers)
}
