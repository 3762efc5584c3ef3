package streamkzg

import (
	"errors"
	"fmt"
)

var (
	// ErrNoPolynomialsGiven is returned by the batched operations when the
	// polynomial set is empty.
	ErrNoPolynomialsGiven = errors.New("streamkzg: no polynomials given")

	// ErrTooManyEvaluationPoints is returned when a multi-point operation
	// asks for more simultaneous points than the key was generated for.
	ErrTooManyEvaluationPoints = errors.New("streamkzg: number of evaluation points exceeds the key bound")

	// ErrVerifyOpeningProof signals a cryptographically invalid proof.
	ErrVerifyOpeningProof = errors.New("streamkzg: can't verify opening proof")
)

// TooManyCoefficientsError is returned when committing a polynomial whose
// coefficient count exceeds the key capacity.
type TooManyCoefficientsError struct {
	NbCoefficients int
	NbPowers       int
}

func (e *TooManyCoefficientsError) Error() string {
	return fmt.Sprintf("streamkzg: polynomial has %d coefficients but the key holds %d powers", e.NbCoefficients, e.NbPowers)
}
