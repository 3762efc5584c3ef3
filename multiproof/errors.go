package multiproof

import (
	"errors"
	"fmt"
)

var (
	// ErrNoPolynomialsGiven is returned when opening or verifying an empty
	// polynomial set.
	ErrNoPolynomialsGiven = errors.New("multiproof: no polynomials given")

	// ErrTooManyEvaluationPoints is returned when the point set exceeds the
	// bound the setup was generated for.
	ErrTooManyEvaluationPoints = errors.New("multiproof: number of evaluation points exceeds the setup bound")

	// ErrInvalidNbEvaluations is returned when the evaluation matrix shape
	// does not match the commitments and points.
	ErrInvalidNbEvaluations = errors.New("multiproof: evaluations do not match commitments and points")

	// ErrVerifyOpeningProof signals a cryptographically invalid proof.
	ErrVerifyOpeningProof = errors.New("multiproof: can't verify opening proof")
)

// TooManyCoefficientsError is returned when committing a polynomial whose
// coefficient count exceeds the setup capacity.
type TooManyCoefficientsError struct {
	NbCoefficients int
	NbPowers       int
}

func (e *TooManyCoefficientsError) Error() string {
	return fmt.Sprintf("multiproof: polynomial has %d coefficients but the setup holds %d powers", e.NbCoefficients, e.NbPowers)
}
