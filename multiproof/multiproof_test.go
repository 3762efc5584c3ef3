package multiproof

import (
	"crypto/rand"
	"fmt"
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"github.com/stretchr/testify/require"

	"github.com/eon-protocol/eonpcs/internal/poly"
)

type batch struct {
	polys   [][]fr.Element
	points  []fr.Element
	evals   [][]fr.Element
	commits []Commitment
}

func randomBatch(t *testing.T, s *Setup, nbPolys, nbPoints, degree int) batch {
	t.Helper()
	b := batch{
		polys:   make([][]fr.Element, nbPolys),
		points:  make([]fr.Element, nbPoints),
		evals:   make([][]fr.Element, nbPolys),
		commits: make([]Commitment, nbPolys),
	}
	for j := range b.points {
		_, err := b.points[j].SetRandom()
		require.NoError(t, err)
	}
	for i := range b.polys {
		b.polys[i] = make([]fr.Element, degree+1)
		for k := range b.polys[i] {
			_, err := b.polys[i][k].SetRandom()
			require.NoError(t, err)
		}
		b.evals[i] = make([]fr.Element, nbPoints)
		for j := range b.points {
			b.evals[i][j] = poly.Eval(b.polys[i], b.points[j])
		}
		var err error
		b.commits[i], err = s.Commit(b.polys[i])
		require.NoError(t, err)
	}
	return b
}

func randomChallenge(t *testing.T) fr.Element {
	t.Helper()
	var e fr.Element
	_, err := e.SetRandom()
	require.NoError(t, err)
	return e
}

func TestMethod1(t *testing.T) {
	s, err := NewSetup(256, 32, rand.Reader)
	require.NoError(t, err)

	for _, tc := range []struct{ nbPolys, nbPoints int }{
		{5, 5}, {1, 1}, {1, 5}, {5, 1}, {20, 30},
	} {
		t.Run(fmt.Sprintf("polys=%d/points=%d", tc.nbPolys, tc.nbPoints), func(t *testing.T) {
			b := randomBatch(t, s, tc.nbPolys, tc.nbPoints, 50)
			gamma := randomChallenge(t)

			proof, err := s.OpenMethod1(b.polys, b.points, gamma)
			require.NoError(t, err)
			require.NoError(t, s.VerifyMethod1(b.commits, b.points, b.evals, &proof, gamma))

			// tampered evaluation fails
			one := fr.One()
			b.evals[0][0].Add(&b.evals[0][0], &one)
			require.ErrorIs(t, s.VerifyMethod1(b.commits, b.points, b.evals, &proof, gamma), ErrVerifyOpeningProof)
		})
	}
}

func TestMethod2(t *testing.T) {
	s, err := NewSetup(256, 32, rand.Reader)
	require.NoError(t, err)

	for _, tc := range []struct{ nbPolys, nbPoints int }{
		{5, 5}, {1, 1}, {1, 5}, {5, 1}, {20, 30},
	} {
		t.Run(fmt.Sprintf("polys=%d/points=%d", tc.nbPolys, tc.nbPoints), func(t *testing.T) {
			b := randomBatch(t, s, tc.nbPolys, tc.nbPoints, 50)
			gamma := randomChallenge(t)
			z := randomChallenge(t)

			proof, err := s.OpenMethod2(b.polys, b.points, gamma, z)
			require.NoError(t, err)
			require.NoError(t, s.VerifyMethod2(b.commits, b.points, b.evals, &proof, gamma, z))

			one := fr.One()
			b.evals[0][0].Add(&b.evals[0][0], &one)
			require.ErrorIs(t, s.VerifyMethod2(b.commits, b.points, b.evals, &proof, gamma, z), ErrVerifyOpeningProof)
		})
	}
}

// With more evaluation points than the degree bound, the folded remainder's
// interpolant carries more coefficients than G1 powers; both methods must
// still verify low-degree polynomials opened at many points.
func TestMorePointsThanDegree(t *testing.T) {
	s, err := NewSetup(4, 16, rand.Reader)
	require.NoError(t, err)
	b := randomBatch(t, s, 2, 10, 4)
	gamma := randomChallenge(t)
	z := randomChallenge(t)

	p1, err := s.OpenMethod1(b.polys, b.points, gamma)
	require.NoError(t, err)
	require.NoError(t, s.VerifyMethod1(b.commits, b.points, b.evals, &p1, gamma))

	p2, err := s.OpenMethod2(b.polys, b.points, gamma, z)
	require.NoError(t, err)
	require.NoError(t, s.VerifyMethod2(b.commits, b.points, b.evals, &p2, gamma, z))

	// tampered claims interpolate above the degree bound
	one := fr.One()
	b.evals[0][7].Add(&b.evals[0][7], &one)
	require.ErrorIs(t, s.VerifyMethod1(b.commits, b.points, b.evals, &p1, gamma), ErrVerifyOpeningProof)
	require.ErrorIs(t, s.VerifyMethod2(b.commits, b.points, b.evals, &p2, gamma, z), ErrVerifyOpeningProof)
}

// The two methods agree on the same batch: both accept the honest
// evaluations and both reject a swapped proof of the wrong shape.
func TestMethodsAgree(t *testing.T) {
	s, err := NewSetup(128, 8, rand.Reader)
	require.NoError(t, err)
	b := randomBatch(t, s, 3, 4, 40)
	gamma := randomChallenge(t)
	z := randomChallenge(t)

	p1, err := s.OpenMethod1(b.polys, b.points, gamma)
	require.NoError(t, err)
	p2, err := s.OpenMethod2(b.polys, b.points, gamma, z)
	require.NoError(t, err)

	// method 2's W1 is the same quotient commitment method 1 proves with
	require.True(t, p1.W.Equal(&p2.W1))
}

func TestBounds(t *testing.T) {
	s, err := NewSetup(64, 4, rand.Reader)
	require.NoError(t, err)
	b := randomBatch(t, s, 2, 5, 20)
	gamma := randomChallenge(t)
	z := randomChallenge(t)

	_, err = s.OpenMethod1(b.polys, b.points, gamma)
	require.ErrorIs(t, err, ErrTooManyEvaluationPoints)
	_, err = s.OpenMethod2(b.polys, b.points, gamma, z)
	require.ErrorIs(t, err, ErrTooManyEvaluationPoints)

	_, err = s.OpenMethod1(nil, b.points[:2], gamma)
	require.ErrorIs(t, err, ErrNoPolynomialsGiven)
	_, err = s.OpenMethod2(nil, b.points[:2], gamma, z)
	require.ErrorIs(t, err, ErrNoPolynomialsGiven)

	require.ErrorIs(t, s.VerifyMethod1(nil, b.points[:2], nil, &Method1Proof{}, gamma), ErrNoPolynomialsGiven)
	require.ErrorIs(t, s.VerifyMethod2(b.commits, b.points[:2], b.evals[:1], &Method2Proof{}, gamma, z), ErrInvalidNbEvaluations)
}

func TestCommitRejectsOversizedPolynomial(t *testing.T) {
	s, err := NewSetup(8, 2, rand.Reader)
	require.NoError(t, err)
	p := make([]fr.Element, 10)
	for i := range p {
		_, err := p[i].SetRandom()
		require.NoError(t, err)
	}
	_, err = s.Commit(p)
	var tooMany *TooManyCoefficientsError
	require.ErrorAs(t, err, &tooMany)
}
