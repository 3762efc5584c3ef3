package kzg

import (
	"bytes"
	"crypto/rand"
	"fmt"
	"math/big"
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"

	"github.com/eon-protocol/eonpcs/internal/poly"
)

func randomPoly(t *testing.T, degree int) []fr.Element {
	t.Helper()
	p := make([]fr.Element, degree+1)
	for i := range p {
		_, err := p[i].SetRandom()
		require.NoError(t, err)
	}
	// keep the degree exact
	for p[degree].IsZero() {
		_, err := p[degree].SetRandom()
		require.NoError(t, err)
	}
	return p
}

func TestCommitOpenVerify(t *testing.T) {
	srs, err := Setup(1<<8, rand.Reader)
	require.NoError(t, err)

	for _, degree := range []int{1, 2, 7, 64, 255} {
		t.Run(fmt.Sprintf("degree=%d", degree), func(t *testing.T) {
			pk, vk, err := Trim(srs, degree)
			require.NoError(t, err)

			p := randomPoly(t, degree)
			digest, err := Commit(&pk, p)
			require.NoError(t, err)

			var z fr.Element
			_, err = z.SetRandom()
			require.NoError(t, err)

			v, proof, err := Open(&pk, p, z)
			require.NoError(t, err)
			want := poly.Eval(p, z)
			require.True(t, v.Equal(&want))

			require.NoError(t, Verify(&vk, &digest, z, v, &proof))

			// wrong value must not verify
			one := fr.One()
			var bad fr.Element
			bad.Add(&v, &one)
			require.ErrorIs(t, Verify(&vk, &digest, z, bad, &proof), ErrVerifyOpeningProof)
		})
	}
}

func TestTrimLinearDegreeBump(t *testing.T) {
	srs, err := Setup(4, rand.Reader)
	require.NoError(t, err)

	// supported degree 1 is bumped so the witness polynomial of a linear
	// polynomial still fits
	pk, vk, err := Trim(srs, 1)
	require.NoError(t, err)
	require.Equal(t, 3, pk.Size())

	p := randomPoly(t, 1)
	digest, err := Commit(&pk, p)
	require.NoError(t, err)

	var z fr.Element
	_, err = z.SetRandom()
	require.NoError(t, err)

	v, proof, err := Open(&pk, p, z)
	require.NoError(t, err)
	require.NoError(t, Verify(&vk, &digest, z, v, &proof))
}

func TestTrimRejectsOversizedDegree(t *testing.T) {
	srs, err := Setup(8, rand.Reader)
	require.NoError(t, err)

	_, _, err = Trim(srs, 9)
	require.ErrorIs(t, err, ErrUnsupportedDegreeBound)

	_, _, err = Trim(srs, 0)
	require.ErrorIs(t, err, ErrDegreeIsZero)
}

func TestCommitTooManyCoefficients(t *testing.T) {
	srs, err := Setup(16, rand.Reader)
	require.NoError(t, err)
	pk, _, err := Trim(srs, 4)
	require.NoError(t, err)

	p := randomPoly(t, 5)
	_, err = Commit(&pk, p)
	var tooMany *TooManyCoefficientsError
	require.ErrorAs(t, err, &tooMany)
	require.Equal(t, 6, tooMany.NbCoefficients)
	require.Equal(t, 5, tooMany.NbPowers)
}

func TestSetupRejectsZeroDegree(t *testing.T) {
	_, err := Setup(0, rand.Reader)
	require.ErrorIs(t, err, ErrDegreeIsZero)
}

// Commitments are linear: comm(f + s·g) = comm(f) + s·comm(g).
func TestCommitmentHomomorphism(t *testing.T) {
	srs, err := Setup(64, rand.Reader)
	require.NoError(t, err)
	pk, _, err := Trim(srs, 32)
	require.NoError(t, err)

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 20

	properties := gopter.NewProperties(parameters)
	properties.Property("commit is additively homomorphic", prop.ForAll(
		func(seed uint64) bool {
			f := randomPoly(t, 20)
			g := randomPoly(t, 32)
			var s fr.Element
			s.SetUint64(seed)

			cf, err := Commit(&pk, f)
			if err != nil {
				return false
			}
			cg, err := Commit(&pk, g)
			if err != nil {
				return false
			}
			sum := poly.LinearCombination([][]fr.Element{f, g}, []fr.Element{fr.One(), s})
			cSum, err := Commit(&pk, sum)
			if err != nil {
				return false
			}

			var expect Digest
			expect.ScalarMultiplication(&cg, s.BigInt(new(big.Int)))
			expect.Add(&expect, &cf)
			return cSum.Equal(&expect)
		},
		gen.UInt64(),
	))
	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestBatchVerify(t *testing.T) {
	srs, err := Setup(1<<7, rand.Reader)
	require.NoError(t, err)
	pk, vk, err := Trim(srs, 100)
	require.NoError(t, err)

	const batch = 10
	digests := make([]Digest, batch)
	points := make([]fr.Element, batch)
	values := make([]fr.Element, batch)
	proofs := make([]OpeningProof, batch)

	for i := 0; i < batch; i++ {
		p := randomPoly(t, 50+i)
		digests[i], err = Commit(&pk, p)
		require.NoError(t, err)
		_, err = points[i].SetRandom()
		require.NoError(t, err)
		values[i], proofs[i], err = Open(&pk, p, points[i])
		require.NoError(t, err)
	}

	require.NoError(t, BatchVerify(&vk, digests, points, values, proofs, rand.Reader))

	// one corrupted tuple fails the whole batch
	one := fr.One()
	var saved fr.Element
	saved.Set(&values[3])
	values[3].Add(&values[3], &one)
	require.ErrorIs(t, BatchVerify(&vk, digests, points, values, proofs, rand.Reader), ErrVerifyOpeningProof)
	values[3].Set(&saved)

	// length mismatch is a structural error
	require.ErrorIs(t, BatchVerify(&vk, digests[:batch-1], points, values, proofs, rand.Reader), ErrInvalidNbDigests)
}

func TestSRSSerializationRoundTrip(t *testing.T) {
	srs, err := Setup(16, rand.Reader)
	require.NoError(t, err)

	var buf bytes.Buffer
	written, err := srs.WriteTo(&buf)
	require.NoError(t, err)
	require.Equal(t, written, int64(buf.Len()))

	var back SRS
	read, err := back.ReadFrom(&buf)
	require.NoError(t, err)
	require.Equal(t, written, read)

	require.Equal(t, len(srs.PowersOfG), len(back.PowersOfG))
	require.Equal(t, len(srs.PowersOfGammaG), len(back.PowersOfGammaG))
	for i := range srs.PowersOfG {
		require.True(t, srs.PowersOfG[i].Equal(&back.PowersOfG[i]))
	}
	require.True(t, srs.H.Equal(&back.H))
	require.True(t, srs.BetaH.Equal(&back.BetaH))
}
