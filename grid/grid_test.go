package grid

import (
	"crypto/rand"
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"github.com/stretchr/testify/require"

	"github.com/eon-protocol/eonpcs/internal/poly"
	"github.com/eon-protocol/eonpcs/kzg"
)

func TestNewSetupRejectsBadSizes(t *testing.T) {
	for _, size := range []int{0, 1, 3, 6, 12} {
		_, err := NewSetup(size, rand.Reader)
		require.ErrorIs(t, err, ErrSizeNotPowerOfTwo, "size %d", size)
	}
}

func TestExtendEmbedsOriginalRows(t *testing.T) {
	const n = 8
	s, err := NewSetup(n, rand.Reader)
	require.NoError(t, err)

	g, err := Rand(n, rand.Reader)
	require.NoError(t, err)

	eg, err := s.Extend(g)
	require.NoError(t, err)
	require.Len(t, eg, 2*n)

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			require.True(t, eg[2*i][j].Equal(&g[i][j]), "row %d col %d", i, j)
		}
	}
}

// The FFT-extended commitment vector must agree with committing every
// extended row directly.
func TestCommitmentsMatchDirectCommits(t *testing.T) {
	const n = 4
	s, err := NewSetup(n, rand.Reader)
	require.NoError(t, err)

	g, err := Rand(n, rand.Reader)
	require.NoError(t, err)
	eg, err := s.Extend(g)
	require.NoError(t, err)

	commits, err := s.Commitments(eg)
	require.NoError(t, err)
	require.Len(t, commits, 2*n)

	for i := 0; i < 2*n; i++ {
		direct, err := kzg.Commit(&s.Pk, eg[i])
		require.NoError(t, err)
		require.True(t, commits[i].Equal(&direct), "row %d", i)
	}
}

// Every extended proof must verify against the extended commitment of its
// row at the shared point, including the rows whose proofs were never
// produced by an opening run.
func TestOpenColumnProofsVerify(t *testing.T) {
	const n = 4
	s, err := NewSetup(n, rand.Reader)
	require.NoError(t, err)

	g, err := Rand(n, rand.Reader)
	require.NoError(t, err)
	eg, err := s.Extend(g)
	require.NoError(t, err)

	commits, err := s.Commitments(eg)
	require.NoError(t, err)

	opening, err := s.OpenColumn(eg, rand.Reader)
	require.NoError(t, err)
	require.Len(t, opening.Proofs, 2*n)

	for i := 0; i < 2*n; i++ {
		value := poly.Eval(eg[i], opening.Point)
		require.NoError(t, kzg.Verify(&s.Vk, &commits[i], opening.Point, value, &opening.Proofs[i]), "row %d", i)
	}
}

func TestShapeChecks(t *testing.T) {
	const n = 4
	s, err := NewSetup(n, rand.Reader)
	require.NoError(t, err)

	g, err := Rand(n+1, rand.Reader)
	require.NoError(t, err)
	_, err = s.Extend(g)
	require.ErrorIs(t, err, ErrInvalidGrid)

	short := make([][]fr.Element, n)
	_, err = s.Commitments(short)
	require.ErrorIs(t, err, ErrInvalidGrid)
	_, err = s.OpenColumn(short, rand.Reader)
	require.ErrorIs(t, err, ErrInvalidGrid)
}
