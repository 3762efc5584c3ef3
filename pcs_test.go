package eonpcs

import (
	"crypto/rand"
	"testing"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"github.com/stretchr/testify/require"

	"github.com/eon-protocol/eonpcs/kzg"
)

func TestNewSRSCurveDispatch(t *testing.T) {
	srs, err := NewSRS(ecc.BLS12_381, 8, rand.Reader)
	require.NoError(t, err)
	require.IsType(t, &kzg.SRS{}, srs)

	_, err = NewSRS(ecc.BN254, 8, rand.Reader)
	require.ErrorIs(t, err, ErrUnsupportedCurve)
}

func TestCommitFallsBackToCPU(t *testing.T) {
	srs, err := kzg.Setup(8, rand.Reader)
	require.NoError(t, err)
	pk, _, err := kzg.Trim(srs, 8)
	require.NoError(t, err)

	p := make([]fr.Element, 9)
	for i := range p {
		_, err := p[i].SetRandom()
		require.NoError(t, err)
	}

	want, err := kzg.Commit(&pk, p)
	require.NoError(t, err)

	// without the icicle tag the router must produce the CPU result
	got, err := Commit(&pk, p, "icicle")
	require.NoError(t, err)
	require.True(t, want.Equal(&got))

	got, err = Commit(&pk, p, "")
	require.NoError(t, err)
	require.True(t, want.Equal(&got))
}

func TestReadOrGenerateSRSRoundTrip(t *testing.T) {
	dir := t.TempDir()

	srs, err := ReadOrGenerateSRS(dir, 8, rand.Reader)
	require.NoError(t, err)
	require.Equal(t, 8, srs.MaxDegree())

	// second call hits the cache and returns the same parameters
	cached, err := ReadOrGenerateSRS(dir, 8, rand.Reader)
	require.NoError(t, err)
	require.Equal(t, len(srs.PowersOfG), len(cached.PowersOfG))
	for i := range srs.PowersOfG {
		require.True(t, srs.PowersOfG[i].Equal(&cached.PowersOfG[i]))
	}
}
