// Package grid implements a 2-D data-availability pipeline on top of the KZG
// scheme: a square grid of field elements is erasure-extended column-wise to
// twice its height, every original row is committed, and the commitment and
// opening-proof vectors are themselves FFT-extended instead of recomputed.
//
// Extending commitments and proofs through the G1 FFT is sound only because
// every row polynomial has the same coefficient count and, for proofs, every
// row is opened at the same point: under those conditions commitment and
// opening are linear in the row, so they commute with the column encoding.
package grid

import (
	"crypto/rand"
	"errors"
	"io"
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr/fft"
	"golang.org/x/sync/errgroup"

	"github.com/eon-protocol/eonpcs/erasure"
	"github.com/eon-protocol/eonpcs/kzg"
)

// ErrSizeNotPowerOfTwo is returned by NewSetup for grid sizes the radix-2
// domains cannot accommodate.
var ErrSizeNotPowerOfTwo = errors.New("grid: size must be a power of two and at least two")

// ErrInvalidGrid is returned when a grid is not the square (or extended
// twice-height) shape the setup was built for.
var ErrInvalidGrid = errors.New("grid: dimensions do not match the setup size")

// Setup bundles the trimmed KZG keys with the two evaluation domains of the
// column code.
type Setup struct {
	Pk kzg.ProvingKey
	Vk kzg.VerifyingKey

	DomainN  *fft.Domain
	Domain2N *fft.Domain
}

// Size returns the side length of the grids the setup handles.
func (s *Setup) Size() int {
	return int(s.DomainN.Cardinality)
}

// NewSetup generates KZG parameters and domains for size×size grids. size
// must be a power of two.
func NewSetup(size int, rng io.Reader) (*Setup, error) {
	if size < 2 || size&(size-1) != 0 {
		return nil, ErrSizeNotPowerOfTwo
	}

	maxDegree := size - 1
	if maxDegree < 2 {
		// the trim bump for linear rows needs one spare power
		maxDegree = 2
	}
	srs, err := kzg.Setup(maxDegree, rng)
	if err != nil {
		return nil, err
	}
	pk, vk, err := kzg.Trim(srs, maxDegree)
	if err != nil {
		return nil, err
	}

	return &Setup{
		Pk:       pk,
		Vk:       vk,
		DomainN:  fft.NewDomain(uint64(size)),
		Domain2N: fft.NewDomain(uint64(2 * size)),
	}, nil
}

// Rand fills a size×size grid with field elements drawn from rng.
func Rand(size int, rng io.Reader) ([][]fr.Element, error) {
	if rng == nil {
		rng = rand.Reader
	}
	g := make([][]fr.Element, size)
	for i := range g {
		g[i] = make([]fr.Element, size)
		for j := range g[i] {
			v, err := rand.Int(rng, fr.Modulus())
			if err != nil {
				return nil, err
			}
			g[i][j].SetBigInt(v)
		}
	}
	return g, nil
}

// Extend erasure-encodes every column of the n×n grid onto the 2n domain and
// returns the 2n×n extended grid. Row 2i of the result is row i of the
// input, by the stride embedding of the column code.
func (s *Setup) Extend(g [][]fr.Element) ([][]fr.Element, error) {
	n := s.Size()
	if len(g) != n {
		return nil, ErrInvalidGrid
	}

	eg := make([][]fr.Element, 2*n)
	for i := range eg {
		eg[i] = make([]fr.Element, n)
	}

	var group errgroup.Group
	for j := 0; j < n; j++ {
		j := j
		group.Go(func() error {
			col := make([]fr.Element, n)
			for i := 0; i < n; i++ {
				if len(g[i]) != n {
					return ErrInvalidGrid
				}
				col[i] = g[i][j]
			}
			encoded, err := erasure.Encode(col, s.DomainN, s.Domain2N)
			if err != nil {
				return err
			}
			for i := range encoded {
				eg[i][j] = encoded[i]
			}
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	return eg, nil
}

// Commitments commits to the n original rows of the extended grid and
// FFT-extends the commitment vector to cover the 2n extended rows, so
// Commitments(eg)[i] is a commitment to eg[i] without 2n commit runs.
func (s *Setup) Commitments(eg [][]fr.Element) ([]kzg.Digest, error) {
	n := s.Size()
	if len(eg) != 2*n {
		return nil, ErrInvalidGrid
	}

	commits := make([]kzg.Digest, n)
	var group errgroup.Group
	for i := 0; i < n; i++ {
		i := i
		group.Go(func() error {
			var err error
			commits[i], err = kzg.Commit(&s.Pk, eg[2*i])
			return err
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}

	return erasure.EncodeG1(commits, s.DomainN, s.Domain2N)
}

// ColumnOpening is the output of OpenColumn: one opening proof per extended
// row, all at the same in-domain point.
type ColumnOpening struct {
	// Point is the evaluation point, an element of the small domain.
	Point fr.Element
	// Proofs[i] proves the evaluation of row i of the extended grid at Point.
	Proofs []kzg.OpeningProof
}

// OpenColumn opens every row at one random point of the small domain: the n
// original rows are opened directly and the proof vector is FFT-extended to
// the 2n extended rows. All rows share the evaluation point, which is what
// makes the proof extension valid.
func (s *Setup) OpenColumn(eg [][]fr.Element, rng io.Reader) (ColumnOpening, error) {
	n := s.Size()
	if len(eg) != 2*n {
		return ColumnOpening{}, ErrInvalidGrid
	}
	if rng == nil {
		rng = rand.Reader
	}

	j, err := rand.Int(rng, big.NewInt(int64(n)))
	if err != nil {
		return ColumnOpening{}, err
	}
	var pt fr.Element
	pt.Exp(s.DomainN.Generator, j)

	opens := make([]bls12381.G1Affine, n)
	var group errgroup.Group
	for i := 0; i < n; i++ {
		i := i
		group.Go(func() error {
			_, proof, err := kzg.Open(&s.Pk, eg[2*i], pt)
			if err != nil {
				return err
			}
			opens[i] = proof.W
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return ColumnOpening{}, err
	}

	extended, err := erasure.EncodeG1(opens, s.DomainN, s.Domain2N)
	if err != nil {
		return ColumnOpening{}, err
	}

	proofs := make([]kzg.OpeningProof, len(extended))
	for i := range extended {
		proofs[i].W = extended[i]
	}
	return ColumnOpening{Point: pt, Proofs: proofs}, nil
}
