// Package erasure implements systematic Reed-Solomon erasure encoding over
// the bls12-381 scalar field via radix-2 FFTs: data on a small evaluation
// domain is re-evaluated on a larger domain containing it, so every source
// symbol reappears at a fixed stride in the codeword. A G1 variant encodes
// vectors of curve points the same way, which is what lets commitments and
// opening proofs be extended without re-committing.
package erasure

import (
	"errors"
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr/fft"
)

// ErrDomainNotDivisible is returned when the small domain does not divide
// the big one, i.e. the small domain is not a subgroup of the big one.
var ErrDomainNotDivisible = errors.New("erasure: sub-domain size must divide big-domain size")

// DataSizeError is returned when the data length does not match the
// sub-domain cardinality.
type DataSizeError struct {
	NbElements int
	DomainSize uint64
}

func (e *DataSizeError) Error() string {
	return fmt.Sprintf("erasure: got %d elements for a domain of size %d", e.NbElements, e.DomainSize)
}

// Encode interprets data as evaluations of a polynomial on subDomain and
// returns its evaluations on bigDomain, both in natural order. Since
// subDomain is a subgroup of bigDomain, the source data survives at stride
// len(out)/len(data): out[i*stride] = data[i].
func Encode(data []fr.Element, subDomain, bigDomain *fft.Domain) ([]fr.Element, error) {
	if uint64(len(data)) != subDomain.Cardinality {
		return nil, &DataSizeError{NbElements: len(data), DomainSize: subDomain.Cardinality}
	}
	if bigDomain.Cardinality%subDomain.Cardinality != 0 {
		return nil, ErrDomainNotDivisible
	}

	coeffs := make([]fr.Element, bigDomain.Cardinality)
	copy(coeffs, data)

	// evaluations -> coefficients on the small domain
	subDomain.FFTInverse(coeffs[:subDomain.Cardinality], fft.DIF)
	fft.BitReverse(coeffs[:subDomain.Cardinality])

	// zero-padded coefficients -> evaluations on the big domain
	bigDomain.FFT(coeffs, fft.DIF)
	fft.BitReverse(coeffs)

	return coeffs, nil
}
