package erasure

import (
	"math/big"
	"math/bits"
	"runtime"

	"github.com/consensys/gnark-crypto/ecc"
	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr/fft"
)

// EncodeG1 is Encode lifted to vectors of G1 points through the group
// homomorphism: points are treated as "evaluations" whose FFT butterflies
// are group additions and whose twiddle products are scalar multiplications.
// Encoding a vector of commitments therefore yields the commitments of the
// encoded rows, provided every row was committed with the same key prefix.
func EncodeG1(points []bls12381.G1Affine, subDomain, bigDomain *fft.Domain) ([]bls12381.G1Affine, error) {
	if uint64(len(points)) != subDomain.Cardinality {
		return nil, &DataSizeError{NbElements: len(points), DomainSize: subDomain.Cardinality}
	}
	if bigDomain.Cardinality%subDomain.Cardinality != 0 {
		return nil, ErrDomainNotDivisible
	}

	// the padding stays at the zero value, which is the point at infinity
	coeffs := make([]bls12381.G1Affine, bigDomain.Cardinality)
	copy(coeffs, points)

	if err := ifftG1(coeffs[:subDomain.Cardinality], subDomain); err != nil {
		return nil, err
	}
	if err := fftG1(coeffs, bigDomain); err != nil {
		return nil, err
	}

	return coeffs, nil
}

func fftG1(a []bls12381.G1Affine, domain *fft.Domain) error {
	twiddles, err := domain.Twiddles()
	if err != nil {
		return err
	}
	difFFTG1(a, twiddles, 0, maxSplits(), nil)
	bitReverseG1(a)
	return nil
}

func ifftG1(a []bls12381.G1Affine, domain *fft.Domain) error {
	twiddlesInv, err := domain.TwiddlesInv()
	if err != nil {
		return err
	}
	difFFTG1(a, twiddlesInv, 0, maxSplits(), nil)
	bitReverseG1(a)

	var scale big.Int
	domain.CardinalityInv.BigInt(&scale)
	for i := range a {
		a[i].ScalarMultiplication(&a[i], &scale)
	}
	return nil
}

func maxSplits() int {
	return bits.TrailingZeros64(ecc.NextPowerOfTwo(uint64(runtime.NumCPU())))
}

func butterflyG1(a, b *bls12381.G1Affine) {
	t := *a
	a.Add(a, b)
	b.Sub(&t, b)
}

func difFFTG1(a []bls12381.G1Affine, twiddles [][]fr.Element, stage, maxSplits int, chDone chan struct{}) {
	if chDone != nil {
		defer close(chDone)
	}

	n := len(a)
	if n == 1 {
		return
	}
	m := n >> 1

	butterflyG1(&a[0], &a[m])

	var twiddle big.Int
	for i := 1; i < m; i++ {
		butterflyG1(&a[i], &a[i+m])
		twiddles[stage][i].BigInt(&twiddle)
		a[i+m].ScalarMultiplication(&a[i+m], &twiddle)
	}

	if m == 1 {
		return
	}

	nextStage := stage + 1
	if stage < maxSplits {
		chDone := make(chan struct{}, 1)
		go difFFTG1(a[m:n], twiddles, nextStage, maxSplits, chDone)
		difFFTG1(a[0:m], twiddles, nextStage, maxSplits, nil)
		<-chDone
	} else {
		difFFTG1(a[0:m], twiddles, nextStage, maxSplits, nil)
		difFFTG1(a[m:n], twiddles, nextStage, maxSplits, nil)
	}
}

func bitReverseG1(a []bls12381.G1Affine) {
	n := uint64(len(a))
	nn := uint64(64 - bits.TrailingZeros64(n))

	for i := uint64(0); i < n; i++ {
		irev := bits.Reverse64(i) >> nn
		if irev > i {
			a[i], a[irev] = a[irev], a[i]
		}
	}
}
