package erasure

import (
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr/fft"
)

func BenchmarkEncode(b *testing.B) {
	const n, m = 1 << 10, 1 << 11
	sub := fft.NewDomain(n)
	bigDom := fft.NewDomain(m)
	data := make([]fr.Element, n)
	for i := range data {
		if _, err := data[i].SetRandom(); err != nil {
			b.Fatal(err)
		}
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Encode(data, sub, bigDom); err != nil {
			b.Fatal(err)
		}
	}
}
