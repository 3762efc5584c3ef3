package kzg

import (
	"crypto/rand"
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

const benchDegree = 1 << 10

func benchSetup(b *testing.B) (ProvingKey, VerifyingKey, []fr.Element) {
	b.Helper()
	srs, err := Setup(benchDegree, rand.Reader)
	if err != nil {
		b.Fatal(err)
	}
	pk, vk, err := Trim(srs, benchDegree)
	if err != nil {
		b.Fatal(err)
	}
	p := make([]fr.Element, benchDegree+1)
	for i := range p {
		if _, err := p[i].SetRandom(); err != nil {
			b.Fatal(err)
		}
	}
	return pk, vk, p
}

func BenchmarkCommit(b *testing.B) {
	pk, _, p := benchSetup(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Commit(&pk, p); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkOpen(b *testing.B) {
	pk, _, p := benchSetup(b)
	var z fr.Element
	if _, err := z.SetRandom(); err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := Open(&pk, p, z); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkVerify(b *testing.B) {
	pk, vk, p := benchSetup(b)
	var z fr.Element
	if _, err := z.SetRandom(); err != nil {
		b.Fatal(err)
	}
	digest, err := Commit(&pk, p)
	if err != nil {
		b.Fatal(err)
	}
	v, proof, err := Open(&pk, p, z)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := Verify(&vk, &digest, z, v, &proof); err != nil {
			b.Fatal(err)
		}
	}
}
