package kzg

import (
	"io"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
)

// WriteTo writes the SRS to w using the canonical compressed point encoding.
func (s *SRS) WriteTo(w io.Writer) (int64, error) {
	enc := bls12381.NewEncoder(w)
	toEncode := []interface{}{
		s.PowersOfG,
		s.PowersOfGammaG,
		&s.H,
		&s.BetaH,
	}
	for _, v := range toEncode {
		if err := enc.Encode(v); err != nil {
			return enc.BytesWritten(), err
		}
	}
	return enc.BytesWritten(), nil
}

// ReadFrom reads an SRS from r, checking that every point is on the curve and
// in the correct subgroup.
func (s *SRS) ReadFrom(r io.Reader) (int64, error) {
	dec := bls12381.NewDecoder(r)
	toDecode := []interface{}{
		&s.PowersOfG,
		&s.PowersOfGammaG,
		&s.H,
		&s.BetaH,
	}
	for _, v := range toDecode {
		if err := dec.Decode(v); err != nil {
			return dec.BytesRead(), err
		}
	}
	return dec.BytesRead(), nil
}

// WriteTo writes the proving key to w.
func (pk *ProvingKey) WriteTo(w io.Writer) (int64, error) {
	enc := bls12381.NewEncoder(w)
	if err := enc.Encode(pk.PowersOfG); err != nil {
		return enc.BytesWritten(), err
	}
	if err := enc.Encode(pk.PowersOfGammaG); err != nil {
		return enc.BytesWritten(), err
	}
	return enc.BytesWritten(), nil
}

// ReadFrom reads a proving key from r.
func (pk *ProvingKey) ReadFrom(r io.Reader) (int64, error) {
	dec := bls12381.NewDecoder(r)
	if err := dec.Decode(&pk.PowersOfG); err != nil {
		return dec.BytesRead(), err
	}
	if err := dec.Decode(&pk.PowersOfGammaG); err != nil {
		return dec.BytesRead(), err
	}
	return dec.BytesRead(), nil
}

// WriteTo writes the verifying key to w.
func (vk *VerifyingKey) WriteTo(w io.Writer) (int64, error) {
	enc := bls12381.NewEncoder(w)
	toEncode := []interface{}{
		&vk.G,
		&vk.GammaG,
		&vk.H,
		&vk.BetaH,
	}
	for _, v := range toEncode {
		if err := enc.Encode(v); err != nil {
			return enc.BytesWritten(), err
		}
	}
	return enc.BytesWritten(), nil
}

// ReadFrom reads a verifying key from r.
func (vk *VerifyingKey) ReadFrom(r io.Reader) (int64, error) {
	dec := bls12381.NewDecoder(r)
	toDecode := []interface{}{
		&vk.G,
		&vk.GammaG,
		&vk.H,
		&vk.BetaH,
	}
	for _, v := range toDecode {
		if err := dec.Decode(v); err != nil {
			return dec.BytesRead(), err
		}
	}
	return dec.BytesRead(), nil
}
