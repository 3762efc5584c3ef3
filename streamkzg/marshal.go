package streamkzg

import (
	"io"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
)

// WriteTo writes the committer key to w using the canonical compressed point
// encoding.
func (ck *CommitterKey) WriteTo(w io.Writer) (int64, error) {
	enc := bls12381.NewEncoder(w)
	if err := enc.Encode(ck.PowersOfG); err != nil {
		return enc.BytesWritten(), err
	}
	if err := enc.Encode(ck.PowersOfG2); err != nil {
		return enc.BytesWritten(), err
	}
	return enc.BytesWritten(), nil
}

// ReadFrom reads a committer key from r with full subgroup checks.
func (ck *CommitterKey) ReadFrom(r io.Reader) (int64, error) {
	dec := bls12381.NewDecoder(r)
	if err := dec.Decode(&ck.PowersOfG); err != nil {
		return dec.BytesRead(), err
	}
	if err := dec.Decode(&ck.PowersOfG2); err != nil {
		return dec.BytesRead(), err
	}
	return dec.BytesRead(), nil
}
