// Package eonpcs ties the KZG commitment suite together: curve-dispatched
// SRS construction, accelerator-aware committing, and on-disk SRS caching.
// The scheme packages (kzg, streamkzg, multiproof, erasure, grid) are
// concrete over bls12-381; this package is the entry point that picks the
// backend.
package eonpcs

import (
	"errors"
	"io"

	"github.com/consensys/gnark-crypto/ecc"

	"github.com/eon-protocol/eonpcs/kzg"
)

// ErrUnsupportedCurve is returned by NewSRS for curves without a backend.
var ErrUnsupportedCurve = errors.New("eonpcs: unsupported curve")

// SRS is the serializable structured reference string of a backend.
type SRS interface {
	io.ReaderFrom
	io.WriterTo
}

// NewSRS generates an SRS for the given curve, supporting polynomials up to
// maxDegree. Only BLS12-381 is implemented; other curve IDs return
// ErrUnsupportedCurve.
func NewSRS(curveID ecc.ID, maxDegree int, rng io.Reader) (SRS, error) {
	switch curveID {
	case ecc.BLS12_381:
		return kzg.Setup(maxDegree, rng)
	default:
		return nil, ErrUnsupportedCurve
	}
}
