//go:build !icicle

// Package gpu routes KZG commitments to an icicle-backed GPU MSM when the
// binary is built with the 'icicle' tag. Without the tag every entry point
// reports that no accelerator is available, so callers can fall back to the
// CPU path.
package gpu

import (
	"errors"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"

	"github.com/eon-protocol/eonpcs/kzg"
)

// HasIcicle reports whether the icicle backend was compiled in.
const HasIcicle = false

var errNoIcicle = errors.New("gpu: icicle requested but program compiled without 'icicle' build tag")

// Commit is the GPU MSM commitment. It always fails without the icicle tag.
func Commit(_ *kzg.ProvingKey, _ []fr.Element) (kzg.Digest, error) {
	return kzg.Digest{}, errNoIcicle
}
