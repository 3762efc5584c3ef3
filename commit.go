package eonpcs

import (
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"

	"github.com/eon-protocol/eonpcs/gpu"
	"github.com/eon-protocol/eonpcs/kzg"
	"github.com/eon-protocol/eonpcs/logger"
)

// Commit routes a commitment to the requested accelerator. With
// accelerator "icicle" and a binary built with the icicle tag, the MSM runs
// on the GPU; any other combination uses the CPU path in package kzg.
func Commit(pk *kzg.ProvingKey, p []fr.Element, accelerator string) (kzg.Digest, error) {
	if accelerator == "icicle" {
		if gpu.HasIcicle {
			return gpu.Commit(pk, p)
		}
		log := logger.Logger()
		log.Warn().Msg("icicle accelerator requested but not compiled in, falling back to CPU")
	}
	return kzg.Commit(pk, p)
}
