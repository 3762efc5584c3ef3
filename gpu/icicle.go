//go:build icicle

// Package gpu routes KZG commitments to an icicle-backed GPU MSM when the
// binary is built with the 'icicle' tag.
package gpu

import (
	"fmt"

	curve "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fp"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"

	icicle_core "github.com/ingonyama-zk/icicle-gnark/v3/wrappers/golang/core"
	icicle_bls12_381 "github.com/ingonyama-zk/icicle-gnark/v3/wrappers/golang/curves/bls12381"
	icicle_msm "github.com/ingonyama-zk/icicle-gnark/v3/wrappers/golang/curves/bls12381/msm"
	icicle_runtime "github.com/ingonyama-zk/icicle-gnark/v3/wrappers/golang/runtime"

	"github.com/eon-protocol/eonpcs/kzg"
)

// HasIcicle reports whether the icicle backend was compiled in.
const HasIcicle = true

func projectiveToGnarkAffine(p icicle_bls12_381.Projective) curve.G1Affine {
	bx := p.X.ToBytesLittleEndian()
	by := p.Y.ToBytesLittleEndian()
	bz := p.Z.ToBytesLittleEndian()

	var ax, ay, az fp.Element
	ax, _ = fp.LittleEndian.Element((*[fp.Bytes]byte)(bx))
	ay, _ = fp.LittleEndian.Element((*[fp.Bytes]byte)(by))
	az, _ = fp.LittleEndian.Element((*[fp.Bytes]byte)(bz))

	var zInv fp.Element
	zInv.Inverse(&az)
	ax.Mul(&ax, &zInv)
	ay.Mul(&ay, &zInv)

	return curve.G1Affine{X: ax, Y: ay}
}

// Commit computes the commitment MSM on the device. The key's G1 powers are
// uploaded per call; keep the bases device-resident with OnDeviceCommit when
// committing many polynomials against the same key.
func Commit(pk *kzg.ProvingKey, p []fr.Element) (kzg.Digest, error) {
	if len(p) > pk.Size() {
		return kzg.Digest{}, &kzg.TooManyCoefficientsError{NbCoefficients: len(p), NbPowers: pk.Size()}
	}

	bases := (icicle_core.HostSlice[curve.G1Affine])(pk.PowersOfG[:len(p)])
	var basesDev icicle_core.DeviceSlice
	bases.CopyToDevice(&basesDev, true)
	defer basesDev.Free()

	// gnark-crypto points are stored in Montgomery form, icicle MSM wants
	// the bases converted and the scalars flagged
	if st := icicle_bls12_381.AffineFromMontgomery(basesDev); st != icicle_runtime.Success {
		return kzg.Digest{}, fmt.Errorf("gpu: AffineFromMontgomery: %s", st.AsString())
	}

	return OnDeviceCommit(p, basesDev)
}

// OnDeviceCommit runs the commitment MSM against bases already resident on
// the device (converted out of Montgomery form).
func OnDeviceCommit(p []fr.Element, basesDev icicle_core.DeviceSlice) (kzg.Digest, error) {
	host := icicle_core.HostSliceFromElements(p)
	var scalarsDev icicle_core.DeviceSlice
	host.CopyToDevice(&scalarsDev, true)
	defer scalarsDev.Free()

	cfg := icicle_msm.GetDefaultMSMConfig()
	cfg.AreScalarsMontgomeryForm = true
	cfg.AreBasesMontgomeryForm = false

	out := make(icicle_core.HostSlice[icicle_bls12_381.Projective], 1)
	if st := icicle_msm.Msm(scalarsDev, basesDev, &cfg, out); st != icicle_runtime.Success {
		return kzg.Digest{}, fmt.Errorf("gpu: icicle MSM: %s", st.AsString())
	}

	return kzg.Digest(projectiveToGnarkAffine(out[0])), nil
}
