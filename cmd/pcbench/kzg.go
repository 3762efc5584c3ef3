package main

import (
	"crypto/rand"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"github.com/spf13/cobra"

	"github.com/eon-protocol/eonpcs"
	"github.com/eon-protocol/eonpcs/kzg"
	"github.com/eon-protocol/eonpcs/logger"
)

var kzgCmd = &cobra.Command{
	Use:   "kzg",
	Short: "time KZG10 setup, commit, open and verify",
	RunE:  runKzg,
}

func randomPoly(degree int) ([]fr.Element, error) {
	p := make([]fr.Element, degree+1)
	for i := range p {
		if _, err := p[i].SetRandom(); err != nil {
			return nil, err
		}
	}
	return p, nil
}

func runKzg(cmd *cobra.Command, args []string) error {
	log := logger.Logger().With().Str("bench", "kzg").Int("degree", flagDegree).Logger()

	srs, err := kzg.Setup(flagDegree, rand.Reader)
	if err != nil {
		return err
	}
	pk, vk, err := kzg.Trim(srs, flagDegree)
	if err != nil {
		return err
	}

	p, err := randomPoly(flagDegree)
	if err != nil {
		return err
	}

	commitT, err := timeIt(flagIterations, func() error {
		_, err := eonpcs.Commit(&pk, p, flagAccelerator)
		return err
	})
	if err != nil {
		return err
	}
	log.Info().Dur("took", commitT).Msg("commit")

	digest, err := eonpcs.Commit(&pk, p, flagAccelerator)
	if err != nil {
		return err
	}

	var z fr.Element
	if _, err := z.SetRandom(); err != nil {
		return err
	}

	openT, err := timeIt(flagIterations, func() error {
		_, _, err := kzg.Open(&pk, p, z)
		return err
	})
	if err != nil {
		return err
	}
	log.Info().Dur("took", openT).Msg("open")

	v, proof, err := kzg.Open(&pk, p, z)
	if err != nil {
		return err
	}

	verifyT, err := timeIt(flagIterations, func() error {
		return kzg.Verify(&vk, &digest, z, v, &proof)
	})
	if err != nil {
		return err
	}
	log.Info().Dur("took", verifyT).Msg("verify")

	return nil
}
