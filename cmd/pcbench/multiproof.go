package main

import (
	"crypto/rand"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"github.com/spf13/cobra"

	"github.com/eon-protocol/eonpcs/internal/poly"
	"github.com/eon-protocol/eonpcs/logger"
	"github.com/eon-protocol/eonpcs/multiproof"
)

var (
	flagMpPolys  int
	flagMpPoints int
	flagMpMethod int
)

var multiproofCmd = &cobra.Command{
	Use:   "multiproof",
	Short: "time the multiproof open and verify",
	RunE:  runMultiproof,
}

func init() {
	multiproofCmd.Flags().IntVar(&flagMpPolys, "polys", 16, "number of polynomials per batch")
	multiproofCmd.Flags().IntVar(&flagMpPoints, "points", 8, "number of evaluation points")
	multiproofCmd.Flags().IntVar(&flagMpMethod, "method", 1, "multiproof method (1 or 2)")
}

func runMultiproof(cmd *cobra.Command, args []string) error {
	log := logger.Logger().With().
		Str("bench", "multiproof").
		Int("method", flagMpMethod).
		Int("degree", flagDegree).
		Int("polys", flagMpPolys).
		Int("points", flagMpPoints).
		Logger()

	s, err := multiproof.NewSetup(flagDegree, flagMpPoints, rand.Reader)
	if err != nil {
		return err
	}

	polys := make([][]fr.Element, flagMpPolys)
	commits := make([]multiproof.Commitment, flagMpPolys)
	for i := range polys {
		if polys[i], err = randomPoly(flagDegree); err != nil {
			return err
		}
		if commits[i], err = s.Commit(polys[i]); err != nil {
			return err
		}
	}
	points := make([]fr.Element, flagMpPoints)
	for j := range points {
		if _, err := points[j].SetRandom(); err != nil {
			return err
		}
	}
	evals := make([][]fr.Element, flagMpPolys)
	for i := range polys {
		evals[i] = make([]fr.Element, flagMpPoints)
		for j := range points {
			evals[i][j] = poly.Eval(polys[i], points[j])
		}
	}

	var gamma, z fr.Element
	if _, err := gamma.SetRandom(); err != nil {
		return err
	}
	if _, err := z.SetRandom(); err != nil {
		return err
	}

	switch flagMpMethod {
	case 1:
		openT, err := timeIt(flagIterations, func() error {
			_, err := s.OpenMethod1(polys, points, gamma)
			return err
		})
		if err != nil {
			return err
		}
		log.Info().Dur("took", openT).Msg("open")

		proof, err := s.OpenMethod1(polys, points, gamma)
		if err != nil {
			return err
		}
		verifyT, err := timeIt(flagIterations, func() error {
			return s.VerifyMethod1(commits, points, evals, &proof, gamma)
		})
		if err != nil {
			return err
		}
		log.Info().Dur("took", verifyT).Msg("verify")

	case 2:
		openT, err := timeIt(flagIterations, func() error {
			_, err := s.OpenMethod2(polys, points, gamma, z)
			return err
		})
		if err != nil {
			return err
		}
		log.Info().Dur("took", openT).Msg("open")

		proof, err := s.OpenMethod2(polys, points, gamma, z)
		if err != nil {
			return err
		}
		verifyT, err := timeIt(flagIterations, func() error {
			return s.VerifyMethod2(commits, points, evals, &proof, gamma, z)
		})
		if err != nil {
			return err
		}
		log.Info().Dur("took", verifyT).Msg("verify")

	default:
		return cmd.Help()
	}

	return nil
}
