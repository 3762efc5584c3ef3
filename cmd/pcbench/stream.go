package main

import (
	"crypto/rand"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"github.com/spf13/cobra"

	"github.com/eon-protocol/eonpcs/internal/poly"
	"github.com/eon-protocol/eonpcs/logger"
	"github.com/eon-protocol/eonpcs/streamkzg"
)

var (
	flagStreamPolys  int
	flagStreamPoints int
)

var streamCmd = &cobra.Command{
	Use:   "stream",
	Short: "time the batched multi-point scheme",
	RunE:  runStream,
}

func init() {
	streamCmd.Flags().IntVar(&flagStreamPolys, "polys", 16, "number of polynomials per batch")
	streamCmd.Flags().IntVar(&flagStreamPoints, "points", 8, "number of evaluation points")
}

func runStream(cmd *cobra.Command, args []string) error {
	log := logger.Logger().With().
		Str("bench", "stream").
		Int("degree", flagDegree).
		Int("polys", flagStreamPolys).
		Int("points", flagStreamPoints).
		Logger()

	ck, err := streamkzg.NewCommitterKey(flagDegree, flagStreamPoints, rand.Reader)
	if err != nil {
		return err
	}
	vk := ck.VerifierKey()

	polys := make([][]fr.Element, flagStreamPolys)
	for i := range polys {
		if polys[i], err = randomPoly(flagDegree); err != nil {
			return err
		}
	}
	points := make([]fr.Element, flagStreamPoints)
	for j := range points {
		if _, err := points[j].SetRandom(); err != nil {
			return err
		}
	}
	evals := make([][]fr.Element, flagStreamPolys)
	for i := range polys {
		evals[i] = make([]fr.Element, flagStreamPoints)
		for j := range points {
			evals[i][j] = poly.Eval(polys[i], points[j])
		}
	}

	commitT, err := timeIt(flagIterations, func() error {
		_, err := streamkzg.BatchCommit(ck, polys)
		return err
	})
	if err != nil {
		return err
	}
	log.Info().Dur("took", commitT).Msg("batch commit")

	digests, err := streamkzg.BatchCommit(ck, polys)
	if err != nil {
		return err
	}

	var eta fr.Element
	if _, err := eta.SetRandom(); err != nil {
		return err
	}

	openT, err := timeIt(flagIterations, func() error {
		_, err := streamkzg.BatchOpenMultiPoints(ck, polys, eta, points)
		return err
	})
	if err != nil {
		return err
	}
	log.Info().Dur("took", openT).Msg("batch open multi points")

	proof, err := streamkzg.BatchOpenMultiPoints(ck, polys, eta, points)
	if err != nil {
		return err
	}

	verifyT, err := timeIt(flagIterations, func() error {
		return streamkzg.VerifyMultiPoints(&vk, digests, eta, points, evals, &proof)
	})
	if err != nil {
		return err
	}
	log.Info().Dur("took", verifyT).Msg("verify multi points")

	return nil
}
