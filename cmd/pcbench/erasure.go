package main

import (
	"crypto/rand"
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr/fft"
	"github.com/spf13/cobra"

	"github.com/eon-protocol/eonpcs/erasure"
	"github.com/eon-protocol/eonpcs/logger"
)

var flagErasureRate int

var erasureCmd = &cobra.Command{
	Use:   "erasure",
	Short: "time the FFT erasure encoder",
	RunE:  runErasure,
}

func init() {
	erasureCmd.Flags().IntVar(&flagErasureRate, "rate", 2, "codeword expansion factor (power of two)")
}

func runErasure(cmd *cobra.Command, args []string) error {
	n := flagDegree + 1
	m := n * flagErasureRate

	log := logger.Logger().With().
		Str("bench", "erasure").
		Int("data", n).
		Int("codeword", m).
		Logger()

	subDomain := fft.NewDomain(uint64(n))
	bigDomain := fft.NewDomain(uint64(m))

	data := make([]fr.Element, subDomain.Cardinality)
	for i := range data {
		v, err := rand.Int(rand.Reader, fr.Modulus())
		if err != nil {
			return err
		}
		data[i].SetBigInt(v)
	}

	encodeT, err := timeIt(flagIterations, func() error {
		_, err := erasure.Encode(data, subDomain, bigDomain)
		return err
	})
	if err != nil {
		return err
	}
	log.Info().Dur("took", encodeT).Msg("encode")

	// G1 variant on the same shape
	_, _, g1Aff, _ := bls12381.Generators()
	points := make([]bls12381.G1Affine, subDomain.Cardinality)
	var s big.Int
	for i := range points {
		points[i].ScalarMultiplication(&g1Aff, data[i].BigInt(&s))
	}

	encodeG1T, err := timeIt(flagIterations, func() error {
		_, err := erasure.EncodeG1(points, subDomain, bigDomain)
		return err
	})
	if err != nil {
		return err
	}
	log.Info().Dur("took", encodeG1T).Msg("encode g1")

	return nil
}
