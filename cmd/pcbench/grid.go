package main

import (
	"crypto/rand"

	"github.com/spf13/cobra"

	"github.com/eon-protocol/eonpcs/grid"
	"github.com/eon-protocol/eonpcs/logger"
)

var flagGridSize int

var gridCmd = &cobra.Command{
	Use:   "grid",
	Short: "time the 2-D grid extend/commit/open pipeline",
	RunE:  runGrid,
}

func init() {
	gridCmd.Flags().IntVar(&flagGridSize, "size", 1<<6, "grid side length (power of two)")
}

func runGrid(cmd *cobra.Command, args []string) error {
	log := logger.Logger().With().Str("bench", "grid").Int("size", flagGridSize).Logger()

	s, err := grid.NewSetup(flagGridSize, rand.Reader)
	if err != nil {
		return err
	}
	g, err := grid.Rand(flagGridSize, rand.Reader)
	if err != nil {
		return err
	}

	extendT, err := timeIt(flagIterations, func() error {
		_, err := s.Extend(g)
		return err
	})
	if err != nil {
		return err
	}
	log.Info().Dur("took", extendT).Msg("extend")

	eg, err := s.Extend(g)
	if err != nil {
		return err
	}

	commitT, err := timeIt(flagIterations, func() error {
		_, err := s.Commitments(eg)
		return err
	})
	if err != nil {
		return err
	}
	log.Info().Dur("took", commitT).Msg("commitments")

	openT, err := timeIt(flagIterations, func() error {
		_, err := s.OpenColumn(eg, rand.Reader)
		return err
	})
	if err != nil {
		return err
	}
	log.Info().Dur("took", openT).Msg("open column")

	return nil
}
