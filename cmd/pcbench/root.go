package main

import (
	"time"

	"github.com/spf13/cobra"
)

var (
	flagDegree      int
	flagIterations  int
	flagAccelerator string
)

var rootCmd = &cobra.Command{
	Use:           "pcbench",
	Short:         "benchmark the eonpcs commitment schemes",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().IntVarP(&flagDegree, "degree", "d", 1<<10, "maximum polynomial degree")
	rootCmd.PersistentFlags().IntVarP(&flagIterations, "iterations", "n", 10, "timing loop iterations")
	rootCmd.PersistentFlags().StringVar(&flagAccelerator, "accelerator", "", "MSM accelerator (icicle)")

	rootCmd.AddCommand(kzgCmd, streamCmd, multiproofCmd, erasureCmd, gridCmd)
}

// timeIt runs f iterations times and returns the mean duration.
func timeIt(iterations int, f func() error) (time.Duration, error) {
	start := time.Now()
	for i := 0; i < iterations; i++ {
		if err := f(); err != nil {
			return 0, err
		}
	}
	return time.Since(start) / time.Duration(iterations), nil
}
