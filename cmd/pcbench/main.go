// pcbench runs timing loops over the commitment-scheme suite: plain KZG,
// the streaming multi-point scheme, both multiproof methods, erasure
// encoding and the 2-D grid pipeline.
package main

import (
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
