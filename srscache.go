package eonpcs

import (
	"bytes"
	"crypto/rand"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/schollz/progressbar/v3"

	"github.com/eon-protocol/eonpcs/kzg"
	"github.com/eon-protocol/eonpcs/logger"
)

// ReadOrGenerateSRS loads a cached bls12-381 SRS of at least maxDegree from
// dir, generating and persisting one when no usable cache exists. Generation
// samples the trapdoor from rng (crypto/rand.Reader when nil), so a cached
// SRS is only as trustworthy as the machine that produced it.
func ReadOrGenerateSRS(dir string, maxDegree int, rng io.Reader) (*kzg.SRS, error) {
	path := filepath.Join(dir, fmt.Sprintf("srs.bls12381.%d.bin", maxDegree))

	if raw, err := os.ReadFile(path); err == nil {
		var srs kzg.SRS
		if _, err := srs.ReadFrom(bytes.NewReader(raw)); err == nil && srs.MaxDegree() >= maxDegree {
			return &srs, nil
		}
		log := logger.Logger()
		log.Warn().Str("path", path).Msg("srs cache unreadable, regenerating")
	}

	if rng == nil {
		rng = rand.Reader
	}
	srs, err := kzg.Setup(maxDegree, rng)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	f, err := os.CreateTemp(dir, "srs.*.tmp")
	if err != nil {
		return nil, err
	}
	defer os.Remove(f.Name())

	bar := progressbar.DefaultBytes(-1, "writing SRS cache")
	if _, err := srs.WriteTo(io.MultiWriter(f, bar)); err != nil {
		f.Close()
		return nil, err
	}
	if err := f.Close(); err != nil {
		return nil, err
	}
	if err := os.Rename(f.Name(), path); err != nil {
		return nil, err
	}
	return srs, nil
}
