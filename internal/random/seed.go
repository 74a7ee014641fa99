// Package random builds the single generator shared by the deck and the computer player.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand"
)

// NewSeed reads a seed from crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}

	return int64(binary.LittleEndian.Uint64(b[:])), nil
}

// New returns a generator for seed, or for a fresh crypto seed when seed is 0.
// The seed in use is returned so a game can be replayed.
func New(seed int64) (*rand.Rand, int64, error) {
	if seed == 0 {
		var err error
		if seed, err = NewSeed(); err != nil {
			return nil, 0, err
		}
	}

	return rand.New(rand.NewSource(seed)), seed, nil //nolint: gosec // games, not secrets
}
