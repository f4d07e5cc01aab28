package autoplay

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

// GenerateSeeds creates n random 32-byte seeds. Each self-play game
// gets its own seed so a run can be replayed exactly.
func GenerateSeeds(n int) ([][32]byte, error) {
	seeds := make([][32]byte, n)
	for i := 0; i < n; i++ {
		if _, err := rand.Read(seeds[i][:]); err != nil {
			return nil, fmt.Errorf("failed to generate seed %d: %w", i, err)
		}
	}
	return seeds, nil
}

// EncodeSeed renders a seed in URL-safe base64 for logs.
func EncodeSeed(seed [32]byte) string {
	return base64.RawURLEncoding.EncodeToString(seed[:])
}

// DecodeSeed parses a seed previously produced by EncodeSeed.
func DecodeSeed(s string) ([32]byte, error) {
	var seed [32]byte
	raw, err := base64.RawURLEncoding.DecodeString(s)
	if err != nil {
		return seed, fmt.Errorf("failed to decode seed: %w", err)
	}
	if len(raw) != len(seed) {
		return seed, fmt.Errorf("seed must be %d bytes, got %d", len(seed), len(raw))
	}
	copy(seed[:], raw)
	return seed, nil
}
