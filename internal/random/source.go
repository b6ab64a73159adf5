// Package random provides the entropy sources behind the randomness engine.
//
// Production code always uses System, which reads from crypto/rand. Seeded
// sources exist so tests can replay an exact byte stream; they are never
// wired into the server.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"io"
	mrand "math/rand/v2"
	"sync"
)

// Source supplies random bytes on demand.
//
// Read must fill p completely or return an error. Implementations must be
// safe for concurrent use.
type Source interface {
	Read(p []byte) (n int, err error)
}

type systemSource struct{}

func (systemSource) Read(p []byte) (int, error) {
	return crand.Read(p)
}

// System returns the operating system's cryptographically secure source.
func System() Source {
	return systemSource{}
}

// Draw reads exactly n fresh bytes from source.
func Draw(source Source, n int) ([]byte, error) {
	if n <= 0 {
		return nil, fmt.Errorf("draw %d bytes: count must be positive", n)
	}
	b := make([]byte, n)
	if _, err := io.ReadFull(source, b); err != nil {
		return nil, fmt.Errorf("draw %d bytes: %w", n, err)
	}
	return b, nil
}

// seededSource is a deterministic ChaCha8 stream keyed by a seed.
type seededSource struct {
	mu  sync.Mutex
	rng *mrand.ChaCha8
}

// NewSeeded returns a deterministic source for tests. Two sources built from
// the same seed produce the same byte stream.
func NewSeeded(seed uint64) Source {
	var key [32]byte
	binary.LittleEndian.PutUint64(key[:8], seed)
	return &seededSource{rng: mrand.NewChaCha8(key)}
}

func (s *seededSource) Read(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Read(p)
}
