package engine

import (
	"fmt"
	"slices"
	"sync"
	"testing"

	"github.com/edgarbjorntvedt/mcp-random/internal/random"
)

// TestEngineConcurrentUse drives one shared Engine from many goroutines.
// Run with -race to check that neither source needs external locking.
func TestEngineConcurrentUse(t *testing.T) {
	sources := []struct {
		name   string
		source random.Source
	}{
		{name: "system", source: random.System()},
		{name: "seeded", source: random.NewSeeded(42)},
	}
	const (
		workers = 16
		calls   = 200
	)

	for _, tc := range sources {
		t.Run(tc.name, func(t *testing.T) {
			e := New(tc.source)
			items := []int{1, 2, 3, 4, 5, 6, 7, 8}
			errs := make(chan error, workers)

			var wg sync.WaitGroup
			for range workers {
				wg.Add(1)
				go func() {
					defer wg.Done()
					for i := range calls {
						if err := concurrentCall(e, i, items); err != nil {
							errs <- err
							return
						}
					}
				}()
			}
			wg.Wait()
			close(errs)

			for err := range errs {
				t.Fatal(err)
			}
		})
	}
}

func concurrentCall(e *Engine, i int, items []int) error {
	switch i % 3 {
	case 0:
		v, err := e.Int(-50, 50)
		if err != nil {
			return fmt.Errorf("Int: %w", err)
		}
		if v < -50 || v > 50 {
			return fmt.Errorf("Int returned %d outside [-50, 50]", v)
		}
	case 1:
		out, err := Shuffle(e, items)
		if err != nil {
			return fmt.Errorf("Shuffle: %w", err)
		}
		sorted := slices.Clone(out)
		slices.Sort(sorted)
		if !slices.Equal(sorted, items) {
			return fmt.Errorf("Shuffle returned %v, not a permutation of %v", out, items)
		}
	default:
		id, err := e.UUID()
		if err != nil {
			return fmt.Errorf("UUID: %w", err)
		}
		if len(id) != 36 || id[14] != '4' {
			return fmt.Errorf("UUID returned malformed %q", id)
		}
	}
	return nil
}
