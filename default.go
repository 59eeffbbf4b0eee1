package simplex

import "sync/atomic"

var def atomic.Value // *Generator

func init() {
	def.Store(newFromKey(seedKey(0)))
}

// Default returns the process-wide generator used by Seed and Simplex2.
func Default() *Generator {
	return def.Load().(*Generator)
}

// Seed replaces the process-wide generator. Evaluations already running
// keep the generator they started with.
func Seed(seed float64) error {
	g, err := New(seed)
	if err != nil {
		return err
	}
	def.Store(g)
	return nil
}

// Simplex2 evaluates the process-wide generator at (x, y).
func Simplex2(x, y float64) (float64, error) {
	return Default().Simplex2(x, y)
}
