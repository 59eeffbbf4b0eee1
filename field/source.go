// Package field samples 2D noise on an integer grid split into chunks,
// caching recent chunks in memory and optionally persisting them to a
// bolt database.
package field

import (
	"github.com/aquilax/go-perlin"
	"github.com/icexin/simplex"
	opensimplex "github.com/ojrac/opensimplex-go"
	"github.com/pkg/errors"
)

// Source is a 2D noise function returning values roughly in [-1, 1].
type Source interface {
	Eval2(x, y float64) float64
}

const (
	BackendSimplex     = "simplex"
	BackendOpenSimplex = "opensimplex"
	BackendPerlin      = "perlin"
)

// NewSource builds the named backend. The simplex backend uses the full
// seed rules of simplex.New; the others truncate seed to an integer.
func NewSource(backend string, seed float64) (Source, error) {
	if _, err := simplex.Key(seed); err != nil {
		return nil, err
	}
	switch backend {
	case BackendSimplex:
		g, err := simplex.New(seed)
		if err != nil {
			return nil, err
		}
		return g, nil
	case BackendOpenSimplex, BackendPerlin:
		n, err := intSeed(seed)
		if err != nil {
			return nil, err
		}
		if backend == BackendOpenSimplex {
			return NewOpenSimplex(n), nil
		}
		return NewPerlin(n), nil
	default:
		return nil, errors.Errorf("field: unknown backend %q", backend)
	}
}

// intSeed truncates seed for the int64-seeded backends.
func intSeed(seed float64) (int64, error) {
	if _, err := simplex.Key(seed); err != nil {
		return 0, err
	}
	if seed < -(1<<63) || seed >= 1<<63 {
		return 0, errors.Wrapf(simplex.ErrInvalidInput, "seed %v overflows int64", seed)
	}
	return int64(seed), nil
}

// NewOpenSimplex returns OpenSimplex noise for seed.
func NewOpenSimplex(seed int64) Source {
	return opensimplex.New(seed)
}

type perlinSource struct {
	p *perlin.Perlin
}

// NewPerlin returns single-iteration Perlin noise for seed. go-perlin
// scales its output to about [-0.7, 0.7]; it is stretched to match the
// simplex range.
func NewPerlin(seed int64) Source {
	return perlinSource{p: perlin.NewPerlin(2, 2, 1, seed)}
}

func (p perlinSource) Eval2(x, y float64) float64 {
	return p.p.Noise2D(x, y) * 1.4142135623730951
}
