package simplex

import (
	"math"

	"github.com/pkg/errors"
)

// ErrInvalidInput is returned when a seed or coordinate is NaN or infinite.
// Such values would index the permutation tables with garbage or turn every
// contribution into NaN.
var ErrInvalidInput = errors.New("simplex: invalid input")

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func checkSeed(v float64) error {
	if !finite(v) {
		return errors.Wrapf(ErrInvalidInput, "seed %v", v)
	}
	return nil
}

func checkPoint(x, y float64) error {
	if !finite(x) || !finite(y) {
		return errors.Wrapf(ErrInvalidInput, "point (%v, %v)", x, y)
	}
	return nil
}
