// Package simplex implements seedable 2D simplex noise.
//
// A Generator owns its permutation tables and never changes after New
// returns, so one generator can be shared by any number of goroutines and
// generators with different seeds can coexist. Output is bit-compatible
// with the classic "seed + simplex2" JavaScript noise module for platforms
// that do not fuse multiply-add.
package simplex

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Skew and unskew factors. They are variables, not constants, so that the
// values carry the rounding of a runtime sqrt like the legacy code did.
var (
	f2 = 0.5 * (math.Sqrt(3.0) - 1.0)
	g2 = (3.0 - math.Sqrt(3.0)) / 6.0
)

// Generator is an immutable 2D simplex noise field.
type Generator struct {
	// perm and grad are doubled: entry i+256 repeats entry i. Corner
	// lookups add an offset to a permuted value (ii + perm[jj]), which can
	// reach 511 and must not wrap. Shrinking these to 256 entries requires
	// masking every sum in Eval2.
	perm [512]uint8
	grad [512]mgl64.Vec3

	key uint16
}

// New returns a generator for seed. Values in (0, 1) are treated as
// fractions of 65536. See Key for how seeds collapse onto 16 bits.
func New(seed float64) (*Generator, error) {
	if err := checkSeed(seed); err != nil {
		return nil, err
	}
	return newFromKey(seedKey(seed)), nil
}

func newFromKey(key uint16) *Generator {
	g := new(Generator)
	buildTables(g, key)
	return g
}

// Key returns the 16-bit seed key the generator was built from.
func (g *Generator) Key() uint16 {
	return g.key
}

// Perm returns entry i of the doubled permutation table, 0 <= i < 512.
func (g *Generator) Perm(i int) uint8 {
	return g.perm[i]
}

// Gradient returns the gradient selected for entry i, 0 <= i < 512.
func (g *Generator) Gradient(i int) mgl64.Vec3 {
	return g.grad[i]
}

// Simplex2 evaluates the noise at (x, y). The result lies roughly in
// [-1, 1] and is not clamped.
func (g *Generator) Simplex2(x, y float64) (float64, error) {
	if err := checkPoint(x, y); err != nil {
		return 0, err
	}
	return g.Eval2(x, y), nil
}

// Eval2 is Simplex2 without the input check. Non-finite coordinates give
// NaN or meaningless values.
func (g *Generator) Eval2(xin, yin float64) float64 {
	var n0, n1, n2 float64

	// Skew the input space to find the simplex cell.
	s := (xin + yin) * f2
	i := math.Floor(xin + s)
	j := math.Floor(yin + s)

	t := (i + j) * g2
	x0 := xin - (i - t)
	y0 := yin - (j - t)

	// Lower triangle (0,0)->(1,0)->(1,1) or upper (0,0)->(0,1)->(1,1).
	var i1, j1 int
	if x0 > y0 {
		i1, j1 = 1, 0
	} else {
		i1, j1 = 0, 1
	}

	x1 := x0 - float64(i1) + g2
	y1 := y0 - float64(j1) + g2
	x2 := x0 - 1.0 + 2.0*g2
	y2 := y0 - 1.0 + 2.0*g2

	ii := int(toInt32(i) & 255)
	jj := int(toInt32(j) & 255)

	t0 := 0.5 - x0*x0 - y0*y0
	if t0 >= 0 {
		t0 *= t0
		n0 = t0 * t0 * dot2(g.grad[ii+int(g.perm[jj])], x0, y0)
	}

	t1 := 0.5 - x1*x1 - y1*y1
	if t1 >= 0 {
		t1 *= t1
		n1 = t1 * t1 * dot2(g.grad[ii+i1+int(g.perm[jj+j1])], x1, y1)
	}

	t2 := 0.5 - x2*x2 - y2*y2
	if t2 >= 0 {
		t2 *= t2
		n2 = t2 * t2 * dot2(g.grad[ii+1+int(g.perm[jj+1])], x2, y2)
	}

	return 70.0 * (n0 + n1 + n2)
}
