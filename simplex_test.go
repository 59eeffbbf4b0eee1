package simplex

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/pkg/errors"
)

// Values produced by the legacy JavaScript module for the same seeds.
var legacyPoints = [][2]float64{
	{0, 0}, {0.5, 0.5}, {1.25, -3.75}, {-10.3, 7.9}, {123.456, -78.9}, {0.1, 0.9},
}

var legacyValues = []struct {
	seed float64
	want []float64
}{
	{0, []float64{0, -0.30715651362721619, -0.44250755974351308, 0.52233273335042263, -0.18404644600030454, -0.22949978907964277}},
	{1, []float64{0, 0.30715651362721619, -0.93260252270214794, 0.52233273335042263, -0.15291480249053868, -0.17124715799593376}},
	{2, []float64{0, -0.61431302725443238, 0.93260252270214794, -0.52233273335042263, 0.25270718917751794, 0.14460787394990779}},
	{42, []float64{0, -0.61431302725443238, -0.44250755974351308, 0.71792794800796877, -0.21959160370904998, 0.13526309938394546}},
	{0.5, []float64{0, -0.30715651362721619, -0.34733275331326763, -0.19575242829603806, -0.30842791176509587, -0.55565834124121227}},
	{32768, []float64{0, -0.30715651362721619, -0.34733275331326763, -0.19575242829603806, -0.30842791176509587, -0.55565834124121227}},
	{-7, []float64{0, -0.30715651362721619, -0.39492015652839008, 0.71792794800796877, -0.25282180268903698, -0.12589043002299857}},
	{70000, []float64{0, 0.30715651362721619, 0.93260252270214794, -0.52119835413886284, 0.21959160370904998, 0.50603901750004265}},
}

func mustNew(t *testing.T, seed float64) *Generator {
	t.Helper()
	g, err := New(seed)
	if err != nil {
		t.Fatalf("New(%v): %v", seed, err)
	}
	return g
}

func TestLegacyValues(t *testing.T) {
	for _, tt := range legacyValues {
		g := mustNew(t, tt.seed)
		for k, p := range legacyPoints {
			got := g.Eval2(p[0], p[1])
			if math.Abs(got-tt.want[k]) > 1e-12 {
				t.Errorf("seed %v at %v: got %.17g, want %.17g", tt.seed, p, got, tt.want[k])
			}
		}
	}
}

func TestDeterministic(t *testing.T) {
	g := mustNew(t, 1234)
	a := g.Eval2(17.3, -4.1)
	for i := 0; i < 10; i++ {
		if b := g.Eval2(17.3, -4.1); b != a {
			t.Fatalf("call %d: got %v, want %v", i, b, a)
		}
	}
	if b := mustNew(t, 1234).Eval2(17.3, -4.1); b != a {
		t.Fatalf("fresh generator: got %v, want %v", b, a)
	}
}

func TestSeedChangesOutput(t *testing.T) {
	a := mustNew(t, 1).Eval2(0.5, 0.5)
	b := mustNew(t, 2).Eval2(0.5, 0.5)
	if a == b {
		t.Fatalf("seeds 1 and 2 agree at (0.5, 0.5): %v", a)
	}
}

func TestRange(t *testing.T) {
	for _, seed := range []float64{0, 1, 99, 0.25, 65535} {
		g := mustNew(t, seed)
		for i := 0; i < 100; i++ {
			for j := 0; j < 100; j++ {
				x := -100 + 200*float64(i)/99
				y := -100 + 200*float64(j)/99 + 0.37
				v := g.Eval2(x, y)
				if v < -1.05 || v > 1.05 {
					t.Fatalf("seed %v at (%v, %v): %v out of range", seed, x, y, v)
				}
			}
		}
	}
}

func TestContinuity(t *testing.T) {
	const eps = 1e-4
	g := mustNew(t, 7)
	for i := 0; i < 500; i++ {
		x := float64(i)*0.173 - 40
		y := float64(i)*-0.291 + 13
		a := g.Eval2(x, y)
		for _, d := range [][2]float64{{eps, 0}, {0, eps}, {eps, -eps}} {
			b := g.Eval2(x+d[0], y+d[1])
			if math.Abs(a-b) >= 0.01 {
				t.Fatalf("jump at (%v, %v)+%v: %v -> %v", x, y, d, a, b)
			}
		}
	}
}

func TestOriginIsZero(t *testing.T) {
	for _, seed := range []float64{0, 1, 2, 42, 0.5, -7, 70000, 65535} {
		if v := mustNew(t, seed).Eval2(0, 0); v != 0 {
			t.Errorf("seed %v: Eval2(0, 0) = %v, want 0", seed, v)
		}
	}
}

func TestFractionalSeed(t *testing.T) {
	a := mustNew(t, 0.5)
	b := mustNew(t, 32768)
	if a.Perm(0) != b.Perm(0) || a.Gradient(0) != b.Gradient(0) {
		t.Fatalf("seed 0.5 and 32768 differ at entry 0")
	}
	if a.Key() != b.Key() {
		t.Fatalf("keys differ: %#x %#x", a.Key(), b.Key())
	}
}

func TestKey(t *testing.T) {
	tests := []struct {
		seed float64
		want uint16
	}{
		{0, 0},
		{1, 0x0101},
		{1.9, 0x0101},
		{257, 0x0101},
		{42, 0x2a2a},
		{255, 0xffff},
		{256, 0x0100},
		{0.5, 0x8000},
		{32768, 0x8000},
		{70000, 0x1170},
		{-7, 0xfff9},
		{-0.5, 0xffff},
		{1<<32 + 5, 0x0005},
	}
	for _, tt := range tests {
		got, err := Key(tt.seed)
		if err != nil {
			t.Fatalf("Key(%v): %v", tt.seed, err)
		}
		if got != tt.want {
			t.Errorf("Key(%v) = %#x, want %#x", tt.seed, got, tt.want)
		}
	}
}

func TestPermTable(t *testing.T) {
	g := mustNew(t, 1)
	if g.Perm(0) != 150 || g.Perm(1) != 161 {
		t.Fatalf("perm[0:2] = %d %d, want 150 161", g.Perm(0), g.Perm(1))
	}
	if want := (mgl64.Vec3{1, 0, -1}); g.Gradient(0) != want {
		t.Fatalf("grad[0] = %v, want %v", g.Gradient(0), want)
	}

	g = mustNew(t, 70000)
	if g.Perm(0) != 134 || g.Perm(1) != 208 {
		t.Fatalf("perm[0:2] = %d %d, want 134 208", g.Perm(0), g.Perm(1))
	}
}

func TestDoubledTables(t *testing.T) {
	for _, seed := range []float64{0, 3, 0.75, 12345, -99} {
		g := mustNew(t, seed)
		seen := make(map[uint8]bool)
		for i := 0; i < 256; i++ {
			if g.Perm(i) != g.Perm(i+256) {
				t.Fatalf("seed %v: perm[%d] != perm[%d]", seed, i, i+256)
			}
			if g.Gradient(i) != g.Gradient(i+256) {
				t.Fatalf("seed %v: grad[%d] != grad[%d]", seed, i, i+256)
			}
			if g.Gradient(i) != gradients[g.Perm(i)%12] {
				t.Fatalf("seed %v: grad[%d] does not match perm", seed, i)
			}
			seen[g.Perm(i)] = true
		}
		// Different bytes for odd and even slots can collide, so the
		// result is not always a permutation; it must still be varied.
		if len(seen) < 128 {
			t.Fatalf("seed %v: only %d distinct perm values", seed, len(seen))
		}
	}
}

func TestInvalidInput(t *testing.T) {
	bad := []float64{math.NaN(), math.Inf(1), math.Inf(-1)}
	for _, v := range bad {
		if _, err := New(v); errors.Cause(err) != ErrInvalidInput {
			t.Errorf("New(%v): err = %v", v, err)
		}
		if _, err := Key(v); errors.Cause(err) != ErrInvalidInput {
			t.Errorf("Key(%v): err = %v", v, err)
		}
	}
	g := mustNew(t, 5)
	for _, v := range bad {
		if _, err := g.Simplex2(v, 0); errors.Cause(err) != ErrInvalidInput {
			t.Errorf("Simplex2(%v, 0): err = %v", v, err)
		}
		if _, err := g.Simplex2(0, v); errors.Cause(err) != ErrInvalidInput {
			t.Errorf("Simplex2(0, %v): err = %v", v, err)
		}
	}
	v, err := g.Simplex2(3.5, -2.25)
	if err != nil {
		t.Fatal(err)
	}
	if v != g.Eval2(3.5, -2.25) {
		t.Fatalf("Simplex2 and Eval2 disagree")
	}
}

func TestHugeCoordinates(t *testing.T) {
	// Cell indices beyond the int32 range wrap like 32-bit integers.
	g := mustNew(t, 1e12+3)
	got := g.Eval2(-1e9+0.3, 4e9+0.7)
	if want := 0.35222743202081347; math.Abs(got-want) > 1e-12 {
		t.Fatalf("got %.17g, want %.17g", got, want)
	}
}

func TestToInt32(t *testing.T) {
	tests := []struct {
		f    float64
		want int32
	}{
		{0, 0},
		{-1, -1},
		{math.MaxInt32, math.MaxInt32},
		{math.MinInt32, math.MinInt32},
		{1 << 31, math.MinInt32},
		{1<<32 + 7, 7},
		{-(1 << 32) - 7, -7},
		{4e9, -294967296},
	}
	for _, tt := range tests {
		if got := toInt32(tt.f); got != tt.want {
			t.Errorf("toInt32(%v) = %d, want %d", tt.f, got, tt.want)
		}
	}
}
