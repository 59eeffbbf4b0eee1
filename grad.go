package simplex

import "github.com/go-gl/mathgl/mgl64"

// gradients are the midpoints of the edges of a cube. Only x and y take
// part in 2D evaluation; z is kept so the table stays the classic one.
var gradients = [12]mgl64.Vec3{
	{1, 1, 0}, {-1, 1, 0}, {1, -1, 0}, {-1, -1, 0},
	{1, 0, 1}, {-1, 0, 1}, {1, 0, -1}, {-1, 0, -1},
	{0, 1, 1}, {0, -1, 1}, {0, 1, -1}, {0, -1, -1},
}

func dot2(g mgl64.Vec3, x, y float64) float64 {
	return g[0]*x + g[1]*y
}
