package field

import (
	"fmt"
	"log"
)

const (
	ChunkWidth = 32
)

// ChunkID addresses the ChunkWidth x ChunkWidth square whose lower corner
// is (P*ChunkWidth, Q*ChunkWidth).
type ChunkID struct {
	P, Q int
}

func (id ChunkID) String() string {
	return fmt.Sprintf("%d_%d", id.P, id.Q)
}

// Chunkid returns the chunk containing the grid point (x, y).
func Chunkid(x, y int) ChunkID {
	return ChunkID{floorDiv(x, ChunkWidth), floorDiv(y, ChunkWidth)}
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// Chunk holds the samples of one chunk in row-major order.
type Chunk struct {
	id      ChunkID
	samples []float32
}

func newChunk(id ChunkID, samples []float32) *Chunk {
	if len(samples) != ChunkWidth*ChunkWidth {
		log.Panicf("chunk %v: %d samples", id, len(samples))
	}
	return &Chunk{id: id, samples: samples}
}

func sampleChunk(id ChunkID, src Source, scale float64) *Chunk {
	samples := make([]float32, ChunkWidth*ChunkWidth)
	for dy := 0; dy < ChunkWidth; dy++ {
		for dx := 0; dx < ChunkWidth; dx++ {
			x, y := id.P*ChunkWidth+dx, id.Q*ChunkWidth+dy
			samples[dy*ChunkWidth+dx] = float32(src.Eval2(float64(x)*scale, float64(y)*scale))
		}
	}
	return newChunk(id, samples)
}

func (c *Chunk) Id() ChunkID {
	return c.id
}

// At returns the sample at world grid point (x, y), which must lie in c.
func (c *Chunk) At(x, y int) float32 {
	if Chunkid(x, y) != c.id {
		log.Panicf("point (%d,%d) chunk %v", x, y, c.id)
	}
	dx, dy := x-c.id.P*ChunkWidth, y-c.id.Q*ChunkWidth
	return c.samples[dy*ChunkWidth+dx]
}

// RangeSamples calls f for every point of the chunk in row-major order.
func (c *Chunk) RangeSamples(f func(x, y int, v float32)) {
	for i, v := range c.samples {
		f(c.id.P*ChunkWidth+i%ChunkWidth, c.id.Q*ChunkWidth+i/ChunkWidth, v)
	}
}
