package field

import (
	"fmt"
	"log"
	"math"

	lru "github.com/hashicorp/golang-lru"
	"github.com/icexin/simplex"
	"github.com/pkg/errors"
)

const fingerprintKey = "fingerprint"

// ErrFingerprint is returned when a store holds chunks sampled from a
// different source or scale.
var ErrFingerprint = errors.New("field: store fingerprint mismatch")

// Field samples a Source at integer grid points scaled by Scale.
type Field struct {
	src    Source
	scale  float64
	chunks *lru.Cache // map[ChunkID]*Chunk
	store  *Store
}

// SourceName identifies the noise a backend produces for seed, so that
// seeds giving identical noise share stored chunks.
func SourceName(backend string, seed float64) (string, error) {
	key, err := simplex.Key(seed)
	if err != nil {
		return "", err
	}
	if backend == BackendSimplex {
		return fmt.Sprintf("%s:%d", backend, key), nil
	}
	n, err := intSeed(seed)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s:%d", backend, n), nil
}

// NewField returns a field over src. name identifies src (see SourceName)
// and is only used to fingerprint store; store may be nil.
func NewField(src Source, name string, scale float64, cacheSize int, store *Store) (*Field, error) {
	if math.IsNaN(scale) || math.IsInf(scale, 0) || scale <= 0 {
		return nil, errors.Wrapf(simplex.ErrInvalidInput, "scale %v", scale)
	}
	chunks, err := lru.New(cacheSize)
	if err != nil {
		return nil, errors.Wrap(err, "field: chunk cache")
	}
	if store != nil {
		fp := fmt.Sprintf("%s@%v", name, scale)
		old, err := store.GetMeta(fingerprintKey)
		if err != nil {
			return nil, err
		}
		switch old {
		case "":
			if err := store.SetMeta(fingerprintKey, fp); err != nil {
				return nil, errors.Wrap(err, "field: write fingerprint")
			}
		case fp:
		default:
			return nil, errors.Wrapf(ErrFingerprint, "have %q, want %q", old, fp)
		}
	}
	return &Field{
		src:    src,
		scale:  scale,
		chunks: chunks,
		store:  store,
	}, nil
}

// Scale returns the noise units per grid step.
func (f *Field) Scale() float64 {
	return f.scale
}

// Chunk returns chunk id from the cache, the store, or by sampling it.
func (f *Field) Chunk(id ChunkID) (*Chunk, error) {
	if c, ok := f.chunks.Get(id); ok {
		return c.(*Chunk), nil
	}
	if f.store != nil {
		c, err := f.store.GetChunk(id)
		if err != nil {
			return nil, err
		}
		if c != nil {
			f.chunks.Add(id, c)
			return c, nil
		}
	}
	c := sampleChunk(id, f.src, f.scale)
	if f.store != nil {
		if err := f.store.PutChunk(c); err != nil {
			return nil, err
		}
		log.Printf("store chunk %v", id)
	}
	f.chunks.Add(id, c)
	return c, nil
}

// Sample returns the noise value at grid point (x, y).
func (f *Field) Sample(x, y int) (float32, error) {
	c, err := f.Chunk(Chunkid(x, y))
	if err != nil {
		return 0, err
	}
	return c.At(x, y), nil
}

// CachedChunks reports how many chunks are held in memory.
func (f *Field) CachedChunks() int {
	return f.chunks.Len()
}
