package field

import (
	"bytes"
	"encoding/binary"
	"log"

	"github.com/boltdb/bolt"
	"github.com/pkg/errors"
)

var (
	chunkBucket = []byte("chunk")
	metaBucket  = []byte("meta")
)

// Store persists sampled chunks in a bolt database.
type Store struct {
	db *bolt.DB
}

func OpenStore(p string) (*Store, error) {
	db, err := bolt.Open(p, 0666, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "field: open store %s", p)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(chunkBucket)
		if err != nil {
			return err
		}
		_, err = tx.CreateBucketIfNotExists(metaBucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, errors.Wrap(err, "field: create buckets")
	}
	db.NoSync = true
	return &Store{
		db: db,
	}, nil
}

func (s *Store) PutChunk(c *Chunk) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		bkt := tx.Bucket(chunkBucket)
		return errors.Wrapf(bkt.Put(encodeChunkKey(c.id), encodeSamples(c.samples)), "put chunk %v", c.id)
	})
}

// GetChunk returns the stored chunk id, or nil if it was never stored.
func (s *Store) GetChunk(id ChunkID) (*Chunk, error) {
	var c *Chunk
	err := s.db.View(func(tx *bolt.Tx) error {
		bkt := tx.Bucket(chunkBucket)
		v := bkt.Get(encodeChunkKey(id))
		if v == nil {
			return nil
		}
		samples, err := decodeSamples(v)
		if err != nil {
			return errors.Wrapf(err, "get chunk %v", id)
		}
		c = newChunk(id, samples)
		return nil
	})
	return c, err
}

func (s *Store) RangeChunks(f func(c *Chunk)) error {
	return s.db.View(func(tx *bolt.Tx) error {
		bkt := tx.Bucket(chunkBucket)
		return bkt.ForEach(func(k, v []byte) error {
			id := decodeChunkKey(k)
			samples, err := decodeSamples(v)
			if err != nil {
				return errors.Wrapf(err, "range chunk %v", id)
			}
			f(newChunk(id, samples))
			return nil
		})
	})
}

func (s *Store) SetMeta(key, value string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		bkt := tx.Bucket(metaBucket)
		return bkt.Put([]byte(key), []byte(value))
	})
}

// GetMeta returns the value stored under key, or "" if there is none.
func (s *Store) GetMeta(key string) (string, error) {
	var value string
	err := s.db.View(func(tx *bolt.Tx) error {
		bkt := tx.Bucket(metaBucket)
		v := bkt.Get([]byte(key))
		if v != nil {
			value = string(v)
		}
		return nil
	})
	return value, errors.Wrapf(err, "get meta %s", key)
}

func (s *Store) Close() error {
	serr := s.db.Sync()
	if err := s.db.Close(); err != nil {
		return errors.Wrap(err, "field: close store")
	}
	return errors.Wrap(serr, "field: sync store")
}

// Chunk keys are full int64 pairs; narrower keys would alias chunks whose
// ids agree in their low bits.
func encodeChunkKey(id ChunkID) []byte {
	buf := new(bytes.Buffer)
	binary.Write(buf, binary.LittleEndian, [...]int64{int64(id.P), int64(id.Q)})
	return buf.Bytes()
}

func decodeChunkKey(b []byte) ChunkID {
	if len(b) != 8*2 {
		log.Panicf("bad db key length:%d", len(b))
	}
	var arr [2]int64
	binary.Read(bytes.NewReader(b), binary.LittleEndian, &arr)
	return ChunkID{int(arr[0]), int(arr[1])}
}

func encodeSamples(samples []float32) []byte {
	buf := new(bytes.Buffer)
	binary.Write(buf, binary.LittleEndian, samples)
	return buf.Bytes()
}

func decodeSamples(b []byte) ([]float32, error) {
	if len(b) != 4*ChunkWidth*ChunkWidth {
		return nil, errors.Errorf("bad db value length:%d", len(b))
	}
	samples := make([]float32, ChunkWidth*ChunkWidth)
	if err := binary.Read(bytes.NewReader(b), binary.LittleEndian, samples); err != nil {
		return nil, err
	}
	return samples, nil
}
