package persist

import (
	"encoding/binary"
	"fmt"

	"github.com/df-mc/goleveldb/leveldb"
	"github.com/df-mc/goleveldb/leveldb/opt"
)

// Store persists per-tick CaoloWorld snapshots in a goleveldb database
// keyed by big-endian tick number, the teacher's own world-save backend
// (server/world/world.go's leveldb provider) repurposed for simulation
// snapshots instead of chunk data.
type Store struct {
	db *leveldb.DB
}

// Open opens (creating if necessary) a snapshot store at path.
func Open(path string) (*Store, error) {
	db, err := leveldb.OpenFile(path, &opt.Options{})
	if err != nil {
		return nil, fmt.Errorf("persist: opening snapshot store at %s: %w", path, err)
	}
	return &Store{db: db}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error { return s.db.Close() }

// Put encodes, compresses, and stores snap under tick.
func (s *Store) Put(tick uint64, snap CaoloWorld) error {
	raw, err := EncodeJSON(snap)
	if err != nil {
		return fmt.Errorf("persist: encoding snapshot for tick %d: %w", tick, err)
	}
	blob, err := CompressBlob(raw)
	if err != nil {
		return fmt.Errorf("persist: compressing snapshot for tick %d: %w", tick, err)
	}
	if err := s.db.Put(tickKey(tick), blob, nil); err != nil {
		return fmt.Errorf("persist: writing snapshot for tick %d: %w", tick, err)
	}
	return nil
}

// Get loads and decodes the snapshot stored at tick.
func (s *Store) Get(tick uint64) (CaoloWorld, error) {
	blob, err := s.db.Get(tickKey(tick), nil)
	if err != nil {
		if err == leveldb.ErrNotFound {
			return CaoloWorld{}, fmt.Errorf("persist: no snapshot at tick %d: %w", tick, err)
		}
		return CaoloWorld{}, fmt.Errorf("persist: reading snapshot for tick %d: %w", tick, err)
	}
	raw, err := DecompressBlob(blob)
	if err != nil {
		return CaoloWorld{}, fmt.Errorf("persist: decompressing snapshot for tick %d: %w", tick, err)
	}
	return DecodeJSON(raw)
}

// Latest scans backward from startTick (inclusive) for the newest tick
// that has a stored snapshot, returning leveldb.ErrNotFound if none do.
func (s *Store) Latest(startTick uint64) (uint64, CaoloWorld, error) {
	for tick := startTick; ; tick-- {
		snap, err := s.Get(tick)
		if err == nil {
			return tick, snap, nil
		}
		if tick == 0 {
			return 0, CaoloWorld{}, leveldb.ErrNotFound
		}
	}
}

func tickKey(tick uint64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, tick)
	return key
}
