package catalog

import (
	"runtime"
	"sync"

	"github.com/dgraph-io/badger/v3"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/katalvlaran/spweights/registry"
	"github.com/katalvlaran/spweights/weights"
)

var graphPrefix = []byte("w/")

// Options configures Open.
type Options struct {
	// Dir is the badger directory. Empty means an in-memory catalog.
	Dir string

	// ReadOnly opens an existing catalog without write access. Requires Dir.
	ReadOnly bool
}

// DefaultOptions returns Options for an in-memory, writable catalog.
func DefaultOptions() Options {
	return Options{}
}

// Catalog is a badger-backed registry.GraphStore.
type Catalog struct {
	mu       sync.RWMutex
	db       *badger.DB
	readOnly bool
}

var _ registry.GraphStore = (*Catalog)(nil)

// Open opens (or creates) the catalog described by opts.
//
// Errors: ErrBadParam for ReadOnly without Dir; badger open errors, wrapped.
func Open(opts Options) (*Catalog, error) {
	if opts.Dir == "" && opts.ReadOnly {
		return nil, errors.Wrap(ErrBadParam, "Dir must be specified for a read-only catalog")
	}

	dbOpts := badger.DefaultOptions(opts.Dir)
	dbOpts.ReadOnly = opts.ReadOnly
	dbOpts.DetectConflicts = false
	dbOpts.Logger = nil
	dbOpts.MetricsEnabled = false
	if opts.Dir == "" {
		dbOpts.InMemory = true
	}

	// badger has no read-only mode on windows
	if runtime.GOOS == "windows" {
		dbOpts.ReadOnly = false
	}

	db, err := badger.Open(dbOpts)
	if err != nil {
		return nil, errors.Wrapf(err, "catalog: open %q", opts.Dir)
	}

	return &Catalog{db: db, readOnly: opts.ReadOnly}, nil
}

// Put stores g under id, replacing any previous graph.
func (c *Catalog) Put(id uuid.UUID, g *weights.NeighborGraph) error {
	if g == nil {
		return errors.Wrap(ErrBadParam, "nil graph")
	}
	val, err := g.Encode()
	if err != nil {
		return err
	}

	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.db == nil {
		return ErrClosed
	}
	if c.readOnly {
		return errors.Wrap(ErrBadParam, "catalog is read-only")
	}

	err = c.db.Update(func(txn *badger.Txn) error {
		return txn.Set(graphKey(id), val)
	})

	return errors.Wrapf(err, "catalog: put %s", id)
}

// Get returns the graph stored under id, frozen.
//
// Errors: ErrNotFound, ErrClosed, weights.ErrBadEncoding for corrupt values.
func (c *Catalog) Get(id uuid.UUID) (*weights.NeighborGraph, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.db == nil {
		return nil, ErrClosed
	}

	var g *weights.NeighborGraph
	err := c.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(graphKey(id))
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			g, err = weights.Decode(val)
			return err
		})
	})
	if err == badger.ErrKeyNotFound {
		return nil, errors.Wrapf(ErrNotFound, "id %s", id)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "catalog: get %s", id)
	}

	return g, nil
}

// Delete removes id. Deleting an unknown id is a no-op.
func (c *Catalog) Delete(id uuid.UUID) error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.db == nil {
		return ErrClosed
	}
	if c.readOnly {
		return errors.Wrap(ErrBadParam, "catalog is read-only")
	}

	err := c.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(graphKey(id))
	})

	return errors.Wrapf(err, "catalog: delete %s", id)
}

// IDs returns the ids of every stored graph in key order.
func (c *Catalog) IDs() ([]uuid.UUID, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.db == nil {
		return nil, ErrClosed
	}

	var ids []uuid.UUID
	err := c.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.IteratorOptions{
			PrefetchValues: false,
			Prefix:         graphPrefix,
		})
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			id, err := uuid.FromBytes(it.Item().Key()[len(graphPrefix):])
			if err != nil {
				return err
			}
			ids = append(ids, id)
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "catalog: ids")
	}

	return ids, nil
}

// Close releases the database. Further calls return ErrClosed; a second
// Close is a no-op.
func (c *Catalog) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.db == nil {
		return nil
	}
	err := c.db.Close()
	c.db = nil

	return errors.Wrap(err, "catalog: close")
}

func graphKey(id uuid.UUID) []byte {
	key := make([]byte, 0, len(graphPrefix)+len(id))
	key = append(key, graphPrefix...)

	return append(key, id[:]...)
}
