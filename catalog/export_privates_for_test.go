package catalog

import (
	"github.com/dgraph-io/badger/v3"
	"github.com/google/uuid"
)

// PutRaw writes val under id's key, bypassing encoding.
func (c *Catalog) PutRaw(id uuid.UUID, val []byte) error {
	return c.db.Update(func(txn *badger.Txn) error {
		return txn.Set(graphKey(id), val)
	})
}
