package store

import (
	dbm "github.com/tendermint/tm-db"

	"github.com/treasurydao/governance/types"
)

// dbStoreAdapter exposes one key-prefixed slice of a dbm.DB as a
// types.KVStore. Every mounted store gets its own prefix, so stores
// sharing a DB cannot read each other's keys.
type dbStoreAdapter struct {
	db     dbm.DB
	prefix []byte
}

var _ types.KVStore = dbStoreAdapter{}

func newDBStoreAdapter(db dbm.DB, prefix []byte) dbStoreAdapter {
	return dbStoreAdapter{db: db, prefix: prefix}
}

func (s dbStoreAdapter) prefixed(key []byte) []byte {
	out := make([]byte, 0, len(s.prefix)+len(key))
	out = append(out, s.prefix...)
	return append(out, key...)
}

func (s dbStoreAdapter) Get(key []byte) []byte {
	return s.db.Get(s.prefixed(key))
}

func (s dbStoreAdapter) Has(key []byte) bool {
	return s.db.Has(s.prefixed(key))
}

func (s dbStoreAdapter) Set(key, value []byte) {
	s.db.Set(s.prefixed(key), value)
}

func (s dbStoreAdapter) Delete(key []byte) {
	s.db.Delete(s.prefixed(key))
}

func (s dbStoreAdapter) Iterator(start, end []byte) types.Iterator {
	return newPrefixIterator(s.prefix, start, end, s.db.Iterator(s.domain(start, end)))
}

func (s dbStoreAdapter) ReverseIterator(start, end []byte) types.Iterator {
	return newPrefixIterator(s.prefix, start, end, s.db.ReverseIterator(s.domain(start, end)))
}

// domain translates an unprefixed [start, end) range into the
// underlying DB's key space.
func (s dbStoreAdapter) domain(start, end []byte) (pstart, pend []byte) {
	pstart = s.prefixed(start)
	if end == nil {
		pend = types.PrefixEndBytes(s.prefix)
	} else {
		pend = s.prefixed(end)
	}
	return pstart, pend
}

// prefixIterator strips the store prefix from the underlying
// iterator's keys.
type prefixIterator struct {
	prefix []byte
	start  []byte
	end    []byte
	iter   dbm.Iterator
}

var _ types.Iterator = (*prefixIterator)(nil)

func newPrefixIterator(prefix, start, end []byte, iter dbm.Iterator) *prefixIterator {
	return &prefixIterator{
		prefix: prefix,
		start:  start,
		end:    end,
		iter:   iter,
	}
}

func (pi *prefixIterator) Domain() (start, end []byte) {
	return pi.start, pi.end
}

func (pi *prefixIterator) Valid() bool { return pi.iter.Valid() }
func (pi *prefixIterator) Next()       { pi.iter.Next() }

func (pi *prefixIterator) Key() []byte {
	key := pi.iter.Key()
	return key[len(pi.prefix):]
}

func (pi *prefixIterator) Value() []byte { return pi.iter.Value() }
func (pi *prefixIterator) Close()        { pi.iter.Close() }
