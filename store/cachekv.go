package store

import (
	"bytes"
	"sort"
	"sync"

	"github.com/treasurydao/governance/types"
)

// cValue is one buffered mutation: the pending value, or a pending
// deletion when deleted is set.
type cValue struct {
	value   []byte
	deleted bool
}

// cacheKVStore buffers writes on top of a parent store. Reads fall
// through for keys it hasn't touched. Write flushes every buffered
// mutation to the parent; dropping the store discards them.
type cacheKVStore struct {
	mtx    sync.Mutex
	cache  map[string]cValue
	parent types.KVStore
}

var _ types.KVStore = (*cacheKVStore)(nil)

func newCacheKVStore(parent types.KVStore) *cacheKVStore {
	return &cacheKVStore{
		cache:  make(map[string]cValue),
		parent: parent,
	}
}

func (ci *cacheKVStore) Get(key []byte) []byte {
	ci.mtx.Lock()
	defer ci.mtx.Unlock()
	ci.assertValidKey(key)

	if cacheValue, ok := ci.cache[string(key)]; ok {
		if cacheValue.deleted {
			return nil
		}
		return cacheValue.value
	}
	return ci.parent.Get(key)
}

func (ci *cacheKVStore) Has(key []byte) bool {
	return ci.Get(key) != nil
}

func (ci *cacheKVStore) Set(key, value []byte) {
	ci.mtx.Lock()
	defer ci.mtx.Unlock()
	ci.assertValidKey(key)

	ci.cache[string(key)] = cValue{value: value}
}

func (ci *cacheKVStore) Delete(key []byte) {
	ci.mtx.Lock()
	defer ci.mtx.Unlock()
	ci.assertValidKey(key)

	ci.cache[string(key)] = cValue{deleted: true}
}

// Write flushes buffered mutations to the parent in ascending key
// order, then resets the buffer.
func (ci *cacheKVStore) Write() {
	ci.mtx.Lock()
	defer ci.mtx.Unlock()

	keys := make([]string, 0, len(ci.cache))
	for key := range ci.cache {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		cacheValue := ci.cache[key]
		if cacheValue.deleted {
			ci.parent.Delete([]byte(key))
		} else {
			ci.parent.Set([]byte(key), cacheValue.value)
		}
	}

	ci.cache = make(map[string]cValue)
}

func (ci *cacheKVStore) Iterator(start, end []byte) types.Iterator {
	return ci.iterator(start, end, true)
}

func (ci *cacheKVStore) ReverseIterator(start, end []byte) types.Iterator {
	return ci.iterator(start, end, false)
}

// iterator materializes the merged view of parent and buffer over
// [start, end). The buffered working sets here are small (a handler's
// worth of writes), so merging eagerly is simpler than a streaming
// merge and costs nothing measurable.
func (ci *cacheKVStore) iterator(start, end []byte, ascending bool) types.Iterator {
	ci.mtx.Lock()
	defer ci.mtx.Unlock()

	merged := make(map[string][]byte)

	parentIter := ci.parent.Iterator(start, end)
	for ; parentIter.Valid(); parentIter.Next() {
		merged[string(parentIter.Key())] = parentIter.Value()
	}
	parentIter.Close()

	for key, cacheValue := range ci.cache {
		if !keyInRange([]byte(key), start, end) {
			continue
		}
		if cacheValue.deleted {
			delete(merged, key)
		} else {
			merged[key] = cacheValue.value
		}
	}

	keys := make([]string, 0, len(merged))
	for key := range merged {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	if !ascending {
		for i, j := 0, len(keys)-1; i < j; i, j = i+1, j-1 {
			keys[i], keys[j] = keys[j], keys[i]
		}
	}

	items := make([]kvPair, 0, len(keys))
	for _, key := range keys {
		items = append(items, kvPair{key: []byte(key), value: merged[key]})
	}
	return newMemIterator(start, end, items)
}

func (ci *cacheKVStore) assertValidKey(key []byte) {
	if len(key) == 0 {
		panic("key is empty")
	}
}

func keyInRange(key, start, end []byte) bool {
	if start != nil && bytes.Compare(key, start) < 0 {
		return false
	}
	if end != nil && bytes.Compare(key, end) >= 0 {
		return false
	}
	return true
}

type kvPair struct {
	key   []byte
	value []byte
}

// memIterator iterates over a materialized slice of kv pairs.
type memIterator struct {
	start, end []byte
	items      []kvPair
	pos        int
}

var _ types.Iterator = (*memIterator)(nil)

func newMemIterator(start, end []byte, items []kvPair) *memIterator {
	return &memIterator{start: start, end: end, items: items}
}

func (mi *memIterator) Domain() (start, end []byte) { return mi.start, mi.end }
func (mi *memIterator) Valid() bool                 { return mi.pos < len(mi.items) }

func (mi *memIterator) Next() {
	mi.assertValid()
	mi.pos++
}

func (mi *memIterator) Key() []byte {
	mi.assertValid()
	return mi.items[mi.pos].key
}

func (mi *memIterator) Value() []byte {
	mi.assertValid()
	return mi.items[mi.pos].value
}

func (mi *memIterator) Close() {
	mi.items = nil
	mi.pos = 0
}

func (mi *memIterator) assertValid() {
	if !mi.Valid() {
		panic("memIterator is invalid")
	}
}
