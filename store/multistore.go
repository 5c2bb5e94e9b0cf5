package store

import (
	"fmt"

	dbm "github.com/tendermint/tm-db"

	"github.com/treasurydao/governance/types"
)

// Store is the root MultiStore: a set of named KVStores carved out of
// one dbm.DB by key prefix. The DB backend decides durability — a
// MemDB for tests, GoLevelDB (or any dbm backend) for a persistent
// host.
type Store struct {
	db         dbm.DB
	stores     map[types.StoreKey]types.KVStore
	keysByName map[string]types.StoreKey
}

var _ types.MultiStore = (*Store)(nil)

// NewStore mounts nothing; call MountKVStore for each store key
// before first use.
func NewStore(db dbm.DB) *Store {
	return &Store{
		db:         db,
		stores:     make(map[types.StoreKey]types.KVStore),
		keysByName: make(map[string]types.StoreKey),
	}
}

// MountKVStore mounts a store under the given key. Panics on
// duplicate keys or duplicate names; mounting is wiring, not input.
func (rs *Store) MountKVStore(key types.StoreKey) {
	if _, ok := rs.stores[key]; ok {
		panic(fmt.Sprintf("store is already mounted: %v", key))
	}
	if _, ok := rs.keysByName[key.Name()]; ok {
		panic(fmt.Sprintf("store name is already mounted: %s", key.Name()))
	}
	rs.stores[key] = newDBStoreAdapter(rs.db, storePrefix(key))
	rs.keysByName[key.Name()] = key
}

// GetKVStore implements types.MultiStore.
func (rs *Store) GetKVStore(key types.StoreKey) types.KVStore {
	store, ok := rs.stores[key]
	if !ok {
		panic(fmt.Sprintf("store does not exist for key: %v", key))
	}
	return store
}

// CacheMultiStore implements types.MultiStore.
func (rs *Store) CacheMultiStore() types.CacheMultiStore {
	return newCacheMultiStore(rs.stores)
}

func storePrefix(key types.StoreKey) []byte {
	return []byte("s/" + key.Name() + "/")
}

// cacheMultiStore cache-wraps every store of its parent; Write
// flushes them all.
type cacheMultiStore struct {
	stores map[types.StoreKey]*cacheKVStore
}

var _ types.CacheMultiStore = cacheMultiStore{}

func newCacheMultiStore(parents map[types.StoreKey]types.KVStore) cacheMultiStore {
	cms := cacheMultiStore{stores: make(map[types.StoreKey]*cacheKVStore, len(parents))}
	for key, parent := range parents {
		cms.stores[key] = newCacheKVStore(parent)
	}
	return cms
}

func (cms cacheMultiStore) GetKVStore(key types.StoreKey) types.KVStore {
	store, ok := cms.stores[key]
	if !ok {
		panic(fmt.Sprintf("store does not exist for key: %v", key))
	}
	return store
}

func (cms cacheMultiStore) CacheMultiStore() types.CacheMultiStore {
	parents := make(map[types.StoreKey]types.KVStore, len(cms.stores))
	for key, store := range cms.stores {
		parents[key] = store
	}
	return newCacheMultiStore(parents)
}

// Write flushes every cache-wrapped store to its parent.
func (cms cacheMultiStore) Write() {
	for _, store := range cms.stores {
		store.Write()
	}
}
