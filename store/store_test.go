package store

import (
	"testing"

	"github.com/stretchr/testify/require"
	dbm "github.com/tendermint/tm-db"

	"github.com/treasurydao/governance/types"
)

func newTestStore(t *testing.T) (*Store, *types.KVStoreKey) {
	ms := NewStore(dbm.NewMemDB())
	key := types.NewKVStoreKey("test")
	ms.MountKVStore(key)
	return ms, key
}

func TestMountAndGet(t *testing.T) {
	ms, key := newTestStore(t)
	store := ms.GetKVStore(key)

	store.Set([]byte("k1"), []byte("v1"))
	require.Equal(t, []byte("v1"), store.Get([]byte("k1")))
	require.True(t, store.Has([]byte("k1")))
	require.Nil(t, store.Get([]byte("missing")))

	store.Delete([]byte("k1"))
	require.False(t, store.Has([]byte("k1")))

	require.Panics(t, func() { ms.MountKVStore(key) })
	require.Panics(t, func() { ms.GetKVStore(types.NewKVStoreKey("other")) })
}

func TestStoreIsolationByPrefix(t *testing.T) {
	db := dbm.NewMemDB()
	ms := NewStore(db)
	keyA := types.NewKVStoreKey("a")
	keyB := types.NewKVStoreKey("b")
	ms.MountKVStore(keyA)
	ms.MountKVStore(keyB)

	ms.GetKVStore(keyA).Set([]byte("k"), []byte("from-a"))
	require.Nil(t, ms.GetKVStore(keyB).Get([]byte("k")))
	require.Equal(t, []byte("from-a"), ms.GetKVStore(keyA).Get([]byte("k")))
}

func TestIterator(t *testing.T) {
	ms, key := newTestStore(t)
	store := ms.GetKVStore(key)
	store.Set([]byte{0x10, 0x01}, []byte("a"))
	store.Set([]byte{0x10, 0x02}, []byte("b"))
	store.Set([]byte{0x20, 0x01}, []byte("c"))

	iter := types.KVStorePrefixIterator(store, []byte{0x10})
	defer iter.Close()
	var values []string
	for ; iter.Valid(); iter.Next() {
		values = append(values, string(iter.Value()))
	}
	require.Equal(t, []string{"a", "b"}, values)
}

func TestCacheWriteThrough(t *testing.T) {
	ms, key := newTestStore(t)
	parent := ms.GetKVStore(key)
	parent.Set([]byte("k1"), []byte("v1"))

	cms := ms.CacheMultiStore()
	cached := cms.GetKVStore(key)

	// reads fall through
	require.Equal(t, []byte("v1"), cached.Get([]byte("k1")))

	// writes stay buffered until Write
	cached.Set([]byte("k2"), []byte("v2"))
	cached.Delete([]byte("k1"))
	require.Nil(t, cached.Get([]byte("k1")))
	require.Equal(t, []byte("v1"), parent.Get([]byte("k1")))
	require.Nil(t, parent.Get([]byte("k2")))

	cms.Write()
	require.Nil(t, parent.Get([]byte("k1")))
	require.Equal(t, []byte("v2"), parent.Get([]byte("k2")))
}

func TestCacheDiscard(t *testing.T) {
	ms, key := newTestStore(t)
	parent := ms.GetKVStore(key)
	parent.Set([]byte("k1"), []byte("v1"))

	cms := ms.CacheMultiStore()
	cms.GetKVStore(key).Set([]byte("k1"), []byte("dirty"))

	// never written: the parent is untouched
	require.Equal(t, []byte("v1"), parent.Get([]byte("k1")))
}

func TestCacheIteratorMergesBuffer(t *testing.T) {
	ms, key := newTestStore(t)
	parent := ms.GetKVStore(key)
	parent.Set([]byte("a"), []byte("1"))
	parent.Set([]byte("c"), []byte("3"))

	cms := ms.CacheMultiStore()
	cached := cms.GetKVStore(key)
	cached.Set([]byte("b"), []byte("2"))
	cached.Delete([]byte("c"))

	iter := cached.Iterator(nil, nil)
	defer iter.Close()
	var keys []string
	for ; iter.Valid(); iter.Next() {
		keys = append(keys, string(iter.Key()))
	}
	require.Equal(t, []string{"a", "b"}, keys)
}

func TestNestedCache(t *testing.T) {
	ms, key := newTestStore(t)
	parent := ms.GetKVStore(key)

	outer := ms.CacheMultiStore()
	outer.GetKVStore(key).Set([]byte("k"), []byte("outer"))

	inner := outer.CacheMultiStore()
	inner.GetKVStore(key).Set([]byte("k"), []byte("inner"))

	require.Equal(t, []byte("outer"), outer.GetKVStore(key).Get([]byte("k")))
	inner.Write()
	require.Equal(t, []byte("inner"), outer.GetKVStore(key).Get([]byte("k")))
	require.Nil(t, parent.Get([]byte("k")))

	outer.Write()
	require.Equal(t, []byte("inner"), parent.Get([]byte("k")))
}
