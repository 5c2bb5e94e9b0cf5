package types_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	dbm "github.com/tendermint/tm-db"

	"github.com/treasurydao/governance/store"
	"github.com/treasurydao/governance/types"
)

func TestContextAccessors(t *testing.T) {
	ms := store.NewStore(dbm.NewMemDB())
	key := types.NewKVStoreKey("test")
	ms.MountKVStore(key)

	ctx := types.NewContext(ms, 42, nil)
	require.False(t, ctx.IsZero())
	require.Equal(t, int64(42), ctx.BlockHeight())
	require.NotNil(t, ctx.Logger())
	require.NotNil(t, ctx.KVStore(key))

	later := ctx.WithBlockHeight(100)
	require.Equal(t, int64(100), later.BlockHeight())
	require.Equal(t, int64(42), ctx.BlockHeight())

	require.True(t, types.Context{}.IsZero())
}

func TestCacheContext(t *testing.T) {
	ms := store.NewStore(dbm.NewMemDB())
	key := types.NewKVStoreKey("test")
	ms.MountKVStore(key)
	ctx := types.NewContext(ms, 0, nil)

	cacheCtx, writeCache := ctx.CacheContext()
	cacheCtx.KVStore(key).Set([]byte("k"), []byte("v"))
	require.Nil(t, ctx.KVStore(key).Get([]byte("k")))

	writeCache()
	require.Equal(t, []byte("v"), ctx.KVStore(key).Get([]byte("k")))
}

func TestPrefixEndBytes(t *testing.T) {
	require.Equal(t, []byte{0x10, 0x03}, types.PrefixEndBytes([]byte{0x10, 0x02}))
	require.Equal(t, []byte{0x11}, types.PrefixEndBytes([]byte{0x10, 0xff}))
	require.Nil(t, types.PrefixEndBytes([]byte{0xff, 0xff}))
}
