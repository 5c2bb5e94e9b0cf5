package types

import (
	"github.com/tendermint/tendermint/libs/log"
)

/*
Context carries everything a handler may read from its environment:
the mounted stores, the host clock (block height in ticks), and a
logger. It is an immutable value; With* methods return an updated
copy, so a Context handed to a callee can never mutate the caller's.
*/
type Context struct {
	ms          MultiStore
	blockHeight int64
	chainID     string
	logger      log.Logger
}

// NewContext creates a Context at the given tick. The host advances
// the clock; the engine only ever reads it.
func NewContext(ms MultiStore, blockHeight int64, logger log.Logger) Context {
	if logger == nil {
		logger = log.NewNopLogger()
	}
	return Context{
		ms:          ms,
		blockHeight: blockHeight,
		logger:      logger,
	}
}

// is context nil
func (c Context) IsZero() bool {
	return c.ms == nil
}

func (c Context) MultiStore() MultiStore { return c.ms }

// KVStore fetches a KVStore from the MultiStore.
func (c Context) KVStore(key StoreKey) KVStore {
	return c.ms.GetKVStore(key)
}

// BlockHeight is the host clock's current tick.
func (c Context) BlockHeight() int64 { return c.blockHeight }

func (c Context) ChainID() string { return c.chainID }

func (c Context) Logger() log.Logger { return c.logger }

func (c Context) WithMultiStore(ms MultiStore) Context {
	c.ms = ms
	return c
}

func (c Context) WithBlockHeight(height int64) Context {
	c.blockHeight = height
	return c
}

func (c Context) WithChainID(chainID string) Context {
	c.chainID = chainID
	return c
}

func (c Context) WithLogger(logger log.Logger) Context {
	c.logger = logger
	return c
}

// CacheContext returns a new Context with the multi-store cached and
// a function to write the cache to the underlying store. Mutations
// made through the cached context are discarded unless writeCache is
// called, which gives handlers all-or-nothing semantics.
func (c Context) CacheContext() (cc Context, writeCache func()) {
	cms := c.ms.CacheMultiStore()
	cc = c.WithMultiStore(cms)
	return cc, cms.Write
}
