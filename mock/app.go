// Package mock provides a lightweight governance environment for
// tests: an in-memory store, a keeper wired to it, and deterministic
// addresses.
package mock

import (
	"encoding/binary"

	dbm "github.com/tendermint/tm-db"
	"github.com/tendermint/tendermint/libs/log"

	"github.com/treasurydao/governance/codec"
	"github.com/treasurydao/governance/store"
	"github.com/treasurydao/governance/types"
	"github.com/treasurydao/governance/x/gov"
)

// App bundles everything a keeper-level test needs.
type App struct {
	Cdc     *codec.Codec
	Store   *store.Store
	GovKey  *types.KVStoreKey
	Keeper  gov.Keeper
	Handler types.Handler
	Querier types.Querier
}

// NewApp builds a fresh in-memory governance app with the id counter
// seeded at 1 and an empty registry.
func NewApp() *App {
	cdc := codec.New()
	gov.RegisterCodec(cdc)

	db := dbm.NewMemDB()
	ms := store.NewStore(db)
	govKey := types.NewKVStoreKey("gov")
	ms.MountKVStore(govKey)

	keeper := gov.NewKeeper(cdc, govKey, gov.DefaultCodespace, nil, gov.NopMetrics())

	app := &App{
		Cdc:     cdc,
		Store:   ms,
		GovKey:  govKey,
		Keeper:  keeper,
		Handler: gov.NewHandler(keeper),
		Querier: gov.NewQuerier(keeper),
	}

	ctx := app.Context(0)
	gov.InitGenesis(ctx, keeper, gov.DefaultGenesisState())
	return app
}

// Context returns a context over the app's store at the given tick.
func (app *App) Context(tick int64) types.Context {
	return types.NewContext(app.Store, tick, log.NewNopLogger())
}

// Addrs returns n distinct deterministic addresses.
func Addrs(n int) []types.AccAddress {
	addrs := make([]types.AccAddress, n)
	for i := range addrs {
		addr := make([]byte, types.AddrLen)
		binary.BigEndian.PutUint64(addr[types.AddrLen-8:], uint64(i+1))
		addrs[i] = addr
	}
	return addrs
}

// RegisterVoters registers every address at the given tick, panicking
// on failure. Intended for test setup only.
func (app *App) RegisterVoters(tick int64, addrs []types.AccAddress) {
	ctx := app.Context(tick)
	for _, addr := range addrs {
		if err := app.Keeper.RegisterVoter(ctx, addr); err != nil {
			panic(err)
		}
	}
}
