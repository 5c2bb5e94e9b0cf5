// Package app assembles the governance engine into a runnable host:
// a persistent store, a tick counter the host advances, and the
// message/query surfaces of the gov module.
package app

import (
	"encoding/binary"

	dbm "github.com/tendermint/tm-db"
	"github.com/tendermint/tendermint/libs/log"

	"github.com/treasurydao/governance/codec"
	"github.com/treasurydao/governance/pubsub"
	"github.com/treasurydao/governance/store"
	"github.com/treasurydao/governance/types"
	"github.com/treasurydao/governance/x/gov"
)

var keyTick = []byte("tick")

// GovernanceApp owns the store and the clock. Each message is
// delivered at the current tick; only AdvanceTicks moves the clock,
// the engine never does.
type GovernanceApp struct {
	cdc    *codec.Codec
	db     dbm.DB
	ms     *store.Store
	logger log.Logger

	keyMain *types.KVStoreKey
	keyGov  *types.KVStoreKey

	keeper  gov.Keeper
	handler types.Handler
	querier types.Querier
}

// NewGovernanceApp mounts the stores on db and wires the keeper.
// publisher and metrics may be nil.
func NewGovernanceApp(logger log.Logger, db dbm.DB, publisher *pubsub.Publisher, metrics *gov.Metrics) *GovernanceApp {
	cdc := MakeCodec()

	ms := store.NewStore(db)
	keyMain := types.NewKVStoreKey("main")
	keyGov := types.NewKVStoreKey("gov")
	ms.MountKVStore(keyMain)
	ms.MountKVStore(keyGov)

	keeper := gov.NewKeeper(cdc, keyGov, gov.DefaultCodespace, publisher, metrics)

	return &GovernanceApp{
		cdc:     cdc,
		db:      db,
		ms:      ms,
		logger:  logger,
		keyMain: keyMain,
		keyGov:  keyGov,
		keeper:  keeper,
		handler: gov.NewHandler(keeper),
		querier: gov.NewQuerier(keeper),
	}
}

// MakeCodec registers every concrete message type.
func MakeCodec() *codec.Codec {
	cdc := codec.New()
	gov.RegisterCodec(cdc)
	return cdc
}

func (app *GovernanceApp) Codec() *codec.Codec { return app.cdc }
func (app *GovernanceApp) Keeper() gov.Keeper  { return app.keeper }
func (app *GovernanceApp) Logger() log.Logger  { return app.logger }

// Context returns a context over the live store at the current tick.
func (app *GovernanceApp) Context() types.Context {
	return types.NewContext(app.ms, app.CurrentTick(), app.logger)
}

// CurrentTick reads the persisted clock; a fresh database is at 0.
func (app *GovernanceApp) CurrentTick() int64 {
	store := app.ms.GetKVStore(app.keyMain)
	bz := store.Get(keyTick)
	if bz == nil {
		return 0
	}
	return int64(binary.BigEndian.Uint64(bz))
}

// AdvanceTicks moves the clock forward, never backward.
func (app *GovernanceApp) AdvanceTicks(n int64) (int64, types.Error) {
	if n < 0 {
		return 0, types.ErrInternal("the clock only moves forward")
	}
	tick := app.CurrentTick() + n
	store := app.ms.GetKVStore(app.keyMain)
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, uint64(tick))
	store.Set(keyTick, bz)
	return tick, nil
}

// InitGenesis seeds a fresh database. Errors if the id counter is
// already present.
func (app *GovernanceApp) InitGenesis(state gov.GenesisState) error {
	if err := gov.ValidateGenesis(state); err != nil {
		return err
	}
	if err := app.keeper.SetInitialProposalID(app.Context(), state.StartingProposalID); err != nil {
		return err
	}
	for _, voter := range state.Voters {
		if err := app.keeper.RegisterVoter(app.Context(), voter); err != nil {
			return err
		}
	}
	return nil
}

// ExportGenesis dumps the current state in genesis form.
func (app *GovernanceApp) ExportGenesis() gov.GenesisState {
	return gov.WriteGenesis(app.Context(), app.keeper)
}

// DeliverMsg validates and routes one message at the current tick.
func (app *GovernanceApp) DeliverMsg(msg types.Msg) types.Result {
	if err := msg.ValidateBasic(); err != nil {
		return err.Result()
	}
	return app.handler(app.Context(), msg)
}

// Query routes a read-only query at the current tick.
func (app *GovernanceApp) Query(path []string, req []byte) ([]byte, types.Error) {
	return app.querier(app.Context(), path, req)
}
