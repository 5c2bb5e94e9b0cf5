package gov_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/treasurydao/governance/mock"
	"github.com/treasurydao/governance/types"
	"github.com/treasurydao/governance/x/gov"
)

func TestValidateGenesis(t *testing.T) {
	addrs := mock.Addrs(2)
	require.NoError(t, gov.ValidateGenesis(gov.DefaultGenesisState()))
	require.NoError(t, gov.ValidateGenesis(gov.NewGenesisState(5, addrs)))

	require.Error(t, gov.ValidateGenesis(gov.NewGenesisState(0, nil)))
	require.Error(t, gov.ValidateGenesis(gov.NewGenesisState(1, []types.AccAddress{addrs[0][:3]})))
	require.Error(t, gov.ValidateGenesis(gov.NewGenesisState(1, []types.AccAddress{addrs[0], addrs[0]})))
}

func TestGenesisRoundTrip(t *testing.T) {
	app := mock.NewApp()
	addrs := mock.Addrs(3)
	app.RegisterVoters(0, addrs)
	submitProposal(app, 0, defaultParams(), []string{"a"}, addrs[0])

	state := gov.WriteGenesis(app.Context(0), app.Keeper)
	require.Equal(t, int64(2), state.StartingProposalID)
	require.Len(t, state.Voters, 3)
	require.NoError(t, gov.ValidateGenesis(state))

	// seeding twice is rejected
	require.NotNil(t, app.Keeper.SetInitialProposalID(app.Context(0), 1))
}
