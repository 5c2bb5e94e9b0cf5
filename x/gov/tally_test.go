package gov_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/treasurydao/governance/mock"
	"github.com/treasurydao/governance/x/gov"
)

func TestTallyQuorumBoundary(t *testing.T) {
	// 5 voters, 20% threshold: exactly 1 vote meets quorum
	app := mock.NewApp()
	addrs := mock.Addrs(5)
	app.RegisterVoters(0, addrs)

	proposal := submitProposal(app, 0, defaultParams(), []string{"a", "b"}, addrs[0])
	require.Nil(t, app.Keeper.AddVote(app.Context(1), proposal.ID, addrs[0], 0))

	stored := app.Keeper.GetProposal(app.Context(1), proposal.ID)
	passes, result := gov.Tally(app.Context(1), app.Keeper, *stored)
	require.True(t, passes)
	require.True(t, result.QuorumMet)
	require.Equal(t, int32(0), result.WinningOption)
	require.Equal(t, uint64(1), result.TotalVotes)
	require.Equal(t, uint64(5), result.TotalVoters)
}

func TestTallyQuorumNotMet(t *testing.T) {
	// 21 voters, 5% threshold: 1 vote is 1/21 < 5%
	app := mock.NewApp()
	addrs := mock.Addrs(21)
	app.RegisterVoters(0, addrs)

	params := defaultParams()
	params.QuorumThreshold = gov.QuorumThresholdFive
	proposal := submitProposal(app, 0, params, []string{"a", "b"}, addrs[0])
	require.Nil(t, app.Keeper.AddVote(app.Context(1), proposal.ID, addrs[0], 0))

	stored := app.Keeper.GetProposal(app.Context(1), proposal.ID)
	passes, result := gov.Tally(app.Context(1), app.Keeper, *stored)
	require.False(t, passes)
	require.False(t, result.QuorumMet)
	require.Equal(t, int32(-1), result.WinningOption)
}

func TestTallyTie(t *testing.T) {
	// 2 voters, 5% threshold, one vote on each of two options:
	// quorum met but no unique winner
	app := mock.NewApp()
	addrs := mock.Addrs(2)
	app.RegisterVoters(0, addrs)

	params := defaultParams()
	params.QuorumThreshold = gov.QuorumThresholdFive
	proposal := submitProposal(app, 0, params, []string{"a", "b"}, addrs[0])
	ctx := app.Context(1)
	require.Nil(t, app.Keeper.AddVote(ctx, proposal.ID, addrs[0], 0))
	require.Nil(t, app.Keeper.AddVote(ctx, proposal.ID, addrs[1], 1))

	stored := app.Keeper.GetProposal(ctx, proposal.ID)
	passes, result := gov.Tally(ctx, app.Keeper, *stored)
	require.False(t, passes)
	require.True(t, result.QuorumMet)
	require.True(t, result.Tied)
	require.Equal(t, int32(-1), result.WinningOption)

	decided, _, err := app.Keeper.UpdateProposalStatus(app.Context(proposal.VotingEndTick), proposal.ID)
	require.Nil(t, err)
	require.Equal(t, gov.StatusRejected, decided.Status)
}

func TestTallyNoVotes(t *testing.T) {
	app := mock.NewApp()
	addrs := mock.Addrs(1)
	app.RegisterVoters(0, addrs)
	proposal := submitProposal(app, 0, defaultParams(), []string{"a"}, addrs[0])

	stored := app.Keeper.GetProposal(app.Context(1), proposal.ID)
	passes, result := gov.Tally(app.Context(1), app.Keeper, *stored)
	require.False(t, passes)
	require.False(t, result.QuorumMet)
	require.False(t, result.Tied)
}

func TestTallyEmptyRegistry(t *testing.T) {
	app := mock.NewApp()
	addrs := mock.Addrs(1)
	proposal := submitProposal(app, 0, defaultParams(), []string{"a"}, addrs[0])

	stored := app.Keeper.GetProposal(app.Context(1), proposal.ID)
	passes, result := gov.Tally(app.Context(1), app.Keeper, *stored)
	require.False(t, passes)
	require.False(t, result.QuorumMet)
	require.Equal(t, uint64(0), result.TotalVoters)
}

func TestTallyRegistryGrowth(t *testing.T) {
	// the quorum denominator is live: registrations after creation
	// dilute earlier votes
	app := mock.NewApp()
	addrs := mock.Addrs(10)
	app.RegisterVoters(0, addrs[:2])

	proposal := submitProposal(app, 0, defaultParams(), []string{"a", "b"}, addrs[0])
	ctx := app.Context(1)
	require.Nil(t, app.Keeper.AddVote(ctx, proposal.ID, addrs[0], 0))

	stored := app.Keeper.GetProposal(ctx, proposal.ID)
	passes, _ := gov.Tally(ctx, app.Keeper, *stored)
	require.True(t, passes) // 1/2 = 50% >= 20%

	app.RegisterVoters(2, addrs[2:])
	passes, result := gov.Tally(app.Context(3), app.Keeper, *stored)
	require.False(t, passes) // 1/10 = 10% < 20%
	require.Equal(t, uint64(10), result.TotalVoters)
}

func TestHasReachedQuorum(t *testing.T) {
	app := mock.NewApp()
	addrs := mock.Addrs(4)
	app.RegisterVoters(0, addrs)

	params := defaultParams()
	params.QuorumThreshold = gov.QuorumThresholdTwentyFive
	proposal := submitProposal(app, 0, params, []string{"a"}, addrs[0])

	ctx := app.Context(1)
	stored := app.Keeper.GetProposal(ctx, proposal.ID)
	require.False(t, app.Keeper.HasReachedQuorum(ctx, *stored))

	require.Nil(t, app.Keeper.AddVote(ctx, proposal.ID, addrs[0], 0))
	stored = app.Keeper.GetProposal(ctx, proposal.ID)
	require.True(t, app.Keeper.HasReachedQuorum(ctx, *stored)) // 1/4 = 25% >= 25%
}
