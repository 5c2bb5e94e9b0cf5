package gov_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/treasurydao/governance/mock"
	"github.com/treasurydao/governance/x/gov"
)

func query(t *testing.T, app *mock.App, tick int64, path string, params interface{}) []byte {
	var req []byte
	if params != nil {
		var err error
		req, err = app.Cdc.MarshalJSON(params)
		require.NoError(t, err)
	}
	bz, qerr := app.Querier(app.Context(tick), []string{path}, req)
	require.Nil(t, qerr)
	return bz
}

func TestQueryProposalAbsentIsNull(t *testing.T) {
	app := mock.NewApp()
	bz := query(t, app, 0, gov.QueryProposal, gov.QueryProposalParams{ProposalID: 7})
	require.Equal(t, "null", string(bz))

	bz = query(t, app, 0, gov.QueryWinner, gov.QueryProposalParams{ProposalID: 7})
	require.Equal(t, "null", string(bz))

	bz = query(t, app, 0, gov.QueryVote, gov.QueryVoteParams{ProposalID: 7, Voter: mock.Addrs(1)[0]})
	require.Equal(t, "null", string(bz))
}

func TestQueryUnknownPath(t *testing.T) {
	app := mock.NewApp()
	_, err := app.Querier(app.Context(0), []string{"nonsense"}, nil)
	require.NotNil(t, err)
}

func TestQueryProposalView(t *testing.T) {
	app := mock.NewApp()
	addrs := mock.Addrs(1)
	app.RegisterVoters(0, addrs)
	proposal := submitProposal(app, 0, defaultParams(), []string{"a", "b"}, addrs[0])

	bz := query(t, app, 1, gov.QueryProposal, gov.QueryProposalParams{ProposalID: proposal.ID})
	var view gov.ProposalView
	require.NoError(t, app.Cdc.UnmarshalJSON(bz, &view))
	require.Equal(t, proposal.ID, view.Proposal.ID)
	require.Equal(t, gov.StatusActive, view.LogicalStatus)

	// lapsed window projects Expired without touching storage
	bz = query(t, app, proposal.VotingEndTick, gov.QueryProposal, gov.QueryProposalParams{ProposalID: proposal.ID})
	require.NoError(t, app.Cdc.UnmarshalJSON(bz, &view))
	require.Equal(t, gov.StatusExpired, view.LogicalStatus)
	require.Equal(t, gov.StatusActive, view.Proposal.Status)
}

func TestQueryProposalIDs(t *testing.T) {
	app := mock.NewApp()
	addrs := mock.Addrs(1)
	submitProposal(app, 0, defaultParams(), []string{"a"}, addrs[0])
	submitProposal(app, 0, defaultParams(), []string{"b"}, addrs[0])

	bz := query(t, app, 0, gov.QueryProposalIDs, nil)
	var ids []int64
	require.NoError(t, app.Cdc.UnmarshalJSON(bz, &ids))
	require.Equal(t, []int64{1, 2}, ids)
}

func TestQueryDetailedAndWinner(t *testing.T) {
	app := mock.NewApp()
	addrs := mock.Addrs(5)
	app.RegisterVoters(0, addrs)
	proposal := submitProposal(app, 0, defaultParams(), []string{"approve", "defer"}, addrs[0])

	ctx := app.Context(1)
	require.Nil(t, app.Keeper.AddVote(ctx, proposal.ID, addrs[0], 0))
	require.Nil(t, app.Keeper.AddVote(ctx, proposal.ID, addrs[1], 0))
	require.Nil(t, app.Keeper.AddVote(ctx, proposal.ID, addrs[2], 1))

	bz := query(t, app, 1, gov.QueryDetailed, gov.QueryProposalParams{ProposalID: proposal.ID})
	var detailed gov.DetailedResult
	require.NoError(t, app.Cdc.UnmarshalJSON(bz, &detailed))
	require.Equal(t, []gov.OptionCount{{Label: "approve", Count: 2}, {Label: "defer", Count: 1}}, detailed.Options)
	require.Equal(t, uint64(3), detailed.TotalVotes)
	require.True(t, detailed.QuorumMet)

	// winner is null until the proposal is decided
	bz = query(t, app, 1, gov.QueryWinner, gov.QueryProposalParams{ProposalID: proposal.ID})
	var winner gov.WinnerResult
	require.NoError(t, app.Cdc.UnmarshalJSON(bz, &winner))
	require.Nil(t, winner.Winner)

	_, _, err := app.Keeper.UpdateProposalStatus(app.Context(proposal.VotingEndTick), proposal.ID)
	require.Nil(t, err)

	bz = query(t, app, proposal.VotingEndTick, gov.QueryWinner, gov.QueryProposalParams{ProposalID: proposal.ID})
	require.NoError(t, app.Cdc.UnmarshalJSON(bz, &winner))
	require.NotNil(t, winner.Winner)
	require.Equal(t, "approve", *winner.Winner)
	require.False(t, winner.Tied)
}

func TestQueryResultsAndOptions(t *testing.T) {
	app := mock.NewApp()
	addrs := mock.Addrs(2)
	app.RegisterVoters(0, addrs)
	proposal := submitProposal(app, 0, defaultParams(), []string{"a", "b", "c"}, addrs[0])
	require.Nil(t, app.Keeper.AddVote(app.Context(1), proposal.ID, addrs[1], 2))

	bz := query(t, app, 1, gov.QueryResults, gov.QueryProposalParams{ProposalID: proposal.ID})
	var counts []uint64
	require.NoError(t, app.Cdc.UnmarshalJSON(bz, &counts))
	require.Equal(t, []uint64{0, 0, 1}, counts)

	bz = query(t, app, 1, gov.QueryOptions, gov.QueryProposalParams{ProposalID: proposal.ID})
	var options []string
	require.NoError(t, app.Cdc.UnmarshalJSON(bz, &options))
	require.Equal(t, []string{"a", "b", "c"}, options)
}

func TestQueryStats(t *testing.T) {
	app := mock.NewApp()
	addrs := mock.Addrs(3)
	app.RegisterVoters(0, addrs)

	first := submitProposal(app, 0, defaultParams(), []string{"a", "b"}, addrs[0])
	submitProposal(app, 0, defaultParams(), []string{"c"}, addrs[1])

	require.Nil(t, app.Keeper.AddVote(app.Context(1), first.ID, addrs[0], 0))
	_, _, err := app.Keeper.UpdateProposalStatus(app.Context(first.VotingEndTick), first.ID)
	require.Nil(t, err)

	bz := query(t, app, first.VotingEndTick, gov.QueryStats, nil)
	var stats gov.GovStats
	require.NoError(t, app.Cdc.UnmarshalJSON(bz, &stats))
	require.Equal(t, uint64(2), stats.TotalProposals)
	require.Equal(t, uint64(3), stats.TotalVoters)
	require.Equal(t, uint64(1), stats.ByStatus[gov.StatusPassed.String()])
	require.Equal(t, uint64(1), stats.ByStatus[gov.StatusExpired.String()])
}

func TestQueryQuorum(t *testing.T) {
	app := mock.NewApp()
	addrs := mock.Addrs(5)
	app.RegisterVoters(0, addrs)
	proposal := submitProposal(app, 0, defaultParams(), []string{"a"}, addrs[0])
	require.Nil(t, app.Keeper.AddVote(app.Context(1), proposal.ID, addrs[0], 0))

	bz := query(t, app, 1, gov.QueryQuorum, gov.QueryProposalParams{ProposalID: proposal.ID})
	var standing gov.QuorumStanding
	require.NoError(t, app.Cdc.UnmarshalJSON(bz, &standing))
	require.True(t, standing.QuorumMet)
	require.Equal(t, uint64(20), standing.ThresholdPct)
	require.Equal(t, uint64(1), standing.TotalVotes)
	require.Equal(t, uint64(5), standing.TotalVoters)
}
