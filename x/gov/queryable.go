package gov

import (
	"fmt"

	"github.com/treasurydao/governance/codec"
	"github.com/treasurydao/governance/types"
)

// query endpoints supported by the governance Querier
const (
	QueryProposal    = "proposal"
	QueryProposalIDs = "proposal-ids"
	QueryProposals   = "proposals"
	QueryVote        = "vote"
	QueryVotes       = "votes"
	QueryResults     = "results"
	QueryOptions     = "options"
	QueryDetailed    = "detailed"
	QueryWinner      = "winner"
	QueryQuorum      = "quorum"
	QueryStats       = "stats"
	QueryTotalVoters = "total-voters"
)

// NewQuerier routes read-only queries. Lookups never fail for an
// absent record: they return JSON null so callers can distinguish
// "not there" from a malformed request.
func NewQuerier(keeper Keeper) types.Querier {
	return func(ctx types.Context, path []string, req []byte) ([]byte, types.Error) {
		switch path[0] {
		case QueryProposal:
			return queryProposal(ctx, req, keeper)
		case QueryProposalIDs:
			return queryProposalIDs(ctx, keeper)
		case QueryProposals:
			return queryProposals(ctx, req, keeper)
		case QueryVote:
			return queryVote(ctx, req, keeper)
		case QueryVotes:
			return queryVotes(ctx, req, keeper)
		case QueryResults:
			return queryResults(ctx, req, keeper)
		case QueryOptions:
			return queryOptions(ctx, req, keeper)
		case QueryDetailed:
			return queryDetailed(ctx, req, keeper)
		case QueryWinner:
			return queryWinner(ctx, req, keeper)
		case QueryQuorum:
			return queryQuorum(ctx, req, keeper)
		case QueryStats:
			return queryStats(ctx, keeper)
		case QueryTotalVoters:
			return queryTotalVoters(ctx, keeper)
		default:
			return nil, types.ErrUnknownRequest(fmt.Sprintf("unknown gov query endpoint %s", path[0]))
		}
	}
}

// Params for queries keyed by proposal id.
type QueryProposalParams struct {
	ProposalID int64 `json:"proposal_id"`
}

// Params for query 'custom/gov/proposals'
type QueryProposalsParams struct {
	Status    ProposalStatus `json:"status"`
	NumLatest int64          `json:"num_latest"`
}

// Params for query 'custom/gov/vote'
type QueryVoteParams struct {
	ProposalID int64            `json:"proposal_id"`
	Voter      types.AccAddress `json:"voter"`
}

// ProposalView is the query shape of a proposal: the stored record
// plus the logical status queries report.
type ProposalView struct {
	Proposal      Proposal       `json:"proposal"`
	LogicalStatus ProposalStatus `json:"logical_status"`
}

// GovStats summarizes the store for dashboards.
type GovStats struct {
	TotalProposals uint64            `json:"total_proposals"`
	ByStatus       map[string]uint64 `json:"by_status"`
	TotalVoters    uint64            `json:"total_voters"`
}

func mustMarshalJSON(cdc *codec.Codec, obj interface{}) ([]byte, types.Error) {
	bz, err := codec.MarshalJSONIndent(cdc, obj)
	if err != nil {
		return nil, types.ErrInternal(fmt.Sprintf("could not marshal result to JSON: %s", err.Error()))
	}
	return bz, nil
}

var nullJSON = []byte("null")

func queryProposal(ctx types.Context, req []byte, keeper Keeper) ([]byte, types.Error) {
	var params QueryProposalParams
	if err := keeper.cdc.UnmarshalJSON(req, &params); err != nil {
		return nil, types.ErrUnknownRequest(fmt.Sprintf("incorrectly formatted request data: %s", err.Error()))
	}
	proposal := keeper.GetProposal(ctx, params.ProposalID)
	if proposal == nil {
		return nullJSON, nil
	}
	return mustMarshalJSON(keeper.cdc, ProposalView{
		Proposal:      *proposal,
		LogicalStatus: keeper.LogicalStatus(ctx, *proposal),
	})
}

func queryProposalIDs(ctx types.Context, keeper Keeper) ([]byte, types.Error) {
	ids := []int64{}
	keeper.IterateProposals(ctx, func(proposal Proposal) bool {
		ids = append(ids, proposal.ID)
		return false
	})
	return mustMarshalJSON(keeper.cdc, ids)
}

func queryProposals(ctx types.Context, req []byte, keeper Keeper) ([]byte, types.Error) {
	var params QueryProposalsParams
	if err := keeper.cdc.UnmarshalJSON(req, &params); err != nil {
		return nil, types.ErrUnknownRequest(fmt.Sprintf("incorrectly formatted request data: %s", err.Error()))
	}
	proposals := keeper.GetProposalsFiltered(ctx, params.Status, params.NumLatest)
	views := make([]ProposalView, 0, len(proposals))
	for _, proposal := range proposals {
		views = append(views, ProposalView{
			Proposal:      proposal,
			LogicalStatus: keeper.LogicalStatus(ctx, proposal),
		})
	}
	return mustMarshalJSON(keeper.cdc, views)
}

func queryVote(ctx types.Context, req []byte, keeper Keeper) ([]byte, types.Error) {
	var params QueryVoteParams
	if err := keeper.cdc.UnmarshalJSON(req, &params); err != nil {
		return nil, types.ErrUnknownRequest(fmt.Sprintf("incorrectly formatted request data: %s", err.Error()))
	}
	vote := keeper.GetVote(ctx, params.ProposalID, params.Voter)
	if vote == nil {
		return nullJSON, nil
	}
	return mustMarshalJSON(keeper.cdc, *vote)
}

func queryVotes(ctx types.Context, req []byte, keeper Keeper) ([]byte, types.Error) {
	var params QueryProposalParams
	if err := keeper.cdc.UnmarshalJSON(req, &params); err != nil {
		return nil, types.ErrUnknownRequest(fmt.Sprintf("incorrectly formatted request data: %s", err.Error()))
	}
	if keeper.GetProposal(ctx, params.ProposalID) == nil {
		return nullJSON, nil
	}
	return mustMarshalJSON(keeper.cdc, keeper.GetVotes(ctx, params.ProposalID))
}

func queryResults(ctx types.Context, req []byte, keeper Keeper) ([]byte, types.Error) {
	var params QueryProposalParams
	if err := keeper.cdc.UnmarshalJSON(req, &params); err != nil {
		return nil, types.ErrUnknownRequest(fmt.Sprintf("incorrectly formatted request data: %s", err.Error()))
	}
	proposal := keeper.GetProposal(ctx, params.ProposalID)
	if proposal == nil {
		return nullJSON, nil
	}
	return mustMarshalJSON(keeper.cdc, proposal.VoteCounts)
}

func queryOptions(ctx types.Context, req []byte, keeper Keeper) ([]byte, types.Error) {
	var params QueryProposalParams
	if err := keeper.cdc.UnmarshalJSON(req, &params); err != nil {
		return nil, types.ErrUnknownRequest(fmt.Sprintf("incorrectly formatted request data: %s", err.Error()))
	}
	proposal := keeper.GetProposal(ctx, params.ProposalID)
	if proposal == nil {
		return nullJSON, nil
	}
	return mustMarshalJSON(keeper.cdc, proposal.Options)
}

// DetailedResult pairs every option label with its count, plus the
// quorum standing at query time.
type DetailedResult struct {
	ProposalID  int64          `json:"proposal_id"`
	Status      ProposalStatus `json:"status"`
	Options     []OptionCount  `json:"options"`
	TotalVotes  uint64         `json:"total_votes"`
	TotalVoters uint64         `json:"total_voters"`
	QuorumMet   bool           `json:"quorum_met"`
}

type OptionCount struct {
	Label string `json:"label"`
	Count uint64 `json:"count"`
}

func queryDetailed(ctx types.Context, req []byte, keeper Keeper) ([]byte, types.Error) {
	var params QueryProposalParams
	if err := keeper.cdc.UnmarshalJSON(req, &params); err != nil {
		return nil, types.ErrUnknownRequest(fmt.Sprintf("incorrectly formatted request data: %s", err.Error()))
	}
	proposal := keeper.GetProposal(ctx, params.ProposalID)
	if proposal == nil {
		return nullJSON, nil
	}
	options := make([]OptionCount, len(proposal.Options))
	for i, label := range proposal.Options {
		options[i] = OptionCount{Label: label, Count: proposal.VoteCounts[i]}
	}
	return mustMarshalJSON(keeper.cdc, DetailedResult{
		ProposalID:  proposal.ID,
		Status:      keeper.LogicalStatus(ctx, *proposal),
		Options:     options,
		TotalVotes:  proposal.TotalVotes(),
		TotalVoters: keeper.GetTotalVoters(ctx),
		QuorumMet:   keeper.HasReachedQuorum(ctx, *proposal),
	})
}

// WinnerResult reports the winning option of a decided proposal.
// Winner is null while the proposal is undecided or when no single
// option won.
type WinnerResult struct {
	ProposalID int64   `json:"proposal_id"`
	Winner     *string `json:"winner"`
	Tied       bool    `json:"tied"`
}

func queryWinner(ctx types.Context, req []byte, keeper Keeper) ([]byte, types.Error) {
	var params QueryProposalParams
	if err := keeper.cdc.UnmarshalJSON(req, &params); err != nil {
		return nil, types.ErrUnknownRequest(fmt.Sprintf("incorrectly formatted request data: %s", err.Error()))
	}
	proposal := keeper.GetProposal(ctx, params.ProposalID)
	if proposal == nil {
		return nullJSON, nil
	}
	result := WinnerResult{ProposalID: proposal.ID, Tied: proposal.TallyResult.Tied}
	if idx := proposal.TallyResult.WinningOption; idx >= 0 && int(idx) < len(proposal.Options) {
		label := proposal.Options[idx]
		result.Winner = &label
	}
	return mustMarshalJSON(keeper.cdc, result)
}

// QuorumStanding is the live quorum check for a proposal: the
// current vote count measured against the current registry size.
type QuorumStanding struct {
	ProposalID   int64  `json:"proposal_id"`
	TotalVotes   uint64 `json:"total_votes"`
	TotalVoters  uint64 `json:"total_voters"`
	ThresholdPct uint64 `json:"threshold_pct"`
	QuorumMet    bool   `json:"quorum_met"`
}

func queryQuorum(ctx types.Context, req []byte, keeper Keeper) ([]byte, types.Error) {
	var params QueryProposalParams
	if err := keeper.cdc.UnmarshalJSON(req, &params); err != nil {
		return nil, types.ErrUnknownRequest(fmt.Sprintf("incorrectly formatted request data: %s", err.Error()))
	}
	proposal := keeper.GetProposal(ctx, params.ProposalID)
	if proposal == nil {
		return nullJSON, nil
	}
	return mustMarshalJSON(keeper.cdc, QuorumStanding{
		ProposalID:   proposal.ID,
		TotalVotes:   proposal.TotalVotes(),
		TotalVoters:  keeper.GetTotalVoters(ctx),
		ThresholdPct: proposal.Params.QuorumThreshold.Percentage(),
		QuorumMet:    keeper.HasReachedQuorum(ctx, *proposal),
	})
}

func queryStats(ctx types.Context, keeper Keeper) ([]byte, types.Error) {
	stats := GovStats{
		ByStatus:    map[string]uint64{},
		TotalVoters: keeper.GetTotalVoters(ctx),
	}
	keeper.IterateProposals(ctx, func(proposal Proposal) bool {
		stats.TotalProposals++
		stats.ByStatus[keeper.LogicalStatus(ctx, proposal).String()]++
		return false
	})
	return mustMarshalJSON(keeper.cdc, stats)
}

func queryTotalVoters(ctx types.Context, keeper Keeper) ([]byte, types.Error) {
	return mustMarshalJSON(keeper.cdc, keeper.GetTotalVoters(ctx))
}
