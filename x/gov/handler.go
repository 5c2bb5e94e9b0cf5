package gov

import (
	"fmt"
	"strconv"

	"github.com/treasurydao/governance/types"
	"github.com/treasurydao/governance/x/gov/tags"
)

// NewHandler routes governance messages. Every message runs against
// a cache-wrapped store that is committed only on an OK result, so a
// failing message leaves no partial writes behind.
func NewHandler(keeper Keeper) types.Handler {
	return func(ctx types.Context, msg types.Msg) types.Result {
		cacheCtx, writeCache := ctx.CacheContext()

		var result types.Result
		switch msg := msg.(type) {
		case MsgRegisterVoter:
			result = handleMsgRegisterVoter(cacheCtx, keeper, msg)
		case MsgSubmitProposal:
			result = handleMsgSubmitProposal(cacheCtx, keeper, msg)
		case MsgVote:
			result = handleMsgVote(cacheCtx, keeper, msg)
		case MsgUpdateProposalStatus:
			result = handleMsgUpdateProposalStatus(cacheCtx, keeper, msg)
		case MsgExecuteProposal:
			result = handleMsgExecuteProposal(cacheCtx, keeper, msg)
		default:
			errMsg := fmt.Sprintf("unrecognized gov msg type: %T", msg)
			return types.ErrUnknownRequest(errMsg).Result()
		}

		if result.IsOK() {
			writeCache()
		}
		return result
	}
}

func handleMsgRegisterVoter(ctx types.Context, keeper Keeper, msg MsgRegisterVoter) types.Result {
	err := keeper.RegisterVoter(ctx, msg.Voter)
	if err != nil {
		return err.Result()
	}

	resTags := types.NewTags(
		[]byte(tags.Action), tags.ActionVoterRegistered,
		[]byte(tags.Voter), []byte(msg.Voter.String()),
	)
	return types.Result{
		Tags: resTags,
	}
}

func handleMsgSubmitProposal(ctx types.Context, keeper Keeper, msg MsgSubmitProposal) types.Result {
	proposal, err := keeper.SubmitProposal(ctx, msg.Title, msg.Description, msg.ProposalType, msg.Params, msg.Options, msg.Proposer)
	if err != nil {
		return err.Result()
	}

	proposalIDBytes := []byte(strconv.FormatInt(proposal.ID, 10))
	resTags := types.NewTags(
		[]byte(tags.Action), tags.ActionProposalSubmitted,
		[]byte(tags.Proposer), []byte(msg.Proposer.String()),
		[]byte(tags.ProposalID), proposalIDBytes,
	)
	return types.Result{
		Data: proposalIDBytes,
		Tags: resTags,
	}
}

func handleMsgVote(ctx types.Context, keeper Keeper, msg MsgVote) types.Result {
	err := keeper.AddVote(ctx, msg.ProposalID, msg.Voter, msg.OptionIndex)
	if err != nil {
		return err.Result()
	}

	resTags := types.NewTags(
		[]byte(tags.Action), tags.ActionVoteCast,
		[]byte(tags.ProposalID), []byte(strconv.FormatInt(msg.ProposalID, 10)),
		[]byte(tags.Voter), []byte(msg.Voter.String()),
		[]byte(tags.Option), []byte(strconv.Itoa(int(msg.OptionIndex))),
	)
	return types.Result{
		Tags: resTags,
	}
}

func handleMsgUpdateProposalStatus(ctx types.Context, keeper Keeper, msg MsgUpdateProposalStatus) types.Result {
	proposal, changed, err := keeper.UpdateProposalStatus(ctx, msg.ProposalID)
	if err != nil {
		return err.Result()
	}
	if !changed {
		// voting window still open, nothing to decide yet
		return types.Result{
			Log: fmt.Sprintf("proposal %d is still in its voting period", msg.ProposalID),
		}
	}

	resTags := types.NewTags(
		[]byte(tags.Action), tags.ActionProposalDecided,
		[]byte(tags.ProposalID), []byte(strconv.FormatInt(msg.ProposalID, 10)),
		[]byte(tags.Status), []byte(proposal.Status.String()),
	)
	return types.Result{
		Data: []byte(proposal.Status.String()),
		Tags: resTags,
	}
}

func handleMsgExecuteProposal(ctx types.Context, keeper Keeper, msg MsgExecuteProposal) types.Result {
	proposal, err := keeper.ExecuteProposal(ctx, msg.ProposalID)
	if err != nil {
		return err.Result()
	}

	resTags := types.NewTags(
		[]byte(tags.Action), tags.ActionProposalExecuted,
		[]byte(tags.ProposalID), []byte(strconv.FormatInt(proposal.ID, 10)),
	)
	return types.Result{
		Tags: resTags,
	}
}
