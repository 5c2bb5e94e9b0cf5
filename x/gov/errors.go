package gov

import (
	"fmt"

	"github.com/treasurydao/governance/types"
)

// Governance errors reserve 100 ~ 199.
const (
	DefaultCodespace types.CodespaceType = 2

	CodeUnknownProposal              types.CodeType = 101
	CodeProposalNotActive            types.CodeType = 102
	CodeVotingPeriodEnded            types.CodeType = 103
	CodeAlreadyVoted                 types.CodeType = 104
	CodeNotAuthorized                types.CodeType = 105
	CodeProposalNotReadyForExecution types.CodeType = 106
	CodeInvalidProposal              types.CodeType = 107
	CodeAlreadyRegistered            types.CodeType = 108
)

func ErrUnknownProposal(codespace types.CodespaceType, proposalID int64) types.Error {
	return types.NewError(codespace, CodeUnknownProposal, fmt.Sprintf("unknown proposal with id %d", proposalID))
}

func ErrProposalNotActive(codespace types.CodespaceType, proposalID int64, status ProposalStatus) types.Error {
	return types.NewError(codespace, CodeProposalNotActive, fmt.Sprintf("proposal %d is not active (status: %s)", proposalID, status))
}

func ErrVotingPeriodEnded(codespace types.CodespaceType, proposalID int64) types.Error {
	return types.NewError(codespace, CodeVotingPeriodEnded, fmt.Sprintf("voting period for proposal %d has ended", proposalID))
}

func ErrAlreadyVoted(codespace types.CodespaceType, proposalID int64, voter types.AccAddress) types.Error {
	return types.NewError(codespace, CodeAlreadyVoted, fmt.Sprintf("%s already voted on proposal %d", voter, proposalID))
}

func ErrNotAuthorized(codespace types.CodespaceType, msg string) types.Error {
	return types.NewError(codespace, CodeNotAuthorized, msg)
}

func ErrProposalNotReadyForExecution(codespace types.CodespaceType, proposalID int64, msg string) types.Error {
	return types.NewError(codespace, CodeProposalNotReadyForExecution, fmt.Sprintf("proposal %d is not ready for execution: %s", proposalID, msg))
}

func ErrInvalidProposal(codespace types.CodespaceType, msg string) types.Error {
	return types.NewError(codespace, CodeInvalidProposal, msg)
}

func ErrAlreadyRegistered(codespace types.CodespaceType, voter types.AccAddress) types.Error {
	return types.NewError(codespace, CodeAlreadyRegistered, fmt.Sprintf("%s is already a registered voter", voter))
}
