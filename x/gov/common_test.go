package gov_test

import (
	"github.com/treasurydao/governance/mock"
	"github.com/treasurydao/governance/types"
	"github.com/treasurydao/governance/x/gov"
)

func defaultParams() gov.Parameters {
	return gov.Parameters{
		VotingPeriod:    gov.VotingPeriodSevenDays,
		QuorumThreshold: gov.QuorumThresholdTwenty,
		ExecutionDelay:  gov.ExecutionDelayImmediately,
	}
}

func submitProposal(app *mock.App, tick int64, params gov.Parameters, options []string, proposer types.AccAddress) gov.Proposal {
	proposal, err := app.Keeper.SubmitProposal(app.Context(tick),
		"Fund the relay", "Allocate treasury funds to the relay program",
		gov.ProposalTypeTreasury, params, options, proposer)
	if err != nil {
		panic(err)
	}
	return proposal
}
