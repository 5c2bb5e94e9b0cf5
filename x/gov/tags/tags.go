// nolint
package tags

import (
	"github.com/treasurydao/governance/types"
)

var (
	ActionProposalSubmitted = []byte("proposal-submitted")
	ActionVoterRegistered   = []byte("voter-registered")
	ActionVoteCast          = []byte("vote-cast")
	ActionProposalDecided   = []byte("proposal-decided")
	ActionProposalExecuted  = []byte("proposal-executed")

	Action     = types.TagAction
	Proposer   = "proposer"
	ProposalID = "proposal-id"
	Voter      = "voter"
	Option     = "option"
	Status     = "status"
)
