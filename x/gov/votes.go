package gov

import (
	"github.com/treasurydao/governance/types"
)

// Vote is the authoritative (proposal, voter) record: it both
// prevents double voting and answers "what did X vote for".
type Vote struct {
	ProposalID  int64            `json:"proposal_id"`
	Voter       types.AccAddress `json:"voter"`
	OptionIndex uint8            `json:"option_index"`
	CastTick    int64            `json:"cast_tick"`
}
