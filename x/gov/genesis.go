package gov

import (
	"fmt"

	"github.com/treasurydao/governance/types"
)

// GenesisState - all gov state that must be provided at genesis
type GenesisState struct {
	StartingProposalID int64              `json:"starting_proposal_id"`
	Voters             []types.AccAddress `json:"voters"`
}

func NewGenesisState(startingProposalID int64, voters []types.AccAddress) GenesisState {
	return GenesisState{
		StartingProposalID: startingProposalID,
		Voters:             voters,
	}
}

// DefaultGenesisState starts ids at 1 with an empty registry.
func DefaultGenesisState() GenesisState {
	return GenesisState{
		StartingProposalID: 1,
		Voters:             nil,
	}
}

// ValidateGenesis rejects a state the keeper could not have produced.
func ValidateGenesis(data GenesisState) error {
	if data.StartingProposalID <= 0 {
		return fmt.Errorf("starting proposal id must be positive, got %d", data.StartingProposalID)
	}
	seen := make(map[string]bool, len(data.Voters))
	for _, voter := range data.Voters {
		if len(voter) != types.AddrLen {
			return fmt.Errorf("invalid voter address %s", voter)
		}
		if seen[string(voter)] {
			return fmt.Errorf("duplicate voter address %s", voter)
		}
		seen[string(voter)] = true
	}
	return nil
}

// InitGenesis - store genesis state
func InitGenesis(ctx types.Context, keeper Keeper, data GenesisState) {
	if err := keeper.SetInitialProposalID(ctx, data.StartingProposalID); err != nil {
		panic(err)
	}
	for _, voter := range data.Voters {
		if err := keeper.RegisterVoter(ctx, voter); err != nil {
			panic(err)
		}
	}
}

// WriteGenesis - output the keeper's state back to genesis form
func WriteGenesis(ctx types.Context, keeper Keeper) GenesisState {
	startingProposalID, err := keeper.NextProposalID(ctx)
	if err != nil {
		panic(err)
	}
	var voters []types.AccAddress
	keeper.IterateVoters(ctx, func(voter types.AccAddress) bool {
		voters = append(voters, voter)
		return false
	})
	return GenesisState{
		StartingProposalID: startingProposalID,
		Voters:             voters,
	}
}
