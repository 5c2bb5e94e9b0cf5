package gov

import (
	"github.com/treasurydao/governance/types"
)

// Tally computes the decision for a proposal whose voting window has
// closed. It passes only when quorum is met against the live
// registry size and exactly one option holds the maximum vote count
// with at least one vote. A tie or an empty ballot box rejects.
func Tally(ctx types.Context, keeper Keeper, proposal Proposal) (passes bool, tallyResult TallyResult) {
	totalVotes := proposal.TotalVotes()
	totalVoters := keeper.GetTotalVoters(ctx)

	tallyResult = TallyResult{
		TotalVotes:    totalVotes,
		TotalVoters:   totalVoters,
		QuorumMet:     false,
		WinningOption: -1,
		Tied:          false,
	}

	// quorum in ratio form: totalVotes/totalVoters >= pct/100,
	// boundary inclusive, no division
	if totalVoters == 0 || totalVotes*100 < totalVoters*proposal.Params.QuorumThreshold.Percentage() {
		return false, tallyResult
	}
	tallyResult.QuorumMet = true

	var maxCount uint64
	winners := 0
	winner := -1
	for i, count := range proposal.VoteCounts {
		if count > maxCount {
			maxCount = count
			winners = 1
			winner = i
		} else if count == maxCount && count > 0 {
			winners++
		}
	}

	if maxCount == 0 {
		return false, tallyResult
	}
	if winners != 1 {
		tallyResult.Tied = true
		return false, tallyResult
	}

	tallyResult.WinningOption = int32(winner)
	return true, tallyResult
}
