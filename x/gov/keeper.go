package gov

import (
	"encoding/binary"
	"fmt"

	"github.com/treasurydao/governance/codec"
	"github.com/treasurydao/governance/pubsub"
	"github.com/treasurydao/governance/types"
)

// Keeper owns the governance store: the proposal table, the per
// proposal vote records and the voter registry. All state access
// goes through it; handlers and queriers never touch the store
// directly.
type Keeper struct {
	// The reference to the governance store key
	storeKey types.StoreKey

	// The codec for binary encoding/decoding.
	cdc *codec.Codec

	// Reserved codespace
	codespace types.CodespaceType

	// Optional event publisher, nil-safe.
	publisher *pubsub.Publisher

	metrics *Metrics
}

// NewKeeper returns a governance keeper.
func NewKeeper(cdc *codec.Codec, key types.StoreKey, codespace types.CodespaceType, publisher *pubsub.Publisher, metrics *Metrics) Keeper {
	if metrics == nil {
		metrics = NopMetrics()
	}
	return Keeper{
		storeKey:  key,
		cdc:       cdc,
		codespace: codespace,
		publisher: publisher,
		metrics:   metrics,
	}
}

// Codespace returns the keeper's error codespace.
func (keeper Keeper) Codespace() types.CodespaceType {
	return keeper.codespace
}

// =====================================================================
// Proposals

// SubmitProposal stores a new Active proposal under the next id and
// opens its voting window at the current tick.
func (keeper Keeper) SubmitProposal(ctx types.Context, title, description string, proposalType ProposalKind, params Parameters, options []string, proposer types.AccAddress) (Proposal, types.Error) {
	proposalID, err := keeper.getNewProposalID(ctx)
	if err != nil {
		return Proposal{}, err
	}

	proposal := Proposal{
		ID:            proposalID,
		Title:         title,
		Description:   description,
		ProposalType:  proposalType,
		Params:        params,
		Options:       options,
		Proposer:      proposer,
		Status:        StatusActive,
		VoteCounts:    make([]uint64, len(options)),
		SubmitTick:    ctx.BlockHeight(),
		VotingEndTick: ctx.BlockHeight() + params.VotingPeriod.ToTicks(),
		DecidedTick:   0,
		TallyResult:   EmptyTallyResult(),
	}
	keeper.SetProposal(ctx, proposal)

	keeper.metrics.ProposalsSubmitted.Add(1)
	keeper.metrics.ActiveProposals.Add(1)
	keeper.publish(ProposalCreatedEvent{
		ProposalID:    proposal.ID,
		Proposer:      proposer,
		ProposalType:  proposalType,
		Options:       len(options),
		VotingEndTick: proposal.VotingEndTick,
	})
	ctx.Logger().Info("submitted proposal", "proposalID", proposal.ID, "votingEndTick", proposal.VotingEndTick)

	return proposal, nil
}

// GetProposal returns the proposal stored under the given id, or nil.
func (keeper Keeper) GetProposal(ctx types.Context, proposalID int64) *Proposal {
	store := ctx.KVStore(keeper.storeKey)
	bz := store.Get(KeyProposal(proposalID))
	if bz == nil {
		return nil
	}

	var proposal Proposal
	keeper.cdc.MustUnmarshalBinaryLengthPrefixed(bz, &proposal)
	return &proposal
}

// SetProposal writes the proposal under its own id.
func (keeper Keeper) SetProposal(ctx types.Context, proposal Proposal) {
	store := ctx.KVStore(keeper.storeKey)
	bz := keeper.cdc.MustMarshalBinaryLengthPrefixed(proposal)
	store.Set(KeyProposal(proposal.ID), bz)
}

// IterateProposals calls cb on every stored proposal in id order
// until cb returns true.
func (keeper Keeper) IterateProposals(ctx types.Context, cb func(proposal Proposal) (stop bool)) {
	store := ctx.KVStore(keeper.storeKey)
	iterator := types.KVStorePrefixIterator(store, KeyProposalsPrefix())
	defer iterator.Close()
	for ; iterator.Valid(); iterator.Next() {
		var proposal Proposal
		keeper.cdc.MustUnmarshalBinaryLengthPrefixed(iterator.Value(), &proposal)
		if cb(proposal) {
			break
		}
	}
}

// GetProposalsFiltered returns up to numLatest proposals matching the
// given status. StatusNil matches everything; numLatest <= 0 means no
// limit. Status matching uses the logical status, so proposals whose
// voting window lapsed without a status update filter as Expired.
func (keeper Keeper) GetProposalsFiltered(ctx types.Context, status ProposalStatus, numLatest int64) []Proposal {
	matching := []Proposal{}
	keeper.IterateProposals(ctx, func(proposal Proposal) bool {
		if validProposalStatus(status) && keeper.LogicalStatus(ctx, proposal) != status {
			return false
		}
		matching = append(matching, proposal)
		return numLatest > 0 && int64(len(matching)) >= numLatest
	})
	return matching
}

// NextProposalID peeks at the id the next submission will get.
func (keeper Keeper) NextProposalID(ctx types.Context) (int64, types.Error) {
	store := ctx.KVStore(keeper.storeKey)
	bz := store.Get(keyNextProposalID)
	if bz == nil {
		return 0, types.ErrInternal("initial proposal ID never set")
	}
	var proposalID int64
	keeper.cdc.MustUnmarshalBinaryLengthPrefixed(bz, &proposalID)
	return proposalID, nil
}

// Gets the next available ProposalID and increments it
func (keeper Keeper) getNewProposalID(ctx types.Context) (proposalID int64, err types.Error) {
	proposalID, err = keeper.NextProposalID(ctx)
	if err != nil {
		return -1, err
	}
	store := ctx.KVStore(keeper.storeKey)
	bz := keeper.cdc.MustMarshalBinaryLengthPrefixed(proposalID + 1)
	store.Set(keyNextProposalID, bz)
	return proposalID, nil
}

// SetInitialProposalID seeds the id counter at genesis. Fails if the
// counter already exists.
func (keeper Keeper) SetInitialProposalID(ctx types.Context, proposalID int64) types.Error {
	store := ctx.KVStore(keeper.storeKey)
	if store.Get(keyNextProposalID) != nil {
		return types.ErrInternal("initial proposal ID already set")
	}
	bz := keeper.cdc.MustMarshalBinaryLengthPrefixed(proposalID)
	store.Set(keyNextProposalID, bz)
	return nil
}

// =====================================================================
// Voter registry

// RegisterVoter adds the address to the registry and bumps the
// registry counter.
func (keeper Keeper) RegisterVoter(ctx types.Context, voter types.AccAddress) types.Error {
	store := ctx.KVStore(keeper.storeKey)
	key := KeyVoter(voter)
	if store.Has(key) {
		return ErrAlreadyRegistered(keeper.codespace, voter)
	}
	store.Set(key, []byte{0x01})
	total := keeper.GetTotalVoters(ctx) + 1
	keeper.setTotalVoters(ctx, total)

	keeper.metrics.RegisteredVoters.Set(float64(total))
	keeper.publish(VoterRegisteredEvent{
		Voter:       voter,
		TotalVoters: total,
		Tick:        ctx.BlockHeight(),
	})
	ctx.Logger().Info("registered voter", "voter", voter.String(), "totalVoters", total)
	return nil
}

// IsVoterRegistered reports registry membership.
func (keeper Keeper) IsVoterRegistered(ctx types.Context, voter types.AccAddress) bool {
	store := ctx.KVStore(keeper.storeKey)
	return store.Has(KeyVoter(voter))
}

// GetTotalVoters returns the current registry size. This is read
// live at decision time, so registrations after a proposal's
// creation still count toward its quorum denominator.
func (keeper Keeper) GetTotalVoters(ctx types.Context) uint64 {
	store := ctx.KVStore(keeper.storeKey)
	bz := store.Get(keyTotalVoters)
	if bz == nil {
		return 0
	}
	return binary.BigEndian.Uint64(bz)
}

func (keeper Keeper) setTotalVoters(ctx types.Context, total uint64) {
	store := ctx.KVStore(keeper.storeKey)
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, total)
	store.Set(keyTotalVoters, bz)
}

// IterateVoters calls cb on every registered voter until cb returns
// true.
func (keeper Keeper) IterateVoters(ctx types.Context, cb func(voter types.AccAddress) (stop bool)) {
	store := ctx.KVStore(keeper.storeKey)
	iterator := types.KVStorePrefixIterator(store, KeyVotersPrefix())
	defer iterator.Close()
	for ; iterator.Valid(); iterator.Next() {
		if cb(VoterFromKey(iterator.Key())) {
			break
		}
	}
}

// =====================================================================
// Votes

// AddVote records one vote for the given option and bumps the
// proposal's per option count. Only registered voters may vote; one
// account, one vote, forever: there is no vote change or withdrawal.
func (keeper Keeper) AddVote(ctx types.Context, proposalID int64, voter types.AccAddress, optionIndex uint8) types.Error {
	proposal := keeper.GetProposal(ctx, proposalID)
	if proposal == nil {
		return ErrUnknownProposal(keeper.codespace, proposalID)
	}
	if !keeper.IsVoterRegistered(ctx, voter) {
		return ErrNotAuthorized(keeper.codespace, fmt.Sprintf("%s is not a registered voter", voter))
	}
	if proposal.Status != StatusActive {
		return ErrProposalNotActive(keeper.codespace, proposalID, proposal.Status)
	}
	if !proposal.VotingOpen(ctx.BlockHeight()) {
		return ErrVotingPeriodEnded(keeper.codespace, proposalID)
	}
	store := ctx.KVStore(keeper.storeKey)
	voteKey := KeyVote(proposalID, voter)
	if store.Has(voteKey) {
		return ErrAlreadyVoted(keeper.codespace, proposalID, voter)
	}
	if int(optionIndex) >= len(proposal.Options) {
		return ErrInvalidProposal(keeper.codespace, fmt.Sprintf("option index %d out of range, proposal %d has %d options", optionIndex, proposalID, len(proposal.Options)))
	}

	vote := Vote{
		ProposalID:  proposalID,
		Voter:       voter,
		OptionIndex: optionIndex,
		CastTick:    ctx.BlockHeight(),
	}
	store.Set(voteKey, keeper.cdc.MustMarshalBinaryLengthPrefixed(vote))

	proposal.VoteCounts[optionIndex]++
	keeper.SetProposal(ctx, *proposal)

	keeper.metrics.VotesCast.Add(1)
	keeper.publish(VoteCastEvent{
		ProposalID:  proposalID,
		Voter:       voter,
		OptionIndex: optionIndex,
		Tick:        ctx.BlockHeight(),
	})
	ctx.Logger().Info("vote cast", "proposalID", proposalID, "voter", voter.String(), "option", optionIndex)
	return nil
}

// GetVote returns the vote the given account cast on the proposal,
// or nil.
func (keeper Keeper) GetVote(ctx types.Context, proposalID int64, voter types.AccAddress) *Vote {
	store := ctx.KVStore(keeper.storeKey)
	bz := store.Get(KeyVote(proposalID, voter))
	if bz == nil {
		return nil
	}
	var vote Vote
	keeper.cdc.MustUnmarshalBinaryLengthPrefixed(bz, &vote)
	return &vote
}

// IterateVotes calls cb on every vote recorded for the proposal
// until cb returns true.
func (keeper Keeper) IterateVotes(ctx types.Context, proposalID int64, cb func(vote Vote) (stop bool)) {
	store := ctx.KVStore(keeper.storeKey)
	iterator := types.KVStorePrefixIterator(store, KeyVotesPrefix(proposalID))
	defer iterator.Close()
	for ; iterator.Valid(); iterator.Next() {
		var vote Vote
		keeper.cdc.MustUnmarshalBinaryLengthPrefixed(iterator.Value(), &vote)
		if cb(vote) {
			break
		}
	}
}

// GetVotes returns every vote recorded for the proposal.
func (keeper Keeper) GetVotes(ctx types.Context, proposalID int64) []Vote {
	votes := []Vote{}
	keeper.IterateVotes(ctx, proposalID, func(vote Vote) bool {
		votes = append(votes, vote)
		return false
	})
	return votes
}

// =====================================================================
// Lifecycle transitions

// UpdateProposalStatus runs the decision point on an Active proposal
// whose voting window has closed: tally, quorum check, Passed or
// Rejected. Calling it while the window is still open is a no-op
// (changed == false, no error); calling it on a terminal proposal is
// an error.
func (keeper Keeper) UpdateProposalStatus(ctx types.Context, proposalID int64) (Proposal, bool, types.Error) {
	proposal := keeper.GetProposal(ctx, proposalID)
	if proposal == nil {
		return Proposal{}, false, ErrUnknownProposal(keeper.codespace, proposalID)
	}
	if proposal.Status != StatusActive {
		return Proposal{}, false, ErrProposalNotActive(keeper.codespace, proposalID, proposal.Status)
	}
	if proposal.VotingOpen(ctx.BlockHeight()) {
		return *proposal, false, nil
	}

	passes, tallyResult := Tally(ctx, keeper, *proposal)
	if passes {
		proposal.Status = StatusPassed
	} else {
		proposal.Status = StatusRejected
	}
	proposal.DecidedTick = ctx.BlockHeight()
	proposal.TallyResult = tallyResult
	keeper.SetProposal(ctx, *proposal)

	keeper.metrics.ActiveProposals.Add(-1)
	keeper.publish(ProposalDecidedEvent{
		ProposalID:  proposalID,
		Status:      proposal.Status,
		TallyResult: tallyResult,
		Tick:        ctx.BlockHeight(),
	})
	ctx.Logger().Info("proposal decided", "proposalID", proposalID, "status", proposal.Status.String(),
		"totalVotes", tallyResult.TotalVotes, "totalVoters", tallyResult.TotalVoters, "quorumMet", tallyResult.QuorumMet)
	return *proposal, true, nil
}

// ExecuteProposal moves a Passed proposal to Executed once its
// execution delay has elapsed. Executed is the terminal state; the
// modeled effect is the status itself.
func (keeper Keeper) ExecuteProposal(ctx types.Context, proposalID int64) (Proposal, types.Error) {
	proposal := keeper.GetProposal(ctx, proposalID)
	if proposal == nil {
		return Proposal{}, ErrUnknownProposal(keeper.codespace, proposalID)
	}
	if proposal.Status != StatusPassed {
		return Proposal{}, ErrProposalNotReadyForExecution(keeper.codespace, proposalID,
			fmt.Sprintf("status is %s, only passed proposals can be executed", proposal.Status))
	}
	if ctx.BlockHeight() < proposal.ExecutableTick() {
		return Proposal{}, ErrProposalNotReadyForExecution(keeper.codespace, proposalID,
			fmt.Sprintf("execution delay has not elapsed, executable from tick %d", proposal.ExecutableTick()))
	}

	proposal.Status = StatusExecuted
	keeper.SetProposal(ctx, *proposal)

	keeper.metrics.ProposalsExecuted.Add(1)
	keeper.publish(ProposalExecutedEvent{
		ProposalID: proposalID,
		Tick:       ctx.BlockHeight(),
	})
	ctx.Logger().Info("proposal executed", "proposalID", proposalID)
	return *proposal, nil
}

// HasReachedQuorum reports whether the proposal's current vote count
// meets its quorum threshold against the live registry size.
func (keeper Keeper) HasReachedQuorum(ctx types.Context, proposal Proposal) bool {
	totalVoters := keeper.GetTotalVoters(ctx)
	if totalVoters == 0 {
		return false
	}
	// ratio form of totalVotes/totalVoters >= pct/100, boundary inclusive
	return proposal.TotalVotes()*100 >= totalVoters*proposal.Params.QuorumThreshold.Percentage()
}

// LogicalStatus is the status queries report. A proposal still
// stored Active whose voting window has lapsed shows as Expired
// until someone cranks UpdateProposalStatus; the stored status is
// never rewritten by a read.
func (keeper Keeper) LogicalStatus(ctx types.Context, proposal Proposal) ProposalStatus {
	if proposal.Status == StatusActive && !proposal.VotingOpen(ctx.BlockHeight()) {
		return StatusExpired
	}
	return proposal.Status
}
