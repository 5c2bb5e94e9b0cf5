package gov

import (
	"github.com/treasurydao/governance/pubsub"
	"github.com/treasurydao/governance/types"
)

const (
	VoterRegisteredTopic  = pubsub.Topic("gov-voter-registered")
	ProposalCreatedTopic  = pubsub.Topic("gov-proposal-created")
	VoteCastTopic         = pubsub.Topic("gov-vote-cast")
	ProposalDecidedTopic  = pubsub.Topic("gov-proposal-decided")
	ProposalExecutedTopic = pubsub.Topic("gov-proposal-executed")
)

type VoterRegisteredEvent struct {
	Voter       types.AccAddress
	TotalVoters uint64
	Tick        int64
}

func (event VoterRegisteredEvent) GetTopic() pubsub.Topic {
	return VoterRegisteredTopic
}

type ProposalCreatedEvent struct {
	ProposalID    int64
	Proposer      types.AccAddress
	ProposalType  ProposalKind
	Options       int
	VotingEndTick int64
}

func (event ProposalCreatedEvent) GetTopic() pubsub.Topic {
	return ProposalCreatedTopic
}

type VoteCastEvent struct {
	ProposalID  int64
	Voter       types.AccAddress
	OptionIndex uint8
	Tick        int64
}

func (event VoteCastEvent) GetTopic() pubsub.Topic {
	return VoteCastTopic
}

type ProposalDecidedEvent struct {
	ProposalID  int64
	Status      ProposalStatus
	TallyResult TallyResult
	Tick        int64
}

func (event ProposalDecidedEvent) GetTopic() pubsub.Topic {
	return ProposalDecidedTopic
}

type ProposalExecutedEvent struct {
	ProposalID int64
	Tick       int64
}

func (event ProposalExecutedEvent) GetTopic() pubsub.Topic {
	return ProposalExecutedTopic
}

func (keeper Keeper) publish(event pubsub.Event) {
	if keeper.publisher != nil {
		keeper.publisher.Publish(event)
	}
}
