package gov

import (
	"fmt"
	"strings"

	"github.com/treasurydao/governance/types"
)

// name to identify transaction routes
const MsgRoute = "gov"

// Validation policy for proposal text fields.
const (
	MaxTitleLength       = 128
	MaxDescriptionLength = 2048
)

var _, _, _, _, _ types.Msg = MsgRegisterVoter{}, MsgSubmitProposal{}, MsgVote{}, MsgUpdateProposalStatus{}, MsgExecuteProposal{}

//-----------------------------------------------------------
// MsgRegisterVoter

// MsgRegisterVoter adds the caller to the voter registry.
type MsgRegisterVoter struct {
	Voter types.AccAddress `json:"voter"`
}

func NewMsgRegisterVoter(voter types.AccAddress) MsgRegisterVoter {
	return MsgRegisterVoter{Voter: voter}
}

// nolint
func (msg MsgRegisterVoter) Route() string { return MsgRoute }
func (msg MsgRegisterVoter) Type() string  { return "register_voter" }

// Implements Msg.
func (msg MsgRegisterVoter) ValidateBasic() types.Error {
	if len(msg.Voter) != types.AddrLen {
		return types.ErrInvalidAddress(fmt.Sprintf("length of address(%s) should be %d", msg.Voter, types.AddrLen))
	}
	return nil
}

func (msg MsgRegisterVoter) String() string {
	return fmt.Sprintf("MsgRegisterVoter{%s}", msg.Voter)
}

// Implements Msg.
func (msg MsgRegisterVoter) GetSignBytes() []byte {
	b, err := msgCdc.MarshalJSON(msg)
	if err != nil {
		panic(err)
	}
	return types.MustSortJSON(b)
}

// Implements Msg.
func (msg MsgRegisterVoter) GetSigners() []types.AccAddress {
	return []types.AccAddress{msg.Voter}
}

//-----------------------------------------------------------
// MsgSubmitProposal

// MsgSubmitProposal creates a new Active proposal.
type MsgSubmitProposal struct {
	Title        string           `json:"title"`         //  Title of the proposal
	Description  string           `json:"description"`   //  Description of the proposal
	ProposalType ProposalKind     `json:"proposal_type"` //  Type of proposal
	Params       Parameters       `json:"params"`        //  Governance parameter choices
	Options      []string         `json:"options"`       //  Option labels, 1 to MaxVotingOptions
	Proposer     types.AccAddress `json:"proposer"`      //  Address of the proposer
}

func NewMsgSubmitProposal(title, description string, proposalType ProposalKind, params Parameters, options []string, proposer types.AccAddress) MsgSubmitProposal {
	return MsgSubmitProposal{
		Title:        title,
		Description:  description,
		ProposalType: proposalType,
		Params:       params,
		Options:      options,
		Proposer:     proposer,
	}
}

// nolint
func (msg MsgSubmitProposal) Route() string { return MsgRoute }
func (msg MsgSubmitProposal) Type() string  { return "submit_proposal" }

// Implements Msg.
func (msg MsgSubmitProposal) ValidateBasic() types.Error {
	if len(strings.TrimSpace(msg.Title)) == 0 {
		return ErrInvalidProposal(DefaultCodespace, "no title present in proposal")
	}
	if len(msg.Title) > MaxTitleLength {
		return ErrInvalidProposal(DefaultCodespace, fmt.Sprintf("proposal title is longer than max length of %d", MaxTitleLength))
	}
	if len(strings.TrimSpace(msg.Description)) == 0 {
		return ErrInvalidProposal(DefaultCodespace, "no description present in proposal")
	}
	if len(msg.Description) > MaxDescriptionLength {
		return ErrInvalidProposal(DefaultCodespace, fmt.Sprintf("proposal description is longer than max length of %d", MaxDescriptionLength))
	}
	if !validProposalType(msg.ProposalType) {
		return ErrInvalidProposal(DefaultCodespace, fmt.Sprintf("unknown proposal type %v", byte(msg.ProposalType)))
	}
	if err := msg.Params.Validate(); err != nil {
		return ErrInvalidProposal(DefaultCodespace, err.Error())
	}
	if len(msg.Options) == 0 || len(msg.Options) > MaxVotingOptions {
		return ErrInvalidProposal(DefaultCodespace, fmt.Sprintf("proposal must offer between 1 and %d options, got %d", MaxVotingOptions, len(msg.Options)))
	}
	for i, option := range msg.Options {
		if len(strings.TrimSpace(option)) == 0 {
			return ErrInvalidProposal(DefaultCodespace, fmt.Sprintf("option %d is empty", i))
		}
	}
	if len(msg.Proposer) != types.AddrLen {
		return types.ErrInvalidAddress(fmt.Sprintf("length of address(%s) should be %d", msg.Proposer, types.AddrLen))
	}
	return nil
}

func (msg MsgSubmitProposal) String() string {
	return fmt.Sprintf("MsgSubmitProposal{%s, %s, %v, %d options}", msg.Title, msg.ProposalType, msg.Params, len(msg.Options))
}

// Implements Msg.
func (msg MsgSubmitProposal) GetSignBytes() []byte {
	b, err := msgCdc.MarshalJSON(msg)
	if err != nil {
		panic(err)
	}
	return types.MustSortJSON(b)
}

// Implements Msg.
func (msg MsgSubmitProposal) GetSigners() []types.AccAddress {
	return []types.AccAddress{msg.Proposer}
}

//-----------------------------------------------------------
// MsgVote

// MsgVote records one vote on an active proposal.
type MsgVote struct {
	ProposalID  int64            `json:"proposal_id"`
	Voter       types.AccAddress `json:"voter"`
	OptionIndex uint8            `json:"option_index"`
}

func NewMsgVote(voter types.AccAddress, proposalID int64, optionIndex uint8) MsgVote {
	return MsgVote{
		ProposalID:  proposalID,
		Voter:       voter,
		OptionIndex: optionIndex,
	}
}

// nolint
func (msg MsgVote) Route() string { return MsgRoute }
func (msg MsgVote) Type() string  { return "vote" }

// Implements Msg.
func (msg MsgVote) ValidateBasic() types.Error {
	if len(msg.Voter) != types.AddrLen {
		return types.ErrInvalidAddress(fmt.Sprintf("length of address(%s) should be %d", msg.Voter, types.AddrLen))
	}
	if msg.ProposalID < 0 {
		return ErrUnknownProposal(DefaultCodespace, msg.ProposalID)
	}
	if int(msg.OptionIndex) >= MaxVotingOptions {
		return ErrInvalidProposal(DefaultCodespace, fmt.Sprintf("option index %d exceeds the maximum of %d options", msg.OptionIndex, MaxVotingOptions))
	}
	return nil
}

func (msg MsgVote) String() string {
	return fmt.Sprintf("MsgVote{%d, %s, %d}", msg.ProposalID, msg.Voter, msg.OptionIndex)
}

// Implements Msg.
func (msg MsgVote) GetSignBytes() []byte {
	b, err := msgCdc.MarshalJSON(msg)
	if err != nil {
		panic(err)
	}
	return types.MustSortJSON(b)
}

// Implements Msg.
func (msg MsgVote) GetSigners() []types.AccAddress {
	return []types.AccAddress{msg.Voter}
}

//-----------------------------------------------------------
// MsgUpdateProposalStatus

// MsgUpdateProposalStatus drives the decision point of a proposal
// whose voting window has closed. Anyone may crank it.
type MsgUpdateProposalStatus struct {
	ProposalID int64            `json:"proposal_id"`
	Caller     types.AccAddress `json:"caller"`
}

func NewMsgUpdateProposalStatus(caller types.AccAddress, proposalID int64) MsgUpdateProposalStatus {
	return MsgUpdateProposalStatus{
		ProposalID: proposalID,
		Caller:     caller,
	}
}

// nolint
func (msg MsgUpdateProposalStatus) Route() string { return MsgRoute }
func (msg MsgUpdateProposalStatus) Type() string  { return "update_proposal_status" }

// Implements Msg.
func (msg MsgUpdateProposalStatus) ValidateBasic() types.Error {
	if len(msg.Caller) != types.AddrLen {
		return types.ErrInvalidAddress(fmt.Sprintf("length of address(%s) should be %d", msg.Caller, types.AddrLen))
	}
	if msg.ProposalID < 0 {
		return ErrUnknownProposal(DefaultCodespace, msg.ProposalID)
	}
	return nil
}

func (msg MsgUpdateProposalStatus) String() string {
	return fmt.Sprintf("MsgUpdateProposalStatus{%d}", msg.ProposalID)
}

// Implements Msg.
func (msg MsgUpdateProposalStatus) GetSignBytes() []byte {
	b, err := msgCdc.MarshalJSON(msg)
	if err != nil {
		panic(err)
	}
	return types.MustSortJSON(b)
}

// Implements Msg.
func (msg MsgUpdateProposalStatus) GetSigners() []types.AccAddress {
	return []types.AccAddress{msg.Caller}
}

//-----------------------------------------------------------
// MsgExecuteProposal

// MsgExecuteProposal finalizes a passed proposal once its execution
// delay has elapsed. Reaching Executed is the full modeled effect.
type MsgExecuteProposal struct {
	ProposalID int64            `json:"proposal_id"`
	Caller     types.AccAddress `json:"caller"`
}

func NewMsgExecuteProposal(caller types.AccAddress, proposalID int64) MsgExecuteProposal {
	return MsgExecuteProposal{
		ProposalID: proposalID,
		Caller:     caller,
	}
}

// nolint
func (msg MsgExecuteProposal) Route() string { return MsgRoute }
func (msg MsgExecuteProposal) Type() string  { return "execute_proposal" }

// Implements Msg.
func (msg MsgExecuteProposal) ValidateBasic() types.Error {
	if len(msg.Caller) != types.AddrLen {
		return types.ErrInvalidAddress(fmt.Sprintf("length of address(%s) should be %d", msg.Caller, types.AddrLen))
	}
	if msg.ProposalID < 0 {
		return ErrUnknownProposal(DefaultCodespace, msg.ProposalID)
	}
	return nil
}

func (msg MsgExecuteProposal) String() string {
	return fmt.Sprintf("MsgExecuteProposal{%d}", msg.ProposalID)
}

// Implements Msg.
func (msg MsgExecuteProposal) GetSignBytes() []byte {
	b, err := msgCdc.MarshalJSON(msg)
	if err != nil {
		panic(err)
	}
	return types.MustSortJSON(b)
}

// Implements Msg.
func (msg MsgExecuteProposal) GetSigners() []types.AccAddress {
	return []types.AccAddress{msg.Caller}
}
