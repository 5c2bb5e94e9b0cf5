package gov_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/treasurydao/governance/mock"
	"github.com/treasurydao/governance/types"
	"github.com/treasurydao/governance/x/gov"
)

func TestMsgSubmitProposalValidation(t *testing.T) {
	addr := mock.Addrs(1)[0]
	params := defaultParams()

	tests := []struct {
		title        string
		description  string
		proposalType gov.ProposalKind
		params       gov.Parameters
		options      []string
		proposer     types.AccAddress
		expectPass   bool
	}{
		{"Title", "Description", gov.ProposalTypeTreasury, params, []string{"a"}, addr, true},
		{"Title", "Description", gov.ProposalTypeTreasury, params, tenOptions(), addr, true},
		{"", "Description", gov.ProposalTypeTreasury, params, []string{"a"}, addr, false},
		{strings.Repeat("x", gov.MaxTitleLength+1), "Description", gov.ProposalTypeTreasury, params, []string{"a"}, addr, false},
		{"Title", "", gov.ProposalTypeTreasury, params, []string{"a"}, addr, false},
		{"Title", strings.Repeat("x", gov.MaxDescriptionLength+1), gov.ProposalTypeTreasury, params, []string{"a"}, addr, false},
		{"Title", "Description", gov.ProposalKind(0x09), params, []string{"a"}, addr, false},
		{"Title", "Description", gov.ProposalTypeTreasury, gov.Parameters{}, []string{"a"}, addr, false},
		{"Title", "Description", gov.ProposalTypeTreasury, params, nil, addr, false},
		{"Title", "Description", gov.ProposalTypeTreasury, params, append(tenOptions(), "k"), addr, false},
		{"Title", "Description", gov.ProposalTypeTreasury, params, []string{"a", " "}, addr, false},
		{"Title", "Description", gov.ProposalTypeTreasury, params, []string{"a"}, nil, false},
	}

	for i, tc := range tests {
		msg := gov.NewMsgSubmitProposal(tc.title, tc.description, tc.proposalType, tc.params, tc.options, tc.proposer)
		if tc.expectPass {
			require.Nil(t, msg.ValidateBasic(), "test: %v", i)
		} else {
			require.NotNil(t, msg.ValidateBasic(), "test: %v", i)
		}
	}
}

func tenOptions() []string {
	options := make([]string, 10)
	for i := range options {
		options[i] = strings.Repeat("o", i+1)
	}
	return options
}

func TestMsgRegisterVoterValidation(t *testing.T) {
	addr := mock.Addrs(1)[0]
	require.Nil(t, gov.NewMsgRegisterVoter(addr).ValidateBasic())
	require.NotNil(t, gov.NewMsgRegisterVoter(nil).ValidateBasic())
	require.NotNil(t, gov.NewMsgRegisterVoter(addr[:5]).ValidateBasic())
}

func TestMsgVoteValidation(t *testing.T) {
	addr := mock.Addrs(1)[0]
	require.Nil(t, gov.NewMsgVote(addr, 1, 0).ValidateBasic())
	require.Nil(t, gov.NewMsgVote(addr, 1, gov.MaxVotingOptions-1).ValidateBasic())
	require.NotNil(t, gov.NewMsgVote(nil, 1, 0).ValidateBasic())
	require.NotNil(t, gov.NewMsgVote(addr, -1, 0).ValidateBasic())
	require.NotNil(t, gov.NewMsgVote(addr, 1, gov.MaxVotingOptions).ValidateBasic())
}

func TestMsgUpdateAndExecuteValidation(t *testing.T) {
	addr := mock.Addrs(1)[0]
	require.Nil(t, gov.NewMsgUpdateProposalStatus(addr, 1).ValidateBasic())
	require.NotNil(t, gov.NewMsgUpdateProposalStatus(nil, 1).ValidateBasic())
	require.NotNil(t, gov.NewMsgUpdateProposalStatus(addr, -1).ValidateBasic())

	require.Nil(t, gov.NewMsgExecuteProposal(addr, 1).ValidateBasic())
	require.NotNil(t, gov.NewMsgExecuteProposal(nil, 1).ValidateBasic())
	require.NotNil(t, gov.NewMsgExecuteProposal(addr, -1).ValidateBasic())
}

func TestMsgGetSignBytes(t *testing.T) {
	addr := mock.Addrs(1)[0]
	msg := gov.NewMsgVote(addr, 3, 1)
	require.NotPanics(t, func() { msg.GetSignBytes() })
	require.Equal(t, []types.AccAddress{addr}, msg.GetSigners())
	require.Equal(t, gov.MsgRoute, msg.Route())
	require.Equal(t, "vote", msg.Type())
}
