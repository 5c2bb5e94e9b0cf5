package gov

import (
	"github.com/treasurydao/governance/codec"
)

// generic sealed codec to be used throughout the module
var msgCdc *codec.Codec

func init() {
	cdc := codec.New()
	RegisterCodec(cdc)
	msgCdc = cdc.Seal()
}

// Register concrete types on codec
func RegisterCodec(cdc *codec.Codec) {
	cdc.RegisterConcrete(MsgRegisterVoter{}, "gov/MsgRegisterVoter", nil)
	cdc.RegisterConcrete(MsgSubmitProposal{}, "gov/MsgSubmitProposal", nil)
	cdc.RegisterConcrete(MsgVote{}, "gov/MsgVote", nil)
	cdc.RegisterConcrete(MsgUpdateProposalStatus{}, "gov/MsgUpdateProposalStatus", nil)
	cdc.RegisterConcrete(MsgExecuteProposal{}, "gov/MsgExecuteProposal", nil)
}
