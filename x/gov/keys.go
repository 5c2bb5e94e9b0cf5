package gov

import (
	"encoding/binary"

	"github.com/treasurydao/governance/types"
)

const proposalIDLength = 8

var (
	keyNextProposalID = []byte{0x00}
	keyTotalVoters    = []byte{0x01}

	prefixProposal = []byte{0x10}
	prefixVote     = []byte{0x20}
	prefixVoter    = []byte{0x30}
)

// KeyProposal keys a proposal by big-endian id, so store iteration
// order equals id (and therefore insertion) order.
func KeyProposal(proposalID int64) []byte {
	key := make([]byte, len(prefixProposal)+proposalIDLength)
	copy(key, prefixProposal)
	binary.BigEndian.PutUint64(key[len(prefixProposal):], uint64(proposalID))
	return key
}

// KeyProposalsPrefix is the iteration prefix over all proposals.
func KeyProposalsPrefix() []byte {
	return prefixProposal
}

// ProposalIDFromKey recovers the id from a proposal store key.
func ProposalIDFromKey(key []byte) int64 {
	return int64(binary.BigEndian.Uint64(key[len(prefixProposal):]))
}

// KeyVote keys a vote by (proposal id, voter).
func KeyVote(proposalID int64, voter types.AccAddress) []byte {
	key := make([]byte, len(prefixVote)+proposalIDLength, len(prefixVote)+proposalIDLength+len(voter))
	copy(key, prefixVote)
	binary.BigEndian.PutUint64(key[len(prefixVote):], uint64(proposalID))
	return append(key, voter.Bytes()...)
}

// KeyVotesPrefix is the iteration prefix over one proposal's votes.
func KeyVotesPrefix(proposalID int64) []byte {
	key := make([]byte, len(prefixVote)+proposalIDLength)
	copy(key, prefixVote)
	binary.BigEndian.PutUint64(key[len(prefixVote):], uint64(proposalID))
	return key
}

// KeyVoter keys a registry membership entry.
func KeyVoter(voter types.AccAddress) []byte {
	return append(prefixVoter, voter.Bytes()...)
}

// KeyVotersPrefix is the iteration prefix over the voter registry.
func KeyVotersPrefix() []byte {
	return prefixVoter
}

// VoterFromKey recovers the address from a registry store key.
func VoterFromKey(key []byte) types.AccAddress {
	return types.AccAddress(key[len(prefixVoter):])
}
