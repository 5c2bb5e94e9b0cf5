package gov

import (
	"encoding/json"
	"fmt"

	"github.com/pkg/errors"

	"github.com/treasurydao/governance/types"
)

// MaxVotingOptions caps the option list length of a proposal.
const MaxVotingOptions = 10

//-----------------------------------------------------------
// Proposal

// Proposal is the unit of governance: a question with 1 to 10
// options, put to the registered voters for one voting window.
// Owned by the keeper's store; mutated only through AddVote
// (VoteCounts) and the lifecycle transitions (Status, DecidedTick,
// TallyResult).
type Proposal struct {
	ID           int64            `json:"id"`              //  unique, strictly increasing from genesis value
	Title        string           `json:"title"`           //  Title of the proposal
	Description  string           `json:"description"`     //  Description of the proposal
	ProposalType ProposalKind     `json:"proposal_type"`   //  Type of proposal
	Params       Parameters       `json:"params"`          //  Voting window / quorum / delay choices
	Options      []string         `json:"options"`         //  Labels voters choose among, index-addressed
	Proposer     types.AccAddress `json:"proposer"`        //  Caller that submitted the proposal
	Status       ProposalStatus   `json:"proposal_status"` //  Active | Passed | Rejected | Executed
	VoteCounts   []uint64         `json:"vote_counts"`     //  Per-option tallies, parallel to Options

	SubmitTick    int64 `json:"submit_tick"`     //  Tick the proposal was stored at
	VotingEndTick int64 `json:"voting_end_tick"` //  SubmitTick + voting period; voting allowed strictly before it
	DecidedTick   int64 `json:"decided_tick"`    //  Tick of the Passed/Rejected decision; 0 while Active

	TallyResult TallyResult `json:"tally_result"` //  Result of the decision tally; empty while Active
}

// TotalVotes is the number of distinct voters recorded on the
// proposal (one account, one vote).
func (p Proposal) TotalVotes() uint64 {
	var total uint64
	for _, count := range p.VoteCounts {
		total += count
	}
	return total
}

// VotingOpen reports whether a vote cast at the given tick falls
// inside the proposal's voting window. The clock, not the stored
// status, is authoritative.
func (p Proposal) VotingOpen(tick int64) bool {
	return tick < p.VotingEndTick
}

// ExecutableTick is the first tick at which a passed proposal may be
// executed.
func (p Proposal) ExecutableTick() int64 {
	return p.DecidedTick + p.Params.ExecutionDelay.ToTicks()
}

//-----------------------------------------------------------
// ProposalKind

// Type that represents Proposal Type as a byte
type ProposalKind byte

// nolint
const (
	ProposalTypeNil        ProposalKind = 0x00
	ProposalTypeTreasury   ProposalKind = 0x01
	ProposalTypeGovernance ProposalKind = 0x02
	ProposalTypeTechnical  ProposalKind = 0x03
	ProposalTypeOther      ProposalKind = 0x04
)

// String to proposalType byte. Returns ff if invalid.
func ProposalTypeFromString(str string) (ProposalKind, error) {
	switch str {
	case "Treasury":
		return ProposalTypeTreasury, nil
	case "Governance":
		return ProposalTypeGovernance, nil
	case "Technical":
		return ProposalTypeTechnical, nil
	case "Other":
		return ProposalTypeOther, nil
	default:
		return ProposalKind(0xff), errors.Errorf("'%s' is not a valid proposal type", str)
	}
}

// is defined ProposalType?
func validProposalType(pt ProposalKind) bool {
	return pt == ProposalTypeTreasury ||
		pt == ProposalTypeGovernance ||
		pt == ProposalTypeTechnical ||
		pt == ProposalTypeOther
}

// Turns ProposalKind byte to String
func (pt ProposalKind) String() string {
	switch pt {
	case ProposalTypeTreasury:
		return "Treasury"
	case ProposalTypeGovernance:
		return "Governance"
	case ProposalTypeTechnical:
		return "Technical"
	case ProposalTypeOther:
		return "Other"
	default:
		return ""
	}
}

// Marshals to JSON using string
func (pt ProposalKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(pt.String())
}

// Unmarshals from JSON assuming the string form
func (pt *ProposalKind) UnmarshalJSON(data []byte) error {
	var s string
	err := json.Unmarshal(data, &s)
	if err != nil {
		return err
	}
	parsed, err := ProposalTypeFromString(s)
	if err != nil {
		return err
	}
	*pt = parsed
	return nil
}

// For Printf / Sprintf, returns the string form when using %s
// nolint: errcheck
func (pt ProposalKind) Format(s fmt.State, verb rune) {
	switch verb {
	case 's':
		s.Write([]byte(pt.String()))
	default:
		s.Write([]byte(fmt.Sprintf("%v", byte(pt))))
	}
}

//-----------------------------------------------------------
// ProposalStatus

// Type that represents Proposal Status as a byte
type ProposalStatus byte

// nolint
const (
	StatusNil      ProposalStatus = 0x00
	StatusActive   ProposalStatus = 0x01
	StatusPassed   ProposalStatus = 0x02
	StatusRejected ProposalStatus = 0x03
	StatusExecuted ProposalStatus = 0x04
	StatusExpired  ProposalStatus = 0x05
)

// ProposalStatusFromString turns a string into a ProposalStatus
func ProposalStatusFromString(str string) (ProposalStatus, error) {
	switch str {
	case "Active":
		return StatusActive, nil
	case "Passed":
		return StatusPassed, nil
	case "Rejected":
		return StatusRejected, nil
	case "Executed":
		return StatusExecuted, nil
	case "Expired":
		return StatusExpired, nil
	case "":
		return StatusNil, nil
	default:
		return ProposalStatus(0xff), errors.Errorf("'%s' is not a valid proposal status", str)
	}
}

// is defined ProposalStatus?
func validProposalStatus(status ProposalStatus) bool {
	return status == StatusActive ||
		status == StatusPassed ||
		status == StatusRejected ||
		status == StatusExecuted ||
		status == StatusExpired
}

// Terminal reports whether no further transition may leave the status.
// Passed is not terminal (execution remains); Rejected, Executed and
// Expired are.
func (status ProposalStatus) Terminal() bool {
	return status == StatusRejected || status == StatusExecuted || status == StatusExpired
}

// Turns ProposalStatus byte to String
func (status ProposalStatus) String() string {
	switch status {
	case StatusActive:
		return "Active"
	case StatusPassed:
		return "Passed"
	case StatusRejected:
		return "Rejected"
	case StatusExecuted:
		return "Executed"
	case StatusExpired:
		return "Expired"
	default:
		return ""
	}
}

// Marshals to JSON using string
func (status ProposalStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(status.String())
}

// Unmarshals from JSON assuming the string form
func (status *ProposalStatus) UnmarshalJSON(data []byte) error {
	var s string
	err := json.Unmarshal(data, &s)
	if err != nil {
		return err
	}
	parsed, err := ProposalStatusFromString(s)
	if err != nil {
		return err
	}
	*status = parsed
	return nil
}

// For Printf / Sprintf, returns the string form when using %s
// nolint: errcheck
func (status ProposalStatus) Format(s fmt.State, verb rune) {
	switch verb {
	case 's':
		s.Write([]byte(status.String()))
	default:
		s.Write([]byte(fmt.Sprintf("%v", byte(status))))
	}
}

//-----------------------------------------------------------
// TallyResult

// TallyResult is the persisted outcome of the decision tally.
// WinningOption is -1 when no single option won (tie, no votes, or
// quorum failure).
type TallyResult struct {
	TotalVotes    uint64 `json:"total_votes"`
	TotalVoters   uint64 `json:"total_voters"` // registry size at decision time
	QuorumMet     bool   `json:"quorum_met"`
	WinningOption int32  `json:"winning_option"`
	Tied          bool   `json:"tied"`
}

// EmptyTallyResult is the zero tally carried by proposals still in
// their voting window.
func EmptyTallyResult() TallyResult {
	return TallyResult{WinningOption: -1}
}

// checks if two tally results are equal
func (resultA TallyResult) Equals(resultB TallyResult) bool {
	return resultA == resultB
}
