package gov

import (
	"encoding/json"
	"fmt"

	"github.com/pkg/errors"
)

// TicksPerDay converts calendar days into host clock ticks, assuming
// the host advances one tick every 6 seconds.
const TicksPerDay int64 = 24 * 60 * 10 // 14,400 ticks

//-----------------------------------------------------------
// VotingPeriod

// VotingPeriod is the closed set of admissible voting window lengths.
type VotingPeriod byte

// nolint
const (
	VotingPeriodNil          VotingPeriod = 0x00
	VotingPeriodThreeDays    VotingPeriod = 0x01
	VotingPeriodSevenDays    VotingPeriod = 0x02
	VotingPeriodFourteenDays VotingPeriod = 0x03
	VotingPeriodThirtyDays   VotingPeriod = 0x04
)

// ToTicks converts the voting period to host clock ticks. Panics on
// an undefined period; callers validate before storing.
func (vp VotingPeriod) ToTicks() int64 {
	switch vp {
	case VotingPeriodThreeDays:
		return 3 * TicksPerDay
	case VotingPeriodSevenDays:
		return 7 * TicksPerDay
	case VotingPeriodFourteenDays:
		return 14 * TicksPerDay
	case VotingPeriodThirtyDays:
		return 30 * TicksPerDay
	default:
		panic(fmt.Sprintf("undefined voting period %v", byte(vp)))
	}
}

// VotingPeriodFromDays maps a day count to its variant. Returns an
// error when the day count is not one of the admissible choices.
func VotingPeriodFromDays(days int) (VotingPeriod, error) {
	switch days {
	case 3:
		return VotingPeriodThreeDays, nil
	case 7:
		return VotingPeriodSevenDays, nil
	case 14:
		return VotingPeriodFourteenDays, nil
	case 30:
		return VotingPeriodThirtyDays, nil
	default:
		return VotingPeriodNil, errors.Errorf("%d days is not a valid voting period", days)
	}
}

// is defined VotingPeriod?
func validVotingPeriod(vp VotingPeriod) bool {
	return vp == VotingPeriodThreeDays ||
		vp == VotingPeriodSevenDays ||
		vp == VotingPeriodFourteenDays ||
		vp == VotingPeriodThirtyDays
}

func (vp VotingPeriod) Days() int {
	switch vp {
	case VotingPeriodThreeDays:
		return 3
	case VotingPeriodSevenDays:
		return 7
	case VotingPeriodFourteenDays:
		return 14
	case VotingPeriodThirtyDays:
		return 30
	default:
		return 0
	}
}

func (vp VotingPeriod) String() string {
	switch vp {
	case VotingPeriodThreeDays:
		return "3d"
	case VotingPeriodSevenDays:
		return "7d"
	case VotingPeriodFourteenDays:
		return "14d"
	case VotingPeriodThirtyDays:
		return "30d"
	default:
		return ""
	}
}

// Marshals to JSON using the day count
func (vp VotingPeriod) MarshalJSON() ([]byte, error) {
	return json.Marshal(vp.Days())
}

// Unmarshals from JSON assuming a day count
func (vp *VotingPeriod) UnmarshalJSON(data []byte) error {
	var days int
	if err := json.Unmarshal(data, &days); err != nil {
		return err
	}
	parsed, err := VotingPeriodFromDays(days)
	if err != nil {
		return err
	}
	*vp = parsed
	return nil
}

//-----------------------------------------------------------
// QuorumThreshold

// QuorumThreshold is the closed set of admissible quorum percentages.
type QuorumThreshold byte

// nolint
const (
	QuorumThresholdNil        QuorumThreshold = 0x00
	QuorumThresholdFive       QuorumThreshold = 0x01
	QuorumThresholdTen        QuorumThreshold = 0x02
	QuorumThresholdTwenty     QuorumThreshold = 0x03
	QuorumThresholdTwentyFive QuorumThreshold = 0x04
)

// Percentage returns the quorum bar as a whole percentage. Panics on
// an undefined threshold; callers validate before storing.
func (qt QuorumThreshold) Percentage() uint64 {
	switch qt {
	case QuorumThresholdFive:
		return 5
	case QuorumThresholdTen:
		return 10
	case QuorumThresholdTwenty:
		return 20
	case QuorumThresholdTwentyFive:
		return 25
	default:
		panic(fmt.Sprintf("undefined quorum threshold %v", byte(qt)))
	}
}

// QuorumThresholdFromPercentage maps a percentage to its variant.
func QuorumThresholdFromPercentage(pct int) (QuorumThreshold, error) {
	switch pct {
	case 5:
		return QuorumThresholdFive, nil
	case 10:
		return QuorumThresholdTen, nil
	case 20:
		return QuorumThresholdTwenty, nil
	case 25:
		return QuorumThresholdTwentyFive, nil
	default:
		return QuorumThresholdNil, errors.Errorf("%d%% is not a valid quorum threshold", pct)
	}
}

// is defined QuorumThreshold?
func validQuorumThreshold(qt QuorumThreshold) bool {
	return qt == QuorumThresholdFive ||
		qt == QuorumThresholdTen ||
		qt == QuorumThresholdTwenty ||
		qt == QuorumThresholdTwentyFive
}

func (qt QuorumThreshold) String() string {
	if !validQuorumThreshold(qt) {
		return ""
	}
	return fmt.Sprintf("%d%%", qt.Percentage())
}

// Marshals to JSON using the percentage
func (qt QuorumThreshold) MarshalJSON() ([]byte, error) {
	if !validQuorumThreshold(qt) {
		return json.Marshal(0)
	}
	return json.Marshal(qt.Percentage())
}

// Unmarshals from JSON assuming a percentage
func (qt *QuorumThreshold) UnmarshalJSON(data []byte) error {
	var pct int
	if err := json.Unmarshal(data, &pct); err != nil {
		return err
	}
	parsed, err := QuorumThresholdFromPercentage(pct)
	if err != nil {
		return err
	}
	*qt = parsed
	return nil
}

//-----------------------------------------------------------
// ExecutionDelay

// ExecutionDelay is the closed set of admissible waiting periods
// between a proposal passing and becoming executable.
type ExecutionDelay byte

// nolint
const (
	ExecutionDelayNil         ExecutionDelay = 0x00
	ExecutionDelayImmediately ExecutionDelay = 0x01
	ExecutionDelayOneDay      ExecutionDelay = 0x02
	ExecutionDelayTwoDays     ExecutionDelay = 0x03
	ExecutionDelaySevenDays   ExecutionDelay = 0x04
)

// ToTicks converts the execution delay to host clock ticks. Panics on
// an undefined delay; callers validate before storing.
func (ed ExecutionDelay) ToTicks() int64 {
	switch ed {
	case ExecutionDelayImmediately:
		return 0
	case ExecutionDelayOneDay:
		return 1 * TicksPerDay
	case ExecutionDelayTwoDays:
		return 2 * TicksPerDay
	case ExecutionDelaySevenDays:
		return 7 * TicksPerDay
	default:
		panic(fmt.Sprintf("undefined execution delay %v", byte(ed)))
	}
}

// ExecutionDelayFromDays maps a day count to its variant; 0 means
// immediately executable.
func ExecutionDelayFromDays(days int) (ExecutionDelay, error) {
	switch days {
	case 0:
		return ExecutionDelayImmediately, nil
	case 1:
		return ExecutionDelayOneDay, nil
	case 2:
		return ExecutionDelayTwoDays, nil
	case 7:
		return ExecutionDelaySevenDays, nil
	default:
		return ExecutionDelayNil, errors.Errorf("%d days is not a valid execution delay", days)
	}
}

// is defined ExecutionDelay?
func validExecutionDelay(ed ExecutionDelay) bool {
	return ed == ExecutionDelayImmediately ||
		ed == ExecutionDelayOneDay ||
		ed == ExecutionDelayTwoDays ||
		ed == ExecutionDelaySevenDays
}

func (ed ExecutionDelay) Days() int {
	switch ed {
	case ExecutionDelayOneDay:
		return 1
	case ExecutionDelayTwoDays:
		return 2
	case ExecutionDelaySevenDays:
		return 7
	default:
		return 0
	}
}

func (ed ExecutionDelay) String() string {
	switch ed {
	case ExecutionDelayImmediately:
		return "immediately"
	case ExecutionDelayOneDay:
		return "1d"
	case ExecutionDelayTwoDays:
		return "2d"
	case ExecutionDelaySevenDays:
		return "7d"
	default:
		return ""
	}
}

// Marshals to JSON using the day count
func (ed ExecutionDelay) MarshalJSON() ([]byte, error) {
	return json.Marshal(ed.Days())
}

// Unmarshals from JSON assuming a day count
func (ed *ExecutionDelay) UnmarshalJSON(data []byte) error {
	var days int
	if err := json.Unmarshal(data, &days); err != nil {
		return err
	}
	parsed, err := ExecutionDelayFromDays(days)
	if err != nil {
		return err
	}
	*ed = parsed
	return nil
}

//-----------------------------------------------------------
// Parameters

// Parameters is the per-proposal governance configuration, chosen by
// the proposer from the closed sets above.
type Parameters struct {
	VotingPeriod    VotingPeriod    `json:"voting_period"`
	QuorumThreshold QuorumThreshold `json:"quorum_threshold"`
	ExecutionDelay  ExecutionDelay  `json:"execution_delay"`
}

// Validate reports whether every choice is one of the admissible
// variants.
func (p Parameters) Validate() error {
	if !validVotingPeriod(p.VotingPeriod) {
		return errors.Errorf("invalid voting period %v", byte(p.VotingPeriod))
	}
	if !validQuorumThreshold(p.QuorumThreshold) {
		return errors.Errorf("invalid quorum threshold %v", byte(p.QuorumThreshold))
	}
	if !validExecutionDelay(p.ExecutionDelay) {
		return errors.Errorf("invalid execution delay %v", byte(p.ExecutionDelay))
	}
	return nil
}
