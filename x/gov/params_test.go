package gov_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/treasurydao/governance/x/gov"
)

func TestVotingPeriodToTicks(t *testing.T) {
	require.Equal(t, int64(3*gov.TicksPerDay), gov.VotingPeriodThreeDays.ToTicks())
	require.Equal(t, int64(7*gov.TicksPerDay), gov.VotingPeriodSevenDays.ToTicks())
	require.Equal(t, int64(14*gov.TicksPerDay), gov.VotingPeriodFourteenDays.ToTicks())
	require.Equal(t, int64(30*gov.TicksPerDay), gov.VotingPeriodThirtyDays.ToTicks())
	require.Panics(t, func() { gov.VotingPeriodNil.ToTicks() })
}

func TestVotingPeriodFromDays(t *testing.T) {
	vp, err := gov.VotingPeriodFromDays(7)
	require.NoError(t, err)
	require.Equal(t, gov.VotingPeriodSevenDays, vp)

	_, err = gov.VotingPeriodFromDays(10)
	require.Error(t, err)
}

func TestQuorumThresholdPercentage(t *testing.T) {
	require.Equal(t, uint64(5), gov.QuorumThresholdFive.Percentage())
	require.Equal(t, uint64(10), gov.QuorumThresholdTen.Percentage())
	require.Equal(t, uint64(20), gov.QuorumThresholdTwenty.Percentage())
	require.Equal(t, uint64(25), gov.QuorumThresholdTwentyFive.Percentage())
	require.Panics(t, func() { gov.QuorumThresholdNil.Percentage() })
}

func TestQuorumThresholdFromPercentage(t *testing.T) {
	qt, err := gov.QuorumThresholdFromPercentage(25)
	require.NoError(t, err)
	require.Equal(t, gov.QuorumThresholdTwentyFive, qt)

	_, err = gov.QuorumThresholdFromPercentage(50)
	require.Error(t, err)
}

func TestExecutionDelayToTicks(t *testing.T) {
	require.Equal(t, int64(0), gov.ExecutionDelayImmediately.ToTicks())
	require.Equal(t, int64(gov.TicksPerDay), gov.ExecutionDelayOneDay.ToTicks())
	require.Equal(t, int64(2*gov.TicksPerDay), gov.ExecutionDelayTwoDays.ToTicks())
	require.Equal(t, int64(7*gov.TicksPerDay), gov.ExecutionDelaySevenDays.ToTicks())
	require.Panics(t, func() { gov.ExecutionDelayNil.ToTicks() })
}

func TestParametersValidate(t *testing.T) {
	params := gov.Parameters{
		VotingPeriod:    gov.VotingPeriodSevenDays,
		QuorumThreshold: gov.QuorumThresholdTwenty,
		ExecutionDelay:  gov.ExecutionDelayImmediately,
	}
	require.NoError(t, params.Validate())

	params.VotingPeriod = gov.VotingPeriodNil
	require.Error(t, params.Validate())

	params.VotingPeriod = gov.VotingPeriodSevenDays
	params.QuorumThreshold = gov.QuorumThreshold(0x09)
	require.Error(t, params.Validate())

	params.QuorumThreshold = gov.QuorumThresholdTwenty
	params.ExecutionDelay = gov.ExecutionDelayNil
	require.Error(t, params.Validate())
}
