package twin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmptyActivityPlanHasUnitCycleAndNoWake(t *testing.T) {
	p := EmptyActivityPlan()
	assert.True(t, p.IsEmpty())
	assert.Equal(t, uint64(1), p.CycleTicks())
	_, ok := p.NextWakeTick(0)
	assert.False(t, ok)
	_, ok = p.CurrentActivity(0)
	assert.False(t, ok)
}

func TestNewActivityPlanPanicsOnOffsetBeyondCycle(t *testing.T) {
	assert.Panics(t, func() {
		NewActivityPlan([]ScheduledActivity{{StartOffsetTicks: 24}}, 24)
	})
}

func TestNewActivityPlanPanicsOnUnsortedOffsets(t *testing.T) {
	assert.Panics(t, func() {
		NewActivityPlan([]ScheduledActivity{
			{StartOffsetTicks: 10},
			{StartOffsetTicks: 5},
		}, 24)
	})
}

func TestSingleActivityPlanWrapsToItselfAcrossCycle(t *testing.T) {
	plan := NewActivityPlan([]ScheduledActivity{
		{StartOffsetTicks: 0, ActivityID: 1, Destination: HomeDestination()},
	}, 24)

	wake, ok := plan.NextWakeTick(0)
	require.True(t, ok)
	assert.Equal(t, Tick(24), wake)

	activity, ok := plan.CurrentActivity(23)
	require.True(t, ok)
	assert.Equal(t, ActivityId(1), activity.ActivityID)
}

func TestNextWakeTickClampsToAtLeastOneTick(t *testing.T) {
	plan := NewActivityPlan([]ScheduledActivity{
		{StartOffsetTicks: 0, ActivityID: 1},
		{StartOffsetTicks: 0, ActivityID: 2},
	}, 10)

	wake, ok := plan.NextWakeTick(0)
	require.True(t, ok)
	assert.Equal(t, Tick(1), wake)
}

func TestCurrentActivityBeforeFirstOffsetWrapsToLast(t *testing.T) {
	plan := NewActivityPlan([]ScheduledActivity{
		{StartOffsetTicks: 8, ActivityID: 1},
		{StartOffsetTicks: 16, ActivityID: 2},
	}, 24)

	activity, ok := plan.CurrentActivity(2)
	require.True(t, ok)
	assert.Equal(t, ActivityId(2), activity.ActivityID)
}

func TestNextWakeTickAdvancesWithinCycle(t *testing.T) {
	plan := NewActivityPlan([]ScheduledActivity{
		{StartOffsetTicks: 0, ActivityID: 1},
		{StartOffsetTicks: 8, ActivityID: 2},
	}, 24)

	wake, ok := plan.NextWakeTick(0)
	require.True(t, ok)
	assert.Equal(t, Tick(8), wake)

	wake, ok = plan.NextWakeTick(8)
	require.True(t, ok)
	assert.Equal(t, Tick(24), wake)
}
