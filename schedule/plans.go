package schedule

import "github.com/twinsim/twin"

// BuildPlans expands loaded (as returned by Load) into a dense,
// AgentId-indexed slice of length count, the shape twin.NewScheduler
// expects. Agents absent from loaded receive twin.EmptyActivityPlan().
func BuildPlans(count int, loaded map[twin.AgentId]*twin.ActivityPlan) []*twin.ActivityPlan {
	plans := make([]*twin.ActivityPlan, count)
	for i := range plans {
		agent := twin.AgentId(i)
		if p, ok := loaded[agent]; ok {
			plans[i] = p
			continue
		}
		plans[i] = twin.EmptyActivityPlan()
	}
	return plans
}
