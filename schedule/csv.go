// Package schedule loads activity plans from the schedule CSV described in
// spec.md §6. CSV parsing is explicitly out of scope for the core (spec.md
// §1); this package is a thin, fatal-on-malformed-input loader, grounded on
// the teacher's own stdlib encoding/csv usage in sim/workload_config.go.
package schedule

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/twinsim/twin"
)

const rowColumns = 6

// row is one parsed schedule-file record, prior to grouping by agent.
type row struct {
	agentID          twin.AgentId
	activityID       twin.ActivityId
	startOffsetTicks uint64
	durationTicks    uint64
	destination      twin.ActivityDestination
	cycleTicks       uint64
}

// ParseDestination parses the destination column: "home", "work", or a
// decimal node id.
func ParseDestination(s string) (twin.ActivityDestination, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "home":
		return twin.HomeDestination(), nil
	case "work":
		return twin.WorkDestination(), nil
	default:
		n, err := strconv.ParseUint(s, 10, 32)
		if err != nil {
			return twin.ActivityDestination{}, fmt.Errorf("invalid destination %q: %w", s, err)
		}
		return twin.NodeDestination(twin.NodeId(n)), nil
	}
}

// Load reads a schedule CSV (no header row) from r and returns one
// ActivityPlan per agent_id seen. Agents never mentioned are the caller's
// responsibility to fill in with twin.EmptyActivityPlan(); Load only
// returns plans for agent_ids actually present in the file. All rows for a
// given agent_id must share cycle_ticks; the first row's value wins and
// later disagreeing values are silently ignored, per spec.md §6.
func Load(r io.Reader) (map[twin.AgentId]*twin.ActivityPlan, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = rowColumns
	reader.ReuseRecord = true

	byAgent := make(map[twin.AgentId][]row)
	cycleTicks := make(map[twin.AgentId]uint64)
	order := make(map[twin.AgentId]int)

	rowIdx := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("schedule csv: error reading row %d: %w", rowIdx, err)
		}

		r, err := parseRow(record, rowIdx)
		if err != nil {
			return nil, err
		}

		if _, seen := order[r.agentID]; !seen {
			order[r.agentID] = rowIdx
			cycleTicks[r.agentID] = r.cycleTicks
		}
		byAgent[r.agentID] = append(byAgent[r.agentID], r)
		rowIdx++
	}

	plans := make(map[twin.AgentId]*twin.ActivityPlan, len(byAgent))
	for agent, rows := range byAgent {
		sort.Slice(rows, func(i, j int) bool { return rows[i].startOffsetTicks < rows[j].startOffsetTicks })
		cycle := cycleTicks[agent]
		activities := make([]twin.ScheduledActivity, len(rows))
		for i, r := range rows {
			if r.startOffsetTicks >= cycle {
				return nil, fmt.Errorf("schedule csv: agent %d: start_offset_ticks %d >= cycle_ticks %d", agent, r.startOffsetTicks, cycle)
			}
			activities[i] = twin.ScheduledActivity{
				StartOffsetTicks: r.startOffsetTicks,
				DurationTicks:    r.durationTicks,
				ActivityID:       r.activityID,
				Destination:      r.destination,
			}
		}
		plans[agent] = twin.NewActivityPlan(activities, cycle)
	}
	return plans, nil
}

func parseRow(record []string, rowIdx int) (row, error) {
	if len(record) != rowColumns {
		return row{}, fmt.Errorf("schedule csv: row %d has %d columns, expected %d", rowIdx, len(record), rowColumns)
	}

	agentID, err := strconv.ParseUint(record[0], 10, 32)
	if err != nil {
		return row{}, fmt.Errorf("schedule csv: row %d: invalid agent_id %q: %w", rowIdx, record[0], err)
	}
	activityID, err := strconv.ParseUint(record[1], 10, 16)
	if err != nil {
		return row{}, fmt.Errorf("schedule csv: row %d: invalid activity_id %q: %w", rowIdx, record[1], err)
	}
	startOffset, err := strconv.ParseUint(record[2], 10, 32)
	if err != nil {
		return row{}, fmt.Errorf("schedule csv: row %d: invalid start_offset_ticks %q: %w", rowIdx, record[2], err)
	}
	duration, err := strconv.ParseUint(record[3], 10, 32)
	if err != nil {
		return row{}, fmt.Errorf("schedule csv: row %d: invalid duration_ticks %q: %w", rowIdx, record[3], err)
	}
	destination, err := ParseDestination(record[4])
	if err != nil {
		return row{}, fmt.Errorf("schedule csv: row %d: %w", rowIdx, err)
	}
	cycleTicks, err := strconv.ParseUint(record[5], 10, 32)
	if err != nil {
		return row{}, fmt.Errorf("schedule csv: row %d: invalid cycle_ticks %q: %w", rowIdx, record[5], err)
	}

	return row{
		agentID:          twin.AgentId(agentID),
		activityID:       twin.ActivityId(activityID),
		startOffsetTicks: startOffset,
		durationTicks:    duration,
		destination:      destination,
		cycleTicks:       cycleTicks,
	}, nil
}
