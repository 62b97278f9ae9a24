package segment

import "time"

// minCountedDuration is the shortest session that participates in the
// filtered average. Instantaneous idle-gap sessions would otherwise drag
// the mean toward zero.
const minCountedDuration = time.Minute

// Metrics summarizes a session list for scoring. Count and AvgMinutes
// cover every session; FilteredAvgMinutes excludes sessions shorter than
// one minute and is what the rule-based scorer consumes.
type Metrics struct {
	Count              int     `json:"count"`
	AvgMinutes         float64 `json:"avg_minutes"`
	FilteredAvgMinutes float64 `json:"filtered_avg_minutes"`
}

// ComputeMetrics derives count and average-duration metrics from sessions.
// Zero sessions yield all-zero metrics.
func ComputeMetrics(sessions []Session) Metrics {
	m := Metrics{Count: len(sessions)}
	if len(sessions) == 0 {
		return m
	}

	var total float64
	var filteredTotal float64
	var filteredCount int
	for _, s := range sessions {
		mins := s.Minutes()
		total += mins
		if s.End.Sub(s.Start) >= minCountedDuration {
			filteredTotal += mins
			filteredCount++
		}
	}

	m.AvgMinutes = total / float64(len(sessions))
	if filteredCount > 0 {
		m.FilteredAvgMinutes = filteredTotal / float64(filteredCount)
	}
	return m
}
