package activity

import "fmt"

// Summary backs the stat row and the insights shown under the chart.
type Summary struct {
	TotalCommits      int     `json:"total_commits"`
	TotalPullRequests int     `json:"total_pull_requests"`
	ActiveMonths      int     `json:"active_months"`
	AvgCommits        float64 `json:"avg_commits_per_active_month"`
	Peak              Month   `json:"peak"`
}

// Summarize totals the whole dataset. Range filters do not apply here.
func (d *Dataset) Summarize() Summary {
	var s Summary
	for _, m := range d.Months {
		s.TotalCommits += m.Commits
		s.TotalPullRequests += m.PullRequests
		if m.Active() {
			s.ActiveMonths++
		}
		if m.Commits > s.Peak.Commits {
			s.Peak = m
		}
	}
	if s.ActiveMonths > 0 {
		s.AvgCommits = float64(s.TotalCommits) / float64(s.ActiveMonths)
	}
	return s
}

// earliestActive walks back from the current month and returns the oldest active one
// within the trailing year.
func (d *Dataset) earliestActive() Month {
	n := len(d.Months)
	earliest := d.CurrentMonth()
	for back := 1; back < n; back++ {
		m := d.Months[(d.Current-back+n)%n]
		if m.Active() {
			earliest = m
		}
	}
	return earliest
}

// Caption is the "Showing: ..." line above the chart.
func (d *Dataset) Caption(r Range) string {
	cur := d.CurrentMonth().Month
	switch r {
	case RangeWeek:
		return fmt.Sprintf("Showing: %s", cur)
	case RangeMonth:
		return fmt.Sprintf("Showing: %s - %s", d.PreviousMonth().Month, cur)
	default:
		return fmt.Sprintf("Showing: %s - %s (active months only)", d.earliestActive().Month, cur)
	}
}

// Label is the option text for r in the range selector.
func (d *Dataset) Label(r Range) string {
	switch r {
	case RangeWeek:
		return fmt.Sprintf("This Month (%s)", d.CurrentMonth().Month)
	case RangeMonth:
		return "Last 2 Months"
	default:
		return "All Activity"
	}
}
