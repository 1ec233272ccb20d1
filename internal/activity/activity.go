// Package activity derives the dashboard's commit/pull-request chart from a fixed
// twelve-month dataset.
package activity

import (
	"fmt"
	"strings"
)

// MinBarWidth keeps zero-valued bars visible in the chart.
const MinBarWidth = 5.0

// Range selects which months of the dataset the chart shows.
type Range string

const (
	RangeWeek  Range = "week"
	RangeMonth Range = "month"
	RangeYear  Range = "year"
)

// Ranges lists the selectable ranges in display order.
var Ranges = []Range{RangeWeek, RangeMonth, RangeYear}

// ParseRange maps a raw selector value to a Range. Unknown values fall back to RangeYear.
func ParseRange(s string) Range {
	switch Range(strings.ToLower(strings.TrimSpace(s))) {
	case RangeWeek:
		return RangeWeek
	case RangeMonth:
		return RangeMonth
	default:
		return RangeYear
	}
}

// Month is one calendar month of contribution counts.
type Month struct {
	Month        string `json:"month"`
	Commits      int    `json:"commits"`
	PullRequests int    `json:"pull_requests"`
}

// Active reports whether anything happened in the month.
func (m Month) Active() bool {
	return m.Commits > 0 || m.PullRequests > 0
}

// Dataset is the ordered twelve-month series plus the index of the current month.
type Dataset struct {
	Months  []Month
	Current int
}

// NewDataset validates the series and resolves the current month by label.
func NewDataset(months []Month, current string) (*Dataset, error) {
	if len(months) != 12 {
		return nil, fmt.Errorf("activity dataset must have 12 months, got %d", len(months))
	}
	for _, m := range months {
		if m.Commits < 0 || m.PullRequests < 0 {
			return nil, fmt.Errorf("month %s has negative counts", m.Month)
		}
	}
	idx := -1
	for i, m := range months {
		if strings.EqualFold(m.Month, current) {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, fmt.Errorf("current month %q not in dataset", current)
	}

	cp := make([]Month, len(months))
	copy(cp, months)
	return &Dataset{Months: cp, Current: idx}, nil
}

// CurrentMonth returns the record for the current active month.
func (d *Dataset) CurrentMonth() Month {
	return d.Months[d.Current]
}

// PreviousMonth returns the month before the current one, wrapping January to December.
func (d *Dataset) PreviousMonth() Month {
	return d.Months[(d.Current+len(d.Months)-1)%len(d.Months)]
}

// Filter returns the months shown for r, without touching the dataset.
func (d *Dataset) Filter(r Range) []Month {
	switch r {
	case RangeWeek:
		return []Month{d.CurrentMonth()}
	case RangeMonth:
		return []Month{d.PreviousMonth(), d.CurrentMonth()}
	default:
		out := make([]Month, 0, len(d.Months))
		for _, m := range d.Months {
			if m.Active() {
				out = append(out, m)
			}
		}
		return out
	}
}

// GlobalMax is the largest single commit or pull-request count across all twelve months.
func (d *Dataset) GlobalMax() int {
	maxVal := 0
	for _, m := range d.Months {
		if m.Commits > maxVal {
			maxVal = m.Commits
		}
		if m.PullRequests > maxVal {
			maxVal = m.PullRequests
		}
	}
	return maxVal
}

// BarWidth scales value against globalMax as a percentage, floored at MinBarWidth.
func BarWidth(value, globalMax int) float64 {
	if globalMax <= 0 {
		return MinBarWidth
	}
	w := float64(value) / float64(globalMax) * 100
	if w < MinBarWidth {
		return MinBarWidth
	}
	return w
}

// Bar is one row of the horizontal chart.
type Bar struct {
	Month
	CommitWidth float64 `json:"commit_width"`
	PRWidth     float64 `json:"pr_width"`
}

// Chart filters the dataset for r and sizes every bar against the full-year maximum,
// so the scale stays put when the range changes.
func (d *Dataset) Chart(r Range) []Bar {
	globalMax := d.GlobalMax()
	months := d.Filter(r)
	bars := make([]Bar, 0, len(months))
	for _, m := range months {
		bars = append(bars, Bar{
			Month:       m,
			CommitWidth: BarWidth(m.Commits, globalMax),
			PRWidth:     BarWidth(m.PullRequests, globalMax),
		})
	}
	return bars
}
