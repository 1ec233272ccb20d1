package server

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/portfolio-dashboard/internal/activity"
	"github.com/Zachkp/portfolio-dashboard/internal/dashboard"
	"github.com/Zachkp/portfolio-dashboard/internal/metrics"
	"github.com/Zachkp/portfolio-dashboard/internal/portfolio"
	"github.com/Zachkp/portfolio-dashboard/internal/preference"
	"github.com/Zachkp/portfolio-dashboard/internal/stats"
)

// StatCard renders one animated counter. Value is the frame the visitor last saw;
// the metrics stream takes over in the browser.
type StatCard struct {
	Key   string
	Label string
	Value int
	Trend int
	Color string
	Icon  Icon
}

func statCards(values metrics.Values) []StatCard {
	return []StatCard{
		{Key: "projects", Label: "Active Projects", Value: values["projects"], Trend: 12, Color: "from-blue-500 to-cyan-500", Icon: IconCode},
		{Key: "commits", Label: "Total Commits", Value: values["commits"], Trend: 8, Color: "from-purple-500 to-pink-500", Icon: IconZap},
		{Key: "stars", Label: "GitHub Stars", Value: values["stars"], Trend: 24, Color: "from-green-500 to-emerald-500", Icon: IconAward},
		{Key: "contributions", Label: "Contributions", Value: values["contributions"], Trend: 15, Color: "from-orange-500 to-red-500", Icon: IconTarget},
	}
}

type tabView struct {
	Tab    dashboard.Tab
	Title  string
	Active bool
}

type rangeOption struct {
	Value    activity.Range
	Label    string
	Selected bool
}

type chartView struct {
	Range   activity.Range
	Caption string
	Options []rangeOption
	Bars    []activity.Bar
	Summary activity.Summary
}

type leetCodeView struct {
	Loading bool
	Stats   *stats.LeetCodeStats
}

type pageData struct {
	Profile      portfolio.Profile
	Theme        preference.Theme
	Tabs         []tabView
	Active       dashboard.Tab
	Cards        []StatCard
	Chart        chartView
	Recent       []portfolio.Project
	Projects     []portfolio.Project
	Skills       []portfolio.Skill
	Distribution []portfolio.CategoryAverage
	LeetCode     leetCodeView
	Selected     *portfolio.Project
	Contact      string
	TrendIcon    Icon
}

func (s *Server) chart(r activity.Range) chartView {
	options := make([]rangeOption, 0, len(activity.Ranges))
	for _, opt := range activity.Ranges {
		options = append(options, rangeOption{Value: opt, Label: s.Activity.Label(opt), Selected: opt == r})
	}
	return chartView{
		Range:   r,
		Caption: s.Activity.Caption(r),
		Options: options,
		Bars:    s.Activity.Chart(r),
		Summary: s.Activity.Summarize(),
	}
}

func (s *Server) leetCode() leetCodeView {
	lc, ok := s.Panel.LeetCode()
	return leetCodeView{Loading: !ok, Stats: lc}
}

// counters is the frame the visitor last saw, or the zero frame before the stream starts.
func (s *Server) counters(snap dashboard.Snapshot) metrics.Values {
	if snap.Metrics != nil {
		return snap.Metrics
	}
	return metrics.Frame(s.Feed.Current(), 0, s.Animator.Steps)
}

// theme falls back to light when the stored preference cannot be read.
func (s *Server) theme(c *gin.Context) preference.Theme {
	t, err := s.Theme.Theme(c.Request.Context(), visitorFrom(c))
	if err != nil {
		log.Printf("Error reading theme preference: %v", err)
	}
	return t
}

// page re-derives everything the templates need from the current snapshot.
func (s *Server) page(c *gin.Context, snap dashboard.Snapshot) pageData {
	tabs := make([]tabView, 0, len(dashboard.Tabs))
	for _, t := range dashboard.Tabs {
		tabs = append(tabs, tabView{Tab: t, Title: t.Title(), Active: t == snap.Tab})
	}
	return pageData{
		Profile:      s.Catalog.Profile,
		Theme:        s.theme(c),
		Tabs:         tabs,
		Active:       snap.Tab,
		Cards:        statCards(s.counters(snap)),
		Chart:        s.chart(snap.TimeRange),
		Recent:       s.Catalog.Recent(3),
		Projects:     s.Catalog.Projects,
		Skills:       s.Catalog.Skills,
		Distribution: portfolio.Distribution(s.Catalog.Skills, s.Catalog.Categories),
		LeetCode:     s.leetCode(),
		Selected:     snap.Selected,
		Contact:      string(snap.Contact),
		TrendIcon:    IconTrend,
	}
}
