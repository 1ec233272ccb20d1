package commands

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zachkp/portfolio-dashboard/internal/activity"
	"github.com/Zachkp/portfolio-dashboard/internal/config"
	"github.com/Zachkp/portfolio-dashboard/internal/contact"
	"github.com/Zachkp/portfolio-dashboard/internal/metrics"
	"github.com/Zachkp/portfolio-dashboard/internal/portfolio"
	"github.com/Zachkp/portfolio-dashboard/internal/stats"
)

func TestBar(t *testing.T) {
	tests := []struct {
		name string
		pct  float64
		full int
	}{
		{"empty", 0, 0},
		{"floor", 5, 1},
		{"tiny non-zero still shows", 1, 1},
		{"three quarters", 75.7, 22},
		{"full", 100, barCells},
		{"clamped", 150, barCells},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := bar(tt.pct)
			assert.Equal(t, tt.full, strings.Count(b, "█"))
			assert.Equal(t, barCells, strings.Count(b, "█")+strings.Count(b, "░"))
		})
	}
}

func TestPad(t *testing.T) {
	assert.Equal(t, "Jan  ", pad("Jan", 5))
	assert.Equal(t, "Frontend", pad("Frontend", 8))
	assert.Equal(t, 4, len([]rune(pad("Frontend", 4))))
}

func testDataset(t *testing.T) *activity.Dataset {
	t.Helper()
	d, err := activity.NewDataset(portfolio.Activity, "Jan")
	require.NoError(t, err)
	return d
}

func TestWriteActivity(t *testing.T) {
	var buf bytes.Buffer
	writeActivity(&buf, testDataset(t), activity.RangeMonth)
	out := buf.String()

	assert.Contains(t, out, "Last 2 Months")
	assert.Contains(t, out, "Showing: Dec - Jan")
	dec, jan := strings.Index(out, "Dec   commits"), strings.Index(out, "Jan   commits")
	require.GreaterOrEqual(t, dec, 0)
	assert.Less(t, dec, jan)
	assert.NotContains(t, out, "Nov   commits")
	assert.Contains(t, out, strings.Repeat("█", barCells)+"   37")
	assert.Contains(t, out, "Total: 87 commits, 19 pull requests across 3 active months")
}

func TestWriteActivityYear(t *testing.T) {
	var buf bytes.Buffer
	writeActivity(&buf, testDataset(t), activity.RangeYear)
	out := buf.String()

	assert.Contains(t, out, "All Activity")
	assert.Contains(t, out, "(active months only)")
	assert.Equal(t, 3, strings.Count(out, " commits "))
	assert.NotContains(t, out, "Feb")
}

func TestWriteSkills(t *testing.T) {
	var buf bytes.Buffer
	writeSkills(&buf, portfolio.DefaultCatalog())
	out := buf.String()

	for _, s := range portfolio.Skills {
		assert.Contains(t, out, s.Name)
	}
	assert.Contains(t, out, "Distribution")
	assert.Contains(t, out, " 85.0%  (3 skills)")
	assert.Contains(t, out, "  0.0%  (0 skills)")
}

func TestActivityCommand(t *testing.T) {
	t.Setenv("ACTIVITY_CURRENT_MONTH", "Jan")
	t.Cleanup(func() {
		timeRange = string(activity.RangeMonth)
		rootCmd.SetArgs(nil)
	})

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetArgs([]string{"activity", "--range", "week"})
	require.NoError(t, rootCmd.Execute())

	assert.Contains(t, buf.String(), "This Month (Jan)")
	assert.Contains(t, buf.String(), "Showing: Jan")
}

func TestActivityCommandBadMonth(t *testing.T) {
	t.Setenv("ACTIVITY_CURRENT_MONTH", "Smarch")
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"activity"})
	assert.Error(t, rootCmd.Execute())
}

func TestNewMailer(t *testing.T) {
	cfg := &config.Config{ContactEmail: "me@example.com"}
	m, ok := newMailer(cfg).(contact.MailtoMailer)
	require.True(t, ok)
	assert.Equal(t, "me@example.com", m.To)

	cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass = "smtp.example.com", "587", "u", "p"
	_, ok = newMailer(cfg).(*contact.SMTPMailer)
	assert.True(t, ok)
}

func TestNewEnricher(t *testing.T) {
	feed := metrics.NewFeed(portfolio.DefaultTargets())
	panel := &stats.Panel{}

	e := newEnricher(&config.Config{GitHubUser: "someone"}, panel, feed)
	assert.Nil(t, e.Feed)
	assert.Same(t, panel, e.Panel)
	assert.NotNil(t, e.LeetCode)

	e = newEnricher(&config.Config{LiveMetrics: true}, panel, feed)
	assert.Same(t, feed, e.Feed)
}
