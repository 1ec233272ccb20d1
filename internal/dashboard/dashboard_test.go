package dashboard

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zachkp/portfolio-dashboard/internal/activity"
	"github.com/Zachkp/portfolio-dashboard/internal/contact"
	"github.com/Zachkp/portfolio-dashboard/internal/metrics"
	"github.com/Zachkp/portfolio-dashboard/internal/portfolio"
)

func newMachine() *contact.Machine {
	return contact.NewMachine(contact.MailtoMailer{To: "me@example.com"}, time.Millisecond, time.Millisecond)
}

func newState(t *testing.T) *State {
	t.Helper()
	s := NewState(portfolio.DefaultCatalog(), newMachine())
	t.Cleanup(s.Close)
	return s
}

func TestParseTab(t *testing.T) {
	assert.Equal(t, TabSkills, ParseTab("skills"))
	assert.Equal(t, TabContact, ParseTab("contact"))
	assert.Equal(t, TabOverview, ParseTab("admin"))
	assert.Equal(t, "Projects", TabProjects.Title())
}

func TestNewState_Defaults(t *testing.T) {
	snap := newState(t).Snapshot()
	assert.Equal(t, TabOverview, snap.Tab)
	assert.Equal(t, activity.RangeMonth, snap.TimeRange)
	assert.Nil(t, snap.Selected)
	assert.Equal(t, contact.StatusIdle, snap.Contact)
	assert.Nil(t, snap.Metrics)
}

func TestSetMetrics_KeptAcrossTabChanges(t *testing.T) {
	s := newState(t)
	frame := metrics.Values{"commits": 87, "projects": 4}
	s.SetMetrics(frame)
	frame["commits"] = 0

	s.SetTab(TabProjects)
	s.SetTab(TabOverview)

	snap := s.Snapshot()
	assert.Equal(t, metrics.Values{"commits": 87, "projects": 4}, snap.Metrics)

	snap.Metrics["commits"] = 1
	assert.Equal(t, 87, s.Snapshot().Metrics["commits"])
}

func TestSelectThenClear(t *testing.T) {
	s := newState(t)

	p, err := s.SelectProject(1)
	require.NoError(t, err)
	assert.Equal(t, "ALRIS", p.Name)
	require.NotNil(t, s.Snapshot().Selected)

	s.ClearSelection()
	assert.Nil(t, s.Snapshot().Selected)
}

func TestSelectReplacesPrevious(t *testing.T) {
	s := newState(t)

	_, err := s.SelectProject(1)
	require.NoError(t, err)
	_, err = s.SelectProject(3)
	require.NoError(t, err)

	snap := s.Snapshot()
	require.NotNil(t, snap.Selected)
	assert.Equal(t, 3, snap.Selected.ID)

	s.ClearSelection()
	assert.Nil(t, s.Snapshot().Selected, "clearing must not fall back to an earlier selection")
}

func TestSelectUnknownKeepsSelection(t *testing.T) {
	s := newState(t)
	_, err := s.SelectProject(2)
	require.NoError(t, err)

	_, err = s.SelectProject(99)
	assert.ErrorIs(t, err, portfolio.ErrProjectNotFound)
	assert.Equal(t, 2, s.Snapshot().Selected.ID)
}

func TestSubscribe(t *testing.T) {
	s := newState(t)
	var got []Snapshot
	unsubscribe := s.Subscribe(func(snap Snapshot) { got = append(got, snap) })

	s.SetTab(TabSkills)
	s.SetTimeRange(activity.RangeYear)
	unsubscribe()
	s.SetTab(TabProjects)

	require.Len(t, got, 2)
	assert.Equal(t, TabSkills, got[0].Tab)
	assert.Equal(t, activity.RangeYear, got[1].TimeRange)
}

func TestSessions(t *testing.T) {
	sessions := NewSessions(portfolio.DefaultCatalog(), newMachine, time.Minute)
	defer sessions.Close()

	id, st := sessions.Get("")
	require.NotEmpty(t, id)
	st.SetTab(TabSkills)

	sameID, same := sessions.Get(id)
	assert.Equal(t, id, sameID)
	assert.Same(t, st, same)
	assert.Equal(t, TabSkills, same.Snapshot().Tab)

	otherID, other := sessions.Get("forged")
	assert.NotEqual(t, "forged", otherID)
	assert.NotSame(t, st, other)
	assert.Equal(t, 2, sessions.Len())
}

func TestSessions_Evict(t *testing.T) {
	sessions := NewSessions(portfolio.DefaultCatalog(), newMachine, time.Minute)
	defer sessions.Close()

	now := time.Now()
	sessions.now = func() time.Time { return now }
	sessions.Get("")

	now = now.Add(2 * time.Minute)
	fresh, _ := sessions.Get("")

	assert.Equal(t, 1, sessions.Evict())
	assert.Equal(t, 1, sessions.Len())
	id, _ := sessions.Get(fresh)
	assert.Equal(t, fresh, id)
}
