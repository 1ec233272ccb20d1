// Package dashboard keeps the per-visitor UI state: active tab, selected project,
// chart range and the contact form.
package dashboard

import (
	"strings"
	"sync"

	"github.com/Zachkp/portfolio-dashboard/internal/activity"
	"github.com/Zachkp/portfolio-dashboard/internal/contact"
	"github.com/Zachkp/portfolio-dashboard/internal/metrics"
	"github.com/Zachkp/portfolio-dashboard/internal/portfolio"
)

type Tab string

const (
	TabOverview Tab = "overview"
	TabProjects Tab = "projects"
	TabSkills   Tab = "skills"
	TabContact  Tab = "contact"
)

var Tabs = []Tab{TabOverview, TabProjects, TabSkills, TabContact}

// ParseTab falls back to the overview for anything unknown.
func ParseTab(s string) Tab {
	for _, t := range Tabs {
		if string(t) == s {
			return t
		}
	}
	return TabOverview
}

// Title is the button label for the tab.
func (t Tab) Title() string {
	s := string(t)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// Snapshot is an immutable copy of State handed to views and subscribers.
type Snapshot struct {
	Tab       Tab
	Selected  *portfolio.Project
	TimeRange activity.Range
	Contact   contact.Status

	// Metrics is the last counter frame sent to this visitor, nil before the first one.
	Metrics metrics.Values
}

// State is observable: every change is pushed to subscribers as a Snapshot.
type State struct {
	catalog *portfolio.Catalog
	contact *contact.Machine

	mu        sync.Mutex
	tab       Tab
	selected  *portfolio.Project
	timeRange activity.Range
	metrics   metrics.Values
	subs      map[int]func(Snapshot)
	nextID    int

	unsubscribeContact func()
}

func NewState(catalog *portfolio.Catalog, machine *contact.Machine) *State {
	s := &State{
		catalog:   catalog,
		contact:   machine,
		tab:       TabOverview,
		timeRange: activity.RangeMonth,
		subs:      make(map[int]func(Snapshot)),
	}
	s.unsubscribeContact = machine.Subscribe(func(contact.Status) { s.publish() })
	return s
}

// Contact exposes the session's contact form machine.
func (s *State) Contact() *contact.Machine {
	return s.contact
}

func (s *State) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *State) snapshotLocked() Snapshot {
	snap := Snapshot{
		Tab:       s.tab,
		TimeRange: s.timeRange,
		Contact:   s.contact.Status(),
	}
	if s.selected != nil {
		p := *s.selected
		snap.Selected = &p
	}
	if s.metrics != nil {
		snap.Metrics = make(metrics.Values, len(s.metrics))
		for name, v := range s.metrics {
			snap.Metrics[name] = v
		}
	}
	return snap
}

// Subscribe registers fn for state changes and returns a func that removes it.
func (s *State) Subscribe(fn func(Snapshot)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, id)
	}
}

func (s *State) publish() {
	s.mu.Lock()
	snap := s.snapshotLocked()
	fns := make([]func(Snapshot), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn(snap)
	}
}

func (s *State) SetTab(t Tab) {
	s.mu.Lock()
	s.tab = t
	s.mu.Unlock()
	s.publish()
}

func (s *State) SetTimeRange(r activity.Range) {
	s.mu.Lock()
	s.timeRange = r
	s.mu.Unlock()
	s.publish()
}

// SetMetrics records the counter frame the visitor is looking at, so re-rendered
// fragments show it instead of starting again from zero.
func (s *State) SetMetrics(v metrics.Values) {
	cp := make(metrics.Values, len(v))
	for name, n := range v {
		cp[name] = n
	}
	s.mu.Lock()
	s.metrics = cp
	s.mu.Unlock()
	s.publish()
}

// SelectProject makes the project the one shown in the modal, replacing any other.
// An unknown id leaves the selection unchanged.
func (s *State) SelectProject(id int) (*portfolio.Project, error) {
	p, err := s.catalog.Project(id)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	s.selected = p
	s.mu.Unlock()
	s.publish()
	return p, nil
}

// ClearSelection closes the modal.
func (s *State) ClearSelection() {
	s.mu.Lock()
	s.selected = nil
	s.mu.Unlock()
	s.publish()
}

// Close releases the contact machine's timers.
func (s *State) Close() {
	s.unsubscribeContact()
	s.contact.Close()
}
