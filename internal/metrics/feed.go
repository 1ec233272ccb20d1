package metrics

import "sync"

// Feed holds the current counter targets and tells subscribers when they change.
type Feed struct {
	mu      sync.Mutex
	current Targets
	subs    map[int]chan Targets
	nextID  int
}

func NewFeed(initial Targets) *Feed {
	return &Feed{
		current: initial.Clone(),
		subs:    make(map[int]chan Targets),
	}
}

// Current returns a copy of the targets in effect.
func (f *Feed) Current() Targets {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.current.Clone()
}

// Set replaces the targets. Subscribers are notified only if the mapping actually changed.
func (f *Feed) Set(targets Targets) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.current.Equal(targets) {
		return false
	}
	f.current = targets.Clone()
	for _, ch := range f.subs {
		// Latest value wins; a slow subscriber only needs the newest targets.
		select {
		case <-ch:
		default:
		}
		ch <- f.current.Clone()
	}
	return true
}

// Update sets a single counter target, keeping the others.
func (f *Feed) Update(name string, target int) bool {
	next := f.Current()
	next[name] = target
	return f.Set(next)
}

// Subscribe returns a channel of target changes and a func that releases it.
func (f *Feed) Subscribe() (<-chan Targets, func()) {
	f.mu.Lock()
	defer f.mu.Unlock()

	id := f.nextID
	f.nextID++
	ch := make(chan Targets, 1)
	f.subs[id] = ch

	return ch, func() {
		f.mu.Lock()
		defer f.mu.Unlock()
		delete(f.subs, id)
	}
}
