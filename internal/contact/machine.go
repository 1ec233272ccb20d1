package contact

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"
)

const (
	DefaultSubmitDelay = time.Second
	DefaultResetDelay  = 5 * time.Second
)

var (
	ErrBusy   = errors.New("a message is already being sent")
	ErrClosed = errors.New("contact form closed")
)

// Status of the contact form.
type Status string

const (
	StatusIdle       Status = "idle"
	StatusSubmitting Status = "submitting"
	StatusSent       Status = "sent"
)

// Machine walks idle -> submitting -> sent -> idle. Only one submission runs at a time.
type Machine struct {
	mailer      Mailer
	submitDelay time.Duration
	resetDelay  time.Duration

	mu         sync.Mutex
	status     Status
	resetTimer *time.Timer
	done       chan struct{}
	closed     bool
	subs       map[int]func(Status)
	nextID     int
}

func NewMachine(mailer Mailer, submitDelay, resetDelay time.Duration) *Machine {
	return &Machine{
		mailer:      mailer,
		submitDelay: submitDelay,
		resetDelay:  resetDelay,
		status:      StatusIdle,
		done:        make(chan struct{}),
		subs:        make(map[int]func(Status)),
	}
}

func (m *Machine) Status() Status {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.status
}

// Subscribe registers fn for every status change and returns a func that removes it.
func (m *Machine) Subscribe(fn func(Status)) func() {
	m.mu.Lock()
	defer m.mu.Unlock()
	id := m.nextID
	m.nextID++
	m.subs[id] = fn
	return func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		delete(m.subs, id)
	}
}

// transition must be called with m.mu held; it returns the callbacks to run after unlocking.
func (m *Machine) transition(to Status) []func(Status) {
	m.status = to
	fns := make([]func(Status), 0, len(m.subs))
	for _, fn := range m.subs {
		fns = append(fns, fn)
	}
	return fns
}

func notify(fns []func(Status), s Status) {
	for _, fn := range fns {
		fn(s)
	}
}

func (m *Machine) set(to Status) {
	m.mu.Lock()
	fns := m.transition(to)
	m.mu.Unlock()
	notify(fns, to)
}

// Submit validates f, waits out the submit delay, delivers it and moves to sent.
// The form drops back to idle after the reset delay. Validation failures leave the
// status untouched; delivery failures and cancellation return it to idle.
func (m *Machine) Submit(ctx context.Context, f Form) (Handoff, error) {
	f = f.Normalize()
	if err := f.Validate(); err != nil {
		return Handoff{}, err
	}

	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return Handoff{}, ErrClosed
	}
	if m.status != StatusIdle {
		m.mu.Unlock()
		return Handoff{}, ErrBusy
	}
	fns := m.transition(StatusSubmitting)
	m.mu.Unlock()
	notify(fns, StatusSubmitting)

	wait := time.NewTimer(m.submitDelay)
	select {
	case <-ctx.Done():
		wait.Stop()
		m.set(StatusIdle)
		return Handoff{}, ctx.Err()
	case <-m.done:
		wait.Stop()
		return Handoff{}, ErrClosed
	case <-wait.C:
	}

	handoff, err := m.mailer.Deliver(ctx, f)
	if err != nil {
		m.set(StatusIdle)
		return Handoff{}, fmt.Errorf("failed to deliver message: %w", err)
	}

	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return handoff, nil
	}
	fns = m.transition(StatusSent)
	m.resetTimer = time.AfterFunc(m.resetDelay, m.reset)
	m.mu.Unlock()
	notify(fns, StatusSent)

	return handoff, nil
}

func (m *Machine) reset() {
	m.mu.Lock()
	if m.closed || m.status != StatusSent {
		m.mu.Unlock()
		return
	}
	fns := m.transition(StatusIdle)
	m.resetTimer = nil
	m.mu.Unlock()
	notify(fns, StatusIdle)
}

// Close cancels pending timers. A Submit waiting on its delay returns ErrClosed.
func (m *Machine) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return
	}
	m.closed = true
	close(m.done)
	if m.resetTimer != nil {
		m.resetTimer.Stop()
		m.resetTimer = nil
	}
}
