// Package metrics animates the dashboard's statistic counters from zero to their targets.
package metrics

import (
	"context"
	"math"
	"time"
)

const (
	DefaultDuration = 2000 * time.Millisecond
	DefaultSteps    = 60
)

// Targets maps a counter name (projects, commits, ...) to the value it settles on.
type Targets map[string]int

// Values is one displayed frame of the counters.
type Values map[string]int

// Equal reports whether both mappings hold the same names and values.
func (t Targets) Equal(other Targets) bool {
	if len(t) != len(other) {
		return false
	}
	for name, v := range t {
		ov, ok := other[name]
		if !ok || ov != v {
			return false
		}
	}
	return true
}

// Clone returns a copy that is safe to hand to another goroutine.
func (t Targets) Clone() Targets {
	out := make(Targets, len(t))
	for name, v := range t {
		out[name] = v
	}
	return out
}

// Ease is the cubic ease-out curve 1 - (1-p)^3, with p clamped to [0, 1].
func Ease(p float64) float64 {
	if p <= 0 {
		return 0
	}
	if p >= 1 {
		return 1
	}
	inv := 1 - p
	return 1 - inv*inv*inv
}

// Frame computes the counter values displayed after step of steps ticks.
// Values are truncated toward zero so the last step lands exactly on the target.
func Frame(targets Targets, step, steps int) Values {
	out := make(Values, len(targets))
	progress := 1.0
	if steps > 0 {
		progress = float64(step) / float64(steps)
	}
	eased := Ease(progress)
	for name, target := range targets {
		if target <= 0 {
			out[name] = 0
			continue
		}
		v := int(math.Floor(float64(target) * eased))
		if v > target {
			v = target
		}
		out[name] = v
	}
	return out
}

// Animator drives Frame on a ticker firing every Duration/Steps.
type Animator struct {
	Duration time.Duration
	Steps    int
}

// NewAnimator returns an animator, falling back to the defaults for non-positive inputs.
func NewAnimator(duration time.Duration, steps int) *Animator {
	if duration <= 0 {
		duration = DefaultDuration
	}
	if steps <= 0 {
		steps = DefaultSteps
	}
	return &Animator{Duration: duration, Steps: steps}
}

func (a *Animator) interval() time.Duration {
	iv := a.Duration / time.Duration(a.Steps)
	if iv <= 0 {
		iv = time.Millisecond
	}
	return iv
}

// Animate emits the zero frame, then one frame per tick until the targets are reached.
// It returns ctx.Err() if the context is cancelled first; the ticker never outlives the call.
func (a *Animator) Animate(ctx context.Context, targets Targets, emit func(step int, v Values)) error {
	emit(0, Frame(targets, 0, a.Steps))

	ticker := time.NewTicker(a.interval())
	defer ticker.Stop()

	for step := 1; step <= a.Steps; step++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			emit(step, Frame(targets, step, a.Steps))
		}
	}
	return nil
}

// Run animates the feed's current targets and restarts from zero every time they change.
// After a pass completes it waits for the next change. It returns when ctx is done.
func (a *Animator) Run(ctx context.Context, feed *Feed, emit func(step int, v Values)) error {
	updates, unsubscribe := feed.Subscribe()
	defer unsubscribe()

	current := feed.Current()
	for {
		passCtx, cancel := context.WithCancel(ctx)
		done := make(chan error, 1)
		go func(targets Targets) {
			done <- a.Animate(passCtx, targets, emit)
		}(current)

		select {
		case <-ctx.Done():
			cancel()
			<-done
			return ctx.Err()
		case next := <-updates:
			cancel()
			<-done
			current = next
			continue
		case <-done:
			cancel()
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case next := <-updates:
			current = next
		}
	}
}
