package animate

import (
	"maps"
	"slices"
	"sync"
	"time"

	"github.com/lucasb-eyer/go-colorful"
)

// Target is the attribute store transitions write into.
type Target interface {
	Num(id, attr string) (float64, bool)
	SetNum(id, attr string, v float64)
	Str(id, attr string) (string, bool)
	SetStr(id, attr, v string)
	Remove(id string)
}

// ColorAttrs are the string attributes blended as colors.
var ColorAttrs = map[string]bool{"fill": true, "stroke": true}

// Transition moves one element's attributes to target values.
type Transition struct {
	Element  string
	Duration time.Duration
	Num      map[string]float64
	Str      map[string]string

	// Remove deletes the element from the target once the transition ends.
	Remove bool
}

// Done reports a transition that ran to completion.
type Done struct {
	Element string
	Removed bool
}

type run struct {
	tr    Transition
	start time.Time
	num   map[string][2]float64
	color map[string][2]colorful.Color
}

// Scheduler runs transitions keyed by element.
// It is safe for concurrent use.
type Scheduler struct {
	mu     sync.Mutex
	target Target
	easing Easing
	active map[string]*run
}

// SchedulerOption configures a Scheduler.
type SchedulerOption func(*Scheduler)

// WithEasing sets the curve used for every transition.
func WithEasing(e Easing) SchedulerOption {
	return func(s *Scheduler) { s.easing = e }
}

// NewScheduler returns a scheduler writing into target.
func NewScheduler(target Target, opts ...SchedulerOption) *Scheduler {
	s := &Scheduler{
		target: target,
		easing: DefaultEasing,
		active: make(map[string]*run),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Schedule starts tr at now, superseding any transition on the same element.
// Start values are read from the target after the superseded transition has
// been sampled at now. Attributes the target lacks jump to their end value.
// A transition with no duration completes immediately and is reported as
// done.
func (s *Scheduler) Schedule(now time.Time, tr Transition) (Done, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if old, ok := s.active[tr.Element]; ok {
		s.apply(old, s.progress(old, now))
		delete(s.active, tr.Element)
	}

	r := &run{
		tr:    tr,
		start: now,
		num:   make(map[string][2]float64, len(tr.Num)),
		color: make(map[string][2]colorful.Color),
	}
	for attr, to := range tr.Num {
		from, ok := s.target.Num(tr.Element, attr)
		if !ok {
			from = to
		}
		r.num[attr] = [2]float64{from, to}
	}
	for attr, to := range tr.Str {
		if ColorAttrs[attr] {
			if cur, ok := s.target.Str(tr.Element, attr); ok {
				a, errA := colorful.Hex(cur)
				b, errB := colorful.Hex(to)
				if errA == nil && errB == nil {
					r.color[attr] = [2]colorful.Color{a, b}
					continue
				}
			}
		}
		s.target.SetStr(tr.Element, attr, to)
	}

	if tr.Duration <= 0 {
		return s.finish(r), true
	}
	s.apply(r, 0)
	s.active[tr.Element] = r
	return Done{}, false
}

// Tick advances every transition to now and returns those that completed,
// ordered by element id.
func (s *Scheduler) Tick(now time.Time) []Done {
	s.mu.Lock()
	defer s.mu.Unlock()

	var done []Done
	for _, id := range slices.Sorted(maps.Keys(s.active)) {
		r := s.active[id]
		t := s.progress(r, now)
		if t < 1 {
			s.apply(r, t)
			continue
		}
		delete(s.active, id)
		done = append(done, s.finish(r))
	}
	return done
}

// Cancel stops element's transition where it stands.
// It reports whether a transition was active.
func (s *Scheduler) Cancel(element string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.active[element]
	delete(s.active, element)
	return ok
}

// Active reports whether element has a transition in flight.
func (s *Scheduler) Active(element string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.active[element]
	return ok
}

// Removing reports whether element's in-flight transition will remove it.
func (s *Scheduler) Removing(element string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.active[element]
	return ok && r.tr.Remove
}

// Pending returns the number of transitions in flight.
func (s *Scheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.active)
}

// Deadline returns when the last in-flight transition ends.
func (s *Scheduler) Deadline() (time.Time, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var last time.Time
	for _, r := range s.active {
		if end := r.start.Add(r.tr.Duration); end.After(last) {
			last = end
		}
	}
	return last, len(s.active) > 0
}

func (s *Scheduler) progress(r *run, now time.Time) float64 {
	if r.tr.Duration <= 0 {
		return 1
	}
	t := float64(now.Sub(r.start)) / float64(r.tr.Duration)
	return min(max(t, 0), 1)
}

func (s *Scheduler) apply(r *run, t float64) {
	k := s.easing.Apply(t)
	for attr, ends := range r.num {
		s.target.SetNum(r.tr.Element, attr, ends[0]+(ends[1]-ends[0])*k)
	}
	for attr, ends := range r.color {
		s.target.SetStr(r.tr.Element, attr, ends[0].BlendRgb(ends[1], k).Clamped().Hex())
	}
}

func (s *Scheduler) finish(r *run) Done {
	for attr, ends := range r.num {
		s.target.SetNum(r.tr.Element, attr, ends[1])
	}
	for attr := range r.color {
		s.target.SetStr(r.tr.Element, attr, r.tr.Str[attr])
	}
	if r.tr.Remove {
		s.target.Remove(r.tr.Element)
	}
	return Done{Element: r.tr.Element, Removed: r.tr.Remove}
}
