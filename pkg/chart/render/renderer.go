package render

import (
	"context"
	"maps"
	"slices"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/stackbar/pkg/chart"
	"github.com/matzehuels/stackbar/pkg/chart/animate"
	"github.com/matzehuels/stackbar/pkg/chart/layout"
	"github.com/matzehuels/stackbar/pkg/chart/reconcile"
	"github.com/matzehuels/stackbar/pkg/chart/scene"
	"github.com/matzehuels/stackbar/pkg/observability"
)

// Surface is the drawing collaborator a Renderer writes to.
// [scene.Graph] implements it.
type Surface interface {
	animate.Target
	Create(id string, kind scene.Kind, class string) bool
	Has(id string) bool
	SetTicks(id string, ticks []scene.Tick)
}

// resizer is implemented by surfaces whose canvas follows the viewport.
type resizer interface {
	Resize(width, height float64)
}

// Partition lists one collection's keys by outcome.
type Partition struct {
	Enter  []string `json:"enter"`
	Update []string `json:"update"`
	Exit   []string `json:"exit"`
}

// Report describes one Render call.
type Report struct {
	Chart       string                   `json:"chart"`
	Started     time.Time                `json:"started"`
	Layout      layout.Layout            `json:"-"`
	Collections map[Collection]Partition `json:"collections"`
}

// Partition returns c's partition, empty if c was not reconciled.
func (r *Report) Partition(c Collection) Partition {
	return r.Collections[c]
}

type binding struct {
	coll Collection
	key  string
}

type bindings struct {
	live    []string
	exiting []string
}

func (b *bindings) keys() []string {
	return append(slices.Clone(b.live), b.exiting...)
}

// Renderer is one chart instance.
type Renderer struct {
	mu      sync.Mutex
	id      string
	surface Surface
	sched   *animate.Scheduler
	logger  *log.Logger
	clock   func() time.Time
	yLabel  string
	format  func(float64) string
	easing  animate.Easing

	bound  map[Collection]*bindings
	owners map[string]binding

	layout *layout.Layout
	boxes  map[string]layout.Box
	hover  string
}

// New returns a renderer drawing onto surface.
func New(surface Surface, opts ...Option) *Renderer {
	r := &Renderer{
		id:      uuid.NewString(),
		surface: surface,
		logger:  discardLogger(),
		clock:   time.Now,
		yLabel:  DefaultYAxisLabel,
		format:  PlainNumber,
		easing:  animate.DefaultEasing,
		bound:   make(map[Collection]*bindings, len(Collections)),
		owners:  make(map[string]binding),
		boxes:   make(map[string]layout.Box),
	}
	for _, opt := range opts {
		opt(r)
	}
	for _, c := range Collections {
		r.bound[c] = &bindings{}
	}
	r.sched = animate.NewScheduler(surface, animate.WithEasing(r.easing))
	return r
}

// ID returns the renderer's instance id.
func (r *Renderer) ID() string { return r.id }

type plan struct {
	coll Collection
	part reconcile.Partition[element, string]
}

// Render reconciles ds against the current state and schedules its
// transitions. Invalid input is reported before anything on the surface
// changes.
func (r *Renderer) Render(ctx context.Context, ds chart.Dataset, vp layout.Viewport) (*Report, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	hooks := observability.Render()
	now := r.clock()
	hooks.OnRenderStart(ctx, len(ds.Bars))

	rep, err := r.render(ctx, now, ds, vp)
	hooks.OnRenderComplete(ctx, len(ds.Bars), r.clock().Sub(now), err)
	if err != nil {
		r.logger.Debug("render rejected", "chart", r.id, "error", err)
		return nil, err
	}
	return rep, nil
}

func (r *Renderer) render(ctx context.Context, now time.Time, ds chart.Dataset, vp layout.Viewport) (*Report, error) {
	l, err := layout.New(ds, vp)
	if err != nil {
		return nil, err
	}
	boxes, err := l.Boxes(ds)
	if err != nil {
		return nil, err
	}

	targets := map[Collection][]element{
		CollectionChart:      chartElements(l),
		CollectionAxes:       axisElements(l, ds, r.yLabel),
		CollectionLegendText: legendTextElements(l),
	}
	if targets[CollectionLegendRect], err = legendRectElements(l); err != nil {
		return nil, err
	}
	if targets[CollectionBoxes], err = boxElements(l, boxes); err != nil {
		return nil, err
	}
	if targets[CollectionTotals], err = totalElements(l, ds, r.format); err != nil {
		return nil, err
	}
	if targets[CollectionImages], err = imageElements(l, ds); err != nil {
		return nil, err
	}

	plans := make([]plan, 0, len(Collections))
	for _, c := range Collections {
		prev := r.bound[c].keys()
		part := reconcile.Diff(targets[c], func(e element, _ int) string { return e.key }, prev)
		plans = append(plans, plan{coll: c, part: part})
	}

	if s, ok := r.surface.(resizer); ok {
		s.Resize(vp.Width, vp.Height)
	}

	rep := &Report{
		Chart:       r.id,
		Started:     now,
		Layout:      l,
		Collections: make(map[Collection]Partition, len(plans)),
	}
	hooks := observability.Render()
	for _, p := range plans {
		part := r.apply(now, p)
		rep.Collections[p.coll] = part
		enter, update, exit := len(part.Enter), len(part.Update), len(part.Exit)
		hooks.OnReconcile(ctx, string(p.coll), enter, update, exit)
		r.logger.Debug("reconciled", "chart", r.id, "collection", p.coll,
			"enter", enter, "update", update, "exit", exit)
	}

	r.layout = &l
	r.boxes = make(map[string]layout.Box, len(boxes))
	for _, b := range boxes {
		r.boxes[b.ID] = b
	}
	if r.hover != "" {
		if b, ok := r.boxes[r.hover]; ok {
			r.placeHover(b)
		} else {
			r.unhover()
		}
	}
	return rep, nil
}

func (r *Renderer) apply(now time.Time, p plan) Partition {
	info := collectionInfos[p.coll]
	b := r.bound[p.coll]
	var out Partition

	for _, it := range p.part.Enter {
		id := ElementID(p.coll, it.Key)
		if !r.surface.Create(id, info.kind, string(p.coll)) {
			r.update(now, info, id, it.Value)
		} else {
			r.enter(now, info, id, it.Value)
		}
		r.owners[id] = binding{coll: p.coll, key: it.Key}
		out.Enter = append(out.Enter, it.Key)
	}
	for _, it := range p.part.Update {
		id := ElementID(p.coll, it.Key)
		r.update(now, info, id, it.Value)
		out.Update = append(out.Update, it.Key)
	}
	for _, key := range p.part.Exit {
		if !slices.Contains(b.exiting, key) {
			out.Exit = append(out.Exit, key)
		}
		id := ElementID(p.coll, key)
		if r.sched.Removing(id) {
			continue
		}
		r.settle(r.sched.Schedule(now, animate.Transition{
			Element:  id,
			Duration: info.policy.Exit,
			Num:      fadeTo(info.fade, 0),
			Remove:   true,
		}))
	}

	live := p.part.Keys()
	exiting := slices.DeleteFunc(b.exiting, func(k string) bool { return slices.Contains(live, k) })
	for _, key := range p.part.Exit {
		if !slices.Contains(exiting, key) && r.sched.Removing(ElementID(p.coll, key)) {
			exiting = append(exiting, key)
		}
	}
	b.live, b.exiting = live, exiting
	return out
}

func (r *Renderer) enter(now time.Time, info collectionInfo, id string, e element) {
	for attr, v := range e.num {
		r.surface.SetNum(id, attr, v)
	}
	for attr, v := range e.str {
		r.surface.SetStr(id, attr, v)
	}
	if e.ticks != nil {
		r.surface.SetTicks(id, e.ticks)
	}
	if info.fade == "" {
		return
	}
	if info.policy.Enter <= 0 {
		r.surface.SetNum(id, info.fade, 1)
		return
	}
	r.surface.SetNum(id, info.fade, 0)
	r.settle(r.sched.Schedule(now, animate.Transition{
		Element:  id,
		Duration: info.policy.Enter,
		Num:      fadeTo(info.fade, 1),
	}))
}

func (r *Renderer) update(now time.Time, info collectionInfo, id string, e element) {
	num := maps.Clone(e.num)
	if num == nil {
		num = make(map[string]float64, 1)
	}
	if info.fade != "" {
		num[info.fade] = 1
	}
	if e.ticks != nil {
		r.surface.SetTicks(id, e.ticks)
	}
	r.settle(r.sched.Schedule(now, animate.Transition{
		Element:  id,
		Duration: info.policy.Update,
		Num:      num,
		Str:      e.str,
	}))
}

func fadeTo(attr string, v float64) map[string]float64 {
	if attr == "" {
		return nil
	}
	return map[string]float64{attr: v}
}

// Advance moves every transition to now and unbinds elements whose exit
// completed. It returns the transitions that finished.
func (r *Renderer) Advance(now time.Time) []animate.Done {
	r.mu.Lock()
	defer r.mu.Unlock()

	done := r.sched.Tick(now)
	for _, d := range done {
		r.finish(d)
	}
	return done
}

func (r *Renderer) settle(d animate.Done, ok bool) {
	if ok {
		r.finish(d)
	}
}

func (r *Renderer) finish(d animate.Done) {
	observability.Render().OnTransitionDone(context.Background(), d.Element, d.Removed)
	if !d.Removed {
		return
	}
	own, ok := r.owners[d.Element]
	if !ok {
		return
	}
	delete(r.owners, d.Element)
	b := r.bound[own.coll]
	b.exiting = slices.DeleteFunc(b.exiting, func(k string) bool { return k == own.key })
	r.logger.Debug("unbound", "chart", r.id, "collection", own.coll, "key", own.key)
}

// Bound returns c's bound keys: live keys in dataset order followed by keys
// still running their exit.
func (r *Renderer) Bound(c Collection) []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bound[c]
	if !ok {
		return nil
	}
	return b.keys()
}

// Exiting returns c's keys whose exit has not completed.
func (r *Renderer) Exiting(c Collection) []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bound[c]
	if !ok {
		return nil
	}
	return slices.Clone(b.exiting)
}

// Idle reports whether no transition is in flight.
func (r *Renderer) Idle() bool {
	return r.sched.Pending() == 0
}

// Deadline returns when the last in-flight transition ends.
func (r *Renderer) Deadline() (time.Time, bool) {
	return r.sched.Deadline()
}
