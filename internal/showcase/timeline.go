package showcase

import (
	"encoding/json"
	"sort"
)

// Element is an animated part of a panel.
type Element int

const (
	PanelRoot Element = iota
	Visual
	Content
	Highlight
	Badge
	Limits
)

var elementNames = [...]string{"panel", "visual", "content", "highlight", "badge", "limits"}

func (e Element) String() string {
	if e < 0 || int(e) >= len(elementNames) {
		return "unknown"
	}
	return elementNames[e]
}

// MarshalText encodes the element by name.
func (e Element) MarshalText() ([]byte, error) { return []byte(e.String()), nil }

// Target addresses one animated element. Item indexes highlights.
type Target struct {
	Panel   int     `json:"panel"`
	Element Element `json:"el"`
	Item    int     `json:"item"`
}

// State is the animated property set of one element. Visible only ever
// changes on panel roots; inner elements fade with Opacity.
type State struct {
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Scale   float64 `json:"scale"`
	Opacity float64 `json:"opacity"`
	Visible bool    `json:"visible"`
}

var (
	shown      = State{Scale: 1, Opacity: 1, Visible: true}
	hiddenRoot = State{Scale: 1}
)

func lerp(a, b, t float64) float64 { return a + (b-a)*t }

// Step tweens one element from From to To. Start is absolute timeline time;
// Label is the start of the segment the step belongs to and Offset its
// position within it.
type Step struct {
	Target
	Segment  int     `json:"segment"`
	Label    float64 `json:"label"`
	Offset   float64 `json:"offset"`
	Start    float64 `json:"start"`
	Duration float64 `json:"dur"`
	Ease     Ease    `json:"ease"`
	From     State   `json:"from"`
	To       State   `json:"to"`

	slot int
}

// End is the time the step completes.
func (s Step) End() float64 { return s.Start + s.Duration }

// at interpolates the step at linear progress r in [0,1]. Visibility flips on
// as soon as a showing step starts and off only when a hiding step completes.
func (s Step) at(r float64) State {
	if r <= 0 {
		return s.From
	}
	if r >= 1 {
		return s.To
	}
	e := s.Ease.Apply(r)
	return State{
		X:       lerp(s.From.X, s.To.X, e),
		Y:       lerp(s.From.Y, s.To.Y, e),
		Scale:   lerp(s.From.Scale, s.To.Scale, e),
		Opacity: lerp(s.From.Opacity, s.To.Opacity, e),
		Visible: s.From.Visible || s.To.Visible,
	}
}

// Timeline is the scrubbable choreography of panel transitions.
type Timeline struct {
	panels   int
	targets  []Target
	initial  []State
	steps    []Step
	labels   []float64
	duration float64
}

// Initial returns the resting state of every element before any transition:
// the first panel shown, every other panel hidden and offset.
func Initial(panels []Panel) ([]Target, []State) {
	var targets []Target
	var states []State
	add := func(t Target, s State) {
		targets = append(targets, t)
		states = append(states, s)
	}
	for i, p := range panels {
		if i == 0 {
			add(Target{Panel: i, Element: PanelRoot}, shown)
			add(Target{Panel: i, Element: Visual}, shown)
			add(Target{Panel: i, Element: Content}, shown)
			for k := range p.Highlights {
				add(Target{Panel: i, Element: Highlight, Item: k}, shown)
			}
			if p.HasBadge() {
				add(Target{Panel: i, Element: Badge}, shown)
			}
			if p.HasLimits() {
				add(Target{Panel: i, Element: Limits}, shown)
			}
			continue
		}
		add(Target{Panel: i, Element: PanelRoot}, hiddenRoot)
		add(Target{Panel: i, Element: Visual}, State{X: -60, Scale: 0.92, Visible: true})
		add(Target{Panel: i, Element: Content}, State{X: 60, Scale: 1, Visible: true})
		for k := range p.Highlights {
			add(Target{Panel: i, Element: Highlight, Item: k}, State{Y: 20, Scale: 1, Visible: true})
		}
		if p.HasBadge() {
			add(Target{Panel: i, Element: Badge}, State{Scale: 0.8, Visible: true})
		}
		if p.HasLimits() {
			add(Target{Panel: i, Element: Limits}, State{Y: 30, Scale: 1, Visible: true})
		}
	}
	return targets, states
}

// Build lays out one segment per transition. Each segment label is placed at
// the current end of the timeline, so segments run back to back.
func Build(panels []Panel) *Timeline {
	targets, initial := Initial(panels)
	tl := &Timeline{
		panels:  len(panels),
		targets: targets,
		initial: initial,
		labels:  make([]float64, len(panels)),
	}
	slots := make(map[Target]int, len(targets))
	for i, t := range targets {
		slots[t] = i
	}
	cur := append([]State(nil), initial...)

	for i := 1; i < len(panels); i++ {
		label := tl.duration
		tl.labels[i] = label
		add := func(t Target, offset, dur float64, ease Ease, to func(State) State) {
			slot, ok := slots[t]
			if !ok {
				return
			}
			from := cur[slot]
			next := to(from)
			cur[slot] = next
			step := Step{
				Target:   t,
				Segment:  i,
				Label:    label,
				Offset:   offset,
				Start:    label + offset,
				Duration: dur,
				Ease:     ease,
				From:     from,
				To:       next,
				slot:     slot,
			}
			tl.steps = append(tl.steps, step)
			if step.End() > tl.duration {
				tl.duration = step.End()
			}
		}
		prev, p := i-1, panels[i]

		add(Target{Panel: prev, Element: Content}, 0, 0.3, Power2In, func(s State) State {
			s.X, s.Opacity = -60, 0
			return s
		})
		add(Target{Panel: prev, Element: Visual}, 0, 0.3, Power2In, func(s State) State {
			s.X, s.Opacity, s.Scale = 60, 0, 0.92
			return s
		})
		add(Target{Panel: prev, Element: PanelRoot}, 0.25, 0.1, DefaultEase, func(s State) State {
			s.Opacity, s.Visible = 0, false
			return s
		})
		add(Target{Panel: i, Element: PanelRoot}, 0.3, 0.1, DefaultEase, func(s State) State {
			s.Opacity, s.Visible = 1, true
			return s
		})
		add(Target{Panel: i, Element: Visual}, 0.35, 0.4, Power2Out, func(s State) State {
			s.X, s.Opacity, s.Scale = 0, 1, 1
			return s
		})
		add(Target{Panel: i, Element: Content}, 0.4, 0.4, Power2Out, func(s State) State {
			s.X, s.Opacity = 0, 1
			return s
		})
		for k := range p.Highlights {
			add(Target{Panel: i, Element: Highlight, Item: k}, 0.5+float64(k)*0.06, 0.25, Power2Out, func(s State) State {
				s.Y, s.Opacity = 0, 1
				return s
			})
		}
		if p.HasBadge() {
			add(Target{Panel: i, Element: Badge}, 0.55, 0.3, BackOut, func(s State) State {
				s.Scale, s.Opacity = 1, 1
				return s
			})
		}
		if p.HasLimits() {
			add(Target{Panel: i, Element: Limits}, 0.6, 0.3, Power2Out, func(s State) State {
				s.Y, s.Opacity = 0, 1
				return s
			})
		}
	}
	sort.SliceStable(tl.steps, func(a, b int) bool { return tl.steps[a].Start < tl.steps[b].Start })
	return tl
}

// Panels returns the number of panels the timeline was built for.
func (tl *Timeline) Panels() int { return tl.panels }

// Duration is the total length of the timeline in seconds.
func (tl *Timeline) Duration() float64 { return tl.duration }

// Steps returns the steps ordered by start time.
func (tl *Timeline) Steps() []Step { return append([]Step(nil), tl.steps...) }

// Label returns the start time of the transition into panel i.
func (tl *Timeline) Label(i int) float64 {
	if i < 0 || i >= len(tl.labels) {
		return 0
	}
	return tl.labels[i]
}

// Frame is the evaluated state of every element at one progress value.
type Frame struct {
	Progress float64
	Time     float64
	Active   int
	Fill     float64
	Panels   []PanelFrame
}

// PanelFrame is the evaluated state of one panel. Badge and Limits are nil
// when the panel has none.
type PanelFrame struct {
	Root       State
	Visual     State
	Content    State
	Highlights []State
	Badge      *State
	Limits     *State
}

// Evaluate computes the frame at progress. Every step that has started is
// applied in start order, so the result depends only on progress and
// scrubbing in either direction lands on the same frame.
func (tl *Timeline) Evaluate(progress float64) Frame {
	progress = clamp01(progress)
	t := progress * tl.duration
	states := append([]State(nil), tl.initial...)
	for _, s := range tl.steps {
		if s.Start > t {
			break
		}
		r := 1.0
		if s.Duration > 0 && t < s.End() {
			r = clamp01((t - s.Start) / s.Duration)
		}
		states[s.slot] = s.at(r)
	}

	active := ActiveIndex(progress, tl.panels)
	f := Frame{
		Progress: progress,
		Time:     t,
		Active:   active,
		Fill:     FillFraction(active, tl.panels),
		Panels:   make([]PanelFrame, tl.panels),
	}
	for slot, target := range tl.targets {
		pf := &f.Panels[target.Panel]
		st := states[slot]
		switch target.Element {
		case PanelRoot:
			pf.Root = st
		case Visual:
			pf.Visual = st
		case Content:
			pf.Content = st
		case Highlight:
			pf.Highlights = append(pf.Highlights, st)
		case Badge:
			pf.Badge = &st
		case Limits:
			pf.Limits = &st
		}
	}
	return f
}

type timelineJSON struct {
	Panels   int       `json:"panels"`
	Duration float64   `json:"duration"`
	Labels   []float64 `json:"labels"`
	Snap     snapJSON  `json:"snap"`
	Initial  []initial `json:"initial"`
	Steps    []Step    `json:"steps"`
}

type initial struct {
	Target
	State State `json:"state"`
}

type snapJSON struct {
	Step  float64 `json:"step"`
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
	Delay float64 `json:"delay"`
	Ease  Ease    `json:"ease"`
}

// MarshalJSON encodes the timeline for the browser script, which evaluates it
// per scroll frame the same way Evaluate does.
func (tl *Timeline) MarshalJSON() ([]byte, error) {
	snap := NewSnap(tl.panels)
	out := timelineJSON{
		Panels:   tl.panels,
		Duration: tl.duration,
		Labels:   tl.labels,
		Snap: snapJSON{
			Step:  snap.Step,
			Min:   snap.MinDuration.Seconds(),
			Max:   snap.MaxDuration.Seconds(),
			Delay: snap.Delay.Seconds(),
			Ease:  snap.Ease,
		},
		Initial: make([]initial, len(tl.targets)),
		Steps:   tl.steps,
	}
	if out.Labels == nil {
		out.Labels = []float64{}
	}
	if out.Steps == nil {
		out.Steps = []Step{}
	}
	for i, t := range tl.targets {
		out.Initial[i] = initial{Target: t, State: tl.initial[i]}
	}
	return json.Marshal(out)
}
