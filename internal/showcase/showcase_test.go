package showcase

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixturePanels() []Panel {
	return []Panel{
		{Key: "inventory", Name: "Inventory", Highlights: []string{"a", "b"}},
		{Key: "pos", Name: "POS", Highlights: []string{"a", "b", "c"}, Badge: "New"},
		{Key: "invoice", Name: "Invoice", Highlights: []string{"a"}},
		{Key: "reports", Name: "Reports", Highlights: []string{"a", "b"}, Limits: []Limit{{Plan: "free", Value: "7"}}},
	}
}

// expectedSteps counts the choreography of every segment: the outgoing
// content and visual exits, the two visibility flips, the incoming visual and
// content, one step per incoming highlight, then the badge and limits.
func expectedSteps(panels []Panel) int {
	n := 0
	for _, p := range panels[1:] {
		n += 6 + len(p.Highlights)
		if p.HasBadge() {
			n++
		}
		if p.HasLimits() {
			n++
		}
	}
	return n
}

func TestActiveIndex(t *testing.T) {
	t.Parallel()

	tests := []struct {
		progress float64
		n        int
		want     int
	}{
		{0.5, 4, 2},
		{0, 4, 0},
		{1, 4, 3},
		{0.16, 4, 0},
		{0.17, 4, 1},
		{-0.5, 4, 0},
		{1.5, 4, 3},
		{0.7, 1, 0},
		{0.7, 0, 0},
		{0.49, 2, 0},
		{0.5, 2, 1},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, ActiveIndex(tc.progress, tc.n), "progress %v n %d", tc.progress, tc.n)
	}
}

func TestActiveIndexMonotoneAndHitsEveryPanel(t *testing.T) {
	t.Parallel()

	for n := 2; n <= 8; n++ {
		seen := map[int]bool{}
		last := 0
		for i := 0; i <= 1000; i++ {
			idx := ActiveIndex(float64(i)/1000, n)
			require.GreaterOrEqual(t, idx, last, "n=%d step=%d", n, i)
			last = idx
			seen[idx] = true
		}
		require.Len(t, seen, n)
		for i := 0; i < n; i++ {
			require.Equal(t, i, ActiveIndex(float64(i)/float64(n-1), n), "n=%d boundary %d", n, i)
		}
	}
}

func TestFillAndScrollMapping(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 0.5, FillFraction(1, 4), 1e-9)
	assert.InDelta(t, 1.0, FillFraction(3, 4), 1e-9)
	assert.Zero(t, FillFraction(0, 0))

	assert.InDelta(t, 3200.0, PinDistance(4, 800), 1e-9)
	assert.InDelta(t, 0.125, Progress(150, 100, 400), 1e-9)
	assert.Zero(t, Progress(50, 100, 400))
	assert.InDelta(t, 1.0, Progress(900, 100, 400), 1e-9)
	assert.Zero(t, Progress(150, 100, 0))
}

func TestSnap(t *testing.T) {
	t.Parallel()

	s := NewSnap(5)
	require.InDelta(t, 0.25, s.Step, 1e-9)
	require.Equal(t, Power2InOut, s.Ease)
	require.Equal(t, 100*time.Millisecond, s.Delay)

	assert.InDelta(t, 0.25, s.Target(0.3), 1e-9)
	assert.InDelta(t, 1.0, s.Target(0.9), 1e-9)
	assert.Equal(t, 200*time.Millisecond, s.Duration(0.25))
	assert.Equal(t, 600*time.Millisecond, s.Duration(0.375))

	single := NewSnap(1)
	assert.Zero(t, single.Step)
	assert.InDelta(t, 0.4, single.Target(0.4), 1e-9)
	assert.Zero(t, single.Duration(0.4))
}

func TestEases(t *testing.T) {
	t.Parallel()

	for _, e := range []Ease{Linear, Power1Out, Power2In, Power2Out, Power2InOut, BackOut} {
		assert.Zero(t, e.Apply(0), e)
		assert.InDelta(t, 1.0, e.Apply(1), 1e-9, e)
	}
	assert.InDelta(t, 0.5, Linear.Apply(0.5), 1e-9)
	assert.InDelta(t, 0.75, Power1Out.Apply(0.5), 1e-9)
	assert.InDelta(t, 0.125, Power2In.Apply(0.5), 1e-9)
	assert.InDelta(t, 0.875, Power2Out.Apply(0.5), 1e-9)
	assert.InDelta(t, 0.5, Power2InOut.Apply(0.5), 1e-9)
	assert.Greater(t, BackOut.Apply(0.7), 1.0)
}

func TestTimelineLayout(t *testing.T) {
	t.Parallel()

	tl := Build(fixturePanels())
	require.Equal(t, 4, tl.Panels())
	// segment lengths: 0.87 (highlights end last), 0.8, 0.9 (limits end last)
	assert.InDelta(t, 0.0, tl.Label(1), 1e-9)
	assert.InDelta(t, 0.87, tl.Label(2), 1e-9)
	assert.InDelta(t, 1.67, tl.Label(3), 1e-9)
	assert.InDelta(t, 2.57, tl.Duration(), 1e-9)

	steps := tl.Steps()
	require.Equal(t, 26, expectedSteps(fixturePanels()))
	require.Len(t, steps, expectedSteps(fixturePanels()))
	for i := 1; i < len(steps); i++ {
		require.LessOrEqual(t, steps[i-1].Start, steps[i].Start)
	}
	first := steps[0]
	assert.Equal(t, Target{Panel: 0, Element: Content}, first.Target)
	assert.Equal(t, Power2In, first.Ease)
	assert.InDelta(t, -60.0, first.To.X, 1e-9)

	var badge *Step
	for i := range steps {
		if steps[i].Element == Badge {
			badge = &steps[i]
		}
	}
	require.NotNil(t, badge)
	assert.Equal(t, 1, badge.Segment)
	assert.InDelta(t, 0.55, badge.Offset, 1e-9)
	assert.Equal(t, BackOut, badge.Ease)
}

func TestTimelineInitialFrame(t *testing.T) {
	t.Parallel()

	f := Build(fixturePanels()).Evaluate(0)
	require.Len(t, f.Panels, 4)
	assert.Equal(t, 0, f.Active)
	assert.InDelta(t, 0.25, f.Fill, 1e-9)

	p0 := f.Panels[0]
	assert.True(t, p0.Root.Visible)
	assert.InDelta(t, 1.0, p0.Content.Opacity, 1e-9)
	assert.Len(t, p0.Highlights, 2)
	assert.Nil(t, p0.Badge)

	p1 := f.Panels[1]
	assert.False(t, p1.Root.Visible)
	assert.Zero(t, p1.Root.Opacity)
	assert.InDelta(t, 60.0, p1.Content.X, 1e-9)
	assert.InDelta(t, -60.0, p1.Visual.X, 1e-9)
	assert.InDelta(t, 0.92, p1.Visual.Scale, 1e-9)
	require.Len(t, p1.Highlights, 3)
	assert.InDelta(t, 20.0, p1.Highlights[2].Y, 1e-9)
	require.NotNil(t, p1.Badge)
	assert.InDelta(t, 0.8, p1.Badge.Scale, 1e-9)

	p3 := f.Panels[3]
	require.NotNil(t, p3.Limits)
	assert.InDelta(t, 30.0, p3.Limits.Y, 1e-9)
	assert.Zero(t, p3.Limits.Opacity)
}

func TestTimelineFinalFrame(t *testing.T) {
	t.Parallel()

	f := Build(fixturePanels()).Evaluate(1)
	assert.Equal(t, 3, f.Active)
	for i, p := range f.Panels[:3] {
		assert.False(t, p.Root.Visible, "panel %d", i)
		assert.InDelta(t, -60.0, p.Content.X, 1e-9, "panel %d", i)
		assert.InDelta(t, 60.0, p.Visual.X, 1e-9, "panel %d", i)
	}
	last := f.Panels[3]
	assert.True(t, last.Root.Visible)
	assert.InDelta(t, 1.0, last.Visual.Scale, 1e-9)
	assert.Zero(t, last.Content.X)
	require.NotNil(t, last.Limits)
	assert.InDelta(t, 1.0, last.Limits.Opacity, 1e-9)
	assert.Zero(t, last.Limits.Y)
}

func TestTimelineVisibilityFlips(t *testing.T) {
	t.Parallel()

	tl := Build(fixturePanels())
	at := func(seconds float64) Frame { return tl.Evaluate(seconds / tl.Duration()) }

	// outgoing panel hides over 0.25..0.35, incoming shows over 0.30..0.40
	f := at(0.28)
	assert.True(t, f.Panels[0].Root.Visible)
	assert.False(t, f.Panels[1].Root.Visible)

	f = at(0.33)
	assert.True(t, f.Panels[0].Root.Visible)
	assert.True(t, f.Panels[1].Root.Visible)
	assert.Greater(t, f.Panels[1].Root.Opacity, 0.0)
	assert.Less(t, f.Panels[1].Root.Opacity, 1.0)

	f = at(0.38)
	assert.False(t, f.Panels[0].Root.Visible)
	assert.True(t, f.Panels[1].Root.Visible)
}

func TestTimelineScrubbingIsDeterministic(t *testing.T) {
	t.Parallel()

	tl := Build(fixturePanels())
	const steps = 200
	forward := make([]Frame, steps+1)
	for i := 0; i <= steps; i++ {
		forward[i] = tl.Evaluate(float64(i) / steps)
	}
	for i := steps; i >= 0; i-- {
		require.Equal(t, forward[i], tl.Evaluate(float64(i)/steps), "step %d", i)
	}
	require.Equal(t, tl.Evaluate(0), Build(fixturePanels()).Evaluate(0))
}

func TestTimelineSinglePanel(t *testing.T) {
	t.Parallel()

	tl := Build(fixturePanels()[:1])
	assert.Zero(t, tl.Duration())
	assert.Empty(t, tl.Steps())
	f := tl.Evaluate(0.7)
	assert.Equal(t, 0, f.Active)
	assert.True(t, f.Panels[0].Root.Visible)
}

func TestTimelineJSON(t *testing.T) {
	t.Parallel()

	raw, err := json.Marshal(Build(fixturePanels()))
	require.NoError(t, err)

	var got struct {
		Panels   int     `json:"panels"`
		Duration float64 `json:"duration"`
		Snap     struct {
			Step float64 `json:"step"`
			Min  float64 `json:"min"`
			Max  float64 `json:"max"`
			Ease string  `json:"ease"`
		} `json:"snap"`
		Initial []map[string]any `json:"initial"`
		Steps   []struct {
			Panel int     `json:"panel"`
			El    string  `json:"el"`
			Start float64 `json:"start"`
			Dur   float64 `json:"dur"`
			Ease  string  `json:"ease"`
		} `json:"steps"`
	}
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.Equal(t, 4, got.Panels)
	assert.InDelta(t, 2.57, got.Duration, 1e-9)
	assert.InDelta(t, 1.0/3, got.Snap.Step, 1e-9)
	assert.InDelta(t, 0.2, got.Snap.Min, 1e-9)
	assert.InDelta(t, 0.6, got.Snap.Max, 1e-9)
	assert.Equal(t, "power2.inOut", got.Snap.Ease)
	require.Len(t, got.Steps, expectedSteps(fixturePanels()))
	assert.Equal(t, "content", got.Steps[0].El)
	assert.Equal(t, "power2.in", got.Steps[0].Ease)
	assert.NotEmpty(t, got.Initial)
}

func TestViewport(t *testing.T) {
	t.Parallel()

	assert.True(t, IsWide(1024))
	assert.False(t, IsWide(1023))

	v := NewViewport(800)
	require.False(t, v.Wide())

	var calls []bool
	cancel := v.Listen(func(wide bool) { calls = append(calls, wide) })
	v.Resize(900)
	v.Resize(1200)
	v.Resize(1300)
	v.Resize(600)
	assert.Equal(t, []bool{true, false}, calls)
	assert.Equal(t, 600, v.Width())

	cancel()
	cancel()
	assert.Zero(t, v.Listeners())
	v.Resize(1200)
	assert.Len(t, calls, 2)

	v.Listen(func(bool) {})
	v.Close()
	assert.Zero(t, v.Listeners())
	v.Resize(100)
	assert.True(t, v.Wide())
}

func TestRevealFiresOnce(t *testing.T) {
	t.Parallel()

	var r Reveal
	assert.InDelta(t, float64(RevealOffsetY), r.State().Y, 1e-9)
	assert.False(t, r.Observe(0.1))
	assert.True(t, r.Observing())
	assert.True(t, r.Observe(0.15))
	assert.False(t, r.Observe(0.9))
	assert.False(t, r.Observe(0))
	assert.True(t, r.Revealed())
	assert.False(t, r.Observing())
	assert.Equal(t, State{Scale: 1, Opacity: 1, Visible: true}, r.State())

	assert.Equal(t, 500*time.Millisecond, HighlightDelay(2))
	assert.Equal(t, 700*time.Millisecond, LimitsDelay)
}

func TestSequencer(t *testing.T) {
	t.Parallel()

	s := NewSequencer(fixturePanels(), 0)
	require.False(t, s.Wide())

	// narrow: scroll is ignored, panels reveal once
	s.Scroll(0.9)
	assert.Zero(t, s.Active())
	assert.True(t, s.Observe(2, 0.5))
	assert.False(t, s.Observe(2, 0.5))
	assert.False(t, s.Observe(9, 0.5))

	var changes []int
	s.OnActive(func(i int) { changes = append(changes, i) })

	s.Resize(1280)
	require.True(t, s.Wide())
	assert.False(t, s.Observe(1, 0.5))

	f := s.Scroll(0.5)
	assert.Equal(t, 2, s.Active())
	assert.Equal(t, 2, f.Active)
	assert.InDelta(t, 0.75, s.Fill(), 1e-9)

	s.Scroll(0.4)
	target, d := s.Settle()
	assert.InDelta(t, 1.0/3, target, 1e-9)
	assert.GreaterOrEqual(t, d, 200*time.Millisecond)
	assert.LessOrEqual(t, d, 600*time.Millisecond)
	assert.Equal(t, 1, s.Active())
	assert.Equal(t, []int{2, 1}, changes)

	// back to narrow: fresh reveals, progress reset
	s.Resize(700)
	assert.False(t, s.Wide())
	assert.Zero(t, s.Progress())
	assert.Zero(t, s.Active())
	for _, r := range s.Reveals() {
		assert.False(t, r.Revealed())
	}

	s.Close()
	s.Close()
	s.Resize(1400)
	assert.False(t, s.Wide())
}
