package showcase

import (
	"math"
	"time"
)

// ActiveIndex maps scroll progress onto the current panel:
// round(progress*(n-1)), clamped to [0, n-1].
func ActiveIndex(progress float64, n int) int {
	if n <= 1 {
		return 0
	}
	idx := int(math.Floor(clamp01(progress)*float64(n-1) + 0.5))
	if idx < 0 {
		return 0
	}
	if idx > n-1 {
		return n - 1
	}
	return idx
}

// FillFraction is the height of the progress bar for the active panel.
func FillFraction(active, n int) float64 {
	if n <= 0 {
		return 0
	}
	return float64(active+1) / float64(n)
}

// PinDistance is the scroll distance the showcase stays pinned for: one
// viewport height per panel.
func PinDistance(n int, viewportHeight float64) float64 {
	if n <= 0 || viewportHeight <= 0 {
		return 0
	}
	return float64(n) * viewportHeight
}

// Progress maps a vertical scroll offset onto [0,1] within the pinned region
// that starts at start and lasts distance pixels.
func Progress(scrollY, start, distance float64) float64 {
	if distance <= 0 {
		return 0
	}
	return clamp01((scrollY - start) / distance)
}

// Snap settles progress onto the nearest panel boundary once scrolling stops.
type Snap struct {
	Step        float64       `json:"step"`
	MinDuration time.Duration `json:"-"`
	MaxDuration time.Duration `json:"-"`
	Delay       time.Duration `json:"-"`
	Ease        Ease          `json:"ease"`
}

// NewSnap divides the range into n-1 equal segments.
func NewSnap(n int) Snap {
	s := Snap{
		MinDuration: 200 * time.Millisecond,
		MaxDuration: 600 * time.Millisecond,
		Delay:       100 * time.Millisecond,
		Ease:        Power2InOut,
	}
	if n > 1 {
		s.Step = 1 / float64(n-1)
	}
	return s
}

// Target returns the boundary nearest to progress.
func (s Snap) Target(progress float64) float64 {
	progress = clamp01(progress)
	if s.Step <= 0 {
		return progress
	}
	return clamp01(math.Round(progress/s.Step) * s.Step)
}

// Duration returns how long settling from progress takes: proportional to the
// distance to the target, bounded by MinDuration and MaxDuration.
func (s Snap) Duration(progress float64) time.Duration {
	if s.Step <= 0 {
		return 0
	}
	dist := math.Abs(s.Target(progress)-clamp01(progress)) / (s.Step / 2)
	d := s.MinDuration + time.Duration(dist*float64(s.MaxDuration-s.MinDuration))
	if d < s.MinDuration {
		return s.MinDuration
	}
	if d > s.MaxDuration {
		return s.MaxDuration
	}
	return d
}

func clamp01(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
