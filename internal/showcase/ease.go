package showcase

import "math"

// Ease names an easing curve. The names match the ones the browser script
// understands.
type Ease string

const (
	Linear      Ease = "none"
	Power1Out   Ease = "power1.out"
	Power2In    Ease = "power2.in"
	Power2Out   Ease = "power2.out"
	Power2InOut Ease = "power2.inOut"
	BackOut     Ease = "back.out(1.7)"
)

// DefaultEase applies to tweens that do not name one.
const DefaultEase = Power1Out

const backOvershoot = 1.7

// Apply maps linear progress r in [0,1] onto the curve.
func (e Ease) Apply(r float64) float64 {
	if r <= 0 {
		return 0
	}
	if r >= 1 {
		return 1
	}
	switch e {
	case Linear:
		return r
	case Power2In:
		return r * r * r
	case Power2Out:
		return 1 - math.Pow(1-r, 3)
	case Power2InOut:
		if r < 0.5 {
			return 4 * r * r * r
		}
		return 1 - math.Pow(-2*r+2, 3)/2
	case BackOut:
		c3 := backOvershoot + 1
		return 1 + c3*math.Pow(r-1, 3) + backOvershoot*math.Pow(r-1, 2)
	default:
		return 1 - (1-r)*(1-r)
	}
}
