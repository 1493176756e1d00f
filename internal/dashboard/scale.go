// internal/dashboard/scale.go
package dashboard

import (
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Interpolate returns the color at t in [0,1] between the scale stops,
// blended in RGB space. Unparseable stops fall back to From.
func (s ColorScale) Interpolate(t float64) string {
	from, err := colorful.Hex(s.From)
	if err != nil {
		return s.From
	}
	to, err := colorful.Hex(s.To)
	if err != nil {
		return s.From
	}
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return from.BlendRgb(to, t).Clamped().Hex()
}

// Colors maps each value to the scale by its position between the min and max of values.
func (s ColorScale) Colors(values []float64) []string {
	if len(values) == 0 {
		return nil
	}
	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		lo = min(lo, v)
		hi = max(hi, v)
	}
	out := make([]string, len(values))
	for i, v := range values {
		t := 1.0
		if hi > lo {
			t = (v - lo) / (hi - lo)
		}
		out[i] = s.Interpolate(t)
	}
	return out
}
