// Package chart renders the dashboard charts as SVG and maps shares onto the
// sequential colour scales used by the bar chart and the map.
package chart

import (
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot/palette/brewer"
)

// scaleSteps is the number of classes taken from a brewer palette.
const scaleSteps = 9

// Scale maps a value in [lo, hi] onto a sequential palette.
type Scale struct {
	Name   string
	colors []color.Color
}

// NewScale loads the named ColorBrewer sequential palette, e.g. "Greens".
func NewScale(name string) (*Scale, error) {
	p, err := brewer.GetPalette(brewer.TypeSequential, name, scaleSteps)
	if err != nil {
		return nil, fmt.Errorf("colour scale %q: %w", name, err)
	}
	return &Scale{Name: name, colors: p.Colors()}, nil
}

// At returns the colour for v within [lo, hi]. Values outside the range are
// clamped; a degenerate range maps everything to the darkest class.
func (s *Scale) At(v, lo, hi float64) color.Color {
	last := len(s.colors) - 1
	if hi <= lo || math.IsNaN(v) {
		return s.colors[last]
	}
	t := (v - lo) / (hi - lo)
	t = math.Max(0, math.Min(1, t))
	return s.colors[int(math.Round(t*float64(last)))]
}

// Hex formats c as #rrggbb.
func Hex(c color.Color) string {
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, b>>8)
}

// Stops returns the palette as [position, #rrggbb] pairs for client-side
// colour scales.
func (s *Scale) Stops() [][2]interface{} {
	last := len(s.colors) - 1
	out := make([][2]interface{}, len(s.colors))
	for i, c := range s.colors {
		out[i] = [2]interface{}{float64(i) / float64(last), Hex(c)}
	}
	return out
}
