package palette

import (
	"image/color"

	"gonum.org/v1/plot/palette"

	"github.com/glyphworks/glyphviz/pkg/errors"
)

// stopRamp interpolates linearly in RGBA space between a fixed list of
// color stops. It satisfies palette.ColorMap over an adjustable range.
type stopRamp struct {
	stops []color.Color
	min   float64
	max   float64
	alpha float64
}

func newStopRamp(stops []color.Color) *stopRamp {
	return &stopRamp{stops: stops, min: 0, max: 1, alpha: 1}
}

func (r *stopRamp) Min() float64           { return r.min }
func (r *stopRamp) Max() float64           { return r.max }
func (r *stopRamp) SetMin(min float64)     { r.min = min }
func (r *stopRamp) SetMax(max float64)     { r.max = max }
func (r *stopRamp) Alpha() float64         { return r.alpha }
func (r *stopRamp) SetAlpha(alpha float64) { r.alpha = alpha }

// At returns the interpolated color for v within [Min, Max].
func (r *stopRamp) At(v float64) (color.Color, error) {
	if len(r.stops) == 0 {
		return nil, errors.New(errors.ErrCodeInternal, "color ramp has no stops")
	}
	if r.max <= r.min {
		return nil, errors.New(errors.ErrCodeBadValue, "ramp range [%g, %g] is empty", r.min, r.max)
	}
	if v < r.min || v > r.max {
		return nil, errors.New(errors.ErrCodeBadValue, "value %g outside ramp range [%g, %g]", v, r.min, r.max)
	}
	if len(r.stops) == 1 {
		return r.stops[0], nil
	}

	t := (v - r.min) / (r.max - r.min)
	scaled := t * float64(len(r.stops)-1)
	lo := int(scaled)
	if lo >= len(r.stops)-1 {
		lo = len(r.stops) - 2
	}
	frac := scaled - float64(lo)
	return lerpRGBA(r.stops[lo], r.stops[lo+1], frac), nil
}

// Palette returns n evenly spaced colors drawn from the ramp.
func (r *stopRamp) Palette(n int) palette.Palette {
	colors := make([]color.Color, n)
	for i := range colors {
		v := r.min
		if n > 1 {
			v = r.min + (r.max-r.min)*float64(i)/float64(n-1)
		}
		c, err := r.At(v)
		if err != nil {
			c = color.Black
		}
		colors[i] = c
	}
	return rampPalette(colors)
}

type rampPalette []color.Color

func (p rampPalette) Colors() []color.Color { return p }

func lerpRGBA(a, b color.Color, t float64) color.Color {
	ar, ag, ab, aa := a.RGBA()
	br, bg, bb, ba := b.RGBA()
	lerp := func(x, y uint32) uint16 {
		return uint16(float64(x) + (float64(y)-float64(x))*t)
	}
	return color.RGBA64{
		R: lerp(ar, br),
		G: lerp(ag, bg),
		B: lerp(ab, bb),
		A: lerp(aa, ba),
	}
}
