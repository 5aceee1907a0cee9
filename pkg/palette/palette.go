// Package palette maps data families to color schemes.
//
// Categorical and ordinal columns draw from ColorBrewer qualitative
// schemes, continuous columns from an interpolated sequential ramp,
// and divergent columns from a smooth blue/white/red colormap. All
// ramps cover the unit interval so callers can feed them normalized
// values directly.
package palette

import (
	"image/color"

	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/palette/brewer"
	"gonum.org/v1/plot/palette/moreland"

	"github.com/glyphworks/glyphviz/pkg/errors"
	"github.com/glyphworks/glyphviz/pkg/table"
)

// Brewer qualitative schemes carry between 3 and 12 colors.
const (
	minQualitative = 3
	maxQualitative = 12
)

// Provider selects colors for the encoding layer.
type Provider interface {
	// Discrete returns n colors for distinct category values. When n
	// exceeds the scheme's capacity the colors cycle and cycled is true.
	Discrete(n int) (colors []color.Color, cycled bool, err error)

	// Ramp returns a unit-interval colormap for the given family.
	// Categorical families have no ramp and yield an error.
	Ramp(f table.Family) (palette.ColorMap, error)
}

// Scheme is a Provider backed by named ColorBrewer schemes.
type Scheme struct {
	Qualitative string // categorical colors, e.g. "Set3"
	Sequential  string // continuous ramp stops, e.g. "YlGnBu"
}

// Default returns the scheme used when the caller does not pick one.
func Default() Scheme {
	return Scheme{Qualitative: "Set3", Sequential: "YlGnBu"}
}

// Discrete implements Provider.
func (s Scheme) Discrete(n int) ([]color.Color, bool, error) {
	if n <= 0 {
		return nil, false, errors.New(errors.ErrCodeBadValue, "color count must be positive, got %d", n)
	}
	request := n
	if request < minQualitative {
		request = minQualitative
	}
	if request > maxQualitative {
		request = maxQualitative
	}
	p, err := brewer.GetPalette(brewer.TypeQualitative, s.Qualitative, request)
	if err != nil {
		return nil, false, errors.Wrap(errors.ErrCodeBadValue, err, "unknown qualitative scheme %q", s.Qualitative)
	}
	base := p.Colors()

	if n <= len(base) {
		return base[:n], false, nil
	}
	out := make([]color.Color, n)
	for i := range out {
		out[i] = base[i%len(base)]
	}
	return out, true, nil
}

// Ramp implements Provider.
func (s Scheme) Ramp(f table.Family) (palette.ColorMap, error) {
	switch f {
	case table.FamilyContinuous, table.FamilyOrdinal:
		return s.sequentialRamp()
	case table.FamilyDivergent:
		m := moreland.SmoothBlueRed()
		m.SetMin(0)
		m.SetMax(1)
		return m, nil
	default:
		return nil, errors.New(errors.ErrCodeBadFamily, "no color ramp for %s data", f)
	}
}

func (s Scheme) sequentialRamp() (palette.ColorMap, error) {
	p, err := brewer.GetPalette(brewer.TypeSequential, s.Sequential, 9)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeBadValue, err, "unknown sequential scheme %q", s.Sequential)
	}
	return newStopRamp(p.Colors()), nil
}
