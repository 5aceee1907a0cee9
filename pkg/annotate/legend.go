package annotate

import (
	"image/color"

	"github.com/glyphworks/glyphviz/pkg/errors"
	"github.com/glyphworks/glyphviz/pkg/palette"
	"github.com/glyphworks/glyphviz/pkg/table"
)

// LegendEntry pairs one category value with its swatch color.
type LegendEntry struct {
	Label string
	Color color.Color
}

// Legend builds discrete legend entries for a categorical column, in
// the same first-seen order the color encoder uses.
func Legend(t *table.Table, by string, p palette.Provider) ([]LegendEntry, []errors.Warning, error) {
	col, err := t.Column(by)
	if err != nil {
		return nil, nil, err
	}
	if table.InferFamily(col) != table.FamilyCategorical {
		return nil, nil, errors.New(errors.ErrCodeBadFamily,
			"column %q is not categorical; use a colorbar", by)
	}

	distinct := col.Distinct()
	swatch, cycled, err := p.Discrete(len(distinct))
	if err != nil {
		return nil, nil, err
	}
	var warns []errors.Warning
	if cycled {
		warns = append(warns, errors.Warningf(errors.WarnPaletteOverflow, by,
			"%d categories exceed the palette; legend colors repeat", len(distinct)))
	}

	entries := make([]LegendEntry, len(distinct))
	for i, v := range distinct {
		entries[i] = LegendEntry{Label: table.Format(v), Color: swatch[i]}
	}
	return entries, warns, nil
}

// Colorbar describes the value range a continuous color ramp spans.
type Colorbar struct {
	Min    float64
	Max    float64
	Family table.Family
}

// ColorbarFor reads the numeric domain of a column for drawing a
// colorbar next to a plot. Divergent columns report a symmetric range
// centered on zero, matching the color encoder.
func ColorbarFor(t *table.Table, by string) (Colorbar, error) {
	col, err := t.Column(by)
	if err != nil {
		return Colorbar{}, err
	}
	family := table.InferFamily(col)
	if family == table.FamilyCategorical {
		return Colorbar{}, errors.New(errors.ErrCodeBadFamily,
			"column %q is categorical; use a legend", by)
	}
	min, max, ok := col.Domain()
	if !ok {
		return Colorbar{}, errors.New(errors.ErrCodeBadFamily,
			"column %q has no numeric domain", by)
	}
	if family == table.FamilyDivergent {
		limit := max
		if -min > limit {
			limit = -min
		}
		min, max = -limit, limit
	}
	return Colorbar{Min: min, Max: max, Family: family}, nil
}
