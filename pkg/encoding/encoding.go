package encoding

import (
	"image/color"
	"math"

	"github.com/glyphworks/glyphviz/pkg/errors"
	"github.com/glyphworks/glyphviz/pkg/palette"
	"github.com/glyphworks/glyphviz/pkg/table"
)

// Default channel values applied when no column is selected.
var (
	DefaultNodeColor = color.RGBA{R: 0x44, G: 0x72, B: 0xc4, A: 0xff}
	DefaultEdgeColor = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xff}
)

const (
	DefaultNodeAlpha = 1.0
	DefaultEdgeAlpha = 0.1
	DefaultSize      = 1.0
	DefaultWidth     = 1.0
)

// Colors encodes the named column as one color per row. An empty
// column name yields fallback for every row. Categorical columns map
// distinct values to discrete palette entries in first-seen order;
// numeric columns run through the family's color ramp.
func Colors(t *table.Table, by string, p palette.Provider, fallback color.Color) ([]color.Color, []errors.Warning, error) {
	if by == "" {
		out := make([]color.Color, t.Len())
		for i := range out {
			out[i] = fallback
		}
		return out, nil, nil
	}

	col, err := t.Column(by)
	if err != nil {
		return nil, nil, err
	}

	switch table.InferFamily(col) {
	case table.FamilyCategorical:
		return categoricalColors(col, p, fallback)
	default:
		return rampColors(col, p)
	}
}

func categoricalColors(col table.Column, p palette.Provider, fallback color.Color) ([]color.Color, []errors.Warning, error) {
	distinct := col.Distinct()
	if len(distinct) == 0 {
		return nil, nil, errors.New(errors.ErrCodeBadValue, "column %q has no values to color by", col.Name)
	}
	swatch, cycled, err := p.Discrete(len(distinct))
	if err != nil {
		return nil, nil, err
	}

	var warns []errors.Warning
	if cycled {
		warns = append(warns, errors.Warningf(errors.WarnPaletteOverflow, col.Name,
			"%d categories exceed the palette; colors repeat", len(distinct)))
	}

	index := make(map[string]int, len(distinct))
	for i, v := range distinct {
		index[table.Key(v)] = i
	}
	out := make([]color.Color, col.Len())
	for i, v := range col.Values {
		if v == nil {
			out[i] = fallback
			continue
		}
		out[i] = swatch[index[table.Key(v)]]
	}
	return out, warns, nil
}

func rampColors(col table.Column, p palette.Provider) ([]color.Color, []errors.Warning, error) {
	family := table.InferFamily(col)
	ramp, err := p.Ramp(family)
	if err != nil {
		return nil, nil, err
	}
	norm, warns, err := normalize(col, family == table.FamilyDivergent)
	if err != nil {
		return nil, nil, err
	}

	out := make([]color.Color, len(norm))
	for i, v := range norm {
		c, err := ramp.At(v)
		if err != nil {
			return nil, nil, errors.Wrap(errors.ErrCodeInternal, err, "ramp lookup for column %q", col.Name)
		}
		out[i] = c
	}
	return out, warns, nil
}

// Alphas encodes the named column as opacity in [0, 1] via min-max
// normalization. An empty column name yields fallback for every row.
func Alphas(t *table.Table, by string, fallback float64) ([]float64, []errors.Warning, error) {
	if by == "" {
		return constant(t.Len(), fallback), nil, nil
	}
	col, err := numericColumn(t, by)
	if err != nil {
		return nil, nil, err
	}
	return normalize(col, false)
}

// Sizes encodes the named column as marker sizes. Values scale by
// square root so marker area tracks the data linearly. An empty column
// name yields fallback for every row.
func Sizes(t *table.Table, by string, fallback float64) ([]float64, []errors.Warning, error) {
	if by == "" {
		return constant(t.Len(), fallback), nil, nil
	}
	col, err := numericColumn(t, by)
	if err != nil {
		return nil, nil, err
	}

	out := make([]float64, col.Len())
	for i, v := range col.Values {
		f, _ := table.AsFloat(v)
		if f < 0 {
			return nil, nil, errors.New(errors.ErrCodeBadValue,
				"column %q has negative value %g; sizes must be non-negative", by, f)
		}
		out[i] = math.Sqrt(f)
	}
	return out, nil, nil
}

// Widths encodes the named column as line widths, passing numeric
// values through unchanged. An empty column name yields fallback for
// every row.
func Widths(t *table.Table, by string, fallback float64) ([]float64, []errors.Warning, error) {
	if by == "" {
		return constant(t.Len(), fallback), nil, nil
	}
	col, err := numericColumn(t, by)
	if err != nil {
		return nil, nil, err
	}

	out := make([]float64, col.Len())
	for i, v := range col.Values {
		f, _ := table.AsFloat(v)
		if f < 0 {
			return nil, nil, errors.New(errors.ErrCodeBadValue,
				"column %q has negative value %g; widths must be non-negative", by, f)
		}
		out[i] = f
	}
	return out, nil, nil
}

// normalize maps a numeric column onto [0, 1]. With symmetric set, the
// domain is centered on zero so the midpoint of the output corresponds
// to a data value of zero. A single-valued domain maps every row to 0.5
// and reports a warning instead of dividing by zero.
func normalize(col table.Column, symmetric bool) ([]float64, []errors.Warning, error) {
	min, max, ok := col.Domain()
	if !ok {
		return nil, nil, errors.New(errors.ErrCodeBadFamily,
			"column %q is not numeric; cannot normalize", col.Name)
	}
	if symmetric {
		limit := math.Max(math.Abs(min), math.Abs(max))
		min, max = -limit, limit
	}

	if min == max {
		warn := errors.Warningf(errors.WarnDegenerateDomain, col.Name,
			"all values equal %g; using midpoint", min)
		return constant(col.Len(), 0.5), []errors.Warning{warn}, nil
	}

	out := make([]float64, col.Len())
	for i, v := range col.Values {
		f, numeric := table.AsFloat(v)
		if !numeric {
			return nil, nil, errors.New(errors.ErrCodeBadValue,
				"column %q row %d has non-numeric value %v", col.Name, i, v)
		}
		out[i] = (f - min) / (max - min)
	}
	return out, nil, nil
}

func numericColumn(t *table.Table, name string) (table.Column, error) {
	col, err := t.Column(name)
	if err != nil {
		return table.Column{}, err
	}
	if _, _, ok := col.Domain(); !ok {
		return table.Column{}, errors.New(errors.ErrCodeBadFamily,
			"column %q is not numeric", name)
	}
	return col, nil
}

func constant(n int, v float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}
	return out
}
