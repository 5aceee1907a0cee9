package encoding

import (
	"image/color"
	"testing"

	"github.com/glyphworks/glyphviz/pkg/errors"
	"github.com/glyphworks/glyphviz/pkg/palette"
	"github.com/glyphworks/glyphviz/pkg/table"
)

func rowsWith(col string, values ...any) *table.Table {
	rows := make([]table.Row, len(values))
	for i, v := range values {
		rows[i] = table.Row{
			ID:    string(rune('a' + i)),
			Attrs: map[string]any{col: v},
		}
	}
	return table.FromRows(rows)
}

func TestColorsDefault(t *testing.T) {
	tab := rowsWith("g", "x", "y", "x")
	colors, warns, err := Colors(tab, "", palette.Default(), DefaultNodeColor)
	if err != nil {
		t.Fatalf("Colors: %v", err)
	}
	if len(warns) != 0 {
		t.Errorf("unexpected warnings: %v", warns)
	}
	for i, c := range colors {
		if c != DefaultNodeColor {
			t.Errorf("colors[%d] = %v, want default", i, c)
		}
	}
}

func TestColorsCategorical(t *testing.T) {
	tab := rowsWith("g", "x", "y", "x", "z")
	colors, warns, err := Colors(tab, "g", palette.Default(), DefaultNodeColor)
	if err != nil {
		t.Fatalf("Colors: %v", err)
	}
	if len(warns) != 0 {
		t.Errorf("unexpected warnings: %v", warns)
	}
	if colors[0] != colors[2] {
		t.Error("equal category values got different colors")
	}
	if colors[0] == colors[1] || colors[1] == colors[3] {
		t.Error("distinct category values share a color")
	}
}

func TestColorsCategoricalNilValue(t *testing.T) {
	tab := rowsWith("g", "x", nil, "y")
	colors, _, err := Colors(tab, "g", palette.Default(), DefaultNodeColor)
	if err != nil {
		t.Fatalf("Colors: %v", err)
	}
	if !sameColor(colors[1], DefaultNodeColor) {
		t.Errorf("colors[1] = %v, want the caller's fallback %v", colors[1], DefaultNodeColor)
	}
}

func TestColorsPaletteOverflow(t *testing.T) {
	values := make([]any, 15)
	for i := range values {
		values[i] = string(rune('A' + i))
	}
	tab := rowsWith("g", values...)

	colors, warns, err := Colors(tab, "g", palette.Default(), DefaultNodeColor)
	if err != nil {
		t.Fatalf("Colors: %v", err)
	}
	if len(warns) != 1 || warns[0].Code != errors.WarnPaletteOverflow {
		t.Fatalf("warnings = %v, want one palette overflow", warns)
	}
	if colors[12] != colors[0] {
		t.Error("category 13 did not cycle back to the first color")
	}
}

func TestColorsContinuous(t *testing.T) {
	tab := rowsWith("v", 1.0, 2.0, 3.0)
	colors, warns, err := Colors(tab, "v", palette.Default(), DefaultNodeColor)
	if err != nil {
		t.Fatalf("Colors: %v", err)
	}
	if len(warns) != 0 {
		t.Errorf("unexpected warnings: %v", warns)
	}
	if colors[0] == colors[2] {
		t.Error("domain endpoints share a color")
	}
}

func TestColorsDivergentCentered(t *testing.T) {
	// Zero must land on the ramp midpoint even with an asymmetric domain.
	tab := rowsWith("v", -1.0, 0.0, 3.0)
	colors, _, err := Colors(tab, "v", palette.Default(), DefaultNodeColor)
	if err != nil {
		t.Fatalf("Colors: %v", err)
	}

	ramp, err := palette.Default().Ramp(table.FamilyDivergent)
	if err != nil {
		t.Fatalf("Ramp: %v", err)
	}
	mid, err := ramp.At(0.5)
	if err != nil {
		t.Fatalf("At(0.5): %v", err)
	}
	if !sameColor(colors[1], mid) {
		t.Errorf("zero value color = %v, want ramp midpoint %v", colors[1], mid)
	}
}

func sameColor(a, b color.Color) bool {
	ar, ag, ab2, aa := a.RGBA()
	br, bg, bb, ba := b.RGBA()
	return ar == br && ag == bg && ab2 == bb && aa == ba
}

func TestColorsMissingColumn(t *testing.T) {
	tab := rowsWith("g", "x")
	if _, _, err := Colors(tab, "nope", palette.Default(), DefaultNodeColor); !errors.Is(err, errors.ErrCodeMissingAttribute) {
		t.Errorf("error = %v, want CONFIG_MISSING_ATTRIBUTE", err)
	}
}

func TestAlphas(t *testing.T) {
	tab := rowsWith("v", 0.0, 5.0, 10.0)
	alphas, warns, err := Alphas(tab, "v", DefaultNodeAlpha)
	if err != nil {
		t.Fatalf("Alphas: %v", err)
	}
	if len(warns) != 0 {
		t.Errorf("unexpected warnings: %v", warns)
	}
	want := []float64{0, 0.5, 1}
	for i := range want {
		if alphas[i] != want[i] {
			t.Errorf("alphas[%d] = %g, want %g", i, alphas[i], want[i])
		}
	}
}

func TestAlphasDegenerateDomain(t *testing.T) {
	tab := rowsWith("v", 7, 7, 7)
	alphas, warns, err := Alphas(tab, "v", DefaultNodeAlpha)
	if err != nil {
		t.Fatalf("Alphas: %v", err)
	}
	if len(warns) != 1 || warns[0].Code != errors.WarnDegenerateDomain {
		t.Fatalf("warnings = %v, want one degenerate domain", warns)
	}
	for i, a := range alphas {
		if a != 0.5 {
			t.Errorf("alphas[%d] = %g, want midpoint 0.5", i, a)
		}
	}
}

func TestAlphasDefault(t *testing.T) {
	tab := rowsWith("v", 1, 2)
	alphas, _, err := Alphas(tab, "", DefaultEdgeAlpha)
	if err != nil {
		t.Fatalf("Alphas: %v", err)
	}
	for i, a := range alphas {
		if a != DefaultEdgeAlpha {
			t.Errorf("alphas[%d] = %g, want %g", i, a, DefaultEdgeAlpha)
		}
	}
}

func TestSizesSqrt(t *testing.T) {
	tab := rowsWith("v", 0, 1, 4, 9)
	sizes, _, err := Sizes(tab, "v", DefaultSize)
	if err != nil {
		t.Fatalf("Sizes: %v", err)
	}
	want := []float64{0, 1, 2, 3}
	for i := range want {
		if sizes[i] != want[i] {
			t.Errorf("sizes[%d] = %g, want %g", i, sizes[i], want[i])
		}
	}
}

func TestSizesNegative(t *testing.T) {
	tab := rowsWith("v", 1, -4)
	if _, _, err := Sizes(tab, "v", DefaultSize); !errors.Is(err, errors.ErrCodeBadValue) {
		t.Errorf("error = %v, want CONFIG_BAD_VALUE", err)
	}
}

func TestWidthsLinear(t *testing.T) {
	tab := rowsWith("w", 1, 2.5, 4)
	widths, _, err := Widths(tab, "w", DefaultWidth)
	if err != nil {
		t.Fatalf("Widths: %v", err)
	}
	want := []float64{1, 2.5, 4}
	for i := range want {
		if widths[i] != want[i] {
			t.Errorf("widths[%d] = %g, want %g", i, widths[i], want[i])
		}
	}
}

func TestNonNumericChannel(t *testing.T) {
	tab := rowsWith("g", "x", "y")
	if _, _, err := Alphas(tab, "g", DefaultNodeAlpha); !errors.Is(err, errors.ErrCodeBadFamily) {
		t.Errorf("Alphas error = %v, want CONFIG_BAD_FAMILY", err)
	}
	if _, _, err := Widths(tab, "g", DefaultWidth); !errors.Is(err, errors.ErrCodeBadFamily) {
		t.Errorf("Widths error = %v, want CONFIG_BAD_FAMILY", err)
	}
}
