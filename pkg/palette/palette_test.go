package palette

import (
	"image/color"
	"testing"

	"github.com/glyphworks/glyphviz/pkg/errors"
	"github.com/glyphworks/glyphviz/pkg/table"
)

func TestDiscreteWithinCapacity(t *testing.T) {
	s := Default()
	for _, n := range []int{1, 2, 3, 7, 12} {
		colors, cycled, err := s.Discrete(n)
		if err != nil {
			t.Fatalf("Discrete(%d): %v", n, err)
		}
		if cycled {
			t.Errorf("Discrete(%d) cycled, want direct", n)
		}
		if len(colors) != n {
			t.Errorf("Discrete(%d) returned %d colors", n, len(colors))
		}
	}
}

func TestDiscreteCycles(t *testing.T) {
	s := Default()
	colors, cycled, err := s.Discrete(15)
	if err != nil {
		t.Fatalf("Discrete(15): %v", err)
	}
	if !cycled {
		t.Error("Discrete(15) did not report cycling")
	}
	if len(colors) != 15 {
		t.Fatalf("Discrete(15) returned %d colors", len(colors))
	}
	// Color 12 wraps around to color 0.
	if colors[12] != colors[0] || colors[13] != colors[1] {
		t.Error("cycled colors do not repeat from the start of the scheme")
	}
}

func TestDiscreteErrors(t *testing.T) {
	if _, _, err := Default().Discrete(0); !errors.Is(err, errors.ErrCodeBadValue) {
		t.Errorf("Discrete(0) error = %v, want CONFIG_BAD_VALUE", err)
	}
	bad := Scheme{Qualitative: "NoSuchScheme", Sequential: "YlGnBu"}
	if _, _, err := bad.Discrete(4); !errors.Is(err, errors.ErrCodeBadValue) {
		t.Errorf("unknown scheme error = %v, want CONFIG_BAD_VALUE", err)
	}
}

func TestRampFamilies(t *testing.T) {
	s := Default()
	for _, f := range []table.Family{table.FamilyContinuous, table.FamilyOrdinal, table.FamilyDivergent} {
		m, err := s.Ramp(f)
		if err != nil {
			t.Fatalf("Ramp(%s): %v", f, err)
		}
		if m.Min() != 0 || m.Max() != 1 {
			t.Errorf("Ramp(%s) range = [%g, %g], want [0, 1]", f, m.Min(), m.Max())
		}
		for _, v := range []float64{0, 0.5, 1} {
			if _, err := m.At(v); err != nil {
				t.Errorf("Ramp(%s).At(%g): %v", f, v, err)
			}
		}
	}
}

func TestRampCategoricalRejected(t *testing.T) {
	if _, err := Default().Ramp(table.FamilyCategorical); !errors.Is(err, errors.ErrCodeBadFamily) {
		t.Errorf("Ramp(categorical) error = %v, want CONFIG_BAD_FAMILY", err)
	}
}

func TestStopRampEndpoints(t *testing.T) {
	r := newStopRamp([]color.Color{color.Black, color.White})

	at := func(v float64) color.RGBA64 {
		c, err := r.At(v)
		if err != nil {
			t.Fatalf("At(%g): %v", v, err)
		}
		cr, cg, cb, ca := c.RGBA()
		return color.RGBA64{R: uint16(cr), G: uint16(cg), B: uint16(cb), A: uint16(ca)}
	}

	if c := at(0); c.R != 0 || c.G != 0 || c.B != 0 {
		t.Errorf("At(0) = %v, want black", c)
	}
	if c := at(1); c.R != 0xffff || c.G != 0xffff || c.B != 0xffff {
		t.Errorf("At(1) = %v, want white", c)
	}
	mid := at(0.5)
	if mid.R < 0x7000 || mid.R > 0x9000 {
		t.Errorf("At(0.5).R = %#x, want near midpoint", mid.R)
	}
}

func TestStopRampOutOfRange(t *testing.T) {
	r := newStopRamp([]color.Color{color.Black, color.White})
	if _, err := r.At(1.5); !errors.Is(err, errors.ErrCodeBadValue) {
		t.Errorf("At(1.5) error = %v, want CONFIG_BAD_VALUE", err)
	}
	if _, err := r.At(-0.1); !errors.Is(err, errors.ErrCodeBadValue) {
		t.Errorf("At(-0.1) error = %v, want CONFIG_BAD_VALUE", err)
	}
}
