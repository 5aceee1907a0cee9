package table

import "testing"

func TestInferFamily(t *testing.T) {
	manyInts := make([]any, 20)
	for i := range manyInts {
		manyInts[i] = i
	}

	tests := []struct {
		name   string
		values []any
		want   Family
	}{
		{"strings", []any{"a", "b", "c"}, FamilyCategorical},
		{"bools", []any{true, false}, FamilyCategorical},
		{"mixed", []any{"a", 1, 2.5}, FamilyCategorical},
		{"empty", nil, FamilyCategorical},
		{"all nil", []any{nil, nil}, FamilyCategorical},
		{"small ints", []any{1, 2, 3, 2, 1}, FamilyOrdinal},
		{"ints at threshold", intRange(12), FamilyOrdinal},
		{"ints past threshold", manyInts, FamilyContinuous},
		{"positive floats", []any{0.5, 1.5, 2.5}, FamilyContinuous},
		{"negative floats", []any{-3.0, -1.0, -0.5}, FamilyContinuous},
		{"floats spanning zero", []any{-1.0, 0.5, 2.0}, FamilyDivergent},
		{"float zero boundary", []any{0.0, 1.0, 2.0}, FamilyContinuous},
		{"floats with nils", []any{nil, -1.0, 1.0}, FamilyDivergent},
		{"int32 ordinal", []any{int32(1), int32(2)}, FamilyOrdinal},
		{"float32 continuous", []any{float32(1), float32(2)}, FamilyContinuous},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Column{Name: tt.name, Values: tt.values}
			if got := InferFamily(c); got != tt.want {
				t.Errorf("InferFamily(%v) = %v, want %v", tt.values, got, tt.want)
			}
		})
	}
}

func intRange(n int) []any {
	out := make([]any, n)
	for i := range out {
		out[i] = i
	}
	return out
}

func TestFamilyString(t *testing.T) {
	tests := []struct {
		f    Family
		want string
	}{
		{FamilyCategorical, "categorical"},
		{FamilyOrdinal, "ordinal"},
		{FamilyContinuous, "continuous"},
		{FamilyDivergent, "divergent"},
	}
	for _, tt := range tests {
		if got := tt.f.String(); got != tt.want {
			t.Errorf("Family(%d).String() = %q, want %q", tt.f, got, tt.want)
		}
	}
}

func TestColumnDomain(t *testing.T) {
	c := Column{Name: "v", Values: []any{3, nil, -1.5, 7}}
	min, max, ok := c.Domain()
	if !ok {
		t.Fatal("Domain() not ok")
	}
	if min != -1.5 || max != 7 {
		t.Errorf("Domain() = (%g, %g), want (-1.5, 7)", min, max)
	}

	if _, _, ok := (Column{Name: "s", Values: []any{"a"}}).Domain(); ok {
		t.Error("Domain() ok for non-numeric column")
	}
}

func TestColumnDistinct(t *testing.T) {
	c := Column{Name: "g", Values: []any{"y", "x", nil, "y", "x"}}
	got := c.Distinct()
	if len(got) != 2 || got[0] != "y" || got[1] != "x" {
		t.Errorf("Distinct() = %v, want [y x]", got)
	}
}
