package table

// Family classifies an attribute column for encoding purposes.
// The classification is a pure function of column statistics (numeric-ness,
// cardinality, sign span) and is recomputed per call, never cached.
type Family int

const (
	// FamilyCategorical: non-numeric values, or otherwise discrete labels.
	FamilyCategorical Family = iota
	// FamilyOrdinal: integer values with a small number of distinct levels.
	FamilyOrdinal
	// FamilyContinuous: numeric values spanning a continuous range.
	FamilyContinuous
	// FamilyDivergent: float values spanning zero, mapped symmetrically.
	FamilyDivergent
)

// String returns the family name.
func (f Family) String() string {
	switch f {
	case FamilyCategorical:
		return "categorical"
	case FamilyOrdinal:
		return "ordinal"
	case FamilyContinuous:
		return "continuous"
	case FamilyDivergent:
		return "divergent"
	}
	return "unknown"
}

// ordinalThreshold is the distinct-integer count above which an integer
// column is treated as continuous. Matches the discrete palette capacity:
// more levels than the qualitative palette can hold read better on a ramp.
const ordinalThreshold = 12

// InferFamily classifies a column.
//
// The rules, in order:
//   - any float value present and all values numeric:
//     min < 0 < max ⇒ divergent, otherwise continuous
//   - all values integer:
//     more than 12 distinct levels ⇒ continuous, otherwise ordinal
//   - anything else (strings, bools, mixed, empty) ⇒ categorical
//
// Nil values are ignored; a column of only nils is categorical.
func InferFamily(c Column) Family {
	var (
		total    int
		integers int
		floats   int
	)
	for _, v := range c.Values {
		if v == nil {
			continue
		}
		total++
		if isInteger(v) {
			integers++
		} else if _, ok := AsFloat(v); ok {
			floats++
		}
	}
	if total == 0 || integers+floats < total {
		return FamilyCategorical
	}

	if floats > 0 {
		min, max, _ := c.Domain()
		if min < 0 && max > 0 {
			return FamilyDivergent
		}
		return FamilyContinuous
	}

	if len(c.Distinct()) > ordinalThreshold {
		return FamilyContinuous
	}
	return FamilyOrdinal
}
