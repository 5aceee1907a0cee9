package table

import (
	"cmp"
	"fmt"
)

// Column is a named slice of attribute values aligned with a table's row
// order. Values are scalars (string, int, float64, bool) or nil for rows
// that do not define the attribute.
type Column struct {
	Name   string
	Values []any
}

// Len returns the number of values, including nils.
func (c Column) Len() int { return len(c.Values) }

// Distinct returns the distinct non-nil values in first-seen order.
func (c Column) Distinct() []any {
	seen := make(map[string]struct{})
	var out []any
	for _, v := range c.Values {
		if v == nil {
			continue
		}
		key := valueKey(v)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, v)
	}
	return out
}

// Domain returns the numeric [min, max] of the column.
// The bool result is false when the column has no numeric values.
func (c Column) Domain() (min, max float64, ok bool) {
	for _, v := range c.Values {
		f, isNum := AsFloat(v)
		if !isNum {
			continue
		}
		if !ok {
			min, max, ok = f, f, true
			continue
		}
		if f < min {
			min = f
		}
		if f > max {
			max = f
		}
	}
	return min, max, ok
}

// AsFloat converts a scalar attribute value to float64.
// Returns false for strings, bools, and nil.
func AsFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}

// isInteger reports whether v is an integer-typed scalar.
func isInteger(v any) bool {
	switch v.(type) {
	case int, int32, int64:
		return true
	}
	return false
}

// Key returns a string key identifying a scalar value for distinct and
// grouping purposes. Numerically equal int and float values collapse to
// the same key.
func Key(v any) string { return valueKey(v) }

// valueKey is the internal implementation behind Key.
func valueKey(v any) string {
	if v == nil {
		return "\x00nil"
	}
	if f, ok := AsFloat(v); ok {
		return fmt.Sprintf("n:%g", f)
	}
	return fmt.Sprintf("%T:%v", v, v)
}

// Compare orders two scalar attribute values. Numbers order numerically,
// strings lexicographically, bools false before true, and nil before
// everything. Mixed kinds order by kind rank (nil, number, bool, string)
// so sorting stays total and deterministic on heterogeneous columns.
func Compare(a, b any) int {
	ra, rb := kindRank(a), kindRank(b)
	if ra != rb {
		return cmp.Compare(ra, rb)
	}
	switch ra {
	case rankNumber:
		fa, _ := AsFloat(a)
		fb, _ := AsFloat(b)
		return cmp.Compare(fa, fb)
	case rankBool:
		ba, bb := a.(bool), b.(bool)
		switch {
		case ba == bb:
			return 0
		case !ba:
			return -1
		default:
			return 1
		}
	case rankString:
		return cmp.Compare(a.(string), b.(string))
	}
	return 0
}

const (
	rankNil = iota
	rankNumber
	rankBool
	rankString
	rankOther
)

func kindRank(v any) int {
	if v == nil {
		return rankNil
	}
	if _, ok := AsFloat(v); ok {
		return rankNumber
	}
	switch v.(type) {
	case bool:
		return rankBool
	case string:
		return rankString
	}
	return rankOther
}

// Format renders a scalar value as a display label.
func Format(v any) string {
	if v == nil {
		return ""
	}
	return fmt.Sprintf("%v", v)
}
