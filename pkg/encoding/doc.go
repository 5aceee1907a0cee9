// Package encoding turns table columns into visual channel values.
//
// Each encoder reads one column, infers its data family, and produces
// one value per row: colors, alpha levels, marker sizes, or line
// widths. Encoders never fail on degenerate data; single-valued
// domains and palette overflow produce warnings beside a usable
// result, so a plot always renders.
package encoding
