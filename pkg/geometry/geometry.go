// Package geometry provides the polar and circular math shared by the
// layout and path packages.
//
// Angles are in radians, measured counterclockwise from the positive
// x axis. ItemTheta spaces items evenly around a full circle, and
// CircosRadius picks the smallest circle on which that spacing keeps
// adjacent items a fixed chord length apart.
package geometry

import (
	"math"

	"github.com/glyphworks/glyphviz/pkg/errors"
)

// Point is a position in Cartesian plot coordinates.
type Point struct {
	X float64
	Y float64
}

// ItemTheta returns the angle of item i out of n evenly spaced items.
// Item 0 sits on the positive x axis.
func ItemTheta(i, n int) (float64, error) {
	if n <= 0 {
		return 0, errors.New(errors.ErrCodeBadValue, "item count must be positive, got %d", n)
	}
	if i < 0 || i >= n {
		return 0, errors.New(errors.ErrCodeBadValue, "item index %d out of range [0, %d)", i, n)
	}
	return float64(i) * 2 * math.Pi / float64(n), nil
}

// ToCartesian converts polar coordinates to a Cartesian point.
func ToCartesian(r, theta float64) Point {
	return Point{X: r * math.Cos(theta), Y: r * math.Sin(theta)}
}

// ToPolar converts a Cartesian point to polar coordinates.
// The angle is in (-pi, pi], as returned by math.Atan2.
func ToPolar(p Point) (r, theta float64) {
	return math.Hypot(p.X, p.Y), math.Atan2(p.Y, p.X)
}

// CorrectNegativeAngle maps an angle into [0, 2*pi).
func CorrectNegativeAngle(theta float64) float64 {
	theta = math.Mod(theta, 2*math.Pi)
	if theta < 0 {
		theta += 2 * math.Pi
	}
	return theta
}

// CircosRadius returns the radius at which n items spaced evenly on a
// circle sit exactly dist apart along the chord between neighbors. It
// follows from the law of sines on the isoceles triangle formed by the
// center and two adjacent items.
func CircosRadius(n int, dist float64) float64 {
	if n < 2 {
		return dist
	}
	theta := 2 * math.Pi / float64(n)
	return dist / (2 * math.Sin(theta/2))
}
