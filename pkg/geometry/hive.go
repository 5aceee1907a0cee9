package geometry

import "math"

// CorrectHiveAngles adjusts a pair of axis angles so that an edge drawn
// between them sweeps the short way around the hive center. When one
// endpoint sits on the zero axis and the other more than half a turn
// away, the zero angle is remapped to a full turn.
func CorrectHiveAngles(start, end float64) (float64, float64) {
	if start == 0 && end > math.Pi {
		start = 2 * math.Pi
	}
	if end == 0 && start > math.Pi {
		end = 2 * math.Pi
	}
	return start, end
}
