package mayjs3d

import "math"

// ToRadians is a helper function to easily convert degrees to radians (which is what the rotation-oriented functions in mayjs3d use).
func ToRadians(degrees float64) float64 {
	return math.Pi * degrees / 180
}

// ToDegrees is a helper function to easily convert radians to degrees for human readability.
func ToDegrees(radians float64) float64 {
	return radians / math.Pi * 180
}

func clamp[V float64 | float32 | int](value, min, max V) V {
	if value < min {
		return min
	} else if value > max {
		return max
	}
	return value
}

// ClosestPointOnLine returns the closest point along a line spanning from start to end.
func ClosestPointOnLine(start, end, point Vector) Vector {

	ab := end.Sub(start)
	denom := ab.Dot(ab)
	if denom == 0 {
		return start
	}
	t := point.Sub(start).Dot(ab) / denom
	return start.Add(ab.Scale(clamp(t, 0, 1)))

}
