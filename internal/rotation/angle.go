package rotation

import "math"

// NormalizeAngle maps any angle in degrees into the range [0, 360).
//
// Negative inputs wrap: NormalizeAngle(-90) == 270. Inputs of any magnitude
// are accepted; 360 and 720 both normalize to 0.
func NormalizeAngle(deg float64) float64 {
	d := math.Mod(deg, 360)
	if d < 0 {
		d += 360
	}
	return d
}

// SnapAngle rounds an angle to the nearest multiple of increment, rounding
// half-way cases away from zero. A non-positive increment returns the angle
// unchanged.
//
// Editors use this for shift-constrained rotation (e.g. increment 15).
func SnapAngle(deg, increment float64) float64 {
	if increment <= 0 {
		return deg
	}
	return math.Round(deg/increment) * increment
}

// AngleFromCenter returns the angle, in normalized degrees, of the point
// (px, py) as seen from the center (cx, cy).
//
// The convention is screen space (y-down): 0° points right and angles grow
// clockwise on screen, so a point directly below the center is at 90°.
func AngleFromCenter(cx, cy, px, py float64) float64 {
	rad := math.Atan2(py-cy, px-cx)
	return NormalizeAngle(rad * 180 / math.Pi)
}
