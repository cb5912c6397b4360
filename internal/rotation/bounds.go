package rotation

import (
	"math"

	"github.com/spritetools/pixelrotate/internal/raster"
)

// boundsEpsilon absorbs the float noise math.Sin/Cos leave at quarter turns
// (sin(π) ≈ 1.2e-16), which would otherwise push an exact integer extent past
// the next integer under ceil.
const boundsEpsilon = 1e-9

// RotatedBounds returns the size of the axis-aligned bounding box of a w×h
// rectangle rotated by angle degrees.
//
// The standard rotated-rectangle AABB formula is used:
//
//	w' = ceil(w·|cosθ| + h·|sinθ|)
//	h' = ceil(w·|sinθ| + h·|cosθ|)
//
// Exact 90° multiples yield exactly swapped or unchanged dimensions. The
// result is never smaller than the source for any angle, so rotated content
// is never clipped. Zero-size inputs produce zero-size bounds.
func RotatedBounds(w, h int, angleDeg float64) (int, int) {
	if w <= 0 || h <= 0 {
		return 0, 0
	}
	rad := NormalizeAngle(angleDeg) * math.Pi / 180
	sin := math.Abs(math.Sin(rad))
	cos := math.Abs(math.Cos(rad))
	outW := int(math.Ceil(float64(w)*cos + float64(h)*sin - boundsEpsilon))
	outH := int(math.Ceil(float64(w)*sin + float64(h)*cos - boundsEpsilon))
	return outW, outH
}

// RotateRect returns the bounds a rectangle occupies after rotation about
// its own center.
//
// The new rectangle has RotatedBounds dimensions and is positioned so its
// center coincides with the original center, to within one pixel due to
// floor rounding of the top-left corner.
func RotateRect(rect raster.Rect, angleDeg float64) raster.Rect {
	outW, outH := RotatedBounds(rect.Width, rect.Height, angleDeg)
	cx, cy := rect.Center()
	return raster.Rect{
		X:      int(math.Floor(cx - float64(outW)/2)),
		Y:      int(math.Floor(cy - float64(outH)/2)),
		Width:  outW,
		Height: outH,
	}
}
