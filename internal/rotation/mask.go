package rotation

import "github.com/spritetools/pixelrotate/internal/raster"

// RotateMask rotates a selection coverage mask by the given angle.
//
// The mask is packed into the alpha channel of a black raster, rotated with
// RotateNearest, and re-extracted by thresholding the rotated alpha at 127
// (>127 means selected). Thresholding suppresses resampling artifacts at the
// selection boundary.
//
// The returned mask's rectangle is recentered with RotateRect, but its width
// and height are taken from the rotated raster's actual dimensions, guarding
// against any mismatch between the analytic bounds and the pixel buffer.
//
// At 0° (or any multiple of 360°) the result is an independent copy of the
// input.
func RotateMask(mask *raster.Mask, angleDeg float64) *raster.Mask {
	if NormalizeAngle(angleDeg) == 0 {
		return mask.Clone()
	}

	carrier := raster.New(mask.Rect.Width, mask.Rect.Height)
	for y := 0; y < mask.Rect.Height; y++ {
		for x := 0; x < mask.Rect.Width; x++ {
			if mask.At(x, y) {
				carrier.Set(x, y, raster.Pack(0, 0, 0, 255))
			}
		}
	}

	rotated := RotateNearest(carrier, angleDeg)

	bounds := RotateRect(mask.Rect, angleDeg)
	bounds.Width = rotated.Width
	bounds.Height = rotated.Height

	out := raster.NewMask(bounds)
	for y := 0; y < rotated.Height; y++ {
		for x := 0; x < rotated.Width; x++ {
			if rotated.At(x, y).A() > 127 {
				out.Set(x, y, true)
			}
		}
	}
	return out
}
