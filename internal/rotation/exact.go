package rotation

import "github.com/spritetools/pixelrotate/internal/raster"

// ExactAngle reports whether the normalized angle is an exact multiple of
// 90°, i.e. one RotateExact can handle without resampling.
func ExactAngle(angleDeg float64) bool {
	switch NormalizeAngle(angleDeg) {
	case 0, 90, 180, 270:
		return true
	}
	return false
}

// RotateExact rotates a raster by an exact multiple of 90° clockwise.
//
// These four rotations are pure pixel remaps: every source pixel moves to
// exactly one destination pixel and no color approximation occurs. For 90°
// and 270° the output swaps width and height. Angles are normalized first,
// so -90 behaves as 270. Angles that are not 90° multiples fall back to an
// identity copy; callers should gate on ExactAngle or use Rotate, which
// dispatches here automatically.
func RotateExact(src *raster.Raster, angleDeg float64) *raster.Raster {
	switch NormalizeAngle(angleDeg) {
	case 90:
		return rotate90CW(src)
	case 180:
		return rotate180(src)
	case 270:
		return rotate270CW(src)
	}
	return src.Clone()
}

// rotate90CW maps source (x, y) to destination (H-1-y, x); output is H×W.
func rotate90CW(src *raster.Raster) *raster.Raster {
	w, h := src.Width, src.Height
	dst := raster.New(h, w)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			dst.Set(h-1-y, x, src.At(x, y))
		}
	}
	return dst
}

// rotate180 maps source (x, y) to destination (W-1-x, H-1-y); output is W×H.
func rotate180(src *raster.Raster) *raster.Raster {
	w, h := src.Width, src.Height
	dst := raster.New(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			dst.Set(w-1-x, h-1-y, src.At(x, y))
		}
	}
	return dst
}

// rotate270CW (90° counter-clockwise) maps source (x, y) to destination
// (y, W-1-x); output is H×W.
func rotate270CW(src *raster.Raster) *raster.Raster {
	w, h := src.Width, src.Height
	dst := raster.New(h, w)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			dst.Set(y, w-1-x, src.At(x, y))
		}
	}
	return dst
}
