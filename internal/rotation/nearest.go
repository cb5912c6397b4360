package rotation

import (
	"math"

	"github.com/spritetools/pixelrotate/internal/raster"
)

// RotateNearest rotates a raster by an arbitrary angle using inverse
// nearest-neighbor mapping.
//
// The output raster has RotatedBounds dimensions. For each destination pixel
// the offset from the destination center is rotated by -angle (the inverse
// transform), translated to the source center, and rounded to the nearest
// source pixel. Destination pixels whose rounded source coordinate falls
// outside the source are fully transparent; there is no wrapping and no
// clamping.
//
// This is also stage 2 of the CleanEdge pipeline, where it rotates the
// upscaled raster.
func RotateNearest(src *raster.Raster, angleDeg float64) *raster.Raster {
	outW, outH := RotatedBounds(src.Width, src.Height, angleDeg)
	return RotateNearestTo(src, angleDeg, outW, outH)
}

// RotateNearestTo is RotateNearest with caller-specified output dimensions.
//
// The source is rotated about its center and the result is centered in the
// outW×outH destination. The pipeline uses this to keep the rotated
// intermediate an exact multiple of the upscale factor, so the downscaler
// divides it evenly.
func RotateNearestTo(src *raster.Raster, angleDeg float64, outW, outH int) *raster.Raster {
	if outW <= 0 || outH <= 0 {
		return raster.New(0, 0)
	}
	dst := raster.New(outW, outH)
	if src.Width <= 0 || src.Height <= 0 {
		return dst
	}

	rad := NormalizeAngle(angleDeg) * math.Pi / 180
	// Inverse transform: rotate destination offsets by -angle.
	sin, cos := math.Sin(-rad), math.Cos(-rad)
	srcCX := float64(src.Width) / 2
	srcCY := float64(src.Height) / 2
	dstCX := float64(outW) / 2
	dstCY := float64(outH) / 2

	for y := 0; y < outH; y++ {
		dy := float64(y) + 0.5 - dstCY
		for x := 0; x < outW; x++ {
			dx := float64(x) + 0.5 - dstCX
			sx := int(math.Floor(dx*cos - dy*sin + srcCX))
			sy := int(math.Floor(dx*sin + dy*cos + srcCY))
			if sx < 0 || sy < 0 || sx >= src.Width || sy >= src.Height {
				continue // stays transparent
			}
			dst.Set(x, y, src.At(sx, sy))
		}
	}
	return dst
}
