package rotation

import "github.com/spritetools/pixelrotate/internal/raster"

// downscaleArea reduces a raster by an integer factor using alpha-aware
// block averaging.
//
// Each output pixel covers a scale×scale block of source sub-pixels. RGB is
// averaged over the opaque (alpha > 0) sub-pixels only, so transparent
// sub-pixels never pull the average toward black. The output alpha is 255 if
// at least half the block's sub-pixels are opaque, otherwise 0; a block with
// no opaque sub-pixels yields a fully zero pixel.
//
// The source dimensions are assumed to be exact multiples of scale; the
// pipeline guarantees this by rotating into scale-aligned bounds.
func downscaleArea(src *raster.Raster, scale int) *raster.Raster {
	if scale <= 1 {
		return src.Clone()
	}
	outW := src.Width / scale
	outH := src.Height / scale
	dst := raster.New(outW, outH)
	half := scale * scale / 2

	for y := 0; y < outH; y++ {
		for x := 0; x < outW; x++ {
			var rSum, gSum, bSum, opaque int
			for by := 0; by < scale; by++ {
				for bx := 0; bx < scale; bx++ {
					p := src.At(x*scale+bx, y*scale+by)
					if p.A() == 0 {
						continue
					}
					rSum += int(p.R())
					gSum += int(p.G())
					bSum += int(p.B())
					opaque++
				}
			}
			if opaque < half {
				continue // fully transparent, zero RGB
			}
			dst.Set(x, y, raster.Pack(
				uint8(rSum/opaque),
				uint8(gSum/opaque),
				uint8(bSum/opaque),
				255,
			))
		}
	}
	return dst
}
