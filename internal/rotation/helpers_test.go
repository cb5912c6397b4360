package rotation

import (
	"testing"

	"github.com/spritetools/pixelrotate/internal/raster"
)

// createSolid builds a w×h raster filled with a single color.
func createSolid(w, h int, p raster.Pixel) *raster.Raster {
	r := raster.New(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r.Set(x, y, p)
		}
	}
	return r
}

// createNumbered builds a raster whose pixels are all distinct and opaque,
// so remap tests can track individual pixels.
func createNumbered(w, h int) *raster.Raster {
	r := raster.New(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r.Set(x, y, raster.Pack(uint8(x), uint8(y), uint8(x+y), 255))
		}
	}
	return r
}

func rastersEqual(a, b *raster.Raster) bool {
	if a.Width != b.Width || a.Height != b.Height || len(a.Pix) != len(b.Pix) {
		return false
	}
	for i := range a.Pix {
		if a.Pix[i] != b.Pix[i] {
			return false
		}
	}
	return true
}

func countOpaque(r *raster.Raster) int {
	n := 0
	for y := 0; y < r.Height; y++ {
		for x := 0; x < r.Width; x++ {
			if r.At(x, y).A() > 0 {
				n++
			}
		}
	}
	return n
}

func assertAllTransparent(t *testing.T, r *raster.Raster) {
	t.Helper()
	for y := 0; y < r.Height; y++ {
		for x := 0; x < r.Width; x++ {
			if p := r.At(x, y); p.A() != 0 {
				t.Fatalf("pixel (%d,%d) not transparent: %08x", x, y, uint32(p))
			}
		}
	}
}
