package rotation

import (
	"testing"

	"github.com/spritetools/pixelrotate/internal/raster"
)

func TestRotateNearest_ZeroAngleIsIdentity(t *testing.T) {
	src := createNumbered(7, 5)
	dst := RotateNearest(src, 0)
	if !rastersEqual(dst, src) {
		t.Error("0° nearest rotation is not an identity copy")
	}
}

func TestRotateNearest_QuarterTurnMatchesExact(t *testing.T) {
	src := createNumbered(6, 4)
	for _, angle := range []float64{90, 180, 270} {
		nearest := RotateNearest(src, angle)
		exact := RotateExact(src, angle)
		if !rastersEqual(nearest, exact) {
			t.Errorf("nearest rotation at %v° differs from the exact remap", angle)
		}
	}
}

func TestRotateNearest_OutOfBoundsIsTransparent(t *testing.T) {
	src := createSolid(4, 4, raster.Pack(200, 100, 50, 255))
	dst := RotateNearest(src, 45)

	if dst.Width != 6 || dst.Height != 6 {
		t.Fatalf("dimensions: got %dx%d, want 6x6", dst.Width, dst.Height)
	}
	// The bounding box corners lie outside the rotated square.
	corners := [4][2]int{{0, 0}, {5, 0}, {0, 5}, {5, 5}}
	for _, c := range corners {
		if p := dst.At(c[0], c[1]); p != raster.Transparent {
			t.Errorf("corner (%d,%d) not transparent: %08x", c[0], c[1], uint32(p))
		}
	}
	// The center maps back inside the source.
	if p := dst.At(3, 3); p.A() == 0 {
		t.Error("center pixel unexpectedly transparent")
	}
}

func TestRotateNearest_AllTransparentStaysTransparent(t *testing.T) {
	src := raster.New(8, 8)
	for _, angle := range []float64{13, 45, 78.9, 211} {
		dst := RotateNearest(src, angle)
		wantW, wantH := RotatedBounds(8, 8, angle)
		if dst.Width != wantW || dst.Height != wantH {
			t.Fatalf("angle %v: got %dx%d, want %dx%d", angle, dst.Width, dst.Height, wantW, wantH)
		}
		assertAllTransparent(t, dst)
	}
}

func TestRotateNearestTo_CustomBounds(t *testing.T) {
	src := createSolid(4, 4, raster.Pack(10, 20, 30, 255))
	dst := RotateNearestTo(src, 45, 12, 12)
	if dst.Width != 12 || dst.Height != 12 {
		t.Fatalf("dimensions: got %dx%d, want 12x12", dst.Width, dst.Height)
	}
	if p := dst.At(6, 6); p.A() == 0 {
		t.Error("center pixel transparent in enlarged bounds")
	}
	if p := dst.At(0, 0); p != raster.Transparent {
		t.Error("padding corner not transparent")
	}
}

func TestRotateNearestTo_DegenerateOutputs(t *testing.T) {
	src := createSolid(4, 4, raster.Pack(1, 2, 3, 255))
	if dst := RotateNearestTo(src, 30, 0, 5); dst.Width != 0 || dst.Height != 0 {
		t.Errorf("zero width request: got %dx%d", dst.Width, dst.Height)
	}
	empty := raster.New(0, 0)
	dst := RotateNearestTo(empty, 30, 4, 4)
	if dst.Width != 4 || dst.Height != 4 {
		t.Fatalf("empty source: got %dx%d, want 4x4", dst.Width, dst.Height)
	}
	assertAllTransparent(t, dst)
}
