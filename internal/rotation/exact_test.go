package rotation

import (
	"testing"

	"github.com/spritetools/pixelrotate/internal/raster"
)

func TestRotateExact_90CWMapping(t *testing.T) {
	// A 2×3 raster becomes 3×2; source (x,y) lands at (H-1-y, x).
	src := createNumbered(2, 3)
	dst := RotateExact(src, 90)

	if dst.Width != 3 || dst.Height != 2 {
		t.Fatalf("dimensions: got %dx%d, want 3x2", dst.Width, dst.Height)
	}

	// Source (0,0) must map to destination (2,0).
	if got := dst.At(2, 0); got != src.At(0, 0) {
		t.Errorf("src(0,0) at dst(2,0): got %08x, want %08x", uint32(got), uint32(src.At(0, 0)))
	}

	for y := 0; y < src.Height; y++ {
		for x := 0; x < src.Width; x++ {
			if got := dst.At(src.Height-1-y, x); got != src.At(x, y) {
				t.Fatalf("src(%d,%d) misplaced: got %08x, want %08x",
					x, y, uint32(got), uint32(src.At(x, y)))
			}
		}
	}
}

func TestRotateExact_FourQuartersIsIdentity(t *testing.T) {
	src := createNumbered(5, 3)
	r := src
	for i := 0; i < 4; i++ {
		r = RotateExact(r, 90)
	}
	if !rastersEqual(r, src) {
		t.Error("four 90° rotations are not bit-identical to the source")
	}
}

func TestRotateExact_180EqualsTwoQuarters(t *testing.T) {
	src := createNumbered(4, 6)
	direct := RotateExact(src, 180)
	double := RotateExact(RotateExact(src, 90), 90)
	if !rastersEqual(direct, double) {
		t.Error("rotate180 differs from rotate90 applied twice")
	}
}

func TestRotateExact_NegativeAngleNormalizes(t *testing.T) {
	src := createNumbered(3, 4)
	if !rastersEqual(RotateExact(src, -90), RotateExact(src, 270)) {
		t.Error("RotateExact(-90) differs from RotateExact(270)")
	}
}

func TestRotateExact_ZeroIsIndependentCopy(t *testing.T) {
	src := createNumbered(3, 3)
	dst := RotateExact(src, 0)
	if !rastersEqual(dst, src) {
		t.Fatal("0° rotation is not byte-identical")
	}
	dst.Set(0, 0, raster.Pack(9, 9, 9, 9))
	if src.At(0, 0) == dst.At(0, 0) {
		t.Error("0° rotation shares its buffer with the source")
	}
}

func TestExactAngle(t *testing.T) {
	tests := []struct {
		angle float64
		want  bool
	}{
		{0, true}, {90, true}, {180, true}, {270, true},
		{360, true}, {-90, true}, {450, true},
		{45, false}, {90.5, false}, {1, false},
	}
	for _, tt := range tests {
		if got := ExactAngle(tt.angle); got != tt.want {
			t.Errorf("ExactAngle(%v) = %v, want %v", tt.angle, got, tt.want)
		}
	}
}

func TestRotateExact_ZeroSize(t *testing.T) {
	src := raster.New(0, 0)
	for _, angle := range []float64{0, 90, 180, 270} {
		dst := RotateExact(src, angle)
		if dst.Width != 0 || dst.Height != 0 {
			t.Errorf("angle %v: got %dx%d, want 0x0", angle, dst.Width, dst.Height)
		}
	}
}
