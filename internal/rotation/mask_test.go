package rotation

import (
	"testing"

	"github.com/spritetools/pixelrotate/internal/raster"
)

func createFullMask(rect raster.Rect) *raster.Mask {
	m := raster.NewMask(rect)
	for y := 0; y < rect.Height; y++ {
		for x := 0; x < rect.Width; x++ {
			m.Set(x, y, true)
		}
	}
	return m
}

func TestRotateMask_ZeroAngleIsIndependentCopy(t *testing.T) {
	m := raster.NewMask(raster.Rect{X: 2, Y: 3, Width: 4, Height: 4})
	m.Set(1, 1, true)
	m.Set(2, 1, true)

	got := RotateMask(m, 0)
	if got.Rect != m.Rect {
		t.Fatalf("rect changed: got %+v, want %+v", got.Rect, m.Rect)
	}
	for i := range m.Data {
		if got.Data[i] != m.Data[i] {
			t.Fatalf("data differs at index %d", i)
		}
	}

	got.Set(0, 0, true)
	if m.At(0, 0) {
		t.Error("rotated mask shares its buffer with the source")
	}
}

func TestRotateMask_FullTurnIsCopy(t *testing.T) {
	m := createFullMask(raster.Rect{Width: 3, Height: 5})
	got := RotateMask(m, 360)
	if got.Rect != m.Rect {
		t.Errorf("rect changed at 360°: got %+v", got.Rect)
	}
}

func TestRotateMask_QuarterTurn(t *testing.T) {
	// An L-shaped selection: full left column plus bottom row of a 3×3.
	m := raster.NewMask(raster.Rect{Width: 3, Height: 3})
	for y := 0; y < 3; y++ {
		m.Set(0, y, true)
	}
	for x := 0; x < 3; x++ {
		m.Set(x, 2, true)
	}

	got := RotateMask(m, 90)
	if got.Rect.Width != 3 || got.Rect.Height != 3 {
		t.Fatalf("dimensions: got %dx%d, want 3x3", got.Rect.Width, got.Rect.Height)
	}
	// 90° CW sends (x,y) to (H-1-y, x): left column becomes top row,
	// bottom row becomes left column.
	for x := 0; x < 3; x++ {
		if !got.At(x, 0) {
			t.Errorf("top row (%d,0) should be selected", x)
		}
	}
	for y := 0; y < 3; y++ {
		if !got.At(0, y) {
			t.Errorf("left column (0,%d) should be selected", y)
		}
	}
	if got.At(2, 2) {
		t.Error("(2,2) should not be selected")
	}
}

func TestRotateMask_DimensionsFollowRotatedRaster(t *testing.T) {
	m := createFullMask(raster.Rect{X: 10, Y: 10, Width: 4, Height: 4})
	got := RotateMask(m, 45)

	wantW, wantH := RotatedBounds(4, 4, 45)
	if got.Rect.Width != wantW || got.Rect.Height != wantH {
		t.Fatalf("dimensions: got %dx%d, want %dx%d", got.Rect.Width, got.Rect.Height, wantW, wantH)
	}
	// Center selected, bounding corners not.
	if !got.At(wantW/2, wantH/2) {
		t.Error("center should remain selected")
	}
	if got.At(0, 0) || got.At(wantW-1, wantH-1) {
		t.Error("bounding corners should not be selected")
	}
}

func TestRotateMask_EmptyMask(t *testing.T) {
	m := raster.NewMask(raster.Rect{Width: 5, Height: 5})
	got := RotateMask(m, 30)
	for y := 0; y < got.Rect.Height; y++ {
		for x := 0; x < got.Rect.Width; x++ {
			if got.At(x, y) {
				t.Fatalf("(%d,%d) selected in rotation of an empty mask", x, y)
			}
		}
	}
}
