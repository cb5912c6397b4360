package rotation

import (
	"fmt"

	"github.com/spritetools/pixelrotate/internal/raster"
)

// Quality selects the CleanEdge upscale factor.
type Quality int

const (
	// QualityDraft upscales 2×: fast enough for per-pointer-move preview.
	QualityDraft Quality = iota
	// QualityFinal upscales 4×: used when a transform is committed.
	QualityFinal
)

func (q Quality) scale() int {
	if q == QualityFinal {
		return 4
	}
	return 2
}

// EdgePriority selects which of two equally opaque colors wins a sliced
// boundary.
type EdgePriority int

const (
	// PriorityDarker lets darker colors paint over lighter ones at sliced
	// edges, so dark outline strokes dominate lighter fills. The default.
	PriorityDarker EdgePriority = iota
	// PriorityLighter inverts the rule.
	PriorityLighter
)

// Options configures the rotation pipeline.
//
// The zero value is a valid configuration: draft quality, darker-wins edge
// priority, no cleanup, default line width.
type Options struct {
	// Quality picks the upscale factor (2× draft, 4× final).
	Quality Quality

	// EdgePriority breaks ties between equally opaque colors at sliced
	// boundaries.
	EdgePriority EdgePriority

	// Cleanup enables the extra slant-transition smoothing pass. Its effect
	// on rotation output is negligible; it matters more for plain
	// upscaling.
	Cleanup bool

	// LineWidth is the reconstructed edge line width in source-pixel units.
	// Zero means the default (1.0); other values are clamped to
	// [0.45, 1.142].
	LineWidth float64

	// ForceResample routes exact 90°-multiple angles through the lossy
	// CleanEdge path instead of the exact rotator, for callers that want
	// stylistically consistent resampling across all angles.
	ForceResample bool
}

// Result is the outcome of a pipeline rotation.
type Result struct {
	// Raster is the rotated pixels. Its dimensions are always at least the
	// analytic rotated bounding box of the source, so no in-bounds content
	// is clipped.
	Raster *raster.Raster

	// Bounds positions the rotated raster so that it preserves the original
	// rectangle's center, to within one pixel due to floor rounding.
	Bounds raster.Rect

	// Mask is the rotated selection mask, present only if the request
	// carried one.
	Mask *raster.Mask
}

// Rotate rotates a floating selection's raster by angleDeg degrees
// clockwise, preserving pixel-art edges.
//
// rect locates the selection within the artwork and is recentered into
// Result.Bounds. The angle may be any real value; it is normalized into
// [0, 360) first.
//
// Dispatch:
//   - 0° returns a byte-identical copy (short-circuiting float error
//     accumulation entirely).
//   - Exact 90° multiples use the lossless RotateExact remap, unless
//     opts.ForceResample is set.
//   - Everything else runs CleanEdge upscale → nearest-neighbor rotate →
//     area-average downscale at the quality tier's scale factor.
//
// A nil source is the only error; every other input, including zero-size
// rasters, produces a deterministic result.
func Rotate(src *raster.Raster, rect raster.Rect, angleDeg float64, opts Options) (*Result, error) {
	if src == nil {
		return nil, fmt.Errorf("rotate: nil source raster")
	}

	angle := NormalizeAngle(angleDeg)
	bounds := RotateRect(rect, angle)

	if angle == 0 {
		return &Result{Raster: src.Clone(), Bounds: bounds}, nil
	}
	if ExactAngle(angle) && !opts.ForceResample {
		return &Result{Raster: RotateExact(src, angle), Bounds: bounds}, nil
	}

	scale := opts.Quality.scale()
	upscaled := upscaleCleanEdge(src, scale, opts.EdgePriority, opts.Cleanup, opts.LineWidth)

	// Rotate into scale-aligned bounds so the downscaler divides evenly and
	// the final raster matches the analytic bounds exactly.
	outW, outH := RotatedBounds(src.Width, src.Height, angle)
	rotated := RotateNearestTo(upscaled, angle, outW*scale, outH*scale)

	return &Result{
		Raster: downscaleArea(rotated, scale),
		Bounds: bounds,
	}, nil
}

// RotateWithMask rotates a selection raster together with its coverage
// mask. The mask is rotated independently through the alpha channel (see
// RotateMask) and shares the recentered bounds computation.
func RotateWithMask(src *raster.Raster, mask *raster.Mask, rect raster.Rect, angleDeg float64, opts Options) (*Result, error) {
	res, err := Rotate(src, rect, angleDeg, opts)
	if err != nil {
		return nil, err
	}
	if mask != nil {
		res.Mask = RotateMask(mask, angleDeg)
	}
	return res, nil
}
