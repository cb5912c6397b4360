// Package rotation implements pixel-art-preserving raster rotation.
//
// Ordinary resampling either blurs hard edges (bilinear, bicubic) or leaves
// heavy staircase artifacts (plain nearest neighbor). This package rotates a
// raster by an arbitrary angle while reconstructing the flat-color diagonal
// edges a pixel artist would have drawn, using an upscale → rotate →
// downscale pipeline with a local geometric edge classifier ("CleanEdge") in
// the upscale stage.
//
// # Coordinate System
//
// All operations use a top-left origin with X increasing rightward and Y
// increasing downward (screen space). Angles are in degrees and are measured
// clockwise on screen, consistent with the y-down convention.
//
// # Operations
//
//   - NormalizeAngle, SnapAngle, AngleFromCenter: angle bookkeeping for
//     interactive rotation handles.
//   - RotatedBounds, RotateRect: axis-aligned bounds of a rotated rectangle
//     and center-preserving rect recentering.
//   - RotateExact: lossless remaps for 0°, 90°, 180° and 270°.
//   - RotateNearest: general-angle nearest-neighbor rotation.
//   - RotateMask: selection mask rotation via the alpha channel.
//   - Rotate: the full pipeline with draft/final quality tiers.
//
// # Determinism and Errors
//
// Every operation is a pure, total function of its inputs: no I/O, no shared
// state, no error paths inside the engine. Inverse-mapped samples that fall
// outside the source resolve to transparent pixels, and zero-size inputs
// deterministically produce zero-size outputs.
//
// # Performance
//
// The CleanEdge pass evaluates dozens of neighbor comparisons per destination
// sample across scale²×W×H samples, so colors are handled as packed uint32
// values throughout (see the raster package). Draft quality (2× upscale) is
// intended for per-pointer-move preview; final quality (4×) for commit.
package rotation
