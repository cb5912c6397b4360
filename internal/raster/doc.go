// Package raster defines the pixel data model shared by the rotation engine.
//
// The central type is Raster: a width×height, row-major RGBA8 buffer with the
// origin at the top-left corner, X increasing rightward and Y increasing
// downward. All coordinates are 0-based.
//
// # Packed Pixels
//
// The engine compares colors many times per output sample, so colors are
// handled as Pixel values: a single uint32 packing R, G, B and A at fixed
// byte offsets. Packing avoids per-pixel allocations and makes equality a
// single integer comparison.
//
// # Rect and Mask
//
// Rect is an integer rectangle in raster coordinates. Mask is a 0/255
// coverage buffer bound to a Rect, representing a freeform selection's
// membership.
//
// # Thread Safety
//
// RasterCache is safe for concurrent use. Raster itself is a plain buffer;
// callers own it and synchronize access if they mutate it from multiple
// goroutines.
package raster
