package raster

import (
	"image"
	"image/color"
)

// Pixel is an RGBA color packed into a single uint32.
//
// Byte layout (most to least significant): R, G, B, A. Two pixels are equal
// iff their packed values are equal, which makes color comparison a single
// integer compare during edge classification.
type Pixel uint32

// Pack builds a Pixel from 8-bit components.
func Pack(r, g, b, a uint8) Pixel {
	return Pixel(r)<<24 | Pixel(g)<<16 | Pixel(b)<<8 | Pixel(a)
}

// R returns the red component (0-255).
func (p Pixel) R() uint8 { return uint8(p >> 24) }

// G returns the green component (0-255).
func (p Pixel) G() uint8 { return uint8(p >> 16) }

// B returns the blue component (0-255).
func (p Pixel) B() uint8 { return uint8(p >> 8) }

// A returns the alpha component (0-255). 0 is fully transparent.
func (p Pixel) A() uint8 { return uint8(p) }

// Transparent is the canonical fully transparent pixel (all components zero).
const Transparent Pixel = 0

// Rect is an integer rectangle in raster coordinates.
//
// (X, Y) is the top-left corner; Width and Height are in pixels.
type Rect struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Center returns the rectangle's center point.
func (r Rect) Center() (cx, cy float64) {
	return float64(r.X) + float64(r.Width)/2, float64(r.Y) + float64(r.Height)/2
}

// Raster is a width×height RGBA8 image with a row-major pixel buffer.
//
// The origin is the top-left corner; X increases rightward, Y downward.
// Pix holds 4 bytes per pixel in R, G, B, A order, so pixel (x, y) starts at
// offset (y*Width+x)*4. Alpha is not premultiplied.
type Raster struct {
	Width  int
	Height int
	Pix    []uint8
}

// New creates a fully transparent raster of the given size.
// Non-positive dimensions yield a zero-size raster, never a panic.
func New(w, h int) *Raster {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &Raster{Width: w, Height: h, Pix: make([]uint8, w*h*4)}
}

// At returns the packed pixel at (x, y). Coordinates outside the raster
// return Transparent; the rotation engine relies on this for inverse-mapped
// samples that fall off the source.
func (r *Raster) At(x, y int) Pixel {
	if x < 0 || y < 0 || x >= r.Width || y >= r.Height {
		return Transparent
	}
	i := (y*r.Width + x) * 4
	return Pack(r.Pix[i], r.Pix[i+1], r.Pix[i+2], r.Pix[i+3])
}

// Set writes the packed pixel at (x, y). Out-of-bounds writes are ignored.
func (r *Raster) Set(x, y int, p Pixel) {
	if x < 0 || y < 0 || x >= r.Width || y >= r.Height {
		return
	}
	i := (y*r.Width + x) * 4
	r.Pix[i] = p.R()
	r.Pix[i+1] = p.G()
	r.Pix[i+2] = p.B()
	r.Pix[i+3] = p.A()
}

// Clone returns an independent deep copy of the raster.
func (r *Raster) Clone() *Raster {
	out := &Raster{Width: r.Width, Height: r.Height, Pix: make([]uint8, len(r.Pix))}
	copy(out.Pix, r.Pix)
	return out
}

// Packed copies the pixel buffer into a []Pixel, one packed value per pixel.
// The CleanEdge pass works on this representation for cache locality.
func (r *Raster) Packed() []Pixel {
	out := make([]Pixel, r.Width*r.Height)
	for i := range out {
		j := i * 4
		out[i] = Pack(r.Pix[j], r.Pix[j+1], r.Pix[j+2], r.Pix[j+3])
	}
	return out
}

// FromImage converts any image.Image into a Raster.
//
// The image's bounds are translated so the raster origin is (0, 0). Colors
// are converted through NRGBA, so premultiplied sources are unmultiplied.
func FromImage(img image.Image) *Raster {
	bounds := img.Bounds()
	out := New(bounds.Dx(), bounds.Dy())
	for y := 0; y < out.Height; y++ {
		for x := 0; x < out.Width; x++ {
			c := color.NRGBAModel.Convert(img.At(x+bounds.Min.X, y+bounds.Min.Y)).(color.NRGBA)
			out.Set(x, y, Pack(c.R, c.G, c.B, c.A))
		}
	}
	return out
}

// ToImage converts the raster into an *image.NRGBA sharing no memory with it.
func (r *Raster) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, r.Width, r.Height))
	copy(img.Pix, r.Pix)
	return img
}

// Mask is a per-pixel coverage buffer bound to a rectangle.
//
// Data holds Width×Height bytes, row-major, each either 0 (not selected) or
// 255 (selected). The Rect locates the mask within the artwork.
type Mask struct {
	Rect Rect
	Data []uint8
}

// NewMask creates an empty (all zero) mask covering the given rectangle.
func NewMask(r Rect) *Mask {
	w, h := r.Width, r.Height
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &Mask{Rect: Rect{X: r.X, Y: r.Y, Width: w, Height: h}, Data: make([]uint8, w*h)}
}

// At reports whether (x, y), relative to the mask's own rectangle, is
// selected. Out-of-bounds coordinates are not selected.
func (m *Mask) At(x, y int) bool {
	if x < 0 || y < 0 || x >= m.Rect.Width || y >= m.Rect.Height {
		return false
	}
	return m.Data[y*m.Rect.Width+x] != 0
}

// Set marks (x, y), relative to the mask's rectangle, as selected or not.
func (m *Mask) Set(x, y int, selected bool) {
	if x < 0 || y < 0 || x >= m.Rect.Width || y >= m.Rect.Height {
		return
	}
	v := uint8(0)
	if selected {
		v = 255
	}
	m.Data[y*m.Rect.Width+x] = v
}

// Clone returns an independent deep copy of the mask.
func (m *Mask) Clone() *Mask {
	out := &Mask{Rect: m.Rect, Data: make([]uint8, len(m.Data))}
	copy(out.Data, m.Data)
	return out
}
