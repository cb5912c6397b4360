package rotation

import (
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/spritetools/pixelrotate/internal/raster"
)

// Line width of a reconstructed edge, in source-pixel units. The default
// draws the dividing line exactly through its geometric half-pixel anchors;
// widths outside the clamp range produce visibly broken slants.
const (
	defaultLineWidth = 1.0
	minLineWidth     = 0.45
	maxLineWidth     = 1.142

	// distEpsilon bounds the "nearly tied" window in the slice gate.
	distEpsilon = 1e-3
)

// point is a position in pixel-local oriented coordinates, where (0, 0) is
// the pixel corner away from the sample and (1, 1) is the forward corner.
type point struct {
	X, Y float64
}

// flip reflects the point across the forward corner (1, 1). A flipped
// dividing line lies beyond the pixel, so the slice it describes claims the
// neighboring pixel's corner instead of this one's.
func (p point) flip() point {
	return point{2 - p.X, 2 - p.Y}
}

// neighborhood holds a 5×5 block of packed pixels around a classifier
// origin, indexed by offsets in oriented units. Index (0, 0) is the origin
// pixel itself; (1, 1) is the forward diagonal neighbor.
type neighborhood [25]raster.Pixel

func (n *neighborhood) at(i, j int) raster.Pixel {
	return n[(j+2)*5+(i+2)]
}

// slicePattern describes one recognizable edge configuration: a similarity
// predicate over the neighborhood, the dividing line it implies, an
// alternate line blended in cleanup mode, and the two colors competing for
// the sliced region.
type slicePattern struct {
	name   string
	match  func(e *edgeClassifier, n *neighborhood) bool
	lineA  point
	lineB  point
	altA   point
	altB   point
	altMax bool // cleanup combines with max (pull back) instead of min
	colors func(n *neighborhood) (raster.Pixel, raster.Pixel)
}

// The five patterns, in match priority order: slant starts first, then the
// plain 45° step, then the far corners of slants. First hit wins.
//
// Lines are expressed by two endpoints in oriented pixel-local coordinates.
// A shallow 2:1 slant runs two pixels horizontally per vertical step, so its
// dividing line drops half a pixel across the cell; the steep patterns are
// the transpose. Far-corner patterns continue the same lines through the
// second cell of the two-pixel run.
var slicePatterns = []slicePattern{
	{
		name: "shallow",
		match: func(e *edgeClassifier, n *neighborhood) bool {
			c := n.at(0, 0)
			return !e.similar(c, n.at(0, 1)) &&
				e.similar(n.at(0, 1), n.at(1, 1)) &&
				e.similar(n.at(1, 1), n.at(2, 1)) &&
				e.similar(c, n.at(1, 0)) &&
				e.similar(c, n.at(-1, 1))
		},
		lineA: point{0, 1}, lineB: point{1, 0.5},
		altA: point{0.5, 1}, altB: point{1, 0.5},
		colors: func(n *neighborhood) (raster.Pixel, raster.Pixel) {
			return n.at(0, 1), n.at(1, 1)
		},
	},
	{
		name: "steep",
		match: func(e *edgeClassifier, n *neighborhood) bool {
			c := n.at(0, 0)
			return !e.similar(c, n.at(1, 0)) &&
				e.similar(n.at(1, 0), n.at(1, 1)) &&
				e.similar(n.at(1, 1), n.at(1, 2)) &&
				e.similar(c, n.at(0, 1)) &&
				e.similar(c, n.at(1, -1))
		},
		lineA: point{1, 0}, lineB: point{0.5, 1},
		altA: point{1, 0.5}, altB: point{0.5, 1},
		colors: func(n *neighborhood) (raster.Pixel, raster.Pixel) {
			return n.at(1, 0), n.at(1, 1)
		},
	},
	{
		name: "diagonal",
		match: func(e *edgeClassifier, n *neighborhood) bool {
			c := n.at(0, 0)
			return e.similar(n.at(1, 0), n.at(0, 1)) &&
				!e.similar(c, n.at(1, 0)) &&
				!e.similar(c, n.at(0, 1)) &&
				!e.similar(n.at(0, 1), n.at(-1, 1)) &&
				!e.similar(n.at(1, 0), n.at(1, -1))
		},
		lineA: point{0.5, 1}, lineB: point{1, 0.5},
		altA: point{0.5, 1}, altB: point{1, 0.5},
		colors: func(n *neighborhood) (raster.Pixel, raster.Pixel) {
			return n.at(1, 0), n.at(0, 1)
		},
	},
	{
		name: "far-shallow",
		match: func(e *edgeClassifier, n *neighborhood) bool {
			c := n.at(0, 0)
			return e.similar(n.at(1, 0), n.at(0, 1)) &&
				!e.similar(c, n.at(1, 0)) &&
				e.similar(n.at(0, 1), n.at(-1, 1))
		},
		lineA: point{0, 0.5}, lineB: point{1, 0},
		altA: point{0.5, 1}, altB: point{1, 0.5},
		altMax: true,
		colors: func(n *neighborhood) (raster.Pixel, raster.Pixel) {
			return n.at(1, 0), n.at(1, 1)
		},
	},
	{
		name: "far-steep",
		match: func(e *edgeClassifier, n *neighborhood) bool {
			c := n.at(0, 0)
			return e.similar(n.at(1, 0), n.at(0, 1)) &&
				!e.similar(c, n.at(1, 0)) &&
				e.similar(n.at(1, 0), n.at(1, -1))
		},
		lineA: point{0.5, 0}, lineB: point{0, 1},
		altA: point{0.5, 1}, altB: point{1, 0.5},
		altMax: true,
		colors: func(n *neighborhood) (raster.Pixel, raster.Pixel) {
			return n.at(0, 1), n.at(1, 1)
		},
	},
}

// slicePasses lists the classifier orientations evaluated for every
// destination sample, in evaluation order. All three share the same source
// samples; the "b" and "u" passes re-run the classifier from the pixels
// adjacent along the point direction's axes, with the corresponding axis
// direction inverted so their forward corner faces the sample. When more
// than one pass returns a valid slice, the last one wins.
var slicePasses = [...]struct {
	name   string
	shiftH bool
	shiftV bool
}{
	{name: "center"},
	{name: "b", shiftH: true},
	{name: "u", shiftV: true},
}

// edgeClassifier performs the per-sample slice decisions of the CleanEdge
// upscale over a packed-pixel copy of the source.
type edgeClassifier struct {
	pix       []raster.Pixel
	w, h      int
	priority  EdgePriority
	cleanup   bool
	lineWidth float64

	// One cached neighborhood per pass; consecutive samples in a scanline
	// usually share an origin and orientation.
	cacheKey [len(slicePasses)][4]int
	cacheVal [len(slicePasses)]neighborhood
	cacheOK  [len(slicePasses)]bool
}

func newEdgeClassifier(src *raster.Raster, priority EdgePriority, cleanup bool, lineWidth float64) *edgeClassifier {
	if lineWidth == 0 {
		lineWidth = defaultLineWidth
	}
	lineWidth = math.Min(math.Max(lineWidth, minLineWidth), maxLineWidth)
	return &edgeClassifier{
		pix:       src.Packed(),
		w:         src.Width,
		h:         src.Height,
		priority:  priority,
		cleanup:   cleanup,
		lineWidth: lineWidth,
	}
}

// pixel returns the packed source pixel at (x, y), transparent outside the
// source bounds.
func (e *edgeClassifier) pixel(x, y int) raster.Pixel {
	if x < 0 || y < 0 || x >= e.w || y >= e.h {
		return raster.Transparent
	}
	return e.pix[y*e.w+x]
}

// similar reports whether two colors belong to the same flat region: either
// bit-identical, or both fully transparent regardless of RGB.
func (e *edgeClassifier) similar(a, b raster.Pixel) bool {
	return a == b || (a.A() == 0 && b.A() == 0)
}

// dist is the normalized Euclidean RGBA distance between two colors, in
// [0, 1]. Two fully transparent colors are at distance 0 whatever their RGB.
func (e *edgeClassifier) dist(a, b raster.Pixel) float64 {
	if a == b || (a.A() == 0 && b.A() == 0) {
		return 0
	}
	dr := (float64(a.R()) - float64(b.R())) / 255
	dg := (float64(a.G()) - float64(b.G())) / 255
	db := (float64(a.B()) - float64(b.B())) / 255
	da := (float64(a.A()) - float64(b.A())) / 255
	return math.Sqrt(dr*dr+dg*dg+db*db+da*da) / 2
}

// higher reports whether a strictly out-ranks b at a sliced boundary.
// Opacity wins first; among equal opacity, luminance decides, with darker
// winning under PriorityDarker and lighter under PriorityLighter. This is
// what makes dark outline strokes dominate lighter fills.
func (e *edgeClassifier) higher(a, b raster.Pixel) bool {
	if a == b {
		return false
	}
	if a.A() != b.A() {
		return a.A() > b.A()
	}
	la, lb := luminance(a), luminance(b)
	if e.priority == PriorityLighter {
		return la > lb
	}
	return la < lb
}

// luminance is the perceptual lightness (CIE L*) of a packed color.
func luminance(p raster.Pixel) float64 {
	c := colorful.Color{
		R: float64(p.R()) / 255,
		G: float64(p.G()) / 255,
		B: float64(p.B()) / 255,
	}
	l, _, _ := c.Lab()
	return l
}

// fetch returns the 5×5 oriented neighborhood of (ox, oy) for the direction
// (dirX, dirY), reusing the cached block when the key matches.
func (e *edgeClassifier) fetch(pass int, ox, oy, dirX, dirY int) *neighborhood {
	key := [4]int{ox, oy, dirX, dirY}
	if e.cacheOK[pass] && e.cacheKey[pass] == key {
		return &e.cacheVal[pass]
	}
	n := &e.cacheVal[pass]
	for j := -2; j <= 2; j++ {
		for i := -2; i <= 2; i++ {
			n[(j+2)*5+(i+2)] = e.pixel(ox+i*dirX, oy+j*dirY)
		}
	}
	e.cacheKey[pass] = key
	e.cacheOK[pass] = true
	return n
}

// lineDist returns the perpendicular distance from (u, v) to the line
// through a and b, signed positive on the origin side — the side on which
// the center color is kept.
func lineDist(u, v float64, a, b point) float64 {
	dx, dy := b.X-a.X, b.Y-a.Y
	d := (dx*(v-a.Y) - dy*(u-a.X)) / math.Hypot(dx, dy)
	if dx*(0-a.Y)-dy*(0-a.X) < 0 {
		d = -d
	}
	return d
}

// classifySlice decides whether the sample at oriented local position (u, v)
// within the neighborhood's origin pixel is sliced, and to which color.
func (e *edgeClassifier) classifySlice(n *neighborhood, u, v float64) (raster.Pixel, bool) {
	c := n.at(0, 0)
	f := n.at(1, 1)

	// Weighted evidence for an edge cutting across the forward corner
	// (against keeping c) versus an edge running through c and f (towards
	// keeping it). The direct horizontal/vertical pair carries 4× weight.
	distAgainst := 4*e.dist(n.at(1, 0), n.at(0, 1)) +
		e.dist(c, n.at(1, -1)) + e.dist(c, n.at(-1, 1)) +
		e.dist(f, n.at(2, 0)) + e.dist(f, n.at(0, 2))
	distTowards := 4*e.dist(c, f) +
		e.dist(n.at(0, 1), n.at(-1, 0)) + e.dist(n.at(0, 1), n.at(1, 2)) +
		e.dist(n.at(1, 0), n.at(0, -1)) + e.dist(n.at(1, 0), n.at(2, 1))

	switch {
	case distAgainst < distTowards:
		// edge evidence wins outright
	case distAgainst-distTowards < distEpsilon && !e.higher(c, f):
		// near tie: slice only when c does not out-rank f
	default:
		return raster.Transparent, false
	}

	// A locally uniform ring around both c and the diagonal neighborhood
	// with a dissimilar forward diagonal is a straight (non-diagonal) edge;
	// slicing it would bend it.
	if e.allSimilar(n.at(1, 0), n.at(-1, 0), n.at(0, 1), n.at(0, -1)) &&
		e.allSimilar(n.at(1, 1), n.at(-1, -1), n.at(1, -1), n.at(-1, 1)) &&
		!e.similar(c, f) {
		return raster.Transparent, false
	}

	for i := range slicePatterns {
		p := &slicePatterns[i]
		if !p.match(e, n) {
			continue
		}

		c1, c2 := p.colors(n)
		edge := c1
		if e.dist(c2, c) < e.dist(c1, c) {
			edge = c2
		}

		a, b := p.lineA, p.lineB
		altA, altB := p.altA, p.altB
		if e.higher(c, edge) {
			// c out-ranks the edge color: its pixel keeps the full square
			// and the edge is drawn into the neighbor instead (the
			// adjacent passes handle that side).
			a, b = a.flip(), b.flip()
			altA, altB = altA.flip(), altB.flip()
		}

		offset := 0.5 - e.lineWidth/2
		d := lineDist(u, v, a, b) + offset
		if e.cleanup {
			alt := lineDist(u, v, altA, altB) + offset
			if p.altMax {
				d = math.Max(d, alt)
			} else {
				d = math.Min(d, alt)
			}
		}
		if d <= 0 {
			return edge, true
		}
		return raster.Transparent, false
	}
	return raster.Transparent, false
}

func (e *edgeClassifier) allSimilar(a, b, c, d raster.Pixel) bool {
	return e.similar(a, b) && e.similar(a, c) && e.similar(a, d)
}

// classify resolves the final color of one destination sample by folding the
// pass list left to right; a later valid slice overrides an earlier one.
//
// (cx, cy) is the originating source pixel, (sx, sy) the signed point
// direction chosen from the sample's quadrant, and (gx, gy) the sample
// center in source coordinates.
func (e *edgeClassifier) classify(cx, cy, sx, sy int, gx, gy float64) raster.Pixel {
	out := e.pixel(cx, cy)
	for i, pass := range slicePasses {
		ox, oy := cx, cy
		dirX, dirY := sx, sy
		if pass.shiftH {
			ox += sx
			dirX = -sx
		}
		if pass.shiftV {
			oy += sy
			dirY = -sy
		}
		u := float64(dirX)*(gx-float64(ox)-0.5) + 0.5
		v := float64(dirY)*(gy-float64(oy)-0.5) + 0.5
		n := e.fetch(i, ox, oy, dirX, dirY)
		if p, ok := e.classifySlice(n, u, v); ok {
			out = p
		}
	}
	return out
}

// upscaleCleanEdge enlarges the source by an integer factor, reconstructing
// diagonal edges with the classifier so every source pixel becomes a
// scale×scale block whose samples follow the edge an artist would have
// drawn rather than a blocky copy.
func upscaleCleanEdge(src *raster.Raster, scale int, priority EdgePriority, cleanup bool, lineWidth float64) *raster.Raster {
	if scale <= 1 {
		return src.Clone()
	}
	dst := raster.New(src.Width*scale, src.Height*scale)
	if src.Width == 0 || src.Height == 0 {
		return dst
	}

	e := newEdgeClassifier(src, priority, cleanup, lineWidth)
	inv := 1.0 / float64(scale)

	for dy := 0; dy < dst.Height; dy++ {
		cy := dy / scale
		gy := (float64(dy) + 0.5) * inv
		sy := 1
		if gy-float64(cy) < 0.5 {
			sy = -1
		}
		for dx := 0; dx < dst.Width; dx++ {
			cx := dx / scale
			gx := (float64(dx) + 0.5) * inv
			sx := 1
			if gx-float64(cx) < 0.5 {
				sx = -1
			}
			dst.Set(dx, dy, e.classify(cx, cy, sx, sy, gx, gy))
		}
	}
	return dst
}
