package piet

import "image"

// Grid is a rectangular matrix of Colors, in codels (not pixels).
// Origin is top-left. A Grid is immutable after construction.
type Grid struct {
	w, h  int
	cells []Color
}

// NewGrid builds a Grid from a row-major [][]Color. All rows must have
// the same length; NewGrid panics otherwise (a programmer error — the
// layout engine and image loader are the only callers, and both
// guarantee rectangularity by construction).
func NewGrid(rows [][]Color) *Grid {
	h := len(rows)
	if h == 0 {
		return &Grid{}
	}
	w := len(rows[0])
	cells := make([]Color, 0, w*h)
	for _, row := range rows {
		if len(row) != w {
			panic("piet: ragged grid rows")
		}
		cells = append(cells, row...)
	}
	return &Grid{w: w, h: h, cells: cells}
}

// NewGridFromImage downsamples img to a codel grid, sampling the
// top-left pixel of each codelSize x codelSize block, per spec.md
// section 4.1. codelSize must be a positive integer.
func NewGridFromImage(img image.Image, codelSize int) *Grid {
	if codelSize < 1 {
		codelSize = 1
	}
	b := img.Bounds()
	w := b.Dx() / codelSize
	h := b.Dy() / codelSize
	cells := make([]Color, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			px := img.At(b.Min.X+x*codelSize, b.Min.Y+y*codelSize)
			cells[y*w+x] = FromRGBA(px)
		}
	}
	return &Grid{w: w, h: h, cells: cells}
}

// Width returns the grid's width in codels.
func (g *Grid) Width() int { return g.w }

// Height returns the grid's height in codels.
func (g *Grid) Height() int { return g.h }

// InBounds reports whether (x, y) is within the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.w && y >= 0 && y < g.h
}

// ColorAt returns the color at (x, y). Out-of-bounds coordinates are
// treated as Black, per spec.md section 3's border invariant.
func (g *Grid) ColorAt(x, y int) Color {
	if !g.InBounds(x, y) {
		return Black
	}
	return g.cells[y*g.w+x]
}
