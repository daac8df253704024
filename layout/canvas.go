// Package layout implements the image layout engine (spec.md section
// 4.7): it maps a linear asm.Program onto a 2D piet.Grid whose
// execution order, under Piet's own semantics, reproduces the
// program. White regions act as connective "wire" (spec.md section
// 9); 90-degree turns are built from the engine's own blocked-slide
// recovery rule rather than drawn directly, since a slide only turns
// by hitting a wall.
package layout

import "github.com/kranzsten/pietvm/piet"

// point is a canvas coordinate. Unlike piet.Point, it may be negative
// during construction; the canvas is translated to a non-negative
// origin only when converted to a piet.Grid.
type point struct{ x, y int }

// canvas is a sparse, dynamically-growing codel buffer. Any cell
// never explicitly set reads back as Black, matching the grid
// invariant that out-of-bounds (and, here, never-visited) codels
// behave as black walls (spec.md section 3).
type canvas struct {
	cells map[point]piet.Color
	minX  int
	minY  int
	maxX  int
	maxY  int
	empty bool
}

func newCanvas() *canvas {
	return &canvas{cells: map[point]piet.Color{}, empty: true}
}

func (c *canvas) set(x, y int, col piet.Color) {
	c.cells[point{x, y}] = col
	if c.empty {
		c.minX, c.maxX, c.minY, c.maxY = x, x, y, y
		c.empty = false
		return
	}
	if x < c.minX {
		c.minX = x
	}
	if x > c.maxX {
		c.maxX = x
	}
	if y < c.minY {
		c.minY = y
	}
	if y > c.maxY {
		c.maxY = y
	}
}

func (c *canvas) get(x, y int) piet.Color {
	if col, ok := c.cells[point{x, y}]; ok {
		return col
	}
	return piet.Black
}

// toGrid materializes the canvas into a rectangular piet.Grid,
// translating it so its top-left occupies (0, 0). Build guarantees
// that top-left corner is always a painted white corridor cell
// leading into block 0's entry codel (never a neighboring block's
// riser column or Stop tab), matching where vm.New starts the
// machine.
func (c *canvas) toGrid() *piet.Grid {
	if c.empty {
		return piet.NewGrid([][]piet.Color{{piet.Black}})
	}
	w := c.maxX - c.minX + 1
	h := c.maxY - c.minY + 1
	rows := make([][]piet.Color, h)
	for y := 0; y < h; y++ {
		row := make([]piet.Color, w)
		for x := 0; x < w; x++ {
			row[x] = c.get(x+c.minX, y+c.minY)
		}
		rows[y] = row
	}
	return piet.NewGrid(rows)
}
