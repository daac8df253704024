package layout

import "github.com/kranzsten/pietvm/piet"

// columnAllocator hands out disjoint pairs of columns for routing
// corridors (spec.md section 4.7: "reserve a set of ... channels ...
// route each jump through an unused channel"). Each connect call gets
// its own descent column (positive, clear of all row content) and
// riser column (negative, clear of column 0's content start), so no
// two corridors ever run along the same column; they only cross.
type columnAllocator struct {
	posNext int
	negNext int
}

func newColumnAllocator(marginX int) *columnAllocator {
	if marginX < 1 {
		marginX = 1
	}
	return &columnAllocator{posNext: marginX, negNext: 2}
}

func (a *columnAllocator) next() (descent, riser int) {
	descent, riser = a.posNext, -a.negNext
	a.posNext += 2
	a.negNext += 2
	return descent, riser
}

// connect routes a white corridor from the cursor's current position
// (the cell just after a block's last instruction, or a gadget's
// branch cell) to the first content codel of the block occupying
// toRow, entering it moving right (spec.md section 4.7's "white
// corridor" connective tissue).
//
// The route always makes exactly four 90-degree turns
// (right-down-left-up-right), each one realized as a single blocked
// white-slide recovery (spec.md section 4.4) rather than drawn
// directly: a corridor can only turn by hitting a wall. Routing
// unconditionally via a bottom lane, rather than choosing the
// shorter of "up" or "down", keeps one routine correct for both
// forward and backward jumps and for the implicit fall-through
// between consecutive blocks. Each call gets its own lane row at or
// below bottomY (two rows apart per allocation), so one corridor's
// lane never paints over another corridor's turn walls.
func connect(cu *cursor, c *canvas, toRow, bottomY int, alloc *columnAllocator) {
	descentCol, riserCol := alloc.next()
	// Riser columns are allocated as -2, -4, -6, ...: lanes bottomY, bottomY+2, ...
	laneY := bottomY - riserCol - 2

	cu.emitWhite(c, descentCol-cu.x)
	cu.turn(c, piet.Down)
	cu.emitWhite(c, laneY-cu.y)
	cu.turn(c, piet.Left)
	cu.emitWhite(c, cu.x-riserCol)
	cu.turn(c, piet.Up)
	cu.emitWhite(c, cu.y-toRow)
	cu.turn(c, piet.Right)
	cu.emitWhite(c, -1-cu.x)
}
