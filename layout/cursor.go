package layout

import "github.com/kranzsten/pietvm/piet"

// cursor is the layout engine's write head: the Piet loopy-register
// analogue (SPEC_FULL.md section 4.7) that tracks where the next
// codel goes, what color is already there, and which way the
// in-progress corridor or instruction row is heading.
type cursor struct {
	x, y  int
	dir   piet.Direction
	color piet.Color
}

// step advances the cursor by one codel in its current direction
// without painting anything.
func (cu *cursor) step() {
	dx, dy := cu.dir.Delta()
	cu.x += dx
	cu.y += dy
}

// emitOp paints one codel realizing op as a color transition from the
// cursor's current color (spec.md section 4.7), advancing the cursor
// onto it.
func (cu *cursor) emitOp(c *canvas, op piet.Op) {
	next := piet.NextColor(cu.color, op)
	cu.step()
	c.set(cu.x, cu.y, next)
	cu.color = next
}

// emitPushRun realizes PUSH n (spec.md section 4.7: push's operand is
// the codel count of the block being left, so a literal push must
// leave an n-wide block, not a single codel). It widens the cursor's
// current single codel into an n-codel run of the same color, then
// paints one codel of the push color, advancing the cursor onto it.
func (cu *cursor) emitPushRun(c *canvas, n int) {
	for i := 1; i < n; i++ {
		cu.step()
		c.set(cu.x, cu.y, cu.color)
	}
	cu.emitOp(c, piet.OpPush)
}

// emitWhite paints n codels of white connective corridor, advancing
// the cursor onto the last one.
func (cu *cursor) emitWhite(c *canvas, n int) {
	for i := 0; i < n; i++ {
		cu.step()
		c.set(cu.x, cu.y, piet.White)
	}
	cu.color = piet.White
}

// turn paints a black wall immediately ahead of the cursor in its
// current direction and re-aims it at newDir, without moving. This is
// the layout-time encoding of the engine's white-slide blocked-exit
// recovery (spec.md section 4.4): when sliding hits a wall it rotates
// DP clockwise once and retries from the same codel, so one wall
// placed just so turns a corridor exactly one step clockwise. turn
// must only be called while the cursor sits on a white codel -
// everywhere Build uses it, an emitWhite call precedes it.
func (cu *cursor) turn(c *canvas, newDir piet.Direction) {
	dx, dy := cu.dir.Delta()
	c.set(cu.x+dx, cu.y+dy, piet.Black)
	cu.dir = newDir
}
