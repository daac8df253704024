package layout

import (
	"github.com/kranzsten/pietvm/asm"
	"github.com/kranzsten/pietvm/piet"
)

// plainOps maps the asm instructions realized as one ordinary color
// transition onto the corresponding piet.Op. Push, Jump, JumpIf, and
// Stop are handled by dedicated gadgets instead.
var plainOps = map[asm.Op]piet.Op{
	asm.OpPop:     piet.OpPop,
	asm.OpDup:     piet.OpDup,
	asm.OpAdd:     piet.OpAdd,
	asm.OpSub:     piet.OpSub,
	asm.OpMul:     piet.OpMul,
	asm.OpDiv:     piet.OpDiv,
	asm.OpMod:     piet.OpMod,
	asm.OpNot:     piet.OpNot,
	asm.OpGreater: piet.OpGreater,
	asm.OpRoll:    piet.OpRoll,
	asm.OpInNum:   piet.OpInNum,
	asm.OpInChar:  piet.OpInChar,
	asm.OpOutNum:  piet.OpOutNum,
	asm.OpOutChar: piet.OpOutChar,
}

// literalWidth returns how many codels emitLiteral paints for n,
// without actually painting anything.
func literalWidth(n int64) int {
	switch {
	case n > 0:
		return int(n)
	case n == 0:
		return 2 // push 1, not
	default:
		return 2 + int(-n) // push 1, not, push |n|, sub
	}
}

// emitLiteral paints the codels realizing PUSH n for any n, including
// zero and negative values that cannot be a block's literal codel
// count. Piet has no direct way to push a non-positive integer, so
// the standard trick is used: 0 is synthesized as NOT of a 1-codel
// push (NOT treats any nonzero as truthy and produces exactly 0 or 1),
// and a negative n is 0 minus a positive push of |n|.
func emitLiteral(cu *cursor, c *canvas, n int64) {
	switch {
	case n > 0:
		cu.emitPushRun(c, int(n))
	case n == 0:
		cu.emitPushRun(c, 1)
		cu.emitOp(c, piet.OpNot)
	default:
		cu.emitPushRun(c, 1)
		cu.emitOp(c, piet.OpNot) // stack: ..., 0
		cu.emitPushRun(c, int(-n))
		cu.emitOp(c, piet.OpSub) // stack: ..., 0 - |n|
	}
}

// emitJumpIf realizes a conditional branch (spec.md section 4.6) on
// top of Piet's two CC-sensitive primitives, neither of which is a
// direct branch. It first runs the branch condition through NOT twice
// so the stack holds exactly 0 or 1 (NOT already collapses any value
// to one of those two), then transitions into a switch. switch pops
// that value and toggles CC iff it is odd, so CC is CCLeft (no
// toggle) when the condition was false and CCRight when true. The
// switch color is painted as a two-codel block stacked vertically so
// its own exit codel differs by CC: the top member for CCLeft, the
// bottom for CCRight (piet.Block.ExitCodel). Each member then starts
// its own corridor, one falling through to the next block, the other
// routed to the jump target.
//
// The taken branch reaches its target with CC still CCRight, so the
// gadget does not assume CCLeft on entry: the first NOT codel is also
// a two-codel vertical block whose bottom member has a black right
// neighbor. Under CCRight that exit is blocked once, which toggles CC
// back to CCLeft (spec.md section 4.4) and leaves via the top member;
// either way the switch is reached with CC at CCLeft.
func emitJumpIf(cu *cursor, c *canvas, fallThroughRow, targetRow, bottomY int, alloc *columnAllocator) {
	cu.emitOp(c, piet.OpNot)
	c.set(cu.x, cu.y+1, cu.color)
	cu.emitOp(c, piet.OpNot)

	switchColor := piet.NextColor(cu.color, piet.OpSwitch)
	cu.step()
	x, y := cu.x, cu.y
	c.set(x, y, switchColor)
	c.set(x, y+1, switchColor)

	top := &cursor{x: x, y: y, dir: piet.Right, color: switchColor}
	connect(top, c, fallThroughRow, bottomY, alloc)

	bottom := &cursor{x: x, y: y + 1, dir: piet.Right, color: switchColor}
	connect(bottom, c, targetRow, bottomY, alloc)
}

// emitStop dead-ends the cursor's current block so the machine halts
// there under the blocked-exit rule (spec.md section 4.4): Piet has
// no direct stop primitive, a program only halts after 8 consecutive
// blocked exit attempts. A lone codel can't do this safely, since the
// direction it was entered from stays adjacent to its own white
// approach corridor and the blocked-exit cycle eventually probes that
// direction too, sliding back out instead of halting. Extending the
// block into an L (adding two more same-colored codels below and
// below-left of the current cell) gives every one of the four DP
// directions a distinct exit member whose neighbor is guaranteed
// black, so none of them ever re-probes the approach corridor. The tab
// is grown downward rather than upward so no block ever paints above
// its own content row: row 0 (block 0's row) is always the canvas's
// topmost painted row, which keeps the grid's translated origin away
// from a stray Stop tab.
func emitStop(cu *cursor, c *canvas) {
	col := cu.color
	c.set(cu.x-1, cu.y+1, col)
	c.set(cu.x, cu.y+1, col)
}
