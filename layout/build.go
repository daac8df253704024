package layout

import (
	"fmt"

	"github.com/kranzsten/pietvm/asm"
	"github.com/kranzsten/pietvm/piet"
)

// rowStride is the number of grid rows between one block's content
// row and the next. Piet codel transitions only need one row, but the
// extra rows leave clearance for emitStop's L-tab and for the
// connector approach column (spec.md section 4.7) so that neither can
// ever land on a neighboring block's own content.
const rowStride = 3

func contentRow(blockIndex int) int { return rowStride * blockIndex }

// Options tunes cosmetic aspects of the emitted grid that have no
// effect on the program it realizes.
type Options struct {
	// StartHue picks the hue (mod 6) used for every block's first
	// content codel. A block is always entered by sliding in from
	// white, and a slide never triggers a color transition (spec.md
	// section 4.4), so this choice carries no semantic meaning - it
	// only changes what the emitted image looks like.
	StartHue int
}

// Build lays out prog as a piet.Grid whose execution, under Piet's
// own rules, reproduces prog (spec.md section 4.7). Each basic block
// occupies its own row; white corridors built by connect join block
// to block for both implicit fall-through and explicit jumps.
func Build(prog *asm.Program, opts Options) (*piet.Grid, error) {
	startColor := piet.NewColor(opts.StartHue, piet.LightNormal)
	blocks := partition(prog)
	if len(blocks) == 0 {
		return nil, fmt.Errorf("layout: empty program")
	}

	blockOfInstr := make([]int, len(prog.Instructions))
	for bi, b := range blocks {
		for i := b.start; i < b.end; i++ {
			blockOfInstr[i] = bi
		}
	}

	resolve := func(label string, line int) (int, error) {
		idx, ok := prog.Labels[label]
		if !ok || idx >= len(prog.Instructions) {
			return 0, fmt.Errorf("layout: line %d: label %q has no reachable instruction", line, label)
		}
		return blockOfInstr[idx], nil
	}

	maxWidth := 0
	for _, b := range blocks {
		if w := blockContentWidth(prog, b); w > maxWidth {
			maxWidth = w
		}
	}

	c := newCanvas()
	alloc := newColumnAllocator(maxWidth + 4)
	bottomY := contentRow(len(blocks)) + 4

	for bi, b := range blocks {
		row := contentRow(bi)
		cu := &cursor{x: -1, y: row, dir: piet.Right}
		cu.step()
		c.set(cu.x, cu.y, startColor)
		cu.color = startColor

		terminal := false
		for i := b.start; i < b.end; i++ {
			in := prog.Instructions[i]
			switch in.Op {
			case asm.OpPush:
				emitLiteral(cu, c, in.Arg)
			case asm.OpJump:
				target, err := resolve(in.Target, in.Line)
				if err != nil {
					return nil, err
				}
				connect(cu, c, contentRow(target), bottomY, alloc)
				terminal = true
			case asm.OpJumpIf:
				target, err := resolve(in.Target, in.Line)
				if err != nil {
					return nil, err
				}
				fallThrough := contentRow(bi + 1)
				if bi+1 >= len(blocks) {
					return nil, fmt.Errorf("layout: line %d: jumpif falls through past the end of the program", in.Line)
				}
				emitJumpIf(cu, c, fallThrough, contentRow(target), bottomY, alloc)
				terminal = true
			case asm.OpStop:
				emitStop(cu, c)
				terminal = true
			default:
				op, ok := plainOps[in.Op]
				if !ok {
					return nil, fmt.Errorf("layout: line %d: unsupported instruction %s", in.Line, in.Op)
				}
				cu.emitOp(c, op)
			}
		}

		if !terminal {
			if bi+1 < len(blocks) {
				connect(cu, c, contentRow(bi+1), bottomY, alloc)
			} else {
				emitStop(cu, c)
			}
		}
	}

	// Guarantee the canvas's top-left corner - where vm.New always
	// starts the machine, DP right - is a safe white cell leading into
	// block 0's own entry codel. Block 0 always ends in a Stop or a
	// connect of its own (every block falls through, jumps, or stops),
	// and that corridor's columns are otherwise free to become the
	// canvas's x-minimum, since connect always approaches its target
	// from a column to the target's left. Left unaddressed, that
	// strands (0, 0) on whatever unpainted (implicitly black) codel the
	// translated bounding box happens to land on.
	//
	// A plain straight approach lane, entirely within block 0's own
	// row and built from a column more negative than anything else
	// connect ever allocates, fixes this directly: it becomes the
	// canvas's new x-minimum on block 0's own (and so also the
	// y-minimum) row, and it is white, so the machine's first Step
	// slides through it and lands on block 0's actual first instruction
	// with no spurious op. Unlike connect's corridors this lane needs
	// no turns: nothing ever slides into it during real execution, it
	// only ever needs to exist as the machine's starting point.
	//
	// This does not cover a jump or fall-through that targets block 0
	// itself (looping back to the program's very first instruction):
	// that connect call's own turn above row 0 would still reach
	// y = -1. No test program does this today; it is a known gap, not
	// a claim that pietasm forbids the shape.
	_, entryCol := alloc.next()
	entry := &cursor{x: entryCol, y: contentRow(0), dir: piet.Right}
	entry.emitWhite(c, -1-entryCol)

	return c.toGrid(), nil
}

// blockContentWidth returns the number of codels b's instructions
// paint along its row, without painting anything. Build uses the
// widest block across the whole program to pick a margin clear of
// every row's content for the connector column allocator.
func blockContentWidth(prog *asm.Program, b basicBlock) int {
	w := 0
	for i := b.start; i < b.end; i++ {
		in := prog.Instructions[i]
		switch in.Op {
		case asm.OpPush:
			w += literalWidth(in.Arg)
		case asm.OpJumpIf:
			w += 3 // NOT, NOT, switch
		case asm.OpJump, asm.OpStop:
			// No inline content; these end the row.
		default:
			w++
		}
	}
	return w
}
