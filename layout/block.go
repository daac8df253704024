package layout

import "github.com/kranzsten/pietvm/asm"

// basicBlock is a maximal run of instructions laid out on one row
// (spec.md section 4.7): it ends at a Jump, JumpIf, or Stop, or at the
// boundary just before a label target.
type basicBlock struct {
	start, end int // instruction index range [start, end)
}

// partition splits prog into basic blocks in program order. A new
// block begins at instruction 0, at every label target, and
// immediately after every Jump, JumpIf, or Stop.
func partition(prog *asm.Program) []basicBlock {
	boundaries := map[int]bool{0: true}
	for _, idx := range prog.Labels {
		boundaries[idx] = true
	}
	for i, in := range prog.Instructions {
		if in.Op == asm.OpJump || in.Op == asm.OpJumpIf || in.Op == asm.OpStop {
			if i+1 < len(prog.Instructions) {
				boundaries[i+1] = true
			}
		}
	}

	starts := make([]int, 0, len(boundaries))
	for b := range boundaries {
		starts = append(starts, b)
	}
	// Insertion sort: boundary counts are small and this keeps the
	// package free of an extra sort.Ints import for one tiny slice.
	for i := 1; i < len(starts); i++ {
		for j := i; j > 0 && starts[j-1] > starts[j]; j-- {
			starts[j-1], starts[j] = starts[j], starts[j-1]
		}
	}

	var blocks []basicBlock
	for i, s := range starts {
		end := len(prog.Instructions)
		if i+1 < len(starts) {
			end = starts[i+1]
		}
		// A boundary can land at len(Instructions) itself (a label
		// defined at end-of-program, or a Jump/JumpIf/Stop as the
		// very last instruction); such a block has nothing to lay
		// out and is dropped rather than materialized.
		if s < end {
			blocks = append(blocks, basicBlock{start: s, end: end})
		}
	}
	return blocks
}
