// Package vm implements the Piet execution engine (spec.md section
// 4.4): the direction pointer, codel chooser, data stack, blocked-exit
// protocol, and white-sliding, walking a *piet.Grid to completion.
package vm

import (
	"bufio"
	"context"
	"io"

	"github.com/kranzsten/pietvm/piet"
)

// Machine is the engine's owned state: position, DP, CC, stack, and
// the blocked-attempt counter. Grid and Program (here, just the Grid)
// are read-only and owned by the caller for the Machine's lifetime,
// per spec.md section 3's lifecycle note.
type Machine struct {
	grid *piet.Grid

	x, y    int
	dp      piet.Direction
	cc      piet.Chooser
	stack   stack
	blocked int

	in  *bufio.Reader
	out *bufio.Writer
}

// New returns a Machine positioned at (0, 0) with DP=Right, CC=Left,
// and an empty stack, per spec.md section 4.4's initial state.
func New(g *piet.Grid, in io.Reader, out io.Writer) *Machine {
	return &Machine{
		grid: g,
		dp:   piet.Right,
		cc:   piet.CCLeft,
		in:   bufio.NewReader(in),
		out:  bufio.NewWriter(out),
	}
}

// Run steps the machine until it halts or ctx is done, flushing
// buffered output before returning either way (spec.md section 5: a
// cancelled run must not truncate output already produced).
func (m *Machine) Run(ctx context.Context) error {
	defer m.out.Flush()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		if m.Step() {
			return nil
		}
	}
}

// Step executes one Piet instruction cycle: it may cross several
// white codels while sliding, but settles on either a colored-block
// landing (with the implied op executed), a blocked-exit state
// change, or a halt. It returns true iff the machine has halted.
func (m *Machine) Step() bool {
	cur := m.grid.ColorAt(m.x, m.y)
	if cur.IsWhite() {
		return m.slide()
	}

	block := piet.FindBlock(m.grid, m.x, m.y)
	exit := block.ExitCodel(m.dp, m.cc)
	dx, dy := m.dp.Delta()
	nx, ny := exit.X+dx, exit.Y+dy
	target := m.grid.ColorAt(nx, ny)

	switch {
	case target.IsBlack():
		return m.blockedAttempt()
	case target.IsWhite():
		m.x, m.y = nx, ny
		return m.slide()
	default:
		op := piet.Transition(block.Color, target)
		m.exec(op, block.Size())
		m.blocked = 0
		m.x, m.y = nx, ny
		return false
	}
}

// blockedAttempt records one failed exit from a colored block and
// applies the alternating toggle/rotate recovery of spec.md section
// 4.4, returning true once the 8th consecutive attempt fails.
func (m *Machine) blockedAttempt() bool {
	m.blocked++
	if m.blocked%2 == 1 {
		m.cc = m.cc.Toggle()
	} else {
		m.dp = m.dp.Clockwise(1)
	}
	return m.blocked == 8
}

// slide executes Piet's white-sliding rule: move through white codels
// in DP until a colored block is entered (no op executed) or 4
// consecutive combined toggle+rotate attempts fail to find an exit.
func (m *Machine) slide() bool {
	attempts := 0
	for {
		dx, dy := m.dp.Delta()
		nx, ny := m.x+dx, m.y+dy
		target := m.grid.ColorAt(nx, ny)

		switch {
		case target.IsBlack():
			attempts++
			m.cc = m.cc.Toggle()
			m.dp = m.dp.Clockwise(1)
			if attempts == 4 {
				return true
			}
		case target.IsWhite():
			m.x, m.y = nx, ny
			attempts = 0
		default:
			m.x, m.y = nx, ny
			return false
		}
	}
}
