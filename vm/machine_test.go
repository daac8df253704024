package vm

import (
	"bytes"
	"strings"
	"testing"

	"github.com/kranzsten/pietvm/piet"
)

func newTestMachine(g *piet.Grid, in string) (*Machine, *bytes.Buffer) {
	out := &bytes.Buffer{}
	return New(g, strings.NewReader(in), out), out
}

// block-size push + outnum: a 5-codel red block, a push transition to
// a 1-codel dark-red block, then outnum applied directly.
func TestPushUsesBlockSize(t *testing.T) {
	red := piet.NewColor(piet.HueRed, piet.LightNormal)
	darkRed := piet.NewColor(piet.HueRed, piet.LightDark) // (hue 0, light 1) delta from red = push
	g := piet.NewGrid([][]piet.Color{
		{red, red, red, red, red, darkRed},
	})

	m, out := newTestMachine(g, "")
	// Step 1: red block (5 codels) -> dark red = push transition.
	if halted := m.Step(); halted {
		t.Fatalf("unexpected halt on push step")
	}
	if got, want := m.stack, (stack{5}); len(got) != 1 || got[0] != want[0] {
		t.Errorf("stack after push = %v, want %v", got, want)
	}
	m.exec(piet.OpOutNum, 0)
	// Output is buffered until halt or a newline; Run flushes at halt.
	m.out.Flush()
	if out.String() != "5" {
		t.Errorf("outnum wrote %q, want %q", out.String(), "5")
	}
}

func TestBlockedExitHaltsAfterEight(t *testing.T) {
	red := piet.NewColor(piet.HueRed, piet.LightNormal)
	g := piet.NewGrid([][]piet.Color{
		{piet.Black, piet.Black, piet.Black},
		{piet.Black, red, piet.Black},
		{piet.Black, piet.Black, piet.Black},
	})
	m, _ := newTestMachine(g, "")
	m.x, m.y = 1, 1

	halted := false
	steps := 0
	for !halted && steps < 20 {
		halted = m.Step()
		steps++
	}
	if !halted {
		t.Fatalf("machine never halted after %d steps", steps)
	}
	if steps != 8 {
		t.Errorf("halted after %d steps, want 8", steps)
	}
}

func TestWhiteSlideHaltsAfterFourFailedTurns(t *testing.T) {
	g := piet.NewGrid([][]piet.Color{
		{piet.Black, piet.Black, piet.Black},
		{piet.Black, piet.White, piet.Black},
		{piet.Black, piet.Black, piet.Black},
	})
	m, _ := newTestMachine(g, "")
	m.x, m.y = 1, 1

	if halted := m.Step(); !halted {
		t.Errorf("expected halt sliding in an enclosed white cell")
	}
}

func TestArithmeticOps(t *testing.T) {
	m := &Machine{}
	m.stack = stack{7, 3}
	m.exec(piet.OpAdd, 0)
	if got := m.stack; len(got) != 1 || got[0] != 10 {
		t.Errorf("7+3 = %v, want [10]", got)
	}

	m = &Machine{stack: stack{7, 3}}
	m.exec(piet.OpSub, 0)
	if got := m.stack; len(got) != 1 || got[0] != 4 {
		t.Errorf("7-3 = %v, want [4]", got)
	}

	m = &Machine{stack: stack{7, 3}}
	m.exec(piet.OpGreater, 0)
	if got := m.stack; len(got) != 1 || got[0] != 1 {
		t.Errorf("greater(7,3) = %v, want [1]", got)
	}
}

func TestDivModZeroIsNoop(t *testing.T) {
	// top of stack (the divisor, popped first) is 0.
	m := &Machine{stack: stack{9, 0}}
	m.exec(piet.OpDiv, 0)
	if len(m.stack) != 2 || m.stack[0] != 9 || m.stack[1] != 0 {
		t.Errorf("div by zero mutated stack: %v", m.stack)
	}

	m = &Machine{stack: stack{9, 0}}
	m.exec(piet.OpMod, 0)
	if len(m.stack) != 2 || m.stack[0] != 9 || m.stack[1] != 0 {
		t.Errorf("mod by zero mutated stack: %v", m.stack)
	}
}

func TestRollNoopCases(t *testing.T) {
	cases := []struct {
		name  string
		stack stack
	}{
		{"depth zero", stack{1, 2, 3, 0, 5}},  // window=[1,2,3], depth=0, n=5
		{"n zero", stack{1, 2, 3, 3, 0}},      // window=[1,2,3], depth=3, n=0
		{"n mod depth zero", stack{1, 2, 3, 3, 3}}, // n=3, depth=3 -> shift 0
	}
	for _, tc := range cases {
		m := &Machine{stack: append(stack(nil), tc.stack...)}
		m.roll()
		window := m.stack
		if len(window) != 3 || window[0] != 1 || window[1] != 2 || window[2] != 3 {
			t.Errorf("%s: window after roll = %v, want [1 2 3]", tc.name, window)
		}
	}
}

func TestRollRotatesTowardTop(t *testing.T) {
	// window [1,2,3] (bottom to top, 3 on top), depth=3, n=1: one
	// positive roll buries the top value at the bottom of the window
	// and shifts everything else up toward the top.
	m := &Machine{stack: stack{1, 2, 3, 3, 1}}
	m.roll()
	want := stack{3, 1, 2}
	if len(m.stack) != 3 || m.stack[0] != want[0] || m.stack[1] != want[1] || m.stack[2] != want[2] {
		t.Errorf("roll(1, depth 3) = %v, want %v", m.stack, want)
	}
}

func TestRollNegativeDepthIsFullNoop(t *testing.T) {
	m := &Machine{stack: stack{1, 2, 3, -1, 5}}
	m.roll()
	want := stack{1, 2, 3, -1, 5}
	for i := range want {
		if m.stack[i] != want[i] {
			t.Errorf("roll with negative depth mutated stack: %v, want %v", m.stack, want)
			break
		}
	}
}

func TestDupAndNot(t *testing.T) {
	m := &Machine{stack: stack{4}}
	m.exec(piet.OpDup, 0)
	if len(m.stack) != 2 || m.stack[0] != 4 || m.stack[1] != 4 {
		t.Errorf("dup = %v, want [4 4]", m.stack)
	}

	m = &Machine{stack: stack{0}}
	m.exec(piet.OpNot, 0)
	if len(m.stack) != 1 || m.stack[0] != 1 {
		t.Errorf("not(0) = %v, want [1]", m.stack)
	}
}
