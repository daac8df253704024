package vm

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/kranzsten/pietvm/piet"
)

// exec applies op to the machine's stack, honoring the "insufficient
// or invalid operands is a no-op, stack unchanged" rule from spec.md
// section 4.4 for every operation.
func (m *Machine) exec(op piet.Op, blockSize int) {
	switch op {
	case piet.OpPush:
		m.stack = m.stack.push(int64(blockSize))
	case piet.OpPop:
		if len(m.stack) > 0 {
			m.stack = m.stack.popN(1)
		}
	case piet.OpAdd:
		m.binary(func(a, b int64) (int64, bool) { return b + a, true })
	case piet.OpSub:
		m.binary(func(a, b int64) (int64, bool) { return b - a, true })
	case piet.OpMul:
		m.binary(func(a, b int64) (int64, bool) { return b * a, true })
	case piet.OpDiv:
		m.binary(func(a, b int64) (int64, bool) {
			if a == 0 {
				return 0, false
			}
			return b / a, true
		})
	case piet.OpMod:
		m.binary(func(a, b int64) (int64, bool) {
			if a == 0 {
				return 0, false
			}
			return b % a, true
		})
	case piet.OpGreater:
		m.binary(func(a, b int64) (int64, bool) {
			if b > a {
				return 1, true
			}
			return 0, true
		})
	case piet.OpNot:
		if top, ok := m.stack.peek(0); ok {
			m.stack = m.stack.popN(1)
			if top == 0 {
				m.stack = m.stack.push(1)
			} else {
				m.stack = m.stack.push(0)
			}
		}
	case piet.OpDup:
		if top, ok := m.stack.peek(0); ok {
			m.stack = m.stack.push(top)
		}
	case piet.OpPointer:
		if n, ok := m.stack.peek(0); ok {
			m.stack = m.stack.popN(1)
			m.dp = m.dp.Clockwise(int(n))
		}
	case piet.OpSwitch:
		if n, ok := m.stack.peek(0); ok {
			m.stack = m.stack.popN(1)
			if n < 0 {
				n = -n
			}
			if n%2 == 1 {
				m.cc = m.cc.Toggle()
			}
		}
	case piet.OpRoll:
		m.roll()
	case piet.OpInNum:
		m.inNum()
	case piet.OpInChar:
		m.inChar()
	case piet.OpOutNum:
		m.outNum()
	case piet.OpOutChar:
		m.outChar()
	}
}

// binary applies f to (a=top, b=second-from-top); f's second return
// value is false for an invalid operand (division by zero), in which
// case the stack is left untouched.
func (m *Machine) binary(f func(a, b int64) (int64, bool)) {
	a, ok := m.stack.peek(0)
	if !ok {
		return
	}
	b, ok := m.stack.peek(1)
	if !ok {
		return
	}
	result, ok := f(a, b)
	if !ok {
		return
	}
	m.stack = m.stack.popN(2)
	m.stack = m.stack.push(result)
}

// roll rotates the top depth elements of the stack by n positions
// (positive n rotates toward the top), per spec.md section 4.4. n is
// normalized modulo depth first; depth<0 or depth greater than the
// remaining stack is a no-op.
func (m *Machine) roll() {
	n, ok := m.stack.peek(0)
	if !ok {
		return
	}
	depth, ok := m.stack.peek(1)
	if !ok {
		return
	}
	if depth < 0 || m.stack.depthBelow(2) < int(depth) {
		return
	}

	base := len(m.stack) - 2 - int(depth)
	window := append([]int64(nil), m.stack[base:len(m.stack)-2]...)
	m.stack = m.stack.popN(2)

	if depth == 0 {
		return
	}
	shift := int(((n % depth) + depth) % depth)
	if shift == 0 {
		return
	}
	rotated := make([]int64, len(window))
	copy(rotated, window[len(window)-shift:])
	copy(rotated[shift:], window[:len(window)-shift])
	copy(m.stack[base:], rotated)
}

func (m *Machine) inNum() {
	for {
		r, _, err := m.in.ReadRune()
		if err != nil {
			return
		}
		if !unicode.IsSpace(r) {
			m.in.UnreadRune()
			break
		}
	}

	var sb strings.Builder
	if r, _, err := m.in.ReadRune(); err == nil {
		if r == '+' || r == '-' {
			sb.WriteRune(r)
		} else {
			m.in.UnreadRune()
		}
	}
	for {
		r, _, err := m.in.ReadRune()
		if err != nil {
			break
		}
		if r < '0' || r > '9' {
			m.in.UnreadRune()
			break
		}
		sb.WriteRune(r)
	}

	s := sb.String()
	if s == "" || s == "+" || s == "-" {
		return
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return
	}
	m.stack = m.stack.push(n)
}

func (m *Machine) inChar() {
	r, _, err := m.in.ReadRune()
	if err != nil {
		return
	}
	m.stack = m.stack.push(int64(r))
}

func (m *Machine) outNum() {
	top, ok := m.stack.peek(0)
	if !ok {
		return
	}
	m.stack = m.stack.popN(1)
	fmt.Fprintf(m.out, "%d", top)
}

func (m *Machine) outChar() {
	top, ok := m.stack.peek(0)
	if !ok {
		return
	}
	m.stack = m.stack.popN(1)
	r := rune(top)
	m.out.WriteString(string(r))
	if r == '\n' {
		m.out.Flush()
	}
}
