// Package asm implements PietASM's parser and semantic lowering pass
// (spec.md section 4.6): literal-operand-to-PUSH sugar and the label
// table, producing a flat Program ready for the image layout engine.
package asm

import "fmt"

// Op is a PietASM instruction opcode. Unlike piet.Op, this set
// excludes the Piet primitives pointer and switch (PietASM does not
// expose them directly, per spec.md section 4.2) and adds the
// assembly-level control-flow instructions Jump, JumpIf, and Stop.
// Labels are not instructions; they live in Program.Labels.
type Op int

const (
	OpPush Op = iota
	OpPop
	OpDup
	OpAdd
	OpSub
	OpMul
	OpDiv
	OpMod
	OpNot
	OpGreater
	OpRoll
	OpInNum
	OpInChar
	OpOutNum
	OpOutChar
	OpJump
	OpJumpIf
	OpStop
)

var opNames = map[Op]string{
	OpPush: "PUSH", OpPop: "POP", OpDup: "DUP",
	OpAdd: "ADD", OpSub: "SUB", OpMul: "MUL", OpDiv: "DIV", OpMod: "MOD",
	OpNot: "NOT", OpGreater: "GREATER", OpRoll: "ROLL",
	OpInNum: "INNUM", OpInChar: "INCHAR", OpOutNum: "OUTNUM", OpOutChar: "OUTCHAR",
	OpJump: "JUMP", OpJumpIf: "JUMPIF", OpStop: "STOP",
}

func (o Op) String() string {
	if n, ok := opNames[o]; ok {
		return n
	}
	return fmt.Sprintf("Op(%d)", int(o))
}

// mnemonics maps source-text op names to Op, the inverse of opNames,
// built once in init rather than hand-duplicated.
var mnemonics = map[string]Op{}

func init() {
	for op, name := range opNames {
		mnemonics[name] = op
	}
}

// arity classifies how an instruction consumes trailing integer
// literal tokens during lowering (spec.md section 4.6).
type arity int

const (
	arityNone     arity = iota // no operands ever: POP, DUP, NOT, ..., STOP
	arityVariadic              // zero or more trailing ints, lowered to PUSHes: ADD, SUB, ...
	arityPush                  // one or more trailing ints, each its own PUSH: PUSH
	arityLabel                 // exactly one trailing label reference: JUMP, JUMPIF
)

var opArity = map[Op]arity{
	OpPush:    arityPush,
	OpPop:     arityNone,
	OpDup:     arityNone,
	OpAdd:     arityVariadic,
	OpSub:     arityVariadic,
	OpMul:     arityVariadic,
	OpDiv:     arityVariadic,
	OpMod:     arityVariadic,
	OpNot:     arityNone,
	OpGreater: arityVariadic,
	OpRoll:    arityVariadic,
	OpInNum:   arityNone,
	OpInChar:  arityNone,
	OpOutNum:  arityNone,
	OpOutChar: arityNone,
	OpJump:    arityLabel,
	OpJumpIf:  arityLabel,
	OpStop:    arityNone,
}

// Instruction is one lowered PietASM instruction. Arg is meaningful
// only for Push (spec.md section 3: "Push(n)" always carries a
// literal); Target is meaningful only for Jump and JumpIf.
type Instruction struct {
	Op     Op
	Arg    int64
	Target string
	Line   int
}

// Program is the flat, label-resolved instruction list the layout
// engine consumes.
type Program struct {
	Instructions []Instruction
	Labels       map[string]int // label name -> index into Instructions
}
