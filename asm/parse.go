package asm

import (
	"errors"
	"fmt"

	"github.com/kranzsten/pietvm/asm/lex"
)

var (
	// ErrUnknownInstruction names a token that isn't a recognized
	// mnemonic and isn't preceded by one expecting a label operand.
	ErrUnknownInstruction = errors.New("unknown instruction")
	// ErrMissingOperand is returned when PUSH or a label-taking
	// instruction has no following operand to consume.
	ErrMissingOperand = errors.New("missing operand")
	// ErrUnexpectedOperand is returned for a stray integer literal
	// not immediately following an operand-taking instruction, or a
	// label reference where one is required but an integer appears.
	ErrUnexpectedOperand = errors.New("unexpected operand")
	// ErrDuplicateLabel is returned for a second definition of ":NAME".
	ErrDuplicateLabel = errors.New("duplicate label")
	// ErrUnresolvedLabel is returned for a Jump/JumpIf target with no
	// matching label definition anywhere in the program.
	ErrUnresolvedLabel = errors.New("unresolved label")
)

// Parse consumes a post-@EACH-expansion token stream and produces a
// label-resolved Program (spec.md section 4.6): a label-table scan
// interleaved with instruction lowering, followed by a resolution
// pass over every Jump/JumpIf target.
func Parse(tokens []lex.Token) (*Program, error) {
	prog := &Program{Labels: map[string]int{}}

	i := 0
	for i < len(tokens) {
		tok := tokens[i]
		switch tok.Kind {
		case lex.LabelDef:
			if _, dup := prog.Labels[tok.Text]; dup {
				return nil, fmt.Errorf("line %d: %w: %s", tok.Line, ErrDuplicateLabel, tok.Text)
			}
			prog.Labels[tok.Text] = len(prog.Instructions)
			i++
		case lex.Ident:
			op, ok := mnemonics[tok.Text]
			if !ok {
				return nil, fmt.Errorf("line %d: %w: %s", tok.Line, ErrUnknownInstruction, tok.Text)
			}
			next, err := lowerOne(tokens, i, op, prog)
			if err != nil {
				return nil, err
			}
			i = next
		default:
			return nil, fmt.Errorf("line %d: %w", tok.Line, ErrUnexpectedOperand)
		}
	}

	for _, in := range prog.Instructions {
		if in.Op != OpJump && in.Op != OpJumpIf {
			continue
		}
		if _, ok := prog.Labels[in.Target]; !ok {
			return nil, fmt.Errorf("line %d: %w: %s", in.Line, ErrUnresolvedLabel, in.Target)
		}
	}

	return prog, nil
}

// lowerOne consumes the instruction named by op (the token at
// tokens[i]) plus however many trailing operand tokens its arity
// permits, appending the lowered Instructions to prog, and returns
// the index of the next unconsumed token.
func lowerOne(tokens []lex.Token, i int, op Op, prog *Program) (int, error) {
	opTok := tokens[i]
	i++

	switch opArity[op] {
	case arityPush:
		start := i
		for i < len(tokens) && tokens[i].Kind == lex.Int {
			i++
		}
		if i == start {
			return 0, fmt.Errorf("line %d: %w: PUSH", opTok.Line, ErrMissingOperand)
		}
		for _, t := range tokens[start:i] {
			prog.Instructions = append(prog.Instructions, Instruction{Op: OpPush, Arg: t.Int, Line: t.Line})
		}
		return i, nil

	case arityVariadic:
		start := i
		for i < len(tokens) && tokens[i].Kind == lex.Int {
			i++
		}
		for _, t := range tokens[start:i] {
			prog.Instructions = append(prog.Instructions, Instruction{Op: OpPush, Arg: t.Int, Line: t.Line})
		}
		prog.Instructions = append(prog.Instructions, Instruction{Op: op, Line: opTok.Line})
		return i, nil

	case arityLabel:
		if i >= len(tokens) {
			return 0, fmt.Errorf("line %d: %w: %s", opTok.Line, ErrMissingOperand, opTok.Text)
		}
		if tokens[i].Kind != lex.Ident {
			return 0, fmt.Errorf("line %d: %w: %s requires a label", tokens[i].Line, ErrUnexpectedOperand, opTok.Text)
		}
		prog.Instructions = append(prog.Instructions, Instruction{Op: op, Target: tokens[i].Text, Line: opTok.Line})
		return i + 1, nil

	default: // arityNone
		prog.Instructions = append(prog.Instructions, Instruction{Op: op, Line: opTok.Line})
		return i, nil
	}
}
