package asm

import (
	"testing"

	"github.com/kranzsten/pietvm/asm/lex"
)

func mustParse(t *testing.T, src string) *Program {
	t.Helper()
	toks, err := lex.Tokenize(src)
	if err != nil {
		t.Fatalf("Tokenize(%q): %v", src, err)
	}
	toks, err = lex.Expand(toks)
	if err != nil {
		t.Fatalf("Expand(%q): %v", src, err)
	}
	prog, err := Parse(toks)
	if err != nil {
		t.Fatalf("Parse(%q): %v", src, err)
	}
	return prog
}

func TestParseHelloViaNumbers(t *testing.T) {
	prog := mustParse(t, "PUSH 65 OUTCHAR STOP")
	want := []Op{OpPush, OpOutChar, OpStop}
	assertOps(t, prog, want)
	if prog.Instructions[0].Arg != 65 {
		t.Errorf("PUSH arg = %d, want 65", prog.Instructions[0].Arg)
	}
}

func TestParseArithmeticSugar(t *testing.T) {
	prog := mustParse(t, "ADD 5 3 OUTNUM STOP")
	want := []Op{OpPush, OpPush, OpAdd, OpOutNum, OpStop}
	assertOps(t, prog, want)
	if prog.Instructions[0].Arg != 5 || prog.Instructions[1].Arg != 3 {
		t.Errorf("ADD operands = %d, %d, want 5, 3", prog.Instructions[0].Arg, prog.Instructions[1].Arg)
	}
}

func TestParseConditionalBranch(t *testing.T) {
	prog := mustParse(t, "PUSH 0 JUMPIF L1 PUSH 7 OUTNUM STOP :L1 PUSH 9 OUTNUM STOP")
	want := []Op{OpPush, OpJumpIf, OpPush, OpOutNum, OpStop, OpPush, OpOutNum, OpStop}
	assertOps(t, prog, want)
	if idx, ok := prog.Labels["L1"]; !ok || idx != 5 {
		t.Errorf("L1 = %d, %v, want 5, true", idx, ok)
	}
	if prog.Instructions[1].Target != "L1" {
		t.Errorf("JUMPIF target = %q, want L1", prog.Instructions[1].Target)
	}
}

func TestParseLoop(t *testing.T) {
	prog := mustParse(t, "PUSH 3 :L DUP OUTNUM SUB 1 DUP JUMPIF L POP STOP")
	want := []Op{OpPush, OpDup, OpOutNum, OpPush, OpSub, OpDup, OpJumpIf, OpPop, OpStop}
	assertOps(t, prog, want)
	if idx, ok := prog.Labels["L"]; !ok || idx != 1 {
		t.Errorf("L = %d, %v, want 1, true", idx, ok)
	}
}

func TestParseEachExpansion(t *testing.T) {
	prog := mustParse(t, "@EACH X=[1 2 3]\nPUSH @X OUTNUM\n@END\nSTOP")
	want := []Op{OpPush, OpOutNum, OpPush, OpOutNum, OpPush, OpOutNum, OpStop}
	assertOps(t, prog, want)
	gotArgs := []int64{prog.Instructions[0].Arg, prog.Instructions[2].Arg, prog.Instructions[4].Arg}
	if gotArgs[0] != 1 || gotArgs[1] != 2 || gotArgs[2] != 3 {
		t.Errorf("PUSH args = %v, want [1 2 3]", gotArgs)
	}
}

func TestParseUnresolvedLabel(t *testing.T) {
	toks, err := lex.Tokenize("JUMP NOWHERE STOP")
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	if _, err := Parse(toks); err == nil {
		t.Errorf("Parse succeeded, want unresolved label error")
	}
}

func TestParseDuplicateLabel(t *testing.T) {
	toks, err := lex.Tokenize(":L STOP :L STOP")
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	if _, err := Parse(toks); err == nil {
		t.Errorf("Parse succeeded, want duplicate label error")
	}
}

func TestParseUnknownInstruction(t *testing.T) {
	toks, err := lex.Tokenize("FROBNICATE")
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	if _, err := Parse(toks); err == nil {
		t.Errorf("Parse succeeded, want unknown instruction error")
	}
}

func TestParsePushRequiresOperand(t *testing.T) {
	toks, err := lex.Tokenize("PUSH STOP")
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	if _, err := Parse(toks); err == nil {
		t.Errorf("Parse succeeded, want missing operand error")
	}
}

func assertOps(t *testing.T, prog *Program, want []Op) {
	t.Helper()
	if len(prog.Instructions) != len(want) {
		t.Fatalf("got %d instructions, want %d: %+v", len(prog.Instructions), len(want), prog.Instructions)
	}
	for i, op := range want {
		if prog.Instructions[i].Op != op {
			t.Errorf("instruction %d = %s, want %s", i, prog.Instructions[i].Op, op)
		}
	}
}
