package lex

import "testing"

func TestExpandSimple(t *testing.T) {
	toks, err := Tokenize("@EACH X=[1 2 3]\nPUSH @X OUTNUM\n@END\nSTOP")
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	out, err := Expand(toks)
	if err != nil {
		t.Fatalf("Expand: %v", err)
	}

	// Expect: (PUSH 1 OUTNUM) (PUSH 2 OUTNUM) (PUSH 3 OUTNUM) STOP = 10 tokens.
	if len(out) != 10 {
		t.Fatalf("got %d tokens, want 10: %+v", len(out), out)
	}
	wantInts := []int64{1, 2, 3}
	gotInts := []int64{}
	for _, tok := range out {
		if tok.Kind == Int {
			gotInts = append(gotInts, tok.Int)
		}
	}
	if len(gotInts) != 3 || gotInts[0] != wantInts[0] || gotInts[1] != wantInts[1] || gotInts[2] != wantInts[2] {
		t.Errorf("expanded literals = %v, want %v", gotInts, wantInts)
	}
	if out[len(out)-1].Kind != Ident || out[len(out)-1].Text != "STOP" {
		t.Errorf("last token = %+v, want STOP", out[len(out)-1])
	}
}

func TestExpandNested(t *testing.T) {
	toks, err := Tokenize("@EACH X=[1 2]\n@EACH Y=[A B]\nPUSH @X\n@END\n@END")
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	out, err := Expand(toks)
	if err != nil {
		t.Fatalf("Expand: %v", err)
	}
	// Outer runs twice, inner runs twice each: 4 PUSH @X occurrences,
	// each lowered to (PUSH, Int) = 8 tokens.
	if len(out) != 8 {
		t.Fatalf("got %d tokens, want 8: %+v", len(out), out)
	}
}

func TestExpandUnboundMetaVar(t *testing.T) {
	toks, err := Tokenize("PUSH @X")
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	if _, err := Expand(toks); err == nil {
		t.Errorf("Expand succeeded, want unbound metavariable error")
	}
}

func TestExpandShadowingIsError(t *testing.T) {
	toks, err := Tokenize("@EACH X=[1 2]\n@EACH X=[3 4]\nPUSH @X\n@END\n@END")
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	if _, err := Expand(toks); err == nil {
		t.Errorf("Expand succeeded, want shadowing error")
	}
}

func TestExpandUnterminated(t *testing.T) {
	toks, err := Tokenize("@EACH X=[1]\nPUSH @X")
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	if _, err := Expand(toks); err == nil {
		t.Errorf("Expand succeeded, want unterminated @EACH error")
	}
}

func TestExpandUnmatchedEnd(t *testing.T) {
	toks, err := Tokenize("PUSH 1\n@END")
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	if _, err := Expand(toks); err == nil {
		t.Errorf("Expand succeeded, want unmatched @END error")
	}
}
