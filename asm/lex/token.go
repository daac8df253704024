// Package lex implements PietASM's lexer and @EACH preprocessor
// (spec.md section 4.5): line-oriented tokenization followed by a
// macro-expansion pass over the resulting token stream.
package lex

import "fmt"

// Kind classifies a Token.
type Kind int

const (
	Ident     Kind = iota // bare word: an op name or a label reference
	Int                   // integer literal
	LabelDef              // ":NAME"
	MetaVar               // "@NAME" (not @EACH/@END)
	EachStart             // "@EACH NAME=[v1 v2 ...]"
	EachEnd               // "@END"
)

func (k Kind) String() string {
	switch k {
	case Ident:
		return "Ident"
	case Int:
		return "Int"
	case LabelDef:
		return "LabelDef"
	case MetaVar:
		return "MetaVar"
	case EachStart:
		return "EachStart"
	case EachEnd:
		return "EachEnd"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Token is one lexical unit. Which fields are meaningful depends on
// Kind: Text holds an identifier/label/metavariable name; Int holds
// an integer literal's value; Var and Values are populated only for
// EachStart.
type Token struct {
	Kind   Kind
	Text   string
	Int    int64
	Var    string
	Values []string
	Line   int
}
