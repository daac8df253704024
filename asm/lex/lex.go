package lex

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrMalformedPragma is returned for an @EACH line that isn't of
	// the form "@EACH NAME=[v1 v2 ...]".
	ErrMalformedPragma = errors.New("malformed @EACH pragma")
	// ErrEmptyLabel is returned for a bare ":" with no name.
	ErrEmptyLabel = errors.New("empty label name")
	// ErrEmptyMetaVar is returned for a bare "@" with no name.
	ErrEmptyMetaVar = errors.New("empty metavariable name")
)

// Tokenize scans src line by line (spec.md section 4.5): each line has
// its "#" comment tail stripped, is split on whitespace, and empty
// lines are discarded. The result is a single flat token stream; line
// boundaries are preserved only as the Line field on each token, not
// as structure, since label definitions and the instructions they
// precede may be split across lines however the source author likes.
func Tokenize(src string) ([]Token, error) {
	var out []Token
	for i, raw := range strings.Split(src, "\n") {
		line := i + 1
		if idx := strings.IndexByte(raw, '#'); idx >= 0 {
			raw = raw[:idx]
		}
		fields := strings.Fields(raw)
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "@EACH":
			tok, err := parsePragma(fields[1:], line)
			if err != nil {
				return nil, err
			}
			out = append(out, tok)
			continue
		case "@END":
			out = append(out, Token{Kind: EachEnd, Line: line})
			continue
		}

		for _, f := range fields {
			tok, err := classify(f, line)
			if err != nil {
				return nil, err
			}
			out = append(out, tok)
		}
	}
	return out, nil
}

// classify turns one whitespace-delimited field into a Token.
func classify(f string, line int) (Token, error) {
	switch {
	case strings.HasPrefix(f, ":"):
		name := f[1:]
		if name == "" {
			return Token{}, fmt.Errorf("line %d: %w", line, ErrEmptyLabel)
		}
		return Token{Kind: LabelDef, Text: name, Line: line}, nil
	case strings.HasPrefix(f, "@"):
		name := f[1:]
		if name == "" {
			return Token{}, fmt.Errorf("line %d: %w", line, ErrEmptyMetaVar)
		}
		return Token{Kind: MetaVar, Text: name, Line: line}, nil
	default:
		if n, err := strconv.ParseInt(f, 10, 64); err == nil {
			return Token{Kind: Int, Int: n, Line: line}, nil
		}
		return Token{Kind: Ident, Text: f, Line: line}, nil
	}
}

// parsePragma parses the fields following "@EACH" on a line into an
// EachStart token: "NAME=[v1 v2 ...]", where the bracketed list may
// span several whitespace-delimited fields.
func parsePragma(fields []string, line int) (Token, error) {
	if len(fields) == 0 {
		return Token{}, fmt.Errorf("line %d: %w: missing NAME=[...]", line, ErrMalformedPragma)
	}
	joined := strings.Join(fields, " ")

	eq := strings.IndexByte(joined, '=')
	if eq <= 0 {
		return Token{}, fmt.Errorf("line %d: %w: missing '='", line, ErrMalformedPragma)
	}
	name := joined[:eq]
	rest := joined[eq+1:]

	if !strings.HasPrefix(rest, "[") || !strings.HasSuffix(rest, "]") {
		return Token{}, fmt.Errorf("line %d: %w: values must be bracketed", line, ErrMalformedPragma)
	}
	values := strings.Fields(rest[1 : len(rest)-1])
	if len(values) == 0 {
		return Token{}, fmt.Errorf("line %d: %w: empty value list", line, ErrMalformedPragma)
	}

	return Token{Kind: EachStart, Var: name, Values: values, Line: line}, nil
}
