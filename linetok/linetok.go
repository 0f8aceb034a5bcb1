// Copyright © 2025 The whyerr authors

// Package linetok splits a single line of source text into coarse tokens:
// identifiers, numbers, string literals, and punctuation. The syntax-message
// analyzers use the token shapes to recognise statement forms such as
// `del name(...)` or to locate a reserved word on the offending line.
//
// The tokenizer does not attempt to be a full lexer for any language; it
// only needs to agree with the host runtime on what counts as a name.
package linetok

import (
	parsec "github.com/prataprc/goparsec"
)

// Kind classifies a token.
type Kind int

const (
	Name Kind = iota
	Number
	String
	Op
)

func (k Kind) String() string {
	switch k {
	case Name:
		return "NAME"
	case Number:
		return "NUMBER"
	case String:
		return "STRING"
	case Op:
		return "OP"
	default:
		return "INVALID"
	}
}

// Token is one lexical unit of the line.
type Token struct {
	Kind Kind
	Text string
}

// Tokenize splits line into tokens, skipping whitespace. Characters that fit
// no other class come back as single-character Op tokens, so the scan always
// consumes the whole line.
func Tokenize(line string) []Token {
	s := parsec.NewScanner([]byte(line))
	parser := newLineParser()
	var tokens []Token
	node, next := parser(s)
	for node != nil {
		for _, n := range collectTerminals(node) {
			tokens = append(tokens, n)
		}
		s = next
		node, next = parser(s)
	}
	return tokens
}

// Identifiers returns just the Name token texts of line, in order.
func Identifiers(line string) []string {
	var names []string
	for _, tok := range Tokenize(line) {
		if tok.Kind == Name {
			names = append(names, tok.Text)
		}
	}
	return names
}

// IsIdentifier reports whether s consists of exactly one Name token.
func IsIdentifier(s string) bool {
	toks := Tokenize(s)
	return len(toks) == 1 && toks[0].Kind == Name
}

func newLineParser() parsec.Parser {
	name := parsec.Token(`[A-Za-z_][A-Za-z0-9_]*`, "NAME")
	number := parsec.Token(`[0-9]+(?:\.[0-9]+)?(?:[eE][+-]?[0-9]+)?`, "NUMBER")
	str := parsec.Token(`"(?:[^"\\]|\\.)*"|'(?:[^'\\]|\\.)*'`, "STRING")
	// Any other single non-space character is punctuation.
	op := parsec.Token(`[^\sA-Za-z0-9_]`, "OP")
	return parsec.OrdChoice(nil, str, number, name, op)
}

// collectTerminals flattens a parsec result into tokens. OrdChoice with a
// nil callback wraps the winning alternative in a one-element node list.
func collectTerminals(node parsec.ParsecNode) []Token {
	switch n := node.(type) {
	case *parsec.Terminal:
		return []Token{{Kind: kindOf(n.GetName()), Text: n.GetValue()}}
	case []parsec.ParsecNode:
		var tokens []Token
		for _, c := range n {
			tokens = append(tokens, collectTerminals(c)...)
		}
		return tokens
	default:
		return nil
	}
}

func kindOf(name string) Kind {
	switch name {
	case "NAME":
		return Name
	case "NUMBER":
		return Number
	case "STRING":
		return String
	default:
		return Op
	}
}
