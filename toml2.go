// Package toml2 parses TOML 0.4 configuration documents into an
// in-memory tree and exposes a typed query API over the result.
package toml2

import (
	"io"
	"os"

	"github.com/conduit-lang/toml2/compiler/errors"
	"github.com/conduit-lang/toml2/compiler/lexer"
	"github.com/conduit-lang/toml2/compiler/parser"
	"github.com/conduit-lang/toml2/compiler/tree"
)

// Node is the document tree's element type, re-exported so callers
// never need to import compiler/tree directly.
type Node = tree.Node

// Kind tags which variant a Node holds.
type Kind = tree.Kind

const (
	KindTable  = tree.KindTable
	KindList   = tree.KindList
	KindString = tree.KindString
	KindInt    = tree.KindInt
	KindFloat  = tree.KindFloat
	KindBool   = tree.KindBool
	KindDate   = tree.KindDate
)

// ParseError is the error type returned by Parse, ParseBytes and
// ParseFile: a single, terminal, positioned diagnostic.
type ParseError = errors.CompilerError

// Parse reads and parses a complete TOML document from r.
func Parse(r io.Reader) (*Node, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return ParseBytes(data)
}

// ParseBytes parses a complete TOML document held in memory.
func ParseBytes(b []byte) (*Node, error) {
	source, derr := lexer.Decode(b, "")
	if derr != nil {
		return nil, *derr
	}
	l := lexer.New(source, "")
	node, perr := parser.Parse(l)
	if perr != nil {
		return nil, *perr
	}
	return node, nil
}

// ParseFile reads and parses the TOML document at path.
func ParseFile(path string) (*Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	source, derr := lexer.Decode(data, path)
	if derr != nil {
		return nil, *derr
	}
	l := lexer.New(source, path)
	node, perr := parser.Parse(l)
	if perr != nil {
		return nil, *perr
	}
	return node, nil
}
