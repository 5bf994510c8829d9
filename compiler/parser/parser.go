// Package parser implements the grammar engine: a pushdown automaton
// that turns a lexer.Lexer's token stream into a populated tree.Node
// document. The transitions are written as code, not held as a table
// of data: step() switches on the current mode, and inline arrays and
// inline tables are parsed by recursive helpers.
package parser

import (
	"fmt"

	"github.com/conduit-lang/toml2/compiler/errors"
	"github.com/conduit-lang/toml2/compiler/lexer"
	"github.com/conduit-lang/toml2/compiler/tree"
)

// Parser drives a lexer one token at a time through the parseMode
// automaton, building a tree.Node document. The zero value is not
// usable; construct with New.
type Parser struct {
	lex *lexer.Lexer
	tok lexer.Token

	mode parseMode
	root *tree.Node

	keySegments   []string
	isHeader      bool
	isArrayHeader bool

	currentTable *tree.Node
}

// New constructs a Parser reading from l.
func New(l *lexer.Lexer) *Parser {
	return &Parser{lex: l, mode: modeStartLine}
}

// Parse runs l through the grammar engine to completion and returns
// the root document node. Errors are terminal: the first one aborts
// the parse and no partial tree is returned.
func Parse(l *lexer.Lexer) (*tree.Node, *errors.CompilerError) {
	return New(l).Parse()
}

// Parse drives this Parser's automaton to completion.
func (p *Parser) Parse() (*tree.Node, *errors.CompilerError) {
	p.root = tree.NewTable("")
	p.root.MarkDeclared()
	p.currentTable = p.root

	if err := p.advance(); err != nil {
		return nil, err
	}
	for p.mode != modeDone {
		if err := p.step(); err != nil {
			return nil, err
		}
	}
	return p.root, nil
}

func (p *Parser) advance() *errors.CompilerError {
	tok, err := p.lex.Next()
	if err != nil {
		return err
	}
	p.tok = tok
	return nil
}

// step realizes one (mode, token) -> (action, next mode) transition.
func (p *Parser) step() *errors.CompilerError {
	switch p.mode {
	case modeStartLine:
		return p.stepStartLine()
	case modeTableOrATable:
		return p.stepTableOrATable()
	case modeTableID:
		return p.stepTableID()
	case modeTableDotOrEnd:
		return p.stepTableDotOrEnd()
	case modeATableID:
		return p.stepATableID()
	case modeATableDotOrEnd:
		return p.stepATableDotOrEnd()
	case modeATableClose:
		return p.stepATableClose()
	case modeNewline:
		return p.stepNewline()
	case modeValueEquals:
		return p.stepValueEquals()
	case modeValue:
		return p.stepValue()
	default:
		return p.errHere(errors.KindInternalError, fmt.Sprintf("unreachable parse mode %s", p.mode))
	}
}

// name: begin a fresh dotted-key read starting with the current token.
func (p *Parser) name(header, arrayHeader bool) {
	p.isHeader = header
	p.isArrayHeader = arrayHeader
	p.keySegments = p.keySegments[:0]
	p.keySegments = append(p.keySegments, keyText(p.tok))
}

func (p *Parser) stepStartLine() *errors.CompilerError {
	switch p.tok.Type {
	case lexer.TOKEN_NEWLINE:
		return p.advance()
	case lexer.TOKEN_EOF:
		p.mode = modeDone
		return nil
	case lexer.TOKEN_BRACKET_OPEN:
		p.mode = modeTableOrATable
		return p.advance()
	case lexer.TOKEN_IDENTIFIER, lexer.TOKEN_STRING:
		p.name(false, false)
		p.mode = modeTableDotOrEnd
		return p.advance()
	default:
		return p.errHere(errors.KindMisplacedIdentifier, "expected a key or a table header")
	}
}

// TABLE_OR_ATABLE: the token after a line-opening '['. A second '['
// starts an [[array]] header; a key starts a [table] header.
func (p *Parser) stepTableOrATable() *errors.CompilerError {
	switch p.tok.Type {
	case lexer.TOKEN_BRACKET_OPEN:
		p.isHeader, p.isArrayHeader = true, true
		p.keySegments = p.keySegments[:0]
		p.mode = modeATableID
		return p.advance()
	case lexer.TOKEN_IDENTIFIER, lexer.TOKEN_STRING:
		p.name(true, false)
		p.mode = modeTableDotOrEnd
		return p.advance()
	default:
		return p.errHere(errors.KindParseError, "expected a table name after '['")
	}
}

// subfield: the next segment of a dotted key/header, following a '.'.
func (p *Parser) stepTableID() *errors.CompilerError {
	switch p.tok.Type {
	case lexer.TOKEN_IDENTIFIER, lexer.TOKEN_STRING:
		p.keySegments = append(p.keySegments, keyText(p.tok))
		p.mode = modeTableDotOrEnd
		return p.advance()
	default:
		return p.errHere(errors.KindMisplacedIdentifier, "expected an identifier after '.'")
	}
}

func (p *Parser) stepTableDotOrEnd() *errors.CompilerError {
	switch p.tok.Type {
	case lexer.TOKEN_DOT:
		p.mode = modeTableID
		return p.advance()
	case lexer.TOKEN_BRACKET_CLOSE:
		if !p.isHeader {
			return p.errHere(errors.KindParseError, "unexpected ']'")
		}
		node, err := p.endtable(p.keySegments)
		if err != nil {
			return err
		}
		p.currentTable = node
		p.mode = modeNewline
		return p.advance()
	case lexer.TOKEN_EQUALS:
		if p.isHeader {
			return p.errHere(errors.KindParseError, "expected ']'")
		}
		p.mode = modeValueEquals
		return nil
	default:
		return p.errHere(errors.KindMisplacedIdentifier, "expected '.', '=' or ']'")
	}
}

func (p *Parser) stepATableID() *errors.CompilerError {
	switch p.tok.Type {
	case lexer.TOKEN_IDENTIFIER, lexer.TOKEN_STRING:
		p.keySegments = append(p.keySegments, keyText(p.tok))
		p.mode = modeATableDotOrEnd
		return p.advance()
	default:
		return p.errHere(errors.KindMisplacedIdentifier, "expected an identifier after '[['")
	}
}

func (p *Parser) stepATableDotOrEnd() *errors.CompilerError {
	switch p.tok.Type {
	case lexer.TOKEN_DOT:
		p.mode = modeATableID
		return p.advance()
	case lexer.TOKEN_BRACKET_CLOSE:
		p.mode = modeATableClose
		return p.advance()
	default:
		return p.errHere(errors.KindMisplacedIdentifier, "expected '.' or ']]'")
	}
}

func (p *Parser) stepATableClose() *errors.CompilerError {
	if p.tok.Type != lexer.TOKEN_BRACKET_CLOSE {
		return p.errHere(errors.KindParseError, "expected ']]'")
	}
	node, err := p.push(p.keySegments)
	if err != nil {
		return err
	}
	p.currentTable = node
	p.mode = modeNewline
	return p.advance()
}

func (p *Parser) stepNewline() *errors.CompilerError {
	switch p.tok.Type {
	case lexer.TOKEN_NEWLINE:
		p.mode = modeStartLine
		return p.advance()
	case lexer.TOKEN_EOF:
		p.mode = modeDone
		return nil
	default:
		return p.errHere(errors.KindParseError, "expected end of line")
	}
}

func (p *Parser) stepValueEquals() *errors.CompilerError {
	if p.tok.Type != lexer.TOKEN_EQUALS {
		return p.errHere(errors.KindInternalError, "VALUE_EQUALS reached without an '=' token")
	}
	p.mode = modeValue
	return p.advance()
}

func (p *Parser) stepValue() *errors.CompilerError {
	value, err := p.parseValue()
	if err != nil {
		return err
	}
	if err := p.save(value); err != nil {
		return err
	}
	p.mode = modeNewline
	return nil
}

func keyText(tok lexer.Token) string {
	if tok.Type == lexer.TOKEN_STRING {
		if s, ok := tok.Literal.(string); ok {
			return s
		}
	}
	return tok.Lexeme
}

func (p *Parser) errHere(kind errors.Kind, message string) *errors.CompilerError {
	e := errors.New("parser", kind, message, errors.SourceLocation{
		File:   p.tok.File,
		Line:   p.tok.Line,
		Column: p.tok.Column,
	})
	return &e
}
