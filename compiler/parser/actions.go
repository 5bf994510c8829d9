package parser

import (
	"time"

	"github.com/conduit-lang/toml2/compiler/errors"
	"github.com/conduit-lang/toml2/compiler/lexer"
	"github.com/conduit-lang/toml2/compiler/tree"
)

// endtable materializes a [table] header: walks segments from root,
// autovivifying intermediate tables, and marks the final segment
// Declared. Re-declaring an already-Declared table is TableReassigned.
func (p *Parser) endtable(segments []string) (*tree.Node, *errors.CompilerError) {
	cur := p.root
	for i, seg := range segments {
		isLast := i == len(segments)-1

		if isLast {
			child, ok := cur.Get(seg)
			if !ok {
				child = tree.NewTable(seg)
				child.SetPosition(p.tok.Line, p.tok.Column)
				cur.PutChild(child)
			}
			if child.Type() != tree.KindTable {
				return nil, p.errHere(errors.KindTableReassigned, "'"+seg+"' is not a table")
			}
			if child.Declared() {
				return nil, p.errHere(errors.KindTableReassigned, "table '"+seg+"' already declared")
			}
			child.MarkDeclared()
			return child, nil
		}

		next, err := p.descend(cur, seg)
		if err != nil {
			return nil, err
		}
		cur = next
	}
	return cur, nil
}

// descend resolves one non-final header segment: an existing table is
// walked directly, an existing array of tables is walked through its
// last element (so "[[fruit]]" followed by "[fruit.physical]" attaches
// physical to the array's most recent entry), and a missing segment is
// autovivified as a table.
func (p *Parser) descend(cur *tree.Node, seg string) (*tree.Node, *errors.CompilerError) {
	child, ok := cur.Get(seg)
	if !ok {
		child = tree.NewTable(seg)
		cur.PutChild(child)
		return child, nil
	}
	switch child.Type() {
	case tree.KindTable:
		return child, nil
	case tree.KindList:
		if child.Len() == 0 {
			return nil, p.errHere(errors.KindTableReassigned, "'"+seg+"' is an empty array of tables")
		}
		return child.Index(child.Len() - 1), nil
	default:
		return nil, p.errHere(errors.KindTableReassigned, "'"+seg+"' is not a table")
	}
}

// push materializes a [[array-of-tables]] header: walks all but the
// last segment as tables, then appends a new, freshly-declared table
// element to the list named by the last segment (autovivifying the
// list itself on first use, and marking it Declared so a later plain
// inline-array reassignment of the same key is caught too).
//
// A list already holding non-table elements, or an empty list that
// was declared by an inline array literal rather than by push itself,
// cannot take a table element: that would break the homogeneous-list
// invariant a single key is required to hold.
func (p *Parser) push(segments []string) (*tree.Node, *errors.CompilerError) {
	cur := p.root
	for i, seg := range segments {
		isLast := i == len(segments)-1
		if isLast {
			child, ok := cur.Get(seg)
			if !ok {
				child = tree.NewList(seg)
				child.MarkDeclared()
				cur.PutChild(child)
			}
			if child.Type() != tree.KindList {
				return nil, p.errHere(errors.KindListReassigned, "'"+seg+"' is not an array of tables")
			}
			if child.Len() > 0 {
				if child.Index(0).Type() != tree.KindTable {
					return nil, p.errHere(errors.KindMixedList, "'"+seg+"' is not an array of tables")
				}
			} else if ok && child.Declared() {
				return nil, p.errHere(errors.KindMixedList, "'"+seg+"' is not an array of tables")
			}
			elem := tree.NewTable("")
			elem.SetPosition(p.tok.Line, p.tok.Column)
			elem.MarkDeclared()
			child.Append(elem)
			return elem, nil
		}

		next, err := p.descend(cur, seg)
		if err != nil {
			return nil, err
		}
		cur = next
	}
	return cur, nil
}

// save attaches a parsed value to the key accumulated in
// p.keySegments, autovivifying intermediate tables under the
// currentTable exactly like endtable does under the root.
func (p *Parser) save(value *tree.Node) *errors.CompilerError {
	cur := p.currentTable
	for i, seg := range p.keySegments {
		isLast := i == len(p.keySegments)-1
		if isLast {
			if _, ok := cur.Get(seg); ok {
				return p.errHere(errors.KindValueReassigned, "key '"+seg+"' already assigned")
			}
			value.SetName(seg)
			value.SetPosition(p.tok.Line, p.tok.Column)
			cur.PutChild(value)
			return nil
		}

		next, err := p.descend(cur, seg)
		if err != nil {
			return err
		}
		cur = next
	}
	return nil
}

// parseValue reads one TOML value starting at the current token:
// a scalar, an inline table, or an inline array. On return the
// current token is the one immediately following the value.
func (p *Parser) parseValue() (*tree.Node, *errors.CompilerError) {
	switch p.tok.Type {
	case lexer.TOKEN_STRING:
		s, _ := p.tok.Literal.(string)
		n := tree.NewString("", s)
		if err := p.advance(); err != nil {
			return nil, err
		}
		return n, nil
	case lexer.TOKEN_INT:
		v, _ := p.tok.Literal.(int64)
		n := tree.NewInt("", v)
		if err := p.advance(); err != nil {
			return nil, err
		}
		return n, nil
	case lexer.TOKEN_DOUBLE:
		v, _ := p.tok.Literal.(float64)
		n := tree.NewFloat("", v)
		if err := p.advance(); err != nil {
			return nil, err
		}
		return n, nil
	case lexer.TOKEN_DATE:
		t, _ := p.tok.Literal.(time.Time)
		n := tree.NewDate("", t)
		if err := p.advance(); err != nil {
			return nil, err
		}
		return n, nil
	case lexer.TOKEN_IDENTIFIER:
		switch p.tok.Lexeme {
		case "true":
			n := tree.NewBool("", true)
			if err := p.advance(); err != nil {
				return nil, err
			}
			return n, nil
		case "false":
			n := tree.NewBool("", false)
			if err := p.advance(); err != nil {
				return nil, err
			}
			return n, nil
		default:
			return nil, p.errHere(errors.KindMisplacedIdentifier, "unexpected identifier '"+p.tok.Lexeme+"' in value position")
		}
	case lexer.TOKEN_BRACE_OPEN:
		return p.parseInlineTable()
	case lexer.TOKEN_BRACKET_OPEN:
		return p.parseInlineArray()
	default:
		return nil, p.errHere(errors.KindParseError, "expected a value")
	}
}

func (p *Parser) skipNewlines() *errors.CompilerError {
	for p.tok.Type == lexer.TOKEN_NEWLINE {
		if err := p.advance(); err != nil {
			return err
		}
	}
	return nil
}

// parseInlineArray parses "[ v1, v2, ... ]" (IARRAY_VAL_OR_END,
// IARRAY_VAL, IARRAY_COM_OR_END). Every element must share one Kind.
func (p *Parser) parseInlineArray() (*tree.Node, *errors.CompilerError) {
	if err := p.advance(); err != nil { // consume '['
		return nil, err
	}
	list := tree.NewList("")
	list.MarkDeclared()

	if err := p.skipNewlines(); err != nil {
		return nil, err
	}
	if p.tok.Type == lexer.TOKEN_BRACKET_CLOSE {
		return list, p.advance()
	}

	var elemKind tree.Kind
	haveKind := false
	for {
		val, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		if !haveKind {
			elemKind = val.Type()
			haveKind = true
		} else if val.Type() != elemKind {
			return nil, p.errHere(errors.KindMixedList, "array elements must share a single type")
		}
		list.Append(val)

		if err := p.skipNewlines(); err != nil {
			return nil, err
		}

		switch p.tok.Type {
		case lexer.TOKEN_COMMA:
			if err := p.advance(); err != nil {
				return nil, err
			}
			if err := p.skipNewlines(); err != nil {
				return nil, err
			}
			if p.tok.Type == lexer.TOKEN_BRACKET_CLOSE {
				return list, p.advance()
			}
		case lexer.TOKEN_BRACKET_CLOSE:
			return list, p.advance()
		default:
			return nil, p.errHere(errors.KindParseError, "expected ',' or ']' in array")
		}
	}
}

// parseInlineTable parses "{ k = v, ... }" (ITABLE_ID_OR_END,
// ITABLE_ID, ITABLE_COLON, ITABLE_VAL, ITABLE_COM_OR_END).
func (p *Parser) parseInlineTable() (*tree.Node, *errors.CompilerError) {
	if err := p.advance(); err != nil { // consume '{'
		return nil, err
	}
	tbl := tree.NewTable("")
	tbl.MarkDeclared()

	if p.tok.Type == lexer.TOKEN_BRACE_CLOSE {
		return tbl, p.advance()
	}

	for {
		if p.tok.Type != lexer.TOKEN_IDENTIFIER && p.tok.Type != lexer.TOKEN_STRING {
			return nil, p.errHere(errors.KindMisplacedIdentifier, "expected a key in inline table")
		}
		key := keyText(p.tok)
		if err := p.advance(); err != nil {
			return nil, err
		}

		if p.tok.Type != lexer.TOKEN_EQUALS && p.tok.Type != lexer.TOKEN_COLON {
			return nil, p.errHere(errors.KindParseError, "expected '=' or ':' after inline table key")
		}
		if err := p.advance(); err != nil {
			return nil, err
		}

		val, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		if _, exists := tbl.Get(key); exists {
			return nil, p.errHere(errors.KindValueReassigned, "duplicate key '"+key+"' in inline table")
		}
		val.SetName(key)
		tbl.PutChild(val)

		switch p.tok.Type {
		case lexer.TOKEN_COMMA:
			if err := p.advance(); err != nil {
				return nil, err
			}
		case lexer.TOKEN_BRACE_CLOSE:
			return tbl, p.advance()
		default:
			return nil, p.errHere(errors.KindParseError, "expected ',' or '}' in inline table")
		}
	}
}
