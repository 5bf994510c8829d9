// Package tree implements the TOML document tree: the Node variant
// type, its table/list/scalar storage, and the typed query API used
// to read a parsed document.
package tree

import (
	"sort"
	"strconv"
	"strings"
	"time"
)

// Kind tags which variant a Node holds.
type Kind int

const (
	KindTable Kind = iota
	KindList
	KindString
	KindInt
	KindFloat
	KindBool
	KindDate
)

// String names a Kind, used by the CLI and by test failure messages.
func (k Kind) String() string {
	switch k {
	case KindTable:
		return "table"
	case KindList:
		return "list"
	case KindString:
		return "string"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	case KindDate:
		return "date"
	default:
		return "unknown"
	}
}

// Node is a single element of a parsed TOML document: a table, a
// list, or one of the scalar kinds. A Table owns a name-sorted slice
// of children; a List owns an ordered, homogeneous slice of elements;
// a scalar kind owns an immutable payload.
type Node struct {
	kind     Kind
	name     string
	declared bool
	line     int
	column   int

	children []*Node // Table: sorted by name. List: insertion order.

	sval string
	ival int64
	fval float64
	bval bool
	tval time.Time
}

// NewTable creates an empty, undeclared table node (autovivified
// tables start this way; the parser marks them Declared when a
// [table] or inline {} header materializes them directly).
func NewTable(name string) *Node {
	return &Node{kind: KindTable, name: name}
}

// NewList creates an empty list node.
func NewList(name string) *Node {
	return &Node{kind: KindList, name: name}
}

// NewString creates a declared string scalar.
func NewString(name, value string) *Node {
	return &Node{kind: KindString, name: name, sval: value, declared: true}
}

// NewInt creates a declared integer scalar.
func NewInt(name string, value int64) *Node {
	return &Node{kind: KindInt, name: name, ival: value, declared: true}
}

// NewFloat creates a declared floating point scalar.
func NewFloat(name string, value float64) *Node {
	return &Node{kind: KindFloat, name: name, fval: value, declared: true}
}

// NewBool creates a declared boolean scalar.
func NewBool(name string, value bool) *Node {
	return &Node{kind: KindBool, name: name, bval: value, declared: true}
}

// NewDate creates a declared date-time scalar.
func NewDate(name string, value time.Time) *Node {
	return &Node{kind: KindDate, name: name, tval: value, declared: true}
}

// Type returns the Node's variant.
func (n *Node) Type() Kind { return n.kind }

// Name returns the key this node is stored under in its parent table
// (the root table's Name is empty).
func (n *Node) Name() string { return n.name }

// Declared reports whether the node was explicitly materialized by a
// [table] header, [[array]] header, or inline table/array literal, as
// opposed to being autovivified as an intermediate hop of a dotted key.
func (n *Node) Declared() bool { return n.declared }

// MarkDeclared flips the Declared bit. Used by the grammar engine when
// an autovivified table is later given its own explicit header.
func (n *Node) MarkDeclared() { n.declared = true }

// Position returns the 1-based line/column where the node was first
// declared, for diagnostics.
func (n *Node) Position() (line, column int) { return n.line, n.column }

// SetPosition records where the node was first declared.
func (n *Node) SetPosition(line, column int) {
	n.line, n.column = line, column
}

// Get looks up an immediate child of a Table node by name. Returns
// (nil, false) for any other Kind or a missing name.
func (n *Node) Get(name string) (*Node, bool) {
	if n.kind != KindTable {
		return nil, false
	}
	i := sort.Search(len(n.children), func(i int) bool {
		return n.children[i].name >= name
	})
	if i < len(n.children) && n.children[i].name == name {
		return n.children[i], true
	}
	return nil, false
}

// GetPath resolves a dot-separated path against the document: a
// segment that parses as a non-negative decimal integer indexes into
// a List; any other segment looks up a Table child by name.
func (n *Node) GetPath(path string) (*Node, bool) {
	if path == "" {
		return n, true
	}
	cur := n
	for _, segment := range strings.Split(path, ".") {
		if idx, err := strconv.Atoi(segment); err == nil && idx >= 0 && cur.kind == KindList {
			child := cur.Index(idx)
			if child == nil {
				return nil, false
			}
			cur = child
			continue
		}
		child, ok := cur.Get(segment)
		if !ok {
			return nil, false
		}
		cur = child
	}
	return cur, true
}

// SetName renames a node. Used by the grammar engine when a value
// parsed in isolation (e.g. the body of an inline table entry) is
// later attached to a key.
func (n *Node) SetName(name string) {
	n.name = name
}

// PutChild inserts or returns the existing child with this name,
// keeping the children slice sorted by name. Only valid on a Table;
// the grammar engine is responsible for the reassignment checks this
// does not perform itself.
func (n *Node) PutChild(child *Node) *Node {
	return n.putChild(child)
}

// putChild is the unexported implementation shared by PutChild.
func (n *Node) putChild(child *Node) *Node {
	i := sort.Search(len(n.children), func(i int) bool {
		return n.children[i].name >= child.name
	})
	if i < len(n.children) && n.children[i].name == child.name {
		return n.children[i]
	}
	n.children = append(n.children, nil)
	copy(n.children[i+1:], n.children[i:])
	n.children[i] = child
	return child
}

// Append adds an element to a List node. Used only by the grammar
// engine, which is responsible for enforcing the homogeneous-list
// invariant before calling this.
func (n *Node) Append(child *Node) {
	n.children = append(n.children, child)
}

// Children returns a node's direct children: Table order is
// name-sorted, List order is insertion order. Scalars return nil.
func (n *Node) Children() []*Node {
	return n.children
}

// Len returns the number of entries in a Table or List, or 0 for a
// scalar Kind.
func (n *Node) Len() int {
	if n.kind != KindTable && n.kind != KindList {
		return 0
	}
	return len(n.children)
}

// Index returns the i-th element of a List (O(1)); returns nil when i
// is out of range or n is not a List.
func (n *Node) Index(i int) *Node {
	if n.kind != KindList || i < 0 || i >= len(n.children) {
		return nil
	}
	return n.children[i]
}

// String returns the scalar payload of a String node, or "" for any
// other Kind.
func (n *Node) String() string {
	if n.kind != KindString {
		return ""
	}
	return n.sval
}

// Int returns the scalar payload of an Int node. A Float node is
// truncated toward zero; any other Kind returns 0.
func (n *Node) Int() int64 {
	switch n.kind {
	case KindInt:
		return n.ival
	case KindFloat:
		return int64(n.fval)
	default:
		return 0
	}
}

// Float returns the scalar payload of a Float node. An Int node is
// widened; any other Kind returns 0.
func (n *Node) Float() float64 {
	switch n.kind {
	case KindFloat:
		return n.fval
	case KindInt:
		return float64(n.ival)
	default:
		return 0
	}
}

// Bool returns the scalar payload of a Bool node, or false for any
// other Kind.
func (n *Node) Bool() bool {
	if n.kind != KindBool {
		return false
	}
	return n.bval
}

// Date returns the scalar payload of a Date node, or the zero
// time.Time for any other Kind.
func (n *Node) Date() time.Time {
	if n.kind != KindDate {
		return time.Time{}
	}
	return n.tval
}
