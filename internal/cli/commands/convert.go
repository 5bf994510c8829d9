package commands

import (
	"fmt"
	"time"

	"github.com/segmentio/encoding/json"

	"github.com/conduit-lang/toml2/compiler/tree"
)

// toPlain converts a parsed document tree into plain Go values
// (map[string]interface{}, []interface{}, and scalars) suitable for
// JSON encoding, since tree.Node itself carries parse-time metadata
// (declared/position) that the CLI's JSON output doesn't expose.
func toPlain(n *tree.Node) interface{} {
	switch n.Type() {
	case tree.KindTable:
		out := make(map[string]interface{}, n.Len())
		for _, c := range n.Children() {
			out[c.Name()] = toPlain(c)
		}
		return out
	case tree.KindList:
		out := make([]interface{}, n.Len())
		for i := 0; i < n.Len(); i++ {
			out[i] = toPlain(n.Index(i))
		}
		return out
	case tree.KindString:
		return n.String()
	case tree.KindInt:
		return n.Int()
	case tree.KindFloat:
		return n.Float()
	case tree.KindBool:
		return n.Bool()
	case tree.KindDate:
		return n.Date().Format(time.RFC3339)
	default:
		return nil
	}
}

// plainText renders a node for non-JSON terminal output: scalars print
// bare, tables and lists fall back to compact JSON since there's no
// single obvious plain-text rendering for a nested structure.
func plainText(n *tree.Node) string {
	switch n.Type() {
	case tree.KindString:
		return n.String()
	case tree.KindInt:
		return fmt.Sprintf("%d", n.Int())
	case tree.KindFloat:
		return fmt.Sprintf("%g", n.Float())
	case tree.KindBool:
		return fmt.Sprintf("%t", n.Bool())
	case tree.KindDate:
		return n.Date().Format(time.RFC3339)
	default:
		b, err := json.Marshal(toPlain(n))
		if err != nil {
			return ""
		}
		return string(b)
	}
}
