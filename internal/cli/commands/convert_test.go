package commands

import (
	"testing"

	"github.com/conduit-lang/toml2/compiler/tree"
)

func TestToPlainTable(t *testing.T) {
	root := tree.NewTable("")
	root.PutChild(tree.NewString("name", "alpha"))
	root.PutChild(tree.NewInt("port", 8080))

	out, ok := toPlain(root).(map[string]interface{})
	if !ok {
		t.Fatalf("toPlain(table) = %T, want map[string]interface{}", toPlain(root))
	}
	if out["name"] != "alpha" {
		t.Errorf("name = %v, want alpha", out["name"])
	}
	if out["port"] != int64(8080) {
		t.Errorf("port = %v, want 8080", out["port"])
	}
}

func TestToPlainList(t *testing.T) {
	list := tree.NewList("")
	list.Append(tree.NewInt("", 1))
	list.Append(tree.NewInt("", 2))

	out, ok := toPlain(list).([]interface{})
	if !ok {
		t.Fatalf("toPlain(list) = %T, want []interface{}", toPlain(list))
	}
	if len(out) != 2 || out[0] != int64(1) || out[1] != int64(2) {
		t.Errorf("got %v", out)
	}
}

func TestPlainTextScalars(t *testing.T) {
	if got := plainText(tree.NewString("", "hi")); got != "hi" {
		t.Errorf("got %q", got)
	}
	if got := plainText(tree.NewBool("", true)); got != "true" {
		t.Errorf("got %q", got)
	}
}

func TestRootCommandHasExpectedSubcommands(t *testing.T) {
	root := NewRootCommand()
	names := map[string]bool{}
	for _, c := range root.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"version", "parse", "get", "init"} {
		if !names[want] {
			t.Errorf("root command is missing %q subcommand", want)
		}
	}
}
