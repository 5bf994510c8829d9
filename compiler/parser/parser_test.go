package parser

import (
	"testing"

	"github.com/conduit-lang/toml2/compiler/lexer"
	"github.com/conduit-lang/toml2/compiler/tree"
)

func parseOK(t *testing.T, src string) *tree.Node {
	t.Helper()
	l := lexer.New(src, "")
	doc, err := Parse(l)
	if err != nil {
		t.Fatalf("Parse(%q) returned error: %v", src, err)
	}
	return doc
}

func TestParseSimpleKeyValue(t *testing.T) {
	doc := parseOK(t, "title = \"TOML Example\"\n")
	n, ok := doc.Get("title")
	if !ok || n.String() != "TOML Example" {
		t.Fatalf("title = %v, %v", n, ok)
	}
}

func TestParseDottedKey(t *testing.T) {
	doc := parseOK(t, "physical.color = \"orange\"\nphysical.shape = \"round\"\n")
	n, ok := doc.GetPath("physical.color")
	if !ok || n.String() != "orange" {
		t.Fatalf("physical.color = %v, %v", n, ok)
	}
	n, ok = doc.GetPath("physical.shape")
	if !ok || n.String() != "round" {
		t.Fatalf("physical.shape = %v, %v", n, ok)
	}
}

func TestParseTableHeader(t *testing.T) {
	doc := parseOK(t, "[servers.alpha]\nip = \"10.0.0.1\"\n")
	n, ok := doc.GetPath("servers.alpha.ip")
	if !ok || n.String() != "10.0.0.1" {
		t.Fatalf("servers.alpha.ip = %v, %v", n, ok)
	}
}

func TestParseArrayOfTables(t *testing.T) {
	doc := parseOK(t, "[[products]]\nname = \"Hammer\"\nsku = 738594937\n\n[[products]]\nname = \"Nail\"\n")
	products, ok := doc.Get("products")
	if !ok || products.Type() != tree.KindList {
		t.Fatalf("products = %v, %v", products, ok)
	}
	if products.Len() != 2 {
		t.Fatalf("products.Len() = %d, want 2", products.Len())
	}
	if products.Index(0).Children()[0].Name() != "name" {
		t.Errorf("first product's first key should be name")
	}
	if name, _ := products.Index(1).Get("name"); name.String() != "Nail" {
		t.Errorf("second product name = %q, want Nail", name.String())
	}
}

func TestParseInlineTable(t *testing.T) {
	doc := parseOK(t, `point = { x = 1, y = 2 }` + "\n")
	point, ok := doc.Get("point")
	if !ok || point.Type() != tree.KindTable {
		t.Fatalf("point = %v, %v", point, ok)
	}
	x, _ := point.Get("x")
	if x.Int() != 1 {
		t.Errorf("point.x = %d, want 1", x.Int())
	}
}

func TestParseInlineArray(t *testing.T) {
	doc := parseOK(t, "colors = [\"red\", \"yellow\", \"green\"]\n")
	colors, ok := doc.Get("colors")
	if !ok || colors.Len() != 3 {
		t.Fatalf("colors = %v, %v", colors, ok)
	}
}

func TestParseNestedInlineArray(t *testing.T) {
	doc := parseOK(t, "nested = [[1, 2], [3, 4, 5]]\n")
	nested, _ := doc.Get("nested")
	if nested.Len() != 2 {
		t.Fatalf("nested.Len() = %d, want 2", nested.Len())
	}
	if nested.Index(1).Len() != 3 {
		t.Errorf("nested[1].Len() = %d, want 3", nested.Index(1).Len())
	}
}

func TestParseBooleans(t *testing.T) {
	doc := parseOK(t, "ok = true\nnope = false\n")
	ok, _ := doc.Get("ok")
	if ok.Bool() != true {
		t.Error("ok should be true")
	}
	nope, _ := doc.Get("nope")
	if nope.Bool() != false {
		t.Error("nope should be false")
	}
}

func TestParseDuplicateKeyIsError(t *testing.T) {
	l := lexer.New("a = 1\na = 2\n", "")
	_, err := Parse(l)
	if err == nil {
		t.Fatal("duplicate key should be an error")
	}
	if err.Code != "E102" {
		t.Errorf("got code %s, want E102 (ValueReassigned)", err.Code)
	}
}

func TestParseRedeclaredTableIsError(t *testing.T) {
	l := lexer.New("[a]\nx = 1\n[a]\ny = 2\n", "")
	_, err := Parse(l)
	if err == nil {
		t.Fatal("redeclared table should be an error")
	}
	if err.Code != "E101" {
		t.Errorf("got code %s, want E101 (TableReassigned)", err.Code)
	}
}

func TestParseMixedArrayIsError(t *testing.T) {
	l := lexer.New("bad = [1, \"two\"]\n", "")
	_, err := Parse(l)
	if err == nil {
		t.Fatal("mixed-type array should be an error")
	}
	if err.Code != "E104" {
		t.Errorf("got code %s, want E104 (MixedList)", err.Code)
	}
}

func TestParseArrayOfTablesReopensLastEntry(t *testing.T) {
	doc := parseOK(t, "[[fruit]]\nname = \"apple\"\n[fruit.physical]\ncolor = \"red\"\n")
	fruit, _ := doc.Get("fruit")
	entry := fruit.Index(0)
	physical, ok := entry.Get("physical")
	if !ok {
		t.Fatal("expected fruit[0].physical to exist")
	}
	color, _ := physical.Get("color")
	if color.String() != "red" {
		t.Errorf("color = %q, want red", color.String())
	}
}

func TestParsePushOntoScalarArrayIsError(t *testing.T) {
	l := lexer.New("x = [1, 2, 3]\n[[x]]\ny = 1\n", "")
	_, err := Parse(l)
	if err == nil {
		t.Fatal("appending a table to an existing scalar array should be an error")
	}
	if err.Code != "E104" {
		t.Errorf("got code %s, want E104 (MixedList)", err.Code)
	}
}

func TestParsePushOntoDeclaredEmptyArrayIsError(t *testing.T) {
	l := lexer.New("x = []\n[[x]]\ny = 1\n", "")
	_, err := Parse(l)
	if err == nil {
		t.Fatal("appending a table to an inline-array-declared empty list should be an error")
	}
	if err.Code != "E104" {
		t.Errorf("got code %s, want E104 (MixedList)", err.Code)
	}
}

func TestParseRepeatedArrayOfTablesHeaderStillWorks(t *testing.T) {
	doc := parseOK(t, "[[x]]\ny = 1\n[[x]]\ny = 2\n[[x]]\ny = 3\n")
	x, _ := doc.Get("x")
	if x.Len() != 3 {
		t.Fatalf("x.Len() = %d, want 3", x.Len())
	}
}

func TestParseEmptyDocument(t *testing.T) {
	doc := parseOK(t, "")
	if doc.Len() != 0 {
		t.Errorf("empty document should have no top-level keys, got %d", doc.Len())
	}
}

func TestParseCommentsAreIgnored(t *testing.T) {
	doc := parseOK(t, "# comment\ntitle = \"x\" # trailing comment\n")
	n, ok := doc.Get("title")
	if !ok || n.String() != "x" {
		t.Fatalf("title = %v, %v", n, ok)
	}
}
