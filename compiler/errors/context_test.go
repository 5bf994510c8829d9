package errors

import (
	"os"
	"path/filepath"
	"testing"
)

func TestEnrichErrorFromFileReadsSourceAndHighlightsLine(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.toml")
	src := "title = \"ok\"\nname = 'unterminated\n"
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}

	e := New("lexer", KindUnclosedSingleQuote, "", SourceLocation{File: path, Line: 2, Column: 8})
	enriched := EnrichErrorFromFile(e)

	if len(enriched.Context.SourceLines) != 3 {
		t.Fatalf("SourceLines = %v, want both lines of the document plus the empty line after its trailing newline", enriched.Context.SourceLines)
	}
	if enriched.Context.SourceLines[enriched.Context.Highlight.Line] != "name = 'unterminated" {
		t.Errorf("highlighted line = %q", enriched.Context.SourceLines[enriched.Context.Highlight.Line])
	}
}

func TestEnrichErrorFromFileMissingFileReturnsErrUnchanged(t *testing.T) {
	e := New("lexer", KindUnclosedSingleQuote, "", SourceLocation{File: "/no/such/file.toml", Line: 1, Column: 1})
	got := EnrichErrorFromFile(e)

	if len(got.Context.SourceLines) != 0 {
		t.Errorf("expected no context to be attached when the file can't be read, got %v", got.Context.SourceLines)
	}
}
