package lexer

import (
	"testing"
	"time"
)

func scanAllOK(t *testing.T, src string) []Token {
	t.Helper()
	l := New(src, "")
	toks, err := l.ScanAll()
	if err != nil {
		t.Fatalf("ScanAll(%q) returned error: %v", src, err)
	}
	return toks
}

func TestScanPunctuation(t *testing.T) {
	toks := scanAllOK(t, "=,.:{}[]")
	want := []TokenType{
		TOKEN_EQUALS, TOKEN_COMMA, TOKEN_DOT, TOKEN_COLON,
		TOKEN_BRACE_OPEN, TOKEN_BRACE_CLOSE,
		TOKEN_BRACKET_OPEN, TOKEN_BRACKET_CLOSE, TOKEN_EOF,
	}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(toks), len(want), toks)
	}
	for i, tt := range want {
		if toks[i].Type != tt {
			t.Errorf("token %d: got %s, want %s", i, toks[i].Type, tt)
		}
	}
}

func TestScanStringLiteral(t *testing.T) {
	toks := scanAllOK(t, `"hello\tworld"`)
	if toks[0].Type != TOKEN_STRING {
		t.Fatalf("got %s, want STRING", toks[0].Type)
	}
	if toks[0].Literal.(string) != "hello\tworld" {
		t.Errorf("got %q", toks[0].Literal)
	}
}

func TestScanSingleQuotedHasNoEscapes(t *testing.T) {
	toks := scanAllOK(t, `'hello\nworld'`)
	if toks[0].Literal.(string) != `hello\nworld` {
		t.Errorf("got %q, want literal backslash-n preserved", toks[0].Literal)
	}
}

func TestScanTripleDoubleQuotedLineContinuation(t *testing.T) {
	toks := scanAllOK(t, "\"\"\"line one \\\n   line two\"\"\"")
	if toks[0].Literal.(string) != "line one line two" {
		t.Errorf("got %q", toks[0].Literal)
	}
}

func TestScanUnclosedDoubleQuote(t *testing.T) {
	l := New(`"unterminated`, "")
	_, err := l.ScanAll()
	if err == nil {
		t.Fatal("expected an error for an unterminated string")
	}
	if err.Code != "E002" {
		t.Errorf("got code %s, want E002", err.Code)
	}
}

func TestScanInteger(t *testing.T) {
	toks := scanAllOK(t, "-42")
	if toks[0].Type != TOKEN_INT {
		t.Fatalf("got %s, want INT", toks[0].Type)
	}
	if toks[0].Literal.(int64) != -42 {
		t.Errorf("got %v", toks[0].Literal)
	}
}

func TestScanIntegerWithUnderscores(t *testing.T) {
	toks := scanAllOK(t, "1_000_000")
	if toks[0].Literal.(int64) != 1000000 {
		t.Errorf("got %v", toks[0].Literal)
	}
}

func TestScanMisplacedUnderscoreIsError(t *testing.T) {
	l := New("1__0", "")
	_, err := l.ScanAll()
	if err == nil {
		t.Fatal("expected an error for a doubled digit separator")
	}
	if err.Code != "E010" {
		t.Errorf("got code %s, want E010", err.Code)
	}
}

func TestScanFloat(t *testing.T) {
	toks := scanAllOK(t, "3.1415")
	if toks[0].Type != TOKEN_DOUBLE {
		t.Fatalf("got %s, want DOUBLE", toks[0].Type)
	}
	if toks[0].Literal.(float64) != 3.1415 {
		t.Errorf("got %v", toks[0].Literal)
	}
}

func TestScanFloatWithExponent(t *testing.T) {
	toks := scanAllOK(t, "5e+22")
	if toks[0].Type != TOKEN_DOUBLE {
		t.Fatalf("got %s, want DOUBLE", toks[0].Type)
	}
}

func TestScanDate(t *testing.T) {
	toks := scanAllOK(t, "1979-05-27T07:32:00Z")
	if toks[0].Type != TOKEN_DATE {
		t.Fatalf("got %s, want DATE", toks[0].Type)
	}
	got := toks[0].Literal.(time.Time)
	want := time.Date(1979, 5, 27, 7, 32, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestScanDateOnly(t *testing.T) {
	toks := scanAllOK(t, "1979-05-27")
	if toks[0].Type != TOKEN_DATE {
		t.Fatalf("got %s, want DATE", toks[0].Type)
	}
}

func TestScanNegativeNumberNotConfusedWithDate(t *testing.T) {
	toks := scanAllOK(t, "-1979")
	if toks[0].Type != TOKEN_INT {
		t.Fatalf("got %s, want INT", toks[0].Type)
	}
}

func TestScanBareKeyAsIdentifier(t *testing.T) {
	toks := scanAllOK(t, "server-name")
	if toks[0].Type != TOKEN_IDENTIFIER {
		t.Fatalf("got %s, want IDENTIFIER", toks[0].Type)
	}
	if toks[0].Lexeme != "server-name" {
		t.Errorf("got %q", toks[0].Lexeme)
	}
}

func TestScanBooleanLexemesAreIdentifiers(t *testing.T) {
	toks := scanAllOK(t, "true false")
	for _, i := range []int{0, 1} {
		if toks[i].Type != TOKEN_IDENTIFIER {
			t.Errorf("token %d: got %s, want IDENTIFIER", i, toks[i].Type)
		}
	}
}

func TestScanCommentIsDiscardedByDefault(t *testing.T) {
	toks := scanAllOK(t, "# a comment\n")
	if toks[0].Type != TOKEN_NEWLINE {
		t.Fatalf("got %s, want NEWLINE (comment should be discarded)", toks[0].Type)
	}
}

func TestScanCommentPreserved(t *testing.T) {
	l := New("# a comment\n", "")
	l.SetPreserveComments(true)
	toks, err := l.ScanAll()
	if err != nil {
		t.Fatal(err)
	}
	if toks[0].Type != TOKEN_COMMENT {
		t.Fatalf("got %s, want COMMENT", toks[0].Type)
	}
}

func TestScanLeadingZeroIntIsError(t *testing.T) {
	l := New("0123", "")
	_, err := l.ScanAll()
	if err == nil {
		t.Fatal("expected an error for a leading-zero integer")
	}
	if err.Code != "E007" {
		t.Errorf("got code %s, want E007", err.Code)
	}
}

func TestScanLeadingZeroDoubleIsError(t *testing.T) {
	l := New("007.5", "")
	_, err := l.ScanAll()
	if err == nil {
		t.Fatal("expected an error for a leading-zero float")
	}
	if err.Code != "E008" {
		t.Errorf("got code %s, want E008", err.Code)
	}
}

func TestScanSingleDigitZeroIsNotLeadingZero(t *testing.T) {
	toks := scanAllOK(t, "0")
	if toks[0].Type != TOKEN_INT || toks[0].Literal.(int64) != 0 {
		t.Errorf("got %v %v, want INT 0", toks[0].Type, toks[0].Literal)
	}
}

func TestScanZeroPointFiveIsNotLeadingZero(t *testing.T) {
	toks := scanAllOK(t, "0.5")
	if toks[0].Type != TOKEN_DOUBLE || toks[0].Literal.(float64) != 0.5 {
		t.Errorf("got %v %v, want DOUBLE 0.5", toks[0].Type, toks[0].Literal)
	}
}

func TestDecodeAcceptsValidUTF8(t *testing.T) {
	src, err := Decode([]byte("title = \"caf\xc3\xa9\"\n"), "x.toml")
	if err != nil {
		t.Fatalf("Decode returned an error for valid UTF-8: %v", err)
	}
	if src != "title = \"café\"\n" {
		t.Errorf("got %q", src)
	}
}

func TestDecodeRejectsIllFormedBytes(t *testing.T) {
	_, err := Decode([]byte("title = \"\xff\xfe\"\n"), "x.toml")
	if err == nil {
		t.Fatal("expected an error for an ill-formed byte sequence")
	}
	if err.Code != "E001" {
		t.Errorf("got code %s, want E001", err.Code)
	}
}

func TestScanNewlineTracksLineNumber(t *testing.T) {
	toks := scanAllOK(t, "a\nb")
	if toks[0].Line != 1 {
		t.Errorf("first token line = %d, want 1", toks[0].Line)
	}
	// toks[1] is NEWLINE, toks[2] is "b"
	if toks[2].Line != 2 {
		t.Errorf("third token line = %d, want 2", toks[2].Line)
	}
}
