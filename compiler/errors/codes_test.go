package errors

import "testing"

func TestKindCodeRoundTrip(t *testing.T) {
	cases := []struct {
		kind Kind
		code string
	}{
		{KindEncodingError, "E001"},
		{KindUnclosedDoubleQuote, "E002"},
		{KindParseError, "E100"},
		{KindTableReassigned, "E101"},
		{KindMixedList, "E104"},
		{KindInternalError, "E200"},
	}
	for _, c := range cases {
		if got := c.kind.Code(); got != c.code {
			t.Errorf("%s.Code() = %s, want %s", c.kind, got, c.code)
		}
	}
}

func TestGetPhaseForCode(t *testing.T) {
	if GetPhaseForCode("E003") != "lexer" {
		t.Error("E003 should map to lexer")
	}
	if GetPhaseForCode("E101") != "parser" {
		t.Error("E101 should map to parser")
	}
	if GetPhaseForCode("E200") != "internal" {
		t.Error("E200 should map to internal")
	}
	if GetPhaseForCode("bogus") != "unknown" {
		t.Error("an unrecognized code should map to unknown")
	}
}

func TestNewFillsDefaultMessage(t *testing.T) {
	e := New("lexer", KindInvalidInt, "", SourceLocation{File: "x.toml", Line: 1, Column: 1})
	if e.Message != GetErrorMessage(ErrInvalidInt) {
		t.Errorf("message = %q, want the default for %s", e.Message, ErrInvalidInt)
	}
	if e.Severity != Fatal {
		t.Error("New should produce a Fatal severity error")
	}
}

func TestNewRespectsOverrideMessage(t *testing.T) {
	e := New("parser", KindParseError, "custom message", SourceLocation{})
	if e.Message != "custom message" {
		t.Errorf("message = %q, want custom message", e.Message)
	}
}
