package lexer

import (
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/conduit-lang/toml2/compiler/errors"
)

// Lexer tokenizes a TOML document.
type Lexer struct {
	source           []rune
	start            int
	current          int
	line             int
	column           int
	startColumn      int
	startLine        int
	file             string
	preserveComments bool
}

// New creates a new Lexer for the given source text. file is used in
// error/position reporting only; pass "" for in-memory input. Callers
// fed raw bytes rather than an already-validated string should decode
// with Decode first: a plain Go string conversion silently replaces
// ill-formed byte sequences with U+FFFD instead of reporting them.
func New(source, file string) *Lexer {
	return &Lexer{
		source:      []rune(source),
		line:        1,
		column:      1,
		startColumn: 1,
		startLine:   1,
		file:        file,
	}
}

// Decode validates that data is well-formed UTF-8, decoding
// rune-by-rune and tracking line/column exactly as the lexer itself
// does, so that ill-formed input fails with an EncodingError pointing
// at the offending byte rather than being silently repaired with
// U+FFFD by a bare string conversion.
func Decode(data []byte, file string) (string, *errors.CompilerError) {
	line, col := 1, 1
	for i := 0; i < len(data); {
		r, size := utf8.DecodeRune(data[i:])
		if r == utf8.RuneError && size <= 1 {
			e := errors.New("lexer", errors.KindEncodingError, "invalid UTF-8 byte sequence", errors.SourceLocation{
				File:   file,
				Line:   line,
				Column: col,
				Length: 1,
			})
			return "", &e
		}
		if r == '\n' {
			line++
			col = 1
		} else {
			col++
		}
		i += size
	}
	return string(data), nil
}

// SetPreserveComments controls whether comments are surfaced as
// COMMENT tokens (useful for tooling that round-trips layout) rather
// than silently discarded.
func (l *Lexer) SetPreserveComments(preserve bool) {
	l.preserveComments = preserve
}

// ScanAll drains the lexer to completion, used by tests and by any
// caller that wants the whole token stream instead of driving it one
// token at a time. Stops at the first error, per the terminal error
// model the grammar engine also follows.
func (l *Lexer) ScanAll() ([]Token, *errors.CompilerError) {
	tokens := make([]Token, 0, len(l.source)/4)
	for {
		tok, err := l.Next()
		if err != nil {
			return tokens, err
		}
		tokens = append(tokens, tok)
		if tok.Type == TOKEN_EOF {
			return tokens, nil
		}
	}
}

// Next scans and returns the next significant token. Whitespace is
// always skipped; comments are skipped unless SetPreserveComments(true)
// was called, in which case they are returned as TOKEN_COMMENT.
func (l *Lexer) Next() (Token, *errors.CompilerError) {
	for {
		l.skipInsignificantWhitespace()

		if l.isAtEnd() {
			return l.makeToken(TOKEN_EOF, nil), nil
		}

		l.start = l.current
		l.startColumn = l.column
		l.startLine = l.line

		r := l.advance()

		switch r {
		case '\n':
			tok := l.makeToken(TOKEN_NEWLINE, nil)
			l.line++
			l.column = 1
			return tok, nil
		case '=':
			return l.makeToken(TOKEN_EQUALS, nil), nil
		case ',':
			return l.makeToken(TOKEN_COMMA, nil), nil
		case ':':
			return l.makeToken(TOKEN_COLON, nil), nil
		case '.':
			return l.makeToken(TOKEN_DOT, nil), nil
		case '{':
			return l.makeToken(TOKEN_BRACE_OPEN, nil), nil
		case '}':
			return l.makeToken(TOKEN_BRACE_CLOSE, nil), nil
		case '[':
			return l.makeToken(TOKEN_BRACKET_OPEN, nil), nil
		case ']':
			return l.makeToken(TOKEN_BRACKET_CLOSE, nil), nil
		case '#':
			comment := l.scanComment()
			if l.preserveComments {
				return comment, nil
			}
			continue
		case '\'':
			return l.scanSingleQuoted()
		case '"':
			return l.scanDoubleQuoted()
		default:
			if isDigit(r) || r == '+' || r == '-' {
				return l.scanNumberOrDate()
			}
			if isBareKeyStart(r) {
				return l.scanIdentifier(), nil
			}
			return Token{}, l.err(errors.KindEncodingError, "unexpected character "+strconv.QuoteRune(r))
		}
	}
}

// skipInsignificantWhitespace consumes spaces, tabs and carriage
// returns. Newlines are significant (terminate a key/value line) and
// are returned as tokens, not skipped here.
func (l *Lexer) skipInsignificantWhitespace() {
	for !l.isAtEnd() {
		switch l.peek() {
		case ' ', '\t', '\r':
			l.advance()
		default:
			return
		}
	}
}

func (l *Lexer) scanComment() Token {
	for !l.isAtEnd() && l.peek() != '\n' {
		l.advance()
	}
	lexeme := string(l.source[l.start:l.current])
	return l.makeToken(TOKEN_COMMENT, lexeme)
}

// scanSingleQuoted handles both 'literal' and '''triple literal'''
// strings: no escape processing in either form.
func (l *Lexer) scanSingleQuoted() (Token, *errors.CompilerError) {
	if l.peek() == '\'' && l.peekNext() == '\'' {
		return l.scanTripleSingleQuoted()
	}

	startLine, startCol := l.startLine, l.startColumn
	var b strings.Builder
	for {
		if l.isAtEnd() || l.peek() == '\n' {
			return Token{}, l.errAt(errors.KindUnclosedSingleQuote, "", startLine, startCol)
		}
		if l.peek() == '\'' {
			l.advance()
			return l.makeToken(TOKEN_STRING, b.String()), nil
		}
		b.WriteRune(l.advance())
	}
}

func (l *Lexer) scanTripleSingleQuoted() (Token, *errors.CompilerError) {
	startLine, startCol := l.startLine, l.startColumn
	l.advance() // second '
	l.advance() // third '

	if l.peek() == '\n' {
		l.advance()
		l.line++
		l.column = 1
	}

	var b strings.Builder
	for {
		if l.isAtEnd() {
			return Token{}, l.errAt(errors.KindUnclosedTripleSingleQuote, "", startLine, startCol)
		}
		if l.peek() == '\'' && l.peekAt(1) == '\'' && l.peekAt(2) == '\'' {
			l.advance()
			l.advance()
			l.advance()
			return l.makeToken(TOKEN_STRING, b.String()), nil
		}
		if l.peek() == '\n' {
			l.line++
			l.column = 0
		}
		b.WriteRune(l.advance())
	}
}

// scanDoubleQuoted handles both "double" and """triple double"""
// strings: backslash escapes are processed in both forms, and the
// triple form additionally elides a backslash-newline line
// continuation (including the leading whitespace of the next line).
func (l *Lexer) scanDoubleQuoted() (Token, *errors.CompilerError) {
	if l.peek() == '"' && l.peekNext() == '"' {
		return l.scanTripleDoubleQuoted()
	}

	startLine, startCol := l.startLine, l.startColumn
	var b strings.Builder
	for {
		if l.isAtEnd() || l.peek() == '\n' {
			return Token{}, l.errAt(errors.KindUnclosedDoubleQuote, "", startLine, startCol)
		}
		if l.peek() == '"' {
			l.advance()
			return l.makeToken(TOKEN_STRING, b.String()), nil
		}
		if l.peek() == '\\' {
			l.advance()
			if err := l.decodeEscape(&b); err != nil {
				return Token{}, err
			}
			continue
		}
		b.WriteRune(l.advance())
	}
}

func (l *Lexer) scanTripleDoubleQuoted() (Token, *errors.CompilerError) {
	startLine, startCol := l.startLine, l.startColumn
	l.advance() // second "
	l.advance() // third "

	if l.peek() == '\n' {
		l.advance()
		l.line++
		l.column = 1
	}

	var b strings.Builder
	for {
		if l.isAtEnd() {
			return Token{}, l.errAt(errors.KindUnclosedTripleDoubleQuote, "", startLine, startCol)
		}
		if l.peek() == '"' && l.peekAt(1) == '"' && l.peekAt(2) == '"' {
			l.advance()
			l.advance()
			l.advance()
			return l.makeToken(TOKEN_STRING, b.String()), nil
		}
		if l.peek() == '\\' && l.peekNext() == '\n' {
			l.advance() // backslash
			l.advance() // newline
			l.line++
			l.column = 1
			for !l.isAtEnd() && (l.peek() == ' ' || l.peek() == '\t' || l.peek() == '\n') {
				if l.peek() == '\n' {
					l.line++
					l.column = 0
				}
				l.advance()
			}
			continue
		}
		if l.peek() == '\\' {
			l.advance()
			if err := l.decodeEscape(&b); err != nil {
				return Token{}, err
			}
			continue
		}
		if l.peek() == '\n' {
			l.line++
			l.column = 0
		}
		b.WriteRune(l.advance())
	}
}

func (l *Lexer) decodeEscape(b *strings.Builder) *errors.CompilerError {
	if l.isAtEnd() {
		return l.err(errors.KindInvalidEscape, "dangling escape at end of input")
	}
	r := l.advance()
	switch r {
	case 'b':
		b.WriteRune('\b')
	case 't':
		b.WriteRune('\t')
	case 'n':
		b.WriteRune('\n')
	case 'f':
		b.WriteRune('\f')
	case 'r':
		b.WriteRune('\r')
	case '\\':
		b.WriteRune('\\')
	case '"':
		b.WriteRune('"')
	case 'u':
		return l.decodeUnicodeEscape(b, 4)
	case 'U':
		return l.decodeUnicodeEscape(b, 8)
	default:
		return l.err(errors.KindInvalidEscape, "invalid escape sequence \\"+string(r))
	}
	return nil
}

func (l *Lexer) decodeUnicodeEscape(b *strings.Builder, digits int) *errors.CompilerError {
	start := l.current
	for i := 0; i < digits; i++ {
		if l.isAtEnd() || !isHexDigit(l.peek()) {
			return l.err(errors.KindInvalidEscape, "incomplete unicode escape")
		}
		l.advance()
	}
	hex := string(l.source[start:l.current])
	cp, err := strconv.ParseUint(hex, 16, 32)
	if err != nil || !utf8.ValidRune(rune(cp)) {
		return l.err(errors.KindInvalidEscape, "invalid unicode escape \\u"+hex)
	}
	b.WriteRune(rune(cp))
	return nil
}

// scanNumberOrDate performs the forward-scan classification between
// INT, DOUBLE and DATE described for bare values starting with a
// digit or a leading sign.
func (l *Lexer) scanNumberOrDate() (Token, *errors.CompilerError) {
	if l.looksLikeDate() {
		return l.scanDate()
	}

	hasDot, hasExp := false, false
	for !l.isAtEnd() {
		c := l.peek()
		switch {
		case isDigit(c) || c == '_':
			l.advance()
		case c == '.' && !hasDot && !hasExp && isDigit(l.peekNext()):
			hasDot = true
			l.advance()
		case (c == 'e' || c == 'E') && !hasExp:
			hasExp = true
			l.advance()
			if l.peek() == '+' || l.peek() == '-' {
				l.advance()
			}
		default:
			goto done
		}
	}
done:
	lexeme := string(l.source[l.start:l.current])
	if err := checkUnderscorePlacement(lexeme); err != nil {
		return Token{}, l.err(errors.KindInvalidUnderscore, err.Error())
	}
	clean := strings.ReplaceAll(lexeme, "_", "")

	if hasDot || hasExp {
		if hasLeadingZero(clean) {
			return Token{}, l.errAtStart(errors.KindInvalidDouble, "leading zero in floating point literal "+lexeme)
		}
		v, perr := strconv.ParseFloat(clean, 64)
		if perr != nil {
			return Token{}, l.errAtStart(errors.KindInvalidDouble, "invalid floating point literal "+lexeme)
		}
		return l.makeToken(TOKEN_DOUBLE, v), nil
	}

	if hasLeadingZero(clean) {
		return Token{}, l.errAtStart(errors.KindInvalidInt, "leading zero in integer literal "+lexeme)
	}
	v, perr := strconv.ParseInt(clean, 10, 64)
	if perr != nil {
		return Token{}, l.errAtStart(errors.KindInvalidInt, "invalid integer literal "+lexeme)
	}
	return l.makeToken(TOKEN_INT, v), nil
}

// hasLeadingZero reports whether s's integer magnitude (the digits
// before any '.' or exponent, and after an optional sign) starts with
// '0' but has more than one digit, e.g. "0123" or "007.5". A bare "0"
// or "0.5" is fine; only a padded multi-digit magnitude is rejected.
func hasLeadingZero(s string) bool {
	if len(s) > 0 && (s[0] == '+' || s[0] == '-') {
		s = s[1:]
	}
	end := len(s)
	for i := 0; i < len(s); i++ {
		if s[i] == '.' || s[i] == 'e' || s[i] == 'E' {
			end = i
			break
		}
	}
	return end > 1 && s[0] == '0'
}

// looksLikeDate scans ahead (without consuming) for the YYYY-MM-DD
// shape that distinguishes a date literal from a signed number.
func (l *Lexer) looksLikeDate() bool {
	i := l.current
	// the first character (a digit or a sign) was already consumed by
	// Next(), so the scan starts at i-1; a signed run is never a date.
	digitRun := func(from, n int) bool {
		for j := 0; j < n; j++ {
			if from+j >= len(l.source) || !isDigit(l.source[from+j]) {
				return false
			}
		}
		return true
	}
	if l.source[l.start] == '+' || l.source[l.start] == '-' {
		return false
	}
	return digitRun(i-1, 4) && i-1+4 < len(l.source) && l.source[i-1+4] == '-' &&
		digitRun(i-1+5, 2) && i-1+7 < len(l.source) && l.source[i-1+7] == '-' &&
		digitRun(i-1+8, 2)
}

func (l *Lexer) scanDate() (Token, *errors.CompilerError) {
	for l.current < l.start+10 {
		l.advance()
	}
	datePart := string(l.source[l.start:l.current]) // YYYY-MM-DD

	layout := "2006-01-02"
	value := datePart
	leap := false

	if l.peek() == 'T' || l.peek() == 't' || l.peek() == ' ' {
		sep := l.advance()
		timeStart := l.current
		for !l.isAtEnd() && (isDigit(l.peek()) || l.peek() == ':') {
			l.advance()
		}
		timePart := string(l.source[timeStart:l.current])
		// time.Parse rejects a seconds field of 60, so a leap second is
		// parsed as :59 and moved forward one second below.
		if strings.HasSuffix(timePart, ":60") {
			leap = true
			timePart = strings.TrimSuffix(timePart, "60") + "59"
		}
		layout += string(sep) + "15:04:05"
		value += string(sep) + timePart

		if l.peek() == '.' {
			l.advance()
			fracStart := l.current
			for !l.isAtEnd() && isDigit(l.peek()) {
				l.advance()
			}
			frac := string(l.source[fracStart:l.current])
			layout += "." + strings.Repeat("0", len(frac))
			value += "." + frac
		}

		if l.peek() == 'Z' || l.peek() == 'z' {
			l.advance()
			layout += "Z07:00"
			value += "Z"
		} else if l.peek() == '+' || l.peek() == '-' {
			offStart := l.current
			l.advance()
			for !l.isAtEnd() && (isDigit(l.peek()) || l.peek() == ':') {
				l.advance()
			}
			offset := string(l.source[offStart:l.current])
			layout += "Z07:00"
			value += offset
		}
	}

	t, perr := time.Parse(layout, value)
	if perr != nil {
		return Token{}, l.errAtStart(errors.KindInvalidDate, "invalid date-time literal "+value)
	}
	if leap {
		t = t.Add(time.Second)
	}
	return l.makeToken(TOKEN_DATE, t), nil
}

func (l *Lexer) scanIdentifier() Token {
	for !l.isAtEnd() && isBareKeyChar(l.peek()) {
		l.advance()
	}
	lexeme := string(l.source[l.start:l.current])
	return l.makeToken(TOKEN_IDENTIFIER, lexeme)
}

// checkUnderscorePlacement enforces that digit-separator underscores
// sit strictly between two digits.
func checkUnderscorePlacement(lexeme string) error {
	runes := []rune(lexeme)
	for i, r := range runes {
		if r != '_' {
			continue
		}
		if i == 0 || i == len(runes)-1 || !isDigit(runes[i-1]) || !isDigit(runes[i+1]) {
			return strconv.ErrSyntax
		}
	}
	return nil
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isHexDigit(r rune) bool {
	return isDigit(r) || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

func isBareKeyStart(r rune) bool {
	return (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') || r == '_' || r == '-'
}

func isBareKeyChar(r rune) bool {
	return isBareKeyStart(r) || isDigit(r)
}

func (l *Lexer) isAtEnd() bool {
	return l.current >= len(l.source)
}

func (l *Lexer) advance() rune {
	if l.isAtEnd() {
		return 0
	}
	r := l.source[l.current]
	l.current++
	l.column++
	return r
}

func (l *Lexer) peek() rune {
	if l.isAtEnd() {
		return 0
	}
	return l.source[l.current]
}

func (l *Lexer) peekNext() rune {
	return l.peekAt(1)
}

func (l *Lexer) peekAt(offset int) rune {
	if l.current+offset >= len(l.source) {
		return 0
	}
	return l.source[l.current+offset]
}

func (l *Lexer) makeToken(t TokenType, literal interface{}) Token {
	return Token{
		Type:    t,
		Lexeme:  string(l.source[l.start:l.current]),
		Literal: literal,
		Line:    l.startLine,
		Column:  l.startColumn,
		File:    l.file,
		Start:   l.start,
		End:     l.current,
	}
}

func (l *Lexer) err(kind errors.Kind, message string) *errors.CompilerError {
	return l.errAt(kind, message, l.line, l.column)
}

func (l *Lexer) errAtStart(kind errors.Kind, message string) *errors.CompilerError {
	return l.errAt(kind, message, l.startLine, l.startColumn)
}

func (l *Lexer) errAt(kind errors.Kind, message string, line, col int) *errors.CompilerError {
	e := errors.New("lexer", kind, message, errors.SourceLocation{
		File:   l.file,
		Line:   line,
		Column: col,
		Length: l.current - l.start,
	})
	return &e
}
