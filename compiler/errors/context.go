package errors

import (
	"os"
	"strings"
)

// EnrichError attaches the surrounding TOML source and, where one
// applies, a suggested fix to a diagnostic raised by the lexer or
// grammar engine. CLI commands call this (via EnrichErrorFromFile)
// right before rendering a parse failure, so Context and Suggestion
// are populated only at the point of display, not during parsing
// itself.
func EnrichError(err CompilerError, sourceContent string) CompilerError {
	err = err.WithContext(extractSourceContext(err.Location, sourceContent))

	if suggestion := suggestFix(err); suggestion != nil {
		err = err.WithSuggestion(*suggestion)
	}

	return err
}

// extractSourceContext pulls the 3 lines before the offending line,
// the line itself, and the 3 lines after, plus the column range to
// highlight on the offending line.
func extractSourceContext(location SourceLocation, sourceContent string) ErrorContext {
	lines := strings.Split(sourceContent, "\n")

	if location.Line < 1 || location.Line > len(lines) {
		return ErrorContext{}
	}

	errorLineIndex := location.Line - 1
	startLine := max(0, errorLineIndex-3)
	endLine := min(len(lines), errorLineIndex+4)

	contextLines := make([]string, 0, endLine-startLine)
	for i := startLine; i < endLine; i++ {
		contextLines = append(contextLines, lines[i])
	}

	errorLineInContext := errorLineIndex - startLine

	start := location.Column - 1
	end := start + location.Length
	if location.Length == 0 {
		end = start + 1
	}

	return ErrorContext{
		SourceLines: contextLines,
		Highlight: Highlight{
			Line:  errorLineInContext,
			Start: start,
			End:   end,
		},
	}
}

// ReadSourceFile reads a TOML document's contents for context
// extraction. Parsing itself reads the file separately (ParseFile);
// this is a second, diagnostics-only read so that a CompilerError
// value never needs to carry the whole source around.
func ReadSourceFile(filepath string) (string, error) {
	content, err := os.ReadFile(filepath)
	if err != nil {
		return "", err
	}
	return string(content), nil
}

// EnrichErrorFromFile re-reads err.Location.File and enriches err with
// it. If the file can no longer be read, err is returned unchanged
// rather than masking the parse failure with an I/O error.
func EnrichErrorFromFile(err CompilerError) CompilerError {
	content, readErr := ReadSourceFile(err.Location.File)
	if readErr != nil {
		return err
	}

	return EnrichError(err, content)
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
