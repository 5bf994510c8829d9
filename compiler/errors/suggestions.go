package errors

import "strings"

// suggestFix generates an auto-fix suggestion based on an error's
// code, the way the reference compiler's suggestions.go dispatches on
// the same Code string. Most TOML mistakes are mechanical enough
// (an unclosed quote, a misplaced underscore, a leading zero) that a
// concrete before/after snippet is possible without any further
// analysis; a handful of kinds only support a generic pointer.
func suggestFix(err CompilerError) *FixSuggestion {
	switch err.Code {
	case ErrUnclosedDoubleQuote:
		return suggestCloseQuote(err, `"`)
	case ErrUnclosedSingleQuote:
		return suggestCloseQuote(err, `'`)
	case ErrUnclosedTripleDoubleQuote:
		return suggestCloseQuote(err, `"""`)
	case ErrUnclosedTripleSingleQuote:
		return suggestCloseQuote(err, `'''`)
	case ErrInvalidEscape:
		return suggestValidEscape()
	case ErrInvalidUnderscore:
		return suggestUnderscorePlacement(err)
	case ErrInvalidInt, ErrInvalidDouble:
		return suggestLeadingZero(err)
	case ErrInvalidDate:
		return suggestDateFormat()
	case ErrTableReassigned:
		return suggestRenameKey(err, "table")
	case ErrValueReassigned:
		return suggestRenameKey(err, "key")
	case ErrListReassigned:
		return suggestArrayOfTablesMismatch(err)
	case ErrMixedList:
		return suggestHomogeneousList()
	case ErrMisplacedIdentifier:
		return suggestQuoteBareValue(err)
	default:
		return nil
	}
}

func errorLine(err CompilerError) (string, bool) {
	if len(err.Context.SourceLines) == 0 || err.Context.Highlight.Line >= len(err.Context.SourceLines) {
		return "", false
	}
	return err.Context.SourceLines[err.Context.Highlight.Line], true
}

// suggestCloseQuote proposes appending the missing closing delimiter
// to the offending line.
func suggestCloseQuote(err CompilerError, quote string) *FixSuggestion {
	line, ok := errorLine(err)
	if !ok {
		return &FixSuggestion{
			Description: "add the missing closing " + quote,
			Confidence:  0.6,
		}
	}
	trimmed := strings.TrimRight(line, " \t")
	return &FixSuggestion{
		Description: "add the missing closing " + quote,
		OldCode:     trimmed,
		NewCode:     trimmed + quote,
		Confidence:  0.85,
	}
}

func suggestValidEscape() *FixSuggestion {
	return &FixSuggestion{
		Description: "use one of the valid escapes: \\b \\t \\n \\f \\r \\\" \\\\ \\uXXXX \\UXXXXXXXX",
		Confidence:  0.8,
	}
}

// suggestUnderscorePlacement handles the common typo of a leading,
// trailing, or doubled digit separator.
func suggestUnderscorePlacement(err CompilerError) *FixSuggestion {
	line, ok := errorLine(err)
	if !ok {
		return &FixSuggestion{
			Description: "underscores must sit between two digits, e.g. 1_000_000",
			Confidence:  0.6,
		}
	}
	fixed := strings.ReplaceAll(strings.ReplaceAll(line, "__", "_"), "_", "")
	return &FixSuggestion{
		Description: "underscores must sit between two digits, e.g. 1_000_000",
		OldCode:     strings.TrimSpace(line),
		NewCode:     strings.TrimSpace(fixed),
		Confidence:  0.5,
	}
}

// suggestLeadingZero covers the other common numeric-literal mistake:
// a magnitude padded with a leading zero, e.g. 007 or 01.5.
func suggestLeadingZero(err CompilerError) *FixSuggestion {
	line, ok := errorLine(err)
	if !ok {
		return &FixSuggestion{
			Description: "leading zeros are not allowed on a multi-digit magnitude",
			Confidence:  0.6,
		}
	}
	trimmed := strings.TrimSpace(line)
	return &FixSuggestion{
		Description: "leading zeros are not allowed on a multi-digit magnitude",
		OldCode:     trimmed,
		Confidence:  0.55,
	}
}

func suggestDateFormat() *FixSuggestion {
	return &FixSuggestion{
		Description: "dates follow RFC 3339: YYYY-MM-DD, optionally with Thh:mm:ss and a Z or ±hh:mm offset",
		NewCode:     "1979-05-27T07:32:00Z",
		Confidence:  0.5,
	}
}

// suggestRenameKey applies to both TableReassigned and
// ValueReassigned: the fix is always to rename one of the two
// colliding keys.
func suggestRenameKey(err CompilerError, what string) *FixSuggestion {
	return &FixSuggestion{
		Description: "rename one of the colliding " + what + " names, or remove the duplicate declaration",
		Confidence:  0.6,
	}
}

func suggestArrayOfTablesMismatch(err CompilerError) *FixSuggestion {
	return &FixSuggestion{
		Description: "a [[name]] header requires 'name' to already be an array of tables, not a scalar array or a table",
		Confidence:  0.6,
	}
}

func suggestHomogeneousList() *FixSuggestion {
	return &FixSuggestion{
		Description: "every element of an array must share one type; split mixed values into separate keys or tables",
		Confidence:  0.6,
	}
}

// suggestQuoteBareValue handles the most common MisplacedIdentifier
// cause: a bare word in value position that was meant to be a string.
func suggestQuoteBareValue(err CompilerError) *FixSuggestion {
	line, ok := errorLine(err)
	if !ok {
		return &FixSuggestion{
			Description: "quote the value, or use 'true'/'false' if a boolean was intended",
			Confidence:  0.5,
		}
	}
	return &FixSuggestion{
		Description: "quote the value, or use 'true'/'false' if a boolean was intended",
		OldCode:     strings.TrimSpace(line),
		Confidence:  0.5,
	}
}
