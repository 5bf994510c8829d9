package errors

// Error code constants organized by phase.
// E0xx: decoder/lexer errors
// E1xx: grammar engine errors
// E2xx: internal/resource errors

const (
	// Decoder / lexer errors (E0xx)
	ErrEncodingError             = "E001"
	ErrUnclosedDoubleQuote       = "E002"
	ErrUnclosedSingleQuote       = "E003"
	ErrUnclosedTripleDoubleQuote = "E004"
	ErrUnclosedTripleSingleQuote = "E005"
	ErrInvalidEscape             = "E006"
	ErrInvalidInt                = "E007"
	ErrInvalidDouble             = "E008"
	ErrInvalidDate               = "E009"
	ErrInvalidUnderscore         = "E010"

	// Grammar engine errors (E1xx)
	ErrParseError          = "E100"
	ErrTableReassigned      = "E101"
	ErrValueReassigned      = "E102"
	ErrListReassigned       = "E103"
	ErrMixedList            = "E104"
	ErrMisplacedIdentifier  = "E105"

	// Internal / resource errors (E2xx)
	ErrInternalError = "E200"
	ErrOutOfMemory   = "E201"
)

// ErrorMessages maps error codes to their default messages.
var ErrorMessages = map[string]string{
	ErrEncodingError:             "invalid UTF-8 encoding",
	ErrUnclosedDoubleQuote:       "unclosed double-quoted string",
	ErrUnclosedSingleQuote:       "unclosed single-quoted string",
	ErrUnclosedTripleDoubleQuote: "unclosed triple double-quoted string",
	ErrUnclosedTripleSingleQuote: "unclosed triple single-quoted string",
	ErrInvalidEscape:             "invalid escape sequence",
	ErrInvalidInt:                "invalid integer literal",
	ErrInvalidDouble:             "invalid floating point literal",
	ErrInvalidDate:               "invalid date-time literal",
	ErrInvalidUnderscore:         "misplaced digit separator",

	ErrParseError:         "unexpected token",
	ErrTableReassigned:    "table already declared",
	ErrValueReassigned:    "value already assigned",
	ErrListReassigned:     "list already declared",
	ErrMixedList:          "list elements must share a single type",
	ErrMisplacedIdentifier: "identifier not valid in this position",

	ErrInternalError: "internal parser error",
	ErrOutOfMemory:   "out of memory",
}

// GetErrorMessage returns the default message for an error code.
func GetErrorMessage(code string) string {
	if msg, ok := ErrorMessages[code]; ok {
		return msg
	}
	return "unknown error"
}

// GetPhaseForCode returns the phase name for an error code.
func GetPhaseForCode(code string) string {
	if len(code) < 2 || code[0] != 'E' {
		return "unknown"
	}

	switch {
	case code >= "E001" && code <= "E099":
		return "lexer"
	case code >= "E100" && code <= "E199":
		return "parser"
	case code >= "E200" && code <= "E299":
		return "internal"
	default:
		return "unknown"
	}
}

// Kind names the TOML-specific error kinds in the shape the grammar
// engine and lexer raise them; Code() maps a Kind to its E-code.
type Kind string

const (
	KindEncodingError             Kind = "EncodingError"
	KindInternalError             Kind = "InternalError"
	KindOutOfMemory               Kind = "OutOfMemory"
	KindUnclosedDoubleQuote       Kind = "UnclosedDoubleQuote"
	KindUnclosedSingleQuote       Kind = "UnclosedSingleQuote"
	KindUnclosedTripleDoubleQuote Kind = "UnclosedTripleDoubleQuote"
	KindUnclosedTripleSingleQuote Kind = "UnclosedTripleSingleQuote"
	KindInvalidEscape             Kind = "InvalidEscape"
	KindInvalidInt                Kind = "InvalidInt"
	KindInvalidDouble             Kind = "InvalidDouble"
	KindInvalidDate               Kind = "InvalidDate"
	KindInvalidUnderscore         Kind = "InvalidUnderscore"
	KindTableReassigned           Kind = "TableReassigned"
	KindValueReassigned           Kind = "ValueReassigned"
	KindParseError                Kind = "ParseError"
	KindMisplacedIdentifier       Kind = "MisplacedIdentifier"
	KindListReassigned            Kind = "ListReassigned"
	KindMixedList                 Kind = "MixedList"
)

var kindCodes = map[Kind]string{
	KindEncodingError:             ErrEncodingError,
	KindInternalError:             ErrInternalError,
	KindOutOfMemory:               ErrOutOfMemory,
	KindUnclosedDoubleQuote:       ErrUnclosedDoubleQuote,
	KindUnclosedSingleQuote:       ErrUnclosedSingleQuote,
	KindUnclosedTripleDoubleQuote: ErrUnclosedTripleDoubleQuote,
	KindUnclosedTripleSingleQuote: ErrUnclosedTripleSingleQuote,
	KindInvalidEscape:             ErrInvalidEscape,
	KindInvalidInt:                ErrInvalidInt,
	KindInvalidDouble:             ErrInvalidDouble,
	KindInvalidDate:               ErrInvalidDate,
	KindInvalidUnderscore:         ErrInvalidUnderscore,
	KindTableReassigned:           ErrTableReassigned,
	KindValueReassigned:           ErrValueReassigned,
	KindParseError:                ErrParseError,
	KindMisplacedIdentifier:       ErrMisplacedIdentifier,
	KindListReassigned:            ErrListReassigned,
	KindMixedList:                 ErrMixedList,
}

// Code returns the E-code string for a Kind.
func (k Kind) Code() string {
	if c, ok := kindCodes[k]; ok {
		return c
	}
	return ErrInternalError
}

// New builds a CompilerError of the given Kind at the given position.
// phase is "lexer" or "parser"; message overrides the default kind
// message when non-empty.
func New(phase string, kind Kind, message string, loc SourceLocation) CompilerError {
	if message == "" {
		message = GetErrorMessage(kind.Code())
	}
	return NewCompilerError(phase, kind.Code(), message, loc, Fatal)
}
