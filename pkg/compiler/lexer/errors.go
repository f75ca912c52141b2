package lexer

import "fmt"

// ErrorKind classifies the lexical rule a piece of input violated.
type ErrorKind uint8

const (
	InvalidCharacter ErrorKind = iota
	LeadingZero
	TrailingDecimalPoint
	InvalidCharacterLiteral
	UnterminatedCharacter
	InvalidString
	InvalidEscape
	InvalidEscapeTarget
)

var errorMessages = [...]string{
	InvalidCharacter:        "invalid character",
	LeadingZero:             "number has a leading zero",
	TrailingDecimalPoint:    "number ends in a decimal point",
	InvalidCharacterLiteral: "invalid character literal",
	UnterminatedCharacter:   "character literal missing closing quote",
	InvalidString:           "invalid or unterminated string literal",
	InvalidEscape:           "expected a backslash escape",
	InvalidEscapeTarget:     "invalid escape target",
}

func (k ErrorKind) String() string {
	if int(k) < len(errorMessages) {
		return errorMessages[k]
	}
	return fmt.Sprintf("ErrorKind(%d)", uint8(k))
}

// Error is a lexical error at an absolute byte index into the source.
// Index points at the offending character, not the start of the token.
type Error struct {
	Kind  ErrorKind
	Index int
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s at index %d", e.Kind, e.Index)
}
