package lexer

import "fmt"

// Type identifies the class of token produced by the lexer.
type Type uint8

const (
	Identifier Type = iota
	Integer
	Decimal
	Character
	String
	Operator
)

var typeNames = [...]string{
	Identifier: "IDENTIFIER",
	Integer:    "INTEGER",
	Decimal:    "DECIMAL",
	Character:  "CHARACTER",
	String:     "STRING",
	Operator:   "OPERATOR",
}

func (t Type) String() string {
	if int(t) < len(typeNames) {
		return typeNames[t]
	}
	return fmt.Sprintf("Type(%d)", uint8(t))
}

// MarshalText makes token types render as their names in JSON output.
func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// Token is one lexical unit pointing back to the source. Literal is the
// exact substring consumed, including the surrounding quotes for CHARACTER
// and STRING tokens, and Index is the 0-based offset of its first character.
type Token struct {
	Type    Type   `json:"type"`
	Literal string `json:"literal"`
	Index   int    `json:"index"`
}

func (t Token) String() string {
	return fmt.Sprintf("%s %q @%d", t.Type, t.Literal, t.Index)
}
