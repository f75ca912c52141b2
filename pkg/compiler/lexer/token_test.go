package lexer_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zlannon/COP-4020-Compiler/pkg/compiler/lexer"
)

func TestTypeString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		typ  lexer.Type
		want string
	}{
		{lexer.Identifier, "IDENTIFIER"},
		{lexer.Integer, "INTEGER"},
		{lexer.Decimal, "DECIMAL"},
		{lexer.Character, "CHARACTER"},
		{lexer.String, "STRING"},
		{lexer.Operator, "OPERATOR"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.typ.String())
	}
}

func TestTokenJSON(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(lexer.Token{Type: lexer.Integer, Literal: "42", Index: 7})
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"INTEGER","literal":"42","index":7}`, string(data))
}

func TestTokenString(t *testing.T) {
	t.Parallel()

	tok := lexer.Token{Type: lexer.Identifier, Literal: "let", Index: 0}
	assert.Equal(t, `IDENTIFIER "let" @0`, tok.String())
}
