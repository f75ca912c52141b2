package lexer_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/Zlannon/COP-4020-Compiler/pkg/compiler/lexer"
)

func FuzzLex(f *testing.F) {
	f.Add("let x = 1;")
	f.Add(`"a\nb" 'c' 1.5 -10 != == && ||`)
	f.Add("@name_-2 obj.field")
	f.Add(`'\''`)
	f.Add("01")
	f.Add(`"unterminated`)

	f.Fuzz(func(t *testing.T, input string) {
		tokens, err := lexer.Lex(input)
		if err != nil {
			var lexErr *lexer.Error
			if !errors.As(err, &lexErr) {
				t.Fatalf("non-lexical error: %v", err)
			}
			if lexErr.Index < 0 || lexErr.Index > len(input) {
				t.Fatalf("error index %d out of range for input of length %d", lexErr.Index, len(input))
			}
			return
		}

		// Every literal must be the non-empty substring of the input that
		// starts at its index, and tokens must appear in source order.
		prevEnd := 0
		for _, tok := range tokens {
			if tok.Literal == "" {
				t.Fatalf("empty literal in %v", tok)
			}
			end := tok.Index + len(tok.Literal)
			if tok.Index < prevEnd || end > len(input) {
				t.Fatalf("token %v out of order or out of bounds", tok)
			}
			if input[tok.Index:end] != tok.Literal {
				t.Fatalf("token %v does not match source %q", tok, input[tok.Index:end])
			}
			prevEnd = end
		}

		again, err := lexer.Lex(input)
		if err != nil {
			t.Fatalf("second run failed: %v", err)
		}
		if !reflect.DeepEqual(tokens, again) {
			t.Fatal("lexing is not deterministic")
		}
	})
}
