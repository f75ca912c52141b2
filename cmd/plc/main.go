// Command plc tokenizes PLC source files and prints the token stream,
// either as tab-separated text or as JSON for downstream tooling.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"

	"github.com/Zlannon/COP-4020-Compiler/pkg/compiler/lexer"
	"github.com/Zlannon/COP-4020-Compiler/pkg/compiler/source"
)

type cli struct {
	Lex lexCmd `cmd:"" help:"Tokenize a source file and print the tokens."`
}

type lexCmd struct {
	Path string `arg:"" optional:"" help:"Source file to tokenize. Reads stdin when omitted or \"-\"."`
	JSON bool   `help:"Print the token list as JSON."`
}

func (c *lexCmd) Run() error {
	name := c.Path
	var src []byte
	var err error
	if c.Path == "" || c.Path == "-" {
		name = "<stdin>"
		src, err = io.ReadAll(os.Stdin)
	} else {
		src, err = os.ReadFile(c.Path)
	}
	if err != nil {
		return err
	}

	tokens, err := lexer.Lex(string(src))
	if err != nil {
		var lexErr *lexer.Error
		if errors.As(err, &lexErr) {
			file := source.NewFile(name, string(src))
			pos := file.Position(lexErr.Index)
			fmt.Fprintf(os.Stderr, "%s:%s: %s\n%s\n", name, pos, lexErr.Kind, file.Snippet(lexErr.Index))
			os.Exit(1)
		}
		return err
	}

	if c.JSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(tokens)
	}
	for _, tok := range tokens {
		fmt.Printf("%d\t%s\t%s\n", tok.Index, tok.Type, tok.Literal)
	}
	return nil
}

func main() {
	var params cli
	ctx := kong.Parse(&params,
		kong.Name("plc"),
		kong.Description("Lexer front end for the PLC language."))
	ctx.FatalIfErrorf(ctx.Run())
}
