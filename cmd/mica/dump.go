package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"mica/interpreter-go/pkg/ast"
	"mica/interpreter-go/pkg/lexer"
)

func dumpTokens(w io.Writer, tokens []lexer.Token) {
	parts := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		parts = append(parts, tok.String())
	}
	fmt.Fprintf(w, "[%s]\n", strings.Join(parts, ", "))
}

func dumpAST(w io.Writer, program *ast.Program) error {
	data, err := json.MarshalIndent(program, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s\n", data)
	return err
}
