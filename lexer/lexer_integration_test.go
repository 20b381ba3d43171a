// ----------------------------------------------------------------------------
// FILE: lexer/lexer_integration_test.go
// ----------------------------------------------------------------------------
package lexer

import (
	"testing"

	"github.com/amoghasbhardwaj/monkey/token"
)

// TestIntegrationLexer tests the lexer's ability to tokenize a hash literal.
// This verifies the interaction between identifiers, special syntax
// characters (brace, colon), and string/integer literals.
func TestIntegrationLexer(t *testing.T) {
	input := `let node = {"value": 10};`
	expected := []struct {
		typ     token.TokenType
		literal string
	}{
		{token.LET, "let"},
		{token.IDENT, "node"},
		{token.ASSIGN, "="},
		{token.LBRACE, "{"},
		{token.STRING, "value"},
		{token.COLON, ":"},
		{token.INT, "10"},
		{token.RBRACE, "}"},
		{token.SEMICOLON, ";"},
		{token.EOF, ""},
	}
	l := New(input)
	for i, e := range expected {
		tok := l.NextToken()
		if tok.Type != e.typ || tok.Literal != e.literal {
			t.Fatalf("[%d] got %q %q, want %q %q", i, tok.Type, tok.Literal, e.typ, e.literal)
		}
	}
}

// TestIntegrationLexerTracksLineAndColumn checks that position metadata
// advances correctly across newlines, useful for error reporting upstream.
func TestIntegrationLexerTracksLineAndColumn(t *testing.T) {
	input := "let x = 5;\nlet y = 10;"
	l := New(input)

	first := l.NextToken()
	if first.Line != 1 {
		t.Fatalf("expected first token on line 1, got %d", first.Line)
	}

	for tok := l.NextToken(); tok.Type != token.EOF; tok = l.NextToken() {
		if tok.Literal == "y" && tok.Line != 2 {
			t.Fatalf("expected 'y' on line 2, got line %d", tok.Line)
		}
	}
}
