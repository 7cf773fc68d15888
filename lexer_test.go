package bina

import (
	"errors"
	"reflect"
	"strconv"
	"strings"
	"testing"
)

func TestTokenizeNumbers(t *testing.T) {
	tests := []struct {
		input string
		want  int64
	}{
		{"1", 1},
		{"123", 123},
		{"0", 0},
		{"10", 10},
		{"100", 100},
		{"1000", 1000},
		{"10000", 10000},
		{"100000", 100000},
		{"    1000000   ", 1000000},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tokens, err := tokenize(tt.input)
			if err != nil {
				t.Fatalf("tokenize(%q) failed: %v", tt.input, err)
			}
			if len(tokens) != 1 {
				t.Fatalf("expected 1 token, got %d", len(tokens))
			}
			if tokens[0].typ != INT || tokens[0].num != tt.want {
				t.Errorf("got %v, want integer %d", tokens[0], tt.want)
			}
		})
	}
}

func TestTokenizeNumberRoundTrip(t *testing.T) {
	// integer literals of up to 18 digits re-serialize to the original numeral
	inputs := []string{
		"7",
		"42",
		"999999",
		"123456789012345678",
		"100000000000000000",
	}
	for _, input := range inputs {
		tokens, err := tokenize(input)
		if err != nil {
			t.Fatalf("tokenize(%q) failed: %v", input, err)
		}
		got := strconv.FormatInt(tokens[0].num, 10)
		if got != input {
			t.Errorf("round trip of %q produced %q", input, got)
		}
	}
}

func TestTokenizeWhileProgram(t *testing.T) {
	tokens, err := tokenize("while true { let i := 10 + 5; }")
	if err != nil {
		t.Fatal(err)
	}
	want := []tokenInfo{
		{typ: WHILE},
		{typ: TRUE},
		{typ: LBRACE},
		{typ: LET},
		{typ: IDENT, text: "i"},
		{typ: ASSIGN},
		{typ: INT, num: 10},
		{typ: PLUS},
		{typ: INT, num: 5},
		{typ: SEMICOLON},
		{typ: RBRACE},
	}
	if !reflect.DeepEqual(tokens, want) {
		t.Errorf("got %v, want %v", tokens, want)
	}
}

func TestTokenizeKeywordsAndIdentifiers(t *testing.T) {
	tests := []struct {
		input string
		want  tokenInfo
	}{
		{"while", tokenInfo{typ: WHILE}},
		{"if", tokenInfo{typ: IF}},
		{"else", tokenInfo{typ: ELSE}},
		{"true", tokenInfo{typ: TRUE}},
		{"false", tokenInfo{typ: FALSE}},
		{"let", tokenInfo{typ: LET}},
		{"in", tokenInfo{typ: IN}},
		{"print", tokenInfo{typ: PRINT}},
		{"whilex", tokenInfo{typ: IDENT, text: "whilex"}},
		{"_foo1", tokenInfo{typ: IDENT, text: "_foo1"}},
		{"index", tokenInfo{typ: IDENT, text: "index"}},
	}
	for _, tt := range tests {
		tokens, err := tokenize(tt.input)
		if err != nil {
			t.Fatalf("tokenize(%q) failed: %v", tt.input, err)
		}
		if len(tokens) != 1 || tokens[0] != tt.want {
			t.Errorf("tokenize(%q) = %v, want %v", tt.input, tokens, tt.want)
		}
	}
}

func TestTokenizeStringLiterals(t *testing.T) {
	tokens, err := tokenize(`"hello world"`)
	if err != nil {
		t.Fatal(err)
	}
	if tokens[0].typ != STRING || tokens[0].text != "hello world" {
		t.Errorf("got %v", tokens[0])
	}

	// \n becomes a real newline; no other escape exists
	tokens, err = tokenize(`"a\nb"`)
	if err != nil {
		t.Fatal(err)
	}
	if tokens[0].text != "a\nb" {
		t.Errorf("got %q, want %q", tokens[0].text, "a\nb")
	}

	// a literal '"' always terminates the string
	tokens, err = tokenize(`"ab" cd`)
	if err != nil {
		t.Fatal(err)
	}
	want := []tokenInfo{
		{typ: STRING, text: "ab"},
		{typ: IDENT, text: "cd"},
	}
	if !reflect.DeepEqual(tokens, want) {
		t.Errorf("got %v, want %v", tokens, want)
	}
}

func TestTokenizeOperators(t *testing.T) {
	tokens, err := tokenize(`x := a == b != c < d + e * f || g ( ) [ ] ;`)
	if err != nil {
		t.Fatal(err)
	}
	wantTypes := []Token{IDENT, ASSIGN, IDENT, EQ, IDENT, NEQ, IDENT, LT,
		IDENT, PLUS, IDENT, STAR, IDENT, OR, IDENT, LPAREN, RPAREN,
		LBRACKET, RBRACKET, SEMICOLON}
	if len(tokens) != len(wantTypes) {
		t.Fatalf("got %d tokens, want %d", len(tokens), len(wantTypes))
	}
	for i, want := range wantTypes {
		if tokens[i].typ != want {
			t.Errorf("token %d: got %v, want %v", i, tokens[i].typ, want)
		}
	}
}

func TestTokenizeErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		message string
	}{
		{"lone equals", "x = 1", "expected '=' after '='"},
		{"lone bang", "!x", "expected '=' after '!'"},
		{"lone colon", "x : 1", "expected '=' after ':'"},
		{"lone pipe", "a | b", "expected '|' after '|'"},
		{"unrecognized char", "x := 1 $ 2;", "unrecognized character"},
		{"unterminated string", `let s := "abc`, "unterminated string literal"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, err := tokenize(tt.input)
			if err == nil {
				t.Fatalf("expected error, got tokens %v", tokens)
			}
			var lexErr *LexError
			if !errors.As(err, &lexErr) {
				t.Fatalf("expected *LexError, got %T", err)
			}
			if !strings.Contains(err.Error(), tt.message) {
				t.Errorf("error %q does not mention %q", err, tt.message)
			}
		})
	}
}

func TestTokenizeErrorEchoesLine(t *testing.T) {
	src := "let a := 1;\nlet b := 2 $;\nlet c := 3;"
	_, err := tokenize(src)
	var lexErr *LexError
	if !errors.As(err, &lexErr) {
		t.Fatalf("expected *LexError, got %v", err)
	}
	if lexErr.Line != 2 {
		t.Errorf("got line %d, want 2", lexErr.Line)
	}
	if lexErr.Context != "let b := 2 $;" {
		t.Errorf("got context %q", lexErr.Context)
	}
}

func TestTokenizeEmptyAndWhitespace(t *testing.T) {
	for _, input := range []string{"", "   ", "\t\r\n", " \n \n "} {
		tokens, err := tokenize(input)
		if err != nil {
			t.Fatalf("tokenize(%q) failed: %v", input, err)
		}
		if len(tokens) != 0 {
			t.Errorf("tokenize(%q) = %v, want no tokens", input, tokens)
		}
	}
}
