package bina

import (
	"io"
	"testing"
)

func BenchmarkTokenize(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := tokenize(digitExtractionScript); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkParse(b *testing.B) {
	tokens, err := tokenize(digitExtractionScript)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := parseTokens(tokens); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkExecute(b *testing.B) {
	program, err := Parse(digitExtractionScript)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		env := NewEnvironment()
		env.SetOutput(io.Discard)
		if _, err := RunProgram(program, env); err != nil {
			b.Fatal(err)
		}
	}
}
