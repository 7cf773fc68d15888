package bina

import (
	"fmt"
	"strings"
	"unicode"
)

// tokenize converts source text into an ordered token sequence with a single
// left-to-right scan and one character of lookahead. The first malformed
// construct aborts the scan; no partial sequence is returned.
func tokenize(src string) ([]tokenInfo, error) {
	lx := &lexer{src: []rune(src)}
	return lx.run()
}

type lexer struct {
	src []rune
	pos int
}

func (l *lexer) peek() (rune, bool) {
	if l.pos >= len(l.src) {
		return 0, false
	}
	return l.src[l.pos], true
}

func (l *lexer) next() (rune, bool) {
	c, ok := l.peek()
	if ok {
		l.pos++
	}
	return c, ok
}

func (l *lexer) run() ([]tokenInfo, error) {
	var tokens []tokenInfo
	for {
		c, ok := l.peek()
		if !ok {
			break
		}
		switch {
		case c >= '0' && c <= '9':
			tokens = append(tokens, l.scanNumber())
		case c == '"':
			tok, err := l.scanString()
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, tok)
		case isIdentStart(c):
			tokens = append(tokens, l.scanWord())
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			l.next()
		case c == '=':
			l.next()
			if d, ok := l.peek(); !ok || d != '=' {
				return nil, l.errorf("expected '=' after '='")
			}
			l.next()
			tokens = append(tokens, tokenInfo{typ: EQ})
		case c == '!':
			l.next()
			if d, ok := l.peek(); !ok || d != '=' {
				return nil, l.errorf("expected '=' after '!'")
			}
			l.next()
			tokens = append(tokens, tokenInfo{typ: NEQ})
		case c == ':':
			l.next()
			if d, ok := l.peek(); !ok || d != '=' {
				return nil, l.errorf("expected '=' after ':'")
			}
			l.next()
			tokens = append(tokens, tokenInfo{typ: ASSIGN})
		case c == '|':
			l.next()
			if d, ok := l.peek(); !ok || d != '|' {
				return nil, l.errorf("expected '|' after '|'")
			}
			l.next()
			tokens = append(tokens, tokenInfo{typ: OR})
		default:
			typ, ok := singleCharTokens[c]
			if !ok {
				return nil, l.errorf("unrecognized character %q", c)
			}
			l.next()
			tokens = append(tokens, tokenInfo{typ: typ})
		}
	}
	return tokens, nil
}

var singleCharTokens = map[rune]Token{
	'(': LPAREN,
	')': RPAREN,
	'{': LBRACE,
	'}': RBRACE,
	'[': LBRACKET,
	']': RBRACKET,
	';': SEMICOLON,
	'+': PLUS,
	'*': STAR,
	'<': LT,
}

// scanNumber accumulates a run of decimal digits into a signed 64-bit
// integer. There is no overflow check; a longer run wraps like native
// fixed-width arithmetic.
func (l *lexer) scanNumber() tokenInfo {
	var n int64
	for {
		d, ok := l.peek()
		if !ok || d < '0' || d > '9' {
			break
		}
		n = n*10 + int64(d-'0')
		l.next()
	}
	return tokenInfo{typ: INT, num: n}
}

// scanString consumes up to the next '"'. The two-character sequence \n is
// replaced by a real newline; no other escape exists, so a literal '"'
// inside a string always terminates it.
func (l *lexer) scanString() (tokenInfo, error) {
	l.next()
	var sb strings.Builder
	for {
		c, ok := l.next()
		if !ok {
			return tokenInfo{}, l.errorf("unterminated string literal")
		}
		if c == '"' {
			break
		}
		sb.WriteRune(c)
	}
	return tokenInfo{typ: STRING, text: strings.ReplaceAll(sb.String(), `\n`, "\n")}, nil
}

func (l *lexer) scanWord() tokenInfo {
	var sb strings.Builder
	for {
		c, ok := l.peek()
		if !ok || !isIdentPart(c) {
			break
		}
		sb.WriteRune(c)
		l.next()
	}
	word := sb.String()
	if kw, ok := keywords[word]; ok {
		return tokenInfo{typ: kw}
	}
	return tokenInfo{typ: IDENT, text: word}
}

func isIdentStart(c rune) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_'
}

func isIdentPart(c rune) bool {
	return unicode.IsLetter(c) || unicode.IsDigit(c) || c == '_'
}

// errorf builds a LexError echoing the line the scan stopped on.
func (l *lexer) errorf(format string, args ...any) *LexError {
	line := 1
	start := 0
	for i := 0; i < l.pos && i < len(l.src); i++ {
		if l.src[i] == '\n' {
			line++
			start = i + 1
		}
	}
	end := l.pos
	if end > len(l.src) {
		end = len(l.src)
	}
	for end < len(l.src) && l.src[end] != '\n' {
		end++
	}
	return &LexError{
		Message: fmt.Sprintf(format, args...),
		Line:    line,
		Context: strings.TrimSpace(string(l.src[start:end])),
	}
}
