package bina

import "strconv"

// Token identifies the kind of a lexical unit. Tokens are produced once by
// the lexer and consumed once by the parser; they carry no position metadata.
type Token int

const (
	EOF Token = iota
	INT
	STRING
	IDENT
	TRUE
	FALSE
	WHILE
	IF
	ELSE
	LET
	IN
	PRINT
	ASSIGN    // :=
	EQ        // ==
	NEQ       // !=
	LT        // <
	PLUS      // +
	STAR      // *
	BANG      // '!' on its own; never emitted, '!' must be followed by '='
	OR        // ||, lexed but accepted by no grammar rule
	LPAREN    // '(' and ')' are lexed but accepted by no grammar rule
	RPAREN
	LBRACE
	RBRACE
	LBRACKET
	RBRACKET
	SEMICOLON
)

var tokenNames = map[Token]string{
	EOF:       "end of input",
	INT:       "integer",
	STRING:    "string",
	IDENT:     "identifier",
	TRUE:      "'true'",
	FALSE:     "'false'",
	WHILE:     "'while'",
	IF:        "'if'",
	ELSE:      "'else'",
	LET:       "'let'",
	IN:        "'in'",
	PRINT:     "'print'",
	ASSIGN:    "':='",
	EQ:        "'=='",
	NEQ:       "'!='",
	LT:        "'<'",
	PLUS:      "'+'",
	STAR:      "'*'",
	BANG:      "'!'",
	OR:        "'||'",
	LPAREN:    "'('",
	RPAREN:    "')'",
	LBRACE:    "'{'",
	RBRACE:    "'}'",
	LBRACKET:  "'['",
	RBRACKET:  "']'",
	SEMICOLON: "';'",
}

func (t Token) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return "token(" + strconv.Itoa(int(t)) + ")"
}

// tokenInfo is a token together with its payload: the numeric value of an
// INT, the name of an IDENT, or the contents of a STRING literal.
type tokenInfo struct {
	typ  Token
	text string
	num  int64
}

func (t tokenInfo) String() string {
	switch t.typ {
	case INT:
		return strconv.FormatInt(t.num, 10)
	case STRING:
		return strconv.Quote(t.text)
	case IDENT:
		return "identifier " + strconv.Quote(t.text)
	default:
		return t.typ.String()
	}
}

var keywords = map[string]Token{
	"while": WHILE,
	"if":    IF,
	"else":  ELSE,
	"true":  TRUE,
	"false": FALSE,
	"let":   LET,
	"in":    IN,
	"print": PRINT,
}
