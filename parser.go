package bina

// Parse tokenizes src and builds the ordered statement sequence for a whole
// program.
func Parse(src string) ([]Statement, error) {
	tokens, err := tokenize(src)
	if err != nil {
		return nil, err
	}
	return parseTokens(tokens)
}

// parseTokens consumes the token sequence strictly left to right with one
// token of lookahead and no backtracking.
func parseTokens(tokens []tokenInfo) ([]Statement, error) {
	p := &parser{tokens: tokens}
	var program []Statement
	for !p.done() {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		program = append(program, stmt)
	}
	return program, nil
}

type parser struct {
	tokens []tokenInfo
	pos    int
}

func (p *parser) done() bool {
	return p.pos >= len(p.tokens)
}

func (p *parser) peek() (tokenInfo, bool) {
	if p.done() {
		return tokenInfo{}, false
	}
	return p.tokens[p.pos], true
}

func (p *parser) next() (tokenInfo, bool) {
	tok, ok := p.peek()
	if ok {
		p.pos++
	}
	return tok, ok
}

func (p *parser) expect(typ Token) (tokenInfo, error) {
	tok, ok := p.next()
	if !ok {
		return tokenInfo{}, parseErrorf("expected %s, got end of input", typ)
	}
	if tok.typ != typ {
		return tokenInfo{}, parseErrorf("expected %s, got %s", typ, tok)
	}
	return tok, nil
}

func (p *parser) parseStatement() (Statement, error) {
	tok, ok := p.next()
	if !ok {
		return nil, parseErrorf("unexpected end of input, expected a statement")
	}
	switch tok.typ {
	case WHILE:
		cond, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		body, err := p.parseBlock()
		if err != nil {
			return nil, err
		}
		return &WhileStatement{Cond: cond, Body: body}, nil
	case IF:
		cond, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		body, err := p.parseBlock()
		if err != nil {
			return nil, err
		}
		return &IfStatement{Cond: cond, Body: body}, nil
	case IDENT:
		return p.parseAssignment(tok.text, false)
	case LET:
		name, err := p.expect(IDENT)
		if err != nil {
			return nil, err
		}
		return p.parseAssignment(name.text, true)
	case PRINT:
		expr, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(SEMICOLON); err != nil {
			return nil, err
		}
		return &PrintStatement{Expr: expr}, nil
	default:
		return nil, parseErrorf("unexpected token %s at start of statement", tok)
	}
}

func (p *parser) parseAssignment(name string, declare bool) (Statement, error) {
	if _, err := p.expect(ASSIGN); err != nil {
		return nil, err
	}
	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(SEMICOLON); err != nil {
		return nil, err
	}
	return &AssignStatement{Name: name, Expr: expr, Declare: declare}, nil
}

// parseBlock expects '{', then statements until the next token is '}'. An
// unterminated block runs until input exhaustion and fails inside
// parseStatement.
func (p *parser) parseBlock() (Statement, error) {
	if _, err := p.expect(LBRACE); err != nil {
		return nil, err
	}
	var stmts []Statement
	for {
		if tok, ok := p.peek(); ok && tok.typ == RBRACE {
			break
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	p.next()
	return &BlockStatement{Statements: stmts}, nil
}

// parseExpr parses one term and at most one binary operator. A second
// operator is never consumed: "a + b + c" yields a+b and leaves "+ c" where
// the next statement is expected.
func (p *parser) parseExpr() (Expr, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	tok, ok := p.peek()
	if !ok {
		return nil, parseErrorf("unexpected end of input after expression")
	}
	switch tok.typ {
	case STAR, PLUS, EQ, NEQ, LT, IN:
		p.next()
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		return &BinaryExpr{Op: tok.typ, Left: left, Right: right}, nil
	default:
		return &TermExpr{Term: left}, nil
	}
}

func (p *parser) parseTerm() (Term, error) {
	tok, ok := p.next()
	if !ok {
		return nil, parseErrorf("unexpected end of input, expected a term")
	}
	switch tok.typ {
	case INT:
		return &IntegerTerm{Value: tok.num}, nil
	case STRING:
		return &StringTerm{Value: tok.text}, nil
	case TRUE:
		return &BooleanTerm{Value: true}, nil
	case FALSE:
		return &BooleanTerm{Value: false}, nil
	case IDENT:
		if nxt, ok := p.peek(); ok && nxt.typ == LBRACKET {
			p.next()
			index, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			// the token after the index expression is consumed without
			// checking that it is ']'
			if _, ok := p.next(); !ok {
				return nil, parseErrorf("unexpected end of input, expected ']'")
			}
			return &IndexTerm{Name: tok.text, Index: index}, nil
		}
		return &VariableTerm{Name: tok.text}, nil
	default:
		return nil, parseErrorf("unexpected token %s, expected a term", tok)
	}
}
