package expr

import (
	"fmt"
	"math"
)

// node evaluates a parsed subtree at x.
type node func(x float64) float64

var functions = map[string]func(float64) float64{
	"sin":   math.Sin,
	"cos":   math.Cos,
	"tan":   math.Tan,
	"asin":  math.Asin,
	"acos":  math.Acos,
	"atan":  math.Atan,
	"sinh":  math.Sinh,
	"cosh":  math.Cosh,
	"tanh":  math.Tanh,
	"ln":    math.Log,
	"log":   math.Log10,
	"exp":   math.Exp,
	"sqrt":  math.Sqrt,
	"cbrt":  math.Cbrt,
	"abs":   math.Abs,
	"floor": math.Floor,
	"ceil":  math.Ceil,
	"round": roundHalfUp,
	"sign":  sign,
}

var constants = map[string]float64{
	"pi": math.Pi,
	"e":  math.E,
}

// roundHalfUp rounds halves towards +Inf, so round(-2.5) is -2.
func roundHalfUp(v float64) float64 {
	return math.Floor(v + 0.5)
}

func sign(v float64) float64 {
	switch {
	case math.IsNaN(v):
		return v
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return v
	}
}

// parser is a recursive descent parser over the grammar
//
//	expr    = term { ("+" | "-") term }
//	term    = unary { ("*" | "/") unary | power }   adjacent power is implicit "*"
//	unary   = ("-" | "+") unary | power
//	power   = primary [ "^" unary ]                 right-associative
//	primary = number | "x" | constant | function "(" expr ")" | "(" expr ")"
//
// Implicit multiplication applies when an identifier or "(" follows a
// complete operand, or a number follows ")".
type parser struct {
	tokens []token
	pos    int
}

func parse(src string) (node, error) {
	tokens, err := lex(src)
	if err != nil {
		return nil, err
	}

	p := &parser{tokens: tokens}
	n, err := p.expr()
	if err != nil {
		return nil, err
	}
	if tok := p.peek(); tok.kind != tokEOF {
		return nil, p.unexpected(tok)
	}
	return n, nil
}

func (p *parser) peek() token {
	return p.tokens[p.pos]
}

func (p *parser) next() token {
	tok := p.tokens[p.pos]
	if tok.kind != tokEOF {
		p.pos++
	}
	return tok
}

func (p *parser) prev() token {
	if p.pos == 0 {
		return token{kind: tokEOF}
	}
	return p.tokens[p.pos-1]
}

func (p *parser) unexpected(tok token) error {
	if tok.kind == tokEOF {
		return &SyntaxError{Pos: tok.pos, Msg: "unexpected end of input"}
	}
	return &SyntaxError{Pos: tok.pos, Msg: fmt.Sprintf("unexpected %s %q", tok.kind, tok.text)}
}

func (p *parser) expr() (node, error) {
	left, err := p.term()
	if err != nil {
		return nil, err
	}

	for {
		op := p.peek().kind
		if op != tokPlus && op != tokMinus {
			return left, nil
		}
		p.next()

		right, err := p.term()
		if err != nil {
			return nil, err
		}
		if op == tokPlus {
			left = add(left, right)
		} else {
			left = sub(left, right)
		}
	}
}

func (p *parser) term() (node, error) {
	left, err := p.unary()
	if err != nil {
		return nil, err
	}

	for {
		var right node
		switch tok := p.peek(); {
		case tok.kind == tokStar || tok.kind == tokSlash:
			p.next()
			if right, err = p.unary(); err != nil {
				return nil, err
			}
			if tok.kind == tokSlash {
				left = div(left, right)
				continue
			}
		case p.implicitOperand(tok):
			if right, err = p.power(); err != nil {
				return nil, err
			}
		default:
			return left, nil
		}
		left = mul(left, right)
	}
}

// implicitOperand reports whether tok starts an operand that multiplies
// the one just parsed.
func (p *parser) implicitOperand(tok token) bool {
	switch tok.kind {
	case tokIdent, tokLParen:
		return true
	case tokNumber:
		return p.prev().kind == tokRParen
	default:
		return false
	}
}

func (p *parser) unary() (node, error) {
	switch p.peek().kind {
	case tokMinus:
		p.next()
		operand, err := p.unary()
		if err != nil {
			return nil, err
		}
		return neg(operand), nil
	case tokPlus:
		p.next()
		return p.unary()
	default:
		return p.power()
	}
}

func (p *parser) power() (node, error) {
	base, err := p.primary()
	if err != nil {
		return nil, err
	}
	if p.peek().kind != tokCaret {
		return base, nil
	}
	p.next()

	exponent, err := p.unary()
	if err != nil {
		return nil, err
	}
	return pow(base, exponent), nil
}

func (p *parser) primary() (node, error) {
	tok := p.next()
	switch tok.kind {
	case tokNumber:
		v := tok.num
		return func(float64) float64 { return v }, nil

	case tokLParen:
		inner, err := p.expr()
		if err != nil {
			return nil, err
		}
		if closing := p.next(); closing.kind != tokRParen {
			if closing.kind == tokEOF {
				return nil, &SyntaxError{Pos: closing.pos, Msg: "missing ')'"}
			}
			return nil, p.unexpected(closing)
		}
		return inner, nil

	case tokIdent:
		return p.identifier(tok)

	default:
		return nil, p.unexpected(tok)
	}
}

func (p *parser) identifier(tok token) (node, error) {
	if tok.text == "x" {
		return func(x float64) float64 { return x }, nil
	}
	if v, ok := constants[tok.text]; ok {
		return func(float64) float64 { return v }, nil
	}

	fn, ok := functions[tok.text]
	if !ok {
		return nil, &SyntaxError{Pos: tok.pos, Msg: fmt.Sprintf("unknown identifier %q", tok.text)}
	}
	if open := p.next(); open.kind != tokLParen {
		return nil, &SyntaxError{Pos: open.pos, Msg: fmt.Sprintf("expected '(' after %s", tok.text)}
	}

	arg, err := p.expr()
	if err != nil {
		return nil, err
	}
	if closing := p.next(); closing.kind != tokRParen {
		return nil, &SyntaxError{Pos: closing.pos, Msg: fmt.Sprintf("missing ')' to close %s(", tok.text)}
	}
	return func(x float64) float64 { return fn(arg(x)) }, nil
}

func add(a, b node) node { return func(x float64) float64 { return a(x) + b(x) } }
func sub(a, b node) node { return func(x float64) float64 { return a(x) - b(x) } }
func mul(a, b node) node { return func(x float64) float64 { return a(x) * b(x) } }
func div(a, b node) node { return func(x float64) float64 { return a(x) / b(x) } }
func pow(a, b node) node { return func(x float64) float64 { return math.Pow(a(x), b(x)) } }
func neg(a node) node    { return func(x float64) float64 { return -a(x) } }
