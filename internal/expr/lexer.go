package expr

import (
	"strconv"
	"strings"
)

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokNumber
	tokIdent
	tokPlus
	tokMinus
	tokStar
	tokSlash
	tokCaret
	tokLParen
	tokRParen
)

func (k tokenKind) String() string {
	switch k {
	case tokEOF:
		return "end of input"
	case tokNumber:
		return "number"
	case tokIdent:
		return "identifier"
	case tokPlus:
		return "'+'"
	case tokMinus:
		return "'-'"
	case tokStar:
		return "'*'"
	case tokSlash:
		return "'/'"
	case tokCaret:
		return "'^'"
	case tokLParen:
		return "'('"
	case tokRParen:
		return "')'"
	default:
		return "unknown"
	}
}

type token struct {
	kind tokenKind
	pos  int
	text string  // Lowercased for identifiers
	num  float64 // Set for tokNumber
}

// lex splits src into tokens, ending with tokEOF. "**" is read as '^'.
// Numbers are plain decimals; "2e" is two tokens so that it reads as 2*e.
func lex(src string) ([]token, error) {
	var tokens []token
	i := 0
	for i < len(src) {
		c := src[i]
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			i++
		case isDigit(c) || c == '.':
			start := i
			for i < len(src) && isDigit(src[i]) {
				i++
			}
			if i < len(src) && src[i] == '.' {
				i++
				for i < len(src) && isDigit(src[i]) {
					i++
				}
			}
			text := src[start:i]
			v, err := strconv.ParseFloat(text, 64)
			if err != nil {
				return nil, &SyntaxError{Pos: start, Msg: "malformed number " + strconv.Quote(text)}
			}
			tokens = append(tokens, token{kind: tokNumber, pos: start, text: text, num: v})
		case isLetter(c):
			start := i
			for i < len(src) && isLetter(src[i]) {
				i++
			}
			tokens = append(tokens, token{kind: tokIdent, pos: start, text: strings.ToLower(src[start:i])})
		case c == '*' && i+1 < len(src) && src[i+1] == '*':
			tokens = append(tokens, token{kind: tokCaret, pos: i, text: "**"})
			i += 2
		default:
			kind, ok := operators[c]
			if !ok {
				return nil, &SyntaxError{Pos: i, Msg: "unexpected character " + strconv.QuoteRune(rune(c))}
			}
			tokens = append(tokens, token{kind: kind, pos: i, text: string(c)})
			i++
		}
	}
	return append(tokens, token{kind: tokEOF, pos: len(src)}), nil
}

var operators = map[byte]tokenKind{
	'+': tokPlus,
	'-': tokMinus,
	'*': tokStar,
	'/': tokSlash,
	'^': tokCaret,
	'(': tokLParen,
	')': tokRParen,
}

func isDigit(c byte) bool  { return c >= '0' && c <= '9' }
func isLetter(c byte) bool { return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') }
