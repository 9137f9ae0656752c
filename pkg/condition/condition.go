// Package condition evaluates the small rule expressions document schemas use
// to gate conditional requirements, date relationships, and numeric ceilings.
//
// Supported forms:
//   - truthiness: `ejariNumber` (true when the field holds a non-empty value)
//   - comparisons: `propertyToReturn == "Yes"`, `amount >= 55000`
//   - composition: `a == "Yes" && b != "Cash"`, `!(a || b)`, parentheses
//
// Field values are read from the flat name→value mapping a form state
// exposes. An empty expression always evaluates true.
package condition

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Eval evaluates rule against the supplied field values. Values are the raw
// strings a form state holds; numeric comparisons parse both sides as
// numbers and fail the comparison (without error) when the field value is
// not numeric.
func Eval(rule string, values map[string]string) (bool, error) {
	trimmed := strings.TrimSpace(rule)
	if trimmed == "" {
		return true, nil
	}

	tokens, err := tokenize(trimmed)
	if err != nil {
		return false, err
	}
	if len(tokens) == 0 {
		return true, nil
	}

	expr, err := parseExpression(tokens)
	if err != nil {
		return false, err
	}
	return expr.eval(values)
}

// Check verifies that rule parses without evaluating it. The schema loader
// uses this to reject malformed conditions at construction time.
func Check(rule string) error {
	trimmed := strings.TrimSpace(rule)
	if trimmed == "" {
		return nil
	}
	tokens, err := tokenize(trimmed)
	if err != nil {
		return err
	}
	if len(tokens) == 0 {
		return nil
	}
	_, err = parseExpression(tokens)
	return err
}

type tokenKind int

const (
	tokenIdentifier tokenKind = iota
	tokenString
	tokenNumber
	tokenEq
	tokenNeq
	tokenLt
	tokenLte
	tokenGt
	tokenGte
	tokenAnd
	tokenOr
	tokenNot
	tokenLParen
	tokenRParen
)

type token struct {
	kind tokenKind
	raw  string
}

func tokenize(input string) ([]token, error) {
	var tokens []token
	i := 0

	peek := func() byte {
		if i >= len(input) {
			return 0
		}
		return input[i]
	}

	for i < len(input) {
		ch := peek()
		switch {
		case ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r':
			i++
		case ch == '(':
			i++
			tokens = append(tokens, token{kind: tokenLParen, raw: "("})
		case ch == ')':
			i++
			tokens = append(tokens, token{kind: tokenRParen, raw: ")"})
		case ch == '!':
			i++
			if peek() == '=' {
				i++
				tokens = append(tokens, token{kind: tokenNeq, raw: "!="})
			} else {
				tokens = append(tokens, token{kind: tokenNot, raw: "!"})
			}
		case ch == '=':
			i++
			if peek() != '=' {
				return nil, errors.New("condition: unexpected '='; use '=='")
			}
			i++
			tokens = append(tokens, token{kind: tokenEq, raw: "=="})
		case ch == '<':
			i++
			if peek() == '=' {
				i++
				tokens = append(tokens, token{kind: tokenLte, raw: "<="})
			} else {
				tokens = append(tokens, token{kind: tokenLt, raw: "<"})
			}
		case ch == '>':
			i++
			if peek() == '=' {
				i++
				tokens = append(tokens, token{kind: tokenGte, raw: ">="})
			} else {
				tokens = append(tokens, token{kind: tokenGt, raw: ">"})
			}
		case ch == '&':
			i++
			if peek() != '&' {
				return nil, errors.New("condition: unexpected '&'; use '&&'")
			}
			i++
			tokens = append(tokens, token{kind: tokenAnd, raw: "&&"})
		case ch == '|':
			i++
			if peek() != '|' {
				return nil, errors.New("condition: unexpected '|'; use '||'")
			}
			i++
			tokens = append(tokens, token{kind: tokenOr, raw: "||"})
		case ch == '"' || ch == '\'':
			lit, rest, err := scanString(input[i:])
			if err != nil {
				return nil, err
			}
			i += rest
			tokens = append(tokens, token{kind: tokenString, raw: lit})
		default:
			start := i
			for i < len(input) && !strings.ContainsRune(" \t\n\r()!=<>&|", rune(input[i])) {
				i++
			}
			raw := input[start:i]
			if raw == "" {
				i++
				continue
			}
			if looksLikeNumber(raw) {
				tokens = append(tokens, token{kind: tokenNumber, raw: raw})
			} else {
				tokens = append(tokens, token{kind: tokenIdentifier, raw: raw})
			}
		}
	}

	return tokens, nil
}

func scanString(input string) (value string, consumed int, err error) {
	quote := input[0]
	var sb strings.Builder
	escaped := false
	for i := 1; i < len(input); i++ {
		c := input[i]
		if escaped {
			sb.WriteByte(c)
			escaped = false
			continue
		}
		if c == '\\' {
			escaped = true
			continue
		}
		if c == quote {
			return sb.String(), i + 1, nil
		}
		sb.WriteByte(c)
	}
	return "", 0, errors.New("condition: unterminated string literal")
}

func looksLikeNumber(raw string) bool {
	if raw == "" {
		return false
	}
	ch := raw[0]
	if ch == '-' || ch == '+' {
		return len(raw) > 1 && raw[1] >= '0' && raw[1] <= '9'
	}
	return ch >= '0' && ch <= '9'
}

type exprNode interface {
	eval(values map[string]string) (bool, error)
}

type exprOr struct{ left, right exprNode }

func (n exprOr) eval(values map[string]string) (bool, error) {
	ok, err := n.left.eval(values)
	if err != nil || ok {
		return ok, err
	}
	return n.right.eval(values)
}

type exprAnd struct{ left, right exprNode }

func (n exprAnd) eval(values map[string]string) (bool, error) {
	ok, err := n.left.eval(values)
	if err != nil || !ok {
		return ok, err
	}
	return n.right.eval(values)
}

type exprNot struct{ inner exprNode }

func (n exprNot) eval(values map[string]string) (bool, error) {
	ok, err := n.inner.eval(values)
	if err != nil {
		return false, err
	}
	return !ok, nil
}

type exprTruthy struct{ field string }

func (n exprTruthy) eval(values map[string]string) (bool, error) {
	return strings.TrimSpace(values[n.field]) != "", nil
}

type exprCompare struct {
	field   string
	op      tokenKind
	literal token
}

func (n exprCompare) eval(values map[string]string) (bool, error) {
	got := values[n.field]

	switch n.op {
	case tokenEq, tokenNeq:
		equal := compareEqual(got, n.literal)
		if n.op == tokenEq {
			return equal, nil
		}
		return !equal, nil
	case tokenLt, tokenLte, tokenGt, tokenGte:
		if n.literal.kind != tokenNumber {
			return false, fmt.Errorf("condition: relational operator needs a numeric literal, got %q", n.literal.raw)
		}
		want, err := strconv.ParseFloat(n.literal.raw, 64)
		if err != nil {
			return false, fmt.Errorf("condition: invalid number literal %q", n.literal.raw)
		}
		have, err := strconv.ParseFloat(strings.TrimSpace(got), 64)
		if err != nil {
			// Missing or non-numeric field values never satisfy a
			// relational comparison.
			return false, nil
		}
		switch n.op {
		case tokenLt:
			return have < want, nil
		case tokenLte:
			return have <= want, nil
		case tokenGt:
			return have > want, nil
		default:
			return have >= want, nil
		}
	default:
		return false, fmt.Errorf("condition: unsupported operator")
	}
}

func compareEqual(got string, lit token) bool {
	if lit.kind == tokenNumber {
		want, err1 := strconv.ParseFloat(lit.raw, 64)
		have, err2 := strconv.ParseFloat(strings.TrimSpace(got), 64)
		if err1 == nil && err2 == nil {
			return have == want
		}
	}
	return strings.TrimSpace(got) == lit.raw
}

type tokenStream struct {
	tokens []token
	pos    int
}

func parseExpression(tokens []token) (exprNode, error) {
	stream := &tokenStream{tokens: tokens}
	node, err := parseOr(stream)
	if err != nil {
		return nil, err
	}
	if stream.pos < len(stream.tokens) {
		return nil, fmt.Errorf("condition: unexpected token %q", stream.tokens[stream.pos].raw)
	}
	return node, nil
}

func parseOr(stream *tokenStream) (exprNode, error) {
	left, err := parseAnd(stream)
	if err != nil {
		return nil, err
	}
	for stream.match(tokenOr) {
		right, err := parseAnd(stream)
		if err != nil {
			return nil, err
		}
		left = exprOr{left: left, right: right}
	}
	return left, nil
}

func parseAnd(stream *tokenStream) (exprNode, error) {
	left, err := parseUnary(stream)
	if err != nil {
		return nil, err
	}
	for stream.match(tokenAnd) {
		right, err := parseUnary(stream)
		if err != nil {
			return nil, err
		}
		left = exprAnd{left: left, right: right}
	}
	return left, nil
}

func parseUnary(stream *tokenStream) (exprNode, error) {
	if stream.match(tokenNot) {
		inner, err := parseUnary(stream)
		if err != nil {
			return nil, err
		}
		return exprNot{inner: inner}, nil
	}
	return parsePrimary(stream)
}

var comparisonOps = []tokenKind{tokenEq, tokenNeq, tokenLte, tokenLt, tokenGte, tokenGt}

func relational(op tokenKind) bool {
	switch op {
	case tokenLt, tokenLte, tokenGt, tokenGte:
		return true
	default:
		return false
	}
}

func parsePrimary(stream *tokenStream) (exprNode, error) {
	if stream.match(tokenLParen) {
		inner, err := parseOr(stream)
		if err != nil {
			return nil, err
		}
		if !stream.match(tokenRParen) {
			return nil, errors.New("condition: missing closing ')'")
		}
		return inner, nil
	}

	ident, ok := stream.consume(tokenIdentifier)
	if !ok {
		if stream.pos >= len(stream.tokens) {
			return nil, errors.New("condition: empty expression")
		}
		return nil, fmt.Errorf("condition: expected field name, got %q", stream.tokens[stream.pos].raw)
	}

	for _, op := range comparisonOps {
		if stream.match(op) {
			lit, err := stream.consumeLiteral()
			if err != nil {
				return nil, err
			}
			if relational(op) && lit.kind != tokenNumber {
				return nil, fmt.Errorf("condition: relational operator needs a numeric literal, got %q", lit.raw)
			}
			return exprCompare{field: ident.raw, op: op, literal: lit}, nil
		}
	}

	return exprTruthy{field: ident.raw}, nil
}

func (s *tokenStream) match(kind tokenKind) bool {
	if s.pos >= len(s.tokens) || s.tokens[s.pos].kind != kind {
		return false
	}
	s.pos++
	return true
}

func (s *tokenStream) consume(kind tokenKind) (token, bool) {
	if s.pos >= len(s.tokens) || s.tokens[s.pos].kind != kind {
		return token{}, false
	}
	out := s.tokens[s.pos]
	s.pos++
	return out, true
}

func (s *tokenStream) consumeLiteral() (token, error) {
	if s.pos >= len(s.tokens) {
		return token{}, errors.New("condition: missing literal")
	}
	tok := s.tokens[s.pos]
	s.pos++
	switch tok.kind {
	case tokenString, tokenNumber:
		return tok, nil
	case tokenIdentifier:
		// Bare words compare as strings to keep schema rules forgiving.
		return token{kind: tokenString, raw: tok.raw}, nil
	default:
		return token{}, fmt.Errorf("condition: expected literal, got %q", tok.raw)
	}
}
