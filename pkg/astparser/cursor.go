package astparser

import (
	"fmt"

	"github.com/wundergraph/gqlast/pkg/ast"
	"github.com/wundergraph/gqlast/pkg/graphqlerrors"
	"github.com/wundergraph/gqlast/pkg/lexer/keyword"
	"github.com/wundergraph/gqlast/pkg/lexer/token"
)

// Lexer is the token source consumed by the parser.
// CurrentToken is keyword.UNDEFINED before the first call to Advance.
type Lexer interface {
	CurrentToken() token.Token
	Advance() (token.Token, error)
	Lookahead() (token.Token, error)
	CurrentValue() string
}

// Cursor wraps a Lexer with the grammar combinators every builder is written in. The current
// token is always the next token to be consumed.
type Cursor struct {
	lexer      Lexer
	source     string
	noLocation bool
	maxDepth   int
	maxTokens  int

	lastToken token.Token
	depth     int
	tokens    int
}

func newCursor(lexer Lexer, source string, options Options) *Cursor {
	return &Cursor{
		lexer:      lexer,
		source:     source,
		noLocation: options.NoLocation,
		maxDepth:   options.MaxDepth,
		maxTokens:  options.MaxTokens,
	}
}

// Token returns the current, not yet consumed token.
func (c *Cursor) Token() token.Token {
	return c.lexer.CurrentToken()
}

// LastToken returns the token consumed most recently.
func (c *Cursor) LastToken() token.Token {
	return c.lastToken
}

func (c *Cursor) Lookahead() (token.Token, error) {
	return c.lexer.Lookahead()
}

// Advance consumes the current token.
func (c *Cursor) Advance() error {
	c.lastToken = c.lexer.CurrentToken()
	next, err := c.lexer.Advance()
	if err != nil {
		return err
	}
	if next.Keyword == keyword.EOF {
		return nil
	}
	c.tokens++
	if c.maxTokens > 0 && c.tokens > c.maxTokens {
		return c.errorAt(next, "allowed number of tokens per GraphQL document of '%d' exceeded", c.maxTokens)
	}
	return nil
}

// Peek reports whether the current token is of kind k without consuming it.
func (c *Cursor) Peek(k keyword.Keyword) bool {
	return c.lexer.CurrentToken().Keyword == k
}

// PeekKeyword reports whether the current token is a name equal to word.
func (c *Cursor) PeekKeyword(word string) bool {
	return c.lexer.CurrentToken().IsIdent(word)
}

// Skip consumes the current token if it is of kind k.
func (c *Cursor) Skip(k keyword.Keyword) (bool, error) {
	if !c.Peek(k) {
		return false, nil
	}
	if err := c.Advance(); err != nil {
		return false, err
	}
	return true, nil
}

// SkipKeyword consumes the current token if it is a name equal to word.
func (c *Cursor) SkipKeyword(word string) (bool, error) {
	if !c.PeekKeyword(word) {
		return false, nil
	}
	if err := c.Advance(); err != nil {
		return false, err
	}
	return true, nil
}

// Expect consumes and returns the current token, which must be of kind k.
func (c *Cursor) Expect(k keyword.Keyword) (token.Token, error) {
	tok := c.lexer.CurrentToken()
	if tok.Keyword != k {
		return tok, c.errorAt(tok, "Expected %s, found %s", kindDesc(k), tok.Desc())
	}
	if err := c.Advance(); err != nil {
		return tok, err
	}
	return tok, nil
}

// ExpectKeyword consumes and returns the current token, which must be a name equal to word.
func (c *Cursor) ExpectKeyword(word string) (token.Token, error) {
	tok := c.lexer.CurrentToken()
	if !tok.IsIdent(word) {
		return tok, c.errorAt(tok, "Expected %q, found %s", word, tok.Desc())
	}
	if err := c.Advance(); err != nil {
		return tok, err
	}
	return tok, nil
}

// Unexpected always returns a syntax error naming tok, or the current token when tok is nil.
func (c *Cursor) Unexpected(tok *token.Token) error {
	if tok == nil {
		current := c.lexer.CurrentToken()
		tok = &current
	}
	return c.errorAt(*tok, "Unexpected %s", tok.Desc())
}

// Location spans from start to the end of the last consumed token. It is nil when locations are
// disabled.
func (c *Cursor) Location(start token.Token) *ast.Location {
	if c.noLocation {
		return nil
	}
	return &ast.Location{
		Start: start.Start,
		End:   c.lastToken.End,
	}
}

// Enter and Leave track the nesting of brackets, braces and parentheses against Options.MaxDepth.
func (c *Cursor) Enter() error {
	c.depth++
	if c.maxDepth > 0 && c.depth > c.maxDepth {
		return c.errorAt(c.lexer.CurrentToken(), "allowed parsing depth per GraphQL document of '%d' exceeded", c.maxDepth)
	}
	return nil
}

func (c *Cursor) Leave() {
	c.depth--
}

// Errorf returns a syntax error located at tok.
func (c *Cursor) Errorf(tok token.Token, format string, args ...interface{}) error {
	return c.errorAt(tok, format, args...)
}

func (c *Cursor) errorAt(tok token.Token, format string, args ...interface{}) error {
	return graphqlerrors.NewSyntaxError(c.source, tok, fmt.Sprintf(format, args...))
}

func (c *Cursor) open(k keyword.Keyword) error {
	if _, err := c.Expect(k); err != nil {
		return err
	}
	if isBracket(k) {
		return c.Enter()
	}
	return nil
}

func (c *Cursor) close(k keyword.Keyword) (bool, error) {
	closed, err := c.Skip(k)
	if err != nil {
		return false, err
	}
	if closed && isBracket(k) {
		c.Leave()
	}
	return closed, nil
}

// Many parses one or more items between openKind and closeKind.
func Many[T any](c *Cursor, openKind keyword.Keyword, parseOne func() (T, error), closeKind keyword.Keyword) ([]T, error) {
	if err := c.open(openKind); err != nil {
		return nil, err
	}
	var nodes []T
	for {
		node, err := parseOne()
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, node)
		closed, err := c.close(closeKind)
		if err != nil {
			return nil, err
		}
		if closed {
			return nodes, nil
		}
	}
}

// Any parses zero or more items between openKind and closeKind.
func Any[T any](c *Cursor, openKind keyword.Keyword, parseOne func() (T, error), closeKind keyword.Keyword) ([]T, error) {
	if err := c.open(openKind); err != nil {
		return nil, err
	}
	nodes := []T{}
	for {
		closed, err := c.close(closeKind)
		if err != nil {
			return nil, err
		}
		if closed {
			return nodes, nil
		}
		node, err := parseOne()
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, node)
	}
}

// OptionalMany is Many when the current token is openKind and an empty list otherwise.
func OptionalMany[T any](c *Cursor, openKind keyword.Keyword, parseOne func() (T, error), closeKind keyword.Keyword) ([]T, error) {
	if !c.Peek(openKind) {
		return nil, nil
	}
	return Many(c, openKind, parseOne, closeKind)
}

// DelimitedMany parses one or more items separated by delimiter, a leading delimiter is allowed:
//
//	= | A | B
func DelimitedMany[T any](c *Cursor, delimiter keyword.Keyword, parseOne func() (T, error)) ([]T, error) {
	if _, err := c.Skip(delimiter); err != nil {
		return nil, err
	}
	var nodes []T
	for {
		node, err := parseOne()
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, node)
		more, err := c.Skip(delimiter)
		if err != nil {
			return nil, err
		}
		if !more {
			return nodes, nil
		}
	}
}

func isBracket(k keyword.Keyword) bool {
	switch k {
	case keyword.LBRACE, keyword.RBRACE, keyword.LBRACK, keyword.RBRACK, keyword.LPAREN, keyword.RPAREN:
		return true
	default:
		return false
	}
}

// kindDesc describes an expected token kind: "{" for punctuators, Name for identifiers.
func kindDesc(k keyword.Keyword) string {
	if k.IsPunctuator() {
		return fmt.Sprintf("%q", k.Desc())
	}
	return k.Desc()
}
