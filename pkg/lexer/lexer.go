// Package lexer turns GraphQL source text into tokens.
//
// The Lexer keeps exactly one current token and buffers at most one token of lookahead. Ignored
// tokens (whitespace, line terminators, commas, comments and the unicode BOM) are never emitted.
package lexer

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/wundergraph/gqlast/pkg/graphqlerrors"
	"github.com/wundergraph/gqlast/pkg/lexer/keyword"
	"github.com/wundergraph/gqlast/pkg/lexer/runes"
	"github.com/wundergraph/gqlast/pkg/lexer/token"
)

const bom = "\uFEFF"

// Lexer emits tokens from an input string
type Lexer struct {
	input         string
	inputPosition int
	current       token.Token
	lookahead     *token.Token
	lookaheadErr  error
}

// New returns a lexer positioned before the first token. CurrentToken reports keyword.UNDEFINED
// until Advance is called for the first time.
func New(input string) *Lexer {
	return &Lexer{
		input: input,
	}
}

// SetInput resets the lexer to the start of input.
func (l *Lexer) SetInput(input string) {
	l.input = input
	l.inputPosition = 0
	l.current = token.Token{}
	l.lookahead = nil
	l.lookaheadErr = nil
}

func (l *Lexer) Input() string {
	return l.input
}

func (l *Lexer) CurrentToken() token.Token {
	return l.current
}

func (l *Lexer) CurrentValue() string {
	return l.current.Value
}

// Advance moves to the next token and returns it. Once the input is exhausted every call returns
// the EOF token.
func (l *Lexer) Advance() (token.Token, error) {
	if l.current.Keyword == keyword.EOF {
		return l.current, nil
	}
	if l.lookaheadErr != nil {
		return l.current, l.lookaheadErr
	}
	if l.lookahead != nil {
		l.current = *l.lookahead
		l.lookahead = nil
		return l.current, nil
	}
	tok, err := l.read()
	if err != nil {
		return l.current, err
	}
	l.current = tok
	return tok, nil
}

// Lookahead returns the token after the current one without consuming it.
func (l *Lexer) Lookahead() (token.Token, error) {
	if l.current.Keyword == keyword.EOF {
		return l.current, nil
	}
	if l.lookaheadErr != nil {
		return token.Token{}, l.lookaheadErr
	}
	if l.lookahead == nil {
		tok, err := l.read()
		if err != nil {
			l.lookaheadErr = err
			return token.Token{}, err
		}
		l.lookahead = &tok
	}
	return *l.lookahead, nil
}

func (l *Lexer) read() (token.Token, error) {
	l.swallowIgnored()

	if l.inputPosition >= len(l.input) {
		return token.Token{
			Keyword: keyword.EOF,
			Start:   len(l.input),
			End:     len(l.input),
		}, nil
	}

	start := l.inputPosition
	if tok, matched := l.matchSingleRuneToken(start); matched {
		return tok, nil
	}

	c := l.input[start]
	switch {
	case c == runes.DOT:
		if strings.HasPrefix(l.input[start:], "...") {
			l.inputPosition += 3
			return token.Token{Keyword: keyword.SPREAD, Start: start, End: start + 3}, nil
		}
		return token.Token{}, l.errorAt(start, "Cannot parse the unexpected character %s.", printCharAt(l.input, start))
	case c == runes.QUOTE:
		if strings.HasPrefix(l.input[start:], `"""`) {
			return l.readBlockString(start)
		}
		return l.readString(start)
	case c == runes.SUB || runeIsDigit(c):
		return l.readNumber(start)
	case runeIsNameStart(c):
		return l.readIdent(start), nil
	case c == '\'':
		return token.Token{}, l.errorAt(start, `Unexpected single quote character ('), did you mean to use a double quote (")?`)
	default:
		return token.Token{}, l.errorAt(start, "Cannot parse the unexpected character %s.", printCharAt(l.input, start))
	}
}

// swallowIgnored skips whitespace, line terminators, commas, comments and the BOM
func (l *Lexer) swallowIgnored() {
	for l.inputPosition < len(l.input) {
		switch l.input[l.inputPosition] {
		case runes.SPACE, runes.TAB, runes.COMMA, runes.LINETERMINATOR, runes.CARRIAGERETURN:
			l.inputPosition++
		case runes.HASHTAG:
			for l.inputPosition < len(l.input) {
				c := l.input[l.inputPosition]
				if c == runes.LINETERMINATOR || c == runes.CARRIAGERETURN {
					break
				}
				l.inputPosition++
			}
		default:
			if strings.HasPrefix(l.input[l.inputPosition:], bom) {
				l.inputPosition += len(bom)
				continue
			}
			return
		}
	}
}

func (l *Lexer) matchSingleRuneToken(start int) (tok token.Token, matched bool) {
	matched = true

	switch l.input[start] {
	case runes.BANG:
		tok.Keyword = keyword.BANG
	case runes.DOLLAR:
		tok.Keyword = keyword.DOLLAR
	case runes.AND:
		tok.Keyword = keyword.AND
	case runes.LPAREN:
		tok.Keyword = keyword.LPAREN
	case runes.RPAREN:
		tok.Keyword = keyword.RPAREN
	case runes.COLON:
		tok.Keyword = keyword.COLON
	case runes.EQUALS:
		tok.Keyword = keyword.EQUALS
	case runes.AT:
		tok.Keyword = keyword.AT
	case runes.LBRACK:
		tok.Keyword = keyword.LBRACK
	case runes.RBRACK:
		tok.Keyword = keyword.RBRACK
	case runes.LBRACE:
		tok.Keyword = keyword.LBRACE
	case runes.PIPE:
		tok.Keyword = keyword.PIPE
	case runes.RBRACE:
		tok.Keyword = keyword.RBRACE
	default:
		return tok, false
	}

	tok.Start = start
	tok.End = start + 1
	l.inputPosition = tok.End
	return
}

func (l *Lexer) readIdent(start int) token.Token {
	end := start + 1
	for end < len(l.input) && runeIsIdent(l.input[end]) {
		end++
	}
	l.inputPosition = end
	return token.Token{
		Keyword: keyword.IDENT,
		Value:   l.input[start:end],
		Start:   start,
		End:     end,
	}
}

// readNumber reads IntValue and FloatValue literals:
//
//	-?(0|[1-9][0-9]*)(\.[0-9]+)?([eE][+-]?[0-9]+)?
func (l *Lexer) readNumber(start int) (token.Token, error) {
	pos := start
	isFloat := false

	if l.byteAt(pos) == runes.SUB {
		pos++
	}

	if l.byteAt(pos) == '0' {
		pos++
		if runeIsDigit(l.byteAt(pos)) {
			return token.Token{}, l.errorAt(pos, "Invalid number, unexpected digit after 0: %s.", printCharAt(l.input, pos))
		}
	} else {
		var err error
		if pos, err = l.readDigits(pos); err != nil {
			return token.Token{}, err
		}
	}

	if l.byteAt(pos) == runes.DOT {
		isFloat = true
		var err error
		if pos, err = l.readDigits(pos + 1); err != nil {
			return token.Token{}, err
		}
	}

	if c := l.byteAt(pos); c == 'e' || c == 'E' {
		isFloat = true
		pos++
		if c := l.byteAt(pos); c == runes.ADD || c == runes.SUB {
			pos++
		}
		var err error
		if pos, err = l.readDigits(pos); err != nil {
			return token.Token{}, err
		}
	}

	// 1.2.3 or 123abc
	if c := l.byteAt(pos); c == runes.DOT || runeIsNameStart(c) {
		return token.Token{}, l.errorAt(pos, "Invalid number, expected digit but got: %s.", printCharAt(l.input, pos))
	}

	l.inputPosition = pos
	tok := token.Token{
		Keyword: keyword.INTEGER,
		Value:   l.input[start:pos],
		Start:   start,
		End:     pos,
	}
	if isFloat {
		tok.Keyword = keyword.FLOAT
	}
	return tok, nil
}

func (l *Lexer) readDigits(pos int) (int, error) {
	if !runeIsDigit(l.byteAt(pos)) {
		return pos, l.errorAt(pos, "Invalid number, expected digit but got: %s.", printCharAt(l.input, pos))
	}
	for runeIsDigit(l.byteAt(pos)) {
		pos++
	}
	return pos, nil
}

func (l *Lexer) readString(start int) (token.Token, error) {
	var value strings.Builder
	pos := start + 1
	chunkStart := pos

	for pos < len(l.input) {
		c := l.input[pos]
		switch {
		case c == runes.QUOTE:
			value.WriteString(l.input[chunkStart:pos])
			l.inputPosition = pos + 1
			return token.Token{
				Keyword: keyword.STRING,
				Value:   value.String(),
				Start:   start,
				End:     pos + 1,
			}, nil
		case c == runes.LINETERMINATOR || c == runes.CARRIAGERETURN:
			return token.Token{}, l.errorAt(pos, "Unterminated string.")
		case c < 0x20 && c != runes.TAB:
			return token.Token{}, l.errorAt(pos, "Invalid character within String: %s.", printCharAt(l.input, pos))
		case c == runes.BACKSLASH:
			value.WriteString(l.input[chunkStart:pos])
			n, err := l.readEscape(pos, &value)
			if err != nil {
				return token.Token{}, err
			}
			pos += n
			chunkStart = pos
		default:
			pos++
		}
	}

	return token.Token{}, l.errorAt(pos, "Unterminated string.")
}

// readEscape writes the character escaped at pos and returns the length of the escape sequence.
func (l *Lexer) readEscape(pos int, value *strings.Builder) (int, error) {
	switch l.byteAt(pos + 1) {
	case '"':
		value.WriteByte('"')
	case '\\':
		value.WriteByte('\\')
	case '/':
		value.WriteByte('/')
	case 'b':
		value.WriteByte('\b')
	case 'f':
		value.WriteByte('\f')
	case 'n':
		value.WriteByte('\n')
	case 'r':
		value.WriteByte('\r')
	case 't':
		value.WriteByte('\t')
	case 'u':
		r, ok := l.readHex4(pos + 2)
		if !ok {
			return 0, l.errorAt(pos, "Invalid character escape sequence: %s.", l.escapeText(pos, 6))
		}
		if utf16.IsSurrogate(r) && l.byteAt(pos+6) == runes.BACKSLASH && l.byteAt(pos+7) == 'u' {
			if low, ok := l.readHex4(pos + 8); ok {
				if combined := utf16.DecodeRune(r, low); combined != utf8.RuneError {
					value.WriteRune(combined)
					return 12, nil
				}
			}
		}
		if utf16.IsSurrogate(r) {
			return 0, l.errorAt(pos, "Invalid Unicode escape sequence: %s.", l.escapeText(pos, 6))
		}
		value.WriteRune(r)
		return 6, nil
	default:
		if pos+1 >= len(l.input) {
			return 0, l.errorAt(pos+1, "Unterminated string.")
		}
		_, size := utf8.DecodeRuneInString(l.input[pos+1:])
		return 0, l.errorAt(pos, "Invalid character escape sequence: %s.", l.input[pos:pos+1+size])
	}
	return 2, nil
}

func (l *Lexer) readHex4(pos int) (rune, bool) {
	if pos+4 > len(l.input) {
		return 0, false
	}
	v, err := strconv.ParseUint(l.input[pos:pos+4], 16, 32)
	if err != nil {
		return 0, false
	}
	return rune(v), true
}

func (l *Lexer) escapeText(pos, length int) string {
	end := pos + length
	if end > len(l.input) {
		end = len(l.input)
	}
	return l.input[pos:end]
}

func (l *Lexer) readBlockString(start int) (token.Token, error) {
	var raw strings.Builder
	pos := start + 3
	chunkStart := pos

	for pos < len(l.input) {
		c := l.input[pos]
		switch {
		case strings.HasPrefix(l.input[pos:], `"""`):
			raw.WriteString(l.input[chunkStart:pos])
			l.inputPosition = pos + 3
			return token.Token{
				Keyword: keyword.BLOCKSTRING,
				Value:   BlockStringValue(raw.String()),
				Start:   start,
				End:     pos + 3,
			}, nil
		case strings.HasPrefix(l.input[pos:], `\"""`):
			raw.WriteString(l.input[chunkStart:pos])
			raw.WriteString(`"""`)
			pos += 4
			chunkStart = pos
		case c < 0x20 && c != runes.TAB && c != runes.LINETERMINATOR && c != runes.CARRIAGERETURN:
			return token.Token{}, l.errorAt(pos, "Invalid character within String: %s.", printCharAt(l.input, pos))
		default:
			pos++
		}
	}

	return token.Token{}, l.errorAt(pos, "Unterminated string.")
}

// BlockStringValue removes the common indentation of all lines but the first as well as leading and
// trailing blank lines from the raw content of a block string. Line terminators are normalized to \n.
func BlockStringValue(raw string) string {
	lines := splitLines(raw)

	commonIndent := -1
	for _, line := range lines[1:] {
		indent := leadingWhitespace(line)
		if indent == len(line) {
			continue
		}
		if commonIndent == -1 || indent < commonIndent {
			commonIndent = indent
		}
	}

	if commonIndent > 0 {
		for i := 1; i < len(lines); i++ {
			if len(lines[i]) < commonIndent {
				lines[i] = ""
				continue
			}
			lines[i] = lines[i][commonIndent:]
		}
	}

	for len(lines) > 0 && isBlank(lines[0]) {
		lines = lines[1:]
	}
	for len(lines) > 0 && isBlank(lines[len(lines)-1]) {
		lines = lines[:len(lines)-1]
	}

	return strings.Join(lines, "\n")
}

func splitLines(s string) []string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	return strings.Split(s, "\n")
}

func leadingWhitespace(s string) int {
	i := 0
	for i < len(s) && (s[i] == runes.SPACE || s[i] == runes.TAB) {
		i++
	}
	return i
}

func isBlank(s string) bool {
	return leadingWhitespace(s) == len(s)
}

func (l *Lexer) byteAt(pos int) byte {
	if pos >= len(l.input) {
		return runes.EOF
	}
	return l.input[pos]
}

func (l *Lexer) errorAt(pos int, format string, args ...interface{}) error {
	return graphqlerrors.NewSyntaxError(l.input, token.Token{Start: pos, End: pos}, fmt.Sprintf(format, args...))
}

// printCharAt renders the character at pos for error messages, <EOF> past the end of input.
func printCharAt(input string, pos int) string {
	if pos >= len(input) {
		return "<EOF>"
	}
	r, _ := utf8.DecodeRuneInString(input[pos:])
	if r < 0x20 || r == 0x7f {
		return fmt.Sprintf(`"\u%04X"`, r)
	}
	return strconv.Quote(string(r))
}

func runeIsDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func runeIsNameStart(c byte) bool {
	return c == runes.UNDERSCORE || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func runeIsIdent(c byte) bool {
	return runeIsNameStart(c) || runeIsDigit(c)
}
