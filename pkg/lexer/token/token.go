package token

import (
	"fmt"

	"github.com/wundergraph/gqlast/pkg/lexer/keyword"
)

// Token is a single lexical token. Start and End are byte offsets into the source, End is exclusive.
// Value is the literal text for IDENT, INTEGER and FLOAT, the cooked value for STRING and BLOCKSTRING.
type Token struct {
	Keyword keyword.Keyword
	Value   string
	Start   int
	End     int
}

func (t Token) String() string {
	return fmt.Sprintf("token:: Keyword: %s, Value: %q, Pos: %d-%d", t.Keyword, t.Value, t.Start, t.End)
}

// Desc renders the token the way syntax error messages refer to it, e.g. <EOF>, "{" or Name "foo".
func (t Token) Desc() string {
	switch {
	case t.Keyword == keyword.EOF:
		return t.Keyword.Desc()
	case t.Keyword.IsPunctuator():
		return fmt.Sprintf("%q", t.Keyword.Desc())
	case t.Keyword >= keyword.IDENT && t.Keyword <= keyword.BLOCKSTRING:
		return fmt.Sprintf("%s %q", t.Keyword.Desc(), t.Value)
	default:
		return t.Keyword.Desc()
	}
}

func (t Token) Is(k keyword.Keyword) bool {
	return t.Keyword == k
}

// IsIdent reports whether the token is a name with the given value.
func (t Token) IsIdent(value string) bool {
	return t.Keyword == keyword.IDENT && t.Value == value
}
