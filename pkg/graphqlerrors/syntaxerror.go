package graphqlerrors

import (
	"fmt"

	"github.com/wundergraph/gqlast/pkg/ast"
	"github.com/wundergraph/gqlast/pkg/lexer/position"
	"github.com/wundergraph/gqlast/pkg/lexer/token"
	"github.com/wundergraph/gqlast/pkg/operationreport"
)

// SyntaxError is returned for every lexical or grammatical violation. A parse never returns a
// partial document together with a SyntaxError.
type SyntaxError struct {
	Message string
	// Token is the offending token, its Keyword is keyword.EOF when the input was exhausted
	Token    token.Token
	Location ast.Location
	Position position.Position
}

// NewSyntaxError positions message at tok within source.
func NewSyntaxError(source string, tok token.Token, message string) *SyntaxError {
	return &SyntaxError{
		Message:  message,
		Token:    tok,
		Location: ast.Location{Start: tok.Start, End: tok.End},
		Position: position.FromOffset(source, tok.Start),
	}
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("Syntax Error: %s (%s)", e.Message, e.Position)
}

func (e *SyntaxError) ExternalError() operationreport.ExternalError {
	return operationreport.ExternalError{
		Message: e.Message,
		Locations: []operationreport.Location{
			{
				Line:   e.Position.Line,
				Column: e.Position.Column,
			},
		},
	}
}
