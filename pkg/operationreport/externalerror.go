package operationreport

import (
	"github.com/wundergraph/gqlast/pkg/ast"
)

// Location is a 1-based line/column pair as rendered in a GraphQL error response
type Location struct {
	Line   uint32 `json:"line"`
	Column uint32 `json:"column"`
}

type ExternalError struct {
	Message   string     `json:"message"`
	Path      ast.Path   `json:"path,omitempty"`
	Locations []Location `json:"locations,omitempty"`
}

func (e ExternalError) Error() string {
	return e.Message
}
