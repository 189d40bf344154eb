// Package literal holds the reserved words of GraphQL.
// None of them is a token kind of its own, they are matched against the value of an IDENT token.
package literal

const (
	QUERY        = "query"
	MUTATION     = "mutation"
	SUBSCRIPTION = "subscription"
	FRAGMENT     = "fragment"
	ON           = "on"

	SCHEMA     = "schema"
	SCALAR     = "scalar"
	TYPE       = "type"
	INTERFACE  = "interface"
	UNION      = "union"
	ENUM       = "enum"
	INPUT      = "input"
	EXTEND     = "extend"
	DIRECTIVE  = "directive"
	IMPLEMENTS = "implements"
	REPEATABLE = "repeatable"

	TRUE  = "true"
	FALSE = "false"
	NULL  = "null"
)
