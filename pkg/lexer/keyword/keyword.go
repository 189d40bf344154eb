// Package keyword contains the lexical token kinds of the GraphQL grammar.
//
// GraphQL keywords such as "query" or "on" are contextual, the lexer emits them as IDENT
// and the parser matches them by value (see package literal).
package keyword

import "fmt"

type Keyword int

const (
	UNDEFINED Keyword = iota
	EOF
	BANG
	DOLLAR
	AND
	LPAREN
	RPAREN
	SPREAD
	COLON
	EQUALS
	AT
	LBRACK
	RBRACK
	LBRACE
	PIPE
	RBRACE
	IDENT
	INTEGER
	FLOAT
	STRING
	BLOCKSTRING
)

func (k Keyword) String() string {
	switch k {
	case UNDEFINED:
		return "UNDEFINED"
	case EOF:
		return "EOF"
	case BANG:
		return "BANG"
	case DOLLAR:
		return "DOLLAR"
	case AND:
		return "AND"
	case LPAREN:
		return "LPAREN"
	case RPAREN:
		return "RPAREN"
	case SPREAD:
		return "SPREAD"
	case COLON:
		return "COLON"
	case EQUALS:
		return "EQUALS"
	case AT:
		return "AT"
	case LBRACK:
		return "LBRACK"
	case RBRACK:
		return "RBRACK"
	case LBRACE:
		return "LBRACE"
	case PIPE:
		return "PIPE"
	case RBRACE:
		return "RBRACE"
	case IDENT:
		return "IDENT"
	case INTEGER:
		return "INTEGER"
	case FLOAT:
		return "FLOAT"
	case STRING:
		return "STRING"
	case BLOCKSTRING:
		return "BLOCKSTRING"
	default:
		return fmt.Sprintf("#undefined String case for %d# (see keyword.go)", k)
	}
}

// Desc is the human readable description used in syntax error messages.
func (k Keyword) Desc() string {
	switch k {
	case EOF:
		return "<EOF>"
	case BANG:
		return "!"
	case DOLLAR:
		return "$"
	case AND:
		return "&"
	case LPAREN:
		return "("
	case RPAREN:
		return ")"
	case SPREAD:
		return "..."
	case COLON:
		return ":"
	case EQUALS:
		return "="
	case AT:
		return "@"
	case LBRACK:
		return "["
	case RBRACK:
		return "]"
	case LBRACE:
		return "{"
	case PIPE:
		return "|"
	case RBRACE:
		return "}"
	case IDENT:
		return "Name"
	case INTEGER:
		return "Int"
	case FLOAT:
		return "Float"
	case STRING:
		return "String"
	case BLOCKSTRING:
		return "BlockString"
	default:
		return k.String()
	}
}

// IsPunctuator reports whether the keyword is a fixed single or triple character token.
func (k Keyword) IsPunctuator() bool {
	return k >= BANG && k <= RBRACE
}
