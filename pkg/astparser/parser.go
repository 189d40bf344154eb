// Package astparser parses GraphQL executable documents and schema definitions into an ast.Document.
//
// The parser is a recursive descent over one Builder per grammar symbol. Builders never call each
// other, every nested symbol is requested from the Director of the running parse. The registry of
// builders is immutable, one Parser can serve any number of goroutines.
package astparser

import (
	"errors"

	"github.com/jensneuse/abstractlogger"

	"github.com/wundergraph/gqlast/pkg/ast"
	"github.com/wundergraph/gqlast/pkg/graphqlerrors"
	"github.com/wundergraph/gqlast/pkg/lexer"
	"github.com/wundergraph/gqlast/pkg/lexer/keyword"
	"github.com/wundergraph/gqlast/pkg/operationreport"
)

// Options configure a single parse.
type Options struct {
	// NoLocation omits the Location of every node.
	NoLocation bool
	// MaxDepth limits the nesting of braces, brackets and parentheses, 0 means unlimited.
	MaxDepth int
	// MaxTokens limits the number of tokens of the document, 0 means unlimited.
	MaxTokens int
	Logger    abstractlogger.Logger
}

// Parser parses GraphQL documents.
type Parser struct {
	registry *Registry
	options  Options
	log      abstractlogger.Logger
}

// NewParser returns a Parser using the builders of the complete grammar, replaced where
// registryOptions say so.
func NewParser(options Options, registryOptions ...RegistryOption) *Parser {
	log := options.Logger
	if log == nil {
		log = abstractlogger.NoopLogger
	}
	return &Parser{
		registry: NewRegistry(registryOptions...),
		options:  options,
		log:      log,
	}
}

// Parse parses source into a Document. The first syntax error aborts the parse, no partial
// document is returned.
func (p *Parser) Parse(source string) (*ast.Document, error) {
	return p.ParseWithLexer(lexer.New(source), source)
}

// ParseWithLexer parses the token stream of lex. source is used to compute error positions.
func (p *Parser) ParseWithLexer(lex Lexer, source string) (*ast.Document, error) {
	cursor := newCursor(lex, source, p.options)
	document, err := buildAs[*ast.Document](NewDirector(p.registry, cursor), SymbolDocument)
	if err != nil {
		p.log.Debug("astparser.Parser.Parse",
			abstractlogger.Error(err),
			abstractlogger.Int("tokens", cursor.tokens),
		)
		return nil, err
	}
	p.log.Debug("astparser.Parser.Parse",
		abstractlogger.Int("definitions", len(document.Definitions)),
		abstractlogger.Int("tokens", cursor.tokens),
	)
	return document, nil
}

// ParseValue parses a standalone value literal, e.g. `{a: [1, 2], b: $var}`.
func (p *Parser) ParseValue(source string) (ast.Value, error) {
	return parseSingle[ast.Value](p, source, SymbolValue, false)
}

// ParseConstValue parses a standalone value literal that must not contain variables.
func (p *Parser) ParseConstValue(source string) (ast.Value, error) {
	return parseSingle[ast.Value](p, source, SymbolValue, true)
}

// ParseType parses a standalone type reference, e.g. `[String!]!`.
func (p *Parser) ParseType(source string) (ast.Type, error) {
	return parseSingle[ast.Type](p, source, SymbolType, false)
}

func parseSingle[T ast.Node](p *Parser, source string, symbol Symbol, constant bool) (T, error) {
	var zero T
	cursor := newCursor(lexer.New(source), source, p.options)
	if _, err := cursor.Expect(keyword.UNDEFINED); err != nil {
		return zero, err
	}
	director := NewDirector(p.registry, cursor)

	var (
		out T
		err error
	)
	if constant {
		out, err = buildConstAs[T](director, symbol)
	} else {
		out, err = buildAs[T](director, symbol)
	}
	if err != nil {
		return zero, err
	}
	if _, err = cursor.Expect(keyword.EOF); err != nil {
		return zero, err
	}
	return out, nil
}

// Parse parses source with a Parser configured by opts.
func Parse(source string, opts Options) (*ast.Document, error) {
	return NewParser(opts).Parse(source)
}

func ParseValue(source string, opts Options) (ast.Value, error) {
	return NewParser(opts).ParseValue(source)
}

func ParseType(source string, opts Options) (ast.Type, error) {
	return NewParser(opts).ParseType(source)
}

// ParseGraphqlDocumentString parses source and reports syntax errors as external errors.
func ParseGraphqlDocumentString(source string) (*ast.Document, operationreport.Report) {
	report := operationreport.Report{}
	document, err := Parse(source, Options{})
	if err != nil {
		var syntaxErr *graphqlerrors.SyntaxError
		if errors.As(err, &syntaxErr) {
			report.AddExternalError(syntaxErr.ExternalError())
		} else {
			report.AddInternalError(err)
		}
	}
	return document, report
}

// ParseGraphqlDocumentBytes is ParseGraphqlDocumentString for a byte slice.
func ParseGraphqlDocumentBytes(source []byte) (*ast.Document, operationreport.Report) {
	return ParseGraphqlDocumentString(string(source))
}
