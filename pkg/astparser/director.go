package astparser

import (
	"fmt"

	"github.com/wundergraph/gqlast/pkg/ast"
)

// Builder parses exactly one grammar symbol at the current position of the director's cursor.
// Builders never call each other, nested symbols are requested through Director.Build.
type Builder interface {
	Build(d *Director) (ast.Node, error)
}

type BuilderFunc func(d *Director) (ast.Node, error)

func (f BuilderFunc) Build(d *Director) (ast.Node, error) {
	return f(d)
}

// Registry maps every Symbol to its Builder. It is immutable once NewRegistry returns and may be
// shared by any number of concurrent parses.
type Registry struct {
	builders [symbolCount]Builder
}

type RegistryOption func(r *Registry)

// WithBuilder replaces the builder registered for symbol.
func WithBuilder(symbol Symbol, builder Builder) RegistryOption {
	return func(r *Registry) {
		r.builders[symbol] = builder
	}
}

// NewRegistry returns a registry holding the builders of the complete GraphQL grammar.
func NewRegistry(options ...RegistryOption) *Registry {
	r := &Registry{}

	r.builders[SymbolDocument] = BuilderFunc(buildDocument)
	r.builders[SymbolDefinition] = BuilderFunc(buildDefinition)
	r.builders[SymbolOperationDefinition] = BuilderFunc(buildOperationDefinition)
	r.builders[SymbolFragmentDefinition] = BuilderFunc(buildFragmentDefinition)
	r.builders[SymbolFragmentName] = BuilderFunc(buildFragmentName)
	r.builders[SymbolVariableDefinition] = BuilderFunc(buildVariableDefinition)
	r.builders[SymbolVariable] = BuilderFunc(buildVariable)
	r.builders[SymbolSelectionSet] = BuilderFunc(buildSelectionSet)
	r.builders[SymbolSelection] = BuilderFunc(buildSelection)
	r.builders[SymbolField] = BuilderFunc(buildField)
	r.builders[SymbolFragment] = BuilderFunc(buildFragment)
	r.builders[SymbolArgument] = BuilderFunc(buildArgument)
	r.builders[SymbolDirective] = BuilderFunc(buildDirective)
	r.builders[SymbolName] = BuilderFunc(buildName)
	r.builders[SymbolNamedType] = BuilderFunc(buildNamedType)
	r.builders[SymbolType] = BuilderFunc(buildType)
	r.builders[SymbolValue] = BuilderFunc(buildValue)
	r.builders[SymbolObjectField] = BuilderFunc(buildObjectField)
	r.builders[SymbolDescription] = BuilderFunc(buildDescription)

	r.builders[SymbolTypeSystemDefinition] = BuilderFunc(buildTypeSystemDefinition)
	r.builders[SymbolSchemaDefinition] = BuilderFunc(buildSchemaDefinition)
	r.builders[SymbolOperationTypeDefinition] = BuilderFunc(buildOperationTypeDefinition)
	r.builders[SymbolScalarTypeDefinition] = BuilderFunc(buildScalarTypeDefinition)
	r.builders[SymbolObjectTypeDefinition] = BuilderFunc(buildObjectTypeDefinition)
	r.builders[SymbolFieldDefinition] = BuilderFunc(buildFieldDefinition)
	r.builders[SymbolInputValueDefinition] = BuilderFunc(buildInputValueDefinition)
	r.builders[SymbolInterfaceTypeDefinition] = BuilderFunc(buildInterfaceTypeDefinition)
	r.builders[SymbolUnionTypeDefinition] = BuilderFunc(buildUnionTypeDefinition)
	r.builders[SymbolEnumTypeDefinition] = BuilderFunc(buildEnumTypeDefinition)
	r.builders[SymbolEnumValueDefinition] = BuilderFunc(buildEnumValueDefinition)
	r.builders[SymbolInputObjectTypeDefinition] = BuilderFunc(buildInputObjectTypeDefinition)
	r.builders[SymbolDirectiveDefinition] = BuilderFunc(buildDirectiveDefinition)
	r.builders[SymbolDirectiveLocation] = BuilderFunc(buildDirectiveLocation)

	r.builders[SymbolTypeSystemExtension] = BuilderFunc(buildTypeSystemExtension)
	r.builders[SymbolSchemaExtension] = BuilderFunc(buildSchemaExtension)
	r.builders[SymbolScalarTypeExtension] = BuilderFunc(buildScalarTypeExtension)
	r.builders[SymbolObjectTypeExtension] = BuilderFunc(buildObjectTypeExtension)
	r.builders[SymbolInterfaceTypeExtension] = BuilderFunc(buildInterfaceTypeExtension)
	r.builders[SymbolUnionTypeExtension] = BuilderFunc(buildUnionTypeExtension)
	r.builders[SymbolEnumTypeExtension] = BuilderFunc(buildEnumTypeExtension)
	r.builders[SymbolInputObjectTypeExtension] = BuilderFunc(buildInputObjectTypeExtension)

	for _, option := range options {
		option(r)
	}
	return r
}

// Builder returns the builder registered for symbol.
func (r *Registry) Builder(symbol Symbol) (Builder, bool) {
	if symbol <= SymbolUnknown || symbol >= symbolCount || r.builders[symbol] == nil {
		return nil, false
	}
	return r.builders[symbol], true
}

// Director mediates the recursive descent of a single parse: builders ask it for nested symbols
// and it forwards each request to the registered builder. A Director belongs to one parse and
// must not be shared.
type Director struct {
	registry *Registry
	cursor   *Cursor
	constant bool
}

func NewDirector(registry *Registry, cursor *Cursor) *Director {
	return &Director{
		registry: registry,
		cursor:   cursor,
	}
}

func (d *Director) Cursor() *Cursor {
	return d.cursor
}

// Const reports whether the director is building a constant value, in which variables are not allowed.
func (d *Director) Const() bool {
	return d.constant
}

// Build parses symbol at the current position.
func (d *Director) Build(symbol Symbol) (ast.Node, error) {
	builder, ok := d.registry.Builder(symbol)
	if !ok {
		return nil, fmt.Errorf("astparser: no builder registered for symbol %s", symbol)
	}
	return builder.Build(d)
}

// BuildConst parses symbol in a constant context: default values and directives of type system
// definitions.
func (d *Director) BuildConst(symbol Symbol) (ast.Node, error) {
	previous := d.constant
	d.constant = true
	defer func() {
		d.constant = previous
	}()
	return d.Build(symbol)
}

// buildAs builds symbol and asserts the node type the caller expects.
func buildAs[T ast.Node](d *Director, symbol Symbol) (T, error) {
	var zero T
	node, err := d.Build(symbol)
	if err != nil {
		return zero, err
	}
	out, ok := node.(T)
	if !ok {
		return zero, fmt.Errorf("astparser: builder for %s returned %T", symbol, node)
	}
	return out, nil
}

func buildConstAs[T ast.Node](d *Director, symbol Symbol) (T, error) {
	var zero T
	node, err := d.BuildConst(symbol)
	if err != nil {
		return zero, err
	}
	out, ok := node.(T)
	if !ok {
		return zero, fmt.Errorf("astparser: builder for %s returned %T", symbol, node)
	}
	return out, nil
}

// builds returns a parseOne function for the list combinators.
func builds[T ast.Node](d *Director, symbol Symbol) func() (T, error) {
	return func() (T, error) {
		return buildAs[T](d, symbol)
	}
}

func buildsConst[T ast.Node](d *Director, symbol Symbol) func() (T, error) {
	return func() (T, error) {
		return buildConstAs[T](d, symbol)
	}
}
