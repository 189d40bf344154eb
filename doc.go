// Package gqlast is a GraphQL parser producing an immutable, JSON friendly AST and a walker to
// rewrite it.
//
// About this library
//
// The parser is split into small builders, one per grammar symbol, that are looked up in a
// registry for every nested symbol. Replacing a builder changes how one part of the grammar is
// parsed without touching the others.
//
// The walker never mutates the tree it walks. Visitors delete a node by returning nil and replace
// it by returning another node, the walk returns the rewritten tree. Several visitors can share one
// walk with astvisitor.Parallel.
//
// Packages
//
//   - pkg/lexer: tokens of the GraphQL source text
//   - pkg/ast: node types, canonical JSON form, structural equality
//   - pkg/astparser: the parser, its builders and the registry
//   - pkg/astvisitor: walker and visitor combinators
//   - pkg/astcache: LRU cache of parsed documents
//   - cmd/gqlast: command line interface
package gqlast
