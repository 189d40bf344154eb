package ast

import (
	"fmt"

	"github.com/wundergraph/gqlast/pkg/lexer/literal"
)

type OperationType int

const (
	OperationTypeUnknown OperationType = iota
	OperationTypeQuery
	OperationTypeMutation
	OperationTypeSubscription
)

// Name returns a human-readable operation name for the given OperationType.
// If the operation is not one of the OperationType constants, it panics.
func (t OperationType) Name() string {
	switch t {
	case OperationTypeUnknown:
		return "unknown"
	case OperationTypeQuery:
		return literal.QUERY
	case OperationTypeMutation:
		return literal.MUTATION
	case OperationTypeSubscription:
		return literal.SUBSCRIPTION
	}
	panic(fmt.Errorf("unknown operation type %d", int(t)))
}

func (t OperationType) String() string {
	return t.Name()
}

// ParseOperationType maps the keywords query, mutation and subscription.
func ParseOperationType(value string) (OperationType, bool) {
	switch value {
	case literal.QUERY:
		return OperationTypeQuery, true
	case literal.MUTATION:
		return OperationTypeMutation, true
	case literal.SUBSCRIPTION:
		return OperationTypeSubscription, true
	default:
		return OperationTypeUnknown, false
	}
}

// OperationDefinition
// example:
//
//	query Q($id: ID!) @cached { user(id: $id) { name } }
//
// A bare selection set is an anonymous query: Operation is OperationTypeQuery and Name is nil.
type OperationDefinition struct {
	Loc                 *Location
	Operation           OperationType
	Name                *Name // optional
	VariableDefinitions []*VariableDefinition
	Directives          []*Directive
	SelectionSet        *SelectionSet
}

func (n *OperationDefinition) Kind() NodeKind          { return NodeKindOperationDefinition }
func (n *OperationDefinition) Location() *Location     { return n.Loc }
func (*OperationDefinition) node()                     {}
func (*OperationDefinition) definitionNode()           {}
func (*OperationDefinition) executableDefinitionNode() {}

// FragmentDefinition
// example:
//
//	fragment UserFields($size: Int) on User { avatar(size: $size) }
type FragmentDefinition struct {
	Loc                 *Location
	Name                *Name
	VariableDefinitions []*VariableDefinition // experimental fragment variables
	TypeCondition       *NamedType
	Directives          []*Directive
	SelectionSet        *SelectionSet
}

func (n *FragmentDefinition) Kind() NodeKind          { return NodeKindFragmentDefinition }
func (n *FragmentDefinition) Location() *Location     { return n.Loc }
func (*FragmentDefinition) node()                     {}
func (*FragmentDefinition) definitionNode()           {}
func (*FragmentDefinition) executableDefinitionNode() {}

// VariableDefinition
// example:
//
//	$devicePicSize: Int = 100 @deprecated
type VariableDefinition struct {
	Loc          *Location
	Variable     *Variable
	Type         Type
	DefaultValue Value // optional, const
	Directives   []*Directive
}

func (n *VariableDefinition) Kind() NodeKind      { return NodeKindVariableDefinition }
func (n *VariableDefinition) Location() *Location { return n.Loc }
func (*VariableDefinition) node()                 {}
