package ast

// SelectionSet holds at least one selection when produced by the parser.
type SelectionSet struct {
	Loc        *Location
	Selections []Selection
}

func (n *SelectionSet) Kind() NodeKind      { return NodeKindSelectionSet }
func (n *SelectionSet) Location() *Location { return n.Loc }
func (*SelectionSet) node()                 {}

// Field
// example:
//
//	smallPic: profilePic(size: 64) @skip(if: $flag) { url }
type Field struct {
	Loc          *Location
	Alias        *Name // optional
	Name         *Name
	Arguments    []*Argument
	Directives   []*Directive
	SelectionSet *SelectionSet // optional
}

func (n *Field) Kind() NodeKind      { return NodeKindField }
func (n *Field) Location() *Location { return n.Loc }
func (*Field) node()                 {}
func (*Field) selectionNode()        {}

// ResponseKey is the alias if present, the field name otherwise.
func (n *Field) ResponseKey() string {
	if n.Alias != nil {
		return n.Alias.Value
	}
	return n.Name.NameValue()
}

// FragmentSpread
// example:
//
//	...UserFields @include(if: $withUser)
type FragmentSpread struct {
	Loc        *Location
	Name       *Name
	Directives []*Directive
}

func (n *FragmentSpread) Kind() NodeKind      { return NodeKindFragmentSpread }
func (n *FragmentSpread) Location() *Location { return n.Loc }
func (*FragmentSpread) node()                 {}
func (*FragmentSpread) selectionNode()        {}

// InlineFragment
// example:
//
//	... on User {
//	     friends {
//	       count
//	     }
//	   }
type InlineFragment struct {
	Loc           *Location
	TypeCondition *NamedType // optional
	Directives    []*Directive
	SelectionSet  *SelectionSet
}

func (n *InlineFragment) Kind() NodeKind      { return NodeKindInlineFragment }
func (n *InlineFragment) Location() *Location { return n.Loc }
func (*InlineFragment) node()                 {}
func (*InlineFragment) selectionNode()        {}

// Argument
// example:
//
//	size: 64
type Argument struct {
	Loc   *Location
	Name  *Name
	Value Value
}

func (n *Argument) Kind() NodeKind      { return NodeKindArgument }
func (n *Argument) Location() *Location { return n.Loc }
func (*Argument) node()                 {}

// Directive
// example:
//
//	@include(if: $withUser)
type Directive struct {
	Loc       *Location
	Name      *Name
	Arguments []*Argument
}

func (n *Directive) Kind() NodeKind      { return NodeKindDirective }
func (n *Directive) Location() *Location { return n.Loc }
func (*Directive) node()                 {}
