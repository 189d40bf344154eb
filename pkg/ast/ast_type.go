package ast

// NamedType
// example:
//
//	String
type NamedType struct {
	Loc  *Location
	Name *Name
}

func (n *NamedType) Kind() NodeKind      { return NodeKindNamedType }
func (n *NamedType) Location() *Location { return n.Loc }
func (*NamedType) node()                 {}
func (*NamedType) typeNode()             {}
func (*NamedType) nullableTypeNode()     {}

// ListType
// example:
//
//	[String!]
type ListType struct {
	Loc  *Location
	Type Type
}

func (n *ListType) Kind() NodeKind      { return NodeKindListType }
func (n *ListType) Location() *Location { return n.Loc }
func (*ListType) node()                 {}
func (*ListType) typeNode()             {}
func (*ListType) nullableTypeNode()     {}

// NonNullType wraps a NamedType or a ListType, String!! cannot be expressed.
type NonNullType struct {
	Loc  *Location
	Type NullableType
}

func (n *NonNullType) Kind() NodeKind      { return NodeKindNonNullType }
func (n *NonNullType) Location() *Location { return n.Loc }
func (*NonNullType) node()                 {}
func (*NonNullType) typeNode()             {}

// NamedTypeOf unwraps list and non-null wrappers down to the named type.
func NamedTypeOf(t Type) *NamedType {
	for {
		switch v := t.(type) {
		case *NamedType:
			return v
		case *ListType:
			t = v.Type
		case *NonNullType:
			t = v.Type
		default:
			return nil
		}
	}
}

// TypeString renders a type reference the way it is written in GraphQL, e.g. [String!]!
func TypeString(t Type) string {
	switch v := t.(type) {
	case *NamedType:
		return v.Name.NameValue()
	case *ListType:
		return "[" + TypeString(v.Type) + "]"
	case *NonNullType:
		return TypeString(v.Type) + "!"
	default:
		return ""
	}
}
