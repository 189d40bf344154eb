package ast

// Variable
// example:
//
//	$id
type Variable struct {
	Loc  *Location
	Name *Name
}

func (n *Variable) Kind() NodeKind      { return NodeKindVariable }
func (n *Variable) Location() *Location { return n.Loc }
func (*Variable) node()                 {}
func (*Variable) valueNode()            {}

// IntValue keeps the literal as written, e.g. -42
type IntValue struct {
	Loc *Location
	Raw string
}

func (n *IntValue) Kind() NodeKind      { return NodeKindIntValue }
func (n *IntValue) Location() *Location { return n.Loc }
func (*IntValue) node()                 {}
func (*IntValue) valueNode()            {}

// FloatValue keeps the literal as written, e.g. 1.5e-3
type FloatValue struct {
	Loc *Location
	Raw string
}

func (n *FloatValue) Kind() NodeKind      { return NodeKindFloatValue }
func (n *FloatValue) Location() *Location { return n.Loc }
func (*FloatValue) node()                 {}
func (*FloatValue) valueNode()            {}

// StringValue holds the cooked string: escapes are resolved and block strings are dedented.
// Block reports whether the literal was written as a """block string""".
type StringValue struct {
	Loc   *Location
	Value string
	Block bool
}

func (n *StringValue) Kind() NodeKind      { return NodeKindStringValue }
func (n *StringValue) Location() *Location { return n.Loc }
func (*StringValue) node()                 {}
func (*StringValue) valueNode()            {}

type BooleanValue struct {
	Loc   *Location
	Value bool
}

func (n *BooleanValue) Kind() NodeKind      { return NodeKindBooleanValue }
func (n *BooleanValue) Location() *Location { return n.Loc }
func (*BooleanValue) node()                 {}
func (*BooleanValue) valueNode()            {}

type NullValue struct {
	Loc *Location
}

func (n *NullValue) Kind() NodeKind      { return NodeKindNullValue }
func (n *NullValue) Location() *Location { return n.Loc }
func (*NullValue) node()                 {}
func (*NullValue) valueNode()            {}

// EnumValue is any name literal other than true, false and null.
type EnumValue struct {
	Loc  *Location
	Name string
}

func (n *EnumValue) Kind() NodeKind      { return NodeKindEnumValue }
func (n *EnumValue) Location() *Location { return n.Loc }
func (*EnumValue) node()                 {}
func (*EnumValue) valueNode()            {}

// ListValue
// example:
//
//	[1, 2, $three]
type ListValue struct {
	Loc    *Location
	Values []Value
}

func (n *ListValue) Kind() NodeKind      { return NodeKindListValue }
func (n *ListValue) Location() *Location { return n.Loc }
func (*ListValue) node()                 {}
func (*ListValue) valueNode()            {}

// ObjectValue
// example:
//
//	{lon: 12.43, lat: -53.211}
type ObjectValue struct {
	Loc    *Location
	Fields []*ObjectField
}

func (n *ObjectValue) Kind() NodeKind      { return NodeKindObjectValue }
func (n *ObjectValue) Location() *Location { return n.Loc }
func (*ObjectValue) node()                 {}
func (*ObjectValue) valueNode()            {}

type ObjectField struct {
	Loc   *Location
	Name  *Name
	Value Value
}

func (n *ObjectField) Kind() NodeKind      { return NodeKindObjectField }
func (n *ObjectField) Location() *Location { return n.Loc }
func (*ObjectField) node()                 {}
