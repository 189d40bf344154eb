package ast

type DirectiveLocation int

const (
	DirectiveLocationUnknown DirectiveLocation = iota

	ExecutableDirectiveLocationQuery
	ExecutableDirectiveLocationMutation
	ExecutableDirectiveLocationSubscription
	ExecutableDirectiveLocationField
	ExecutableDirectiveLocationFragmentDefinition
	ExecutableDirectiveLocationFragmentSpread
	ExecutableDirectiveLocationInlineFragment
	ExecutableDirectiveLocationVariableDefinition

	TypeSystemDirectiveLocationSchema
	TypeSystemDirectiveLocationScalar
	TypeSystemDirectiveLocationObject
	TypeSystemDirectiveLocationFieldDefinition
	TypeSystemDirectiveLocationArgumentDefinition
	TypeSystemDirectiveLocationInterface
	TypeSystemDirectiveLocationUnion
	TypeSystemDirectiveLocationEnum
	TypeSystemDirectiveLocationEnumValue
	TypeSystemDirectiveLocationInputObject
	TypeSystemDirectiveLocationInputFieldDefinition
)

var directiveLocationNames = map[DirectiveLocation]string{
	ExecutableDirectiveLocationQuery:                "QUERY",
	ExecutableDirectiveLocationMutation:             "MUTATION",
	ExecutableDirectiveLocationSubscription:         "SUBSCRIPTION",
	ExecutableDirectiveLocationField:                "FIELD",
	ExecutableDirectiveLocationFragmentDefinition:   "FRAGMENT_DEFINITION",
	ExecutableDirectiveLocationFragmentSpread:       "FRAGMENT_SPREAD",
	ExecutableDirectiveLocationInlineFragment:       "INLINE_FRAGMENT",
	ExecutableDirectiveLocationVariableDefinition:   "VARIABLE_DEFINITION",
	TypeSystemDirectiveLocationSchema:               "SCHEMA",
	TypeSystemDirectiveLocationScalar:               "SCALAR",
	TypeSystemDirectiveLocationObject:               "OBJECT",
	TypeSystemDirectiveLocationFieldDefinition:      "FIELD_DEFINITION",
	TypeSystemDirectiveLocationArgumentDefinition:   "ARGUMENT_DEFINITION",
	TypeSystemDirectiveLocationInterface:            "INTERFACE",
	TypeSystemDirectiveLocationUnion:                "UNION",
	TypeSystemDirectiveLocationEnum:                 "ENUM",
	TypeSystemDirectiveLocationEnumValue:            "ENUM_VALUE",
	TypeSystemDirectiveLocationInputObject:          "INPUT_OBJECT",
	TypeSystemDirectiveLocationInputFieldDefinition: "INPUT_FIELD_DEFINITION",
}

var directiveLocationsByName = func() map[string]DirectiveLocation {
	out := make(map[string]DirectiveLocation, len(directiveLocationNames))
	for location, name := range directiveLocationNames {
		out[name] = location
	}
	return out
}()

func (d DirectiveLocation) String() string {
	if name, ok := directiveLocationNames[d]; ok {
		return name
	}
	return "UNKNOWN"
}

func (d DirectiveLocation) IsExecutable() bool {
	return d >= ExecutableDirectiveLocationQuery && d <= ExecutableDirectiveLocationVariableDefinition
}

func (d DirectiveLocation) IsTypeSystem() bool {
	return d >= TypeSystemDirectiveLocationSchema && d <= TypeSystemDirectiveLocationInputFieldDefinition
}

// ParseDirectiveLocation matches name case-sensitively against the GraphQL directive location vocabulary.
func ParseDirectiveLocation(name string) (DirectiveLocation, bool) {
	location, ok := directiveLocationsByName[name]
	return location, ok
}
