package schema

import (
	"encoding/json"
	"fmt"
)

// introspectionResponse mirrors the canonical introspection payload shape
// (§6): `data.__schema.{queryType,mutationType,types[...]}`. Field names
// follow the wire format exactly so encoding/json can decode it directly,
// the same flat-struct-plus-tags style the teacher's config loader uses.
type introspectionResponse struct {
	Data struct {
		Schema introspectionSchema `json:"__schema"`
	} `json:"data"`
}

type introspectionSchema struct {
	QueryType        *introspectionNamedRef  `json:"queryType"`
	MutationType     *introspectionNamedRef  `json:"mutationType"`
	SubscriptionType *introspectionNamedRef  `json:"subscriptionType"`
	Types            []introspectionFullType `json:"types"`
}

type introspectionNamedRef struct {
	Name string `json:"name"`
}

type introspectionFullType struct {
	Kind          string                    `json:"kind"`
	Name          string                    `json:"name"`
	Fields        []introspectionField      `json:"fields"`
	InputFields   []introspectionInputValue `json:"inputFields"`
	EnumValues    []introspectionEnumValue  `json:"enumValues"`
	Interfaces    []introspectionNamedRef   `json:"interfaces"`
	PossibleTypes []introspectionNamedRef   `json:"possibleTypes"`
}

type introspectionField struct {
	Name string                    `json:"name"`
	Args []introspectionInputValue `json:"args"`
	Type introspectionTypeRef      `json:"type"`
}

type introspectionInputValue struct {
	Name string               `json:"name"`
	Type introspectionTypeRef `json:"type"`
}

type introspectionEnumValue struct {
	Name string `json:"name"`
}

type introspectionTypeRef struct {
	Kind   string                `json:"kind"`
	Name   *string               `json:"name"`
	OfType *introspectionTypeRef `json:"ofType"`
}

// toTypeClass converts the wire TypeRef's NON_NULL/LIST wrapper chain
// into a TypeClass, grounded on guusec-gqlparse's `unwrap`/`getTypeString`
// pair which walks the identical `ofType` chain.
func toTypeClass(t introspectionTypeRef) TypeClass {
	switch t.Kind {
	case "NON_NULL":
		inner := toTypeClass(*t.OfType)
		return TypeClass{Kind: ClassNonNull, Inner: &inner}
	case "LIST":
		inner := toTypeClass(*t.OfType)
		return TypeClass{Kind: ClassList, Inner: &inner}
	default:
		name := ""
		if t.Name != nil {
			name = *t.Name
		}
		return TypeClass{Kind: wireKindToClass(t.Kind), Name: name}
	}
}

func wireKindToClass(wireKind string) TypeClassKind {
	switch wireKind {
	case "OBJECT":
		return ClassObject
	case "INTERFACE":
		return ClassInterface
	case "INPUT_OBJECT":
		return ClassInputObject
	case "ENUM":
		return ClassEnum
	case "UNION":
		return ClassUnion
	default:
		return ClassScalar
	}
}

func toArgList(in []introspectionInputValue) ArgList {
	out := make(ArgList, len(in))
	for i, a := range in {
		out[i] = Arg{Name: a.Name, ArgType: toTypeClass(a.Type)}
	}
	return out
}

func toFields(in []introspectionField) []Field {
	out := make([]Field, len(in))
	for i, f := range in {
		out[i] = Field{Name: f.Name, FieldType: toTypeClass(f.Type), Args: toArgList(f.Args)}
	}
	return out
}

func toInputFields(in []introspectionInputValue) []Field {
	out := make([]Field, len(in))
	for i, f := range in {
		out[i] = Field{Name: f.Name, FieldType: toTypeClass(f.Type)}
	}
	return out
}

func namedRefs(in []introspectionNamedRef) []string {
	out := make([]string, len(in))
	for i, r := range in {
		out[i] = r.Name
	}
	return out
}

// FromIntrospection builds a Schema from a standard introspection query
// response (§4.3 Construction). Unrecognised type kinds are ignored;
// every recognised kind (OBJECT, INTERFACE, INPUT_OBJECT, ENUM, UNION)
// gets a Type entry. Scalars are never materialised as a Type — they
// only ever appear as a referencing TypeClass.
func FromIntrospection(data []byte) (*Schema, error) {
	var resp introspectionResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("schema: decoding introspection response: %w", err)
	}

	raw := resp.Data.Schema
	if raw.QueryType == nil || raw.QueryType.Name == "" {
		return nil, fmt.Errorf("schema: introspection response has no queryType")
	}

	s := &Schema{
		QueryRootName: raw.QueryType.Name,
		types:         make(map[string]Type, len(raw.Types)),
	}
	if raw.MutationType != nil {
		s.MutationRootName = raw.MutationType.Name
	}

	for _, ft := range raw.Types {
		switch ft.Kind {
		case "OBJECT":
			s.types[ft.Name] = Type{Kind: KindObject, Object: &ObjectType{
				Name:   ft.Name,
				Fields: toFields(ft.Fields),
			}}
		case "INTERFACE":
			s.types[ft.Name] = Type{Kind: KindInterface, Interface: &InterfaceType{
				Name:          ft.Name,
				Fields:        toFields(ft.Fields),
				PossibleTypes: namedRefs(ft.PossibleTypes),
			}}
		case "INPUT_OBJECT":
			s.types[ft.Name] = Type{Kind: KindInputObject, InputObject: &InputObjectType{
				Name:   ft.Name,
				Fields: toInputFields(ft.InputFields),
			}}
		case "ENUM":
			values := make([]string, len(ft.EnumValues))
			for i, v := range ft.EnumValues {
				values[i] = v.Name
			}
			s.types[ft.Name] = Type{Kind: KindEnum, Enum: &EnumType{Name: ft.Name, Values: values}}
		case "UNION":
			s.types[ft.Name] = Type{Kind: KindUnion, Union: &UnionType{
				Name:          ft.Name,
				PossibleTypes: namedRefs(ft.PossibleTypes),
			}}
		default:
			// SCALAR and anything unrecognised: no Type entry needed.
		}
	}

	if _, ok := s.TypeDefinition(s.QueryRootName); !ok {
		return nil, fmt.Errorf("schema: query root type %q not found among types", s.QueryRootName)
	}
	if s.MutationRootName != "" {
		if _, ok := s.TypeDefinition(s.MutationRootName); !ok {
			return nil, fmt.Errorf("schema: mutation root type %q not found among types", s.MutationRootName)
		}
	}

	return s, nil
}
