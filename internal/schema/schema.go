// Package schema is the in-memory type graph built from a GraphQL
// introspection response (§3.3, §4.3). Construction is a pure function of
// the introspection JSON; the result is immutable and freely shared by
// reference with the analyzer and the rest of the program. Its only
// internal dependency is internal/suggest.
package schema

import (
	"fmt"

	"github.com/itarato/gomqlet/internal/suggest"
)

// TypeKind tags which of Type's five variants (§9 GLOSSARY) is populated.
// Scalar and the wrapper kinds (NonNull, List) never appear here — they
// only ever occur inside a TypeClass, since a bare scalar has no fields
// or values of its own to hold a Type entry for.
type TypeKind int

const (
	KindObject TypeKind = iota
	KindInterface
	KindInputObject
	KindEnum
	KindUnion
)

// Type is the five-variant sum §9 requires, modelled as a tagged struct
// per spec §7 rather than an interface hierarchy, matching ParamValue's
// shape in internal/gqlast.
type Type struct {
	Kind        TypeKind
	Object      *ObjectType
	Interface   *InterfaceType
	InputObject *InputObjectType
	Enum        *EnumType
	Union       *UnionType
}

func (t Type) Name() string {
	switch t.Kind {
	case KindObject:
		return t.Object.Name
	case KindInterface:
		return t.Interface.Name
	case KindInputObject:
		return t.InputObject.Name
	case KindEnum:
		return t.Enum.Name
	case KindUnion:
		return t.Union.Name
	default:
		return ""
	}
}

// ObjectType is a composite type with a selectable field set.
//
// PossibleTypes is always empty: a concrete object type has no variants
// to fragment into, but ObjectType.PossibleTypeNames still exists (always
// returning no candidates) so analyzer code can treat Object/Interface
// scopes uniformly when resolving an inline fragment's `... on` target,
// per spec's "Object/Interface::possible_type_names" operation pairing.
type ObjectType struct {
	Name          string
	Fields        []Field
	PossibleTypes []string
}

func (o *ObjectType) field(name string) *Field {
	for i := range o.Fields {
		if o.Fields[i].Name == name {
			return &o.Fields[i]
		}
	}
	return nil
}

// FieldNames returns the completion candidates for a field selection at
// this scope (§4.3), fuzzy-filtered against prefix.
func (o *ObjectType) FieldNames(prefix string) []suggest.Elem {
	return suggest.Filter(names(o.Fields), "field", prefix)
}

func (o *ObjectType) PossibleTypeNames(prefix string) []suggest.Elem {
	return suggest.Filter(o.PossibleTypes, "type", prefix)
}

// InterfaceType is like ObjectType but also tracks the concrete object
// types that implement it, needed for union/interface fragment completion.
type InterfaceType struct {
	Name          string
	Fields        []Field
	PossibleTypes []string
}

func (i *InterfaceType) field(name string) *Field {
	for idx := range i.Fields {
		if i.Fields[idx].Name == name {
			return &i.Fields[idx]
		}
	}
	return nil
}

func (i *InterfaceType) FieldNames(prefix string) []suggest.Elem {
	return suggest.Filter(names(i.Fields), "field", prefix)
}

func (i *InterfaceType) PossibleTypeNames(prefix string) []suggest.Elem {
	return suggest.Filter(i.PossibleTypes, "type", prefix)
}

// InputObjectType backs object-literal argument values; its entries are
// still modelled as Field so ArgList-style argument resolution can treat
// an input object's fields the same way it treats a field's arguments.
type InputObjectType struct {
	Name   string
	Fields []Field
}

func (io *InputObjectType) field(name string) *Field {
	for i := range io.Fields {
		if io.Fields[i].Name == name {
			return &io.Fields[i]
		}
	}
	return nil
}

func (io *InputObjectType) FieldNames(prefix string) []suggest.Elem {
	return suggest.Filter(names(io.Fields), "input field", prefix)
}

// EnumType lists the literal values a Scalar(Enum) argument may take.
type EnumType struct {
	Name   string
	Values []string
}

func (e *EnumType) ValueNames(prefix string) []suggest.Elem {
	return suggest.Filter(e.Values, "enum value", prefix)
}

// UnionType lists the concrete object types a union may resolve to.
type UnionType struct {
	Name          string
	PossibleTypes []string
}

func (u *UnionType) PossibleTypeNames(prefix string) []suggest.Elem {
	return suggest.Filter(u.PossibleTypes, "type", prefix)
}

func names(fields []Field) []string {
	out := make([]string, len(fields))
	for i, f := range fields {
		out[i] = f.Name
	}
	return out
}

// Field is shared by ObjectType/InterfaceType (a selectable field, with
// arguments) and InputObjectType (an input field, Args always empty).
type Field struct {
	Name      string
	FieldType TypeClass
	Args      ArgList
}

// Arg is one entry of an ArgList: a named, typed argument.
type Arg struct {
	Name    string
	ArgType TypeClass
}

// ArgList is the ordered set of arguments a field accepts.
type ArgList []Arg

func (al ArgList) byName(name string) *Arg {
	for i := range al {
		if al[i].Name == name {
			return &al[i]
		}
	}
	return nil
}

// ArgNames returns completion candidates for an argument key position.
func (al ArgList) ArgNames(prefix string) []suggest.Elem {
	names := make([]string, len(al))
	for i, a := range al {
		names[i] = a.Name
	}
	return suggest.Filter(names, "argument", prefix)
}

// TypeClassKind tags TypeClass's eight concrete forms. The doc comment on
// TypeClass below reconciles this with the GLOSSARY's "seven-variant"
// count.
type TypeClassKind int

const (
	ClassObject TypeClassKind = iota
	ClassInterface
	ClassInputObject
	ClassEnum
	ClassScalar
	ClassUnion
	ClassNonNull
	ClassList
)

// TypeClass is the tagged union used wherever an argument or field
// *references* a type, rather than defining one (§3.3). It is modelled
// with eight named forms (Object/Interface/InputObject/Enum/Scalar/Union
// are leaves carrying just a name; NonNull/List wrap an inner TypeClass)
// — the GLOSSARY's "seven-variant" count appears to fold NonNull and
// List together as a single "wrapper" case; the implementation keeps
// them distinct tags since their unwrap behaviour differs in
// UnderlyingTypeName vs SkipNonNull.
type TypeClass struct {
	Kind  TypeClassKind
	Name  string
	Inner *TypeClass
}

// UnderlyingTypeName strips all NonNull/List wrappers and returns the
// leaf type name.
func (tc TypeClass) UnderlyingTypeName() string {
	cur := tc
	for cur.Kind == ClassNonNull || cur.Kind == ClassList {
		cur = *cur.Inner
	}
	return cur.Name
}

// SkipNonNull strips only the outermost NonNull wrapper, leaving List
// wrappers intact.
func (tc TypeClass) SkipNonNull() TypeClass {
	if tc.Kind == ClassNonNull {
		return *tc.Inner
	}
	return tc
}

// Schema is the full type graph: a flat, by-name mapping with no cyclic
// ownership (§7) — cross-references between types are always resolved by
// name through TypeDefinition, never by embedded pointer.
type Schema struct {
	QueryRootName    string
	MutationRootName string
	types            map[string]Type
}

// TypeDefinition looks up a type by name. The zero Type and false are
// returned for scalars and unrecognised names alike — callers that need
// to distinguish "scalar" from "unknown" do so via the referencing
// TypeClass's Kind before calling this.
func (s *Schema) TypeDefinition(name string) (Type, bool) {
	t, ok := s.types[name]
	return t, ok
}

// FieldType looks up a field on parent by name, strips its TypeClass
// wrappers, and resolves the resulting name in the schema (§4.3). It
// errors with a human-readable message at each failed step rather than
// panicking, since analyzer failures are surfaced as non-fatal
// diagnostics (§4.4 Failure semantics).
func (s *Schema) FieldType(parent Type, fieldName string) (Type, error) {
	var field *Field
	switch parent.Kind {
	case KindObject:
		field = parent.Object.field(fieldName)
	case KindInterface:
		field = parent.Interface.field(fieldName)
	case KindInputObject:
		field = parent.InputObject.field(fieldName)
	default:
		return Type{}, fmt.Errorf("schema: %q is not an object/interface/input-object type, has no field %q", parent.Name(), fieldName)
	}
	if field == nil {
		return Type{}, fmt.Errorf("schema: %q has no field named %q", parent.Name(), fieldName)
	}

	underlying := field.FieldType.UnderlyingTypeName()
	if underlying == "" {
		return Type{}, fmt.Errorf("schema: field %q.%q resolves to a scalar with no field set", parent.Name(), fieldName)
	}

	resolved, ok := s.TypeDefinition(underlying)
	if !ok {
		return Type{}, fmt.Errorf("schema: field %q.%q references unknown type %q", parent.Name(), fieldName, underlying)
	}
	return resolved, nil
}

// ArgListFor returns the ArgList belonging to a field on parent, or an
// error under the same conditions as FieldType.
func (s *Schema) ArgListFor(parent Type, fieldName string) (ArgList, error) {
	var field *Field
	switch parent.Kind {
	case KindObject:
		field = parent.Object.field(fieldName)
	case KindInterface:
		field = parent.Interface.field(fieldName)
	default:
		return nil, fmt.Errorf("schema: %q is not an object/interface type, has no field %q", parent.Name(), fieldName)
	}
	if field == nil {
		return nil, fmt.Errorf("schema: %q has no field named %q", parent.Name(), fieldName)
	}
	return field.Args, nil
}

// ArgType finds a named argument on the given ArgList and reports its
// declared type, for resolving the scope a value is being entered under.
func (al ArgList) ArgType(name string) (TypeClass, bool) {
	a := al.byName(name)
	if a == nil {
		return TypeClass{}, false
	}
	return a.ArgType, true
}

// InputFieldType resolves an input object's field the same way FieldType
// resolves an object's — used when recursing into a braced argument
// value whose declared TypeClass is InputObject.
func (s *Schema) InputFieldType(parent Type, fieldName string) (Type, error) {
	if parent.Kind != KindInputObject {
		return Type{}, fmt.Errorf("schema: %q is not an input object type", parent.Name())
	}
	field := parent.InputObject.field(fieldName)
	if field == nil {
		return Type{}, fmt.Errorf("schema: input object %q has no field named %q", parent.Name(), fieldName)
	}
	underlying := field.FieldType.UnderlyingTypeName()
	resolved, ok := s.TypeDefinition(underlying)
	if !ok {
		return Type{}, fmt.Errorf("schema: input field %q.%q references unknown type %q", parent.Name(), fieldName, underlying)
	}
	return resolved, nil
}

// InputFieldClass returns the declared TypeClass of an input object
// field without resolving it to a Type — needed when the field itself is
// the cursor's scope (e.g. a scalar or enum leaf).
func (s *Schema) InputFieldClass(parent Type, fieldName string) (TypeClass, bool) {
	if parent.Kind != KindInputObject {
		return TypeClass{}, false
	}
	field := parent.InputObject.field(fieldName)
	if field == nil {
		return TypeClass{}, false
	}
	return field.FieldType, true
}

// InputFieldNames proposes completion candidates for an input object's
// field-key position, mirroring ObjectType.FieldNames.
func (s *Schema) InputFieldNames(parent Type, prefix string) ([]suggest.Elem, error) {
	if parent.Kind != KindInputObject {
		return nil, fmt.Errorf("schema: %q is not an input object type", parent.Name())
	}
	return parent.InputObject.FieldNames(prefix), nil
}
