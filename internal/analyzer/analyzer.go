// Package analyzer implements the cursor locator (§4.4): given a parsed
// operation and a byte offset into its source, it walks the AST and the
// schema in lockstep to decide what, if anything, can be completed at
// that offset.
package analyzer

import (
	"github.com/itarato/gomqlet/internal/gqlast"
	"github.com/itarato/gomqlet/internal/schema"
	"github.com/itarato/gomqlet/internal/suggest"
)

// Analyze is the package's single entry point. A nil *suggest.Suggestion
// with a nil error means "cursor is inside the document but on no
// completable location". A non-nil error means the AST references a
// schema feature that could not be resolved; the caller surfaces it as a
// diagnostic rather than aborting the edit session.
func Analyze(root *gqlast.Root, cursorPos int, sch *schema.Schema) (*suggest.Suggestion, error) {
	rootName := sch.QueryRootName
	if root.Kind == gqlast.OpMutation {
		rootName = sch.MutationRootName
	}
	if rootName == "" {
		return nil, ErrUnknownRootType
	}

	rootType, ok := sch.TypeDefinition(rootName)
	if !ok {
		return nil, ErrUnknownRootType
	}

	a := &analyzer{sch: sch, cursorPos: cursorPos}
	return a.fieldList(root.Fields, rootType)
}

// analyzer threads the schema and a fixed cursor position through one
// descent; a fresh instance is built per Analyze call since the core is
// single-threaded and stateless between keystrokes (§8).
type analyzer struct {
	sch       *schema.Schema
	cursorPos int
}

func fieldNamesFor(scopeType schema.Type, prefix string) []suggest.Elem {
	switch scopeType.Kind {
	case schema.KindObject:
		return scopeType.Object.FieldNames(prefix)
	case schema.KindInterface:
		return scopeType.Interface.FieldNames(prefix)
	default:
		return nil
	}
}

func possibleTypeNamesFor(scopeType schema.Type, prefix string) ([]suggest.Elem, error) {
	switch scopeType.Kind {
	case schema.KindUnion:
		return scopeType.Union.PossibleTypeNames(prefix), nil
	case schema.KindInterface:
		return scopeType.Interface.PossibleTypeNames(prefix), nil
	case schema.KindObject:
		return scopeType.Object.PossibleTypeNames(prefix), nil
	default:
		return nil, ErrNotUnionLike
	}
}

// fieldList implements rule 2: find the child Field whose inclusive
// range contains the cursor and recurse, or — if the cursor is merely
// between fields — offer every field name the scope type has.
func (a *analyzer) fieldList(fl *gqlast.FieldList, scopeType schema.Type) (*suggest.Suggestion, error) {
	for i := range fl.Fields {
		f := &fl.Fields[i]
		if a.cursorPos >= f.StartPos && a.cursorPos <= f.EndPos {
			return a.field(f, scopeType)
		}
	}

	if a.cursorPos >= fl.StartPos && a.cursorPos < fl.EndPos {
		if scopeType.Kind != schema.KindObject && scopeType.Kind != schema.KindInterface {
			return nil, nil
		}
		return &suggest.Suggestion{Elems: fieldNamesFor(scopeType, "")}, nil
	}

	return nil, nil
}

func (a *analyzer) field(f *gqlast.Field, scopeType schema.Type) (*suggest.Suggestion, error) {
	switch {
	case f.Concrete != nil:
		return a.concreteField(f.Concrete, scopeType)
	case f.Union != nil:
		return a.unionField(f.Union, scopeType)
	default:
		return nil, nil
	}
}

// concreteField implements rule 3.
func (a *analyzer) concreteField(cf *gqlast.ConcreteField, scopeType schema.Type) (*suggest.Suggestion, error) {
	name := cf.Name

	if name.RangeInclusive(a.cursorPos) {
		if scopeType.Kind != schema.KindObject && scopeType.Kind != schema.KindInterface {
			return nil, ErrNotSelectable
		}
		tok := name
		return &suggest.Suggestion{Elems: fieldNamesFor(scopeType, name.Content), Token: &tok}, nil
	}

	if cf.Args != nil && a.cursorPos >= cf.Args.StartPos && a.cursorPos < cf.Args.EndPos {
		scopeArgs, err := a.sch.ArgListFor(scopeType, name.Content)
		if err != nil {
			return nil, err
		}
		return a.argList(cf.Args, scopeArgs)
	}

	if cf.FieldList != nil && a.cursorPos >= cf.FieldList.StartPos && a.cursorPos < cf.FieldList.EndPos {
		childType, err := a.sch.FieldType(scopeType, name.Content)
		if err != nil {
			return nil, err
		}
		return a.fieldList(cf.FieldList, childType)
	}

	return nil, nil
}

// unionField implements rule 4.
func (a *analyzer) unionField(uf *gqlast.UnionField, scopeType schema.Type) (*suggest.Suggestion, error) {
	if uf.TypeName.RangeInclusive(a.cursorPos) {
		elems, err := possibleTypeNamesFor(scopeType, uf.TypeName.Content)
		if err != nil {
			return nil, err
		}
		tok := uf.TypeName
		return &suggest.Suggestion{Elems: elems, Token: &tok}, nil
	}

	if uf.FieldList != nil && a.cursorPos >= uf.FieldList.StartPos && a.cursorPos < uf.FieldList.EndPos {
		fragType, ok := a.sch.TypeDefinition(uf.TypeName.Content)
		if !ok {
			return nil, ErrUnknownFragmentType
		}
		return a.fieldList(uf.FieldList, fragType)
	}

	return nil, nil
}

// argList implements rule 5.
func (a *analyzer) argList(al *gqlast.ArgList, scopeArgs schema.ArgList) (*suggest.Suggestion, error) {
	for i := range al.Params {
		p := &al.Params[i]
		if a.cursorPos >= p.StartPos && a.cursorPos <= p.EndPos {
			return a.param(p, scopeArgs)
		}
	}

	if a.cursorPos >= al.StartPos && a.cursorPos < al.EndPos {
		return &suggest.Suggestion{Elems: scopeArgs.ArgNames("")}, nil
	}

	return nil, nil
}

func (a *analyzer) param(p *gqlast.ParamKeyValuePair, scopeArgs schema.ArgList) (*suggest.Suggestion, error) {
	if p.Key.RangeInclusive(a.cursorPos) {
		tok := p.Key
		return &suggest.Suggestion{Elems: scopeArgs.ArgNames(p.Key.Content), Token: &tok}, nil
	}

	if a.cursorPos >= p.Value.StartPos && a.cursorPos <= p.Value.EndPos {
		argType, ok := scopeArgs.ArgType(p.Key.Content)
		if !ok {
			return nil, ErrUnknownField
		}
		return a.value(&p.Value, argType)
	}

	return nil, nil
}

// value implements §4.4.a, dispatching on ParamValue's four variants.
func (a *analyzer) value(val *gqlast.ParamValue, declaredType schema.TypeClass) (*suggest.Suggestion, error) {
	declared := declaredType.SkipNonNull()

	switch val.Kind {
	case gqlast.ValueSimple:
		if declared.Kind != schema.ClassEnum {
			return nil, nil
		}
		enumType, ok := a.sch.TypeDefinition(declared.Name)
		if !ok {
			return nil, ErrUnknownField
		}
		tok := val.Simple
		return &suggest.Suggestion{Elems: enumType.Enum.ValueNames(val.Simple.Content), Token: &tok}, nil

	case gqlast.ValueObject:
		if declared.Kind != schema.ClassInputObject {
			return nil, ErrNotInputObject
		}
		inputType, ok := a.sch.TypeDefinition(declared.Name)
		if !ok {
			return nil, ErrUnknownField
		}
		return a.inputArgList(val.Object, inputType)

	case gqlast.ValueList:
		if declared.Kind != schema.ClassList {
			return nil, ErrNotListType
		}
		return a.listValue(val.List, *declared.Inner)

	case gqlast.ValueMissing:
		if declared.Kind != schema.ClassEnum {
			return nil, nil
		}
		enumType, ok := a.sch.TypeDefinition(declared.Name)
		if !ok {
			return nil, ErrUnknownField
		}
		return &suggest.Suggestion{Elems: enumType.Enum.ValueNames("")}, nil

	default:
		return nil, nil
	}
}

// inputArgList mirrors argList but resolves names/types against an
// InputObjectType's fields instead of a field's ArgList, since an
// object-literal value's keys are input fields, not arguments.
func (a *analyzer) inputArgList(al *gqlast.ArgList, inputType schema.Type) (*suggest.Suggestion, error) {
	for i := range al.Params {
		p := &al.Params[i]
		if a.cursorPos >= p.StartPos && a.cursorPos <= p.EndPos {
			return a.inputParam(p, inputType)
		}
	}

	if a.cursorPos >= al.StartPos && a.cursorPos < al.EndPos {
		elems, err := a.sch.InputFieldNames(inputType, "")
		if err != nil {
			return nil, err
		}
		return &suggest.Suggestion{Elems: elems}, nil
	}

	return nil, nil
}

func (a *analyzer) inputParam(p *gqlast.ParamKeyValuePair, inputType schema.Type) (*suggest.Suggestion, error) {
	if p.Key.RangeInclusive(a.cursorPos) {
		elems, err := a.sch.InputFieldNames(inputType, p.Key.Content)
		if err != nil {
			return nil, err
		}
		tok := p.Key
		return &suggest.Suggestion{Elems: elems, Token: &tok}, nil
	}

	if a.cursorPos >= p.Value.StartPos && a.cursorPos <= p.Value.EndPos {
		fieldClass, ok := a.sch.InputFieldClass(inputType, p.Key.Content)
		if !ok {
			return nil, ErrUnknownField
		}
		return a.value(&p.Value, fieldClass)
	}

	return nil, nil
}

func (a *analyzer) listValue(lv *gqlast.ListParamValue, elemType schema.TypeClass) (*suggest.Suggestion, error) {
	for i := range lv.Elems {
		e := &lv.Elems[i]
		if a.cursorPos >= e.StartPos && a.cursorPos <= e.EndPos {
			return a.value(e, elemType)
		}
	}
	// Between elements: no bare-name completion makes sense for a list
	// slot, so this is always "no completable location" rather than an
	// error or a suggestion.
	return nil, nil
}
