// Package gqlast is the error-recovering parser for the GraphQL operation
// subset gomqlet edits (§3.2, §4.2): queries and mutations made of nested
// field selections, arguments, and argument values, with no directives,
// fragment definitions, variables, or type-system definitions.
//
// Every node carries a half-open byte range [StartPos, EndPos) into the
// source that was tokenized. A child's range is always fully contained in
// its parent's, and sibling ranges are ordered and non-overlapping — the
// analyzer (internal/analyzer) relies on both invariants to descend the
// tree in lockstep with the schema.
package gqlast

import "github.com/itarato/gomqlet/internal/token"

// OperationKind distinguishes a Root's two possible shapes.
type OperationKind int

const (
	OpQuery OperationKind = iota
	OpMutation
)

// Root is the top of the tree: `[query|mutation] { ... }`.
type Root struct {
	StartPos, EndPos int
	Kind             OperationKind
	Fields           *FieldList
}

// FieldList is a brace-delimited, ordered sequence of fields. Its range
// is treated as exclusive by the analyzer: a cursor sitting exactly on
// the closing brace belongs to the parent scope, not to the list.
type FieldList struct {
	StartPos, EndPos int
	Fields           []Field
}

// Field is the sum of the two selection forms the grammar supports.
// Exactly one of Concrete/Union is non-nil.
type Field struct {
	StartPos, EndPos int
	Concrete         *ConcreteField
	Union            *UnionField
}

// ConcreteField is a named field of an object/interface type, optionally
// followed by an argument list and/or a nested selection set.
type ConcreteField struct {
	Name      token.Token
	Args      *ArgList
	FieldList *FieldList
}

// UnionField is the `... on TypeName { ... }` inline-fragment selector.
type UnionField struct {
	TypeName  token.Token
	FieldList *FieldList
}

// ArgList is a parenthesised argument list on a field, or (reused, per
// spec §3.2) a braced object literal inside an argument value.
type ArgList struct {
	StartPos, EndPos int
	Params           []ParamKeyValuePair
}

// ParamKeyValuePair is one `key: value` entry of an ArgList.
type ParamKeyValuePair struct {
	StartPos, EndPos int
	Key              token.Token
	Value            ParamValue
}

// ParamValueKind tags which of ParamValue's four shapes is populated.
type ParamValueKind int

const (
	ValueSimple ParamValueKind = iota
	ValueList
	ValueObject
	ValueMissing
)

// ParamValue is the four-variant sum spec §3.2 requires: a bare token, a
// bracketed list, a braced object, or an error-recovery placeholder.
type ParamValue struct {
	StartPos, EndPos int
	Kind             ParamValueKind
	Simple           token.Token
	List             *ListParamValue
	Object           *ArgList
}

// ListParamValue is a bracketed, ordered sequence of values.
type ListParamValue struct {
	StartPos, EndPos int
	Elems            []ParamValue
}
