package analyzer

import "errors"

var (
	ErrUnknownRootType     = errors.New("analyzer: root operation type not found in schema")
	ErrNotSelectable       = errors.New("analyzer: keyword found in a non object/interface scope")
	ErrUnknownField        = errors.New("analyzer: field not found on scope type")
	ErrNotUnionLike        = errors.New("analyzer: inline fragment used on a non union/object/interface scope")
	ErrUnknownFragmentType = errors.New("analyzer: inline fragment type not found in schema")
	ErrNotInputObject      = errors.New("analyzer: value is an object literal but declared type is not an input object")
	ErrNotListType         = errors.New("analyzer: value is a list literal but declared type is not a list")
)
