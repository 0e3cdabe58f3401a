package gqlast

import (
	"fmt"

	"github.com/itarato/gomqlet/internal/token"
)

// Scope colours which grammar rule a ParseError was raised from, so the
// renderer can pick a reasonable highlight for the offending token.
type Scope int

const (
	ScopeQuery Scope = iota
	ScopeField
	ScopeArgList
	ScopeArgListValue
	ScopeArgListValueListType
)

func (s Scope) String() string {
	switch s {
	case ScopeQuery:
		return "Query"
	case ScopeField:
		return "Field"
	case ScopeArgList:
		return "ArgList"
	case ScopeArgListValue:
		return "ArgListValue"
	case ScopeArgListValueListType:
		return "ArgListValueListType"
	default:
		return "Unknown"
	}
}

// ParseError is the non-fatal, structured error the parser raises when it
// hits a deviation it cannot recover from. Token is nil when the
// deviation was discovered at end of input.
type ParseError struct {
	Token   *token.Token
	Scope   Scope
	Message string
}

func (e *ParseError) Error() string {
	if e.Token == nil {
		return fmt.Sprintf("%s: %s (at end of input)", e.Scope, e.Message)
	}
	return fmt.Sprintf("%s: %s (at %q, pos %d)", e.Scope, e.Message, e.Token.Original, e.Token.Pos)
}

// Parse builds a Root from a noise-stripped token stream. sourceLen is
// the byte length of the full source text, used as the fallback position
// for error-recovery ranges that reach the end of input.
func Parse(tokens []token.Token, sourceLen int) (*Root, *ParseError) {
	p := &parser{tokens: tokens, sourceLen: sourceLen}
	return p.parseRoot()
}

type parser struct {
	tokens    []token.Token
	pos       int
	sourceLen int
}

func (p *parser) peek() *token.Token {
	if p.pos >= len(p.tokens) {
		return nil
	}
	return &p.tokens[p.pos]
}

func (p *parser) atEOF() bool { return p.pos >= len(p.tokens) }

func (p *parser) at(kind token.Kind) bool {
	t := p.peek()
	return t != nil && t.Kind == kind
}

func (p *parser) atKeywordText(text string) bool {
	t := p.peek()
	return t != nil && t.Kind == token.Keyword && t.Content == text
}

func (p *parser) advance() token.Token {
	t := p.tokens[p.pos]
	p.pos++
	return t
}

// prevEnd is the end offset of the token just consumed, or 0 if nothing
// has been consumed yet — the "end_of_previous_token" half of the
// Missing-value range rule (spec §9).
func (p *parser) prevEnd() int {
	if p.pos == 0 {
		return 0
	}
	return p.tokens[p.pos-1].End()
}

// nextTokenPosOrEnd is the start offset of the next token, or sourceLen
// if there is none — the "pos_of_next_token_or_end" half of the same rule.
func (p *parser) nextTokenPosOrEnd() int {
	if p.pos < len(p.tokens) {
		return p.tokens[p.pos].Pos
	}
	return p.sourceLen
}

func (p *parser) errorAtCurrent(scope Scope, msg string) *ParseError {
	return &ParseError{Token: p.peek(), Scope: scope, Message: msg}
}

func (p *parser) errorAtEnd(scope Scope, msg string) *ParseError {
	return &ParseError{Token: nil, Scope: scope, Message: msg}
}

func (p *parser) parseRoot() (*Root, *ParseError) {
	startPos := p.nextTokenPosOrEnd()

	kind := OpQuery
	switch {
	case p.atKeywordText("mutation"):
		kind = OpMutation
		p.advance()
	case p.atKeywordText("query"):
		p.advance()
	}

	if !p.at(token.OpenBrace) {
		return nil, p.errorAtCurrent(ScopeQuery, "expected '{'")
	}
	openTok := p.advance()

	fieldList, err := p.parseFieldListBody(openTok)
	if err != nil {
		return nil, err
	}

	return &Root{StartPos: startPos, EndPos: fieldList.EndPos, Kind: kind, Fields: fieldList}, nil
}

// parseFieldList assumes the caller has already confirmed the next token
// is '{' (every call site but the root checks this before calling).
func (p *parser) parseFieldList() (*FieldList, *ParseError) {
	openTok := p.advance()
	return p.parseFieldListBody(openTok)
}

func (p *parser) parseFieldListBody(openTok token.Token) (*FieldList, *ParseError) {
	var fields []Field

	for {
		if p.atEOF() {
			return nil, p.errorAtEnd(ScopeField, "missing closing '}'")
		}
		if p.at(token.CloseBrace) {
			closeTok := p.advance()
			return &FieldList{StartPos: openTok.Pos, EndPos: closeTok.End(), Fields: fields}, nil
		}

		field, err := p.parseField()
		if err != nil {
			return nil, err
		}
		fields = append(fields, *field)
	}
}

func (p *parser) parseField() (*Field, *ParseError) {
	if p.at(token.Ellipsis) {
		return p.parseUnionField()
	}
	if p.at(token.Keyword) {
		return p.parseConcreteField()
	}
	return nil, p.errorAtCurrent(ScopeField, "expected a field name or '... on'")
}

func (p *parser) parseConcreteField() (*Field, *ParseError) {
	nameTok := p.advance()
	startPos := nameTok.Pos
	endPos := nameTok.End()

	var args *ArgList
	if p.at(token.OpenParen) {
		a, err := p.parseArgList(token.OpenParen, token.CloseParen)
		if err != nil {
			return nil, err
		}
		args = a
		endPos = a.EndPos
	}

	var fl *FieldList
	if p.at(token.OpenBrace) {
		f, err := p.parseFieldList()
		if err != nil {
			return nil, err
		}
		fl = f
		endPos = f.EndPos
	}

	return &Field{
		StartPos: startPos,
		EndPos:   endPos,
		Concrete: &ConcreteField{Name: nameTok, Args: args, FieldList: fl},
	}, nil
}

func (p *parser) parseUnionField() (*Field, *ParseError) {
	ellipsisTok := p.advance()
	startPos := ellipsisTok.Pos

	if !p.atKeywordText("on") {
		return nil, p.errorAtCurrent(ScopeField, "expected 'on' after '...'")
	}
	onTok := p.advance()

	var typeNameTok token.Token
	if p.at(token.Keyword) {
		typeNameTok = p.advance()
	} else if p.nextTokenPosOrEnd() > onTok.End() || p.atEOF() {
		// Room exists (whitespace was stripped between 'on' and whatever
		// follows, or we're at end of input): synthesize an empty type
		// name so the analyzer can still offer union variants there.
		typeNameTok = token.Token{Kind: token.Keyword, Pos: onTok.End(), Len: 0}
	} else {
		return nil, p.errorAtCurrent(ScopeField, "expected a type name after 'on'")
	}

	endPos := typeNameTok.End()

	var fl *FieldList
	if p.at(token.OpenBrace) {
		f, err := p.parseFieldList()
		if err != nil {
			return nil, err
		}
		fl = f
		endPos = f.EndPos
	} else {
		// Union fragment missing '{...}': synthesize an empty FieldList
		// at the type name's end so a cursor there still resolves.
		fl = &FieldList{StartPos: typeNameTok.End(), EndPos: typeNameTok.End()}
	}

	return &Field{
		StartPos: startPos,
		EndPos:   endPos,
		Union:    &UnionField{TypeName: typeNameTok, FieldList: fl},
	}, nil
}

// parseArgList parses a delimited key/value list. The same routine backs
// both a field's parenthesised argument list and a braced object literal
// used as an argument value (spec §4.2) — the caller supplies which
// delimiters apply. The caller has already confirmed the next token is
// openKind.
func (p *parser) parseArgList(openKind, closeKind token.Kind) (*ArgList, *ParseError) {
	openTok := p.advance()
	startPos := openTok.Pos

	var params []ParamKeyValuePair

	for {
		if p.atEOF() {
			return nil, p.errorAtEnd(ScopeArgList, "missing closing delimiter")
		}
		if p.at(closeKind) {
			closeTok := p.advance()
			return &ArgList{StartPos: startPos, EndPos: closeTok.End(), Params: params}, nil
		}

		param, err := p.parseParam(closeKind)
		if err != nil {
			return nil, err
		}
		params = append(params, *param)

		switch {
		case p.at(token.Comma):
			p.advance()
		case p.at(closeKind):
			// loop head consumes it
		case p.at(token.Keyword):
			// Trailing key without comma: the user is mid-insertion of a
			// new param; restart Param parsing without requiring a comma.
		default:
			return nil, p.errorAtCurrent(ScopeArgList, "expected ',' or closing delimiter")
		}
	}
}

func (p *parser) parseParam(closeKind token.Kind) (*ParamKeyValuePair, *ParseError) {
	if !p.at(token.Keyword) {
		return nil, p.errorAtCurrent(ScopeArgList, "expected an argument name")
	}
	keyTok := p.advance()

	if !p.at(token.Colon) {
		return nil, p.errorAtCurrent(ScopeArgList, "expected ':' after argument name")
	}
	p.advance()

	value, err := p.parseParamValue(closeKind)
	if err != nil {
		return nil, err
	}

	return &ParamKeyValuePair{StartPos: keyTok.Pos, EndPos: value.EndPos, Key: keyTok, Value: *value}, nil
}

func (p *parser) parseParamValue(closeKind token.Kind) (*ParamValue, *ParseError) {
	if p.atEOF() {
		pos := p.prevEnd()
		return &ParamValue{StartPos: pos, EndPos: p.sourceLen, Kind: ValueMissing}, nil
	}

	cur := *p.peek()

	switch cur.Kind {
	case token.Number, token.String, token.Keyword, token.MagicValue:
		tok := p.advance()
		return &ParamValue{StartPos: tok.Pos, EndPos: tok.End(), Kind: ValueSimple, Simple: tok}, nil

	case token.OpenBracket:
		lv, err := p.parseListValue()
		if err != nil {
			return nil, err
		}
		return &ParamValue{StartPos: lv.StartPos, EndPos: lv.EndPos, Kind: ValueList, List: lv}, nil

	case token.OpenBrace:
		obj, err := p.parseArgList(token.OpenBrace, token.CloseBrace)
		if err != nil {
			return nil, err
		}
		return &ParamValue{StartPos: obj.StartPos, EndPos: obj.EndPos, Kind: ValueObject, Object: obj}, nil

	case token.CloseParen, token.CloseBrace, token.CloseBracket, token.Comma:
		// Value where a closer is expected: the value was never typed.
		startPos := p.prevEnd()
		return &ParamValue{StartPos: startPos, EndPos: cur.Pos, Kind: ValueMissing}, nil

	default:
		scope := ScopeArgListValue
		if closeKind == token.CloseBracket {
			scope = ScopeArgListValueListType
		}
		return nil, p.errorAtCurrent(scope, "expected a value")
	}
}

func (p *parser) parseListValue() (*ListParamValue, *ParseError) {
	openTok := p.advance()
	startPos := openTok.Pos

	var elems []ParamValue

	for {
		if p.atEOF() {
			return nil, p.errorAtEnd(ScopeArgListValueListType, "missing closing ']'")
		}
		if p.at(token.CloseBracket) {
			closeTok := p.advance()
			return &ListParamValue{StartPos: startPos, EndPos: closeTok.End(), Elems: elems}, nil
		}

		val, err := p.parseParamValue(token.CloseBracket)
		if err != nil {
			return nil, err
		}
		elems = append(elems, *val)

		switch {
		case p.at(token.Comma):
			p.advance()
		case p.at(token.CloseBracket):
			// loop head consumes it
		default:
			return nil, p.errorAtCurrent(ScopeArgListValueListType, "expected ',' or ']'")
		}
	}
}
