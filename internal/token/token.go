// Package token implements the tokenizer for the GraphQL operation
// subset gomqlet understands: a linear scan of buffer text into a flat,
// position-annotated sequence of tokens.
package token

// Kind tags the variant a Token carries. Kinds are plain constants rather
// than an interface hierarchy so the parser and analyzer can switch on
// them directly.
type Kind int

const (
	// Punctuation
	OpenBrace Kind = iota
	CloseBrace
	OpenParen
	CloseParen
	OpenBracket
	CloseBracket
	Colon
	Comma
	Ellipsis

	LineBreak
	Whitespace
	Comment

	Keyword
	Number
	String
	MagicValue
	Invalid
)

func (k Kind) String() string {
	switch k {
	case OpenBrace:
		return "OpenBrace"
	case CloseBrace:
		return "CloseBrace"
	case OpenParen:
		return "OpenParen"
	case CloseParen:
		return "CloseParen"
	case OpenBracket:
		return "OpenBracket"
	case CloseBracket:
		return "CloseBracket"
	case Colon:
		return "Colon"
	case Comma:
		return "Comma"
	case Ellipsis:
		return "Ellipsis"
	case LineBreak:
		return "LineBreak"
	case Whitespace:
		return "Whitespace"
	case Comment:
		return "Comment"
	case Keyword:
		return "Keyword"
	case Number:
		return "Number"
	case String:
		return "String"
	case MagicValue:
		return "MagicValue"
	case Invalid:
		return "Invalid"
	default:
		return "Unknown"
	}
}

// Token is an immutable, position-annotated slice of the source text.
// Pos/Len are byte offsets/lengths into the string that was tokenized.
// Original is the verbatim source text of the token (for String/MagicValue
// this includes the delimiters; Content below strips them).
type Token struct {
	Kind     Kind
	Pos      int
	Len      int
	Original string

	// Content is the decoded payload for kinds that carry one: the text
	// between quotes/angle-brackets for String/MagicValue, the reason for
	// Invalid, and the raw text for Keyword/Number (same as Original).
	Content string
}

// End returns the exclusive end offset of the token: Pos + Len.
func (t Token) End() int {
	return t.Pos + t.Len
}

// RangeExclusive reports whether pos falls strictly inside [Pos, End()),
// the convention used for container node ranges (see internal/gqlast).
func (t Token) RangeExclusive(pos int) bool {
	return pos >= t.Pos && pos < t.End()
}

// RangeInclusive reports whether pos falls within [Pos, End()], the
// convention used for leaf tokens so a cursor sitting exactly at the end
// of an identifier is still "on" it.
func (t Token) RangeInclusive(pos int) bool {
	return pos >= t.Pos && pos <= t.End()
}

// IsNoise reports whether the token is whitespace/linebreak/comment —
// removed from the stream before parsing (see Strip).
func (t Token) IsNoise() bool {
	switch t.Kind {
	case LineBreak, Whitespace, Comment:
		return true
	default:
		return false
	}
}
