package token

import "strings"

// Tokenize scans source into a flat token sequence. It is total: every
// byte of input is accounted for by exactly one token, including Invalid
// ones — the tokenizer never fails outright, so a live editor always has
// something to render and analyze.
//
// When recordWhitespace is false, LineBreak/Whitespace/Comment tokens are
// omitted, but the byte offset still advances across them, so positions
// stay identical between the two modes. The analyzer runs with
// recordWhitespace=false (it only cares about syntax-bearing tokens); the
// renderer runs with recordWhitespace=true (it needs layout and must be
// able to underline Invalid tokens in place).
func Tokenize(source string, recordWhitespace bool) []Token {
	var tokens []Token
	pos := 0
	n := len(source)

	for pos < n {
		c := source[pos]

		switch {
		case c == '{':
			tokens = append(tokens, single(source, pos, OpenBrace))
			pos++
		case c == '}':
			tokens = append(tokens, single(source, pos, CloseBrace))
			pos++
		case c == '(':
			tokens = append(tokens, single(source, pos, OpenParen))
			pos++
		case c == ')':
			tokens = append(tokens, single(source, pos, CloseParen))
			pos++
		case c == '[':
			tokens = append(tokens, single(source, pos, OpenBracket))
			pos++
		case c == ']':
			tokens = append(tokens, single(source, pos, CloseBracket))
			pos++
		case c == ':':
			tokens = append(tokens, single(source, pos, Colon))
			pos++
		case c == ',':
			tokens = append(tokens, single(source, pos, Comma))
			pos++
		case c == '\n':
			if recordWhitespace {
				tokens = append(tokens, Token{Kind: LineBreak, Pos: pos, Len: 1, Original: "\n"})
			}
			pos++
		case c == ' ' || c == '\t' || c == '\r':
			start := pos
			for pos < n && (source[pos] == ' ' || source[pos] == '\t' || source[pos] == '\r') {
				pos++
			}
			if recordWhitespace {
				tokens = append(tokens, Token{Kind: Whitespace, Pos: start, Len: pos - start, Original: source[start:pos]})
			}
		case isIdentStart(c):
			start := pos
			pos++
			for pos < n && isIdentCont(source[pos]) {
				pos++
			}
			text := source[start:pos]
			tokens = append(tokens, Token{Kind: Keyword, Pos: start, Len: pos - start, Original: text, Content: text})
		case isDigit(c) || c == '-':
			start := pos
			pos++
			for pos < n && (isDigit(source[pos]) || source[pos] == '.' || source[pos] == '-') {
				pos++
			}
			text := source[start:pos]
			tokens = append(tokens, Token{Kind: Number, Pos: start, Len: pos - start, Original: text, Content: text})
		case c == '"':
			tok, newPos := consumeDelimited(source, pos, '"', String, "Invalid string token")
			tokens = append(tokens, tok)
			pos = newPos
		case c == '<':
			tok, newPos := consumeDelimited(source, pos, '>', MagicValue, "Invalid magic value token")
			tokens = append(tokens, tok)
			pos = newPos
		case c == '.':
			if strings.HasPrefix(source[pos:], "...") {
				tokens = append(tokens, Token{Kind: Ellipsis, Pos: pos, Len: 3, Original: "..."})
				pos += 3
			} else {
				tokens = append(tokens, invalid(source, pos, "Invalid character"))
				pos++
			}
		case c == '/':
			if pos+1 < n && source[pos+1] == '/' {
				start := pos
				for pos < n && source[pos] != '\n' {
					pos++
				}
				if recordWhitespace {
					tokens = append(tokens, Token{Kind: Comment, Pos: start, Len: pos - start, Original: source[start:pos]})
				}
			} else {
				tokens = append(tokens, invalid(source, pos, "Invalid character"))
				pos++
			}
		default:
			tokens = append(tokens, invalid(source, pos, "Invalid character"))
			pos++
		}
	}

	return tokens
}

// TokenizeLines is equivalent to joining lines with "\n" and tokenizing
// the result; it exists because the text buffer collaborator (§6) is
// naturally line-oriented and the cursor offset it reports already
// assumes each line contributes len(line)+1 bytes (the synthetic "\n"
// this function inserts between lines).
func TokenizeLines(lines []string, recordWhitespace bool) []Token {
	return Tokenize(strings.Join(lines, "\n"), recordWhitespace)
}

// Strip removes Whitespace/LineBreak/Comment tokens, producing the
// stream the parser consumes. Positions on the remaining tokens are
// untouched, which is what lets the whitespace-keeping and
// whitespace-less tokenizations agree on offsets.
func Strip(tokens []Token) []Token {
	out := make([]Token, 0, len(tokens))
	for _, t := range tokens {
		if !t.IsNoise() {
			out = append(out, t)
		}
	}
	return out
}

func single(source string, pos int, kind Kind) Token {
	return Token{Kind: kind, Pos: pos, Len: 1, Original: source[pos : pos+1]}
}

func invalid(source string, pos int, reason string) Token {
	return Token{Kind: Invalid, Pos: pos, Len: 1, Original: source[pos : pos+1], Content: reason}
}

func isIdentStart(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_'
}

func isIdentCont(c byte) bool {
	return isIdentStart(c) || isDigit(c)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// consumeDelimited scans a `"`- or `<`/`>`-delimited literal starting at
// pos (source[pos] is the opening delimiter). If the closing delimiter is
// found before a line break or end of input, it returns a well-formed
// token whose Content is the text between delimiters; otherwise it
// returns an Invalid token spanning the partial literal.
func consumeDelimited(source string, pos int, closer byte, kind Kind, invalidReason string) (Token, int) {
	n := len(source)
	start := pos
	i := pos + 1

	for i < n && source[i] != closer && source[i] != '\n' {
		i++
	}

	if i < n && source[i] == closer {
		content := source[start+1 : i]
		end := i + 1
		return Token{Kind: kind, Pos: start, Len: end - start, Original: source[start:end], Content: content}, end
	}

	return Token{Kind: Invalid, Pos: start, Len: i - start, Original: source[start:i], Content: invalidReason}, i
}
