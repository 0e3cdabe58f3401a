package token

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenize_Empty(t *testing.T) {
	tokens := Tokenize("", true)
	assert.Empty(t, tokens)
}

func TestTokenize_Punctuation(t *testing.T) {
	// Test plan:
	// - every punctuation kind round-trips to its own single-byte token

	tokens := Strip(Tokenize("{}()[]:,...", false))
	require.Len(t, tokens, 9)
	kinds := []Kind{OpenBrace, CloseBrace, OpenParen, CloseParen, OpenBracket, CloseBracket, Colon, Comma, Ellipsis}
	for i, k := range kinds {
		assert.Equal(t, k, tokens[i].Kind)
	}
}

func TestTokenize_KeywordWithWhitespace(t *testing.T) {
	tokens := Strip(Tokenize("\t {     \n\nuser\r\n  }    ", false))
	require.Len(t, tokens, 3)
	assert.Equal(t, OpenBrace, tokens[0].Kind)
	assert.Equal(t, Keyword, tokens[1].Kind)
	assert.Equal(t, "user", tokens[1].Content)
	assert.Equal(t, CloseBrace, tokens[2].Kind)
}

func TestTokenize_ArgsAndNumber(t *testing.T) {
	tokens := Strip(Tokenize("{ users(first: 1) }", false))
	require.Len(t, tokens, 8)
	assert.Equal(t, Keyword, tokens[1].Kind)
	assert.Equal(t, "users", tokens[1].Content)
	assert.Equal(t, OpenParen, tokens[2].Kind)
	assert.Equal(t, Keyword, tokens[3].Kind)
	assert.Equal(t, Colon, tokens[4].Kind)
	assert.Equal(t, Number, tokens[5].Kind)
	assert.Equal(t, "1", tokens[5].Content)
}

func TestTokenize_String(t *testing.T) {
	tokens := Strip(Tokenize(`{ user(id: "gid://user/1") }`, false))
	require.Len(t, tokens, 8)
	assert.Equal(t, String, tokens[5].Kind)
	assert.Equal(t, "gid://user/1", tokens[5].Content)
}

func TestTokenize_UnterminatedString(t *testing.T) {
	tokens := Tokenize(`"abc`, false)
	require.Len(t, tokens, 1)
	assert.Equal(t, Invalid, tokens[0].Kind)
	assert.Equal(t, "Invalid string token", tokens[0].Content)
	assert.Equal(t, 4, tokens[0].Len)
}

func TestTokenize_StringMustCloseOnSameLine(t *testing.T) {
	tokens := Tokenize("\"abc\ndef\"", false)
	require.Len(t, tokens, 3)
	assert.Equal(t, Invalid, tokens[0].Kind)
}

func TestTokenize_MagicValue(t *testing.T) {
	tokens := Strip(Tokenize("<random_integer::0::10>", false))
	require.Len(t, tokens, 1)
	assert.Equal(t, MagicValue, tokens[0].Kind)
	assert.Equal(t, "random_integer::0::10", tokens[0].Content)
}

func TestTokenize_UnterminatedMagicValue(t *testing.T) {
	tokens := Tokenize("<abc", false)
	require.Len(t, tokens, 1)
	assert.Equal(t, Invalid, tokens[0].Kind)
}

func TestTokenize_EllipsisAndLoneDot(t *testing.T) {
	tokens := Strip(Tokenize("... .", false))
	require.Len(t, tokens, 2)
	assert.Equal(t, Ellipsis, tokens[0].Kind)
	assert.Equal(t, Invalid, tokens[1].Kind)
}

func TestTokenize_Comment(t *testing.T) {
	tokens := Tokenize("# not a comment\n// a comment\nuser", true)
	// '#' is not a recognized character in this grammar so it becomes Invalid.
	var kinds []Kind
	for _, tok := range tokens {
		kinds = append(kinds, tok.Kind)
	}
	assert.Contains(t, kinds, Comment)
	assert.Contains(t, kinds, Invalid)
}

func TestTokenize_LoneSlashIsInvalid(t *testing.T) {
	tokens := Tokenize("/", false)
	require.Len(t, tokens, 1)
	assert.Equal(t, Invalid, tokens[0].Kind)
}

func TestTokenize_NegativeNumber(t *testing.T) {
	tokens := Tokenize("-42", false)
	require.Len(t, tokens, 1)
	assert.Equal(t, Number, tokens[0].Kind)
	assert.Equal(t, "-42", tokens[0].Content)
}

func TestTokenize_ConcatenatedOriginalEqualsSource(t *testing.T) {
	// Invariant (spec §8): concatenating every token's Original with
	// record_whitespace=true reproduces the source exactly.
	sources := []string{
		"{ user(id: \"1\") { name address { city } } }",
		"mutation { createUser(input: { role: AD }) { id } }",
		"\t {     \n\nuser\r\n  }    ",
		"<random_word>",
		"",
	}

	for _, s := range sources {
		tokens := Tokenize(s, true)
		var sb strings.Builder
		lenSum := 0
		for _, tok := range tokens {
			sb.WriteString(tok.Original)
			lenSum += tok.Len
		}
		assert.Equal(t, s, sb.String())
		assert.Equal(t, len(s), lenSum)
	}
}

func TestTokenizeLines_JoinsWithNewline(t *testing.T) {
	lines := []string{"{ user {", "  name", "} }"}
	viaLines := TokenizeLines(lines, true)
	viaJoin := Tokenize(strings.Join(lines, "\n"), true)
	assert.Equal(t, viaJoin, viaLines)
}

func TestTokenize_WhitespaceModesAgreeOnPositions(t *testing.T) {
	s := "{ user { name } } // trailing"
	withWs := Strip(Tokenize(s, true))
	withoutWs := Tokenize(s, false)
	require.Len(t, withWs, len(withoutWs))
	for i := range withWs {
		assert.Equal(t, withoutWs[i].Pos, withWs[i].Pos)
		assert.Equal(t, withoutWs[i].Kind, withWs[i].Kind)
	}
}
