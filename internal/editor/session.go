// Package editor owns the live, per-keystroke pipeline the rest of the
// program drives: a text buffer, the tokenize → strip → parse → analyze
// chain (§2) re-run from scratch on every edit, and the magic-value
// expansion used when the buffer is sent to the configured endpoint.
// The core packages (token, gqlast, schema, analyzer, magic) are
// single-threaded and stateless between calls (§5); Session is the thin
// stateful shell around them the terminal front end drives.
package editor

import (
	"fmt"
	"strings"

	"github.com/itarato/gomqlet/internal/analyzer"
	"github.com/itarato/gomqlet/internal/gateway"
	"github.com/itarato/gomqlet/internal/gqlast"
	"github.com/itarato/gomqlet/internal/magic"
	"github.com/itarato/gomqlet/internal/schema"
	"github.com/itarato/gomqlet/internal/suggest"
	"github.com/itarato/gomqlet/internal/token"
)

// Result is the outcome of one tick of the pipeline: at most one of
// ParseErr/AnalyzeErr is set alongside a possibly-nil Suggestion, mirroring
// the three disjoint error kinds of §7.
type Result struct {
	Suggestion *suggest.Suggestion
	ParseErr   *gqlast.ParseError
	AnalyzeErr error
}

// Session holds the current buffer text and cursor position and the
// schema it completes against, and replays the full pipeline on every
// edit — there is no incremental re-analysis and no state carried from
// the previous keystroke beyond the buffer itself (§5, §8).
type Session struct {
	text      string
	cursor    int
	sch       *schema.Schema
	magicDeps magic.Dependencies
}

// NewSession creates a session with an empty buffer against sch, which
// may be nil until a schema is loaded.
func NewSession(sch *schema.Schema, magicDeps magic.Dependencies) *Session {
	return &Session{sch: sch, magicDeps: magicDeps}
}

// Text returns the current buffer contents.
func (s *Session) Text() string { return s.text }

// Cursor returns the current cursor byte offset.
func (s *Session) Cursor() int { return s.cursor }

// SetSchema swaps the schema used for analysis, e.g. when a SchemaWatcher
// reloads the introspection file.
func (s *Session) SetSchema(sch *schema.Schema) { s.sch = sch }

// SetText replaces the buffer and cursor wholesale; the cursor is clamped
// to the new text.
func (s *Session) SetText(text string, cursor int) {
	s.text = text
	s.cursor = clamp(cursor, 0, len(text))
}

// InsertAt types r at byte offset pos, moving the cursor to just past
// the inserted text.
func (s *Session) InsertAt(pos int, r rune) {
	pos = clamp(pos, 0, len(s.text))
	s.text = s.text[:pos] + string(r) + s.text[pos:]
	s.cursor = pos + len(string(r))
}

// DeleteBefore removes the single byte-rune preceding pos (backspace),
// moving the cursor to the deletion point.
func (s *Session) DeleteBefore(pos int) {
	if pos <= 0 || pos > len(s.text) {
		return
	}
	// Walk back one rune boundary rather than one byte so multi-byte
	// identifiers (unlikely in this grammar, but names are arbitrary
	// UTF-8) don't get split.
	start := pos - 1
	for start > 0 && isUTF8Continuation(s.text[start]) {
		start--
	}
	s.text = s.text[:start] + s.text[pos:]
	s.cursor = start
}

func isUTF8Continuation(b byte) bool {
	return b&0xC0 == 0x80
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Analyze replays the full tokenize → strip → parse → analyze pipeline
// (§2) against the current buffer and cursor, once, from scratch.
func (s *Session) Analyze() Result {
	tokens := token.Strip(token.Tokenize(s.text, false))

	root, parseErr := gqlast.Parse(tokens, len(s.text))
	if parseErr != nil {
		return Result{ParseErr: parseErr}
	}

	if s.sch == nil {
		return Result{}
	}

	sugg, err := analyzer.Analyze(root, s.cursor, s.sch)
	if err != nil {
		return Result{AnalyzeErr: err}
	}
	return Result{Suggestion: sugg}
}

// ApplySuggestion replaces the Elems[index] candidate's target range:
// the suggestion's Token when present, or an insertion at the current
// cursor otherwise (§6's apply_suggestion contract).
func (s *Session) ApplySuggestion(sugg *suggest.Suggestion, index int) error {
	if sugg == nil || index < 0 || index >= len(sugg.Elems) {
		return fmt.Errorf("editor: suggestion index %d out of range", index)
	}
	name := sugg.Elems[index].Name

	if sugg.Token == nil {
		pos := clamp(s.cursor, 0, len(s.text))
		s.text = s.text[:pos] + name + s.text[pos:]
		s.cursor = pos + len(name)
		return nil
	}

	start, end := sugg.Token.Pos, sugg.Token.End()
	if start < 0 || end > len(s.text) || start > end {
		return fmt.Errorf("editor: suggestion token range [%d,%d) out of bounds", start, end)
	}
	s.text = s.text[:start] + name + s.text[end:]
	s.cursor = start + len(name)
	return nil
}

// ExpandedBody runs magic-value substitution (§4.5) over the buffer and
// returns the text ready to send as an operation body. It never mutates
// the buffer itself.
func (s *Session) ExpandedBody() (string, error) {
	return magic.Expand(s.text, s.magicDeps)
}

// Execute expands the buffer's magic values and POSTs the result through
// executor, returning the raw JSON response body (§6's execution sink).
func (s *Session) Execute(executor gateway.Executor) ([]byte, error) {
	body, err := s.ExpandedBody()
	if err != nil {
		return nil, fmt.Errorf("editor: expanding magic values: %w", err)
	}
	return executor.Execute(body)
}

// renderToken is a small helper the bubbletea view uses to describe the
// token a suggestion would replace, for the suggestion list's header.
func renderToken(t *token.Token) string {
	if t == nil {
		return "(insert)"
	}
	return strings.TrimSpace(t.Original)
}
