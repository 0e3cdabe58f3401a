// Package suggest holds the completion data shapes (§3.4) and the fuzzy
// matcher used everywhere a name is proposed against a typed prefix. It
// is a leaf package — schema and analyzer both depend on it without
// depending on each other, the same "small single-purpose package" shape
// the teacher uses for internal/hostapi's Iterator.
package suggest

import (
	"strings"

	"github.com/itarato/gomqlet/internal/token"
)

// Elem is a single completion candidate: a name, a short label describing
// what kind of schema entity it is (field, arg, enum value, ...), and the
// byte offsets into Name that matched the fuzzy search pattern (used by a
// renderer to highlight the match).
type Elem struct {
	Name                string
	KindLabel           string
	FuzzyMatchPositions []int
}

// Suggestion is the analyzer's result: a ranked (declaration-order, not
// score-order — see FuzzyMatch) list of candidates, plus the token they
// would replace. A nil Token means "insert at the cursor" rather than
// "replace an existing token".
type Suggestion struct {
	Elems []Elem
	Token *token.Token
}

// FuzzyMatch is a case-insensitive ordered-subsequence match: every rune
// of pattern must appear in subject in order, though not necessarily
// contiguously. It returns the matched byte offsets into subject and
// whether the match succeeded. An empty pattern always matches, with an
// empty position list.
func FuzzyMatch(subject, pattern string) ([]int, bool) {
	if pattern == "" {
		return nil, true
	}

	lowerSubject := strings.ToLower(subject)
	lowerPattern := strings.ToLower(pattern)

	positions := make([]int, 0, len(lowerPattern))
	si := 0
	for pi := 0; pi < len(lowerPattern); pi++ {
		found := false
		for ; si < len(lowerSubject); si++ {
			if lowerSubject[si] == lowerPattern[pi] {
				positions = append(positions, si)
				si++
				found = true
				break
			}
		}
		if !found {
			return nil, false
		}
	}

	return positions, true
}

// Filter builds the Elem list for a set of candidate names matched
// against prefix, preserving the input order (no re-ranking by score, per
// spec §4.4's tie-break policy).
func Filter(names []string, kindLabel, prefix string) []Elem {
	elems := make([]Elem, 0, len(names))
	for _, name := range names {
		positions, ok := FuzzyMatch(name, prefix)
		if !ok {
			continue
		}
		elems = append(elems, Elem{Name: name, KindLabel: kindLabel, FuzzyMatchPositions: positions})
	}
	return elems
}
