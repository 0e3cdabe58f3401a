package magic

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/buger/jsonparser"
)

// jsonPathStepRegex matches one step of the grammar `step := '.' ident |
// '[' integer ']'`, `ident = [A-Za-z]+`, `integer` decimal non-negative.
var jsonPathStepRegex = regexp.MustCompile(`^(?:\.([A-Za-z]+)|\[(\d+)\])`)

// parseJSONPath validates and decomposes a `$...` path into the
// component strings github.com/buger/jsonparser's Get expects: a bare key
// for a `.ident` step, and a bracketed `[n]` literal for a `[integer]`
// step (jsonparser's own convention for indexing into an array mid-path).
func parseJSONPath(path string) ([]string, error) {
	if !strings.HasPrefix(path, "$") {
		return nil, fmt.Errorf("json path %q must start with '$'", path)
	}
	rest := path[1:]

	var components []string
	for len(rest) > 0 {
		m := jsonPathStepRegex.FindStringSubmatch(rest)
		if m == nil {
			return nil, fmt.Errorf("json path %q: invalid step at %q", path, rest)
		}
		switch {
		case m[1] != "":
			components = append(components, m[1])
		case m[2] != "":
			components = append(components, "["+m[2]+"]")
		}
		rest = rest[len(m[0]):]
	}

	return components, nil
}

// extractJSONPath evaluates a json path against data and renders the
// result the way a magic value substitutes into operation text: a JSON
// string becomes a double-quoted literal, a JSON integer becomes its
// decimal form. Any other JSON type, or a missing key/out-of-bounds
// index, is an error (§4.5 JSON-path sublanguage).
func extractJSONPath(data []byte, path string) (string, error) {
	components, err := parseJSONPath(path)
	if err != nil {
		return "", err
	}

	value, dataType, _, err := jsonparser.Get(data, components...)
	if err != nil {
		return "", fmt.Errorf("json path %q: %w", path, err)
	}

	switch dataType {
	case jsonparser.String:
		s, err := jsonparser.ParseString(value)
		if err != nil {
			return "", fmt.Errorf("json path %q: decoding string: %w", path, err)
		}
		return strconv.Quote(s), nil

	case jsonparser.Number:
		n, err := jsonparser.ParseInt(value)
		if err != nil {
			return "", fmt.Errorf("json path %q: value is not a JSON integer: %s", path, value)
		}
		return strconv.FormatInt(n, 10), nil

	default:
		return "", fmt.Errorf("json path %q: unsupported JSON type %v, expected string or integer", path, dataType)
	}
}
