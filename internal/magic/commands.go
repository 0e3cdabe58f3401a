package magic

import (
	"crypto/rand"
	_ "embed"
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

//go:embed words.txt
var dictionaryRaw string

var dictionary = strings.Fields(dictionaryRaw)

const randomStringAlphabet = "abcdefghijklmnopqrstuvwxyz"

func evalRandomString(args []string) (string, error) {
	if len(args) != 1 {
		return "", fmt.Errorf("random_string requires exactly 1 argument: length")
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 0 {
		return "", fmt.Errorf("random_string: invalid length %q", args[0])
	}

	var sb strings.Builder
	sb.WriteByte('"')
	for i := 0; i < n; i++ {
		idx, err := randomInt(int64(len(randomStringAlphabet)))
		if err != nil {
			return "", err
		}
		sb.WriteByte(randomStringAlphabet[idx])
	}
	sb.WriteByte('"')
	return sb.String(), nil
}

func evalRandomInteger(args []string) (string, error) {
	if len(args) != 2 {
		return "", fmt.Errorf("random_integer requires exactly 2 arguments: min, max")
	}
	min, err := strconv.Atoi(args[0])
	if err != nil {
		return "", fmt.Errorf("random_integer: invalid min %q", args[0])
	}
	max, err := strconv.Atoi(args[1])
	if err != nil {
		return "", fmt.Errorf("random_integer: invalid max %q", args[1])
	}
	if max <= min {
		return "", fmt.Errorf("random_integer: max (%d) must be greater than min (%d)", max, min)
	}

	span := int64(max - min)
	offset, err := randomInt(span)
	if err != nil {
		return "", err
	}
	return strconv.FormatInt(int64(min)+offset, 10), nil
}

func evalRandomWord(args []string, deps Dependencies) (string, error) {
	if len(args) != 0 {
		return "", fmt.Errorf("random_word takes no arguments")
	}

	words := dictionary
	if len(deps.Words) > 0 {
		words = deps.Words
	}
	if len(words) == 0 {
		return "", fmt.Errorf("random_word: dictionary is empty")
	}

	idx, err := randomInt(int64(len(words)))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%q", words[idx]), nil
}

func evalVariable(args []string, deps Dependencies) (string, error) {
	if len(args) != 1 {
		return "", fmt.Errorf("variable requires exactly 1 argument: json path")
	}
	if deps.Variables == nil {
		return "", fmt.Errorf("variable: no variables source configured")
	}
	return extractJSONPath(deps.Variables, args[0])
}

func evalQuery(args []string, deps Dependencies) (string, error) {
	if len(args) != 2 {
		return "", fmt.Errorf("query requires exactly 2 arguments: file path, json path")
	}
	if deps.Reader == nil || deps.Executor == nil {
		return "", fmt.Errorf("query: no file reader/executor configured")
	}

	file, jsonPath := args[0], args[1]

	body, err := deps.Reader.ReadFile(file)
	if err != nil {
		return "", fmt.Errorf("query: reading %q: %w", file, err)
	}

	// The sub-query is executed verbatim: it is never itself passed back
	// through Expand, so a magic value cannot trigger unbounded recursion
	// (§4.5 "no magic-value recursion").
	respBody, err := deps.Executor.Execute(string(body))
	if err != nil {
		return "", fmt.Errorf("query: executing %q: %w", file, err)
	}

	return extractJSONPath(respBody, jsonPath)
}

func randomInt(n int64) (int64, error) {
	if n <= 0 {
		return 0, nil
	}
	v, err := rand.Int(rand.Reader, big.NewInt(n))
	if err != nil {
		return 0, fmt.Errorf("generating random value: %w", err)
	}
	return v.Int64(), nil
}
