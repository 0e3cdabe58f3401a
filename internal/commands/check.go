package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/itarato/gomqlet/internal/gqlast"
	"github.com/itarato/gomqlet/internal/token"
)

// Check parses a single operation file non-interactively and prints any
// ParseError it finds, for CI pipelines that want a syntax gate without
// running the full interactive session (§7's ParseError is non-fatal for
// the editor, but a CI check treats it as a failing exit code).
func (c *Controller) Check(ctx context.Context, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	tokens := token.Strip(token.Tokenize(string(data), false))
	_, parseErr := gqlast.Parse(tokens, len(data))
	if parseErr != nil {
		fmt.Printf("%s: %s\n", path, parseErr.Error())
		return fmt.Errorf("parse error in %s", path)
	}

	fmt.Printf("%s: ok\n", path)
	return nil
}
