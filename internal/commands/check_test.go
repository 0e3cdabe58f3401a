package commands

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test plan:
// 1. Check reports ok and succeeds on a well-formed operation file
// 2. Check reports the parse error and fails on malformed input
// 3. Check fails when the file doesn't exist

func TestCheck_WellFormedOperationSucceeds(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "op.gql")
	require.NoError(t, os.WriteFile(path, []byte("{ user { id name } }"), 0o644))

	ctrl := &Controller{Flags: &Flags{}}
	assert.NoError(t, ctrl.Check(context.Background(), path))
}

func TestCheck_MalformedOperationFails(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "op.gql")
	require.NoError(t, os.WriteFile(path, []byte("{ user( "), 0o644))

	ctrl := &Controller{Flags: &Flags{}}
	assert.Error(t, ctrl.Check(context.Background(), path))
}

func TestCheck_MissingFileFails(t *testing.T) {
	ctrl := &Controller{Flags: &Flags{}}
	assert.Error(t, ctrl.Check(context.Background(), filepath.Join(t.TempDir(), "missing.gql")))
}
