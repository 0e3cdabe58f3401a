package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itarato/gomqlet/internal/config"
)

// Test plan:
// 1. loadOrPromptConfig reads an existing config file without prompting
// 2. loadOrFetchSchema reads a cached schema file without touching the executor
// 3. loadOrFetchSchema falls back to introspection and caches the result when no file exists

type fakeIntrospectExecutor struct {
	calls int
	body  []byte
}

func (f *fakeIntrospectExecutor) Execute(operationBody string) ([]byte, error) {
	f.calls++
	return f.body, nil
}

func TestLoadOrPromptConfig_ReadsExistingFile(t *testing.T) {
	dir := t.TempDir()
	oldWd, err := os.Getwd()
	require.NoError(t, err)
	defer os.Chdir(oldWd)
	require.NoError(t, os.Chdir(dir))

	require.NoError(t, os.WriteFile("gomqlet.json", []byte(`{"endpoint": "https://example.com/graphql"}`), 0o644))

	cfg, err := loadOrPromptConfig()
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/graphql", cfg.Endpoint)
}

func TestLoadOrFetchSchema_PrefersCachedFileOverNetwork(t *testing.T) {
	dir := t.TempDir()
	schemaPath := filepath.Join(dir, "schema.json")
	require.NoError(t, os.WriteFile(schemaPath, []byte(fixtureIntrospectionResponse), 0o644))

	executor := &fakeIntrospectExecutor{}
	cfg := &config.Config{SchemaPath: schemaPath}

	sch, err := loadOrFetchSchema(cfg, executor)
	require.NoError(t, err)
	assert.Equal(t, "Query", sch.QueryRootName)
	assert.Equal(t, 0, executor.calls)
}

func TestLoadOrFetchSchema_FetchesAndCachesWhenNoFile(t *testing.T) {
	dir := t.TempDir()
	schemaPath := filepath.Join(dir, "schema.json")

	executor := &fakeIntrospectExecutor{body: []byte(fixtureIntrospectionResponse)}
	cfg := &config.Config{SchemaPath: schemaPath}

	sch, err := loadOrFetchSchema(cfg, executor)
	require.NoError(t, err)
	assert.Equal(t, "Query", sch.QueryRootName)
	assert.Equal(t, 1, executor.calls)

	cached, err := os.ReadFile(schemaPath)
	require.NoError(t, err)
	assert.JSONEq(t, fixtureIntrospectionResponse, string(cached))
}
