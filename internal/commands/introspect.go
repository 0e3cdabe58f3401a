package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/itarato/gomqlet/internal/config"
	"github.com/itarato/gomqlet/internal/gateway"
)

// Introspect fetches the schema from the configured endpoint and writes
// the raw introspection JSON to cfg.SchemaPath, so `edit` can load a
// schema without round-tripping the network —
// the gap the original program covered with its net_ops.rs cache file,
// here surfaced as its own command rather than folded into the core.
func (c *Controller) Introspect(ctx context.Context) error {
	cfg, err := config.LoadConfigFromPath(defaultConfigPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	executor := gateway.NewHTTPExecutor(cfg.Endpoint, cfg.Headers)
	if err := cacheSchema(cfg, executor); err != nil {
		return fmt.Errorf("failed to introspect schema: %w", err)
	}

	fmt.Printf("schema written to %s\n", cfg.SchemaPath)
	return nil
}

// cacheSchema fetches the raw introspection JSON (rather than reusing an
// already-parsed schema.Schema, which has no serialization back to the
// introspection wire shape) and writes it to cfg.SchemaPath.
func cacheSchema(cfg *config.Config, executor gateway.Executor) error {
	body, err := gateway.FetchIntrospectionJSON(executor)
	if err != nil {
		return err
	}
	return os.WriteFile(cfg.SchemaPath, body, 0o644)
}
