package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"

	"github.com/itarato/gomqlet/internal/config"
	"github.com/itarato/gomqlet/internal/editor"
	"github.com/itarato/gomqlet/internal/gateway"
	"github.com/itarato/gomqlet/internal/magic"
	"github.com/itarato/gomqlet/internal/schema"
)

// defaultConfigPath is where Edit looks for its config.Config, the same
// "well-known file in the current directory" convention as the teacher's
// okra.json.
const defaultConfigPath = "./gomqlet.json"

// Edit launches the interactive editor session against the configured
// endpoint and cached schema, the long-running-command shape of the
// teacher's Dev: load config, install signal-driven cancellation, start
// a background server (here: a SchemaWatcher) and a foreground loop
// (here: the bubbletea program) under the same context.
func (c *Controller) Edit(ctx context.Context) error {
	cfg, err := loadOrPromptConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	executor := gateway.NewHTTPExecutor(cfg.Endpoint, cfg.Headers)

	sch, err := loadOrFetchSchema(cfg, executor)
	if err != nil {
		return fmt.Errorf("failed to load schema: %w", err)
	}

	variables, err := cfg.ReadVariables()
	if err != nil {
		return fmt.Errorf("failed to read variables file: %w", err)
	}
	words, err := cfg.ReadWordList()
	if err != nil {
		return fmt.Errorf("failed to read word list file: %w", err)
	}

	session := editor.NewSession(sch, magic.Dependencies{
		Reader:    osReader{},
		Executor:  executor,
		Variables: variables,
		Words:     words,
	})

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	if cfg.SchemaPath != "" {
		watcher, err := config.NewSchemaWatcher(cfg.SchemaPath, func(sch *schema.Schema, err error) {
			if err != nil {
				log.Error().Err(err).Msg("schema reload failed")
				return
			}
			session.SetSchema(sch)
		})
		if err == nil {
			defer watcher.Close()
			go watcher.Start(ctx)
		} else {
			log.Warn().Err(err).Msg("schema file watching disabled")
		}
	}

	model := editor.NewModel(session, executor)
	program := tea.NewProgram(model)

	go func() {
		<-ctx.Done()
		program.Quit()
	}()

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("editor session error: %w", err)
	}

	return nil
}

func loadOrPromptConfig() (*config.Config, error) {
	if _, err := os.Stat(defaultConfigPath); err != nil {
		cfg, err := editor.PromptFirstRunConfig()
		if err != nil {
			return nil, err
		}
		data, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("encoding new config: %w", err)
		}
		if err := os.WriteFile(defaultConfigPath, data, 0o644); err != nil {
			return nil, fmt.Errorf("writing %s: %w", defaultConfigPath, err)
		}
		return cfg, nil
	}

	return config.LoadConfigFromPath(defaultConfigPath)
}

func loadOrFetchSchema(cfg *config.Config, executor gateway.Executor) (*schema.Schema, error) {
	if data, err := os.ReadFile(cfg.SchemaPath); err == nil {
		return schema.FromIntrospection(data)
	}

	body, err := gateway.FetchIntrospectionJSON(executor)
	if err != nil {
		return nil, err
	}

	sch, err := schema.FromIntrospection(body)
	if err != nil {
		return nil, err
	}

	if cfg.SchemaPath != "" {
		if err := os.WriteFile(cfg.SchemaPath, body, 0o644); err != nil {
			log.Warn().Err(err).Msg("could not cache introspected schema to disk")
		}
	}
	return sch, nil
}

// osReader adapts os.ReadFile to magic.Reader for `query::` substitution.
type osReader struct{}

func (osReader) ReadFile(path string) ([]byte, error) { return os.ReadFile(path) }
