package editor

import (
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/itarato/gomqlet/internal/config"
)

// PromptFirstRunConfig collects the minimum viable config.Config (just the
// endpoint) through an interactive huh form, the same form-then-Run shape
// as the teacher's promptInitOptions, used when no config file exists yet.
func PromptFirstRunConfig() (*config.Config, error) {
	var endpoint string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("GraphQL endpoint").
				Description("URL gomqlet will introspect and send operations to").
				Value(&endpoint).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("endpoint cannot be empty")
					}
					return nil
				}),
		),
	)

	if err := form.Run(); err != nil {
		return nil, fmt.Errorf("editor: configuration prompt: %w", err)
	}

	return &config.Config{
		Endpoint:   endpoint,
		SchemaPath: "./schema.json",
		LogLevel:   "info",
	}, nil
}
