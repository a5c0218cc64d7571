package commands

import (
	"fmt"
	"log/slog"

	"github.com/leapstack-labs/swiftkt/internal/cli/config"
	"github.com/leapstack-labs/swiftkt/internal/cli/output"
	"github.com/leapstack-labs/swiftkt/pkg/kotlin"
	"github.com/spf13/cobra"
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Renderer *output.Renderer
}

// NewCommandContext collects the configuration and logger stored on the
// command context by the root command.
func NewCommandContext(cmd *cobra.Command) (*CommandContext, error) {
	cfg, err := config.GetConfig(cmd.Context())
	if err != nil {
		return nil, err
	}
	return &CommandContext{
		Cfg:      cfg,
		Logger:   config.GetLogger(cmd.Context()),
		Renderer: output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(cfg.Output)),
	}, nil
}

// NewTranslator builds a translator from the configuration.
func (c *CommandContext) NewTranslator() (*kotlin.Translator, error) {
	tc := c.Cfg.TranslatorConfig()
	tc.Logger = c.Logger
	tr, err := kotlin.New(tc)
	if err != nil {
		return nil, fmt.Errorf("failed to create translator: %w", err)
	}
	return tr, nil
}
