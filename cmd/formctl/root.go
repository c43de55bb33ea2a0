package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	submissionapp "github.com/interiors/backend/internal/application/submission"
	"github.com/interiors/backend/internal/infrastructure/config"
	"github.com/interiors/backend/internal/infrastructure/logger"
)

const (
	outputJSON = "json"
	outputYAML = "yaml"
)

// cli holds state shared by every subcommand
type cli struct {
	configPath string
	output     string
	verbose    bool

	log     *zap.Logger
	service *submissionapp.SubmissionService
}

func newRootCmd() *cobra.Command {
	c := &cli{}

	root := &cobra.Command{
		Use:   "formctl",
		Short: "Inspect kitchen and bedroom form submissions",
		Long: `formctl works on the raw form_data of a submission.

Available subcommands:
  classify  - Resolve the submission kind
  render    - Print the ordered display sections
  materials - Extract material line items for a section
  order     - Draft a material order for a section
  mark-na   - Print the Mark N/A patch for a section tag

FILE may be "-" to read from stdin.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.setup,
		PersistentPostRun: func(*cobra.Command, []string) {
			if c.log != nil {
				_ = logger.Sync(c.log)
			}
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&c.configPath, "config", "", "path to config file (default: search for config.toml)")
	flags.StringVarP(&c.output, "output", "o", outputJSON, "output format: json or yaml")
	flags.BoolVarP(&c.verbose, "verbose", "v", false, "log engine decisions to stderr")

	root.AddCommand(
		c.classifyCmd(),
		c.renderCmd(),
		c.materialsCmd(),
		c.orderCmd(),
		c.markNACmd(),
	)
	return root
}

func (c *cli) setup(cmd *cobra.Command, _ []string) error {
	if c.output != outputJSON && c.output != outputYAML {
		return fmt.Errorf("unsupported output format %q", c.output)
	}

	cfg, err := config.LoadFile(c.configPath)
	if err != nil {
		return err
	}

	level := "warn"
	if c.verbose {
		level = "debug"
	}
	c.log, err = logger.New(&logger.Config{
		Level:  level,
		Format: "console",
		Output: "stderr",
	})
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	c.service = submissionapp.NewSubmissionService(
		logger.Named(c.log, "formctl"),
		submissionapp.WithFormatterOptions(cfg.FormatterOptions()),
	)
	return nil
}

func (c *cli) context(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// readFormData reads a submission from path, or from the command's input
// when path is "-". Content that is not a JSON object is passed on as is and
// reads as an empty submission.
func readFormData(cmd *cobra.Command, path string) (json.RawMessage, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read form data: %w", err)
	}
	return json.RawMessage(data), nil
}
