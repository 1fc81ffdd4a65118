package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"finitefield.org/mindcard/internal/config"
	"finitefield.org/mindcard/internal/observability"
)

type rootOptions struct {
	verbose bool
	envFile string
}

// newRootCmd builds the command tree. Each call returns fresh flag state.
func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:   "cardctl",
		Short: "Render emotional-support cards to standalone HTML",
		Long: `cardctl turns card content (JSON or YAML) into a self-contained HTML card.
Defaults for skin, language and time zone come from the MINDCARD_* environment
variables and an optional .env file, the same way the web service reads them.`,
		SilenceUsage: true,
	}
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Log progress to stderr")
	root.PersistentFlags().StringVar(&opts.envFile, "env-file", ".env", "Path to a .env file with MINDCARD_* overrides")

	root.AddCommand(newRenderCmd(opts))
	root.AddCommand(newTemplatesCmd())
	return root
}

func (o *rootOptions) logger() *zap.Logger {
	logger, err := observability.NewCLILogger(o.verbose)
	if err != nil {
		return zap.NewNop()
	}
	return logger.Named("cardctl")
}

func (o *rootOptions) config() (config.Config, error) {
	return config.Load(config.WithEnvFile(o.envFile))
}
