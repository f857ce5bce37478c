package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/2beens/liftload/internal/config"
	"github.com/2beens/liftload/internal/logging"
	"github.com/2beens/liftload/internal/telemetry/metrics"

	"github.com/mattn/go-isatty"
	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

func main() {
	a := &app{
		fs:  afero.NewOsFs(),
		out: os.Stdout,
	}
	if err := a.rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type app struct {
	fs  afero.Fs
	out io.Writer

	env        string
	configPath string

	cfg      *config.Config
	registry *prometheus.Registry
	metrics  *metrics.Manager
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "liftload",
		Short:         "Training load engine: 1RM estimates, plate math, load suggestions and session replay",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd.Flags().Changed("config"))
		},
	}
	root.SetOut(a.out)

	root.PersistentFlags().StringVar(&a.env, "env", "development", "environment [prod | production | dev | development]")
	root.PersistentFlags().StringVar(&a.configPath, "config", "./config.toml", "path for the TOML config file")

	root.AddCommand(
		a.e1rmCmd(),
		a.platesCmd(),
		a.suggestCmd(),
		a.replayCmd(),
	)
	return root
}

// setup loads the config, falling back to defaults when the default config
// file does not exist, then sets up logging and metrics.
func (a *app) setup(configRequired bool) error {
	cfg, err := config.LoadFs(a.fs, a.env, a.configPath)
	switch {
	case err == nil:
	case !configRequired && errors.Is(err, fs.ErrNotExist):
		cfg = config.Default()
	default:
		return fmt.Errorf("load config: %w", err)
	}
	a.cfg = cfg

	logging.Setup(logging.LoggerSetupParams{
		LogFileName:   cfg.LogsPath,
		LogToConsole:  cfg.LogToStdout,
		LogLevel:      cfg.LogLevel,
		LogFormatJSON: cfg.LogFormatJSON || !isatty.IsTerminal(os.Stderr.Fd()),
		Environment:   a.env,
		SentryEnabled: cfg.SentryEnabled,
		SentryDSN:     os.Getenv("SENTRY_DSN"),
	})

	a.registry = metrics.SetupPrometheus()
	a.metrics = metrics.NewManager(cfg.MetricsNamespace, "engine", a.registry)

	log.Debugf("running in [%s] environment, unit %s", a.env, cfg.WeightUnit)
	return nil
}

func (a *app) printJSON(v any) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
