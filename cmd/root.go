// Package cmd provides the root command and CLI setup for scanctl.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mouse-blink/scanctl/internal/adapter"
	"github.com/mouse-blink/scanctl/internal/config"
	"github.com/mouse-blink/scanctl/internal/controller"
	"github.com/mouse-blink/scanctl/internal/logging"
)

// app is what every subcommand runs with once flags and config are resolved.
type app struct {
	cfg    config.Config
	logger logging.Logger
	engine adapter.EngineClient
}

// newEngine builds the engine client. Tests replace it with a mock.
var newEngine = func(cfg config.Config) adapter.EngineClient {
	return adapter.NewHTTPEngineClient(cfg.Engine.URL, adapter.WithTimeout(cfg.Engine.Timeout))
}

var (
	current    *app
	configFlag string
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	v := config.New()

	cmd := &cobra.Command{
		Use:   "scanctl",
		Short: "Drive a memory scanning engine from the command line",
		Long: `scanctl talks to a running memory scanning engine. It lists processes,
runs a first scan and successive narrowing scans over one process, pages
through the candidate addresses and writes new values to them.

Scan expressions:
  42        exact value          u       unknown initial value
  10..20    range, end excluded  10..=20 range, end included
  <5, >5    smaller/bigger than  =, ~    unchanged, changed
  d, i      decreased, increased d5, i5  decreased/increased by 5`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			a, err := loadApp(cmd, v)
			if err != nil {
				return err
			}

			current = a

			return nil
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&configFlag, "config", "", "config file (default $HOME/.config/scanctl/config.toml)")
	flags.String("engine", "", "engine base URL")
	flags.Int("page-size", 0, "results per page")
	flags.String("log-level", "", "log level: debug, info, warn, error")
	flags.String("format", "", "plain output format: table or yaml")
	flags.String("ui", "", "output mode: auto, simple or tui")

	// An explicitly set flag overrides file and env values.
	for key, name := range map[string]string{
		"engine.url":        "engine",
		"session.page_size": "page-size",
		"log.level":         "log-level",
		"ui.format":         "format",
		"ui.mode":           "ui",
	} {
		if err := v.BindPFlag(key, flags.Lookup(name)); err != nil {
			panic(fmt.Sprintf("bind %s: %v", name, err))
		}
	}

	return cmd
}

func loadApp(cmd *cobra.Command, v *viper.Viper) (*app, error) {
	if configFlag != "" {
		v.SetConfigFile(configFlag)
	}

	cfg, err := config.Load(v)
	if err != nil {
		return nil, err
	}

	logger, err := logging.New(logging.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cmd.ErrOrStderr(),
	})
	if err != nil {
		return nil, err
	}

	return &app{cfg: cfg, logger: logger, engine: newEngine(cfg)}, nil
}

// newUI picks the renderer for cmd from ui.mode; forceTTY selects the
// interactive renderer regardless of the mode.
func newUI(cmd *cobra.Command, cfg config.Config, forceTTY bool) (controller.UI, error) {
	format, err := controller.ParseFormat(cfg.UI.Format)
	if err != nil {
		return nil, err
	}

	useTTY := forceTTY
	switch cfg.UI.Mode {
	case "tui":
		useTTY = true
	case "auto":
		useTTY = useTTY || controller.IsTTY(cmd.OutOrStdout())
	}

	return controller.NewUI(cmd, useTTY, controller.WithFormat(format), controller.WithInput(cmd.InOrStdin())), nil
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}

	return context.Background()
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
