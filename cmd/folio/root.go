package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/3-lines-studio/folio/internal/adapters/cli"
	"github.com/3-lines-studio/folio/internal/adapters/env"
	"github.com/3-lines-studio/folio/internal/config"
	"github.com/3-lines-studio/folio/internal/logger"
)

// app carries what every subcommand needs once flags and config are read.
type app struct {
	cfgFile string
	v       *viper.Viper
	cfg     *config.Config
	logger  *slog.Logger
	out     *cli.Output

	// ready receives the listen address once serve is accepting.
	ready chan<- string
}

func newRootCmd() *cobra.Command {
	cmd, _ := newRoot()
	return cmd
}

func newRoot() (*cobra.Command, *app) {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "folio",
		Short: "Folio - a single-page developer portfolio from one content file",
		Long: `Folio renders a developer portfolio (hero, skills, projects, offerings,
contact) from a YAML or JSON content file. It can serve the page with live
reload, export a static site, or print the page as HTML, Markdown or JSON.

Example:
  folio init jane-doe
  cd jane-doe && folio serve --dev`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.initialize(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default is ./folio.yaml, then "+config.Dir()+"/folio.yaml)")
	flags.String("content", "", "content file (yaml or json)")
	flags.String("static-dir", "", "directory of static assets")
	flags.String("log-level", "", "log level: debug, info, warn, error")
	flags.String("log-format", "", "log format: text or json")
	flags.Bool("dev", false, "dev mode: show render errors and live reload")

	rootCmd.AddCommand(
		newInitCmd(a),
		newBuildCmd(a),
		newServeCmd(a),
		newDoctorCmd(a),
		newRenderCmd(a),
	)
	return rootCmd, a
}

var flagKeys = map[string]string{
	"content":    "content",
	"static-dir": "static_dir",
	"output-dir": "output_dir",
	"stylesheet": "stylesheet",
	"addr":       "addr",
	"log-level":  "log_level",
	"log-format": "log_format",
	"dev":        "dev",
}

func (a *app) initialize(cmd *cobra.Command) error {
	a.v = config.New(a.cfgFile)

	for flag, key := range flagKeys {
		if f := cmd.Flags().Lookup(flag); f != nil {
			_ = a.v.BindPFlag(key, f)
		}
	}

	if err := config.Read(a.v, a.cfgFile != ""); err != nil {
		return err
	}

	cfg, err := config.Load(a.v)
	if err != nil {
		return err
	}
	if env.IsDev() {
		cfg.Dev = true
	}
	a.cfg = cfg

	a.logger = logger.Setup(cmd.ErrOrStderr(), logger.ParseLevel(cfg.LogLevel), cfg.LogFormat)
	if used := a.v.ConfigFileUsed(); used != "" {
		a.logger.Debug("using config file", "path", used)
	}

	if cmd.OutOrStdout() == os.Stdout {
		a.out = cli.NewOutput()
	} else {
		a.out = cli.NewWriterOutput(cmd.OutOrStdout())
	}
	return nil
}
