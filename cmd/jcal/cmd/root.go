package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/jcal/foundation/core/config"
	mdwerror "github.com/msto63/jcal/foundation/core/error"
	mdwlog "github.com/msto63/jcal/foundation/core/log"
	"github.com/msto63/jcal/foundation/utils/stringx"
	"github.com/msto63/jcal/foundation/utils/timex"
	"github.com/msto63/jcal/pkg/jtime"
)

var (
	cfgFile   string
	verbose   bool
	logFormat string

	// settings resolved in PersistentPreRunE
	cfg    *config.Config
	logger = mdwlog.Discard()

	// replaced in tests
	hostClock timex.Clock = timex.System
)

// defaults for every configuration key
var defaultSettings = map[string]interface{}{
	"zone":   "Asia/Tehran",
	"layout": "%Y-%m-%d %H:%M:%S",
	"output": "%Y-%m-%d %H:%M:%S",
	"locale": "fa",
	"log": map[string]interface{}{
		"level":  "warn",
		"format": "text",
	},
}

var rootCmd = &cobra.Command{
	Use:   "jcal",
	Short: "Jalali-Kalender: Datum und Uhrzeit im Sonnenkalender",
	Long: `jcal rechnet Zeitpunkte zwischen dem Jalali- (Solar Hijri) und dem
gregorianischen Kalender um, formatiert und parst sie mit strftime-Mustern.

Direktiven:
  %Y %y %m %-m %d %-d %B   Datum
  %H %I %M %S %p           Uhrzeit
  %z %Z                    Zeitzone (nur mit Zone)

Konfiguration: ./jcal.toml, ./jcal.yaml oder <config-dir>/jcal/jcal.toml,
Umgebungsvariablen mit Präfix JCAL_ (z.B. JCAL_ZONE).`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

// Execute runs the root command and reports errors on stderr
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		if logger.IsLevelEnabled(mdwlog.LevelDebug) {
			logger.LogError(err)
		}
		printError(rootCmd, err)
	}
	return err
}

// ExitCode maps an error to the process exit status
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	return mdwerror.GetCode(err).ExitCode()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config-Datei (TOML oder YAML, default: jcal.toml suchen)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose Output")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "Log-Format: text, json oder logfmt")
}

// setup loads the configuration and installs the logger
func setup(cmd *cobra.Command, args []string) error {
	var err error
	if cfgFile != "" {
		cfg, err = config.LoadWithOptions(cfgFile, config.LoadOptions{
			Format:    config.FormatAuto,
			EnvPrefix: "JCAL",
			Defaults:  defaultSettings,
		})
	} else {
		options := config.DefaultDiscoveryOptions()
		options.Defaults = defaultSettings
		cfg, err = config.Discover(options)
	}
	if err != nil {
		return err
	}

	level, err := mdwlog.ParseLevel(cfg.GetString("log.level"))
	if err != nil {
		return mdwerror.Wrap(err, "invalid log level").
			WithCode(mdwerror.CodeInvalidConfig).
			WithOperation("jcal.setup")
	}
	if verbose {
		level = mdwlog.LevelDebug
	}

	format, err := mdwlog.ParseFormat(stringx.FirstNonBlank(logFormat, cfg.GetString("log.format")))
	if err != nil {
		return mdwerror.Wrap(err, "invalid log format").
			WithCode(mdwerror.CodeInvalidConfig).
			WithOperation("jcal.setup")
	}

	logger = mdwlog.NewWithConfig(mdwlog.Config{
		Level:  level,
		Format: format,
		Output: cmd.ErrOrStderr(),
		Name:   "jcal",
	})
	mdwlog.SetDefault(logger)
	jtime.SetLogger(logger.WithName("jtime"))

	logger.Debug("configuration loaded", mdwlog.Fields{
		"file":    cfg.FilePath(),
		"command": cmd.Name(),
	})
	return nil
}

func printError(cmd *cobra.Command, err error) {
	fmt.Fprintf(cmd.ErrOrStderr(), "Fehler: %v\n", err)
}
