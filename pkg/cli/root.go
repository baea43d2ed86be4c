package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/getmockd/fixturegen/pkg/config"
	"github.com/getmockd/fixturegen/pkg/logging"
)

var (
	// Persistent flags available to all subcommands
	configPath string
	logLevel   string
	logFormat  string
	logFile    string

	// log is set up by the root command before any subcommand runs.
	log = logging.Nop()
	// logCloser releases the --log-file handle.
	logCloser io.Closer

	// Version is injected during build
	Version = "dev"
	// Commit is injected during build
	Commit = "none"
	// BuildDate is injected during build
	BuildDate = "unknown"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "fixturegen",
	Short: "fixturegen generates random test fixtures from schemas",
	Long: `fixturegen produces random payloads that conform to the schemas of an
OpenAPI 3 document, a Swagger 2.0 document or a standalone schema bundle.

Values can be emitted as function-call expressions (randomString(...),
randomNumberGenerator(...)) for a downstream evaluator, or resolved into
concrete JSON, YAML or XML with --resolve.

Configuration can be provided via flags, FIXTUREGEN_* environment variables,
a local .fixturegen.yaml or a global config file.`,
	SilenceUsage:       true,
	SilenceErrors:      true, // We handle errors in Execute()
	PersistentPreRunE:  setupLogging,
	PersistentPostRunE: closeLogging,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file (default: .fixturegen.yaml, then the global config)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "Log format: text or json")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Also write JSON logs to this file")
}

// loadConfig merges every configuration layer and applies the persistent
// flags on top.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.LoadAll(configPath)
	if err != nil {
		return nil, err
	}
	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.LogLevel = logLevel
		cfg.Sources["logLevel"] = config.SourceFlag
	}
	if flags.Changed("log-format") {
		cfg.LogFormat = logFormat
		cfg.Sources["logFormat"] = config.SourceFlag
	}
	return cfg, nil
}

// setupLogging builds the process logger. Config errors are ignored here and
// reported by the command itself.
func setupLogging(cmd *cobra.Command, _ []string) error {
	level, format := logLevel, logFormat
	if cfg, err := loadConfig(cmd); err == nil {
		level, format = cfg.LogLevel, cfg.LogFormat
	}

	var handler slog.Handler = logging.NewHandler(logging.Config{
		Level:  logging.ParseLevel(level),
		Format: logging.ParseFormat(format),
		Output: cmd.ErrOrStderr(),
	})
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		logCloser = f
		handler = logging.NewMultiHandler(handler, logging.NewHandler(logging.Config{
			Level:  logging.LevelDebug,
			Format: logging.FormatJSON,
			Output: f,
		}))
	}
	log = slog.New(handler)
	return nil
}

func closeLogging(*cobra.Command, []string) error {
	if logCloser == nil {
		return nil
	}
	err := logCloser.Close()
	logCloser = nil
	log = logging.Nop()
	return err
}
