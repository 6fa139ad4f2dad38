package cmd

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"rtesession/internal/config"
	"rtesession/internal/document"
	"rtesession/internal/tui"
	"rtesession/pkg/logging"
)

var (
	cfgFile      string
	docFile      string
	presentation string
	debugLabel   string
	noColor      bool
	logFile      string
	logLevel     string
)

// rootCmd runs an editing session when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "rtesession",
	Short: "Edit a rich-text document in a terminal session",
	Long: `rtesession opens a document in a terminal editing session with three
screens: the editor, a read-only view of the document source, and a
configuration screen that toggles edit mode and the debug overlay.

Configuration is read from ~/.config/rtesession/config.yaml, then
./.rtesession/config.yaml, then the file given with --config. Flags
override all of them.`,
	Args: cobra.NoArgs,
	// Errors are reported by Execute; usage is only useful for flag mistakes.
	SilenceUsage: true,
	RunE:         runSession,
}

// SetVersion sets the version for the root command
func SetVersion(v string) {
	rootCmd.Version = v
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "rtesession version %s\n" .Version}}`)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(newSourceCmd())
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newVersionCmd())

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file layered over the user and project configs")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "write logs to this file (the terminal belongs to the session)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn or error")

	rootCmd.Flags().StringVarP(&docFile, "file", "f", "", "initial document (.json source or plain text)")
	rootCmd.Flags().StringVar(&presentation, "presentation", "", "screen presentation: tabs, stack or panel")
	rootCmd.Flags().StringVar(&debugLabel, "debug-label", "", "label of the debug overlay toggle")
	rootCmd.Flags().BoolVar(&noColor, "no-color", false, "disable colors")
}

func runSession(cmd *cobra.Command, args []string) error {
	closeLog, err := setupLogging(logLevel, logFile)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	doc := document.Empty()
	if docFile != "" {
		if doc, err = document.Load(docFile); err != nil {
			return err
		}
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return tui.Run(ctx, tui.Options{Config: cfg, Document: doc})
}

// setupLogging routes logs to path, or discards them when path is empty.
func setupLogging(level, path string) (func(), error) {
	lvl, err := logging.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	if path == "" {
		logging.Init(lvl, io.Discard)
		return func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	logging.Init(lvl, f)
	return func() { _ = f.Close() }, nil
}

// loadConfig layers the config files and applies any flags the user set.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return config.Config{}, err
	}
	flags := cmd.Flags()
	if flags.Changed("presentation") {
		cfg.Presentation = config.Presentation(presentation)
	}
	if flags.Changed("debug-label") {
		cfg.DebugLabel = debugLabel
	}
	if flags.Changed("no-color") {
		cfg.NoColor = noColor
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}
