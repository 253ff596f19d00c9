// pagekit is a command-line shell over the page-template data core.
// Each command group drives one template's store the way the
// workspace UI would: mutate the snapshot, persist it under
// (scope, page), render a derived view.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/arc-workspace/pagekit/formats"
	"github.com/arc-workspace/pagekit/ports"
	"github.com/arc-workspace/pagekit/store"
	"github.com/arc-workspace/pagekit/types"
)

var (
	dataDir  string
	scope    string
	logLevel string
	verbose  bool
	yes      bool
)

var logLevelMap = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

var rootCmd = &cobra.Command{
	Use:   "pagekit",
	Short: "Workspace page templates from the terminal",
	Long: `Pagekit drives the workspace page templates (bug tracker, calendar,
notes board, roadmap, sprint board, study tracker, blank note) against
their persisted page stores.

Examples:
  pagekit bugs add "Login button unresponsive" --priority high
  pagekit bugs list --status open
  pagekit sprint board
  pagekit calendar month 2025-01
  pagekit study toggle <id>`,
}

func init() {
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return initConfig()
	}
	rootCmd.PersistentFlags().StringVarP(&dataDir, "dir", "d", "", "directory holding page data (default $HOME/.pagekit)")
	rootCmd.PersistentFlags().StringVar(&scope, "scope", "default", "workspace scope the pages belong to")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&yes, "yes", "y", false, "answer yes to confirmation prompts")
}

// initConfig wires viper (config file + environment) under the flag
// values and initializes logging.
func initConfig() error {
	v := viper.New()
	v.SetConfigName("pagekit")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(home)
	}
	v.SetEnvPrefix("PAGEKIT")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}

	if dataDir == "" {
		dataDir = v.GetString("dir")
	}
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to resolve home directory: %w", err)
		}
		dataDir = home + "/.pagekit"
	}
	if !rootCmd.PersistentFlags().Changed("scope") && v.GetString("scope") != "" {
		scope = v.GetString("scope")
	}

	level, ok := logLevelMap[strings.ToLower(logLevel)]
	if !ok {
		level = slog.LevelWarn
	}
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
	return nil
}

// pageKey builds the identity of a template's page in the current
// scope.
func pageKey(page string) types.PageKey {
	return types.PageKey{Scope: scope, Page: page}
}

// openPage opens a session for the named page with the file adapter.
func openPage[T any](page string, defaultValue T) (*store.Session[T], error) {
	adapter := store.NewFileAdapter(dataDir)
	sess, err := store.Open(adapter, pageKey(page), defaultValue, store.WithLogger[T](slog.Default()))
	if err != nil {
		return nil, fmt.Errorf("failed to open page %q: %w", page, err)
	}
	return sess, nil
}

// exportYAML prints a page snapshot as a YAML page document.
func exportYAML[T any](page, template string, records T) error {
	out, err := formats.EncodePage(pageKey(page), template, records)
	if err != nil {
		return err
	}
	fmt.Print(string(out))
	return nil
}

// confirmer returns the confirmation port honoring --yes.
func confirmer() ports.Confirmer {
	if yes {
		return ports.AlwaysConfirm{}
	}
	return ports.ReaderConfirmer{In: os.Stdin, Out: os.Stdout}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
