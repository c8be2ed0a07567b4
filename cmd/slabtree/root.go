package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/joshuapare/slabtree/internal/logger"
	"github.com/joshuapare/slabtree/internal/outline"
	"github.com/joshuapare/slabtree/pkg/printer"
)

var (
	// Global flags
	verbose     bool
	quiet       bool
	formatName  string
	noColor     bool
	logDir      string
	encoding    string
	indentWidth int
)

var rootCmd = &cobra.Command{
	Use:   "slabtree",
	Short: "Load, render and traverse arena-backed trees",
	Long: `slabtree loads trees from indented outlines or YAML documents and
renders or traverses them. Outline files list one node per line with children
indented below their parent; .yaml and .yml files use nested value/children
mappings.`,
	Version:       "0.1.0",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initLogging()
	},
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().
		StringVarP(&formatName, "format", "f", string(printer.FormatText), "Output format: text, json or yaml")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().StringVar(&logDir, "log-dir", "", "Write debug logs to a daily file in this directory")
	rootCmd.PersistentFlags().
		StringVar(&encoding, "encoding", string(outline.EncodingAuto), "Outline encoding: auto, utf8, utf16 or windows1252")
	rootCmd.PersistentFlags().
		IntVar(&indentWidth, "indent-width", outline.DefaultIndentWidth, "Spaces per level in outline input")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		printError("%v\n", err)
		os.Exit(1)
	}
}

func initLogging() error {
	opts := logger.Options{
		Enabled: verbose || logDir != "",
		Level:   slog.LevelInfo,
		LogDir:  logDir,
	}
	if verbose {
		opts.Level = slog.LevelDebug
	}
	return logger.Init(opts)
}

// outlineOptions builds the outline scanner options from the global flags.
func outlineOptions() (outline.Options, error) {
	enc, err := outline.ParseEncoding(encoding)
	if err != nil {
		return outline.Options{}, err
	}
	opts := outline.DefaultOptions()
	opts.Encoding = enc
	opts.IndentWidth = indentWidth
	return opts, nil
}

// colorEnabled reports whether text output should be colored: stdout is a
// terminal and --no-color was not given.
func colorEnabled() bool {
	if noColor {
		return false
	}
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Helper functions for output

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...any) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printError prints an error message
func printError(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format, args...)
}

// printVerbose prints a verbose message if verbose mode is enabled
func printVerbose(format string, args ...any) {
	if verbose && !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}
