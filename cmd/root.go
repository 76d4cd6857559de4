package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var version = "0.1.0"

var (
	colorMode  string
	presetName string
	colorsSpec string
)

var rootCmd = &cobra.Command{
	Use:   "colorize",
	Short: "Colorize the level and message of structured log records",
	Long: `colorize reads newline-delimited JSON log records and wraps their
level and/or message in terminal colors chosen by severity.

Quick start:
  echo '{"level":"info","message":"hello"}' | colorize format
  colorize format --all --preset syslog app.log
  colorize format --colors '{info: [green, bold], error: "red underline"}'

Styles (use --colors with format/styles):
  name      red, green, bold, underline, bgRed, redBright, ...
  chain     "red bold" or [red, bold], first name applied innermost`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		enabled, err := colorEnabled(colorMode, os.Stdout)
		if err != nil {
			return err
		}
		color.NoColor = !enabled
		return nil
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.Version = version
	rootCmd.SetVersionTemplate("colorize version {{.Version}}\n")

	// Disable the default completion command
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	// Silence Cobra's automatic error and usage printing for RunE errors.
	// Our commands handle their own error output via PrintError.
	// Cobra still prints errors for unknown commands, bad flags, etc.
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true

	rootCmd.PersistentFlags().StringVar(&colorMode, "color", "auto", "When to emit colors: auto, always, never")
	rootCmd.PersistentFlags().StringVarP(&presetName, "preset", "p", "npm", "Level palette to start from: npm, cli, syslog, none")
	rootCmd.PersistentFlags().StringVar(&colorsSpec, "colors", "", "Extra level styles as a YAML mapping, e.g. '{info: green, error: [red, bold]}'")
}

// exitCode is used to track the desired exit code
var exitCode int

// SetExitCode sets the exit code to be used when the program exits
func SetExitCode(code int) {
	exitCode = code
}

// GetExitCode returns the current exit code
func GetExitCode() int {
	return exitCode
}

// PrintError prints an error message to stderr
func PrintError(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
}
