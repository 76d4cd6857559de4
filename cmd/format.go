package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/strongdm/colorize/internal/colorize"
	"github.com/strongdm/colorize/internal/logging"
	"github.com/strongdm/colorize/internal/style"
)

var (
	formatLevel   bool
	formatMessage bool
	formatAll     bool
	formatOutput  string
)

var formatCmd = &cobra.Command{
	Use:   "format [file]",
	Short: "Colorize newline-delimited JSON log records",
	Long: `Read JSON log records, one per line, from file or stdin and write them
with the level and/or message colored by severity.

Each record needs a string "level" field; the message is read from
"message" (or "msg"). The style is picked by the lower-cased level, so
"INFO" and "info" share a style. Remaining fields are passed through.

Which fields are colored:
  (default)         level only
  --message         message only
  --level --message both
  --all             both

Exit codes:
  0   - All records written
  1   - A record's level has no registered style
  2   - Error occurred (bad flags, unreadable input, malformed record)`,
	Args: cobra.MaximumNArgs(1),
	RunE: runFormat,
}

func init() {
	formatCmd.Flags().BoolVarP(&formatLevel, "level", "l", false, "Color the level")
	formatCmd.Flags().BoolVarP(&formatMessage, "message", "m", false, "Color the message")
	formatCmd.Flags().BoolVarP(&formatAll, "all", "a", false, "Color both level and message")
	formatCmd.Flags().StringVarP(&formatOutput, "output", "o", "text", "Output format: text or json")
	rootCmd.AddCommand(formatCmd)
}

func runFormat(cmd *cobra.Command, args []string) error {
	format, err := logging.ParseFormat(formatOutput)
	if err != nil {
		PrintError("%v", err)
		SetExitCode(ExitError)
		return err
	}

	opts := colorize.Options{Level: formatLevel, Message: formatMessage, All: formatAll}
	c, err := configure(style.Default, presetName, colorsSpec, opts)
	if err != nil {
		PrintError("%v", err)
		SetExitCode(ExitError)
		return err
	}

	in := cmd.InOrStdin()
	if len(args) == 1 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			PrintError("failed to open input: %v", err)
			SetExitCode(ExitError)
			return err
		}
		defer f.Close()
		in = f
	}

	runner := NewFormatRunner(c, logging.NewRecordWriter(cmd.OutOrStdout(), format))
	runner.Colors = !color.NoColor
	if err := runner.Run(in); err != nil {
		PrintError("%v", err)
		SetExitCode(ExitCodeFor(err))
		return err
	}
	SetExitCode(ExitOK)
	return nil
}

// FormatRunner streams records from a reader through a colorizer into a
// record writer.
type FormatRunner struct {
	Colorizer *colorize.Colorizer
	Writer    *logging.RecordWriter

	// Colors, when false, writes records without decoration.
	Colors bool
}

// NewFormatRunner creates a runner that colors records.
func NewFormatRunner(c *colorize.Colorizer, w *logging.RecordWriter) *FormatRunner {
	return &FormatRunner{Colorizer: c, Writer: w, Colors: true}
}

// Run processes every record in r. It stops at the first record that
// cannot be decoded, styled or written.
func (fr *FormatRunner) Run(r io.Reader) error {
	return logging.ReadRecords(r, func(line int, rec *logging.Record) error {
		if fr.Colors {
			if _, err := fr.Colorizer.Apply(rec); err != nil {
				var ue *style.UndefinedStyleError
				if errors.As(err, &ue) {
					return fmt.Errorf("line %d: level %q: %w", line, rec.Level, err)
				}
				return fmt.Errorf("line %d: %w", line, err)
			}
		}
		if err := fr.Writer.Write(rec); err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}
		return nil
	})
}
