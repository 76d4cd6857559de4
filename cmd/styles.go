package cmd

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/strongdm/colorize/internal/colorize"
	"github.com/strongdm/colorize/internal/logging"
	"github.com/strongdm/colorize/internal/style"
)

var stylesCmd = &cobra.Command{
	Use:   "styles",
	Short: "List the registered level styles",
	Long: `List every level known to the registry after applying --preset and
--colors, with the style chain it resolves to and a rendered sample.`,
	Args: cobra.NoArgs,
	RunE: runStyles,
}

func init() {
	rootCmd.AddCommand(stylesCmd)
}

func runStyles(cmd *cobra.Command, args []string) error {
	c, err := configure(style.Default, presetName, colorsSpec, colorize.Options{})
	if err != nil {
		PrintError("%v", err)
		SetExitCode(ExitError)
		return err
	}
	SetExitCode(ListStyles(cmd.OutOrStdout(), c.Registry(), !color.NoColor))
	return nil
}

// ListStyles writes one line per registered key and returns the exit code:
// ExitError if any entry fails to resolve.
func ListStyles(w io.Writer, reg *style.Registry, colors bool) int {
	code := ExitOK
	if reg.Len() > 0 {
		fmt.Fprintln(w, logging.Bold(fmt.Sprintf("%-10s %-24s %s", "LEVEL", "STYLE", "SAMPLE")))
	}
	for _, name := range reg.Names() {
		e, _ := reg.Lookup(name)
		sample := name
		if colors {
			s, err := reg.Apply(name, name)
			if err != nil {
				sample = logging.Red(err.Error())
				code = ExitError
			} else {
				sample = s
			}
		} else if _, err := reg.Resolve(name); err != nil {
			sample = err.Error()
			code = ExitError
		}
		fmt.Fprintf(w, "%-10s %-24s %s\n", name, e, sample)
	}
	if reg.Len() == 0 {
		fmt.Fprintln(w, logging.Dim("no styles registered"))
	}
	return code
}
