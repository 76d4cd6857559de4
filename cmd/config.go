package cmd

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/strongdm/colorize/internal/colorize"
	"github.com/strongdm/colorize/internal/style"
)

// colorEnabled decides whether output written to w should carry colors.
// "auto" enables them only when w is a terminal.
func colorEnabled(mode string, w io.Writer) (bool, error) {
	switch mode {
	case "always":
		return true, nil
	case "never":
		return false, nil
	case "auto", "":
		if os.Getenv("NO_COLOR") != "" {
			return false, nil
		}
		if f, ok := w.(*os.File); ok {
			return term.IsTerminal(int(f.Fd())), nil
		}
		return false, nil
	default:
		return false, fmt.Errorf("invalid --color %q (want auto, always or never)", mode)
	}
}

// parseColors decodes a YAML mapping of level to style spec. Values may be
// a style name, a space-delimited chain, or a list of names.
func parseColors(s string) (map[string]style.Spec, error) {
	if s == "" {
		return nil, nil
	}
	var raw map[string]any
	if err := yaml.Unmarshal([]byte(s), &raw); err != nil {
		return nil, fmt.Errorf("invalid --colors: %w", err)
	}
	specs, err := style.SpecsOf(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid --colors: %w", err)
	}
	return specs, nil
}

// configure seeds reg with the named preset and builds a colorizer whose
// extra colors come from the --colors mapping.
func configure(reg *style.Registry, preset, colors string, opts colorize.Options) (*colorize.Colorizer, error) {
	if preset != "none" {
		p, ok := style.Preset(preset)
		if !ok {
			return nil, fmt.Errorf("unknown preset %q (want npm, cli, syslog or none)", preset)
		}
		reg.Register(p)
	}

	extra, err := parseColors(colors)
	if err != nil {
		return nil, err
	}
	opts.Colors = extra
	return colorize.New(reg, opts), nil
}
