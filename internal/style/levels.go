package style

// Conventional level palettes for the npm, cli and syslog severity sets.
var (
	NPMColors = map[string]Spec{
		"error":   Name("red"),
		"warn":    Name("yellow"),
		"info":    Name("green"),
		"http":    Name("green"),
		"verbose": Name("cyan"),
		"debug":   Name("blue"),
		"silly":   Name("magenta"),
	}

	CLIColors = map[string]Spec{
		"error":   Name("red"),
		"warn":    Name("yellow"),
		"help":    Name("cyan"),
		"data":    Name("grey"),
		"info":    Name("green"),
		"debug":   Name("blue"),
		"prompt":  Name("grey"),
		"verbose": Name("cyan"),
		"input":   Name("grey"),
		"silly":   Name("magenta"),
	}

	SyslogColors = map[string]Spec{
		"emerg":   Name("red"),
		"alert":   Name("yellow"),
		"crit":    Name("red"),
		"error":   Name("red"),
		"warning": Name("red"),
		"notice":  Name("yellow"),
		"info":    Name("green"),
		"debug":   Name("blue"),
	}
)

// Preset returns the level palette registered under name, one of "npm",
// "cli" or "syslog".
func Preset(name string) (map[string]Spec, bool) {
	switch name {
	case "npm":
		return NPMColors, true
	case "cli":
		return CLIColors, true
	case "syslog":
		return SyslogColors, true
	default:
		return nil, false
	}
}
