package style

import "github.com/fatih/color"

// Func decorates text with terminal display codes.
type Func func(string) string

// Palette maps bare style names to the functions that apply them.
type Palette map[string]Func

func identity(s string) string { return s }

// attrs lists the style names understood by the default palette.
// Names follow the chalk vocabulary used by most log formatters.
var attrs = map[string]color.Attribute{
	"reset":         color.Reset,
	"bold":          color.Bold,
	"dim":           color.Faint,
	"italic":        color.Italic,
	"underline":     color.Underline,
	"blink":         color.BlinkSlow,
	"inverse":       color.ReverseVideo,
	"hidden":        color.Concealed,
	"strikethrough": color.CrossedOut,

	"black":   color.FgBlack,
	"red":     color.FgRed,
	"green":   color.FgGreen,
	"yellow":  color.FgYellow,
	"blue":    color.FgBlue,
	"magenta": color.FgMagenta,
	"cyan":    color.FgCyan,
	"white":   color.FgWhite,
	"gray":    color.FgHiBlack,
	"grey":    color.FgHiBlack,

	"blackBright":   color.FgHiBlack,
	"redBright":     color.FgHiRed,
	"greenBright":   color.FgHiGreen,
	"yellowBright":  color.FgHiYellow,
	"blueBright":    color.FgHiBlue,
	"magentaBright": color.FgHiMagenta,
	"cyanBright":    color.FgHiCyan,
	"whiteBright":   color.FgHiWhite,

	"bgBlack":   color.BgBlack,
	"bgRed":     color.BgRed,
	"bgGreen":   color.BgGreen,
	"bgYellow":  color.BgYellow,
	"bgBlue":    color.BgBlue,
	"bgMagenta": color.BgMagenta,
	"bgCyan":    color.BgCyan,
	"bgWhite":   color.BgWhite,
	"bgGray":    color.BgHiBlack,
	"bgGrey":    color.BgHiBlack,

	"bgBlackBright":   color.BgHiBlack,
	"bgRedBright":     color.BgHiRed,
	"bgGreenBright":   color.BgHiGreen,
	"bgYellowBright":  color.BgHiYellow,
	"bgBlueBright":    color.BgHiBlue,
	"bgMagentaBright": color.BgHiMagenta,
	"bgCyanBright":    color.BgHiCyan,
	"bgWhiteBright":   color.BgHiWhite,
}

// Paint returns a Func that wraps text in the given attributes.
// Colors are always emitted, regardless of color.NoColor; deciding
// whether the output can show them is left to the caller.
func Paint(a ...color.Attribute) Func {
	c := color.New(a...)
	c.EnableColor()
	return func(s string) string { return c.Sprint(s) }
}

// DefaultPalette returns a fresh palette holding every named style.
func DefaultPalette() Palette {
	p := make(Palette, len(attrs))
	for name, a := range attrs {
		p[name] = Paint(a)
	}
	return p
}
