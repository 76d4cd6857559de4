// Package colorize wraps the level and message of log records in terminal
// styles looked up from a style.Registry by each record's dispatch key.
//
// By default only the level is colored. Options.Message switches to
// message-only coloring, and Options.All (or Level together with Message)
// colors both.
package colorize

import (
	"github.com/strongdm/colorize/internal/logging"
	"github.com/strongdm/colorize/internal/style"
)

// Options configures a Colorizer.
type Options struct {
	// Colors, if set, is registered into the colorizer's registry when the
	// colorizer is created. The registry is shared, so this affects every
	// other user of it.
	Colors map[string]style.Spec

	Level   bool
	Message bool
	All     bool
}

// Targets lists the record fields a transform decorates.
type Targets struct {
	Level   bool
	Message bool
}

// DecideTargets reports which fields opts selects. The level is colored
// unless message-only coloring was asked for.
func DecideTargets(opts Options) Targets {
	return Targets{
		Level:   opts.Level || opts.All || !opts.Message,
		Message: opts.All || opts.Message,
	}
}

// Colorizer applies registry styles to records. It holds no per-record
// state and may be reused for any number of records.
type Colorizer struct {
	registry *style.Registry
	opts     Options
}

// New creates a Colorizer reading styles from reg, or from style.Default
// when reg is nil. opts.Colors is registered into that registry.
func New(reg *style.Registry, opts Options) *Colorizer {
	if reg == nil {
		reg = style.Default
	}
	if len(opts.Colors) > 0 {
		reg.Register(opts.Colors)
	}
	return &Colorizer{registry: reg, opts: opts}
}

// Options returns the options the colorizer was created with.
func (c *Colorizer) Options() Options { return c.opts }

// Registry returns the registry styles are read from.
func (c *Colorizer) Registry() *style.Registry { return c.registry }

// Colorize styles text with the style registered for key. With no message
// the level text is styled; otherwise the message is, and level only keeps
// the call shape of the two-field case.
func (c *Colorizer) Colorize(key, level string, message ...string) (string, error) {
	text := level
	if len(message) > 0 {
		text = message[0]
	}
	return c.registry.Apply(key, text)
}

// Transform decorates rec in place according to opts and returns it.
// It fails with style.ErrUndefinedStyle when rec.Key has no style.
func (c *Colorizer) Transform(rec *logging.Record, opts Options) (*logging.Record, error) {
	t := DecideTargets(opts)

	if t.Level {
		level, err := c.Colorize(rec.Key, rec.Level)
		if err != nil {
			return rec, err
		}
		rec.Level = level
	}

	if t.Message {
		message, err := c.Colorize(rec.Key, rec.Level, rec.Message)
		if err != nil {
			return rec, err
		}
		rec.Message = message
	}

	return rec, nil
}

// Apply transforms rec with the colorizer's own options.
func (c *Colorizer) Apply(rec *logging.Record) (*logging.Record, error) {
	return c.Transform(rec, c.opts)
}
