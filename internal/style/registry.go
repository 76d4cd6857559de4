package style

import (
	"sort"
	"strings"
	"sync"
)

// Options control registry behavior.
type Options struct {
	// Palette resolves bare style names. Defaults to DefaultPalette().
	Palette Palette

	// Normalizer canonicalizes keys on Register and Resolve.
	// If nil, keys are used as-is.
	Normalizer func(string) string
}

// Option modifies Options.
type Option func(*Options)

// WithPalette sets the palette used to resolve style names.
func WithPalette(p Palette) Option { return func(o *Options) { o.Palette = p } }

// WithCaseFoldLower makes keys case-insensitive.
func WithCaseFoldLower() Option {
	return func(o *Options) { o.Normalizer = strings.ToLower }
}

// Registry maps keys, typically severity levels, to style entries.
// Registration normally happens once during configuration; the lock
// only keeps later reads consistent.
type Registry struct {
	mu   sync.RWMutex
	data map[string]Entry
	opt  Options
}

// NewRegistry creates an empty registry.
func NewRegistry(opts ...Option) *Registry {
	var o Options
	for _, fn := range opts {
		fn(&o)
	}
	if o.Palette == nil {
		o.Palette = DefaultPalette()
	}
	return &Registry{
		data: make(map[string]Entry),
		opt:  o,
	}
}

// Default is the process-wide registry used by Register and by colorizers
// built without one.
var Default = NewRegistry()

// Register adds mapping to the Default registry.
func Register(mapping map[string]Spec) map[string]Entry {
	return Default.Register(mapping)
}

func (r *Registry) normalize(k string) string {
	if r.opt.Normalizer != nil {
		return r.opt.Normalizer(k)
	}
	return k
}

// Register merges mapping into the registry. Keys already present are
// replaced and all other keys are kept. It returns a snapshot of the full
// registry after the merge. Nil specs and Custom specs without a function
// are skipped.
func (r *Registry) Register(mapping map[string]Spec) map[string]Entry {
	next := make(map[string]Entry, len(mapping))
	for k, spec := range mapping {
		if isNilSpec(spec) {
			continue
		}
		next[r.normalize(k)] = spec.entry()
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	for k, e := range next {
		r.data[k] = e
	}
	return r.snapshot()
}

// snapshot must be called with the lock held.
func (r *Registry) snapshot() map[string]Entry {
	out := make(map[string]Entry, len(r.data))
	for k, e := range r.data {
		out[k] = e
	}
	return out
}

// All returns a copy of every registered entry.
func (r *Registry) All() map[string]Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.snapshot()
}

// Lookup returns the entry stored for key, if present.
func (r *Registry) Lookup(key string) (Entry, bool) {
	key = r.normalize(key)
	r.mu.RLock()
	e, ok := r.data[key]
	r.mu.RUnlock()
	return e, ok
}

// Resolve returns the Func for key. Named chains are composed so the first
// name is applied innermost: Resolve of ["red", "bold"] yields
// bold(red(text)). An empty chain resolves to the identity.
func (r *Registry) Resolve(key string) (Func, error) {
	e, ok := r.Lookup(key)
	if !ok {
		return nil, &UndefinedStyleError{Key: key}
	}
	return e.compose(r.opt.Palette)
}

// Apply resolves key and applies it to text.
func (r *Registry) Apply(key, text string) (string, error) {
	f, err := r.Resolve(key)
	if err != nil {
		return "", err
	}
	return f(text), nil
}

// Names returns all registered keys in lexicographic order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	names := make([]string, 0, len(r.data))
	for k := range r.data {
		names = append(names, k)
	}
	r.mu.RUnlock()
	sort.Strings(names)
	return names
}

// Len returns the number of registered keys.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.data)
}

// Reset removes every entry.
func (r *Registry) Reset() {
	r.mu.Lock()
	r.data = make(map[string]Entry)
	r.mu.Unlock()
}
