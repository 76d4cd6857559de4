package style

import "strings"

// Entry is the normalized form of a Spec as stored in a Registry: either a
// single function or a chain of style names composed at resolve time.
type Entry struct {
	fn     Func
	single bool
	chain  []string
}

// SingleStyle reports whether e holds a custom function.
func (e Entry) SingleStyle() bool { return e.single }

// Chain returns the style names of a named chain, in application order.
// It is nil for single-style entries.
func (e Entry) Chain() []string {
	if e.single {
		return nil
	}
	out := make([]string, len(e.chain))
	copy(out, e.chain)
	return out
}

// String renders the entry the way it could be written in a Spec.
func (e Entry) String() string {
	if e.single {
		return "<func>"
	}
	return strings.Join(e.chain, " ")
}

// Equal reports whether two named chains hold the same names. Single-style
// entries are never equal since functions are not comparable.
func (e Entry) Equal(o Entry) bool {
	if e.single || o.single || len(e.chain) != len(o.chain) {
		return false
	}
	for i := range e.chain {
		if e.chain[i] != o.chain[i] {
			return false
		}
	}
	return true
}

// compose folds the chain into one Func, the first name innermost.
func (e Entry) compose(p Palette) (Func, error) {
	if e.single {
		return e.fn, nil
	}
	acc := Func(identity)
	for _, name := range e.chain {
		f, ok := p[name]
		if !ok {
			return nil, &UnknownStyleError{Style: name}
		}
		inner := acc
		acc = func(s string) string { return f(inner(s)) }
	}
	return acc, nil
}
