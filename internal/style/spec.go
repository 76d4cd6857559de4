package style

import (
	"fmt"
	"strings"
	"unicode"
)

// Spec describes how a registry key should be decorated. It is one of
// Name, Names or Custom; Parse builds the right one from a string.
type Spec interface {
	entry() Entry
}

// Name is a single bare style name, e.g. "red".
type Name string

// Names is an ordered sequence of style names, applied first to last.
type Names []string

// Custom is a caller-supplied decoration function.
type Custom Func

func (n Name) entry() Entry {
	return Entry{chain: []string{string(n)}}
}

func (n Names) entry() Entry {
	chain := make([]string, len(n))
	copy(chain, n)
	return Entry{chain: chain}
}

func (c Custom) entry() Entry {
	return Entry{fn: Func(c), single: true}
}

// Parse turns a string spec into a Spec. A string containing whitespace is
// split into a chain of names; anything else is a single name.
func Parse(s string) Spec {
	if !strings.ContainsFunc(s, unicode.IsSpace) {
		return Name(s)
	}
	chain := Names(strings.Fields(s))
	if chain == nil {
		chain = Names{}
	}
	return chain
}

// SpecOf converts a loosely typed value, such as one decoded from YAML or
// JSON, into a Spec.
func SpecOf(v any) (Spec, error) {
	switch v := v.(type) {
	case Spec:
		if isNilSpec(v) {
			return nil, fmt.Errorf("%w: nil style function", ErrInvalidSpec)
		}
		return v, nil
	case Func:
		if v == nil {
			return nil, fmt.Errorf("%w: nil style function", ErrInvalidSpec)
		}
		return Custom(v), nil
	case func(string) string:
		if v == nil {
			return nil, fmt.Errorf("%w: nil style function", ErrInvalidSpec)
		}
		return Custom(v), nil
	case string:
		return Parse(v), nil
	case []string:
		return Names(v), nil
	case []any:
		chain := make(Names, 0, len(v))
		for i, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("%w: element %d is %T, not a style name", ErrInvalidSpec, i, item)
			}
			chain = append(chain, s)
		}
		return chain, nil
	default:
		return nil, fmt.Errorf("%w: unsupported type %T", ErrInvalidSpec, v)
	}
}

// isNilSpec reports whether spec is nil or a Custom with no function.
func isNilSpec(spec Spec) bool {
	if spec == nil {
		return true
	}
	c, ok := spec.(Custom)
	return ok && c == nil
}

// SpecsOf converts every value of m with SpecOf.
func SpecsOf(m map[string]any) (map[string]Spec, error) {
	out := make(map[string]Spec, len(m))
	for k, v := range m {
		s, err := SpecOf(v)
		if err != nil {
			return nil, fmt.Errorf("style %q: %w", k, err)
		}
		out[k] = s
	}
	return out, nil
}
