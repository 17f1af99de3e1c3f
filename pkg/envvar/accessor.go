package envvar

import (
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/dmitrymomot/envkit/pkg/boolstr"
)

// logKey matches logger.EnvKey.
const logKey = "env_key"

// DefaultSeparator joins and splits list values when no separator is given.
const DefaultSeparator = ";"

// Var is a single environment binding.
type Var struct {
	Key   string
	Value string
}

// String returns the binding in "KEY=VALUE" form.
func (v Var) String() string { return v.Key + "=" + v.Value }

// Option configures an Accessor.
type Option func(*Accessor)

// WithSource sets the environment block the accessor operates on.
// Nil sources are ignored.
func WithSource(src Source) Option {
	return func(a *Accessor) {
		if src != nil {
			a.src = src
		}
	}
}

// WithLogger sets the logger used to record mutations at debug level.
// Only keys are logged, never values.
func WithLogger(l *slog.Logger) Option {
	return func(a *Accessor) {
		if l != nil {
			a.log = l
		}
	}
}

// WithSeparator overrides DefaultSeparator for SetList and GetList.
// An empty separator is ignored.
func WithSeparator(sep string) Option {
	return func(a *Accessor) {
		if sep != "" {
			a.sep = sep
		}
	}
}

// Accessor provides typed, default-safe access to an environment block.
// It holds no state of its own besides its configuration and performs no
// locking: concurrent read-then-write sequences on the same key can race.
type Accessor struct {
	src Source
	log *slog.Logger
	sep string
}

// New returns an Accessor over the process environment unless WithSource
// says otherwise.
func New(opts ...Option) *Accessor {
	a := &Accessor{
		src: OS(),
		log: slog.New(slog.DiscardHandler),
		sep: DefaultSeparator,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Source returns the underlying environment block.
func (a *Accessor) Source() Source { return a.src }

// Logger returns the logger mutations are recorded with.
func (a *Accessor) Logger() *slog.Logger { return a.log }

// Separator returns the list separator used by SetList and GetList.
func (a *Accessor) Separator() string { return a.sep }

// Lookup returns the value bound to key and whether it is bound.
func (a *Accessor) Lookup(key string) (string, bool) {
	return a.src.Lookup(key)
}

// Exists reports whether key is bound. An empty value counts as bound.
func (a *Accessor) Exists(key string) bool {
	_, ok := a.src.Lookup(key)
	return ok
}

// Remove unbinds key. Removing an unbound key is a no-op.
func (a *Accessor) Remove(key string) error {
	if err := a.src.Unset(key); err != nil {
		a.log.Debug("failed to unset environment variable", slog.String(logKey, key), slog.Any("error", err))
		return errors.Join(ErrUnset, err)
	}
	a.log.Debug("environment variable unset", slog.String(logKey, key))
	return nil
}

// GetRemove returns the value bound to key, if any, then unbinds key.
func (a *Accessor) GetRemove(key string) (string, bool, error) {
	prev, ok := a.src.Lookup(key)
	return prev, ok, a.Remove(key)
}

// GetOr returns the value bound to key, or def when key is unbound.
// A key bound to the empty string returns the empty string.
func (a *Accessor) GetOr(key, def string) string {
	if v, ok := a.src.Lookup(key); ok {
		return v
	}
	return def
}

// MustGet returns the value bound to key.
// It panics if key is unbound or its value is not valid UTF-8; use it only
// for variables whose absence is a fatal misconfiguration.
func (a *Accessor) MustGet(key string) string {
	v, ok := a.src.Lookup(key)
	if !ok {
		panic(fmt.Errorf("%w: %s", ErrNotSet, key))
	}
	if !utf8.ValidString(v) {
		panic(fmt.Errorf("%w: %s", ErrInvalidEncoding, key))
	}
	return v
}

// IsOr decodes the value bound to key as a boolean, or returns def when key
// is unbound. See boolstr.ToBool for the decoding rules.
func (a *Accessor) IsOr(key string, def bool) bool {
	v, ok := a.src.Lookup(key)
	if !ok {
		return def
	}
	return boolstr.ToBool(v)
}

// Is is IsOr(key, false).
func (a *Accessor) Is(key string) bool {
	return a.IsOr(key, false)
}

// Set binds key to value, replacing any previous binding.
func (a *Accessor) Set(key, value string) error {
	if err := a.src.Set(key, value); err != nil {
		a.log.Debug("failed to set environment variable", slog.String(logKey, key), slog.Any("error", err))
		return errors.Join(ErrSet, err)
	}
	a.log.Debug("environment variable set", slog.String(logKey, key))
	return nil
}

// SetBool binds key to the canonical encoding of value.
func (a *Accessor) SetBool(key string, value bool) error {
	return a.Set(key, boolstr.FromBool(value))
}

// SetOptional binds key to *value when value is non-nil and reports whether
// it did. A nil value leaves key untouched.
func (a *Accessor) SetOptional(key string, value *string) (bool, error) {
	if value == nil {
		return false, nil
	}
	if err := a.Set(key, *value); err != nil {
		return false, err
	}
	return true, nil
}

// GetSet binds key to value and returns the previous binding, if any.
// The read and the write are separate calls into the source.
func (a *Accessor) GetSet(key, value string) (string, bool, error) {
	prev, ok := a.src.Lookup(key)
	return prev, ok, a.Set(key, value)
}

// SetMany binds every entry of vars in key order, stopping at the first
// failure.
func (a *Accessor) SetMany(vars map[string]string) error {
	for _, k := range slices.Sorted(maps.Keys(vars)) {
		if err := a.Set(k, vars[k]); err != nil {
			return err
		}
	}
	return nil
}

// IsEqual reports whether key is bound to exactly value.
func (a *Accessor) IsEqual(key, value string) bool {
	v, ok := a.src.Lookup(key)
	return ok && v == value
}

// Vars returns a copy of all bindings in the source's enumeration order.
func (a *Accessor) Vars() []Var {
	env := a.src.Environ()
	out := make([]Var, 0, len(env))
	for _, kv := range env {
		if v, ok := parseVar(kv); ok {
			out = append(out, v)
		}
	}
	return out
}

// VarsWithPrefix returns the bindings whose key starts with prefix.
func (a *Accessor) VarsWithPrefix(prefix string) []Var {
	all := a.Vars()
	out := all[:0]
	for _, v := range all {
		if strings.HasPrefix(v.Key, prefix) {
			out = append(out, v)
		}
	}
	return out
}

// Map returns all bindings keyed by name.
func (a *Accessor) Map() map[string]string {
	vars := a.Vars()
	m := make(map[string]string, len(vars))
	for _, v := range vars {
		m[v.Key] = v.Value
	}
	return m
}

// parseVar splits a "KEY=VALUE" entry on the first '=' after the first byte,
// so Windows per-drive entries like "=C:=C:\" keep their leading '='.
func parseVar(kv string) (Var, bool) {
	if kv == "" {
		return Var{}, false
	}
	i := strings.IndexByte(kv[1:], '=')
	if i < 0 {
		return Var{}, false
	}
	i++
	return Var{Key: kv[:i], Value: kv[i+1:]}, true
}
