package envvar

import (
	"maps"
	"os"
	"slices"
	"strings"
	"sync"
)

// Source is the environment block an Accessor reads and writes.
type Source interface {
	// Lookup returns the value bound to key and whether it is bound.
	Lookup(key string) (string, bool)
	// Set binds key to value, replacing any previous binding.
	Set(key, value string) error
	// Unset removes the binding for key. Unbound keys are not an error.
	Unset(key string) error
	// Environ returns all bindings as "KEY=VALUE" strings.
	Environ() []string
}

type osSource struct{}

// OS returns the Source backed by the process environment.
func OS() Source { return osSource{} }

func (osSource) Lookup(key string) (string, bool) { return os.LookupEnv(key) }
func (osSource) Set(key, value string) error      { return os.Setenv(key, value) }
func (osSource) Unset(key string) error           { return os.Unsetenv(key) }
func (osSource) Environ() []string                { return os.Environ() }

// MapSource is an in-memory Source. Use it in tests to avoid touching the
// process environment.
type MapSource struct {
	mu   sync.RWMutex
	vars map[string]string
}

// NewMapSource returns a MapSource seeded with a copy of vars.
func NewMapSource(vars map[string]string) *MapSource {
	m := make(map[string]string, len(vars))
	maps.Copy(m, vars)
	return &MapSource{vars: m}
}

func (s *MapSource) Lookup(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.vars[key]
	return v, ok
}

// Set rejects what os.Setenv rejects: an empty name, a name containing '='
// or NUL, or a value containing NUL.
func (s *MapSource) Set(key, value string) error {
	if key == "" || strings.ContainsAny(key, "=\x00") || strings.ContainsRune(value, 0) {
		return ErrInvalidVariable
	}
	s.mu.Lock()
	s.vars[key] = value
	s.mu.Unlock()
	return nil
}

func (s *MapSource) Unset(key string) error {
	s.mu.Lock()
	delete(s.vars, key)
	s.mu.Unlock()
	return nil
}

// Environ returns the bindings ordered by key.
func (s *MapSource) Environ() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, 0, len(s.vars))
	for _, k := range slices.Sorted(maps.Keys(s.vars)) {
		out = append(out, k+"="+s.vars[k])
	}
	return out
}

// Len returns the number of bound keys.
func (s *MapSource) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.vars)
}
