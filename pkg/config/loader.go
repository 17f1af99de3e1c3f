package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"

	"github.com/dmitrymomot/envkit/pkg/boolstr"
	"github.com/dmitrymomot/envkit/pkg/envvar"
)

// configCache stores parsed configurations keyed by type name.
type configCache struct {
	mu     sync.RWMutex
	values map[string]any
	onces  map[string]*sync.Once
}

var (
	globalCache = &configCache{
		values: make(map[string]any),
		onces:  make(map[string]*sync.Once),
	}

	defaultEnvLoaded sync.Once
)

// Load parses the process environment into v. Each configuration type is
// parsed once; later calls for the same type return the cached value even if
// the environment has changed since. A failed parse is not cached: the next
// call for the same type parses again.
//
// Before the first parse Load reads the .env file in the working directory,
// if there is one, without overriding variables that are already set.
//
// Example:
//
//	type DatabaseConfig struct {
//		Host     string   `env:"DB_HOST" envDefault:"localhost"`
//		Port     int      `env:"DB_PORT" envDefault:"5432"`
//		Password string   `env:"DB_PASS,required"`
//		Replicas []string `env:"DB_REPLICAS" envSeparator:";"`
//		Debug    bool     `env:"DB_DEBUG"`
//	}
//
//	var dbConfig DatabaseConfig
//	if err := config.Load(&dbConfig); err != nil {
//		// Handle error
//	}
func Load[T any](v *T) error {
	defaultEnvLoaded.Do(func() {
		// A missing default .env is fine.
		_ = applyEnvFiles(envvar.Default(), false, defaultEnvFile)
	})
	if v == nil {
		return ErrNilPointer
	}

	typeName := getTypeName[T]()

	globalCache.mu.RLock()
	if cached, ok := globalCache.values[typeName]; ok {
		*v = cached.(T)
		globalCache.mu.RUnlock()
		return nil
	}
	globalCache.mu.RUnlock()

	globalCache.mu.Lock()
	once, exists := globalCache.onces[typeName]
	if !exists {
		once = new(sync.Once)
		globalCache.onces[typeName] = once
	}
	globalCache.mu.Unlock()

	var err error
	once.Do(func() {
		if err = Parse(envvar.Default(), v); err != nil {
			// Let the next call for this type parse again.
			globalCache.mu.Lock()
			delete(globalCache.onces, typeName)
			globalCache.mu.Unlock()
			return
		}
		globalCache.mu.Lock()
		globalCache.values[typeName] = *v
		globalCache.mu.Unlock()
	})
	if err != nil {
		return err
	}

	globalCache.mu.RLock()
	defer globalCache.mu.RUnlock()
	if cached, ok := globalCache.values[typeName]; ok {
		*v = cached.(T)
		return nil
	}
	return ErrConfigNotLoaded
}

// MustLoad works like Load but panics if configuration loading fails.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("Failed to load required configuration: %v", err))
	}
}

// Parse fills v from the variables visible through acc, bypassing the cache.
// Boolean fields are decoded with boolstr.ToBool so that they read the same
// way as envvar.Is.
func Parse[T any](acc *envvar.Accessor, v *T) error {
	if v == nil {
		return ErrNilPointer
	}
	err := env.ParseWithOptions(v, env.Options{
		Environment: acc.Map(),
		FuncMap: map[reflect.Type]env.ParserFunc{
			reflect.TypeOf(false): func(s string) (any, error) {
				return boolstr.ToBool(s), nil
			},
		},
	})
	if err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// ForceReloadConfig parses v again and replaces the cached value for its type.
func ForceReloadConfig[T any](v *T) error {
	if err := Parse(envvar.Default(), v); err != nil {
		return err
	}

	typeName := getTypeName[T]()

	globalCache.mu.Lock()
	defer globalCache.mu.Unlock()
	globalCache.values[typeName] = *v
	if _, ok := globalCache.onces[typeName]; !ok {
		once := new(sync.Once)
		once.Do(func() {})
		globalCache.onces[typeName] = once
	}
	return nil
}

// ResetCache drops every cached configuration.
func ResetCache() {
	globalCache.mu.Lock()
	defer globalCache.mu.Unlock()
	globalCache.values = make(map[string]any)
	globalCache.onces = make(map[string]*sync.Once)
}

// getTypeName returns a string identifier for the generic type T
func getTypeName[T any]() string {
	return reflect.TypeFor[T]().String()
}
