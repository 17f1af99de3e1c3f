package config

import (
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"slices"

	"github.com/joho/godotenv"

	"github.com/dmitrymomot/envkit/pkg/envvar"
	"github.com/dmitrymomot/envkit/pkg/logger"
)

const defaultEnvFile = ".env"

// LoadEnv reads .env files into the process environment. With no paths it
// reads ".env" in the working directory. Variables from later files override
// earlier files and the existing environment.
func LoadEnv(paths ...string) error {
	return LoadEnvTo(envvar.Default(), paths...)
}

// LoadEnvTo is LoadEnv writing through acc.
func LoadEnvTo(acc *envvar.Accessor, paths ...string) error {
	if len(paths) == 0 {
		paths = []string{defaultEnvFile}
	}
	return applyEnvFiles(acc, true, paths...)
}

// MustLoadEnv works like LoadEnv but panics on failure.
func MustLoadEnv(paths ...string) {
	if err := LoadEnv(paths...); err != nil {
		panic(fmt.Sprintf("Failed to load environment files: %v", err))
	}
}

// WriteEnv writes vars to path in .env format, replacing the file.
// Values that would not read back unchanged are rejected with
// ErrUnsupportedValue before anything is written.
func WriteEnv(path string, vars []envvar.Var) error {
	m := make(map[string]string, len(vars))
	for _, v := range vars {
		m[v.Key] = v.Value
	}
	if err := verifyRoundTrip(m); err != nil {
		return errors.Join(ErrWritingEnvFile, fmt.Errorf("%s: %w", path, err))
	}
	if err := godotenv.Write(m, path); err != nil {
		return errors.Join(ErrWritingEnvFile, fmt.Errorf("%s: %w", path, err))
	}
	return nil
}

// verifyRoundTrip checks that godotenv reads back exactly what it writes.
// A value ending in a double quote, for example, does not survive.
func verifyRoundTrip(vars map[string]string) error {
	content, err := godotenv.Marshal(vars)
	if err != nil {
		return err
	}
	parsed, err := godotenv.Unmarshal(content)
	if err != nil {
		return err
	}
	for _, k := range slices.Sorted(maps.Keys(vars)) {
		if got, ok := parsed[k]; !ok || got != vars[k] {
			return fmt.Errorf("%w: %s does not survive .env encoding", ErrUnsupportedValue, k)
		}
	}
	return nil
}

// applyEnvFiles binds the variables of each file in order. Without override,
// keys that are already bound are skipped, so the first file wins.
func applyEnvFiles(acc *envvar.Accessor, override bool, paths ...string) error {
	for _, path := range paths {
		vars, err := godotenv.Read(path)
		if err != nil {
			return errors.Join(ErrLoadingEnvFile, fmt.Errorf("%s: %w", path, err))
		}
		if !override {
			for k := range vars {
				if acc.Exists(k) {
					delete(vars, k)
				}
			}
		}
		if err := acc.SetMany(vars); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		acc.Logger().Debug("environment file loaded", logger.EnvFile(path), slog.Int("vars", len(vars)))
	}
	return nil
}
