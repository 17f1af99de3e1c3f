// Package config loads application configuration from environment variables
// and environment files.
//
// It wraps `github.com/joho/godotenv`, `gopkg.in/yaml.v3` and
// `github.com/caarlos0/env/v11`, routing every read and write through
// package envvar:
//
//   - LoadEnv reads one or more `.env` files (default `.env` in the working
//     directory). Later files override earlier ones and the environment.
//   - LoadYAML reads flat YAML mappings. Sequences become lists joined with
//     envvar.DefaultSeparator and booleans are stored in canonical form.
//   - WriteEnv exports a set of variables, for example envvar.VarsWithPrefix,
//     to a `.env` file.
//   - Load parses the environment into a tagged struct and caches the result
//     per type. Boolean fields decode with boolstr.ToBool, the same rules
//     envvar.Is applies.
//
// The *To variants and Parse take an *envvar.Accessor, so tests can run
// against an in-memory envvar.MapSource instead of the process environment.
//
// # Usage
//
//	type DatabaseConfig struct {
//	    Host     string   `env:"DB_HOST,required"`
//	    Port     int      `env:"DB_PORT" envDefault:"5432"`
//	    Replicas []string `env:"DB_REPLICAS" envSeparator:";"`
//	}
//
//	func main() {
//	    if err := config.LoadEnv("./config/.env"); err != nil {
//	        log.Fatalf("loading env: %v", err)
//	    }
//
//	    var db DatabaseConfig
//	    config.MustLoad(&db)
//	}
//
// List fields must declare `envSeparator:";"` to read values written by
// envvar.SetList; caarlos0/env splits on "," by default.
//
// # Error Handling
//
// Sentinel errors for errors.Is:
//
//   - ErrParsingConfig    – failed to parse env vars into struct.
//   - ErrConfigNotLoaded  – requested config type has not been loaded yet.
//   - ErrNilPointer       – nil pointer passed to Load/MustLoad/Parse.
//   - ErrLoadingEnvFile   – an env or YAML file could not be read or parsed.
//   - ErrUnsupportedValue – a YAML value has no flat string form.
//   - ErrWritingEnvFile   – WriteEnv could not write the file.
//
// # Testing Helpers
//
// Use ResetCache to clear the cache between tests or ForceReloadConfig to
// re-parse a struct after the process environment changed.
package config
