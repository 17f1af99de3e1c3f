// Package logger builds slog loggers configured with functional options or
// from environment variables.
//
// New creates a *slog.Logger writing text or JSON. Its handler is wrapped by
// LogHandlerDecorator, which runs registered ContextExtractor callbacks on
// every record so values carried by a context.Context (for example the
// application environment) appear in the output.
//
// FromEnv derives the configuration from the process environment:
//
//   - APP_ENV selects defaults through WithEnvironment: text at debug level
//     for development, JSON at info level otherwise.
//   - LOG_LEVEL (debug, info, warn, error) overrides the level.
//   - LOG_FORMAT (json, text) overrides the format.
//
// Unparseable LOG_LEVEL or LOG_FORMAT values are ignored. FromAccessor does
// the same through any envvar.Accessor, which keeps tests off the process
// environment.
//
// # Usage
//
//	import "github.com/dmitrymomot/envkit/pkg/logger"
//
//	log := logger.FromEnv("billing")
//	log.InfoContext(ctx, "loaded configuration", logger.EnvFile(".env"))
//
// Attribute helpers such as Error and EnvKey keep attribute names consistent.
// Error and Errors return an empty Attr for nil errors, which slog drops:
//
//	log.Info("operation finished", logger.Error(err))
package logger
