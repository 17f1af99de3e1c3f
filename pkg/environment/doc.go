// Package environment resolves the application environment (development,
// staging, production, etc.) from the APP_ENV variable and propagates it
// through context.Context and structured logs.
//
// Current reads APP_ENV through package envvar. Parse maps the aliases
// "dev", "stage" and "prod" in any letter case to the predefined constants,
// treats an unset or empty value as Development and returns any other name
// verbatim. Set writes the variable back.
//
// # Usage
//
//	import "github.com/dmitrymomot/envkit/pkg/environment"
//
//	env := environment.Current()
//	ctx = environment.WithContext(ctx, env)
//
//	if environment.IsProduction(ctx) {
//	    // production-specific behaviour
//	}
//
// Add the environment to every log record written with a context:
//
//	log := logger.New(logger.WithContextExtractors(environment.LoggerExtractor()))
package environment
