package environment

import "context"

type contextKey struct{}

// WithContext returns a copy of ctx carrying env.
func WithContext(ctx context.Context, env Environment) context.Context {
	return context.WithValue(ctx, contextKey{}, env)
}

// FromContext returns the environment stored in ctx, or "" if none.
func FromContext(ctx context.Context) Environment {
	if ctx == nil {
		return ""
	}
	env, _ := ctx.Value(contextKey{}).(Environment)
	return env
}

// IsProduction reports whether ctx carries the production environment or
// one of its aliases.
func IsProduction(ctx context.Context) bool { return is(ctx, Production) }

// IsDevelopment reports whether ctx carries the development environment or
// one of its aliases.
func IsDevelopment(ctx context.Context) bool { return is(ctx, Development) }

// IsStaging reports whether ctx carries the staging environment or one of
// its aliases.
func IsStaging(ctx context.Context) bool { return is(ctx, Staging) }

func is(ctx context.Context, want Environment) bool {
	env := FromContext(ctx)
	return env != "" && Parse(string(env)) == want
}
