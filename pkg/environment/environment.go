package environment

import (
	"strings"

	"github.com/dmitrymomot/envkit/pkg/envvar"
)

// Environment represents application environment.
type Environment string

const (
	// Development for development environment.
	Development Environment = "development"
	// Production for production environment.
	Production Environment = "production"
	// Staging for staging environment.
	Staging Environment = "staging"
)

// Key is the variable holding the application environment name.
const Key = "APP_ENV"

// Parse normalizes name. Short aliases and any letter case map to the
// predefined environments, an empty name maps to Development and any other
// name is returned trimmed but otherwise verbatim.
func Parse(name string) Environment {
	trimmed := strings.TrimSpace(name)
	switch strings.ToLower(trimmed) {
	case "", "dev", string(Development):
		return Development
	case "stage", string(Staging):
		return Staging
	case "prod", string(Production):
		return Production
	default:
		return Environment(trimmed)
	}
}

// Current reads Key from the process environment.
func Current() Environment {
	return From(envvar.Default())
}

// From reads Key through acc.
func From(acc *envvar.Accessor) Environment {
	return Parse(acc.GetOr(Key, ""))
}

// Set binds Key in the process environment.
func Set(env Environment) error {
	return envvar.Set(Key, string(env))
}

func (e Environment) String() string { return string(e) }
