// Package envvar provides typed, default-safe helpers over environment
// variables: existence checks, get with default, read-and-clear, swap,
// boolean coercion, delimited lists and snapshots.
//
// Every read distinguishes an unbound key from a key bound to an empty or
// falsy value. Optional results are returned as (value, ok) pairs and
// defaults are always explicit.
//
// # Architecture
//
// An Accessor operates on a Source, the narrow interface over an environment
// block. OS returns the Source backed by the process environment; MapSource
// is an in-memory Source for deterministic tests. The package-level
// functions use Default, an Accessor over OS.
//
// The process environment is global mutable state shared by every goroutine.
// Accessor does no locking, so read-then-write helpers such as GetSet and
// GetRemove are not atomic with respect to concurrent writers of the same key.
//
// # Usage
//
//	import "github.com/dmitrymomot/envkit/pkg/envvar"
//
//	port := envvar.GetOr("PORT", "8080")
//	debug := envvar.Is("DEBUG")
//
//	if err := envvar.SetList("ALLOWED_HOSTS", hosts); err != nil {
//	    return err
//	}
//	hosts, ok := envvar.GetList("ALLOWED_HOSTS")
//
//	token, ok, err := envvar.GetRemove("BOOTSTRAP_TOKEN") // read once, then clear
//
//	dsn := envvar.MustGet("DATABASE_URL") // panics when unset
//
// Booleans are encoded and decoded by package boolstr: "", "0", "false" and
// "no" (any case) read as false, everything else reads as true.
//
// Lists are joined and split on DefaultSeparator (";") unless WithSeparator
// or the *WithSeparator variants say otherwise. Setting an empty list is a
// no-op and keeps the existing value. Values containing the separator do not
// round-trip.
//
// # Testing
//
// Prefer an Accessor over NewMapSource in unit tests. When the real process
// environment must be touched, save and restore the affected keys:
//
//	restore := envvar.Preserve("FEATURE_X")
//	t.Cleanup(func() { _ = restore() })
//
// # Error Handling
//
// Mutators return the source error joined with ErrSet or ErrUnset. MustGet
// panics with an error wrapping ErrNotSet or ErrInvalidEncoding.
package envvar
