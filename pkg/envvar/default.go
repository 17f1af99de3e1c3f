package envvar

var std = New()

// Default returns the accessor over the process environment used by the
// package-level functions.
func Default() *Accessor { return std }

// Lookup calls Default().Lookup.
func Lookup(key string) (string, bool) { return std.Lookup(key) }

// Exists calls Default().Exists.
func Exists(key string) bool { return std.Exists(key) }

// Remove calls Default().Remove.
func Remove(key string) error { return std.Remove(key) }

// GetRemove calls Default().GetRemove.
func GetRemove(key string) (string, bool, error) { return std.GetRemove(key) }

// GetOr calls Default().GetOr.
func GetOr(key, def string) string { return std.GetOr(key, def) }

// MustGet calls Default().MustGet.
func MustGet(key string) string { return std.MustGet(key) }

// IsOr calls Default().IsOr.
func IsOr(key string, def bool) bool { return std.IsOr(key, def) }

// Is calls Default().Is.
func Is(key string) bool { return std.Is(key) }

// Set calls Default().Set.
func Set(key, value string) error { return std.Set(key, value) }

// SetBool calls Default().SetBool.
func SetBool(key string, value bool) error { return std.SetBool(key, value) }

// SetOptional calls Default().SetOptional.
func SetOptional(key string, value *string) (bool, error) { return std.SetOptional(key, value) }

// GetSet calls Default().GetSet.
func GetSet(key, value string) (string, bool, error) { return std.GetSet(key, value) }

// SetMany calls Default().SetMany.
func SetMany(vars map[string]string) error { return std.SetMany(vars) }

// IsEqual calls Default().IsEqual.
func IsEqual(key, value string) bool { return std.IsEqual(key, value) }

// Vars calls Default().Vars.
func Vars() []Var { return std.Vars() }

// VarsWithPrefix calls Default().VarsWithPrefix.
func VarsWithPrefix(prefix string) []Var { return std.VarsWithPrefix(prefix) }

// Map calls Default().Map.
func Map() map[string]string { return std.Map() }

// SetList calls Default().SetList.
func SetList(key string, values []string) error { return std.SetList(key, values) }

// GetList calls Default().GetList.
func GetList(key string) ([]string, bool) { return std.GetList(key) }

// SetListWithSeparator calls Default().SetListWithSeparator.
func SetListWithSeparator(key string, values []string, sep string) error {
	return std.SetListWithSeparator(key, values, sep)
}

// GetListWithSeparator calls Default().GetListWithSeparator.
func GetListWithSeparator(key, sep string) ([]string, bool) {
	return std.GetListWithSeparator(key, sep)
}

// Save calls Default().Save.
func Save(keys ...string) Snapshot { return std.Save(keys...) }

// Preserve calls Default().Preserve.
func Preserve(keys ...string) func() error { return std.Preserve(keys...) }
