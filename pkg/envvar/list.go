package envvar

import "strings"

// SetList joins values with the accessor separator and binds key.
// Empty input leaves any existing binding untouched.
func (a *Accessor) SetList(key string, values []string) error {
	return a.SetListWithSeparator(key, values, a.sep)
}

// GetList splits the value bound to key on the accessor separator.
func (a *Accessor) GetList(key string) ([]string, bool) {
	return a.GetListWithSeparator(key, a.sep)
}

// SetListWithSeparator joins values with sep and binds key.
// Empty input leaves any existing binding untouched. Values containing sep
// will not round-trip. An empty sep means the accessor separator.
func (a *Accessor) SetListWithSeparator(key string, values []string, sep string) error {
	if len(values) == 0 {
		return nil
	}
	if sep == "" {
		sep = a.sep
	}
	return a.Set(key, strings.Join(values, sep))
}

// GetListWithSeparator splits the value bound to key on sep.
// Empty elements are kept, so an empty value yields [""]. An empty sep
// means the accessor separator.
func (a *Accessor) GetListWithSeparator(key, sep string) ([]string, bool) {
	v, ok := a.src.Lookup(key)
	if !ok {
		return nil, false
	}
	if sep == "" {
		sep = a.sep
	}
	return strings.Split(v, sep), true
}
