package envvar

import "errors"

type snapshotEntry struct {
	key   string
	value string
	bound bool
}

// Snapshot is the recorded binding state of a fixed set of keys.
type Snapshot struct {
	acc     *Accessor
	entries []snapshotEntry
}

// Save records the current state of keys, including which are unbound.
func (a *Accessor) Save(keys ...string) Snapshot {
	s := Snapshot{acc: a, entries: make([]snapshotEntry, 0, len(keys))}
	for _, k := range keys {
		v, ok := a.src.Lookup(k)
		s.entries = append(s.entries, snapshotEntry{key: k, value: v, bound: ok})
	}
	return s
}

// Preserve saves keys and returns a function restoring them, intended for
// defer or t.Cleanup.
func (a *Accessor) Preserve(keys ...string) func() error {
	return a.Save(keys...).Restore
}

// Keys returns the recorded keys in snapshot order.
func (s Snapshot) Keys() []string {
	out := make([]string, len(s.entries))
	for i, e := range s.entries {
		out[i] = e.key
	}
	return out
}

// Restore rebinds every recorded key to its recorded value and unbinds keys
// that were unbound. All keys are attempted; failures are joined.
func (s Snapshot) Restore() error {
	if s.acc == nil {
		return nil
	}
	var errs []error
	for _, e := range s.entries {
		if e.bound {
			errs = append(errs, s.acc.Set(e.key, e.value))
		} else {
			errs = append(errs, s.acc.Remove(e.key))
		}
	}
	return errors.Join(errs...)
}
