// Package formstate holds the mutable field values of an active wizard
// session. A State is owned exclusively by one session; there is no
// concurrent writer, so no locking is required.
package formstate

import (
	"sort"
	"strconv"
	"strings"
	"time"
)

// DateLayout is the wire format every date field uses.
const DateLayout = "2006-01-02"

// State maps field names to their raw string values and tracks which fields
// the user has touched at least once. The dirty set drives when incremental
// validators are allowed to speak up; untouched fields stay quiet while the
// user is mid-entry.
type State struct {
	values map[string]string
	dirty  map[string]struct{}
}

// New returns an empty state.
func New() *State {
	return &State{
		values: make(map[string]string),
		dirty:  make(map[string]struct{}),
	}
}

// FromValues seeds a state with prefilled values. Every prefilled field is
// marked dirty, matching the behaviour of editing a previously saved draft.
func FromValues(prefill map[string]string) *State {
	s := New()
	for name, value := range prefill {
		s.Set(name, value)
	}
	return s
}

// Set records a field value and marks the field dirty.
func (s *State) Set(name, value string) {
	if s == nil || strings.TrimSpace(name) == "" {
		return
	}
	s.values[name] = value
	s.dirty[name] = struct{}{}
}

// Get returns the raw value for a field.
func (s *State) Get(name string) string {
	if s == nil {
		return ""
	}
	return s.values[name]
}

// Has reports whether the field holds a non-blank value.
func (s *State) Has(name string) bool {
	return s != nil && strings.TrimSpace(s.values[name]) != ""
}

// Delete removes a field value. The field stays dirty: the user touched it,
// even if they then cleared it.
func (s *State) Delete(name string) {
	if s == nil {
		return
	}
	delete(s.values, name)
}

// Touched reports whether the field has been set at least once.
func (s *State) Touched(name string) bool {
	if s == nil {
		return false
	}
	_, ok := s.dirty[name]
	return ok
}

// TouchedFields returns the dirty set in sorted order.
func (s *State) TouchedFields() []string {
	if s == nil || len(s.dirty) == 0 {
		return nil
	}
	out := make([]string, 0, len(s.dirty))
	for name := range s.dirty {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Number parses a field value as a float. Blank and malformed values report
// false.
func (s *State) Number(name string) (float64, bool) {
	if s == nil {
		return 0, false
	}
	raw := strings.TrimSpace(s.values[name])
	if raw == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// Date parses a field value using DateLayout. Blank and malformed values
// report false.
func (s *State) Date(name string) (time.Time, bool) {
	if s == nil {
		return time.Time{}, false
	}
	raw := strings.TrimSpace(s.values[name])
	if raw == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(DateLayout, raw)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// Snapshot returns an independent copy of the current values. Snapshots are
// what generation consumes, so edits made after a validation pass can never
// leak into an in-flight generation payload.
func (s *State) Snapshot() map[string]string {
	if s == nil || len(s.values) == 0 {
		return map[string]string{}
	}
	out := make(map[string]string, len(s.values))
	for name, value := range s.values {
		out[name] = value
	}
	return out
}

// Values returns the live value map for read-only use by validators. Callers
// must not mutate it; Set and Delete are the only write paths.
func (s *State) Values() map[string]string {
	if s == nil {
		return nil
	}
	return s.values
}

// Reset discards all values and dirty tracking, replacing the state
// wholesale as happens when the wizard restarts.
func (s *State) Reset() {
	if s == nil {
		return
	}
	s.values = make(map[string]string)
	s.dirty = make(map[string]struct{})
}
