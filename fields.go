package tmuxobj

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/abhinav/tmuxobj/internal/stringobj"
)

// ErrFieldNotFound is reported when a field is read or deleted from a
// FieldSet that does not hold it.
var ErrFieldNotFound = errors.New("field not found")

// FieldSet is a mutable mapping of field names to values describing a single
// tmux entity. Fields originate from the output of tmux commands; a FieldSet
// never fabricates keys on read.
//
// A FieldSet remembers whether it was mutated since it was built from tmux
// output; see Dirty. Iteration order of the fields is unspecified. A
// FieldSet is not safe for concurrent mutation.
//
// The zero value is an empty, clean FieldSet ready for use.
type FieldSet struct {
	fields map[string]string
	dirty  bool
}

// FieldSetFrom builds a FieldSet holding the given fields. The fields are
// copied, and the returned set is clean.
func FieldSetFrom(fields map[string]string) *FieldSet {
	fs := FieldSet{fields: make(map[string]string, len(fields))}
	for k, v := range fields {
		fs.fields[k] = v
	}
	return &fs
}

// Get returns the value of the named field. Reports an error matching
// ErrFieldNotFound if the field is absent. Get never marks the set dirty.
func (f *FieldSet) Get(key string) (string, error) {
	v, ok := f.fields[key]
	if !ok {
		return "", fmt.Errorf("field %q: %w", key, ErrFieldNotFound)
	}
	return v, nil
}

// Int returns the value of the named field parsed as an integer.
func (f *FieldSet) Int(key string) (int, error) {
	v, err := f.Get(key)
	if err != nil {
		return 0, err
	}

	i, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("field %q: %w", key, err)
	}
	return i, nil
}

// Set stores the value under the named field, overwriting any previous
// value, and marks the set dirty.
func (f *FieldSet) Set(key, value string) {
	if f.fields == nil {
		f.fields = make(map[string]string)
	}
	f.fields[key] = value
	f.dirty = true
}

// Delete removes the named field and marks the set dirty. Reports an error
// matching ErrFieldNotFound if the field is absent.
func (f *FieldSet) Delete(key string) error {
	if _, ok := f.fields[key]; !ok {
		return fmt.Errorf("field %q: %w", key, ErrFieldNotFound)
	}
	delete(f.fields, key)
	f.dirty = true
	return nil
}

// Keys returns the names of all fields in the set, in unspecified order.
func (f *FieldSet) Keys() []string {
	keys := make([]string, 0, len(f.fields))
	for k := range f.fields {
		keys = append(keys, k)
	}
	return keys
}

// Len reports the number of fields in the set.
func (f *FieldSet) Len() int {
	return len(f.fields)
}

// Dirty reports whether the set was mutated since it was built from tmux
// output.
func (f *FieldSet) Dirty() bool {
	return f.dirty
}

func (f *FieldSet) String() string {
	var b stringobj.Builder
	for k, v := range f.fields {
		b.Put(k, v)
	}
	return b.String()
}
