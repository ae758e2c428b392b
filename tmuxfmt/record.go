package tmuxfmt

import (
	"fmt"
	"strings"
)

// Fields of a record are separated by tabs in the rendered output. tmux
// format variables don't ordinarily expand to tabs, so this is a safe
// delimiter for the fields we capture.
const _separator = "\t"

// Record describes the named fields captured for one entity per line of
// output from a tmux list or display command.
type Record struct {
	names []string
	exprs []Expr
}

// Field adds a named field rendered from the given expression.
func (r *Record) Field(name string, e Expr) {
	r.names = append(r.names, name)
	r.exprs = append(r.exprs, e)
}

// Vars adds fields that capture the format variables of the same names.
func (r *Record) Vars(names ...string) {
	for _, name := range names {
		r.Field(name, Var(name))
	}
}

// Format renders the record into a format string fit for the -F flag of
// tmux list commands.
func (r *Record) Format() string {
	rendered := make([]string, len(r.exprs))
	for i, e := range r.exprs {
		rendered[i] = Render(e)
	}
	return strings.Join(rendered, _separator)
}

// Parse extracts the record's fields from a single line of tmux output
// rendered with Format. Fails if the line does not hold exactly one value
// per field.
func (r *Record) Parse(line string) (map[string]string, error) {
	parts := strings.Split(line, _separator)
	if len(parts) != len(r.names) {
		return nil, fmt.Errorf("expected %d fields, got %d: %q", len(r.names), len(parts), line)
	}

	fields := make(map[string]string, len(parts))
	for i, name := range r.names {
		fields[name] = parts[i]
	}
	return fields, nil
}
