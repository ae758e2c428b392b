// Package tmuxfmt builds format strings for the FORMATS section of tmux(1)
// and parses the records that tmux renders from them.
package tmuxfmt

import (
	"bytes"
	"strings"
	"unicode/utf8"
)

// Expr is the base interface for expressions accepted by the tmux message
// format.
type Expr interface{ expr() }

// Var is a reference to a format variable.
//
//	#{name}
type Var string

func (Var) expr() {}

// String is a string literal in an expression.
//
//	value
type String string // must not contain tabs

func (String) expr() {}

// Ternary is a conditional operator that evaluates the first expression and
// renders either the second or the third expression based on whether it's
// true.
//
//	#{?cond,then,else}
type Ternary struct {
	Cond Expr
	Then Expr
	Else Expr
}

func (Ternary) expr() {}

// Render renders the provided expression in a format compatible with tmux's
// FORMATS section.
func Render(e Expr) string {
	var out strings.Builder
	render(&out, e, false)
	return out.String()
}

func render(w *strings.Builder, e Expr, escape bool) {
	switch e := e.(type) {
	case Var:
		w.WriteString("#{")
		w.WriteString(string(e))
		w.WriteString("}")

	case String:
		if escape {
			renderStringEscaped(w, []byte(e))
		} else {
			w.WriteString(string(e))
		}

	case Ternary:
		w.WriteString("#{?")
		render(w, e.Cond, true)
		w.WriteString(",")
		render(w, e.Then, true)
		w.WriteString(",")
		render(w, e.Else, true)
		w.WriteString("}")
	}
}

// Runes with special meaning inside a #{...} block.
const _escapedRunes = ",#}"

func renderStringEscaped(w *strings.Builder, b []byte) {
	for len(b) > 0 {
		idx := bytes.IndexAny(b, _escapedRunes)
		if idx < 0 {
			w.Write(b)
			return
		}

		w.Write(b[:idx])
		b = b[idx:]

		r, sz := utf8.DecodeRune(b)
		w.WriteRune('#')
		w.WriteRune(r)
		b = b[sz:]
	}
}
