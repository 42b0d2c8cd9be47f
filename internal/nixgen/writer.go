package nixgen

import (
	"fmt"
	"strings"
)

// writer builds an indented Nix expression. It is a deliberately small
// helper: deterministic output matters more here than expressive power, so
// every emit method appends in call order and nothing is sorted behind the
// caller's back.
type writer struct {
	b      strings.Builder
	indent int
	err    error
}

func (w *writer) line(format string, args ...any) {
	if w.err != nil {
		return
	}
	w.b.WriteString(strings.Repeat("  ", w.indent))
	fmt.Fprintf(&w.b, format, args...)
	w.b.WriteByte('\n')
}

func (w *writer) blank() {
	if w.err != nil {
		return
	}
	w.b.WriteByte('\n')
}

// open writes "name = {" and indents.
func (w *writer) open(name string) {
	w.line("%s = {", name)
	w.indent++
}

// close writes the matching "};" and dedents.
func (w *writer) close() {
	w.indent--
	w.line("};")
}

// attrStr writes name = "value"; with escaping, recording the first error.
func (w *writer) attrStr(field, name, value string) {
	q, err := Quote(field, value)
	if err != nil {
		if w.err == nil {
			w.err = err
		}
		return
	}
	w.line("%s = %s;", name, q)
}

// attrBool writes name = true/false;.
func (w *writer) attrBool(name string, v bool) {
	w.line("%s = %s;", name, Bool(v))
}

// attrRaw writes name = value; with no quoting. For Nix expressions such as
// package references.
func (w *writer) attrRaw(name, value string) {
	w.line("%s = %s;", name, value)
}

// attrStrList writes name = [ "a" "b" ]; preserving element order.
func (w *writer) attrStrList(field, name string, values []string) {
	quoted := make([]string, 0, len(values))
	for i, v := range values {
		q, err := Quote(fmt.Sprintf("%s[%d]", field, i), v)
		if err != nil {
			if w.err == nil {
				w.err = err
			}
			return
		}
		quoted = append(quoted, q)
	}
	if len(quoted) == 0 {
		w.line("%s = [ ];", name)
		return
	}
	w.line("%s = [ %s ];", name, strings.Join(quoted, " "))
}

func (w *writer) String() string {
	return w.b.String()
}
