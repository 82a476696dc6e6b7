// Package renderer formats store snapshots as markdown for terminal display.
package renderer

import (
	"fmt"
	"strings"
)

// mdRenderer accumulates markdown output.
type mdRenderer struct {
	*strings.Builder
}

func newRenderer() *mdRenderer {
	return &mdRenderer{Builder: &strings.Builder{}}
}

// Printf formats according to a format specifier and writes to the renderer's buffer.
func (r *mdRenderer) Printf(format string, args ...any) {
	fmt.Fprintf(r, format, args...)
}

// Row writes one markdown table row.
func (r *mdRenderer) Row(cells ...string) {
	r.Printf("| %s |\n", strings.Join(cells, " | "))
}

// Header writes a markdown table header with its separator line.
func (r *mdRenderer) Header(cells ...string) {
	r.Row(cells...)
	seps := make([]string, len(cells))
	for i := range seps {
		seps[i] = "---"
	}
	r.Row(seps...)
}
