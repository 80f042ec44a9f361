package cli

import (
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// NewTable returns a table writer rendering to w with the header styled
// the same across every list command.
func NewTable(w io.Writer, header ...any) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleRounded)
	row := make(table.Row, len(header))
	for i, h := range header {
		row[i] = text.FgGreen.Sprint(h)
	}
	t.AppendHeader(row)
	return t
}
