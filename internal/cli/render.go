package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
)

// render writes header and rows in the configured format. JSON emits one
// object per row keyed by header.
func render(w io.Writer, format string, title string, header table.Row, rows []table.Row) error {
	if format == "json" {
		return renderJSON(w, header, rows)
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(header)
	t.AppendRows(rows)

	switch format {
	case "csv":
		t.RenderCSV()
	case "markdown":
		if title != "" {
			_, _ = fmt.Fprintf(w, "## %s\n\n", title)
		}
		t.RenderMarkdown()
	default:
		if title != "" {
			t.SetTitle(title)
		}
		t.Render()
	}
	return nil
}

// section is one titled table of a multi-table report.
type section struct {
	key    string
	title  string
	header table.Row
	rows   []table.Row
}

// renderSections writes several tables one after another, or a single JSON
// object keyed by section key.
func renderSections(w io.Writer, format string, sections []section) error {
	if format == "json" {
		out := make(map[string]any, len(sections))
		for _, s := range sections {
			out[s.key] = objects(s.header, s.rows)
		}
		return encodeJSON(w, out)
	}
	for i, s := range sections {
		if i > 0 {
			_, _ = fmt.Fprintln(w)
		}
		if err := render(w, format, s.title, s.header, s.rows); err != nil {
			return err
		}
	}
	return nil
}

func renderJSON(w io.Writer, header table.Row, rows []table.Row) error {
	return encodeJSON(w, objects(header, rows))
}

func objects(header table.Row, rows []table.Row) []map[string]any {
	out := make([]map[string]any, len(rows))
	for i, r := range rows {
		obj := make(map[string]any, len(header))
		for j, h := range header {
			if j < len(r) {
				obj[fmt.Sprint(h)] = r[j]
			}
		}
		out[i] = obj
	}
	return out
}

func encodeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func formatRate(f float64) string {
	return strconv.FormatFloat(f, 'f', 4, 64)
}
