// Package presenter renders command output as tables.
package presenter

import (
	"fmt"
	"io"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/ZanzyTHEbar/surfapi-go/surf/batch"
	"github.com/ZanzyTHEbar/surfapi-go/surf/catalog"
	"github.com/ZanzyTHEbar/surfapi-go/surf/types"
)

func newTable(w io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	// footers carry counts and paths; keep their case
	t.Style().Format.Footer = text.FormatDefault
	return t
}

// Collections lists the objects of one loaded file. Skipped objects keep
// their row so indices line up with the file.
func Collections(w io.Writer, path string, collections []*types.Collection) {
	t := newTable(w)
	t.SetTitle(path)
	t.AppendHeader(table.Row{"#", "Name", "Kind", "Grid", "Comment", "Z range"})
	for i, c := range collections {
		if c == nil {
			t.AppendRow(table.Row{i + 1, "(skipped)", "", "", "", ""})
			continue
		}
		m := c.Metadata
		t.AppendRow(table.Row{
			i + 1,
			m.Name,
			m.Kind.String(),
			fmt.Sprintf("%dx%d", m.Cols, m.Rows),
			len(c.Comment),
			fmt.Sprintf("%d..%d", m.ZMin, m.ZMax),
		})
	}
	t.Render()
}

// Metadata prints every decoded field of one object header.
func Metadata(w io.Writer, object int, m types.Metadata) {
	t := newTable(w)
	t.SetTitle(fmt.Sprintf("object %d", object))
	t.AppendHeader(table.Row{"Field", "Value"})
	rows := []table.Row{
		{"name", m.Name},
		{"kind", m.Kind},
		{"operator", m.Operator},
		{"sensor", m.Sensor},
		{"tracking", m.Tracking},
		{"special points", m.Special},
		{"absolute", m.Absolute},
		{"gauge resolution", m.GaugeResolution},
		{"z range", fmt.Sprintf("%d..%d", m.ZMin, m.ZMax)},
		{"grid", fmt.Sprintf("%dx%d", m.Cols, m.Rows)},
		{"depth", m.Depth},
	}
	for _, a := range []struct {
		label string
		axis  types.Axis
	}{{"x", m.X}, {"y", m.Y}, {"z", m.Z}, {"t", m.T}} {
		rows = append(rows, table.Row{
			a.label + " axis",
			fmt.Sprintf("%s [%s] step %g offset %g", a.axis.Name, a.axis.UnitLabel(), a.axis.Step, a.axis.Offset),
		})
	}
	rows = append(rows,
		table.Row{"inverted", m.Inverted},
		table.Row{"rectified", m.Rectified},
		table.Row{"acquired", m.Acquired},
		table.Row{"measure length", m.MeasureLength},
		table.Row{"client info", m.ClientInfo},
		table.Row{"comment bytes", m.CommentSize},
	)
	t.AppendRows(rows)
	t.Render()
}

func Paths(w io.Writer, paths []string) {
	t := newTable(w)
	t.AppendHeader(table.Row{"Path"})
	for _, p := range paths {
		t.AppendRow(table.Row{p})
	}
	t.AppendFooter(table.Row{fmt.Sprintf("%d files", len(paths))})
	t.Render()
}

func Entries(w io.Writer, entries []catalog.Entry) {
	t := newTable(w)
	t.AppendHeader(table.Row{"ID", "Path", "#", "Name", "Kind", "Grid", "Acquired"})
	for _, e := range entries {
		t.AppendRow(table.Row{
			e.ID.String(),
			e.Path,
			e.Object,
			e.Name,
			e.Kind.String(),
			fmt.Sprintf("%dx%d", e.Cols, e.Rows),
			e.Acquired.String(),
		})
	}
	t.Render()
}

// Results prints one line per file of a batch and the totals.
func Results(w io.Writer, results []batch.Result) {
	t := newTable(w)
	t.AppendHeader(table.Row{"Path", "Format", "Objects", "Elapsed", "Error"})
	for _, r := range results {
		errText := ""
		if r.Err != nil {
			errText = r.Err.Error()
		}
		t.AppendRow(table.Row{r.Path, r.Format.String(), len(r.Collections), r.Elapsed.Round(time.Millisecond), errText})
	}
	s := batch.Summarize(results)
	t.AppendFooter(table.Row{
		fmt.Sprintf("%d files", s.Files),
		"",
		fmt.Sprintf("%d objects", s.Objects),
		fmt.Sprintf("%d skipped", s.Skipped),
		fmt.Sprintf("%d failed", s.Failed),
	})
	t.Render()
}
