package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/fractalglobal/fgc/internal/cli/config"
)

// printer renders command results as indented JSON or aligned text rows.
type printer struct {
	w      io.Writer
	format string
}

func (a *app) printer(w io.Writer) *printer {
	return &printer{w: w, format: a.cfg.Output}
}

// print writes v as JSON, or the rows as text. Each row is a list of cells.
func (p *printer) print(v any, header []string, rows [][]string) error {
	if p.format == config.OutputJSON {
		enc := json.NewEncoder(p.w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}

	tw := tabwriter.NewWriter(p.w, 0, 4, 2, ' ', 0)
	if len(header) > 0 {
		fmt.Fprintln(tw, strings.Join(header, "\t"))
	}
	for _, r := range rows {
		fmt.Fprintln(tw, strings.Join(r, "\t"))
	}
	return tw.Flush()
}

// fields renders key/value pairs, one per line.
func (p *printer) fields(v any, kv ...string) error {
	rows := make([][]string, 0, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		rows = append(rows, []string{kv[i], kv[i+1]})
	}
	return p.print(v, nil, rows)
}
