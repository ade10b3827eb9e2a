package cli

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"golang.org/x/term"

	"github.com/katalvlaran/netresil/analysis"
)

// Output formats.
const (
	FormatAuto  = "auto"
	FormatTable = "table"
	FormatCSV   = "csv"
	FormatJSON  = "json"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF00FF"))

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1).
			Foreground(lipgloss.Color("#00FFFF"))

	cellStyle = lipgloss.NewStyle().Padding(0, 1)

	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#666666"))
)

// sheet is one titled block of numeric rows.
type sheet struct {
	Title   string
	Columns []string
	Rows    [][]float64
}

// resultSheet lays out one row per removal level.
func resultSheet(network string, res analysis.Result) sheet {
	s := sheet{
		Title:   fmt.Sprintf("%s network: %s", network, res.Title),
		Columns: []string{"frequency", "removed"},
		Rows:    make([][]float64, len(res.Frequencies)),
	}
	for _, c := range res.Curves {
		s.Columns = append(s.Columns, c.Name)
	}
	for i, f := range res.Frequencies {
		row := []float64{f, float64(res.Counts[i])}
		for _, c := range res.Curves {
			row = append(row, c.Values[i])
		}
		s.Rows[i] = row
	}

	return s
}

// resolveFormat picks table for terminals and csv otherwise when format is auto.
func resolveFormat(format string, w io.Writer) string {
	if format != FormatAuto {
		return format
	}
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return FormatTable
	}

	return FormatCSV
}

func render(w io.Writer, format string, sheets []sheet) error {
	switch resolveFormat(format, w) {
	case FormatTable:
		return renderTable(w, sheets)
	case FormatCSV:
		return renderCSV(w, sheets)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(jsonSheets(sheets))
	}

	return fmt.Errorf("unknown output format %q", format)
}

func renderTable(w io.Writer, sheets []sheet) error {
	for i, s := range sheets {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		t := table.New().
			Border(lipgloss.RoundedBorder()).
			BorderStyle(borderStyle).
			StyleFunc(func(row, _ int) lipgloss.Style {
				if row == table.HeaderRow {
					return headerStyle
				}
				return cellStyle
			}).
			Headers(s.Columns...).
			Rows(formatRows(s.Rows)...)

		if _, err := fmt.Fprintf(w, "%s\n%s\n", titleStyle.Render(s.Title), t.Render()); err != nil {
			return err
		}
	}

	return nil
}

// renderCSV writes every sheet with a leading title column so that several
// sheets stay in one well-formed table.
func renderCSV(w io.Writer, sheets []sheet) error {
	cw := csv.NewWriter(w)
	for _, s := range sheets {
		if err := cw.Write(append([]string{"title"}, s.Columns...)); err != nil {
			return err
		}
		for _, row := range formatRows(s.Rows) {
			if err := cw.Write(append([]string{s.Title}, row...)); err != nil {
				return err
			}
		}
	}
	cw.Flush()

	return cw.Error()
}

type jsonSheet struct {
	Title   string       `json:"title"`
	Columns []string     `json:"columns"`
	Rows    [][]*float64 `json:"rows"`
}

// jsonSheets maps NaN and infinite values to null.
func jsonSheets(sheets []sheet) []jsonSheet {
	out := make([]jsonSheet, len(sheets))
	for i, s := range sheets {
		js := jsonSheet{Title: s.Title, Columns: s.Columns, Rows: make([][]*float64, len(s.Rows))}
		for r, row := range s.Rows {
			js.Rows[r] = make([]*float64, len(row))
			for c, v := range row {
				if !math.IsNaN(v) && !math.IsInf(v, 0) {
					js.Rows[r][c] = &v
				}
			}
		}
		out[i] = js
	}

	return out
}

func formatRows(rows [][]float64) [][]string {
	out := make([][]string, len(rows))
	for i, row := range rows {
		out[i] = make([]string, len(row))
		for j, v := range row {
			out[i][j] = strconv.FormatFloat(v, 'g', 6, 64)
		}
	}

	return out
}
