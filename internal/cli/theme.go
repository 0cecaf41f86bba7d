package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

type theme struct {
	Title   lipgloss.Style
	Success lipgloss.Style
	Error   lipgloss.Style
	Comment lipgloss.Style
	Faint   lipgloss.Style
	Header  lipgloss.Style
	Cell    lipgloss.Style
}

var styles = defaultTheme()

func defaultTheme() theme {
	return theme{
		Title:   lipgloss.NewStyle().Bold(true),
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		Error:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1")),
		Comment: lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		Faint:   lipgloss.NewStyle().Faint(true),
		Header:  lipgloss.NewStyle().Bold(true).Padding(0, 1),
		Cell:    lipgloss.NewStyle().Padding(0, 1),
	}
}

func renderTable(w io.Writer, headers []string, rows [][]string) {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(styles.Faint).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return styles.Header
			}
			return styles.Cell
		}).
		Headers(headers...).
		Rows(rows...)

	fmt.Fprintln(w, t.Render())
}

// printCreated reports a generated class the way every make command does.
func printCreated(w io.Writer, kind, class, relativePath string) {
	fmt.Fprintln(w, styles.Success.Render(fmt.Sprintf("%s class %s created successfully.", kind, class)))
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Find it at %s\n", styles.Comment.Render(relativePath))
}
