// Package browse shows ranked names in an interactive terminal table.
package browse

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dkoosis/babynames/pkg/mapper"
	"github.com/dkoosis/babynames/pkg/names"
	"github.com/dkoosis/babynames/pkg/render"
)

// chrome is the number of terminal rows used by the title and status bar.
const chrome = 4

// Run opens the browser on in/out and blocks until the user quits.
func Run(ctx context.Context, res *names.Result, theme render.Theme, in io.Reader, out io.Writer) error {
	program := tea.NewProgram(
		New(res, theme),
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
		tea.WithAltScreen(),
	)
	_, err := program.Run()
	return err
}

// Model is the bubbletea model for the browser.
type Model struct {
	title  string
	total  int
	theme  render.Theme
	table  table.Model
	height int
}

// New builds a browser model over the ranked entries of res.
func New(res *names.Result, theme render.Theme) Model {
	rows := make([]table.Row, len(res.Ranked))
	nameWidth := len("Name")
	countWidth := len("Births")
	for i, e := range res.Ranked {
		count := mapper.FormatCount(e.Count)
		rows[i] = table.Row{strconv.Itoa(i + 1), e.Name, count}
		nameWidth = max(nameWidth, lipgloss.Width(e.Name))
		countWidth = max(countWidth, len(count))
	}

	columns := []table.Column{
		{Title: "#", Width: max(len(strconv.Itoa(len(rows))), 1)},
		{Title: "Name", Width: nameWidth},
		{Title: "Births", Width: countWidth},
	}

	styles := table.DefaultStyles()
	styles.Header = styles.Header.Inherit(theme.Bold)
	styles.Selected = theme.Selected

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(min(len(rows)+chrome, 20)),
		table.WithStyles(styles),
	)

	return Model{
		title: fmt.Sprintf("Top %d %s names (years %s)", len(rows), res.Category.Label(), yearsLabel(res.Years)),
		total: len(rows),
		theme: theme,
		table: t,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.height = msg.Height
		m.table.SetHeight(max(msg.Height-chrome, 3))
	}
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	pos := 0
	if m.total > 0 {
		pos = m.table.Cursor() + 1
	}
	status := fmt.Sprintf("%d/%d  ↑/↓ move  q quit", pos, m.total)
	return m.theme.Bold.Render(m.title) + "\n\n" +
		m.table.View() + "\n" +
		m.theme.Muted.Render(status) + "\n"
}

// Selected returns the name under the cursor, or "" for an empty list.
func (m Model) Selected() string {
	row := m.table.SelectedRow()
	if row == nil {
		return ""
	}
	return row[1]
}

func yearsLabel(years []int) string {
	parts := make([]string, len(years))
	for i, y := range years {
		parts[i] = strconv.Itoa(y)
	}
	return strings.Join(parts, ", ")
}
