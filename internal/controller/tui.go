package controller

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	m "github.com/mouse-blink/vbs2js/internal/model"
)

// TUI implements UI using Bubble Tea for interactive record browsing.
type TUI struct {
	output io.Writer
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

type recordItem struct {
	rec m.ConversionRecord
}

func (i recordItem) FilterValue() string { return i.rec.Original }

type recordDelegate struct{}

func (d recordDelegate) Height() int  { return 1 }
func (d recordDelegate) Spacing() int { return 0 }
func (d recordDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d recordDelegate) Render(w io.Writer, lm list.Model, index int, item list.Item) {
	it, ok := item.(recordItem)
	if !ok {
		return
	}

	line := fmt.Sprintf("%s: %s -> %s", it.rec.Category, it.rec.Original, it.rec.Converted)

	style := lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	if index == lm.Index() {
		style = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("6")).
			Bold(true)
	}

	_, _ = fmt.Fprint(w, style.Render(line))
}

type recordsModel struct {
	list list.Model
}

func (rm recordsModel) Init() tea.Cmd {
	return nil
}

func (rm recordsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return rm, tea.Quit
		}
	case tea.WindowSizeMsg:
		rm.list.SetSize(msg.Width, msg.Height)
	}

	var cmd tea.Cmd

	rm.list, cmd = rm.list.Update(msg)

	return rm, cmd
}

func (rm recordsModel) View() string {
	return rm.list.View()
}

// DisplayRecords opens an interactive browser over the conversion records.
func (t *TUI) DisplayRecords(records []m.ConversionRecord) error {
	if len(records) == 0 {
		_, _ = fmt.Fprintln(t.output, "No conversions recorded")
		return nil
	}

	items := make([]list.Item, 0, len(records))
	for _, rec := range records {
		items = append(items, recordItem{rec: rec})
	}

	l := list.New(items, recordDelegate{}, 80, 20)
	l.Title = "Conversion records"
	l.SetShowStatusBar(false)

	p := tea.NewProgram(recordsModel{list: l}, tea.WithOutput(t.output))

	_, err := p.Run()

	return err
}

// DisplaySummary prints the closing summary.
func (t *TUI) DisplaySummary(sum Summary) error {
	_, _ = fmt.Fprintf(t.output, "Converted %s (%d lines) -> %s\n", sum.Input, sum.Lines, sum.Output)
	_, _ = fmt.Fprintln(t.output, "Best-effort conversion only: review the output before running it.")

	return nil
}

// DisplayCatalog prints the rule catalog.
func (t *TUI) DisplayCatalog(categories []m.Category) error {
	for _, cat := range categories {
		_, _ = fmt.Fprintf(t.output, "%s (%d rules)\n", cat.Name, len(cat.Rules))

		for _, rule := range cat.Rules {
			_, _ = fmt.Fprintf(t.output, "  %s => %s\n", rule.Match.String(), rule.Template)
		}
	}

	return nil
}
