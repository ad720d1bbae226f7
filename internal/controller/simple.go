package controller

import (
	"bytes"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "github.com/mouse-blink/vbs2js/internal/model"
)

var (
	categoryStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
	arrowStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	noteStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
)

// SimpleUI implements UI using cobra Command's writers.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplayRecords prints one line per record to the diagnostic stream. The
// records are advisory output and never part of the converted document.
func (s *SimpleUI) DisplayRecords(records []m.ConversionRecord) error {
	for _, rec := range records {
		_, _ = fmt.Fprintf(s.cmd.ErrOrStderr(), "%s: %s %s %s\n",
			categoryStyle.Render(string(rec.Category)),
			rec.Original,
			arrowStyle.Render("->"),
			rec.Converted,
		)
	}

	return nil
}

// DisplaySummary prints the closing summary table and the manual-review note.
func (s *SimpleUI) DisplaySummary(sum Summary) error {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})
	table.Append([]string{"Input", string(sum.Input)})
	table.Append([]string{"Output", string(sum.Output)})
	table.Append([]string{"Lines", fmt.Sprintf("%d", sum.Lines)})
	table.Append([]string{"Conversions", fmt.Sprintf("%d", sum.Records)})
	table.Render()

	s.printf("%s\n", tableBuffer.String())
	s.printf("%s\n", noteStyle.Render("Best-effort conversion only: review the output before running it."))

	return nil
}

// DisplayCatalog prints the full rule catalog in evaluation order.
func (s *SimpleUI) DisplayCatalog(categories []m.Category) error {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Category", "Pattern", "Replacement"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)

	rules := 0

	for _, cat := range categories {
		for _, rule := range cat.Rules {
			table.Append([]string{string(cat.Name), rule.Match.String(), rule.Template})

			rules++
		}
	}

	table.SetFooter([]string{
		fmt.Sprintf("Categories %d", len(categories)),
		fmt.Sprintf("Rules %d", rules),
		"",
	})
	table.Render()

	s.printf("%s\n", tableBuffer.String())

	return nil
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
