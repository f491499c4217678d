package controller

import (
	"context"
	"fmt"
	"io"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/mouse-blink/scanctl/internal/domain"
	m "github.com/mouse-blink/scanctl/internal/model"
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	titleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	failStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// TUI renders with lipgloss and pages through results with Bubble Tea.
type TUI struct {
	output io.Writer
	input  io.Reader
}

// NewTUI creates a new TUI writing to output.
func NewTUI(output io.Writer, opts ...Option) *TUI {
	cfg := newConfig(opts...)

	return &TUI{output: output, input: cfg.input}
}

// DisplayProcesses prints the process list.
func (t *TUI) DisplayProcesses(procs []m.ProcessView) error {
	if len(procs) == 0 {
		t.println(mutedStyle.Render("No processes found"))
		return nil
	}

	rows := make([][]string, 0, len(procs))
	for _, p := range procs {
		rows = append(rows, []string{strconv.FormatUint(uint64(p.PID), 10), p.Name})
	}

	t.println(styledTable([]string{"PID", "Name"}, rows).Render())

	return nil
}

// DisplayTypes prints the value type and scan type catalogs.
func (t *TUI) DisplayTypes(values []domain.ValueTypeDescriptor, scans []domain.ScanTypeDescriptor) error {
	valueRows := make([][]string, 0, len(values))
	for _, v := range newValueTypeViews(values) {
		valueRows = append(valueRows, []string{v.ID, strconv.Itoa(v.Bits), v.Min, v.Max, v.Validator})
	}

	scanRows := make([][]string, 0, len(scans))
	for _, v := range newScanTypeViews(scans) {
		scanRows = append(scanRows, []string{v.ID, strconv.Itoa(v.Operands), v.Availability, v.Label})
	}

	t.println(titleStyle.Render("Value types"))
	t.println(styledTable([]string{"Type", "Bits", "Min", "Max", "Literal"}, valueRows).Render())
	t.println(titleStyle.Render("Scan types"))
	t.println(styledTable([]string{"Scan", "Operands", "Available", "Description"}, scanRows).Render())

	return nil
}

// DisplayPage prints the current result page of snap.
func (t *TUI) DisplayPage(snap domain.Snapshot) error {
	t.println(renderPage(snap, -1))
	return nil
}

// DisplayWriteResult prints one line per written address.
func (t *TUI) DisplayWriteResult(result m.WriteBatchResult) error {
	rows := make([][]string, 0, len(result.Outcomes))
	for _, v := range newWriteViews(result) {
		status := okStyle.Render(v.Status)
		if v.Status != string(m.WriteOK) {
			status = failStyle.Render(v.Status)
		}

		rows = append(rows, []string{v.Address, status, strconv.Itoa(v.BytesWritten), v.Error})
	}

	t.println(styledTable([]string{"Address", "Status", "Bytes", "Error"}, rows).Render())
	t.println(fmt.Sprintf("%d/%d written", result.Succeeded(), len(result.Outcomes)))

	return nil
}

// Browse runs the interactive pager over src until the user quits.
// Rows marked in the pager are left selected on src.
func (t *TUI) Browse(ctx context.Context, src PageSource) error {
	opts := []tea.ProgramOption{tea.WithOutput(t.output), tea.WithContext(ctx)}
	if t.input != nil {
		opts = append(opts, tea.WithInput(t.input))
	}

	if _, err := tea.NewProgram(newPagerModel(ctx, src), opts...).Run(); err != nil {
		return fmt.Errorf("pager: %w", err)
	}

	return nil
}

func (t *TUI) println(s string) {
	_, _ = fmt.Fprintln(t.output, s)
}

func styledTable(headers []string, rows [][]string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}

			return cellStyle
		}).
		Headers(headers...).
		Rows(rows...)
}

// renderPage draws the summary line and rows of snap. The row at cursor,
// if any, is highlighted.
func renderPage(snap domain.Snapshot, cursor int) string {
	view := newPageView(snap)

	summary := fmt.Sprintf("%s scan over %s", view.ScanType, view.ValueType)
	if snap.Process != nil {
		summary += fmt.Sprintf(" in %s (%d)", view.Process, view.PID)
	}

	summary += fmt.Sprintf(" · %d result(s) · page %d/%d", view.Total, view.Page, max(view.Pages, 1))

	if len(view.Rows) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left, titleStyle.Render(summary), mutedStyle.Render("No results on this page"))
	}

	rows := make([][]string, 0, len(view.Rows))
	for _, r := range view.Rows {
		mark := " "
		if r.Selected {
			mark = "*"
		}

		rows = append(rows, []string{mark + strconv.Itoa(r.Index), r.Address, r.Value.String()})
	}

	highlight := cellStyle.Background(lipgloss.Color("6")).Foreground(lipgloss.Color("0"))

	tbl := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		StyleFunc(func(row, _ int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case row == cursor:
				return highlight
			default:
				return cellStyle
			}
		}).
		Headers("#", "Address", "Value").
		Rows(rows...)

	parts := []string{titleStyle.Render(summary), tbl.Render()}
	for _, gap := range view.Gaps {
		parts = append(parts, mutedStyle.Render("skipped "+gap))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
