package controller

import (
	"bytes"
	"context"
	"fmt"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mouse-blink/scanctl/internal/domain"
	m "github.com/mouse-blink/scanctl/internal/model"
)

// SimpleUI prints tables or yaml through the cobra command's output.
type SimpleUI struct {
	cmd    *cobra.Command
	format Format
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command, opts ...Option) *SimpleUI {
	cfg := newConfig(opts...)

	return &SimpleUI{cmd: cmd, format: cfg.format}
}

// DisplayProcesses prints the process list.
func (s *SimpleUI) DisplayProcesses(procs []m.ProcessView) error {
	if s.format == FormatYAML {
		return s.yaml(procs)
	}

	if len(procs) == 0 {
		s.printf("No processes found\n")
		return nil
	}

	table, buf := s.table([]string{"PID", "Name"})
	table.SetColumnAlignment([]int{tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_LEFT})

	for _, p := range procs {
		table.Append([]string{strconv.FormatUint(uint64(p.PID), 10), p.Name})
	}

	table.Render()
	s.printf("%s", buf.String())

	return nil
}

// DisplayTypes prints the value type and scan type catalogs.
func (s *SimpleUI) DisplayTypes(values []domain.ValueTypeDescriptor, scans []domain.ScanTypeDescriptor) error {
	valueViews := newValueTypeViews(values)
	scanViews := newScanTypeViews(scans)

	if s.format == FormatYAML {
		return s.yaml(map[string]any{
			"value_types": valueViews,
			"scan_types":  scanViews,
		})
	}

	valueTable, buf := s.table([]string{"Type", "Bits", "Min", "Max", "Literal"})
	for _, v := range valueViews {
		valueTable.Append([]string{v.ID, strconv.Itoa(v.Bits), v.Min, v.Max, v.Validator})
	}

	valueTable.Render()
	s.printf("%s\n", buf.String())

	scanTable, buf := s.table([]string{"Scan", "Operands", "Available", "Description"})
	scanTable.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})

	for _, v := range scanViews {
		scanTable.Append([]string{v.ID, strconv.Itoa(v.Operands), v.Availability, v.Label})
	}

	scanTable.Render()
	s.printf("%s", buf.String())

	return nil
}

// DisplayPage prints the current result page of snap.
func (s *SimpleUI) DisplayPage(snap domain.Snapshot) error {
	view := newPageView(snap)

	if s.format == FormatYAML {
		return s.yaml(view)
	}

	s.printf("%s scan over %s", view.ScanType, view.ValueType)

	if snap.Process != nil {
		s.printf(" in %s (%d)", view.Process, view.PID)
	}

	s.printf(": %d result(s)\n", view.Total)

	if len(view.Rows) == 0 {
		s.printf("No results on this page\n")
	} else {
		table, buf := s.table([]string{"#", "Address", "Value"})
		table.SetColumnAlignment([]int{tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT})

		for _, row := range view.Rows {
			index := strconv.Itoa(row.Index)
			if row.Selected {
				index = "*" + index
			}

			table.Append([]string{index, row.Address, row.Value.String()})
		}

		table.SetFooter([]string{"", fmt.Sprintf("Page %d/%d", view.Page, max(view.Pages, 1)), ""})
		table.Render()
		s.printf("\n%s", buf.String())
	}

	for _, gap := range view.Gaps {
		s.printf("skipped %s\n", gap)
	}

	return nil
}

// DisplayWriteResult prints one line per written address.
func (s *SimpleUI) DisplayWriteResult(result m.WriteBatchResult) error {
	views := newWriteViews(result)

	if s.format == FormatYAML {
		return s.yaml(views)
	}

	table, buf := s.table([]string{"Address", "Status", "Bytes", "Error"})
	for _, v := range views {
		table.Append([]string{v.Address, v.Status, strconv.Itoa(v.BytesWritten), v.Error})
	}

	table.SetFooter([]string{fmt.Sprintf("%d/%d written", result.Succeeded(), len(views)), "", "", ""})
	table.Render()
	s.printf("\n%s", buf.String())

	return nil
}

// Browse prints the current page once; there is nothing to page through
// without a terminal.
func (s *SimpleUI) Browse(_ context.Context, src PageSource) error {
	return s.DisplayPage(src.Snapshot())
}

func (s *SimpleUI) table(header []string) (*tablewriter.Table, *bytes.Buffer) {
	var buf bytes.Buffer

	table := tablewriter.NewWriter(&buf)
	table.SetHeader(header)
	table.SetBorder(false)
	table.SetCenterSeparator("")

	return table, &buf
}

func (s *SimpleUI) yaml(v any) error {
	enc := yaml.NewEncoder(s.cmd.OutOrStdout())
	enc.SetIndent(2)

	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}

	return enc.Close()
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
