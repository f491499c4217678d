package controller

import (
	"fmt"

	"github.com/mouse-blink/scanctl/internal/domain"
	m "github.com/mouse-blink/scanctl/internal/model"
)

type rowView struct {
	Index    int     `yaml:"index"`
	Address  string  `yaml:"address"`
	Value    m.Value `yaml:"value"`
	Selected bool    `yaml:"selected,omitempty"`
}

type pageView struct {
	Session   string    `yaml:"session"`
	PID       uint32    `yaml:"pid,omitempty"`
	Process   string    `yaml:"process,omitempty"`
	State     string    `yaml:"state"`
	ValueType string    `yaml:"value_type"`
	ScanType  string    `yaml:"scan_type"`
	Page      int       `yaml:"page"`
	Pages     int       `yaml:"pages"`
	Total     int       `yaml:"total"`
	Rows      []rowView `yaml:"rows"`
	Gaps      []string  `yaml:"gaps,omitempty"`
}

type valueTypeView struct {
	ID        string `yaml:"id"`
	Bits      int    `yaml:"bits"`
	Signed    bool   `yaml:"signed"`
	Min       string `yaml:"min"`
	Max       string `yaml:"max"`
	Validator string `yaml:"validator"`
}

type scanTypeView struct {
	ID           string `yaml:"id"`
	Label        string `yaml:"label"`
	Operands     int    `yaml:"operands"`
	Availability string `yaml:"availability"`
}

type writeView struct {
	Address      string `yaml:"address"`
	Status       string `yaml:"status"`
	BytesWritten int    `yaml:"bytes_written,omitempty"`
	Error        string `yaml:"error,omitempty"`
}

func formatPointer(p uint64) string {
	return fmt.Sprintf("0x%X", p)
}

func newPageView(snap domain.Snapshot) pageView {
	selected := make(map[int]bool, len(snap.Selection))
	for _, i := range snap.Selection {
		selected[i] = true
	}

	rows := make([]rowView, 0, len(snap.Results))
	for i, addr := range snap.Results {
		rows = append(rows, rowView{
			Index:    i,
			Address:  formatPointer(addr.Pointer),
			Value:    addr.Value,
			Selected: selected[i],
		})
	}

	gaps := make([]string, 0, len(snap.Gaps))
	for _, gap := range snap.Gaps {
		gaps = append(gaps, gap.String())
	}

	view := pageView{
		Session:   snap.ID,
		State:     snap.State.String(),
		ValueType: string(snap.ValueType),
		ScanType:  string(snap.ScanType),
		Page:      snap.Cursor.Page,
		Pages:     snap.Cursor.PageCount(),
		Total:     snap.Cursor.Total,
		Rows:      rows,
		Gaps:      gaps,
	}

	if snap.Process != nil {
		view.PID = snap.Process.PID
		view.Process = snap.Process.Name
	}

	return view
}

func newValueTypeViews(values []domain.ValueTypeDescriptor) []valueTypeView {
	out := make([]valueTypeView, 0, len(values))
	for _, d := range values {
		out = append(out, valueTypeView{
			ID:        string(d.ID),
			Bits:      d.Bits,
			Signed:    d.Signed,
			Min:       d.Min,
			Max:       d.Max,
			Validator: d.Validator.String(),
		})
	}

	return out
}

func newScanTypeViews(scans []domain.ScanTypeDescriptor) []scanTypeView {
	out := make([]scanTypeView, 0, len(scans))
	for _, d := range scans {
		out = append(out, scanTypeView{
			ID:           string(d.ID),
			Label:        d.Label,
			Operands:     d.RequiredOperands,
			Availability: availabilityLabel(d.Availability),
		})
	}

	return out
}

func availabilityLabel(a domain.Availability) string {
	switch {
	case a.Allows(m.BeforeInitialScan) && a.Allows(m.AfterInitialScan):
		return "always"
	case a.Allows(m.BeforeInitialScan):
		return "first scan"
	case a.Allows(m.AfterInitialScan):
		return "next scan"
	default:
		return "never"
	}
}

func newWriteViews(result m.WriteBatchResult) []writeView {
	out := make([]writeView, 0, len(result.Outcomes))
	for _, o := range result.Outcomes {
		v := writeView{
			Address:      formatPointer(o.Address.Pointer),
			Status:       string(o.Status),
			BytesWritten: o.BytesWritten,
		}

		if o.Err != nil {
			v.Error = o.Err.Error()
		}

		out = append(out, v)
	}

	return out
}
