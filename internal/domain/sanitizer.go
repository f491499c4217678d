package domain

import (
	m "github.com/mouse-blink/scanctl/internal/model"
)

// RequestSanitizer strips operand shapes a scan type does not use, so the
// engine never receives a scanInfo carrying both Exact and Range.
type RequestSanitizer struct {
	scans *ScanTypeRegistry
}

// NewRequestSanitizer builds a sanitizer over the given scan type catalog.
func NewRequestSanitizer(scans *ScanTypeRegistry) *RequestSanitizer {
	return &RequestSanitizer{scans: scans}
}

// Reduce builds the scanInfo for scanType, keeping only the operand shape the
// scan type takes: none for 0 operands, Exact for 1, Range for 2. A mismatched
// operand is dropped rather than converted.
func (s *RequestSanitizer) Reduce(scanType m.ScanType, operand m.Operand) (m.ScanInfo, error) {
	arity, err := s.scans.OperandArityOf(scanType)
	if err != nil {
		return m.ScanInfo{}, err
	}

	info := m.ScanInfo{Typ: scanType}

	switch op := operand.(type) {
	case m.ScalarOperand:
		if arity == 1 {
			text := op.Text
			info.Value = &m.ScanValue{Exact: &text}
		}
	case m.RangeOperand:
		if arity == 2 {
			info.Value = &m.ScanValue{Range: &m.RangeValue{Start: op.Start, End: op.End}}
		}
	}

	return info, nil
}
