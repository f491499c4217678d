package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/scanctl/internal/model"
)

func TestParseScanExpr(t *testing.T) {
	tests := []struct {
		expr    string
		typ     m.ScanType
		operand m.Operand
	}{
		{"u", m.ScanUnknown, nil},
		{"=", m.ScanUnchanged, nil},
		{"~", m.ScanChanged, nil},
		{"d", m.ScanDecreased, nil},
		{"i", m.ScanIncreased, nil},
		{"d5", m.ScanDecreasedBy, m.ScalarOperand{Text: "5"}},
		{"i-5", m.ScanIncreasedBy, m.ScalarOperand{Text: "-5"}},
		{"<5", m.ScanSmallerThan, m.ScalarOperand{Text: "5"}},
		{"> 5", m.ScanBiggerThan, m.ScalarOperand{Text: "5"}},
		{"42", m.ScanExact, m.ScalarOperand{Text: "42"}},
		{" -7 ", m.ScanExact, m.ScalarOperand{Text: "-7"}},
		{"1.5", m.ScanExact, m.ScalarOperand{Text: "1.5"}},
		{"10..20", m.ScanInRange, m.RangeOperand{Start: "10", End: "19"}},
		{"10..=20", m.ScanInRange, m.RangeOperand{Start: "10", End: "20"}},
		{"1.5..=2.5", m.ScanInRange, m.RangeOperand{Start: "1.5", End: "2.5"}},
		{"5..=5", m.ScanExact, m.ScalarOperand{Text: "5"}},
		{"5..6", m.ScanExact, m.ScalarOperand{Text: "5"}},
		{"1.0..=1", m.ScanExact, m.ScalarOperand{Text: "1.0"}},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			typ, op, err := ParseScanExpr(tt.expr)
			require.NoError(t, err)
			assert.Equal(t, tt.typ, typ)
			assert.Equal(t, tt.operand, op)
		})
	}
}

func TestParseScanExpr_Errors(t *testing.T) {
	for _, expr := range []string{"", "   ", "1..2.5", "..=5", "5..="} {
		_, _, err := ParseScanExpr(expr)
		assert.Error(t, err, "%q", expr)
	}
}
