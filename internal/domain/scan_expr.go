package domain

import (
	"fmt"
	"math/big"
	"strings"

	m "github.com/mouse-blink/scanctl/internal/model"
)

// ParseScanExpr reads the compact scan notation used on the command line:
//
//	u          Unknown
//	=          Unchanged
//	~          Changed
//	d, i       Decreased, Increased
//	d5, i-5    DecreasedBy 5, IncreasedBy -5
//	<5, >5     SmallerThan 5, BiggerThan 5
//	10..20     InRange 10..19 (end exclusive, integers only)
//	10..=20    InRange 10..20
//	42         Exact 42
//
// A range whose bounds are equal becomes Exact. Literals are not validated
// against a value type here.
func ParseScanExpr(expr string) (m.ScanType, m.Operand, error) {
	s := strings.TrimSpace(expr)
	if s == "" {
		return "", nil, fmt.Errorf("empty scan expression")
	}

	switch s {
	case "u":
		return m.ScanUnknown, nil, nil
	case "=":
		return m.ScanUnchanged, nil, nil
	case "~":
		return m.ScanChanged, nil, nil
	case "d":
		return m.ScanDecreased, nil, nil
	case "i":
		return m.ScanIncreased, nil, nil
	}

	switch s[0] {
	case 'd':
		return m.ScanDecreasedBy, m.ScalarOperand{Text: strings.TrimSpace(s[1:])}, nil
	case 'i':
		return m.ScanIncreasedBy, m.ScalarOperand{Text: strings.TrimSpace(s[1:])}, nil
	case '<':
		return m.ScanSmallerThan, m.ScalarOperand{Text: strings.TrimSpace(s[1:])}, nil
	case '>':
		return m.ScanBiggerThan, m.ScalarOperand{Text: strings.TrimSpace(s[1:])}, nil
	}

	if idx := strings.Index(s, "..="); idx >= 0 {
		return rangeOrExact(s[:idx], s[idx+3:])
	}

	if idx := strings.Index(s, ".."); idx >= 0 {
		end, ok := new(big.Int).SetString(strings.TrimSpace(s[idx+2:]), 10)
		if !ok {
			return "", nil, fmt.Errorf("exclusive range end %q must be an integer", s[idx+2:])
		}

		return rangeOrExact(s[:idx], end.Sub(end, big.NewInt(1)).String())
	}

	return m.ScanExact, m.ScalarOperand{Text: s}, nil
}

func rangeOrExact(start, end string) (m.ScanType, m.Operand, error) {
	start = strings.TrimSpace(start)
	end = strings.TrimSpace(end)

	if start == "" || end == "" {
		return "", nil, fmt.Errorf("range needs both bounds")
	}

	if sameNumber(start, end) {
		return m.ScanExact, m.ScalarOperand{Text: start}, nil
	}

	return m.ScanInRange, m.RangeOperand{Start: start, End: end}, nil
}

func sameNumber(a, b string) bool {
	x, okA := new(big.Float).SetString(a)
	y, okB := new(big.Float).SetString(b)

	if okA && okB {
		return x.Cmp(y) == 0
	}

	return a == b
}
