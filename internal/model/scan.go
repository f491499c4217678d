package model

import "fmt"

// ScanType is one of the scan operation tokens accepted by the engine.
type ScanType string

// Scan operation tokens, in engine declaration order.
const (
	ScanExact       ScanType = "Exact"
	ScanUnknown     ScanType = "Unknown"
	ScanInRange     ScanType = "InRange"
	ScanSmallerThan ScanType = "SmallerThan"
	ScanBiggerThan  ScanType = "BiggerThan"
	ScanUnchanged   ScanType = "Unchanged"
	ScanChanged     ScanType = "Changed"
	ScanDecreased   ScanType = "Decreased"
	ScanIncreased   ScanType = "Increased"
	ScanDecreasedBy ScanType = "DecreasedBy"
	ScanIncreasedBy ScanType = "IncreasedBy"
)

// LifecycleState gates which scan types may be selected.
type LifecycleState int

// Lifecycle states. A session starts in BeforeInitialScan and returns there on reset.
const (
	BeforeInitialScan LifecycleState = iota
	AfterInitialScan
)

func (s LifecycleState) String() string {
	switch s {
	case BeforeInitialScan:
		return "BeforeInitialScan"
	case AfterInitialScan:
		return "AfterInitialScan"
	default:
		return fmt.Sprintf("LifecycleState(%d)", int(s))
	}
}

// Operand is the literal input of a scan. It is either ScalarOperand or
// RangeOperand; a nil Operand means the scan takes no literal.
type Operand interface {
	operand()
}

// ScalarOperand is a single literal.
type ScalarOperand struct {
	Text string
}

// RangeOperand is an inclusive pair of literals.
type RangeOperand struct {
	Start string
	End   string
}

func (ScalarOperand) operand() {}
func (RangeOperand) operand()  {}

// ScanInfo is the scanInfo argument of first_scan and next_scan.
type ScanInfo struct {
	Typ   ScanType   `json:"typ"`
	Value *ScanValue `json:"value,omitempty"`
}

// ScanValue is the externally tagged operand: exactly one field is set.
type ScanValue struct {
	Exact *string     `json:"Exact,omitempty"`
	Range *RangeValue `json:"Range,omitempty"`
}

// RangeValue is the Range payload of ScanValue.
type RangeValue struct {
	Start string `json:"start"`
	End   string `json:"end"`
}
