package domain

import (
	"fmt"

	m "github.com/mouse-blink/scanctl/internal/model"
)

// Availability is a bitmask of the lifecycle states a scan type may be selected in.
type Availability uint8

// Availability bits.
const (
	AvailableBeforeInitialScan Availability = 1 << iota
	AvailableAfterInitialScan

	AvailableAlways = AvailableBeforeInitialScan | AvailableAfterInitialScan
)

func availabilityBit(state m.LifecycleState) Availability {
	if state == m.AfterInitialScan {
		return AvailableAfterInitialScan
	}

	return AvailableBeforeInitialScan
}

// Allows reports whether the mask contains state.
func (a Availability) Allows(state m.LifecycleState) bool {
	return a&availabilityBit(state) != 0
}

// DefaultScanType is selected on a new session and whenever the selected
// scan type stops being available.
const DefaultScanType = m.ScanExact

// ScanTypeDescriptor describes one scan operation.
type ScanTypeDescriptor struct {
	ID               m.ScanType
	Label            string
	Availability     Availability
	RequiredOperands int
}

// ScanTypeRegistry is the static catalog of scan operations.
type ScanTypeRegistry struct {
	ordered []ScanTypeDescriptor
	byID    map[m.ScanType]ScanTypeDescriptor
}

// NewScanTypeRegistry builds the catalog in engine declaration order.
func NewScanTypeRegistry() *ScanTypeRegistry {
	ordered := []ScanTypeDescriptor{
		{ID: m.ScanExact, Label: "Exact value", Availability: AvailableAlways, RequiredOperands: 1},
		{ID: m.ScanUnknown, Label: "Unknown initial value", Availability: AvailableBeforeInitialScan, RequiredOperands: 0},
		{ID: m.ScanInRange, Label: "Value between", Availability: AvailableAlways, RequiredOperands: 2},
		{ID: m.ScanSmallerThan, Label: "Smaller than value", Availability: AvailableAlways, RequiredOperands: 1},
		{ID: m.ScanBiggerThan, Label: "Bigger than value", Availability: AvailableAlways, RequiredOperands: 1},
		{ID: m.ScanUnchanged, Label: "Unchanged value", Availability: AvailableAfterInitialScan, RequiredOperands: 0},
		{ID: m.ScanChanged, Label: "Changed value", Availability: AvailableAfterInitialScan, RequiredOperands: 0},
		{ID: m.ScanDecreased, Label: "Decreased value", Availability: AvailableAfterInitialScan, RequiredOperands: 0},
		{ID: m.ScanIncreased, Label: "Increased value", Availability: AvailableAfterInitialScan, RequiredOperands: 0},
		{ID: m.ScanDecreasedBy, Label: "Decreased value by", Availability: AvailableAfterInitialScan, RequiredOperands: 1},
		{ID: m.ScanIncreasedBy, Label: "Increased value by", Availability: AvailableAfterInitialScan, RequiredOperands: 1},
	}

	byID := make(map[m.ScanType]ScanTypeDescriptor, len(ordered))
	for _, d := range ordered {
		byID[d.ID] = d
	}

	return &ScanTypeRegistry{ordered: ordered, byID: byID}
}

// All returns every descriptor in declaration order.
func (r *ScanTypeRegistry) All() []ScanTypeDescriptor {
	out := make([]ScanTypeDescriptor, len(r.ordered))
	copy(out, r.ordered)

	return out
}

// Describe returns the descriptor of id.
func (r *ScanTypeRegistry) Describe(id m.ScanType) (ScanTypeDescriptor, error) {
	d, ok := r.byID[id]
	if !ok {
		return ScanTypeDescriptor{}, fmt.Errorf("%w: %q", ErrUnknownScanType, id)
	}

	return d, nil
}

// AvailableFor lists the scan types selectable in state, in declaration order.
func (r *ScanTypeRegistry) AvailableFor(state m.LifecycleState) []ScanTypeDescriptor {
	var out []ScanTypeDescriptor

	for _, d := range r.ordered {
		if d.Availability.Allows(state) {
			out = append(out, d)
		}
	}

	return out
}

// IsAvailable reports whether id may be selected in state. Unknown ids are never available.
func (r *ScanTypeRegistry) IsAvailable(id m.ScanType, state m.LifecycleState) bool {
	d, ok := r.byID[id]
	return ok && d.Availability.Allows(state)
}

// OperandArityOf returns how many literals id needs: 0, 1 or 2.
func (r *ScanTypeRegistry) OperandArityOf(id m.ScanType) (int, error) {
	d, err := r.Describe(id)
	if err != nil {
		return 0, err
	}

	return d.RequiredOperands, nil
}

// emptyOperandFor returns the blank operand whose shape matches arity.
func emptyOperandFor(arity int) m.Operand {
	switch arity {
	case 1:
		return m.ScalarOperand{}
	case 2:
		return m.RangeOperand{}
	default:
		return nil
	}
}

// operandMatchesArity reports whether op has the shape arity demands.
func operandMatchesArity(op m.Operand, arity int) bool {
	switch op.(type) {
	case nil:
		return arity == 0
	case m.ScalarOperand:
		return arity == 1
	case m.RangeOperand:
		return arity == 2
	default:
		return false
	}
}
