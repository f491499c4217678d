package domain

import (
	"fmt"
	"math"
	"math/big"
	"regexp"
	"strconv"

	m "github.com/mouse-blink/scanctl/internal/model"
)

// ValidatorKind selects the literal pattern of a value type.
type ValidatorKind int

// Literal patterns.
const (
	IntegerPattern ValidatorKind = iota
	DecimalPattern
)

func (k ValidatorKind) String() string {
	if k == DecimalPattern {
		return "decimal"
	}

	return "integer"
}

var (
	integerLiteral = regexp.MustCompile(`^[+-]?[0-9]+$`)
	decimalLiteral = regexp.MustCompile(`^[+-]?([0-9]+\.?[0-9]*|\.[0-9]+)([eE][+-]?[0-9]+)?$`)
)

// ValueTypeDescriptor describes one numeric kind. Min and Max are inclusive
// and are kept as literals so 64-bit bounds stay exact.
type ValueTypeDescriptor struct {
	ID        m.ValueType
	Bits      int
	Signed    bool
	Min       string
	Max       string
	Validator ValidatorKind
}

// ValueTypeRegistry is the static catalog of value types.
type ValueTypeRegistry struct {
	ordered []ValueTypeDescriptor
	byID    map[m.ValueType]ValueTypeDescriptor
}

// NewValueTypeRegistry builds the catalog of the ten engine value types.
//
// Unsigned upper bounds are 2^bits, not 2^bits-1. The engine-facing UI has
// always accepted that extra value and the registry keeps it until the
// engine contract says otherwise.
func NewValueTypeRegistry() *ValueTypeRegistry {
	ordered := []ValueTypeDescriptor{
		signedInt(m.I8, 8),
		unsignedInt(m.U8, 8),
		signedInt(m.I16, 16),
		unsignedInt(m.U16, 16),
		signedInt(m.I32, 32),
		unsignedInt(m.U32, 32),
		signedInt(m.I64, 64),
		unsignedInt(m.U64, 64),
		floating(m.F32, 32, math.MaxFloat32),
		floating(m.F64, 64, math.MaxFloat64),
	}

	byID := make(map[m.ValueType]ValueTypeDescriptor, len(ordered))
	for _, d := range ordered {
		byID[d.ID] = d
	}

	return &ValueTypeRegistry{ordered: ordered, byID: byID}
}

func signedInt(id m.ValueType, bits int) ValueTypeDescriptor {
	limit := new(big.Int).Lsh(big.NewInt(1), uint(bits-1))
	lowest := new(big.Int).Neg(limit)
	highest := new(big.Int).Sub(limit, big.NewInt(1))

	return ValueTypeDescriptor{
		ID:        id,
		Bits:      bits,
		Signed:    true,
		Min:       lowest.String(),
		Max:       highest.String(),
		Validator: IntegerPattern,
	}
}

func unsignedInt(id m.ValueType, bits int) ValueTypeDescriptor {
	highest := new(big.Int).Lsh(big.NewInt(1), uint(bits))

	return ValueTypeDescriptor{
		ID:        id,
		Bits:      bits,
		Min:       "0",
		Max:       highest.String(),
		Validator: IntegerPattern,
	}
}

func floating(id m.ValueType, bits int, highest float64) ValueTypeDescriptor {
	return ValueTypeDescriptor{
		ID:        id,
		Bits:      bits,
		Signed:    true,
		Min:       strconv.FormatFloat(-highest, 'g', -1, 64),
		Max:       strconv.FormatFloat(highest, 'g', -1, 64),
		Validator: DecimalPattern,
	}
}

// All returns every descriptor in declaration order.
func (r *ValueTypeRegistry) All() []ValueTypeDescriptor {
	out := make([]ValueTypeDescriptor, len(r.ordered))
	copy(out, r.ordered)

	return out
}

// Describe returns the descriptor of id.
func (r *ValueTypeRegistry) Describe(id m.ValueType) (ValueTypeDescriptor, error) {
	d, ok := r.byID[id]
	if !ok {
		return ValueTypeDescriptor{}, fmt.Errorf("%w: %q", ErrUnknownValueType, id)
	}

	return d, nil
}

// ValidateLiteral checks text against the pattern of id and then against
// [Min, Max], both ends inclusive. It returns a *ValidationError on rejection.
func (r *ValueTypeRegistry) ValidateLiteral(id m.ValueType, text string) error {
	d, err := r.Describe(id)
	if err != nil {
		return err
	}

	reject := func(reason string) error {
		return &ValidationError{ValueType: id, Literal: text, Reason: reason}
	}

	switch d.Validator {
	case IntegerPattern:
		if !integerLiteral.MatchString(text) {
			return reject("not an integer")
		}

		return checkIntegerBounds(d, text, reject)
	case DecimalPattern:
		if !decimalLiteral.MatchString(text) {
			return reject("not a decimal number")
		}

		return checkDecimalBounds(d, text, reject)
	default:
		return reject("no validator")
	}
}

// Normalize validates text and returns it in canonical form: integers
// without sign prefix or leading zeros, decimals in the shortest form that
// round-trips at the type's width. The result is always a valid JSON number.
func (r *ValueTypeRegistry) Normalize(id m.ValueType, text string) (m.Value, error) {
	if err := r.ValidateLiteral(id, text); err != nil {
		return "", err
	}

	d := r.byID[id]

	if d.Validator == IntegerPattern {
		n, _ := new(big.Int).SetString(text, 10)
		return m.Value(n.String()), nil
	}

	f, _ := strconv.ParseFloat(text, d.Bits)

	return m.Value(strconv.FormatFloat(f, 'g', -1, d.Bits)), nil
}

func checkIntegerBounds(d ValueTypeDescriptor, text string, reject func(string) error) error {
	n, ok := new(big.Int).SetString(text, 10)
	if !ok {
		return reject("not an integer")
	}

	lowest, _ := new(big.Int).SetString(d.Min, 10)
	highest, _ := new(big.Int).SetString(d.Max, 10)

	if n.Cmp(lowest) < 0 {
		return reject(fmt.Sprintf("below minimum %s", d.Min))
	}

	if n.Cmp(highest) > 0 {
		return reject(fmt.Sprintf("above maximum %s", d.Max))
	}

	return nil
}

func checkDecimalBounds(d ValueTypeDescriptor, text string, reject func(string) error) error {
	f, err := strconv.ParseFloat(text, 64)
	if err != nil && !math.IsInf(f, 0) {
		return reject("not a decimal number")
	}

	lowest, _ := strconv.ParseFloat(d.Min, 64)
	highest, _ := strconv.ParseFloat(d.Max, 64)

	if f < lowest {
		return reject(fmt.Sprintf("below minimum %s", d.Min))
	}

	if f > highest {
		return reject(fmt.Sprintf("above maximum %s", d.Max))
	}

	return nil
}
