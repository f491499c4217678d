package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/scanctl/internal/model"
)

func ids(descriptors []ScanTypeDescriptor) []m.ScanType {
	out := make([]m.ScanType, 0, len(descriptors))
	for _, d := range descriptors {
		out = append(out, d.ID)
	}

	return out
}

func TestScanTypeRegistry_AvailableForBeforeInitialScan(t *testing.T) {
	reg := NewScanTypeRegistry()

	got := ids(reg.AvailableFor(m.BeforeInitialScan))

	assert.Equal(t, []m.ScanType{
		m.ScanExact, m.ScanUnknown, m.ScanInRange, m.ScanSmallerThan, m.ScanBiggerThan,
	}, got)
	assert.NotContains(t, got, m.ScanIncreased)
}

func TestScanTypeRegistry_AvailableForAfterInitialScan(t *testing.T) {
	reg := NewScanTypeRegistry()

	got := ids(reg.AvailableFor(m.AfterInitialScan))

	assert.Equal(t, []m.ScanType{
		m.ScanExact, m.ScanInRange, m.ScanSmallerThan, m.ScanBiggerThan,
		m.ScanUnchanged, m.ScanChanged, m.ScanDecreased, m.ScanIncreased,
		m.ScanDecreasedBy, m.ScanIncreasedBy,
	}, got)
	assert.NotContains(t, got, m.ScanUnknown)
}

func TestScanTypeRegistry_OperandArity(t *testing.T) {
	reg := NewScanTypeRegistry()

	want := map[m.ScanType]int{
		m.ScanUnknown:     0,
		m.ScanUnchanged:   0,
		m.ScanChanged:     0,
		m.ScanDecreased:   0,
		m.ScanIncreased:   0,
		m.ScanExact:       1,
		m.ScanDecreasedBy: 1,
		m.ScanIncreasedBy: 1,
		m.ScanSmallerThan: 1,
		m.ScanBiggerThan:  1,
		m.ScanInRange:     2,
	}

	require.Len(t, reg.All(), len(want))

	for id, arity := range want {
		got, err := reg.OperandArityOf(id)
		require.NoError(t, err)
		assert.Equal(t, arity, got, id)
	}

	_, err := reg.OperandArityOf("Sideways")
	require.ErrorIs(t, err, ErrUnknownScanType)
}

func TestScanTypeRegistry_DefaultAvailableEverywhere(t *testing.T) {
	reg := NewScanTypeRegistry()

	assert.True(t, reg.IsAvailable(DefaultScanType, m.BeforeInitialScan))
	assert.True(t, reg.IsAvailable(DefaultScanType, m.AfterInitialScan))
	assert.False(t, reg.IsAvailable("Sideways", m.AfterInitialScan))
}
