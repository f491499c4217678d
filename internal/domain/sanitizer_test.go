package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/scanctl/internal/model"
)

func TestRequestSanitizer_ZeroOperandTypesDropOperand(t *testing.T) {
	s := NewRequestSanitizer(NewScanTypeRegistry())

	for _, st := range []m.ScanType{m.ScanUnknown, m.ScanUnchanged, m.ScanChanged, m.ScanDecreased, m.ScanIncreased} {
		for _, op := range []m.Operand{nil, m.ScalarOperand{Text: "5"}, m.RangeOperand{Start: "1", End: "2"}} {
			info, err := s.Reduce(st, op)
			require.NoError(t, err)
			assert.Nil(t, info.Value, "%s %v", st, op)

			data, err := json.Marshal(info)
			require.NoError(t, err)
			assert.JSONEq(t, `{"typ":"`+string(st)+`"}`, string(data))
		}
	}
}

func TestRequestSanitizer_ExactKeepsScalar(t *testing.T) {
	s := NewRequestSanitizer(NewScanTypeRegistry())

	info, err := s.Reduce(m.ScanExact, m.ScalarOperand{Text: "5"})
	require.NoError(t, err)
	require.NotNil(t, info.Value)
	require.NotNil(t, info.Value.Exact)
	assert.Equal(t, "5", *info.Value.Exact)
	assert.Nil(t, info.Value.Range)

	data, err := json.Marshal(info)
	require.NoError(t, err)
	assert.JSONEq(t, `{"typ":"Exact","value":{"Exact":"5"}}`, string(data))
}

func TestRequestSanitizer_ScalarTypesDropRange(t *testing.T) {
	s := NewRequestSanitizer(NewScanTypeRegistry())

	for _, st := range []m.ScanType{m.ScanExact, m.ScanDecreasedBy, m.ScanIncreasedBy, m.ScanSmallerThan, m.ScanBiggerThan} {
		info, err := s.Reduce(st, m.RangeOperand{Start: "1", End: "2"})
		require.NoError(t, err)
		assert.Nil(t, info.Value, st)
	}
}

func TestRequestSanitizer_InRangeKeepsRange(t *testing.T) {
	s := NewRequestSanitizer(NewScanTypeRegistry())

	info, err := s.Reduce(m.ScanInRange, m.RangeOperand{Start: "10", End: "20"})
	require.NoError(t, err)

	data, err := json.Marshal(info)
	require.NoError(t, err)
	assert.JSONEq(t, `{"typ":"InRange","value":{"Range":{"start":"10","end":"20"}}}`, string(data))

	info, err = s.Reduce(m.ScanInRange, m.ScalarOperand{Text: "5"})
	require.NoError(t, err)
	assert.Nil(t, info.Value)
}

func TestRequestSanitizer_UnknownScanType(t *testing.T) {
	s := NewRequestSanitizer(NewScanTypeRegistry())

	_, err := s.Reduce("Sideways", nil)
	require.ErrorIs(t, err, ErrUnknownScanType)
}
