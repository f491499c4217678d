package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseValueType(t *testing.T) {
	for _, in := range []string{"i32", "I32", " i32 "} {
		vt, err := ParseValueType(in)
		require.NoError(t, err, in)
		assert.Equal(t, I32, vt)
	}

	_, err := ParseValueType("i128")
	require.Error(t, err)

	assert.Equal(t, "F64", F64.Token())
	assert.Len(t, AllValueTypes, 10)
}

func TestValue_MarshalJSON(t *testing.T) {
	data, err := json.Marshal(struct {
		V Value `json:"v"`
		E Value `json:"e"`
	}{V: "18446744073709551615"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"v":18446744073709551615,"e":null}`, string(data))

	_, err = json.Marshal(Value("abc"))
	require.Error(t, err)
}

func TestValue_UnmarshalJSON(t *testing.T) {
	var vs []Value
	require.NoError(t, json.Unmarshal([]byte(`[9223372036854775807, "-5", 1.5e3, null]`), &vs))

	assert.Equal(t, []Value{"9223372036854775807", "-5", "1.5e3", ""}, vs)

	var v Value
	require.Error(t, json.Unmarshal([]byte(`true`), &v))
}

func TestScanInfo_JSON(t *testing.T) {
	exact := "42"

	data, err := json.Marshal(ScanInfo{Typ: ScanExact, Value: &ScanValue{Exact: &exact}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"typ":"Exact","value":{"Exact":"42"}}`, string(data))

	data, err = json.Marshal(ScanInfo{Typ: ScanUnknown})
	require.NoError(t, err)
	assert.JSONEq(t, `{"typ":"Unknown"}`, string(data))
}

func TestWriteBatchResult(t *testing.T) {
	r := WriteBatchResult{Outcomes: []WriteOutcome{
		{Address: Address{Pointer: 1}, Status: WriteOK},
		{Address: Address{Pointer: 2}, Status: WriteFailed},
		{Address: Address{Pointer: 3}, Status: WriteError},
	}}

	assert.Equal(t, 1, r.Succeeded())
	require.Len(t, r.Failed(), 2)
	assert.Equal(t, uint64(2), r.Failed()[0].Address.Pointer)
}
