package adapter

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/scanctl/internal/model"
)

func TestDecodeRegion_TaggedShapes(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want m.CandidateLocationSet
	}{
		{
			name: "key value",
			raw:  `{"KeyValue":{"4096":10,"4100":"11"}}`,
			want: m.KeyValueLocations{Entries: map[string]m.Value{"4096": "10", "4100": "11"}},
		},
		{
			name: "same value",
			raw:  `{"SameValue":{"locations":[100,104,108],"value":42}}`,
			want: m.SameValueLocations{Locations: []uint64{100, 104, 108}, Value: "42"},
		},
		{
			name: "range",
			raw:  `{"Range":{"start":16,"step":4,"values":[1,2]}}`,
			want: m.RangeLocations{Start: 16, Step: 4, Values: []m.Value{"1", "2"}},
		},
		{
			name: "offsetted",
			raw:  `{"Offsetted":{"base":2000,"offsets":[0,16,32],"values":[1,2,3]}}`,
			want: m.OffsettedLocations{Base: 2000, Offsets: []uint64{0, 16, 32}, Values: []m.Value{"1", "2", "3"}},
		},
		{
			name: "masked",
			raw:  `{"Masked":{"base":1000,"step":4,"mask":[true,false,true],"values":[7,9]}}`,
			want: m.MaskedLocations{Base: 1000, Step: 4, Mask: []bool{true, false, true}, Values: []m.Value{"7", "9"}},
		},
		{
			name: "flat entry",
			raw:  `{"address":140737488355328,"value":-3}`,
			want: m.SameValueLocations{Locations: []uint64{140737488355328}, Value: "-3"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DecodeRegion(json.RawMessage(tt.raw)))
		})
	}
}

func TestDecodeRegion_KeepsFullPrecision(t *testing.T) {
	got := DecodeRegion(json.RawMessage(`{"SameValue":{"locations":[1],"value":18446744073709551615}}`))

	require.IsType(t, m.SameValueLocations{}, got)
	assert.Equal(t, m.Value("18446744073709551615"), got.(m.SameValueLocations).Value)
}

func TestDecodeRegion_Unknown(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		tag  string
	}{
		{"unknown tag", `{"Compressed":{"blob":"AAAA"}}`, "Compressed"},
		{"malformed body", `{"SameValue":{"locations":"nope","value":1}}`, "SameValue"},
		{"extra field", `{"Range":{"start":1,"step":1,"values":[],"stride":2}}`, "Range"},
		{"two tags", `{"Range":{},"Masked":{}}`, "Masked"},
		{"not an object", `[1,2]`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DecodeRegion(json.RawMessage(tt.raw))

			unknown, ok := got.(m.UnknownLocations)
			require.True(t, ok, "got %T", got)
			assert.Equal(t, tt.tag, unknown.Tag)
			assert.JSONEq(t, tt.raw, string(unknown.Raw))
		})
	}
}
