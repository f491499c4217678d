package adapter

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"

	m "github.com/mouse-blink/scanctl/internal/model"
)

type sameValueWire struct {
	Locations []uint64 `json:"locations"`
	Value     m.Value  `json:"value"`
}

type rangeWire struct {
	Start  uint64    `json:"start"`
	Step   uint64    `json:"step"`
	Values []m.Value `json:"values"`
}

type offsettedWire struct {
	Base    uint64    `json:"base"`
	Offsets []uint64  `json:"offsets"`
	Values  []m.Value `json:"values"`
}

type maskedWire struct {
	Base   uint64    `json:"base"`
	Step   uint64    `json:"step"`
	Mask   []bool    `json:"mask"`
	Values []m.Value `json:"values"`
}

type flatLocationWire struct {
	Address *uint64  `json:"address"`
	Value   *m.Value `json:"value"`
}

// DecodeRegion parses one externally tagged region such as
// {"SameValue":{"locations":[...],"value":1}}. A flat {"address","value"}
// entry becomes a one-location SameValue region. Anything else, including a
// known tag with a malformed body, comes back as UnknownLocations so the rest
// of the page can still be used.
func DecodeRegion(raw json.RawMessage) m.CandidateLocationSet {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return m.UnknownLocations{Raw: cloneRaw(raw)}
	}

	if flat, ok := decodeFlat(raw, fields); ok {
		return flat
	}

	if len(fields) != 1 {
		return m.UnknownLocations{Tag: firstKey(fields), Raw: cloneRaw(raw)}
	}

	tag := firstKey(fields)
	body := fields[tag]

	set, err := decodeTagged(tag, body)
	if err != nil {
		return m.UnknownLocations{Tag: tag, Raw: cloneRaw(raw)}
	}

	return set
}

func decodeTagged(tag string, body json.RawMessage) (m.CandidateLocationSet, error) {
	switch tag {
	case "KeyValue":
		var entries map[string]m.Value
		if err := strictUnmarshal(body, &entries); err != nil {
			return nil, err
		}

		return m.KeyValueLocations{Entries: entries}, nil
	case "SameValue":
		var w sameValueWire
		if err := strictUnmarshal(body, &w); err != nil {
			return nil, err
		}

		return m.SameValueLocations{Locations: w.Locations, Value: w.Value}, nil
	case "Range":
		var w rangeWire
		if err := strictUnmarshal(body, &w); err != nil {
			return nil, err
		}

		return m.RangeLocations{Start: w.Start, Step: w.Step, Values: w.Values}, nil
	case "Offsetted":
		var w offsettedWire
		if err := strictUnmarshal(body, &w); err != nil {
			return nil, err
		}

		return m.OffsettedLocations{Base: w.Base, Offsets: w.Offsets, Values: w.Values}, nil
	case "Masked":
		var w maskedWire
		if err := strictUnmarshal(body, &w); err != nil {
			return nil, err
		}

		return m.MaskedLocations{Base: w.Base, Step: w.Step, Mask: w.Mask, Values: w.Values}, nil
	default:
		return nil, fmt.Errorf("unknown region tag %q", tag)
	}
}

func decodeFlat(raw json.RawMessage, fields map[string]json.RawMessage) (m.CandidateLocationSet, bool) {
	if len(fields) != 2 {
		return nil, false
	}

	var w flatLocationWire
	if err := json.Unmarshal(raw, &w); err != nil || w.Address == nil || w.Value == nil {
		return nil, false
	}

	return m.SameValueLocations{Locations: []uint64{*w.Address}, Value: *w.Value}, true
}

func strictUnmarshal(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	return dec.Decode(v)
}

func firstKey(fields map[string]json.RawMessage) string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	if len(keys) == 0 {
		return ""
	}

	return keys[0]
}

func cloneRaw(raw json.RawMessage) []byte {
	out := make([]byte, len(raw))
	copy(out, raw)

	return out
}
