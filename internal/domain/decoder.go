package domain

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	m "github.com/mouse-blink/scanctl/internal/model"
)

// DecodeGap records a region that contributed fewer addresses than it
// claimed, or none at all. Gaps never abort decoding of a page.
type DecodeGap struct {
	Index  int
	Tag    string
	Reason string
}

func (g DecodeGap) String() string {
	return fmt.Sprintf("region %d (%s): %s", g.Index, g.Tag, g.Reason)
}

// ResultDecoder flattens compact candidate location sets into addresses.
type ResultDecoder struct{}

// Decode flattens one region. Unrecognised or malformed regions yield no addresses.
func (ResultDecoder) Decode(set m.CandidateLocationSet) []m.Address {
	addrs, _ := decodeRegion(set)
	return addrs
}

// DecodePage flattens every region of a page in order and reports the gaps.
func (ResultDecoder) DecodePage(regions []m.CandidateLocationSet) ([]m.Address, []DecodeGap) {
	var (
		out  []m.Address
		gaps []DecodeGap
	)

	for i, region := range regions {
		addrs, reason := decodeRegion(region)
		if reason != "" {
			gaps = append(gaps, DecodeGap{Index: i, Tag: m.LocationTag(region), Reason: reason})
		}

		out = append(out, addrs...)
	}

	return out, gaps
}

// decodeRegion returns the addresses of set and, when the region could not
// be fully decoded, the reason.
func decodeRegion(set m.CandidateLocationSet) ([]m.Address, string) {
	switch s := set.(type) {
	case m.KeyValueLocations:
		return decodeKeyValue(s)
	case m.SameValueLocations:
		return decodeSameValue(s), ""
	case m.RangeLocations:
		return decodeRange(s), ""
	case m.OffsettedLocations:
		return decodeOffsetted(s)
	case m.MaskedLocations:
		return decodeMasked(s)
	case m.UnknownLocations:
		return nil, "unrecognised encoding"
	case nil:
		return nil, "empty region"
	default:
		return nil, fmt.Sprintf("unsupported region type %T", set)
	}
}

// decodeKeyValue sorts by pointer so the same page always decodes in the
// same order; the encoding itself carries no order.
func decodeKeyValue(s m.KeyValueLocations) ([]m.Address, string) {
	out := make([]m.Address, 0, len(s.Entries))
	bad := 0

	for key, value := range s.Entries {
		ptr, err := parsePointerKey(key)
		if err != nil {
			bad++
			continue
		}

		out = append(out, m.Address{Pointer: ptr, Value: value})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Pointer < out[j].Pointer })

	if bad > 0 {
		return out, fmt.Sprintf("%d unparseable pointer(s)", bad)
	}

	return out, ""
}

// parsePointerKey reads a decimal map key. A leading zero never switches to
// octal; hex is accepted only with an explicit 0x prefix.
func parsePointerKey(key string) (uint64, error) {
	if hex, ok := strings.CutPrefix(strings.ToLower(key), "0x"); ok {
		return strconv.ParseUint(hex, 16, 64)
	}

	return strconv.ParseUint(key, 10, 64)
}

func decodeSameValue(s m.SameValueLocations) []m.Address {
	out := make([]m.Address, 0, len(s.Locations))
	for _, ptr := range s.Locations {
		out = append(out, m.Address{Pointer: ptr, Value: s.Value})
	}

	return out
}

// decodeRange trusts len(Values) as the slot count.
func decodeRange(s m.RangeLocations) []m.Address {
	out := make([]m.Address, 0, len(s.Values))
	for i, value := range s.Values {
		out = append(out, m.Address{Pointer: s.Start + uint64(i)*s.Step, Value: value})
	}

	return out
}

func decodeOffsetted(s m.OffsettedLocations) ([]m.Address, string) {
	if len(s.Offsets) != len(s.Values) {
		return nil, fmt.Sprintf("%d offsets for %d values", len(s.Offsets), len(s.Values))
	}

	out := make([]m.Address, 0, len(s.Values))
	for i, offset := range s.Offsets {
		out = append(out, m.Address{Pointer: s.Base + offset, Value: s.Values[i]})
	}

	return out, ""
}

// decodeMasked zips the set bits of Mask with Values, consuming values in order.
func decodeMasked(s m.MaskedLocations) ([]m.Address, string) {
	set := 0

	for _, bit := range s.Mask {
		if bit {
			set++
		}
	}

	if set != len(s.Values) {
		return nil, fmt.Sprintf("%d mask bits set for %d values", set, len(s.Values))
	}

	out := make([]m.Address, 0, set)
	next := 0

	for i, bit := range s.Mask {
		if !bit {
			continue
		}

		out = append(out, m.Address{Pointer: s.Base + uint64(i)*s.Step, Value: s.Values[next]})
		next++
	}

	return out, ""
}
