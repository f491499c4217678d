package model

// Address is one candidate location. Pointer is its identity; only Value
// changes, and only after a successful write.
type Address struct {
	Pointer uint64 `json:"address" yaml:"address"`
	Value   Value  `json:"value" yaml:"value"`
}

// CandidateLocationSet is one region of an engine result page in one of
// its compact encodings. The concrete types below are the only implementations.
type CandidateLocationSet interface {
	locationTag() string
}

// KeyValueLocations maps pointer literals to values. Order is not meaningful.
type KeyValueLocations struct {
	Entries map[string]Value
}

// SameValueLocations lists pointers that all hold one value.
type SameValueLocations struct {
	Locations []uint64
	Value     Value
}

// RangeLocations covers Start, Start+Step, ... with one value per slot.
type RangeLocations struct {
	Start  uint64
	Step   uint64
	Values []Value
}

// OffsettedLocations stores pointers as offsets from Base, parallel to Values.
type OffsettedLocations struct {
	Base    uint64
	Offsets []uint64
	Values  []Value
}

// MaskedLocations covers Base+i*Step for every true Mask[i]; Values holds
// one entry per true bit, in order.
type MaskedLocations struct {
	Base   uint64
	Step   uint64
	Mask   []bool
	Values []Value
}

// UnknownLocations is a region whose encoding the client does not understand.
type UnknownLocations struct {
	Tag string
	Raw []byte
}

func (KeyValueLocations) locationTag() string  { return "KeyValue" }
func (SameValueLocations) locationTag() string { return "SameValue" }
func (RangeLocations) locationTag() string     { return "Range" }
func (OffsettedLocations) locationTag() string { return "Offsetted" }
func (MaskedLocations) locationTag() string    { return "Masked" }
func (u UnknownLocations) locationTag() string { return u.Tag }

// LocationTag returns the wire tag of a region, or "" for nil.
func LocationTag(set CandidateLocationSet) string {
	if set == nil {
		return ""
	}

	return set.locationTag()
}

// ScanPage is one get_last_scan response.
type ScanPage struct {
	Total   int
	Regions []CandidateLocationSet
}
