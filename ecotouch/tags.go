package ecotouch

import (
	"fmt"
	"sort"
	"strconv"
)

// Registers are addressed by short code strings like "A1", "I51" or "D420".
// The leading letter selects the value domain: A analog (one-decimal
// fixed-point), I integer, D digital (0/1).
const (
	kindAnalog  = 'A'
	kindInteger = 'I'
	kindDigital = 'D'
)

func tagKind(tag string) byte {
	if tag == "" {
		return 0
	}
	return tag[0]
}

func validTag(tag string) bool {
	if len(tag) < 2 {
		return false
	}
	switch tag[0] {
	case kindAnalog, kindInteger, kindDigital:
	default:
		return false
	}
	_, err := strconv.Atoi(tag[1:])
	return err == nil
}

// TagData declares one logical device property: the raw registers it spans
// (in the positional order its codec expects), display and writability
// metadata, and the codec converting raw register strings to a typed value.
type TagData struct {
	// Tags is the ordered, non-empty list of register codes. Order matters,
	// the codecs index by position.
	Tags      []string
	Unit      string
	Writeable bool

	// Bit selects a single bit of the first register's integer value.
	Bit *int
	// Bits lists bit indices of the first register, used together with
	// Translate to render a bitmask as localized labels.
	Bits      []int
	Translate bool

	// Codec overrides the default conversion. Nil selects the default codec
	// for the register kind (analog /10, integer, digital bool).
	Codec Codec
}

func (td *TagData) codec() Codec {
	if td.Codec != nil {
		return td.Codec
	}
	if td.Bit != nil {
		return bitCodec{}
	}
	if len(td.Bits) > 0 {
		return bitsCodec{}
	}
	switch tagKind(td.Tags[0]) {
	case kindDigital:
		return boolCodec{}
	case kindInteger:
		return intCodec{}
	default:
		return scaleCodec{}
	}
}

// Result is the outcome for one property. Status is the device-reported code
// of the property's first register (S_OK, E_INACTIVE, E_NOTFOUND, ...), a data
// field rather than an error. Err carries a decode failure scoped to this
// property only; sibling properties of the same read are unaffected.
type Result struct {
	Value  any
	Status string
	Err    error

	// Mismatch is set on writes whose device-echoed value did not decode back
	// to the requested one. Value then holds the echoed state.
	Mismatch bool
}

// TagByName returns the property descriptor registered under the given
// identifier.
func TagByName(name string) (*TagData, error) {
	td, ok := Tags[name]
	if !ok {
		return nil, fmt.Errorf("property %v not found", name)
	}
	return td, nil
}

// TagNames returns the identifiers of all registered properties in sorted
// order.
func TagNames() []string {
	names := make([]string, 0, len(Tags))
	for name := range Tags {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func bit(i int) *int { return &i }
