package ecotouch

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"time"
)

// ErrInvalidValue marks decode/encode failures caused by malformed raw data or
// an out-of-domain value. It is scoped to a single property; callers keep the
// other properties of the same batch.
var ErrInvalidValue = errors.New("invalid value")

// Codec is the conversion pair between the raw register strings of a property
// and its typed value. Decode receives the raw values in TagData.Tags order.
// Encode writes raw strings into acc keyed by register code; acc is shared
// across the properties being prepared for one write call, so sibling
// properties can contribute to a single outbound batch.
type Codec interface {
	Decode(td *TagData, vals []string) (any, error)
	Encode(td *TagData, v any, acc map[string]string) error
}

func parseRaw(codec, s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%s: raw value %q: %w", codec, s, ErrInvalidValue)
	}
	return n, nil
}

func toFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int64:
		return float64(x), true
	}
	return 0, false
}

// scaleCodec is the default for analog registers: the controller stores
// one-decimal fixed-point numbers as value*10.
type scaleCodec struct{}

func (scaleCodec) Decode(td *TagData, vals []string) (any, error) {
	n, err := parseRaw("scaleCodec", vals[0])
	if err != nil {
		return nil, err
	}
	return float64(n) / 10, nil
}

func (scaleCodec) Encode(td *TagData, v any, acc map[string]string) error {
	f, ok := toFloat(v)
	if !ok {
		return fmt.Errorf("scaleCodec: value must be numeric, got %T: %w", v, ErrInvalidValue)
	}
	acc[td.Tags[0]] = strconv.Itoa(int(math.Round(f * 10)))
	return nil
}

// intCodec is the default for integer registers.
type intCodec struct{}

func (intCodec) Decode(td *TagData, vals []string) (any, error) {
	return parseRaw("intCodec", vals[0])
}

func (intCodec) Encode(td *TagData, v any, acc map[string]string) error {
	f, ok := toFloat(v)
	if !ok || f != math.Trunc(f) {
		return fmt.Errorf("intCodec: value must be an integer, got %v: %w", v, ErrInvalidValue)
	}
	acc[td.Tags[0]] = strconv.Itoa(int(f))
	return nil
}

// boolCodec is the default for digital registers and the enable switches.
type boolCodec struct{}

func (boolCodec) Decode(td *TagData, vals []string) (any, error) {
	switch vals[0] {
	case "0":
		return false, nil
	case "1":
		return true, nil
	}
	return nil, fmt.Errorf("boolCodec: raw value %q: %w", vals[0], ErrInvalidValue)
}

func (boolCodec) Encode(td *TagData, v any, acc map[string]string) error {
	b, ok := v.(bool)
	if !ok {
		return fmt.Errorf("boolCodec: value must be a bool, got %T: %w", v, ErrInvalidValue)
	}
	if b {
		acc[td.Tags[0]] = "1"
	} else {
		acc[td.Tags[0]] = "0"
	}
	return nil
}

// bitCodec extracts a single bit of the first register's integer value.
// Decode-only: setting one bit would need the current raw word for a
// read-modify-write, which a codec cannot perform on its own.
type bitCodec struct{}

func (bitCodec) Decode(td *TagData, vals []string) (any, error) {
	n, err := parseRaw("bitCodec", vals[0])
	if err != nil {
		return nil, err
	}
	return n&(1<<*td.Bit) != 0, nil
}

func (bitCodec) Encode(td *TagData, v any, acc map[string]string) error {
	return fmt.Errorf("bitCodec: single-bit properties are read-only: %w", ErrInvalidValue)
}

// bitsCodec projects the listed bit indices of the first register onto a
// []bool. The bridge renders translated labels from it when the property has
// Translate set.
type bitsCodec struct{}

func (bitsCodec) Decode(td *TagData, vals []string) (any, error) {
	n, err := parseRaw("bitsCodec", vals[0])
	if err != nil {
		return nil, err
	}
	set := make([]bool, len(td.Bits))
	for i, b := range td.Bits {
		set[i] = n&(1<<b) != 0
	}
	return set, nil
}

func (bitsCodec) Encode(td *TagData, v any, acc map[string]string) error {
	return fmt.Errorf("bitsCodec: bitmask properties are read-only: %w", ErrInvalidValue)
}

// datetimeCodec handles the 5-register calendar composites. Field order is
// fixed by the controller: hour, minute, day, year (offset 2000), month.
type datetimeCodec struct{}

func (datetimeCodec) Decode(td *TagData, vals []string) (any, error) {
	if len(vals) != 5 {
		return nil, fmt.Errorf("datetimeCodec: want 5 registers, got %d: %w", len(vals), ErrInvalidValue)
	}
	f := make([]int, 5)
	for i, s := range vals {
		n, err := parseRaw("datetimeCodec", s)
		if err != nil {
			return nil, err
		}
		f[i] = n
	}
	hour, minute, day, year, month := f[0], f[1], f[2], 2000+f[3], f[4]
	t := time.Date(year, time.Month(month), day, hour, minute, 0, 0, time.Local)
	// time.Date normalizes out-of-range fields (Feb 31 becomes Mar 3), so
	// compare back to catch them.
	if t.Year() != year || t.Month() != time.Month(month) || t.Day() != day ||
		t.Hour() != hour || t.Minute() != minute {
		return nil, fmt.Errorf("datetimeCodec: no such date %04d-%02d-%02d %02d:%02d: %w",
			year, month, day, hour, minute, ErrInvalidValue)
	}
	return t, nil
}

func (datetimeCodec) Encode(td *TagData, v any, acc map[string]string) error {
	t, ok := v.(time.Time)
	if !ok {
		return fmt.Errorf("datetimeCodec: value must be a time.Time, got %T: %w", v, ErrInvalidValue)
	}
	t = t.Local()
	acc[td.Tags[0]] = strconv.Itoa(t.Hour())
	acc[td.Tags[1]] = strconv.Itoa(t.Minute())
	acc[td.Tags[2]] = strconv.Itoa(t.Day())
	acc[td.Tags[3]] = strconv.Itoa(t.Year() - 2000)
	acc[td.Tags[4]] = strconv.Itoa(int(t.Month()))
	return nil
}

// TimeOfDay is the value type of the HH:MM schedule composites.
type TimeOfDay struct {
	Hour, Minute int
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

type timeHHMMCodec struct{}

func (timeHHMMCodec) Decode(td *TagData, vals []string) (any, error) {
	if len(vals) != 2 {
		return nil, fmt.Errorf("timeHHMMCodec: want 2 registers, got %d: %w", len(vals), ErrInvalidValue)
	}
	hour, err := parseRaw("timeHHMMCodec", vals[0])
	if err != nil {
		return nil, err
	}
	minute, err := parseRaw("timeHHMMCodec", vals[1])
	if err != nil {
		return nil, err
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return nil, fmt.Errorf("timeHHMMCodec: no such time %d:%d: %w", hour, minute, ErrInvalidValue)
	}
	return TimeOfDay{Hour: hour, Minute: minute}, nil
}

func (timeHHMMCodec) Encode(td *TagData, v any, acc map[string]string) error {
	t, ok := v.(TimeOfDay)
	if !ok {
		return fmt.Errorf("timeHHMMCodec: value must be a TimeOfDay, got %T: %w", v, ErrInvalidValue)
	}
	if t.Hour < 0 || t.Hour > 23 || t.Minute < 0 || t.Minute > 59 {
		return fmt.Errorf("timeHHMMCodec: no such time %v: %w", t, ErrInvalidValue)
	}
	acc[td.Tags[0]] = strconv.Itoa(t.Hour)
	acc[td.Tags[1]] = strconv.Itoa(t.Minute)
	return nil
}

// fwVersionCodec formats the two firmware registers as "major.minor".
type fwVersionCodec struct{}

func (fwVersionCodec) Decode(td *TagData, vals []string) (any, error) {
	if len(vals) != 2 {
		return nil, fmt.Errorf("fwVersionCodec: want 2 registers, got %d: %w", len(vals), ErrInvalidValue)
	}
	major, err := parseRaw("fwVersionCodec", vals[0])
	if err != nil {
		return nil, err
	}
	minor, err := parseRaw("fwVersionCodec", vals[1])
	if err != nil {
		return nil, err
	}
	return fmt.Sprintf("%d.%d", major, minor), nil
}

func (fwVersionCodec) Encode(td *TagData, v any, acc map[string]string) error {
	return fmt.Errorf("fwVersionCodec: read-only: %w", ErrInvalidValue)
}

// biosVersionCodec renders the single BIOS register, stored as version*100.
type biosVersionCodec struct{}

func (biosVersionCodec) Decode(td *TagData, vals []string) (any, error) {
	n, err := parseRaw("biosVersionCodec", vals[0])
	if err != nil {
		return nil, err
	}
	return fmt.Sprintf("%d.%02d", n/100, n%100), nil
}

func (biosVersionCodec) Encode(td *TagData, v any, acc map[string]string) error {
	return fmt.Errorf("biosVersionCodec: read-only: %w", ErrInvalidValue)
}

// The controller reports pump and demand states as small integers. Codes
// outside the documented set do occur in the field, so decode falls back to
// unknown(<n>) instead of failing.
var statusNames = map[int]string{
	0: "off",
	1: "on",
	2: "disabled",
}

type statusCodec struct {
	// writable variants exist for the circulation pump mode tags
	rw bool
}

func (c statusCodec) Decode(td *TagData, vals []string) (any, error) {
	n, err := parseRaw("statusCodec", vals[0])
	if err != nil {
		return nil, err
	}
	if name, ok := statusNames[n]; ok {
		return name, nil
	}
	return fmt.Sprintf("unknown(%d)", n), nil
}

func (c statusCodec) Encode(td *TagData, v any, acc map[string]string) error {
	if !c.rw {
		return fmt.Errorf("statusCodec: read-only: %w", ErrInvalidValue)
	}
	name, ok := v.(string)
	if !ok {
		return fmt.Errorf("statusCodec: value must be a string, got %T: %w", v, ErrInvalidValue)
	}
	for n, s := range statusNames {
		if s == name {
			acc[td.Tags[0]] = strconv.Itoa(n)
			return nil
		}
	}
	return fmt.Errorf("statusCodec: no such status %q: %w", name, ErrInvalidValue)
}

var heatingModes = map[int]string{
	0: "off",
	1: "auto",
	2: "manual",
}

type heatModeCodec struct{}

func (heatModeCodec) Decode(td *TagData, vals []string) (any, error) {
	n, err := parseRaw("heatModeCodec", vals[0])
	if err != nil {
		return nil, err
	}
	if name, ok := heatingModes[n]; ok {
		return name, nil
	}
	return fmt.Sprintf("unknown(%d)", n), nil
}

func (heatModeCodec) Encode(td *TagData, v any, acc map[string]string) error {
	name, ok := v.(string)
	if !ok {
		return fmt.Errorf("heatModeCodec: value must be a string, got %T: %w", v, ErrInvalidValue)
	}
	for n, s := range heatingModes {
		if s == name {
			acc[td.Tags[0]] = strconv.Itoa(n)
			return nil
		}
	}
	return fmt.Errorf("heatModeCodec: no such mode %q: %w", name, ErrInvalidValue)
}

// serialCodec reassembles the device serial number from its two registers.
// Units with a four-digit first half carry the WE prefix and drop the leading
// thousand.
type serialCodec struct{}

func (serialCodec) Decode(td *TagData, vals []string) (any, error) {
	if len(vals) != 2 {
		return nil, fmt.Errorf("serialCodec: want 2 registers, got %d: %w", len(vals), ErrInvalidValue)
	}
	sn1, err := parseRaw("serialCodec", vals[0])
	if err != nil {
		return nil, err
	}
	sn2, err := parseRaw("serialCodec", vals[1])
	if err != nil {
		return nil, err
	}
	prefix := "00"
	if sn1/1000 > 0 {
		prefix = "WE"
		sn1 -= 1000
	}
	return fmt.Sprintf("%s%02d%d", prefix, sn1, sn2), nil
}

func (serialCodec) Encode(td *TagData, v any, acc map[string]string) error {
	return fmt.Errorf("serialCodec: read-only: %w", ErrInvalidValue)
}

var seriesNames = map[int]string{
	105: "EcoTouch Ai1 Geo",
	106: "EcoTouch DS 5027 Ai",
	107: "EcoTouch Ai1 Air",
	108: "EcoTouch DS 5010 Ai",
	110: "EcoTouch Ai1 Air 2018",
	111: "EcoTouch Ai1 Geo 2018",
}

// seriesCodec maps the device series register to its product name.
type seriesCodec struct{}

func (seriesCodec) Decode(td *TagData, vals []string) (any, error) {
	n, err := parseRaw("seriesCodec", vals[0])
	if err != nil {
		return nil, err
	}
	if name, ok := seriesNames[n]; ok {
		return name, nil
	}
	return fmt.Sprintf("series(%d)", n), nil
}

func (seriesCodec) Encode(td *TagData, v any, acc map[string]string) error {
	return fmt.Errorf("seriesCodec: read-only: %w", ErrInvalidValue)
}

var modelNames = map[int]string{
	27: "DS 5027",
	50: "DS 5050",
	62: "DS 5062",
	10: "DS 5010",
}

// idCodec maps the model id register to its model name.
type idCodec struct{}

func (idCodec) Decode(td *TagData, vals []string) (any, error) {
	n, err := parseRaw("idCodec", vals[0])
	if err != nil {
		return nil, err
	}
	if name, ok := modelNames[n]; ok {
		return name, nil
	}
	return fmt.Sprintf("id(%d)", n), nil
}

func (idCodec) Encode(td *TagData, v any, acc map[string]string) error {
	return fmt.Errorf("idCodec: read-only: %w", ErrInvalidValue)
}

// yearCodec decodes the year counters stored as offsets from 2000.
type yearCodec struct{}

func (yearCodec) Decode(td *TagData, vals []string) (any, error) {
	n, err := parseRaw("yearCodec", vals[0])
	if err != nil {
		return nil, err
	}
	return 2000 + n, nil
}

func (yearCodec) Encode(td *TagData, v any, acc map[string]string) error {
	return fmt.Errorf("yearCodec: read-only: %w", ErrInvalidValue)
}

// codecsByName is the closed set of codec identifiers accepted from catalog
// overlay files.
var codecsByName = map[string]Codec{
	"":         nil,
	"default":  nil,
	"bool":     boolCodec{},
	"datetime": datetimeCodec{},
	"hhmm":     timeHHMMCodec{},
	"firmware": fwVersionCodec{},
	"bios":     biosVersionCodec{},
	"status":   statusCodec{},
	"statusrw": statusCodec{rw: true},
	"heatmode": heatModeCodec{},
	"serial":   serialCodec{},
	"series":   seriesCodec{},
	"model":    idCodec{},
	"year":     yearCodec{},
}
