package slug

import (
	"fmt"
	"strings"
)

// FilterState is one listing page's filter selection. Single-valued facets
// are empty when absent; multi-valued facets are nil/empty slices.
type FilterState struct {
	Stream      string
	City        string
	State       string
	CourseGroup string

	InstituteTypes []string
	FeeRanges      []string
}

// IsZero reports whether no facet is selected.
func (f FilterState) IsZero() bool {
	return f.Stream == "" && f.City == "" && f.State == "" && f.CourseGroup == "" &&
		len(f.InstituteTypes) == 0 && len(f.FeeRanges) == 0
}

// groupSep joins facet segments. Slugify collapses hyphen runs inside values,
// so a double hyphen can never occur within one and segments cannot collide.
const groupSep = "--"

// Facet key prefixes, in the fixed order they appear in an encoded slug.
const (
	keyStream = "stream"
	keyCity   = "city"
	keyState  = "state"
	keyCourse = "course"
	keyType   = "type"
	keyFee    = "fee"
)

// InstituteTypeOptions is the declared option list for the institute-type
// facet. Encoded slugs list selected values in this order regardless of
// selection order.
var InstituteTypeOptions = []string{"government", "private", "deemed", "autonomous"}

// FeeRangeOptions is the declared option list for the fee-bracket facet.
var FeeRangeOptions = []string{"below-1-lakh", "1-2-lakh", "2-5-lakh", "above-5-lakh"}

// Normalize slugifies every facet value and canonicalizes multi-valued
// facets: duplicates collapse, values outside the declared option list drop,
// and the remainder re-sorts into declared option order. Encode always
// normalizes first, which makes encode(decode(encode(s))) == encode(s).
func Normalize(f FilterState) FilterState {
	return FilterState{
		Stream:         Slugify(f.Stream),
		City:           Slugify(f.City),
		State:          Slugify(f.State),
		CourseGroup:    Slugify(f.CourseGroup),
		InstituteTypes: canonicalValues(f.InstituteTypes, InstituteTypeOptions),
		FeeRanges:      canonicalValues(f.FeeRanges, FeeRangeOptions),
	}
}

// Encode builds the listing path segment for a filter state. Facets appear in
// fixed order (stream, city, state, course group, institute types, fee
// ranges); absent facets are omitted and the empty state encodes to "".
func Encode(f FilterState) string {
	f = Normalize(f)
	segments := make([]string, 0, 6)
	appendSingle := func(key, value string) {
		if value != "" {
			segments = append(segments, key+"-"+value)
		}
	}
	appendSingle(keyStream, f.Stream)
	appendSingle(keyCity, f.City)
	appendSingle(keyState, f.State)
	appendSingle(keyCourse, f.CourseGroup)
	for _, v := range f.InstituteTypes {
		segments = append(segments, keyType+"-"+v)
	}
	for _, v := range f.FeeRanges {
		segments = append(segments, keyFee+"-"+v)
	}
	return strings.Join(segments, groupSep)
}

// Decode parses a listing path segment produced by Encode. Segment order is
// not significant on input; the result is normalized. A segment without a
// recognized facet key yields ErrInvalidSlug, which callers fail closed on.
func Decode(segment string) (FilterState, error) {
	segment = strings.Trim(segment, "/")
	if segment == "" {
		return FilterState{}, nil
	}
	var f FilterState
	for _, part := range strings.Split(segment, groupSep) {
		key, value, ok := strings.Cut(part, "-")
		if !ok || value == "" {
			return FilterState{}, fmt.Errorf("%w: facet segment %q", ErrInvalidSlug, part)
		}
		switch key {
		case keyStream:
			f.Stream = value
		case keyCity:
			f.City = value
		case keyState:
			f.State = value
		case keyCourse:
			f.CourseGroup = value
		case keyType:
			f.InstituteTypes = append(f.InstituteTypes, value)
		case keyFee:
			f.FeeRanges = append(f.FeeRanges, value)
		default:
			return FilterState{}, fmt.Errorf("%w: unknown facet %q", ErrInvalidSlug, key)
		}
	}
	return Normalize(f), nil
}

func canonicalValues(selected, options []string) []string {
	if len(selected) == 0 {
		return nil
	}
	chosen := make(map[string]bool, len(selected))
	for _, v := range selected {
		chosen[Slugify(v)] = true
	}
	var out []string
	for _, opt := range options {
		if chosen[opt] {
			out = append(out, opt)
		}
	}
	return out
}
