package slug

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
)

// ErrInvalidSlug is returned when an entity slug lacks the required numeric
// id suffix. Callers treat it as "entity not found", never as a crash.
var ErrInvalidSlug = errors.New("slug: missing or invalid id suffix")

// trailingIDs matches every trailing hyphen-delimited digit run, so slugs
// damaged by an earlier double-encoding ("iit-delhi-123-123") still strip
// down to the clean base.
var trailingIDs = regexp.MustCompile(`(-[0-9]+)+$`)

// EntityRef is a parsed entity slug: the clean slug and its numeric id.
type EntityRef struct {
	Slug string
	ID   int64
}

// ParseID splits a detail-page path segment of the form "<slug>-<id>".
// Everything before the last trailing digit run is the slug; the last run is
// the id. All trailing digit runs are stripped, not just one.
func ParseID(segment string) (EntityRef, error) {
	segment = strings.Trim(segment, "/")
	suffix := trailingIDs.FindString(segment)
	if suffix == "" {
		return EntityRef{}, ErrInvalidSlug
	}
	base := strings.TrimSuffix(segment, suffix)
	if base == "" {
		return EntityRef{}, ErrInvalidSlug
	}
	runs := strings.Split(strings.TrimPrefix(suffix, "-"), "-")
	id, err := strconv.ParseInt(runs[len(runs)-1], 10, 64)
	if err != nil || id <= 0 {
		return EntityRef{}, ErrInvalidSlug
	}
	return EntityRef{Slug: base, ID: id}, nil
}

// AppendID builds the canonical "<slug>-<id>" segment. Any trailing digit
// runs already present are stripped first, so re-appending is idempotent.
func AppendID(s string, id int64) string {
	base := trailingIDs.ReplaceAllString(Slugify(s), "")
	if base == "" {
		return strconv.FormatInt(id, 10)
	}
	return base + "-" + strconv.FormatInt(id, 10)
}
