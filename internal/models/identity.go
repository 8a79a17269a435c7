package models

import (
	"strings"
)

// Slugify lowercases s, collapses every run of characters outside [a-z0-9]
// into a single hyphen and trims hyphens from both ends.
func Slugify(s string) string {
	lower := strings.ToLower(s)

	var b strings.Builder
	b.Grow(len(lower))

	pendingHyphen := false
	for _, r := range lower {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
			continue
		}
		pendingHyphen = true
	}

	return b.String()
}

// NormalizeID is the identity two subscriptions are compared by. Ids that
// slug to nothing fall back to their trimmed lowercase form.
func NormalizeID(id string) string {
	if slug := Slugify(id); slug != "" {
		return slug
	}
	return strings.ToLower(strings.TrimSpace(id))
}

// IDSet is a membership set keyed by NormalizeID.
type IDSet map[string]struct{}

func NewIDSet(ids ...[]string) IDSet {
	set := make(IDSet)
	for _, list := range ids {
		for _, id := range list {
			set[NormalizeID(id)] = struct{}{}
		}
	}
	return set
}

func (s IDSet) Has(id string) bool {
	_, ok := s[NormalizeID(id)]
	return ok
}

// AddID appends id to list unless an equivalent id is already present.
func AddID(list []string, id string) []string {
	key := NormalizeID(id)
	for _, existing := range list {
		if NormalizeID(existing) == key {
			return list
		}
	}
	return append(list, id)
}

// RemoveID returns list without any id equivalent to id.
func RemoveID(list []string, id string) ([]string, bool) {
	key := NormalizeID(id)
	out := make([]string, 0, len(list))
	removed := false
	for _, existing := range list {
		if NormalizeID(existing) == key {
			removed = true
			continue
		}
		out = append(out, existing)
	}
	return out, removed
}

// ContainsID reports whether list holds an id equivalent to id.
func ContainsID(list []string, id string) bool {
	key := NormalizeID(id)
	for _, existing := range list {
		if NormalizeID(existing) == key {
			return true
		}
	}
	return false
}
