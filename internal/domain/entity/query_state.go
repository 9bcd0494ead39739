package entity

import "strings"

// URL query keys carrying the filter state.
const (
	QueryKeyName      = "name"
	QueryKeyMode      = "moc"
	QueryKeySpecialty = "specialty"
	QueryKeySort      = "sort"
)

// ListDelimiter joins the members of a list-valued query key.
const ListDelimiter = ","

// QueryKeys lists every key the filter state is made of.
var QueryKeys = []string{QueryKeyName, QueryKeyMode, QueryKeySpecialty, QueryKeySort}

// IsListKey reports whether key holds a delimiter-joined collection.
func IsListKey(key string) bool {
	return key == QueryKeySpecialty
}

type SortKey string

const (
	SortNone         SortKey = ""
	SortByFees       SortKey = "fees"
	SortByExperience SortKey = "experience"
)

// ParseSortKey returns SortNone and false for anything but fees or experience.
func ParseSortKey(s string) (SortKey, bool) {
	switch SortKey(s) {
	case SortByFees, SortByExperience:
		return SortKey(s), true
	default:
		return SortNone, false
	}
}

// SpecialtyMatch selects how a multi-specialty selection is applied.
type SpecialtyMatch string

const (
	// MatchAll keeps doctors listing every selected specialty.
	MatchAll SpecialtyMatch = "all"
	// MatchAny keeps doctors listing at least one selected specialty.
	MatchAny SpecialtyMatch = "any"
)

func ParseSpecialtyMatch(s string) (SpecialtyMatch, bool) {
	switch SpecialtyMatch(strings.ToLower(strings.TrimSpace(s))) {
	case MatchAll:
		return MatchAll, true
	case MatchAny:
		return MatchAny, true
	default:
		return MatchAll, false
	}
}

// QueryState is the typed view of the filter selections.
type QueryState struct {
	Name        string
	Mode        string
	Specialties []string
	Sort        SortKey
}

// HasSpecialty reports whether name is among the selected specialties.
func (q QueryState) HasSpecialty(name string) bool {
	for _, s := range q.Specialties {
		if s == name {
			return true
		}
	}
	return false
}

// SplitList splits a joined list value, dropping blanks and repeats.
func SplitList(value string) []string {
	var out []string
	seen := make(map[string]struct{})
	for _, part := range strings.Split(value, ListDelimiter) {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if _, ok := seen[part]; ok {
			continue
		}
		seen[part] = struct{}{}
		out = append(out, part)
	}
	return out
}
