package usecase

import (
	"cmp"
	"slices"
	"strings"

	"doctor-directory/internal/domain/entity"

	"golang.org/x/text/cases"
)

// DefaultSuggestionLimit caps the autocomplete list.
const DefaultSuggestionLimit = 3

// FilterDoctors returns the doctors satisfying every active filter of q,
// ordered by q.Sort. The input slice is never modified; without a sort key
// the result keeps the input order.
func FilterDoctors(doctors []entity.Doctor, q entity.QueryState, match entity.SpecialtyMatch) []entity.Doctor {
	fold := cases.Fold()
	name := fold.String(q.Name)
	mode := fold.String(q.Mode)

	result := make([]entity.Doctor, 0, len(doctors))
	for _, d := range doctors {
		if name != "" && !strings.Contains(fold.String(d.Name), name) {
			continue
		}
		if mode != "" && fold.String(d.Mode) != mode {
			continue
		}
		if !matchesSpecialties(d, q.Specialties, match) {
			continue
		}
		result = append(result, d)
	}

	switch q.Sort {
	case entity.SortByFees:
		slices.SortStableFunc(result, func(a, b entity.Doctor) int {
			return a.Fees.Cmp(b.Fees)
		})
	case entity.SortByExperience:
		slices.SortStableFunc(result, func(a, b entity.Doctor) int {
			return cmp.Compare(b.Experience, a.Experience)
		})
	}

	return result
}

// SuggestDoctors returns up to limit doctors whose name contains query,
// case-insensitively, in list order. An empty query suggests nothing.
func SuggestDoctors(doctors []entity.Doctor, query string, limit int) []entity.Doctor {
	if query == "" || limit <= 0 {
		return nil
	}

	fold := cases.Fold()
	query = fold.String(query)

	var result []entity.Doctor
	for _, d := range doctors {
		if strings.Contains(fold.String(d.Name), query) {
			result = append(result, d)
			if len(result) == limit {
				break
			}
		}
	}
	return result
}

func matchesSpecialties(d entity.Doctor, selected []string, match entity.SpecialtyMatch) bool {
	if len(selected) == 0 {
		return true
	}

	if match == entity.MatchAny {
		for _, s := range selected {
			if d.HasSpeciality(s) {
				return true
			}
		}
		return false
	}

	for _, s := range selected {
		if !d.HasSpeciality(s) {
			return false
		}
	}
	return true
}
