package engine

import (
	"sort"
	"strings"

	"github.com/Shubham-Saboo/Voice-AI-Agents/internal/domain/entities"
)

// Rank orders providers by the sort keys in priority order and truncates to
// limit entries (0 means no truncation). The input slice is not modified.
// Ties on one key exhaust to the next; records tying on every key keep their
// relative snapshot order, so repeated runs over an unchanged snapshot
// produce identical output. Truncation happens strictly after the full sort.
func Rank(providers []*entities.Provider, keys []entities.SortKey, limit int) []*entities.Provider {
	ranked := append([]*entities.Provider(nil), providers...)

	if len(keys) > 0 {
		sort.SliceStable(ranked, func(i, j int) bool {
			for _, key := range keys {
				cmp := compareField(ranked[i], ranked[j], key.Field)
				if cmp == 0 {
					continue
				}
				if key.Descending {
					return cmp > 0
				}
				return cmp < 0
			}
			return false
		})
	}

	if limit > 0 && limit < len(ranked) {
		ranked = ranked[:limit]
	}
	return ranked
}

// compareField compares two providers on one field. Absent string fields
// sort before present ones so the ordering stays total and deterministic.
func compareField(a, b *entities.Provider, f entities.Field) int {
	switch f.Kind() {
	case entities.KindNumber:
		av, bv := numberValue(a, f), numberValue(b, f)
		switch {
		case av < bv:
			return -1
		case av > bv:
			return 1
		}
		return 0

	case entities.KindString:
		av, aok := stringValue(a, f)
		bv, bok := stringValue(b, f)
		switch {
		case !aok && !bok:
			return 0
		case !aok:
			return -1
		case !bok:
			return 1
		}
		return strings.Compare(av, bv)
	}
	return 0
}
