package services

import (
	"sort"
	"strings"
	"unicode"

	"github.com/dmitrijs2005/diarykeeper/internal/server/models"
)

const (
	relatedLimit  = 3
	minWordLength = 3
)

func words(text string) map[string]struct{} {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	set := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		if len([]rune(f)) >= minWordLength {
			set[f] = struct{}{}
		}
	}
	return set
}

// relatedEntries ranks candidates by the number of distinct words they share
// with query and returns at most limit of them. Entries sharing nothing are
// dropped; ties go to the newer entry. excludeID is never returned.
func relatedEntries(query string, candidates []models.Entry, excludeID string, limit int) []models.Entry {
	q := words(query)
	if len(q) == 0 {
		return nil
	}

	type scored struct {
		entry models.Entry
		score int
	}
	var ranked []scored
	for _, c := range candidates {
		if excludeID != "" && c.ID == excludeID {
			continue
		}
		score := 0
		for w := range words(c.Text()) {
			if _, ok := q[w]; ok {
				score++
			}
		}
		if score > 0 {
			ranked = append(ranked, scored{entry: c, score: score})
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].score != ranked[j].score {
			return ranked[i].score > ranked[j].score
		}
		return ranked[i].entry.CreatedAt.After(ranked[j].entry.CreatedAt)
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	out := make([]models.Entry, len(ranked))
	for i, r := range ranked {
		out[i] = r.entry
	}
	return out
}
