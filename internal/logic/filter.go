package logic

import (
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"listgrip/internal/domain"
)

// MatchesFilter checks if an item matches the given filter query.
// "id:<text>" matches against the external id, anything else is a fuzzy,
// case-insensitive match against the label.
func MatchesFilter(item *domain.Item, filterQuery string) bool {
	query := strings.TrimSpace(filterQuery)
	if query == "" {
		return true
	}

	if strings.HasPrefix(query, "id:") {
		idFilter := strings.TrimPrefix(query, "id:")
		return strings.Contains(strings.ToLower(item.ID), strings.ToLower(idFilter))
	}

	return fuzzy.MatchFold(query, item.Label)
}

// FilterFunc turns a query into an item predicate; an empty query yields nil,
// which accepts every item
func FilterFunc(filterQuery string) func(*domain.Item) bool {
	if strings.TrimSpace(filterQuery) == "" {
		return nil
	}
	return func(item *domain.Item) bool {
		return MatchesFilter(item, filterQuery)
	}
}

// RankMatches returns the positions of the items matching query, best match
// first. Equal distances and id queries keep list order.
func RankMatches(query string, items []*domain.Item) []int {
	query = strings.TrimSpace(query)
	if query == "" || strings.HasPrefix(query, "id:") {
		var out []int
		for i, item := range items {
			if MatchesFilter(item, query) {
				out = append(out, i)
			}
		}
		return out
	}

	ranks := fuzzy.RankFindFold(query, domain.Labels(items))
	sort.Stable(ranks)
	out := make([]int, 0, len(ranks))
	for _, r := range ranks {
		out = append(out, r.OriginalIndex)
	}
	return out
}
