package search

import (
	"testing"

	"listgrip/internal/domain"
	"listgrip/internal/eventbus"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSearch(t *testing.T, labels ...string) (*Service, *[]domain.DomainEvent, *[]*domain.Item) {
	t.Helper()
	items := make([]*domain.Item, len(labels))
	for i, l := range labels {
		items[i] = domain.NewItem("", l)
	}
	bus := eventbus.New()
	var events []domain.DomainEvent
	record := eventbus.Observe(func(e domain.DomainEvent) { events = append(events, e) })
	bus.Subscribe(EventSearchCompleted, record)
	bus.Subscribe(EventSearchCleared, record)
	bus.Subscribe(EventSearchNavigated, record)
	return NewService(bus, func() []*domain.Item { return items }), &events, &items
}

func TestSearchFindsMatches(t *testing.T) {
	s, events, items := newSearch(t, "alpha", "beta", "alphabet", "gamma")

	s.StartSearch("alp")

	assert.Equal(t, 2, s.GetMatchCount())
	assert.True(t, s.IsMatch(0))
	assert.True(t, s.IsMatch(2))
	assert.False(t, s.IsMatch(1))
	assert.Equal(t, (*items)[0], s.Current())
	assert.Equal(t, 1, s.GetCurrentMatchNumber())
	require.Len(t, *events, 1)
	assert.Equal(t, SearchCompletedEvent{Query: "alp", MatchCount: 2, FirstMatch: 0}, (*events)[0])

	s.StartSearch("alp")
	assert.Len(t, *events, 1, "repeating the query does nothing")
}

func TestSearchWrapsAround(t *testing.T) {
	s, _, items := newSearch(t, "alpha", "beta", "alphabet")
	s.StartSearch("alp")

	assert.Equal(t, (*items)[2], s.Next())
	assert.Equal(t, (*items)[0], s.Next())
	assert.Equal(t, (*items)[2], s.Previous())
	assert.Equal(t, 2, s.GetCurrentMatchIndex())
}

func TestSearchVisitsBestMatchFirst(t *testing.T) {
	s, events, items := newSearch(t, "alphabet", "beta", "alpha")

	s.StartSearch("alp")

	assert.Equal(t, (*items)[2], s.Current(), "the closest label comes first")
	assert.Equal(t, SearchCompletedEvent{Query: "alp", MatchCount: 2, FirstMatch: 2}, (*events)[0])
	assert.Equal(t, (*items)[0], s.Next())
	assert.True(t, s.IsMatch(0))
}

func TestSearchWithoutMatches(t *testing.T) {
	s, _, _ := newSearch(t, "alpha")
	s.StartSearch("zz")

	assert.Zero(t, s.GetMatchCount())
	assert.Nil(t, s.Next())
	assert.Nil(t, s.Current())
	assert.Equal(t, -1, s.GetCurrentMatchIndex())
}

func TestSearchRefreshFollowsList(t *testing.T) {
	s, _, items := newSearch(t, "alpha", "beta", "alphabet")
	s.StartSearch("alp")
	s.Next()

	*items = (*items)[1:]
	s.Refresh()

	assert.Equal(t, 1, s.GetMatchCount())
	assert.Equal(t, 1, s.GetCurrentMatchIndex(), "changed matches restart at the first one")
	assert.Equal(t, "alphabet", s.Current().Label)
}

func TestClearSearch(t *testing.T) {
	s, events, _ := newSearch(t, "alpha")
	s.ClearSearch()
	assert.Empty(t, *events, "nothing to clear")

	s.StartSearch("a")
	s.StartSearch("")

	assert.Empty(t, s.GetQuery())
	assert.Zero(t, s.GetMatchCount())
	assert.Equal(t, SearchClearedEvent{}, (*events)[len(*events)-1])
}
