package eventbus

import (
	"testing"

	"listgrip/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublishRunsHandlersInOrder(t *testing.T) {
	b := New()
	var order []string
	b.Subscribe(domain.EventSelect, Observe(func(DomainEvent) { order = append(order, "first") }))
	b.Subscribe(domain.EventSelect, Observe(func(DomainEvent) { order = append(order, "second") }))
	b.Subscribe(domain.EventUnselect, Observe(func(DomainEvent) { order = append(order, "other") }))

	v := b.Publish(domain.SelectEvent{})

	assert.Equal(t, Continue, v)
	assert.Equal(t, []string{"first", "second"}, order)
}

func TestPublishMergesCancel(t *testing.T) {
	b := New()
	calls := 0
	b.Subscribe(domain.EventBefore, func(DomainEvent) Verdict { calls++; return Cancel })
	b.Subscribe(domain.EventBefore, func(DomainEvent) Verdict { calls++; return Continue })

	require.Equal(t, Cancel, b.Publish(domain.BeforeEvent{}))
	assert.Equal(t, 2, calls, "every subscriber sees the event")
}

func TestUnsubscribeRemovesOnlyThatHandler(t *testing.T) {
	b := New()
	var got []int
	unsub := b.Subscribe(domain.EventStop, Observe(func(DomainEvent) { got = append(got, 1) }))
	b.Subscribe(domain.EventStop, Observe(func(DomainEvent) { got = append(got, 2) }))

	unsub()
	b.Publish(domain.StopEvent{})

	assert.Equal(t, []int{2}, got)
}

func TestPanickingHandlerCountsAsContinue(t *testing.T) {
	b := New()
	reached := false
	b.Subscribe(domain.EventStop, func(DomainEvent) Verdict { panic("boom") })
	b.Subscribe(domain.EventStop, Observe(func(DomainEvent) { reached = true }))

	assert.Equal(t, Continue, b.Publish(domain.StopEvent{}))
	assert.True(t, reached)
}

func TestNullBus(t *testing.T) {
	var b EventBus = NullBus{}
	b.Subscribe(domain.EventStop, func(DomainEvent) Verdict { return Cancel })()
	assert.Equal(t, Continue, b.Publish(domain.StopEvent{}))
}
