package notify

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestMemoryBusDeliversToTopicSubscribers(t *testing.T) {
	bus := NewMemoryBus(zap.NewNop())
	ctx := context.Background()

	var got []ChangeKind
	sub := bus.Subscribe(TopicMembers, func(topic string, kind ChangeKind) {
		assert.Equal(t, TopicMembers, topic)
		got = append(got, kind)
	})
	defer sub.Unsubscribe()

	bus.Publish(ctx, TopicMembers, ChangeCreated)
	bus.Publish(ctx, TopicMembers, ChangeDeleted)

	require.Equal(t, []ChangeKind{ChangeCreated, ChangeDeleted}, got)
}

func TestMemoryBusMemberScopedGreetingTopics(t *testing.T) {
	bus := NewMemoryBus(zap.NewNop())
	ctx := context.Background()

	watched := uuid.New()
	other := uuid.New()

	notified := 0
	sub := bus.Subscribe(GreetingTopic(watched), func(string, ChangeKind) {
		notified++
	})
	defer sub.Unsubscribe()

	bus.Publish(ctx, GreetingTopic(other), ChangeCreated)
	assert.Equal(t, 0, notified, "greeting for a different member must not wake the subscriber")

	bus.Publish(ctx, GreetingTopic(watched), ChangeCreated)
	assert.Equal(t, 1, notified)
}

func TestMemoryBusUnsubscribeStopsDelivery(t *testing.T) {
	bus := NewMemoryBus(zap.NewNop())
	ctx := context.Background()

	notified := 0
	sub := bus.Subscribe(TopicAnnouncements, func(string, ChangeKind) {
		notified++
	})

	bus.Publish(ctx, TopicAnnouncements, ChangeCreated)
	sub.Unsubscribe()
	bus.Publish(ctx, TopicAnnouncements, ChangeCreated)

	assert.Equal(t, 1, notified)
}

func TestMemoryBusUnsubscribeIsIdempotent(t *testing.T) {
	bus := NewMemoryBus(zap.NewNop())

	sub := bus.Subscribe(TopicMembers, func(string, ChangeKind) {})
	sub.Unsubscribe()
	sub.Unsubscribe()

	var nilSub *Subscription
	nilSub.Unsubscribe()
}

func TestMemoryBusUnsubscribeDuringHandler(t *testing.T) {
	bus := NewMemoryBus(zap.NewNop())
	ctx := context.Background()

	notified := 0
	var sub *Subscription
	sub = bus.Subscribe(TopicMembers, func(string, ChangeKind) {
		notified++
		sub.Unsubscribe()
	})

	bus.Publish(ctx, TopicMembers, ChangeUpdated)
	bus.Publish(ctx, TopicMembers, ChangeUpdated)

	assert.Equal(t, 1, notified)
}

func TestMemoryBusNoReplayForLateSubscribers(t *testing.T) {
	bus := NewMemoryBus(zap.NewNop())
	ctx := context.Background()

	bus.Publish(ctx, TopicMembers, ChangeCreated)

	notified := 0
	sub := bus.Subscribe(TopicMembers, func(string, ChangeKind) {
		notified++
	})
	defer sub.Unsubscribe()

	assert.Equal(t, 0, notified, "no message is retained for subscribers that were not connected at publish time")
}
