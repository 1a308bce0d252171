package notify

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

type ChangeKind string

const (
	ChangeCreated ChangeKind = "created"
	ChangeUpdated ChangeKind = "updated"
	ChangeDeleted ChangeKind = "deleted"
)

const (
	TopicMembers       = "members"
	TopicAnnouncements = "announcements"
)

// GreetingTopic scopes greeting notifications to a single member, so a
// viewer watching one member's feed is not woken by unrelated greetings.
func GreetingTopic(memberId uuid.UUID) string {
	return "greetings:" + memberId.String()
}

// Handler is invoked after a mutation on the subscribed topic has been
// persisted. Delivery is at-least-once and carries no payload beyond the
// change kind: handlers re-fetch current state instead of applying deltas.
type Handler func(topic string, kind ChangeKind)

// Bus fans out invalidation signals per entity collection. Nothing is
// retained or replayed for subscribers that were not connected at publish
// time.
type Bus interface {
	Publish(ctx context.Context, topic string, kind ChangeKind)
	Subscribe(topic string, handler Handler) *Subscription
}

// Subscription is the handle returned by Subscribe. Unsubscribe is
// idempotent and safe to call from inside a running handler.
type Subscription struct {
	once   sync.Once
	cancel func()
}

func (s *Subscription) Unsubscribe() {
	if s == nil {
		return
	}

	s.once.Do(func() {
		if s.cancel != nil {
			s.cancel()
		}
	})
}
