package service

import (
	"context"

	"github.com/sidereusnuntius/rogold/internal/domain"
)

// Forum owns the topic list. Topics and replies are append-only; ids come
// from one allocator and strictly increase, so a lookup is never ambiguous
// even for records created within the same clock tick.
type Forum interface {
	CreateTopic(ctx context.Context, title, body, author string) (domain.Topic, error)
	// GetTopics returns all topics, most recent first.
	GetTopics(ctx context.Context) ([]domain.Topic, error)
	GetTopic(ctx context.Context, id int64) (domain.Topic, error)
	// AddReply appends to a topic's reply list, failing with ErrUnknownTopic
	// when the topic does not exist.
	AddReply(ctx context.Context, topicID int64, body, author string) (domain.Reply, error)
}
