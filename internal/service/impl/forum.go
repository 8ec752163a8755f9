package core

import (
	"context"
	"fmt"
	"strings"

	"github.com/sidereusnuntius/rogold/internal/domain"
	"github.com/sidereusnuntius/rogold/internal/service"
	"github.com/sidereusnuntius/rogold/internal/validate"
)

func (s *AppService) CreateTopic(ctx context.Context, title, body, author string) (domain.Topic, error) {
	if err := validate.Title(title); err != nil {
		return domain.Topic{}, fmt.Errorf("%w: %s", service.ErrInvalidTitle, err)
	}
	if strings.TrimSpace(author) == "" {
		return domain.Topic{}, fmt.Errorf("%w: empty author", service.ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	topic := domain.Topic{
		ID:        s.nextForumID(),
		Title:     title,
		Body:      body,
		Author:    author,
		CreatedAt: s.now().UTC(),
		Replies:   []domain.Reply{},
	}

	// Most recent first.
	s.topics = append([]domain.Topic{topic}, s.topics...)
	if err := s.saveTopics(); err != nil {
		return domain.Topic{}, err
	}
	return topic, nil
}

func (s *AppService) GetTopics(ctx context.Context) ([]domain.Topic, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	topics := make([]domain.Topic, len(s.topics))
	for i, t := range s.topics {
		topics[i] = copyTopic(t)
	}
	return topics, nil
}

func (s *AppService) GetTopic(ctx context.Context, id int64) (domain.Topic, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, t := range s.topics {
		if t.ID == id {
			return copyTopic(t), nil
		}
	}
	return domain.Topic{}, service.ErrUnknownTopic
}

func (s *AppService) AddReply(ctx context.Context, topicID int64, body, author string) (domain.Reply, error) {
	if strings.TrimSpace(body) == "" {
		return domain.Reply{}, fmt.Errorf("%w: empty reply", service.ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.topics {
		if s.topics[i].ID != topicID {
			continue
		}

		reply := domain.Reply{
			ID:        s.nextForumID(),
			Body:      body,
			Author:    author,
			Timestamp: s.now().UTC(),
		}
		s.topics[i].Replies = append(s.topics[i].Replies, reply)
		if err := s.saveTopics(); err != nil {
			return domain.Reply{}, err
		}
		return reply, nil
	}
	return domain.Reply{}, service.ErrUnknownTopic
}

func copyTopic(t domain.Topic) domain.Topic {
	t.Replies = append([]domain.Reply{}, t.Replies...)
	return t
}
