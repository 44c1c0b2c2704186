package service

import (
	"context"
)

// ScrobbleEvent is published after a scrobble transaction commits.
type ScrobbleEvent struct {
	RequestID string   `json:"request_id,omitempty"` // For distributed tracing
	EventID   string   `json:"event_id"`
	UserID    string   `json:"user_id"`
	ShowID    string   `json:"show_id,omitempty"`
	EpisodeID string   `json:"episode_id"`
	Watched   bool     `json:"watched"`
	Progress  *float64 `json:"progress,omitempty"`
	At        string   `json:"at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishScrobbleEvent publishes a committed scrobble for downstream consumers
	PublishScrobbleEvent(ctx context.Context, event *ScrobbleEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
