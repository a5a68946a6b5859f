package service

import (
	"context"
	"time"
)

// PresenceEventKind describes the transition a presence event confirms.
type PresenceEventKind string

const (
	PresenceCheckedIn  PresenceEventKind = "checked_in"
	PresenceCheckedOut PresenceEventKind = "checked_out"
)

// PresenceEvent represents a confirmed presence transition to be processed by the presence worker
type PresenceEvent struct {
	EventID    string            `json:"event_id"`
	RequestID  string            `json:"request_id,omitempty"` // For distributed tracing
	Kind       PresenceEventKind `json:"kind"`
	UserID     string            `json:"user_id"`
	CourtID    string            `json:"court_id"`
	CourtName  string            `json:"court_name,omitempty"`
	Method     string            `json:"method"`
	OccurredAt time.Time         `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishPresenceEvent publishes a presence event for async confirmation delivery
	PublishPresenceEvent(ctx context.Context, event *PresenceEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
