package models

// Link event types
const (
	LinkEventCreated = "link_created"
	LinkEventVisited = "link_visited"
)

// LinkEvent is published to Kafka whenever a link is created or followed.
type LinkEvent struct {
	EventID   string `json:"event_id"`   // Unique identifier of the event
	Type      string `json:"type"`       // link_created or link_visited
	Hash      string `json:"hash"`       // Short link hash, also the message key
	UserID    string `json:"user_id"`    // Owner of the link
	ContentID string `json:"content_id"` // Linked content
	Timestamp int64  `json:"timestamp"`  // Unix seconds
}
