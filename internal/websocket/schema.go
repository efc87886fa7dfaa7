package websocket

import "github.com/temitayo1239/student-information-portal-main/internal/model"

// ─── Actions (Client → Server) ──────────────────────────────────────

type Action string

const (
	ActionMarkRead    Action = "mark_read"
	ActionMarkAllRead Action = "mark_all_read"
	ActionPing        Action = "ping"
)

// Request is a client message. ID is only meaningful for mark_read.
type Request struct {
	Action Action `json:"action"`
	ID     int    `json:"id,omitempty"`
}

// ─── Events (Server → Client) ───────────────────────────────────────

type Event string

const (
	EventSnapshot Event = "snapshot"
	EventUpdated  Event = "updated"
	EventPong     Event = "pong"
	EventError    Event = "error"
)

// InboxEvent carries the unread part of the inbox. Snapshot is sent once on
// connect, updated after every mark.
type InboxEvent struct {
	Event         Event                `json:"event"`
	UnreadCount   int                  `json:"unread_count"`
	Notifications []model.Notification `json:"notifications"`
	Changed       int                  `json:"changed"`
}

type ErrorResponse struct {
	Event Event  `json:"event"`
	Code  string `json:"code"`
	Error string `json:"error"`
}

type PongResponse struct {
	Event Event `json:"event"`
}

// NewInboxEvent builds an inbox event from an unread view.
func NewInboxEvent(ev Event, view model.InboxView, changed int) InboxEvent {
	return InboxEvent{
		Event:         ev,
		UnreadCount:   view.UnreadCount,
		Notifications: view.Notifications,
		Changed:       changed,
	}
}
