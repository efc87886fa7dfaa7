package model

import "time"

// Category is the closed set of notification kinds.
type Category string

const (
	CategoryExam     Category = "exam"
	CategoryAcademic Category = "academic"
	CategoryDeadline Category = "deadline"
	CategoryFinance  Category = "finance"
	CategoryEvent    Category = "event"
	CategoryGeneral  Category = "general"
)

// Categories lists every category in display order.
func Categories() []Category {
	return []Category{
		CategoryExam,
		CategoryAcademic,
		CategoryDeadline,
		CategoryFinance,
		CategoryEvent,
		CategoryGeneral,
	}
}

// Valid reports whether c is a known category.
func (c Category) Valid() bool {
	for _, known := range Categories() {
		if c == known {
			return true
		}
	}
	return false
}

// Notification is a message in the student's inbox.
type Notification struct {
	ID        int       `json:"id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Category  Category  `json:"category"`
	IsRead    bool      `json:"is_read"`
}

// NotificationQuery holds the inbox filter from the query string.
type NotificationQuery struct {
	Filter string `form:"filter" binding:"omitempty,notification_filter"`
}

// InboxView is a filtered page of the inbox.
type InboxView struct {
	Filter        string         `json:"filter"`
	Notifications []Notification `json:"notifications"`
	UnreadCount   int            `json:"unread_count"`
}
