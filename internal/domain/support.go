package domain

import "time"

type FAQ struct {
	ID       int64
	Category string
	Question string
	Answer   string
}

type Conversation struct {
	ID            int64
	Subject       string
	UnreadCount   int
	LastMessageAt time.Time
}
