package model

import "time"

// Message represents one turn in the conversation transcript
type Message struct {
	Role      string
	Content   string // Raw content
	Rendered  string // Cached rendered markdown
	Timestamp time.Time
}
