package models

import "time"

// MessagePriority represents how urgently a message should be handled.
type MessagePriority string

const (
	MessagePriorityRoutine MessagePriority = "routine"
	MessagePriorityUrgent  MessagePriority = "urgent"
)

// ParticipantType distinguishes the two sides of a conversation.
type ParticipantType string

const (
	ParticipantTypeClient  ParticipantType = "client"
	ParticipantTypeAdvisor ParticipantType = "advisor"
)

// Message is a single message within a conversation thread.
type Message struct {
	ID             int             `json:"id"`
	ThreadID       int             `json:"thread_id"`
	Subject        string          `json:"subject"`
	Content        string          `json:"content"`
	SenderID       int             `json:"sender_id"`
	SenderName     string          `json:"sender_name"`
	SenderType     ParticipantType `json:"sender_type"`
	RecipientID    int             `json:"recipient_id"`
	RecipientName  string          `json:"recipient_name"`
	RecipientType  ParticipantType `json:"recipient_type"`
	Timestamp      time.Time       `json:"timestamp"`
	IsRead         bool            `json:"is_read"`
	Priority       MessagePriority `json:"priority"`
	HasAttachments bool            `json:"has_attachments"`
	Attachments    []string        `json:"attachments,omitempty"`
}

// Thread summarises a conversation: the latest message plus aggregate state
// across every message sharing the thread id.
type Thread struct {
	ThreadID     int             `json:"thread_id"`
	Subject      string          `json:"subject"`
	LastMessage  string          `json:"last_message"`
	LastSender   string          `json:"last_sender"`
	Timestamp    time.Time       `json:"timestamp"`
	Priority     MessagePriority `json:"priority"`
	HasUnread    bool            `json:"has_unread"`
	MessageCount int             `json:"message_count"`
	Participants []string        `json:"participants"`
}
