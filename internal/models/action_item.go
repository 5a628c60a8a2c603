package models

import "time"

// ActionItemStatus represents the lifecycle state of an action item.
type ActionItemStatus string

const (
	ActionItemStatusPending    ActionItemStatus = "pending"
	ActionItemStatusInProgress ActionItemStatus = "in_progress"
	ActionItemStatusCompleted  ActionItemStatus = "completed"
)

// ActionItem is a task assigned to a client by the advisory team.
type ActionItem struct {
	ID            int              `json:"id"`
	ClientID      int              `json:"client_id"`
	Title         string           `json:"title"`
	Description   string           `json:"description"`
	Category      string           `json:"category"`
	Priority      AlertPriority    `json:"priority"`
	Status        ActionItemStatus `json:"status"`
	DueDate       *time.Time       `json:"due_date,omitempty"`
	CreatedDate   time.Time        `json:"created_date"`
	CompletedDate *time.Time       `json:"completed_date,omitempty"`
	AssignedBy    string           `json:"assigned_by"`
}
