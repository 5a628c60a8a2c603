package models

import "time"

// AlertType classifies the compliance obligation an alert tracks.
type AlertType string

const (
	AlertTypeGeneralCompliance AlertType = "General Compliance"
	AlertTypeTaxFiling         AlertType = "Tax Filing"
	AlertTypeEntityFiling      AlertType = "Entity Filing"
	AlertTypeTrustUpdate       AlertType = "Trust Update"
	AlertTypeInvestmentAccount AlertType = "Investment Account"
)

// AlertPriority represents the display priority of an alert.
type AlertPriority string

const (
	AlertPriorityLow    AlertPriority = "low"
	AlertPriorityMedium AlertPriority = "medium"
	AlertPriorityHigh   AlertPriority = "high"
)

// AlertStatus is the stored lifecycle state of a compliance alert. A snoozed
// alert whose snooze has lapsed still reads "snoozed" here; effective state is
// recomputed at read time via EffectiveStatus.
type AlertStatus string

const (
	AlertStatusActive  AlertStatus = "active"
	AlertStatusSnoozed AlertStatus = "snoozed"
)

// AlertCustomization governs the window before the due date during which an
// alert is surfaced, and which channels a full notification pipeline would
// use. The channel flags are descriptive metadata; nothing is dispatched.
type AlertCustomization struct {
	ReminderDays []int `json:"reminder_days"`
	EmailEnabled bool  `json:"email_enabled"`
	SMSEnabled   bool  `json:"sms_enabled"`
}

// ComplianceAlert represents a compliance obligation for a client.
type ComplianceAlert struct {
	ID               int                `json:"id"`
	ClientID         int                `json:"client_id"`
	Title            string             `json:"title"`
	Description      string             `json:"description"`
	Type             AlertType          `json:"type"`
	Priority         AlertPriority      `json:"priority"`
	DueDate          *time.Time         `json:"due_date,omitempty"`
	Status           AlertStatus        `json:"status"`
	SnoozedUntil     *time.Time         `json:"snoozed_until,omitempty"`
	IsRecurring      bool               `json:"is_recurring"`
	RecurringPattern string             `json:"recurring_pattern,omitempty"`
	Customization    AlertCustomization `json:"customization"`
	CreatedDate      time.Time          `json:"created_date"`
	UpdatedDate      time.Time          `json:"updated_date"`
}

// EffectiveStatus resolves the stored status against the reference time: a
// snoozed alert whose snoozedUntil has passed is logically active again. The
// stored Status field is never rewritten by reads.
func (a *ComplianceAlert) EffectiveStatus(now time.Time) AlertStatus {
	if a.Status == AlertStatusSnoozed && a.SnoozedUntil != nil && !now.Before(*a.SnoozedUntil) {
		return AlertStatusActive
	}
	return a.Status
}
