package models

import "time"

// FoundationStatus tracks a client's progress through the estate-foundation
// milestones. OverallProgress is derived from the milestone flags at read
// time, not stored.
type FoundationStatus struct {
	OverallProgress     int  `json:"overall_progress"`
	TrustCreated        bool `json:"trust_created"`
	AssetsFunded        bool `json:"assets_funded"`
	SuccessorDesignated bool `json:"successor_designated"`
	LegacyFramework     bool `json:"legacy_framework"`
}

// OperationsData holds the business-operations inputs used by the planning
// calculators.
type OperationsData struct {
	BusinessProfit float64 `json:"business_profit"`
	EntityType     string  `json:"entity_type"`
}

// Client represents a portal client.
type Client struct {
	ID         int              `json:"id"`
	Name       string           `json:"name"`
	Email      string           `json:"email"`
	Phone      string           `json:"phone,omitempty"`
	Company    string           `json:"company,omitempty"`
	JoinDate   time.Time        `json:"join_date"`
	Operations OperationsData   `json:"operations"`
	Foundation FoundationStatus `json:"foundation"`
}
