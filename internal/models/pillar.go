package models

// TrifectaPillar is one of the three pillars of the wealth-structure overview
// (foundation, operations, wealth building).
type TrifectaPillar struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Status      string `json:"status"`
	Progress    int    `json:"progress"`
}
