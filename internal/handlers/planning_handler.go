package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/trifectawealth/portal/internal/services/planning"
)

// PlanningHandler handles planning-calculator requests
type PlanningHandler struct{}

// NewPlanningHandler creates a new planning handler
func NewPlanningHandler() *PlanningHandler {
	return &PlanningHandler{}
}

// TaxSavings projects annual savings for a business profit scenario
func (h *PlanningHandler) TaxSavings(c *gin.Context) {
	var input struct {
		Profit float64 `json:"profit"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.Profit < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "profit must not be negative"})
		return
	}

	c.JSON(http.StatusOK, planning.TaxSavings(input.Profit))
}

// Growth projects a compound-growth schedule
func (h *PlanningHandler) Growth(c *gin.Context) {
	var input struct {
		Principal           float64 `json:"principal"`
		MonthlyContribution float64 `json:"monthly_contribution"`
		AnnualRate          float64 `json:"annual_rate"`
		Years               int     `json:"years"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	points, err := planning.CompoundGrowth(input.Principal, input.MonthlyContribution, input.AnnualRate, input.Years)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"projection": points})
}
