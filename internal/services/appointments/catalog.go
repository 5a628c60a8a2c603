package appointments

import (
	"github.com/gosimple/slug"

	"github.com/trifectawealth/portal/internal/models"
)

// appointmentTypes is the configured set of bookable categories. Catalog ids
// are slugs derived from the display name.
var appointmentTypes = []models.AppointmentTypeInfo{
	{
		Name:        "Tax Planning",
		Description: "Annual tax strategy and planning sessions",
		Duration:    60,
		Color:       "blue",
	},
	{
		Name:        "Legal Review",
		Description: "Contract review and legal compliance",
		Duration:    75,
		Color:       "green",
	},
	{
		Name:        "Investment Consultation",
		Description: "Portfolio review and investment strategy",
		Duration:    90,
		Color:       "purple",
	},
}

// advisors is the advisory team roster exposed to the scheduling UI.
var advisors = []models.Advisor{
	{
		ID:          1,
		Name:        "Sarah Johnson, CPA",
		Title:       "Senior Tax Advisor",
		Specialties: []string{"Tax Planning", "Business Tax Strategy"},
		Avatar:      "/api/placeholder/40/40",
	},
	{
		ID:          2,
		Name:        "Michael Chen, JD",
		Title:       "Legal Advisor",
		Specialties: []string{"Legal Review", "Contract Analysis"},
		Avatar:      "/api/placeholder/40/40",
	},
	{
		ID:          3,
		Name:        "David Rodriguez, CFP",
		Title:       "Investment Advisor",
		Specialties: []string{"Investment Consultation", "Portfolio Management"},
		Avatar:      "/api/placeholder/40/40",
	},
}

func init() {
	for i := range appointmentTypes {
		appointmentTypes[i].ID = slug.Make(appointmentTypes[i].Name)
	}
}

// Types returns the bookable appointment categories.
func (s *Service) Types() []models.AppointmentTypeInfo {
	out := make([]models.AppointmentTypeInfo, len(appointmentTypes))
	copy(out, appointmentTypes)
	return out
}

// Advisors returns the advisory team roster.
func (s *Service) Advisors() []models.Advisor {
	out := make([]models.Advisor, len(advisors))
	copy(out, advisors)
	return out
}
