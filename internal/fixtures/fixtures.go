// Package fixtures embeds the seed data both engines are initialised from.
// It is the mock persistence substrate: plain records, no real storage.
package fixtures

import (
	"embed"
	"encoding/json"
	"fmt"

	"github.com/trifectawealth/portal/internal/models"
)

//go:embed *.json
var files embed.FS

func load[T any](name string) ([]T, error) {
	data, err := files.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("reading fixture %s: %w", name, err)
	}
	var out []T
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("decoding fixture %s: %w", name, err)
	}
	return out, nil
}

// Alerts returns the seed compliance alerts.
func Alerts() ([]models.ComplianceAlert, error) {
	return load[models.ComplianceAlert]("alerts.json")
}

// Appointments returns the seed appointment and slot records.
func Appointments() ([]models.Appointment, error) {
	return load[models.Appointment]("appointments.json")
}

// Clients returns the seed client records.
func Clients() ([]models.Client, error) {
	return load[models.Client]("clients.json")
}

// Documents returns the seed document library.
func Documents() ([]models.Document, error) {
	return load[models.Document]("documents.json")
}

// Messages returns the seed conversation messages.
func Messages() ([]models.Message, error) {
	return load[models.Message]("messages.json")
}

// ActionItems returns the seed action items.
func ActionItems() ([]models.ActionItem, error) {
	return load[models.ActionItem]("action_items.json")
}

// Pillars returns the seed trifecta pillars.
func Pillars() ([]models.TrifectaPillar, error) {
	return load[models.TrifectaPillar]("pillars.json")
}

// Resources returns the seed educational resource library.
func Resources() ([]models.EducationalResource, error) {
	return load[models.EducationalResource]("resources.json")
}
