package fixtures

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trifectawealth/portal/internal/models"
)

func TestAlertsDecode(t *testing.T) {
	alerts, err := Alerts()
	require.NoError(t, err)
	require.NotEmpty(t, alerts)

	ids := make(map[int]bool)
	for _, a := range alerts {
		assert.False(t, ids[a.ID], "duplicate alert id %d", a.ID)
		ids[a.ID] = true
		assert.NotEmpty(t, a.Title)
		assert.Positive(t, a.ClientID)
		if a.Status == models.AlertStatusSnoozed {
			assert.NotNil(t, a.SnoozedUntil)
		}
	}
}

func TestAppointmentsDecode(t *testing.T) {
	appts, err := Appointments()
	require.NoError(t, err)
	require.NotEmpty(t, appts)

	for _, a := range appts {
		if a.Status == models.AppointmentStatusAvailable {
			assert.Nil(t, a.ClientID, "available slot %d must not carry a client", a.ID)
		}
	}
}

func TestRemainingFixturesDecode(t *testing.T) {
	clients, err := Clients()
	require.NoError(t, err)
	assert.NotEmpty(t, clients)

	docs, err := Documents()
	require.NoError(t, err)
	assert.NotEmpty(t, docs)

	msgs, err := Messages()
	require.NoError(t, err)
	assert.NotEmpty(t, msgs)

	items, err := ActionItems()
	require.NoError(t, err)
	assert.NotEmpty(t, items)

	pillars, err := Pillars()
	require.NoError(t, err)
	assert.Len(t, pillars, 3)

	resources, err := Resources()
	require.NoError(t, err)
	assert.NotEmpty(t, resources)
	for _, r := range resources {
		assert.NotEmpty(t, r.Title)
		assert.NotEmpty(t, r.Category)
		assert.NotEmpty(t, r.Difficulty)
	}
}
