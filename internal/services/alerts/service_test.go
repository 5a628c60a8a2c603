package alerts

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trifectawealth/portal/internal/apperrors"
	"github.com/trifectawealth/portal/internal/clock"
	"github.com/trifectawealth/portal/internal/models"
)

func datePtr(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func seedAlerts() []models.ComplianceAlert {
	created := time.Date(2024, time.December, 1, 9, 0, 0, 0, time.UTC)
	return []models.ComplianceAlert{
		{
			ID:       1,
			ClientID: 1,
			Title:    "Annual report filing",
			Type:     models.AlertTypeEntityFiling,
			Priority: models.AlertPriorityHigh,
			DueDate:  datePtr(2025, time.January, 10),
			Status:   models.AlertStatusActive,
			Customization: models.AlertCustomization{
				ReminderDays: []int{7, 1},
				EmailEnabled: true,
			},
			CreatedDate: created,
			UpdatedDate: created,
		},
		{
			ID:       2,
			ClientID: 1,
			Title:    "Quarterly estimated taxes",
			Type:     models.AlertTypeTaxFiling,
			Priority: models.AlertPriorityMedium,
			DueDate:  datePtr(2025, time.April, 15),
			Status:   models.AlertStatusActive,
			Customization: models.AlertCustomization{
				ReminderDays: []int{14, 3},
				EmailEnabled: true,
			},
			CreatedDate: created,
			UpdatedDate: created,
		},
		{
			ID:          3,
			ClientID:    2,
			Title:       "Trust beneficiary review",
			Type:        models.AlertTypeTrustUpdate,
			Priority:    models.AlertPriorityLow,
			Status:      models.AlertStatusActive,
			CreatedDate: created,
			UpdatedDate: created,
		},
	}
}

func newTestService(now time.Time) (*Service, *clock.Fixed) {
	clk := clock.NewFixed(now)
	return NewService(seedAlerts(), clk), clk
}

func TestListActiveWithinReminderWindow(t *testing.T) {
	svc, clk := newTestService(time.Date(2025, time.January, 4, 0, 0, 0, 0, time.UTC))

	active := svc.ListActive(1)
	require.Len(t, active, 1)
	assert.Equal(t, 1, active[0].ID)

	// Well before the window nothing surfaces.
	clk.Set(time.Date(2024, time.December, 20, 0, 0, 0, 0, time.UTC))
	assert.Empty(t, svc.ListActive(1))
}

func TestListActiveIncludesUndatedActiveAlerts(t *testing.T) {
	svc, _ := newTestService(time.Date(2024, time.December, 20, 0, 0, 0, 0, time.UTC))

	active := svc.ListActive(2)
	require.Len(t, active, 1)
	assert.Equal(t, 3, active[0].ID)
}

func TestListActiveSortsByDueDateWithUndatedLast(t *testing.T) {
	svc, _ := newTestService(time.Date(2025, time.April, 10, 0, 0, 0, 0, time.UTC))

	undated, err := svc.Create(CreateInput{ClientID: 1, Title: "Standing reminder"})
	require.NoError(t, err)

	active := svc.ListActive(1)
	require.Len(t, active, 2)
	assert.Equal(t, 2, active[0].ID)
	assert.Equal(t, undated.ID, active[1].ID)
}

func TestSnoozeSuppressesUntilLapse(t *testing.T) {
	svc, clk := newTestService(time.Date(2025, time.January, 4, 9, 0, 0, 0, time.UTC))

	snoozed, err := svc.Snooze(1, 24)
	require.NoError(t, err)
	assert.Equal(t, models.AlertStatusSnoozed, snoozed.Status)
	require.NotNil(t, snoozed.SnoozedUntil)
	assert.Equal(t, time.Date(2025, time.January, 5, 9, 0, 0, 0, time.UTC), *snoozed.SnoozedUntil)

	// Before the snooze lapses the alert is hidden.
	clk.Set(time.Date(2025, time.January, 5, 8, 0, 0, 0, time.UTC))
	assert.Empty(t, svc.ListActive(1))

	// After the lapse it surfaces again even though stored status still
	// reads snoozed.
	clk.Set(time.Date(2025, time.January, 5, 10, 0, 0, 0, time.UTC))
	active := svc.ListActive(1)
	require.Len(t, active, 1)
	assert.Equal(t, models.AlertStatusSnoozed, active[0].Status)
	assert.Equal(t, models.AlertStatusActive, active[0].EffectiveStatus(clk.Now()))
}

func TestSnoozeRejectsNonPositiveHours(t *testing.T) {
	svc, _ := newTestService(time.Date(2025, time.January, 4, 0, 0, 0, 0, time.UTC))

	_, err := svc.Snooze(1, 0)
	assert.True(t, apperrors.IsValidation(err))

	_, err = svc.Snooze(1, -4)
	assert.True(t, apperrors.IsValidation(err))
}

func TestActivateClearsSnoozeAndIsIdempotent(t *testing.T) {
	svc, clk := newTestService(time.Date(2025, time.January, 4, 9, 0, 0, 0, time.UTC))

	_, err := svc.Snooze(1, 24)
	require.NoError(t, err)

	restored, err := svc.Activate(1)
	require.NoError(t, err)
	assert.Equal(t, models.AlertStatusActive, restored.Status)
	assert.Nil(t, restored.SnoozedUntil)

	// Activating again is a state no-op but still refreshes updatedDate.
	clk.Advance(time.Hour)
	again, err := svc.Activate(1)
	require.NoError(t, err)
	assert.Equal(t, models.AlertStatusActive, again.Status)
	assert.True(t, again.UpdatedDate.After(restored.UpdatedDate))
}

func TestCreateAppliesDefaults(t *testing.T) {
	svc, clk := newTestService(time.Date(2025, time.January, 4, 9, 0, 0, 0, time.UTC))

	alert, err := svc.Create(CreateInput{ClientID: 1, Title: "  New filing  "})
	require.NoError(t, err)

	assert.Equal(t, 4, alert.ID)
	assert.Equal(t, "New filing", alert.Title)
	assert.Equal(t, models.AlertStatusActive, alert.Status)
	assert.Equal(t, models.AlertTypeGeneralCompliance, alert.Type)
	assert.Equal(t, models.AlertPriorityMedium, alert.Priority)
	assert.Equal(t, []int{7, 1}, alert.Customization.ReminderDays)
	assert.True(t, alert.Customization.EmailEnabled)
	assert.False(t, alert.Customization.SMSEnabled)
	assert.Equal(t, clk.Now(), alert.CreatedDate)
	assert.Equal(t, clk.Now(), alert.UpdatedDate)
}

func TestCreatePartialCustomizationKeepsDefaults(t *testing.T) {
	svc, _ := newTestService(time.Date(2025, time.January, 4, 9, 0, 0, 0, time.UTC))

	// Only reminder days supplied: the notification toggles keep their
	// defaults instead of collapsing to false.
	alert, err := svc.Create(CreateInput{
		ClientID:      1,
		Title:         "Customized filing",
		Customization: &CustomizationInput{ReminderDays: []int{14, 3}},
	})
	require.NoError(t, err)
	assert.Equal(t, []int{14, 3}, alert.Customization.ReminderDays)
	assert.True(t, alert.Customization.EmailEnabled)
	assert.False(t, alert.Customization.SMSEnabled)

	// An explicit false is honored.
	off := false
	on := true
	alert, err = svc.Create(CreateInput{
		ClientID:      1,
		Title:         "Silent filing",
		Customization: &CustomizationInput{EmailEnabled: &off, SMSEnabled: &on},
	})
	require.NoError(t, err)
	assert.False(t, alert.Customization.EmailEnabled)
	assert.True(t, alert.Customization.SMSEnabled)
	assert.Equal(t, []int{7, 1}, alert.Customization.ReminderDays)
}

func TestCreateValidation(t *testing.T) {
	svc, _ := newTestService(time.Date(2025, time.January, 4, 0, 0, 0, 0, time.UTC))

	_, err := svc.Create(CreateInput{ClientID: 1, Title: "   "})
	assert.True(t, apperrors.IsValidation(err))

	_, err = svc.Create(CreateInput{Title: "Missing client"})
	assert.True(t, apperrors.IsValidation(err))
}

func TestUpdatePreservesIDAndRefreshesTimestamp(t *testing.T) {
	svc, clk := newTestService(time.Date(2025, time.January, 4, 9, 0, 0, 0, time.UTC))

	clk.Advance(time.Hour)
	title := "Amended filing"
	updated, err := svc.Update(1, UpdateInput{Title: &title})
	require.NoError(t, err)

	assert.Equal(t, 1, updated.ID)
	assert.Equal(t, "Amended filing", updated.Title)
	assert.Equal(t, clk.Now(), updated.UpdatedDate)
	// Untouched fields survive the merge.
	assert.Equal(t, models.AlertTypeEntityFiling, updated.Type)
}

func TestUpdateClearsDueDate(t *testing.T) {
	svc, _ := newTestService(time.Date(2025, time.January, 4, 9, 0, 0, 0, time.UTC))

	updated, err := svc.Update(1, UpdateInput{ClearDueDate: true})
	require.NoError(t, err)
	assert.Nil(t, updated.DueDate)

	// Without the flag an omitted due date stays untouched.
	title := "Still dated"
	updated, err = svc.Update(2, UpdateInput{Title: &title})
	require.NoError(t, err)
	require.NotNil(t, updated.DueDate)
	assert.Equal(t, *datePtr(2025, time.April, 15), *updated.DueDate)
}

func TestUpdateUnknownID(t *testing.T) {
	svc, _ := newTestService(time.Date(2025, time.January, 4, 0, 0, 0, 0, time.UTC))

	_, err := svc.Update(99, UpdateInput{})
	assert.True(t, apperrors.IsNotFound(err))
}

func TestDeleteRemovesRecord(t *testing.T) {
	svc, _ := newTestService(time.Date(2025, time.January, 4, 0, 0, 0, 0, time.UTC))

	require.NoError(t, svc.Delete(1))
	_, err := svc.Get(1)
	assert.True(t, apperrors.IsNotFound(err))
	assert.Len(t, svc.List(), 2)
}

func TestDeleteUnknownIDLeavesStoreUnchanged(t *testing.T) {
	svc, _ := newTestService(time.Date(2025, time.January, 4, 0, 0, 0, 0, time.UTC))

	before := svc.List()
	err := svc.Delete(99)
	assert.True(t, apperrors.IsNotFound(err))
	assert.Equal(t, before, svc.List())
}

func TestIDAllocatorSeedsAboveMaxExistingID(t *testing.T) {
	clk := clock.NewFixed(time.Date(2025, time.January, 4, 0, 0, 0, 0, time.UTC))
	svc := NewService([]models.ComplianceAlert{{ID: 41, ClientID: 1, Title: "Seeded"}}, clk)

	alert, err := svc.Create(CreateInput{ClientID: 1, Title: "Next"})
	require.NoError(t, err)
	assert.Equal(t, 42, alert.ID)
}
