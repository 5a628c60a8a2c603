package resources

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trifectawealth/portal/internal/apperrors"
	"github.com/trifectawealth/portal/internal/clock"
	"github.com/trifectawealth/portal/internal/models"
)

func seedResources() []models.EducationalResource {
	published := time.Date(2024, time.November, 5, 0, 0, 0, 0, time.UTC)
	return []models.EducationalResource{
		{
			ID:          1,
			Title:       "S-Corporation Election Basics",
			Description: "When the S-corp election starts paying for itself.",
			Category:    "Tax Strategy",
			Type:        "article",
			Difficulty:  "Beginner",
			Tags:        []string{"s-corp", "payroll"},
			PublishDate: published,
		},
		{
			ID:          2,
			Title:       "Funding a Revocable Living Trust",
			Description: "Moving titled assets into the trust after signing.",
			Category:    "Estate Planning",
			Type:        "guide",
			Difficulty:  "Advanced",
			Tags:        []string{"trust", "estate"},
			PublishDate: published,
		},
		{
			ID:          3,
			Title:       "Quarterly Estimated Tax Walkthrough",
			Description: "Computing and scheduling the four payments.",
			Category:    "Tax Strategy",
			Type:        "video",
			Difficulty:  "Beginner",
			Tags:        []string{"estimated-taxes"},
			PublishDate: published,
		},
	}
}

func newTestService() (*Service, *clock.Fixed) {
	clk := clock.NewFixed(time.Date(2025, time.January, 10, 0, 0, 0, 0, time.UTC))
	return NewService(seedResources(), clk), clk
}

func TestListByCategory(t *testing.T) {
	svc, _ := newTestService()

	tax, err := svc.ListByCategory("Tax Strategy")
	require.NoError(t, err)
	require.Len(t, tax, 2)
	assert.Equal(t, 1, tax[0].ID)
	assert.Equal(t, 3, tax[1].ID)

	none, err := svc.ListByCategory("Retirement")
	require.NoError(t, err)
	assert.Empty(t, none)

	_, err = svc.ListByCategory("  ")
	assert.True(t, apperrors.IsValidation(err))
}

func TestSearchIsCaseInsensitiveAcrossFields(t *testing.T) {
	svc, _ := newTestService()

	// Title match.
	byTitle := svc.Search("s-corporation")
	require.Len(t, byTitle, 1)
	assert.Equal(t, 1, byTitle[0].ID)

	// Description match.
	byDesc := svc.Search("TITLED ASSETS")
	require.Len(t, byDesc, 1)
	assert.Equal(t, 2, byDesc[0].ID)

	// Tag match.
	byTag := svc.Search("Estimated-Taxes")
	require.Len(t, byTag, 1)
	assert.Equal(t, 3, byTag[0].ID)

	assert.Empty(t, svc.Search("crypto"))
}

func TestSearchBlankQueryReturnsFullLibrary(t *testing.T) {
	svc, _ := newTestService()

	assert.Len(t, svc.Search(""), 3)
	assert.Len(t, svc.Search("   "), 3)
}

func TestCreateAppliesDefaultsAndStampsPublishDate(t *testing.T) {
	svc, clk := newTestService()

	resource, err := svc.Create(CreateInput{
		Title:       "Augusta Rule in Practice",
		Description: "Renting your home to your business for board meetings.",
		Category:    "Tax Strategy",
		Type:        "article",
		Difficulty:  "Intermediate",
	})
	require.NoError(t, err)

	assert.Equal(t, 4, resource.ID)
	assert.Equal(t, "5 min read", resource.ReadTime)
	assert.Equal(t, "Trifecta Team", resource.Author)
	assert.Equal(t, "#", resource.URL)
	assert.Equal(t, []string{}, resource.Tags)
	assert.Equal(t, clk.Now(), resource.PublishDate)
}

func TestCreateRequiresEveryCoreField(t *testing.T) {
	svc, _ := newTestService()

	valid := CreateInput{
		Title:       "Title",
		Description: "Description",
		Category:    "Category",
		Type:        "article",
		Difficulty:  "Beginner",
	}

	blankTitle := valid
	blankTitle.Title = " "
	_, err := svc.Create(blankTitle)
	assert.True(t, apperrors.IsValidation(err))

	blankDifficulty := valid
	blankDifficulty.Difficulty = ""
	_, err = svc.Create(blankDifficulty)
	assert.True(t, apperrors.IsValidation(err))
}

func TestUpdatePreservesIDAndUntouchedFields(t *testing.T) {
	svc, _ := newTestService()

	title := "Funding a Living Trust, Step by Step"
	updated, err := svc.Update(2, UpdateInput{Title: &title})
	require.NoError(t, err)

	assert.Equal(t, 2, updated.ID)
	assert.Equal(t, title, updated.Title)
	assert.Equal(t, "Estate Planning", updated.Category)

	_, err = svc.Update(99, UpdateInput{})
	assert.True(t, apperrors.IsNotFound(err))
}

func TestDeleteNotFound(t *testing.T) {
	svc, _ := newTestService()

	assert.True(t, apperrors.IsNotFound(svc.Delete(9)))
	require.NoError(t, svc.Delete(1))
	assert.Len(t, svc.List(), 2)
}

func TestCategoriesAreDistinctAndSorted(t *testing.T) {
	svc, _ := newTestService()

	assert.Equal(t, []string{"Estate Planning", "Tax Strategy"}, svc.Categories())
}

func TestDifficultiesKeepCanonicalOrder(t *testing.T) {
	svc, _ := newTestService()

	// Intermediate is absent from the seed; the rest keep their order.
	assert.Equal(t, []string{"Beginner", "Advanced"}, svc.Difficulties())
}
