package notification

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skibook/models"
)

func sampleBooking(lang string) *models.Booking {
	return &models.Booking{
		ID:         "b-1",
		Name:       "Nino",
		Email:      "nino@example.com",
		Phone:      "599 11 22 33",
		Date:       time.Date(2026, time.February, 14, 0, 0, 0, 0, time.UTC),
		Students:   2,
		Status:     models.StatusPending,
		TotalPrice: 100,
		Language:   lang,
		Session: &models.Session{
			ID:       "sess-1",
			Title:    models.LocalizedText{Ka: "ჯგუფური გაკვეთილი", En: "Group Lesson", Ru: "Групповой урок"},
			Duration: models.LocalizedText{Ka: "2 საათი", En: "2 hours", Ru: "2 часа"},
			Level:    models.LocalizedText{Ka: "დამწყები", En: "Beginner", Ru: "Начинающий"},
			Currency: "₾",
		},
	}
}

func TestRenderConfirmationEnglish(t *testing.T) {
	subject, body, err := renderConfirmation(sampleBooking(models.LangEn))
	require.NoError(t, err)

	assert.Equal(t, "✅ Booking Confirmation - Ski Instructor", subject)
	assert.Contains(t, body, "Hello Nino")
	assert.Contains(t, body, "Group Lesson")
	assert.Contains(t, body, "Beginner")
	assert.Contains(t, body, "2/14/2026")
	assert.Contains(t, body, "100₾")
	assert.Contains(t, body, "Pending")
}

func TestRenderConfirmationGeorgian(t *testing.T) {
	subject, body, err := renderConfirmation(sampleBooking(models.LangKa))
	require.NoError(t, err)

	assert.Equal(t, "✅ დაჯავშნის დადასტურება - Ski Instructor", subject)
	assert.Contains(t, body, "ჯგუფური გაკვეთილი")
	assert.Contains(t, body, "14.02.2026")
	assert.Contains(t, body, "მოლოდინში")
}

func TestRenderConfirmationFallsBackToGeorgian(t *testing.T) {
	subject, _, err := renderConfirmation(sampleBooking("fr"))
	require.NoError(t, err)
	assert.Equal(t, confirmationStrings[models.LangKa].Subject, subject)
}

func TestRenderConfirmationNotesConditional(t *testing.T) {
	booking := sampleBooking(models.LangEn)

	_, body, err := renderConfirmation(booking)
	require.NoError(t, err)
	assert.NotContains(t, body, "Notes")

	booking.Notes = "first time on skis"
	_, body, err = renderConfirmation(booking)
	require.NoError(t, err)
	assert.Contains(t, body, "first time on skis")
}

func TestRenderAdminAlert(t *testing.T) {
	booking := sampleBooking(models.LangRu)

	subject, body, err := renderAdminAlert(booking)
	require.NoError(t, err)

	assert.Equal(t, "🔔 ახალი დაჯავშნა - Ski Instructor Admin", subject)
	assert.Contains(t, body, "Booking ID: b-1")
	assert.Contains(t, body, "Групповой урок", "lesson rendered in the customer's language")
	assert.Contains(t, body, "Русский")
	assert.Contains(t, body, "nino@example.com")
}

func TestRenderWithoutSessionFails(t *testing.T) {
	booking := sampleBooking(models.LangEn)
	booking.Session = nil

	_, _, err := renderConfirmation(booking)
	assert.Error(t, err)

	_, _, err = renderAdminAlert(booking)
	assert.Error(t, err)
}
