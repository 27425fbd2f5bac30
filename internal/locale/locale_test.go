package locale

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aliskhannn/estate-crm/internal/model"
)

func TestNegotiate(t *testing.T) {
	assert.Equal(t, English, Negotiate("en", "ar", Arabic))
	assert.Equal(t, Arabic, Negotiate("", "", Arabic))
	assert.Equal(t, English, Negotiate("", "en-US,en;q=0.9", Arabic))
	assert.Equal(t, Arabic, Negotiate("", "ar-SA", English))
	assert.Equal(t, Arabic, Negotiate("fr", "", Arabic))
	assert.Equal(t, English, Negotiate("", "fr", English))
	assert.Equal(t, Arabic, Negotiate("", "fr-FR,ar;q=0.5", English))
	assert.Equal(t, English, Negotiate("", "not a header;;", English))
}

func TestStatusLabels_Complete(t *testing.T) {
	for _, s := range model.Statuses {
		assert.NotEqual(t, string(s), StatusLabel(Arabic, s), s)
		assert.NotEmpty(t, StatusLabel(English, s))
	}
}

func TestStatusFromLabel(t *testing.T) {
	s, err := StatusFromLabel("تم البيع")
	require.NoError(t, err)
	assert.Equal(t, model.StatusSold, s)

	s, err = StatusFromLabel("no response")
	require.NoError(t, err)
	assert.Equal(t, model.StatusNoResponse, s)

	s, err = StatusFromLabel("postMeeting")
	require.NoError(t, err)
	assert.Equal(t, model.StatusPostMeeting, s)

	_, err = StatusFromLabel("archived")
	assert.ErrorIs(t, err, model.ErrInvalidStatus)
}

func TestDelayedMessage(t *testing.T) {
	due := time.Date(2026, 10, 19, 9, 30, 0, 0, time.UTC)
	msg := DelayedMessage(English, "Omar", "call", due, "Sara")
	assert.Contains(t, msg, "Omar")
	assert.Contains(t, msg, "2026-10-19 09:30")
	assert.Contains(t, msg, "Sara")
	assert.Contains(t, DelayedMessage(Arabic, "عمر", "اتصال", due, "سارة"), "عمر")
}

func TestHeader_RoundTrip(t *testing.T) {
	field, ok := FieldFromHeader(Header(Arabic, "salesPerson"))
	require.True(t, ok)
	assert.Equal(t, "salesPerson", field)

	field, ok = FieldFromHeader("next action date")
	require.True(t, ok)
	assert.Equal(t, "nextActionDate", field)

	_, ok = FieldFromHeader("Notes")
	assert.False(t, ok)
	assert.Equal(t, "Notes", Header(English, "Notes"))
}
