package timezone_test

import (
	"railbook/shared/constant"
	"railbook/shared/timezone"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNowAndLocation(t *testing.T) {
	assert.False(t, timezone.Now().IsZero())
	assert.NotNil(t, timezone.GetLocation())
}

func TestParseJourneyDate(t *testing.T) {
	parsed, err := timezone.Parse(constant.JourneyDateFormat, "2026-10-24")
	require.NoError(t, err)

	assert.Equal(t, time.Saturday, parsed.Weekday())
	assert.Equal(t, timezone.GetLocation(), parsed.Location())
}

func TestFormatRoundTrip(t *testing.T) {
	original := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	formatted := timezone.Format(original, constant.DateFormat)
	parsed, err := timezone.Parse(constant.DateFormat, formatted)
	require.NoError(t, err)

	assert.True(t, original.Equal(parsed))
}

func TestParseJourneyDateHelper(t *testing.T) {
	parsed, err := timezone.ParseJourneyDate("2026-10-25")
	require.NoError(t, err)
	assert.Equal(t, time.Sunday, parsed.Weekday())

	_, err = timezone.ParseJourneyDate("25-10-2026")
	assert.Error(t, err)

	_, err = timezone.ParseJourneyDate(timezone.Today())
	assert.NoError(t, err)
}
