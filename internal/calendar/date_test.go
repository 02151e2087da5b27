package calendar_test

import (
	"testing"
	"time"

	"github.com/KirkDiggler/creature-arena/internal/calendar"
	dnderr "github.com/KirkDiggler/creature-arena/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDate_Validation(t *testing.T) {
	tests := []struct {
		name    string
		y, m, d int
		wantErr bool
	}{
		{"regular", 1974, 1, 15, false},
		{"leap day", 2024, 2, 29, false},
		{"not a leap year", 2023, 2, 29, true},
		{"month zero", 2000, 0, 1, true},
		{"month thirteen", 2000, 13, 1, true},
		{"day zero", 2000, 5, 0, true},
		{"april 31", 2000, 4, 31, true},
		{"year zero", 0, 1, 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := calendar.NewDate(tt.y, tt.m, tt.d)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, dnderr.IsInvalidArgument(err))
				assert.True(t, d.IsZero())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.y, d.Year())
			assert.Equal(t, tt.m, d.Month())
			assert.Equal(t, tt.d, d.Day())
		})
	}
}

func TestParse(t *testing.T) {
	d, err := calendar.Parse(" 1999-07-10 ")
	require.NoError(t, err)
	assert.Equal(t, calendar.MustDate(1999, 7, 10), d)
	assert.Equal(t, "1999-07-10", d.String())
	assert.Equal(t, "19990710", d.Compact())

	_, err = calendar.Parse("1999-02-30")
	assert.True(t, dnderr.IsInvalidArgument(err))

	_, err = calendar.Parse("July 10th")
	assert.True(t, dnderr.IsInvalidArgument(err))

	zero, err := calendar.Parse("0000-01-01")
	assert.True(t, dnderr.IsInvalidArgument(err))
	assert.True(t, zero.IsZero())
}

func TestCompare(t *testing.T) {
	ref := calendar.ReferenceDate()

	assert.True(t, calendar.MustDate(2025, 9, 21).Before(ref))
	assert.True(t, calendar.MustDate(2025, 9, 23).After(ref))
	assert.True(t, calendar.MustDate(2025, 9, 22).Equal(ref))
	assert.True(t, calendar.MustDate(2024, 12, 31).Before(ref))
	// Later day in an earlier month is still earlier
	assert.True(t, calendar.MustDate(2025, 8, 30).Before(ref))
	assert.Equal(t, 0, ref.Compare(ref))
}

func TestYearsUntil(t *testing.T) {
	ref := calendar.ReferenceDate()

	tests := []struct {
		born calendar.Date
		want int
	}{
		{calendar.MustDate(2000, 9, 23), 24},
		{calendar.MustDate(2000, 9, 22), 25},
		{calendar.MustDate(2000, 9, 21), 25},
		{calendar.MustDate(2000, 10, 1), 24},
		{calendar.MustDate(2000, 8, 30), 25},
		{calendar.MustDate(1974, 1, 15), 51},
		{ref, 0},
	}

	for _, tt := range tests {
		t.Run(tt.born.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.born.YearsUntil(ref))
		})
	}
}

func TestClocks(t *testing.T) {
	assert.Equal(t, "2025-09-22", calendar.DefaultClock().Today().String())

	fixed := calendar.FixedClock(calendar.MustDate(2030, 1, 1))
	assert.Equal(t, calendar.MustDate(2030, 1, 1), fixed.Today())

	today := calendar.SystemClock().Today()
	assert.False(t, today.IsZero())
	assert.Equal(t, time.Now().Year(), today.Year())
}
