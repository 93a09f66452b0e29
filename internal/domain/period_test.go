package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePeriod(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{
			name:  "year-month",
			input: "2024-03",
			want:  time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "first of month",
			input: "2024-03-01",
			want:  time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "mid-month date truncates to month start",
			input: "2024-03-15",
			want:  time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "RFC3339 timestamp",
			input: "2024-03-15T10:30:00Z",
			want:  time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "RFC3339 with offset normalizes to UTC month",
			input: "2024-03-31T23:00:00-05:00",
			want:  time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:    "month out of range",
			input:   "2024-13",
			wantErr: true,
		},
		{
			name:    "day out of range",
			input:   "2024-02-30",
			wantErr: true,
		},
		{
			name:    "garbage",
			input:   "not-a-date",
			wantErr: true,
		},
		{
			name:    "empty",
			input:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePeriod(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidDate)
				return
			}
			require.NoError(t, err)
			assert.True(t, got.Equal(tt.want), "got %v, want %v", got, tt.want)
		})
	}
}

func TestParsePeriodRoundTrip(t *testing.T) {
	// "2024-03" and "2024-03-01" must canonicalize to the identical value.
	a, err := ParsePeriod("2024-03")
	require.NoError(t, err)
	b, err := ParsePeriod("2024-03-01")
	require.NoError(t, err)
	assert.True(t, a.Equal(b))
}

func TestParseEntryDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{
			name:  "plain date",
			input: "2024-03-15",
			want:  time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "RFC3339 truncates time of day",
			input: "2024-03-15T18:45:00Z",
			want:  time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name:    "year-month alone is not an entry date",
			input:   "2024-03",
			wantErr: true,
		},
		{
			name:    "garbage",
			input:   "yesterday",
			wantErr: true,
		},
		{
			name:    "empty",
			input:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseEntryDate(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidDate)
				return
			}
			require.NoError(t, err)
			assert.True(t, got.Equal(tt.want), "got %v, want %v", got, tt.want)
		})
	}
}

func TestMonthWindow(t *testing.T) {
	start, end := MonthWindow(time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC))
	assert.Equal(t, time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC), end)

	// December rolls over into the next year.
	start, end = MonthWindow(time.Date(2023, time.December, 2, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, time.Date(2023, time.December, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC), end)
}

func TestValidPhone(t *testing.T) {
	valid := []string{"+14155550132", "919876543210", "+9198765432"}
	for _, s := range valid {
		assert.True(t, ValidPhone(s), s)
	}

	invalid := []string{"", "+0123456", "0123", "phone", "+1 415 555", "+123456789012345678"}
	for _, s := range invalid {
		assert.False(t, ValidPhone(s), s)
	}
}
