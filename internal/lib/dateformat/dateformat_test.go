package dateformat

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrdinal(t *testing.T) {
	tests := map[int]string{
		1: "1st", 2: "2nd", 3: "3rd", 4: "4th",
		11: "11th", 12: "12th", 13: "13th",
		21: "21st", 22: "22nd", 23: "23rd", 30: "30th", 31: "31st",
		101: "101st", 111: "111th",
	}
	for in, want := range tests {
		assert.Equal(t, want, Ordinal(in), "ordinal of %d", in)
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want string
	}{
		{name: "new year", in: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), want: "Jan 1st 2024 Monday"},
		{name: "second", in: time.Date(2023, 3, 2, 12, 0, 0, 0, time.UTC), want: "Mar 2nd 2023 Thursday"},
		{name: "thirteenth", in: time.Date(2020, 11, 13, 8, 30, 0, 0, time.UTC), want: "Nov 13th 2020 Friday"},
		{name: "twenty third", in: time.Date(2019, 12, 23, 23, 59, 0, 0, time.UTC), want: "Dec 23rd 2019 Monday"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Format(tt.in, nil))
		})
	}
}

func TestFormat_Location(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)
	in := time.Date(2024, 1, 1, 22, 0, 0, 0, time.UTC)

	assert.Equal(t, "Jan 1st 2024 Monday", Format(in, time.UTC))
	assert.Equal(t, "Jan 2nd 2024 Tuesday", Format(in, loc))
}

func TestParse(t *testing.T) {
	want := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	inputs := []string{
		"2024-01-15",
		" 2024-01-15 ",
		"2024-01-15T00:00:00Z",
		"2024-01-15T00:00:00",
		"2024-01-15 00:00:00",
		"2024/01/15",
		"01/15/2024",
		"Jan 15 2024",
		"Jan 15, 2024",
		"January 15 2024",
		"January 15, 2024",
		"15 Jan 2024",
		"Mon Jan 15 2024",
	}
	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			got, err := Parse(in, time.UTC)
			require.NoError(t, err)
			assert.True(t, want.Equal(got), "got %s", got)
		})
	}
}

func TestParse_PartialDates(t *testing.T) {
	tests := []struct {
		in   string
		want time.Time
	}{
		{in: "2024-01", want: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
		{in: "2023-11", want: time.Date(2023, 11, 1, 0, 0, 0, 0, time.UTC)},
		{in: "2024", want: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Parse(tt.in, time.UTC)
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %s", got)
		})
	}
}

func TestParse_Location(t *testing.T) {
	loc := time.FixedZone("UTC-5", -5*60*60)
	got, err := Parse("2024-01-01", loc)
	require.NoError(t, err)
	assert.True(t, time.Date(2024, 1, 1, 5, 0, 0, 0, time.UTC).Equal(got))
	assert.Equal(t, "Jan 1st 2024 Monday", Format(got, loc))
}

func TestParse_RFC3339KeepsOffset(t *testing.T) {
	got, err := Parse("2024-01-15T10:00:00+03:00", time.UTC)
	require.NoError(t, err)
	assert.True(t, time.Date(2024, 1, 15, 7, 0, 0, 0, time.UTC).Equal(got))
}

func TestParse_Invalid(t *testing.T) {
	for _, in := range []string{"", "   ", "yesterday", "2024-13-01", "2024-02-30", "15.01.2024x"} {
		t.Run(in, func(t *testing.T) {
			_, err := Parse(in, time.UTC)
			assert.ErrorIs(t, err, ErrInvalidDate)
			assert.False(t, Valid(in))
		})
	}
}
