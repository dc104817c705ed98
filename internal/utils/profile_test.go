package utils_test

import (
	"testing"
	"time"

	"github.com/nitelabs/venue_crm_app/internal/utils"
	"github.com/stretchr/testify/assert"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestAge(t *testing.T) {
	testCases := []struct {
		name     string
		birth    time.Time
		now      time.Time
		expected int
	}{
		{"birthday already passed this year", date(1995, time.March, 10), date(2025, time.June, 1), 30},
		{"birthday later this year", date(1995, time.September, 10), date(2025, time.June, 1), 29},
		{"birthday today", date(2000, time.June, 1), date(2025, time.June, 1), 25},
		{"day before birthday", date(2000, time.June, 2), date(2025, time.June, 1), 24},
		{"birth date in the future clamps to zero", date(2030, time.January, 1), date(2025, time.June, 1), 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, utils.Age(tc.birth, tc.now))
		})
	}
}

func TestWesternZodiac(t *testing.T) {
	testCases := []struct {
		name     string
		birth    time.Time
		expected string
	}{
		{"early January is Capricorn", date(1998, time.January, 5), "Capricorn"},
		{"Aquarius boundary day", date(1998, time.January, 20), "Aquarius"},
		{"day before Aquarius", date(1998, time.January, 19), "Capricorn"},
		{"mid Aries", date(1998, time.April, 1), "Aries"},
		{"Leo boundary day", date(1998, time.July, 23), "Leo"},
		{"day before Leo is Cancer", date(1998, time.July, 22), "Cancer"},
		{"late December wraps to Capricorn", date(1998, time.December, 25), "Capricorn"},
		{"day before the December boundary is Sagittarius", date(1998, time.December, 21), "Sagittarius"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, utils.WesternZodiac(tc.birth))
		})
	}
}

func TestChineseZodiac(t *testing.T) {
	testCases := []struct {
		year     int
		expected string
	}{
		{2020, "Rat"},
		{2021, "Ox"},
		{2024, "Dragon"},
		{1998, "Tiger"},
		{2000, "Dragon"},
		{1995, "Pig"},
	}

	for _, tc := range testCases {
		t.Run(tc.expected, func(t *testing.T) {
			assert.Equal(t, tc.expected, utils.ChineseZodiac(date(tc.year, time.June, 1)))
		})
	}
}
