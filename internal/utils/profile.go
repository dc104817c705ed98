package utils

import "time"

// Age returns completed years between birthDate and now.
func Age(birthDate, now time.Time) int {
	years := now.Year() - birthDate.Year()
	// Not yet had the birthday this year
	if now.Month() < birthDate.Month() ||
		(now.Month() == birthDate.Month() && now.Day() < birthDate.Day()) {
		years--
	}
	if years < 0 {
		return 0
	}
	return years
}

// zodiacBoundary marks the first day (month, day) of each western sign.
var zodiacBoundaries = []struct {
	month time.Month
	day   int
	sign  string
}{
	{time.January, 20, "Aquarius"},
	{time.February, 19, "Pisces"},
	{time.March, 21, "Aries"},
	{time.April, 20, "Taurus"},
	{time.May, 21, "Gemini"},
	{time.June, 22, "Cancer"},
	{time.July, 23, "Leo"},
	{time.August, 23, "Virgo"},
	{time.September, 23, "Libra"},
	{time.October, 23, "Scorpio"},
	{time.November, 23, "Sagittarius"},
	{time.December, 22, "Capricorn"},
}

// WesternZodiac returns the western star sign for a birth date.
func WesternZodiac(birthDate time.Time) string {
	sign := "Capricorn" // Before Jan 20
	for _, b := range zodiacBoundaries {
		if birthDate.Month() > b.month ||
			(birthDate.Month() == b.month && birthDate.Day() >= b.day) {
			sign = b.sign
		}
	}
	return sign
}

var chineseZodiacAnimals = []string{
	"Monkey", "Rooster", "Dog", "Pig", "Rat", "Ox",
	"Tiger", "Rabbit", "Dragon", "Snake", "Horse", "Goat",
}

// ChineseZodiac returns the Chinese zodiac animal for a birth year.
// The cycle is anchored so that 2020 is the year of the Rat.
func ChineseZodiac(birthDate time.Time) string {
	return chineseZodiacAnimals[birthDate.Year()%12]
}
