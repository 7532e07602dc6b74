package assessment

import "time"

// AgeInYears returns the number of completed birthdays between birth and asOf.
//
// A Feb 29 birthday is celebrated on Mar 1 in non-leap years: the anniversary
// is built with time.Date, which normalizes Feb 29 to Mar 1. The result is
// never negative.
func AgeInYears(birth, asOf time.Time) int {
	asOf = asOf.In(birth.Location())

	years := asOf.Year() - birth.Year()
	anniversary := time.Date(asOf.Year(), birth.Month(), birth.Day(), 0, 0, 0, 0, birth.Location())
	day := time.Date(asOf.Year(), asOf.Month(), asOf.Day(), 0, 0, 0, 0, birth.Location())
	if day.Before(anniversary) {
		years--
	}
	if years < 0 {
		return 0
	}
	return years
}
