package tariff

import "time"

// HolidayCalendar answers whether a given date is a public holiday.
// Implementations are injected so tests and future calendar integrations
// (movable feasts, regional holidays) do not touch the classifier.
type HolidayCalendar interface {
	IsHoliday(t time.Time) bool
}

// FixedFrenchHolidays knows the fixed-date French public holidays. Movable
// feasts (Easter Monday, Ascension, Whit Monday) are not covered.
// TODO: plug a full calendar source for the movable feasts.
type FixedFrenchHolidays struct{}

// fixed holidays as month/day pairs
var fixedHolidays = map[[2]int]bool{
	{1, 1}:   true, // Jour de l'an
	{5, 1}:   true, // Fête du Travail
	{5, 8}:   true, // Victoire 1945
	{7, 14}:  true, // Fête nationale
	{8, 15}:  true, // Assomption
	{11, 1}:  true, // Toussaint
	{11, 11}: true, // Armistice
	{12, 25}: true, // Noël
}

// IsHoliday reports whether the date is a fixed French public holiday.
func (FixedFrenchHolidays) IsHoliday(t time.Time) bool {
	return fixedHolidays[[2]int{int(t.Month()), t.Day()}]
}
