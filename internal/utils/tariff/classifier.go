// Package tariff contains the pure derivation helpers used by the price
// calculator: pricing period from the pickup time and geographic zone from
// the trip addresses. Functions are deterministic and perform no I/O;
// unmatched input falls back to the base period / Paris zone.
package tariff

import (
	"strings"
	"time"
	"unicode"

	"github.com/chauffeurpro/vtc_booking_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// airportMarkers are substrings (uppercased) that classify an address as an
// airport pickup or dropoff.
var airportMarkers = []string{
	"CDG",
	"CHARLES DE GAULLE",
	"ROISSY",
	"ORLY",
	"ORY",
	"LE BOURGET",
	"BEAUVAIS",
	"AEROPORT",
	"AÉROPORT",
	"AIRPORT",
}

// suburbPrefixes are the leading postal-code digits of the petite and grande
// couronne departments.
var suburbPrefixes = []string{"77", "78", "91", "92", "93", "94", "95"}

// IsNightTime reports whether the local hour falls in [22,24) or [0,6).
func IsNightTime(t time.Time) bool {
	h := t.Hour()
	return h >= 22 || h < 6
}

// IsPeakHour reports whether the local hour falls in [7,20) on a weekday.
func IsPeakHour(t time.Time) bool {
	wd := t.Weekday()
	if wd == time.Saturday || wd == time.Sunday {
		return false
	}
	h := t.Hour()
	return h >= 7 && h < 20
}

// IsSundayOrHoliday reports whether the date is a Sunday or a public holiday
// according to the given calendar. A nil calendar checks Sundays only.
func IsSundayOrHoliday(t time.Time, cal HolidayCalendar) bool {
	if t.Weekday() == time.Sunday {
		return true
	}
	return cal != nil && cal.IsHoliday(t)
}

// DeterminePeriod classifies a pickup time. Night takes precedence over peak.
func DeterminePeriod(t time.Time, cal HolidayCalendar) domain.PricingPeriod {
	switch {
	case IsNightTime(t):
		return domain.PeriodNight
	case IsPeakHour(t) && !IsSundayOrHoliday(t, cal):
		return domain.PeriodPeak
	default:
		return domain.PeriodBase
	}
}

// DetermineZone classifies a trip from its free-text addresses. Airport
// matching wins over suburb matching; anything else is Paris.
func DetermineZone(pickupAddress, dropoffAddress string) domain.Zone {
	if isAirportAddress(pickupAddress) || isAirportAddress(dropoffAddress) {
		return domain.ZoneAirport
	}
	if isSuburbAddress(pickupAddress) || isSuburbAddress(dropoffAddress) {
		return domain.ZoneSuburb
	}
	return domain.ZoneParis
}

// ZoneMultiplier returns the surcharge multiplier applied to the pre-options
// subtotal for a zone.
func ZoneMultiplier(z domain.Zone) decimal.Decimal {
	switch z {
	case domain.ZoneSuburb:
		return decimal.NewFromFloat(1.15)
	case domain.ZoneAirport:
		return decimal.NewFromFloat(1.20)
	default:
		return decimal.NewFromInt(1)
	}
}

func isAirportAddress(addr string) bool {
	upper := strings.ToUpper(addr)
	for _, marker := range airportMarkers {
		if strings.Contains(upper, marker) {
			return true
		}
	}
	return false
}

func isSuburbAddress(addr string) bool {
	postal, ok := extractPostalCode(addr)
	if !ok {
		return false
	}
	for _, prefix := range suburbPrefixes {
		if strings.HasPrefix(postal, prefix) {
			return true
		}
	}
	return false
}

// extractPostalCode finds the first standalone 5-digit run in the address
// text. Longer digit runs (phone numbers) are skipped.
func extractPostalCode(addr string) (string, bool) {
	runes := []rune(addr)
	for i := 0; i < len(runes); {
		if !unicode.IsDigit(runes[i]) {
			i++
			continue
		}
		j := i
		for j < len(runes) && unicode.IsDigit(runes[j]) {
			j++
		}
		if j-i == 5 {
			return string(runes[i:j]), true
		}
		i = j
	}
	return "", false
}
