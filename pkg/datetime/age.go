// Package datetime provides date arithmetic for the age calculator.
package datetime

import (
	"time"

	"github.com/Husnain585/Calculator-sub000/pkg/validation"
)

// DateLayout is the format expected for dates in API payloads.
const DateLayout = "2006-01-02"

// Age is an elapsed calendar age broken into years, months, and days.
type Age struct {
	Years             int `json:"years"`
	Months            int `json:"months"`
	Days              int `json:"days"`
	TotalDays         int `json:"totalDays"`
	DaysUntilBirthday int `json:"daysUntilBirthday"`
}

// MustParseTime parses a date string using the given layout and panics on
// error. This is intended for use in tests where the date string is known
// to be valid.
func MustParseTime(layout, dateStr string) time.Time {
	t, err := time.Parse(layout, dateStr)
	if err != nil {
		panic(err)
	}
	return t
}

// AgeAt computes the calendar age for a date of birth as of a reference
// date, both in DateLayout format.
func AgeAt(dateOfBirth, asOf string) (Age, error) {
	dob, err := time.Parse(DateLayout, dateOfBirth)
	if err != nil {
		return Age{}, validation.NewError("dateOfBirth", "must be in %s format, got %q", DateLayout, dateOfBirth)
	}
	ref, err := time.Parse(DateLayout, asOf)
	if err != nil {
		return Age{}, validation.NewError("asOf", "must be in %s format, got %q", DateLayout, asOf)
	}
	if dob.After(ref) {
		return Age{}, validation.NewError("dateOfBirth", "must not be in the future")
	}

	years := ref.Year() - dob.Year()
	months := int(ref.Month()) - int(dob.Month())
	days := ref.Day() - dob.Day()

	if days < 0 {
		// Count days since the most recent monthly anniversary, clamping
		// the birth day to the length of that month (born Jan 31, as of
		// Mar 1: the anniversary is Feb 28/29, not a phantom Feb 31).
		previous := time.Date(ref.Year(), ref.Month()-1, 1, 0, 0, 0, 0, time.UTC)
		anchorDay := dob.Day()
		if limit := daysInMonth(previous.Year(), previous.Month()); anchorDay > limit {
			anchorDay = limit
		}
		anniversary := time.Date(previous.Year(), previous.Month(), anchorDay, 0, 0, 0, 0, time.UTC)
		days = int(ref.Sub(anniversary).Hours() / 24)
		months--
	}
	if months < 0 {
		months += 12
		years--
	}

	return Age{
		Years:             years,
		Months:            months,
		Days:              days,
		TotalDays:         int(ref.Sub(dob).Hours() / 24),
		DaysUntilBirthday: daysUntilBirthday(dob, ref),
	}, nil
}

// AgeNow computes the calendar age as of today in UTC.
func AgeNow(dateOfBirth string) (Age, error) {
	return AgeAt(dateOfBirth, time.Now().UTC().Format(DateLayout))
}

func daysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func daysUntilBirthday(dob, ref time.Time) int {
	// Feb 29 birthdays normalize to Mar 1 in non-leap years.
	next := time.Date(ref.Year(), dob.Month(), dob.Day(), 0, 0, 0, 0, time.UTC)
	if !next.After(ref) {
		next = time.Date(ref.Year()+1, dob.Month(), dob.Day(), 0, 0, 0, 0, time.UTC)
	}
	return int(next.Sub(ref).Hours() / 24)
}
