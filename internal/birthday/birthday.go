package birthday

import (
	"time"

	"github.com/dhruvp2403/samajportal/internal/model"
)

// IsTodaysBirthday reports whether the stored date of birth's month and day
// match today. The stored year is never compared, so placeholder years for
// unknown-year entries still match. Members without a recorded date of
// birth never match.
func IsTodaysBirthday(member model.Member, today time.Time) bool {
	if member.DateOfBirth == nil {
		return false
	}

	dob := *member.DateOfBirth
	return dob.Month() == today.Month() && dob.Day() == today.Day()
}

// DaysUntilNextBirthday returns the number of days until the next month/day
// occurrence on or after today, rolling into next year when this year's
// occurrence has already passed. Returns -1 when no date of birth is
// recorded.
func DaysUntilNextBirthday(member model.Member, today time.Time) int {
	if member.DateOfBirth == nil {
		return -1
	}

	dob := *member.DateOfBirth
	ref := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)

	// Feb 29 normalizes to Mar 1 in non-leap years via time.Date.
	next := time.Date(ref.Year(), dob.Month(), dob.Day(), 0, 0, 0, 0, time.UTC)
	if next.Before(ref) {
		next = time.Date(ref.Year()+1, dob.Month(), dob.Day(), 0, 0, 0, 0, time.UTC)
	}

	return int(next.Sub(ref).Hours() / 24)
}

// TodaysBirthdays filters to approved members whose birthday is today.
// Pending and rejected members never appear, even on their birthday.
func TodaysBirthdays(members []model.Member, today time.Time) []model.Member {
	matched := []model.Member{}
	for _, member := range members {
		if member.RegistrationStatus != model.StatusApproved {
			continue
		}
		if IsTodaysBirthday(member, today) {
			matched = append(matched, member)
		}
	}

	return matched
}

// UpcomingBirthdays filters to approved members whose next birthday falls
// within windowDays of today, inclusive of today.
func UpcomingBirthdays(members []model.Member, today time.Time, windowDays int) []model.Member {
	matched := []model.Member{}
	for _, member := range members {
		if member.RegistrationStatus != model.StatusApproved {
			continue
		}

		days := DaysUntilNextBirthday(member, today)
		if days >= 0 && days <= windowDays {
			matched = append(matched, member)
		}
	}

	return matched
}
