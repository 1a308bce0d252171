package birthday

import (
	"testing"
	"time"

	"github.com/dhruvp2403/samajportal/internal/model"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func memberWithDOB(status string, dob time.Time) model.Member {
	return model.Member{
		Id:                 uuid.New(),
		FullName:           "Test Member",
		RegistrationStatus: status,
		DateOfBirth:        &dob,
	}
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestIsTodaysBirthdayIgnoresYear(t *testing.T) {
	today := date(2024, time.March, 14)

	older := memberWithDOB(model.StatusApproved, date(1990, time.March, 14))
	younger := memberWithDOB(model.StatusApproved, date(2005, time.March, 14))

	assert.True(t, IsTodaysBirthday(older, today))
	assert.True(t, IsTodaysBirthday(younger, today))

	tomorrow := date(2024, time.March, 15)
	assert.False(t, IsTodaysBirthday(older, tomorrow))
	assert.False(t, IsTodaysBirthday(younger, tomorrow))
}

func TestIsTodaysBirthdayNoDateOfBirth(t *testing.T) {
	member := model.Member{RegistrationStatus: model.StatusApproved}

	assert.False(t, IsTodaysBirthday(member, date(2024, time.March, 14)))
	assert.Equal(t, -1, DaysUntilNextBirthday(member, date(2024, time.March, 14)))
}

func TestDaysUntilNextBirthdayRollsIntoNextYear(t *testing.T) {
	member := memberWithDOB(model.StatusApproved, date(1990, time.March, 14))

	// Birthday already passed this year: count to 2025-03-14.
	today := date(2024, time.March, 20)
	expected := int(date(2025, time.March, 14).Sub(today).Hours() / 24)
	assert.Equal(t, expected, DaysUntilNextBirthday(member, today))

	// Birthday still ahead this year.
	assert.Equal(t, 4, DaysUntilNextBirthday(member, date(2024, time.March, 10)))

	// Birthday today.
	assert.Equal(t, 0, DaysUntilNextBirthday(member, date(2024, time.March, 14)))
}

func TestTodaysBirthdaysApprovedOnly(t *testing.T) {
	today := date(2024, time.March, 14)
	dob := date(1988, time.March, 14)

	members := []model.Member{
		memberWithDOB(model.StatusApproved, dob),
		memberWithDOB(model.StatusPending, dob),
		memberWithDOB(model.StatusRejected, dob),
		memberWithDOB(model.StatusApproved, date(1988, time.July, 2)),
	}

	matched := TodaysBirthdays(members, today)
	require.Len(t, matched, 1)
	assert.Equal(t, members[0].Id, matched[0].Id)
}

func TestUpcomingBirthdaysWindowInclusive(t *testing.T) {
	today := date(2024, time.March, 14)

	onToday := memberWithDOB(model.StatusApproved, date(1990, time.March, 14))
	onEdge := memberWithDOB(model.StatusApproved, date(1990, time.March, 21))
	outside := memberWithDOB(model.StatusApproved, date(1990, time.March, 22))
	pending := memberWithDOB(model.StatusPending, date(1990, time.March, 15))

	matched := UpcomingBirthdays([]model.Member{onToday, onEdge, outside, pending}, today, 7)
	require.Len(t, matched, 2)
	assert.Equal(t, onToday.Id, matched[0].Id)
	assert.Equal(t, onEdge.Id, matched[1].Id)
}

func TestBirthdayProperties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		month := time.Month(rapid.IntRange(1, 12).Draw(t, "month"))
		day := rapid.IntRange(1, 28).Draw(t, "day")
		birthYear := rapid.IntRange(1920, 2020).Draw(t, "birthYear")
		otherYear := rapid.IntRange(1920, 2020).Draw(t, "otherYear")
		refYear := rapid.IntRange(2021, 2030).Draw(t, "refYear")
		refMonth := time.Month(rapid.IntRange(1, 12).Draw(t, "refMonth"))
		refDay := rapid.IntRange(1, 28).Draw(t, "refDay")

		today := date(refYear, refMonth, refDay)
		a := memberWithDOB(model.StatusApproved, date(birthYear, month, day))
		b := memberWithDOB(model.StatusApproved, date(otherYear, month, day))

		// Matching is invariant under the stored year.
		if IsTodaysBirthday(a, today) != IsTodaysBirthday(b, today) {
			t.Fatalf("year changed the match: %v vs %v", *a.DateOfBirth, *b.DateOfBirth)
		}

		days := DaysUntilNextBirthday(a, today)
		if days < 0 || days > 366 {
			t.Fatalf("days until next birthday out of range: %d", days)
		}
		if IsTodaysBirthday(a, today) && days != 0 {
			t.Fatalf("birthday is today but days until = %d", days)
		}
		if !IsTodaysBirthday(a, today) && days == 0 {
			t.Fatalf("days until = 0 but month/day do not match today")
		}
	})
}
