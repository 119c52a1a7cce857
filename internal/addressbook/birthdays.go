package addressbook

import (
	"time"

	"github.com/aanand-mishra/contact-book/internal/types"
)

// upcomingWindowDays is how far ahead UpcomingBirthdays looks, inclusive.
const upcomingWindowDays = 7

// UpcomingBirthday is one entry of the upcoming-birthdays list. Birthday
// is the congratulation date (after the weekend shift) in DD.MM.YYYY.
type UpcomingBirthday struct {
	Name     string
	Birthday string
}

// UpcomingBirthdays returns, in book order, the contacts whose next
// birthday falls within the coming week.
//
// A birthday on Saturday or Sunday is moved to the following Monday
// before the window check, so a weekend birthday six or seven days out
// can fall outside the window and be dropped.
func (b *AddressBook) UpcomingBirthdays(now time.Time) []UpcomingBirthday {
	today := dateOf(now)

	var upcoming []UpcomingBirthday
	for _, r := range b.Records() {
		if !r.Birthday.IsSet() {
			continue
		}
		born, err := r.Birthday.Time()
		if err != nil {
			continue
		}

		next := time.Date(today.Year(), born.Month(), born.Day(), 0, 0, 0, 0, time.UTC)
		if next.Before(today) {
			next = time.Date(today.Year()+1, born.Month(), born.Day(), 0, 0, 0, 0, time.UTC)
		}

		switch next.Weekday() {
		case time.Saturday:
			next = next.AddDate(0, 0, 2)
		case time.Sunday:
			next = next.AddDate(0, 0, 1)
		}

		days := int(next.Sub(today) / (24 * time.Hour))
		if days >= 0 && days <= upcomingWindowDays {
			upcoming = append(upcoming, UpcomingBirthday{
				Name:     r.Name.String(),
				Birthday: next.Format(types.BirthdayLayout),
			})
		}
	}
	return upcoming
}

// dateOf strips the wall-clock part of t, keeping its calendar date.
// The result is in UTC so day arithmetic is free of DST jumps.
func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
