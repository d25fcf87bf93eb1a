package schedule

import (
	"fmt"
	"time"

	"github.com/rickar/cal/v2"
	"github.com/rickar/cal/v2/us"
)

// Canonical layouts for stored dates and clock times.
const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// Calendar answers business-day questions for the booking office:
// weekdays only, minus the US federal holiday set. Observed holiday
// dates are year-dependent and come from the holiday library.
type Calendar struct {
	cal *cal.BusinessCalendar
	loc *time.Location
}

func NewCalendar(loc *time.Location) *Calendar {
	c := cal.NewBusinessCalendar()
	c.AddHoliday(us.Holidays...)
	return &Calendar{cal: c, loc: loc}
}

func (c *Calendar) Location() *time.Location {
	return c.loc
}

// IsBusinessDay reports whether a canonical date is bookable.
func (c *Calendar) IsBusinessDay(date string) (bool, error) {
	t, err := time.ParseInLocation(DateLayout, date, c.loc)
	if err != nil {
		return false, err
	}
	return c.cal.IsWorkday(t), nil
}

// NonBusinessReason explains why a date is not bookable: the holiday name
// when one is observed, the weekday name ("a Saturday") otherwise.
// closed is false for business days.
func (c *Calendar) NonBusinessReason(date string) (reason string, closed bool, err error) {
	t, err := time.ParseInLocation(DateLayout, date, c.loc)
	if err != nil {
		return "", false, err
	}

	if c.cal.IsWorkday(t) {
		return "", false, nil
	}

	if _, observed, holiday := c.cal.IsHoliday(t); observed && holiday != nil {
		return holiday.Name, true, nil
	}
	return "a " + t.Weekday().String(), true, nil
}

// BusinessHours lists the bookable start times of any business day, one
// per hour from 09:00 through 16:00, ascending. The grid is fixed; there
// is no per-day override or finer granularity.
func BusinessHours() []string {
	hours := make([]string, 0, 8)
	for h := 9; h <= 16; h++ {
		hours = append(hours, fmt.Sprintf("%02d:00", h))
	}
	return hours
}
