package schedule

import (
	"errors"
	"regexp"
	"time"

	"github.com/markusmobius/go-dateparser"
)

// ErrNotParseable is returned when a date expression cannot be resolved
// to a calendar date.
var ErrNotParseable = errors.New("date expression not parseable")

// dateparser resolves bare weekdays future-biased ("monday" is the
// upcoming Monday) but has no rule for the "next <weekday>" idiom, so
// that prefix is stripped before parsing.
var nextWeekdayRegex = regexp.MustCompile(`(?i)^\s*next\s+(monday|tuesday|wednesday|thursday|friday|saturday|sunday)\s*$`)

// Normalizer resolves free-form date expressions ("next Tuesday",
// "March 3rd", "2026-03-09") into canonical dates in the business
// timezone.
type Normalizer struct {
	loc *time.Location
}

func NewNormalizer(loc *time.Location) *Normalizer {
	return &Normalizer{loc: loc}
}

// Normalize resolves text against ref and returns the date in DateLayout
// form. Ambiguous input is read as the future occurrence ("Tuesday" is
// the upcoming Tuesday, not the previous one). Input without an explicit
// zone is taken in the business timezone; input with one is converted
// into it before the calendar date is extracted.
func (n *Normalizer) Normalize(text string, ref time.Time) (string, error) {
	if m := nextWeekdayRegex.FindStringSubmatch(text); m != nil {
		text = m[1]
	}

	cfg := &dateparser.Configuration{
		CurrentTime:         ref.In(n.loc),
		DefaultTimezone:     n.loc,
		PreferredDateSource: dateparser.Future,
	}

	dt, err := dateparser.Parse(cfg, text)
	if err != nil || dt.Time.IsZero() {
		return "", ErrNotParseable
	}
	return dt.Time.In(n.loc).Format(DateLayout), nil
}
