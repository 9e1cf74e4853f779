package pkg

import (
	"fmt"
	"regexp"
	"time"
)

var monthPattern = regexp.MustCompile(`^\d{4}-\d{2}$`)

// Month identifies one calendar month, the unit every budget and snapshot
// query works over. The wire format is the literal string "YYYY-MM".
type Month struct {
	Year  int
	Month time.Month
}

// ParseMonth validates the wire format strictly; malformed input is rejected
// here and never coerced downstream.
func ParseMonth(s string) (Month, error) {
	if !monthPattern.MatchString(s) {
		return Month{}, fmt.Errorf("invalid month format %q, expected YYYY-MM", s)
	}

	t, err := time.Parse("2006-01", s)
	if err != nil {
		return Month{}, fmt.Errorf("invalid month %q: %w", s, err)
	}

	return Month{Year: t.Year(), Month: t.Month()}, nil
}

func MonthOf(t time.Time) Month {
	return Month{Year: t.Year(), Month: t.Month()}
}

func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", m.Year, int(m.Month))
}

// Start returns the first instant of the month in UTC.
func (m Month) Start() time.Time {
	return time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC)
}

// Next returns the following month; together with Start it yields the
// half-open range [Start, Next.Start).
func (m Month) Next() Month {
	t := m.Start().AddDate(0, 1, 0)
	return Month{Year: t.Year(), Month: t.Month()}
}

func (m Month) Prev() Month {
	t := m.Start().AddDate(0, -1, 0)
	return Month{Year: t.Year(), Month: t.Month()}
}

// Days returns the number of calendar days in the month.
func (m Month) Days() int {
	return m.Next().Start().Add(-time.Hour).Day()
}

func (m Month) Contains(t time.Time) bool {
	u := t.UTC()
	return !u.Before(m.Start()) && u.Before(m.Next().Start())
}
