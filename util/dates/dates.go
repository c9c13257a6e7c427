package dates

import (
	"strings"
	"time"
)

// Layout of dates in meta blocks.
const Layout = "2006-01-02"

func FirstDayOfMonth(t time.Time) time.Time {
	y, m, _ := t.Date()

	return time.Date(y, m, 1, 0, 0, 0, 0, t.Location())
}

func ParseDate(s string) (time.Time, error) {
	return time.Parse(Layout, strings.TrimSpace(s))
}

func DateString(t time.Time) string {
	return t.Format(Layout)
}
