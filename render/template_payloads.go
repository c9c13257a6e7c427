package render

import (
	"time"

	"github.com/bgraf/pagetags/data"
	"github.com/bgraf/pagetags/util/dates"
)

// PageGroup holds pages of the same month. Undated pages form a group with
// zero Date.
type PageGroup struct {
	Pages []*data.Page
	Date  time.Time
}

func (g PageGroup) HasDate() bool {
	return !g.Date.IsZero()
}

// MakePageGroups groups consecutive pages by month.
func MakePageGroups(pages []*data.Page) []PageGroup {
	if len(pages) == 0 {
		return nil
	}

	groups := []PageGroup{
		{
			Date: firstDayOfMonth(pages[0].Date),
		},
	}

	ci := 0
	for _, p := range pages {
		ym := firstDayOfMonth(p.Date)
		if !ym.Equal(groups[ci].Date) {
			groups = append(
				groups,
				PageGroup{
					Date: ym,
				},
			)
			ci++
		}

		groups[ci].Pages = append(groups[ci].Pages, p)
	}

	return groups
}

func firstDayOfMonth(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}

	return dates.FirstDayOfMonth(t)
}
