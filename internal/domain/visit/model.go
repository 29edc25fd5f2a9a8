package visit

import (
	"fmt"
	"strings"
	"time"
)

const (
	DeviceDesktop = "desktop"
	DeviceMobile  = "mobile"
	DeviceTablet  = "tablet"
	DeviceBot     = "bot"
	DeviceUnknown = "unknown"
)

// Visit is one page load recorded by the public site.
type Visit struct {
	PageURL    string
	UserAgent  string
	Referrer   string
	Browser    string
	OS         string
	DeviceType string
	CreatedAt  time.Time
}

func (v Visit) Validate() error {
	if strings.TrimSpace(v.PageURL) == "" {
		return fmt.Errorf("page_url is required")
	}
	return nil
}

// Stats are visit counts for the fixed reporting windows.
type Stats struct {
	Total     int64
	Today     int64
	ThisWeek  int64
	ThisMonth int64
}

// Windows holds the start of each reporting window.
type Windows struct {
	DayStart   time.Time
	WeekStart  time.Time
	MonthStart time.Time
}

// WindowsAt computes window starts for now in loc. Weeks start on Monday.
func WindowsAt(now time.Time, loc *time.Location) Windows {
	if loc == nil {
		loc = time.UTC
	}
	local := now.In(loc)
	day := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
	sinceMonday := (int(day.Weekday()) + 6) % 7

	return Windows{
		DayStart:   day,
		WeekStart:  day.AddDate(0, 0, -sinceMonday),
		MonthStart: time.Date(local.Year(), local.Month(), 1, 0, 0, 0, 0, loc),
	}
}
