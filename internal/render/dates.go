package render

import (
	"fmt"
	"time"
)

// OrdinalDay renders an English ordinal day-of-month, with the 11th-13th
// exception.
func OrdinalDay(d int) string {
	if v := d % 100; v >= 11 && v <= 13 {
		return fmt.Sprintf("%dth", d)
	}
	suffix := "th"
	switch d % 10 {
	case 1:
		suffix = "st"
	case 2:
		suffix = "nd"
	case 3:
		suffix = "rd"
	}
	return fmt.Sprintf("%d%s", d, suffix)
}

// ShortDate renders dates like "Feb 3rd". t should already be local.
func ShortDate(t time.Time) string {
	return t.Format("Jan") + " " + OrdinalDay(t.Day())
}
