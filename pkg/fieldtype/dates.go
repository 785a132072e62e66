package fieldtype

import (
	"strconv"
	"strings"
	"time"
)

// yearWindow is how many years either side of the current year an
// expiration date may fall.
const yearWindow = 12

const dateLayout = "01/02/2006"

var clock = time.Now

func validMonth(m int) bool { return m >= 1 && m <= 12 }

func validDay(d int) bool { return d >= 1 && d <= 31 }

// twoDigitYearInWindow reports whether some century places yy within the
// expiration window around the current year.
func twoDigitYearInWindow(yy int) bool {
	cur := clock().Year()
	century := cur / 100 * 100
	for _, c := range []int{century - 100, century, century + 100} {
		full := c + yy
		if full >= cur-yearWindow && full <= cur+yearWindow {
			return true
		}
	}
	return false
}

// yearDigitInWindow reports whether any completion of the leading year digit
// lands in the window.
func yearDigitInWindow(d int) bool {
	for yy := d * 10; yy <= d*10+9; yy++ {
		if twoDigitYearInWindow(yy) {
			return true
		}
	}
	return false
}

func stripSlashes(s string) string {
	return strings.ReplaceAll(s, "/", "")
}

func atoiPrefix(s string, n int) (int, error) {
	if len(s) < n {
		n = len(s)
	}
	return strconv.Atoi(s[:n])
}

// validCalendarDate reports whether text is a real MM/DD/YYYY date that
// survives a format round trip.
func validCalendarDate(text string) bool {
	parsed, err := time.Parse(dateLayout, text)
	if err != nil {
		return false
	}
	return parsed.Format(dateLayout) == text
}
