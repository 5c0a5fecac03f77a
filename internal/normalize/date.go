package normalize

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

var (
	daysAgoRe     = regexp.MustCompile(`(\d+)\s+days?\s+ago`)
	cnMonthDayRe  = regexp.MustCompile(`(\d+)月(\d+)日`)
	isoDateRe     = regexp.MustCompile(`\d{4}-\d{2}-\d{2}`)
	timestampISOe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}`)
)

// DateFromRelative resolves "today" / "yesterday" / "<N> days ago" phrases to
// an absolute YYYY-MM-DD. Returns "" when the phrase is not recognized.
func DateFromRelative(text string, now time.Time) string {
	t := strings.ToLower(strings.TrimSpace(text))
	if m := daysAgoRe.FindStringSubmatch(t); m != nil {
		n, _ := strconv.Atoi(m[1])
		return now.AddDate(0, 0, -n).Format(dateLayout)
	}
	if strings.Contains(t, "today") {
		return now.Format(dateLayout)
	}
	if strings.Contains(t, "yesterday") {
		return now.AddDate(0, 0, -1).Format(dateLayout)
	}
	return ""
}

// DateFromChinese resolves the publish-time text Zhaopin renders: 今天, or
// "<M>月<D>日" with no year. A month numerically greater than the current one
// means the posting is from last year (year-boundary rollover). Falls back to
// a literal YYYY-MM-DD match, then "".
func DateFromChinese(text string, now time.Time) string {
	if strings.Contains(text, "今天") {
		return now.Format(dateLayout)
	}
	if m := cnMonthDayRe.FindStringSubmatch(text); m != nil {
		month, _ := strconv.Atoi(m[1])
		day, _ := strconv.Atoi(m[2])
		year := now.Year()
		if month > int(now.Month()) {
			year--
		}
		return fmt.Sprintf("%04d-%02d-%02d", year, month, day)
	}
	if iso := isoDateRe.FindString(text); iso != "" {
		return iso
	}
	return ""
}

// DateFromTimestamp truncates a machine-readable timestamp
// ("2026-08-12T09:30:00+08:00") to its date portion.
func DateFromTimestamp(ts string) string {
	ts = strings.TrimSpace(ts)
	if !timestampISOe.MatchString(ts) {
		return ""
	}
	if i := strings.Index(ts, "T"); i >= 0 {
		return ts[:i]
	}
	return ts
}
