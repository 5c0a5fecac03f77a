package normalize

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Wellfound quotes annual USD ("$140k – $180k • 0.02% – 0.4%"); the pipeline
// stores monthly RMB thousands. Fixed rate, rounded to the nearest integer.
const usdAnnualToRmbMonthly = 7.2 / 12

var (
	moneyTokenRe = regexp.MustCompile(`\$(\d+)[kK]`)
	digitRe      = regexp.MustCompile(`\d`)
)

// ConvertSalary turns a raw Wellfound salary string into the localized display
// form and its plain numeric-range variant. Input that carries no "$Nk" token
// is passed through compacted.
func ConvertSalary(raw string) (salary, salaryEnglish string) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ""
	}

	parts := strings.SplitN(raw, "•", 2)
	moneyPart := strings.TrimSpace(parts[0])
	rawEquity := ""
	if len(parts) > 1 {
		rawEquity = strings.TrimSpace(parts[1])
	}

	matches := moneyTokenRe.FindAllStringSubmatch(moneyPart, -1)
	if len(matches) == 0 {
		compact := CompactSpaces(raw)
		return compact, compact
	}

	convert := func(tok string) int {
		n, _ := strconv.Atoi(tok)
		return int(math.Round(float64(n) * usdAnnualToRmbMonthly))
	}

	minVal := convert(matches[0][1])
	maxVal := minVal
	if len(matches) > 1 {
		maxVal = convert(matches[1][1])
	}

	formatted := fmt.Sprintf("%d-%dK", minVal, maxVal)
	if minVal == maxVal {
		formatted = fmt.Sprintf("%dK", minVal)
	}

	// An equity clause only counts when it carries a digit ("No equity" does not).
	base := formatted
	hasEquity := digitRe.MatchString(rawEquity)
	if hasEquity {
		base += "·" + CompactSpaces(rawEquity)
	}

	salary = base
	if hasEquity {
		salary += "股"
	}
	return salary, base
}
