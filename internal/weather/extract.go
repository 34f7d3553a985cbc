package weather

import (
	"regexp"
	"strings"
)

// Condition extraction over answer text. The patterns are deliberately
// conservative: a missed condition degrades to "not found" downstream,
// a false positive would report wrong weather.
var (
	tempPattern = regexp.MustCompile(`(?i)(-?\d+(?:\.\d+)?)\s*(?:°|deg(?:rees)?\s*)\s*([CF])\b`)
	windPattern = regexp.MustCompile(`(?i)winds?[^.\d]{0,24}(\d+(?:\.\d+)?\s*(?:mph|km/h|kph|m/s|knots|kt)\b)`)

	precipBeforePattern = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?\s*(?:%|mm))[^.]{0,24}(?:rain|precip|shower|snow|drizzle)`)
	precipAfterPattern  = regexp.MustCompile(`(?i)(?:rain|precip(?:itation)?|shower|snow|drizzle)[^.\d]{0,24}(\d+(?:\.\d+)?\s*(?:%|mm)\b)`)
)

func extractTemperature(answer string) string {
	m := tempPattern.FindStringSubmatch(answer)
	if m == nil {
		return ""
	}
	return m[1] + "°" + strings.ToUpper(m[2])
}

func extractWind(answer string) string {
	m := windPattern.FindStringSubmatch(answer)
	if m == nil {
		return ""
	}
	return normalizeSpace(m[1])
}

func extractPrecipitation(answer string) string {
	if m := precipBeforePattern.FindStringSubmatch(answer); m != nil {
		return normalizeSpace(m[1])
	}
	if m := precipAfterPattern.FindStringSubmatch(answer); m != nil {
		return normalizeSpace(m[1])
	}
	return ""
}

func normalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
