package parser

import (
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"
)

// rangePatterns capture employment spans in the forms seen in the wild:
// "Jan 2018 – Mar 2020", "2019 - Present", "07/2016 - 08/2019", and full
// day-first dates. Both hyphen and en dash separators are accepted.
var rangePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)([A-Za-z]{3,9})\s+(\d{4})\s*[–-]\s*([A-Za-z]{3,9}|present)\s*(\d{4})?`),
	regexp.MustCompile(`(?i)(\d{4})\s*[–-]\s*(\d{4}|present)`),
	regexp.MustCompile(`(?i)(\d{1,2})[/.-](\d{4})\s*[–-]\s*(\d{1,2})[/.-](\d{4}|present)`),
	regexp.MustCompile(`(?i)(\d{1,2})[/.-](\d{1,2})[/.-](\d{4})\s*[–-]\s*(\d{1,2})[/.-](\d{1,2})[/.-](\d{4}|present)`),
}

var (
	monthRangeRe    = regexp.MustCompile(`([a-z]{3,9})\s+(\d{4})\s*[–-]\s*([a-z]{3,9}|present)\s*(\d{4})?`)
	yearRangeRe     = regexp.MustCompile(`(\d{4})\s*[–-]\s*(\d{4}|present)`)
	monthNumRangeRe = regexp.MustCompile(`(\d{1,2})[/.-](\d{4})\s*[–-]\s*(\d{1,2})[/.-](\d{4})`)
	fullDateRangeRe = regexp.MustCompile(`(\d{1,2})[/.-](\d{1,2})[/.-](\d{4})\s*[–-]\s*(\d{1,2})[/.-](\d{1,2})[/.-](\d{4})`)
	presentRe       = regexp.MustCompile(`present|current`)
	explicitYearsRe = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*\+?\s*(years?|yrs?)`)
)

type dateRange struct {
	start time.Time
	end   time.Time
}

func monthStart(year, monthIdx int) time.Time {
	return time.Date(year, time.Month(monthIdx+1), 1, 0, 0, 0, 0, time.UTC)
}

// rangeToDates interprets one matched span. Interpretations are tried from
// most to least specific; an open "present" end anchors to now.
func rangeToDates(match string, now time.Time) (dateRange, bool) {
	str := strings.ToLower(match)
	hasPresent := presentRe.MatchString(str)

	if md := monthRangeRe.FindStringSubmatch(str); md != nil {
		startMo, okStart := months[md[1]]
		startYr, _ := strconv.Atoi(md[2])

		endMo, okEndMo := -1, false
		if md[3] != "" && md[3] != "present" {
			endMo, okEndMo = months[md[3]]
		} else if hasPresent {
			endMo, okEndMo = int(now.Month())-1, true
		}
		endYr, okEndYr := 0, false
		if md[4] != "" {
			endYr, _ = strconv.Atoi(md[4])
			okEndYr = true
		} else if hasPresent {
			endYr, okEndYr = now.Year(), true
		}

		if okStart && plausibleYear(startYr) {
			s := monthStart(startYr, startMo)
			if okEndMo && okEndYr && plausibleYear(endYr) {
				if e := monthStart(endYr, endMo); e.After(s) {
					return dateRange{s, e}, true
				}
			} else if hasPresent && now.After(s) {
				return dateRange{s, now}, true
			}
		}
	}

	if md := yearRangeRe.FindStringSubmatch(str); md != nil {
		sY, _ := strconv.Atoi(md[1])
		eY := now.Year()
		if md[2] != "present" {
			eY, _ = strconv.Atoi(md[2])
		}
		if plausibleYear(sY) && plausibleYear(eY) && eY >= sY {
			return dateRange{monthStart(sY, 0), monthStart(eY, 0)}, true
		}
	}

	if md := monthNumRangeRe.FindStringSubmatch(str); md != nil {
		sM, _ := strconv.Atoi(md[1])
		sY, _ := strconv.Atoi(md[2])
		eM, _ := strconv.Atoi(md[3])
		eY, _ := strconv.Atoi(md[4])
		if plausibleYear(sY) && plausibleYear(eY) {
			s, e := monthStart(sY, sM-1), monthStart(eY, eM-1)
			if e.After(s) {
				return dateRange{s, e}, true
			}
		}
	}

	if md := fullDateRangeRe.FindStringSubmatch(str); md != nil {
		sM, _ := strconv.Atoi(md[2])
		sY, _ := strconv.Atoi(md[3])
		eM, _ := strconv.Atoi(md[5])
		eY, _ := strconv.Atoi(md[6])
		if plausibleYear(sY) && plausibleYear(eY) {
			s, e := monthStart(sY, sM-1), monthStart(eY, eM-1)
			if e.After(s) {
				return dateRange{s, e}, true
			}
		}
	}

	return dateRange{}, false
}

// mergeRanges sorts by start and coalesces overlapping or touching spans so
// concurrent jobs are not double counted.
func mergeRanges(ranges []dateRange) []dateRange {
	if len(ranges) == 0 {
		return nil
	}
	sort.Slice(ranges, func(i, j int) bool { return ranges[i].start.Before(ranges[j].start) })
	merged := []dateRange{ranges[0]}
	for _, cur := range ranges[1:] {
		prev := &merged[len(merged)-1]
		if !cur.start.After(prev.end) {
			if cur.end.After(prev.end) {
				prev.end = cur.end
			}
		} else {
			merged = append(merged, cur)
		}
	}
	return merged
}

func inferExperienceFromRanges(text string, now time.Time) (float64, bool) {
	var ranges []dateRange
	for _, p := range rangePatterns {
		for _, m := range p.FindAllString(text, -1) {
			if r, ok := rangeToDates(m, now); ok {
				ranges = append(ranges, r)
			}
		}
	}
	total := 0
	for _, r := range mergeRanges(ranges) {
		if mo := monthsBetween(r.start, r.end); mo > 0 {
			total += mo
		}
	}
	if total <= 0 {
		return 0, false
	}
	return float64(total) / 12, true
}

// explicitYearsMention collects phrases like "5 years" or "10+ yrs" and takes
// the 75th percentile, which keeps short stints mentioned repeatedly from
// dragging the estimate down. Values over 60 are discarded as noise.
func explicitYearsMention(text string) (float64, bool) {
	var values []float64
	for _, m := range explicitYearsRe.FindAllStringSubmatch(text, -1) {
		v, err := strconv.ParseFloat(m[1], 64)
		if err == nil && v <= 60 {
			values = append(values, v)
		}
	}
	if len(values) == 0 {
		return 0, false
	}
	sort.Float64s(values)
	idx := int(float64(len(values)) * 0.75)
	if idx > len(values)-1 {
		idx = len(values) - 1
	}
	return values[idx], true
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// extractExperienceYears blends the timeline estimate with explicit mentions.
// When both exist the blend is 0.6 range + 0.4 explicit, bounded by the
// larger of the two so neither source inflates the result.
func extractExperienceYears(text string, now time.Time) (float64, float64) {
	fromRanges, okRanges := inferExperienceFromRanges(text, now)
	fromExplicit, okExplicit := explicitYearsMention(text)
	if fromExplicit == 0 {
		okExplicit = false
	}

	switch {
	case okRanges && okExplicit:
		blended := clamp(0.6*fromRanges+0.4*fromExplicit, 0, math.Max(fromRanges, fromExplicit))
		return round1(blended), 0.9
	case okRanges:
		return round1(fromRanges), 0.8
	case okExplicit:
		return round1(fromExplicit), 0.6
	}
	return 0, 0
}
