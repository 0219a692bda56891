package parser

import (
	"testing"
	"time"
)

func TestParseDateFlexible(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected time.Time
		ok       bool
	}{
		{
			name:     "year first",
			input:    "1990-03-15",
			expected: time.Date(1990, time.March, 15, 0, 0, 0, 0, time.UTC),
			ok:       true,
		},
		{
			name:     "numeric year-last read day first",
			input:    "15-03-1990",
			expected: time.Date(1990, time.March, 15, 0, 0, 0, 0, time.UTC),
			ok:       true,
		},
		{
			name:     "slash separators",
			input:    "1990/03/15",
			expected: time.Date(1990, time.March, 15, 0, 0, 0, 0, time.UTC),
			ok:       true,
		},
		{
			name:     "month name and year",
			input:    "March 1985",
			expected: time.Date(1985, time.March, 1, 0, 0, 0, 0, time.UTC),
			ok:       true,
		},
		{
			name:     "abbreviated month",
			input:    "Sep 2001",
			expected: time.Date(2001, time.September, 1, 0, 0, 0, 0, time.UTC),
			ok:       true,
		},
		{
			name:  "implausible year rejected",
			input: "1900-01-01",
			ok:    false,
		},
		{
			name:  "not a date",
			input: "hello world",
			ok:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, ok := parseDateFlexible(tt.input)
			if ok != tt.ok {
				t.Fatalf("parseDateFlexible(%q) ok = %v, expected %v", tt.input, ok, tt.ok)
			}
			if ok && !result.Equal(tt.expected) {
				t.Errorf("parseDateFlexible(%q) = %v, expected %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestMonthsBetween(t *testing.T) {
	tests := []struct {
		name     string
		a, b     time.Time
		expected int
	}{
		{
			name:     "same month",
			a:        time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC),
			b:        time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC),
			expected: 0,
		},
		{
			name:     "across year boundary",
			a:        time.Date(2018, time.January, 1, 0, 0, 0, 0, time.UTC),
			b:        time.Date(2020, time.March, 1, 0, 0, 0, 0, time.UTC),
			expected: 26,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := monthsBetween(tt.a, tt.b); result != tt.expected {
				t.Errorf("monthsBetween() = %d, expected %d", result, tt.expected)
			}
		})
	}
}

func TestExtractDOB(t *testing.T) {
	tests := []struct {
		name         string
		text         string
		expectedDOB  string
		expectedConf float64
	}{
		{
			name:         "iso date in birth window",
			text:         "Date of Birth: 1990-03-15",
			expectedDOB:  "1990-03-15",
			expectedConf: 0.8,
		},
		{
			name:         "day first numeric date",
			text:         "DOB: 15-03-1990",
			expectedDOB:  "1990-03-15",
			expectedConf: 0.8,
		},
		{
			name:         "employment years are outside the birth window",
			text:         "Jan 2018 - Mar 2020 worked somewhere",
			expectedDOB:  "",
			expectedConf: 0,
		},
		{
			name:         "first plausible token wins",
			text:         "graduated June 2015, born March 1988",
			expectedDOB:  "1988-03-01",
			expectedConf: 0.8,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dob, conf := extractDOB(tt.text)
			if dob != tt.expectedDOB {
				t.Errorf("extractDOB() dob = %q, expected %q", dob, tt.expectedDOB)
			}
			if conf != tt.expectedConf {
				t.Errorf("extractDOB() conf = %v, expected %v", conf, tt.expectedConf)
			}
		})
	}
}
