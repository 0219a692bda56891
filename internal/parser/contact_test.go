package parser

import (
	"math"
	"testing"
)

func TestExtractEmail(t *testing.T) {
	tests := []struct {
		name          string
		text          string
		expectedEmail string
		expectedConf  float64
	}{
		{
			name:          "plain email",
			text:          "Contact: john.smith@example.com",
			expectedEmail: "john.smith@example.com",
			expectedConf:  0.99,
		},
		{
			name:          "first of several wins",
			text:          "a@example.com b@example.org",
			expectedEmail: "a@example.com",
			expectedConf:  0.99,
		},
		{
			name:          "no email",
			text:          "no contact details here",
			expectedEmail: "",
			expectedConf:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			email, conf := extractEmail(tt.text)
			if email != tt.expectedEmail {
				t.Errorf("extractEmail() email = %q, expected %q", email, tt.expectedEmail)
			}
			if conf != tt.expectedConf {
				t.Errorf("extractEmail() conf = %v, expected %v", conf, tt.expectedConf)
			}
		})
	}
}

func TestExtractPhone(t *testing.T) {
	tests := []struct {
		name          string
		text          string
		expectedPhone string
		expectedConf  float64
	}{
		{
			name:          "international format scores highest",
			text:          "Phone: +1 (555) 123-4567",
			expectedPhone: "+15551234567",
			expectedConf:  0.95,
		},
		{
			name:          "bare ten digits",
			text:          "call 555-123-4567 x89",
			expectedPhone: "5551234567",
			expectedConf:  0.75,
		},
		{
			name:          "too few digits rejected",
			text:          "ref 12345-678",
			expectedPhone: "",
			expectedConf:  0,
		},
		{
			name:          "plus candidate beats bare candidate",
			text:          "home 555 123 4567, work +44 20 7946 0958",
			expectedPhone: "+442079460958",
			expectedConf:  0.95,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			phone, conf := extractPhone(tt.text)
			if phone != tt.expectedPhone {
				t.Errorf("extractPhone() phone = %q, expected %q", phone, tt.expectedPhone)
			}
			if math.Abs(conf-tt.expectedConf) > 1e-9 {
				t.Errorf("extractPhone() conf = %v, expected %v", conf, tt.expectedConf)
			}
		})
	}
}

func TestExtractProfiles(t *testing.T) {
	text := "https://www.linkedin.com/in/jsmith and https://github.com/jsmith"
	profiles := extractProfiles(text)

	if profiles["linkedin"] != "https://www.linkedin.com/in/jsmith" {
		t.Errorf("linkedin profile = %q", profiles["linkedin"])
	}
	if profiles["github"] != "https://github.com/jsmith" {
		t.Errorf("github profile = %q", profiles["github"])
	}
}

func TestExtractProfilesAbsentKeysOmitted(t *testing.T) {
	profiles := extractProfiles("no links at all")
	if len(profiles) != 0 {
		t.Errorf("expected empty profile map, got %v", profiles)
	}
}
