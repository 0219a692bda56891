package parser

import "testing"

func TestExtractName(t *testing.T) {
	tests := []struct {
		name         string
		text         string
		email        string
		expectedName string
	}{
		{
			name:         "name on first line",
			text:         "John Smith\njohn@example.com\n\nExperience\nEngineer",
			email:        "john@example.com",
			expectedName: "John Smith",
		},
		{
			name:         "document label skipped",
			text:         "Resume\nJane Doe\njane@example.com\n\nSkills\nGo",
			email:        "jane@example.com",
			expectedName: "Jane Doe",
		},
		{
			name:         "contact labels skipped",
			text:         "Phone: 555 123 4567\nEmail: bob@example.com\nBob Brown\n\nExperience",
			email:        "bob@example.com",
			expectedName: "Bob Brown",
		},
		{
			name:         "nothing in header zone",
			text:         "Experience\nEngineer at Acme",
			email:        "",
			expectedName: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, conf := extractName(tt.text, tt.email)
			if result != tt.expectedName {
				t.Errorf("extractName() = %q, expected %q", result, tt.expectedName)
			}
			if tt.expectedName != "" && conf <= 0 {
				t.Errorf("expected positive confidence, got %v", conf)
			}
			if tt.expectedName == "" && conf != 0 {
				t.Errorf("expected zero confidence, got %v", conf)
			}
		})
	}
}

func TestExtractNameConfidenceCapped(t *testing.T) {
	_, conf := extractName("John Smith\n\nExperience", "")
	if conf != 0.95 {
		t.Errorf("conf = %v, expected cap of 0.95", conf)
	}
}
