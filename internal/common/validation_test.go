package common

import (
	"testing"
)

func TestValidateOutputFormat(t *testing.T) {
	defaultFormats := []string{"json", "text", "markdown"}

	tests := []struct {
		name             string
		format           string
		supportedFormats []string
		expectError      bool
		expectedError    string
	}{
		{
			name:             "json",
			format:           "json",
			supportedFormats: defaultFormats,
		},
		{
			name:             "text",
			format:           "text",
			supportedFormats: defaultFormats,
		},
		{
			name:             "markdown",
			format:           "markdown",
			supportedFormats: defaultFormats,
		},
		{
			name:             "unknown format",
			format:           "xml",
			supportedFormats: defaultFormats,
			expectError:      true,
			expectedError:    "unsupported output format 'xml'. Supported formats: [json text markdown]",
		},
		{
			name:             "format matching is case sensitive",
			format:           "JSON",
			supportedFormats: defaultFormats,
			expectError:      true,
			expectedError:    "unsupported output format 'JSON'. Supported formats: [json text markdown]",
		},
		{
			name:             "empty format string",
			format:           "",
			supportedFormats: defaultFormats,
			expectError:      true,
			expectedError:    "unsupported output format ''. Supported formats: [json text markdown]",
		},
		{
			name:             "no restrictions configured",
			format:           "xml",
			supportedFormats: []string{},
		},
		{
			name:             "single configured format rejects others",
			format:           "text",
			supportedFormats: []string{"json"},
			expectError:      true,
			expectedError:    "unsupported output format 'text'. Supported formats: [json]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOutputFormat(tt.format, tt.supportedFormats)

			if tt.expectError {
				if err == nil {
					t.Fatal("expected error but got none")
				}
				if tt.expectedError != "" && err.Error() != tt.expectedError {
					t.Errorf("error = %q, want %q", err.Error(), tt.expectedError)
				}
				return
			}
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestGetSupportedFormats(t *testing.T) {
	tests := []struct {
		name             string
		supportedFormats []string
	}{
		{"default formats", []string{"json", "text", "markdown"}},
		{"single format", []string{"json"}},
		{"empty list", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := GetSupportedFormats(tt.supportedFormats)

			if len(result) != len(tt.supportedFormats) {
				t.Fatalf("got %d formats, want %d", len(result), len(tt.supportedFormats))
			}
			for i, want := range tt.supportedFormats {
				if result[i] != want {
					t.Errorf("result[%d] = %q, want %q", i, result[i], want)
				}
			}
		})
	}
}

func BenchmarkValidateOutputFormat(b *testing.B) {
	supportedFormats := []string{"json", "text", "markdown"}

	b.Run("valid format", func(b *testing.B) {
		for b.Loop() {
			_ = ValidateOutputFormat("json", supportedFormats)
		}
	})

	b.Run("invalid format", func(b *testing.B) {
		for b.Loop() {
			_ = ValidateOutputFormat("xml", supportedFormats)
		}
	})
}
