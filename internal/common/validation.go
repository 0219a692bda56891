package common

import (
	"fmt"
	"slices"
)

// ValidateOutputFormat checks a requested output format against the formats
// configured for the CLI. An empty supported list disables the check.
func ValidateOutputFormat(format string, supportedFormats []string) error {
	if len(supportedFormats) == 0 {
		return nil
	}

	if slices.Contains(supportedFormats, format) {
		return nil
	}

	return fmt.Errorf("unsupported output format '%s'. Supported formats: %v",
		format, supportedFormats)
}

// GetSupportedFormats returns the configured output formats, used by flag
// completion.
func GetSupportedFormats(supportedFormats []string) []string {
	return supportedFormats
}
