package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestValidateCertAndKey tests certificate and key source validation
func TestValidateCertAndKey(t *testing.T) {
	tests := []struct {
		name        string
		tls         TLSConfig
		expectError bool
		errorMsg    string
	}{
		{
			name: "both files provided",
			tls: TLSConfig{
				CertFile: "/path/to/cert.pem",
				KeyFile:  "/path/to/key.pem",
			},
			expectError: false,
		},
		{
			name: "both content provided",
			tls: TLSConfig{
				CertContent: "cert-content",
				KeyContent:  "key-content",
			},
			expectError: false,
		},
		{
			name: "mixed sources valid",
			tls: TLSConfig{
				CertFile:   "/path/to/cert.pem",
				KeyContent: "key-content",
			},
			expectError: false,
		},
		{
			name: "missing certificate",
			tls: TLSConfig{
				KeyFile: "/path/to/key.pem",
			},
			expectError: true,
			errorMsg:    "TLS certificate and key are required for server mode",
		},
		{
			name: "missing key",
			tls: TLSConfig{
				CertFile: "/path/to/cert.pem",
			},
			expectError: true,
			errorMsg:    "TLS certificate and key are required for server mode",
		},
		{
			name: "duplicate cert sources",
			tls: TLSConfig{
				CertFile:    "/path/to/cert.pem",
				CertContent: "cert-content",
				KeyFile:     "/path/to/key.pem",
			},
			expectError: true,
			errorMsg:    "cannot specify both certFile and certContent",
		},
		{
			name: "duplicate key sources",
			tls: TLSConfig{
				CertFile:   "/path/to/cert.pem",
				KeyFile:    "/path/to/key.pem",
				KeyContent: "key-content",
			},
			expectError: true,
			errorMsg:    "cannot specify both keyFile and keyContent",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateCertAndKey(tt.tls, "server mode")

			if tt.expectError {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

// TestValidateClientAuthPolicy tests client authentication policy validation
func TestValidateClientAuthPolicy(t *testing.T) {
	tests := []struct {
		name        string
		policy      string
		expectError bool
	}{
		{name: "require policy", policy: "require", expectError: false},
		{name: "request policy", policy: "request", expectError: false},
		{name: "verify policy", policy: "verify", expectError: false},
		{name: "empty policy (default)", policy: "", expectError: false},
		{name: "invalid policy", policy: "invalid", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateClientAuthPolicy(TLSConfig{ClientAuthPolicy: tt.policy})

			if tt.expectError {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), "invalid clientAuthPolicy")
				assert.Contains(t, err.Error(), "must be 'require', 'request', or 'verify'")
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

// TestValidateTLSVersion tests TLS version validation
func TestValidateTLSVersion(t *testing.T) {
	tests := []struct {
		name        string
		version     string
		expectError bool
	}{
		{name: "empty version (default)", version: "", expectError: false},
		{name: "TLS 1.2", version: "1.2", expectError: false},
		{name: "TLS 1.3", version: "1.3", expectError: false},
		{name: "invalid version", version: "1.1", expectError: true},
		{name: "invalid version string", version: "invalid", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateTLSVersion(TLSConfig{MinVersion: tt.version})

			if tt.expectError {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), "invalid TLS minVersion")
				assert.Contains(t, err.Error(), "must be '1.2' or '1.3'")
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

// TestValidateTLSConfig tests the main TLS validation with realistic scenarios
func TestValidateTLSConfig(t *testing.T) {
	tests := []struct {
		name        string
		tls         TLSConfig
		expectError bool
		errorMsg    string
	}{
		{
			name:        "disabled TLS",
			tls:         TLSConfig{Mode: "disabled"},
			expectError: false,
		},
		{
			name: "complete valid server config",
			tls: TLSConfig{
				Mode:       "server",
				CertFile:   "/path/to/cert.pem",
				KeyFile:    "/path/to/key.pem",
				MinVersion: "1.2",
			},
			expectError: false,
		},
		{
			name: "complete valid mutual config",
			tls: TLSConfig{
				Mode:             "mutual",
				CertContent:      "cert-content",
				KeyContent:       "key-content",
				CAContent:        "ca-content",
				ClientAuthPolicy: "require",
				MinVersion:       "1.3",
			},
			expectError: false,
		},
		{
			name: "invalid mode with valid certs",
			tls: TLSConfig{
				Mode:     "invalid",
				CertFile: "/path/to/cert.pem",
				KeyFile:  "/path/to/key.pem",
			},
			expectError: true,
			errorMsg:    "invalid TLS mode: invalid",
		},
		{
			name: "server mode missing certificates",
			tls: TLSConfig{
				Mode:       "server",
				MinVersion: "1.2",
			},
			expectError: true,
			errorMsg:    "TLS certificate and key are required for server mode",
		},
		{
			name: "mutual mode missing CA",
			tls: TLSConfig{
				Mode:     "mutual",
				CertFile: "/path/to/cert.pem",
				KeyFile:  "/path/to/key.pem",
			},
			expectError: true,
			errorMsg:    "CA certificate is required for mutual TLS mode",
		},
		{
			name: "mutual mode duplicate CA sources",
			tls: TLSConfig{
				Mode:      "mutual",
				CertFile:  "/path/to/cert.pem",
				KeyFile:   "/path/to/key.pem",
				CAFile:    "/path/to/ca.pem",
				CAContent: "ca-content",
			},
			expectError: true,
			errorMsg:    "cannot specify both caFile and caContent",
		},
		{
			name: "mutual mode invalid client auth policy",
			tls: TLSConfig{
				Mode:             "mutual",
				CertFile:         "/path/to/cert.pem",
				KeyFile:          "/path/to/key.pem",
				CAFile:           "/path/to/ca.pem",
				ClientAuthPolicy: "invalid",
			},
			expectError: true,
			errorMsg:    "invalid clientAuthPolicy: invalid",
		},
		{
			name: "valid mode with invalid version",
			tls: TLSConfig{
				Mode:       "server",
				CertFile:   "/path/to/cert.pem",
				KeyFile:    "/path/to/key.pem",
				MinVersion: "1.0",
			},
			expectError: true,
			errorMsg:    "invalid TLS minVersion: 1.0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Config{Server: ServerConfig{TLS: tt.tls}}
			err := cfg.ValidateTLSConfig()

			if tt.expectError {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
