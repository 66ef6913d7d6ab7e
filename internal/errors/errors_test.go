package errors

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorCodes(t *testing.T) {
	// Verify all expected error codes exist
	codes := []string{
		ErrConfig,
		ErrSubnet,
		ErrNetwork,
		ErrDNS,
		ErrStartup,
	}

	for _, code := range codes {
		assert.NotEmpty(t, code, "error code should not be empty")
	}

	// Verify codes are unique
	seen := make(map[string]bool)
	for _, code := range codes {
		assert.False(t, seen[code], "error code %q should be unique", code)
		seen[code] = true
	}
}

func TestNew(t *testing.T) {
	tests := []struct {
		name       string
		code       string
		message    string
		suggestion string
	}{
		{
			name:       "config error",
			code:       ErrConfig,
			message:    "Invalid configuration in .lanwatch.yaml",
			suggestion: "Check your configuration file syntax",
		},
		{
			name:       "subnet error",
			code:       ErrSubnet,
			message:    "Invalid subnet prefix 'abc'",
			suggestion: "Use a dotted prefix ending in '.', like 192.168.1.",
		},
		{
			name:       "network error",
			code:       ErrNetwork,
			message:    "Cannot enumerate network interfaces",
			suggestion: "Run 'lanwatch doctor' to diagnose network issues",
		},
		{
			name:       "dns error",
			code:       ErrDNS,
			message:    "Reverse lookup timed out",
			suggestion: "Pass --no-dns to skip hostname resolution",
		},
		{
			name:       "startup error",
			code:       ErrStartup,
			message:    "Failed to start monitoring loop",
			suggestion: "Check system resource limits",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New(tt.code, tt.message, tt.suggestion)

			require.NotNil(t, err)
			assert.Equal(t, tt.code, err.Code)
			assert.Equal(t, tt.message, err.Message)
			assert.Equal(t, tt.suggestion, err.Suggestion)
			assert.Nil(t, err.Cause)
		})
	}
}

func TestErrorInterface(t *testing.T) {
	err := New(ErrConfig, "test message", "test suggestion")

	// Should implement error interface
	var _ error = err

	errStr := err.Error()
	assert.NotEmpty(t, errStr)
}

func TestErrorFormatting(t *testing.T) {
	tests := []struct {
		name          string
		err           *Error
		expectedParts []string
		notExpected   []string
	}{
		{
			name: "basic error formatting",
			err:  New(ErrConfig, "Invalid configuration", "Check .lanwatch.yaml syntax"),
			expectedParts: []string{
				"Invalid configuration",
				"Check .lanwatch.yaml syntax",
			},
		},
		{
			name: "error with failure symbol",
			err:  New(ErrNetwork, "Probe failed", "Try again"),
			expectedParts: []string{
				"✗",
				"Probe failed",
			},
		},
		{
			name: "error without suggestion",
			err:  New(ErrStartup, "Startup failed", ""),
			expectedParts: []string{
				"Startup failed",
			},
			notExpected: []string{
				"suggestion", // No suggestion header when empty
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output := tt.err.Error()

			for _, part := range tt.expectedParts {
				assert.Contains(t, output, part, "output should contain %q", part)
			}

			for _, part := range tt.notExpected {
				assert.NotContains(t, output, part, "output should not contain %q", part)
			}
		})
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("underlying network error")
	wrapped := Wrap(cause, "Interface enumeration failed")

	require.NotNil(t, wrapped)
	assert.Equal(t, ErrNetwork, wrapped.Code, "Wrap should default to ErrNetwork code")
	assert.Equal(t, "Interface enumeration failed", wrapped.Message)
	assert.Equal(t, cause, wrapped.Cause)
}

func TestWrapWithCode(t *testing.T) {
	cause := errors.New("file not found")
	wrapped := WrapWithCode(cause, ErrConfig, "Failed to load config", "Create .lanwatch.yaml file")

	require.NotNil(t, wrapped)
	assert.Equal(t, ErrConfig, wrapped.Code)
	assert.Equal(t, "Failed to load config", wrapped.Message)
	assert.Equal(t, "Create .lanwatch.yaml file", wrapped.Suggestion)
	assert.Equal(t, cause, wrapped.Cause)
}

func TestErrorWrappingPreservesCause(t *testing.T) {
	original := errors.New("original error")
	wrapped := WrapWithCode(original, ErrDNS, "Lookup failed", "")

	assert.Equal(t, original, wrapped.Cause)

	// Error message should include cause information
	errStr := wrapped.Error()
	assert.Contains(t, errStr, "original error")
}

func TestErrorUnwrap(t *testing.T) {
	cause := errors.New("root cause")
	wrapped := WrapWithCode(cause, ErrStartup, "Startup failed", "")

	// Should implement Unwrap for errors.Is/errors.As
	unwrapped := wrapped.Unwrap()
	assert.Equal(t, cause, unwrapped)
}

func TestErrorsIs(t *testing.T) {
	cause := errors.New("specific error")
	wrapped := WrapWithCode(cause, ErrNetwork, "Network error", "")

	assert.True(t, errors.Is(wrapped, cause))
}

func TestErrorsAs(t *testing.T) {
	wrapped := New(ErrConfig, "Config error", "Fix config")

	var lwErr *Error
	ok := errors.As(wrapped, &lwErr)

	assert.True(t, ok)
	assert.Equal(t, ErrConfig, lwErr.Code)
}

func TestIsCode(t *testing.T) {
	err := New(ErrConfig, "Config error", "")

	assert.True(t, IsCode(err, ErrConfig))
	assert.False(t, IsCode(err, ErrSubnet))
	assert.False(t, IsCode(errors.New("standard error"), ErrConfig))
	assert.False(t, IsCode(nil, ErrConfig))
}

func TestErrorMessageStructure(t *testing.T) {
	err := WrapWithCode(
		errors.New("connection timed out after 200ms"),
		ErrNetwork,
		"Cannot reach any host on the subnet",
		"Run: lanwatch doctor",
	)

	output := err.Error()
	lines := strings.Split(output, "\n")

	// First line should have failure symbol and main message
	assert.True(t, strings.HasPrefix(strings.TrimSpace(lines[0]), "✗"), "First line should start with failure symbol")
	assert.Contains(t, lines[0], "Cannot reach any host on the subnet")
}
