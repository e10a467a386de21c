package error

import (
	"errors"
	"fmt"
	"testing"
)

func TestBaseErrorTypes(t *testing.T) {
	if ErrConfiguration.Error() != "invalid configuration" {
		t.Errorf("ErrConfiguration has unexpected message: %s", ErrConfiguration.Error())
	}
	if ErrInvalidLevel.Error() != "error or warning or message must be specified" {
		t.Errorf("ErrInvalidLevel has unexpected message: %s", ErrInvalidLevel.Error())
	}
}

func TestErrorCode(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{"InvalidLevel", ErrInvalidLevel, 4220},
		{"UnknownSeverity", ErrUnknownSeverity, 4001},
		{"InvalidRequest", ErrInvalidRequest, 4000},
		{"Configuration", ErrConfiguration, 5001},
		{"SinkWrite", ErrSinkWrite, 5020},
		{"TypedConfiguration", NewConfigurationError("no sink enabled"), 5001},
		{"TypedInvalidLevel", NewInvalidLevelError("None", "Error"), 4220},
		{"TypedSinkWrite", NewSinkWriteError("file", "Error", errors.New("disk full")), 5020},
		{"UnknownError", errors.New("unknown error"), 5000},
		{"WrappedError", fmt.Errorf("wrapped: %w", ErrUnknownSeverity), 4001},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			code := ErrorCode(tc.err)
			if code != tc.expected {
				t.Errorf("ErrorCode(%v) = %d, want %d", tc.err, code, tc.expected)
			}
		})
	}
}

func TestConfigurationError(t *testing.T) {
	err := NewConfigurationError("no sink enabled")

	expectedErrMsg := "invalid configuration: no sink enabled"
	if err.Error() != expectedErrMsg {
		t.Errorf("ConfigurationError.Error() = %s, want %s", err.Error(), expectedErrMsg)
	}

	if !IsConfigurationError(err) {
		t.Errorf("IsConfigurationError(err) = false, want true")
	}
	if IsInvalidLevelError(err) {
		t.Errorf("IsInvalidLevelError(err) = true, want false")
	}
}

func TestInvalidLevelError(t *testing.T) {
	err := NewInvalidLevelError("Error", "None")

	expectedErrMsg := "error or warning or message must be specified (level: Error, threshold: None)"
	if err.Error() != expectedErrMsg {
		t.Errorf("InvalidLevelError.Error() = %s, want %s", err.Error(), expectedErrMsg)
	}

	if !errors.Is(err, ErrInvalidLevel) {
		t.Errorf("errors.Is(err, ErrInvalidLevel) = false, want true")
	}

	var levelErr *InvalidLevelError
	if !errors.As(err, &levelErr) {
		t.Fatal("errors.As(err, *InvalidLevelError) = false, want true")
	}
	if levelErr.LogFields()["threshold"] != "None" {
		t.Errorf("LogFields()[threshold] = %v, want None", levelErr.LogFields()["threshold"])
	}
}

func TestSinkWriteError(t *testing.T) {
	cause := errors.New("permission denied")
	err := NewSinkWriteError("file", "WarningError", cause)

	expectedErrMsg := "file sink failed to write WarningError message: permission denied"
	if err.Error() != expectedErrMsg {
		t.Errorf("SinkWriteError.Error() = %s, want %s", err.Error(), expectedErrMsg)
	}

	// Both the sentinel and the cause must be reachable
	if !IsSinkWriteError(err) {
		t.Errorf("IsSinkWriteError(err) = false, want true")
	}
	if !errors.Is(err, cause) {
		t.Errorf("errors.Is(err, cause) = false, want true")
	}

	var sinkErr *SinkWriteError
	if !errors.As(err, &sinkErr) {
		t.Fatal("errors.As(err, *SinkWriteError) = false, want true")
	}
	fields := sinkErr.LogFields()
	if fields["sink"] != "file" || fields["error"] != "permission denied" {
		t.Errorf("unexpected LogFields: %v", fields)
	}
}
