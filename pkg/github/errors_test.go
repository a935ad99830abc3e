package github

import (
	"errors"
	"strings"
	"testing"
)

func TestClassifyStatus(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		expected   ErrorClass
	}{
		{name: "403 is rate limit", statusCode: 403, expected: ErrorClassRateLimit},
		{name: "429 is rate limit", statusCode: 429, expected: ErrorClassRateLimit},
		{name: "404 is client", statusCode: 404, expected: ErrorClassClient},
		{name: "401 is client", statusCode: 401, expected: ErrorClassClient},
		{name: "500 is server", statusCode: 500, expected: ErrorClassServer},
		{name: "502 is server", statusCode: 502, expected: ErrorClassServer},
		{name: "200 is unclassified", statusCode: 200, expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := classifyStatus(tt.statusCode); got != tt.expected {
				t.Errorf("classifyStatus(%d) = %q, want %q", tt.statusCode, got, tt.expected)
			}
		})
	}
}

func TestAPIError_Error(t *testing.T) {
	err := &APIError{
		StatusCode: 500,
		ErrorClass: ErrorClassServer,
		Message:    "500 Internal Server Error",
	}

	msg := err.Error()
	if !strings.Contains(msg, "server") {
		t.Errorf("Error message %q should contain the error class", msg)
	}
	if !strings.Contains(msg, "500") {
		t.Errorf("Error message %q should contain the status code", msg)
	}
}

func TestAPIError_Unwrap(t *testing.T) {
	inner := errors.New("connection refused")
	err := &APIError{
		ErrorClass: ErrorClassNetwork,
		Message:    "request failed",
		Err:        inner,
	}

	if !errors.Is(err, inner) {
		t.Error("errors.Is should find the wrapped error")
	}
	if !strings.Contains(err.Error(), "connection refused") {
		t.Errorf("Error message %q should contain the wrapped error", err.Error())
	}
}
