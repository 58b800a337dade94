package failure_test

import (
	"errors"
	"fmt"
	"hms/shared/failure"
	"net/http"
	"testing"
)

func TestFailure_Error(t *testing.T) {
	f := &failure.Failure{
		Code:    http.StatusBadRequest,
		Message: "test error message",
	}

	if f.Error() != "test error message" {
		t.Errorf("expected error message to be 'test error message', got %s", f.Error())
	}
}

func TestPredefinedFailures(t *testing.T) {
	tests := []struct {
		name    string
		failure *failure.Failure
		code    int
		message string
	}{
		{
			name:    "InvalidPageParam",
			failure: failure.InvalidPageParam,
			code:    http.StatusBadRequest,
			message: "invalid page parameter",
		},
		{
			name:    "InvalidLimitParam",
			failure: failure.InvalidLimitParam,
			code:    http.StatusBadRequest,
			message: "invalid limit parameter",
		},
		{
			name:    "ForbiddenError",
			failure: failure.ForbiddenError,
			code:    http.StatusForbidden,
			message: "You don't have the required permissions",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.failure.Code != tt.code {
				t.Errorf("expected code to be %d, got %d", tt.code, tt.failure.Code)
			}
			if tt.failure.Message != tt.message {
				t.Errorf("expected message to be %s, got %s", tt.message, tt.failure.Message)
			}
		})
	}
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name  string
		build func() error
		code  int
	}{
		{
			name:  "BadRequestFromString",
			build: func() error { return failure.BadRequestFromString("bad input") },
			code:  http.StatusBadRequest,
		},
		{
			name:  "Unauthorized",
			build: func() error { return failure.Unauthorized("no token") },
			code:  http.StatusUnauthorized,
		},
		{
			name:  "NotFound",
			build: func() error { return failure.NotFound("booking not found") },
			code:  http.StatusNotFound,
		},
		{
			name:  "InvalidState",
			build: func() error { return failure.InvalidState("wrong state") },
			code:  http.StatusConflict,
		},
		{
			name:  "Conflict",
			build: func() error { return failure.Conflict("room taken") },
			code:  http.StatusConflict,
		},
		{
			name:  "Forbidden",
			build: func() error { return failure.Forbidden("admins only") },
			code:  http.StatusForbidden,
		},
		{
			name:  "InternalError",
			build: func() error { return failure.InternalError(errors.New("boom")) },
			code:  http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.build()
			if code := failure.GetCode(err); code != tt.code {
				t.Errorf("expected code %d, got %d", tt.code, code)
			}
		})
	}
}

func TestBadRequestNilError(t *testing.T) {
	if err := failure.BadRequest(nil); err != nil {
		t.Errorf("expected nil, got %v", err)
	}

	if err := failure.InternalError(nil); err != nil {
		t.Errorf("expected nil, got %v", err)
	}
}

func TestGetCode(t *testing.T) {
	if code := failure.GetCode(errors.New("plain error")); code != http.StatusInternalServerError {
		t.Errorf("expected plain errors to map to 500, got %d", code)
	}

	wrapped := fmt.Errorf("context: %w", failure.NotFound("gone"))
	if code := failure.GetCode(wrapped); code != http.StatusNotFound {
		t.Errorf("expected wrapped failure code to survive, got %d", code)
	}
}

func TestIsNotFound(t *testing.T) {
	if !failure.IsNotFound(failure.NotFound("booking not found")) {
		t.Error("expected IsNotFound to be true for a not-found failure")
	}

	if failure.IsNotFound(failure.Conflict("room taken")) {
		t.Error("expected IsNotFound to be false for a conflict")
	}
}
