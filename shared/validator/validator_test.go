package validator_test

import (
	"hms/shared/validator"
	"strings"
	"testing"
)

type createGuestPayload struct {
	Name   string `validate:"required"                  json:"name"`
	Email  string `validate:"required,email"            json:"email"`
	Guests int    `validate:"gte=1,lte=10"              json:"guests"`
	Method string `validate:"oneof=CASH CARD UPI ONLINE" json:"method"`
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name        string
		data        *createGuestPayload
		expectError bool
	}{
		{
			name: "valid struct",
			data: &createGuestPayload{
				Name:   "Asha Rao",
				Email:  "asha@example.com",
				Guests: 2,
				Method: "CASH",
			},
			expectError: false,
		},
		{
			name: "missing required field",
			data: &createGuestPayload{
				Email:  "asha@example.com",
				Guests: 2,
				Method: "CASH",
			},
			expectError: true,
		},
		{
			name: "invalid email",
			data: &createGuestPayload{
				Name:   "Asha Rao",
				Email:  "not-an-email",
				Guests: 2,
				Method: "CASH",
			},
			expectError: true,
		},
		{
			name: "guests out of range",
			data: &createGuestPayload{
				Name:   "Asha Rao",
				Email:  "asha@example.com",
				Guests: 11,
				Method: "CASH",
			},
			expectError: true,
		},
		{
			name: "invalid payment method",
			data: &createGuestPayload{
				Name:   "Asha Rao",
				Email:  "asha@example.com",
				Guests: 2,
				Method: "BARTER",
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(tt.data)

			if tt.expectError && err == nil {
				t.Error("expected validation error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no validation error, got: %v", err)
			}
		})
	}
}

func TestValidateVar(t *testing.T) {
	tests := []struct {
		name        string
		field       interface{}
		tag         string
		expectError bool
	}{
		{
			name:        "valid required string",
			field:       "standard",
			tag:         "required",
			expectError: false,
		},
		{
			name:        "empty required string",
			field:       "",
			tag:         "required",
			expectError: true,
		},
		{
			name:        "valid email",
			field:       "guest@example.com",
			tag:         "email",
			expectError: false,
		},
		{
			name:        "invalid email",
			field:       "not-an-email",
			tag:         "email",
			expectError: true,
		},
		{
			name:        "valid number in range",
			field:       4,
			tag:         "gte=1,lte=10",
			expectError: false,
		},
		{
			name:        "number out of range",
			field:       0,
			tag:         "gte=1,lte=10",
			expectError: true,
		},
		{
			name:        "valid oneof",
			field:       "UPI",
			tag:         "oneof=CASH CARD UPI ONLINE",
			expectError: false,
		},
		{
			name:        "invalid oneof",
			field:       "BARTER",
			tag:         "oneof=CASH CARD UPI ONLINE",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateVar(tt.field, tt.tag)

			if tt.expectError && err == nil {
				t.Error("expected validation error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no validation error, got: %v", err)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		jsonBody    string
		expectError bool
	}{
		{
			name:        "valid JSON",
			jsonBody:    `{"name":"Asha Rao","email":"asha@example.com","guests":2,"method":"CASH"}`,
			expectError: false,
		},
		{
			name:        "invalid JSON",
			jsonBody:    `{"name":"Asha Rao","email":"not-an-email","guests":2,"method":"CASH"}`,
			expectError: true,
		},
		{
			name:        "malformed JSON",
			jsonBody:    `{"name":"Asha Rao","email":}`,
			expectError: true,
		},
		{
			name:        "empty JSON",
			jsonBody:    `{}`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reader := strings.NewReader(tt.jsonBody)
			var data createGuestPayload
			err := validator.Validate(reader, &data)

			if tt.expectError && err == nil {
				t.Error("expected validation error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no validation error, got: %v", err)
			}
		})
	}
}

func TestValidationMessages(t *testing.T) {
	data := &createGuestPayload{}
	err := validator.ValidateStruct(data)

	if err == nil {
		t.Fatal("expected validation error for empty struct")
	}

	errorMsg := err.Error()

	if !strings.Contains(errorMsg, "required") || errorMsg == "" {
		t.Errorf("expected descriptive error message containing 'required', got: %s", errorMsg)
	}
}
